package render_test

import (
	"testing"
	"time"

	"github.com/goliatone/go-consentform/pkg/render"
)

func TestFilename(t *testing.T) {
	submitted := time.Date(2026, time.April, 12, 10, 30, 0, 0, time.UTC)

	cases := []struct {
		child string
		want  string
	}{
		{"Ava Lee", "consent_Ava_Lee_2026-04-12.pdf"},
		{"Ava   Grace \t Lee", "consent_Ava_Grace_Lee_2026-04-12.pdf"},
		{"Solo", "consent_Solo_2026-04-12.pdf"},
	}
	for _, tc := range cases {
		if got := render.Filename(tc.child, submitted); got != tc.want {
			t.Errorf("Filename(%q) = %q, want %q", tc.child, got, tc.want)
		}
	}
}

func TestFilenameDeterministic(t *testing.T) {
	submitted := time.Date(2026, time.April, 12, 8, 0, 0, 0, time.UTC)
	first := render.Filename("Ava Lee", submitted)
	second := render.Filename("Ava Lee", submitted)
	if first != second {
		t.Fatalf("filenames differ: %q vs %q", first, second)
	}
}
