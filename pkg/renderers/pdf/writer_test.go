package pdf

import (
	"strings"
	"testing"

	"github.com/go-pdf/fpdf"
)

func newTestWriter() (*fpdf.Fpdf, *pageWriter) {
	doc := fpdf.New("P", "mm", "A4", "")
	doc.SetAutoPageBreak(false, 0)
	doc.AddPage()
	return doc, newPageWriter(doc)
}

func TestCheckboxAdvanceIdenticalForBothStates(t *testing.T) {
	_, checked := newTestWriter()
	_, unchecked := newTestWriter()

	checked.checkbox(true, "Photographed")
	unchecked.checkbox(false, "Photographed")

	if checked.y != unchecked.y {
		t.Fatalf("cursor advance differs: checked %v, unchecked %v", checked.y, unchecked.y)
	}
	if got, want := checked.y, bodyTop+checkboxRow; got != want {
		t.Fatalf("cursor = %v, want %v", got, want)
	}
}

func TestTextAdvancesByFontSizeAndGap(t *testing.T) {
	_, w := newTestWriter()

	w.text("hello", 10, "")

	if got, want := w.y, bodyTop+10*0.5+trailingGap; got != want {
		t.Fatalf("cursor = %v, want %v", got, want)
	}
}

func TestTextWrapsAndPaginates(t *testing.T) {
	doc, w := newTestWriter()

	// Enough words to wrap far past one page's usable height.
	w.text(strings.TrimSpace(strings.Repeat("alpha beta gamma delta ", 500)), 10, "")

	if doc.PageCount() < 2 {
		t.Fatalf("page count = %d, want at least 2", doc.PageCount())
	}
	if w.y > breakAt+10*0.5+trailingGap {
		t.Fatalf("cursor %v ran past the usable height", w.y)
	}
}

func TestBreakPageResetsCursor(t *testing.T) {
	doc, w := newTestWriter()

	w.y = breakAt + 1
	w.breakPage()

	if w.y != continuedTop {
		t.Fatalf("cursor = %v, want continuation top %v", w.y, continuedTop)
	}
	if doc.PageCount() != 2 {
		t.Fatalf("page count = %d, want 2", doc.PageCount())
	}
}

func TestBreakPageHoldsWithinThreshold(t *testing.T) {
	doc, w := newTestWriter()

	w.y = breakAt
	w.breakPage()

	if w.y != breakAt {
		t.Fatalf("cursor moved to %v; threshold is exclusive", w.y)
	}
	if doc.PageCount() != 1 {
		t.Fatalf("page count = %d, want 1", doc.PageCount())
	}
}
