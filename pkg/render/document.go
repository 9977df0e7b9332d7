package render

import (
	"regexp"
	"time"
)

// Document is an immutable rendered artifact. Ownership transfers to the
// caller, which may attach the same bytes to any number of outbound
// messages without re-rendering.
type Document struct {
	// Bytes holds the binary document content.
	Bytes []byte

	// Filename is derived deterministically from the record (child name and
	// submission date), so the same submission always produces the same
	// attachment name.
	Filename string

	// Pages reports how many pages the layout produced.
	Pages int
}

var whitespaceRun = regexp.MustCompile(`\s+`)

// Filename builds the canonical attachment name for a consent document:
// consent_<Child_Name>_<yyyy-mm-dd>.pdf with whitespace collapsed to
// underscores.
func Filename(childName string, submitted time.Time) string {
	name := whitespaceRun.ReplaceAllString(childName, "_")
	return "consent_" + name + "_" + submitted.Format("2006-01-02") + ".pdf"
}
