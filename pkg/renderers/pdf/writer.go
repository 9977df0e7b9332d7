package pdf

import (
	"bytes"

	"github.com/go-pdf/fpdf"
)

// Layout constants, in millimetres on an A4 page. The usable height runs to
// breakAt (270 of 297); content past that point starts a new page.
const (
	pageMargin   = 20.0
	breakAt      = 270.0
	continuedTop = 20.0
	bodyTop      = 45.0

	headerHeight   = 35.0
	headerTitleY   = 15.0
	headerCaptionY = 25.0

	checkboxSize = 4.0
	checkboxRow  = 6.0
	trailingGap  = 2.0

	signatureImageW   = 80.0
	signatureImageH   = 30.0
	signatureImageGap = 35.0
	signatureTextGap  = 12.0

	fontFamily = "Helvetica"
)

// Header band colour (purple) and reversed text.
var (
	headerFill = [3]int{147, 51, 234}
	headerText = [3]int{255, 255, 255}
)

// pageWriter holds the running layout state for one render call: the fpdf
// handle, the vertical cursor, and the page geometry. It is created inside
// Render and never escapes it.
type pageWriter struct {
	pdf      *fpdf.Fpdf
	y        float64
	pageW    float64
	contentW float64
}

func newPageWriter(pdf *fpdf.Fpdf) *pageWriter {
	pageW, _ := pdf.GetPageSize()
	return &pageWriter{
		pdf:      pdf,
		y:        bodyTop,
		pageW:    pageW,
		contentW: pageW - 2*pageMargin,
	}
}

// breakPage starts a new page when the cursor has run past the usable
// height, resetting the cursor to the continuation top margin. Pages after
// the first carry no header band.
func (w *pageWriter) breakPage() {
	if w.y > breakAt {
		w.pdf.AddPage()
		w.y = continuedTop
	}
}

// text word-wraps s to the content width and emits it line by line,
// checking for a page break before each line. Each wrapped line is atomic:
// it is placed whole on whichever page the cursor lands on. A small fixed
// gap follows the block.
func (w *pageWriter) text(s string, size float64, style string) {
	w.pdf.SetFont(fontFamily, style, size)
	w.pdf.SetTextColor(0, 0, 0)

	lines := w.pdf.SplitText(s, w.contentW)
	for _, line := range lines {
		w.breakPage()
		w.pdf.Text(pageMargin, w.y, line)
		w.y += size * 0.5
	}
	w.y += trailingGap
}

// checkbox draws a square glyph at the left margin with the label to its
// right. A checked box gets two connecting segments forming a tick. Checked
// and unchecked boxes advance the cursor identically so option lists stay
// aligned regardless of state.
func (w *pageWriter) checkbox(checked bool, label string) {
	w.breakPage()

	w.pdf.SetDrawColor(0, 0, 0)
	w.pdf.Rect(pageMargin, w.y-3, checkboxSize, checkboxSize, "D")
	if checked {
		w.pdf.SetLineWidth(0.5)
		w.pdf.Line(pageMargin, w.y-1, pageMargin+2, w.y+1)
		w.pdf.Line(pageMargin+2, w.y+1, pageMargin+4, w.y-3)
	}

	w.pdf.SetFont(fontFamily, "", 10)
	w.pdf.SetTextColor(0, 0, 0)
	w.pdf.Text(pageMargin+6, w.y, label)
	w.y += checkboxRow
}

// gap advances the cursor without emitting anything.
func (w *pageWriter) gap(h float64) {
	w.y += h
}

// header paints the filled band with the organisation name and document
// title in reversed text. It renders once, on the first page only.
func (w *pageWriter) header(orgName, title string) {
	w.pdf.SetFillColor(headerFill[0], headerFill[1], headerFill[2])
	w.pdf.Rect(0, 0, w.pageW, headerHeight, "F")

	w.pdf.SetTextColor(headerText[0], headerText[1], headerText[2])
	w.centeredText(orgName, 18, "B", headerTitleY)
	w.centeredText(title, 11, "B", headerCaptionY)

	w.pdf.SetTextColor(0, 0, 0)
	w.y = bodyTop
}

func (w *pageWriter) centeredText(s string, size float64, style string, y float64) {
	w.pdf.SetFont(fontFamily, style, size)
	width := w.pdf.GetStringWidth(s)
	w.pdf.Text((w.pageW-width)/2, y, s)
}

// image embeds PNG bytes at the cursor position with a fixed size,
// advancing by the image height plus a gap. The error is returned rather
// than left sticky on the fpdf handle so the caller can degrade to a
// textual signature and keep rendering.
func (w *pageWriter) image(name string, data []byte, width, height, advance float64) error {
	w.breakPage()

	opts := fpdf.ImageOptions{ImageType: "PNG"}
	w.pdf.RegisterImageOptionsReader(name, opts, bytes.NewReader(data))
	if w.pdf.Err() {
		err := w.pdf.Error()
		w.pdf.ClearError()
		return err
	}

	w.pdf.ImageOptions(name, pageMargin, w.y, width, height, false, opts, 0, "")
	if w.pdf.Err() {
		err := w.pdf.Error()
		w.pdf.ClearError()
		return err
	}

	w.y += advance
	return nil
}

// signatureText renders a typed signature in a large italic face.
func (w *pageWriter) signatureText(s string) {
	w.breakPage()
	w.pdf.SetFont(fontFamily, "I", 20)
	w.pdf.SetTextColor(0, 0, 0)
	w.pdf.Text(pageMargin, w.y, s)
	w.y += signatureTextGap
}
