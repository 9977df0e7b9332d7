// Package pdf renders a validated consent record into the paginated PDF
// document that gets emailed and archived. Layout is deterministic: the
// same record always produces byte-identical output, with the container's
// creation date pinned to the record's submission date.
package pdf

import (
	"bytes"
	"context"
	"fmt"

	"github.com/go-pdf/fpdf"

	"github.com/goliatone/go-consentform/internal/logger"
	"github.com/goliatone/go-consentform/pkg/form"
	"github.com/goliatone/go-consentform/pkg/render"
)

const documentTitle = "Child Photography & Video Consent Form"

var understandBullets = []string{
	"- Images and video may be published online and may be accessible to the public.",
	"- The organisation will not publish my child's full name without additional permission.",
	"- The organisation will use images respectfully and in a manner consistent with its values and policies.",
	"- I will not receive payment for the use of these images or recordings.",
}

var declarationBullets = []string{
	"- I am the parent or legal guardian of the above-named child.",
	"- I have read and understood this consent form.",
	"- I voluntarily agree to the photography and video recording of my child as outlined above.",
}

// Option customises the renderer.
type Option func(*Renderer)

// WithWarnLog overrides where recoverable rendering degradations (a failed
// signature embed) are reported.
func WithWarnLog(fn func(format string, args ...any)) Option {
	return func(r *Renderer) {
		if fn != nil {
			r.warn = fn
		}
	}
}

// Renderer lays out consent records onto A4 pages. It is stateless across
// calls; all cursor and page state lives in a per-call pageWriter.
type Renderer struct {
	warn func(format string, args ...any)
}

// New constructs the PDF renderer applying any provided options.
func New(options ...Option) *Renderer {
	r := &Renderer{warn: logger.Warn}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(r)
	}
	return r
}

func (r *Renderer) Name() string {
	return "pdf"
}

func (r *Renderer) ContentType() string {
	return "application/pdf"
}

// Render produces the consent document for record. It is total over
// validated records: malformed dates render verbatim and signature embed
// failures degrade to a typed-name line instead of aborting.
func (r *Renderer) Render(ctx context.Context, record form.Record) (render.Document, error) {
	if ctx != nil {
		if err := ctx.Err(); err != nil {
			return render.Document{}, err
		}
	}

	doc := fpdf.New("P", "mm", "A4", "")
	doc.SetCreationDate(record.SubmissionDate)
	doc.SetModificationDate(record.SubmissionDate)
	doc.SetAutoPageBreak(false, 0)
	doc.AddPage()

	w := newPageWriter(doc)
	r.layout(w, record)

	if doc.Err() {
		return render.Document{}, fmt.Errorf("pdf: layout document: %w", doc.Error())
	}

	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return render.Document{}, fmt.Errorf("pdf: write document: %w", err)
	}

	return render.Document{
		Bytes:    buf.Bytes(),
		Filename: render.Filename(record.ChildName, record.SubmissionDate),
		Pages:    doc.PageCount(),
	}, nil
}

// layout walks the fixed section order. The order is part of the document
// contract and never varies with the record's content; only the values and
// the conditional detail lines do.
func (r *Renderer) layout(w *pageWriter, record form.Record) {
	org := record.Organisation

	w.header(org.Name, documentTitle)

	w.text("ORGANISATION DETAILS", 12, "B")
	w.text("Organisation Name: "+org.Name, 10, "")
	w.text("Address: "+org.Address, 10, "")
	w.text("Phone: "+org.Phone, 10, "")
	w.text("Email: "+org.Email, 10, "")
	w.gap(5)

	w.text("1. CHILD DETAILS", 12, "B")
	w.text("Child's Full Name: "+record.ChildName, 10, "B")
	w.text("Date of Birth: "+record.DOBDisplay(), 10, "")
	w.text("Address: "+record.ChildAddress, 10, "")
	w.gap(5)

	w.text("2. PARENT / GUARDIAN DETAILS", 12, "B")
	w.text("Full Name: "+record.GuardianName, 10, "B")
	w.text("Relationship to Child: "+record.Relationship, 10, "")
	w.text("Phone: "+record.GuardianPhone, 10, "")
	w.text("Email: "+record.GuardianEmail, 10, "")
	w.gap(5)

	w.text("3. CONSENT FOR PHOTOGRAPHY & VIDEO", 12, "B")
	w.text("Consent for the above-named child to be photographed and/or video recorded:", 10, "")
	w.gap(2)
	w.checkbox(record.PhotographyConsent == form.ChoiceYes, "I DO give consent for my child to be photographed and/or videoed.")
	w.checkbox(record.PhotographyConsent == form.ChoiceNo, "I DO NOT give consent for my child to be photographed and/or videoed.")
	w.text("This applies during activities, events, classes, programs, or related activities conducted by "+org.Name+".", 9, "")
	w.gap(3)

	w.text("4. USE OF IMAGES AND VIDEO", 12, "B")
	w.text("Photographs and/or video recordings may be used for social media, the organisation website, promotional materials (print and digital), advertising and marketing campaigns, newsletters, and media releases.", 10, "")
	w.gap(2)
	w.checkbox(record.UseOfImagesConsent, "I agree to the use of images and video as described above.")
	w.gap(2)
	w.text("I understand that:", 10, "B")
	for _, bullet := range understandBullets {
		w.text(bullet, 9, "")
	}
	w.gap(3)

	w.text("5. DURATION OF CONSENT", 12, "B")
	w.text("This consent:", 10, "")
	w.gap(2)
	w.checkbox(record.Duration == form.DurationCurrentYear, "Applies for the current calendar year only")
	w.checkbox(record.Duration == form.DurationFullInvolvement, "Applies for the duration of my child's involvement with the organisation")
	if record.Duration == form.DurationOther {
		w.checkbox(true, "Other: "+form.CleanText(record.DurationOtherText))
	} else {
		w.checkbox(false, "Other")
	}
	w.gap(2)
	w.text("I understand that I may withdraw consent in writing at any time, however withdrawal will not affect materials already published.", 9, "")
	w.gap(3)

	w.text("6. MEDICAL / SAFETY CONSIDERATIONS", 12, "B")
	w.text("Are there any legal, custody, or safety concerns regarding publication of your child's image?", 10, "")
	w.gap(2)
	w.checkbox(!record.HasSafetyConcerns(), "No")
	if record.HasSafetyConcerns() {
		w.checkbox(true, "Yes")
		w.gap(2)
		w.text("Details: "+form.CleanText(record.SafetyDetails), 9, "")
	} else {
		w.checkbox(false, "Yes")
	}
	w.gap(5)

	w.text("7. DECLARATION", 12, "B")
	w.text("I confirm that:", 10, "B")
	for _, bullet := range declarationBullets {
		w.text(bullet, 9, "")
	}
	w.gap(8)

	w.text("PARENT / GUARDIAN SIGNATURE", 12, "B")
	w.gap(2)
	r.signature(w, record)

	w.text("Printed Name: "+record.GuardianName, 10, "")
	w.text("Date: "+record.SubmissionDate.Format("2 January 2006"), 10, "")
}

// signature embeds the drawn signature image, or renders the typed
// signature in an italic face. Image failures are absorbed: the guardian's
// typed name stands in and rendering continues.
func (r *Renderer) signature(w *pageWriter, record form.Record) {
	switch record.Signature.Kind {
	case form.SignatureDrawn:
		data, err := record.Signature.ImagePNG()
		if err == nil {
			err = w.image("signature", data, signatureImageW, signatureImageH, signatureImageGap)
		}
		if err != nil {
			r.warn("pdf: embedding signature image failed, using printed name: %v", err)
			w.text("Signature: "+record.GuardianName, 10, "")
		}
	case form.SignatureTyped:
		w.signatureText(form.CleanText(record.Signature.Value))
	default:
		w.text("Signature: Not provided", 10, "")
	}
}
