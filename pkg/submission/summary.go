package submission

import (
	"embed"
	"fmt"
	"sync"

	"github.com/flosch/pongo2/v6"

	"github.com/goliatone/go-consentform/pkg/form"
)

//go:embed templates/*.html
var embeddedTemplates embed.FS

// summaryBuilder renders the notification bodies from the embedded pongo2
// bundle. Variable interpolation is autoescaped, so user-supplied text
// (names, addresses, safety details) cannot inject markup into the emails.
type summaryBuilder struct {
	mu           sync.RWMutex
	organisation *pongo2.Template
	guardian     *pongo2.Template
}

func newSummaryBuilder() (*summaryBuilder, error) {
	set := pongo2.NewSet("consentform", pongo2.NewFSLoader(embeddedTemplates))

	organisation, err := set.FromFile("templates/organisation.html")
	if err != nil {
		return nil, fmt.Errorf("submission: load organisation template: %w", err)
	}
	guardian, err := set.FromFile("templates/guardian.html")
	if err != nil {
		return nil, fmt.Errorf("submission: load guardian template: %w", err)
	}

	return &summaryBuilder{organisation: organisation, guardian: guardian}, nil
}

func (b *summaryBuilder) organisationHTML(record form.Record, submissionID string) (string, error) {
	return b.execute(b.organisation, record, submissionID)
}

func (b *summaryBuilder) guardianHTML(record form.Record, submissionID string) (string, error) {
	return b.execute(b.guardian, record, submissionID)
}

func (b *summaryBuilder) execute(tpl *pongo2.Template, record form.Record, submissionID string) (string, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	out, err := tpl.Execute(summaryContext(record, submissionID))
	if err != nil {
		return "", fmt.Errorf("submission: execute summary template: %w", err)
	}
	return out, nil
}

// summaryContext re-projects the record into the template context. The
// summary is built from the record's field values, independent of the
// rendered document; the safety-details value only enters the context when
// a concern was raised, so the line is omitted, not blanked.
func summaryContext(record form.Record, submissionID string) pongo2.Context {
	photography := "Consent NOT given"
	if record.PhotographyConsent == form.ChoiceYes {
		photography = "Consent given"
	}

	useOfImages := "Not agreed"
	if record.UseOfImagesConsent {
		useOfImages = "Agreed"
	}

	ctx := pongo2.Context{
		"org_name":            record.Organisation.Name,
		"child_name":          record.ChildName,
		"child_dob":           record.DOBDisplay(),
		"child_address":       record.ChildAddress,
		"guardian_name":       record.GuardianName,
		"relationship":        record.Relationship,
		"guardian_phone":      record.GuardianPhone,
		"guardian_email":      record.GuardianEmail,
		"photography_consent": photography,
		"use_of_images":       useOfImages,
		"duration":            record.DurationLabel(),
		"has_safety_concerns": record.HasSafetyConcerns(),
		"submitted_at":        record.SubmissionDate.Format("2 January 2006 at 3:04 PM"),
		"submission_id":       submissionID,
	}
	if record.HasSafetyConcerns() {
		ctx["safety_details"] = record.SafetyDetails
	}
	return ctx
}
