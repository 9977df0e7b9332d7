package form

import (
	"strings"
	"time"
)

// Choice is a tri-state answer to a yes/no question. The empty value means
// the submitter never picked an option, which validation rejects before a
// record is built.
type Choice string

const (
	ChoiceUnset Choice = ""
	ChoiceYes   Choice = "yes"
	ChoiceNo    Choice = "no"
)

// Duration identifies which consent-duration option was selected. Exactly
// one option is selected on a validated record.
type Duration string

const (
	DurationCurrentYear     Duration = "current-year"
	DurationFullInvolvement Duration = "full-involvement"
	DurationOther           Duration = "other"
)

// SignatureKind distinguishes a drawn signature (raster image captured by
// the browser widget) from a typed one.
type SignatureKind string

const (
	SignatureDrawn SignatureKind = "draw"
	SignatureTyped SignatureKind = "type"
)

// Signature carries the guardian's signature as captured by the form. For
// drawn signatures Value holds a data-URL encoded PNG; for typed signatures
// it holds the text the guardian entered.
type Signature struct {
	Kind  SignatureKind
	Value string
}

// Organisation identifies the party collecting consent. Name comes from
// configuration; the contact fields are carried on the submission payload
// and fall back to configuration when absent.
type Organisation struct {
	Name    string
	Address string
	Phone   string
	Email   string
}

// Record is the validated, immutable representation of one consent
// submission. Build it through Payload.Record after validation; renderers
// and the orchestrator never mutate it.
type Record struct {
	Organisation Organisation

	ChildName    string
	ChildDOB     string
	ChildAddress string

	GuardianName   string
	Relationship   string
	GuardianPhone  string
	GuardianEmail  string

	PhotographyConsent Choice
	UseOfImagesConsent bool

	Duration          Duration
	DurationOtherText string

	SafetyConcerns Choice
	SafetyDetails  string

	Signature Signature

	SubmissionDate time.Time
}

// DOBDisplay formats the child's date of birth the way the form displays
// dates (dd/mm/yyyy). Values that do not parse as an ISO date are returned
// verbatim rather than rejected; the date was already shown to the guardian
// as entered.
func (r Record) DOBDisplay() string {
	return displayDate(r.ChildDOB)
}

// DurationLabel returns the human-readable duration selection, appending
// the free-text qualifier for the "other" option.
func (r Record) DurationLabel() string {
	switch r.Duration {
	case DurationCurrentYear:
		return "Current calendar year only"
	case DurationFullInvolvement:
		return "Full duration of involvement"
	case DurationOther:
		return "Other: " + CleanText(r.DurationOtherText)
	}
	return ""
}

// HasSafetyConcerns reports whether the guardian flagged legal, custody, or
// safety concerns.
func (r Record) HasSafetyConcerns() bool {
	return r.SafetyConcerns == ChoiceYes
}

func displayDate(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if t, err := time.Parse("2006-01-02", trimmed); err == nil {
		return t.Format("02/01/2006")
	}
	if t, err := time.Parse(time.RFC3339, trimmed); err == nil {
		return t.Format("02/01/2006")
	}
	return trimmed
}
