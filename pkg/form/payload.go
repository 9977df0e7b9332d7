package form

import (
	"strings"
	"time"
)

// Payload mirrors the JSON body posted by the consent form. Field names
// match the browser form exactly so the server accepts submissions from the
// existing UI without translation.
type Payload struct {
	ChildName    string `json:"childName"`
	ChildDOB     string `json:"childDOB"`
	ChildAddress string `json:"childAddress"`

	ParentName          string `json:"parentName"`
	RelationshipToChild string `json:"relationshipToChild"`
	ParentPhone         string `json:"parentPhone"`
	ParentEmail         string `json:"parentEmail"`

	SchoolAddress string `json:"schoolAddress,omitempty"`
	SchoolPhone   string `json:"schoolPhone,omitempty"`
	SchoolEmail   string `json:"schoolEmail,omitempty"`

	PhotographyConsent string `json:"photographyConsent"`
	UseOfImagesConsent bool   `json:"useOfImagesConsent"`

	DurationCurrentYear     bool   `json:"durationCurrentYear"`
	DurationFullInvolvement bool   `json:"durationFullInvolvement"`
	DurationOther           bool   `json:"durationOther"`
	DurationOtherText       string `json:"durationOtherText,omitempty"`

	SafetyConcerns        string `json:"safetyConcerns"`
	SafetyConcernsDetails string `json:"safetyConcernsDetails,omitempty"`

	Signature     string `json:"signature"`
	SignatureType string `json:"signatureType"`

	SubmissionDate string `json:"submissionDate,omitempty"`
}

// Record builds a validated Record from the payload. Callers must run
// Validate first; Record resolves the enumerated selections without
// re-checking them. The organisation identity comes from org, with the
// payload's school contact fields winning when present. now supplies the
// submission date when the payload omits one.
func (p Payload) Record(org Organisation, now time.Time) Record {
	if addr := strings.TrimSpace(p.SchoolAddress); addr != "" {
		org.Address = addr
	}
	if phone := strings.TrimSpace(p.SchoolPhone); phone != "" {
		org.Phone = phone
	}
	if email := strings.TrimSpace(p.SchoolEmail); email != "" {
		org.Email = email
	}

	submitted := now
	if raw := strings.TrimSpace(p.SubmissionDate); raw != "" {
		if t, err := time.Parse(time.RFC3339, raw); err == nil {
			submitted = t
		}
	}

	return Record{
		Organisation: org,

		ChildName:    strings.TrimSpace(p.ChildName),
		ChildDOB:     strings.TrimSpace(p.ChildDOB),
		ChildAddress: strings.TrimSpace(p.ChildAddress),

		GuardianName:  strings.TrimSpace(p.ParentName),
		Relationship:  strings.TrimSpace(p.RelationshipToChild),
		GuardianPhone: strings.TrimSpace(p.ParentPhone),
		GuardianEmail: strings.TrimSpace(p.ParentEmail),

		PhotographyConsent: Choice(strings.TrimSpace(p.PhotographyConsent)),
		UseOfImagesConsent: p.UseOfImagesConsent,

		Duration:          p.duration(),
		DurationOtherText: strings.TrimSpace(p.DurationOtherText),

		SafetyConcerns: Choice(strings.TrimSpace(p.SafetyConcerns)),
		SafetyDetails:  strings.TrimSpace(p.SafetyConcernsDetails),

		Signature: Signature{
			Kind:  SignatureKind(strings.TrimSpace(p.SignatureType)),
			Value: strings.TrimSpace(p.Signature),
		},

		SubmissionDate: submitted,
	}
}

func (p Payload) duration() Duration {
	switch {
	case p.DurationCurrentYear:
		return DurationCurrentYear
	case p.DurationFullInvolvement:
		return DurationFullInvolvement
	case p.DurationOther:
		return DurationOther
	}
	return ""
}
