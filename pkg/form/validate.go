package form

import "strings"

// ValidationError reports the first check a payload failed. Message is the
// human-readable reason shown back to the submitter.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

func invalid(message string) *ValidationError {
	return &ValidationError{Message: message}
}

// Validate runs the fixed-order, first-error-wins checks over the raw
// payload. The order and wording match the browser form so the server and
// the client report the same message for the same mistake. A nil return
// means the payload can be turned into a Record.
func (p Payload) Validate() error {
	if strings.TrimSpace(p.ChildName) == "" {
		return invalid("Child's full name is required")
	}
	if strings.TrimSpace(p.ChildDOB) == "" {
		return invalid("Child's date of birth is required")
	}
	if strings.TrimSpace(p.ChildAddress) == "" {
		return invalid("Child's address is required")
	}

	if strings.TrimSpace(p.ParentName) == "" {
		return invalid("Parent/Guardian name is required")
	}
	if strings.TrimSpace(p.RelationshipToChild) == "" {
		return invalid("Relationship to child is required")
	}
	if strings.TrimSpace(p.ParentPhone) == "" {
		return invalid("Parent phone number is required")
	}
	if strings.TrimSpace(p.ParentEmail) == "" {
		return invalid("Parent email address is required")
	}
	if !strings.Contains(p.ParentEmail, "@") {
		return invalid("Please enter a valid email address")
	}

	consent := strings.TrimSpace(p.PhotographyConsent)
	if consent != string(ChoiceYes) && consent != string(ChoiceNo) {
		return invalid(`Please select either "I DO give consent" or "I DO NOT give consent" for photography and video`)
	}

	if !p.UseOfImagesConsent {
		return invalid("Please confirm your consent for the use of images and video as described above")
	}

	selected := 0
	for _, set := range []bool{p.DurationCurrentYear, p.DurationFullInvolvement, p.DurationOther} {
		if set {
			selected++
		}
	}
	if selected == 0 {
		return invalid("Please select a duration for this consent")
	}
	if selected > 1 {
		return invalid("Please select only one duration for this consent")
	}
	if p.DurationOther && strings.TrimSpace(p.DurationOtherText) == "" {
		return invalid(`Please specify the duration in the "Other" field`)
	}

	if strings.TrimSpace(p.SafetyConcerns) == string(ChoiceYes) && strings.TrimSpace(p.SafetyConcernsDetails) == "" {
		return invalid("Please provide details about safety concerns")
	}

	switch SignatureKind(strings.TrimSpace(p.SignatureType)) {
	case SignatureDrawn:
		if strings.TrimSpace(p.Signature) == "" {
			return invalid("Please provide your signature")
		}
	case SignatureTyped:
		if strings.TrimSpace(p.Signature) == "" {
			return invalid("Please type your signature")
		}
	default:
		return invalid("Please provide your signature")
	}

	return nil
}
