// Package testsupport provides shared fixtures and doubles for the consent
// form test suites.
package testsupport

import (
	"context"
	"sync"
	"time"

	"github.com/goliatone/go-consentform/pkg/form"
	"github.com/goliatone/go-consentform/pkg/mailer"
)

// FixedTime is the pinned submission instant used across deterministic
// rendering tests.
var FixedTime = time.Date(2026, time.April, 12, 10, 30, 0, 0, time.UTC)

// TinyPNGBase64 is a valid 1x1 PNG, small enough to inline and real enough
// to survive image verification.
const TinyPNGBase64 = "iVBORw0KGgoAAAANSUhEUgAAAAEAAAABCAYAAAAfFcSJAAAADUlEQVR42mP8z8BQDwAEhQGAhKmMIQAAAABJRU5ErkJggg=="

// DrawnSignatureDataURL returns the data URL the capture widget would post
// for a drawn signature.
func DrawnSignatureDataURL() string {
	return "data:image/png;base64," + TinyPNGBase64
}

// Organisation returns the fixture organisation identity.
func Organisation() form.Organisation {
	return form.Organisation{
		Name:    "Caroline Small School of Dance",
		Address: "1 Studio Lane, Brisbane QLD",
		Phone:   "07 5555 0100",
		Email:   "hello@example.com",
	}
}

// ValidPayload returns a payload that passes every validation check: the
// typed-signature scenario with current-year duration and no safety
// concerns.
func ValidPayload() form.Payload {
	return form.Payload{
		ChildName:           "Ava Lee",
		ChildDOB:            "2016-04-01",
		ChildAddress:        "12 Example St, Brisbane QLD",
		ParentName:          "Jane Lee",
		RelationshipToChild: "Mother",
		ParentPhone:         "0400 000 000",
		ParentEmail:         "jane@example.com",
		PhotographyConsent:  "yes",
		UseOfImagesConsent:  true,
		DurationCurrentYear: true,
		SafetyConcerns:      "no",
		Signature:           "Jane Lee",
		SignatureType:       "type",
		SubmissionDate:      FixedTime.Format(time.RFC3339),
	}
}

// ValidRecord builds the validated record for ValidPayload with the
// fixture organisation and pinned clock.
func ValidRecord() form.Record {
	return ValidPayload().Record(Organisation(), FixedTime)
}

// CaptureSender is a mailer.Sender double that records every message and
// fails on demand.
type CaptureSender struct {
	mu sync.Mutex

	// FailFor maps recipient addresses to the error Send should return.
	FailFor map[string]error

	// Sent holds successfully accepted messages in order.
	Sent []mailer.Message
}

// Send records the message unless FailFor names its recipient.
func (s *CaptureSender) Send(_ context.Context, msg mailer.Message) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err, ok := s.FailFor[msg.To]; ok && err != nil {
		return err
	}
	s.Sent = append(s.Sent, msg)
	return nil
}

// Messages returns a copy of the sent messages.
func (s *CaptureSender) Messages() []mailer.Message {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]mailer.Message, len(s.Sent))
	copy(out, s.Sent)
	return out
}
