package submission_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/goliatone/go-consentform/pkg/form"
	"github.com/goliatone/go-consentform/pkg/render"
	"github.com/goliatone/go-consentform/pkg/submission"
	"github.com/goliatone/go-consentform/pkg/testsupport"
)

const orgRecipient = "office@example.org"

// countingRenderer wraps a stub document so tests can assert the
// render-once invariant without producing real PDFs.
type countingRenderer struct {
	calls int
}

func (r *countingRenderer) Name() string        { return "pdf" }
func (r *countingRenderer) ContentType() string { return "application/pdf" }
func (r *countingRenderer) Render(_ context.Context, record form.Record) (render.Document, error) {
	r.calls++
	return render.Document{
		Bytes:    []byte("%PDF-stub"),
		Filename: render.Filename(record.ChildName, record.SubmissionDate),
		Pages:    1,
	}, nil
}

func newOrchestrator(sender *testsupport.CaptureSender, renderer render.Renderer, extra ...submission.Option) *submission.Orchestrator {
	registry := render.NewRegistry()
	registry.MustRegister(renderer)

	options := []submission.Option{
		submission.WithSender(sender),
		submission.WithRegistry(registry),
		submission.WithOrganisation(testsupport.Organisation()),
		submission.WithSenderIdentity("Caroline Small School of Dance <onboarding@resend.dev>"),
		submission.WithPrimaryRecipient(orgRecipient),
		submission.WithClock(func() time.Time { return testsupport.FixedTime }),
		submission.WithSubmissionIDs(func() string { return "sub-0001" }),
	}
	options = append(options, extra...)
	return submission.New(options...)
}

func TestSubmitEndToEnd(t *testing.T) {
	sender := &testsupport.CaptureSender{}
	renderer := &countingRenderer{}
	orchestrator := newOrchestrator(sender, renderer)

	result := orchestrator.Submit(context.Background(), testsupport.ValidPayload())

	if !result.OK {
		t.Fatalf("submit failed: %+v", result)
	}
	if result.Message != "Form submitted successfully" {
		t.Fatalf("message = %q", result.Message)
	}
	if result.SubmissionID != "sub-0001" {
		t.Fatalf("submission id = %q", result.SubmissionID)
	}
	if !result.GuardianCopySent {
		t.Fatal("expected guardian copy to be sent")
	}
	if renderer.calls != 1 {
		t.Fatalf("render calls = %d, want exactly one", renderer.calls)
	}

	sent := sender.Messages()
	if len(sent) != 2 {
		t.Fatalf("sends = %d, want 2", len(sent))
	}

	primary, guardian := sent[0], sent[1]
	if primary.To != orgRecipient {
		t.Fatalf("primary recipient = %q", primary.To)
	}
	if primary.Subject != "New Photo Consent Form: Ava Lee" {
		t.Fatalf("primary subject = %q", primary.Subject)
	}
	if guardian.To != "jane@example.com" {
		t.Fatalf("guardian recipient = %q", guardian.To)
	}
	if !strings.Contains(guardian.Subject, "Caroline Small School of Dance") {
		t.Fatalf("guardian subject = %q", guardian.Subject)
	}

	if len(primary.Attachments) != 1 || len(guardian.Attachments) != 1 {
		t.Fatal("both messages must carry the document attachment")
	}
	if primary.Attachments[0].Filename != "consent_Ava_Lee_2026-04-12.pdf" {
		t.Fatalf("attachment filename = %q", primary.Attachments[0].Filename)
	}
	if string(primary.Attachments[0].Content) != string(guardian.Attachments[0].Content) {
		t.Fatal("both sends must reuse the same rendered document")
	}

	if !strings.Contains(primary.HTML, "Current calendar year only") {
		t.Fatal("summary must carry the duration selection")
	}
	if !strings.Contains(primary.HTML, "Safety Concerns:</strong> No") {
		t.Fatal("summary must state the absence of safety concerns")
	}
	if strings.Contains(primary.HTML, "Yes - ") {
		t.Fatal("summary must omit the safety detail line when no concern was raised")
	}
}

func TestSubmitValidationStopsBeforeRenderOrSend(t *testing.T) {
	sender := &testsupport.CaptureSender{}
	renderer := &countingRenderer{}
	orchestrator := newOrchestrator(sender, renderer)

	payload := testsupport.ValidPayload()
	payload.ParentEmail = "not-an-email"

	result := orchestrator.Submit(context.Background(), payload)

	if result.OK {
		t.Fatal("expected validation failure")
	}
	if result.Message != "Please enter a valid email address" {
		t.Fatalf("message = %q", result.Message)
	}
	if result.Hint != "" {
		t.Fatalf("validation failures carry no hint, got %q", result.Hint)
	}
	if renderer.calls != 0 {
		t.Fatalf("render calls = %d, want none before validation passes", renderer.calls)
	}
	if len(sender.Messages()) != 0 {
		t.Fatal("nothing may be sent for an invalid payload")
	}
}

func TestSubmitPrimaryDeliveryFailureIsFatal(t *testing.T) {
	sender := &testsupport.CaptureSender{
		FailFor: map[string]error{orgRecipient: errors.New("recipient rejected")},
	}
	orchestrator := newOrchestrator(sender, &countingRenderer{})

	result := orchestrator.Submit(context.Background(), testsupport.ValidPayload())

	if result.OK {
		t.Fatal("primary delivery failure must fail the submission")
	}
	if result.Hint == "" {
		t.Fatal("primary delivery failure must carry an operator hint")
	}
	if result.GuardianCopySent {
		t.Fatal("guardian copy must not be reported sent")
	}
	if len(sender.Messages()) != 0 {
		t.Fatalf("sends = %d, want none recorded", len(sender.Messages()))
	}
}

func TestSubmitGuardianDeliveryFailureIsBestEffort(t *testing.T) {
	sender := &testsupport.CaptureSender{
		FailFor: map[string]error{"jane@example.com": errors.New("mailbox full")},
	}
	orchestrator := newOrchestrator(sender, &countingRenderer{})

	result := orchestrator.Submit(context.Background(), testsupport.ValidPayload())

	if !result.OK {
		t.Fatalf("guardian failure must not fail the submission: %+v", result)
	}
	if result.GuardianCopySent {
		t.Fatal("guardian copy must be reported unsent")
	}
	if sends := sender.Messages(); len(sends) != 1 || sends[0].To != orgRecipient {
		t.Fatalf("expected exactly the organisational send, got %+v", sends)
	}
}

func TestSubmitGuardianCopyPolicy(t *testing.T) {
	payload := testsupport.ValidPayload()
	payload.ParentEmail = orgRecipient

	t.Run("skip when same as primary", func(t *testing.T) {
		sender := &testsupport.CaptureSender{}
		orchestrator := newOrchestrator(sender, &countingRenderer{},
			submission.WithGuardianCopyPolicy(submission.GuardianCopySkipSameAsPrimary))

		result := orchestrator.Submit(context.Background(), payload)
		if !result.OK {
			t.Fatalf("submit failed: %+v", result)
		}
		if result.GuardianCopySent {
			t.Fatal("guardian copy must be skipped")
		}
		if len(sender.Messages()) != 1 {
			t.Fatalf("sends = %d, want 1", len(sender.Messages()))
		}
	})

	t.Run("send by default", func(t *testing.T) {
		sender := &testsupport.CaptureSender{}
		orchestrator := newOrchestrator(sender, &countingRenderer{})

		result := orchestrator.Submit(context.Background(), payload)
		if !result.OK {
			t.Fatalf("submit failed: %+v", result)
		}
		if !result.GuardianCopySent {
			t.Fatal("default policy keeps the courtesy copy")
		}
		if len(sender.Messages()) != 2 {
			t.Fatalf("sends = %d, want 2", len(sender.Messages()))
		}
	})
}

func TestSubmitEscapesMarkupInSummaries(t *testing.T) {
	sender := &testsupport.CaptureSender{}
	orchestrator := newOrchestrator(sender, &countingRenderer{})

	payload := testsupport.ValidPayload()
	payload.ParentName = `<script>alert("x")</script>Jane`

	result := orchestrator.Submit(context.Background(), payload)
	if !result.OK {
		t.Fatalf("submit failed: %+v", result)
	}

	for _, msg := range sender.Messages() {
		if strings.Contains(msg.HTML, "<script>") {
			t.Fatalf("summary to %s contains unescaped markup", msg.To)
		}
		if !strings.Contains(msg.HTML, "&lt;script&gt;") {
			t.Fatalf("summary to %s should contain the escaped name", msg.To)
		}
	}
}

func TestSubmitSafetyDetailsIncludedWhenRaised(t *testing.T) {
	sender := &testsupport.CaptureSender{}
	orchestrator := newOrchestrator(sender, &countingRenderer{})

	payload := testsupport.ValidPayload()
	payload.SafetyConcerns = "yes"
	payload.SafetyConcernsDetails = "Shared custody arrangement"

	result := orchestrator.Submit(context.Background(), payload)
	if !result.OK {
		t.Fatalf("submit failed: %+v", result)
	}

	primary := sender.Messages()[0]
	if !strings.Contains(primary.HTML, "Yes - Shared custody arrangement") {
		t.Fatal("summary must carry the safety details when a concern was raised")
	}
}

func TestSubmitConfigurationFailsFast(t *testing.T) {
	orchestrator := submission.New(
		submission.WithOrganisation(testsupport.Organisation()),
		submission.WithPrimaryRecipient(orgRecipient),
	)

	// Payload is invalid too; the configuration check must win because it
	// runs first and its message targets the operator, not the submitter.
	payload := testsupport.ValidPayload()
	payload.ParentEmail = "not-an-email"

	result := orchestrator.Submit(context.Background(), payload)

	if result.OK {
		t.Fatal("expected configuration failure")
	}
	if result.Hint == "" {
		t.Fatal("configuration failures must carry an operator hint")
	}
	if result.Message == "Please enter a valid email address" {
		t.Fatal("configuration check must run before validation")
	}
}
