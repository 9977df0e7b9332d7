// Package submission drives one consent submission end to end: validate
// the raw payload, render the consent document once, and deliver it to the
// organisation (fatal on failure) and the guardian (best effort).
package submission

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/goliatone/go-consentform/internal/logger"
	"github.com/goliatone/go-consentform/pkg/form"
	"github.com/goliatone/go-consentform/pkg/mailer"
	"github.com/goliatone/go-consentform/pkg/render"
	"github.com/goliatone/go-consentform/pkg/renderers/pdf"
)

const defaultRendererName = "pdf"

// GuardianCopyPolicy controls when the courtesy copy to the guardian is
// attempted.
type GuardianCopyPolicy int

const (
	// GuardianCopyAlways sends the guardian copy whenever the address is
	// plausible, even when it matches the organisational recipient.
	GuardianCopyAlways GuardianCopyPolicy = iota

	// GuardianCopySkipSameAsPrimary suppresses the copy when the guardian's
	// address equals the organisational recipient, avoiding a duplicate in
	// the same inbox.
	GuardianCopySkipSameAsPrimary
)

// Option customises the orchestrator configuration.
type Option func(*Orchestrator)

// WithSender injects the outbound delivery capability.
func WithSender(sender mailer.Sender) Option {
	return func(o *Orchestrator) {
		o.sender = sender
	}
}

// WithRegistry injects a renderer registry.
func WithRegistry(registry *render.Registry) Option {
	return func(o *Orchestrator) {
		o.registry = registry
	}
}

// WithDefaultRenderer overrides the renderer used for the attached
// document.
func WithDefaultRenderer(name string) Option {
	return func(o *Orchestrator) {
		o.defaultRenderer = name
	}
}

// WithOrganisation sets the organisation identity stamped onto records.
func WithOrganisation(org form.Organisation) Option {
	return func(o *Orchestrator) {
		o.org = org
	}
}

// WithSenderIdentity sets the from-identity used on outbound messages, for
// example "Caroline Small School of Dance <onboarding@resend.dev>".
func WithSenderIdentity(from string) Option {
	return func(o *Orchestrator) {
		o.from = strings.TrimSpace(from)
	}
}

// WithPrimaryRecipient sets the organisational address that must receive
// every consent form.
func WithPrimaryRecipient(to string) Option {
	return func(o *Orchestrator) {
		o.primaryTo = strings.TrimSpace(to)
	}
}

// WithGuardianCopyPolicy configures when the guardian courtesy copy is
// attempted.
func WithGuardianCopyPolicy(policy GuardianCopyPolicy) Option {
	return func(o *Orchestrator) {
		o.guardianPolicy = policy
	}
}

// WithClock overrides the wall clock used to default missing submission
// dates. Tests pin this for deterministic documents.
func WithClock(now func() time.Time) Option {
	return func(o *Orchestrator) {
		if now != nil {
			o.now = now
		}
	}
}

// WithSubmissionIDs overrides the submission reference generator.
func WithSubmissionIDs(gen func() string) Option {
	return func(o *Orchestrator) {
		if gen != nil {
			o.newID = gen
		}
	}
}

// Orchestrator coordinates validation, rendering, and delivery for consent
// submissions. Each Submit call is independent; the orchestrator holds no
// state across submissions.
type Orchestrator struct {
	registry        *render.Registry
	defaultRenderer string
	sender          mailer.Sender
	summaries       *summaryBuilder
	org             form.Organisation
	from            string
	primaryTo       string
	guardianPolicy  GuardianCopyPolicy
	now             func() time.Time
	newID           func() string
	initialiseErr   error
}

// New constructs an Orchestrator applying any provided options. The PDF
// renderer and embedded summary templates are wired in by default so
// callers only have to supply delivery configuration.
func New(options ...Option) *Orchestrator {
	o := &Orchestrator{
		defaultRenderer: defaultRendererName,
		now:             time.Now,
		newID:           uuid.NewString,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(o)
	}

	if o.registry == nil {
		o.registry = render.NewRegistry()
		o.registry.MustRegister(pdf.New())
	}
	if o.defaultRenderer == "" {
		o.defaultRenderer = defaultRendererName
	}

	summaries, err := newSummaryBuilder()
	if err != nil {
		o.initialiseErr = err
	} else {
		o.summaries = summaries
	}

	return o
}

// Submit runs one consent submission. The returned Result is the complete
// outcome; no error escapes unformatted. Configuration problems fail fast
// before validation, validation failures report the first violated check,
// and delivery follows the asymmetric policy: the organisational send is
// the success criterion, the guardian copy is best effort.
func (o *Orchestrator) Submit(ctx context.Context, payload form.Payload) Result {
	if ctx == nil {
		ctx = context.Background()
	}

	if hint, ok := o.configProblem(); ok {
		logger.Warn("submission: refused, service not configured: %s", hint)
		return failureWithHint("The service is not configured to deliver consent forms.", hint)
	}

	if err := payload.Validate(); err != nil {
		return failure(err.Error())
	}

	record := payload.Record(o.org, o.now())
	submissionID := o.newID()

	renderer, err := o.registry.Get(o.defaultRenderer)
	if err != nil {
		logger.Warn("submission %s: resolve renderer: %v", submissionID, err)
		return failureWithHint("Failed to process form submission.", "no document renderer is registered; check the service wiring")
	}

	// One render per submission; the same document is attached to both
	// sends.
	doc, err := renderer.Render(ctx, record)
	if err != nil {
		logger.Warn("submission %s: render document: %v", submissionID, err)
		return failure("Failed to generate the consent document.")
	}
	attachment := mailer.Attachment{Filename: doc.Filename, Content: doc.Bytes}

	orgHTML, err := o.summaries.organisationHTML(record, submissionID)
	if err != nil {
		logger.Warn("submission %s: build organisation summary: %v", submissionID, err)
		return failure("Failed to process form submission.")
	}

	err = o.sender.Send(ctx, mailer.Message{
		From:        o.from,
		To:          o.primaryTo,
		Subject:     "New Photo Consent Form: " + record.ChildName,
		HTML:        orgHTML,
		Attachments: []mailer.Attachment{attachment},
	})
	if err != nil {
		logger.Warn("submission %s: organisational delivery failed: %v", submissionID, err)
		return failureWithHint(
			"Failed to deliver the consent form to the organisation.",
			"check the delivery provider's sender identity and recipient restrictions",
		)
	}
	logger.Info("submission %s: delivered to organisation (%d pages)", submissionID, doc.Pages)

	guardianSent := o.sendGuardianCopy(ctx, record, attachment, submissionID)

	return Result{
		OK:               true,
		Message:          "Form submitted successfully",
		SubmissionID:     submissionID,
		GuardianCopySent: guardianSent,
	}
}

// sendGuardianCopy attempts the courtesy copy. Failures are logged and
// absorbed: the organisational copy already succeeded, which is the
// operation's guarantee.
func (o *Orchestrator) sendGuardianCopy(ctx context.Context, record form.Record, attachment mailer.Attachment, submissionID string) bool {
	if !strings.Contains(record.GuardianEmail, "@") {
		return false
	}
	if o.guardianPolicy == GuardianCopySkipSameAsPrimary && strings.EqualFold(record.GuardianEmail, o.primaryTo) {
		logger.Debug("submission %s: guardian copy skipped, address matches organisational recipient", submissionID)
		return false
	}

	html, err := o.summaries.guardianHTML(record, submissionID)
	if err != nil {
		logger.Warn("submission %s: build guardian summary: %v", submissionID, err)
		return false
	}

	err = o.sender.Send(ctx, mailer.Message{
		From:        o.from,
		To:          record.GuardianEmail,
		Subject:     "Your Photo & Video Consent Form - " + record.Organisation.Name,
		HTML:        html,
		Attachments: []mailer.Attachment{attachment},
	})
	if err != nil {
		logger.Warn("submission %s: guardian copy failed: %v", submissionID, err)
		return false
	}
	return true
}

// configProblem reports the first missing piece of delivery configuration.
// These are operator mistakes, surfaced with a hint distinct from
// validation messages and checked before any validation or rendering runs.
func (o *Orchestrator) configProblem() (string, bool) {
	switch {
	case o.initialiseErr != nil:
		return o.initialiseErr.Error(), true
	case o.sender == nil:
		return "no delivery sender configured; set the Resend API key", true
	case o.from == "":
		return "no sender identity configured; set delivery.from", true
	case o.primaryTo == "":
		return "no organisational recipient configured; set delivery.organisation_to", true
	case strings.TrimSpace(o.org.Name) == "":
		return "no organisation name configured; set organisation.name", true
	}
	return "", false
}
