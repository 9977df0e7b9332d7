// Package mailer defines the outbound delivery capability used by the
// submission pipeline. The pipeline never talks to a provider directly; it
// hands a composed Message to a Sender, which makes the delivery policy
// testable with in-memory doubles.
package mailer

import "context"

// Attachment is a named binary payload attached to a message. The same
// attachment bytes may be reused across messages; senders must not mutate
// them.
type Attachment struct {
	Filename string
	Content  []byte
}

// Message is one outbound email.
type Message struct {
	From        string
	To          string
	Subject     string
	HTML        string
	Attachments []Attachment
}

// Sender delivers a message, returning an error when the provider rejects
// it. Implementations must not retry; the submission pipeline reports each
// failure exactly once.
type Sender interface {
	Send(ctx context.Context, msg Message) error
}
