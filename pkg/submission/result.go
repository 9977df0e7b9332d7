package submission

// Result is the single response shape every submission resolves to. No
// error type crosses this boundary unformatted: configuration problems,
// validation failures, and delivery failures all normalise here.
type Result struct {
	// OK reports whether the consent record reached the organisation.
	OK bool

	// Message is the human-readable outcome shown to the submitter.
	Message string

	// Hint carries operator-facing guidance for configuration or delivery
	// failures. It is never set for validation failures.
	Hint string

	// SubmissionID identifies this submission in logs and notifications.
	// Empty when the submission failed before a record was accepted.
	SubmissionID string

	// GuardianCopySent reports whether the courtesy copy reached the
	// guardian. The overall result stays OK even when it did not.
	GuardianCopySent bool
}

func failure(message string) Result {
	return Result{Message: message}
}

func failureWithHint(message, hint string) Result {
	return Result{Message: message, Hint: hint}
}
