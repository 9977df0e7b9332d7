package render

import (
	"context"

	"github.com/goliatone/go-consentform/pkg/form"
)

// Renderer turns a validated consent record into a document artifact. A
// renderer must be a pure function of the record: two calls with the same
// record produce byte-identical output, and the record is never mutated.
type Renderer interface {
	Name() string
	ContentType() string
	Render(ctx context.Context, record form.Record) (Document, error)
}
