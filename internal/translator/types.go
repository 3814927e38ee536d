// Package translator wraps externally hosted language models behind a
// uniform translate capability, tagged with stable identifiers.
package translator

import (
	"context"

	"github.com/clearleaf/leaflet-translation-service/internal/prompt"
)

// Result is the normalized output of one backend invocation. Metadata
// carries backend-reported invocation details (model, token usage, stop
// reason) for observability.
type Result struct {
	Content  string
	Metadata map[string]interface{}
}

// Backend is one callable translation capability. Implementations do not
// retry; any failure of the underlying external call surfaces to the caller
// unmodified.
type Backend interface {
	// ID uniquely identifies which external model is invoked.
	ID() string
	Translate(ctx context.Context, p prompt.Payload) (*Result, error)
}
