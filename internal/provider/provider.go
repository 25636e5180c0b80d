// Package provider holds the external text-generation collaborators. The
// composition engine never performs I/O itself; a Provider is handed the
// compiled prompt and returns the raw reply text for parsing.
package provider

import (
	"context"

	"github.com/inkwell-ai/inkwell/internal/email"
)

// Provider is the interface for upstream generation services.
type Provider interface {
	// Generate sends the compiled prompt and returns the raw reply text.
	Generate(ctx context.Context, prompt email.Prompt) (string, error)
}
