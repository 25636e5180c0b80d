package provider

import (
	"context"

	"github.com/inkwell-ai/inkwell/internal/email"
)

// Fake is an in-memory provider for tests. It records the last prompt it
// received and returns a canned reply or error.
type Fake struct {
	Reply      string
	Err        error
	LastPrompt email.Prompt
	Calls      int
}

func NewFake(reply string) *Fake {
	return &Fake{Reply: reply}
}

func (f *Fake) Generate(_ context.Context, prompt email.Prompt) (string, error) {
	f.Calls++
	f.LastPrompt = prompt
	if f.Err != nil {
		return "", f.Err
	}
	return f.Reply, nil
}
