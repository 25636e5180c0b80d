package email

import (
	"fmt"
	"strings"
)

// Prompt is what goes to the generation provider: a preset-selected system
// role, the compiled instruction block, and the creativity dial normalized
// to [0,1].
type Prompt struct {
	SystemRole   string
	Instructions string
	Temperature  float64
}

// Compile derives the full prompt from a request. It is pure: the same
// request always compiles to byte-identical output. Instruction order is a
// contract — structural directives come before free-form ones so that later
// lines cannot contradict earlier formatting rules.
func Compile(req Request) Prompt {
	lines := []string{"Generate an email with the following specifications:"}

	add := func(format string, args ...any) {
		lines = append(lines, fmt.Sprintf(format, args...))
	}

	// Language override leads so every following instruction is read in its
	// light. English is the default and produces nothing.
	if d, ok := languageCatalog[req.Language]; ok {
		add("- Language: %s", d)
	}

	add("- Tone: %s", toneCatalog[toneScale.Level(req.Tone)])
	add("- Length: %s", lengthCatalog[lengthScale.Level(req.Length)])
	add("- Politeness: %s", politenessCatalog[politenessScale.Level(req.Politeness)])
	add("- Call to action: %s", ctaCatalog[ctaScale.Level(req.CTAStrength)])
	if d, ok := urgencyCatalog[urgencyScale.Level(req.Urgency)]; ok {
		add("- Urgency: convey %s", d)
	}

	if d, ok := audienceCatalog[req.Audience]; ok {
		add("- Audience: the email is addressed to %s", d)
	}
	if d, ok := purposeCatalog[req.Purpose]; ok {
		add("- Purpose: the email is %s", d)
	}
	if d, ok := industryCatalog[req.Industry]; ok {
		add("- Industry: the email relates to %s", d)
	}
	if d, ok := relationshipCatalog[req.Relationship]; ok {
		add("- Relationship: the recipient is %s", d)
	}
	if d, ok := responseTypeCatalog[req.ResponseType]; ok {
		add("- Type: %s", d)
	}

	if req.UseLists {
		add("- Formatting: use bullet points or numbered lists where they aid readability")
	}
	if d, ok := salutationCatalog[req.Salutation]; ok {
		add("- Salutation: %s", d)
	}
	if d, ok := signOffCatalog[req.SignOff]; ok {
		add("- Sign-off: %s", d)
	}
	if req.RecipientName != "" {
		add("- Recipient name: %s", req.RecipientName)
	}
	if req.SenderName != "" {
		add("- Sign the email as: %s", req.SenderName)
	}
	if req.IncludeAttachmentRef {
		add("- Mention that a relevant document is attached")
	}
	if kws := SplitKeywords(req.Keywords); len(kws) > 0 {
		add("- Naturally include these keywords: %s", strings.Join(kws, ", "))
	}
	if req.IncomingEmail != "" {
		add("- This is a REPLY to the following email:\n```\n%s\n```", req.IncomingEmail)
	}

	// Free-text instructions always come last so they cannot override the
	// structural rules above them.
	if req.CustomInstructions != "" {
		add("- Additional instructions: %s", req.CustomInstructions)
	}

	return Prompt{
		SystemRole:   SystemRole(req.Preset),
		Instructions: strings.Join(lines, "\n"),
		Temperature:  float64(req.Temperature) / 100.0,
	}
}

// SplitKeywords splits a comma-separated keyword list, trimming whitespace
// and dropping empty entries.
func SplitKeywords(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		out = append(out, p)
	}
	return out
}
