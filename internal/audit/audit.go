// Package audit records one event per generation attempt and delivers it to
// configured sinks without blocking the request path.
package audit

import (
	"time"

	"github.com/google/uuid"

	"github.com/inkwell-ai/inkwell/internal/redact"
)

// Decision is the outcome of a generation request.
type Decision string

const (
	DecisionAllow         Decision = "allow"
	DecisionRejectedInput Decision = "rejected_input"
	DecisionErrorProvider Decision = "error_provider"
)

// Preview levels control how much generated content an event retains.
const (
	PreviewMetadata = "metadata"
	PreviewRedacted = "redacted"
	PreviewFull     = "full"
)

const previewLimit = 500

// Event is the canonical audit payload, one per generation attempt.
type Event struct {
	Version      string    `json:"version"`
	Timestamp    time.Time `json:"timestamp"`
	EventID      string    `json:"event_id"`
	Preset       string    `json:"preset"`
	Provider     string    `json:"provider"`
	Model        string    `json:"model"`
	Decision     Decision  `json:"decision"`
	RiskScore    int       `json:"risk_score"`
	RiskWarnings []string  `json:"risk_warnings,omitempty"`
	Subject      string    `json:"subject_preview,omitempty"`
	Body         string    `json:"body_preview,omitempty"`
	LatencyMs    float64   `json:"latency_ms"`
}

// BuildParams collects the inputs for one event.
type BuildParams struct {
	Preset       string
	Provider     string
	Model        string
	Decision     Decision
	RiskScore    int
	RiskWarnings []string
	Subject      string
	Body         string
	Latency      time.Duration
	PreviewLevel string
}

// BuildEvent assembles an event, applying the preview policy to generated
// content. Metadata level keeps no content at all; redacted and full both
// pass through the redactor, because even "full" previews must not persist
// addresses or credentials.
func BuildEvent(p BuildParams) *Event {
	ev := &Event{
		Version:      "1",
		Timestamp:    time.Now().UTC(),
		EventID:      uuid.NewString(),
		Preset:       p.Preset,
		Provider:     p.Provider,
		Model:        p.Model,
		Decision:     p.Decision,
		RiskScore:    p.RiskScore,
		RiskWarnings: append([]string(nil), p.RiskWarnings...),
		LatencyMs:    float64(p.Latency) / float64(time.Millisecond),
	}

	switch p.PreviewLevel {
	case PreviewFull, PreviewRedacted:
		ev.Subject = redact.String(truncate(p.Subject, previewLimit))
		ev.Body = redact.String(truncate(p.Body, previewLimit))
	default:
		// metadata-only: no content previews
	}

	return ev
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max] + "…"
}
