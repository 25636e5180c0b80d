package email

import (
	"encoding/json"
	"strings"

	"github.com/inkwell-ai/inkwell/internal/risk"
)

// FallbackSubject is used when the provider reply cannot be decoded.
const FallbackSubject = "Generated Email"

// Result is the typed outcome of one generation, immutable once built.
type Result struct {
	Subject         string   `json:"subject"`
	SubjectVariants []string `json:"subject_variants"`
	Body            string   `json:"body"`
	RiskScore       int      `json:"risk_score"`
	RiskWarnings    []string `json:"risk_warnings"`
}

type providerReply struct {
	Subject         string   `json:"subject"`
	SubjectVariants []string `json:"subject_variants"`
	Body            string   `json:"body"`
}

// ParseReply decodes the provider's JSON reply into a Result. A malformed
// reply is not an error: the raw text becomes the body under a fixed
// placeholder subject. Either way the risk scorer runs over what the caller
// will actually see.
func ParseReply(raw string) Result {
	var reply providerReply
	res := Result{Subject: FallbackSubject, SubjectVariants: []string{}, Body: raw}

	if err := json.Unmarshal([]byte(unfence(raw)), &reply); err == nil {
		res.Subject = reply.Subject
		res.Body = reply.Body
		if reply.SubjectVariants != nil {
			res.SubjectVariants = reply.SubjectVariants
		}
	}

	report := risk.Score(res.Subject, res.Body)
	res.RiskScore = report.Score
	res.RiskWarnings = report.Warnings
	return res
}

// unfence strips a surrounding markdown code fence. Models often wrap JSON
// replies in ```json fences despite instructions; without this the fallback
// would swallow perfectly good output.
func unfence(s string) string {
	t := strings.TrimSpace(s)
	if !strings.HasPrefix(t, "```") {
		return s
	}
	t = strings.TrimPrefix(t, "```")
	if i := strings.Index(t, "\n"); i >= 0 {
		// Drop the info string ("json") on the opening fence line.
		t = t[i+1:]
	}
	t = strings.TrimSpace(t)
	t = strings.TrimSuffix(t, "```")
	return strings.TrimSpace(t)
}
