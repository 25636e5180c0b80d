// Package risk scores generated email text for spam-like patterns. Scoring
// is a pure function over (subject, body): no I/O, no error path, identical
// output for identical input.
package risk

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Report is the scorer's output: a bounded score and one explanation per
// warning-bearing rule, in rule-evaluation order.
type Report struct {
	Score    int      `json:"risk_score"`
	Warnings []string `json:"risk_warnings"`
}

// Point values per severity tier and structural rule. The tables below are
// static and read-only for the life of the process.
const (
	pointsHigh       = 10
	pointsMedium     = 5
	pointsLow        = 2
	pointsCapitals   = 15
	pointsExclaim    = 10
	pointsBurst      = 10
	pointsEmptyReply = 5
	pointsForward    = 3
	pointsLinks      = 10

	maxScore      = 100
	linkThreshold = 3
	capsRatio     = 0.5
	capsMinLen    = 5
)

// High-tier phrases add 10 points each and produce a warning.
var highRiskPhrases = []string{
	"free money",
	"act now",
	"urgent action required",
	"you have been selected",
	"claim your prize",
	"congratulations you won",
	"100% free",
	"risk-free",
	"double your",
	"make money fast",
	"no strings attached",
}

// Medium-tier phrases add 5 points each and produce a warning.
var mediumRiskPhrases = []string{
	"limited time",
	"exclusive deal",
	"click here",
	"special promotion",
	"once in a lifetime",
	"instant access",
	"call now",
	"offer expires",
	"don't miss out",
}

// Low-tier phrases add 2 points each without a warning; individually common
// in legitimate mail, they only matter in aggregate.
var lowRiskPhrases = []string{
	"free",
	"discount",
	"bonus",
	"save big",
	"best price",
	"no obligation",
}

// Score evaluates every rule against the subject and body. Phrase matching
// runs over the lower-cased concatenation, so it is case-insensitive; the
// capitalization rule deliberately reads the original subject. A phrase
// appearing several times still counts once.
func Score(subject, body string) Report {
	combined := strings.ToLower(subject + " " + body)
	lowerSubject := strings.ToLower(subject)

	score := 0
	warnings := make([]string, 0, 4)

	for _, p := range highRiskPhrases {
		if strings.Contains(combined, p) {
			score += pointsHigh
			warnings = append(warnings, fmt.Sprintf("high-risk phrase: %q", p))
		}
	}
	for _, p := range mediumRiskPhrases {
		if strings.Contains(combined, p) {
			score += pointsMedium
			warnings = append(warnings, fmt.Sprintf("spam-like phrase: %q", p))
		}
	}
	for _, p := range lowRiskPhrases {
		if strings.Contains(combined, p) {
			score += pointsLow
		}
	}

	if n := utf8.RuneCountInString(subject); n > capsMinLen {
		upper := 0
		for _, r := range subject {
			if unicode.IsUpper(r) {
				upper++
			}
		}
		if float64(upper)/float64(n) > capsRatio {
			score += pointsCapitals
			warnings = append(warnings, "excessive capitals in subject")
		}
	}

	if strings.Count(subject, "!") > 1 {
		score += pointsExclaim
		warnings = append(warnings, "multiple exclamation marks in subject")
	}

	if strings.Contains(combined, "!!!") || strings.Contains(combined, "???") {
		score += pointsBurst
		warnings = append(warnings, "excessive punctuation")
	}

	if strings.HasPrefix(lowerSubject, "re:") && strings.TrimSpace(body) == "" {
		score += pointsEmptyReply
		warnings = append(warnings, "empty reply email")
	}

	// Forwards carry a small structural penalty but no warning.
	if strings.HasPrefix(lowerSubject, "fw:") || strings.HasPrefix(lowerSubject, "fwd:") {
		score += pointsForward
	}

	links := strings.Count(combined, "http://") +
		strings.Count(combined, "https://") +
		strings.Count(combined, "www.")
	if links > linkThreshold {
		score += pointsLinks
		warnings = append(warnings, fmt.Sprintf("high link density: %d URLs", links))
	}

	if score > maxScore {
		score = maxScore
	}

	return Report{Score: score, Warnings: warnings}
}
