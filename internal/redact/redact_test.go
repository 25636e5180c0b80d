package redact

import (
	"strings"
	"testing"
)

func TestStringRedaction(t *testing.T) {
	cases := []struct {
		name     string
		input    string
		disallow []string
		require  []string
	}{
		{
			name:     "email address",
			input:    "Please reach out to jane.doe@example.com for details",
			disallow: []string{"jane.doe@example.com"},
			require:  []string{"[REDACTED_EMAIL]"},
		},
		{
			name:     "bearer token",
			input:    "Authorization: Bearer sk-secret-123",
			disallow: []string{"sk-secret-123"},
			require:  []string{"[REDACTED]"},
		},
		{
			name:     "api key assignment",
			input:    "api_key=proj-key-12345 in the config",
			disallow: []string{"proj-key-12345"},
			require:  []string{"api_key=[REDACTED]"},
		},
		{
			name:     "phone number",
			input:    "call me at +1 (555) 123-4567 tomorrow",
			disallow: []string{"555"},
			require:  []string{"[REDACTED_PHONE]"},
		},
		{
			name:     "deep url keeps host and file",
			input:    "see https://example.com/reports/q3/summary.pdf?token=abc123",
			disallow: []string{"token=abc123", "/reports/q3/"},
			require:  []string{"https://example.com/summary.pdf"},
		},
		{
			name:     "trailing slash url",
			input:    "root at https://files.example.test/exports/",
			disallow: []string{"/exports/"},
			require:  []string{"https://files.example.test/[REDACTED_PATH]"},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			out := String(tc.input)
			for _, bad := range tc.disallow {
				if strings.Contains(out, bad) {
					t.Fatalf("output still contains %q: %s", bad, out)
				}
			}
			for _, want := range tc.require {
				if !strings.Contains(out, want) {
					t.Fatalf("output missing %q: %s", want, out)
				}
			}
		})
	}
}

func TestStringLeavesPlainProseAlone(t *testing.T) {
	in := "Thanks for the update, I will review the proposal on Thursday."
	if out := String(in); out != in {
		t.Fatalf("plain prose must pass through unchanged, got %q", out)
	}
}

func TestAnyFormatsAndRedacts(t *testing.T) {
	type payload struct {
		To string
	}
	out := Any(payload{To: "bob@corp.example"})
	if strings.Contains(out, "bob@corp.example") {
		t.Fatalf("Any must redact embedded addresses: %s", out)
	}
}
