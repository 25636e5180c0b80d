// Package redact scrubs addresses, credentials, and links from free-form
// text before it reaches logs or audit sinks. Generated emails are full of
// exactly the things log pipelines must not keep.
package redact

import (
	"fmt"
	"net/url"
	"path"
	"regexp"
	"strings"
)

var (
	emailRe     = regexp.MustCompile(`(?i)[A-Za-z0-9._%+\-]+@[A-Za-z0-9.\-]+\.[A-Za-z]{2,}`)
	bearerRe    = regexp.MustCompile(`(?i)(bearer\s+)([A-Za-z0-9._\-+/=]+)`)
	apiKeyRe    = regexp.MustCompile(`(?i)(api[_-]?key(?:s)?\s*[:=]\s*)([A-Za-z0-9._\-+/=]+)`)
	tokenishRe  = regexp.MustCompile(`(?i)(key|token|secret)\s*[:=]\s*([A-Za-z0-9._\-+/=]{6,})`)
	phoneRe     = regexp.MustCompile(`\+?\d[\d\s().\-]{7,}\d`)
	urlRe       = regexp.MustCompile(`https?://[^\s"'<>]+`)
	longTokenRe = regexp.MustCompile(`\b[A-Za-z0-9_\-]{28,}\b`)
)

// String redacts known address, secret, and link patterns from s.
func String(s string) string {
	if s == "" {
		return s
	}

	out := s
	out = emailRe.ReplaceAllString(out, "[REDACTED_EMAIL]")
	out = bearerRe.ReplaceAllString(out, "${1}[REDACTED]")
	out = apiKeyRe.ReplaceAllString(out, "${1}[REDACTED]")
	out = tokenishRe.ReplaceAllString(out, "${1}=[REDACTED]")
	out = phoneRe.ReplaceAllString(out, "[REDACTED_PHONE]")
	out = urlRe.ReplaceAllStringFunc(out, redactURL)
	out = longTokenRe.ReplaceAllString(out, "[REDACTED_TOKEN]")
	for strings.Contains(out, "[REDACTED][REDACTED]") {
		out = strings.ReplaceAll(out, "[REDACTED][REDACTED]", "[REDACTED]")
	}
	return out
}

// Any formats the value with %+v and redacts the result.
func Any(v any) string {
	return String(fmt.Sprintf("%+v", v))
}

// redactURL keeps scheme, host, and final path element so a log line stays
// diagnosable without retaining query strings or deep paths.
func redactURL(raw string) string {
	trimmed := strings.TrimSpace(raw)
	u, err := url.Parse(trimmed)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return "[REDACTED_URL]"
	}

	host := u.Host
	if strings.HasSuffix(trimmed, "/") {
		return fmt.Sprintf("%s://%s/[REDACTED_PATH]", u.Scheme, host)
	}

	base := path.Base(strings.TrimSuffix(u.Path, "/"))
	if base == "." || base == "/" || base == "" {
		return fmt.Sprintf("%s://%s/[REDACTED_PATH]", u.Scheme, host)
	}
	return fmt.Sprintf("%s://%s/%s", u.Scheme, host, base)
}
