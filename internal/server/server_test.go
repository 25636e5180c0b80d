package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/inkwell-ai/inkwell/internal/config"
	"github.com/inkwell-ai/inkwell/internal/email"
	"github.com/inkwell-ai/inkwell/internal/provider"
)

func testConfig() *config.Config {
	cfg, _ := config.Load("testdata/does-not-exist.yaml")
	cfg.Provider.Type = "fake"
	return cfg
}

func newTestServer(t *testing.T, fake *provider.Fake) *httptest.Server {
	t.Helper()
	srv := New(testConfig(), nil, fake, nil)
	ts := httptest.NewServer(srv.Handler())
	t.Cleanup(ts.Close)
	return ts
}

func postJSON(t *testing.T, url, body string) *http.Response {
	t.Helper()
	resp, err := http.Post(url, "application/json", strings.NewReader(body))
	if err != nil {
		t.Fatalf("post %s: %v", url, err)
	}
	return resp
}

func decodeError(t *testing.T, resp *http.Response) (string, string) {
	t.Helper()
	defer resp.Body.Close()
	var payload struct {
		Error struct {
			Message string `json:"message"`
			Type    string `json:"type"`
		} `json:"error"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		t.Fatalf("decode error body: %v", err)
	}
	return payload.Error.Message, payload.Error.Type
}

func TestGenerateHappyPath(t *testing.T) {
	reply := `{"subject":"Quarterly update","subject_variants":["Q3 numbers","Update for the quarter"],"body":"Hello team, here are the numbers."}`
	fake := provider.NewFake(reply)
	ts := newTestServer(t, fake)

	resp := postJSON(t, ts.URL+"/api/generate", `{"tone": 30, "recipient_name": "Dana"}`)
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	var result email.Result
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		t.Fatalf("decode result: %v", err)
	}
	if result.Subject != "Quarterly update" {
		t.Fatalf("unexpected subject %q", result.Subject)
	}
	if len(result.SubjectVariants) != 2 {
		t.Fatalf("expected 2 variants, got %v", result.SubjectVariants)
	}
	if result.RiskScore != 0 || len(result.RiskWarnings) != 0 {
		t.Fatalf("clean email must score 0, got %d %v", result.RiskScore, result.RiskWarnings)
	}

	if fake.Calls != 1 {
		t.Fatalf("expected one provider call, got %d", fake.Calls)
	}
	instructions := fake.LastPrompt.Instructions
	if !strings.Contains(instructions, "- Tone: formal but approachable") {
		t.Fatalf("tone 30 must compile into the prompt, got:\n%s", instructions)
	}
	if !strings.Contains(instructions, "- Recipient name: Dana") {
		t.Fatalf("recipient name must compile into the prompt, got:\n%s", instructions)
	}
	if fake.LastPrompt.Temperature != 0.7 {
		t.Fatalf("default temperature must be 0.7, got %v", fake.LastPrompt.Temperature)
	}
}

func TestGenerateRiskyReplyCarriesScore(t *testing.T) {
	reply := `{"subject":"FREE MONEY!!! act now","subject_variants":["a","b"],"body":"Click here for your exclusive deal."}`
	ts := newTestServer(t, provider.NewFake(reply))

	resp := postJSON(t, ts.URL+"/api/generate", `{}`)
	defer resp.Body.Close()

	var result email.Result
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		t.Fatalf("decode result: %v", err)
	}
	if result.RiskScore == 0 || len(result.RiskWarnings) == 0 {
		t.Fatalf("spammy reply must carry a risk report, got %d %v", result.RiskScore, result.RiskWarnings)
	}
}

func TestGenerateNonJSONReplyFallsBack(t *testing.T) {
	ts := newTestServer(t, provider.NewFake("Dear team, plain text only."))

	resp := postJSON(t, ts.URL+"/api/generate", `{}`)
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	var result email.Result
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		t.Fatalf("decode result: %v", err)
	}
	if result.Subject != email.FallbackSubject {
		t.Fatalf("expected fallback subject, got %q", result.Subject)
	}
	if result.Body != "Dear team, plain text only." {
		t.Fatalf("raw text must become the body, got %q", result.Body)
	}
}

func TestGenerateRejectsBadJSON(t *testing.T) {
	fake := provider.NewFake("{}")
	ts := newTestServer(t, fake)

	resp := postJSON(t, ts.URL+"/api/generate", `{"tone": `)
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.StatusCode)
	}
	_, typ := decodeError(t, resp)
	if typ != "invalid_request_error" {
		t.Fatalf("expected invalid_request_error, got %q", typ)
	}
	if fake.Calls != 0 {
		t.Fatalf("provider must not be called for bad JSON")
	}
}

func TestGenerateRejectsOutOfRange(t *testing.T) {
	fake := provider.NewFake("{}")
	ts := newTestServer(t, fake)

	resp := postJSON(t, ts.URL+"/api/generate", `{"tone": 101}`)
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.StatusCode)
	}
	msg, typ := decodeError(t, resp)
	if typ != "invalid_request_error" {
		t.Fatalf("expected invalid_request_error, got %q", typ)
	}
	if !strings.Contains(msg, "tone") {
		t.Fatalf("message must name the bad field, got %q", msg)
	}
	if fake.Calls != 0 {
		t.Fatalf("provider must not be called for invalid input")
	}
}

func TestGenerateProviderFailure(t *testing.T) {
	fake := &provider.Fake{Err: errors.New("upstream down")}
	ts := newTestServer(t, fake)

	resp := postJSON(t, ts.URL+"/api/generate", `{}`)
	if resp.StatusCode != http.StatusBadGateway {
		t.Fatalf("expected 502, got %d", resp.StatusCode)
	}
	_, typ := decodeError(t, resp)
	if typ != "service_unavailable" {
		t.Fatalf("expected service_unavailable, got %q", typ)
	}
}

func TestScoreEndpoint(t *testing.T) {
	ts := newTestServer(t, provider.NewFake("{}"))

	resp := postJSON(t, ts.URL+"/api/score", `{"subject":"Re: hello","body":""}`)
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	var report struct {
		Score    int      `json:"risk_score"`
		Warnings []string `json:"risk_warnings"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&report); err != nil {
		t.Fatalf("decode report: %v", err)
	}
	if report.Score != 5 {
		t.Fatalf("empty reply must score 5, got %d", report.Score)
	}
	if len(report.Warnings) != 1 || report.Warnings[0] != "empty reply email" {
		t.Fatalf("unexpected warnings %v", report.Warnings)
	}
}

func TestPresetsEndpoint(t *testing.T) {
	ts := newTestServer(t, provider.NewFake("{}"))

	resp, err := http.Get(ts.URL + "/api/presets")
	if err != nil {
		t.Fatalf("get presets: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	var opts email.Options
	if err := json.NewDecoder(resp.Body).Decode(&opts); err != nil {
		t.Fatalf("decode options: %v", err)
	}
	if len(opts.Presets) != 5 {
		t.Fatalf("expected 5 presets, got %v", opts.Presets)
	}
	if len(opts.Languages) == 0 || len(opts.Purposes) == 0 {
		t.Fatalf("option lists must be populated, got %+v", opts)
	}
}

func TestMethodNotAllowed(t *testing.T) {
	ts := newTestServer(t, provider.NewFake("{}"))

	resp, err := http.Get(ts.URL + "/api/generate")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusMethodNotAllowed {
		t.Fatalf("expected 405, got %d", resp.StatusCode)
	}
}

func TestHealthz(t *testing.T) {
	ts := newTestServer(t, provider.NewFake("{}"))

	resp, err := http.Get(ts.URL + "/healthz")
	if err != nil {
		t.Fatalf("get healthz: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
}

func TestRequestBodyLimit(t *testing.T) {
	cfg := testConfig()
	cfg.Server.MaxRequestBodyBytes = 64
	srv := New(cfg, nil, provider.NewFake("{}"), nil)
	ts := httptest.NewServer(srv.Handler())
	t.Cleanup(ts.Close)

	big := `{"custom_instructions":"` + strings.Repeat("x", 200) + `"}`
	resp := postJSON(t, ts.URL+"/api/generate", big)
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusRequestEntityTooLarge {
		t.Fatalf("expected 413, got %d", resp.StatusCode)
	}
}
