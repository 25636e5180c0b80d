package provider

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/inkwell-ai/inkwell/internal/email"
)

func testPrompt() email.Prompt {
	return email.Prompt{
		SystemRole:   "You are an expert email writer.",
		Instructions: "Generate an email with the following specifications:\n- Tone: balanced and neutral",
		Temperature:  0.7,
	}
}

func TestOpenAIGenerate(t *testing.T) {
	var captured chatRequest

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/chat/completions" {
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer test-key" {
			t.Fatalf("unexpected auth header %q", got)
		}
		if err := json.NewDecoder(r.Body).Decode(&captured); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		_ = json.NewEncoder(w).Encode(map[string]any{
			"id": "chatcmpl-1",
			"choices": []map[string]any{
				{"index": 0, "message": map[string]string{
					"role":    "assistant",
					"content": `{"subject":"Hi","body":"Hello"}`,
				}},
			},
		})
	}))
	defer ts.Close()

	p := NewOpenAI(OpenAIOptions{
		BaseURL: ts.URL,
		APIKey:  "test-key",
		Model:   "test-model",
	})

	out, err := p.Generate(context.Background(), testPrompt())
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if out != `{"subject":"Hi","body":"Hello"}` {
		t.Fatalf("unexpected reply %q", out)
	}

	if captured.Model != "test-model" {
		t.Fatalf("expected model test-model, got %q", captured.Model)
	}
	if captured.Temperature != 0.7 {
		t.Fatalf("expected temperature 0.7, got %v", captured.Temperature)
	}
	if captured.ResponseFormat == nil || captured.ResponseFormat.Type != "json_object" {
		t.Fatalf("expected json_object response format, got %+v", captured.ResponseFormat)
	}
	if len(captured.Messages) != 2 {
		t.Fatalf("expected system+user messages, got %d", len(captured.Messages))
	}
	if captured.Messages[0].Role != "system" || captured.Messages[1].Role != "user" {
		t.Fatalf("unexpected message roles: %+v", captured.Messages)
	}
}

func TestOpenAIGenerateUpstreamError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"error": map[string]any{"message": "rate limited", "type": "rate_limit_error"},
		})
	}))
	defer ts.Close()

	p := NewOpenAI(OpenAIOptions{BaseURL: ts.URL, APIKey: "k", Model: "m"})
	_, err := p.Generate(context.Background(), testPrompt())
	if err == nil {
		t.Fatalf("expected error")
	}
	if !strings.Contains(err.Error(), "rate limited") {
		t.Fatalf("expected upstream message in error, got %v", err)
	}
}

func TestOpenAIGenerateNoChoices(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{"id": "x", "choices": []any{}})
	}))
	defer ts.Close()

	p := NewOpenAI(OpenAIOptions{BaseURL: ts.URL, APIKey: "k", Model: "m"})
	if _, err := p.Generate(context.Background(), testPrompt()); err == nil {
		t.Fatalf("expected error for empty choices")
	}
}

func TestOpenAIGenerateResponseLimit(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(strings.Repeat("a", 256)))
	}))
	defer ts.Close()

	p := NewOpenAI(OpenAIOptions{BaseURL: ts.URL, APIKey: "k", Model: "m", MaxResponseBytes: 64})
	if _, err := p.Generate(context.Background(), testPrompt()); err == nil {
		t.Fatalf("expected error when response exceeds limit")
	}
}
