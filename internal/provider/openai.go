package provider

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/inkwell-ai/inkwell/internal/email"
)

// openAIProvider implements Provider for OpenAI-compatible Chat Completions
// APIs. The client is built once at startup and held by the caller; there is
// no lazy global.
type openAIProvider struct {
	baseURL          string
	apiKey           string
	model            string
	maxTokens        int
	maxResponseBytes int64
	client           *http.Client
}

// OpenAIOptions configures an OpenAI-style provider.
type OpenAIOptions struct {
	BaseURL          string
	APIKey           string
	Model            string
	MaxTokens        int
	MaxResponseBytes int64
	Timeout          time.Duration
}

// NewOpenAI creates a provider for an OpenAI-compatible endpoint.
func NewOpenAI(opts OpenAIOptions) Provider {
	if opts.BaseURL == "" {
		opts.BaseURL = "https://api.openai.com/v1"
	}
	if opts.Timeout <= 0 {
		opts.Timeout = 60 * time.Second
	}
	if opts.MaxTokens <= 0 {
		opts.MaxTokens = 1024
	}
	if opts.MaxResponseBytes <= 0 {
		opts.MaxResponseBytes = 4 * 1024 * 1024
	}

	return &openAIProvider{
		baseURL:          opts.BaseURL,
		apiKey:           opts.APIKey,
		model:            opts.Model,
		maxTokens:        opts.MaxTokens,
		maxResponseBytes: opts.MaxResponseBytes,
		client: &http.Client{
			Timeout: opts.Timeout,
		},
	}
}

type chatRequest struct {
	Model          string          `json:"model"`
	Messages       []chatMessage   `json:"messages"`
	Temperature    float64         `json:"temperature"`
	MaxTokens      int             `json:"max_tokens,omitempty"`
	ResponseFormat *responseFormat `json:"response_format,omitempty"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type responseFormat struct {
	Type string `json:"type"`
}

type chatResponse struct {
	ID      string       `json:"id"`
	Choices []chatChoice `json:"choices"`
}

type chatChoice struct {
	Index        int         `json:"index"`
	Message      chatMessage `json:"message"`
	FinishReason string      `json:"finish_reason"`
}

type apiErrorResponse struct {
	Error struct {
		Message string `json:"message"`
		Type    string `json:"type"`
		Code    any    `json:"code"`
	} `json:"error"`
}

func (p *openAIProvider) Generate(ctx context.Context, prompt email.Prompt) (string, error) {
	payload := chatRequest{
		Model: p.model,
		Messages: []chatMessage{
			{Role: "system", Content: prompt.SystemRole},
			{Role: "user", Content: prompt.Instructions},
		},
		Temperature: prompt.Temperature,
		MaxTokens:   p.maxTokens,
		// The prompt instructs the model to answer with a JSON object; asking
		// the API for json_object output keeps the two in agreement.
		ResponseFormat: &responseFormat{Type: "json_object"},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("marshal chat request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(
		ctx,
		http.MethodPost,
		fmt.Sprintf("%s/chat/completions", p.baseURL),
		bytes.NewReader(body),
	)
	if err != nil {
		return "", fmt.Errorf("create chat request: %w", err)
	}

	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+p.apiKey)

	resp, err := p.client.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("call generation service: %w", err)
	}
	defer resp.Body.Close()

	limited := io.LimitReader(resp.Body, p.maxResponseBytes+1)
	respBody, err := io.ReadAll(limited)
	if err != nil {
		return "", fmt.Errorf("read generation response: %w", err)
	}
	if int64(len(respBody)) > p.maxResponseBytes {
		return "", fmt.Errorf("generation response exceeded limit (%d bytes)", p.maxResponseBytes)
	}

	if resp.StatusCode >= 400 {
		var errBody apiErrorResponse
		if err := json.Unmarshal(respBody, &errBody); err != nil {
			return "", fmt.Errorf("generation service status %d and undecodable error body", resp.StatusCode)
		}
		return "", fmt.Errorf("generation service error: %s (type=%s)", errBody.Error.Message, errBody.Error.Type)
	}

	var chatResp chatResponse
	if err := json.Unmarshal(respBody, &chatResp); err != nil {
		return "", fmt.Errorf("decode generation response: %w", err)
	}

	if len(chatResp.Choices) == 0 {
		return "", fmt.Errorf("generation response had no choices")
	}

	return chatResp.Choices[0].Message.Content, nil
}
