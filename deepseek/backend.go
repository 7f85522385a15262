// Package deepseek provides a summarization backend over the DeepSeek
// OpenAI-compatible chat-completions API.
package deepseek

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/fwojciec/webdigest"
)

// Defaults for the DeepSeek API.
const (
	DefaultBaseURL = "https://api.deepseek.com"
	DefaultModel   = "deepseek-chat"
	DefaultTimeout = 30 * time.Second
)

const (
	maxTokens   = 300
	temperature = 0.5
)

// Ensure Backend implements webdigest.Backend at compile time.
var _ webdigest.Backend = (*Backend)(nil)

// Backend implements webdigest.Backend against an OpenAI-compatible
// chat-completions endpoint.
type Backend struct {
	client  *http.Client
	apiKey  string
	baseURL string
	model   string
	timeout time.Duration
}

// Option configures a Backend.
type Option func(*Backend)

// WithBaseURL overrides the API base URL. Useful for other
// OpenAI-compatible providers and for tests.
func WithBaseURL(u string) Option {
	return func(b *Backend) {
		b.baseURL = strings.TrimRight(u, "/")
	}
}

// WithModel overrides the model name.
func WithModel(m string) Option {
	return func(b *Backend) {
		b.model = m
	}
}

// WithTimeout sets the per-call timeout.
func WithTimeout(d time.Duration) Option {
	return func(b *Backend) {
		b.timeout = d
	}
}

// NewBackend creates a new Backend authenticated with apiKey.
func NewBackend(apiKey string, opts ...Option) *Backend {
	b := &Backend{
		apiKey:  apiKey,
		baseURL: DefaultBaseURL,
		model:   DefaultModel,
		timeout: DefaultTimeout,
	}
	for _, opt := range opts {
		opt(b)
	}
	b.client = &http.Client{Timeout: b.timeout}
	return b
}

// Name identifies the backend in logs.
func (b *Backend) Name() string { return "deepseek" }

// Summarize generates a summary of content.
func (b *Backend) Summarize(ctx context.Context, content, title string) (string, error) {
	return b.complete(ctx, webdigest.SummaryPrompt(content, title))
}

// Title generates a short title for content.
func (b *Backend) Title(ctx context.Context, content string) (string, error) {
	return b.complete(ctx, webdigest.TitlePrompt(content))
}

// chatRequest is an OpenAI chat-completions request.
type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	MaxTokens   int           `json:"max_tokens"`
	Temperature float32       `json:"temperature"`
}

// chatMessage is a single conversation turn.
type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// chatResponse is an OpenAI chat-completions response.
type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

// complete sends one chat-completions call and returns the first choice's
// trimmed content.
func (b *Backend) complete(ctx context.Context, prompt string) (string, error) {
	payload, err := json.Marshal(chatRequest{
		Model:       b.model,
		Messages:    []chatMessage{{Role: "user", Content: prompt}},
		MaxTokens:   maxTokens,
		Temperature: temperature,
	})
	if err != nil {
		return "", fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		b.baseURL+"/v1/chat/completions", bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+b.apiKey)

	resp, err := b.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("%s: HTTP %d", b.Name(), resp.StatusCode)
	}

	var result chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", fmt.Errorf("decode response: %w", err)
	}
	if len(result.Choices) == 0 {
		return "", fmt.Errorf("%s: empty choices", b.Name())
	}

	return strings.TrimSpace(result.Choices[0].Message.Content), nil
}
