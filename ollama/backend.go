// Package ollama provides a summarization backend over a local Ollama
// inference endpoint.
package ollama

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

// Defaults for a local Ollama install.
const (
	DefaultBaseURL = "http://localhost:11434"
	DefaultModel   = "llama2"

	// DefaultTimeout is generous: local inference on CPU can be slow.
	DefaultTimeout = 120 * time.Second
)

// Ensure Backend implements webdigest.Backend at compile time.
var _ webdigest.Backend = (*Backend)(nil)

// Backend implements webdigest.Backend against Ollama's generate API.
type Backend struct {
	client  *http.Client
	baseURL string
	model   string
	timeout time.Duration
}

// Option configures a Backend.
type Option func(*Backend)

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

// NewBackend creates a new Backend against baseURL. An empty baseURL uses
// DefaultBaseURL.
func NewBackend(baseURL string, opts ...Option) *Backend {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	b := &Backend{
		baseURL: strings.TrimRight(baseURL, "/"),
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
func (b *Backend) Name() string { return "ollama" }

// Summarize generates a summary of content.
func (b *Backend) Summarize(ctx context.Context, content, title string) (string, error) {
	return b.generate(ctx, webdigest.SummaryPrompt(content, title))
}

// Title generates a short title for content.
func (b *Backend) Title(ctx context.Context, content string) (string, error) {
	return b.generate(ctx, webdigest.TitlePrompt(content))
}

// generateRequest is an Ollama generate API request.
type generateRequest struct {
	Model  string `json:"model"`
	Prompt string `json:"prompt"`
	Stream bool   `json:"stream"`
}

// generateResponse is an Ollama generate API response.
type generateResponse struct {
	Response string `json:"response"`
}

func (b *Backend) generate(ctx context.Context, prompt string) (string, error) {
	payload, err := json.Marshal(generateRequest{
		Model:  b.model,
		Prompt: prompt,
		Stream: false,
	})
	if err != nil {
		return "", fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		b.baseURL+"/api/generate", bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := b.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("%s: HTTP %d", b.Name(), resp.StatusCode)
	}

	var result generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", fmt.Errorf("decode response: %w", err)
	}

	return strings.TrimSpace(result.Response), nil
}
