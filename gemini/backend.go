// Package gemini provides the priority remote summarization backend using
// Google Gemini.
package gemini

import (
	"context"
	"strings"

	"github.com/fwojciec/webdigest"
	"google.golang.org/genai"
)

const model = "gemini-2.5-flash"

// Ensure Backend implements webdigest.Backend at compile time.
var _ webdigest.Backend = (*Backend)(nil)

// Backend implements webdigest.Backend using Google Gemini.
type Backend struct {
	client *genai.Client
}

// NewBackend creates a new Backend.
func NewBackend(client *genai.Client) *Backend {
	return &Backend{client: client}
}

// Name identifies the backend in logs.
func (b *Backend) Name() string { return "gemini" }

// Summarize generates a summary of content via the Gemini API.
func (b *Backend) Summarize(ctx context.Context, content, title string) (string, error) {
	return b.generate(ctx, webdigest.SummaryPrompt(content, title))
}

// Title generates a short title for content via the Gemini API.
func (b *Backend) Title(ctx context.Context, content string) (string, error) {
	return b.generate(ctx, webdigest.TitlePrompt(content))
}

func (b *Backend) generate(ctx context.Context, prompt string) (string, error) {
	result, err := b.client.Models.GenerateContent(ctx, model,
		[]*genai.Content{{
			Parts: []*genai.Part{{Text: prompt}},
		}},
		BuildConfig(),
	)
	if err != nil {
		return "", err
	}
	if result == nil {
		return "", webdigest.Errorf(webdigest.EINTERNAL, "gemini returned nil result")
	}

	return strings.TrimSpace(result.Text()), nil
}

// BuildConfig returns the GenerateContentConfig for Gemini API calls.
func BuildConfig() *genai.GenerateContentConfig {
	temp := float32(0.5)
	return &genai.GenerateContentConfig{
		MaxOutputTokens: 300,
		Temperature:     &temp,
	}
}
