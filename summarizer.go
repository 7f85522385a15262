package webdigest

import "context"

// Backend is one entry in the summarization chain. Implementations exist for
// each remote provider, for a local-inference endpoint, and for the
// deterministic extractive fallback.
//
// A backend signals "no result" by returning an empty string or an error;
// the chain driver logs and moves on, so errors never escape the chain.
type Backend interface {
	// Name identifies the backend in logs (e.g., "gemini", "ollama").
	Name() string

	// Summarize generates a summary of content. title provides context for
	// the prompt and may be empty.
	Summarize(ctx context.Context, content, title string) (string, error)

	// Title generates a short title for content.
	Title(ctx context.Context, content string) (string, error)
}

// Summarizer drives a backend chain to first success. Both operations are
// total: the chain's last element is guaranteed to produce a result.
type Summarizer interface {
	// Summarize returns a summary of content. Never fails.
	Summarize(ctx context.Context, content, title string) string

	// TitleFor returns a title for content. Never fails.
	TitleFor(ctx context.Context, content string) string
}
