package webdigest

import (
	"context"
	"strings"
)

// Targets for the extractive fallback summary, in runes.
const (
	// fallbackTargetLength is the accumulation target: whole paragraphs are
	// added until the running total reaches this.
	fallbackTargetLength = 150

	// fallbackMaxLength is the hard cap applied after accumulation.
	fallbackMaxLength = 200
)

// UnnamedSentinel is the title produced when content yields no usable line.
const UnnamedSentinel = "未命名"

// Ensure ExtractiveBackend implements Backend at compile time.
var _ Backend = (*ExtractiveBackend)(nil)

// ExtractiveBackend is the deterministic, offline summarization backend that
// terminates every chain. It concatenates leading sizeable paragraphs up to a
// target length and is guaranteed to return a non-empty result for non-empty
// input, so total summarization failure is structurally excluded.
type ExtractiveBackend struct{}

// NewExtractiveBackend creates a new ExtractiveBackend.
func NewExtractiveBackend() *ExtractiveBackend {
	return &ExtractiveBackend{}
}

// Name identifies the backend in logs.
func (b *ExtractiveBackend) Name() string { return "extractive" }

// Summarize produces an extractive summary of content. The title is unused.
// The result never exceeds fallbackMaxLength plus the ellipsis marker.
func (b *ExtractiveBackend) Summarize(_ context.Context, content, _ string) (string, error) {
	var paragraphs []string
	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)
		if len([]rune(line)) > MinParagraphLength {
			paragraphs = append(paragraphs, line)
		}
	}

	if len(paragraphs) == 0 {
		return truncateWithEllipsis(content, fallbackMaxLength), nil
	}

	var parts []string
	total := 0
	for _, p := range paragraphs {
		if total >= fallbackTargetLength {
			break
		}
		parts = append(parts, p)
		total += len([]rune(p))
	}

	summary := strings.Join(parts, " ")
	if len([]rune(summary)) > fallbackMaxLength {
		summary = truncateRunes(summary, fallbackMaxLength) + "..."
	}
	return summary, nil
}

// Title returns the first non-empty line of content truncated to 20 runes,
// or UnnamedSentinel when no such line exists.
func (b *ExtractiveBackend) Title(_ context.Context, content string) (string, error) {
	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			return truncateRunes(line, 20), nil
		}
	}
	return UnnamedSentinel, nil
}

// truncateWithEllipsis cuts s to at most n runes, appending an ellipsis
// marker when truncation happened.
func truncateWithEllipsis(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n]) + "..."
}
