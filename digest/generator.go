package digest

import (
	"context"
	"log/slog"

	"github.com/fwojciec/webdigest"
)

// Ensure Generator implements webdigest.Summarizer at compile time.
var _ webdigest.Summarizer = (*Generator)(nil)

// Generator drives an ordered backend chain to first success. The extractive
// fallback is appended to every chain at construction, so both operations
// are total: for non-empty input they always produce a result. A backend
// that errors or returns an empty result is logged and skipped; its failure
// never reaches the caller.
type Generator struct {
	backends []webdigest.Backend
	logger   *slog.Logger
}

// NewGenerator creates a Generator over the configured backends, in chain
// order. The extractive fallback is always appended last; callers pass only
// the provider-backed entries.
func NewGenerator(logger *slog.Logger, backends ...webdigest.Backend) *Generator {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Generator{
		backends: append(backends, webdigest.NewExtractiveBackend()),
		logger:   logger,
	}
}

// Summarize returns a summary of content from the first backend that
// produces one. Never fails.
func (g *Generator) Summarize(ctx context.Context, content, title string) string {
	for _, b := range g.backends {
		summary, err := b.Summarize(ctx, content, title)
		if err != nil {
			g.logger.Warn("summary backend failed", "backend", b.Name(), "err", err)
			continue
		}
		if summary == "" {
			g.logger.Debug("summary backend returned empty result", "backend", b.Name())
			continue
		}
		return summary
	}
	return ""
}

// TitleFor returns a title for content from the first backend that produces
// one. Never fails.
func (g *Generator) TitleFor(ctx context.Context, content string) string {
	for _, b := range g.backends {
		title, err := b.Title(ctx, content)
		if err != nil {
			g.logger.Warn("title backend failed", "backend", b.Name(), "err", err)
			continue
		}
		if title == "" {
			continue
		}
		return title
	}
	return ""
}
