package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/webdigest"
)

// Ensure LoggingBackend implements webdigest.Backend.
var _ webdigest.Backend = (*LoggingBackend)(nil)

// LoggingBackend wraps a summarization Backend with debug logging.
type LoggingBackend struct {
	next   webdigest.Backend
	logger *slog.Logger
}

// NewLoggingBackend creates a new LoggingBackend.
func NewLoggingBackend(next webdigest.Backend, logger *slog.Logger) *LoggingBackend {
	return &LoggingBackend{next: next, logger: logger}
}

// Name delegates to the wrapped backend.
func (b *LoggingBackend) Name() string {
	return b.next.Name()
}

// Summarize delegates to the wrapped backend and logs the operation.
func (b *LoggingBackend) Summarize(ctx context.Context, content, title string) (summary string, err error) {
	defer func(begin time.Time) {
		b.logger.Info("summarize",
			"backend", b.next.Name(),
			"content_runes", len([]rune(content)),
			"summary_runes", len([]rune(summary)),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return b.next.Summarize(ctx, content, title)
}

// Title delegates to the wrapped backend and logs the operation.
func (b *LoggingBackend) Title(ctx context.Context, content string) (title string, err error) {
	defer func(begin time.Time) {
		b.logger.Info("title",
			"backend", b.next.Name(),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return b.next.Title(ctx, content)
}
