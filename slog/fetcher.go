// Package slog provides logging decorators for the service interfaces.
// Retrieval and summarization failures are swallowed by the fallback chains
// upstream, so these decorators are where those failures become visible.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/webdigest"
)

// Ensure LoggingFetcher implements webdigest.Fetcher.
var _ webdigest.Fetcher = (*LoggingFetcher)(nil)

// LoggingFetcher wraps a Fetcher with debug logging.
type LoggingFetcher struct {
	next   webdigest.Fetcher
	name   string
	logger *slog.Logger
}

// NewLoggingFetcher creates a new LoggingFetcher. The name distinguishes the
// rendered and static backends in log output.
func NewLoggingFetcher(next webdigest.Fetcher, name string, logger *slog.Logger) *LoggingFetcher {
	return &LoggingFetcher{next: next, name: name, logger: logger}
}

// Fetch delegates to the wrapped fetcher and logs the operation.
func (f *LoggingFetcher) Fetch(ctx context.Context, url string) (html string, err error) {
	defer func(begin time.Time) {
		f.logger.Info("fetch",
			"backend", f.name,
			"url", url,
			"bytes", len(html),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return f.next.Fetch(ctx, url)
}

// Close delegates to the wrapped fetcher.
func (f *LoggingFetcher) Close() error {
	return f.next.Close()
}
