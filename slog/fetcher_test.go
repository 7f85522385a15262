package slog_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/fwojciec/webdigest/mock"
	wdslog "github.com/fwojciec/webdigest/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingFetcher_Fetch(t *testing.T) {
	t.Parallel()

	t.Run("logs fetch with bytes and duration", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.Fetcher{
			FetchFn: func(ctx context.Context, url string) (string, error) {
				return "<html>content</html>", nil
			},
		}

		fetcher := wdslog.NewLoggingFetcher(inner, "static", logger)
		html, err := fetcher.Fetch(context.Background(), "https://example.com/post")

		require.NoError(t, err)
		assert.Equal(t, "<html>content</html>", html)
		output := buf.String()
		assert.Contains(t, output, "fetch")
		assert.Contains(t, output, "backend=static")
		assert.Contains(t, output, "url=https://example.com/post")
		assert.Contains(t, output, "bytes=20")
		assert.Contains(t, output, "duration=")
	})

	t.Run("logs error on failure", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.Fetcher{
			FetchFn: func(ctx context.Context, url string) (string, error) {
				return "", errors.New("network error")
			},
		}

		fetcher := wdslog.NewLoggingFetcher(inner, "rendered", logger)
		_, err := fetcher.Fetch(context.Background(), "https://example.com/post")

		require.Error(t, err)
		output := buf.String()
		assert.Contains(t, output, "backend=rendered")
		assert.Contains(t, output, "err=\"network error\"")
	})

	t.Run("close delegates", func(t *testing.T) {
		t.Parallel()

		closed := false
		inner := &mock.Fetcher{CloseFn: func() error {
			closed = true
			return nil
		}}

		fetcher := wdslog.NewLoggingFetcher(inner, "static", slog.New(slog.DiscardHandler))

		require.NoError(t, fetcher.Close())
		assert.True(t, closed)
	})
}
