package digest_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/fwojciec/webdigest"
	"github.com/fwojciec/webdigest/digest"
	"github.com/fwojciec/webdigest/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func staticFetcher(html string) *mock.Fetcher {
	return &mock.Fetcher{
		FetchFn: func(ctx context.Context, url string) (string, error) {
			return html, nil
		},
	}
}

func staticExtractor(title, content string) *mock.Extractor {
	return &mock.Extractor{
		ExtractFn: func(html string) (*webdigest.ExtractResult, error) {
			return &webdigest.ExtractResult{Title: title, Content: content}, nil
		},
	}
}

func TestAcquirer_Acquire(t *testing.T) {
	t.Parallel()

	longText := strings.Repeat("内", 300)

	t.Run("rendered backend wins when its content is valid", func(t *testing.T) {
		t.Parallel()

		a := &digest.Acquirer{
			Rendered:          staticFetcher("<html>rendered</html>"),
			RenderedExtractor: staticExtractor("渲染", longText),
			Static:            staticFetcher("<html>static</html>"),
			StaticExtractor:   staticExtractor("静态", longText),
		}

		result, err := a.Acquire(context.Background(), "https://example.com")

		require.NoError(t, err)
		assert.Equal(t, "渲染", result.Title)
	})

	t.Run("falls back to static when rendered content is too short", func(t *testing.T) {
		t.Parallel()

		a := &digest.Acquirer{
			Rendered:          staticFetcher("<html>app shell</html>"),
			RenderedExtractor: staticExtractor("渲染", "加载中..."),
			Static:            staticFetcher("<html>static</html>"),
			StaticExtractor:   staticExtractor("静态", longText),
		}

		result, err := a.Acquire(context.Background(), "https://example.com")

		require.NoError(t, err)
		assert.Equal(t, "静态", result.Title)
	})

	t.Run("falls back to static when rendered fetch fails", func(t *testing.T) {
		t.Parallel()

		a := &digest.Acquirer{
			Rendered: &mock.Fetcher{
				FetchFn: func(ctx context.Context, url string) (string, error) {
					return "", errors.New("browser crashed")
				},
			},
			RenderedExtractor: staticExtractor("渲染", longText),
			Static:            staticFetcher("<html>static</html>"),
			StaticExtractor:   staticExtractor("静态", longText),
		}

		result, err := a.Acquire(context.Background(), "https://example.com")

		require.NoError(t, err)
		assert.Equal(t, "静态", result.Title)
	})

	t.Run("skips the rendered backend when not configured", func(t *testing.T) {
		t.Parallel()

		a := &digest.Acquirer{
			Static:          staticFetcher("<html>static</html>"),
			StaticExtractor: staticExtractor("静态", longText),
		}

		result, err := a.Acquire(context.Background(), "https://example.com")

		require.NoError(t, err)
		assert.Equal(t, "静态", result.Title)
	})

	t.Run("fails when both backends produce unusable content", func(t *testing.T) {
		t.Parallel()

		a := &digest.Acquirer{
			Rendered:          staticFetcher("<html></html>"),
			RenderedExtractor: staticExtractor("渲染", "short"),
			Static:            staticFetcher("<html></html>"),
			StaticExtractor:   staticExtractor("静态", "also short"),
		}

		_, err := a.Acquire(context.Background(), "https://example.com")

		require.Error(t, err)
		assert.Equal(t, webdigest.EUNAVAILABLE, webdigest.ErrorCode(err))
	})

	t.Run("extractor error is treated as a backend miss", func(t *testing.T) {
		t.Parallel()

		a := &digest.Acquirer{
			Rendered: staticFetcher("<html>broken</html>"),
			RenderedExtractor: &mock.Extractor{
				ExtractFn: func(html string) (*webdigest.ExtractResult, error) {
					return nil, webdigest.Errorf(webdigest.EINVALID, "empty document")
				},
			},
			Static:          staticFetcher("<html>static</html>"),
			StaticExtractor: staticExtractor("静态", longText),
		}

		result, err := a.Acquire(context.Background(), "https://example.com")

		require.NoError(t, err)
		assert.Equal(t, "静态", result.Title)
	})
}
