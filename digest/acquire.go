// Package digest provides pipeline orchestration: content acquisition over
// two retrieval backends, the summarization backend chain, and the
// acquire -> title -> summarize -> format -> persist flow.
package digest

import (
	"context"

	"github.com/fwojciec/webdigest"
)

// Ensure Acquirer implements webdigest.Acquirer at compile time.
var _ webdigest.Acquirer = (*Acquirer)(nil)

// Acquirer orchestrates two retrieval backends behind a shared
// minimum-content-length acceptance gate: the rendered-DOM backend is tried
// first, the raw-HTTP backend is the fallback. A backend's fetch or
// extraction error counts the same as content failing the gate; the failure
// is swallowed here and surfaced by the fetchers' logging decorators.
type Acquirer struct {
	// Rendered is the browser-backed fetcher. Optional: when nil (browser
	// unavailable), acquisition goes straight to the static backend.
	Rendered          webdigest.Fetcher
	RenderedExtractor webdigest.Extractor

	// Static is the raw-HTTP fetcher paired with a boilerplate-stripping
	// extractor.
	Static          webdigest.Fetcher
	StaticExtractor webdigest.Extractor
}

// Acquire extracts usable article content from url. It fails only when both
// backends produce content that fails the validation gate; the failure is
// reported, never retried automatically.
func (a *Acquirer) Acquire(ctx context.Context, url string) (*webdigest.ExtractResult, error) {
	if a.Rendered != nil && a.RenderedExtractor != nil {
		if result := tryBackend(ctx, a.Rendered, a.RenderedExtractor, url); result != nil {
			return result, nil
		}
	}

	if result := tryBackend(ctx, a.Static, a.StaticExtractor, url); result != nil {
		return result, nil
	}

	return nil, webdigest.Errorf(webdigest.EUNAVAILABLE, "no usable content extracted from %s", url)
}

// tryBackend runs one fetcher/extractor pair and returns nil unless the
// extracted content passes the validation gate.
func tryBackend(ctx context.Context, fetcher webdigest.Fetcher, extractor webdigest.Extractor, url string) *webdigest.ExtractResult {
	html, err := fetcher.Fetch(ctx, url)
	if err != nil {
		return nil
	}

	result, err := extractor.Extract(html)
	if err != nil {
		return nil
	}

	if !webdigest.ValidContent(result.Content) {
		return nil
	}

	return result
}
