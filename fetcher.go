package webdigest

import "context"

// Fetcher retrieves raw or rendered HTML from URLs.
// Implementations may use browser automation to handle JavaScript-rendered
// content, or a plain HTTP client for static pages.
type Fetcher interface {
	// Fetch retrieves the page at url and returns its HTML.
	// The context controls timeout and cancellation.
	Fetch(ctx context.Context, url string) (html string, err error)

	// Close releases any resources held by the fetcher.
	// Must be called when the Fetcher is no longer needed.
	Close() error
}
