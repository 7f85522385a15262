// Package rod provides a browser-based implementation of webdigest.Fetcher
// for pages that require JavaScript rendering.
package rod

import (
	"context"
	"fmt"
	"time"

	"github.com/fwojciec/webdigest"
	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/stealth"
)

// DefaultFetchTimeout bounds a single rendered fetch. A hung page load is
// bounded only by this; there is no retry.
const DefaultFetchTimeout = 10 * time.Second

// Ensure Fetcher implements webdigest.Fetcher at compile time.
var _ webdigest.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves rendered HTML from URLs using Chrome browser automation.
// Pages are created through stealth so automation markers (e.g.
// navigator.webdriver) are hidden from the visited site.
// Fetcher is safe for concurrent use by multiple goroutines.
type Fetcher struct {
	browser  *rod.Browser
	launcher *launcher.Launcher
	timeout  time.Duration
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithTimeout sets the per-fetch timeout.
// Defaults to DefaultFetchTimeout if not specified.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// NewFetcher creates a new Fetcher that launches a headless Chrome browser.
// Close must be called when the Fetcher is no longer needed.
//
// Returns an error if Chrome/Chromium cannot be found or launched.
func NewFetcher(opts ...Option) (*Fetcher, error) {
	f := &Fetcher{
		timeout: DefaultFetchTimeout,
	}
	for _, opt := range opts {
		opt(f)
	}

	lnchr := launcher.New().
		Set("no-sandbox").
		Set("disable-dev-shm-usage").
		Set("disable-gpu").
		Set("window-size", "1920,1080").
		Leakless(true).
		Headless(true)

	u, err := lnchr.Launch()
	if err != nil {
		return nil, fmt.Errorf("launching browser: %w", err)
	}

	browser := rod.New().ControlURL(u)
	if err := browser.Connect(); err != nil {
		lnchr.Kill() // Clean up launched process on connection failure
		return nil, fmt.Errorf("connecting to browser: %w", err)
	}

	f.browser = browser
	f.launcher = lnchr
	return f, nil
}

// Fetch navigates to the URL, waits for the page to load, and returns the
// rendered HTML.
func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	// Check context before starting
	if err := ctx.Err(); err != nil {
		return "", err
	}

	page, err := stealth.Page(f.browser)
	if err != nil {
		return "", err
	}
	defer page.Close()

	navCtx, cancel := context.WithTimeout(ctx, f.timeout)
	defer cancel()
	page = page.Context(navCtx)

	if err := page.Navigate(url); err != nil {
		return "", err
	}

	if err := page.WaitLoad(); err != nil {
		return "", err
	}

	html, err := page.HTML()
	if err != nil {
		return "", err
	}

	return html, nil
}

// Close releases browser resources.
func (f *Fetcher) Close() error {
	err := f.browser.Close()
	if f.launcher != nil {
		f.launcher.Kill()
	}
	return err
}
