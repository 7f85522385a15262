package digest

import (
	"context"
	"net/url"
	"sync"

	"github.com/fwojciec/webdigest"
	"golang.org/x/sync/errgroup"
)

// BatchProgress reports the outcome of one batch item.
type BatchProgress struct {
	URL       string
	Completed int
	Total     int
	Err       error
}

// BatchProgressFunc is called as batch items finish.
type BatchProgressFunc func(BatchProgress)

// BatchResult summarizes a batch run.
type BatchResult struct {
	Processed int
	Failed    int
}

// BatchRunner processes many URLs through one pipeline. The reference flow
// is strictly sequential; a concurrency above one fans items out through an
// errgroup. Re-running a batch is safe because persistence is an idempotent
// upsert, so a crashed run loses at most its in-flight items.
type BatchRunner struct {
	Pipeline *Pipeline

	// Limiter spaces out requests per domain. Optional.
	Limiter *DomainLimiter

	// Concurrency bounds parallel items. Values below one mean sequential.
	Concurrency int
}

// Run processes urls in order. Acquisition failures are reported through
// progress and counted, then the run continues with the next item; storage
// failures abort the whole run.
func (r *BatchRunner) Run(ctx context.Context, urls []string, tags string, progress BatchProgressFunc) (*BatchResult, error) {
	concurrency := r.Concurrency
	if concurrency < 1 {
		concurrency = 1
	}

	var (
		mu        sync.Mutex
		completed int
		result    BatchResult
	)
	total := len(urls)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	for _, u := range urls {
		g.Go(func() error {
			if r.Limiter != nil {
				if err := r.Limiter.Wait(gctx, domainOf(u)); err != nil {
					return err
				}
			}

			_, err := r.Pipeline.ProcessURL(gctx, u, tags)

			mu.Lock()
			completed++
			done := completed
			if err != nil {
				result.Failed++
			} else {
				result.Processed++
			}
			mu.Unlock()

			if progress != nil {
				progress(BatchProgress{URL: u, Completed: done, Total: total, Err: err})
			}

			// Storage failures are fatal to the run; acquisition failures
			// only fail the item.
			if err != nil && isFatal(err) {
				return err
			}
			return nil
		})
	}

	err := g.Wait()
	return &result, err
}

// isFatal reports whether a pipeline error must abort the batch. Acquisition
// and validation failures are item-level; anything else means storage.
func isFatal(err error) bool {
	switch webdigest.ErrorCode(err) {
	case webdigest.EUNAVAILABLE, webdigest.EINVALID:
		return false
	}
	return true
}

// domainOf extracts the host for rate limiting; unparseable URLs share one
// bucket.
func domainOf(raw string) string {
	u, err := url.Parse(raw)
	if err != nil || u.Host == "" {
		return "unknown"
	}
	return u.Host
}
