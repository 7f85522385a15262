package webdigest

import "context"

// Acquirer produces usable article content for a URL, or fails.
// Acquisition failure is terminal for a pipeline run but never fatal to the
// caller; it is reported, not retried.
type Acquirer interface {
	Acquire(ctx context.Context, url string) (*ExtractResult, error)
}
