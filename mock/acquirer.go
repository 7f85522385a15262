package mock

import (
	"context"

	"github.com/fwojciec/webdigest"
)

var _ webdigest.Acquirer = (*Acquirer)(nil)

// Acquirer is a mock implementation of webdigest.Acquirer.
type Acquirer struct {
	AcquireFn func(ctx context.Context, url string) (*webdigest.ExtractResult, error)
}

func (a *Acquirer) Acquire(ctx context.Context, url string) (*webdigest.ExtractResult, error) {
	return a.AcquireFn(ctx, url)
}
