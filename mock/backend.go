package mock

import (
	"context"

	"github.com/fwojciec/webdigest"
)

var _ webdigest.Backend = (*Backend)(nil)

// Backend is a mock implementation of webdigest.Backend.
type Backend struct {
	NameFn      func() string
	SummarizeFn func(ctx context.Context, content, title string) (string, error)
	TitleFn     func(ctx context.Context, content string) (string, error)
}

func (b *Backend) Name() string {
	if b.NameFn == nil {
		return "mock"
	}
	return b.NameFn()
}

func (b *Backend) Summarize(ctx context.Context, content, title string) (string, error) {
	return b.SummarizeFn(ctx, content, title)
}

func (b *Backend) Title(ctx context.Context, content string) (string, error) {
	return b.TitleFn(ctx, content)
}
