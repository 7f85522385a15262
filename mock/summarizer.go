package mock

import (
	"context"

	"github.com/fwojciec/webdigest"
)

var _ webdigest.Summarizer = (*Summarizer)(nil)

// Summarizer is a mock implementation of webdigest.Summarizer.
type Summarizer struct {
	SummarizeFn func(ctx context.Context, content, title string) string
	TitleForFn  func(ctx context.Context, content string) string
}

func (s *Summarizer) Summarize(ctx context.Context, content, title string) string {
	return s.SummarizeFn(ctx, content, title)
}

func (s *Summarizer) TitleFor(ctx context.Context, content string) string {
	return s.TitleForFn(ctx, content)
}
