package mock

import "github.com/fwojciec/webdigest"

var _ webdigest.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of webdigest.Extractor.
type Extractor struct {
	ExtractFn func(html string) (*webdigest.ExtractResult, error)
}

func (e *Extractor) Extract(html string) (*webdigest.ExtractResult, error) {
	return e.ExtractFn(html)
}
