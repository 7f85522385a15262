// Package readability provides an alternative webdigest.Extractor built on
// go-readability's boilerplate removal.
package readability

import (
	"regexp"
	"strings"

	"github.com/fwojciec/webdigest"
	"github.com/go-shiori/go-readability"
)

// Ensure Extractor implements webdigest.Extractor at compile time.
var _ webdigest.Extractor = (*Extractor)(nil)

var whitespaceRE = regexp.MustCompile(`\s+`)

// Extractor wraps go-readability to extract main content from HTML.
// Unlike the strategy-based goquery extractor it has no fixed fallthrough
// order; readability scores the DOM itself. It can fail on pages with no
// recognizable article, so it is only offered as an opt-in alternative for
// the raw-HTTP backend.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract processes raw HTML and returns the main content as visible text.
func (e *Extractor) Extract(rawHTML string) (*webdigest.ExtractResult, error) {
	if rawHTML == "" {
		return nil, webdigest.Errorf(webdigest.EINVALID, "empty HTML input")
	}

	article, err := readability.FromReader(strings.NewReader(rawHTML), nil)
	if err != nil {
		return nil, err
	}

	title := strings.TrimSpace(article.Title)
	if title == "" {
		title = webdigest.UntitledSentinel
	}

	content := strings.TrimSpace(whitespaceRE.ReplaceAllString(article.TextContent, " "))

	return &webdigest.ExtractResult{
		Title:   title,
		Content: content,
	}, nil
}
