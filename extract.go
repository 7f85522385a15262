package webdigest

import "strings"

// Acceptance thresholds for extracted page content. Character counts are
// rune counts since most source content is CJK text.
const (
	// MinValidContent is the validity floor: acquired content shorter than
	// this (after trimming) is treated as an acquisition failure.
	MinValidContent = 50

	// MinStrategyContent is the per-strategy acceptance floor: an extraction
	// strategy whose text does not exceed this falls through to the next.
	MinStrategyContent = 100

	// MinParagraphLength is the floor for individual paragraph-like elements
	// considered by the paragraph-concatenation strategy.
	MinParagraphLength = 20
)

// UntitledSentinel is the title used when a page declares no usable title.
const UntitledSentinel = "无标题"

// ExtractResult holds the content extracted from one page.
type ExtractResult struct {
	// Title is the document's declared title, trimmed. Never empty:
	// UntitledSentinel is substituted when the page has none.
	Title string

	// Content is the extracted visible text with whitespace collapsed.
	Content string
}

// Extractor extracts usable article text from messy HTML by running an
// ordered strategy list, most specific first, ending in a whole-page
// backstop that cannot fail.
type Extractor interface {
	Extract(html string) (*ExtractResult, error)
}

// ValidContent reports whether extracted content passes the minimum-length
// acceptance gate applied before content is considered usable.
func ValidContent(content string) bool {
	return len([]rune(strings.TrimSpace(content))) >= MinValidContent
}
