// Package goquery provides a strategy-based implementation of
// webdigest.Extractor over parsed HTML documents.
package goquery

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/webdigest"
)

// Ensure Extractor implements webdigest.Extractor at compile time.
var _ webdigest.Extractor = (*Extractor)(nil)

// contentClassRE matches class attributes that hint at main content.
var contentClassRE = regexp.MustCompile(`(?i)article|content|main|post|entry`)

// whitespaceRE collapses runs of whitespace in extracted text.
var whitespaceRE = regexp.MustCompile(`\s+`)

// Extractor extracts article text by running an ordered strategy list, most
// specific first, stopping at the first strategy whose text exceeds the
// acceptance floor. The final whole-page strategy always yields a result.
type Extractor struct {
	stripBoilerplate bool
}

// Option configures an Extractor.
type Option func(*Extractor)

// WithBoilerplateRemoval strips navigation, header, footer, and aside
// regions from the parse tree before strategy evaluation. Intended for
// raw-HTTP HTML; rendered-DOM extraction queries specific selectors so this
// noise is excluded by construction. Script and style contents are never
// visible text and are removed regardless of this option.
func WithBoilerplateRemoval() Option {
	return func(e *Extractor) {
		e.stripBoilerplate = true
	}
}

// NewExtractor creates a new Extractor.
func NewExtractor(opts ...Option) *Extractor {
	e := &Extractor{}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// strategy is one entry in the ordered extraction list.
type strategy struct {
	name    string
	extract func(doc *goquery.Document) string
}

// strategies in order, most specific first. The whole-page backstop is
// applied separately and cannot itself fail.
var strategies = []strategy{
	{name: "article", extract: extractArticle},
	{name: "main", extract: extractMain},
	{name: "content-class", extract: extractContentClass},
	{name: "paragraphs", extract: extractParagraphs},
}

// Extract processes raw HTML and returns the extracted title and content.
func (e *Extractor) Extract(rawHTML string) (*webdigest.ExtractResult, error) {
	if rawHTML == "" {
		return nil, webdigest.Errorf(webdigest.EINVALID, "empty HTML input")
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		return nil, webdigest.Errorf(webdigest.EINVALID, "failed to parse HTML: %v", err)
	}

	title := cleanTitle(doc.Find("title").First().Text())

	// Script and style text is not visible page text under any strategy,
	// the whole-page backstop included.
	doc.Find("script, style").Remove()
	if e.stripBoilerplate {
		doc.Find("nav, header, footer, aside").Remove()
	}

	content := ""
	for _, s := range strategies {
		candidate := collapseWhitespace(s.extract(doc))
		if len([]rune(candidate)) > webdigest.MinStrategyContent {
			content = candidate
			break
		}
	}
	if content == "" {
		content = collapseWhitespace(extractWholePage(doc))
	}

	return &webdigest.ExtractResult{
		Title:   title,
		Content: content,
	}, nil
}

// extractArticle joins the text of all article elements.
func extractArticle(doc *goquery.Document) string {
	var parts []string
	doc.Find("article").Each(func(_ int, sel *goquery.Selection) {
		parts = append(parts, sel.Text())
	})
	return strings.Join(parts, " ")
}

// extractMain returns the text of the first main element.
func extractMain(doc *goquery.Document) string {
	return doc.Find("main").First().Text()
}

// extractContentClass joins the text of div and section elements whose class
// attribute hints at main content.
func extractContentClass(doc *goquery.Document) string {
	var parts []string
	doc.Find("div[class], section[class]").Each(func(_ int, sel *goquery.Selection) {
		class, _ := sel.Attr("class")
		if contentClassRE.MatchString(class) {
			parts = append(parts, sel.Text())
		}
	})
	return strings.Join(parts, " ")
}

// extractParagraphs joins paragraph elements whose individual text exceeds
// the paragraph length floor.
func extractParagraphs(doc *goquery.Document) string {
	var parts []string
	doc.Find("p").Each(func(_ int, sel *goquery.Selection) {
		text := strings.TrimSpace(sel.Text())
		if len([]rune(text)) > webdigest.MinParagraphLength {
			parts = append(parts, text)
		}
	})
	return strings.Join(parts, " ")
}

// extractWholePage returns the page's visible text. Always available.
func extractWholePage(doc *goquery.Document) string {
	if body := doc.Find("body"); body.Length() > 0 {
		return body.Text()
	}
	return doc.Text()
}

// cleanTitle trims a declared title and substitutes the untitled sentinel
// when the page has none.
func cleanTitle(title string) string {
	title = strings.TrimSpace(title)
	if title == "" {
		return webdigest.UntitledSentinel
	}
	return title
}

// collapseWhitespace reduces whitespace runs to single spaces and trims.
func collapseWhitespace(s string) string {
	return strings.TrimSpace(whitespaceRE.ReplaceAllString(s, " "))
}
