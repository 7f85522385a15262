package digest

import (
	"context"

	"github.com/fwojciec/webdigest"
)

// Pipeline composes acquisition, summarization, formatting, and persistence
// into one run per submitted URL or manual entry. No stage is retried
// automatically; a caller that wants retry re-submits the whole item, which
// is safe because persistence is an idempotent upsert.
type Pipeline struct {
	Acquirer   webdigest.Acquirer
	Summarizer webdigest.Summarizer
	Records    webdigest.RecordService
}

// Outcome reports what one successful pipeline run produced.
type Outcome struct {
	ID      int64
	Title   string
	Summary string
	Post    string
}

// ProcessURL runs acquire -> title -> summarize -> format -> persist for one
// URL. Acquisition failure ends the run cleanly with nothing written.
// Persistence failure is fatal and propagates as-is.
func (p *Pipeline) ProcessURL(ctx context.Context, url, tags string) (*Outcome, error) {
	result, err := p.Acquirer.Acquire(ctx, url)
	if err != nil {
		return nil, err
	}

	title := p.Summarizer.TitleFor(ctx, result.Content)
	summary := p.Summarizer.Summarize(ctx, result.Content, title)
	post := webdigest.FormatPost(title, summary, url)

	id, err := p.Records.UpsertSummary(ctx, title, summary, url, tags)
	if err != nil {
		return nil, err
	}

	return &Outcome{
		ID:      id,
		Title:   title,
		Summary: summary,
		Post:    post,
	}, nil
}

// ProcessManual summarizes hand-entered content and persists it. Manual
// entries keep the title the user supplied and are never deduplicated.
func (p *Pipeline) ProcessManual(ctx context.Context, title, content, tags string) (*Outcome, error) {
	if title == "" || content == "" {
		return nil, webdigest.Errorf(webdigest.EINVALID, "manual entry title and content required")
	}

	summary := p.Summarizer.Summarize(ctx, content, title)

	id, err := p.Records.InsertManual(ctx, title, content, summary, tags)
	if err != nil {
		return nil, err
	}

	return &Outcome{
		ID:      id,
		Title:   title,
		Summary: summary,
	}, nil
}
