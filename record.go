package webdigest

import (
	"context"
	"time"
)

// SummaryRecord is a persisted fact "URL X was summarized as S at time T".
// Exactly one live row exists per fingerprint; re-processing the same URL
// updates the row in place rather than inserting a duplicate.
type SummaryRecord struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Summary     string    `json:"summary"`
	SourceURL   string    `json:"sourceUrl"`
	Tags        string    `json:"tags"` // free-form, comma-joined labels
	Fingerprint string    `json:"fingerprint"`
	CreatedAt   time.Time `json:"createdAt"` // timestamp of last successful write
}

// Validate returns an error if the record contains invalid fields.
func (r *SummaryRecord) Validate() error {
	if r.Title == "" {
		return Errorf(EINVALID, "summary record title required")
	}
	if r.Summary == "" {
		return Errorf(EINVALID, "summary record summary required")
	}
	if r.SourceURL == "" {
		return Errorf(EINVALID, "summary record source URL required")
	}
	return nil
}

// ManualRecord is a persisted fact "title/content T was entered by hand and
// summarized as S". Hand entries are not deduplicated.
type ManualRecord struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Summary   string    `json:"summary"`
	Tags      string    `json:"tags"`
	CreatedAt time.Time `json:"createdAt"`
}

// Validate returns an error if the record contains invalid fields.
func (r *ManualRecord) Validate() error {
	if r.Title == "" {
		return Errorf(EINVALID, "manual record title required")
	}
	if r.Content == "" {
		return Errorf(EINVALID, "manual record content required")
	}
	return nil
}

// RecordService owns both tables' schema and all row mutation. No other
// component writes rows directly. Storage-layer failures are surfaced to the
// caller as-is, unlike acquisition and summarization failures which degrade
// gracefully upstream.
type RecordService interface {
	// UpsertSummary writes a summary record keyed by the fingerprint of url.
	// If a row with that fingerprint exists, its mutable fields and timestamp
	// are overwritten and the existing id is returned; otherwise a new row is
	// inserted. Atomic with respect to a single caller.
	UpsertSummary(ctx context.Context, title, summary, url, tags string) (int64, error)

	// InsertManual inserts a manually entered record. No dedup.
	InsertManual(ctx context.Context, title, content, summary, tags string) (int64, error)

	// RecentSummaries returns up to limit summary records, descending by id.
	RecentSummaries(ctx context.Context, limit int) ([]*SummaryRecord, error)

	// RecentManual returns up to limit manual records, descending by id.
	RecentManual(ctx context.Context, limit int) ([]*ManualRecord, error)

	// SearchByTag returns summary records whose tags field contains substr,
	// descending by id.
	SearchByTag(ctx context.Context, substr string) ([]*SummaryRecord, error)
}
