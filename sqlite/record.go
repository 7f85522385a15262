package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/fwojciec/webdigest"
)

// Compile-time interface verification.
var _ webdigest.RecordService = (*RecordService)(nil)

// RecordService implements webdigest.RecordService using SQLite.
type RecordService struct {
	db *DB
}

// NewRecordService creates a new RecordService.
func NewRecordService(db *DB) *RecordService {
	return &RecordService{db: db}
}

// UpsertSummary writes a summary record keyed by the fingerprint of url.
// The read-then-write runs in a transaction so no partial write is visible
// and two callers targeting the same URL cannot both insert.
func (s *RecordService) UpsertSummary(ctx context.Context, title, summary, url, tags string) (int64, error) {
	rec := &webdigest.SummaryRecord{
		Title:     title,
		Summary:   summary,
		SourceURL: url,
		Tags:      tags,
	}
	if err := rec.Validate(); err != nil {
		return 0, err
	}

	fingerprint := webdigest.Fingerprint(url)
	now := time.Now().UTC().Format(time.RFC3339)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, err
	}
	defer tx.Rollback()

	var id int64
	err = tx.QueryRowContext(ctx,
		`SELECT id FROM content_summary WHERE fingerprint = ?`, fingerprint).Scan(&id)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		result, err := tx.ExecContext(ctx, `
			INSERT INTO content_summary (title, created_time, summary, original_url, tags, fingerprint)
			VALUES (?, ?, ?, ?, ?, ?)
		`, title, now, summary, url, tags, fingerprint)
		if err != nil {
			return 0, err
		}
		id, err = result.LastInsertId()
		if err != nil {
			return 0, err
		}
	case err != nil:
		return 0, err
	default:
		if _, err := tx.ExecContext(ctx, `
			UPDATE content_summary
			SET title = ?, created_time = ?, summary = ?, original_url = ?, tags = ?
			WHERE id = ?
		`, title, now, summary, url, tags, id); err != nil {
			return 0, err
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, err
	}
	return id, nil
}

// InsertManual inserts a manually entered record. No dedup.
func (s *RecordService) InsertManual(ctx context.Context, title, content, summary, tags string) (int64, error) {
	rec := &webdigest.ManualRecord{
		Title:   title,
		Content: content,
	}
	if err := rec.Validate(); err != nil {
		return 0, err
	}

	now := time.Now().UTC().Format(time.RFC3339)

	result, err := s.db.ExecContext(ctx, `
		INSERT INTO manual_content (title, content, created_time, summary, tags)
		VALUES (?, ?, ?, ?, ?)
	`, title, content, now, summary, tags)
	if err != nil {
		return 0, err
	}
	return result.LastInsertId()
}

// RecentSummaries returns up to limit summary records, descending by id.
func (s *RecordService) RecentSummaries(ctx context.Context, limit int) ([]*webdigest.SummaryRecord, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, title, created_time, summary, original_url, tags, fingerprint
		FROM content_summary
		ORDER BY id DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanSummaries(rows)
}

// SearchByTag returns summary records whose tags field contains substr,
// descending by id.
func (s *RecordService) SearchByTag(ctx context.Context, substr string) ([]*webdigest.SummaryRecord, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, title, created_time, summary, original_url, tags, fingerprint
		FROM content_summary
		WHERE tags LIKE ?
		ORDER BY id DESC
	`, "%"+substr+"%")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanSummaries(rows)
}

// RecentManual returns up to limit manual records, descending by id.
func (s *RecordService) RecentManual(ctx context.Context, limit int) ([]*webdigest.ManualRecord, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, title, content, created_time, summary, tags
		FROM manual_content
		ORDER BY id DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []*webdigest.ManualRecord
	for rows.Next() {
		var rec webdigest.ManualRecord
		var createdTime string
		if err := rows.Scan(&rec.ID, &rec.Title, &rec.Content, &createdTime, &rec.Summary, &rec.Tags); err != nil {
			return nil, err
		}
		rec.CreatedAt, err = parseTime(createdTime)
		if err != nil {
			return nil, err
		}
		records = append(records, &rec)
	}
	return records, rows.Err()
}

// scanSummaries reads summary record rows.
func scanSummaries(rows *sql.Rows) ([]*webdigest.SummaryRecord, error) {
	var records []*webdigest.SummaryRecord
	for rows.Next() {
		var rec webdigest.SummaryRecord
		var createdTime string
		if err := rows.Scan(&rec.ID, &rec.Title, &createdTime, &rec.Summary,
			&rec.SourceURL, &rec.Tags, &rec.Fingerprint); err != nil {
			return nil, err
		}
		var err error
		rec.CreatedAt, err = parseTime(createdTime)
		if err != nil {
			return nil, err
		}
		records = append(records, &rec)
	}
	return records, rows.Err()
}

// legacyTimeLayout is the timestamp format written by pre-migration schema
// versions.
const legacyTimeLayout = "2006-01-02 15:04:05"

// parseTime accepts both the RFC3339 timestamps this store writes and the
// legacy layout found in rows that predate the migration.
func parseTime(value string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}
	return time.Parse(legacyTimeLayout, value)
}
