package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/fwojciec/webdigest"
)

// migration is one idempotent schema step. Steps check current state before
// altering it, so re-running the whole sequence on an already-migrated
// database is a no-op.
type migration struct {
	name string
	run  func(ctx context.Context, tx *sql.Tx) error
}

// migrations in execution order. The fingerprint steps heal databases
// written by schema versions that predate the column: add it, backfill it
// from each row's stored URL, then collapse duplicate fingerprints keeping
// the newest row.
var migrations = []migration{
	{name: "create content_summary", run: createContentSummary},
	{name: "create manual_content", run: createManualContent},
	{name: "add fingerprint column", run: addFingerprintColumn},
	{name: "backfill fingerprint", run: backfillFingerprint},
	{name: "dedup by fingerprint", run: dedupByFingerprint},
	{name: "create indexes", run: createIndexes},
}

// migrate runs all migration steps in one transaction, so a half-applied
// migration is never visible.
func (db *DB) migrate(ctx context.Context) error {
	tx, err := db.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for _, m := range migrations {
		if err := m.run(ctx, tx); err != nil {
			return fmt.Errorf("migration %q: %w", m.name, err)
		}
	}

	return tx.Commit()
}

func createContentSummary(ctx context.Context, tx *sql.Tx) error {
	_, err := tx.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS content_summary (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			title TEXT NOT NULL,
			created_time TEXT NOT NULL,
			summary TEXT NOT NULL,
			original_url TEXT NOT NULL,
			tags TEXT NOT NULL DEFAULT '',
			fingerprint TEXT NOT NULL DEFAULT ''
		)
	`)
	return err
}

func createManualContent(ctx context.Context, tx *sql.Tx) error {
	_, err := tx.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS manual_content (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			title TEXT NOT NULL,
			content TEXT NOT NULL,
			created_time TEXT NOT NULL,
			summary TEXT NOT NULL DEFAULT '',
			tags TEXT NOT NULL DEFAULT ''
		)
	`)
	return err
}

// addFingerprintColumn alters legacy content_summary tables that predate the
// fingerprint column. Check-before-alter: ALTER TABLE ADD COLUMN is not
// idempotent on its own.
func addFingerprintColumn(ctx context.Context, tx *sql.Tx) error {
	has, err := hasColumn(ctx, tx, "content_summary", "fingerprint")
	if err != nil {
		return err
	}
	if has {
		return nil
	}
	_, err = tx.ExecContext(ctx,
		`ALTER TABLE content_summary ADD COLUMN fingerprint TEXT NOT NULL DEFAULT ''`)
	return err
}

// backfillFingerprint computes the digest of each row's stored URL for rows
// lacking a fingerprint value.
func backfillFingerprint(ctx context.Context, tx *sql.Tx) error {
	rows, err := tx.QueryContext(ctx,
		`SELECT id, original_url FROM content_summary WHERE fingerprint IS NULL OR fingerprint = ''`)
	if err != nil {
		return err
	}
	defer rows.Close()

	type backfill struct {
		id  int64
		url string
	}
	var pending []backfill
	for rows.Next() {
		var b backfill
		if err := rows.Scan(&b.id, &b.url); err != nil {
			return err
		}
		pending = append(pending, b)
	}
	if err := rows.Err(); err != nil {
		return err
	}

	for _, b := range pending {
		if _, err := tx.ExecContext(ctx,
			`UPDATE content_summary SET fingerprint = ? WHERE id = ?`,
			webdigest.Fingerprint(b.url), b.id); err != nil {
			return err
		}
	}
	return nil
}

// dedupByFingerprint keeps only the highest-id row for every fingerprint
// shared by more than one row.
func dedupByFingerprint(ctx context.Context, tx *sql.Tx) error {
	_, err := tx.ExecContext(ctx, `
		DELETE FROM content_summary
		WHERE id NOT IN (
			SELECT MAX(id) FROM content_summary GROUP BY fingerprint
		)
	`)
	return err
}

// createIndexes is last: the unique fingerprint index can only be created
// once backfill and dedup have run.
func createIndexes(ctx context.Context, tx *sql.Tx) error {
	if _, err := tx.ExecContext(ctx,
		`CREATE UNIQUE INDEX IF NOT EXISTS idx_content_summary_fingerprint ON content_summary(fingerprint)`); err != nil {
		return err
	}
	_, err := tx.ExecContext(ctx,
		`CREATE INDEX IF NOT EXISTS idx_content_summary_tags ON content_summary(tags)`)
	return err
}

// hasColumn reports whether a table already has the named column.
func hasColumn(ctx context.Context, tx *sql.Tx, table, column string) (bool, error) {
	rows, err := tx.QueryContext(ctx, fmt.Sprintf("PRAGMA table_info(%s)", table))
	if err != nil {
		return false, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			cid        int
			name, typ  string
			notNull    int
			dfltValue  sql.NullString
			primaryKey int
		)
		if err := rows.Scan(&cid, &name, &typ, &notNull, &dfltValue, &primaryKey); err != nil {
			return false, err
		}
		if name == column {
			return true, nil
		}
	}
	return false, rows.Err()
}
