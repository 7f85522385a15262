package sqlite_test

import (
	"context"
	"testing"

	"github.com/fwojciec/webdigest"
	"github.com/fwojciec/webdigest/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mustOpenDB returns an open in-memory database, closed on test cleanup.
func mustOpenDB(t *testing.T) *sqlite.DB {
	t.Helper()
	db := sqlite.NewDB(":memory:")
	require.NoError(t, db.Open())
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func TestRecordService_UpsertSummary(t *testing.T) {
	t.Parallel()

	t.Run("inserts a new record", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewRecordService(mustOpenDB(t))
		ctx := context.Background()

		id, err := svc.UpsertSummary(ctx, "标题", "摘要", "https://example.com/a", "tech")

		require.NoError(t, err)
		assert.Greater(t, id, int64(0))

		records, err := svc.RecentSummaries(ctx, 10)
		require.NoError(t, err)
		require.Len(t, records, 1)
		assert.Equal(t, "标题", records[0].Title)
		assert.Equal(t, webdigest.Fingerprint("https://example.com/a"), records[0].Fingerprint)
		assert.False(t, records[0].CreatedAt.IsZero())
	})

	t.Run("re-processing the same URL updates in place", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewRecordService(mustOpenDB(t))
		ctx := context.Background()

		first, err := svc.UpsertSummary(ctx, "old title", "old summary", "https://example.com/a", "old")
		require.NoError(t, err)

		second, err := svc.UpsertSummary(ctx, "new title", "new summary", "https://example.com/a", "new")
		require.NoError(t, err)

		assert.Equal(t, first, second)

		records, err := svc.RecentSummaries(ctx, 10)
		require.NoError(t, err)
		require.Len(t, records, 1)
		assert.Equal(t, first, records[0].ID)
		assert.Equal(t, "new title", records[0].Title)
		assert.Equal(t, "new summary", records[0].Summary)
		assert.Equal(t, "new", records[0].Tags)
	})

	t.Run("distinct URLs get distinct rows", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewRecordService(mustOpenDB(t))
		ctx := context.Background()

		a, err := svc.UpsertSummary(ctx, "a", "sa", "https://example.com/a", "")
		require.NoError(t, err)
		b, err := svc.UpsertSummary(ctx, "b", "sb", "https://example.com/b", "")
		require.NoError(t, err)

		assert.NotEqual(t, a, b)
	})

	t.Run("rejects empty fields", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewRecordService(mustOpenDB(t))

		_, err := svc.UpsertSummary(context.Background(), "", "summary", "https://example.com", "")

		require.Error(t, err)
		assert.Equal(t, webdigest.EINVALID, webdigest.ErrorCode(err))
	})
}

func TestRecordService_InsertManual(t *testing.T) {
	t.Parallel()

	t.Run("manual entries are not deduplicated", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewRecordService(mustOpenDB(t))
		ctx := context.Background()

		a, err := svc.InsertManual(ctx, "t", "content", "s", "")
		require.NoError(t, err)
		b, err := svc.InsertManual(ctx, "t", "content", "s", "")
		require.NoError(t, err)

		assert.NotEqual(t, a, b)

		records, err := svc.RecentManual(ctx, 10)
		require.NoError(t, err)
		assert.Len(t, records, 2)
	})
}

func TestRecordService_RecentSummaries(t *testing.T) {
	t.Parallel()

	t.Run("returns records descending by id with limit", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewRecordService(mustOpenDB(t))
		ctx := context.Background()

		for _, u := range []string{"https://e.com/1", "https://e.com/2", "https://e.com/3"} {
			_, err := svc.UpsertSummary(ctx, "t", "s", u, "")
			require.NoError(t, err)
		}

		records, err := svc.RecentSummaries(ctx, 2)

		require.NoError(t, err)
		require.Len(t, records, 2)
		assert.Greater(t, records[0].ID, records[1].ID)
		assert.Equal(t, "https://e.com/3", records[0].SourceURL)
	})
}

func TestRecordService_SearchByTag(t *testing.T) {
	t.Parallel()

	t.Run("matches substring containment on tags", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewRecordService(mustOpenDB(t))
		ctx := context.Background()

		_, err := svc.UpsertSummary(ctx, "a", "s", "https://e.com/a", "golang,databases")
		require.NoError(t, err)
		_, err = svc.UpsertSummary(ctx, "b", "s", "https://e.com/b", "frontend")
		require.NoError(t, err)

		records, err := svc.SearchByTag(ctx, "lang")

		require.NoError(t, err)
		require.Len(t, records, 1)
		assert.Equal(t, "a", records[0].Title)
	})

	t.Run("no match returns empty", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewRecordService(mustOpenDB(t))

		records, err := svc.SearchByTag(context.Background(), "nothing")

		require.NoError(t, err)
		assert.Empty(t, records)
	})
}
