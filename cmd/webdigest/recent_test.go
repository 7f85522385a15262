package main

import (
	"context"
	"testing"
	"time"

	"github.com/fwojciec/webdigest"
	"github.com/fwojciec/webdigest/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecentCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("lists summary records", func(t *testing.T) {
		t.Parallel()

		var gotLimit int
		records := &mock.RecordService{
			RecentSummariesFn: func(ctx context.Context, limit int) ([]*webdigest.SummaryRecord, error) {
				gotLimit = limit
				return []*webdigest.SummaryRecord{
					{ID: 2, Title: "新文章", SourceURL: "https://e.com/b", CreatedAt: time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)},
					{ID: 1, Title: "旧文章", SourceURL: "https://e.com/a", CreatedAt: time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC)},
				}, nil
			},
		}
		deps, stdout, _ := testDeps(nil, records)

		cmd := &RecentCmd{Limit: 5}
		require.NoError(t, cmd.Run(deps))

		assert.Equal(t, 5, gotLimit)
		output := stdout.String()
		assert.Contains(t, output, "新文章")
		assert.Contains(t, output, "2026-08-01")
		assert.Contains(t, output, "https://e.com/a")
	})

	t.Run("lists manual entries with --manual", func(t *testing.T) {
		t.Parallel()

		records := &mock.RecordService{
			RecentManualFn: func(ctx context.Context, limit int) ([]*webdigest.ManualRecord, error) {
				return []*webdigest.ManualRecord{
					{ID: 1, Title: "手动条目", CreatedAt: time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)},
				}, nil
			},
		}
		deps, stdout, _ := testDeps(nil, records)

		cmd := &RecentCmd{Limit: 10, Manual: true}
		require.NoError(t, cmd.Run(deps))
		assert.Contains(t, stdout.String(), "手动条目")
	})

	t.Run("empty store prints a hint", func(t *testing.T) {
		t.Parallel()

		records := &mock.RecordService{
			RecentSummariesFn: func(ctx context.Context, limit int) ([]*webdigest.SummaryRecord, error) {
				return nil, nil
			},
		}
		deps, stdout, _ := testDeps(nil, records)

		cmd := &RecentCmd{Limit: 10}
		require.NoError(t, cmd.Run(deps))
		assert.Contains(t, stdout.String(), "No records found")
	})
}

func TestSearchCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("lists matching records", func(t *testing.T) {
		t.Parallel()

		var gotSubstr string
		records := &mock.RecordService{
			SearchByTagFn: func(ctx context.Context, substr string) ([]*webdigest.SummaryRecord, error) {
				gotSubstr = substr
				return []*webdigest.SummaryRecord{
					{ID: 1, Title: "文章", Tags: "golang", SourceURL: "https://e.com/a"},
				}, nil
			},
		}
		deps, stdout, _ := testDeps(nil, records)

		cmd := &SearchCmd{Tag: "go"}
		require.NoError(t, cmd.Run(deps))

		assert.Equal(t, "go", gotSubstr)
		assert.Contains(t, stdout.String(), "[golang]")
	})

	t.Run("no match prints a message", func(t *testing.T) {
		t.Parallel()

		records := &mock.RecordService{
			SearchByTagFn: func(ctx context.Context, substr string) ([]*webdigest.SummaryRecord, error) {
				return nil, nil
			},
		}
		deps, stdout, _ := testDeps(nil, records)

		cmd := &SearchCmd{Tag: "nothing"}
		require.NoError(t, cmd.Run(deps))
		assert.Contains(t, stdout.String(), "No records tagged")
	})
}
