package mock

import (
	"context"

	"github.com/fwojciec/webdigest"
)

var _ webdigest.RecordService = (*RecordService)(nil)

// RecordService is a mock implementation of webdigest.RecordService.
type RecordService struct {
	UpsertSummaryFn   func(ctx context.Context, title, summary, url, tags string) (int64, error)
	InsertManualFn    func(ctx context.Context, title, content, summary, tags string) (int64, error)
	RecentSummariesFn func(ctx context.Context, limit int) ([]*webdigest.SummaryRecord, error)
	RecentManualFn    func(ctx context.Context, limit int) ([]*webdigest.ManualRecord, error)
	SearchByTagFn     func(ctx context.Context, substr string) ([]*webdigest.SummaryRecord, error)
}

func (s *RecordService) UpsertSummary(ctx context.Context, title, summary, url, tags string) (int64, error) {
	return s.UpsertSummaryFn(ctx, title, summary, url, tags)
}

func (s *RecordService) InsertManual(ctx context.Context, title, content, summary, tags string) (int64, error) {
	return s.InsertManualFn(ctx, title, content, summary, tags)
}

func (s *RecordService) RecentSummaries(ctx context.Context, limit int) ([]*webdigest.SummaryRecord, error) {
	return s.RecentSummariesFn(ctx, limit)
}

func (s *RecordService) RecentManual(ctx context.Context, limit int) ([]*webdigest.ManualRecord, error) {
	return s.RecentManualFn(ctx, limit)
}

func (s *RecordService) SearchByTag(ctx context.Context, substr string) ([]*webdigest.SummaryRecord, error) {
	return s.SearchByTagFn(ctx, substr)
}
