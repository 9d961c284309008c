package satisfaction

import (
	"context"

	"github.com/emtionre/satisfaction-service/internal/domain"
)

// DailyResult is the segmented satisfaction curve of one calendar day.
type DailyResult struct {
	Date        string           `json:"date"`
	FirstMinute *string          `json:"first_minute"`
	OverallAvg  *float64         `json:"overall_avg"`
	Segments    []domain.Segment `json:"segments"`
	Records     int              `json:"records"`
}

// DailySegments scores every record of the day, averages per minute and
// splits the minutes into contiguous segments.
func (s *Service) DailySegments(ctx context.Context, date string) (*DailyResult, error) {
	day, err := domain.ParseDate(date)
	if err != nil {
		return nil, err
	}
	date = day.Format(domain.DateLayout)

	key := cacheKeyDaily(date)
	useCache := s.cacheable(day)
	if useCache {
		var cached DailyResult
		if s.fromCache(ctx, "daily", key, &cached) {
			return &cached, nil
		}
	}

	records, err := s.repo.ListRecords(ctx, day, day.AddDate(0, 0, 1))
	if err != nil {
		return nil, err
	}

	agg := domain.AggregateMinutes(records, s.scorer, domain.DailyDecimals)
	segments := domain.SegmentMinutes(agg.Minutes, s.gap)

	out := &DailyResult{
		Date:       date,
		OverallAvg: agg.OverallAvg,
		Segments:   segments,
		Records:    agg.Records,
	}
	if len(segments) > 0 {
		first := segments[0].Start
		out.FirstMinute = &first
	}
	s.obs.ObserveDaily(agg.Records, len(segments))

	if useCache {
		s.toCache(ctx, key, out, s.ttlDay)
	}
	return out, nil
}
