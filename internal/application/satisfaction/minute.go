package satisfaction

import (
	"context"
	"time"

	"github.com/emtionre/satisfaction-service/internal/domain"
)

// RecordPoint is one scored record inside a single minute.
type RecordPoint struct {
	Index     int     `json:"index"`
	Timestamp string  `json:"timestamp"`
	Hour      string  `json:"hour"`
	Minute    string  `json:"minute"`
	Second    string  `json:"second"`
	MinuteKey string  `json:"minuteKey"`
	Value     float64 `json:"value"`
}

type MinuteResult struct {
	Date      string        `json:"date"`
	Time      string        `json:"time"`
	MinuteKey string        `json:"minuteKey"`
	Start     string        `json:"start"`
	End       string        `json:"end"`
	Avg       *float64      `json:"avg"`
	Count     int           `json:"count"`
	Points    []RecordPoint `json:"points"`
}

// MinuteDetail returns every record of one minute with its own score.
// Point values are rounded to 4 decimals and avg is the mean of those
// rounded values.
func (s *Service) MinuteDetail(ctx context.Context, date, clock string) (*MinuteResult, error) {
	day, err := domain.ParseDate(date)
	if err != nil {
		return nil, err
	}
	offset, err := domain.ParseClock(clock)
	if err != nil {
		return nil, err
	}

	start := day.Add(offset)
	end := start.Add(time.Minute)
	date = day.Format(domain.DateLayout)
	clock = start.Format(domain.ClockLayout)

	key := cacheKeyMinute(date, clock)
	useCache := s.cacheable(day)
	if useCache {
		var cached MinuteResult
		if s.fromCache(ctx, "minute", key, &cached) {
			return &cached, nil
		}
	}

	records, err := s.repo.ListRecords(ctx, start, end)
	if err != nil {
		return nil, err
	}

	out := &MinuteResult{
		Date:      date,
		Time:      clock,
		MinuteKey: clock,
		Start:     start.Format(domain.DateTimeLayout),
		End:       end.Format(domain.DateTimeLayout),
		Points:    make([]RecordPoint, 0, len(records)),
	}

	var sum float64
	for i, r := range records {
		ts := domain.Naive(r.Timestamp)
		v := domain.Round(s.scorer.Derive(r), domain.DetailDecimals)
		sum += v
		out.Points = append(out.Points, RecordPoint{
			Index:     i,
			Timestamp: ts.Format(domain.DateTimeLayout),
			Hour:      ts.Format("15"),
			Minute:    ts.Format("04"),
			Second:    ts.Format("05"),
			MinuteKey: ts.Format(domain.ClockLayout),
			Value:     v,
		})
	}
	out.Count = len(out.Points)
	if out.Count > 0 {
		avg := domain.Round(sum/float64(out.Count), domain.DetailDecimals)
		out.Avg = &avg
		out.MinuteKey = out.Points[0].MinuteKey
	}
	s.obs.ObserveMinute(out.Count)

	if useCache {
		s.toCache(ctx, key, out, s.ttlMinute)
	}
	return out, nil
}
