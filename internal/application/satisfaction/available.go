package satisfaction

import (
	"context"
	"strconv"
	"strings"

	"github.com/emtionre/satisfaction-service/internal/domain"
)

const (
	DefaultDatesLimit = 30
	MaxDatesLimit     = 365
)

// TimeSlot is one minute of a day that has at least one record.
type TimeSlot struct {
	Time  string `json:"time"`
	First string `json:"first"`
	Last  string `json:"last"`
	Count int    `json:"count"`
}

type TimesResult struct {
	Date  string     `json:"date"`
	Times []TimeSlot `json:"times"`
}

// AvailableTimes lists the minutes of the day that hold records, ascending.
func (s *Service) AvailableTimes(ctx context.Context, date string) (*TimesResult, error) {
	day, err := domain.ParseDate(date)
	if err != nil {
		return nil, err
	}
	date = day.Format(domain.DateLayout)

	key := cacheKeyTimes(date)
	useCache := s.cacheable(day)
	if useCache {
		var cached TimesResult
		if s.fromCache(ctx, "times", key, &cached) {
			return &cached, nil
		}
	}

	stamps, err := s.repo.ListTimestamps(ctx, day, day.AddDate(0, 0, 1))
	if err != nil {
		return nil, err
	}

	out := &TimesResult{Date: date, Times: make([]TimeSlot, 0)}
	for _, ts := range stamps {
		ts = domain.Naive(ts)
		hhmm := ts.Format(domain.ClockLayout)
		full := ts.Format(domain.DateTimeLayout)

		n := len(out.Times)
		if n > 0 && out.Times[n-1].Time == hhmm {
			slot := &out.Times[n-1]
			slot.Count++
			if full > slot.Last {
				slot.Last = full
			}
			if full < slot.First {
				slot.First = full
			}
			continue
		}
		out.Times = append(out.Times, TimeSlot{Time: hhmm, First: full, Last: full, Count: 1})
	}

	if useCache {
		s.toCache(ctx, key, out, s.ttlDay)
	}
	return out, nil
}

// AvailableDates lists the most recent days holding records, newest first.
func (s *Service) AvailableDates(ctx context.Context, limit int) ([]domain.DateCount, error) {
	return s.repo.ListDates(ctx, ClampLimit(limit))
}

// ParseLimit reads the leading integer of a limit query value, so "7.9"
// and "5abc" both count. No digits or zero falls back to DefaultDatesLimit.
func ParseLimit(raw string) int {
	s := strings.TrimLeft(raw, " \t\r\n")
	end := 0
	if end < len(s) && (s[end] == '+' || s[end] == '-') {
		end++
	}
	digits := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == digits {
		return DefaultDatesLimit
	}

	n, err := strconv.Atoi(s[:end])
	if err != nil {
		// out of int range; the sign still decides the clamp side
		if s[0] == '-' {
			return 1
		}
		return MaxDatesLimit
	}
	if n == 0 {
		return DefaultDatesLimit
	}
	return ClampLimit(n)
}

func ClampLimit(n int) int {
	switch {
	case n < 1:
		return 1
	case n > MaxDatesLimit:
		return MaxDatesLimit
	}
	return n
}
