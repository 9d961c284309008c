package domain

import (
	"strings"
	"time"
)

const (
	DateLayout      = "2006-01-02"
	ClockLayout     = "15:04"
	DateTimeLayout  = "2006-01-02 15:04:05"
	minuteKeyLayout = "2006-01-02 15:04:00"
)

// Naive keeps the wall-clock fields of t and drops its zone. All minute
// arithmetic happens on naive values so DST shifts never move a key.
func Naive(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), time.UTC)
}

// MinuteKey formats t as "YYYY-MM-DD HH:mm:00".
func MinuteKey(t time.Time) string {
	return Naive(t).Format(minuteKeyLayout)
}

func ParseMinuteKey(key string) (time.Time, error) {
	return time.ParseInLocation(DateTimeLayout, key, time.UTC)
}

// ParseDate parses a strict YYYY-MM-DD calendar date as naive midnight.
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if len(s) != len(DateLayout) {
		return time.Time{}, ErrValidationMeta("invalid date", map[string]string{
			"date": "expected YYYY-MM-DD",
		})
	}
	t, err := time.ParseInLocation(DateLayout, s, time.UTC)
	if err != nil {
		return time.Time{}, ErrValidationMeta("invalid date", map[string]string{
			"date": "expected YYYY-MM-DD",
		})
	}
	return t, nil
}

// ParseClock parses a strict 24-hour HH:mm time of day as an offset from midnight.
func ParseClock(s string) (time.Duration, error) {
	s = strings.TrimSpace(s)
	if len(s) != len(ClockLayout) {
		return 0, ErrValidationMeta("invalid time", map[string]string{
			"time": "expected HH:mm",
		})
	}
	t, err := time.ParseInLocation(ClockLayout, s, time.UTC)
	if err != nil {
		return 0, ErrValidationMeta("invalid time", map[string]string{
			"time": "expected HH:mm",
		})
	}
	return time.Duration(t.Hour())*time.Hour + time.Duration(t.Minute())*time.Minute, nil
}
