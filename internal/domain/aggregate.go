package domain

import (
	"sort"
	"time"
)

const (
	DailyDecimals  = 6
	DetailDecimals = 4
)

// MinuteAggregate is the mean score of every record seen in one minute.
type MinuteAggregate struct {
	Key   string    `json:"key"`
	Time  time.Time `json:"time"`
	Value float64   `json:"value"`
	Count int       `json:"count"`
}

type Aggregation struct {
	Minutes []MinuteAggregate
	// OverallAvg is the mean over individual record scores, not over minute
	// means. Nil when there were no records.
	OverallAvg *float64
	Records    int
}

// AggregateMinutes scores each record, groups by minute key and averages.
// Minutes come back sorted ascending by key.
func AggregateMinutes(records []EmotionRecord, s *Scorer, decimals int) Aggregation {
	type cell struct {
		t   time.Time
		sum float64
		cnt int
	}
	cells := make(map[string]*cell)
	var total float64

	for _, r := range records {
		score := s.Derive(r)
		key := MinuteKey(r.Timestamp)
		c, ok := cells[key]
		if !ok {
			t := Naive(r.Timestamp).Truncate(time.Minute)
			c = &cell{t: t}
			cells[key] = c
		}
		c.sum += score
		c.cnt++
		total += score
	}

	out := Aggregation{
		Minutes: make([]MinuteAggregate, 0, len(cells)),
		Records: len(records),
	}
	for key, c := range cells {
		out.Minutes = append(out.Minutes, MinuteAggregate{
			Key:   key,
			Time:  c.t,
			Value: Round(c.sum/float64(c.cnt), decimals),
			Count: c.cnt,
		})
	}
	sort.Slice(out.Minutes, func(i, j int) bool { return out.Minutes[i].Key < out.Minutes[j].Key })

	if len(records) > 0 {
		avg := Round(total/float64(len(records)), decimals)
		out.OverallAvg = &avg
	}
	return out
}
