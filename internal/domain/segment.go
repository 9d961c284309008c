package domain

import "time"

// DefaultSegmentGap is the largest spacing between two minutes that still
// keeps them in one segment.
const DefaultSegmentGap = 60 * time.Second

// Segment is a maximal run of minutes with no gap wider than the tolerance.
type Segment struct {
	Start  string            `json:"start"`
	End    string            `json:"end"`
	Count  int               `json:"count"`
	Points []MinuteAggregate `json:"points"`
}

// SegmentMinutes splits chronologically ordered minutes into segments in a
// single scan. A spacing strictly greater than gap starts a new segment;
// a spacing of exactly gap never does. gap <= 0 falls back to DefaultSegmentGap.
func SegmentMinutes(points []MinuteAggregate, gap time.Duration) []Segment {
	if gap <= 0 {
		gap = DefaultSegmentGap
	}
	segments := make([]Segment, 0)
	if len(points) == 0 {
		return segments
	}

	current := Segment{Start: points[0].Key, Points: []MinuteAggregate{points[0]}}
	for _, p := range points[1:] {
		last := current.Points[len(current.Points)-1]
		if p.Time.Sub(last.Time) > gap {
			segments = append(segments, closeSegment(current))
			current = Segment{Start: p.Key, Points: []MinuteAggregate{p}}
			continue
		}
		current.Points = append(current.Points, p)
	}
	return append(segments, closeSegment(current))
}

func closeSegment(s Segment) Segment {
	s.End = s.Points[len(s.Points)-1].Key
	s.Count = len(s.Points)
	return s
}
