package dto

import (
	"github.com/emtionre/satisfaction-service/internal/application/satisfaction"
	"github.com/emtionre/satisfaction-service/internal/domain"
)

func ToSegmentsResp(res *satisfaction.DailyResult) SegmentsResp {
	out := SegmentsResp{
		Date:        res.Date,
		FirstMinute: res.FirstMinute,
		OverallAvg:  res.OverallAvg,
		Segments:    make([]SegmentResp, 0, len(res.Segments)),
	}
	for _, s := range res.Segments {
		seg := SegmentResp{
			Start:  s.Start,
			End:    s.End,
			Count:  s.Count,
			Points: make([]MinuteResp, 0, len(s.Points)),
		}
		for _, p := range s.Points {
			seg.Points = append(seg.Points, MinuteResp{Minute: p.Key, Value: p.Value})
		}
		out.Segments = append(out.Segments, seg)
	}
	return out
}

func ToMinuteDetailResp(res *satisfaction.MinuteResult) MinuteDetailResp {
	out := MinuteDetailResp{
		Date:      res.Date,
		Time:      res.Time,
		MinuteKey: res.MinuteKey,
		Start:     res.Start,
		End:       res.End,
		Avg:       res.Avg,
		Count:     res.Count,
		Points:    make([]PointResp, 0, len(res.Points)),
	}
	for _, p := range res.Points {
		out.Points = append(out.Points, PointResp(p))
	}
	return out
}

func ToTimesResp(res *satisfaction.TimesResult) TimesResp {
	out := TimesResp{Date: res.Date, Times: make([]TimeResp, 0, len(res.Times))}
	for _, s := range res.Times {
		out.Times = append(out.Times, TimeResp(s))
	}
	return out
}

func ToDatesResp(dates []domain.DateCount) DatesResp {
	out := DatesResp{Dates: make([]DateResp, 0, len(dates))}
	for _, d := range dates {
		out.Dates = append(out.Dates, DateResp(d))
	}
	return out
}
