package dto

// SegmentsResp is the daily view consumed by the chart client.
type SegmentsResp struct {
	Date        string        `json:"date"`
	FirstMinute *string       `json:"first_minute"`
	OverallAvg  *float64      `json:"overall_avg"`
	Segments    []SegmentResp `json:"segments"`
}

type SegmentResp struct {
	Start  string       `json:"start"`
	End    string       `json:"end"`
	Count  int          `json:"count"`
	Points []MinuteResp `json:"points"`
}

type MinuteResp struct {
	Minute string  `json:"minute"`
	Value  float64 `json:"value"`
}

type MinuteDetailResp struct {
	Date      string      `json:"date"`
	Time      string      `json:"time"`
	MinuteKey string      `json:"minuteKey"`
	Start     string      `json:"start"`
	End       string      `json:"end"`
	Avg       *float64    `json:"avg"`
	Count     int         `json:"count"`
	Points    []PointResp `json:"points"`
}

type PointResp struct {
	Index     int     `json:"index"`
	Timestamp string  `json:"timestamp"`
	Hour      string  `json:"hour"`
	Minute    string  `json:"minute"`
	Second    string  `json:"second"`
	MinuteKey string  `json:"minuteKey"`
	Value     float64 `json:"value"`
}

type TimesResp struct {
	Date  string     `json:"date"`
	Times []TimeResp `json:"times"`
}

type TimeResp struct {
	Time  string `json:"time"`
	First string `json:"first"`
	Last  string `json:"last"`
	Count int    `json:"count"`
}

type DatesResp struct {
	Dates []DateResp `json:"dates"`
}

type DateResp struct {
	Date  string `json:"date"`
	Count int    `json:"count"`
}
