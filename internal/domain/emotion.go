package domain

import "time"

// Emotion names one probability column produced by the detector.
type Emotion string

const (
	Happiness Emotion = "happiness"
	Sadness   Emotion = "sadness"
	Anger     Emotion = "anger"
	Surprise  Emotion = "surprise"
	Disgust   Emotion = "disgust"
	Fear      Emotion = "fear"
	Neutral   Emotion = "neutral"
)

// ScoredEmotions is the fixed evaluation order used by the scorer.
var ScoredEmotions = []Emotion{Happiness, Surprise, Sadness, Anger, Disgust, Fear}

func (e Emotion) Scored() bool {
	for _, s := range ScoredEmotions {
		if s == e {
			return true
		}
	}
	return false
}

// Intensity is a raw detector output. Valid is false when the column was
// NULL or could not be read as a number.
type Intensity struct {
	Value float64
	Valid bool
}

func Of(v float64) Intensity { return Intensity{Value: v, Valid: true} }

// EmotionRecord is one detection event read from the store.
// Timestamp carries naive wall-clock fields (see Naive).
type EmotionRecord struct {
	Timestamp time.Time

	Happiness Intensity
	Sadness   Intensity
	Anger     Intensity
	Surprise  Intensity
	Disgust   Intensity
	Fear      Intensity
	Neutral   Intensity
}

func (r EmotionRecord) Intensity(e Emotion) Intensity {
	switch e {
	case Happiness:
		return r.Happiness
	case Sadness:
		return r.Sadness
	case Anger:
		return r.Anger
	case Surprise:
		return r.Surprise
	case Disgust:
		return r.Disgust
	case Fear:
		return r.Fear
	case Neutral:
		return r.Neutral
	default:
		return Intensity{}
	}
}

// DateCount is the number of records stored for one calendar day.
type DateCount struct {
	Date  string
	Count int
}
