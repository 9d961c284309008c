package domain

import (
	"fmt"
	"math"
)

const (
	neutralBaseline = 50.0
	scoreSpan       = 50.0
	MinScore        = 0.0
	MaxScore        = 100.0
)

// Weights maps each emotion to its pull on the satisfaction score.
// Positive emotions raise it, negative emotions lower it.
type Weights struct {
	Positive map[Emotion]float64 `yaml:"positive"`
	Negative map[Emotion]float64 `yaml:"negative"`
}

// DefaultWeights: happiness dominates the positive side and anger the
// negative side. The sides are deliberately unbalanced (1.4 vs 3.6).
func DefaultWeights() Weights {
	return Weights{
		Positive: map[Emotion]float64{
			Happiness: 1.0,
			Surprise:  0.4,
		},
		Negative: map[Emotion]float64{
			Sadness: 0.8,
			Anger:   1.0,
			Disgust: 0.9,
			Fear:    0.9,
		},
	}
}

func (w Weights) Validate() error {
	check := func(side string, m map[Emotion]float64) error {
		for e, v := range m {
			if !e.Scored() {
				return ErrValidation(fmt.Sprintf("%s weight for unknown emotion %q", side, e))
			}
			if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
				return ErrValidation(fmt.Sprintf("%s weight for %s must be a finite number >= 0", side, e))
			}
		}
		return nil
	}
	if err := check("positive", w.Positive); err != nil {
		return err
	}
	if err := check("negative", w.Negative); err != nil {
		return err
	}
	for e := range w.Positive {
		if _, ok := w.Negative[e]; ok {
			return ErrValidation(fmt.Sprintf("emotion %s is weighted on both sides", e))
		}
	}
	return nil
}

// Norm01 turns a raw intensity into [0,1]. Missing and non-finite values
// become 0, values above 1 are read as percentages. It never fails.
func Norm01(v Intensity) float64 {
	if !v.Valid || math.IsNaN(v.Value) || math.IsInf(v.Value, 0) {
		return 0
	}
	x := v.Value
	if x > 1 {
		x /= 100
	}
	return clamp(x, 0, 1)
}

type weighted struct {
	emotion Emotion
	weight  float64
}

// Scorer derives a satisfaction score from one record. It holds no mutable
// state and is safe for concurrent use.
type Scorer struct {
	positive []weighted
	negative []weighted
}

func NewScorer(w Weights) *Scorer {
	s := &Scorer{}
	// fixed order keeps float sums stable across calls
	for _, e := range ScoredEmotions {
		if v, ok := w.Positive[e]; ok {
			s.positive = append(s.positive, weighted{emotion: e, weight: v})
		}
		if v, ok := w.Negative[e]; ok {
			s.negative = append(s.negative, weighted{emotion: e, weight: v})
		}
	}
	return s
}

// Signals returns the weighted positive and negative sums.
func (s *Scorer) Signals(r EmotionRecord) (p, n float64) {
	for _, w := range s.positive {
		p += w.weight * Norm01(r.Intensity(w.emotion))
	}
	for _, w := range s.negative {
		n += w.weight * Norm01(r.Intensity(w.emotion))
	}
	return p, n
}

// Derive returns clamp(50 + 50·(p − n), 0, 100).
func (s *Scorer) Derive(r EmotionRecord) float64 {
	p, n := s.Signals(r)
	return clamp(neutralBaseline+scoreSpan*(p-n), MinScore, MaxScore)
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

// Round rounds half away from zero to the given number of decimals.
func Round(v float64, decimals int) float64 {
	p := math.Pow10(decimals)
	return math.Round(v*p) / p
}
