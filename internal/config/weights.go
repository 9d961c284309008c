package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/emtionre/satisfaction-service/internal/domain"
)

// LoadWeights reads a scoring weights file:
//
//	positive:
//	  happiness: 1.0
//	  surprise: 0.4
//	negative:
//	  anger: 1.0
//
// A side left out of the file keeps its default map. Unknown keys are rejected.
func LoadWeights(path string) (domain.Weights, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return domain.Weights{}, fmt.Errorf("read weights file: %w", err)
	}
	return ParseWeights(b)
}

func ParseWeights(b []byte) (domain.Weights, error) {
	var w domain.Weights
	dec := yaml.NewDecoder(bytes.NewReader(b))
	dec.KnownFields(true)
	if err := dec.Decode(&w); err != nil && !errors.Is(err, io.EOF) {
		return domain.Weights{}, fmt.Errorf("parse weights file: %w", err)
	}

	def := domain.DefaultWeights()
	if w.Positive == nil {
		w.Positive = def.Positive
	}
	if w.Negative == nil {
		w.Negative = def.Negative
	}
	if err := w.Validate(); err != nil {
		return domain.Weights{}, fmt.Errorf("invalid weights file: %w", err)
	}
	return w, nil
}
