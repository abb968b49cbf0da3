// Package pipeline implements the potability assessment flow: validation,
// imputation, scaling, classification, independent rule-based risk scoring,
// recommendation synthesis, and result packaging. Every stage is a pure
// function over its inputs plus the read-only artifact bundle, so concurrent
// requests share an Engine without locking.
package pipeline

import (
	"time"

	"water-backend/water/artifact"
	"water-backend/water/param"
)

// Engine runs the full assessment flow against one artifact bundle.
type Engine struct {
	Model  artifact.Model
	Limits Thresholds
	Now    func() time.Time
}

// NewEngine constructs an Engine with the given bundle and limit table.
func NewEngine(model artifact.Model, limits Thresholds) *Engine {
	return &Engine{Model: model, Limits: limits, Now: time.Now}
}

// Assess runs one parameter set through the whole pipeline. The risk engine
// receives the raw set while inference works on its own imputed copy; the
// two signals are independent and may disagree.
func (e *Engine) Assess(set param.Set) (Assessment, error) {
	scaled, err := Preprocess(set, e.Model)
	if err != nil {
		return Assessment{}, err
	}

	pred, err := Predict(scaled, e.Model)
	if err != nil {
		return Assessment{}, err
	}

	risks := AssessRisks(set, e.Limits)
	recs := Synthesize(pred, risks, set, e.Limits)

	now := time.Now
	if e.Now != nil {
		now = e.Now
	}
	return Package(set, pred, risks, recs, now().UTC()), nil
}

// Project derives the visualization series for a packaged assessment.
func (e *Engine) Project(a Assessment) Projections {
	return Project(a, e.Model)
}
