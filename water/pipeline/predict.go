package pipeline

import (
	"fmt"
	"math"

	"water-backend/water/artifact"
)

// PredictionResult is the classifier's verdict for one parameter set.
// Probabilities are ordered (not potable, potable) and sum to one.
type PredictionResult struct {
	Potable     bool    `json:"potable"`
	PNotPotable float64 `json:"pNotPotable"`
	PPotable    float64 `json:"pPotable"`
}

const probabilitySumTolerance = 1e-6

// Predict delegates to the classifier artifact and sanity-checks its output.
// Malformed output (NaN, out-of-range, broken distribution) surfaces as an
// InferenceError; nothing is defaulted.
func Predict(scaled []float64, model artifact.Model) (PredictionResult, error) {
	pNot, pSafe, potable, err := model.Predict(scaled)
	if err != nil {
		return PredictionResult{}, &InferenceError{Err: err}
	}
	for _, p := range []float64{pNot, pSafe} {
		if math.IsNaN(p) || p < 0 || p > 1 {
			return PredictionResult{}, &InferenceError{Err: fmt.Errorf("probability %g outside [0,1]", p)}
		}
	}
	if math.Abs(pNot+pSafe-1.0) > probabilitySumTolerance {
		return PredictionResult{}, &InferenceError{Err: fmt.Errorf("probabilities sum to %g", pNot+pSafe)}
	}
	return PredictionResult{Potable: potable, PNotPotable: pNot, PPotable: pSafe}, nil
}
