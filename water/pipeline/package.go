package pipeline

import (
	"math"
	"time"

	"water-backend/water/param"
)

// Assessment is the terminal artifact of one pipeline run: inputs, both
// independent signals, the synthesized recommendations, and derived fields.
// Created once per request, read-only thereafter.
type Assessment struct {
	Params          param.Set        `json:"params"`
	Prediction      PredictionResult `json:"prediction"`
	RiskFactors     []RiskFactor     `json:"riskFactors"`
	Recommendations []string         `json:"recommendations"`
	Confidence      float64          `json:"confidence"`
	RiskCount       int              `json:"riskCount"`
	GeneratedAt     time.Time        `json:"generatedAt"`
}

// Package assembles the assessment record. Confidence is max(probabilities)
// as a percentage rounded to one decimal. The clock is caller-supplied so
// packaging stays testable.
func Package(set param.Set, pred PredictionResult, risks []RiskFactor, recs []string, now time.Time) Assessment {
	confidence := math.Max(pred.PNotPotable, pred.PPotable) * 100
	confidence = math.Round(confidence*10) / 10

	return Assessment{
		Params:          set,
		Prediction:      pred,
		RiskFactors:     append([]RiskFactor(nil), risks...),
		Recommendations: append([]string(nil), recs...),
		Confidence:      confidence,
		RiskCount:       len(risks),
		GeneratedAt:     now,
	}
}
