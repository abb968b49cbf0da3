package assessments

import (
	"time"

	"water-backend/water/param"
	"water-backend/water/pipeline"
)

// Record is a persisted assessment.
type Record struct {
	ID              string                `json:"id"`
	UserID          string                `json:"userId"`
	Params          param.Set             `json:"params"`
	Potable         bool                  `json:"potable"`
	PPotable        float64               `json:"pPotable"`
	PNotPotable     float64               `json:"pNotPotable"`
	Confidence      float64               `json:"confidence"`
	RiskFactors     []pipeline.RiskFactor `json:"riskFactors"`
	Recommendations []string              `json:"recommendations"`
	ModelVersion    string                `json:"modelVersion"`
	CreatedAt       time.Time             `json:"createdAt"`
}

// toAssessment rebuilds the pipeline result from a stored record, for export
// and visuals on historical assessments.
func toAssessment(rec Record) pipeline.Assessment {
	return pipeline.Assessment{
		Params: rec.Params,
		Prediction: pipeline.PredictionResult{
			Potable:     rec.Potable,
			PPotable:    rec.PPotable,
			PNotPotable: rec.PNotPotable,
		},
		RiskFactors:     rec.RiskFactors,
		Recommendations: rec.Recommendations,
		Confidence:      rec.Confidence,
		RiskCount:       len(rec.RiskFactors),
		GeneratedAt:     rec.CreatedAt,
	}
}
