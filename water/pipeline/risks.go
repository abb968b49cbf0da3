package pipeline

import (
	"fmt"

	"water-backend/water/param"
)

// RiskFactor flags one guideline violation. The Param tag is the structured
// gate downstream consumers branch on; Message is display text only.
type RiskFactor struct {
	Param    param.Parameter `json:"param"`
	Observed float64         `json:"observed"`
	Message  string          `json:"message"`
}

// AssessRisks evaluates each parameter against the limit table, independent
// of the classifier. Evaluation order is the canonical output order. Missing
// values produce no factor: absence means "cannot assess", not "violation".
// Callers must pass the raw pre-imputation set so imputed fill-ins never
// manufacture false risk signals.
func AssessRisks(set param.Set, limits Thresholds) []RiskFactor {
	risks := make([]RiskFactor, 0, 4)

	if v, ok := set.Value(param.PH); ok && (v < limits.PHMin || v > limits.PHMax) {
		risks = append(risks, RiskFactor{
			Param:    param.PH,
			Observed: v,
			Message:  fmt.Sprintf("pH outside safe range (%.1f-%.1f): %.2f", limits.PHMin, limits.PHMax, v),
		})
	}
	if v, ok := set.Value(param.Hardness); ok && v > limits.Hardness {
		risks = append(risks, RiskFactor{
			Param:    param.Hardness,
			Observed: v,
			Message:  fmt.Sprintf("Hardness above %.0f mg/L: %.1f", limits.Hardness, v),
		})
	}
	if v, ok := set.Value(param.Solids); ok && v > limits.Solids {
		risks = append(risks, RiskFactor{
			Param:    param.Solids,
			Observed: v,
			Message:  fmt.Sprintf("Solids (TDS) above %.0f mg/L guideline: %.1f", limits.Solids, v),
		})
	}
	if v, ok := set.Value(param.Chloramines); ok && v > limits.Chloramines {
		risks = append(risks, RiskFactor{
			Param:    param.Chloramines,
			Observed: v,
			Message:  fmt.Sprintf("Chloramines above %.1f ppm: %.2f", limits.Chloramines, v),
		})
	}
	if v, ok := set.Value(param.Sulfate); ok && v > limits.Sulfate {
		risks = append(risks, RiskFactor{
			Param:    param.Sulfate,
			Observed: v,
			Message:  fmt.Sprintf("Sulfate above %.0f mg/L: %.1f", limits.Sulfate, v),
		})
	}
	if v, ok := set.Value(param.Trihalomethanes); ok && v > limits.Trihalomethanes {
		risks = append(risks, RiskFactor{
			Param:    param.Trihalomethanes,
			Observed: v,
			Message:  fmt.Sprintf("Trihalomethanes above %.0f μg/L: %.1f", limits.Trihalomethanes, v),
		})
	}
	if v, ok := set.Value(param.Turbidity); ok && v > limits.Turbidity {
		risks = append(risks, RiskFactor{
			Param:    param.Turbidity,
			Observed: v,
			Message:  fmt.Sprintf("Turbidity above %.1f NTU: %.2f", limits.Turbidity, v),
		})
	}

	return risks
}

// hasRisk reports whether a factor for p is present.
func hasRisk(risks []RiskFactor, p param.Parameter) bool {
	for _, r := range risks {
		if r.Param == p {
			return true
		}
	}
	return false
}
