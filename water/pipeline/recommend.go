package pipeline

import (
	"water-backend/water/param"
)

// chloraminesAdvisoryThreshold is the taste/odor advisory level used only by
// the safe-branch maintenance tip. It is deliberately stricter than, and
// distinct from, the Thresholds.Chloramines safety limit.
const chloraminesAdvisoryThreshold = 2.0

var urgentActions = []string{
	"Do not consume this water until proper treatment",
	"Get professional water testing from a certified laboratory",
	"Use bottled water or properly treated water for drinking and cooking",
	"Consider installing appropriate water treatment systems",
}

var maintenanceTips = []string{
	"Regular monitoring: test water quality periodically",
	"System maintenance: clean and maintain any existing filtration systems",
	"Plumbing check: ensure pipes and storage tanks are clean",
	"Keep records: document water quality test results over time",
}

// Synthesize combines the classifier verdict with the rule engine's factors
// into an ordered recommendation list. It is the only place the two
// independent signals meet. Output order is significant: the fixed opening
// block first, then gated entries in fixed evaluation order, since consumers
// render the list numbered.
func Synthesize(pred PredictionResult, risks []RiskFactor, set param.Set, limits Thresholds) []string {
	if !pred.Potable {
		return unsafeRecommendations(risks, set, limits)
	}
	return safeRecommendations(set, limits)
}

func unsafeRecommendations(risks []RiskFactor, set param.Set, limits Thresholds) []string {
	recs := make([]string, 0, len(urgentActions)+5)
	recs = append(recs, urgentActions...)

	if hasRisk(risks, param.PH) {
		if v, ok := set.Value(param.PH); ok {
			if v < limits.PHMin {
				recs = append(recs, "pH too low: consider lime treatment or pH adjustment systems")
			} else {
				recs = append(recs, "pH too high: consider acid neutralization systems")
			}
		}
	}
	if hasRisk(risks, param.Chloramines) {
		recs = append(recs, "High chloramines: install activated carbon filtration")
	}
	if hasRisk(risks, param.Trihalomethanes) {
		recs = append(recs, "High trihalomethanes: use granular activated carbon or reverse osmosis")
	}
	if hasRisk(risks, param.Turbidity) {
		recs = append(recs, "High turbidity: install sediment filtration and UV disinfection")
	}
	if hasRisk(risks, param.Solids) {
		recs = append(recs, "High TDS: consider reverse osmosis or distillation systems")
	}

	return recs
}

func safeRecommendations(set param.Set, limits Thresholds) []string {
	recs := make([]string, 0, len(maintenanceTips)+2)
	recs = append(recs, maintenanceTips...)

	if v, ok := set.Value(param.Hardness); ok && v > limits.Hardness {
		recs = append(recs, "Water hardness: consider water softening for appliance longevity")
	}
	if v, ok := set.Value(param.Chloramines); ok && v > chloraminesAdvisoryThreshold {
		recs = append(recs, "Chloramine levels: let water sit or use carbon filtration to reduce taste and odor")
	}

	return recs
}
