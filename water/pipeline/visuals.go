package pipeline

import (
	"sort"

	"water-backend/water/artifact"
	"water-backend/water/param"
)

// guidelineMidpoints are the "ideal" reference values the radar projection
// normalizes against: the midpoint of each parameter's acceptable range.
var guidelineMidpoints = map[param.Parameter]float64{
	param.PH:              7.0,
	param.Hardness:        150,
	param.Solids:          250,
	param.Chloramines:     2.0,
	param.Sulfate:         125,
	param.Conductivity:    400,
	param.OrganicCarbon:   10,
	param.Trihalomethanes: 40,
	param.Turbidity:       2.5,
}

// RadarPoint is one spoke of the radar projection. Ratio is the observed
// value relative to the guideline midpoint, so 1.0 is the reference ring.
type RadarPoint struct {
	Param   param.Parameter `json:"param"`
	Value   float64         `json:"value"`
	Ideal   float64         `json:"ideal"`
	Ratio   float64         `json:"ratio"`
	Present bool            `json:"present"`
}

// Importance ranks one feature by the classifier's fitted weight.
type Importance struct {
	Param  param.Parameter `json:"param"`
	Weight float64         `json:"weight"`
}

// Projections are the visualization-ready series derived from an assessment.
// The presentation layer draws them; the core never formats markup.
type Projections struct {
	// Gauge is the potable-class probability, 0.0-1.0.
	Gauge float64 `json:"gauge"`
	// Radar holds one point per parameter in canonical order.
	Radar []RadarPoint `json:"radar"`
	// Importances is ranked descending by weight, and empty (not an error)
	// when the artifact exposes no per-feature importances.
	Importances []Importance `json:"importances"`
}

// Project derives the visualization series for an assessment.
func Project(a Assessment, model artifact.Model) Projections {
	radar := make([]RadarPoint, 0, len(param.FeatureOrder))
	for _, p := range param.FeatureOrder {
		ideal := guidelineMidpoints[p]
		point := RadarPoint{Param: p, Ideal: ideal}
		if v, ok := a.Params.Value(p); ok {
			point.Value = v
			point.Present = true
			if ideal != 0 {
				point.Ratio = v / ideal
			}
		}
		radar = append(radar, point)
	}

	var importances []Importance
	if weights := model.FeatureImportances(); len(weights) > 0 {
		importances = make([]Importance, 0, len(weights))
		for p, w := range weights {
			importances = append(importances, Importance{Param: p, Weight: w})
		}
		sort.Slice(importances, func(i, j int) bool {
			if importances[i].Weight != importances[j].Weight {
				return importances[i].Weight > importances[j].Weight
			}
			return importances[i].Param < importances[j].Param
		})
	}

	return Projections{
		Gauge:       a.Prediction.PPotable,
		Radar:       radar,
		Importances: importances,
	}
}
