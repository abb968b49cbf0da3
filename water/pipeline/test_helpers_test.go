package pipeline

import (
	"fmt"
	"math"

	"water-backend/water/param"
)

func f(v float64) *float64 { return &v }

// cleanSet is Scenario A: every parameter present and within guideline.
func cleanSet() param.Set {
	return param.Set{
		PH:              f(7.0),
		Hardness:        f(200),
		Solids:          f(300),
		Chloramines:     f(3.0),
		Sulfate:         f(200),
		Conductivity:    f(400),
		OrganicCarbon:   f(10),
		Trihalomethanes: f(50),
		Turbidity:       f(3.0),
	}
}

// stubModel is a controllable artifact.Model for pipeline tests.
type stubModel struct {
	features    []param.Parameter
	imputeWith  float64
	pPotable    float64
	pNotPotable float64
	potable     bool
	predictErr  error
	importances map[param.Parameter]float64
}

func newStubModel() *stubModel {
	return &stubModel{
		features:    append([]param.Parameter(nil), param.FeatureOrder...),
		imputeWith:  42,
		pPotable:    0.75,
		pNotPotable: 0.25,
		potable:     true,
	}
}

func (m *stubModel) FeatureNames() []param.Parameter {
	return append([]param.Parameter(nil), m.features...)
}

func (m *stubModel) Impute(p param.Parameter) (float64, error) {
	for _, feature := range m.features {
		if feature == p {
			return m.imputeWith, nil
		}
	}
	return 0, fmt.Errorf("unknown feature %s", p)
}

func (m *stubModel) Scale(values []float64) ([]float64, error) {
	if len(values) != len(m.features) {
		return nil, fmt.Errorf("expected %d values, got %d", len(m.features), len(values))
	}
	scaled := make([]float64, len(values))
	for i, v := range values {
		scaled[i] = v / 10
	}
	return scaled, nil
}

func (m *stubModel) Predict(scaled []float64) (float64, float64, bool, error) {
	if m.predictErr != nil {
		return 0, 0, false, m.predictErr
	}
	return m.pNotPotable, m.pPotable, m.potable, nil
}

func (m *stubModel) FeatureImportances() map[param.Parameter]float64 {
	if m.importances == nil {
		return nil
	}
	out := make(map[param.Parameter]float64, len(m.importances))
	for k, v := range m.importances {
		out[k] = v
	}
	return out
}

func (m *stubModel) Version() string { return "stub:test" }

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}
