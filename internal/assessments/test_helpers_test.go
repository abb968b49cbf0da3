package assessments

import (
	"fmt"
	"time"

	"water-backend/water/param"
	"water-backend/water/pipeline"
)

// fakeModel is a deterministic artifact stand-in for service and handler
// tests: identity scaling and a fixed probability split.
type fakeModel struct {
	pPotable float64
}

func (m *fakeModel) FeatureNames() []param.Parameter {
	return append([]param.Parameter(nil), param.FeatureOrder...)
}

func (m *fakeModel) Impute(p param.Parameter) (float64, error) {
	for _, feature := range param.FeatureOrder {
		if feature == p {
			return 100, nil
		}
	}
	return 0, fmt.Errorf("unknown feature %s", p)
}

func (m *fakeModel) Scale(values []float64) ([]float64, error) {
	out := make([]float64, len(values))
	copy(out, values)
	return out, nil
}

func (m *fakeModel) Predict(scaled []float64) (float64, float64, bool, error) {
	return 1 - m.pPotable, m.pPotable, m.pPotable >= 0.5, nil
}

func (m *fakeModel) FeatureImportances() map[param.Parameter]float64 {
	return map[param.Parameter]float64{param.PH: 0.4, param.Turbidity: 0.6}
}

func (m *fakeModel) Version() string { return "potability-logreg:test" }

func newTestEngine(pPotable float64) *pipeline.Engine {
	engine := pipeline.NewEngine(&fakeModel{pPotable: pPotable}, pipeline.DefaultThresholds())
	at := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	engine.Now = func() time.Time { return at }
	return engine
}

func guidelineSet() param.Set {
	return param.Set{
		PH:              ptr(7.0),
		Hardness:        ptr(200),
		Solids:          ptr(300),
		Chloramines:     ptr(3.0),
		Sulfate:         ptr(200),
		Conductivity:    ptr(400),
		OrganicCarbon:   ptr(10),
		Trihalomethanes: ptr(50),
		Turbidity:       ptr(3.0),
	}
}
