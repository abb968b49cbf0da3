package pipeline

import (
	"testing"
	"time"

	"water-backend/water/param"
)

func TestProjectGaugeIsPotableProbability(t *testing.T) {
	pred := PredictionResult{Potable: true, PNotPotable: 0.31, PPotable: 0.69}
	a := Package(cleanSet(), pred, nil, nil, time.Now().UTC())

	proj := Project(a, newStubModel())
	if proj.Gauge != 0.69 {
		t.Fatalf("expected gauge 0.69, got %v", proj.Gauge)
	}
}

func TestProjectRadarRatios(t *testing.T) {
	set := cleanSet()
	set.Chloramines = f(4.0) // midpoint 2.0, ratio 2.0
	set.Sulfate = nil
	pred := PredictionResult{Potable: true, PNotPotable: 0.2, PPotable: 0.8}
	a := Package(set, pred, nil, nil, time.Now().UTC())

	proj := Project(a, newStubModel())
	if len(proj.Radar) != len(param.FeatureOrder) {
		t.Fatalf("expected %d radar points, got %d", len(param.FeatureOrder), len(proj.Radar))
	}
	for i, point := range proj.Radar {
		if point.Param != param.FeatureOrder[i] {
			t.Fatalf("radar point %d out of canonical order: %s", i, point.Param)
		}
		switch point.Param {
		case param.Chloramines:
			if !point.Present || !almostEqual(point.Ratio, 2.0) {
				t.Fatalf("chloramines spoke: %+v", point)
			}
		case param.Sulfate:
			if point.Present || point.Ratio != 0 {
				t.Fatalf("missing sulfate must be an absent spoke: %+v", point)
			}
		case param.PH:
			if !almostEqual(point.Ratio, 1.0) {
				t.Fatalf("pH 7.0 should sit on the reference ring: %+v", point)
			}
		}
	}
}

func TestProjectImportancesSortedDescending(t *testing.T) {
	model := newStubModel()
	model.importances = map[param.Parameter]float64{
		param.PH:        0.12,
		param.Turbidity: 0.31,
		param.Sulfate:   0.20,
	}
	pred := PredictionResult{Potable: true, PNotPotable: 0.2, PPotable: 0.8}
	a := Package(cleanSet(), pred, nil, nil, time.Now().UTC())

	proj := Project(a, model)
	if len(proj.Importances) != 3 {
		t.Fatalf("expected 3 importances, got %d", len(proj.Importances))
	}
	wantOrder := []param.Parameter{param.Turbidity, param.Sulfate, param.PH}
	for i, want := range wantOrder {
		if proj.Importances[i].Param != want {
			t.Fatalf("importance %d: expected %s, got %s", i, want, proj.Importances[i].Param)
		}
	}
}

func TestProjectNoImportances(t *testing.T) {
	pred := PredictionResult{Potable: true, PNotPotable: 0.2, PPotable: 0.8}
	a := Package(cleanSet(), pred, nil, nil, time.Now().UTC())

	proj := Project(a, newStubModel())
	if len(proj.Importances) != 0 {
		t.Fatalf("artifact without importances must project an empty ranking, got %v", proj.Importances)
	}
}
