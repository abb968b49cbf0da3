package param

import (
	"errors"
	"math"
	"testing"
)

func f(v float64) *float64 { return &v }

func fullSet() Set {
	return Set{
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

func TestOrderedFollowsFeatureOrder(t *testing.T) {
	values, present := fullSet().Ordered()
	want := []float64{7.0, 200, 300, 3.0, 200, 400, 10, 50, 3.0}
	if len(values) != len(want) {
		t.Fatalf("expected %d values, got %d", len(want), len(values))
	}
	for i := range want {
		if values[i] != want[i] {
			t.Fatalf("position %d: expected %g, got %g", i, want[i], values[i])
		}
		if !present[i] {
			t.Fatalf("position %d: expected present", i)
		}
	}
}

func TestMissingCount(t *testing.T) {
	s := fullSet()
	s.Sulfate = nil
	s.Trihalomethanes = nil
	if got := s.MissingCount(); got != 2 {
		t.Fatalf("expected 2 missing, got %d", got)
	}
	if _, ok := s.Value(Sulfate); ok {
		t.Fatalf("expected Sulfate to be absent")
	}
}

func TestValidateRejectsNonFinite(t *testing.T) {
	s := fullSet()
	s.Solids = f(math.NaN())
	err := s.Validate()
	if err == nil {
		t.Fatalf("expected validation error for NaN")
	}
	var verr *ValidationError
	if !errors.As(err, &verr) || verr.Param != Solids {
		t.Fatalf("expected Solids validation error, got %v", err)
	}
}

func TestValidateRejectsNegativeTurbidity(t *testing.T) {
	s := fullSet()
	s.Turbidity = f(-1.5)
	if err := s.Validate(); err == nil {
		t.Fatalf("expected validation error for negative turbidity")
	}
}

func TestValidateRejectsOutOfScalePH(t *testing.T) {
	s := fullSet()
	s.PH = f(15.2)
	if err := s.Validate(); err == nil {
		t.Fatalf("expected validation error for pH above 14")
	}
}

func TestValidateAllowsMissingFields(t *testing.T) {
	s := Set{}
	if err := s.Validate(); err != nil {
		t.Fatalf("empty set should validate, got %v", err)
	}
}
