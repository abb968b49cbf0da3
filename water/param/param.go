package param

import (
	"fmt"
	"math"
)

// Parameter identifies one of the nine measured water quality features.
type Parameter string

const (
	PH              Parameter = "ph"
	Hardness        Parameter = "Hardness"
	Solids          Parameter = "Solids"
	Chloramines     Parameter = "Chloramines"
	Sulfate         Parameter = "Sulfate"
	Conductivity    Parameter = "Conductivity"
	OrganicCarbon   Parameter = "Organic_carbon"
	Trihalomethanes Parameter = "Trihalomethanes"
	Turbidity       Parameter = "Turbidity"
)

// FeatureOrder is the canonical feature order the classifier was trained on.
// Every conversion of a Set to an ordered numeric sequence must follow it.
var FeatureOrder = []Parameter{
	PH,
	Hardness,
	Solids,
	Chloramines,
	Sulfate,
	Conductivity,
	OrganicCarbon,
	Trihalomethanes,
	Turbidity,
}

// Set is a record of the nine measurements. A nil field means the
// measurement is missing; zero is a real value, not absence.
type Set struct {
	PH              *float64 `json:"ph"`
	Hardness        *float64 `json:"Hardness"`
	Solids          *float64 `json:"Solids"`
	Chloramines     *float64 `json:"Chloramines"`
	Sulfate         *float64 `json:"Sulfate"`
	Conductivity    *float64 `json:"Conductivity"`
	OrganicCarbon   *float64 `json:"Organic_carbon"`
	Trihalomethanes *float64 `json:"Trihalomethanes"`
	Turbidity       *float64 `json:"Turbidity"`
}

// Value returns the measurement for p and whether it is present.
func (s Set) Value(p Parameter) (float64, bool) {
	ptr := s.field(p)
	if ptr == nil {
		return 0, false
	}
	return *ptr, true
}

func (s Set) field(p Parameter) *float64 {
	switch p {
	case PH:
		return s.PH
	case Hardness:
		return s.Hardness
	case Solids:
		return s.Solids
	case Chloramines:
		return s.Chloramines
	case Sulfate:
		return s.Sulfate
	case Conductivity:
		return s.Conductivity
	case OrganicCarbon:
		return s.OrganicCarbon
	case Trihalomethanes:
		return s.Trihalomethanes
	case Turbidity:
		return s.Turbidity
	default:
		return nil
	}
}

// Assign sets the measurement for p. Unknown parameters are ignored.
func (s *Set) Assign(p Parameter, v float64) {
	val := v
	switch p {
	case PH:
		s.PH = &val
	case Hardness:
		s.Hardness = &val
	case Solids:
		s.Solids = &val
	case Chloramines:
		s.Chloramines = &val
	case Sulfate:
		s.Sulfate = &val
	case Conductivity:
		s.Conductivity = &val
	case OrganicCarbon:
		s.OrganicCarbon = &val
	case Trihalomethanes:
		s.Trihalomethanes = &val
	case Turbidity:
		s.Turbidity = &val
	}
}

// Ordered returns the values and presence mask in FeatureOrder.
func (s Set) Ordered() (values []float64, present []bool) {
	values = make([]float64, len(FeatureOrder))
	present = make([]bool, len(FeatureOrder))
	for i, p := range FeatureOrder {
		v, ok := s.Value(p)
		values[i] = v
		present[i] = ok
	}
	return values, present
}

// MissingCount reports how many of the nine fields are absent.
func (s Set) MissingCount() int {
	n := 0
	for _, p := range FeatureOrder {
		if _, ok := s.Value(p); !ok {
			n++
		}
	}
	return n
}

// nonNegative lists the parameters whose physical domain excludes negatives.
// pH is excluded: the 0-14 scale is enforced separately.
var nonNegative = map[Parameter]bool{
	Hardness:        true,
	Solids:          true,
	Chloramines:     true,
	Sulfate:         true,
	Conductivity:    true,
	OrganicCarbon:   true,
	Trihalomethanes: true,
	Turbidity:       true,
}

// ValidationError reports a present but physically impossible or non-finite
// measurement. Bad values are rejected, never clamped.
type ValidationError struct {
	Param Parameter
	Value float64
	Rule  string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s value %g: %s", e.Param, e.Value, e.Rule)
}

// Validate checks every present field for finiteness and physical domain.
// Missing fields are fine here; imputation handles them downstream.
func (s Set) Validate() error {
	for _, p := range FeatureOrder {
		v, ok := s.Value(p)
		if !ok {
			continue
		}
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return &ValidationError{Param: p, Value: v, Rule: "must be a finite number"}
		}
		if nonNegative[p] && v < 0 {
			return &ValidationError{Param: p, Value: v, Rule: "must not be negative"}
		}
		if p == PH && (v < 0 || v > 14) {
			return &ValidationError{Param: p, Value: v, Rule: "must lie on the 0-14 scale"}
		}
	}
	return nil
}
