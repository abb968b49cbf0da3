package pipeline

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

// Thresholds holds the regulator-derived violation limits the risk engine
// evaluates. Defaults follow WHO drinking-water guidelines; deployments with
// a wider national TDS tolerance can override individual limits from a YAML
// pack.
type Thresholds struct {
	PHMin           float64 `yaml:"phMin"`
	PHMax           float64 `yaml:"phMax"`
	Hardness        float64 `yaml:"hardness"`
	Solids          float64 `yaml:"solids"`
	Chloramines     float64 `yaml:"chloramines"`
	Sulfate         float64 `yaml:"sulfate"`
	Trihalomethanes float64 `yaml:"trihalomethanes"`
	Turbidity       float64 `yaml:"turbidity"`
}

// DefaultThresholds returns the WHO-derived limit table. The Solids limit is
// the WHO 500 mg/L palatability guideline; guideline bodies differ here,
// which is why it is an overridable named value rather than an inferred one.
func DefaultThresholds() Thresholds {
	return Thresholds{
		PHMin:           6.5,
		PHMax:           8.5,
		Hardness:        300,
		Solids:          500,
		Chloramines:     4.0,
		Sulfate:         250,
		Trihalomethanes: 80,
		Turbidity:       5.0,
	}
}

// LoadThresholds reads a YAML override pack on top of the defaults. An empty
// path or a missing file keeps the defaults.
func LoadThresholds(path string) (Thresholds, error) {
	limits := DefaultThresholds()
	if path == "" {
		return limits, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return limits, nil
		}
		return Thresholds{}, fmt.Errorf("read thresholds pack: %w", err)
	}
	if err := yaml.Unmarshal(data, &limits); err != nil {
		return Thresholds{}, fmt.Errorf("parse thresholds pack: %w", err)
	}
	if err := limits.validate(); err != nil {
		return Thresholds{}, err
	}
	return limits, nil
}

func (t Thresholds) validate() error {
	if t.PHMin >= t.PHMax {
		return fmt.Errorf("thresholds: phMin %g must be below phMax %g", t.PHMin, t.PHMax)
	}
	for name, v := range map[string]float64{
		"hardness":        t.Hardness,
		"solids":          t.Solids,
		"chloramines":     t.Chloramines,
		"sulfate":         t.Sulfate,
		"trihalomethanes": t.Trihalomethanes,
		"turbidity":       t.Turbidity,
	} {
		if v <= 0 {
			return fmt.Errorf("thresholds: %s limit %g must be positive", name, v)
		}
	}
	return nil
}
