// Package artifact loads the pre-fitted classifier, scaler, and imputer as a
// single versioned bundle. The pipeline treats the bundle as opaque: it is
// loaded once at startup, shared read-only, and never retrained here.
package artifact

import (
	"encoding/json"
	"fmt"
	"math"
	"os"

	"water-backend/water/param"
)

// Model is the capability the assessment pipeline consumes. Alternate model
// implementations can be swapped in without touching pipeline logic.
type Model interface {
	// FeatureNames returns the ordered feature list the bundle was fitted on.
	FeatureNames() []param.Parameter
	// Impute returns the learned fill-in statistic for a missing feature.
	Impute(p param.Parameter) (float64, error)
	// Scale applies the per-feature affine transform to an ordered vector.
	Scale(values []float64) ([]float64, error)
	// Predict returns (pNotPotable, pPotable, potableLabel).
	Predict(scaled []float64) (float64, float64, bool, error)
	// FeatureImportances returns per-feature weights, or nil when the
	// underlying classifier exposes none. Absence is not an error.
	FeatureImportances() map[param.Parameter]float64
	// Version identifies the fitted artifact.
	Version() string
}

// LoadError reports a failed or inconsistent artifact load. It is fatal for
// the process: the service refuses to serve rather than stub predictions.
type LoadError struct {
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("load artifact %s: %v", e.Path, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }

// bundleFile mirrors the on-disk JSON artifact layout.
type bundleFile struct {
	Version  string   `json:"version"`
	Features []string `json:"features"`
	Imputer  struct {
		Statistic string    `json:"statistic"`
		Values    []float64 `json:"values"`
	} `json:"imputer"`
	Scaler struct {
		Center []float64 `json:"center"`
		Spread []float64 `json:"spread"`
	} `json:"scaler"`
	Classifier struct {
		Type         string    `json:"type"`
		Coefficients []float64 `json:"coefficients"`
		Intercept    float64   `json:"intercept"`
		Threshold    *float64  `json:"threshold"`
	} `json:"classifier"`
	Importances map[string]float64 `json:"importances"`
}

// Bundle is the fitted artifact loaded from disk.
type Bundle struct {
	version      string
	features     []param.Parameter
	imputeValues []float64
	center       []float64
	spread       []float64
	coefficients []float64
	intercept    float64
	threshold    float64
	importances  map[param.Parameter]float64
}

// Load reads and validates a JSON artifact bundle.
func Load(path string) (*Bundle, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}
	var file bundleFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, &LoadError{Path: path, Err: fmt.Errorf("parse: %w", err)}
	}
	bundle, err := fromFile(file)
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}
	return bundle, nil
}

func fromFile(file bundleFile) (*Bundle, error) {
	n := len(file.Features)
	if n == 0 {
		return nil, fmt.Errorf("artifact declares no features")
	}
	features := make([]param.Parameter, n)
	for i, name := range file.Features {
		features[i] = param.Parameter(name)
	}
	if len(file.Imputer.Values) != n {
		return nil, fmt.Errorf("imputer has %d values for %d features", len(file.Imputer.Values), n)
	}
	if len(file.Scaler.Center) != n || len(file.Scaler.Spread) != n {
		return nil, fmt.Errorf("scaler has %d/%d entries for %d features", len(file.Scaler.Center), len(file.Scaler.Spread), n)
	}
	for i, s := range file.Scaler.Spread {
		if s == 0 || math.IsNaN(s) || math.IsInf(s, 0) {
			return nil, fmt.Errorf("scaler spread for %s is %g", features[i], s)
		}
	}
	if file.Classifier.Type != "logistic" {
		return nil, fmt.Errorf("unsupported classifier type %q", file.Classifier.Type)
	}
	if len(file.Classifier.Coefficients) != n {
		return nil, fmt.Errorf("classifier has %d coefficients for %d features", len(file.Classifier.Coefficients), n)
	}

	threshold := 0.5
	if file.Classifier.Threshold != nil {
		threshold = *file.Classifier.Threshold
		if threshold <= 0 || threshold >= 1 {
			return nil, fmt.Errorf("decision threshold %g outside (0,1)", threshold)
		}
	}

	var importances map[param.Parameter]float64
	if len(file.Importances) > 0 {
		importances = make(map[param.Parameter]float64, len(file.Importances))
		for name, weight := range file.Importances {
			importances[param.Parameter(name)] = weight
		}
	}

	return &Bundle{
		version:      file.Version,
		features:     features,
		imputeValues: file.Imputer.Values,
		center:       file.Scaler.Center,
		spread:       file.Scaler.Spread,
		coefficients: file.Classifier.Coefficients,
		intercept:    file.Classifier.Intercept,
		threshold:    threshold,
		importances:  importances,
	}, nil
}

// FeatureNames returns the fitted feature order.
func (b *Bundle) FeatureNames() []param.Parameter {
	out := make([]param.Parameter, len(b.features))
	copy(out, b.features)
	return out
}

// Version identifies the fitted artifact.
func (b *Bundle) Version() string { return b.version }

// Impute returns the fitted fill-in statistic for p.
func (b *Bundle) Impute(p param.Parameter) (float64, error) {
	for i, feature := range b.features {
		if feature == p {
			return b.imputeValues[i], nil
		}
	}
	return 0, fmt.Errorf("no imputer statistic for feature %s", p)
}

// Scale applies the fitted per-feature affine transform. The input must
// already be in fitted feature order; Scale never reorders or drops fields.
func (b *Bundle) Scale(values []float64) ([]float64, error) {
	if len(values) != len(b.features) {
		return nil, fmt.Errorf("scale expects %d values, got %d", len(b.features), len(values))
	}
	scaled := make([]float64, len(values))
	for i, v := range values {
		scaled[i] = (v - b.center[i]) / b.spread[i]
	}
	return scaled, nil
}

// Predict scores a scaled vector. Calibration policy: the linear decision
// score passes through the logistic function, yielding a two-way
// distribution that sums to one.
func (b *Bundle) Predict(scaled []float64) (pNotPotable, pPotable float64, potable bool, err error) {
	if len(scaled) != len(b.coefficients) {
		return 0, 0, false, fmt.Errorf("predict expects %d values, got %d", len(b.coefficients), len(scaled))
	}
	z := b.intercept
	for i, v := range scaled {
		z += b.coefficients[i] * v
	}
	pPotable = 1.0 / (1.0 + math.Exp(-z))
	if math.IsNaN(pPotable) {
		return 0, 0, false, fmt.Errorf("classifier produced NaN probability")
	}
	return 1.0 - pPotable, pPotable, pPotable >= b.threshold, nil
}

// FeatureImportances returns a copy of the fitted per-feature weights, or
// nil when the artifact carries none.
func (b *Bundle) FeatureImportances() map[param.Parameter]float64 {
	if b.importances == nil {
		return nil
	}
	out := make(map[param.Parameter]float64, len(b.importances))
	for k, v := range b.importances {
		out[k] = v
	}
	return out
}
