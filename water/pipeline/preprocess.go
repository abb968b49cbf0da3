package pipeline

import (
	"water-backend/water/artifact"
	"water-backend/water/param"
)

// Preprocess validates a parameter set, imputes missing fields from the
// artifact's fitted statistics, and scales the result into the distribution
// the classifier was trained on. Pure function of (set, model); the returned
// vector is owned by the caller and never persisted.
func Preprocess(set param.Set, model artifact.Model) ([]float64, error) {
	if err := set.Validate(); err != nil {
		return nil, err
	}
	if err := checkSchema(model); err != nil {
		return nil, err
	}

	values, present := set.Ordered()
	for i, p := range param.FeatureOrder {
		if present[i] {
			continue
		}
		fill, err := model.Impute(p)
		if err != nil {
			return nil, &SchemaError{Expected: model.FeatureNames(), Got: param.FeatureOrder}
		}
		values[i] = fill
	}

	scaled, err := model.Scale(values)
	if err != nil {
		return nil, err
	}
	return scaled, nil
}

// checkSchema confirms the artifact was fitted on exactly the nine features
// in canonical order.
func checkSchema(model artifact.Model) error {
	features := model.FeatureNames()
	if len(features) != len(param.FeatureOrder) {
		return &SchemaError{Expected: features, Got: param.FeatureOrder}
	}
	for i, p := range param.FeatureOrder {
		if features[i] != p {
			return &SchemaError{Expected: features, Got: param.FeatureOrder}
		}
	}
	return nil
}
