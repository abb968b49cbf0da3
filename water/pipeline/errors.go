package pipeline

import (
	"fmt"

	"water-backend/water/param"
)

// SchemaError reports a mismatch between the request's field set and the
// artifact's fitted feature list. The request is rejected whole; fields are
// never silently dropped.
type SchemaError struct {
	Expected []param.Parameter
	Got      []param.Parameter
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("parameter set schema mismatch: artifact expects %v, got %v", e.Expected, e.Got)
}

// InferenceError reports malformed output from the classifier artifact.
type InferenceError struct {
	Err error
}

func (e *InferenceError) Error() string {
	return fmt.Sprintf("inference failed: %v", e.Err)
}

func (e *InferenceError) Unwrap() error { return e.Err }
