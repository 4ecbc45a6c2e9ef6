package validation

import (
	"fmt"
	"math"
)

// ParamValidator provides a fluent interface for validating analysis and
// configuration parameters. It collects all validation errors rather than
// failing on the first one.
type ParamValidator struct {
	errors []error
	name   string // owner name for error messages
}

// NewParamValidator creates a new validator with the given owner name.
func NewParamValidator(name string) *ParamValidator {
	return &ParamValidator{
		name:   name,
		errors: make([]error, 0),
	}
}

// Required validates that a string field is not empty.
func (pv *ParamValidator) Required(field, value string) *ParamValidator {
	if value == "" {
		pv.errors = append(pv.errors, fmt.Errorf("%s.%s: required field is empty", pv.name, field))
	}
	return pv
}

// Positive validates that an int field is positive (> 0).
func (pv *ParamValidator) Positive(field string, value int) *ParamValidator {
	if value <= 0 {
		pv.errors = append(pv.errors, fmt.Errorf("%s.%s: value %d must be positive", pv.name, field, value))
	}
	return pv
}

// NonNegative validates that an int field is non-negative (>= 0).
func (pv *ParamValidator) NonNegative(field string, value int) *ParamValidator {
	if value < 0 {
		pv.errors = append(pv.errors, fmt.Errorf("%s.%s: value %d must be non-negative", pv.name, field, value))
	}
	return pv
}

// PositiveFloat validates that a float field is finite and positive.
func (pv *ParamValidator) PositiveFloat(field string, value float64) *ParamValidator {
	if math.IsNaN(value) || math.IsInf(value, 0) || value <= 0 {
		pv.errors = append(pv.errors, fmt.Errorf("%s.%s: value %g must be a positive finite number", pv.name, field, value))
	}
	return pv
}

// OpenRange validates that a float field lies strictly between min and max.
func (pv *ParamValidator) OpenRange(field string, value, min, max float64) *ParamValidator {
	if math.IsNaN(value) || value <= min || value >= max {
		pv.errors = append(pv.errors, fmt.Errorf("%s.%s: value %g is outside range (%g, %g)", pv.name, field, value, min, max))
	}
	return pv
}

// Custom applies a custom validation function.
func (pv *ParamValidator) Custom(field string, fn func() error) *ParamValidator {
	if err := fn(); err != nil {
		pv.errors = append(pv.errors, fmt.Errorf("%s.%s: %w", pv.name, field, err))
	}
	return pv
}

// HasErrors returns true if any validation errors occurred.
func (pv *ParamValidator) HasErrors() bool {
	return len(pv.errors) > 0
}

// Errors returns all validation errors.
func (pv *ParamValidator) Errors() []error {
	return pv.errors
}

// Validate returns a combined error if any validations failed.
func (pv *ParamValidator) Validate() error {
	if len(pv.errors) == 0 {
		return nil
	}
	if len(pv.errors) == 1 {
		return pv.errors[0]
	}
	return fmt.Errorf("%s validation failed with %d errors: %v", pv.name, len(pv.errors), pv.errors[0])
}

// DefaultOr returns the value if it's non-zero, otherwise returns the default.
func DefaultOr[T comparable](value, defaultValue T) T {
	var zero T
	if value == zero {
		return defaultValue
	}
	return value
}
