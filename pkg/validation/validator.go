package validation

import (
	"errors"
	"fmt"
	"math"
	"reflect"

	"github.com/go-playground/validator/v10"
)

var (
	// validate is a singleton validator instance
	validate *validator.Validate

	// Limits applied to record attribute maps
	MaxAttributes   = 100
	MaxAttributeKey = 100
)

func init() {
	validate = validator.New()
	// finite rejects NaN and infinities on float fields
	if err := validate.RegisterValidation("finite", validateFinite); err != nil {
		panic(fmt.Sprintf("validation: register finite: %v", err))
	}
}

func validateFinite(fl validator.FieldLevel) bool {
	field := fl.Field()
	switch field.Kind() {
	case reflect.Float32, reflect.Float64:
		f := field.Float()
		return !math.IsNaN(f) && !math.IsInf(f, 0)
	default:
		return true
	}
}

// Struct validates v using its struct tags and returns the first failure in a
// readable form.
func Struct(v any) error {
	if v == nil {
		return errors.New("value cannot be nil")
	}
	if err := validate.Struct(v); err != nil {
		return formatValidationError(err)
	}
	return nil
}

// Attributes validates the size and keys of a record attribute map.
func Attributes(attrs map[string]string) error {
	if len(attrs) > MaxAttributes {
		return fmt.Errorf("Attributes: maximum %d attributes allowed, got %d", MaxAttributes, len(attrs))
	}
	for key := range attrs {
		if key == "" {
			return errors.New("Attributes: attribute key cannot be empty")
		}
		if len(key) > MaxAttributeKey {
			return fmt.Errorf("Attributes: attribute key '%s' exceeds maximum length of %d characters", key, MaxAttributeKey)
		}
	}
	return nil
}

// formatValidationError converts validator errors to a more user-friendly format
func formatValidationError(err error) error {
	if err == nil {
		return nil
	}

	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return err
	}

	// Return the first validation error in a user-friendly format
	for _, e := range validationErrs {
		field := e.Namespace()
		tag := e.Tag()
		param := e.Param()

		switch tag {
		case "required":
			return fmt.Errorf("%s: field is required", field)
		case "min", "gte":
			return fmt.Errorf("%s: must be at least %s", field, param)
		case "max", "lte":
			return fmt.Errorf("%s: must not exceed %s", field, param)
		case "gt":
			return fmt.Errorf("%s: must be greater than %s", field, param)
		case "lt":
			return fmt.Errorf("%s: must be less than %s", field, param)
		case "oneof":
			return fmt.Errorf("%s: must be one of [%s]", field, param)
		case "finite":
			return fmt.Errorf("%s: must be a finite number", field)
		default:
			return fmt.Errorf("%s: validation failed (%s)", field, tag)
		}
	}

	return err
}
