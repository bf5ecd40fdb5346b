// Package validator adapts go-playground/validator to echo.Validator.
package validator

import (
	"reflect"
	"strings"

	domainerrors "medreminder/internal/domain/errors"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

const (
	// ClockLayout is the 24-hour wall-clock format accepted for picked times
	ClockLayout = "15:04"

	// ClockTag validates a string against ClockLayout, e.g. `validate:"required,clock"`
	ClockTag = "clock"
)

// RequestValidator validates request structs using `validate` tags
type RequestValidator struct {
	validate *validator.Validate
}

// New creates a validator that reports the JSON name of failing fields
func New() echo.Validator {
	validate := validator.New(validator.WithRequiredStructEnabled())
	validate.RegisterTagNameFunc(jsonFieldName)
	validate.RegisterAlias(ClockTag, "datetime="+ClockLayout)

	return &RequestValidator{validate: validate}
}

// Validate returns ErrValidationFailed describing every failed field
func (v *RequestValidator) Validate(i any) error {
	err := v.validate.Struct(i)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return errors.WithStack(err)
	}

	details := make([]string, 0, len(fieldErrs))
	for _, fieldErr := range fieldErrs {
		details = append(details, describe(fieldErr))
	}

	return domainerrors.ErrValidationFailed.WithDetails(strings.Join(details, "; "))
}

func describe(fieldErr validator.FieldError) string {
	switch fieldErr.Tag() {
	case "required", "required_with":
		return fieldErr.Field() + " is required"
	case ClockTag:
		return fieldErr.Field() + " must match " + ClockLayout
	case "datetime":
		return fieldErr.Field() + " must match " + fieldErr.Param()
	default:
		return fieldErr.Field() + " failed " + fieldErr.Tag()
	}
}

func jsonFieldName(field reflect.StructField) string {
	name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
	if name == "" || name == "-" {
		return field.Name
	}

	return name
}
