package validate

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var ErrValidation = errors.New("validation failed")

// Error lists every field problem found in one pass.
type Error struct {
	Fields   []string
	Messages []string
}

func (e *Error) Error() string {
	if e == nil || len(e.Messages) == 0 {
		return ErrValidation.Error()
	}
	return strings.Join(e.Messages, "; ")
}

func (e *Error) Unwrap() error {
	return ErrValidation
}

type Validator struct {
	validate *validator.Validate
}

func New() *Validator {
	v := validator.New()

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name == "" {
			return strings.ToLower(fld.Name)
		}
		return name
	})

	return &Validator{validate: v}
}

func (v *Validator) Struct(value any) error {
	if err := v.validate.Struct(value); err != nil {
		var validationErrs validator.ValidationErrors
		if errors.As(err, &validationErrs) {
			return formatValidationErrors(validationErrs)
		}
		return err
	}
	return nil
}

// Var validates a single value against a tag expression, e.g. "required,email".
func (v *Validator) Var(field string, value any, tag string) error {
	if err := v.validate.Var(value, tag); err != nil {
		var validationErrs validator.ValidationErrors
		if errors.As(err, &validationErrs) {
			out := &Error{}
			for _, fieldErr := range validationErrs {
				out.Fields = append(out.Fields, field)
				out.Messages = append(out.Messages, message(field, fieldErr))
			}
			return out
		}
		return err
	}
	return nil
}

// ID trims value and rejects it when nothing is left.
func (v *Validator) ID(field, value string) (string, error) {
	value = strings.TrimSpace(value)
	if err := v.Var(field, value, "required"); err != nil {
		return "", err
	}
	return value, nil
}

func Required(value string) bool {
	return strings.TrimSpace(value) != ""
}

func formatValidationErrors(errs validator.ValidationErrors) error {
	out := &Error{}
	for _, err := range errs {
		field := err.Field()
		out.Fields = append(out.Fields, field)
		out.Messages = append(out.Messages, message(field, err))
	}
	return out
}

func message(field string, err validator.FieldError) string {
	switch err.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "email":
		return fmt.Sprintf("%s must be a valid email address", field)
	case "url":
		return fmt.Sprintf("%s must be a valid URL", field)
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", field, err.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", field, err.Param())
	case "len":
		return fmt.Sprintf("%s must be exactly %s characters", field, err.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", field, err.Param())
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", field, err.Param())
	case "gte":
		return fmt.Sprintf("%s must be greater than or equal to %s", field, err.Param())
	case "lte":
		return fmt.Sprintf("%s must be less than or equal to %s", field, err.Param())
	default:
		return fmt.Sprintf("%s failed validation for %s", field, err.Tag())
	}
}
