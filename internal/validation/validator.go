// Package validation runs go-playground/validator struct tags and converts
// the result into domain.ValidationError.
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/bookhive/bookhive-backend/internal/domain"
)

var validate = newValidate()

func newValidate() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Field names in errors follow the json tag.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		switch name {
		case "-":
			return ""
		case "":
			return fld.Name
		}
		return name
	})
	return v
}

// Struct validates s and returns a *domain.ValidationError listing every
// failed field in declaration order, or nil.
func Struct(s any) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var vErrs validator.ValidationErrors
	if !errors.As(err, &vErrs) {
		return fmt.Errorf("validation: %w", err)
	}

	fields := make([]domain.FieldError, 0, len(vErrs))
	for _, e := range vErrs {
		fields = append(fields, domain.FieldError{Field: e.Field(), Message: message(e)})
	}
	return domain.NewValidationErrors(fields)
}

// Var validates a single value against tag and reports the failure under
// field, or returns nil.
func Var(field string, v any, tag string) *domain.FieldError {
	err := validate.Var(v, tag)
	var vErrs validator.ValidationErrors
	if err == nil || !errors.As(err, &vErrs) || len(vErrs) == 0 {
		return nil
	}
	return &domain.FieldError{Field: field, Message: message(vErrs[0])}
}

// Merge combines tag failures with extra field errors found by hand.
func Merge(err error, extra ...domain.FieldError) error {
	var ve *domain.ValidationError
	switch {
	case err == nil && len(extra) == 0:
		return nil
	case err == nil:
		return domain.NewValidationErrors(extra)
	case errors.As(err, &ve):
		return domain.NewValidationErrors(append(ve.Errors, extra...))
	}
	return err
}

func message(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return "required"
	case "email":
		return "must be a valid email address"
	case "url":
		return "must be a valid URL"
	case "min":
		if e.Kind() == reflect.String {
			return fmt.Sprintf("min %s characters", e.Param())
		}
		return "must be at least " + e.Param()
	case "max":
		if e.Kind() == reflect.String {
			return fmt.Sprintf("max %s characters", e.Param())
		}
		if e.Kind() == reflect.Slice {
			return fmt.Sprintf("max %s entries", e.Param())
		}
		return "must be at most " + e.Param()
	case "gte":
		return "must be greater than or equal to " + e.Param()
	case "lte":
		return "must be less than or equal to " + e.Param()
	case "oneof":
		return "must be one of: " + e.Param()
	case "alphanum":
		return "must contain only letters and digits"
	default:
		return "is invalid"
	}
}
