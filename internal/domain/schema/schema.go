// Package schema validates media records and relay requests against their
// field constraints and reports field-level violations.
package schema

import (
	"fmt"
	"reflect"
	"strings"

	apperrors "podcast-summarizer/pkg/errors"

	"github.com/go-playground/validator/v10"
)

// ValidationError carries every violation found in one pass.
type ValidationError struct {
	Violations []apperrors.Violation
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Violations))
	for _, v := range e.Violations {
		parts = append(parts, v.Path+": "+v.Message)
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Validator is safe for concurrent use; build it once at startup.
type Validator struct {
	validate *validator.Validate
}

func New() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return &Validator{validate: v}
}

func (v *Validator) violations(s any) []apperrors.Violation {
	err := v.validate.Struct(s)
	if err == nil {
		return nil
	}

	fieldErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return []apperrors.Violation{{Path: "", Message: err.Error()}}
	}

	out := make([]apperrors.Violation, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		out = append(out, apperrors.Violation{Path: fe.Field(), Message: reason(fe)})
	}
	return out
}

func reason(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "url":
		return "must be a valid URL"
	case "oneof":
		return fmt.Sprintf("must be one of [%s]", strings.ReplaceAll(fe.Param(), " ", ", "))
	case "gte":
		return fmt.Sprintf("must be greater than or equal to %s", fe.Param())
	default:
		return fmt.Sprintf("failed %q validation", fe.Tag())
	}
}
