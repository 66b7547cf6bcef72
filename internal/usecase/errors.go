package usecase

import (
	"errors"
	"fmt"

	"farm-storefront/internal/workflow"
	"farm-storefront/pkg/utils"
)

var (
	ErrNotAuthenticated  = errors.New("not authenticated")
	ErrEmailNotVerified  = errors.New("email not verified")
	ErrForbidden         = errors.New("forbidden")
	ErrValidation        = errors.New("validation failed")
	ErrNotFound          = errors.New("not found")
	ErrInvalidTransition = workflow.ErrInvalidTransition
	ErrOTPRequired       = workflow.ErrOTPRequired
)

// ValidationError keeps the per-field messages so handlers can return them
// in the "errors" envelope field.
type ValidationError struct {
	Fields  map[string]string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", ErrValidation, utils.FormatValidationErrors(e.Fields))
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// validate runs the struct tags and wraps any failure in a ValidationError.
func validate(data any) error {
	if errs := utils.ValidateStruct(data); len(errs) > 0 {
		return &ValidationError{Fields: errs}
	}
	return nil
}

func invalid(message string) error {
	return &ValidationError{Message: message}
}
