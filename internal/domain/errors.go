package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors used across all layers.
var (
	ErrNotFound      = errors.New("not found")
	ErrAlreadyExists = errors.New("already exists")
	ErrValidation    = errors.New("validation error")
	ErrUnauthorized  = errors.New("unauthorized")
	ErrForbidden     = errors.New("forbidden")
	ErrConflict      = errors.New("conflict")

	// ErrSourceUnavailable is returned by trend sources when the upstream feed
	// cannot be reached. Callers degrade to an empty catalog.
	ErrSourceUnavailable = errors.New("trend source unavailable")
	// ErrInvalidPreferences rejects a generation run outright.
	ErrInvalidPreferences = errors.New("invalid preferences")
	// ErrInvalidTransition rejects a calendar status change that is not
	// suggested -> confirmed -> published.
	ErrInvalidTransition = errors.New("invalid status transition")
)

// FieldError describes a validation error for a specific field.
type FieldError struct {
	Field   string
	Message string
}

// ValidationError contains a list of field-level validation errors.
type ValidationError struct {
	Errors []FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Errors) == 1 {
		return fmt.Sprintf("validation: %s: %s", e.Errors[0].Field, e.Errors[0].Message)
	}
	return fmt.Sprintf("validation: %d errors", len(e.Errors))
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// NewValidationError creates a ValidationError for a single field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{
		Errors: []FieldError{{Field: field, Message: message}},
	}
}

// NewValidationErrors creates a ValidationError from multiple field errors.
func NewValidationErrors(errs []FieldError) *ValidationError {
	return &ValidationError{Errors: errs}
}

// PreferencesError explains why a preferences snapshot cannot drive a
// generation run. It unwraps to ErrInvalidPreferences.
type PreferencesError struct {
	Field  string
	Reason string
}

func (e *PreferencesError) Error() string {
	return fmt.Sprintf("invalid preferences: %s %s", e.Field, e.Reason)
}

func (e *PreferencesError) Unwrap() error { return ErrInvalidPreferences }

// TransitionError describes a rejected status change.
type TransitionError struct {
	From EntryStatus
	To   EntryStatus
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("invalid status transition: %s -> %s", e.From, e.To)
}

func (e *TransitionError) Unwrap() error { return ErrInvalidTransition }
