package models

import (
	"errors"
	"fmt"
)

var (
	ErrValidation      = errors.New("validation error")
	ErrNotFound        = errors.New("not found")
	ErrEmptySelection  = errors.New("no line selected")
	ErrIndexOutOfRange = errors.New("index out of range")
	ErrDataCorruption  = errors.New("data file is corrupted")
	ErrRenderFailure   = errors.New("failed to render ticket")
)

// ValidationError reports a bad or missing user-entered field
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
}

// Is makes every ValidationError match ErrValidation
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// NewValidationError creates a ValidationError for the given field
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}
