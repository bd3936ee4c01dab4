package application

import (
	"errors"
	"fmt"
)

// Sentinel errors for common conditions
var (
	ErrNotFound    = errors.New("not found")
	ErrInvalidDate = errors.New("invalid date")
	ErrInvalidMode = errors.New("invalid appearance mode")
	ErrNoProfile   = errors.New("no relationship profile")
)

// ValidationError represents a validation failure with details
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// DateParseError represents a date argument that could not be parsed
type DateParseError struct {
	Field string
	Value string
}

func (e *DateParseError) Error() string {
	return fmt.Sprintf("%s: cannot parse %q (expected YYYY-MM-DD or RFC3339)", e.Field, e.Value)
}

func (e *DateParseError) Is(target error) bool {
	return target == ErrInvalidDate
}
