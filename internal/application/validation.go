package application

import (
	"fmt"
	"strings"
	"time"

	"lovediary/internal/domain"
)

// DateLayout is the calendar-date form accepted on the command line
const DateLayout = "2006-01-02"

// ValidateRequired checks if a string field is non-empty (after trimming whitespace).
// Returns a ValidationError if the field is empty.
func ValidateRequired(fieldName, value string) error {
	if strings.TrimSpace(value) == "" {
		displayName := formatFieldName(fieldName)
		return &ValidationError{
			Field:   fieldName,
			Message: fmt.Sprintf("%s is required", displayName),
		}
	}
	return nil
}

// formatFieldName converts camelCase field names to space-separated words
// for more readable error messages (e.g., "startDate" -> "start date")
func formatFieldName(fieldName string) string {
	replacements := map[string]string{
		"startDate":   "start date",
		"yourName":    "your name",
		"partnerName": "partner name",
		"entryID":     "entry ID",
		"text":        "text",
	}

	if formatted, ok := replacements[fieldName]; ok {
		return formatted
	}

	return fieldName
}

// ParseDate parses a YYYY-MM-DD date in loc (nil means time.Local) or an
// RFC3339 timestamp. Failures are reported as *DateParseError.
func ParseDate(fieldName, value string, loc *time.Location) (time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, &ValidationError{
			Field:   fieldName,
			Message: fmt.Sprintf("%s is required", formatFieldName(fieldName)),
		}
	}
	if loc == nil {
		loc = time.Local
	}

	if t, err := time.ParseInLocation(DateLayout, value, loc); err == nil {
		return t, nil
	}
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}
	return time.Time{}, &DateParseError{Field: fieldName, Value: value}
}

// ParseMode parses an appearance mode argument
func ParseMode(value string) (domain.Mode, error) {
	m, err := domain.ParseMode(value)
	if err != nil {
		return domain.ModeLight, fmt.Errorf("%w: %q (expected light or dark)", ErrInvalidMode, value)
	}
	return m, nil
}
