package domain

import (
	"errors"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"
)

// DateFormat selects how FormatDate renders a date
type DateFormat int

const (
	DateFormatShort DateFormat = iota // Jul 15
	DateFormatLong                    // Monday, July 15, 2024
	DateFormatRelative                // 3 days ago
)

// FormatDate renders date in the requested format; now is only used for
// DateFormatRelative
func FormatDate(date time.Time, format DateFormat, now time.Time) string {
	switch format {
	case DateFormatRelative:
		return FormatRelativeDate(date, now)
	case DateFormatLong:
		return date.Format("Monday, January 2, 2006")
	default:
		return date.Format("Jan 2")
	}
}

// FormatTime renders a 12-hour clock time, e.g. "7:32 PM"
func FormatTime(t time.Time) string {
	return t.Format("3:04 PM")
}

// TruncateText shortens text to maxLength runes, ending in "..."
func TruncateText(text string, maxLength int) string {
	if utf8.RuneCountInString(text) <= maxLength {
		return text
	}
	runes := []rune(text)
	cut := max(maxLength-3, 0)
	return string(runes[:cut]) + "..."
}

// Capitalize upper-cases the first rune
func Capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}

// TimeBasedGreeting picks a greeting for the hour of now
func TimeBasedGreeting(now time.Time) string {
	hour := now.Hour()
	switch {
	case hour < 5:
		return "Sweet dreams"
	case hour < 12:
		return "Good morning"
	case hour < 17:
		return "Good afternoon"
	case hour < 21:
		return "Good evening"
	default:
		return "Good night"
	}
}

// Entry content limits
const (
	MinEntryLength = 10
	MaxEntryLength = 5000
)

// Entry content validation errors
var (
	ErrEntryEmpty    = errors.New("entry cannot be empty")
	ErrEntryTooShort = errors.New("entry is too short")
	ErrEntryTooLong  = errors.New("entry is too long (max 5000 characters)")
)

// ValidateEntryContent checks a draft entry body
func ValidateEntryContent(content string) error {
	if strings.TrimSpace(content) == "" {
		return ErrEntryEmpty
	}
	n := utf8.RuneCountInString(content)
	if n < MinEntryLength {
		return ErrEntryTooShort
	}
	if n > MaxEntryLength {
		return ErrEntryTooLong
	}
	return nil
}
