package domain

import (
	"fmt"
	"strings"
)

// Mode is the UI appearance preference
type Mode int

const (
	ModeLight Mode = iota
	ModeDark
)

func (m Mode) String() string {
	switch m {
	case ModeDark:
		return "dark"
	default:
		return "light"
	}
}

// Opposite returns the other appearance mode
func (m Mode) Opposite() Mode {
	if m == ModeDark {
		return ModeLight
	}
	return ModeDark
}

// ParseMode parses "light" or "dark" (case-insensitive)
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "light":
		return ModeLight, nil
	case "dark":
		return ModeDark, nil
	default:
		return ModeLight, fmt.Errorf("unknown appearance mode: %q", s)
	}
}
