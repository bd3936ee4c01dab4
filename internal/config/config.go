package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"
)

const (
	DefaultLogLevel     = "info"
	DefaultPollInterval = 5 * time.Second
)

// DatabasePath returns the profile database path from LOVEDIARY_DB,
// falling back to $XDG_DATA_HOME/lovediary/lovediary.db.
func DatabasePath() string {
	if env := os.Getenv("LOVEDIARY_DB"); env != "" {
		return env
	}

	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, _ := os.UserHomeDir()
		dataHome = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataHome, "lovediary", "lovediary.db")
}

// Appearance returns the forced appearance from LOVEDIARY_APPEARANCE
// ("light" or "dark"). Empty means follow the system.
func Appearance() string {
	return strings.ToLower(strings.TrimSpace(os.Getenv("LOVEDIARY_APPEARANCE")))
}

// LogLevel returns the log level from LOVEDIARY_LOG_LEVEL
func LogLevel() string {
	if env := os.Getenv("LOVEDIARY_LOG_LEVEL"); env != "" {
		return env
	}
	return DefaultLogLevel
}

// PollInterval returns how often the system appearance is re-read, from
// LOVEDIARY_POLL_INTERVAL (a Go duration). Invalid values use the default.
func PollInterval() time.Duration {
	env := os.Getenv("LOVEDIARY_POLL_INTERVAL")
	if env == "" {
		return DefaultPollInterval
	}
	d, err := time.ParseDuration(env)
	if err != nil || d <= 0 {
		return DefaultPollInterval
	}
	return d
}
