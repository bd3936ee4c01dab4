package system

import (
	"errors"
	"fmt"
	"os/exec"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"lovediary/internal/domain"
)

// Detector reports the current system appearance
type Detector func() (domain.Mode, error)

// ErrUndetectable is returned when no detector could determine the appearance
var ErrUndetectable = errors.New("system appearance undetectable")

// Fixed always reports m
func Fixed(m domain.Mode) Detector {
	return func() (domain.Mode, error) {
		return m, nil
	}
}

// Chain tries each detector in order and returns the first success
func Chain(detectors ...Detector) Detector {
	return func() (domain.Mode, error) {
		var errs []error
		for _, d := range detectors {
			m, err := d()
			if err == nil {
				return m, nil
			}
			errs = append(errs, err)
		}
		return domain.ModeLight, errors.Join(append([]error{ErrUndetectable}, errs...)...)
	}
}

// runner executes a command and returns its stdout; swapped in tests
type runner func(name string, args ...string) ([]byte, error)

func execRunner(name string, args ...string) ([]byte, error) {
	return exec.Command(name, args...).Output()
}

// macOSDetector reads AppleInterfaceStyle. The key is absent in light mode,
// which makes `defaults` exit non-zero.
func macOSDetector(run runner) Detector {
	return func() (domain.Mode, error) {
		out, err := run("defaults", "read", "-g", "AppleInterfaceStyle")
		if err != nil {
			var exitErr *exec.ExitError
			if errors.As(err, &exitErr) {
				return domain.ModeLight, nil
			}
			return domain.ModeLight, fmt.Errorf("defaults: %w", err)
		}
		if strings.TrimSpace(string(out)) == "Dark" {
			return domain.ModeDark, nil
		}
		return domain.ModeLight, nil
	}
}

// gnomeDetector reads the freedesktop color-scheme via gsettings
func gnomeDetector(run runner) Detector {
	return func() (domain.Mode, error) {
		out, err := run("gsettings", "get", "org.gnome.desktop.interface", "color-scheme")
		if err != nil {
			return domain.ModeLight, fmt.Errorf("gsettings: %w", err)
		}
		scheme := strings.Trim(strings.TrimSpace(string(out)), "'")
		switch scheme {
		case "prefer-dark":
			return domain.ModeDark, nil
		case "prefer-light", "default":
			return domain.ModeLight, nil
		default:
			return domain.ModeLight, fmt.Errorf("gsettings: unknown color-scheme %q", scheme)
		}
	}
}

// TerminalDetector infers the mode from the terminal background color
func TerminalDetector() (domain.Mode, error) {
	if lipgloss.HasDarkBackground() {
		return domain.ModeDark, nil
	}
	return domain.ModeLight, nil
}
