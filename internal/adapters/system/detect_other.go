//go:build !darwin

package system

// DefaultDetector returns the platform detector. Desktop settings win over
// the terminal background guess.
func DefaultDetector() Detector {
	return Chain(gnomeDetector(execRunner), TerminalDetector)
}
