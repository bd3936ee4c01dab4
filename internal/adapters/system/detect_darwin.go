//go:build darwin

package system

// DefaultDetector returns the platform detector
func DefaultDetector() Detector {
	return macOSDetector(execRunner)
}
