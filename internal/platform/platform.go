// Package platform detects the coarse OS family used for remediation lookup.
package platform

import "runtime"

// Family is the coarse operating system family.
// Remediation tables are keyed on it; finer distribution detection is out of scope.
type Family string

const (
	// Darwin is macOS.
	Darwin Family = "darwin"
	// Linux covers all Linux distributions.
	Linux Family = "linux"
	// Other is everything else (BSDs, Windows, ...).
	Other Family = "other"
)

// Detect resolves the OS family for this process.
// Call once at startup and pass the result down; nothing re-detects per check.
func Detect() Family {
	return fromGOOS(runtime.GOOS)
}

// fromGOOS maps a GOOS value to a Family.
func fromGOOS(goos string) Family {
	switch goos {
	case "darwin":
		return Darwin
	case "linux":
		return Linux
	default:
		return Other
	}
}

// String returns the lowercase family name.
func (f Family) String() string {
	return string(f)
}
