// Package ui provides terminal styles for the checklist report.
package ui

import "github.com/charmbracelet/lipgloss"

// Color palette. Single accent color, ANSI 256.
const (
	ColorGreen    = "40"  // passing checks
	ColorYellow   = "220" // warnings
	ColorRed      = "196" // failures
	ColorWhite    = "255" // section headers
	ColorGray     = "245" // remediation hints
	ColorDarkGray = "238" // separators
)

// Styles holds the styles used to render the report.
type Styles struct {
	Header  lipgloss.Style
	Section lipgloss.Style
	Pass    lipgloss.Style
	Warn    lipgloss.Style
	Fail    lipgloss.Style
	Remedy  lipgloss.Style
	Dim     lipgloss.Style
}

// DefaultStyles returns the colored style set for tty output.
func DefaultStyles() Styles {
	return Styles{
		Header:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(ColorWhite)),
		Section: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(ColorWhite)),
		Pass:    lipgloss.NewStyle().Foreground(lipgloss.Color(ColorGreen)),
		Warn:    lipgloss.NewStyle().Foreground(lipgloss.Color(ColorYellow)),
		Fail:    lipgloss.NewStyle().Foreground(lipgloss.Color(ColorRed)),
		Remedy:  lipgloss.NewStyle().Foreground(lipgloss.Color(ColorGray)),
		Dim:     lipgloss.NewStyle().Foreground(lipgloss.Color(ColorDarkGray)),
	}
}

// NoColorStyles returns an unstyled set for plain output.
func NoColorStyles() Styles {
	return Styles{
		Header:  lipgloss.NewStyle(),
		Section: lipgloss.NewStyle(),
		Pass:    lipgloss.NewStyle(),
		Warn:    lipgloss.NewStyle(),
		Fail:    lipgloss.NewStyle(),
		Remedy:  lipgloss.NewStyle(),
		Dim:     lipgloss.NewStyle(),
	}
}
