package ui

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

// Styles groups the terminal styles used across the CLI. Construct one
// with NewStyles so color can be disabled globally (--no-color,
// NO_COLOR, or a non-terminal stdout).
type Styles struct {
	enabled bool

	Bold    lipgloss.Style
	Red     lipgloss.Style
	Green   lipgloss.Style
	Yellow  lipgloss.Style
	Blue    lipgloss.Style
	Cyan    lipgloss.Style
	Panel   lipgloss.Style
	Heading lipgloss.Style
}

// NewStyles builds the style set. When enabled is false every style
// renders as plain text.
func NewStyles(enabled bool) Styles {
	s := Styles{enabled: enabled}
	if !enabled {
		s.Panel = lipgloss.NewStyle()
		return s
	}

	s.Bold = lipgloss.NewStyle().Bold(true)
	s.Red = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	s.Green = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	s.Yellow = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	s.Blue = lipgloss.NewStyle().Foreground(lipgloss.Color("4"))
	s.Cyan = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	s.Panel = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		Padding(0, 1)
	s.Heading = lipgloss.NewStyle().Bold(true).Underline(true)
	return s
}

// Enabled reports whether color output is active.
func (s Styles) Enabled() bool {
	return s.enabled
}

// ColorEnabled decides whether stdout should get ANSI color, honoring
// NO_COLOR and dumb terminals.
func ColorEnabled() bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	if os.Getenv("TERM") == "dumb" {
		return false
	}
	return term.IsTerminal(int(os.Stdout.Fd()))
}
