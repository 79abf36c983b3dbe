// Package color names the terminal colors used by the CLI output.
package color

import "github.com/charmbracelet/lipgloss"

// New wraps an ANSI index or a hex value.
func New(value string) lipgloss.Color {
	return lipgloss.Color(value)
}

// ANSI colors, rendered by the terminal's own theme.
var (
	Red      = New("1")
	Green    = New("2")
	Yellow   = New("3")
	Blue     = New("4")
	Purple   = New("5")
	Cyan     = New("6")
	HiPurple = New("13")
)

// Orange does not follow the terminal theme.
var Orange = New("#ffb703")
