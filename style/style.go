// Package style holds the lipgloss styles and colors shared by the CLI and the TUI.
package style

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/stereoplay/stereoplay/color"
)

// Palette. The accents follow the red/cyan of an anaglyph pair.
var (
	Base     = lipgloss.Color("#1e1e2e")
	Text     = lipgloss.Color("#cdd6f4")
	Overlay  = lipgloss.Color("#6c7086")
	Red      = lipgloss.Color("#f38ba8")
	Cyan     = lipgloss.Color("#89dceb")
	Peach    = lipgloss.Color("#fab387")
	Yellow   = lipgloss.Color("#f9e2af")
	Lavender = lipgloss.Color("#b4befe")

	AccentColor = Cyan
	ErrorColor  = Red
	HiRed       = Red
)

// New returns an empty style.
func New() lipgloss.Style {
	return lipgloss.NewStyle()
}

// Fg returns a renderer with the foreground set to c.
func Fg(c lipgloss.Color) func(string) string {
	return func(s string) string { return New().Foreground(c).Render(s) }
}

// Truncate returns a renderer that fits s into max columns.
func Truncate(max int) func(string) string {
	return func(s string) string { return New().MaxWidth(max).Render(s) }
}

var (
	Faint = func(s string) string { return New().Faint(true).Render(s) }
	Bold  = func(s string) string { return New().Bold(true).Render(s) }
)

// Title renders a banner, ErrorTitle the same banner in red.
var (
	Title      = banner(color.New("62"))
	ErrorTitle = banner(color.Red)
)

func banner(bg lipgloss.Color) func(string) string {
	return func(s string) string {
		return New().Foreground(color.New("230")).Background(bg).Padding(0, 1).Render(s)
	}
}
