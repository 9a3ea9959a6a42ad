// Package style provides a functional API for composing and applying lipgloss styles to CLI output.
package style

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lifo-cli/lifo/color"
)

// New returns an empty lipgloss.Style.
func New() lipgloss.Style {
	return lipgloss.NewStyle()
}

// Colored initializes a new style with the specified foreground and background colors.
func Colored(fg, bg lipgloss.Color) lipgloss.Style {
	return New().Foreground(fg).Background(bg)
}

// Fg returns a rendering function that applies the foreground color to a string.
func Fg(c lipgloss.Color) func(string) string {
	return func(s string) string { return Colored(c, "").Render(s) }
}

var (
	Faint  = func(s string) string { return New().Faint(true).Render(s) }
	Bold   = func(s string) string { return New().Bold(true).Render(s) }
	Italic = func(s string) string { return New().Italic(true).Render(s) }
)

// Cells renders items as a row of bracketed slots, e.g. "[to][be][or]".
func Cells(items []string) string {
	var b strings.Builder
	bracket := Fg(color.Gray)
	for _, item := range items {
		b.WriteString(bracket("["))
		b.WriteString(Fg(color.Cyan)(item))
		b.WriteString(bracket("]"))
	}
	return b.String()
}
