// Package ui handles panel and text rendering.
package ui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
)

// Default palette, light greens to dark greens.
const (
	DefaultGradientTop    = "#E8F5E9"
	DefaultGradientBottom = "#C8E6C9"
	DefaultTitleColor     = "#1B5E20"
	DefaultBodyColor      = "#2E7D32"
	DefaultFooterColor    = "#388E3C"
)

// Theme holds the panel colours as hex strings.
type Theme struct {
	GradientTop    string
	GradientBottom string
	Title          string
	Body           string
	Footer         string
}

// DefaultTheme returns the green panel palette.
func DefaultTheme() Theme {
	return Theme{
		GradientTop:    DefaultGradientTop,
		GradientBottom: DefaultGradientBottom,
		Title:          DefaultTitleColor,
		Body:           DefaultBodyColor,
		Footer:         DefaultFooterColor,
	}
}

// Layout
const (
	// PaddingX is the number of blank columns on each side of the panel.
	PaddingX = 2

	// PaddingY is the number of blank rows above and below the content.
	PaddingY = 1

	// MinPanelWidth keeps short haikus from producing a sliver of a panel.
	MinPanelWidth = 36

	// RuleWidth is the width of the text block's rules.
	RuleWidth = 36
)

// Styles for the preview chrome around the panel.
var (
	HelpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245"))

	ErrorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("1"))
)

// Row kinds
const (
	rowBlank = iota
	rowTitle
	rowBody
	rowFooter
)

// rowStyle returns the full style for one panel row. Foreground and
// background are set on the same style so the background survives the
// text's reset sequence.
func rowStyle(t Theme, kind int, bg lipgloss.Color, width int) lipgloss.Style {
	s := lipgloss.NewStyle().
		Background(bg).
		Width(width).
		PaddingLeft(PaddingX)

	switch kind {
	case rowTitle:
		s = s.Bold(true).Foreground(lipgloss.Color(t.Title))
	case rowBody:
		s = s.Foreground(lipgloss.Color(t.Body))
	case rowFooter:
		s = s.Italic(true).Foreground(lipgloss.Color(t.Footer))
	}
	return s
}

// Gradient returns steps colours blended from top to bottom in Lab space.
// Unparseable colours fall back to a flat top colour.
func Gradient(top, bottom string, steps int) []lipgloss.Color {
	if steps <= 0 {
		return nil
	}

	colors := make([]lipgloss.Color, steps)
	from, errFrom := colorful.Hex(top)
	to, errTo := colorful.Hex(bottom)
	if errFrom != nil || errTo != nil {
		for i := range colors {
			colors[i] = lipgloss.Color(top)
		}
		return colors
	}

	for i := range colors {
		t := 0.0
		if steps > 1 {
			t = float64(i) / float64(steps-1)
		}
		colors[i] = lipgloss.Color(from.BlendLab(to, t).Clamped().Hex())
	}
	return colors
}

// ValidColor reports whether s is a #rrggbb or #rgb colour.
func ValidColor(s string) bool {
	_, err := colorful.Hex(s)
	return err == nil
}
