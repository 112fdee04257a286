package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/henri123lemoine/plant-haiku/internal/haiku"
)

// Panel is what a graphical host displays: a presentation plus an
// optional re-invocation reference.
type Panel struct {
	Presentation haiku.Presentation

	// URL re-runs generation when the panel is tapped. Empty means the
	// panel is not tappable.
	URL string
}

// PanelWidth returns the cell width RenderPanel uses for p.
func PanelWidth(p haiku.Presentation) int {
	width := MinPanelWidth
	for _, line := range p.Lines() {
		if w := lipgloss.Width(line) + 2*PaddingX; w > width {
			width = w
		}
	}
	return width
}

// RenderPanel renders the panel as a block of equal-width rows over a
// top-to-bottom gradient.
func RenderPanel(panel Panel, t Theme) string {
	p := panel.Presentation
	width := PanelWidth(p)

	type row struct {
		kind int
		text string
	}
	rows := make([]row, 0, 7+2*PaddingY)
	for i := 0; i < PaddingY; i++ {
		rows = append(rows, row{kind: rowBlank})
	}
	rows = append(rows,
		row{rowTitle, p.Title},
		row{rowBlank, ""},
		row{rowBody, p.Line1},
		row{rowBody, p.Line2},
		row{rowBody, p.Line3},
		row{rowBlank, ""},
		row{rowFooter, p.Footer},
	)
	for i := 0; i < PaddingY; i++ {
		rows = append(rows, row{kind: rowBlank})
	}

	bg := Gradient(t.GradientTop, t.GradientBottom, len(rows))
	rendered := make([]string, len(rows))
	for i, r := range rows {
		rendered[i] = rowStyle(t, r.kind, bg[i], width).Render(r.text)
	}

	return strings.Join(rendered, "\n")
}

// Hyperlink wraps s in an OSC 8 hyperlink to url. Terminals that support
// it make the whole block clickable. An empty url returns s unchanged.
func Hyperlink(s, url string) string {
	if url == "" {
		return s
	}
	return ansi.SetHyperlink(url) + s + ansi.ResetHyperlink()
}

// RenderText renders p as a plain block framed by two rules. Every line,
// including the last rule, ends in a newline.
func RenderText(p haiku.Presentation) string {
	rule := strings.Repeat("=", RuleWidth)

	var b strings.Builder
	b.WriteString(rule + "\n")
	b.WriteString(strings.Join(p.Lines(), "\n") + "\n")
	b.WriteString(rule + "\n")
	return b.String()
}

// PreviewParams contains everything the preview screen needs.
type PreviewParams struct {
	Panel  Panel
	Theme  Theme
	Width  int
	Height int
	Err    error
	Help   string
}

// RenderPreview renders the panel centred in the terminal with the error,
// if any, and a help line beneath it.
func RenderPreview(p PreviewParams) string {
	var b strings.Builder
	b.WriteString(Hyperlink(RenderPanel(p.Panel, p.Theme), p.Panel.URL))
	b.WriteString("\n\n")

	if p.Err != nil {
		b.WriteString(ErrorStyle.Render("Error: "+p.Err.Error()) + "\n")
	}
	b.WriteString(HelpStyle.Render(p.Help))

	content := b.String()
	if p.Width <= 0 || p.Height <= 0 {
		return content
	}
	return lipgloss.Place(p.Width, p.Height, lipgloss.Center, lipgloss.Center, content)
}
