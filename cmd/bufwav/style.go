package main

import "github.com/charmbracelet/lipgloss"

var (
	colorPrimary = lipgloss.Color("#00ff9f")
	colorDim     = lipgloss.Color("#6e7681")
	colorError   = lipgloss.Color("#ff5f5f")
)

type styles struct {
	Title lipgloss.Style
	Label lipgloss.Style
	Dim   lipgloss.Style
	Error lipgloss.Style
}

func newStyles(noColor bool) styles {
	if noColor {
		plain := lipgloss.NewStyle()

		return styles{Title: plain, Label: plain, Dim: plain, Error: plain}
	}

	return styles{
		Title: lipgloss.NewStyle().Bold(true).Foreground(colorPrimary),
		Label: lipgloss.NewStyle().Foreground(colorPrimary),
		Dim:   lipgloss.NewStyle().Foreground(colorDim),
		Error: lipgloss.NewStyle().Bold(true).Foreground(colorError),
	}
}

// field renders an aligned "label: value" line.
func (s styles) field(label, value string) string {
	return s.Label.Render(padRight(label+":", 12)) + " " + value
}

func padRight(s string, width int) string {
	for len(s) < width {
		s += " "
	}

	return s
}
