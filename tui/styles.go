package tui

import "github.com/charmbracelet/lipgloss"

// Styles used by Model.View.
type Styles struct {
	Page     lipgloss.Style
	Selected lipgloss.Style
	Focused  lipgloss.Style
	Ellipsis lipgloss.Style
	Button   lipgloss.Style
}

func DefaultStyles() Styles {
	base := lipgloss.NewStyle().Padding(0, 1)

	return Styles{
		Page:     base,
		Selected: base.Bold(true).Underline(true),
		Focused:  base.Reverse(true),
		Ellipsis: base.Faint(true),
		Button:   base,
	}
}
