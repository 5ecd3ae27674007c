package tui

import (
	"fmt"

	"github.com/RoboSyntax/white-raven-webapp/internal/filter"
	"github.com/charmbracelet/lipgloss"
)

// renderFilterBar draws the mood chips followed by the quality and length
// filters. In filter mode the chip under the cursor is bracketed.
func renderFilterBar(f *filter.State, cursor int, filterMode bool, width int) string {
	sep := tabSeparatorStyle.Render(" · ")
	var parts []string

	min, max := f.LengthBounds()
	lengthStyle := filterValueStyle
	lengthLabel := fmt.Sprintf("⏱️ %d-%ds", min, max)
	if f.Inverted() {
		lengthStyle = filterWarnStyle
		lengthLabel += " (min > max)"
	}
	settings := filterValueStyle.Render(fmt.Sprintf("⭐ ≥%d", f.Quality())) + sep + lengthStyle.Render(lengthLabel)
	if src := f.Source(); src != "" {
		settings += sep + filterValueStyle.Render("📡 "+src)
	}

	for i, chip := range f.Chips() {
		style := tabInactiveStyle
		if chip.Selected {
			style = tabActiveStyle
		}
		label := chip.Label
		if filterMode && i == cursor {
			label = "[" + label + "]"
		}
		parts = append(parts, style.Render(label))
	}

	// Chips are dropped from the right before the settings are.
	budget := width - 2 - lipgloss.Width(sep) - lipgloss.Width(settings)
	var row string
	for i, part := range parts {
		candidate := row
		if i > 0 {
			candidate += sep
		}
		candidate += part
		if lipgloss.Width(candidate) > budget && row != "" {
			break
		}
		row = candidate
	}
	if row != "" {
		row += sep
	}
	row += settings

	barStyle := lipgloss.NewStyle().
		Background(colorSurface).
		Width(width).
		MaxHeight(filterHeight).
		PaddingLeft(1)
	return barStyle.Render(row)
}
