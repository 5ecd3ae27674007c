package tui

import (
	"strings"

	"github.com/RoboSyntax/white-raven-webapp/internal/view"
	"github.com/charmbracelet/lipgloss"
)

// Each card is 3 lines + 1 blank line.
const itemHeight = 4

func renderListItem(c view.Card, selected bool, width int) string {
	if width < 10 {
		width = 30
	}

	var heading string
	if selected {
		heading = itemSelectedStyle.Render("> " + truncateStr(c.Heading(), width-4))
	} else {
		heading = itemTitleStyle.Render("  " + truncateStr(c.Heading(), width-4))
	}

	meta := "  " + itemMoodStyle.Render(c.Mood) + " " + itemMetaStyle.Render("· "+c.Length)
	rating := "  " + starStyle.Render(c.Stars) + " " + itemMetaStyle.Render(c.Score)

	return heading + "\n" + meta + "\n" + rating
}

func truncateStr(s string, n int) string {
	if n <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	if n <= 3 {
		return string(runes[:n])
	}
	return string(runes[:n-3]) + "..."
}

// listWindow returns the [start, end) range of cards visible with the cursor in view.
func listWindow(cursor, count, height int) (int, int) {
	visible := height / itemHeight
	if visible < 1 {
		visible = 1
	}

	start := 0
	if cursor >= visible {
		start = cursor - visible + 1
	}
	end := start + visible
	if end > count {
		end = count
		start = end - visible
		if start < 0 {
			start = 0
		}
	}
	return start, end
}

func renderList(results view.Results, cursor int, height int, width int) string {
	if results.Empty() {
		return centerText(placeholderStyle.Render(results.Placeholder), width, height)
	}

	start, end := listWindow(cursor, len(results.Cards), height)

	var b strings.Builder
	for i := start; i < end; i++ {
		b.WriteString(renderListItem(results.Cards[i], i == cursor, width))
		if i < end-1 {
			b.WriteString("\n\n")
		}
	}

	return b.String()
}

func centerText(s string, width, height int) string {
	pad := (width - lipgloss.Width(s)) / 2
	if pad < 0 {
		pad = 0
	}
	return strings.Repeat("\n", height/3) + strings.Repeat(" ", pad) + s
}
