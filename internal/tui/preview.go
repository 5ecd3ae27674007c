package tui

import (
	"strings"

	"github.com/RoboSyntax/white-raven-webapp/internal/view"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

func renderPreview(card *view.Card, width, height, scroll int) string {
	if card == nil {
		return centerText(placeholderStyle.Render("Select a story"), width, height)
	}

	contentWidth := width - 2
	if contentWidth < 10 {
		contentWidth = 10
	}

	title := previewTitleStyle.Width(contentWidth).Render(card.Heading())
	meta := itemMoodStyle.Render(card.Mood) + itemMetaStyle.Render(" · "+card.Length+" · "+card.Score)
	stars := starStyle.Render(card.Stars)

	body := previewBodyStyle.Width(contentWidth).Render(wrapText(card.Preview, contentWidth))
	hint := previewHintStyle.Render("enter to read the full story")

	content := lipgloss.JoinVertical(lipgloss.Left, title, meta, stars, "", body, hint)

	return clipLines(content, height, scroll)
}

// clipLines scrolls content by scroll lines and pads or cuts it to height.
func clipLines(content string, height, scroll int) string {
	lines := strings.Split(content, "\n")
	if scroll > 0 && scroll < len(lines) {
		lines = lines[scroll:]
	} else if scroll >= len(lines) && len(lines) > 0 {
		lines = lines[len(lines)-1:]
	}

	if len(lines) < height {
		lines = append(lines, make([]string, height-len(lines))...)
	} else if len(lines) > height {
		lines = lines[:height]
	}

	return strings.Join(lines, "\n")
}

func wrapText(s string, width int) string {
	if width <= 0 {
		return s
	}
	return ansi.Wrap(s, width, "")
}
