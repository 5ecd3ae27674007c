package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var ravenLogo = []string{
	`   __    __ _     _ _        `,
	`  / / /\ \ \ |__ (_) |_ ___ `,
	`  \ \/  \/ / '_ \| | __/ _ \`,
	`   \  /\  /| | | | | ||  __/`,
	`    \/  \/ |_| |_|_|\__\___|`,
	`        r  a  v  e  n       `,
}

// renderSplash fills the list pane until the first stories arrive.
func renderSplash(width, height int) string {
	logoStyle := lipgloss.NewStyle().Foreground(colorAccent)
	labelStyle := lipgloss.NewStyle().Foreground(colorDim).Italic(true)

	var lines []string
	if width >= lipgloss.Width(ravenLogo[0]) {
		for _, l := range ravenLogo {
			lines = append(lines, logoStyle.Render(l))
		}
		lines = append(lines, "")
	}
	lines = append(lines, labelStyle.Render("Gathering tales..."))

	content := strings.Join(lines, "\n")
	contentHeight := len(lines)

	topPad := (height - contentHeight) / 3
	if topPad < 0 {
		topPad = 0
	}

	return lipgloss.PlaceHorizontal(width, lipgloss.Center, strings.Repeat("\n", topPad)+content)
}
