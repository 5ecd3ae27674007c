package tui

import (
	"fmt"

	"github.com/RoboSyntax/white-raven-webapp/internal/dashboard"
	"github.com/charmbracelet/lipgloss"
)

type statusState struct {
	count     string
	query     string
	mode      mode
	loading   bool
	spinner   string
	toast     *dashboard.Toast
	inverted  bool
	hasResult bool
}

func statusHints(m mode) string {
	switch m {
	case modeSearch:
		return " esc cancel  enter search "
	case modeFilter:
		return " ←/→ move  space toggle  +/- quality  m/M length  s source  x reset  esc done "
	case modeField:
		return " esc cancel  enter apply "
	default:
		return " / search  f filter  r random  n recent  t top  ? help  q quit "
	}
}

func renderStatusBar(s statusState, width int) string {
	var left string
	switch {
	case s.loading:
		left = s.spinner + " Loading..."
	case s.hasResult:
		left = " " + s.count
		if s.query != "" {
			left += fmt.Sprintf(" · %q", s.query)
		}
	}

	if s.toast != nil {
		style := errorToastStyle
		if s.toast.Kind == dashboard.ToastSuccess {
			style = successToastStyle
		}
		left = style.Render(s.toast.Message) + left
	}

	right := statusHints(s.mode)

	gap := width - lipgloss.Width(left) - lipgloss.Width(right) - 2
	if gap < 0 {
		// The toast always wins over the key hints.
		right = ""
		gap = 0
	}

	bar := left + fmt.Sprintf("%*s", gap, "") + right

	return statusBarStyle.Width(width).MaxHeight(statusHeight).Render(bar)
}
