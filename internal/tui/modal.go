package tui

import (
	"strings"

	"github.com/RoboSyntax/white-raven-webapp/internal/dashboard"
	"github.com/RoboSyntax/white-raven-webapp/internal/view"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

const closeLabel = "[x]"

// modalLayout is the screen rectangle of the story overlay, border included.
type modalLayout struct {
	x, y, w, h int
}

func newModalLayout(width, height int) modalLayout {
	w := width - 8
	if w > 100 {
		w = 100
	}
	if w < 30 {
		w = width
	}
	h := height - 4
	if h < 10 {
		h = height
	}
	return modalLayout{x: (width - w) / 2, y: (height - h) / 2, w: w, h: h}
}

// innerWidth is the text width inside the border and horizontal padding.
func (m modalLayout) innerWidth() int { return m.w - 4 }

func (m modalLayout) innerHeight() int { return m.h - 2 }

// hit classifies a click at column x, row y.
func (m modalLayout) hit(x, y int) dashboard.ModalTarget {
	if x < m.x || x >= m.x+m.w || y < m.y || y >= m.y+m.h {
		return dashboard.ModalBackdrop
	}
	// The close control sits right-aligned on the first content row.
	closeEnd := m.x + m.w - 2
	if y == m.y+1 && x >= closeEnd-len(closeLabel) && x < closeEnd {
		return dashboard.ModalClose
	}
	return dashboard.ModalContent
}

func renderModal(d view.Detail, m modalLayout, scroll int) string {
	iw := m.innerWidth()
	if iw < 10 {
		iw = 10
	}

	title := modalTitleStyle.Render(ansi.Truncate(d.Title, iw-len(closeLabel)-1, "…"))
	gap := iw - lipgloss.Width(title) - len(closeLabel)
	if gap < 1 {
		gap = 1
	}
	titleRow := title + strings.Repeat(" ", gap) + modalCloseStyle.Render(closeLabel)

	label := modalLabelStyle.Render
	meta := []string{
		label("Mood: ") + d.Mood + label("   Quality: ") + starStyle.Render(d.Quality) + label("   Length: ") + d.Length,
		label("Themes: ") + d.Themes,
		label("Source: ") + d.Source + label("   Created: ") + d.Created,
	}
	if d.Age != "" {
		meta[2] += label(" (" + d.Age + ")")
	}
	if d.Engagement != "" {
		meta[0] += label("   Engagement: ") + d.Engagement
	}
	for i, row := range meta {
		meta[i] = ansi.Wrap(row, iw, "")
	}

	footer := helpDimStyle.Render("c copy  j/k scroll  r another  esc close")

	// The title, meta and footer stay put; only the body scrolls.
	fixed := []string{titleRow}
	fixed = append(fixed, meta...)
	fixed = append(fixed, "")
	head := strings.Join(fixed, "\n")
	bodyHeight := m.innerHeight() - lipgloss.Height(head) - 2
	if bodyHeight < 1 {
		bodyHeight = 1
	}
	body := clipLines(modalBodyStyle.Render(wrapText(d.Body, iw)), bodyHeight, scroll)

	content := head + "\n" + body + "\n\n" + footer
	box := modalStyle.
		Width(m.w - 2).
		Height(m.innerHeight()).
		MaxHeight(m.h).
		Render(content)

	var b strings.Builder
	b.WriteString(strings.Repeat("\n", m.y))
	pad := strings.Repeat(" ", m.x)
	for i, line := range strings.Split(box, "\n") {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(pad + line)
	}
	return b.String()
}
