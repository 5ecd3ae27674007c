package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/RoboSyntax/white-raven-webapp/internal/view"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/glamour/styles"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/termenv"
	"golang.org/x/term"
)

const defaultWidth = 80

var (
	cardTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.AdaptiveColor{Light: "#6B3FA0", Dark: "#B39DDB"})
	cardMetaStyle  = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#9B9B9B", Dark: "#626262"})
	cardMoodStyle  = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#04B575", Dark: "#25D366"})
	cardCountStyle = lipgloss.NewStyle().Bold(true)
	cardIDStyle    = lipgloss.NewStyle().Faint(true)
)

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func outputWidth(w io.Writer) int {
	f, ok := w.(*os.File)
	if !ok {
		return defaultWidth
	}
	width, _, err := term.GetSize(int(f.Fd()))
	if err != nil || width <= 0 {
		return defaultWidth
	}
	return width
}

func renderResults(r view.Results, width int) string {
	var b strings.Builder
	b.WriteString(cardCountStyle.Render(r.Count))
	b.WriteString("\n")
	if r.Empty() {
		b.WriteString(cardMetaStyle.Render(r.Placeholder))
		b.WriteString("\n")
		return b.String()
	}
	for _, c := range r.Cards {
		b.WriteString("\n")
		b.WriteString(cardTitleStyle.Render(ansi.Truncate(c.Heading(), width, "…")))
		b.WriteString("\n")
		b.WriteString(cardMoodStyle.Render(c.Mood) + cardMetaStyle.Render(" · "+c.Length+" · "+c.Score+" · ") + c.Stars)
		b.WriteString("\n")
		if c.Preview != "" {
			b.WriteString(ansi.Truncate(strings.ReplaceAll(c.Preview, "\n", " "), width, "…"))
			b.WriteString("\n")
		}
		b.WriteString(cardIDStyle.Render("id: " + c.ID))
		b.WriteString("\n")
	}
	return b.String()
}

// storyMarkdown lays a story out as markdown for glamour.
func storyMarkdown(d view.Detail) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", d.Title)
	fmt.Fprintf(&b, "**Mood:** %s  \n", d.Mood)
	fmt.Fprintf(&b, "**Quality:** %s  \n", d.Quality)
	fmt.Fprintf(&b, "**Length:** %s  \n", d.Length)
	if d.Engagement != "" {
		fmt.Fprintf(&b, "**Engagement:** %s  \n", d.Engagement)
	}
	fmt.Fprintf(&b, "**Themes:** %s  \n", d.Themes)
	fmt.Fprintf(&b, "**Source:** %s  \n", d.Source)
	created := d.Created
	if d.Age != "" {
		created += " (" + d.Age + ")"
	}
	fmt.Fprintf(&b, "**Created:** %s\n\n---\n\n", created)
	// Story text is plain prose; keep paragraphs, escape nothing else.
	for _, para := range strings.Split(d.Body, "\n") {
		b.WriteString(strings.TrimSpace(para))
		b.WriteString("\n\n")
	}
	return b.String()
}

func glamourStyle(tty bool) string {
	if !tty {
		return styles.NoTTYStyle
	}
	if termenv.HasDarkBackground() {
		return styles.DarkStyle
	}
	return styles.LightStyle
}

func renderDetail(d view.Detail, width int, tty bool) string {
	md := storyMarkdown(d)
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(glamourStyle(tty)),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return md
	}
	out, err := r.Render(md)
	if err != nil {
		return md
	}
	return strings.TrimRight(out, "\n")
}
