package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/RoboSyntax/white-raven-webapp/internal/dashboard"
	"github.com/RoboSyntax/white-raven-webapp/internal/view"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type focusPane int

const (
	focusList focusPane = iota
	focusPreview
)

type mode int

const (
	modeNormal mode = iota
	modeSearch
	modeFilter
	modeField
	modeHelp
)

// field is the filter value being edited in modeField.
type field int

const (
	fieldMinLength field = iota
	fieldMaxLength
	fieldSource
)

func (f field) prompt() string {
	switch f {
	case fieldMinLength:
		return "min length (s) "
	case fieldMaxLength:
		return "max length (s) "
	default:
		return "source "
	}
}

const (
	headerHeight = 1
	filterHeight = 1
	statusHeight = 1
)

type App struct {
	ctrl   *dashboard.Controller
	opts   Options
	cursor int
	focus  focusPane
	mode   mode

	width  int
	height int

	// Sub-components
	searchInput textinput.Model
	fieldInput  textinput.Model
	spinner     spinner.Model

	// State
	editing       field
	chipCursor    int
	previewScroll int
	modalScroll   int

	// Snapshots of controller state, used to notice changes after Apply.
	resultsGen uint64
	modalID    string
	modalOpen  bool
	toastSeq   uint64
	spinning   bool
}

// Options holds the TUI-only settings.
type Options struct {
	// RequestTimeout bounds every network task. Zero disables it.
	RequestTimeout time.Duration
	Mouse          bool
	// Output replaces stdout; share it with anything else that writes to the terminal.
	Output *Output
}

func NewApp(ctrl *dashboard.Controller, opts Options) *App {
	ti := textinput.New()
	ti.Placeholder = "Search for stories..."
	ti.Prompt = searchPromptStyle.Render("/ ")
	ti.CharLimit = 200

	fi := textinput.New()
	fi.CharLimit = 40

	sp := spinner.New()
	sp.Spinner = spinner.MiniDot
	sp.Style = spinnerStyle

	return &App{
		ctrl:        ctrl,
		opts:        opts,
		searchInput: ti,
		fieldInput:  fi,
		spinner:     sp,
	}
}

// Init loads the recent stories, the mood chips and the header counters.
func (a *App) Init() tea.Cmd {
	return tea.Batch(
		a.task(a.ctrl.BrowseRecent()),
		a.task(a.ctrl.LoadMoods()),
		a.task(a.ctrl.LoadStats()),
		a.sync(),
	)
}

// task runs t off the update loop and delivers its outcome as an outcomeMsg.
func (a *App) task(t dashboard.Task) tea.Cmd {
	if t == nil {
		return nil
	}
	timeout := a.opts.RequestTimeout
	return func() tea.Msg {
		ctx := context.Background()
		if timeout > 0 {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(ctx, timeout)
			defer cancel()
		}
		return outcomeMsg{outcome: t(ctx)}
	}
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmd := a.update(msg)
	return a, tea.Batch(cmd, a.sync())
}

func (a *App) update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		return nil

	case tea.KeyMsg:
		return a.handleKey(msg)

	case tea.MouseMsg:
		return a.handleMouse(msg)

	case outcomeMsg:
		a.ctrl.Apply(msg.outcome)
		return nil

	case toastExpiredMsg:
		a.ctrl.ExpireToast(msg.seq)
		return nil

	case spinner.TickMsg:
		if !a.ctrl.Loading() {
			a.spinning = false
			return nil
		}
		var cmd tea.Cmd
		a.spinner, cmd = a.spinner.Update(msg)
		return cmd
	}
	return nil
}

// sync reacts to controller state changed by the last message: new results
// reset the cursor, a new toast schedules its expiry and pending requests
// keep the spinner running.
func (a *App) sync() tea.Cmd {
	var cmds []tea.Cmd

	if gen := a.ctrl.ResultsGeneration(); gen != a.resultsGen {
		a.resultsGen = gen
		a.cursor = 0
		a.previewScroll = 0
	}

	d, open := a.ctrl.Modal()
	if open != a.modalOpen || d.ID != a.modalID {
		a.modalOpen = open
		a.modalID = d.ID
		a.modalScroll = 0
	}

	if t, ok := a.ctrl.Toast(); ok && t.Seq != a.toastSeq {
		a.toastSeq = t.Seq
		seq := t.Seq
		cmds = append(cmds, tea.Tick(t.TTL, func(time.Time) tea.Msg {
			return toastExpiredMsg{seq: seq}
		}))
	}

	if a.ctrl.Loading() && !a.spinning {
		a.spinning = true
		cmds = append(cmds, a.spinner.Tick)
	}

	return tea.Batch(cmds...)
}

func (a *App) cards() []view.Card {
	r, _ := a.ctrl.Results()
	return r.Cards
}

func (a *App) selected() *view.Card {
	cards := a.cards()
	if a.cursor < 0 || a.cursor >= len(cards) {
		return nil
	}
	return &cards[a.cursor]
}

func (a *App) handleKey(msg tea.KeyMsg) tea.Cmd {
	// Global keys
	if msg.String() == "ctrl+c" {
		return tea.Quit
	}

	if _, open := a.ctrl.Modal(); open {
		return a.handleModalKey(msg)
	}

	// Mode-specific handling
	switch a.mode {
	case modeSearch:
		return a.handleSearchKey(msg)
	case modeFilter:
		return a.handleFilterKey(msg)
	case modeField:
		return a.handleFieldKey(msg)
	case modeHelp:
		if msg.String() == "?" || msg.String() == "esc" || msg.String() == "q" {
			a.mode = modeNormal
		}
		return nil
	}

	// Normal mode
	switch msg.String() {
	case "q":
		return tea.Quit
	case "j", "down":
		if a.focus == focusList && a.cursor < len(a.cards())-1 {
			a.cursor++
			a.previewScroll = 0
		} else if a.focus == focusPreview {
			a.previewScroll++
		}
	case "k", "up":
		if a.focus == focusList && a.cursor > 0 {
			a.cursor--
			a.previewScroll = 0
		} else if a.focus == focusPreview && a.previewScroll > 0 {
			a.previewScroll--
		}
	case "tab":
		if a.focus == focusList {
			a.focus = focusPreview
		} else {
			a.focus = focusList
		}
	case "o", "enter":
		if c := a.selected(); c != nil {
			return a.task(a.ctrl.LoadFullStory(c.ID))
		}
	case "/":
		a.mode = modeSearch
		a.searchInput.Focus()
		return textinput.Blink
	case "f":
		a.mode = modeFilter
	case "r":
		return a.task(a.ctrl.BrowseRandom())
	case "n":
		return a.task(a.ctrl.BrowseRecent())
	case "t":
		return a.task(a.ctrl.BrowseTop())
	case "s":
		// Re-run the last search with the current filters.
		if q := a.searchInput.Value(); q != "" {
			return a.task(a.ctrl.Search(q))
		}
	case "?":
		a.mode = modeHelp
	}
	return nil
}

func (a *App) handleSearchKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "esc":
		a.mode = modeNormal
		a.searchInput.Blur()
		return nil
	case "enter":
		a.mode = modeNormal
		a.searchInput.Blur()
		return a.task(a.ctrl.Search(a.searchInput.Value()))
	}

	var cmd tea.Cmd
	a.searchInput, cmd = a.searchInput.Update(msg)
	return cmd
}

func (a *App) handleFilterKey(msg tea.KeyMsg) tea.Cmd {
	filters := a.ctrl.Filters()
	chips := filters.Chips()

	switch msg.String() {
	case "esc", "f":
		a.mode = modeNormal
	case "left", "h":
		if a.chipCursor > 0 {
			a.chipCursor--
		}
	case "right", "l":
		if a.chipCursor < len(chips)-1 {
			a.chipCursor++
		}
	case " ", "enter":
		if a.chipCursor < len(chips) {
			filters.ToggleMood(chips[a.chipCursor].Tag)
		}
	case "1", "2", "3", "4", "5", "6", "7", "8", "9":
		idx := int(msg.String()[0] - '1')
		if idx < len(chips) {
			filters.ToggleMood(chips[idx].Tag)
			a.chipCursor = idx
		}
	case "+", "=":
		filters.SetQuality(filters.Quality() + 1)
	case "-", "_":
		filters.SetQuality(filters.Quality() - 1)
	case "m":
		min, _ := filters.LengthBounds()
		return a.editField(fieldMinLength, fmt.Sprint(min))
	case "M":
		_, max := filters.LengthBounds()
		return a.editField(fieldMaxLength, fmt.Sprint(max))
	case "s":
		return a.editField(fieldSource, filters.Source())
	case "x":
		filters.Reset()
		a.chipCursor = 0
	}
	return nil
}

func (a *App) editField(f field, value string) tea.Cmd {
	a.mode = modeField
	a.editing = f
	a.fieldInput.Prompt = searchPromptStyle.Render(f.prompt())
	a.fieldInput.SetValue(value)
	a.fieldInput.CursorEnd()
	a.fieldInput.Focus()
	return textinput.Blink
}

func (a *App) handleFieldKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "esc":
		a.mode = modeFilter
		a.fieldInput.Blur()
		return nil
	case "enter":
		filters := a.ctrl.Filters()
		value := a.fieldInput.Value()
		switch a.editing {
		case fieldMinLength:
			filters.SetMinLength(value)
		case fieldMaxLength:
			filters.SetMaxLength(value)
		case fieldSource:
			filters.SetSource(value)
		}
		a.mode = modeFilter
		a.fieldInput.Blur()
		return nil
	}

	var cmd tea.Cmd
	a.fieldInput, cmd = a.fieldInput.Update(msg)
	return cmd
}

func (a *App) handleModalKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "esc", "x", "q":
		a.ctrl.CloseStoryModal()
	case "c", "y":
		return a.task(a.ctrl.CopyStory())
	case "j", "down":
		a.modalScroll++
	case "k", "up":
		if a.modalScroll > 0 {
			a.modalScroll--
		}
	case "r":
		return a.task(a.ctrl.BrowseRandom())
	}
	return nil
}

func (a *App) handleMouse(msg tea.MouseMsg) tea.Cmd {
	if _, open := a.ctrl.Modal(); open {
		switch msg.Button {
		case tea.MouseButtonWheelDown:
			a.modalScroll++
			return nil
		case tea.MouseButtonWheelUp:
			if a.modalScroll > 0 {
				a.modalScroll--
			}
			return nil
		}
		if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
			a.ctrl.ClickModal(newModalLayout(a.width, a.height).hit(msg.X, msg.Y))
		}
		return nil
	}

	if a.mode != modeNormal || msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return nil
	}
	l := a.layout()
	idx, ok := l.cardAt(msg.X, msg.Y, a.cursor, len(a.cards()))
	if !ok {
		return nil
	}
	a.cursor = idx
	a.focus = focusList
	a.previewScroll = 0
	return a.task(a.ctrl.LoadFullStory(a.cards()[idx].ID))
}

// layout is the geometry of the two-pane browse view.
type layout struct {
	listWidth     int
	previewWidth  int
	contentHeight int
}

func (a *App) layout() layout {
	contentHeight := a.height - headerHeight - filterHeight - statusHeight - 2 // borders
	if contentHeight < 3 {
		contentHeight = 3
	}
	listWidth := int(float64(a.width) * 0.4)
	return layout{
		listWidth:     listWidth,
		previewWidth:  a.width - listWidth,
		contentHeight: contentHeight,
	}
}

// cardAt maps a click to a card index in the list pane.
func (l layout) cardAt(x, y, cursor, count int) (int, bool) {
	top := headerHeight + filterHeight + 1
	if x <= 0 || x >= l.listWidth-1 || y < top || y >= top+l.contentHeight {
		return 0, false
	}
	start, end := listWindow(cursor, count, l.contentHeight)
	idx := start + (y-top)/itemHeight
	if idx >= end {
		return 0, false
	}
	return idx, true
}

func (a *App) View() string {
	if a.width == 0 {
		return lipgloss.NewStyle().Foreground(colorAccent).Render("  white raven")
	}

	if a.mode == modeHelp {
		return a.renderHelp()
	}

	if d, open := a.ctrl.Modal(); open {
		return renderModal(d, newModalLayout(a.width, a.height), a.modalScroll)
	}

	l := a.layout()

	// Header
	header := a.renderHeader()

	// Filter bar (replaced by the input while typing)
	var filterRow string
	switch a.mode {
	case modeSearch:
		filterRow = a.searchInput.View()
	case modeField:
		filterRow = a.fieldInput.View()
	default:
		filterRow = renderFilterBar(a.ctrl.Filters(), a.chipCursor, a.mode == modeFilter, a.width)
	}

	// Panes
	results, loaded := a.ctrl.Results()
	innerListW := l.listWidth - 4 // border + padding
	var listContent string
	if loaded {
		listContent = renderList(results, a.cursor, l.contentHeight, innerListW)
	} else {
		listContent = renderSplash(innerListW, l.contentHeight)
	}

	listStyle := listPaneStyle
	previewStyle := previewPaneStyle
	if a.focus == focusList {
		listStyle = listPaneActiveStyle
	} else {
		previewStyle = previewPaneActiveStyle
	}
	listPane := listStyle.Width(l.listWidth - 2).Height(l.contentHeight).Render(listContent)

	innerPreviewW := l.previewWidth - 4
	previewContent := renderPreview(a.selected(), innerPreviewW, l.contentHeight, a.previewScroll)
	previewPane := previewStyle.Width(l.previewWidth - 2).Height(l.contentHeight).Render(previewContent)

	content := lipgloss.JoinHorizontal(lipgloss.Top, listPane, previewPane)

	// Status bar
	state := statusState{
		count:     results.Count,
		query:     a.ctrl.LastQuery(),
		mode:      a.mode,
		loading:   a.ctrl.Loading(),
		spinner:   a.spinner.View(),
		toast:     nil,
		inverted:  a.ctrl.Filters().Inverted(),
		hasResult: loaded,
	}
	if t, ok := a.ctrl.Toast(); ok {
		state.toast = &t
	}
	status := renderStatusBar(state, a.width)

	return lipgloss.JoinVertical(lipgloss.Left, header, filterRow, content, status)
}

func (a *App) renderHeader() string {
	left := headerStyle.Render("🐦‍⬛ White Raven Tales")
	stats := a.ctrl.Stats()
	right := headerStatsStyle.Render(fmt.Sprintf("📚 %s stories · 🎭 %s moods · ⭐ %s avg ", stats.Total, stats.Moods, stats.AvgQuality))
	gap := a.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 0 {
		return left
	}
	return left + strings.Repeat(" ", gap) + right
}

func (a *App) renderHelp() string {
	title := lipgloss.NewStyle().Foreground(colorAccent).Bold(true).Render("white raven")
	dim := helpDimStyle

	help := title + dim.Render(" · Keyboard Shortcuts") + "\n\n" +
		dim.Render("Navigation") + "\n" +
		"  j/k, ↑/↓     Navigate story list\n" +
		"  tab           Switch focus between list and preview\n" +
		"  o, enter      Read the full story\n\n" +
		dim.Render("Stories") + "\n" +
		"  /             Search stories\n" +
		"  s             Repeat the last search\n" +
		"  r             Random story\n" +
		"  n             Recent stories\n" +
		"  t             Top stories\n" +
		"  f             Filter mode\n\n" +
		dim.Render("Filter Mode") + "\n" +
		"  ←/→, h/l     Move between moods\n" +
		"  space/enter   Toggle mood\n" +
		"  1-9           Toggle mood by number\n" +
		"  +/-           Raise or lower minimum quality\n" +
		"  m/M           Edit min/max length\n" +
		"  s             Edit source\n" +
		"  x             Reset filters\n" +
		"  esc, f        Exit filter mode\n\n" +
		dim.Render("Story") + "\n" +
		"  c             Copy story to clipboard\n" +
		"  j/k           Scroll\n" +
		"  esc, x        Close\n\n" +
		dim.Render("General") + "\n" +
		"  ?             Toggle this help\n" +
		"  q, ctrl+c    Quit"

	card := helpCardStyle.Render(help)

	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, card)
}

// Run starts the TUI application.
func Run(ctrl *dashboard.Controller, opts Options) error {
	programOpts := []tea.ProgramOption{tea.WithAltScreen()}
	if opts.Mouse {
		programOpts = append(programOpts, tea.WithMouseCellMotion())
	}
	if opts.Output != nil {
		programOpts = append(programOpts, tea.WithOutput(opts.Output))
	}
	p := tea.NewProgram(NewApp(ctrl, opts), programOpts...)
	_, err := p.Run()
	return err
}
