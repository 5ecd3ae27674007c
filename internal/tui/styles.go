package tui

import "github.com/charmbracelet/lipgloss"

var (
	// Adaptive colors for dark/light terminals
	colorPrimary   = lipgloss.AdaptiveColor{Light: "#6B3FA0", Dark: "#B39DDB"}
	colorSecondary = lipgloss.AdaptiveColor{Light: "#3D3D3D", Dark: "#ABABAB"}
	colorText      = lipgloss.AdaptiveColor{Light: "#1A1A1A", Dark: "#E0E0E0"}
	colorDim       = lipgloss.AdaptiveColor{Light: "#9B9B9B", Dark: "#626262"}
	colorAccent    = lipgloss.AdaptiveColor{Light: "#B3261E", Dark: "#E57373"}
	colorBorder    = lipgloss.AdaptiveColor{Light: "#DBDBDB", Dark: "#383838"}
	colorActiveBdr = lipgloss.AdaptiveColor{Light: "#6B3FA0", Dark: "#B39DDB"}
	colorTabActive = lipgloss.AdaptiveColor{Light: "#6B3FA0", Dark: "#7E57C2"}
	colorTabBg     = lipgloss.AdaptiveColor{Light: "#EEEEEE", Dark: "#2A2A3E"}
	colorSurface   = lipgloss.AdaptiveColor{Light: "#F5F5F5", Dark: "#1B1B2A"}
	colorStatusBg  = lipgloss.AdaptiveColor{Light: "#E8E8E8", Dark: "#1F1A2E"}
	colorStatusFg  = lipgloss.AdaptiveColor{Light: "#3D3D3D", Dark: "#ABABAB"}
	colorGreen     = lipgloss.AdaptiveColor{Light: "#04B575", Dark: "#25D366"}
	colorGold      = lipgloss.AdaptiveColor{Light: "#B8860B", Dark: "#FFD54F"}

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorPrimary).
			PaddingLeft(1)

	headerStatsStyle = lipgloss.NewStyle().
				Foreground(colorDim).
				Align(lipgloss.Right)

	listPaneStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorBorder)

	listPaneActiveStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(colorActiveBdr)

	previewPaneStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(colorBorder)

	previewPaneActiveStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(colorActiveBdr)

	itemTitleStyle = lipgloss.NewStyle().
			Foreground(colorPrimary).
			Bold(true)

	itemSelectedStyle = lipgloss.NewStyle().
				Foreground(colorAccent).
				Bold(true)

	itemMoodStyle = lipgloss.NewStyle().
			Foreground(colorGreen)

	itemMetaStyle = lipgloss.NewStyle().
			Foreground(colorDim)

	starStyle = lipgloss.NewStyle().
			Foreground(colorGold)

	placeholderStyle = lipgloss.NewStyle().
				Foreground(colorDim).
				Italic(true)

	previewTitleStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(colorPrimary).
				MarginBottom(1)

	previewBodyStyle = lipgloss.NewStyle().
				Foreground(colorSecondary)

	previewHintStyle = lipgloss.NewStyle().
				Foreground(colorDim).
				Italic(true).
				MarginTop(1)

	tabActiveStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(colorTabActive).
			Padding(0, 1).
			Bold(true)

	tabInactiveStyle = lipgloss.NewStyle().
				Foreground(colorSecondary).
				Background(colorTabBg).
				Padding(0, 1)

	tabSeparatorStyle = lipgloss.NewStyle().
				Foreground(colorDim).
				Background(colorSurface)

	filterValueStyle = lipgloss.NewStyle().
				Foreground(colorText).
				Background(colorSurface)

	filterWarnStyle = lipgloss.NewStyle().
			Foreground(colorAccent).
			Background(colorSurface).
			Bold(true)

	statusBarStyle = lipgloss.NewStyle().
			Background(colorStatusBg).
			Foreground(colorStatusFg).
			PaddingLeft(1).
			PaddingRight(1)

	errorToastStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(lipgloss.AdaptiveColor{Light: "#B3261E", Dark: "#8E1B1B"}).
			Bold(true).
			PaddingLeft(1).
			PaddingRight(1)

	successToastStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#FFFFFF")).
				Background(lipgloss.AdaptiveColor{Light: "#04B575", Dark: "#1B7F4B"}).
				Bold(true).
				PaddingLeft(1).
				PaddingRight(1)

	spinnerStyle = lipgloss.NewStyle().
			Foreground(colorAccent)

	searchPromptStyle = lipgloss.NewStyle().
				Foreground(colorAccent).
				Bold(true)

	modalStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorActiveBdr).
			Padding(0, 1)

	modalTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorPrimary)

	modalCloseStyle = lipgloss.NewStyle().
			Foreground(colorAccent).
			Bold(true)

	modalLabelStyle = lipgloss.NewStyle().
			Foreground(colorDim)

	modalBodyStyle = lipgloss.NewStyle().
			Foreground(colorText)

	helpCardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorActiveBdr).
			Padding(1, 3)

	helpDimStyle = lipgloss.NewStyle().
			Foreground(colorDim)
)
