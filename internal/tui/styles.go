package tui

import "github.com/charmbracelet/lipgloss"

// Palette.
var (
	ColorHeader    = lipgloss.AdaptiveColor{Light: "#1F4E79", Dark: "#7AB8F5"} //nolint:gochecknoglobals // Theme palette.
	ColorLabel     = lipgloss.AdaptiveColor{Light: "#555555", Dark: "#AAAAAA"} //nolint:gochecknoglobals // Theme palette.
	ColorValue     = lipgloss.AdaptiveColor{Light: "#000000", Dark: "#FFFFFF"} //nolint:gochecknoglobals // Theme palette.
	ColorMuted     = lipgloss.AdaptiveColor{Light: "#888888", Dark: "#666666"} //nolint:gochecknoglobals // Theme palette.
	ColorHighlight = lipgloss.AdaptiveColor{Light: "#0D6EFD", Dark: "#4C9AFF"} //nolint:gochecknoglobals // Theme palette.
	ColorError     = lipgloss.AdaptiveColor{Light: "#B00020", Dark: "#FF6B6B"} //nolint:gochecknoglobals // Theme palette.
)

// Shared styles.
//
//nolint:gochecknoglobals // Styles are immutable values reused across renders.
var (
	HeaderStyle = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	LabelStyle  = lipgloss.NewStyle().Foreground(ColorLabel)
	ValueStyle  = lipgloss.NewStyle().Foreground(ColorValue)
	SubtleStyle = lipgloss.NewStyle().Foreground(ColorMuted)
	ErrorStyle  = lipgloss.NewStyle().Foreground(ColorError)
	PageStyle   = lipgloss.NewStyle().Foreground(ColorHighlight).Padding(0, 1)
)

// ButtonStyle renders the sort toggle.
//
//nolint:gochecknoglobals // Immutable style.
var ButtonStyle = lipgloss.NewStyle().
	Foreground(lipgloss.Color("#FFFFFF")).
	Background(ColorHighlight).
	Padding(0, 1)

// ActivePageStyle marks the current page in the page strip.
//
//nolint:gochecknoglobals // Immutable style.
var ActivePageStyle = lipgloss.NewStyle().
	Foreground(lipgloss.Color("#FFFFFF")).
	Background(ColorHighlight).
	Bold(true).
	Padding(0, 1)

// TableHeaderStyle is applied to the column titles.
//
//nolint:gochecknoglobals // Immutable style.
var TableHeaderStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(ColorHeader).
	BorderStyle(lipgloss.NormalBorder()).
	BorderForeground(ColorMuted).
	BorderBottom(true)

// TableSelectedStyle highlights the cursor row.
//
//nolint:gochecknoglobals // Immutable style.
var TableSelectedStyle = lipgloss.NewStyle().
	Foreground(lipgloss.Color("#FFFFFF")).
	Background(ColorHighlight)

// Layout constants.
const (
	defaultWidth  = 80
	defaultHeight = 24

	// chromeHeight is the number of lines around the table: title, two
	// filter inputs, sort button, page strip, status and help.
	chromeHeight = 10
	minHeight    = 5

	colWidthName   = 36
	colWidthRegion = 12
	colWidthArea   = 18
)
