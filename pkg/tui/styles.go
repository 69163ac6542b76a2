package tui

import (
	"github.com/charmbracelet/lipgloss"
)

// Minimal color palette
var (
	DimColor     = lipgloss.Color("#6c6c6c")
	TextColor    = lipgloss.Color("#e0e0e0")
	AccentColor  = lipgloss.Color("#7aa2f7")
	ErrorColor   = lipgloss.Color("#f7768e")
	SuccessColor = lipgloss.Color("#9ece6a")
	WarnColor    = lipgloss.Color("#e0af68")
	SurfaceColor = lipgloss.Color("#1f2335")
)

// Header styles
var (
	TitleStyle = lipgloss.NewStyle().
			Foreground(AccentColor).
			Bold(true)

	CounterStyle = lipgloss.NewStyle().
			Foreground(TextColor)

	// CounterBumpStyle is used while the counter animation is running.
	CounterBumpStyle = lipgloss.NewStyle().
				Foreground(SuccessColor).
				Bold(true)

	SearchStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(DimColor).
			Padding(0, 1)
)

// Filter tag styles
var (
	FilterStyle = lipgloss.NewStyle().
			Foreground(DimColor).
			Padding(0, 1)

	FilterActiveStyle = lipgloss.NewStyle().
				Foreground(SurfaceColor).
				Background(AccentColor).
				Padding(0, 1)
)

// Card list styles
var (
	SectionStyle = lipgloss.NewStyle().
			Foreground(WarnColor).
			Bold(true)

	CardTitleStyle = lipgloss.NewStyle().
			Foreground(TextColor).
			Bold(true)

	CardSelectedStyle = lipgloss.NewStyle().
				Foreground(AccentColor).
				Bold(true)

	CardMetaStyle = lipgloss.NewStyle().
			Foreground(DimColor)

	BadgeStyle = lipgloss.NewStyle().
			Foreground(SuccessColor)

	BadgeDeprecatedStyle = lipgloss.NewStyle().
				Foreground(ErrorColor)

	PlaceholderTitleStyle = lipgloss.NewStyle().
				Foreground(TextColor).
				Bold(true)

	PlaceholderHintStyle = lipgloss.NewStyle().
				Foreground(DimColor).
				Italic(true)
)

// Overlay styles
var (
	OverlayStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(AccentColor).
			Padding(0, 1)

	TabStyle = lipgloss.NewStyle().
			Foreground(DimColor).
			Padding(0, 1)

	TabActiveStyle = lipgloss.NewStyle().
			Foreground(AccentColor).
			Underline(true).
			Bold(true).
			Padding(0, 1)

	VerbStyle = lipgloss.NewStyle().
			Foreground(SuccessColor).
			Bold(true)

	CodeStyle = lipgloss.NewStyle().
			Foreground(TextColor).
			Border(lipgloss.NormalBorder(), false, false, false, true).
			BorderForeground(DimColor).
			PaddingLeft(1)
)

// Footer styles
var (
	StatusStyle = lipgloss.NewStyle().
			Foreground(SuccessColor)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(ErrorColor)

	HelpStyle = lipgloss.NewStyle().
			Foreground(DimColor)
)

// Prefixes
const (
	CursorPrefix   = "▸ "
	NoCursorPrefix = "  "
	ExpandedMark   = "▾"
	CollapsedMark  = "▸"
)
