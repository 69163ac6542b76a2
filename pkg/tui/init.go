package tui

import (
	"io"
	"log/slog"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/harmonica"
	"github.com/charmbracelet/lipgloss"
	"github.com/stalwar-deckers/catalog/pkg/core"
)

// newTextInput creates the search field, focused and without a prompt.
func newTextInput() textinput.Model {
	ti := textinput.New()
	ti.Placeholder = "Search APIs by name, description, category or owner..."
	ti.Focus()
	ti.CharLimit = 200
	ti.Width = 60
	ti.Prompt = ""
	ti.TextStyle = lipgloss.NewStyle().Foreground(TextColor)
	ti.PlaceholderStyle = lipgloss.NewStyle().Foreground(DimColor)
	ti.Cursor.Style = lipgloss.NewStyle().Foreground(AccentColor)
	return ti
}

// newRenderer creates a glamour renderer for the overlay's markdown
// sections. A nil renderer falls back to plain text.
func newRenderer(theme string, width int) *glamour.TermRenderer {
	if width < 40 {
		width = 40
	}
	renderer, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(theme),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return nil
	}
	return renderer
}

// NewModel creates the browser over ctrl.
func NewModel(ctrl *core.Controller, opts Options) Model {
	if opts.Theme == "" {
		opts.Theme = "auto"
	}
	if opts.Logger == nil {
		opts.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if opts.Clipboard == nil {
		opts.Clipboard = clipboard.WriteAll
	}

	h := help.New()
	h.Styles.ShortKey = HelpStyle.Bold(true)
	h.Styles.ShortDesc = HelpStyle
	h.Styles.ShortSeparator = HelpStyle

	return Model{
		ctrl:       ctrl,
		search:     newTextInput(),
		list:       viewport.New(80, 20),
		body:       viewport.New(60, 20),
		help:       h,
		keys:       newKeyMap(),
		renderer:   newRenderer(opts.Theme, 60),
		theme:      opts.Theme,
		logger:     opts.Logger,
		copyText:   opts.Clipboard,
		bumpSpring: harmonica.NewSpring(harmonica.FPS(60), 8.0, 0.4),
	}
}

// Init initializes the Bubble Tea model.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}
