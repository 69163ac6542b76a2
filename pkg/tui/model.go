package tui

import (
	"log/slog"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/harmonica"
	"github.com/stalwar-deckers/catalog/pkg/core"
	"github.com/stalwar-deckers/catalog/pkg/search"
)

// Model is the Bubble Tea model for the catalog browser.
// All catalog state lives in the controller; the model holds only what the
// terminal needs on top of it:
// - the search field and card cursor
// - the list and overlay viewports
// - endpoint and example cursors inside the overlay
// - the counter bump animation
type Model struct {
	ctrl     *core.Controller
	search   textinput.Model
	list     viewport.Model
	body     viewport.Model
	help     help.Model
	keys     keyMap
	renderer *glamour.TermRenderer
	theme    string
	logger   *slog.Logger
	copyText func(string) error

	width  int
	height int
	ready  bool

	cursor   int // index into displayed cards
	epCursor int // endpoint cursor on the endpoints tab
	exCursor int // example cursor on the examples tab

	status    string
	statusErr bool

	// Counter bump (harmonica spring, cosmetic only)
	bumpSpring harmonica.Spring
	bumpPos    float64
	bumpVel    float64
	animating  bool
}

// bumpTickMsg drives the counter spring.
type bumpTickMsg time.Time

// Options configures the browser.
type Options struct {
	// Theme is a glamour style name, "auto" picks dark or light.
	Theme string
	// Logger receives browser diagnostics. Nil discards them.
	Logger *slog.Logger
	// Clipboard copies example code. Nil uses the system clipboard.
	Clipboard func(string) error
}

// displayCards returns the visible cards in on-screen order: grouped by
// section, catalog order within each section.
func (m Model) displayCards() []search.Card {
	var out []search.Card
	for _, s := range m.ctrl.Grid().Sections() {
		if s.Hidden {
			continue
		}
		for _, c := range s.Cards {
			if !c.Hidden {
				out = append(out, c)
			}
		}
	}
	return out
}

// selected returns the card under the cursor.
func (m Model) selected() (search.Card, bool) {
	cards := m.displayCards()
	if m.cursor < 0 || m.cursor >= len(cards) {
		return search.Card{}, false
	}
	return cards[m.cursor], true
}
