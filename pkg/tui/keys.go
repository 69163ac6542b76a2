package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stalwar-deckers/catalog/pkg/core"
	"github.com/stalwar-deckers/catalog/pkg/detail"
)

// keyMap holds every binding; the help line shows the ones that apply to
// the current mode.
type keyMap struct {
	Quit       key.Binding
	NextFilter key.Binding
	PrevFilter key.Binding
	Up         key.Binding
	Down       key.Binding
	Open       key.Binding
	Dismiss    key.Binding
	Close      key.Binding
	Tab1       key.Binding
	Tab2       key.Binding
	Tab3       key.Binding
	Tab4       key.Binding
	NextTab    key.Binding
	PrevTab    key.Binding
	Toggle     key.Binding
	Copy       key.Binding
	Scroll     key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Quit:       key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
		NextFilter: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next filter")),
		PrevFilter: key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "prev filter")),
		Up:         key.NewBinding(key.WithKeys("up"), key.WithHelp("↑", "up")),
		Down:       key.NewBinding(key.WithKeys("down"), key.WithHelp("↓", "down")),
		Open:       key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "open")),
		Dismiss:    key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "close")),
		Close:      key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "close")),
		Tab1:       key.NewBinding(key.WithKeys("1"), key.WithHelp("1-4", "tabs")),
		Tab2:       key.NewBinding(key.WithKeys("2")),
		Tab3:       key.NewBinding(key.WithKeys("3")),
		Tab4:       key.NewBinding(key.WithKeys("4")),
		NextTab:    key.NewBinding(key.WithKeys("right"), key.WithHelp("←/→", "switch tab")),
		PrevTab:    key.NewBinding(key.WithKeys("left")),
		Toggle:     key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter", "expand")),
		Copy:       key.NewBinding(key.WithKeys("ctrl+y"), key.WithHelp("ctrl+y", "copy")),
		Scroll:     key.NewBinding(key.WithKeys("pgup", "pgdown", "home", "end"), key.WithHelp("pgup/pgdn", "scroll")),
	}
}

// browseHelp lists the bindings shown while the card list is active.
func (k keyMap) browseHelp() []key.Binding {
	quit := k.Dismiss
	quit.SetHelp("esc", "quit")
	return []key.Binding{k.NextFilter, k.Up, k.Down, k.Open, quit}
}

// overlayHelp lists the bindings for the given overlay tab.
func (k keyMap) overlayHelp(tab detail.Tab) []key.Binding {
	bindings := []key.Binding{k.Tab1, k.NextTab}
	switch tab {
	case detail.TabEndpoints:
		bindings = append(bindings, k.Up, k.Down, k.Toggle)
	case detail.TabExamples:
		bindings = append(bindings, k.Up, k.Down, k.Copy)
	default:
		bindings = append(bindings, k.Scroll)
	}
	return append(bindings, k.Dismiss)
}

// handleKeyMsg processes keyboard input. The bool result reports whether
// the key was consumed; unconsumed keys go to the search field.
func (m Model) handleKeyMsg(msg tea.KeyMsg) (Model, tea.Cmd, bool) {
	if key.Matches(msg, m.keys.Quit) {
		return m, tea.Quit, true
	}
	if m.ctrl.Overlay().IsOpen() {
		updated, cmd := m.handleOverlayKey(msg)
		return updated, cmd, true
	}
	return m.handleBrowseKey(msg)
}

func (m Model) handleBrowseKey(msg tea.KeyMsg) (Model, tea.Cmd, bool) {
	switch {
	case key.Matches(msg, m.keys.Dismiss):
		return m, tea.Quit, true

	case key.Matches(msg, m.keys.NextFilter):
		return m.handleCycleFilter(1)

	case key.Matches(msg, m.keys.PrevFilter):
		return m.handleCycleFilter(-1)

	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
		m.refreshList()
		return m, nil, true

	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.displayCards())-1 {
			m.cursor++
		}
		m.refreshList()
		return m, nil, true

	case key.Matches(msg, m.keys.Open):
		return m.handleEnter()

	case key.Matches(msg, m.keys.Scroll):
		var cmd tea.Cmd
		m.list, cmd = m.list.Update(msg)
		return m, cmd, true
	}
	return m, nil, false
}

// handleCycleFilter moves the active filter along the declared tags.
func (m Model) handleCycleFilter(step int) (Model, tea.Cmd, bool) {
	filters := m.ctrl.Filters()
	current := 0
	for i, f := range filters {
		if f == m.ctrl.State().Filter {
			current = i
			break
		}
	}
	next := (current + step + len(filters)) % len(filters)
	cmd := m.dispatch(core.Event{Name: core.EventFilterSelect, Value: filters[next]})
	return m, cmd, true
}

// handleEnter submits the search and opens the card under the cursor.
func (m Model) handleEnter() (Model, tea.Cmd, bool) {
	cmd := m.dispatch(core.Event{Name: core.EventSearchSubmit, Value: m.search.Value()})
	if card, ok := m.selected(); ok {
		open := m.dispatch(core.Event{Name: core.EventCardActivate, Value: card.ID})
		return m, tea.Batch(cmd, open), true
	}
	return m, cmd, true
}

func (m Model) handleOverlayKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	tab := m.ctrl.Overlay().Tab()
	switch {
	case key.Matches(msg, m.keys.Dismiss):
		cmd := m.dispatch(core.Event{Name: core.EventCancelKey})
		return m, cmd

	case key.Matches(msg, m.keys.Close):
		cmd := m.dispatch(core.Event{Name: core.EventOverlayClose})
		return m, cmd

	case key.Matches(msg, m.keys.Tab1, m.keys.Tab2, m.keys.Tab3, m.keys.Tab4):
		if len(msg.Runes) != 1 {
			return m, nil
		}
		cmd := m.selectTab(detail.Tab(msg.Runes[0] - '1'))
		return m, cmd

	case key.Matches(msg, m.keys.NextTab):
		cmd := m.selectTab(detail.Tab((int(tab) + 1) % len(detail.Tabs())))
		return m, cmd

	case key.Matches(msg, m.keys.PrevTab):
		cmd := m.selectTab(detail.Tab((int(tab) + len(detail.Tabs()) - 1) % len(detail.Tabs())))
		return m, cmd

	case key.Matches(msg, m.keys.Up):
		return m.handleOverlayMove(-1)

	case key.Matches(msg, m.keys.Down):
		return m.handleOverlayMove(1)

	case key.Matches(msg, m.keys.Toggle) && tab == detail.TabEndpoints:
		cmd := m.dispatch(core.Event{Name: core.EventEndpointToggle, Index: m.epCursor})
		return m, cmd

	case key.Matches(msg, m.keys.Copy) && tab == detail.TabExamples:
		return m.handleCopyExample()
	}

	var cmd tea.Cmd
	m.body, cmd = m.body.Update(msg)
	return m, cmd
}

func (m *Model) selectTab(t detail.Tab) tea.Cmd {
	return m.dispatch(core.Event{Name: core.EventTabSelect, Value: t.String()})
}

// handleOverlayMove moves the endpoint or example cursor, or scrolls the
// body on the other tabs.
func (m Model) handleOverlayMove(step int) (Model, tea.Cmd) {
	v, _ := m.ctrl.Overlay().View()
	switch m.ctrl.Overlay().Tab() {
	case detail.TabEndpoints:
		m.epCursor = clamp(m.epCursor+step, len(v.Endpoints))
	case detail.TabExamples:
		m.exCursor = clamp(m.exCursor+step, len(v.Examples))
	default:
		if step < 0 {
			m.body.LineUp(1)
		} else {
			m.body.LineDown(1)
		}
		return m, nil
	}
	m.refreshOverlay()
	return m, nil
}

// handleCopyExample copies the selected example's code to the clipboard.
func (m Model) handleCopyExample() (Model, tea.Cmd) {
	v, _ := m.ctrl.Overlay().View()
	if m.exCursor >= len(v.Examples) {
		return m, nil
	}
	ex := v.Examples[m.exCursor]
	if err := m.copyText(ex.Code); err != nil {
		m.logger.Warn("clipboard copy failed", "api", v.ID, "example", ex.Title, "error", err)
		m.setStatus("copy failed: "+err.Error(), true)
		return m, nil
	}
	m.setStatus(fmt.Sprintf("copied %q", ex.Title), false)
	return m, nil
}

func clamp(i, n int) int {
	if i >= n {
		i = n - 1
	}
	if i < 0 {
		i = 0
	}
	return i
}
