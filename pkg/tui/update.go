package tui

import (
	"math"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stalwar-deckers/catalog/pkg/core"
)

// Update handles all messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		m.setStatus("", false)
		updated, cmd, handled := m.handleKeyMsg(msg)
		m = updated
		if handled {
			return m, cmd
		}

		// Everything else is typing in the search field; every change
		// resyncs the grid.
		prev := m.search.Value()
		m.search, cmd = m.search.Update(msg)
		cmds = append(cmds, cmd)
		if m.search.Value() != prev {
			cmds = append(cmds, m.dispatch(core.Event{Name: core.EventSearchInput, Value: m.search.Value()}))
		}

	case tea.WindowSizeMsg:
		m = m.handleWindowResize(msg)

	case tea.MouseMsg:
		cmds = append(cmds, m.handleMouse(msg))

	case bumpTickMsg:
		cmds = append(cmds, m.handleBumpTick())

	default:
		var cmd tea.Cmd
		m.search, cmd = m.search.Update(msg)
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

// dispatch sends ev to the controller and refreshes whatever it changed.
// Rejected events surface on the status line.
func (m *Model) dispatch(ev core.Event) tea.Cmd {
	wasOpen := m.ctrl.Overlay().IsOpen()
	prevTab := m.ctrl.Overlay().Tab()

	out, err := m.ctrl.Dispatch(ev)
	if err != nil {
		m.setStatus(err.Error(), true)
		return nil
	}

	if out.Resynced {
		if ev.Name == core.EventSearchInput || ev.Name == core.EventFilterSelect {
			m.cursor = 0
		}
		m.cursor = clamp(m.cursor, len(m.displayCards()))
		m.refreshList()
	}

	if out.OverlayChanged {
		open := m.ctrl.Overlay().IsOpen()
		if open && (!wasOpen || m.ctrl.Overlay().Tab() != prevTab) {
			if !wasOpen {
				m.epCursor, m.exCursor = 0, 0
			}
			m.body.GotoTop()
		}
		m.refreshOverlay()
	}

	if out.Resynced {
		return m.startBump()
	}
	return nil
}

// handleWindowResize adjusts the layout when the terminal is resized.
func (m Model) handleWindowResize(msg tea.WindowSizeMsg) Model {
	m.width = msg.Width
	m.height = msg.Height

	// title, search box (3 rows), filters, status and help
	chrome := 7
	listHeight := m.height - chrome
	if listHeight < 3 {
		listHeight = 3
	}
	m.list.Width = m.width
	m.list.Height = listHeight
	m.search.Width = m.width - 8
	m.help.Width = m.width

	_, _, innerW, bodyH := m.overlayLayout()
	m.body.Width = innerW
	m.body.Height = bodyH
	m.renderer = newRenderer(m.theme, innerW-2)

	m.ready = true
	m.refreshList()
	if m.ctrl.Overlay().IsOpen() {
		m.refreshOverlay()
	}
	return m
}

// handleMouse treats a click outside the overlay box as a backdrop click.
func (m *Model) handleMouse(msg tea.MouseMsg) tea.Cmd {
	if !m.ctrl.Overlay().IsOpen() {
		return nil
	}
	if msg.Action != tea.MouseActionPress {
		return nil
	}
	switch msg.Button {
	case tea.MouseButtonWheelUp:
		m.body.LineUp(3)
		return nil
	case tea.MouseButtonWheelDown:
		m.body.LineDown(3)
		return nil
	case tea.MouseButtonLeft:
		if !m.insideOverlay(msg.X, msg.Y) {
			return m.dispatch(core.Event{Name: core.EventBackdropClick})
		}
	}
	return nil
}

// startBump kicks the counter spring on every resync, even when the count
// is unchanged. The counter value itself is already current; the animation
// only changes its style.
func (m *Model) startBump() tea.Cmd {
	m.bumpPos = 1
	m.bumpVel = 0
	if m.animating {
		return nil
	}
	m.animating = true
	return bumpTick()
}

func (m *Model) handleBumpTick() tea.Cmd {
	m.bumpPos, m.bumpVel = m.bumpSpring.Update(m.bumpPos, m.bumpVel, 0)
	if math.Abs(m.bumpPos) < 0.01 && math.Abs(m.bumpVel) < 0.01 {
		m.bumpPos, m.bumpVel = 0, 0
		m.animating = false
		return nil
	}
	return bumpTick()
}

func bumpTick() tea.Cmd {
	return tea.Tick(time.Second/60, func(t time.Time) tea.Msg {
		return bumpTickMsg(t)
	})
}

func (m *Model) setStatus(s string, isErr bool) {
	m.status = s
	m.statusErr = isErr
}
