// Package tui provides the interactive catalog browser.
// It uses Bubble Tea: a search field, filter tags and a grouped card list,
// with a tabbed detail overlay for the selected API.
//
// File organization:
// - app.go: Entry point (Run function)
// - model.go: Model struct and message types
// - init.go: Model construction
// - update.go: Event handling and controller dispatch
// - view.go: Rendering and layout
// - keys.go: Key bindings and keyboard handling
// - styles.go: Visual styling (colors, borders, etc.)
// - highlight.go: Code and markdown rendering
package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stalwar-deckers/catalog/pkg/core"
)

// Run starts the browser over ctrl and blocks until the user quits.
func Run(ctrl *core.Controller, opts Options) error {
	m := NewModel(ctrl, opts)
	prog := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err := prog.Run()
	return err
}
