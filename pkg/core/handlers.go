package core

import (
	"fmt"

	"github.com/stalwar-deckers/catalog/pkg/detail"
	"github.com/stalwar-deckers/catalog/pkg/search"
)

// registerDefaultHandlers wires the browser's input events.
func registerDefaultHandlers(c *Controller) {
	c.RegisterHandler(EventSearchInput, handleSearchInput)
	c.RegisterHandler(EventSearchSubmit, handleSearchSubmit)
	c.RegisterHandler(EventFilterSelect, handleFilterSelect)
	c.RegisterHandler(EventCardActivate, handleCardActivate)
	c.RegisterHandler(EventTabSelect, handleTabSelect)
	c.RegisterHandler(EventEndpointToggle, handleEndpointToggle)

	// Close button, backdrop and cancel key all dismiss the overlay.
	c.RegisterHandler(EventOverlayClose, handleOverlayDismiss)
	c.RegisterHandler(EventBackdropClick, handleOverlayDismiss)
	c.RegisterHandler(EventCancelKey, handleOverlayDismiss)
}

// handleSearchInput stores the new term and resyncs. It runs on every
// keystroke.
func handleSearchInput(c *Controller, ev Event) (Outcome, error) {
	c.state.SetTerm(ev.Value)
	return c.resync(), nil
}

func handleSearchSubmit(c *Controller, ev Event) (Outcome, error) {
	return c.resync(), nil
}

// handleFilterSelect activates a declared filter tag or a badge alias.
// Tag text is lower-cased, so "Shipping" selects "shipping".
func handleFilterSelect(c *Controller, ev Event) (Outcome, error) {
	tag := search.NormalizeFilter(ev.Value)
	if !c.accepts(tag) {
		return Outcome{}, fmt.Errorf("%w: %q", ErrUnknownFilter, ev.Value)
	}
	c.state.SetFilter(tag)
	return c.resync(), nil
}

// handleCardActivate opens the overlay. Unknown ids are ignored.
func handleCardActivate(c *Controller, ev Event) (Outcome, error) {
	return Outcome{OverlayChanged: c.overlay.Open(ev.Value)}, nil
}

func handleTabSelect(c *Controller, ev Event) (Outcome, error) {
	tab, err := detail.ParseTab(ev.Value)
	if err != nil {
		return Outcome{}, err
	}
	return Outcome{OverlayChanged: c.overlay.SelectTab(tab)}, nil
}

func handleEndpointToggle(c *Controller, ev Event) (Outcome, error) {
	return Outcome{OverlayChanged: c.overlay.ToggleEndpoint(ev.Index)}, nil
}

func handleOverlayDismiss(c *Controller, ev Event) (Outcome, error) {
	return Outcome{OverlayChanged: c.overlay.Close()}, nil
}
