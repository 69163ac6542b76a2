// Package core provides the controller that owns the browser's state: the
// filter state, the card grid and the detail overlay. Input events are
// routed by name to registered handlers, which call the pure matching and
// resync functions.
package core

import (
	"errors"

	"github.com/stalwar-deckers/catalog/pkg/search"
)

// Event names understood by the default handler table.
const (
	EventSearchInput    = "search.input"
	EventSearchSubmit   = "search.submit"
	EventFilterSelect   = "filter.select"
	EventCardActivate   = "card.activate"
	EventTabSelect      = "overlay.tab"
	EventEndpointToggle = "overlay.endpoint"
	EventOverlayClose   = "overlay.close"
	EventBackdropClick  = "overlay.backdrop"
	EventCancelKey      = "overlay.cancel"
)

var (
	// ErrUnknownEvent is returned by Dispatch for an unregistered event name.
	ErrUnknownEvent = errors.New("unknown event")
	// ErrUnknownFilter is returned when a filter tag is not declared.
	ErrUnknownFilter = errors.New("unknown filter tag")
)

// Event is one discrete user input.
type Event struct {
	// Name selects the handler, e.g. "search.input".
	Name string
	// Value carries text input, a filter tag, a record id or a tab name.
	Value string
	// Index carries an endpoint position for "overlay.endpoint".
	Index int
}

// Outcome reports what an event changed, so front ends know what to redraw.
type Outcome struct {
	// Resynced is set when the grid was recomputed.
	Resynced bool
	// CountChanged is set when the visible counter moved.
	CountChanged bool
	// Placeholder is the empty-state transition performed by the resync.
	Placeholder search.Transition
	// OverlayChanged is set when the overlay opened, closed or changed tab
	// or endpoint expansion.
	OverlayChanged bool
}

// HandlerFunc reacts to one event.
type HandlerFunc func(c *Controller, ev Event) (Outcome, error)

// EventCallback observes every dispatched event and its outcome.
type EventCallback func(Event, Outcome)
