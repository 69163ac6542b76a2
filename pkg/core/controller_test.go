package core

import (
	"errors"
	"testing"

	"github.com/stalwar-deckers/catalog/pkg/catalog"
	"github.com/stalwar-deckers/catalog/pkg/detail"
	"github.com/stalwar-deckers/catalog/pkg/search"
)

// newTestController creates a controller over the embedded sample catalog
func newTestController(t *testing.T, opts ...Option) *Controller {
	t.Helper()
	store, err := catalog.LoadSample()
	if err != nil {
		t.Fatalf("failed to load sample: %v", err)
	}
	c, err := NewController(store, opts...)
	if err != nil {
		t.Fatalf("failed to create controller: %v", err)
	}
	return c
}

func mustDispatch(t *testing.T, c *Controller, ev Event) Outcome {
	t.Helper()
	out, err := c.Dispatch(ev)
	if err != nil {
		t.Fatalf("dispatch %s(%q): %v", ev.Name, ev.Value, err)
	}
	return out
}

func TestNewController_InitialState(t *testing.T) {
	c := newTestController(t)

	if got := c.State().Filter; got != search.FilterAll {
		t.Errorf("filter = %q, want all", got)
	}
	if got := c.State().Term; got != "" {
		t.Errorf("term = %q, want empty", got)
	}
	if got := c.Grid().Count(); got != 6 {
		t.Errorf("count = %d, want 6", got)
	}
	if c.Grid().PlaceholderNodes() != 0 {
		t.Errorf("placeholder present at startup")
	}
	if c.Overlay().IsOpen() {
		t.Errorf("overlay open at startup")
	}

	filters := c.Filters()
	if filters[0] != search.FilterAll {
		t.Errorf("first filter = %q, want all", filters[0])
	}
	for _, want := range []string{"product", "shipping", "production", "graphql"} {
		if !c.IsDeclared(want) {
			t.Errorf("filter %q not declared", want)
		}
	}
}

func TestNewController_InitialFilter(t *testing.T) {
	c := newTestController(t, WithInitialFilter("Shipping"))
	if got := c.State().Filter; got != "shipping" {
		t.Errorf("filter = %q, want shipping", got)
	}
	if got := c.Grid().Count(); got != 1 {
		t.Errorf("count = %d, want 1", got)
	}

	store, _ := catalog.LoadSample()
	_, err := NewController(store, WithFilters([]string{"product"}), WithInitialFilter("order"))
	if !errors.Is(err, ErrUnknownFilter) {
		t.Errorf("err = %v, want ErrUnknownFilter", err)
	}
}

func TestDispatch_SearchAndFilter(t *testing.T) {
	tests := []struct {
		name      string
		term      string
		filter    string
		wantCount int
		wantEmpty bool
	}{
		{name: "everything", term: "", filter: "all", wantCount: 6},
		{name: "term only", term: "Order", filter: "all", wantCount: 1},
		{name: "owner match", term: "commerce", filter: "all", wantCount: 2},
		{name: "category filter", term: "", filter: "product", wantCount: 2},
		{name: "term and filter", term: "inventory", filter: "product", wantCount: 1},
		{name: "deprecated badge", term: "", filter: "deprecated", wantCount: 1},
		{name: "production has no records", term: "", filter: "production", wantCount: 0, wantEmpty: true},
		{name: "ugg is only in examples", term: "ugg", filter: "all", wantCount: 0, wantEmpty: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestController(t)
			mustDispatch(t, c, Event{Name: EventFilterSelect, Value: tt.filter})
			mustDispatch(t, c, Event{Name: EventSearchInput, Value: tt.term})

			if got := c.Grid().Count(); got != tt.wantCount {
				t.Errorf("count = %d, want %d", got, tt.wantCount)
			}
			_, hasPlaceholder := c.Grid().Placeholder()
			if hasPlaceholder != tt.wantEmpty {
				t.Errorf("placeholder = %v, want %v", hasPlaceholder, tt.wantEmpty)
			}
		})
	}
}

func TestDispatch_RepeatedKeystrokesDoNotLeak(t *testing.T) {
	c := newTestController(t)

	var added, removed int
	for _, v := range []string{"#", "##", "###", "##", "#", "", "", "#q"} {
		out := mustDispatch(t, c, Event{Name: EventSearchInput, Value: v})
		switch out.Placeholder {
		case search.PlaceholderAdded:
			added++
		case search.PlaceholderRemoved:
			removed++
		}
		if n := c.Grid().PlaceholderNodes(); n > 1 {
			t.Fatalf("placeholder nodes = %d after %q", n, v)
		}
	}
	if added != 2 || removed != 1 {
		t.Errorf("added = %d removed = %d, want 2 and 1", added, removed)
	}

	out := mustDispatch(t, c, Event{Name: EventSearchSubmit})
	if out.Placeholder != search.PlaceholderUnchanged || out.CountChanged {
		t.Errorf("submit with unchanged state changed the grid: %+v", out)
	}
}

func TestDispatch_UnknownFilterLeavesState(t *testing.T) {
	c := newTestController(t)
	mustDispatch(t, c, Event{Name: EventFilterSelect, Value: "order"})

	_, err := c.Dispatch(Event{Name: EventFilterSelect, Value: "soap"})
	if !errors.Is(err, ErrUnknownFilter) {
		t.Fatalf("err = %v, want ErrUnknownFilter", err)
	}
	if got := c.State().Filter; got != "order" {
		t.Errorf("filter = %q, want order", got)
	}
}

func TestDispatch_BadgeAlias(t *testing.T) {
	c := newTestController(t)
	if !c.IsDeclared("Prod") {
		t.Fatal("prod should be selectable")
	}

	out := mustDispatch(t, c, Event{Name: EventFilterSelect, Value: "prod"})
	if got := c.State().Filter; got != "prod" {
		t.Errorf("filter = %q, want prod", got)
	}
	if got := c.Grid().Count(); got != 0 {
		t.Errorf("count = %d, want 0", got)
	}
	if out.Placeholder != search.PlaceholderAdded {
		t.Errorf("placeholder = %v, want added", out.Placeholder)
	}
	if _, ok := c.Grid().Placeholder(); !ok {
		t.Error("placeholder not shown")
	}
}

func TestDispatch_UnknownEvent(t *testing.T) {
	c := newTestController(t)
	if _, err := c.Dispatch(Event{Name: "card.hover"}); !errors.Is(err, ErrUnknownEvent) {
		t.Errorf("err = %v, want ErrUnknownEvent", err)
	}
}

func TestDispatch_OverlayLifecycle(t *testing.T) {
	c := newTestController(t)

	out := mustDispatch(t, c, Event{Name: EventCardActivate, Value: "does-not-exist"})
	if out.OverlayChanged || c.Overlay().IsOpen() {
		t.Fatalf("unknown id opened the overlay")
	}

	mustDispatch(t, c, Event{Name: EventCardActivate, Value: "sales-order-api"})
	mustDispatch(t, c, Event{Name: EventTabSelect, Value: "endpoints"})
	mustDispatch(t, c, Event{Name: EventEndpointToggle, Index: 0})
	if !c.Overlay().Expanded(0) {
		t.Fatalf("endpoint 0 not expanded")
	}

	for _, closer := range []string{EventOverlayClose, EventBackdropClick, EventCancelKey} {
		t.Run(closer, func(t *testing.T) {
			mustDispatch(t, c, Event{Name: EventCardActivate, Value: "sales-order-api"})
			mustDispatch(t, c, Event{Name: EventTabSelect, Value: "examples"})

			out := mustDispatch(t, c, Event{Name: closer})
			if !out.OverlayChanged || c.Overlay().IsOpen() {
				t.Fatalf("%s did not close the overlay", closer)
			}

			mustDispatch(t, c, Event{Name: EventCardActivate, Value: "sales-order-api"})
			if c.Overlay().Tab() != detail.TabOverview {
				t.Errorf("tab = %s after reopen, want overview", c.Overlay().Tab())
			}
			if c.Overlay().Expanded(0) {
				t.Errorf("endpoint expansion survived close")
			}
			mustDispatch(t, c, Event{Name: EventOverlayClose})
		})
	}
}

func TestDispatch_BadTab(t *testing.T) {
	c := newTestController(t)
	mustDispatch(t, c, Event{Name: EventCardActivate, Value: "product-api"})
	if _, err := c.Dispatch(Event{Name: EventTabSelect, Value: "history"}); err == nil {
		t.Errorf("expected error for unknown tab")
	}
	if c.Overlay().Tab() != detail.TabOverview {
		t.Errorf("tab changed on bad input")
	}
}

func TestRegisterHandler_Override(t *testing.T) {
	var seen []string
	c := newTestController(t, WithEventCallback(func(ev Event, _ Outcome) {
		seen = append(seen, ev.Name)
	}))
	c.RegisterHandler("search.clear", func(c *Controller, ev Event) (Outcome, error) {
		return c.Dispatch(Event{Name: EventSearchInput, Value: ""})
	})

	mustDispatch(t, c, Event{Name: EventSearchInput, Value: "shipping"})
	mustDispatch(t, c, Event{Name: "search.clear"})

	if got := c.Grid().Count(); got != 6 {
		t.Errorf("count = %d after clear, want 6", got)
	}
	want := []string{EventSearchInput, EventSearchInput, "search.clear"}
	if len(seen) != len(want) {
		t.Fatalf("callbacks = %v, want %v", seen, want)
	}
	for i := range want {
		if seen[i] != want[i] {
			t.Errorf("callback %d = %q, want %q", i, seen[i], want[i])
		}
	}
}
