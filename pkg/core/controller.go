package core

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/stalwar-deckers/catalog/pkg/catalog"
	"github.com/stalwar-deckers/catalog/pkg/detail"
	"github.com/stalwar-deckers/catalog/pkg/search"
)

// Controller owns the filter state, the card grid and the overlay for one
// session. It is not safe for concurrent use; events are handled one at a
// time, each to completion.
type Controller struct {
	store    *catalog.Store
	records  []catalog.Record
	state    search.FilterState
	plan     search.RenderPlan
	grid     *search.Grid
	overlay  *detail.Overlay
	filters  []string
	declared map[string]bool
	handlers map[string]HandlerFunc
	callback EventCallback
	logger   *slog.Logger
}

// Option configures a Controller.
type Option func(*controllerOptions)

type controllerOptions struct {
	filters       []string
	initialFilter string
	logger        *slog.Logger
	callback      EventCallback
}

// WithFilters declares the filter tags offered to the user. "all" is always
// declared and always first.
func WithFilters(tags []string) Option {
	return func(o *controllerOptions) { o.filters = tags }
}

// WithInitialFilter activates tag at startup instead of "all".
func WithInitialFilter(tag string) Option {
	return func(o *controllerOptions) { o.initialFilter = tag }
}

// WithLogger sets the logger used for dispatch tracing.
func WithLogger(l *slog.Logger) Option {
	return func(o *controllerOptions) { o.logger = l }
}

// WithEventCallback observes every dispatched event.
func WithEventCallback(cb EventCallback) Option {
	return func(o *controllerOptions) { o.callback = cb }
}

// DefaultFilters returns "all", then the store's categories, then the badge
// filters.
func DefaultFilters(store *catalog.Store) []string {
	tags := []string{search.FilterAll}
	tags = append(tags, store.Categories()...)
	tags = append(tags, search.BadgeFilters()...)
	return dedupeFilters(tags)
}

// NewController builds a controller over store and runs the initial resync.
func NewController(store *catalog.Store, opts ...Option) (*Controller, error) {
	o := controllerOptions{}
	for _, opt := range opts {
		opt(&o)
	}
	if len(o.filters) == 0 {
		o.filters = DefaultFilters(store)
	}
	if o.logger == nil {
		o.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	records := store.Records()
	c := &Controller{
		store:    store,
		records:  records,
		state:    search.NewFilterState(),
		grid:     search.NewGrid(records),
		overlay:  detail.NewOverlay(detail.NewPresenter(store)),
		filters:  dedupeFilters(append([]string{search.FilterAll}, o.filters...)),
		handlers: make(map[string]HandlerFunc),
		callback: o.callback,
		logger:   o.logger,
	}
	c.declared = make(map[string]bool, len(c.filters))
	for _, tag := range c.filters {
		c.declared[tag] = true
	}

	if o.initialFilter != "" {
		tag := search.NormalizeFilter(o.initialFilter)
		if !c.accepts(tag) {
			return nil, fmt.Errorf("%w: %q", ErrUnknownFilter, o.initialFilter)
		}
		c.state.SetFilter(tag)
	}

	registerDefaultHandlers(c)
	c.resync()
	return c, nil
}

// RegisterHandler binds fn to an event name, replacing any existing handler.
func (c *Controller) RegisterHandler(name string, fn HandlerFunc) {
	c.handlers[name] = fn
}

// Dispatch routes ev to its handler.
func (c *Controller) Dispatch(ev Event) (Outcome, error) {
	fn, ok := c.handlers[ev.Name]
	if !ok {
		return Outcome{}, fmt.Errorf("%w: %q", ErrUnknownEvent, ev.Name)
	}
	out, err := fn(c, ev)
	if err != nil {
		c.logger.Debug("event rejected", "event", ev.Name, "value", ev.Value, "error", err)
		return out, err
	}
	c.logger.Debug("event handled",
		"event", ev.Name,
		"value", ev.Value,
		"visible", c.grid.Count(),
		"placeholder", out.Placeholder.String(),
		"overlay_open", c.overlay.IsOpen(),
	)
	if c.callback != nil {
		c.callback(ev, out)
	}
	return out, nil
}

// State returns the current filter state.
func (c *Controller) State() search.FilterState {
	return c.state
}

// Plan returns the most recent render plan.
func (c *Controller) Plan() search.RenderPlan {
	return c.plan
}

// Grid returns the card grid.
func (c *Controller) Grid() *search.Grid {
	return c.grid
}

// Overlay returns the detail overlay.
func (c *Controller) Overlay() *detail.Overlay {
	return c.overlay
}

// Filters returns the declared filter tags in display order.
func (c *Controller) Filters() []string {
	return append([]string(nil), c.filters...)
}

// Store returns the catalog the controller browses.
func (c *Controller) Store() *catalog.Store {
	return c.store
}

// IsDeclared reports whether tag can be selected: a declared filter, or
// any tag with a fixed badge rule such as "prod".
func (c *Controller) IsDeclared(tag string) bool {
	return c.accepts(search.NormalizeFilter(tag))
}

func (c *Controller) accepts(tag string) bool {
	return c.declared[tag] || search.IsBadgeFilter(tag)
}

func (c *Controller) resync() Outcome {
	before := c.grid.Count()
	c.plan = search.Resync(c.records, c.state)
	tr := c.grid.Apply(c.plan)
	return Outcome{
		Resynced:     true,
		CountChanged: before != c.grid.Count(),
		Placeholder:  tr,
	}
}

func dedupeFilters(tags []string) []string {
	seen := make(map[string]bool, len(tags))
	out := make([]string, 0, len(tags))
	for _, tag := range tags {
		tag = search.NormalizeFilter(tag)
		if seen[tag] {
			continue
		}
		seen[tag] = true
		out = append(out, tag)
	}
	return out
}
