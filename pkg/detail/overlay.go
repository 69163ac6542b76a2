package detail

// Overlay is the detail overlay state machine: Closed, or Open on one tab.
// Endpoint expansion lives only as long as one open cycle.
type Overlay struct {
	presenter *Presenter
	view      View
	open      bool
	tab       Tab
	expanded  map[int]bool
}

// NewOverlay returns a closed overlay.
func NewOverlay(p *Presenter) *Overlay {
	return &Overlay{presenter: p}
}

// Open presents id on the overview tab with every endpoint collapsed.
// An unknown id leaves the overlay exactly as it was.
func (o *Overlay) Open(id string) bool {
	view, ok := o.presenter.Present(id)
	if !ok {
		return false
	}
	o.view = view
	o.open = true
	o.tab = TabOverview
	o.expanded = make(map[int]bool)
	return true
}

// Close dismisses the overlay and drops all of its state.
func (o *Overlay) Close() bool {
	if !o.open {
		return false
	}
	o.view = View{}
	o.open = false
	o.tab = TabOverview
	o.expanded = nil
	return true
}

// IsOpen reports whether a record is displayed.
func (o *Overlay) IsOpen() bool {
	return o.open
}

// View returns the displayed record's view.
func (o *Overlay) View() (View, bool) {
	return o.view, o.open
}

// Tab returns the active tab. It is TabOverview while closed.
func (o *Overlay) Tab() Tab {
	return o.tab
}

// SelectTab switches tabs while open.
func (o *Overlay) SelectTab(t Tab) bool {
	if !o.open || !t.Valid() {
		return false
	}
	o.tab = t
	return true
}

// NextTab moves one tab to the right, wrapping around.
func (o *Overlay) NextTab() bool {
	return o.SelectTab((o.tab + 1) % Tab(len(tabNames)))
}

// PrevTab moves one tab to the left, wrapping around.
func (o *Overlay) PrevTab() bool {
	return o.SelectTab((o.tab + Tab(len(tabNames)) - 1) % Tab(len(tabNames)))
}

// ToggleEndpoint expands or collapses endpoint i of the open record.
func (o *Overlay) ToggleEndpoint(i int) bool {
	if !o.open || i < 0 || i >= len(o.view.Endpoints) {
		return false
	}
	o.expanded[i] = !o.expanded[i]
	return true
}

// Expanded reports whether endpoint i is expanded.
func (o *Overlay) Expanded(i int) bool {
	return o.open && o.expanded[i]
}
