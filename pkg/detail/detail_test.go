package detail

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stalwar-deckers/catalog/pkg/catalog"
)

func newOverlay(t *testing.T) *Overlay {
	t.Helper()
	store, err := catalog.LoadSample()
	require.NoError(t, err)
	return NewOverlay(NewPresenter(store))
}

func TestPresent(t *testing.T) {
	store, err := catalog.LoadSample()
	require.NoError(t, err)
	p := NewPresenter(store)

	view, ok := p.Present("sales-order-api")
	require.True(t, ok)
	assert.Equal(t, "Sales Order API", view.Name)
	assert.Equal(t, "https://orders.example.com/api/v3", view.Overview.BaseURL)
	assert.Equal(t, "OAuth 2.0 bearer token", view.Overview.AuthScheme)
	assert.Len(t, view.Overview.Methods, 3)
	assert.Len(t, view.Overview.Notes, 2)
	assert.Len(t, view.Endpoints, 3)
	assert.Len(t, view.Examples, 2)
	assert.Equal(t, catalog.ErrorCodes(), view.Errors)

	_, ok = p.Present("nope")
	assert.False(t, ok)
}

func TestErrorsTabIdenticalAcrossRecords(t *testing.T) {
	store, err := catalog.LoadSample()
	require.NoError(t, err)
	p := NewPresenter(store)

	var first []catalog.ErrorCode
	for _, r := range store.Records() {
		view, ok := p.Present(r.ID)
		require.True(t, ok)
		if first == nil {
			first = view.Errors
			continue
		}
		assert.Equal(t, first, view.Errors, r.ID)
	}
}

func TestParseTab(t *testing.T) {
	for _, tab := range Tabs() {
		got, err := ParseTab(tab.String())
		require.NoError(t, err)
		assert.Equal(t, tab, got)
	}
	got, err := ParseTab(" Examples ")
	require.NoError(t, err)
	assert.Equal(t, TabExamples, got)

	_, err = ParseTab("history")
	assert.Error(t, err)
	assert.Equal(t, "Endpoints", TabEndpoints.Title())
}

func TestOverlay_UnknownIDIsNoop(t *testing.T) {
	o := newOverlay(t)

	assert.False(t, o.Open("missing"))
	assert.False(t, o.IsOpen())

	require.True(t, o.Open("customer-api"))
	o.SelectTab(TabErrors)
	assert.False(t, o.Open("missing"))
	view, ok := o.View()
	require.True(t, ok)
	assert.Equal(t, "customer-api", view.ID)
	assert.Equal(t, TabErrors, o.Tab())
}

func TestOverlay_ClosedRejectsTransitions(t *testing.T) {
	o := newOverlay(t)

	assert.False(t, o.SelectTab(TabExamples))
	assert.False(t, o.ToggleEndpoint(0))
	assert.False(t, o.Close())
	assert.Equal(t, TabOverview, o.Tab())
}

func TestOverlay_OpeningAnotherRecordResetsTab(t *testing.T) {
	o := newOverlay(t)

	require.True(t, o.Open("product-api"))
	require.True(t, o.SelectTab(TabExamples))
	require.True(t, o.Open("shipping-api"))

	assert.Equal(t, TabOverview, o.Tab())
	view, _ := o.View()
	assert.Equal(t, "shipping-api", view.ID)
}

func TestOverlay_CloseReopenScenario(t *testing.T) {
	o := newOverlay(t)

	require.True(t, o.Open("sales-order-api"))
	require.True(t, o.SelectTab(TabEndpoints))
	require.True(t, o.ToggleEndpoint(0))
	assert.True(t, o.Expanded(0))

	require.True(t, o.Close())
	assert.False(t, o.IsOpen())
	assert.False(t, o.Expanded(0))
	_, ok := o.View()
	assert.False(t, ok)

	require.True(t, o.Open("sales-order-api"))
	assert.Equal(t, TabOverview, o.Tab())
	assert.False(t, o.Expanded(0))
}

func TestOverlay_TabCycling(t *testing.T) {
	o := newOverlay(t)
	require.True(t, o.Open("product-api"))

	var seen []Tab
	for i := 0; i < 5; i++ {
		seen = append(seen, o.Tab())
		o.NextTab()
	}
	assert.Equal(t, []Tab{TabOverview, TabEndpoints, TabExamples, TabErrors, TabOverview}, seen)

	// the loop leaves the overlay on endpoints
	o.PrevTab()
	assert.Equal(t, TabOverview, o.Tab())
	o.PrevTab()
	assert.Equal(t, TabErrors, o.Tab())
}

func TestOverlay_ToggleEndpointBounds(t *testing.T) {
	o := newOverlay(t)
	require.True(t, o.Open("customer-api"))

	assert.False(t, o.ToggleEndpoint(-1))
	assert.False(t, o.ToggleEndpoint(1))
	assert.True(t, o.ToggleEndpoint(0))
	assert.True(t, o.Expanded(0))
	assert.True(t, o.ToggleEndpoint(0))
	assert.False(t, o.Expanded(0))
}
