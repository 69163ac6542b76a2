package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stalwar-deckers/catalog/pkg/catalog"
)

func sampleRecords(t *testing.T) []catalog.Record {
	t.Helper()
	store, err := catalog.LoadSample()
	require.NoError(t, err)
	return store.Records()
}

func state(term, filter string) FilterState {
	s := NewFilterState()
	s.SetTerm(term)
	s.SetFilter(filter)
	return s
}

func TestFilterState(t *testing.T) {
	s := NewFilterState()
	assert.Equal(t, FilterAll, s.Filter)
	assert.Equal(t, "", s.Term)

	assert.True(t, s.SetTerm("  Order "))
	assert.Equal(t, "order", s.Term)
	assert.False(t, s.SetTerm("ORDER"))

	assert.True(t, s.SetFilter("Shipping"))
	assert.Equal(t, "shipping", s.Filter)
	assert.True(t, s.SetFilter(""))
	assert.Equal(t, FilterAll, s.Filter)
}

func TestMatchesText(t *testing.T) {
	r := catalog.Record{
		ID: "x", Name: "Sales Order API", Description: "Track orders",
		Category: "order", Owner: "Commerce Core", Version: "v3.0.1",
		Environment: "qa", Status: "active",
		Notes:    []string{"hidden note"},
		Examples: []catalog.Example{{Title: "t", Kind: catalog.KindRequest, Code: "secret payload"}},
	}

	tests := []struct {
		term string
		want bool
	}{
		{"", true},
		{"   ", true},
		{"sales", true},
		{"TRACK", true},
		{"commerce", true},
		{"v3.0", true},
		{"qa", true},
		{"active", true},
		{"order", true},
		{"hidden note", false},
		{"payload", false},
		{"graphql", false},
	}

	for _, tt := range tests {
		t.Run(tt.term, func(t *testing.T) {
			assert.Equal(t, tt.want, MatchesText(r, tt.term))
		})
	}
}

func TestMatchesFilter(t *testing.T) {
	prodActive := catalog.Record{Category: "product", Environment: "prod", Status: "active"}
	devDeprecated := catalog.Record{Category: "Shipping", Environment: "dev", Status: "deprecated"}
	qaBare := catalog.Record{Category: "order", Environment: "qa"}

	tests := []struct {
		filter string
		record catalog.Record
		want   bool
	}{
		{"all", devDeprecated, true},
		{"", devDeprecated, true},
		{"active", prodActive, true},
		{"active", devDeprecated, false},
		{"deprecated", devDeprecated, true},
		{"production", prodActive, true},
		{"prod", prodActive, true},
		{"production", qaBare, false},
		{"dev", devDeprecated, true},
		{"qa", qaBare, true},
		{"qa", prodActive, false},
		{"rest", qaBare, true},
		{"graphql", prodActive, false},
		{"shipping", devDeprecated, true},
		{"SHIPPING", devDeprecated, true},
		{"product", devDeprecated, false},
	}

	for _, tt := range tests {
		t.Run(tt.filter, func(t *testing.T) {
			assert.Equal(t, tt.want, MatchesFilter(tt.record, tt.filter))
		})
	}
}

func TestMatchesIsPure(t *testing.T) {
	records := sampleRecords(t)
	states := []FilterState{
		state("", "all"), state("api", "product"), state("qa", "active"), state("zzz", "all"),
	}
	for _, r := range records {
		for _, s := range states {
			first := Matches(r, s)
			for i := 0; i < 3; i++ {
				assert.Equal(t, first, Matches(r, s))
			}
		}
	}
}

func TestResync_CountInvariant(t *testing.T) {
	records := sampleRecords(t)
	for _, term := range []string{"", "api", "order", "v2", "dev", "nothing-here"} {
		for _, filter := range append([]string{"all", "product", "order", "pricing"}, BadgeFilters()...) {
			s := state(term, filter)
			plan := Resync(records, s)

			want := 0
			for _, r := range records {
				if Matches(r, s) {
					want++
				}
			}
			assert.Equal(t, want, plan.Count, "term=%q filter=%q", term, filter)
			assert.Equal(t, len(records), len(plan.Visible)+len(plan.Hidden))
			assert.Equal(t, plan.Count == 0, plan.Empty())
		}
	}
}

func TestResync_PreservesCatalogOrder(t *testing.T) {
	records := sampleRecords(t)
	plan := Resync(records, state("api", "all"))

	var want []string
	for _, r := range records {
		want = append(want, r.ID)
	}
	assert.Equal(t, want, plan.Visible)
}

func TestResync_Groups(t *testing.T) {
	records := sampleRecords(t)
	plan := Resync(records, state("inventory", "all"))

	require.Len(t, plan.Groups, 5)
	assert.Equal(t, "product", plan.Groups[0].Category)
	assert.True(t, plan.Groups[0].Visible())
	assert.Equal(t, 1, plan.Groups[0].Shown)
	assert.Equal(t, []string{"product-api", "inventory-api"}, plan.Groups[0].IDs)
	for _, g := range plan.Groups[1:] {
		assert.False(t, g.Visible(), g.Category)
	}
	assert.Len(t, plan.VisibleGroups(), 1)
}

func TestResync_UggMatchesNothing(t *testing.T) {
	// "UGG" only appears in example payloads, which are not searched.
	plan := Resync(sampleRecords(t), state("ugg", "all"))
	assert.Equal(t, 0, plan.Count)
	assert.True(t, plan.Empty())
}

func TestResync_ProductionFilterIsEmpty(t *testing.T) {
	records := sampleRecords(t)
	grid := NewGrid(records)

	tr := grid.Apply(Resync(records, state("", "production")))
	assert.Equal(t, PlaceholderAdded, tr)
	assert.Equal(t, 0, grid.Count())
	_, ok := grid.Placeholder()
	assert.True(t, ok)
}

func TestGrid_ApplyIsIdempotent(t *testing.T) {
	records := sampleRecords(t)
	grid := NewGrid(records)
	plan := Resync(records, state("order", "all"))

	grid.Apply(plan)
	before := grid.Cards()
	assert.Equal(t, PlaceholderUnchanged, grid.Apply(plan))
	assert.Equal(t, before, grid.Cards())
	assert.Equal(t, plan.Count, grid.Count())
	assert.Equal(t, 0, grid.PlaceholderNodes())
}

func TestGrid_PlaceholderToggle(t *testing.T) {
	records := sampleRecords(t)
	grid := NewGrid(records)

	empty := Resync(records, state("no such api", "all"))
	full := Resync(records, state("", "all"))

	steps := []struct {
		plan  RenderPlan
		want  Transition
		nodes int
	}{
		{empty, PlaceholderAdded, 1},
		{empty, PlaceholderUnchanged, 1},
		{empty, PlaceholderUnchanged, 1},
		{full, PlaceholderRemoved, 0},
		{full, PlaceholderUnchanged, 0},
		{empty, PlaceholderAdded, 1},
	}
	for i, step := range steps {
		assert.Equal(t, step.want, grid.Apply(step.plan), "step %d", i)
		assert.Equal(t, step.nodes, grid.PlaceholderNodes(), "step %d", i)
	}
}

func TestGrid_SectionsHideEmptyGroups(t *testing.T) {
	records := sampleRecords(t)
	grid := NewGrid(records)
	grid.Apply(Resync(records, state("", "shipping")))

	assert.True(t, grid.GroupVisible("shipping"))
	assert.False(t, grid.GroupVisible("product"))
	assert.False(t, grid.GroupVisible("unknown"))

	for _, sec := range grid.Sections() {
		if sec.Category == "shipping" {
			assert.False(t, sec.Hidden)
			require.Len(t, sec.Cards, 1)
			assert.False(t, sec.Cards[0].Hidden)
			continue
		}
		assert.True(t, sec.Hidden, sec.Category)
		for _, c := range sec.Cards {
			assert.True(t, c.Hidden)
		}
	}

	visible := grid.VisibleCards()
	require.Len(t, visible, 1)
	assert.Equal(t, "shipping-api", visible[0].ID)
}
