package search

import (
	"github.com/stalwar-deckers/catalog/pkg/catalog"
)

// Transition describes what Apply did to the placeholder.
type Transition int

const (
	PlaceholderUnchanged Transition = iota
	PlaceholderAdded
	PlaceholderRemoved
)

func (t Transition) String() string {
	switch t {
	case PlaceholderAdded:
		return "added"
	case PlaceholderRemoved:
		return "removed"
	default:
		return "unchanged"
	}
}

// Placeholder is the empty-state node shown when nothing matches.
type Placeholder struct {
	Title string
	Hint  string
}

// DefaultPlaceholder is the empty-state copy.
var DefaultPlaceholder = Placeholder{
	Title: "No APIs Found",
	Hint:  "Try adjusting your search or filter criteria",
}

// Card is the grid's view of one record.
type Card struct {
	ID          string
	Name        string
	Description string
	Category    string
	Owner       string
	Version     string
	Environment string
	Status      string
	Hidden      bool
}

// Section is one category heading and its cards.
type Section struct {
	Category string
	Hidden   bool
	Cards    []Card
}

// Grid holds the rendered state of the card grid: per-card visibility, the
// visible counter, the placeholder node and group visibility.
// Apply is the only mutator, so repeated resyncs cannot drift.
type Grid struct {
	cards        []Card
	index        map[string]int
	groupHidden  map[string]bool
	groupOrder   []string
	count        int
	placeholders []Placeholder
}

// NewGrid lays out one card per record, all visible, with no placeholder.
func NewGrid(records []catalog.Record) *Grid {
	g := &Grid{
		cards:       make([]Card, 0, len(records)),
		index:       make(map[string]int, len(records)),
		groupHidden: make(map[string]bool),
	}
	for _, r := range records {
		category := catalog.CategoryKey(r.Category)
		if _, ok := g.groupHidden[category]; !ok {
			g.groupHidden[category] = false
			g.groupOrder = append(g.groupOrder, category)
		}
		g.index[r.ID] = len(g.cards)
		g.cards = append(g.cards, Card{
			ID:          r.ID,
			Name:        r.Name,
			Description: r.Description,
			Category:    category,
			Owner:       r.Owner,
			Version:     r.Version,
			Environment: r.Environment,
			Status:      r.Status,
		})
	}
	g.count = len(g.cards)
	return g
}

// Apply brings the grid in line with plan. The placeholder toggle is keyed on
// the plan's count, so applying the same plan twice is a no-op.
func (g *Grid) Apply(plan RenderPlan) Transition {
	for i := range g.cards {
		g.cards[i].Hidden = true
	}
	for _, id := range plan.Visible {
		if i, ok := g.index[id]; ok {
			g.cards[i].Hidden = false
		}
	}
	for _, grp := range plan.Groups {
		if _, ok := g.groupHidden[grp.Category]; ok {
			g.groupHidden[grp.Category] = !grp.Visible()
		}
	}
	g.count = plan.Count

	switch {
	case plan.Count == 0 && len(g.placeholders) == 0:
		g.placeholders = append(g.placeholders, DefaultPlaceholder)
		return PlaceholderAdded
	case plan.Count > 0 && len(g.placeholders) > 0:
		g.placeholders = g.placeholders[:0]
		return PlaceholderRemoved
	default:
		return PlaceholderUnchanged
	}
}

// Count returns the visible counter value.
func (g *Grid) Count() int {
	return g.count
}

// Total returns the number of cards, visible or not.
func (g *Grid) Total() int {
	return len(g.cards)
}

// Placeholder returns the empty-state node if one is present.
func (g *Grid) Placeholder() (Placeholder, bool) {
	if len(g.placeholders) == 0 {
		return Placeholder{}, false
	}
	return g.placeholders[0], true
}

// PlaceholderNodes returns how many placeholder nodes the grid holds.
// It is always zero or one.
func (g *Grid) PlaceholderNodes() int {
	return len(g.placeholders)
}

// Cards returns every card in catalog order.
func (g *Grid) Cards() []Card {
	return append([]Card(nil), g.cards...)
}

// VisibleCards returns the shown cards in catalog order.
func (g *Grid) VisibleCards() []Card {
	out := make([]Card, 0, g.count)
	for _, c := range g.cards {
		if !c.Hidden {
			out = append(out, c)
		}
	}
	return out
}

// GroupVisible reports whether the category section is shown.
func (g *Grid) GroupVisible(category string) bool {
	hidden, ok := g.groupHidden[catalog.CategoryKey(category)]
	return ok && !hidden
}

// Sections returns the category sections in order of first appearance,
// each with all of its cards. Hidden sections are included and flagged.
func (g *Grid) Sections() []Section {
	out := make([]Section, 0, len(g.groupOrder))
	pos := make(map[string]int, len(g.groupOrder))
	for _, category := range g.groupOrder {
		pos[category] = len(out)
		out = append(out, Section{Category: category, Hidden: g.groupHidden[category]})
	}
	for _, c := range g.cards {
		i := pos[c.Category]
		out[i].Cards = append(out[i].Cards, c)
	}
	return out
}
