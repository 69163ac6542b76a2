package search

import (
	"github.com/stalwar-deckers/catalog/pkg/catalog"
)

// Group is one category section of the grid.
type Group struct {
	Category string
	IDs      []string
	Shown    int
}

// Visible reports whether the group has at least one visible record.
func (g Group) Visible() bool {
	return g.Shown > 0
}

// RenderPlan is the outcome of one resync: which records are shown, how many,
// and which category groups survive.
type RenderPlan struct {
	Visible []string
	Hidden  []string
	Count   int
	Groups  []Group
	State   FilterState
}

// Empty reports whether the placeholder should be shown.
func (p RenderPlan) Empty() bool {
	return p.Count == 0
}

// IsVisible reports whether id is in the visible set.
func (p RenderPlan) IsVisible(id string) bool {
	for _, v := range p.Visible {
		if v == id {
			return true
		}
	}
	return false
}

// VisibleGroups returns only the groups with visible records.
func (p RenderPlan) VisibleGroups() []Group {
	var out []Group
	for _, g := range p.Groups {
		if g.Visible() {
			out = append(out, g)
		}
	}
	return out
}

// Resync runs the matcher over records and partitions them, preserving
// catalog order. Groups appear in order of first appearance.
func Resync(records []catalog.Record, s FilterState) RenderPlan {
	plan := RenderPlan{
		Visible: make([]string, 0, len(records)),
		Hidden:  make([]string, 0),
		State:   s,
	}
	groupIndex := make(map[string]int)

	for _, r := range records {
		key := catalog.CategoryKey(r.Category)
		gi, ok := groupIndex[key]
		if !ok {
			gi = len(plan.Groups)
			groupIndex[key] = gi
			plan.Groups = append(plan.Groups, Group{Category: key})
		}
		plan.Groups[gi].IDs = append(plan.Groups[gi].IDs, r.ID)

		if Matches(r, s) {
			plan.Visible = append(plan.Visible, r.ID)
			plan.Groups[gi].Shown++
		} else {
			plan.Hidden = append(plan.Hidden, r.ID)
		}
	}
	plan.Count = len(plan.Visible)
	return plan
}
