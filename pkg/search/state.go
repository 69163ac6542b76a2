// Package search decides which catalog records are visible for a search term
// and filter tag, and keeps a card grid in step with that decision.
package search

import "strings"

// FilterAll disables filtering.
const FilterAll = "all"

// FilterState is the single source of truth for what the grid shows.
// The zero value is not ready for use; call NewFilterState.
type FilterState struct {
	Term   string
	Filter string
}

// NewFilterState returns the startup state: empty term, "all" filter.
func NewFilterState() FilterState {
	return FilterState{Filter: FilterAll}
}

// SetTerm stores the normalized form of raw and reports whether it changed.
func (s *FilterState) SetTerm(raw string) bool {
	term := NormalizeTerm(raw)
	if term == s.Term {
		return false
	}
	s.Term = term
	return true
}

// SetFilter activates tag and reports whether it changed.
// An empty tag selects FilterAll.
func (s *FilterState) SetFilter(tag string) bool {
	tag = NormalizeFilter(tag)
	if tag == s.Filter {
		return false
	}
	s.Filter = tag
	return true
}

// NormalizeTerm lower-cases and trims a raw query.
func NormalizeTerm(raw string) string {
	return strings.ToLower(strings.TrimSpace(raw))
}

// NormalizeFilter turns filter-tag text into a filter key.
func NormalizeFilter(tag string) string {
	tag = strings.ToLower(strings.TrimSpace(tag))
	if tag == "" {
		return FilterAll
	}
	return tag
}
