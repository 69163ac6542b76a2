package search

import (
	"strings"

	"github.com/stalwar-deckers/catalog/pkg/catalog"
)

// badgeRules are the fixed filters over the environment/status badges.
// Tags without a rule compare against the record category.
var badgeRules = map[string]func(catalog.Record) bool{
	"active":     func(r catalog.Record) bool { return strings.EqualFold(r.Status, "active") },
	"deprecated": func(r catalog.Record) bool { return strings.EqualFold(r.Status, "deprecated") },
	"production": func(r catalog.Record) bool { return strings.EqualFold(r.Environment, "prod") },
	"prod":       func(r catalog.Record) bool { return strings.EqualFold(r.Environment, "prod") },
	"dev":        func(r catalog.Record) bool { return strings.EqualFold(r.Environment, "dev") },
	"qa":         func(r catalog.Record) bool { return strings.EqualFold(r.Environment, "qa") },
	// Every record is REST; there are no GraphQL records.
	"rest":    func(catalog.Record) bool { return true },
	"graphql": func(catalog.Record) bool { return false },
}

// BadgeFilters lists the tags handled by fixed badge rules, in display order.
func BadgeFilters() []string {
	return []string{"active", "deprecated", "production", "dev", "qa", "rest", "graphql"}
}

// IsBadgeFilter reports whether tag is handled by a fixed badge rule.
func IsBadgeFilter(tag string) bool {
	_, ok := badgeRules[NormalizeFilter(tag)]
	return ok
}

// Matches reports whether r is visible under s. It depends only on its
// arguments.
func Matches(r catalog.Record, s FilterState) bool {
	return MatchesText(r, s.Term) && MatchesFilter(r, s.Filter)
}

// MatchesText reports whether term is a case-insensitive substring of any
// searchable field. An empty term matches everything.
func MatchesText(r catalog.Record, term string) bool {
	term = NormalizeTerm(term)
	if term == "" {
		return true
	}
	for _, field := range SearchableFields(r) {
		if strings.Contains(strings.ToLower(field), term) {
			return true
		}
	}
	return false
}

// MatchesFilter applies the active filter tag to r.
func MatchesFilter(r catalog.Record, filter string) bool {
	filter = NormalizeFilter(filter)
	if filter == FilterAll {
		return true
	}
	if rule, ok := badgeRules[filter]; ok {
		return rule(r)
	}
	return strings.EqualFold(strings.TrimSpace(r.Category), filter)
}

// SearchableFields returns the record fields a search term is matched
// against. Endpoints, examples and notes are not searched.
func SearchableFields(r catalog.Record) []string {
	return []string{
		r.Name,
		r.Description,
		r.Category,
		r.Owner,
		r.Version,
		r.Environment,
		r.Status,
	}
}
