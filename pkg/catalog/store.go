package catalog

import (
	"fmt"
	"strings"
)

// Store is the immutable, ordered set of catalog records for a session.
type Store struct {
	records []Record
	index   map[string]int
}

// NewStore builds a Store from records, preserving their order.
// It rejects duplicate identifiers and records missing required fields.
func NewStore(records []Record) (*Store, error) {
	s := &Store{
		records: make([]Record, 0, len(records)),
		index:   make(map[string]int, len(records)),
	}
	for i, r := range records {
		if err := checkRecord(r); err != nil {
			return nil, fmt.Errorf("record %d: %w", i, err)
		}
		if _, ok := s.index[r.ID]; ok {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateID, r.ID)
		}
		s.index[r.ID] = len(s.records)
		s.records = append(s.records, r.clone())
	}
	return s, nil
}

// Len returns the number of records.
func (s *Store) Len() int {
	return len(s.records)
}

// Records returns a copy of all records in catalog order.
func (s *Store) Records() []Record {
	out := make([]Record, len(s.records))
	for i, r := range s.records {
		out[i] = r.clone()
	}
	return out
}

// Lookup returns the record for id.
func (s *Store) Lookup(id string) (Record, bool) {
	i, ok := s.index[id]
	if !ok {
		return Record{}, false
	}
	return s.records[i].clone(), true
}

// Categories returns the distinct categories in order of first appearance.
func (s *Store) Categories() []string {
	seen := make(map[string]bool)
	var out []string
	for _, r := range s.records {
		key := CategoryKey(r.Category)
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, key)
	}
	return out
}

// CategoryKey is the grouping form of a category: trimmed and lower-cased.
func CategoryKey(category string) string {
	return strings.ToLower(strings.TrimSpace(category))
}

func checkRecord(r Record) error {
	missing := func(field string) error {
		return fmt.Errorf("%w: %q is missing %s", ErrInvalidRecord, r.ID, field)
	}
	switch {
	case strings.TrimSpace(r.ID) == "":
		return fmt.Errorf("%w: id is empty", ErrInvalidRecord)
	case strings.TrimSpace(r.Name) == "":
		return missing("name")
	case strings.TrimSpace(r.Description) == "":
		return missing("description")
	case strings.TrimSpace(r.Category) == "":
		return missing("category")
	case strings.TrimSpace(r.Version) == "":
		return missing("version")
	}
	for i, ex := range r.Examples {
		if ex.Kind != KindRequest && ex.Kind != KindResponse {
			return fmt.Errorf("%w: %q example %d has kind %q", ErrInvalidRecord, r.ID, i, ex.Kind)
		}
	}
	for i, ep := range r.Endpoints {
		if ep.Verb == "" || ep.Path == "" {
			return fmt.Errorf("%w: %q endpoint %d needs verb and path", ErrInvalidRecord, r.ID, i)
		}
	}
	return nil
}
