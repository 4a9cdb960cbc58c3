// Package advice holds the condition advice catalog and the resolver that
// maps free-form user input onto it.
package advice

import (
	"sort"
	"strings"
)

// Record is the advice kept for one condition.
type Record struct {
	Condition string
	Symptoms  []string
	Medicines string
	Lifestyle string
	Warning   string
}

// Normalize canonicalizes a condition name for lookup: surrounding
// whitespace stripped, lowercased.
func Normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// Store is an in-memory advice lookup keyed by normalized condition name.
type Store struct {
	records map[string]*Record
	names   []string
}

// NewStore indexes the given records. Later duplicates of a normalized
// name win.
func NewStore(records []Record) *Store {
	s := &Store{records: make(map[string]*Record, len(records))}
	for i := range records {
		rec := records[i]
		s.records[Normalize(rec.Condition)] = &rec
	}
	s.names = make([]string, 0, len(s.records))
	for name := range s.records {
		s.names = append(s.names, name)
	}
	sort.Strings(s.names)
	return s
}

// Lookup returns the record for a condition name, matching after
// normalization only. No fuzzy matching happens here.
func (s *Store) Lookup(name string) (*Record, bool) {
	rec, ok := s.records[Normalize(name)]
	return rec, ok
}

// Len returns the number of records.
func (s *Store) Len() int {
	return len(s.records)
}

// Conditions returns the normalized condition names in sorted order.
func (s *Store) Conditions() []string {
	out := make([]string, len(s.names))
	copy(out, s.names)
	return out
}
