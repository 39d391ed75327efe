// Package stats aggregates per-category employee counts over a forest.
package stats

import (
	"sort"

	"github.com/crimson-sun/orgchart/internal/model"
	"github.com/crimson-sun/orgchart/internal/title"
)

// unknownKey groups records with an empty organization or location.
const unknownKey = "Unknown"

// Stats holds the aggregate counts for one snapshot. Populated by a single
// traversal in Collect and read-only afterwards.
type Stats struct {
	Total          int
	ByOrganization map[string]int
	ByLocation     map[string]int
	ByLevel        map[string]int
}

// Entry is one key/count pair of a presentation-ordered breakdown.
type Entry struct {
	Key   string
	Count int
}

// Collect visits every node of the forest exactly once and tallies the
// totals, organization, location, and title-level counts.
func Collect(forest model.Forest) *Stats {
	s := &Stats{
		ByOrganization: make(map[string]int),
		ByLocation:     make(map[string]int),
		ByLevel:        make(map[string]int),
	}
	forest.Walk(func(n *model.Node, _ int) {
		s.Total++
		s.ByOrganization[keyOr(n.Record.Organization)]++
		s.ByLocation[keyOr(n.Record.Location)]++
		s.ByLevel[title.Level(n.Record.JobTitle)]++
	})
	return s
}

// OrganizationBreakdown returns organizations by descending count,
// ties by key.
func (s *Stats) OrganizationBreakdown() []Entry {
	return byCountDesc(s.ByOrganization)
}

// LocationBreakdown returns locations by descending count, ties by key.
func (s *Stats) LocationBreakdown() []Entry {
	return byCountDesc(s.ByLocation)
}

// LevelBreakdown returns title levels in ascending label order.
func (s *Stats) LevelBreakdown() []Entry {
	entries := collect(s.ByLevel)
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Key < entries[j].Key
	})
	return entries
}

func keyOr(v string) string {
	if v == "" {
		return unknownKey
	}
	return v
}

func collect(m map[string]int) []Entry {
	entries := make([]Entry, 0, len(m))
	for k, v := range m {
		entries = append(entries, Entry{Key: k, Count: v})
	}
	return entries
}

func byCountDesc(m map[string]int) []Entry {
	entries := collect(m)
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Count != entries[j].Count {
			return entries[i].Count > entries[j].Count
		}
		return entries[i].Key < entries[j].Key
	})
	return entries
}
