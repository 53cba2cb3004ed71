package entity

import (
	"fmt"
	"sort"
	"strings"

	"github.com/pybel/belgo/internal/concept"
	"github.com/pybel/belgo/internal/variant"
)

// ListAbundance is a ComplexAbundance or CompositeAbundance: an ordered
// set of member entities, de-duplicated by canonical form on
// construction (spec.md §3.1). A ComplexAbundance may additionally carry
// a named Concept (a named complex, e.g. `complex(SCOMP:"AP-1 Complex")`).
type ListAbundance struct {
	Func    Function
	Concept *concept.Concept
	Members []Entity
}

// NewListAbundance builds a ListAbundance, de-duplicating members by
// canonical form while preserving first-seen order (spec.md §3.1's
// "Duplicate members are de-duplicated on insertion").
func NewListAbundance(fn Function, named *concept.Concept, members []Entity) ListAbundance {
	seen := make(map[string]bool, len(members))
	deduped := make([]Entity, 0, len(members))
	for _, m := range members {
		c := m.Canonical()
		if seen[c] {
			continue
		}
		seen[c] = true
		deduped = append(deduped, m)
	}
	return ListAbundance{Func: fn, Concept: named, Members: deduped}
}

func (l ListAbundance) Function() Function { return l.Func }

// Canonical sorts members by their own canonical form (spec.md §4.5's
// "List: ... with members sorted by canonical form; named complexes keep
// their name before the member list").
func (l ListAbundance) Canonical() string {
	sorted := make([]Entity, len(l.Members))
	copy(sorted, l.Members)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Canonical() < sorted[j].Canonical() })

	parts := make([]string, len(sorted))
	for i, m := range sorted {
		parts[i] = m.Canonical()
	}

	if l.Concept != nil {
		head := fmt.Sprintf("%s:%s", l.Concept.Namespace, variant.Quote(l.Concept.Preferred()))
		if len(parts) == 0 {
			return fmt.Sprintf("%s(%s)", l.Func, head)
		}
		return fmt.Sprintf("%s(%s, %s)", l.Func, head, strings.Join(parts, ", "))
	}
	return fmt.Sprintf("%s(%s)", l.Func, strings.Join(parts, ", "))
}
