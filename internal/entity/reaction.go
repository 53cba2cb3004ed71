package entity

import (
	"fmt"
	"sort"
	"strings"

	"github.com/pybel/belgo/internal/concept"
	"github.com/pybel/belgo/internal/variant"
)

// Reaction is rxn(reactants(...), products(...)): two ordered sets of
// entities, with an optional named Concept (spec.md §3.1).
type Reaction struct {
	Concept   *concept.Concept
	Reactants []Entity
	Products  []Entity
}

func (r Reaction) Function() Function { return FunctionReaction }

func sortedCanonicals(es []Entity) []string {
	parts := make([]string, len(es))
	for i, e := range es {
		parts[i] = e.Canonical()
	}
	sort.Strings(parts)
	return parts
}

// Canonical sorts reactants and products independently by canonical form
// (spec.md §4.5's "Reaction: ... with each sub-list sorted").
func (r Reaction) Canonical() string {
	body := fmt.Sprintf("reactants(%s), products(%s)",
		strings.Join(sortedCanonicals(r.Reactants), ", "),
		strings.Join(sortedCanonicals(r.Products), ", "),
	)
	if r.Concept != nil {
		return fmt.Sprintf("rxn(%s:%s, %s)", r.Concept.Namespace, variant.Quote(r.Concept.Preferred()), body)
	}
	return fmt.Sprintf("rxn(%s)", body)
}
