package entity

import (
	"fmt"
	"strings"

	"github.com/pybel/belgo/internal/concept"
	"github.com/pybel/belgo/internal/variant"
)

// Simple is a concept-bearing entity with no variants: Abundance,
// BiologicalProcess, Pathology, Population (spec.md §3.1's
// "SimpleAbundance"). Location decorations live on the edge-side
// Modifier, not here (spec.md §4.4.1).
type Simple struct {
	Func    Function
	Concept concept.Concept
}

func (s Simple) Function() Function { return s.Func }

func (s Simple) Canonical() string {
	return fmt.Sprintf("%s(%s:%s)", s.Func, s.Concept.Namespace, variant.Quote(s.Concept.Preferred()))
}

// CentralDogmaEntity is a Gene, Rna, MicroRna, or Protein: a Concept plus
// an ordered list of Variants (spec.md §3.1's "CentralDogma-bearing
// entities"). Func must be one of the four central-dogma functions.
type CentralDogmaEntity struct {
	Func          Function
	Concept       concept.Concept
	VariantValues []variant.Variant
}

func (c CentralDogmaEntity) Function() Function { return c.Func }

func (c CentralDogmaEntity) Variants() []variant.Variant { return c.VariantValues }

// Parent returns c with an empty variant list, matching the original
// implementation's CentralDogma.get_parent() (spec.md §3.3 invariant 5).
func (c CentralDogmaEntity) Parent() CentralDogma {
	return CentralDogmaEntity{Func: c.Func, Concept: c.Concept}
}

func (c CentralDogmaEntity) Canonical() string {
	base := fmt.Sprintf("%s(%s:%s)", c.Func, c.Concept.Namespace, variant.Quote(c.Concept.Preferred()))
	if len(c.VariantValues) == 0 {
		return base
	}
	sorted := variant.SortVariants(c.VariantValues)
	parts := make([]string, len(sorted))
	for i, v := range sorted {
		parts[i] = v.Canonical()
	}
	return strings.TrimSuffix(base, ")") + ", " + strings.Join(parts, ", ") + ")"
}
