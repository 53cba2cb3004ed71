package entity

import (
	"fmt"

	"github.com/pybel/belgo/internal/concept"
	"github.com/pybel/belgo/internal/variant"
)

// FusionRange is either the missing-range sentinel ("?") or an enumerated
// range with a reference sequence code and left/right boundaries, each of
// which may be an integer or a string (spec.md §3.1).
type FusionRange struct {
	// Missing, when true, renders as "?" and Reference/Left/Right are
	// ignored.
	Missing bool

	Reference string
	Left      string
	Right     string
}

// MissingFusionRange is the "?" sentinel range.
func MissingFusionRange() FusionRange { return FusionRange{Missing: true} }

func (r FusionRange) canonical() string {
	if r.Missing {
		return `"?"`
	}
	return fmt.Sprintf(`"%s_%s_%s"`, r.Reference, r.Left, r.Right)
}

// Fusion is a GeneFusion, RnaFusion, or ProteinFusion: a 5' partner, a 3'
// partner, and a FusionRange for each (spec.md §3.1). Func is the base
// function the fusion is built over (g/r/p) — a fusion is not itself a
// distinct function, matching the original implementation's
// FusionBase.as_bel(), which tags the fus() wrapper with the partner's
// own function rather than a separate "fusion" function.
type Fusion struct {
	Func Function

	Partner5Prime concept.Concept
	Range5Prime   FusionRange

	Partner3Prime concept.Concept
	Range3Prime   FusionRange
}

func (f Fusion) Function() Function { return f.Func }

// Canonical preserves 5'/3' orientation — fusion partners are never
// sorted (spec.md §4.5's "Fusion: preserves the 5′/3′ orientation (not
// sorted)").
func (f Fusion) Canonical() string {
	return fmt.Sprintf("%s(fus(%s:%s, %s, %s:%s, %s))",
		f.Func,
		f.Partner5Prime.Namespace, variant.Quote(f.Partner5Prime.Preferred()), f.Range5Prime.canonical(),
		f.Partner3Prime.Namespace, variant.Quote(f.Partner3Prime.Preferred()), f.Range3Prime.canonical(),
	)
}
