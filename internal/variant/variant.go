// Package variant defines the per-entity sequence variants BEL attaches to
// a central-dogma abundance (spec.md §3.1's "variants" field: protein and
// gene modifications, sequence substitutions/HGVS strings, fragments, and
// unspecified variation).
//
// Variant is an interface rather than a tagged struct because each kind
// has its own canonical-form grammar and its own constructor invariants
// (spec.md §4.4.1's per-function modifier grammar); a flat struct would
// leave most fields unset for any given kind, the way internal/modifier's
// Modifier does for edge-level modifiers where the shape really is mostly
// shared.
package variant

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// Variant is one entry in a central-dogma entity's variant list. Two
// variants are equal iff their canonical forms are byte-equal (spec.md §8
// testable property 1), so Canonical is the only method required.
type Variant interface {
	Canonical() string
}

// SortVariants orders variants by their canonical form, matching
// CentralDogma.as_bel()'s "sorted(variants)" behavior in the original
// implementation: variant order must not affect an entity's identity.
func SortVariants(vs []Variant) []Variant {
	sorted := make([]Variant, len(vs))
	copy(sorted, vs)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Canonical() < sorted[j].Canonical()
	})
	return sorted
}

// Quote wraps s in double quotes unless it is purely alphanumeric,
// matching the original implementation's ensure_quotes. Exported so
// internal/entity can apply the same quoting rule to concept names when
// building canonical forms.
func Quote(s string) string {
	return quote(s)
}

// quote wraps s in double quotes unless it is purely alphanumeric,
// matching the original implementation's ensure_quotes.
func quote(s string) string {
	for _, r := range s {
		if !(r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' || r >= '0' && r <= '9') {
			return `"` + s + `"`
		}
	}
	if s == "" {
		return `""`
	}
	return s
}

// ProteinModification is a pmod() variant: a post-translational
// modification, optionally qualified with the affected amino acid and
// sequence position (spec.md §4.4.1).
type ProteinModification struct {
	// Namespace is the controlled vocabulary the modification code is
	// drawn from. Empty means the BEL default modification namespace
	// (vocabulary.go's pmod table), matching the original's "namespace
	// defaults to BEL" rule.
	Namespace  string
	Identifier string
	// AminoAcid is the three-letter affected residue code, or empty if
	// unspecified.
	AminoAcid string
	// Position is the affected sequence position, or nil if unspecified.
	Position *int
}

func (p ProteinModification) Canonical() string {
	var b strings.Builder
	b.WriteString("pmod(")
	if p.Namespace != "" {
		b.WriteString(p.Namespace)
		b.WriteString(":")
	}
	b.WriteString(quote(p.Identifier))
	if p.AminoAcid != "" {
		b.WriteString(", ")
		b.WriteString(p.AminoAcid)
	}
	if p.Position != nil {
		b.WriteString(", ")
		b.WriteString(strconv.Itoa(*p.Position))
	}
	b.WriteString(")")
	return b.String()
}

// GeneModification is a gmod() variant: a DNA-level modification such as
// methylation (spec.md §4.4.1; a PyBEL-originated extension to the BEL
// language, not part of the OpenBEL 2.1 core grammar).
type GeneModification struct {
	Namespace  string
	Identifier string
}

func (g GeneModification) Canonical() string {
	if g.Namespace != "" {
		return fmt.Sprintf("gmod(%s:%s)", g.Namespace, quote(g.Identifier))
	}
	return fmt.Sprintf("gmod(%s)", quote(g.Identifier))
}

// HGVS is a var() variant carrying a sequence-variation expression. Legacy
// sub()/trunc() forms (spec.md §4.4.1) normalize into an HGVS value by
// formatting their own string, exactly as the original implementation's
// ProteinSubstitution/Truncation subclasses of Hgvs do.
type HGVS struct {
	// Value is the HGVS expression, e.g. "p.Phe508del", or the special
	// forms "=" (reference, no change) and "?" (unspecified variation).
	Value string
}

// HGVSUnspecified is the "var(?)" unspecified-variation sentinel.
func HGVSUnspecified() HGVS { return HGVS{Value: "?"} }

// HGVSReference is the "var(=)" no-change sentinel.
func HGVSReference() HGVS { return HGVS{Value: "="} }

// SubstitutionHGVS builds the legacy sub(<from>, <position>, <to>) form's
// HGVS normalization: "p.<from><position><to>" (spec.md §4.4.1, warning
// code 006).
func SubstitutionHGVS(fromAA string, position int, toAA string) HGVS {
	return HGVS{Value: fmt.Sprintf("p.%s%d%s", fromAA, position, toAA)}
}

// TruncationHGVS builds the legacy trunc(<position>) form's HGVS
// normalization: "p.<position>*" (spec.md §4.4.1, warning code 025).
func TruncationHGVS(position int) HGVS {
	return HGVS{Value: fmt.Sprintf("p.%d*", position)}
}

func (h HGVS) Canonical() string {
	return fmt.Sprintf("var(%s)", quote(h.Value))
}

// Fragment is a frag() variant describing a proteolytic cleavage product,
// either by explicit start/stop positions or as entirely unspecified.
type Fragment struct {
	// Start and Stop are empty iff the fragment is unspecified, in which
	// case the range renders as "?" (spec.md §4.4.1).
	Start, Stop string
	Description string
}

// UnspecifiedFragment builds a frag() variant with no known boundary.
func UnspecifiedFragment() Fragment { return Fragment{} }

func (f Fragment) Canonical() string {
	rng := "?"
	if f.Start != "" && f.Stop != "" {
		rng = fmt.Sprintf("%s_%s", f.Start, f.Stop)
	}
	res := quote(rng)
	if f.Description != "" {
		res += ", " + quote(f.Description)
	}
	return fmt.Sprintf("frag(%s)", res)
}
