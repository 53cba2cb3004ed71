// Package edge defines Edge, the BEL graph's edge data dictionary
// (spec.md §3.2): a relation, optional subject/object modifiers,
// citation, evidence, annotations, and the line it was asserted on.
//
// Grounded on the teacher's internal/edge package: the same "flat struct
// plus sentinel validation errors plus a derived Key type" shape, applied
// to BEL's richer edge-data dictionary instead of a bare
// (source, target, relationship_type) triple.
package edge

import (
	"encoding/json"
	"errors"
	"sort"

	"github.com/pybel/belgo/internal/canon"
	"github.com/pybel/belgo/internal/modifier"
	"github.com/pybel/belgo/internal/reference"
)

// Validation errors (spec.md §3.3 invariant 2, §7.2).
var (
	ErrMissingCitation = errors.New("qualified edge requires a citation")
	ErrMissingEvidence = errors.New("qualified edge requires evidence")
)

// Edge is the data dictionary carried by one edge instance (spec.md
// §3.2). SourceHash/TargetHash are the canon.Hash of the endpoint
// entities and participate in the edge's own hash, but are not BEL
// syntax — they are filled in by internal/graph when the edge is
// inserted.
type Edge struct {
	Relation Relation

	SourceModifier *modifier.Modifier
	TargetModifier *modifier.Modifier

	Citation reference.Citation
	Evidence string

	// Annotations maps an annotation keyword to the set of values
	// asserted for it. Values are always a set, even for a single
	// asserted value (spec.md §3.2).
	Annotations map[string]map[string]struct{}

	Line int

	SourceHash canon.Hash
	TargetHash canon.Hash
}

// AddAnnotation inserts value into the set for key, creating the set if
// necessary.
func (e *Edge) AddAnnotation(key, value string) {
	if e.Annotations == nil {
		e.Annotations = make(map[string]map[string]struct{})
	}
	if e.Annotations[key] == nil {
		e.Annotations[key] = make(map[string]struct{})
	}
	e.Annotations[key][value] = struct{}{}
}

// Validate enforces spec.md §3.3 invariant 2: a qualified relation
// requires a non-empty citation and evidence.
func (e Edge) Validate() error {
	if !e.Relation.IsQualified() {
		return nil
	}
	if e.Citation.IsEmpty() {
		return ErrMissingCitation
	}
	if e.Evidence == "" {
		return ErrMissingEvidence
	}
	return nil
}

// canonicalAnnotations renders Annotations as a map from key to a
// lexicographically sorted slice of values, for stable JSON encoding
// (spec.md §4.5's "Annotations are sorted lexicographically by key, and
// set values are sorted lexicographically by canonical form").
func (e Edge) canonicalAnnotations() map[string][]string {
	if len(e.Annotations) == 0 {
		return nil
	}
	out := make(map[string][]string, len(e.Annotations))
	for key, values := range e.Annotations {
		sorted := make([]string, 0, len(values))
		for v := range values {
			sorted = append(sorted, v)
		}
		sort.Strings(sorted)
		out[key] = sorted
	}
	return out
}

// edgeCanonicalForm is the JSON shape hashed to produce an edge's key
// (spec.md §4.5). encoding/json writes struct fields in declaration
// order and sorts map keys alphabetically, so the fields below and the
// keys within Annotations come out in a deterministic order without extra
// bookkeeping; annotation values are pre-sorted by canonicalAnnotations. The line
// number is deliberately excluded, matching spec.md §4.5's "The hash
// excludes the line number."
type edgeCanonicalForm struct {
	Relation       Relation                 `json:"relation"`
	SourceModifier *modifier.Modifier       `json:"source_modifier,omitempty"`
	TargetModifier *modifier.Modifier       `json:"target_modifier,omitempty"`
	Citation       reference.Citation       `json:"citation"`
	Evidence       string                   `json:"evidence"`
	Annotations    map[string][]string      `json:"annotations,omitempty"`
	SourceHash     canon.Hash               `json:"source_hash"`
	TargetHash     canon.Hash               `json:"target_hash"`
}

// Key computes the edge's content hash (spec.md §3.2, §4.5): the hash of
// the canonical JSON of its data dictionary. Two edges with identical
// data (aside from line number) produce the same Key, which is what
// makes re-inserting the same qualified edge idempotent.
func (e Edge) Key() (canon.Hash, error) {
	form := edgeCanonicalForm{
		Relation:       e.Relation,
		SourceModifier: e.SourceModifier,
		TargetModifier: e.TargetModifier,
		Citation:       e.Citation,
		Evidence:       e.Evidence,
		Annotations:    e.canonicalAnnotations(),
		SourceHash:     e.SourceHash,
		TargetHash:     e.TargetHash,
	}
	encoded, err := json.Marshal(form)
	if err != nil {
		return "", err
	}
	return canon.HashBytes(encoded), nil
}
