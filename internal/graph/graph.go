// Package graph implements the BELGraph (spec.md §3.3): a labeled
// multidigraph of entity.Entity vertices and edge.Edge data, with
// document metadata, namespace/annotation registries, an ordered warning
// log, and the inference rules required by spec.md §3.3 invariants 4–6.
//
// Grounded on the teacher's internal/viz.GraphData (a node/edge
// in-memory structure built incrementally and exported to a wire format)
// generalized from a flat citation graph to a hash-identified,
// content-addressed multigraph.
package graph

import (
	"fmt"
	"sort"

	"github.com/pybel/belgo/internal/canon"
	"github.com/pybel/belgo/internal/edge"
	"github.com/pybel/belgo/internal/entity"
	"github.com/pybel/belgo/internal/resolver"
	"github.com/pybel/belgo/internal/warning"
)

// Document is the graph's document metadata (spec.md §4.2's `SET
// DOCUMENT` table). The (Name, Version) pair is the graph's identity
// (spec.md §3.3).
type Document struct {
	Name        string
	Version     string
	Description string
	Authors     string
	Licenses    string
	ContactInfo string
	Copyright   string
	Disclaimer  string
	Project     string
}

// ResourceDef is a declared namespace or annotation keyword (spec.md
// §3.3's "Declared namespaces... and annotations").
type ResourceDef struct {
	Keyword   string
	URL       string
	Validator resolver.Validator
}

// edgeID identifies one multigraph edge slot: a (source, target,
// content-hash) triple (spec.md §3.2's "an edge is a triple
// (source, target, key)").
type edgeID struct {
	Source canon.Hash
	Target canon.Hash
	Key    canon.Hash
}

// Graph is the in-memory BELGraph under construction during one
// compilation (spec.md §3.3, §5's "owned exclusively by the compiler
// until it returns").
type Graph struct {
	Metadata Document

	Namespaces  map[string]ResourceDef
	Annotations map[string]ResourceDef

	nodes map[canon.Hash]entity.Entity
	edges map[edgeID]edge.Edge

	warnings []warning.Warning
}

// New builds an empty Graph.
func New() *Graph {
	return &Graph{
		Namespaces:  make(map[string]ResourceDef),
		Annotations: make(map[string]ResourceDef),
		nodes:       make(map[canon.Hash]entity.Entity),
		edges:       make(map[edgeID]edge.Edge),
	}
}

// Warn appends w to the ordered warning log (spec.md §5's "warnings are
// emitted in document order").
func (g *Graph) Warn(w warning.Warning) {
	g.warnings = append(g.warnings, w)
}

// Warnings returns the ordered warning log.
func (g *Graph) Warnings() []warning.Warning {
	return g.warnings
}

// Nodes returns all entities in hash order (spec.md §6.2's `nodes()`).
func (g *Graph) Nodes() []entity.Entity {
	hashes := make([]canon.Hash, 0, len(g.nodes))
	for h := range g.nodes {
		hashes = append(hashes, h)
	}
	sort.Slice(hashes, func(i, j int) bool { return hashes[i] < hashes[j] })

	out := make([]entity.Entity, len(hashes))
	for i, h := range hashes {
		out[i] = g.nodes[h]
	}
	return out
}

// EdgeTriple is one (source, target, data) edge instance (spec.md §6.2's
// `edges()`).
type EdgeTriple struct {
	Source entity.Entity
	Target entity.Entity
	Data   edge.Edge
}

// Edges returns all edge instances.
func (g *Graph) Edges() []EdgeTriple {
	ids := make([]edgeID, 0, len(g.edges))
	for id := range g.edges {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool {
		if ids[i].Source != ids[j].Source {
			return ids[i].Source < ids[j].Source
		}
		if ids[i].Target != ids[j].Target {
			return ids[i].Target < ids[j].Target
		}
		return ids[i].Key < ids[j].Key
	})

	out := make([]EdgeTriple, len(ids))
	for i, id := range ids {
		out[i] = EdgeTriple{Source: g.nodes[id.Source], Target: g.nodes[id.Target], Data: g.edges[id]}
	}
	return out
}

// NodeHash returns the canon.Hash identity of e, without inserting it.
func NodeHash(e entity.Entity) canon.Hash {
	return canon.HashString(e.Canonical())
}

// AddNode inserts e (if not already present) and its inferred
// unqualified edges (spec.md §3.3 invariants 4–6), and returns its node
// hash. AddNode is idempotent and recursive: list/reaction members and a
// central-dogma entity's variant parent are inserted too.
func (g *Graph) AddNode(e entity.Entity) canon.Hash {
	h := NodeHash(e)
	if _, exists := g.nodes[h]; exists {
		return h
	}
	g.nodes[h] = e

	g.inferCentralDogma(e)
	g.inferHasVariant(e)
	g.inferStructuralMembers(e)

	return h
}

// inferCentralDogma implements spec.md §3.3 invariant 4: every Protein
// implies Rna->translatedTo->Protein and Gene->transcribedTo->Rna; every
// Rna implies only the Gene->transcribedTo->Rna edge.
func (g *Graph) inferCentralDogma(e entity.Entity) {
	cd, ok := e.(entity.CentralDogma)
	if !ok {
		return
	}
	parent := cd.Parent()

	switch cd.Function() {
	case entity.FunctionProtein:
		pc := parent.(entity.CentralDogmaEntity)
		rna := entity.CentralDogmaEntity{Func: entity.FunctionRna, Concept: pc.Concept}
		gene := entity.CentralDogmaEntity{Func: entity.FunctionGene, Concept: pc.Concept}
		g.AddNode(rna)
		g.AddNode(gene)
		g.addUnqualified(rna, parent, edge.RelationTranslatedTo)
		g.addUnqualified(gene, rna, edge.RelationTranscribedTo)
	case entity.FunctionRna, entity.FunctionMicroRna:
		pc := parent.(entity.CentralDogmaEntity)
		gene := entity.CentralDogmaEntity{Func: entity.FunctionGene, Concept: pc.Concept}
		g.AddNode(gene)
		g.addUnqualified(gene, parent, edge.RelationTranscribedTo)
	}
}

// inferHasVariant implements spec.md §3.3 invariant 5: a variant-bearing
// entity gets a hasVariant edge to its bare parent.
func (g *Graph) inferHasVariant(e entity.Entity) {
	cd, ok := e.(entity.CentralDogma)
	if !ok || len(cd.Variants()) == 0 {
		return
	}
	parent := cd.Parent()
	g.AddNode(parent)
	g.addUnqualified(e, parent, edge.RelationHasVariant)
}

// inferStructuralMembers implements spec.md §3.3 invariant 6:
// ListAbundance members get hasComponent (complex) or hasMember
// (composite) edges; Reaction participants get hasReactant/hasProduct
// edges.
func (g *Graph) inferStructuralMembers(e entity.Entity) {
	switch v := e.(type) {
	case entity.ListAbundance:
		relation := edge.RelationHasComponent
		if v.Func == entity.FunctionCompositeAbundance {
			relation = edge.RelationHasMember
		}
		for _, member := range v.Members {
			g.AddNode(member)
			g.addUnqualified(e, member, relation)
		}
	case entity.Reaction:
		for _, r := range v.Reactants {
			g.AddNode(r)
			g.addUnqualified(e, r, edge.RelationHasReactant)
		}
		for _, p := range v.Products {
			g.AddNode(p)
			g.addUnqualified(e, p, edge.RelationHasProduct)
		}
	}
}

// addUnqualified inserts an inferred structural edge, ignoring the
// (impossible, since unqualified edges always validate) error.
func (g *Graph) addUnqualified(src, tgt entity.Entity, relation edge.Relation) {
	_, _ = g.AddUnqualifiedEdge(src, tgt, relation)
}

// AddUnqualifiedEdge inserts a structural/inferred edge requiring no
// citation (spec.md §6.2's `add_unqualified_edge`). It is idempotent by
// (src, tgt, relation): re-inserting produces the same content hash.
func (g *Graph) AddUnqualifiedEdge(src, tgt entity.Entity, relation edge.Relation) (canon.Hash, error) {
	data := edge.Edge{
		Relation:   relation,
		SourceHash: g.AddNode(src),
		TargetHash: g.AddNode(tgt),
	}
	return g.insert(data)
}

// AddQualifiedEdge inserts a fully qualified edge and returns its content
// hash (spec.md §6.2's `add_qualified_edge`). Fails validation with
// edge.ErrMissingCitation/ErrMissingEvidence, or with the underlying
// reference.Citation.Validate error, wrapped as a fatal
// compileerr-compatible error by the caller if desired — graph itself
// only reports the raw error.
func (g *Graph) AddQualifiedEdge(src, tgt entity.Entity, data edge.Edge) (canon.Hash, error) {
	data.SourceHash = g.AddNode(src)
	data.TargetHash = g.AddNode(tgt)

	if err := data.Validate(); err != nil {
		return "", err
	}
	if !data.Citation.IsEmpty() {
		if err := data.Citation.Validate(); err != nil {
			return "", fmt.Errorf("invalid citation: %w", err)
		}
	}

	key, err := g.insert(data)
	if err != nil {
		return "", err
	}

	if data.Relation.IsSymmetric() {
		reverse := data
		if _, err := g.insertAt(edgeID{Source: data.TargetHash, Target: data.SourceHash, Key: key}, reverse); err != nil {
			return "", err
		}
	}

	return key, nil
}

func (g *Graph) insert(data edge.Edge) (canon.Hash, error) {
	key, err := data.Key()
	if err != nil {
		return "", fmt.Errorf("hashing edge: %w", err)
	}
	return g.insertAt(edgeID{Source: data.SourceHash, Target: data.TargetHash, Key: key}, data)
}

func (g *Graph) insertAt(id edgeID, data edge.Edge) (canon.Hash, error) {
	g.edges[id] = data
	return id.Key, nil
}
