// Package nodelink implements the node-link JSON wire format (spec.md
// §6.3): a full, round-trippable serialization of a BELGraph for
// collaborators that don't link against internal/graph directly.
//
// Grounded on the teacher's internal/viz.ToCytoscape: a pure function
// pair converting the in-memory graph structure to and from a JSON-ready
// document shape, generalized from Cytoscape's node/edge element arrays
// to node-link's {nodes, edges, metadata, namespaces, annotations,
// warnings} shape.
package nodelink

import (
	"fmt"

	"github.com/pybel/belgo/internal/canon"
	"github.com/pybel/belgo/internal/config"
	"github.com/pybel/belgo/internal/edge"
	"github.com/pybel/belgo/internal/entity"
	"github.com/pybel/belgo/internal/graph"
	"github.com/pybel/belgo/internal/parser"
	"github.com/pybel/belgo/internal/warning"
)

// NamespaceRecord is a declared namespace or annotation keyword's wire
// form: just the keyword and its declared source, since the resolved
// Validator is reconstructed by re-running DEFINE on re-compilation, not
// by round-tripping through node-link (spec.md §6.3's "for collaborators,
// not core").
type NamespaceRecord struct {
	Keyword string `json:"keyword"`
	URL     string `json:"url"`
}

// NodeRecord is one node's wire form: its canonical BEL term string (the
// entity's complete, self-describing serialization per spec.md §4.5) and
// the hash the core computed for it. FromNodeLink re-parses Canonical and
// checks the result hashes to Hash, catching any wire-level corruption.
type NodeRecord struct {
	Hash      canon.Hash `json:"hash"`
	Canonical string     `json:"canonical"`
}

// Document is the full node-link JSON shape (spec.md §6.3).
type Document struct {
	Metadata    graph.Document             `json:"metadata"`
	Namespaces  map[string]NamespaceRecord `json:"namespaces,omitempty"`
	Annotations map[string]NamespaceRecord `json:"annotations,omitempty"`
	Nodes       []NodeRecord               `json:"nodes"`
	Edges       []edge.Edge                `json:"edges"`
	Warnings    []warning.Warning          `json:"warnings,omitempty"`
}

// ToNodeLink converts g to its node-link wire form (spec.md §6.3).
func ToNodeLink(g *graph.Graph) Document {
	doc := Document{Metadata: g.Metadata}

	if len(g.Namespaces) > 0 {
		doc.Namespaces = make(map[string]NamespaceRecord, len(g.Namespaces))
		for keyword, def := range g.Namespaces {
			doc.Namespaces[keyword] = NamespaceRecord{Keyword: def.Keyword, URL: def.URL}
		}
	}
	if len(g.Annotations) > 0 {
		doc.Annotations = make(map[string]NamespaceRecord, len(g.Annotations))
		for keyword, def := range g.Annotations {
			doc.Annotations[keyword] = NamespaceRecord{Keyword: def.Keyword, URL: def.URL}
		}
	}

	nodes := g.Nodes()
	doc.Nodes = make([]NodeRecord, len(nodes))
	for i, n := range nodes {
		doc.Nodes[i] = NodeRecord{Hash: graph.NodeHash(n), Canonical: n.Canonical()}
	}

	edges := g.Edges()
	doc.Edges = make([]edge.Edge, len(edges))
	for i, et := range edges {
		doc.Edges[i] = et.Data
	}

	doc.Warnings = g.Warnings()
	return doc
}

// FromNodeLink reconstructs a Graph from doc (spec.md §6.3, §8 testable
// property 6's round trip). Entities are reconstructed by re-parsing each
// node's canonical form; a node whose recomputed hash disagrees with the
// wire hash is reported as corrupted wire data rather than silently
// accepted.
func FromNodeLink(doc Document) (*graph.Graph, error) {
	g := graph.New()
	g.Metadata = doc.Metadata

	for keyword, rec := range doc.Namespaces {
		g.Namespaces[keyword] = graph.ResourceDef{Keyword: rec.Keyword, URL: rec.URL}
	}
	for keyword, rec := range doc.Annotations {
		g.Annotations[keyword] = graph.ResourceDef{Keyword: rec.Keyword, URL: rec.URL}
	}

	hashToEntity := make(map[canon.Hash]entity.Entity, len(doc.Nodes))
	for _, n := range doc.Nodes {
		e, _, err := parser.ParseEntityString(n.Canonical, config.DefaultOptions())
		if err != nil {
			return nil, fmt.Errorf("nodelink: reparsing node %q: %w", n.Canonical, err)
		}
		got := g.AddNode(e)
		if got != n.Hash {
			return nil, fmt.Errorf("nodelink: hash mismatch for node %q: wire %s, recomputed %s", n.Canonical, n.Hash, got)
		}
		hashToEntity[got] = e
	}

	for _, rec := range doc.Edges {
		src, ok := hashToEntity[rec.SourceHash]
		if !ok {
			return nil, fmt.Errorf("nodelink: edge references unknown source hash %s", rec.SourceHash)
		}
		tgt, ok := hashToEntity[rec.TargetHash]
		if !ok {
			return nil, fmt.Errorf("nodelink: edge references unknown target hash %s", rec.TargetHash)
		}
		if _, err := g.AddQualifiedEdge(src, tgt, rec); err != nil {
			return nil, fmt.Errorf("nodelink: restoring edge: %w", err)
		}
	}

	for _, w := range doc.Warnings {
		g.Warn(w)
	}

	return g, nil
}
