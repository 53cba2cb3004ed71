package nodelink

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pybel/belgo/internal/canon"
	"github.com/pybel/belgo/internal/config"
	"github.com/pybel/belgo/internal/graph"
	"github.com/pybel/belgo/internal/parser"
)

const testDoc = `SET DOCUMENT Name = "RoundTrip"
SET DOCUMENT Version = "1.0.0"
DEFINE NAMESPACE HGNC AS LIST {"AKT1","GSK3B"}
DEFINE ANNOTATION CellLine AS LIST {"MCF-7"}
SET Citation = {"PubMed","Title","12345"}
SET Evidence = "ex"
SET CellLine = "MCF-7"
p(HGNC:AKT1) -| p(HGNC:GSK3B, pmod(Ph, Ser, 9))`

func compileFixture(t *testing.T) *graph.Graph {
	t.Helper()
	result, err := parser.Compile(context.Background(), strings.NewReader(testDoc), config.DefaultOptions(), nil)
	require.NoError(t, err)
	return result.Graph
}

func nodeHashSet(g *graph.Graph) map[canon.Hash]string {
	out := make(map[canon.Hash]string)
	for _, n := range g.Nodes() {
		out[graph.NodeHash(n)] = n.Canonical()
	}
	return out
}

func edgeKeySet(t *testing.T, g *graph.Graph) map[canon.Hash]bool {
	t.Helper()
	out := make(map[canon.Hash]bool)
	for _, et := range g.Edges() {
		key, err := et.Data.Key()
		require.NoError(t, err)
		out[key] = true
	}
	return out
}

func TestToNodeLink_SerializesThroughJSON(t *testing.T) {
	g := compileFixture(t)
	doc := ToNodeLink(g)

	encoded, err := json.Marshal(doc)
	require.NoError(t, err)

	var decoded Document
	require.NoError(t, json.Unmarshal(encoded, &decoded))
	assert.Equal(t, doc.Metadata, decoded.Metadata)
	assert.Len(t, decoded.Nodes, len(doc.Nodes))
	assert.Len(t, decoded.Edges, len(doc.Edges))
}

func TestRoundTrip_PreservesNodesEdgesMetadataNamespacesAnnotationsWarnings(t *testing.T) {
	original := compileFixture(t)
	doc := ToNodeLink(original)

	encoded, err := json.Marshal(doc)
	require.NoError(t, err)
	var decoded Document
	require.NoError(t, json.Unmarshal(encoded, &decoded))

	restored, err := FromNodeLink(decoded)
	require.NoError(t, err)

	assert.Equal(t, original.Metadata, restored.Metadata)
	assert.Equal(t, nodeHashSet(original), nodeHashSet(restored))
	assert.Equal(t, edgeKeySet(t, original), edgeKeySet(t, restored))

	for keyword, def := range original.Namespaces {
		restoredDef, ok := restored.Namespaces[keyword]
		require.True(t, ok)
		assert.Equal(t, def.URL, restoredDef.URL)
	}
	for keyword, def := range original.Annotations {
		restoredDef, ok := restored.Annotations[keyword]
		require.True(t, ok)
		assert.Equal(t, def.URL, restoredDef.URL)
	}

	assert.Equal(t, original.Warnings(), restored.Warnings())
}

func TestFromNodeLink_RejectsTamperedHash(t *testing.T) {
	g := compileFixture(t)
	doc := ToNodeLink(g)
	require.NotEmpty(t, doc.Nodes)
	doc.Nodes[0].Hash = "not-the-real-hash"

	_, err := FromNodeLink(doc)
	assert.Error(t, err)
}

func TestFromNodeLink_RejectsEdgeWithUnknownSourceHash(t *testing.T) {
	g := compileFixture(t)
	doc := ToNodeLink(g)
	require.NotEmpty(t, doc.Edges)
	doc.Edges[0].SourceHash = "nonexistent-hash"

	_, err := FromNodeLink(doc)
	assert.Error(t, err)
}
