package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pybel/belgo/internal/edge"
	"github.com/pybel/belgo/internal/warning"
)

func TestSplitTopLevel_IgnoresSpacesInsideParensAndQuotes(t *testing.T) {
	tokens := splitTopLevel(`p(HGNC:AKT1) increases p(HGNC:"GSK3 beta")`)
	require.Len(t, tokens, 3)
	assert.Equal(t, `p(HGNC:AKT1)`, tokens[0])
	assert.Equal(t, `increases`, tokens[1])
	assert.Equal(t, `p(HGNC:"GSK3 beta")`, tokens[2])
}

func TestParseStatementLine_SingletonTermHasNoEdges(t *testing.T) {
	p := newTermParser()
	stmt, err := p.parseStatementLine(`p(HGNC:AKT1)`, 0)
	require.NoError(t, err)
	assert.Empty(t, stmt.Edges)
	assert.Equal(t, `p(HGNC:AKT1)`, stmt.Source.Canonical())
}

func TestParseStatementLine_SimpleRelation(t *testing.T) {
	p := newTermParser()
	stmt, err := p.parseStatementLine(`p(HGNC:AKT1) directlyIncreases p(HGNC:GSK3B)`, 0)
	require.NoError(t, err)
	require.Len(t, stmt.Edges, 1)
	e := stmt.Edges[0]
	assert.Equal(t, edge.RelationDirectlyIncreases, e.Relation)
	assert.Equal(t, `p(HGNC:AKT1)`, e.Source.Canonical())
	assert.Equal(t, `p(HGNC:GSK3B)`, e.Target.Canonical())
}

func TestParseStatementLine_SymbolicRelationAlias(t *testing.T) {
	p := newTermParser()
	stmt, err := p.parseStatementLine(`p(HGNC:AKT1) -> p(HGNC:GSK3B)`, 0)
	require.NoError(t, err)
	require.Len(t, stmt.Edges, 1)
	assert.Equal(t, edge.RelationIncreases, stmt.Edges[0].Relation)
}

func TestParseStatementLine_UnrecognizedRelationErrors(t *testing.T) {
	p := newTermParser()
	_, err := p.parseStatementLine(`p(HGNC:AKT1) bogusRelation p(HGNC:GSK3B)`, 0)
	assert.Error(t, err)
}

func TestParseStatementLine_NestedStatementRejectedByDefault(t *testing.T) {
	p := newTermParser()
	_, err := p.parseStatementLine(`p(HGNC:AKT1) increases (p(HGNC:GSK3B) decreases p(HGNC:CTNNB1))`, 0)
	require.Error(t, err)
	w, ok := err.(warning.Warning)
	require.True(t, ok)
	assert.Equal(t, warning.KindNestedRelation, w.Kind)
}

func TestParseStatementLine_NestedStatementExpandsToTwoEdges(t *testing.T) {
	p := newTermParser()
	p.options.AllowNested = true

	stmt, err := p.parseStatementLine(`p(HGNC:AKT1) increases (p(HGNC:GSK3B) decreases p(HGNC:CTNNB1))`, 0)
	require.NoError(t, err)
	require.Len(t, stmt.Edges, 2)

	outer := stmt.Edges[0]
	assert.Equal(t, `p(HGNC:AKT1)`, outer.Source.Canonical())
	assert.Equal(t, edge.RelationIncreases, outer.Relation)
	assert.Equal(t, `p(HGNC:GSK3B)`, outer.Target.Canonical())

	inner := stmt.Edges[1]
	assert.Equal(t, `p(HGNC:GSK3B)`, inner.Source.Canonical())
	assert.Equal(t, edge.RelationDecreases, inner.Relation)
	assert.Equal(t, `p(HGNC:CTNNB1)`, inner.Target.Canonical())
}

func TestParseStatementLine_NestedStatementRejectsDoubleNesting(t *testing.T) {
	p := newTermParser()
	p.options.AllowNested = true

	inner := `p(HGNC:GSK3B) decreases (p(HGNC:CTNNB1) increases p(HGNC:MYC))`
	_, err := p.parseNestedObject("outer line", nil, nil, edge.RelationIncreases, "("+inner+")", 1)
	require.Error(t, err)
	w, ok := err.(warning.Warning)
	require.True(t, ok)
	assert.Equal(t, warning.KindNestedRelation, w.Kind)
}
