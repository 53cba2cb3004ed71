package lexer

import (
	"strings"
	"testing"

	"github.com/pybel/belgo/internal/warning"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLex_StripsCommentsAndBlankLines(t *testing.T) {
	input := "# a comment\n\np(HGNC:AKT1) -- p(HGNC:EGFR)\n"
	lines, warnings := Lex(strings.NewReader(input))
	require.Empty(t, warnings)
	require.Len(t, lines, 1)
	assert.Equal(t, 3, lines[0].Number)
	assert.Equal(t, "p(HGNC:AKT1) -- p(HGNC:EGFR)", lines[0].Text)
}

func TestLex_PreservesDebugComments(t *testing.T) {
	input := "#: this is a debug comment\np(HGNC:AKT1)\n"
	lines, warnings := Lex(strings.NewReader(input))
	require.Empty(t, warnings)
	require.Len(t, lines, 2)
	assert.True(t, lines[0].Debug)
	assert.False(t, lines[1].Debug)
}

func TestLex_BackslashContinuation(t *testing.T) {
	input := "SET Evidence = \"first part \\\nsecond part\"\n"
	lines, warnings := Lex(strings.NewReader(input))
	require.Empty(t, warnings)
	require.Len(t, lines, 1)
	assert.Equal(t, 1, lines[0].Number)
	assert.Contains(t, lines[0].Text, "first part")
	assert.Contains(t, lines[0].Text, "second part")
}

func TestLex_QuoteSpanningLines(t *testing.T) {
	input := "SET Evidence = \"line one\nline two\"\n"
	lines, warnings := Lex(strings.NewReader(input))
	require.Empty(t, warnings)
	require.Len(t, lines, 1)
	assert.Equal(t, 1, lines[0].Number)
}

func TestLex_UnterminatedQuoteAtEOF(t *testing.T) {
	input := "SET Evidence = \"never closed\n"
	lines, warnings := Lex(strings.NewReader(input))
	assert.Empty(t, lines)
	require.Len(t, warnings, 1)
	assert.Equal(t, warning.KindBelSyntax, warnings[0].Kind)
}
