package variant

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProteinModification_Canonical(t *testing.T) {
	pos := 308
	tests := []struct {
		name string
		pm   ProteinModification
		want string
	}{
		{"bare", ProteinModification{Identifier: "Ph"}, `pmod(Ph)`},
		{"with aa and position", ProteinModification{Identifier: "Ph", AminoAcid: "Thr", Position: &pos}, `pmod(Ph, Thr, 308)`},
		{"namespaced", ProteinModification{Namespace: "MOD", Identifier: "MOD:00696"}, `pmod(MOD:"MOD:00696")`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.pm.Canonical())
		})
	}
}

func TestGeneModification_Canonical(t *testing.T) {
	assert.Equal(t, "gmod(Me)", GeneModification{Identifier: "Me"}.Canonical())
}

func TestHGVS_Canonical(t *testing.T) {
	assert.Equal(t, `var("p.Phe508del")`, HGVS{Value: "p.Phe508del"}.Canonical())
	assert.Equal(t, `var("?")`, HGVSUnspecified().Canonical())
	assert.Equal(t, `var("=")`, HGVSReference().Canonical())
	assert.Equal(t, `var("p.Thr308Ala")`, SubstitutionHGVS("Thr", 308, "Ala").Canonical())
	assert.Equal(t, `var("p.308*")`, TruncationHGVS(308).Canonical())
}

func TestFragment_Canonical(t *testing.T) {
	assert.Equal(t, `frag("?")`, UnspecifiedFragment().Canonical())
	assert.Equal(t, `frag("672_713")`, Fragment{Start: "672", Stop: "713"}.Canonical())
	assert.Equal(t, `frag("672_713", "APP intracellular domain")`,
		Fragment{Start: "672", Stop: "713", Description: "APP intracellular domain"}.Canonical())
}

func TestSortVariants(t *testing.T) {
	vs := []Variant{HGVS{Value: "?"}, GeneModification{Identifier: "Me"}}
	sorted := SortVariants(vs)
	assert.Equal(t, `gmod(Me)`, sorted[0].Canonical())
}

func TestResolvePmodCode(t *testing.T) {
	code, ok := ResolvePmodCode("P")
	assert.True(t, ok)
	assert.Equal(t, "Ph", code)

	code, ok = ResolvePmodCode("phosphorylation")
	assert.True(t, ok)
	assert.Equal(t, "Ph", code)

	_, ok = ResolvePmodCode("bogus")
	assert.False(t, ok)
}

func TestNormalizeAminoAcid(t *testing.T) {
	code, normalized, ok := NormalizeAminoAcid("T")
	assert.True(t, ok)
	assert.True(t, normalized)
	assert.Equal(t, "Thr", code)

	code, normalized, ok = NormalizeAminoAcid("Thr")
	assert.True(t, ok)
	assert.False(t, normalized)
	assert.Equal(t, "Thr", code)
}
