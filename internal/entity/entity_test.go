package entity

import (
	"testing"

	"github.com/pybel/belgo/internal/concept"
	"github.com/pybel/belgo/internal/variant"
	"github.com/stretchr/testify/assert"
)

func TestSimple_Canonical(t *testing.T) {
	s := Simple{Func: FunctionAbundance, Concept: concept.Concept{Namespace: "CHEBI", Name: "oxygen atom"}}
	assert.Equal(t, `a(CHEBI:"oxygen atom")`, s.Canonical())
}

func TestCentralDogmaEntity_Canonical(t *testing.T) {
	akt1 := concept.Concept{Namespace: "HGNC", Name: "AKT1"}
	p := CentralDogmaEntity{Func: FunctionProtein, Concept: akt1}
	assert.Equal(t, `p(HGNC:AKT1)`, p.Canonical())

	pos := 308
	withVariant := CentralDogmaEntity{
		Func:    FunctionProtein,
		Concept: akt1,
		VariantValues: []variant.Variant{
			variant.ProteinModification{Identifier: "Ph", AminoAcid: "Thr", Position: &pos},
		},
	}
	assert.Equal(t, `p(HGNC:AKT1, pmod(Ph, Thr, 308))`, withVariant.Canonical())

	assert.Equal(t, p.Canonical(), withVariant.Parent().Canonical())
}

func TestFusion_Canonical(t *testing.T) {
	f := Fusion{
		Func:          FunctionGene,
		Partner5Prime: concept.Concept{Namespace: "HGNC", Name: "TMPRSS2"},
		Range5Prime:   FusionRange{Reference: "c", Left: "1", Right: "79"},
		Partner3Prime: concept.Concept{Namespace: "HGNC", Name: "ERG"},
		Range3Prime:   MissingFusionRange(),
	}
	assert.Equal(t, `g(fus(HGNC:TMPRSS2, "c_1_79", HGNC:ERG, "?"))`, f.Canonical())
}

func TestListAbundance_DedupeAndSort(t *testing.T) {
	a := Simple{Func: FunctionAbundance, Concept: concept.Concept{Namespace: "CHEBI", Name: "b"}}
	b := Simple{Func: FunctionAbundance, Concept: concept.Concept{Namespace: "CHEBI", Name: "a"}}
	l := NewListAbundance(FunctionComplexAbundance, nil, []Entity{a, b, a})
	assert.Len(t, l.Members, 2)
	assert.Equal(t, `complex(a(CHEBI:a), a(CHEBI:b))`, l.Canonical())
}

func TestListAbundance_Named(t *testing.T) {
	named := concept.Concept{Namespace: "SCOMP", Name: "AP-1 Complex"}
	member := Simple{Func: FunctionProtein, Concept: concept.Concept{Namespace: "HGNC", Name: "JUN"}}
	l := NewListAbundance(FunctionComplexAbundance, &named, []Entity{member})
	assert.Equal(t, `complex(SCOMP:"AP-1 Complex", p(HGNC:JUN))`, l.Canonical())
}

func TestReaction_Canonical(t *testing.T) {
	reactant := Simple{Func: FunctionAbundance, Concept: concept.Concept{Namespace: "CHEBI", Name: "superoxide"}}
	product := Simple{Func: FunctionAbundance, Concept: concept.Concept{Namespace: "CHEBI", Name: "oxygen"}}
	r := Reaction{Reactants: []Entity{reactant}, Products: []Entity{product}}
	assert.Equal(t, `rxn(reactants(a(CHEBI:superoxide)), products(a(CHEBI:oxygen)))`, r.Canonical())
}
