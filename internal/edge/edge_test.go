package edge

import (
	"testing"

	"github.com/pybel/belgo/internal/concept"
	"github.com/pybel/belgo/internal/modifier"
	"github.com/pybel/belgo/internal/reference"
	"github.com/stretchr/testify/assert"
)

func TestEdge_Validate(t *testing.T) {
	tests := []struct {
		name    string
		edge    Edge
		wantErr error
	}{
		{
			name: "qualified with citation and evidence",
			edge: Edge{
				Relation: RelationIncreases,
				Citation: reference.Citation{Type: reference.TypePubMed, Reference: "12345"},
				Evidence: "some evidence",
			},
			wantErr: nil,
		},
		{
			name:    "unqualified needs neither",
			edge:    Edge{Relation: RelationHasVariant},
			wantErr: nil,
		},
		{
			name:    "qualified missing citation",
			edge:    Edge{Relation: RelationIncreases, Evidence: "text"},
			wantErr: ErrMissingCitation,
		},
		{
			name: "qualified missing evidence",
			edge: Edge{
				Relation: RelationIncreases,
				Citation: reference.Citation{Type: reference.TypePubMed, Reference: "12345"},
			},
			wantErr: ErrMissingEvidence,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.edge.Validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestEdge_Key_Deterministic(t *testing.T) {
	build := func() Edge {
		e := Edge{
			Relation:   RelationIncreases,
			Citation:   reference.Citation{Type: reference.TypePubMed, Reference: "12345"},
			Evidence:   "text",
			SourceHash: "aaa",
			TargetHash: "bbb",
		}
		e.AddAnnotation("CellLine", "MCF-7")
		e.AddAnnotation("Disease", "cancer")
		e.AddAnnotation("Disease", "breast cancer")
		return e
	}

	k1, err := build().Key()
	assert.NoError(t, err)
	k2, err := build().Key()
	assert.NoError(t, err)
	assert.Equal(t, k1, k2)
}

func TestEdge_Key_ExcludesLine(t *testing.T) {
	base := Edge{
		Relation:   RelationIncreases,
		Citation:   reference.Citation{Type: reference.TypePubMed, Reference: "12345"},
		Evidence:   "text",
		SourceHash: "aaa",
		TargetHash: "bbb",
	}
	withLine := base
	withLine.Line = 42

	k1, err := base.Key()
	assert.NoError(t, err)
	k2, err := withLine.Key()
	assert.NoError(t, err)
	assert.Equal(t, k1, k2)
}

func TestEdge_Key_DistinguishesSourceModifierLocation(t *testing.T) {
	base := Edge{
		Relation:   RelationIncreases,
		Citation:   reference.Citation{Type: reference.TypePubMed, Reference: "12345"},
		Evidence:   "text",
		SourceHash: "aaa",
		TargetHash: "bbb",
	}
	located := base
	loc := concept.Concept{Namespace: "GOCC", Name: "nucleus"}
	located.SourceModifier = &modifier.Modifier{Location: &loc}

	k1, err := base.Key()
	assert.NoError(t, err)
	k2, err := located.Key()
	assert.NoError(t, err)
	assert.NotEqual(t, k1, k2)
}
