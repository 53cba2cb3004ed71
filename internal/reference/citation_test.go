package reference

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCitation_Validate(t *testing.T) {
	tests := []struct {
		name     string
		citation Citation
		wantErr  error
	}{
		{"valid pubmed", Citation{Type: TypePubMed, Reference: "12345"}, nil},
		{"valid doi", Citation{Type: TypeDOI, Reference: "10.1234/x"}, nil},
		{"empty type", Citation{Reference: "12345"}, ErrEmptyType},
		{"unknown type", Citation{Type: "Bogus", Reference: "12345"}, ErrUnknownType},
		{"empty reference", Citation{Type: TypePubMed}, ErrEmptyReference},
		{"non-numeric pubmed", Citation{Type: TypePubMed, Reference: "abc"}, ErrInvalidPubMedID},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.citation.Validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestCitation_IsEmpty(t *testing.T) {
	assert.True(t, Citation{}.IsEmpty())
	assert.False(t, Citation{Type: TypePubMed, Reference: "1"}.IsEmpty())
}

func TestCitation_Namespace(t *testing.T) {
	assert.Equal(t, "pubmed", Citation{Type: TypePubMed}.Namespace())
	assert.Equal(t, "doi", Citation{Type: TypeDOI}.Namespace())
}
