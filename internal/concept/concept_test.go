package concept

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		concept Concept
		wantErr error
	}{
		{
			name:    "valid with identifier only",
			concept: Concept{Namespace: "HGNC", Identifier: "391"},
			wantErr: nil,
		},
		{
			name:    "valid with name only",
			concept: Concept{Namespace: "HGNC", Name: "AKT1"},
			wantErr: nil,
		},
		{
			name:    "missing namespace",
			concept: Concept{Name: "AKT1"},
			wantErr: ErrEmptyNamespace,
		},
		{
			name:    "missing identity",
			concept: Concept{Namespace: "HGNC"},
			wantErr: ErrMissingIdentity,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.concept.Validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestPreferred(t *testing.T) {
	assert.Equal(t, "391", Concept{Namespace: "HGNC", Identifier: "391", Name: "AKT1"}.Preferred())
	assert.Equal(t, "AKT1", Concept{Namespace: "HGNC", Name: "AKT1"}.Preferred())
}
