package edge

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveRelation(t *testing.T) {
	tests := []struct {
		raw  string
		want Relation
	}{
		{"increases", RelationIncreases},
		{"->", RelationIncreases},
		{"=>", RelationDirectlyIncreases},
		{"analogous", RelationAnalogous},
		{"analogousTo", RelationAnalogous},
		{"cnc", RelationCausesNoChange},
	}
	for _, tt := range tests {
		got, ok := ResolveRelation(tt.raw)
		assert.True(t, ok, tt.raw)
		assert.Equal(t, tt.want, got)
	}
}

func TestResolveRelation_Unrecognized(t *testing.T) {
	_, ok := ResolveRelation("notARelation")
	assert.False(t, ok)
}
