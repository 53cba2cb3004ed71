package modifier

import (
	"testing"

	"github.com/pybel/belgo/internal/concept"
	"github.com/stretchr/testify/assert"
)

func TestIsZero(t *testing.T) {
	assert.True(t, Modifier{}.IsZero())
	assert.False(t, Degradation().IsZero())

	loc := concept.Concept{Namespace: "GOCC", Name: "nucleus"}
	assert.False(t, Modifier{Location: &loc}.IsZero())
}

func TestSecretion(t *testing.T) {
	m := Secretion()
	assert.Equal(t, KindTranslocation, m.Kind)
	assert.Equal(t, IntracellularCompartment, *m.FromLoc)
	assert.Equal(t, ExtracellularCompartment, *m.ToLoc)
}

func TestWithLocation(t *testing.T) {
	m := Degradation().WithLocation(concept.Concept{Namespace: "GOCC", Name: "nucleus"})
	assert.Equal(t, KindDegradation, m.Kind)
	assert.NotNil(t, m.Location)
}

func TestLegacyActivityFunction(t *testing.T) {
	key, ok := LegacyActivityFunction["kinaseActivity"]
	assert.True(t, ok)
	assert.Equal(t, "kin", key)
	_, ok = DefaultActivities[key]
	assert.True(t, ok)
}
