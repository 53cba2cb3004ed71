package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pybel/belgo/internal/modifier"
	"github.com/pybel/belgo/internal/warning"
)

func TestParseEndpoint_BareTerm(t *testing.T) {
	p := newTermParser()
	e, m, err := p.parseEndpoint(`p(HGNC:AKT1)`)
	require.NoError(t, err)
	assert.Nil(t, m)
	assert.Equal(t, `p(HGNC:AKT1)`, e.Canonical())
}

func TestParseEndpoint_Activity(t *testing.T) {
	p := newTermParser()
	e, m, err := p.parseEndpoint(`act(p(HGNC:AKT1), ma(GO:"kinase activity"))`)
	require.NoError(t, err)
	require.NotNil(t, m)
	assert.Equal(t, modifier.KindActivity, m.Kind)
	require.NotNil(t, m.Effect)
	assert.Equal(t, "kinase activity", m.Effect.Name)
	assert.Equal(t, `p(HGNC:AKT1)`, e.Canonical())
}

func TestParseEndpoint_BareActivityHasNilEffect(t *testing.T) {
	p := newTermParser()
	_, m, err := p.parseEndpoint(`act(p(HGNC:AKT1))`)
	require.NoError(t, err)
	require.NotNil(t, m)
	assert.Nil(t, m.Effect)
}

func TestParseEndpoint_LegacyActivityNormalizes(t *testing.T) {
	var warnings []warning.Warning
	p := newTermParser()
	p.warnFn = func(w warning.Warning) { warnings = append(warnings, w) }

	e, m, err := p.parseEndpoint(`kin(p(HGNC:AKT1))`)
	require.NoError(t, err)
	require.NotNil(t, m)
	assert.Equal(t, modifier.KindActivity, m.Kind)
	require.NotNil(t, m.Effect)
	assert.Equal(t, "kinase activity", m.Effect.Name)
	assert.Equal(t, `p(HGNC:AKT1)`, e.Canonical())

	require.Len(t, warnings, 1)
	assert.Equal(t, warning.KindDebug, warnings[0].Kind)
	assert.Equal(t, warning.CodeLegacyActivity, warnings[0].Code)
}

func TestParseEndpoint_TranslocationWithBothLocations(t *testing.T) {
	p := newTermParser()
	_, m, err := p.parseEndpoint(`tloc(p(HGNC:AKT1), fromLoc(GOCC:cytoplasm), toLoc(GOCC:nucleus))`)
	require.NoError(t, err)
	require.NotNil(t, m)
	assert.Equal(t, modifier.KindTranslocation, m.Kind)
	require.NotNil(t, m.FromLoc)
	require.NotNil(t, m.ToLoc)
	assert.Equal(t, "cytoplasm", m.FromLoc.Name)
	assert.Equal(t, "nucleus", m.ToLoc.Name)
}

func TestParseEndpoint_TranslocationMissingLocationIsFatalByDefault(t *testing.T) {
	p := newTermParser()
	_, _, err := p.parseEndpoint(`tloc(p(HGNC:AKT1), fromLoc(GOCC:cytoplasm))`)
	require.Error(t, err)
	w, ok := err.(warning.Warning)
	require.True(t, ok)
	assert.Equal(t, warning.KindMalformedTranslocation, w.Kind)
}

func TestParseEndpoint_TranslocationMissingLocationAllowedWhenPermitted(t *testing.T) {
	p := newTermParser()
	p.options.DisallowUnqualifiedTranslocations = false
	_, m, err := p.parseEndpoint(`tloc(p(HGNC:AKT1), fromLoc(GOCC:cytoplasm))`)
	require.NoError(t, err)
	require.NotNil(t, m)
	assert.Nil(t, m.ToLoc)
}

func TestParseEndpoint_Secretion(t *testing.T) {
	p := newTermParser()
	_, m, err := p.parseEndpoint(`sec(p(HGNC:IL6))`)
	require.NoError(t, err)
	require.NotNil(t, m)
	assert.Equal(t, modifier.KindTranslocation, m.Kind)
	assert.Equal(t, modifier.ExtracellularCompartment.Name, m.ToLoc.Name)
}

func TestParseEndpoint_CellSurfaceDisplay(t *testing.T) {
	p := newTermParser()
	_, m, err := p.parseEndpoint(`surf(p(HGNC:EGFR))`)
	require.NoError(t, err)
	require.NotNil(t, m)
	assert.Equal(t, modifier.CellSurfaceCompartment.Name, m.ToLoc.Name)
}

func TestParseEndpoint_Degradation(t *testing.T) {
	p := newTermParser()
	_, m, err := p.parseEndpoint(`deg(p(HGNC:AKT1))`)
	require.NoError(t, err)
	require.NotNil(t, m)
	assert.Equal(t, modifier.KindDegradation, m.Kind)
}

func TestParseEndpoint_BareLocationBecomesModifier(t *testing.T) {
	p := newTermParser()
	e, m, err := p.parseEndpoint(`p(HGNC:AKT1, loc(GOCC:nucleus))`)
	require.NoError(t, err)
	require.NotNil(t, m)
	assert.Equal(t, modifier.KindNone, m.Kind)
	require.NotNil(t, m.Location)
	assert.Equal(t, "nucleus", m.Location.Name)
	assert.Equal(t, `p(HGNC:AKT1)`, e.Canonical())
}

func TestParseEndpoint_ActivityWithLocationOnInnerTerm(t *testing.T) {
	p := newTermParser()
	_, m, err := p.parseEndpoint(`act(p(HGNC:AKT1, loc(GOCC:nucleus)), ma(GO:"kinase activity"))`)
	require.NoError(t, err)
	require.NotNil(t, m)
	assert.Equal(t, modifier.KindActivity, m.Kind)
	require.NotNil(t, m.Location)
	assert.Equal(t, "nucleus", m.Location.Name)
}

func TestParseTerm_LocationOnAMemberTermWarnsAndIsDropped(t *testing.T) {
	var warnings []warning.Warning
	p := newTermParser()
	p.warnFn = func(w warning.Warning) { warnings = append(warnings, w) }

	e, err := p.ParseTerm(`p(HGNC:AKT1, loc(GOCC:nucleus))`)
	require.NoError(t, err)
	assert.Equal(t, `p(HGNC:AKT1)`, e.Canonical())
	require.Len(t, warnings, 1)
	assert.Equal(t, warning.KindBelSyntax, warnings[0].Kind)
}
