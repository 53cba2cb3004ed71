package parser

import (
	"github.com/pybel/belgo/internal/entity"
	"github.com/pybel/belgo/internal/modifier"
	"github.com/pybel/belgo/internal/warning"
)

// legacyActivityFunctions is the set of bare legacy activity function
// names accepted as a term-endpoint wrapper, e.g. kin(p(HGNC:AKT1))
// instead of act(p(HGNC:AKT1), ma(kin)) (spec.md §4.4.2, warning 001).
var legacyActivityFunctions = modifier.LegacyActivityFunction

// parseEndpoint parses one statement endpoint: a bare term, or a term
// wrapped in a subject/object modifier (act/tloc/sec/surf/deg, or a
// legacy bare activity function) per spec.md §4.4.2.
func (p *termParser) parseEndpoint(tok string) (entity.Entity, *modifier.Modifier, error) {
	name, body, ok := splitCall(tok)
	if !ok {
		return nil, nil, warning.New(p.line, tok, warning.KindBelSyntax, "expected a term")
	}

	switch {
	case name == "act":
		return p.parseActivity(tok, body)
	case name == "tloc":
		return p.parseTranslocation(tok, body)
	case name == "sec":
		return p.parseShorthandTranslocation(tok, body, modifier.Secretion())
	case name == "surf":
		return p.parseShorthandTranslocation(tok, body, modifier.CellSurfaceDisplay())
	case name == "deg":
		return p.parseDegradation(tok, body)
	case legacyActivityFunctions[name] != "":
		return p.parseLegacyActivity(tok, name, body)
	default:
		e, loc, err := p.parseTermWithLocation(tok)
		if err != nil {
			return nil, nil, err
		}
		if loc == nil {
			return e, nil, nil
		}
		m := modifier.Modifier{Location: loc}
		return e, &m, nil
	}
}

// parseActivity parses act(term[, ma(activity)]) (spec.md §4.4.2).
func (p *termParser) parseActivity(tok, body string) (entity.Entity, *modifier.Modifier, error) {
	args := smartSplit(body)
	if len(args) == 0 {
		return nil, nil, warning.New(p.line, tok, warning.KindBelSyntax, "act() requires a term argument")
	}
	inner, loc, err := p.parseTermWithLocation(args[0])
	if err != nil {
		return nil, nil, err
	}
	if len(args) == 1 {
		m := modifier.Activity(nil)
		if loc != nil {
			m = m.WithLocation(*loc)
		}
		return inner, &m, nil
	}

	maName, maBody, ok := splitCall(args[1])
	if !ok || maName != "ma" {
		return nil, nil, warning.New(p.line, tok, warning.KindBelSyntax, "act() effect must be ma(activity)")
	}
	effect, err := p.parseConceptToken(maBody)
	if err != nil {
		return nil, nil, err
	}
	m := modifier.Activity(&effect)
	if loc != nil {
		m = m.WithLocation(*loc)
	}
	return inner, &m, nil
}

// parseLegacyActivity parses a legacy bare activity function such as
// kin(term), normalizing it to act(term, ma(<DefaultActivities[name]>))
// and emitting the code-001 Debug trace (spec.md §4.4.2, §7.2).
func (p *termParser) parseLegacyActivity(tok, name, body string) (entity.Entity, *modifier.Modifier, error) {
	inner, loc, err := p.parseTermWithLocation(body)
	if err != nil {
		return nil, nil, err
	}
	key := legacyActivityFunctions[name]
	effect, ok := modifier.DefaultActivities[key]
	if !ok {
		return nil, nil, warning.New(p.line, tok, warning.KindBelSyntax, "unrecognized legacy activity function: "+name)
	}
	p.warn(warning.Debug(p.line, tok, warning.CodeLegacyActivity, "normalized legacy "+name+"() to act(term, ma("+key+"))"))
	m := modifier.Activity(&effect)
	if loc != nil {
		m = m.WithLocation(*loc)
	}
	return inner, &m, nil
}

// parseTranslocation parses tloc(term, fromLoc(ns:name), toLoc(ns:name))
// (spec.md §4.4.2). A tloc() missing either fromLoc or toLoc is a
// MalformedTranslocation error when p.options.DisallowUnqualifiedTranslocations.
func (p *termParser) parseTranslocation(tok, body string) (entity.Entity, *modifier.Modifier, error) {
	args := smartSplit(body)
	if len(args) == 0 {
		return nil, nil, warning.New(p.line, tok, warning.KindBelSyntax, "tloc() requires a term argument")
	}
	inner, loc, err := p.parseTermWithLocation(args[0])
	if err != nil {
		return nil, nil, err
	}

	m := modifier.Modifier{Kind: modifier.KindTranslocation, Location: loc}
	for _, arg := range args[1:] {
		locName, locBody, ok := splitCall(arg)
		if !ok {
			continue
		}
		c, err := p.parseConceptToken(locBody)
		if err != nil {
			return nil, nil, err
		}
		switch locName {
		case "fromLoc":
			m.FromLoc = &c
		case "toLoc":
			m.ToLoc = &c
		}
	}

	if (m.FromLoc == nil || m.ToLoc == nil) && p.options.DisallowUnqualifiedTranslocations {
		return nil, nil, warning.New(p.line, tok, warning.KindMalformedTranslocation, "tloc() requires both fromLoc and toLoc")
	}

	return inner, &m, nil
}

// parseShorthandTranslocation parses sec(term)/surf(term), the fixed
// compartment shorthand translocations (spec.md §4.4.2).
func (p *termParser) parseShorthandTranslocation(tok, body string, fixed modifier.Modifier) (entity.Entity, *modifier.Modifier, error) {
	args := smartSplit(body)
	if len(args) == 0 {
		return nil, nil, warning.New(p.line, tok, warning.KindBelSyntax, "expects a term argument")
	}
	inner, loc, err := p.parseTermWithLocation(args[0])
	if err != nil {
		return nil, nil, err
	}
	m := fixed
	if loc != nil {
		m = m.WithLocation(*loc)
	}
	return inner, &m, nil
}

// parseDegradation parses deg(term) (spec.md §4.4.2).
func (p *termParser) parseDegradation(tok, body string) (entity.Entity, *modifier.Modifier, error) {
	args := smartSplit(body)
	if len(args) == 0 {
		return nil, nil, warning.New(p.line, tok, warning.KindBelSyntax, "deg() requires a term argument")
	}
	inner, loc, err := p.parseTermWithLocation(args[0])
	if err != nil {
		return nil, nil, err
	}
	m := modifier.Degradation()
	if loc != nil {
		m = m.WithLocation(*loc)
	}
	return inner, &m, nil
}
