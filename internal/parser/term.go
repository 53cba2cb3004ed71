package parser

import (
	"strings"

	"github.com/pybel/belgo/internal/concept"
	"github.com/pybel/belgo/internal/entity"
	"github.com/pybel/belgo/internal/graph"
	"github.com/pybel/belgo/internal/variant"
	"github.com/pybel/belgo/internal/warning"
)

// nakedNamePattern is approximated by isBareName below rather than a
// compiled regexp, since the accepted character class (spec.md §4.4.1's
// `[A-Za-z_][A-Za-z_0-9:.\-]*`) is small enough to check by hand without
// pulling regexp into the hot path of every term.
func isBareName(s string) bool {
	if s == "" {
		return false
	}
	first := s[0]
	if !(first == '_' || (first >= 'a' && first <= 'z') || (first >= 'A' && first <= 'Z')) {
		return false
	}
	for i := 1; i < len(s); i++ {
		c := s[i]
		ok := c == '_' || c == ':' || c == '.' || c == '-' ||
			(c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9')
		if !ok {
			return false
		}
	}
	return true
}

// parseConceptToken parses a "namespace:name" token, where name may be
// quoted or bare (spec.md §4.4.1's simple-term production). allowNaked
// permits a namespace-less bare name, recording a NakedName warning.
func (p *termParser) parseConceptToken(tok string) (concept.Concept, error) {
	tok = strings.TrimSpace(tok)
	idx := strings.Index(tok, ":")
	if idx == -1 {
		if !p.options.AllowNakedNames {
			return concept.Concept{}, warning.New(p.line, tok, warning.KindNakedName, "name has no namespace prefix")
		}
		p.warn(warning.New(p.line, tok, warning.KindNakedName, "naked name accepted under allow_naked_names"))
		return concept.Concept{Namespace: "", Name: unquote(tok)}, nil
	}
	ns := strings.TrimSpace(tok[:idx])
	name := unquote(strings.TrimSpace(tok[idx+1:]))
	if !isBareName(name) && tok[idx+1] != '"' {
		p.warn(warning.New(p.line, tok, warning.KindBelSyntax, "bare name contains characters outside the accepted set"))
	}

	if p.namespaces != nil {
		if def, declared := p.namespaces[ns]; declared {
			if !def.Validator.Contains(name, "") {
				p.warn(warning.Newf(p.line, tok, warning.KindMissingNamespaceName, "name %q not found in namespace %s", name, ns))
			}
		} else {
			p.warn(warning.Newf(p.line, tok, warning.KindUndefinedNamespace, "namespace %s is not declared", ns))
		}
	}

	return concept.Concept{Namespace: ns, Name: name}, nil
}

// termParser holds the per-compile-call state needed while parsing one
// term: the current line number (for warnings) and the active parsing
// options (spec.md §4.2's parsing-mode flags).
type termParser struct {
	line       int
	options    Options
	warnFn     func(warning.Warning)
	namespaces map[string]graph.ResourceDef
}

func (p *termParser) warn(w warning.Warning) {
	if p.warnFn != nil {
		p.warnFn(w)
	}
}

// ParseTerm parses a BEL term string into an Entity (spec.md §4.4.1). A
// loc(...) decoration inside raw has no modifier slot to attach to in
// this context (raw is a list/reaction member here, not a statement
// endpoint), so it is reported as a warning rather than silently lost;
// use parseTermWithLocation from an endpoint-parsing context instead.
func (p *termParser) ParseTerm(raw string) (entity.Entity, error) {
	e, loc, err := p.parseTermWithLocation(raw)
	if err != nil {
		return nil, err
	}
	if loc != nil {
		p.warn(warning.New(p.line, raw, warning.KindBelSyntax, "loc() is only meaningful on a statement endpoint; ignored here"))
	}
	return e, nil
}

// parseTermWithLocation is ParseTerm plus the loc(...) decoration found
// directly inside a simple or central-dogma term's own argument list
// (spec.md §4.4.1's "attaches to the participant on the edge side it
// appears"). Callers that can attach the result to a Modifier (endpoint
// parsing in modifier.go) should use this instead of ParseTerm.
func (p *termParser) parseTermWithLocation(raw string) (entity.Entity, *concept.Concept, error) {
	name, body, ok := splitCall(raw)
	if !ok {
		return nil, nil, warning.New(p.line, raw, warning.KindBelSyntax, "expected function(...) term syntax")
	}

	fn, ok := ResolveFunction(name)
	if !ok {
		return nil, nil, warning.New(p.line, raw, warning.KindBelSyntax, "unrecognized function: "+name)
	}

	switch fn {
	case entity.FunctionComplexAbundance, entity.FunctionCompositeAbundance:
		e, err := p.parseListTerm(fn, body)
		return e, nil, err
	case entity.FunctionReaction:
		e, err := p.parseReactionTerm(body)
		return e, nil, err
	case entity.FunctionGene, entity.FunctionRna, entity.FunctionMicroRna, entity.FunctionProtein:
		return p.parseCentralDogmaTerm(fn, body, raw)
	default:
		return p.parseSimpleTerm(fn, body)
	}
}

// parseLocationArg parses a "loc(namespace:name)" token. ok is false when
// tok is not a loc() call at all (the caller should try another
// interpretation instead of treating that as an error).
func (p *termParser) parseLocationArg(tok string) (concept.Concept, bool, error) {
	name, body, ok := splitCall(tok)
	if !ok || name != "loc" {
		return concept.Concept{}, false, nil
	}
	c, err := p.parseConceptToken(body)
	return c, true, err
}

func (p *termParser) parseSimpleTerm(fn entity.Function, body string) (entity.Entity, *concept.Concept, error) {
	args := smartSplit(body)
	if len(args) == 0 {
		return nil, nil, warning.New(p.line, body, warning.KindInvalidFunctionSemantic, "empty term arguments")
	}
	c, err := p.parseConceptToken(args[0])
	if err != nil {
		return nil, nil, err
	}

	var loc *concept.Concept
	for _, tok := range args[1:] {
		lc, isLoc, err := p.parseLocationArg(tok)
		if err != nil {
			return nil, nil, err
		}
		if isLoc {
			loc = &lc
			continue
		}
		p.warn(warning.New(p.line, tok, warning.KindInvalidFunctionSemantic, "unexpected argument on simple term: "+tok))
	}

	return entity.Simple{Func: fn, Concept: c}, loc, nil
}

func (p *termParser) parseCentralDogmaTerm(fn entity.Function, body, raw string) (entity.Entity, *concept.Concept, error) {
	// fus(...) as the sole or first argument means this is a fusion term
	// (spec.md §4.4.1's fusion production), e.g. g(fus(HGNC:TMPRSS2, ...)).
	if strings.HasPrefix(strings.TrimSpace(body), "fus(") {
		e, err := p.parseFusionTerm(fn, strings.TrimSpace(body))
		return e, nil, err
	}

	args := smartSplit(body)
	if len(args) == 0 {
		return nil, nil, warning.New(p.line, raw, warning.KindInvalidFunctionSemantic, "empty term arguments")
	}
	c, err := p.parseConceptToken(args[0])
	if err != nil {
		return nil, nil, err
	}

	var variants []variant.Variant
	var loc *concept.Concept
	for _, tok := range args[1:] {
		lc, isLoc, err := p.parseLocationArg(tok)
		if err != nil {
			return nil, nil, err
		}
		if isLoc {
			loc = &lc
			continue
		}
		v, err := p.parseVariantToken(tok)
		if err != nil {
			p.warn(toWarning(err, p.line, tok))
			continue
		}
		variants = append(variants, v)
	}

	return entity.CentralDogmaEntity{Func: fn, Concept: c, VariantValues: variants}, loc, nil
}

func (p *termParser) parseListTerm(fn entity.Function, body string) (entity.Entity, error) {
	args := smartSplit(body)
	if len(args) == 0 {
		return nil, warning.New(p.line, body, warning.KindInvalidFunctionSemantic, "empty complex/composite term")
	}

	// A single argument with no nested '(' is a named complex reference
	// (spec.md §4.4.1's "named complex complex(namespace:name)").
	if len(args) == 1 && !strings.Contains(args[0], "(") {
		named, err := p.parseConceptToken(args[0])
		if err != nil {
			return nil, err
		}
		return entity.NewListAbundance(fn, &named, nil), nil
	}

	members := make([]entity.Entity, 0, len(args))
	for _, tok := range args {
		member, err := p.ParseTerm(tok)
		if err != nil {
			p.warn(toWarning(err, p.line, tok))
			continue
		}
		members = append(members, member)
	}
	return entity.NewListAbundance(fn, nil, members), nil
}

func (p *termParser) parseReactionTerm(body string) (entity.Entity, error) {
	args := smartSplit(body)
	var reactants, products []entity.Entity
	for _, tok := range args {
		name, inner, ok := splitCall(tok)
		if !ok {
			continue
		}
		members := make([]entity.Entity, 0)
		for _, m := range smartSplit(inner) {
			e, err := p.ParseTerm(m)
			if err != nil {
				p.warn(toWarning(err, p.line, m))
				continue
			}
			members = append(members, e)
		}
		switch name {
		case "reactants":
			reactants = members
		case "products":
			products = members
		}
	}
	return entity.Reaction{Reactants: reactants, Products: products}, nil
}

func (p *termParser) parseFusionTerm(fn entity.Function, body string) (entity.Entity, error) {
	_, inner, ok := splitCall(body)
	if !ok {
		return nil, warning.New(p.line, body, warning.KindBelSyntax, "malformed fusion term")
	}
	args := smartSplit(inner)
	if len(args) != 4 {
		return nil, warning.New(p.line, body, warning.KindBelSyntax, "fusion requires exactly 4 arguments")
	}

	p5, err := p.parseConceptToken(args[0])
	if err != nil {
		return nil, err
	}
	r5 := parseFusionRange(unquote(args[1]))
	p3, err := p.parseConceptToken(args[2])
	if err != nil {
		return nil, err
	}
	r3 := parseFusionRange(unquote(args[3]))

	return entity.Fusion{
		Func:          fn,
		Partner5Prime: p5,
		Range5Prime:   r5,
		Partner3Prime: p3,
		Range3Prime:   r3,
	}, nil
}

// parseFusionRange parses "?" or "<ref>_<left>_<right>" (spec.md §4.4.1).
func parseFusionRange(s string) entity.FusionRange {
	if s == "?" {
		return entity.MissingFusionRange()
	}
	parts := strings.SplitN(s, "_", 3)
	if len(parts) != 3 {
		return entity.MissingFusionRange()
	}
	return entity.FusionRange{Reference: parts[0], Left: parts[1], Right: parts[2]}
}

// toWarning adapts any error (including a plain error from smartSplit
// helpers) into a warning.Warning so that a malformed nested term
// degrades to a warning instead of aborting the whole enclosing term.
func toWarning(err error, line int, original string) warning.Warning {
	if w, ok := err.(warning.Warning); ok {
		return w
	}
	return warning.New(line, original, warning.KindBelSyntax, err.Error())
}
