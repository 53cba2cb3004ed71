package parser

import (
	"strings"

	"github.com/pybel/belgo/internal/edge"
	"github.com/pybel/belgo/internal/entity"
	"github.com/pybel/belgo/internal/modifier"
	"github.com/pybel/belgo/internal/warning"
)

// statementEdge is one fully resolved (source, relation, target) triple
// produced while parsing a statement line, with its endpoint modifiers
// (spec.md §4.4.2). A plain statement produces zero or one of these; a
// nested statement (spec.md §9, grounded on the original implementation's
// handle_nested_relation) produces exactly two, sharing the outer
// statement's citation/evidence/annotation context.
type statementEdge struct {
	Source         entity.Entity
	SourceModifier *modifier.Modifier
	Relation       edge.Relation
	Target         entity.Entity
	TargetModifier *modifier.Modifier
}

// parsedStatement is the result of parsing one statement-level logical
// line: its leading term (always present), and the edges it asserts.
type parsedStatement struct {
	Source         entity.Entity
	SourceModifier *modifier.Modifier
	Edges          []statementEdge
}

// splitTopLevel splits s on whitespace outside parentheses and
// double-quoted spans, so a term's internal arguments (which may contain
// spaces) are never split across tokens.
func splitTopLevel(s string) []string {
	var tokens []string
	var current strings.Builder
	depth := 0
	inQuote := false

	flush := func() {
		if current.Len() > 0 {
			tokens = append(tokens, current.String())
			current.Reset()
		}
	}

	for _, r := range s {
		switch {
		case r == '"':
			inQuote = !inQuote
			current.WriteRune(r)
		case r == '(' && !inQuote:
			depth++
			current.WriteRune(r)
		case r == ')' && !inQuote:
			depth--
			current.WriteRune(r)
		case r == ' ' && !inQuote && depth == 0:
			flush()
		default:
			current.WriteRune(r)
		}
	}
	flush()
	return tokens
}

// parseStatementLine parses one statement-level logical line (spec.md
// §4.4's `statement = term (relation term|nested_statement)?`). depth is
// 0 for a top-level call and 1 inside a nested statement; nesting deeper
// than that is always rejected, matching the original implementation's
// "one level deep" nested-relation grammar.
func (p *termParser) parseStatementLine(raw string, depth int) (*parsedStatement, error) {
	tokens := splitTopLevel(strings.TrimSpace(raw))
	if len(tokens) == 0 {
		return nil, warning.New(p.line, raw, warning.KindBelSyntax, "empty statement")
	}

	srcEntity, srcMod, err := p.parseEndpoint(tokens[0])
	if err != nil {
		return nil, err
	}
	if len(tokens) == 1 {
		return &parsedStatement{Source: srcEntity, SourceModifier: srcMod}, nil
	}

	relation, ok := edge.ResolveRelation(tokens[1])
	if !ok {
		return nil, warning.New(p.line, raw, warning.KindBelSyntax, "unrecognized relation: "+tokens[1])
	}

	objectRaw := strings.TrimSpace(strings.Join(tokens[2:], " "))
	if strings.HasPrefix(objectRaw, "(") && strings.HasSuffix(objectRaw, ")") {
		return p.parseNestedObject(raw, srcEntity, srcMod, relation, objectRaw, depth)
	}

	tgtEntity, tgtMod, err := p.parseEndpoint(objectRaw)
	if err != nil {
		return nil, err
	}
	return &parsedStatement{
		Source: srcEntity, SourceModifier: srcMod,
		Edges: []statementEdge{{
			Source: srcEntity, SourceModifier: srcMod,
			Relation: relation,
			Target:   tgtEntity, TargetModifier: tgtMod,
		}},
	}, nil
}

// parseNestedObject handles the `relation (subject relation object)` form
// (spec.md §4.2's `allow_nested`, §9). When allowed, it expands to two
// edges: outer.source --outer.relation--> inner.source, and
// inner.source --inner.relation--> inner.target, matching the original
// implementation's handle_nested_relation.
func (p *termParser) parseNestedObject(raw string, srcEntity entity.Entity, srcMod *modifier.Modifier, relation edge.Relation, objectRaw string, depth int) (*parsedStatement, error) {
	if !p.options.AllowNested || depth >= 1 {
		return nil, warning.New(p.line, raw, warning.KindNestedRelation, "nested statement not allowed")
	}

	inner := strings.TrimSpace(objectRaw[1 : len(objectRaw)-1])
	nested, err := p.parseStatementLine(inner, depth+1)
	if err != nil {
		return nil, err
	}
	if len(nested.Edges) != 1 {
		return nil, warning.New(p.line, raw, warning.KindNestedRelation, "nested object must itself be a relation statement")
	}
	innerEdge := nested.Edges[0]

	return &parsedStatement{
		Source: srcEntity, SourceModifier: srcMod,
		Edges: []statementEdge{
			{
				Source: srcEntity, SourceModifier: srcMod,
				Relation: relation,
				Target:   innerEdge.Source, TargetModifier: innerEdge.SourceModifier,
			},
			innerEdge,
		},
	}, nil
}
