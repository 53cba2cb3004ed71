// Package parser implements the BEL Metadata & Control Parser (spec.md
// §4.2) and the BEL Term & Relation Parser (spec.md §4.4): the
// stateful, line-at-a-time driver that turns internal/lexer's logical
// lines into internal/graph mutations.
package parser

import (
	"context"
	"errors"
	"io"
	"strings"

	"github.com/google/uuid"

	"github.com/pybel/belgo/internal/compileerr"
	"github.com/pybel/belgo/internal/config"
	"github.com/pybel/belgo/internal/edge"
	"github.com/pybel/belgo/internal/entity"
	"github.com/pybel/belgo/internal/graph"
	"github.com/pybel/belgo/internal/lexer"
	"github.com/pybel/belgo/internal/modifier"
	"github.com/pybel/belgo/internal/reference"
	"github.com/pybel/belgo/internal/resolver"
	"github.com/pybel/belgo/internal/warning"
)

// Options is the compiler's five parsing-mode flags (spec.md §6.4),
// reusing internal/config's single definition instead of duplicating it.
type Options = config.Options

// CompileResult is the output of one Compile call: the constructed graph
// plus a run ID for caller-side log correlation (SPEC_FULL.md's
// github.com/google/uuid wiring; purely diagnostic, never affects
// hashing or graph content).
type CompileResult struct {
	Graph *graph.Graph
	RunID string
}

// compiler holds the state threaded through one compilation (spec.md
// §3.4's "parser context... has the lifecycle of one compilation").
type compiler struct {
	options  Options
	graph    *graph.Graph
	ctx      *parseContext
	resolver *resolver.Resolver
	term     *termParser
	line     int
}

// Compile parses r as a BEL script and returns the resulting graph
// (spec.md §6.4's `compile(lines, options) -> Graph`). res may be nil if
// the document defines no URL-backed namespaces/annotations; DEFINE ... AS
// LIST and AS PATTERN need no resolver, while DEFINE ... AS URL against a
// nil resolver fails fatally with ErrResourceUnavailable.
func Compile(ctx context.Context, r io.Reader, options Options, res *resolver.Resolver) (*CompileResult, error) {
	lines, lexWarnings := lexer.Lex(r)

	g := graph.New()
	for _, w := range lexWarnings {
		g.Warn(w)
	}

	c := &compiler{
		options:  options,
		graph:    g,
		ctx:      newContext(),
		resolver: res,
	}
	c.term = &termParser{options: options, warnFn: g.Warn, namespaces: g.Namespaces}

	for _, line := range lines {
		if line.Debug {
			continue
		}
		select {
		case <-ctx.Done():
			return nil, compileerr.New(line.Number, compileerr.ErrCancelled, "%s", ctx.Err())
		default:
		}

		c.line = line.Number
		c.term.line = line.Number
		if err := c.dispatchLine(ctx, line.Text); err != nil {
			var fatal *compileerr.Error
			if errors.As(err, &fatal) {
				return nil, fatal
			}
			return nil, err
		}
	}

	if err := c.checkMandatoryMetadata(); err != nil {
		return nil, err
	}

	return &CompileResult{Graph: g, RunID: uuid.New().String()}, nil
}

// checkMandatoryMetadata enforces spec.md §4.2's "Name and Version are
// mandatory — absence is a fatal error emitted after EOF."
func (c *compiler) checkMandatoryMetadata() error {
	if c.graph.Metadata.Name == "" || c.graph.Metadata.Version == "" {
		return compileerr.New(0, compileerr.ErrMissingDocumentMetadata, "SET DOCUMENT Name and Version are required")
	}
	return nil
}

// dispatchLine recognizes the leading keyword of one logical line and
// routes it to the matching control-directive handler, or to statement
// parsing if none match (spec.md §4.2's dispatch table).
func (c *compiler) dispatchLine(ctx context.Context, raw string) error {
	trimmed := strings.TrimSpace(raw)
	switch {
	case strings.HasPrefix(trimmed, "SET DOCUMENT "):
		return c.handleSetDocument(trimmed[len("SET DOCUMENT "):])
	case strings.HasPrefix(trimmed, "DEFINE NAMESPACE "):
		return c.handleDefine(ctx, "NAMESPACE", trimmed[len("DEFINE NAMESPACE "):])
	case strings.HasPrefix(trimmed, "DEFINE ANNOTATION "):
		return c.handleDefine(ctx, "ANNOTATION", trimmed[len("DEFINE ANNOTATION "):])
	case strings.HasPrefix(trimmed, "SET STATEMENT_GROUP"):
		return c.handleSetStatementGroup(trimmed[len("SET STATEMENT_GROUP"):])
	case strings.HasPrefix(trimmed, "SET Citation"):
		return c.handleSetCitation(trimmed[len("SET Citation"):])
	case strings.HasPrefix(trimmed, "SET Evidence"):
		return c.handleSetEvidence(trimmed[len("SET Evidence"):])
	case strings.HasPrefix(trimmed, "SET SupportingText"):
		return c.handleSetEvidence(trimmed[len("SET SupportingText"):])
	case strings.HasPrefix(trimmed, "SET "):
		return c.handleSetAnnotation(trimmed[len("SET "):])
	case strings.HasPrefix(trimmed, "UNSET "):
		c.handleUnset(trimmed[len("UNSET "):])
		return nil
	default:
		c.handleStatement(trimmed)
		return nil
	}
}

// handleStatement implements spec.md §4.4.4's insertion protocol for one
// BEL statement: parse, construct endpoints and inferred edges, then
// attempt to insert each asserted edge against the current context. Any
// failure becomes a Warning; the statement's edges are simply not
// inserted, per spec.md §4.4.4's "statements failing validation are not
// inserted".
func (c *compiler) handleStatement(raw string) {
	stmt, err := c.term.parseStatementLine(raw, 0)
	if err != nil {
		c.graph.Warn(toWarning(err, c.line, raw))
		return
	}
	if len(stmt.Edges) == 0 {
		c.graph.AddNode(stmt.Source)
		if stmt.SourceModifier != nil && !stmt.SourceModifier.IsZero() {
			c.graph.Warn(warning.New(c.line, raw, warning.KindBelSyntax, "endpoint modifier on a singleton term has no edge to attach to; discarded"))
		}
		return
	}

	for _, se := range stmt.Edges {
		data := edge.Edge{
			Relation:       se.Relation,
			SourceModifier: se.SourceModifier,
			TargetModifier: se.TargetModifier,
			Citation:       c.ctx.citation,
			Evidence:       c.ctx.evidence,
			Annotations:    c.ctx.snapshotAnnotations(),
			Line:           c.line,
		}
		if _, err := c.graph.AddQualifiedEdge(se.Source, se.Target, data); err != nil {
			c.graph.Warn(mapEdgeError(err, c.line, raw))
		}
	}

	if missing := c.missingRequiredAnnotations(); len(missing) > 0 {
		c.graph.Warn(warning.Newf(c.line, raw, warning.KindMissingAnnotationKey, "missing required annotations: %s", strings.Join(missing, ", ")))
	}
}

// missingRequiredAnnotations reports which of c.options.RequiredAnnotations
// are absent from the current context (spec.md §6.4's `required_annotations`).
func (c *compiler) missingRequiredAnnotations() []string {
	var missing []string
	for _, key := range c.options.RequiredAnnotations {
		if _, ok := c.ctx.annotations[key]; !ok {
			missing = append(missing, key)
		}
	}
	return missing
}

// mapEdgeError converts an error returned by graph.AddQualifiedEdge or by
// reference.Citation.Validate into the matching Warning kind from spec.md
// §7.2's "Context" taxonomy.
func mapEdgeError(err error, line int, original string) warning.Warning {
	switch {
	case errors.Is(err, edge.ErrMissingCitation):
		return warning.New(line, original, warning.KindMissingCitation, err.Error())
	case errors.Is(err, edge.ErrMissingEvidence):
		return warning.New(line, original, warning.KindMissingEvidence, err.Error())
	case errors.Is(err, reference.ErrInvalidPubMedID):
		return warning.New(line, original, warning.KindInvalidPubMedID, err.Error())
	case errors.Is(err, reference.ErrUnknownType), errors.Is(err, reference.ErrEmptyType):
		return warning.New(line, original, warning.KindInvalidCitationType, err.Error())
	case errors.Is(err, reference.ErrEmptyReference):
		return warning.New(line, original, warning.KindInvalidCitation, err.Error())
	default:
		return warning.New(line, original, warning.KindInvalidCitation, err.Error())
	}
}

// StatementResult is the outcome of ParseStatement: the endpoints and
// relation of a single parsed statement, without any graph construction
// (spec.md §6.4's `parse(statement_string) -> {source, relation,
// target}`).
type StatementResult struct {
	Source         entity.Entity
	SourceModifier *modifier.Modifier
	Relation       edge.Relation
	Target         entity.Entity
	TargetModifier *modifier.Modifier
	HasRelation    bool
}

// ParseStatement parses a single BEL statement string in isolation,
// without namespace/annotation validation against a live resolver or any
// graph construction (spec.md §6.4). Nested statements resolve to their
// outer (source, relation, target) triple only; use Compile to observe
// both edges of an expanded nested statement.
func ParseStatement(statement string, options Options) (*StatementResult, []warning.Warning, error) {
	var warnings []warning.Warning
	tp := &termParser{
		options: options,
		warnFn:  func(w warning.Warning) { warnings = append(warnings, w) },
	}

	stmt, err := tp.parseStatementLine(strings.TrimSpace(statement), 0)
	if err != nil {
		return nil, warnings, err
	}

	result := &StatementResult{Source: stmt.Source, SourceModifier: stmt.SourceModifier}
	if len(stmt.Edges) > 0 {
		first := stmt.Edges[0]
		result.HasRelation = true
		result.Relation = first.Relation
		result.Target = first.Target
		result.TargetModifier = first.TargetModifier
	}
	return result, warnings, nil
}

// ParseEntityString parses a single term string (typically an entity's
// own canonical form, spec.md §4.5) back into an Entity, with no
// namespace/annotation registry. Used by internal/nodelink to
// reconstruct nodes from a node-link document without re-running a full
// compilation.
func ParseEntityString(raw string, options Options) (entity.Entity, []warning.Warning, error) {
	var warnings []warning.Warning
	tp := &termParser{
		options: options,
		warnFn:  func(w warning.Warning) { warnings = append(warnings, w) },
	}
	e, err := tp.ParseTerm(strings.TrimSpace(raw))
	return e, warnings, err
}
