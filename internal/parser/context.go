package parser

import "github.com/pybel/belgo/internal/reference"

// statementGroupKey is the distinguished annotation key for SET
// STATEMENT_GROUP, excluded from citation-clearing mode's clear-set
// (spec.md §3.4, SUPPLEMENTED FEATURES item 2).
const statementGroupKey = "STATEMENT_GROUP"

// parseContext holds the parser's current citation, evidence, and
// annotation state (spec.md §3.4's "parser context... has the lifecycle
// of one compilation").
type parseContext struct {
	citation    reference.Citation
	evidence    string
	annotations map[string]map[string]struct{}
}

func newContext() *parseContext {
	return &parseContext{annotations: make(map[string]map[string]struct{})}
}

// setCitation updates the current citation. In citation-clearing mode it
// also clears evidence and every annotation except the statement-group
// marker (spec.md §3.4, §4.2, SUPPLEMENTED FEATURES item 2).
func (c *parseContext) setCitation(citation reference.Citation, clearing bool) {
	c.citation = citation
	if !clearing {
		return
	}
	c.evidence = ""
	group, hasGroup := c.annotations[statementGroupKey]
	c.annotations = make(map[string]map[string]struct{})
	if hasGroup {
		c.annotations[statementGroupKey] = group
	}
}

func (c *parseContext) setEvidence(evidence string) {
	c.evidence = evidence
}

func (c *parseContext) setStatementGroup(value string) {
	c.annotations[statementGroupKey] = map[string]struct{}{value: {}}
}

func (c *parseContext) addAnnotation(key, value string) {
	if c.annotations[key] == nil {
		c.annotations[key] = make(map[string]struct{})
	}
	c.annotations[key][value] = struct{}{}
}

// unset removes key from the context (citation/evidence/an annotation).
// ok is false if key was not set, matching spec.md §4.2's "unsetting an
// unset key yields a non-fatal MissingAnnotationKey warning".
func (c *parseContext) unset(key string) (ok bool) {
	switch key {
	case "Citation":
		was := !c.citation.IsEmpty()
		c.citation = reference.Citation{}
		return was
	case "Evidence", "SupportingText":
		was := c.evidence != ""
		c.evidence = ""
		return was
	default:
		if _, ok := c.annotations[key]; ok {
			delete(c.annotations, key)
			return true
		}
		return false
	}
}

// unsetAll clears citation, evidence, and every annotation including the
// statement-group marker (SUPPLEMENTED FEATURES item 6, `UNSET ALL`).
func (c *parseContext) unsetAll() {
	c.citation = reference.Citation{}
	c.evidence = ""
	c.annotations = make(map[string]map[string]struct{})
}

// snapshotAnnotations returns a deep copy of the current annotation set,
// for attaching to an edge being constructed from this context.
func (c *parseContext) snapshotAnnotations() map[string]map[string]struct{} {
	out := make(map[string]map[string]struct{}, len(c.annotations))
	for k, vs := range c.annotations {
		copied := make(map[string]struct{}, len(vs))
		for v := range vs {
			copied[v] = struct{}{}
		}
		out[k] = copied
	}
	return out
}
