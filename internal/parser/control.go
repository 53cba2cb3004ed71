package parser

import (
	"context"
	"regexp"
	"strings"

	"github.com/pybel/belgo/internal/compileerr"
	"github.com/pybel/belgo/internal/graph"
	"github.com/pybel/belgo/internal/reference"
	"github.com/pybel/belgo/internal/resolver"
	"github.com/pybel/belgo/internal/warning"
)

// splitKeyValue splits "key = value" on the first top-level '=' (outside
// a quoted span). ok is false if no '=' is found.
func splitKeyValue(s string) (key, value string, ok bool) {
	inQuote := false
	for i, r := range s {
		switch r {
		case '"':
			inQuote = !inQuote
		case '=':
			if !inQuote {
				return strings.TrimSpace(s[:i]), strings.TrimSpace(s[i+1:]), true
			}
		}
	}
	return "", "", false
}

// stripBraces removes one layer of surrounding `{...}`, if present.
func stripBraces(s string) string {
	s = strings.TrimSpace(s)
	if len(s) >= 2 && s[0] == '{' && s[len(s)-1] == '}' {
		return strings.TrimSpace(s[1 : len(s)-1])
	}
	return s
}

// parseValueList parses a SET <annotation_key> = value right-hand side,
// which is either a single quoted value or a brace-enclosed list of
// them (spec.md §4.2).
func parseValueList(raw string) []string {
	raw = strings.TrimSpace(raw)
	if strings.HasPrefix(raw, "{") {
		var values []string
		for _, tok := range smartSplit(stripBraces(raw)) {
			values = append(values, unquote(tok))
		}
		return values
	}
	return []string{unquote(raw)}
}

// handleSetDocument implements the `SET DOCUMENT <key> = <value>` row of
// spec.md §4.2's control-directive table.
func (c *compiler) handleSetDocument(rest string) error {
	key, value, ok := splitKeyValue(rest)
	if !ok {
		return compileerr.New(c.line, compileerr.ErrMalformedDefine, "malformed SET DOCUMENT: %s", rest)
	}
	value = unquote(value)

	switch key {
	case "Name":
		c.graph.Metadata.Name = value
	case "Version":
		c.graph.Metadata.Version = value
	case "Description":
		c.graph.Metadata.Description = value
	case "Authors":
		c.graph.Metadata.Authors = value
	case "Licenses":
		c.graph.Metadata.Licenses = value
	case "ContactInfo":
		c.graph.Metadata.ContactInfo = value
	case "Copyright":
		c.graph.Metadata.Copyright = value
	case "Disclaimer":
		c.graph.Metadata.Disclaimer = value
	case "Project":
		c.graph.Metadata.Project = value
	default:
		c.graph.Warn(warning.Newf(c.line, rest, warning.KindBelSyntax, "unrecognized document key: %s", key))
	}
	return nil
}

// handleDefine implements `DEFINE NAMESPACE/ANNOTATION K AS ...` (spec.md
// §4.2). kind is "NAMESPACE" or "ANNOTATION".
func (c *compiler) handleDefine(ctx context.Context, kind, rest string) error {
	idx := strings.Index(rest, " AS ")
	if idx == -1 {
		return compileerr.New(c.line, compileerr.ErrMalformedDefine, "missing AS in DEFINE %s: %s", kind, rest)
	}
	keyword := strings.TrimSpace(rest[:idx])
	defSpec := strings.TrimSpace(rest[idx+len(" AS "):])

	var (
		v   resolver.Validator
		src string
		err error
	)
	switch {
	case strings.HasPrefix(defSpec, "URL "):
		url := unquote(strings.TrimSpace(defSpec[len("URL "):]))
		src = "url:" + url
		if c.resolver == nil {
			return compileerr.New(c.line, compileerr.ErrResourceUnavailable, "no resolver configured for %s", url)
		}
		v, err = c.resolver.Resolve(ctx, url)
		if err != nil {
			return compileerr.New(c.line, compileerr.ErrResourceUnavailable, "%s", err)
		}
	case strings.HasPrefix(defSpec, "PATTERN "):
		pattern := unquote(strings.TrimSpace(defSpec[len("PATTERN "):]))
		src = "pattern:" + pattern
		compiled, compileErr := regexp.Compile(pattern)
		if compileErr != nil {
			return compileerr.New(c.line, compileerr.ErrMalformedDefine, "invalid PATTERN: %s", compileErr)
		}
		v = resolver.RegexValidator(compiled)
	case strings.HasPrefix(defSpec, "LIST "):
		listBody := stripBraces(strings.TrimSpace(defSpec[len("LIST "):]))
		names := make(map[string]bool)
		for _, tok := range smartSplit(listBody) {
			names[unquote(tok)] = true
		}
		src = "list:" + listBody
		v = resolver.EnumeratedValidator(names, nil)
	default:
		return compileerr.New(c.line, compileerr.ErrMalformedDefine, "unrecognized DEFINE source form: %s", defSpec)
	}

	def := graph.ResourceDef{Keyword: keyword, URL: src, Validator: v}

	if kind == "NAMESPACE" {
		if existing, exists := c.graph.Namespaces[keyword]; exists && existing.URL != src {
			return compileerr.New(c.line, compileerr.ErrNamespaceRedefinition, "namespace %s already defined with a different source", keyword)
		}
		c.graph.Namespaces[keyword] = def
		return nil
	}
	if existing, exists := c.graph.Annotations[keyword]; exists && existing.URL != src {
		return compileerr.New(c.line, compileerr.ErrAnnotationRedefinition, "annotation %s already defined with a different source", keyword)
	}
	c.graph.Annotations[keyword] = def
	return nil
}

// handleSetCitation implements `SET Citation = {"<type>","<name>","<ref>"
// [, <date>, <authors>, <comment>]}` (spec.md §4.2, §3.2).
func (c *compiler) handleSetCitation(rest string) error {
	_, value, ok := splitKeyValue(rest)
	if !ok {
		c.graph.Warn(warning.New(c.line, rest, warning.KindBelSyntax, "malformed SET Citation"))
		return nil
	}
	fields := smartSplit(stripBraces(value))
	if len(fields) < 3 {
		c.graph.Warn(warning.New(c.line, rest, warning.KindInvalidCitation, "citation requires type, title, and reference"))
		return nil
	}

	citation := reference.Citation{
		Type:      reference.Type(unquote(fields[0])),
		Title:     unquote(fields[1]),
		Reference: unquote(fields[2]),
	}
	if len(fields) > 3 {
		citation.Date = unquote(fields[3])
	}
	if len(fields) > 4 {
		citation.Authors = reference.ParseAuthorList(unquote(fields[4]))
	}
	if len(fields) > 5 {
		citation.Comment = unquote(fields[5])
	}
	if err := citation.Validate(); err != nil {
		c.graph.Warn(mapEdgeError(err, c.line, rest))
		return nil
	}

	c.ctx.setCitation(citation, c.options.CitationClearing)
	return nil
}

// handleSetEvidence implements `SET Evidence = "..."` and its legacy
// `SET SupportingText` spelling (spec.md §4.2).
func (c *compiler) handleSetEvidence(rest string) error {
	_, value, ok := splitKeyValue(rest)
	if !ok {
		c.graph.Warn(warning.New(c.line, rest, warning.KindBelSyntax, "malformed SET Evidence"))
		return nil
	}
	c.ctx.setEvidence(unquote(value))
	return nil
}

// handleSetStatementGroup implements `SET STATEMENT_GROUP = "..."`
// (spec.md §4.2, SUPPLEMENTED FEATURES item 2).
func (c *compiler) handleSetStatementGroup(rest string) error {
	_, value, ok := splitKeyValue(rest)
	if !ok {
		c.graph.Warn(warning.New(c.line, rest, warning.KindBelSyntax, "malformed SET STATEMENT_GROUP"))
		return nil
	}
	c.ctx.setStatementGroup(unquote(value))
	return nil
}

// handleSetAnnotation implements `SET <annotation_key> = "value"` and
// `SET <annotation_key> = {...}` (spec.md §4.2).
func (c *compiler) handleSetAnnotation(rest string) error {
	key, value, ok := splitKeyValue(rest)
	if !ok {
		c.graph.Warn(warning.New(c.line, rest, warning.KindBelSyntax, "malformed SET annotation"))
		return nil
	}

	def, declared := c.graph.Annotations[key]
	if !declared {
		c.graph.Warn(warning.Newf(c.line, rest, warning.KindUndefinedAnnotation, "undeclared annotation key: %s", key))
		return nil
	}

	for _, v := range parseValueList(value) {
		if !def.Validator.Contains(v, "") {
			c.graph.Warn(warning.Newf(c.line, rest, warning.KindIllegalAnnotationValue, "value %q not accepted by annotation %s", v, key))
			continue
		}
		c.ctx.addAnnotation(key, v)
	}
	return nil
}

// handleUnset implements `UNSET <key>` / `UNSET {k1,k2}` / `UNSET
// STATEMENT_GROUP` / `UNSET ALL` (spec.md §4.2, SUPPLEMENTED FEATURES
// item 6).
func (c *compiler) handleUnset(rest string) {
	rest = strings.TrimSpace(rest)
	switch {
	case rest == "ALL":
		c.ctx.unsetAll()
	case rest == "STATEMENT_GROUP":
		if !c.ctx.unset(statementGroupKey) {
			c.graph.Warn(warning.New(c.line, rest, warning.KindMissingAnnotationKey, "STATEMENT_GROUP was not set"))
		}
	case strings.HasPrefix(rest, "{"):
		for _, tok := range smartSplit(stripBraces(rest)) {
			key := unquote(tok)
			if !c.ctx.unset(key) {
				c.graph.Warn(warning.Newf(c.line, rest, warning.KindMissingAnnotationKey, "%s was not set", key))
			}
		}
	default:
		key := unquote(rest)
		if !c.ctx.unset(key) {
			c.graph.Warn(warning.Newf(c.line, rest, warning.KindMissingAnnotationKey, "%s was not set", key))
		}
	}
}
