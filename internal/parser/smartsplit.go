package parser

import "strings"

// smartSplit splits s by top-level commas, treating parenthesis depth and
// double-quoted spans as opaque. Grounded on the pack's Datalog
// parser's SmartSplit, adapted to BEL's sole quote character (double
// quote; BEL has no single-quoted strings).
func smartSplit(s string) []string {
	var results []string
	var current strings.Builder
	depth := 0
	inQuote := false

	for _, r := range s {
		switch r {
		case '"':
			inQuote = !inQuote
			current.WriteRune(r)
		case '(':
			if !inQuote {
				depth++
			}
			current.WriteRune(r)
		case ')':
			if !inQuote {
				depth--
			}
			current.WriteRune(r)
		case ',':
			if !inQuote && depth == 0 {
				results = append(results, strings.TrimSpace(current.String()))
				current.Reset()
				continue
			}
			current.WriteRune(r)
		default:
			current.WriteRune(r)
		}
	}
	if current.Len() > 0 || len(results) > 0 {
		results = append(results, strings.TrimSpace(current.String()))
	}
	return results
}

// splitCall parses "name(args)" into its function name and raw (still
// comma-joined) argument body. ok is false if s is not of that shape.
func splitCall(s string) (name string, argsBody string, ok bool) {
	s = strings.TrimSpace(s)
	start := strings.Index(s, "(")
	end := strings.LastIndex(s, ")")
	if start == -1 || end == -1 || start >= end {
		return "", "", false
	}
	return strings.TrimSpace(s[:start]), s[start+1 : end], true
}

// unquote strips a single pair of surrounding double quotes, if present.
func unquote(s string) string {
	s = strings.TrimSpace(s)
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		return s[1 : len(s)-1]
	}
	return s
}
