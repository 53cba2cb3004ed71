package parser

import (
	"strconv"
	"strings"

	"github.com/pybel/belgo/internal/variant"
	"github.com/pybel/belgo/internal/warning"
)

// parseVariantToken parses one variant production inside a term's
// argument list: pmod(...), gmod(...), var(...), frag(...), or the
// legacy sub(...)/trunc(...) forms that normalize into an HGVS variant
// (spec.md §4.4.1, SUPPLEMENTED FEATURES items 3–4).
func (p *termParser) parseVariantToken(tok string) (variant.Variant, error) {
	name, body, ok := splitCall(tok)
	if !ok {
		return nil, warning.New(p.line, tok, warning.KindBelSyntax, "expected a variant production")
	}
	args := smartSplit(body)

	switch name {
	case "pmod":
		return p.parsePmod(tok, args)
	case "gmod":
		return p.parseGmod(tok, args)
	case "var":
		if len(args) != 1 {
			return nil, warning.New(p.line, tok, warning.KindBelSyntax, "var() takes exactly one argument")
		}
		switch v := unquote(args[0]); v {
		case "?":
			return variant.HGVSUnspecified(), nil
		case "=":
			return variant.HGVSReference(), nil
		default:
			return variant.HGVS{Value: v}, nil
		}
	case "frag":
		return p.parseFrag(tok, args)
	case "sub":
		return p.parseLegacySub(tok, args)
	case "trunc":
		return p.parseLegacyTrunc(tok, args)
	default:
		return nil, warning.New(p.line, tok, warning.KindBelSyntax, "unrecognized variant function: "+name)
	}
}

func (p *termParser) parsePmod(tok string, args []string) (variant.Variant, error) {
	if len(args) == 0 {
		return nil, warning.New(p.line, tok, warning.KindBelSyntax, "pmod() requires a modification argument")
	}
	modArg := unquote(args[0])

	var namespace, identifier string
	if idx := strings.Index(modArg, ":"); idx != -1 {
		namespace = modArg[:idx]
		identifier = unquote(modArg[idx+1:])
	} else if code, ok := variant.ResolvePmodCode(modArg); ok {
		identifier = code
		if code != modArg {
			p.warn(warning.Debug(p.line, tok, warning.CodeLegacyAminoAcid, "normalized legacy pmod code "+modArg+" to "+code))
		}
	} else {
		identifier = modArg
	}

	pm := variant.ProteinModification{Namespace: namespace, Identifier: identifier}
	if len(args) > 1 {
		three, normalized, ok := variant.NormalizeAminoAcid(unquote(args[1]))
		if ok {
			pm.AminoAcid = three
			if normalized {
				p.warn(warning.Debug(p.line, tok, warning.CodeLegacyAminoAcid, "normalized single-letter amino acid code to "+three))
			}
		}
	}
	if len(args) > 2 {
		pos, err := strconv.Atoi(strings.TrimSpace(args[2]))
		if err == nil {
			pm.Position = &pos
		}
	}
	return pm, nil
}

func (p *termParser) parseGmod(tok string, args []string) (variant.Variant, error) {
	if len(args) == 0 {
		return nil, warning.New(p.line, tok, warning.KindBelSyntax, "gmod() requires a modification argument")
	}
	modArg := unquote(args[0])
	if code, ok := variant.ResolveGmodCode(modArg); ok {
		return variant.GeneModification{Identifier: code}, nil
	}
	return variant.GeneModification{Identifier: modArg}, nil
}

func (p *termParser) parseFrag(tok string, args []string) (variant.Variant, error) {
	if len(args) == 0 {
		return nil, warning.New(p.line, tok, warning.KindBelSyntax, "frag() requires a range argument")
	}
	rng := unquote(args[0])
	f := variant.UnspecifiedFragment()
	if rng != "?" {
		parts := strings.SplitN(rng, "_", 2)
		if len(parts) == 2 {
			f.Start, f.Stop = parts[0], parts[1]
		}
	}
	if len(args) > 1 {
		f.Description = unquote(args[1])
	}
	return f, nil
}

// parseLegacySub normalizes the legacy sub(from, pos, to) form to an
// HGVS substitution variant, emitting a code-006 Debug warning (spec.md
// §4.4.1). The result is always the protein-form "p." HGVS value.
func (p *termParser) parseLegacySub(tok string, args []string) (variant.Variant, error) {
	if len(args) != 3 {
		return nil, warning.New(p.line, tok, warning.KindBelSyntax, "sub() requires exactly 3 arguments")
	}
	fromThree, _, fromOK := variant.NormalizeAminoAcid(unquote(args[0]))
	toThree, _, toOK := variant.NormalizeAminoAcid(unquote(args[2]))
	pos, err := strconv.Atoi(strings.TrimSpace(args[1]))
	if err != nil || !fromOK || !toOK {
		return nil, warning.New(p.line, tok, warning.KindPlaceholderAminoAcid, "malformed legacy substitution")
	}
	p.warn(warning.Debug(p.line, tok, warning.CodeLegacySubstitution, "normalized legacy sub() to HGVS"))
	return variant.SubstitutionHGVS(fromThree, pos, toThree), nil
}

// parseLegacyTrunc normalizes the legacy trunc(pos) form to an HGVS
// truncation variant, warning code 025 (spec.md §4.4.1).
func (p *termParser) parseLegacyTrunc(tok string, args []string) (variant.Variant, error) {
	if len(args) != 1 {
		return nil, warning.New(p.line, tok, warning.KindBelSyntax, "trunc() requires exactly 1 argument")
	}
	pos, err := strconv.Atoi(strings.TrimSpace(args[0]))
	if err != nil {
		return nil, warning.New(p.line, tok, warning.KindBelSyntax, "malformed legacy truncation position")
	}
	p.warn(warning.Debug(p.line, tok, warning.CodeLegacyTruncation, "normalized legacy trunc() to HGVS"))
	return variant.TruncationHGVS(pos), nil
}
