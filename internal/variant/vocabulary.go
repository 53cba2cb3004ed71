package variant

import "strings"

// DefaultPmodVocabulary maps every accepted spelling of a protein
// modification (short code, long-form synonym, or legacy single-letter
// BEL 1.0 label once expanded by LegacyPmodCode) to its canonical short
// code, matching the BEL default modification namespace (SPEC_FULL.md's
// "Default BEL modification vocabulary" supplement).
var DefaultPmodVocabulary = map[string]string{
	"Ac": "Ac", "acetylation": "Ac",
	"ADPRib": "ADPRib", "ADP-ribosylation": "ADPRib", "adenosine diphosphoribosyl": "ADPRib",
	"Farn": "Farn", "farnesylation": "Farn",
	"Gerger": "Gerger", "geranylgeranylation": "Gerger",
	"Glyco": "Glyco", "glycosylation": "Glyco",
	"Hy": "Hy", "hydroxylation": "Hy",
	"ISG": "ISG", "ISGylation": "ISG", "ISG15-protein conjugation": "ISG",
	"Me": "Me", "methylation": "Me",
	"Me1": "Me1", "monomethylation": "Me1", "mono-methylation": "Me1",
	"Me2": "Me2", "dimethylation": "Me2", "di-methylation": "Me2",
	"Me3": "Me3", "trimethylation": "Me3", "tri-methylation": "Me3",
	"Myr": "Myr", "myristoylation": "Myr",
	"Nedd": "Nedd", "neddylation": "Nedd",
	"NGlyco": "NGlyco", "N-linked glycosylation": "NGlyco",
	"NO": "NO", "Nitrosylation": "NO",
	"OGlyco": "OGlyco", "O-linked glycosylation": "OGlyco",
	"Palm": "Palm", "palmitoylation": "Palm",
	"Ph": "Ph", "phosphorylation": "Ph",
	"Sulf": "Sulf", "sulfation": "Sulf", "sulphation": "Sulf",
	"sulfur addition": "Sulf", "sulphur addition": "Sulf",
	"sulfonation": "sulfonation", "sulphonation": "sulfonation",
	"Sumo": "Sumo", "SUMOylation": "Sumo",
	"Ub": "Ub", "ubiquitination": "Ub", "ubiquitinylation": "Ub", "ubiquitylation": "Ub",
	"UbK48": "UbK48", "Lysine 48-linked polyubiquitination": "UbK48",
	"UbK63": "UbK63", "Lysine 63-linked polyubiquitination": "UbK63",
	"UbMono": "UbMono", "monoubiquitination": "UbMono",
	"UbPoly": "UbPoly", "polyubiquitination": "UbPoly",
	"Ox": "Ox", "oxidation": "Ox",
}

// DefaultGmodVocabulary maps accepted spellings of a gene modification to
// its canonical short code.
var DefaultGmodVocabulary = map[string]string{
	"methylation": "Me",
	"Me":          "Me",
	"M":           "Me",
}

// LegacyPmodCode maps the BEL 1.0 single-letter pmod shorthand to its
// BEL 2+ short code (SPEC_FULL.md supplement 3; spec.md §7.2's
// KindDebug/code-016 legacy-normalization trace).
var LegacyPmodCode = map[string]string{
	"P": "Ph",
	"A": "Ac",
	"F": "Farn",
	"G": "Glyco",
	"H": "Hy",
	"M": "Me",
	"R": "ADPRib",
	"S": "Sumo",
	"U": "Ub",
	"O": "Ox",
}

// AminoAcidCode maps the single-letter amino acid code to its three-letter
// code, used to normalize legacy sub()/pmod(..., <aa>, ...) arguments
// (SPEC_FULL.md supplement 4).
var AminoAcidCode = map[string]string{
	"A": "Ala", "R": "Arg", "N": "Asn", "D": "Asp", "C": "Cys",
	"E": "Glu", "Q": "Gln", "G": "Gly", "H": "His", "I": "Ile",
	"L": "Leu", "K": "Lys", "M": "Met", "F": "Phe", "P": "Pro",
	"S": "Ser", "T": "Thr", "W": "Trp", "Y": "Tyr", "V": "Val",
}

// NormalizeAminoAcid returns the three-letter amino acid code for aa,
// which may already be a three-letter code (returned unchanged, case
// normalized) or a legacy single letter. ok is false if aa is neither.
func NormalizeAminoAcid(aa string) (code string, normalized bool, ok bool) {
	if aa == "" {
		return "", false, false
	}
	if len(aa) == 1 {
		three, found := AminoAcidCode[strings.ToUpper(aa)]
		return three, true, found
	}
	title := strings.ToUpper(aa[:1]) + strings.ToLower(aa[1:])
	for _, three := range AminoAcidCode {
		if three == title {
			return three, false, true
		}
	}
	return "", false, false
}

// ResolvePmodCode resolves a user-supplied pmod spelling (short code,
// long-form synonym, or legacy single letter) to its canonical short
// code. ok is false if name is not in the default vocabulary.
func ResolvePmodCode(name string) (code string, ok bool) {
	if legacy, isLegacy := LegacyPmodCode[name]; isLegacy && len(name) == 1 {
		return legacy, true
	}
	code, ok = DefaultPmodVocabulary[name]
	return code, ok
}

// ResolveGmodCode resolves a user-supplied gmod spelling to its canonical
// short code. ok is false if name is not in the default vocabulary.
func ResolveGmodCode(name string) (code string, ok bool) {
	code, ok = DefaultGmodVocabulary[name]
	return code, ok
}
