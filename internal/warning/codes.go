package warning

// Legacy normalization codes (spec.md §4.4.1, §4.4.2, §7.2, §9), carried
// forward from the original implementation's warning numbering so that
// tooling built against the legacy codes keeps working.
const (
	// CodeLegacyActivity marks a legacy activity shorthand (kin(), phos(),
	// cat(), etc.) normalized to act(term, ma(activity)).
	CodeLegacyActivity = "001"

	// CodeLegacyNamedComplexList marks a legacy bare-list complex() call
	// resolved against a named-complex namespace entry.
	CodeLegacyNamedComplexList = "005"

	// CodeLegacySubstitution marks a legacy sub(from, pos, to) protein or
	// gene substitution normalized to an HGVS var() variant.
	CodeLegacySubstitution = "006"

	// CodeLegacySubstitutionPosition marks the position/amino-acid
	// component of a legacy sub() normalization.
	CodeLegacySubstitutionPosition = "009"

	// CodeLegacyAminoAcid marks a single-letter amino acid code normalized
	// to its three-letter form inside pmod(), and a legacy pmod()
	// modification code (e.g. P) normalized to its current form.
	CodeLegacyAminoAcid = "016"

	// CodeLegacyFragmentDescriptor marks a legacy frag() call missing an
	// optional descriptor, defaulted during normalization.
	CodeLegacyFragmentDescriptor = "024"

	// CodeLegacyTruncation marks a legacy trunc(pos) variant normalized to
	// an HGVS var() variant.
	CodeLegacyTruncation = "025"
)
