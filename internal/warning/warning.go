// Package warning defines the recoverable-error taxonomy produced while
// compiling a BEL document. Every per-statement parsing, validation, or
// semantic failure becomes a Warning instead of aborting compilation.
package warning

import "fmt"

// Kind is a closed taxonomy of recoverable error kinds (spec.md §7.2).
type Kind string

const (
	KindBelSyntax               Kind = "BelSyntax"
	KindPlaceholderAminoAcid    Kind = "PlaceholderAminoAcid"
	KindMalformedTranslocation  Kind = "MalformedTranslocation"
	KindInvalidFunctionSemantic Kind = "InvalidFunctionSemantic"
	KindNestedRelation          Kind = "NestedRelation"

	KindNakedName              Kind = "NakedName"
	KindUndefinedNamespace     Kind = "UndefinedNamespace"
	KindUndefinedAnnotation    Kind = "UndefinedAnnotation"
	KindMissingNamespaceName   Kind = "MissingNamespaceName"
	KindMissingNamespaceRegex  Kind = "MissingNamespaceRegex"
	KindMissingAnnotationRegex Kind = "MissingAnnotationRegex"
	KindIllegalAnnotationValue Kind = "IllegalAnnotationValue"

	KindMissingCitation       Kind = "MissingCitation"
	KindInvalidCitation       Kind = "InvalidCitation"
	KindInvalidCitationType   Kind = "InvalidCitationType"
	KindInvalidPubMedID       Kind = "InvalidPubMedIdentifier"
	KindMissingEvidence       Kind = "MissingEvidence"
	KindMissingAnnotationKey  Kind = "MissingAnnotationKey"

	KindVersionFormat            Kind = "VersionFormat"
	KindNamespaceKeywordMismatch Kind = "NamespaceKeywordMismatch"

	// KindDebug tags automatic legacy normalizations (spec.md §7.2's
	// info-level traces, codes 001/005/006/009/016/024/025). These are
	// still visible through the warning stream but are not failures.
	KindDebug Kind = "Debug"
)

// Warning is one recoverable compile-time diagnostic (spec.md §7, §6.2).
type Warning struct {
	Line     int    `json:"line"`
	Original string `json:"original"`
	Kind     Kind   `json:"kind"`
	Message  string `json:"message"`
	// Code is set only for KindDebug entries, carrying the legacy
	// normalization code named in spec.md §9 (001, 005, 006, 009, 016,
	// 024, 025). Empty for ordinary warnings.
	Code string `json:"code,omitempty"`
}

func (w Warning) Error() string {
	return fmt.Sprintf("line %d: %s: %s", w.Line, w.Kind, w.Message)
}

// New builds an ordinary (non-debug) warning.
func New(line int, original string, kind Kind, message string) Warning {
	return Warning{Line: line, Original: original, Kind: kind, Message: message}
}

// Newf builds an ordinary warning with a formatted message.
func Newf(line int, original string, kind Kind, format string, args ...any) Warning {
	return New(line, original, kind, fmt.Sprintf(format, args...))
}

// Debug builds an info-level legacy-normalization trace tagged with its
// warning code (spec.md §9).
func Debug(line int, original string, code string, message string) Warning {
	return Warning{Line: line, Original: original, Kind: KindDebug, Message: message, Code: code}
}
