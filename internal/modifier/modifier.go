// Package modifier defines Modifier, the subject/object decoration BEL
// attaches to an edge endpoint (spec.md §3.2, §4.4.2): activity,
// translocation, degradation, and bare location. Unlike internal/variant's
// per-kind types, a Modifier is a single flat struct because every kind
// shares almost the same shape (an effect concept, a pair of location
// concepts, and a standalone location) and the teacher's own edge-side
// data (internal/edge.Edge) is likewise a flat struct with optional
// fields rather than a type hierarchy.
package modifier

import "github.com/pybel/belgo/internal/concept"

// Kind is the closed set of subject/object modifier kinds (spec.md
// §4.4.2).
type Kind string

const (
	// KindNone means no modifier kind; a Modifier with Kind == KindNone
	// and a non-nil Location is the "bare location only" decoration
	// (spec.md §4.4.1's loc()).
	KindNone         Kind = ""
	KindActivity     Kind = "Activity"
	KindDegradation  Kind = "Degradation"
	KindTranslocation Kind = "Translocation"
)

// Modifier decorates one endpoint of an edge (spec.md §3.2's
// source_modifier/target_modifier).
type Modifier struct {
	Kind Kind

	// Effect is act()'s optional ma(activity) qualifier. Only meaningful
	// when Kind == KindActivity; nil means the activity's effect was not
	// specified (bare act(term), spec.md §4.4.2).
	Effect *concept.Concept

	// FromLoc and ToLoc are tloc()'s translocation endpoints. Only
	// meaningful when Kind == KindTranslocation.
	FromLoc *concept.Concept
	ToLoc   *concept.Concept

	// Location is loc()'s standalone decoration, which may accompany any
	// Kind (including KindNone) per spec.md §4.4.1.
	Location *concept.Concept
}

// IsZero reports whether m carries no decoration at all: no kind and no
// standalone location.
func (m Modifier) IsZero() bool {
	return m.Kind == KindNone && m.Location == nil
}

// Activity builds an act(term, ma(effect)) modifier. A nil effect models
// the bare act(term) form.
func Activity(effect *concept.Concept) Modifier {
	return Modifier{Kind: KindActivity, Effect: effect}
}

// Degradation builds a deg(term) modifier.
func Degradation() Modifier {
	return Modifier{Kind: KindDegradation}
}

// Translocation builds a tloc(term, fromLoc(from), toLoc(to)) modifier.
func Translocation(from, to concept.Concept) Modifier {
	return Modifier{Kind: KindTranslocation, FromLoc: &from, ToLoc: &to}
}

// Secretion builds the sec(term) shorthand: translocation from the
// intracellular default compartment to the extracellular space (spec.md
// §4.4.2).
func Secretion() Modifier {
	return Translocation(IntracellularCompartment, ExtracellularCompartment)
}

// CellSurfaceDisplay builds the surf(term) shorthand: translocation from
// the intracellular default compartment to the cell surface (spec.md
// §4.4.2).
func CellSurfaceDisplay() Modifier {
	return Translocation(IntracellularCompartment, CellSurfaceCompartment)
}

// WithLocation returns a copy of m with Location set, preserving m's Kind
// and any other fields. Used to attach loc() to a modifier that already
// carries an activity/translocation/degradation decoration.
func (m Modifier) WithLocation(loc concept.Concept) Modifier {
	m.Location = &loc
	return m
}

// The fixed compartments used by the sec()/surf() shorthand translocations,
// drawn from the Gene Ontology cellular component namespace the way the
// original BEL default namespace does.
var (
	IntracellularCompartment = concept.Concept{Namespace: "GOCC", Name: "intracellular"}
	ExtracellularCompartment = concept.Concept{Namespace: "GOCC", Name: "extracellular space"}
	CellSurfaceCompartment   = concept.Concept{Namespace: "GOCC", Name: "cell surface"}
)

// DefaultActivities maps the legacy single-function activity shorthand
// (kin(term), phos(term), ...) to the molecular-activity concept act()
// normalizes it into (spec.md §4.4.2, warning code 001), grounded on the
// original implementation's activity_mapping table.
var DefaultActivities = map[string]concept.Concept{
	"cat":     {Namespace: "GO", Identifier: "GO:0003824", Name: "catalytic activity"},
	"chap":    {Namespace: "GO", Identifier: "GO:0044183", Name: "protein binding involved in protein folding"},
	"gtp":     {Namespace: "GO", Identifier: "GO:0005525", Name: "GTP binding"},
	"kin":     {Namespace: "GO", Identifier: "GO:0016301", Name: "kinase activity"},
	"pep":     {Namespace: "GO", Identifier: "GO:0008233", Name: "peptidase activity"},
	"phos":    {Namespace: "GO", Identifier: "GO:0016791", Name: "phosphatase activity"},
	"ribo":    {Namespace: "GO", Identifier: "GO:0003956", Name: "NAD(P)+-protein-arginine ADP-ribosyltransferase activity"},
	"tscript": {Namespace: "GO", Identifier: "GO:0001071", Name: "nucleic acid binding transcription factor activity"},
	"tport":   {Namespace: "GO", Identifier: "GO:0005215", Name: "transporter activity"},
	"gef":     {Namespace: "GO", Identifier: "GO:0005085", Name: "guanyl-nucleotide exchange factor activity"},
	"gap":     {Namespace: "GO", Identifier: "GO:0032794", Name: "GTPase activating protein binding"},
}

// LegacyActivityFunction maps the legacy activity function name (and its
// short alias) to the DefaultActivities key it normalizes to (spec.md
// §4.4.2, warning code 001).
var LegacyActivityFunction = map[string]string{
	"catalyticActivity":                      "cat",
	"cat":                                    "cat",
	"chaperoneActivity":                      "chap",
	"chap":                                   "chap",
	"gtpBoundActivity":                       "gtp",
	"gtp":                                    "gtp",
	"kinaseActivity":                         "kin",
	"kin":                                    "kin",
	"peptidaseActivity":                      "pep",
	"pep":                                    "pep",
	"phosphataseActivity":                    "phos",
	"phos":                                   "phos",
	"ribosylationActivity":                   "ribo",
	"ribo":                                   "ribo",
	"transcriptionalActivity":                "tscript",
	"tscript":                                "tscript",
	"transportActivity":                      "tport",
	"tport":                                  "tport",
	"guanineNucleotideExchangeFactorActivity": "gef",
	"gef":                                    "gef",
	"gtpaseActivatingProteinActivity":        "gap",
	"gap":                                    "gap",
}
