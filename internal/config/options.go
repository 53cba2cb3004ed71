// Package config holds the compiler's per-compilation Options and the
// process-wide Global settings (resource cache location, HTTP timeout and
// rate limit), grounded on the teacher's internal/config package: Options
// mirrors its repository-scoped Config (plain struct, no hidden
// singleton), Global mirrors its GlobalConfig (YAML file under
// XDG_CONFIG_HOME, with env overrides loaded the way cmd/bip/s2.go loads
// a .env file via godotenv before reading flags).
package config

// Options are the five compile-time flags spec.md §6.4 enumerates. They
// are fixed for the lifetime of one compilation (spec.md §4.2) and are
// passed explicitly into Compile rather than read from a singleton.
type Options struct {
	// AllowNested permits one level of nested statement; when false a
	// nested statement raises NestedRelation (spec.md §4.2, §4.4).
	AllowNested bool `yaml:"allow_nested"`

	// AllowNakedNames permits namespace-less term names; when false such
	// a term raises NakedName (spec.md §4.2).
	AllowNakedNames bool `yaml:"allow_naked_names"`

	// CitationClearing, when true (the default), makes SET Citation also
	// clear evidence and all free annotations except the statement-group
	// marker (spec.md §3.4, §4.2).
	CitationClearing bool `yaml:"citation_clearing"`

	// DisallowUnqualifiedTranslocations, when true (the default), makes a
	// tloc() without fromLoc/toLoc an error (spec.md §4.2).
	DisallowUnqualifiedTranslocations bool `yaml:"disallow_unqualified_translocations"`

	// RequiredAnnotations lists annotation keywords that must be present
	// on every qualified edge's context at insertion time.
	RequiredAnnotations []string `yaml:"required_annotations"`
}

// DefaultOptions returns the spec.md §6.4 default option set.
func DefaultOptions() Options {
	return Options{
		AllowNested:                       false,
		AllowNakedNames:                   false,
		CitationClearing:                  true,
		DisallowUnqualifiedTranslocations: true,
		RequiredAnnotations:               nil,
	}
}
