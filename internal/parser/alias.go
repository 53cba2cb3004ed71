package parser

import "github.com/pybel/belgo/internal/entity"

// FunctionAlias maps every accepted spelling of a BEL term function
// (abbreviation and long form) to its canonical Function (spec.md
// GLOSSARY's function table, SUPPLEMENTED FEATURES item 1).
var FunctionAlias = map[string]entity.Function{
	"a": entity.FunctionAbundance, "abundance": entity.FunctionAbundance,
	"g": entity.FunctionGene, "geneAbundance": entity.FunctionGene,
	"r": entity.FunctionRna, "rnaAbundance": entity.FunctionRna,
	"m": entity.FunctionMicroRna, "microRNAAbundance": entity.FunctionMicroRna,
	"p": entity.FunctionProtein, "proteinAbundance": entity.FunctionProtein,
	"bp": entity.FunctionBiologicalProcess, "biologicalProcess": entity.FunctionBiologicalProcess,
	"path": entity.FunctionPathology, "pathology": entity.FunctionPathology,
	"pop": entity.FunctionPopulation, "populationAbundance": entity.FunctionPopulation,
	"complex": entity.FunctionComplexAbundance, "complexAbundance": entity.FunctionComplexAbundance,
	"composite": entity.FunctionCompositeAbundance, "compositeAbundance": entity.FunctionCompositeAbundance,
	"rxn": entity.FunctionReaction, "reaction": entity.FunctionReaction,
}

// ResolveFunction resolves a raw function token to its canonical
// Function. ok is false for an unrecognized token.
func ResolveFunction(raw string) (entity.Function, bool) {
	fn, ok := FunctionAlias[raw]
	return fn, ok
}
