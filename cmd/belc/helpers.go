package main

import (
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/pybel/belgo/internal/config"
	"github.com/pybel/belgo/internal/rescache"
	"github.com/pybel/belgo/internal/resolver"
)

// compileFlags holds the spec.md §6.4 Options exposed as local flags on
// each command that runs a compilation.
type compileFlags struct {
	allowNested                    bool
	allowNakedNames                bool
	noCitationClearing             bool
	allowUnqualifiedTranslocations bool
	requiredAnnotations            []string
}

func (f *compileFlags) register(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&f.allowNested, "allow-nested", false, "permit one level of nested statement")
	cmd.Flags().BoolVar(&f.allowNakedNames, "allow-naked-names", false, "permit namespace-less term names")
	cmd.Flags().BoolVar(&f.noCitationClearing, "no-citation-clearing", false, "disable automatic evidence/annotation clearing on SET Citation")
	cmd.Flags().BoolVar(&f.allowUnqualifiedTranslocations, "allow-unqualified-translocations", false, "permit tloc() without fromLoc/toLoc")
	cmd.Flags().StringSliceVar(&f.requiredAnnotations, "require-annotation", nil, "annotation keyword required on every qualified edge (repeatable)")
}

func (f *compileFlags) options() config.Options {
	opts := config.DefaultOptions()
	opts.AllowNested = f.allowNested
	opts.AllowNakedNames = f.allowNakedNames
	opts.CitationClearing = !f.noCitationClearing
	opts.DisallowUnqualifiedTranslocations = !f.allowUnqualifiedTranslocations
	opts.RequiredAnnotations = f.requiredAnnotations
	return opts
}

// mustOpenInput opens args[0], or falls back to stdin when no path is
// given, the way cmd/bip's import commands accept a path or "-".
func mustOpenInput(args []string) (io.ReadCloser, string) {
	if len(args) == 0 || args[0] == "-" {
		return io.NopCloser(os.Stdin), "<stdin>"
	}
	f, err := os.Open(args[0])
	if err != nil {
		exitWithError(ExitError, "opening %s: %v", args[0], err)
	}
	return f, args[0]
}

// mustOpenResolver builds a Resolver backed by the global resource cache.
// It exits with ExitConfigError when the global config cannot be loaded or
// the cache cannot be opened; it never returns nil.
func mustOpenResolver() *resolver.Resolver {
	global, err := config.LoadGlobal()
	if err != nil {
		exitWithError(ExitConfigError, "loading global config: %v", err)
	}

	cache, err := rescache.Open(global.CacheDir)
	if err != nil {
		exitWithError(ExitConfigError, "opening resource cache: %v", err)
	}

	return resolver.New(cache, global.HTTPTimeout, global.RateLimitHz)
}
