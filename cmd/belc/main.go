// Command belc is the BEL compiler's command-line frontend (spec.md §1
// names the CLI an external collaborator, not core compiler scope).
//
// Grounded on the teacher's cmd/bip/main.go: a package-level rootCmd with
// SilenceUsage/SilenceErrors, a persistent --human flag, and a main that
// exits with a named code on error instead of letting cobra print its
// own usage dump.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Version is overridden at build time via -ldflags.
var Version = "dev"

var humanOutput bool

var rootCmd = &cobra.Command{
	Use:   "belc",
	Short: "Compile and inspect BEL (Biological Expression Language) documents",
	Long: `belc compiles BEL scripts into a BELGraph, prints the warnings a
compilation produced, or runs individual pipeline stages (lexing, term
parsing) in isolation for inspection.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&humanOutput, "human", false, "print human-readable output instead of JSON")
	rootCmd.Version = Version
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(ExitError)
	}
}
