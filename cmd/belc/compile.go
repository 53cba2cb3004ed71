package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pybel/belgo/internal/parser"
)

var compileCmd = &cobra.Command{
	Use:   "compile [file]",
	Short: "Compile a BEL document into a graph and report its shape",
	Long: `Compile a BEL document (spec.md §6.4's compile(lines, options) -> Graph)
and print a summary of the resulting graph: node count, edge count,
document metadata, and any warnings collected along the way.

Reads from stdin when no file is given, or "-" is given explicitly.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runCompile,
}

var compileFlagSet compileFlags

func init() {
	compileFlagSet.register(compileCmd)
	rootCmd.AddCommand(compileCmd)
}

// compileSummary is the JSON shape belc compile prints.
type compileSummary struct {
	RunID    string `json:"run_id"`
	Name     string `json:"name"`
	Version  string `json:"version"`
	Nodes    int    `json:"nodes"`
	Edges    int    `json:"edges"`
	Warnings int    `json:"warnings"`
}

func runCompile(cmd *cobra.Command, args []string) error {
	in, name := mustOpenInput(args)
	defer in.Close()

	res := mustOpenResolver()

	result, err := parser.Compile(context.Background(), in, compileFlagSet.options(), res)
	if err != nil {
		exitWithError(ExitDataError, "compiling %s: %v", name, err)
	}

	g := result.Graph
	if humanOutput {
		outputHuman("%s v%s: %d nodes, %d edges, %d warnings (run %s)\n",
			g.Metadata.Name, g.Metadata.Version, len(g.Nodes()), len(g.Edges()), len(g.Warnings()), result.RunID)
		return nil
	}

	return outputJSON(compileSummary{
		RunID:    result.RunID,
		Name:     g.Metadata.Name,
		Version:  g.Metadata.Version,
		Nodes:    len(g.Nodes()),
		Edges:    len(g.Edges()),
		Warnings: len(g.Warnings()),
	})
}

func outputHuman(format string, args ...interface{}) {
	fmt.Printf(format, args...)
}
