package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/pybel/belgo/internal/parser"
	"github.com/pybel/belgo/internal/warning"
)

var warningsCmd = &cobra.Command{
	Use:   "warnings [file]",
	Short: "Compile a BEL document and print only the warnings it produced",
	Long: `Compile a BEL document and print its recoverable diagnostics (spec.md
§7.2): the Warning values collected while compiling, one per skipped
statement or control-directive problem. A fatal error (spec.md §7.1)
still aborts the command entirely, since there is no graph to report
warnings on.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runWarnings,
}

var warningsFlagSet compileFlags

func init() {
	warningsFlagSet.register(warningsCmd)
	rootCmd.AddCommand(warningsCmd)
}

func runWarnings(cmd *cobra.Command, args []string) error {
	in, name := mustOpenInput(args)
	defer in.Close()

	res := mustOpenResolver()

	result, err := parser.Compile(context.Background(), in, warningsFlagSet.options(), res)
	if err != nil {
		exitWithError(ExitDataError, "compiling %s: %v", name, err)
	}

	warnings := result.Graph.Warnings()
	if humanOutput {
		for _, w := range warnings {
			outputHuman("%s\n", w.Error())
		}
		return nil
	}

	return outputJSON(struct {
		Warnings []warning.Warning `json:"warnings"`
	}{Warnings: warnings})
}
