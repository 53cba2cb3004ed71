package main

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/pybel/belgo/internal/parser"
)

var parseAllowNakedNames bool

var parseCmd = &cobra.Command{
	Use:   "parse <statement>",
	Short: "Parse a single BEL statement in isolation",
	Long: `Parse one BEL statement (spec.md §6.4's parse(statement_string) ->
{source, relation, target}) without namespace validation or graph
construction. Useful for checking a statement's shape before it is
embedded in a full document.`,
	Args: cobra.ExactArgs(1),
	RunE: runParse,
}

func init() {
	parseCmd.Flags().BoolVar(&parseAllowNakedNames, "allow-naked-names", false, "permit namespace-less term names")
	rootCmd.AddCommand(parseCmd)
}

// parseResult is the JSON shape belc parse prints.
type parseResult struct {
	Source      string `json:"source"`
	Relation    string `json:"relation,omitempty"`
	Target      string `json:"target,omitempty"`
	HasRelation bool   `json:"has_relation"`
	Warnings    int    `json:"warnings"`
}

func runParse(cmd *cobra.Command, args []string) error {
	flags := compileFlags{allowNakedNames: parseAllowNakedNames}
	options := flags.options()

	result, warnings, err := parser.ParseStatement(strings.TrimSpace(args[0]), options)
	if err != nil {
		exitWithError(ExitDataError, "parsing statement: %v", err)
	}

	out := parseResult{
		Source:      result.Source.Canonical(),
		HasRelation: result.HasRelation,
		Warnings:    len(warnings),
	}
	if result.HasRelation {
		out.Relation = string(result.Relation)
		out.Target = result.Target.Canonical()
	}

	if humanOutput {
		if out.HasRelation {
			outputHuman("%s %s %s\n", out.Source, out.Relation, out.Target)
		} else {
			outputHuman("%s\n", out.Source)
		}
		return nil
	}
	return outputJSON(out)
}
