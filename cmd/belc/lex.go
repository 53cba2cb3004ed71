package main

import (
	"github.com/spf13/cobra"

	"github.com/pybel/belgo/internal/lexer"
	"github.com/pybel/belgo/internal/warning"
)

var lexCmd = &cobra.Command{
	Use:   "lex [file]",
	Short: "Split a BEL document into logical lines",
	Long: `Run the lexer/preprocessor stage alone (spec.md §4.1): strip comments,
join backslash-continued lines and lines inside an unclosed quote, and report the
resulting logical lines without parsing them further.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runLex,
}

func init() {
	rootCmd.AddCommand(lexCmd)
}

type lexLine struct {
	Number int    `json:"number"`
	Text   string `json:"text"`
	Debug  bool   `json:"debug,omitempty"`
}

func runLex(cmd *cobra.Command, args []string) error {
	in, _ := mustOpenInput(args)
	defer in.Close()

	lines, warnings := lexer.Lex(in)

	if humanOutput {
		for _, l := range lines {
			outputHuman("%d: %s\n", l.Number, l.Text)
		}
		return nil
	}

	out := make([]lexLine, len(lines))
	for i, l := range lines {
		out[i] = lexLine{Number: l.Number, Text: l.Text, Debug: l.Debug}
	}

	return outputJSON(struct {
		Lines    []lexLine         `json:"lines"`
		Warnings []warning.Warning `json:"warnings,omitempty"`
	}{Lines: out, Warnings: warnings})
}
