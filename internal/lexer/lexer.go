// Package lexer implements the BEL line preprocessor (spec.md §4.1): a
// pure function over an input byte stream that splits it into logical
// lines, merging backslash-continuations and quote-spanning lines,
// stripping comments, and tracking the 1-based source line number of
// each logical line's first physical line.
//
// Grounded on the teacher's internal/conflict.Parse: a bufio.Scanner
// driven state machine that tracks line numbers while reassembling
// multi-physical-line logical units, applied here to backslash/quote
// continuation instead of merge-conflict markers.
package lexer

import (
	"bufio"
	"io"
	"strings"

	"github.com/pybel/belgo/internal/warning"
)

// Line is one logical line paired with the source line number of its
// first physical line (spec.md §4.1's output contract).
type Line struct {
	Number int
	Text   string
	// Debug is true for a preserved `#:`-prefixed debug comment (spec.md
	// §4.1, §9).
	Debug bool
}

// Lex splits r into logical lines, returning any warnings produced by
// unterminated quotes at EOF (spec.md §4.1's "yield a ... syntax error
// to the warnings list and the partial line is discarded").
func Lex(r io.Reader) ([]Line, []warning.Warning) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var lines []Line
	var warnings []warning.Warning

	var pending []string
	pendingStart := 0
	physicalLine := 0

	for scanner.Scan() {
		physicalLine++
		raw := scanner.Text()

		if len(pending) == 0 {
			trimmed := strings.TrimSpace(raw)
			if trimmed == "" {
				continue
			}
			if strings.HasPrefix(trimmed, "#") {
				if strings.HasPrefix(trimmed, "#:") {
					lines = append(lines, Line{Number: physicalLine, Text: trimmed, Debug: true})
				}
				continue
			}
			pendingStart = physicalLine
		}

		piece := strings.TrimSpace(raw)
		backslashContinued := strings.HasSuffix(piece, `\`)
		if backslashContinued {
			piece = strings.TrimSpace(strings.TrimSuffix(piece, `\`))
		}
		pending = append(pending, piece)

		joined := strings.Join(pending, " ")
		if backslashContinued || quoteStateAfter(joined) {
			continue
		}

		lines = append(lines, Line{Number: pendingStart, Text: joined})
		pending = nil
	}

	if len(pending) > 0 {
		warnings = append(warnings, warning.New(pendingStart, strings.Join(pending, " "), warning.KindBelSyntax, "unterminated quoted string at end of file"))
	}

	if err := scanner.Err(); err != nil {
		warnings = append(warnings, warning.New(physicalLine, "", warning.KindBelSyntax, err.Error()))
	}

	return lines, warnings
}

// quoteStateAfter reports whether s ends in the middle of an open
// (unterminated) double-quoted string, accounting for backslash-escaped
// quotes.
func quoteStateAfter(s string) bool {
	open := false
	escaped := false
	for _, r := range s {
		switch {
		case escaped:
			escaped = false
		case r == '\\':
			escaped = true
		case r == '"':
			open = !open
		default:
			escaped = false
		}
	}
	return open
}
