package main

import (
	"encoding/json"
	"fmt"
	"os"
)

// outputJSON writes v as indented JSON to stdout, mirroring the
// teacher's output.go outputJSON.
func outputJSON(v interface{}) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// ErrorResponse is the JSON shape for a failed command when --human is
// not set.
type ErrorResponse struct {
	Error string `json:"error"`
}

// exitWithError prints an error in the requested format and exits with
// code.
func exitWithError(code int, format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	if humanOutput {
		fmt.Fprintf(os.Stderr, "error: %s\n", msg)
	} else {
		_ = outputJSON(ErrorResponse{Error: msg})
	}
	os.Exit(code)
}
