// Package cli provides the command-line interface for gitstage.
package cli

import (
	"encoding/json"
	"fmt"
	"io"
)

// render writes v as indented JSON when format is json, otherwise calls text.
func render(w io.Writer, format string, v any, text func(io.Writer) error) error {
	if format == OutputJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("failed to encode output: %w", err)
		}
		return nil
	}
	return text(w)
}

// printf writes formatted text, ignoring write errors on the terminal.
func printf(w io.Writer, format string, args ...any) {
	_, _ = fmt.Fprintf(w, format, args...)
}
