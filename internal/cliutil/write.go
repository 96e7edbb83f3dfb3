// Package cliutil provides utilities for CLI operations.
package cliutil

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// Writef writes formatted output to the writer.
// If the write fails, it logs to stderr (useful for debugging).
func Writef(w io.Writer, format string, args ...any) {
	if _, err := fmt.Fprintf(w, format, args...); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "write error: %v\n", err)
	}
}

// PrintDocument writes a generated document to the writer as indented
// JSON, preceded by a labelled header line. Used by the CLI to dump the
// generated environment and collection structures for inspection.
func PrintDocument(w io.Writer, label string, doc any) error {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling %s: %w", label, err)
	}
	Writef(w, "%s:\n%s\n", label, data)
	return nil
}
