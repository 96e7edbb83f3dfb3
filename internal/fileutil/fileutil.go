// Package fileutil provides file output helpers for generated documents.
package fileutil

import (
	"encoding/json"
	"fmt"
	"os"
)

// OwnerReadWrite is the file permission mode for generated output files
// containing potentially sensitive API data (owner read/write only).
const OwnerReadWrite os.FileMode = 0o600

// WriteJSON writes v as pretty-printed JSON to path, overwriting any
// existing file unconditionally. There is no atomic-write protection; a
// failed write may leave a partial file behind.
func WriteJSON(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling %s: %w", path, err)
	}
	data = append(data, '\n')
	if err := os.WriteFile(path, data, OwnerReadWrite); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
