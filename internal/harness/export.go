package harness

import (
	"encoding/json"
	"fmt"
	"os"
)

// ExportJSON writes v to path as indented JSON. It accepts both
// *Comparison and *SweepResult.
func ExportJSON(v any, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("harness: export json: %w", err)
	}

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		f.Close()
		return fmt.Errorf("harness: export json: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("harness: export json: %w", err)
	}
	return nil
}
