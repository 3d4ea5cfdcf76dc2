package exporter

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// WriteJSON writes any view to a JSON file wrapped in a metadata envelope.
func (w *CSVWriter) WriteJSON(filename string, view string, payload interface{}) error {
	fullPath := filepath.Join(w.baseDir, filename)

	if err := os.MkdirAll(filepath.Dir(fullPath), 0o755); err != nil {
		return fmt.Errorf("create report directory: %w", err)
	}

	envelope := map[string]interface{}{
		"view":         view,
		"rows":         payload,
		"generated_at": time.Now().Format(time.RFC3339),
	}

	file, err := os.Create(fullPath)
	if err != nil {
		return fmt.Errorf("create JSON file: %w", err)
	}
	defer file.Close()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(envelope); err != nil {
		return fmt.Errorf("encode %s view: %w", view, err)
	}
	return nil
}
