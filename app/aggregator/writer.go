package aggregator

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

const (
	NewsFileName = "news.json"
	MetaFileName = "meta.json"
)

// Writer persists the two output documents of a run.
type Writer struct {
	outputDir string
}

func NewWriter(outputDir string) *Writer {
	return &Writer{outputDir: outputDir}
}

func (w *Writer) Run(result *Result) error {
	if err := os.MkdirAll(w.outputDir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	if err := w.writeJSON(NewsFileName, result.Items); err != nil {
		return fmt.Errorf("failed to write items document: %w", err)
	}

	if err := w.writeJSON(MetaFileName, result.Meta); err != nil {
		return fmt.Errorf("failed to write meta document: %w", err)
	}

	return nil
}

func (w *Writer) writeJSON(name string, v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal %s: %w", name, err)
	}
	data = append(data, '\n')

	path := filepath.Join(w.outputDir, name)
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}

	return nil
}
