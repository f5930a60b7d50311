package storage

import (
	"encoding/json"
	"io"
	"os"

	"github.com/san-kum/gesturefx/internal/scenario"
)

type ExportData struct {
	Run      RunMetadata    `json:"run"`
	Timeline []scenario.Row `json:"timeline"`
}

// Export writes a run and its timeline as one JSON document.
func (s *Store) Export(w io.Writer, runID string) error {
	meta, err := s.Load(runID)
	if err != nil {
		return err
	}
	rows, err := s.LoadTimeline(runID)
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(ExportData{Run: *meta, Timeline: rows})
}

// ExportFile is Export into a file at path.
func (s *Store) ExportFile(path, runID string) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := s.Export(file, runID); err != nil {
		file.Close()
		return err
	}
	return file.Close()
}
