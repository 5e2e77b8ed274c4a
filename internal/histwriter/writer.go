// Package histwriter writes rendered hand reports to their destination.
package histwriter

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// Writer is the output sink for rendered hand histories.
type Writer interface {
	WriteHandHistory(handID string, content string) error
}

// FileWriter writes one file per hand under a base directory.
type FileWriter struct {
	directory string
}

// NewFileWriter creates a file-based writer rooted at directory.
func NewFileWriter(directory string) *FileWriter {
	return &FileWriter{directory: directory}
}

// WriteHandHistory writes the report to <dir>/hand_<id>.txt, creating the
// directory if needed.
func (w *FileWriter) WriteHandHistory(handID string, content string) error {
	if err := os.MkdirAll(w.directory, 0755); err != nil {
		return fmt.Errorf("histwriter: create directory: %w", err)
	}

	filename := filepath.Join(w.directory, fmt.Sprintf("hand_%s.txt", handID))
	if err := os.WriteFile(filename, []byte(content), 0644); err != nil {
		return fmt.Errorf("histwriter: write %s: %w", filename, err)
	}

	return nil
}

// StreamWriter appends every report to a single stream, in call order.
type StreamWriter struct {
	w io.Writer
}

// NewStreamWriter creates a writer that streams reports to w.
func NewStreamWriter(w io.Writer) *StreamWriter {
	return &StreamWriter{w: w}
}

// WriteHandHistory writes the report to the stream.
func (s *StreamWriter) WriteHandHistory(handID string, content string) error {
	if _, err := io.WriteString(s.w, content); err != nil {
		return fmt.Errorf("histwriter: write hand %s: %w", handID, err)
	}
	return nil
}
