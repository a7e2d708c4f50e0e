package writer

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
)

// SingleFile writes every row to one CSV file in arrival order.
type SingleFile struct {
	file   *os.File
	writer *csv.Writer
	path   string
}

// NewSingleFile creates (or truncates) path, writes header, and returns a
// ready-to-use SingleFile writer.
func NewSingleFile(path string, header []string) (*SingleFile, error) {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create directory structure for %s: %w", path, err)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("failed to create output file %s: %w", path, err)
	}

	w := csv.NewWriter(f)
	if err := w.Write(header); err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to write header to %s: %w", path, err)
	}
	w.Flush()
	if err := w.Error(); err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to flush header to %s: %w", path, err)
	}

	return &SingleFile{file: f, writer: w, path: path}, nil
}

// WriteBatch appends every row in batch to the output file.
func (s *SingleFile) WriteBatch(batch []Row) error {
	for _, row := range batch {
		if err := s.writer.Write(row.Fields); err != nil {
			return fmt.Errorf("failed to write row to %s: %w", s.path, err)
		}
	}
	return nil
}

// Flush flushes buffered writes and closes the underlying file.
func (s *SingleFile) Flush() error {
	s.writer.Flush()
	if err := s.writer.Error(); err != nil {
		return fmt.Errorf("failed to flush single output file %s: %w", s.path, err)
	}
	return s.file.Close()
}

// FilesCreated always reports 1 for single-file output.
func (s *SingleFile) FilesCreated() int { return 1 }
