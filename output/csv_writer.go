package output

import (
	"encoding/csv"
	"fmt"
	"os"
)

type CSVWriter struct {
	finalPath string
	tmpPath   string
	file      *os.File
	writer    *csv.Writer
	committed bool
}

func NewCSVWriter(finalPath string, delimiter byte) (*CSVWriter, error) {
	tmpPath := finalPath + ".tmp"
	file, err := os.Create(tmpPath)
	if err != nil {
		return nil, fmt.Errorf("create %s: %w", tmpPath, err)
	}

	writer := csv.NewWriter(file)
	writer.Comma = rune(delimiter)

	return &CSVWriter{
		finalPath: finalPath,
		tmpPath:   tmpPath,
		file:      file,
		writer:    writer,
	}, nil
}

func (w *CSVWriter) Begin(header []string) error {
	if err := w.writer.Write(header); err != nil {
		return fmt.Errorf("write header to %s: %w", w.tmpPath, err)
	}
	return nil
}

func (w *CSVWriter) WriteRow(cells []string) error {
	if err := w.writer.Write(cells); err != nil {
		return fmt.Errorf("write row to %s: %w", w.tmpPath, err)
	}
	return nil
}

// Commit flushes, closes, and renames the temporary file onto the final
// path. The rename is atomic because the temporary file lives in the same
// directory as the final path; spanning volumes is not supported.
func (w *CSVWriter) Commit() error {
	w.writer.Flush()
	if err := w.writer.Error(); err != nil {
		return fmt.Errorf("flush %s: %w", w.tmpPath, err)
	}
	if err := w.file.Close(); err != nil {
		return fmt.Errorf("close %s: %w", w.tmpPath, err)
	}
	if err := os.Rename(w.tmpPath, w.finalPath); err != nil {
		return fmt.Errorf("move %s -> %s: %w", w.tmpPath, w.finalPath, err)
	}
	w.committed = true
	return nil
}

// Abort closes the temporary file and abandons it at its .tmp path. The
// final path is never modified. Safe to call after Commit.
func (w *CSVWriter) Abort() {
	if w.committed {
		return
	}
	_ = w.file.Close()
}
