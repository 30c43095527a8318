package output

import (
	"fmt"
	"os"

	"github.com/xuri/excelize/v2"
)

type ExcelWriter struct {
	finalPath string
	tmpPath   string
	file      *excelize.File
	stream    *excelize.StreamWriter
	row       int
	committed bool
}

func NewExcelWriter(finalPath string) (*ExcelWriter, error) {
	file := excelize.NewFile()
	stream, err := file.NewStreamWriter(file.GetSheetName(0))
	if err != nil {
		_ = file.Close()
		return nil, fmt.Errorf("open excel stream writer: %w", err)
	}

	return &ExcelWriter{
		finalPath: finalPath,
		tmpPath:   finalPath + ".tmp",
		file:      file,
		stream:    stream,
	}, nil
}

func (w *ExcelWriter) Begin(header []string) error {
	return w.writeRow(header)
}

func (w *ExcelWriter) WriteRow(cells []string) error {
	return w.writeRow(cells)
}

func (w *ExcelWriter) writeRow(cells []string) error {
	w.row++
	cell, err := excelize.CoordinatesToCellName(1, w.row)
	if err != nil {
		return fmt.Errorf("resolve excel cell for row %d: %w", w.row, err)
	}

	values := make([]interface{}, len(cells))
	for i, value := range cells {
		values[i] = value
	}
	if err := w.stream.SetRow(cell, values); err != nil {
		return fmt.Errorf("set excel row %d: %w", w.row, err)
	}
	return nil
}

func (w *ExcelWriter) Commit() error {
	if err := w.stream.Flush(); err != nil {
		return fmt.Errorf("flush excel stream: %w", err)
	}
	if err := w.file.SaveAs(w.tmpPath); err != nil {
		return fmt.Errorf("save excel output %s: %w", w.tmpPath, err)
	}
	if err := w.file.Close(); err != nil {
		return fmt.Errorf("close excel output %s: %w", w.tmpPath, err)
	}
	if err := os.Rename(w.tmpPath, w.finalPath); err != nil {
		return fmt.Errorf("move %s -> %s: %w", w.tmpPath, w.finalPath, err)
	}
	w.committed = true
	return nil
}

func (w *ExcelWriter) Abort() {
	if w.committed {
		return
	}
	_ = w.file.Close()
}
