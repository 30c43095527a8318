package merger

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"
)

const bom = "\uFEFF"

// ReadHeader reads the first record of a CSV file and strips a UTF-8
// byte-order-mark from the first cell. An empty file yields an empty header.
func ReadHeader(path string, delimiter byte) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer file.Close()

	reader := newCSVReader(file, delimiter)
	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read header %s: %w", path, err)
	}

	stripBOM(header)
	return header, nil
}

func newCSVReader(r io.Reader, delimiter byte) *csv.Reader {
	reader := csv.NewReader(r)
	reader.Comma = rune(delimiter)
	reader.FieldsPerRecord = -1
	return reader
}

// stripBOM removes a leading UTF-8 BOM from the first cell only. Later
// cells are never touched, so name comparison stays byte-exact.
func stripBOM(header []string) {
	if len(header) == 0 {
		return
	}
	header[0] = strings.TrimPrefix(header[0], bom)
}

// BuildMapping returns, for each canonical column, the index of that
// column's name in the file header, or -1 when the name is absent. Names
// match on byte-exact equality, no case folding or trimming.
func BuildMapping(canonical, fileHeader []string) []int {
	mapping := make([]int, len(canonical))
	for i, name := range canonical {
		mapping[i] = slices.Index(fileHeader, name)
	}
	return mapping
}

// MapRow realigns one data row to canonical order. Absent columns and
// cells beyond the end of a ragged row become empty strings; source cells
// not covered by the mapping are dropped.
func MapRow(row []string, mapping []int) []string {
	out := make([]string, len(mapping))
	for i, src := range mapping {
		if src < 0 || src >= len(row) {
			continue
		}
		out[i] = row[src]
	}
	return out
}

// Diff reports the canonical names absent from the file header and the
// file names absent from canonical. Both lists keep their source order so
// diagnostics are deterministic.
func Diff(canonical, fileHeader []string) (missing, extra []string) {
	for _, name := range canonical {
		if !slices.Contains(fileHeader, name) {
			missing = append(missing, name)
		}
	}
	for _, name := range fileHeader {
		if !slices.Contains(canonical, name) {
			extra = append(extra, name)
		}
	}
	return missing, extra
}
