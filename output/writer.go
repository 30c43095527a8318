package output

import (
	"fmt"
	"strings"
)

// Writer streams one merged output file: header first, then data rows.
// Rows are written to a temporary file next to the final path; Commit
// promotes the temporary file with a rename, so the final path either does
// not exist or holds a complete merge. Abort leaves the temporary file
// behind and never touches the final path.
type Writer interface {
	Begin(header []string) error
	WriteRow(cells []string) error
	Commit() error
	Abort()
}

func NewWriter(format, finalPath string, delimiter byte) (Writer, error) {
	switch normalizeFormat(format) {
	case "csv":
		return NewCSVWriter(finalPath, delimiter)
	case "excel", "xlsx":
		return NewExcelWriter(finalPath)
	default:
		return nil, fmt.Errorf("unsupported output format: %s", format)
	}
}

// Extension returns the output file extension for a format.
func Extension(format string) (string, error) {
	switch normalizeFormat(format) {
	case "csv":
		return "csv", nil
	case "excel", "xlsx":
		return "xlsx", nil
	default:
		return "", fmt.Errorf("unsupported output format: %s", format)
	}
}

func normalizeFormat(value string) string {
	return strings.TrimSpace(strings.ToLower(value))
}
