package merger

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"csvmerge/internal/diag"
	"csvmerge/output"
	"csvmerge/scanner"
	"csvmerge/storage"
)

type Options struct {
	Root      string
	OutputDir string
	Format    string
	Delimiter byte
	Reporter  *diag.Reporter
	// History records one row per promoted output when set.
	History *storage.SQLiteStore
}

type Result struct {
	DirsMerged  int
	DirsSkipped int
	FilesMerged int
	RowsWritten int
}

// Run merges every immediate subdirectory of opts.Root into one output
// file per directory under opts.OutputDir. Directories are processed one
// at a time in path order; any read, write, or rename failure aborts the
// whole run.
func Run(opts Options) (*Result, error) {
	reporter := opts.Reporter
	if reporter == nil {
		reporter = diag.Default()
	}

	dirs, err := scanner.Subdirs(opts.Root)
	if err != nil {
		return nil, err
	}

	if err := os.MkdirAll(opts.OutputDir, 0o755); err != nil {
		return nil, fmt.Errorf("create output dir %s: %w", opts.OutputDir, err)
	}

	result := &Result{}
	if len(dirs) == 0 {
		reporter.Noticef("No subdirectories under %s", opts.Root)
		return result, nil
	}

	for _, dir := range dirs {
		if err := mergeDirectory(dir, opts, reporter, result); err != nil {
			return nil, err
		}
	}

	return result, nil
}

func mergeDirectory(dir string, opts Options, reporter *diag.Reporter, result *Result) error {
	name := filepath.Base(dir)

	files, err := scanner.CSVFiles(dir)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		reporter.Noticef("Skipping '%s': no CSV files", name)
		result.DirsSkipped++
		return nil
	}

	canonical, err := ReadHeader(files[0], opts.Delimiter)
	if err != nil {
		return err
	}
	if len(canonical) == 0 {
		reporter.Warnf("Empty header in '%s'; skipping directory '%s'", files[0], name)
		result.DirsSkipped++
		return nil
	}

	ext, err := output.Extension(opts.Format)
	if err != nil {
		return err
	}
	outPath := filepath.Join(opts.OutputDir, name+"."+ext)

	writer, err := output.NewWriter(opts.Format, outPath, opts.Delimiter)
	if err != nil {
		return err
	}
	defer writer.Abort()

	if err := writer.Begin(canonical); err != nil {
		return err
	}

	rows := 0
	for _, file := range files {
		n, err := mergeFile(file, canonical, opts.Delimiter, writer, reporter)
		if err != nil {
			return err
		}
		rows += n
	}

	if err := writer.Commit(); err != nil {
		return err
	}
	reporter.Progressf("Wrote: %s", outPath)

	result.DirsMerged++
	result.FilesMerged += len(files)
	result.RowsWritten += rows

	if opts.History != nil {
		run := storage.MergeRun{
			Directory:   name,
			OutputPath:  outPath,
			FilesMerged: len(files),
			RowsWritten: rows,
			CreatedAt:   time.Now(),
		}
		if err := opts.History.InsertRun(run); err != nil {
			return err
		}
	}

	return nil
}

// mergeFile replays every data row of one file through its column mapping
// and returns the number of rows written.
func mergeFile(path string, canonical []string, delimiter byte, writer output.Writer, reporter *diag.Reporter) (int, error) {
	file, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("open %s: %w", path, err)
	}
	defer file.Close()

	reader := newCSVReader(file, delimiter)
	header, err := reader.Read()
	if err != nil && !errors.Is(err, io.EOF) {
		return 0, fmt.Errorf("read header %s: %w", path, err)
	}
	stripBOM(header)

	mapping := BuildMapping(canonical, header)
	reportHeaderDiff(reporter, path, canonical, header)

	rows := 0
	for {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return rows, fmt.Errorf("read row in %s: %w", path, err)
		}
		if err := writer.WriteRow(MapRow(row, mapping)); err != nil {
			return rows, err
		}
		rows++
	}

	return rows, nil
}

func reportHeaderDiff(reporter *diag.Reporter, path string, canonical, header []string) {
	if slices.Equal(canonical, header) {
		return
	}

	missing, extra := Diff(canonical, header)
	if len(missing) == 0 && len(extra) == 0 {
		reporter.Infof("Column order differs in '%s'. Reordering to canonical.", path)
		return
	}

	reporter.Warnf(
		"Header mismatch in '%s'. Missing: [%s] | Extra: [%s]. Columns will be reordered; missing -> empty; extra -> ignored.",
		path,
		strings.Join(missing, ", "),
		strings.Join(extra, ", "),
	)
}
