package merger

import (
	"path/filepath"
	"strings"

	"csvmerge/internal/diag"
	"csvmerge/scanner"
)

// Inspect walks the root like Run does but writes nothing: it prints each
// directory's canonical header and the per-file mismatch diagnostics a
// merge would emit.
func Inspect(root string, delimiter byte, reporter *diag.Reporter) error {
	if reporter == nil {
		reporter = diag.Default()
	}

	dirs, err := scanner.Subdirs(root)
	if err != nil {
		return err
	}
	if len(dirs) == 0 {
		reporter.Noticef("No subdirectories under %s", root)
		return nil
	}

	for _, dir := range dirs {
		name := filepath.Base(dir)

		files, err := scanner.CSVFiles(dir)
		if err != nil {
			return err
		}
		if len(files) == 0 {
			reporter.Noticef("Skipping '%s': no CSV files", name)
			continue
		}

		canonical, err := ReadHeader(files[0], delimiter)
		if err != nil {
			return err
		}
		if len(canonical) == 0 {
			reporter.Warnf("Empty header in '%s'; skipping directory '%s'", files[0], name)
			continue
		}

		reporter.Progressf("%s: %d files, canonical header: %s", name, len(files), strings.Join(canonical, ", "))

		for _, file := range files {
			header, err := ReadHeader(file, delimiter)
			if err != nil {
				return err
			}
			reportHeaderDiff(reporter, file, canonical, header)
		}
	}

	return nil
}
