package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"csvmerge/config"
	"csvmerge/internal/diag"
	"csvmerge/merger"
	"csvmerge/storage"
)

var (
	mergeRoot      string
	mergeOut       string
	mergeDelimiter string
	mergeFormat    string
	mergeHistoryDB string
)

var mergeCmd = &cobra.Command{
	Use:   "merge [root] [out] [delimiter]",
	Short: "Merge the CSV files of every subdirectory under root into out",
	Long: `Merge the CSV files directly inside each immediate subdirectory of root
into one output file per subdirectory, named after it.

The canonical column order for each directory comes from its first CSV
file in path-sorted order (a leading byte-order-mark is stripped). Every
file's rows are realigned to that order: columns match by exact name,
missing columns become empty cells, extra columns are dropped, and rows
shorter than their header are padded.

Positional arguments default to the current directory, ./_out, and a
comma. Flags take precedence over positional arguments, which take
precedence over configuration values.`,
	Example: `
  # Defaults: scan ., write ./_out, comma-delimited
  csvmerge merge

  # Positional style
  csvmerge merge ./data ./merged ";"

  # Flag style with Excel output
  csvmerge merge --root ./data --out ./merged --format excel

  # Record each promoted output in a history database
  csvmerge merge ./data ./merged --history-db ./csvmerge.db
`,
	Args: cobra.MaximumNArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadAndValidate()
		if err != nil {
			return err
		}

		root := firstNonEmpty(mergeRoot, positional(args, 0), cfg.Merge.Root)
		outDir := firstNonEmpty(mergeOut, positional(args, 1), cfg.Merge.OutputDir)
		delimValue := firstNonEmpty(mergeDelimiter, positional(args, 2), cfg.Merge.Delimiter)
		format := config.NormalizeFormat(firstNonEmpty(mergeFormat, cfg.Merge.Format))
		historyPath := firstNonEmpty(mergeHistoryDB, cfg.History.DB)

		delimiter, err := config.ParseDelimiter(delimValue)
		if err != nil {
			return err
		}

		var history *storage.SQLiteStore
		if historyPath != "" {
			history, err = storage.OpenSQLite(historyPath)
			if err != nil {
				return err
			}
			defer history.Close()
		}

		result, err := merger.Run(merger.Options{
			Root:      root,
			OutputDir: outDir,
			Format:    format,
			Delimiter: delimiter,
			Reporter:  diag.Default(),
			History:   history,
		})
		if err != nil {
			return err
		}

		fmt.Printf("Merge completed. Directories merged: %d, skipped: %d, Files: %d, Rows: %d\n",
			result.DirsMerged,
			result.DirsSkipped,
			result.FilesMerged,
			result.RowsWritten,
		)
		fmt.Printf("All done. Outputs in: %s\n", outDir)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(mergeCmd)

	mergeCmd.Flags().StringVar(&mergeRoot, "root", "", "Root directory to scan (overrides first positional argument)")
	mergeCmd.Flags().StringVarP(&mergeOut, "out", "o", "", "Output directory for merged files (overrides second positional argument)")
	mergeCmd.Flags().StringVarP(&mergeDelimiter, "delimiter", "d", "", "Single ASCII delimiter character (overrides third positional argument)")
	mergeCmd.Flags().StringVarP(&mergeFormat, "format", "f", "", "Output format: csv|excel")
	mergeCmd.Flags().StringVar(&mergeHistoryDB, "history-db", "", "Path to a SQLite database recording one row per written output (empty disables)")
}

func positional(args []string, index int) string {
	if index >= len(args) {
		return ""
	}
	return args[index]
}

// firstNonEmpty returns the first supplied value. An unsupplied flag or
// positional is the empty string; anything else counts, including
// whitespace, so a tab or space delimiter survives resolution and is
// judged by ParseDelimiter alone.
func firstNonEmpty(values ...string) string {
	for _, value := range values {
		if value != "" {
			return value
		}
	}
	return ""
}
