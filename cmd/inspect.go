package cmd

import (
	"github.com/spf13/cobra"

	"csvmerge/config"
	"csvmerge/internal/diag"
	"csvmerge/merger"
)

var (
	inspectRoot      string
	inspectDelimiter string
)

var inspectCmd = &cobra.Command{
	Use:   "inspect [root]",
	Short: "Preview canonical headers and mismatch diagnostics without writing",
	Long: `Walk the root directory exactly like merge does, but write nothing.

For every subdirectory with CSV files, print its canonical header and the
mismatch or reorder diagnostics each file would produce during a merge.`,
	Example: `
  # Preview the current directory
  csvmerge inspect

  # Preview a specific root with a semicolon delimiter
  csvmerge inspect ./data --delimiter ";"
`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadAndValidate()
		if err != nil {
			return err
		}

		root := firstNonEmpty(inspectRoot, positional(args, 0), cfg.Merge.Root)
		delimValue := firstNonEmpty(inspectDelimiter, cfg.Merge.Delimiter)

		delimiter, err := config.ParseDelimiter(delimValue)
		if err != nil {
			return err
		}

		return merger.Inspect(root, delimiter, diag.Default())
	},
}

func init() {
	rootCmd.AddCommand(inspectCmd)

	inspectCmd.Flags().StringVar(&inspectRoot, "root", "", "Root directory to scan (overrides positional argument)")
	inspectCmd.Flags().StringVarP(&inspectDelimiter, "delimiter", "d", "", "Single ASCII delimiter character")
}
