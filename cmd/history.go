package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"csvmerge/config"
	"csvmerge/storage"
)

var historyDBPath string

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recorded merge runs, newest first",
	Long: `List the merge runs recorded by "merge --history-db".

Each line shows when a directory was merged, the output file it produced,
and how many source files and rows went into it.`,
	Example: `
  # List runs from an explicit database
  csvmerge history --db ./csvmerge.db

  # List runs from the database configured as history.db
  csvmerge history
`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadAndValidate()
		if err != nil {
			return err
		}

		path := firstNonEmpty(historyDBPath, cfg.History.DB)
		if path == "" {
			return fmt.Errorf("history database path required (set --db or history.db in config)")
		}

		store, err := storage.OpenSQLite(path)
		if err != nil {
			return err
		}
		defer store.Close()

		runs, err := store.ListRuns()
		if err != nil {
			return err
		}

		if len(runs) == 0 {
			fmt.Println("No merge runs recorded.")
			return nil
		}

		for _, run := range runs {
			fmt.Printf("%s  %s -> %s  files=%d rows=%d\n",
				run.CreatedAt.Format(time.RFC3339),
				run.Directory,
				run.OutputPath,
				run.FilesMerged,
				run.RowsWritten,
			)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(historyCmd)

	historyCmd.Flags().StringVar(&historyDBPath, "db", "", "Path to the merge-run history database")
}
