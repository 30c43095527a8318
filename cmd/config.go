package cmd

import "github.com/spf13/cobra"

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage csvmerge configuration file values.",
	Long: `Create and display the csvmerge configuration file.

The configuration stores defaults for the merge command:
- merge.root / merge.output_dir / merge.delimiter / merge.format
- history.db`,
	Example: `
  # Create default config in $HOME/.csvmerge.yaml
  csvmerge config create

  # Show active config and source file
  csvmerge config show
`,
}

func init() {
	rootCmd.AddCommand(configCmd)
}
