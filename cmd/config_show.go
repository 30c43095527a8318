package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"csvmerge/config"
)

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show active configuration values.",
	Long: `Display the currently loaded configuration and the resolved config file path.

This command validates the configuration before printing values.`,
	Example: `
  # Show active configuration
  csvmerge config show
`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := config.LoadAndValidate()
		if err != nil {
			fmt.Println("Invalid config:", err)
			return
		}

		if configPath := viper.ConfigFileUsed(); configPath != "" {
			fmt.Println("Config file loaded from:", configPath)
		} else {
			fmt.Println("No config file in use; showing built-in defaults.")
		}
		fmt.Println("Configuration:")
		fmt.Printf("merge.root: %s\n", cfg.Merge.Root)
		fmt.Printf("merge.output_dir: %s\n", cfg.Merge.OutputDir)
		fmt.Printf("merge.delimiter: %q\n", cfg.Merge.Delimiter)
		fmt.Printf("merge.format: %s\n", cfg.Merge.Format)
		fmt.Printf("history.db: %s\n", cfg.History.DB)
	},
}

func init() {
	configCmd.AddCommand(configShowCmd)
}
