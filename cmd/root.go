/*
Copyright © 2026 The csvmerge Authors

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"csvmerge/config"
)

var cfgFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "csvmerge",
	Short: "Merge per-directory CSV collections into one consolidated output per directory.",
	Long: `csvmerge scans the immediate subdirectories of a root path, merges the CSV
files inside each one into a single output file, and aligns every file's
columns to the canonical header taken from the directory's first file.

Columns are matched by exact name. Missing columns become empty cells,
extra columns are dropped, and short rows are padded. Output files are
written to a temporary path and promoted with an atomic rename, so a
previously written output is never left half-merged.
`,
	Example: `
  # Merge ./data/*/ into ./merged, semicolon-delimited
  csvmerge merge ./data ./merged ";"

  # Same, flag style, with run history
  csvmerge merge --root ./data --out ./merged --delimiter ";" --history-db ./csvmerge.db

  # Preview headers and mismatches without writing anything
  csvmerge inspect ./data

  # Merge into Excel workbooks instead of CSV
  csvmerge merge ./data ./merged --format excel

  # Show recorded merge runs
  csvmerge history --db ./csvmerge.db
`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	config.SetDefaults()

	rootCmd.PersistentFlags().StringVar(&cfgFile, "configFile", "", "Config file override (default discovery: $HOME/.csvmerge.yaml, then ./.csvmerge.yaml)")
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory.
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		// Search config in home directory with name ".csvmerge" (without extension).
		viper.AddConfigPath(home)
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName(".csvmerge")
	}

	viper.AutomaticEnv() // read in environment variables that match

	// The config file is optional; built-in defaults cover every key.
	_ = viper.ReadInConfig()
}
