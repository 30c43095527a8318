package config

import (
	"bytes"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

const (
	KeyMergeRoot      = "merge.root"
	KeyMergeOutputDir = "merge.output_dir"
	KeyMergeDelimiter = "merge.delimiter"
	KeyMergeFormat    = "merge.format"
	KeyHistoryDB      = "history.db"
)

type Config struct {
	Merge   MergeConfig   `mapstructure:"merge" validate:"required"`
	History HistoryConfig `mapstructure:"history"`
}

type MergeConfig struct {
	Root      string `mapstructure:"root" validate:"required"`
	OutputDir string `mapstructure:"output_dir" validate:"required"`
	Delimiter string `mapstructure:"delimiter" validate:"required"`
	Format    string `mapstructure:"format" validate:"required,oneof=csv excel"`
}

type HistoryConfig struct {
	// DB is the path of the merge-run history database. Empty disables
	// history recording.
	DB string `mapstructure:"db"`
}

// SetDefaults sets default values if not provided
func SetDefaults() {
	setDefaults(viper.GetViper())
}

// LoadAndValidate loads config from Viper and validates it
func LoadAndValidate() (*Config, error) {
	return loadAndValidateFromViper(viper.GetViper())
}

// ValidateYAMLContent validates configuration from raw YAML content.
func ValidateYAMLContent(content []byte) (*Config, error) {
	local := viper.New()
	setDefaults(local)
	local.SetConfigType("yaml")
	if err := local.ReadConfig(bytes.NewReader(content)); err != nil {
		return nil, fmt.Errorf("read config content: %w", err)
	}
	return loadAndValidateFromViper(local)
}

// ExampleYAML returns the default configuration template.
func ExampleYAML() string {
	return `# csvmerge configuration
merge:
  root: "."
  output_dir: "./_out"
  delimiter: ","
  format: "csv"

history:
  db: ""
`
}

func loadAndValidateFromViper(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	validate := validator.New()
	if err := validate.Struct(cfg); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	if _, err := ParseDelimiter(cfg.Merge.Delimiter); err != nil {
		return nil, fmt.Errorf("validation failed: %s: %w", KeyMergeDelimiter, err)
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault(KeyMergeRoot, ".")
	v.SetDefault(KeyMergeOutputDir, "./_out")
	v.SetDefault(KeyMergeDelimiter, ",")
	v.SetDefault(KeyMergeFormat, "csv")
	v.SetDefault(KeyHistoryDB, "")
}

// ParseDelimiter checks that the value is exactly one ASCII character and
// returns it as the byte handed to the CSV writer.
func ParseDelimiter(value string) (byte, error) {
	if value == "" {
		return 0, fmt.Errorf("delimiter must not be empty")
	}
	if utf8.RuneCountInString(value) != 1 {
		return 0, fmt.Errorf("delimiter must be a single character, got %q", value)
	}
	r, _ := utf8.DecodeRuneInString(value)
	if r > 127 {
		return 0, fmt.Errorf("delimiter must be a single ASCII character, got %q", value)
	}
	return byte(r), nil
}

// NormalizeFormat lower-cases and trims an output format value.
func NormalizeFormat(value string) string {
	return strings.TrimSpace(strings.ToLower(value))
}
