package config

import (
	"strings"
	"testing"
)

func TestValidateYAMLContent_AcceptsDefaults(t *testing.T) {
	t.Parallel()

	cfg, err := ValidateYAMLContent([]byte(ExampleYAML()))
	if err != nil {
		t.Fatalf("expected template to validate: %v", err)
	}
	if cfg.Merge.Root != "." {
		t.Fatalf("unexpected root: %q", cfg.Merge.Root)
	}
	if cfg.Merge.OutputDir != "./_out" {
		t.Fatalf("unexpected output dir: %q", cfg.Merge.OutputDir)
	}
	if cfg.Merge.Delimiter != "," {
		t.Fatalf("unexpected delimiter: %q", cfg.Merge.Delimiter)
	}
	if cfg.Merge.Format != "csv" {
		t.Fatalf("unexpected format: %q", cfg.Merge.Format)
	}
}

func TestValidateYAMLContent_RejectsUnsupportedFormat(t *testing.T) {
	t.Parallel()

	content := []byte(`merge:
  root: "."
  output_dir: "./_out"
  delimiter: ";"
  format: "parquet"
`)

	_, err := ValidateYAMLContent(content)
	if err == nil {
		t.Fatalf("expected validation error for unsupported format")
	}
	if !strings.Contains(err.Error(), "validation failed") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidateYAMLContent_RejectsMultiByteDelimiter(t *testing.T) {
	t.Parallel()

	content := []byte(`merge:
  root: "."
  output_dir: "./_out"
  delimiter: "||"
  format: "csv"
`)

	_, err := ValidateYAMLContent(content)
	if err == nil {
		t.Fatalf("expected validation error for multi-character delimiter")
	}
	if !strings.Contains(err.Error(), "single character") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestParseDelimiter(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		value   string
		want    byte
		wantErr bool
	}{
		{name: "comma", value: ",", want: ','},
		{name: "semicolon", value: ";", want: ';'},
		{name: "tab", value: "\t", want: '\t'},
		{name: "pipe", value: "|", want: '|'},
		{name: "empty", value: "", wantErr: true},
		{name: "two characters", value: ",,", wantErr: true},
		{name: "non-ascii", value: "§", wantErr: true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got, err := ParseDelimiter(tc.value)
			if tc.wantErr {
				if err == nil {
					t.Fatalf("expected error for %q", tc.value)
				}
				return
			}
			if err != nil {
				t.Fatalf("parse delimiter %q: %v", tc.value, err)
			}
			if got != tc.want {
				t.Fatalf("unexpected delimiter byte: want %q, got %q", tc.want, got)
			}
		})
	}
}
