package cmd

import (
	"testing"

	"csvmerge/config"
)

func TestFirstNonEmpty(t *testing.T) {
	t.Parallel()

	if got := firstNonEmpty("", "./data", "./fallback"); got != "./data" {
		t.Fatalf("unexpected value: %q", got)
	}
	if got := firstNonEmpty("", ""); got != "" {
		t.Fatalf("expected empty result, got %q", got)
	}
}

func TestFirstNonEmpty_WhitespaceCountsAsSupplied(t *testing.T) {
	t.Parallel()

	if got := firstNonEmpty("", "\t", ","); got != "\t" {
		t.Fatalf("tab delimiter dropped during resolution, resolved to %q", got)
	}
	if got := firstNonEmpty(" ", "\t", ","); got != " " {
		t.Fatalf("space delimiter dropped during resolution, resolved to %q", got)
	}
}

func TestPositional(t *testing.T) {
	t.Parallel()

	args := []string{"./data", "./merged"}
	if got := positional(args, 0); got != "./data" {
		t.Fatalf("unexpected first positional: %q", got)
	}
	if got := positional(args, 1); got != "./merged" {
		t.Fatalf("unexpected second positional: %q", got)
	}
	if got := positional(args, 2); got != "" {
		t.Fatalf("expected empty for missing positional, got %q", got)
	}
}

func TestDelimiterResolution_TabPositionalReachesParser(t *testing.T) {
	t.Parallel()

	// Same chain the merge command runs: flag, then third positional,
	// then config default.
	args := []string{"./data", "./merged", "\t"}
	resolved := firstNonEmpty("", positional(args, 2), ",")

	delimiter, err := config.ParseDelimiter(resolved)
	if err != nil {
		t.Fatalf("parse resolved delimiter: %v", err)
	}
	if delimiter != '\t' {
		t.Fatalf("unexpected delimiter: want tab, got %q", delimiter)
	}
}
