package diag

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
)

// Reporter separates progress output from diagnostics. Progress and summary
// lines go to out (stdout), notices, warnings, and info lines go to err
// (stderr). Warning and info labels are colored when stderr is a terminal.
type Reporter struct {
	out  io.Writer
	err  io.Writer
	warn *color.Color
	info *color.Color
}

func NewReporter(out, err io.Writer) *Reporter {
	return &Reporter{
		out:  out,
		err:  err,
		warn: color.New(color.FgYellow),
		info: color.New(color.FgCyan),
	}
}

// Default reports to os.Stdout and os.Stderr.
func Default() *Reporter {
	return NewReporter(os.Stdout, os.Stderr)
}

// Progressf prints a progress or summary line to the output stream.
func (r *Reporter) Progressf(format string, args ...any) {
	fmt.Fprintf(r.out, format+"\n", args...)
}

// Noticef prints a plain skip notice to the error stream.
func (r *Reporter) Noticef(format string, args ...any) {
	fmt.Fprintf(r.err, format+"\n", args...)
}

// Warnf prints a WARNING diagnostic to the error stream.
func (r *Reporter) Warnf(format string, args ...any) {
	r.warn.Fprint(r.err, "WARNING: ")
	fmt.Fprintf(r.err, format+"\n", args...)
}

// Infof prints an INFO diagnostic to the error stream.
func (r *Reporter) Infof(format string, args ...any) {
	r.info.Fprint(r.err, "INFO: ")
	fmt.Fprintf(r.err, format+"\n", args...)
}
