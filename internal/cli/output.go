package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"

	"github.com/roach88/seqdates/internal/table"
)

// Exit codes for the command.
const (
	ExitSuccess      = 0 // All requested outputs written
	ExitFailure      = 1 // Output could not be written
	ExitCommandError = 2 // Bad flags or config, unreadable input
)

// ExitError represents an error with a specific exit code.
type ExitError struct {
	Code    int    // Exit code (use ExitFailure or ExitCommandError)
	Message string // Error message
	Err     error  // Underlying error (optional)
}

func (e *ExitError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

// WrapExitError wraps an existing error with an exit code.
func WrapExitError(code int, message string, err error) *ExitError {
	return &ExitError{Code: code, Message: message, Err: err}
}

// GetExitCode extracts the exit code from an error.
// Returns ExitSuccess for nil and ExitFailure if the error is not an ExitError.
func GetExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return ExitFailure
}

// Reporter writes operator diagnostics to the error stream, apart from the
// primary output. Colour is used only when that stream is a terminal.
type Reporter struct {
	w     io.Writer
	label *color.Color
	good  *color.Color
	warn  *color.Color
}

// NewReporter creates a Reporter writing to w.
func NewReporter(w io.Writer) *Reporter {
	r := &Reporter{
		w:     w,
		label: color.New(color.FgCyan),
		good:  color.New(color.FgGreen),
		warn:  color.New(color.FgYellow),
	}
	for _, c := range []*color.Color{r.label, r.good, r.warn} {
		if isTerminal(w) {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return r
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// StdinNotice announces that standard input is about to be read.
func (r *Reporter) StdinNotice() {
	fmt.Fprintln(r.w, "(reading from standard input)")
}

// Totals prints record counts and every label without a date.
func (r *Reporter) Totals(t *table.Table) {
	fmt.Fprintf(r.w, "%s %d\n", r.label.Sprint("Total sequences read:"), t.Len())
	fmt.Fprintf(r.w, "%s %s\n", r.label.Sprint("Total sequences parsed properly:"), r.good.Sprint(t.Dated()))

	unknown := fmt.Sprint(t.Undated())
	if t.Undated() > 0 {
		unknown = r.warn.Sprint(t.Undated())
	}
	fmt.Fprintf(r.w, "%s %s\n", r.label.Sprint("Total unknown sequences:"), unknown)

	if len(t.UnknownLabels) == 0 {
		return
	}
	fmt.Fprintln(r.w, r.label.Sprint("Unknown sequence labels:"))
	for _, l := range t.UnknownLabels {
		fmt.Fprintln(r.w, l)
	}
}
