// Package diagnostics renders the compiler's fail-fast error and warning
// output: one colored line per diagnostic, formatted "line:col: label: message".
package diagnostics

import (
	"fmt"
	"os"

	"github.com/fatih/color"
)

var (
	errorLabel   = color.New(color.FgRed).SprintFunc()
	warningLabel = color.New(color.FgYellow).SprintFunc()
)

// Loc is a human-readable source location, 1-indexed in both fields.
type Loc struct {
	Line   int
	Column int
}

// Locate rescans src from the start counting newlines, reproducing the
// original compiler's buffer_loc_to_source_loc algorithm: line and column
// both start at 1, and column resets to 1 immediately after every '\n'.
func Locate(src string, offset int) Loc {
	line, col := 1, 1
	if offset > len(src) {
		offset = len(src)
	}
	for i := 0; i < offset; i++ {
		if src[i] == '\n' {
			line++
			col = 1
		} else {
			col++
		}
	}
	return Loc{Line: line, Column: col}
}

func (l Loc) String() string {
	return fmt.Sprintf("%d:%d", l.Line, l.Column)
}

// Warn prints a non-fatal diagnostic to stderr and returns.
func Warn(loc Loc, format string, args ...any) {
	fmt.Fprintf(os.Stderr, "%s: %s: %s\n", loc, warningLabel("warning"), fmt.Sprintf(format, args...))
}

// FatalError is the panic payload used to unwind the pipeline after a fatal
// diagnostic has already been printed. The driver's recover barrier converts
// it into a process exit with status 1.
type FatalError struct {
	Loc Loc
	Msg string
}

func (e *FatalError) Error() string {
	return fmt.Sprintf("%s: error: %s", e.Loc, e.Msg)
}

// Fatal prints a fatal diagnostic to stderr and panics with a *FatalError so
// that a deferred recover at the top of the pipeline can release the arena
// and exit with status 1, without every call site threading an error return
// through the parser and code generator.
func Fatal(loc Loc, format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintf(os.Stderr, "%s: %s: %s\n", loc, errorLabel("error"), msg)
	panic(&FatalError{Loc: loc, Msg: msg})
}
