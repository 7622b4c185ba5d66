package logger

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color" // Import the fatih/color package for colored console output
)

// Colors used for each kind of line. They are never modified after package init,
// so a Logger carries no mutable shared state of its own.
var (
	stepColor    = color.New(color.FgYellow)
	successColor = color.New(color.FgGreen)
	warnColor    = color.New(color.FgHiMagenta)
	errorColor   = color.New(color.FgRed)
	hintColor    = color.New(color.FgCyan)
	debugColor   = color.New(color.FgCyan, color.Faint)
)

// Logger prints colored, line-oriented status messages to a single writer.
//
// A Logger is an immutable value: it is built once in the cmd layer from the
// --debug flag and handed to every component that needs to report progress.
type Logger struct {
	out   io.Writer
	debug bool
}

// New returns a Logger writing to out. When enableDebug is false, Debug is a no-op.
func New(out io.Writer, enableDebug bool) *Logger {
	if out == nil {
		out = os.Stdout
	}
	return &Logger{out: out, debug: enableDebug}
}

// Discard returns a Logger that drops everything. Handy in tests.
func Discard() *Logger {
	return &Logger{out: io.Discard}
}

// Step prints a yellow section heading such as "--- Cloning Repositories ---".
func (l *Logger) Step(format string, a ...any) {
	l.print(stepColor, format, a...)
}

// Info prints an uncolored progress line.
func (l *Logger) Info(format string, a ...any) {
	l.print(nil, format, a...)
}

// Success prints a green confirmation line.
func (l *Logger) Success(format string, a ...any) {
	l.print(successColor, format, a...)
}

// Warn prints a bright magenta line for problems that do not stop the run.
func (l *Logger) Warn(format string, a ...any) {
	l.print(warnColor, format, a...)
}

// Error prints a red failure line.
func (l *Logger) Error(format string, a ...any) {
	l.print(errorColor, format, a...)
}

// Hint prints a cyan line with something the operator can act on
// (a URL, a command to run, remediation advice).
func (l *Logger) Hint(format string, a ...any) {
	l.print(hintColor, format, a...)
}

// Debug prints only when debug output was requested.
func (l *Logger) Debug(format string, a ...any) {
	if !l.debug {
		return
	}
	l.print(debugColor, "[DEBUG] "+format, a...)
}

// DebugEnabled reports whether Debug lines are written.
func (l *Logger) DebugEnabled() bool {
	return l.debug
}

// print is the single place output is written. A nil color means plain text.
func (l *Logger) print(c *color.Color, format string, a ...any) {
	msg := fmt.Sprintf(format, a...)
	if c == nil {
		_, _ = fmt.Fprintln(l.out, msg)
		return
	}
	_, _ = c.Fprintln(l.out, msg)
}
