// Package diag renders human-readable progress lines for the build-test
// harness. It is purely presentational; check logic never depends on it
// beyond calling the logging methods.
package diag

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
)

// Sink writes severity-colored progress lines to a single writer.
type Sink struct {
	w io.Writer
}

// New creates a Sink writing to w. A nil w falls back to os.Stdout.
func New(w io.Writer) *Sink {
	if w == nil {
		w = os.Stdout
	}
	return &Sink{w: w}
}

// Step announces the start of a check, e.g. "Testing dependencies...".
func (s *Sink) Step(format string, args ...any) {
	s.line(color.FgYellow, fmt.Sprintf(format, args...))
}

// Pass reports a passing probe as "  ✓ <msg>".
func (s *Sink) Pass(format string, args ...any) {
	s.line(color.FgGreen, "  ✓ "+fmt.Sprintf(format, args...))
}

// Fail reports a failing probe as "  ✗ <msg>".
func (s *Sink) Fail(format string, args ...any) {
	s.line(color.FgRed, "  ✗ "+fmt.Sprintf(format, args...))
}

// Detail reports supporting error text indented under a failing probe.
func (s *Sink) Detail(format string, args ...any) {
	s.line(color.FgRed, "    "+fmt.Sprintf(format, args...))
}

// Info writes an informational line in blue.
func (s *Sink) Info(format string, args ...any) {
	s.line(color.FgBlue, fmt.Sprintf(format, args...))
}

// Good writes an unprefixed line in green.
func (s *Sink) Good(format string, args ...any) {
	s.line(color.FgGreen, fmt.Sprintf(format, args...))
}

// Bad writes an unprefixed line in red.
func (s *Sink) Bad(format string, args ...any) {
	s.line(color.FgRed, fmt.Sprintf(format, args...))
}

// Blank writes an empty separator line.
func (s *Sink) Blank() {
	_, _ = fmt.Fprintln(s.w)
}

func (s *Sink) line(attr color.Attribute, msg string) {
	_, _ = color.New(attr).Fprintln(s.w, msg)
}
