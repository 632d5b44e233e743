package namegen

import (
	"fmt"
	"strings"
)

// Trace records generation decisions in order. It is append-only.
type Trace struct {
	lines []string
}

// Addf appends a formatted line.
func (t *Trace) Addf(format string, args ...any) {
	t.lines = append(t.lines, fmt.Sprintf(format, args...))
}

// Lines returns a copy of the recorded lines.
func (t *Trace) Lines() []string {
	out := make([]string, len(t.lines))
	copy(out, t.lines)
	return out
}

// Len returns the number of recorded lines.
func (t *Trace) Len() int { return len(t.lines) }

// String joins the lines with newlines.
func (t *Trace) String() string {
	return strings.Join(t.lines, "\n")
}
