// Package errors builds the stack-trace-shaped payload for spec §7's
// "Internal" diagnostic kind: an invariant violation inside the
// analyzer gets reported with the chain of declarations the failing
// pass was in the middle of, not just a single source span. Grounded
// on the teacher's internal/errors/stack_trace.go StackFrame/StackTrace
// shape, adapted from a resolved *lexer.Position to this repo's own
// line/column pair (computed once at capture time via sourceview, so a
// StackTrace stays a plain immutable value after that).
package errors

import (
	"fmt"
	"strings"
)

// StackFrame is one activation in a captured trace: the declaration
// being analyzed and where it starts in its source file.
type StackFrame struct {
	FunctionName string
	FileName     string
	Line, Column int
}

// String matches the teacher's "FunctionName [line: N, column: M]"
// format; a frame with no resolved position (Line == 0) prints just
// the name.
func (f StackFrame) String() string {
	if f.Line == 0 {
		return f.FunctionName
	}
	return fmt.Sprintf("%s [line: %d, column: %d]", f.FunctionName, f.Line, f.Column)
}

// StackTrace is a sequence of frames, oldest (outermost) first —
// matching the order sema.pass.frames is built in.
type StackTrace []StackFrame

// String renders innermost-first, one frame per line, same display
// order as the teacher's StackTrace.String.
func (t StackTrace) String() string {
	if len(t) == 0 {
		return ""
	}
	var sb strings.Builder
	for i := len(t) - 1; i >= 0; i-- {
		sb.WriteString(t[i].String())
		if i > 0 {
			sb.WriteString("\n")
		}
	}
	return sb.String()
}

// Top returns the innermost frame, or nil if the trace is empty.
func (t StackTrace) Top() *StackFrame {
	if len(t) == 0 {
		return nil
	}
	return &t[len(t)-1]
}

// Depth returns the number of frames.
func (t StackTrace) Depth() int { return len(t) }
