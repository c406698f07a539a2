package errors_test

import (
	"strings"
	"testing"

	"github.com/swglang/swc/internal/arena"
	"github.com/swglang/swc/internal/diag"
	"github.com/swglang/swc/internal/errors"
)

func TestStackFrameString(t *testing.T) {
	f := errors.StackFrame{FunctionName: "doThing", Line: 3, Column: 7}
	want := "doThing [line: 3, column: 7]"
	if got := f.String(); got != want {
		t.Fatalf("StackFrame.String() = %q, want %q", got, want)
	}

	bare := errors.StackFrame{FunctionName: "unresolved"}
	if got := bare.String(); got != "unresolved" {
		t.Fatalf("StackFrame.String() with no position = %q, want %q", got, "unresolved")
	}
}

func TestStackTraceStringInnermostFirst(t *testing.T) {
	trace := errors.StackTrace{
		{FunctionName: "outer", Line: 1, Column: 1},
		{FunctionName: "inner", Line: 2, Column: 1},
	}
	out := trace.String()
	if strings.Index(out, "inner") > strings.Index(out, "outer") {
		t.Fatalf("expected inner frame to print before outer, got %q", out)
	}
	if trace.Depth() != 2 {
		t.Fatalf("Depth() = %d, want 2", trace.Depth())
	}
	if top := trace.Top(); top == nil || top.FunctionName != "inner" {
		t.Fatalf("Top() = %+v, want the innermost frame", top)
	}
}

func TestNewInternalSetsKindAndNotesPerFrame(t *testing.T) {
	trace := errors.StackTrace{
		{FunctionName: "outer", Line: 1, Column: 1},
		{FunctionName: "inner", Line: 2, Column: 1},
	}
	d := errors.NewInternal(arena.SourceViewRef(1), arena.TokenRef(0), "nil pointer", trace)
	if d.Kind != diag.KindInternal {
		t.Fatalf("Kind = %v, want KindInternal", d.Kind)
	}
	if d.Severity != diag.SeverityError {
		t.Fatalf("Severity = %v, want SeverityError", d.Severity)
	}
	if len(d.Notes) != 2 {
		t.Fatalf("expected one note per frame, got %d", len(d.Notes))
	}
	if d.Arguments[diag.ArgValue] != "nil pointer" {
		t.Fatalf("expected the recovered reason attached as %s", diag.ArgValue)
	}
}
