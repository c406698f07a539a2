package errors

import (
	"github.com/swglang/swc/internal/arena"
	"github.com/swglang/swc/internal/diag"
)

// NewInternal builds an spec §7 "Internal" diagnostic: an invariant
// violation the analyzer recovered from rather than crashing the
// worker goroutine it was running on. reason is the recovered panic
// value's text; trace is the chain of declarations the pass was
// analyzing when it happened, outermost first, and one note per frame
// is attached innermost first.
func NewInternal(srcView arena.SourceViewRef, tok arena.TokenRef, reason string, trace StackTrace) *diag.Diagnostic {
	d := diag.New("sema_err_internal", diag.SeverityError, srcView, tok)
	d.Kind = diag.KindInternal
	d.WithArg(diag.ArgValue, reason)
	for i := len(trace) - 1; i >= 0; i-- {
		d.AddNote("internal_frame").WithArg("FRAME", trace[i].String())
	}
	return d
}
