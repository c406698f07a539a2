package sema

import (
	"github.com/swglang/swc/internal/arena"
	"github.com/swglang/swc/internal/errors"
	"github.com/swglang/swc/internal/symbol"
)

// Frame is a per-activation sema environment (spec §4.4's SemaFrame):
// the binding type pushed down for an initializer/argument, the
// current access modifier, the current compiler-if branch payload (if
// any), and the symbol currently being declared/completed.
type Frame struct {
	BindingType  arena.TypeRef
	Access       symbol.AccessModifier
	Owner        *symbol.Symbol
	Scope        *symbol.Scope
	CompilerIf   *branchPayload // non-nil while inside a compiler-if arm
	EnumNext     int64          // next implicit ordinal, while inside an enum declaration's members
}

// branchPayload tracks one arm of a `#if` so its staged declarations
// can be withdrawn if the branch loses (spec §4.4 Compiler-if).
type branchPayload struct {
	staged []*symbol.Symbol
}

func (b *branchPayload) stage(sym *symbol.Symbol) {
	b.staged = append(b.staged, sym)
}

// popKind distinguishes whether a deferred-pop ticket fires on the
// matching post_node or on a specific post_child (spec §4.4 "Deferred
// pops").
type popKind uint8

const (
	popOnPostNode popKind = iota
	popOnPostChild
)

type deferredPop struct {
	kind  popKind
	node  arena.AstNodeRef
	child arena.AstNodeRef // only meaningful when kind == popOnPostChild
	run   func()
}

// pushFramePopOnPostNode pushes f and schedules its pop for when
// post_node(node) runs — used by declarations that own their whole
// subtree (namespace, function body).
func (up *pass) pushFramePopOnPostNode(node arena.AstNodeRef, f *Frame) {
	up.frames = append(up.frames, f)
	top := len(up.frames) - 1
	up.deferred = append(up.deferred, deferredPop{
		kind: popOnPostNode,
		node: node,
		run:  func() { up.popFrameAt(top) },
	})
}

// pushFramePopOnPostChild pushes f and schedules its pop for when
// post_child(parent, child) runs, so the frame unwinds as soon as that
// one child finishes rather than when the whole parent finishes. No
// hook calls it at present; compiler-if arms push their own frames.
func (up *pass) pushFramePopOnPostChild(parent, child arena.AstNodeRef, f *Frame) {
	up.frames = append(up.frames, f)
	top := len(up.frames) - 1
	up.deferred = append(up.deferred, deferredPop{
		kind:  popOnPostChild,
		node:  parent,
		child: child,
		run:   func() { up.popFrameAt(top) },
	})
}

// popFrameAt truncates the frame stack to just above index i, tolerant
// of the frame already having been popped, which can't normally happen
// but keeps ErrorCleanup idempotent.
func (up *pass) popFrameAt(i int) {
	if i < len(up.frames) {
		up.frames = up.frames[:i]
	}
}

func (up *pass) topFrame() *Frame {
	if len(up.frames) == 0 {
		return nil
	}
	return up.frames[len(up.frames)-1]
}

// captureStackTrace builds a spec §7 Internal-diagnostic stack trace
// from the currently active frames, outermost first: each frame whose
// Owner symbol is known contributes its name and declaration site.
// Used when a hook panics mid-traversal, so the diagnostic says which
// declarations were in progress, not just where the crash happened.
func (up *pass) captureStackTrace() errors.StackTrace {
	var trace errors.StackTrace
	for _, f := range up.frames {
		if f.Owner == nil {
			continue
		}
		name := up.prog.Idents.String(f.Owner.Name)
		line, col := 0, 0
		if node, ok := up.prog.Ast.Node(f.Owner.Node); ok {
			tok := up.file.SrcView.Token(int(node.TokRef))
			line, col = up.file.SrcView.Location(tok.ByteStart)
		}
		trace = append(trace, errors.StackFrame{
			FunctionName: name,
			FileName:     up.file.SrcView.Path(),
			Line:         line,
			Column:       col,
		})
	}
	return trace
}

// runDeferredPostNode fires (and removes) every ticket keyed to node
// with kind popOnPostNode.
func (up *pass) runDeferredPostNode(node arena.AstNodeRef) {
	kept := up.deferred[:0]
	for _, t := range up.deferred {
		if t.kind == popOnPostNode && t.node == node {
			t.run()
			continue
		}
		kept = append(kept, t)
	}
	up.deferred = kept
}

// runDeferredPostChild fires (and removes) tickets keyed to
// (parent, child) with kind popOnPostChild.
func (up *pass) runDeferredPostChild(parent, child arena.AstNodeRef) {
	kept := up.deferred[:0]
	for _, t := range up.deferred {
		if t.kind == popOnPostChild && t.node == parent && t.child == child {
			t.run()
			continue
		}
		kept = append(kept, t)
	}
	up.deferred = kept
}
