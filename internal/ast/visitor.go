package ast

import "github.com/swglang/swc/internal/arena"

// Intent is what a hook returns, and what Step returns after invoking
// one (spec §3.3, §9 "Result-shaped" — no exceptions anywhere).
type Intent uint8

const (
	Continue Intent = iota
	SkipChildren
	Pause
	Stop
	ErrorIntent
)

// Hooks is implemented by a traversal driver (sema's decl/use passes).
// For every node n the visitor invokes, in order: PreNode(n); for each
// child c: PreChild(n,c), recurse, PostChild(n,c); PostNode(n). Any
// hook may return Pause to suspend the whole traversal at that exact
// point (spec §5: the visitor step function is the single suspension
// boundary) or ErrorIntent to abort it, running ErrorCleanup on every
// node still active on the cursor.
type Hooks interface {
	PreNode(n arena.AstNodeRef) Intent
	PreChild(parent, child arena.AstNodeRef) Intent
	PostChild(parent, child arena.AstNodeRef) Intent
	PostNode(n arena.AstNodeRef) Intent
	ErrorCleanup(n arena.AstNodeRef)
}

type stage uint8

const (
	stagePreNode stage = iota
	stageChildren
	stagePostChild
	stagePostNode
)

type frame struct {
	node     arena.AstNodeRef
	children []arena.AstNodeRef
	childIdx int
	stg      stage
}

// Visitor is the explicit state machine of the Design Notes: "not a
// language-level coroutine... an explicit cursor (path of ancestor
// refs plus per-level index)". Suspending is simply returning from
// Step; resuming re-reads the same cursor and continues — no special
// snapshot/restore step is needed because the cursor IS the state.
type Visitor struct {
	store *Store
	hooks Hooks
	stack []*frame
}

// NewVisitor starts a traversal rooted at root. The visitor does not
// run any hook until the first Step call.
func NewVisitor(store *Store, root arena.AstNodeRef, hooks Hooks) *Visitor {
	v := &Visitor{store: store, hooks: hooks}
	v.push(root)
	return v
}

func (v *Visitor) push(ref arena.AstNodeRef) {
	node := v.store.MustNode(ref)
	v.stack = append(v.stack, &frame{node: ref, children: v.store.Children(node)})
}

// Done reports whether the traversal has run to completion (the
// cursor stack is empty).
func (v *Visitor) Done() bool { return len(v.stack) == 0 }

// Run drives Step to completion, stopping early on Pause (returning it
// to the caller so a job can sleep) or on Stop/ErrorIntent.
func (v *Visitor) Run() Intent {
	for !v.Done() {
		switch intent := v.Step(); intent {
		case Continue:
			continue
		default:
			return intent
		}
	}
	return Continue
}

// Step advances the traversal by exactly one hook invocation.
func (v *Visitor) Step() Intent {
	if v.Done() {
		return Stop
	}
	top := v.stack[len(v.stack)-1]

	switch top.stg {
	case stagePreNode:
		intent := v.hooks.PreNode(top.node)
		switch intent {
		case SkipChildren:
			top.stg = stagePostNode
			return Continue
		case Pause, Stop:
			return intent
		case ErrorIntent:
			v.cleanupAndAbort()
			return ErrorIntent
		default:
			top.stg = stageChildren
			return Continue
		}

	case stageChildren:
		if top.childIdx >= len(top.children) {
			top.stg = stagePostNode
			return Continue
		}
		child := top.children[top.childIdx]
		intent := v.hooks.PreChild(top.node, child)
		switch intent {
		case Pause, Stop:
			return intent
		case ErrorIntent:
			v.cleanupAndAbort()
			return ErrorIntent
		case SkipChildren:
			top.stg = stagePostChild
			return Continue
		default:
			top.stg = stagePostChild
			v.push(child)
			return Continue
		}

	case stagePostChild:
		child := top.children[top.childIdx]
		intent := v.hooks.PostChild(top.node, child)
		switch intent {
		case Pause, Stop:
			return intent
		case ErrorIntent:
			v.cleanupAndAbort()
			return ErrorIntent
		default:
			top.childIdx++
			top.stg = stageChildren
			return Continue
		}

	case stagePostNode:
		intent := v.hooks.PostNode(top.node)
		switch intent {
		case Pause, Stop:
			return intent
		case ErrorIntent:
			v.cleanupAndAbort()
			return ErrorIntent
		default:
			v.stack = v.stack[:len(v.stack)-1]
			return Continue
		}
	}
	return Stop
}

// cleanupAndAbort runs ErrorCleanup over every node still active on
// the cursor, innermost first, then empties the stack so the
// traversal reports Done.
func (v *Visitor) cleanupAndAbort() {
	for i := len(v.stack) - 1; i >= 0; i-- {
		v.hooks.ErrorCleanup(v.stack[i].node)
	}
	v.stack = nil
}
