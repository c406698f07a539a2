// Package symbol implements the symbol graph of spec §3.4: declared
// names, their lifecycle state machine, and the nested scopes that
// resolve identifiers to them. Symbols are append-only once declared;
// state only ever advances forward (or sideways into Ignored).
package symbol

import (
	"sync/atomic"

	"github.com/swglang/swc/internal/arena"
)

// Kind is the closed set of symbol variants (spec §3.4).
type Kind uint8

const (
	KindInvalid Kind = iota
	KindModule
	KindNamespace
	KindFunction
	KindVariable
	KindType
)

// AccessModifier mirrors ast.Node.Access (spec §3.4 / §6.1 visibility).
type AccessModifier uint8

const (
	AccessPublic AccessModifier = iota
	AccessProtected
	AccessPrivate
)

// State is the forward-only lifecycle of a symbol (spec §3.4, §4.3's
// wait-key vocabulary: WaitDeclared / WaitTyped / WaitCompleted /
// WaitTypeCompleted map onto consecutive States here).
type State uint8

const (
	Declared State = iota
	Typed
	SemaCompleted
	CodeGenPreSolved
	CodeGenCompleted
	Ignored // compiler-if loser or cycle-detection victim; terminal, not "forward"
)

// atLeast reports whether s has reached (or passed) target in the
// normal forward progression. Ignored never satisfies a forward wait
// — a waiter on an Ignored symbol must be told explicitly (spec §4.3
// "waiters on an ignored symbol are released with no diagnostic").
func (s State) atLeast(target State) bool {
	return s != Ignored && s >= target
}

// Symbol is one declared name: a function, variable, type, namespace,
// or module. Overloads of the same name live as distinct Symbols
// linked via SymbolMap's slice-valued buckets, not inside one Symbol.
type Symbol struct {
	Ref    arena.SymbolRef // this symbol's own handle, for AST nodes that reference it (set_symbol)
	Kind   Kind
	Name   arena.IdentifierRef
	Node   arena.AstNodeRef // declaring node
	Access AccessModifier

	Type arena.TypeRef // valid once state >= Typed (Function: signature type; Variable/Type: its type)

	state atomic.Uint32 // State, atomic so job waiters can poll without the owning map's lock
}

func New(kind Kind, name arena.IdentifierRef, node arena.AstNodeRef, access AccessModifier) *Symbol {
	s := &Symbol{Kind: kind, Name: name, Node: node, Access: access}
	s.state.Store(uint32(Declared))
	return s
}

func (s *Symbol) State() State { return State(s.state.Load()) }

// Advance moves the symbol forward to target. Advancing backward, or
// advancing an already-Ignored symbol, is a caller bug (the sema
// driver and job manager are the only callers and never do either).
func (s *Symbol) Advance(target State) {
	for {
		cur := State(s.state.Load())
		if cur == Ignored || target <= cur {
			return
		}
		if s.state.CompareAndSwap(uint32(cur), uint32(target)) {
			return
		}
	}
}

// MarkIgnored withdraws the symbol (spec §4.5 compiler-if, §4.3 cycle
// detection): waiters release immediately, no diagnostic is attached
// to the symbol itself.
func (s *Symbol) MarkIgnored() { s.state.Store(uint32(Ignored)) }

// Reached reports whether the symbol's state satisfies a wait for
// target (spec §4.3's wait-key semantics).
func (s *Symbol) Reached(target State) bool { return s.State().atLeast(target) }
