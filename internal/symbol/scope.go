package symbol

import (
	"sync"

	"github.com/swglang/swc/internal/arena"
)

// Map is a concurrent identifier->overload-set table (spec §3.4's
// symbol table shard). Multiple Symbols may share a Name (function
// overloads); lookups return the whole bucket and let sema pick.
type Map struct {
	mu      sync.RWMutex
	buckets map[arena.IdentifierRef][]*Symbol
}

func NewMap() *Map {
	return &Map{buckets: make(map[arena.IdentifierRef][]*Symbol)}
}

// Declare appends sym to its name's overload bucket. Spec §4.3 treats
// duplicate non-overloadable declarations (e.g. two variables with the
// same name) as a sema diagnostic, not a Map-level error — Declare
// always succeeds; the caller inspects the returned bucket first.
func (m *Map) Declare(sym *Symbol) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.buckets[sym.Name] = append(m.buckets[sym.Name], sym)
}

// Lookup returns the overload bucket for name, or nil if undeclared.
func (m *Map) Lookup(name arena.IdentifierRef) []*Symbol {
	m.mu.RLock()
	defer m.mu.RUnlock()
	b := m.buckets[name]
	if b == nil {
		return nil
	}
	out := make([]*Symbol, len(b))
	copy(out, b)
	return out
}

// ScopeKind distinguishes scopes that participate in name resolution
// differently (spec §4.3's "enclosing scope chain").
type ScopeKind uint8

const (
	ScopeModule ScopeKind = iota
	ScopeNamespace
	ScopeFunction
	ScopeBlock
)

// Scope is one nested lexical level. Resolution walks Parent chains
// outward (spec §4.3 rule: "nearest enclosing declaration wins").
type Scope struct {
	Kind   ScopeKind
	Parent *Scope
	Owner  *Symbol // the Function/Namespace/Module symbol this scope belongs to, if any
	locals *Map
}

func NewScope(kind ScopeKind, parent *Scope, owner *Symbol) *Scope {
	return &Scope{Kind: kind, Parent: parent, Owner: owner, locals: NewMap()}
}

// Declare adds sym to this scope's local table.
func (sc *Scope) Declare(sym *Symbol) { sc.locals.Declare(sym) }

// Resolve walks sc and its ancestors outward, returning the first
// non-empty overload bucket found (spec §4.3 name resolution).
func (sc *Scope) Resolve(name arena.IdentifierRef) []*Symbol {
	for s := sc; s != nil; s = s.Parent {
		if b := s.locals.Lookup(name); len(b) > 0 {
			return b
		}
	}
	return nil
}

// ResolveLocal looks up name only in sc's own table, without walking
// to Parent — used for duplicate-declaration checks within one scope.
func (sc *Scope) ResolveLocal(name arena.IdentifierRef) []*Symbol {
	return sc.locals.Lookup(name)
}
