package symbol

import (
	"sync"

	"github.com/swglang/swc/internal/arena"
)

// Store hands out the arena.SymbolRef handles that AST nodes carry
// (spec §9: every "pointer" becomes a handle resolved through a
// table). Unlike the type/constant/identifier pools, symbols are never
// structurally deduplicated — each declaration gets a fresh Symbol —
// so Store is a simple append-only table, not a hash-deduped pool.
type Store struct {
	mu      sync.Mutex
	symbols []*Symbol
}

func NewStore() *Store { return &Store{} }

// New allocates a symbol, assigns it a stable Ref, and returns the
// live pointer sema code works with directly (lifecycle state,
// waits) — the Ref only matters at the AST-node boundary.
func (s *Store) New(kind Kind, name arena.IdentifierRef, node arena.AstNodeRef, access AccessModifier) *Symbol {
	sym := New(kind, name, node, access)
	s.mu.Lock()
	defer s.mu.Unlock()
	s.symbols = append(s.symbols, sym)
	sym.Ref = arena.SymbolRef(len(s.symbols))
	return sym
}

// Get resolves a Ref back to its Symbol (used when rendering
// diagnostics or printing resolved ASTs from node.Symbol alone).
func (s *Store) Get(ref arena.SymbolRef) *Symbol {
	s.mu.Lock()
	defer s.mu.Unlock()
	if ref.Invalid() {
		return nil
	}
	idx := int(ref) - 1
	if idx < 0 || idx >= len(s.symbols) {
		return nil
	}
	return s.symbols[idx]
}
