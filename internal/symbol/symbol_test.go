package symbol

import (
	"sync"
	"testing"

	"github.com/swglang/swc/internal/arena"
)

func TestAdvanceIsForwardOnly(t *testing.T) {
	s := New(KindVariable, arena.IdentifierRef(1), arena.AstNodeRef(1), AccessPublic)
	s.Advance(SemaCompleted)
	s.Advance(Declared) // must not move backward
	if s.State() != SemaCompleted {
		t.Fatalf("state regressed: got %v", s.State())
	}
}

func TestMarkIgnoredIsTerminal(t *testing.T) {
	s := New(KindFunction, arena.IdentifierRef(1), arena.AstNodeRef(1), AccessPublic)
	s.MarkIgnored()
	s.Advance(CodeGenCompleted)
	if s.State() != Ignored {
		t.Fatalf("Ignored symbol must not be advanced, got %v", s.State())
	}
	if s.Reached(Declared) {
		t.Fatalf("Ignored symbol must not satisfy any forward wait")
	}
}

func TestAdvanceConcurrentRace(t *testing.T) {
	s := New(KindVariable, arena.IdentifierRef(1), arena.AstNodeRef(1), AccessPublic)
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s.Advance(Typed)
			s.Advance(SemaCompleted)
		}()
	}
	wg.Wait()
	if s.State() != SemaCompleted {
		t.Fatalf("expected SemaCompleted after concurrent advances, got %v", s.State())
	}
}

func TestScopeResolveWalksParentChain(t *testing.T) {
	outer := NewScope(ScopeNamespace, nil, nil)
	inner := NewScope(ScopeFunction, outer, nil)

	name := arena.IdentifierRef(7)
	sym := New(KindVariable, name, arena.AstNodeRef(1), AccessPublic)
	outer.Declare(sym)

	got := inner.Resolve(name)
	if len(got) != 1 || got[0] != sym {
		t.Fatalf("expected to resolve %v through parent scope, got %v", sym, got)
	}
	if len(inner.ResolveLocal(name)) != 0 {
		t.Fatalf("ResolveLocal must not see parent-scope declarations")
	}
}

func TestMapDeclareOverloadBucket(t *testing.T) {
	m := NewMap()
	name := arena.IdentifierRef(3)
	a := New(KindFunction, name, arena.AstNodeRef(1), AccessPublic)
	b := New(KindFunction, name, arena.AstNodeRef(2), AccessPublic)
	m.Declare(a)
	m.Declare(b)

	bucket := m.Lookup(name)
	if len(bucket) != 2 {
		t.Fatalf("expected 2 overloads, got %d", len(bucket))
	}
}
