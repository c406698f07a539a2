package typepool

import (
	"fmt"
	"sync"

	"github.com/cespare/xxhash/v2"

	"github.com/swglang/swc/internal/arena"
)

// Pool deduplicates TypeInfo values by structural key (spec §4.1):
// two equal inputs eventually collapse to one ref; insertion happens
// under a lock with a double-checked lookup of the key string.
type Pool struct {
	mu    sync.RWMutex
	byKey map[string]arena.TypeRef
	infos []TypeInfo // index 0 unused, ref 0 is the invalid sentinel

	promote *promotionTable
}

// New constructs a pool pre-seeded with the fixed set of scalar types
// the promotion table (spec §4.2) is computed over.
func New() *Pool {
	p := &Pool{
		byKey: make(map[string]arena.TypeRef),
		infos: []TypeInfo{{}},
	}
	p.promote = buildPromotionTable(p)
	return p
}

// structuralKey renders a TypeInfo into a hashable, collision-free key.
// It is not meant to be compact, only unambiguous; the pool's lock
// already bounds how often it runs per distinct shape.
func structuralKey(t TypeInfo) string {
	return fmt.Sprintf("%d|%d|%t|%t|%d|%d|%d|%d|%d|%d|%v|%d|%d|%v|%d|%d",
		t.Kind, t.Bits, t.Signed, t.Unsized, t.Sym, t.PointerKind, t.Elem,
		t.ReferenceKind, t.Dim, t.AggregateKind, t.Members, t.AggregateName,
		t.Return, t.Params, t.LambdaFlags, len(t.Members))
}

// Add canonicalizes t and returns its stable ref (add_type, spec §4.1).
func (p *Pool) Add(t TypeInfo) arena.TypeRef {
	key := structuralKey(t)
	h := xxhash.Sum64String(key)
	_ = h // reserved for future sharded dedup; single map is sufficient here

	p.mu.RLock()
	if ref, ok := p.byKey[key]; ok {
		p.mu.RUnlock()
		return ref
	}
	p.mu.RUnlock()

	p.mu.Lock()
	defer p.mu.Unlock()
	if ref, ok := p.byKey[key]; ok {
		return ref
	}
	ref := arena.TypeRef(len(p.infos))
	p.infos = append(p.infos, t)
	p.byKey[key] = ref
	return ref
}

// Get resolves a ref back to its TypeInfo.
func (p *Pool) Get(ref arena.TypeRef) (TypeInfo, bool) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if ref.Invalid() || int(ref) >= len(p.infos) {
		return TypeInfo{}, false
	}
	return p.infos[ref], true
}

// MustGet resolves a ref, panicking on an unknown ref — used where the
// caller already holds a ref it is certain was produced by Add.
func (p *Pool) MustGet(ref arena.TypeRef) TypeInfo {
	t, ok := p.Get(ref)
	if !ok {
		panic(fmt.Sprintf("typepool: unknown ref %v", ref))
	}
	return t
}

// Underlying follows a KindAlias chain to the concrete type it
// ultimately names (spec §4.2 casts/promotion operate on concrete
// shapes, not alias names). Bounded so a self-referential alias, which
// is a sema error in its own right, can't loop forever.
func (p *Pool) Underlying(ref arena.TypeRef) arena.TypeRef {
	for i := 0; i < 64; i++ {
		info, ok := p.Get(ref)
		if !ok || info.Kind != KindAlias {
			return ref
		}
		ref = info.Elem
	}
	return ref
}
