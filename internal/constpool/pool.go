package constpool

import (
	"fmt"
	"sync"

	"github.com/swglang/swc/internal/arena"
)

// Pool deduplicates ConstantValues by structural hash, mirroring
// typepool.Pool's guarantees (spec §4.1): two equal constants collapse
// to one ref, insertion is lock-protected with a double-checked
// lookup.
type Pool struct {
	mu     sync.RWMutex
	byKey  map[string]arena.ConstantRef
	values []Value // index 0 unused, ref 0 is the invalid sentinel
}

// New constructs an empty constant pool.
func New() *Pool {
	return &Pool{byKey: make(map[string]arena.ConstantRef), values: []Value{{}}}
}

func structuralKey(v Value) string {
	return fmt.Sprintf("%d|%v|%d|%t|%t|%v|%q|%d|%v|%d|%d|%d",
		v.Kind, v.Bool, v.Int, v.Unsigned, v.Unsized, v.Float, v.Str, v.Char,
		v.Elements, v.WrappedType, v.EnumType, v.Ordinal)
}

// Add canonicalizes v and returns its stable ref (add_constant).
func (p *Pool) Add(v Value) arena.ConstantRef {
	key := structuralKey(v)

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
	ref := arena.ConstantRef(len(p.values))
	p.values = append(p.values, v)
	p.byKey[key] = ref
	return ref
}

// Get resolves a ref back to its Value.
func (p *Pool) Get(ref arena.ConstantRef) (Value, bool) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if ref.Invalid() || int(ref) >= len(p.values) {
		return Value{}, false
	}
	return p.values[ref], true
}

// MustGet resolves a ref, panicking on an unknown ref.
func (p *Pool) MustGet(ref arena.ConstantRef) Value {
	v, ok := p.Get(ref)
	if !ok {
		panic(fmt.Sprintf("constpool: unknown ref %v", ref))
	}
	return v
}
