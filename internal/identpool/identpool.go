// Package identpool interns identifier strings to stable
// arena.IdentifierRef handles (spec §2, §4.1). Repeated interning of
// equal strings returns equal refs; structural hashing uses xxhash/v2
// (adopted from the orbas1-Synnergy example repo's dependency graph)
// both as the dedup key and as the per-file identifier-table CRC the
// lexer/SourceView contract calls for (spec §3.2).
package identpool

import (
	"sync"

	"github.com/cespare/xxhash/v2"

	"github.com/swglang/swc/internal/arena"
)

// Pool deduplicates identifier strings by structural hash under an
// internal lock, with a double-checked lookup so concurrent interners
// of the same name collapse to one ref (spec §4.1 guarantees).
type Pool struct {
	mu      sync.RWMutex
	byHash  map[uint64][]arena.IdentifierRef
	strings []string // index 0 unused (ref 0 is the invalid sentinel)
}

// New constructs an empty identifier pool.
func New() *Pool {
	return &Pool{
		byHash:  make(map[uint64][]arena.IdentifierRef),
		strings: []string{""},
	}
}

// Hash computes the structural hash spec §3.2 calls a "precomputed
// CRC"; implemented with xxhash for speed, truncated to 32 bits.
func Hash(s string) uint32 {
	return uint32(xxhash.Sum64String(s))
}

// Intern returns the stable ref for s, creating one on first sight.
func (p *Pool) Intern(s string) arena.IdentifierRef {
	h := xxhash.Sum64String(s)

	p.mu.RLock()
	if ref, ok := p.lookupLocked(h, s); ok {
		p.mu.RUnlock()
		return ref
	}
	p.mu.RUnlock()

	p.mu.Lock()
	defer p.mu.Unlock()
	// Double-checked: another goroutine may have interned s while we
	// waited for the write lock.
	if ref, ok := p.lookupLocked(h, s); ok {
		return ref
	}

	ref := arena.IdentifierRef(len(p.strings))
	p.strings = append(p.strings, s)
	p.byHash[h] = append(p.byHash[h], ref)
	return ref
}

func (p *Pool) lookupLocked(h uint64, s string) (arena.IdentifierRef, bool) {
	for _, ref := range p.byHash[h] {
		if p.strings[ref] == s {
			return ref, true
		}
	}
	return 0, false
}

// String resolves a ref back to its text. Returns "" for the invalid
// sentinel or an unknown ref.
func (p *Pool) String(ref arena.IdentifierRef) string {
	if ref.Invalid() {
		return ""
	}
	p.mu.RLock()
	defer p.mu.RUnlock()
	if int(ref) >= len(p.strings) {
		return ""
	}
	return p.strings[ref]
}

// Len returns the number of distinct interned identifiers.
func (p *Pool) Len() int {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return len(p.strings) - 1
}
