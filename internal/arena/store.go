package arena

import "sync"

// pageSize is the number of elements per page. Pages are allocated
// lazily and never reallocated once created, so a pointer into a page
// stays valid for the store's lifetime even while other shards grow.
const pageSize = 4096

// Store is a sharded, append-only page store for a fixed-size value
// type T. Each shard is guarded by its own RWMutex: reads (Get) take a
// shared lock, writes (Add) take an exclusive lock. Because shards are
// chosen by the caller (normally the worker-thread index), concurrent
// parsing on N workers touches at most N distinct locks.
//
// Store never moves or reallocates a previously published element: a
// page, once created, is appended to but not replaced, so a reference
// returned by Add remains valid for the life of the Store.
type Store[T any] struct {
	shards [ShardCount]shard[T]
}

type shard[T any] struct {
	mu    sync.RWMutex
	pages [][]T
	count uint32
}

// NewStore constructs an empty sharded store.
func NewStore[T any]() *Store[T] {
	return &Store[T]{}
}

// Add appends a value to the given shard and returns its local index
// within that shard (not yet encoded as a full reference — callers
// combine shard+local into the domain-specific ref type).
func (s *Store[T]) Add(shardIdx uint32, v T) uint32 {
	sh := &s.shards[shardIdx%ShardCount]
	sh.mu.Lock()
	defer sh.mu.Unlock()

	local := sh.count
	pageIdx := local / pageSize
	offset := local % pageSize
	if int(pageIdx) == len(sh.pages) {
		sh.pages = append(sh.pages, make([]T, pageSize))
	}
	sh.pages[pageIdx][offset] = v
	sh.count++
	// Local indices start at 1 so that 0 stays the reserved-invalid
	// sentinel across every ref type built on this store.
	return local + 1
}

// Get returns the value at (shardIdx, local) and whether it exists.
// local uses the same 1-based numbering Add returns.
func (s *Store[T]) Get(shardIdx, local uint32) (T, bool) {
	var zero T
	if local == 0 {
		return zero, false
	}
	idx := local - 1
	sh := &s.shards[shardIdx%ShardCount]
	sh.mu.RLock()
	defer sh.mu.RUnlock()
	if idx >= sh.count {
		return zero, false
	}
	return sh.pages[idx/pageSize][idx%pageSize], true
}

// Mutate applies fn to the element at (shardIdx, local) under the
// shard's exclusive lock, used by sema post_node/set_type/set_constant
// style in-place updates to an already-published node.
func (s *Store[T]) Mutate(shardIdx, local uint32, fn func(*T)) bool {
	if local == 0 {
		return false
	}
	idx := local - 1
	sh := &s.shards[shardIdx%ShardCount]
	sh.mu.Lock()
	defer sh.mu.Unlock()
	if idx >= sh.count {
		return false
	}
	fn(&sh.pages[idx/pageSize][idx%pageSize])
	return true
}

// Len returns the number of live elements in a shard.
func (s *Store[T]) Len(shardIdx uint32) uint32 {
	sh := &s.shards[shardIdx%ShardCount]
	sh.mu.RLock()
	defer sh.mu.RUnlock()
	return sh.count
}

// SpanStore holds ordered, homogeneous child lists ("spans"), separate
// from the node store because spans vary in length and are written once
// at creation (push_span, §4.1). Each span is kept as its own copied
// slice in chunks, indexed by handle; spans are not packed into shared
// pages and there is no chunk chaining across pages.
type SpanStore[T any] struct {
	mu     sync.RWMutex
	chunks [][]T
	starts []uint32 // not written by Push; spans are found by handle index into chunks
	lens   []uint32
}

// NewSpanStore constructs an empty span store.
func NewSpanStore[T any]() *SpanStore[T] {
	return &SpanStore[T]{}
}

// Push copies items into the span store and returns a 1-based handle
// (0 stays invalid) identifying the new span.
func (s *SpanStore[T]) Push(items []T) uint32 {
	s.mu.Lock()
	defer s.mu.Unlock()

	cp := make([]T, len(items))
	copy(cp, items)
	s.chunks = append(s.chunks, cp)
	s.lens = append(s.lens, uint32(len(items)))
	return uint32(len(s.chunks))
}

// Get returns the items of span handle h (1-based).
func (s *SpanStore[T]) Get(h uint32) []T {
	if h == 0 {
		return nil
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	idx := h - 1
	if int(idx) >= len(s.chunks) {
		return nil
	}
	return s.chunks[idx]
}

// Len returns the number of elements in span handle h.
func (s *SpanStore[T]) Len(h uint32) int {
	return len(s.Get(h))
}
