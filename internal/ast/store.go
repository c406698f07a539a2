package ast

import "github.com/swglang/swc/internal/arena"

// Store is the sharded AST arena of spec §3.1/§3.3. shardOf picks a
// shard from the calling worker's index to reduce contention during
// parallel parsing; cross-shard reads take the target shard's shared
// lock, writes take its exclusive lock (both handled inside
// arena.Store).
type Store struct {
	nodes *arena.Store[Node]
	spans *arena.SpanStore[arena.AstNodeRef]
}

// NewStore constructs an empty AST store.
func NewStore() *Store {
	return &Store{
		nodes: arena.NewStore[Node](),
		spans: arena.NewSpanStore[arena.AstNodeRef](),
	}
}

// MakeNode allocates a node in the given shard and returns its stable
// ref (make_node<Variant>, spec §4.1). The shard is normally the
// calling worker's index mod arena.ShardCount.
func (s *Store) MakeNode(shardIdx uint32, n Node) arena.AstNodeRef {
	local := s.nodes.Add(shardIdx, n)
	ref := arena.AstNodeRef(shardIdx<<(32-arena.ShardBits) | (local & (1<<(32-arena.ShardBits) - 1)))
	return ref
}

// Node resolves a ref to its current value. Torn reads are impossible:
// construction finishes under the shard lock before the ref is
// published (spec §4.1 guarantee).
func (s *Store) Node(ref arena.AstNodeRef) (Node, bool) {
	return s.nodes.Get(ref.Shard(), ref.Local())
}

// MustNode resolves a ref, panicking if unknown — used once a caller
// already holds a ref it trusts (e.g. from its own ancestor cursor).
func (s *Store) MustNode(ref arena.AstNodeRef) Node {
	n, ok := s.Node(ref)
	if !ok {
		panic("ast: unknown node ref")
	}
	return n
}

// Mutate applies fn to the node at ref under its shard's exclusive
// lock; used by post_node's set_constant/set_type/set_symbol/
// set_substitute and by flag updates (e.g. marking Ignored).
func (s *Store) Mutate(ref arena.AstNodeRef, fn func(*Node)) bool {
	return s.nodes.Mutate(ref.Shard(), ref.Local(), fn)
}

// PushSpan copies an ordered, homogeneous child-ref list into the
// page-backed span store (push_span, spec §4.1).
func (s *Store) PushSpan(items []arena.AstNodeRef) arena.SpanRef {
	return arena.SpanRef(s.spans.Push(items))
}

// Span returns the ordered refs of a span.
func (s *Store) Span(ref arena.SpanRef) []arena.AstNodeRef {
	return s.spans.Get(uint32(ref))
}
