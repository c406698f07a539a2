// Package arena implements the core's page-based, shard-safe object
// stores. Everything long-lived in the compiler is addressed through a
// small copyable reference handle rather than a pointer: AstNodeRef,
// TypeRef, ConstantRef, IdentifierRef, SymbolRef, TokenRef,
// SourceViewRef, SpanRef, FileRef. A reference is either the invalid
// sentinel (zero value) or points at a live object for the lifetime of
// the owning compiler instance.
package arena

import "fmt"

// ShardBits is the number of bits used to select an AST shard. The
// spec requires only "any power-of-two >= 2"; 8 shards (3 bits)
// matches the reference sharding strategy and keeps per-shard
// contention low during parallel parsing and traversal.
const (
	ShardBits    = 3
	ShardCount   = 1 << ShardBits
	payloadBits  = 32 - ShardBits
	payloadMask  = 1<<payloadBits - 1
	invalidLocal = 0
)

// AstNodeRef addresses a node inside the sharded AST store. Encoding:
// high ShardBits select the shard, the remaining bits are the local
// index within that shard's page array. The zero value is reserved
// invalid (spec §6.2).
type AstNodeRef uint32

// Invalid reports whether the ref is the reserved sentinel.
func (r AstNodeRef) Invalid() bool { return r == 0 }

// Shard extracts the owning shard index.
func (r AstNodeRef) Shard() uint32 { return uint32(r) >> payloadBits }

// Local extracts the local index within the owning shard.
func (r AstNodeRef) Local() uint32 { return uint32(r) & payloadMask }

func (r AstNodeRef) String() string {
	if r.Invalid() {
		return "AstNodeRef(invalid)"
	}
	return fmt.Sprintf("AstNodeRef(shard=%d,local=%d)", r.Shard(), r.Local())
}

func makeRef(shard, local uint32) AstNodeRef {
	if local == invalidLocal && shard == 0 {
		return 0
	}
	return AstNodeRef(shard<<payloadBits | (local & payloadMask))
}

// TypeRef addresses a canonical TypeInfo in the type pool.
type TypeRef uint32

// Invalid reports whether this is the reserved sentinel.
func (r TypeRef) Invalid() bool { return r == 0 }

// ConstantRef addresses a canonical ConstantValue in the constant pool.
type ConstantRef uint32

// Invalid reports whether this is the reserved sentinel.
func (r ConstantRef) Invalid() bool { return r == 0 }

// IdentifierRef addresses an interned identifier string.
type IdentifierRef uint32

// Invalid reports whether this is the reserved sentinel.
func (r IdentifierRef) Invalid() bool { return r == 0 }

// SymbolRef addresses a Symbol in the symbol store.
type SymbolRef uint32

// Invalid reports whether this is the reserved sentinel.
func (r SymbolRef) Invalid() bool { return r == 0 }

// TokenRef addresses a token within its owning SourceView's token array.
type TokenRef uint32

// SourceViewRef addresses one file's SourceView.
type SourceViewRef uint32

// Invalid reports whether this is the reserved sentinel.
func (r SourceViewRef) Invalid() bool { return r == 0 }

// SpanRef addresses an ordered, homogeneous child list stored in the
// page-backed span store (see Spans).
type SpanRef uint32

// Invalid reports whether this is the reserved sentinel.
func (r SpanRef) Invalid() bool { return r == 0 }

// FileRef addresses one discovered source file (see internal/filemgr).
type FileRef uint32

// Invalid reports whether this is the reserved sentinel.
func (r FileRef) Invalid() bool { return r == 0 }
