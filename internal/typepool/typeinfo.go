package typepool

import "github.com/swglang/swc/internal/arena"

// Kind is the closed tag of the TypeInfo union (spec §3.5).
type Kind uint8

const (
	KindInvalid Kind = iota
	KindVoid
	KindBool
	KindInt
	KindFloat
	KindString
	KindChar
	KindEnum
	KindAlias
	KindPointer
	KindReference
	KindArray
	KindAggregate
	KindLambda
	KindTypeValue
	KindVariadic
)

// PointerKind distinguishes the pointer sub-shapes of spec §3.5.
type PointerKind uint8

const (
	PointerValue PointerKind = iota
	PointerBlock
	PointerSlice
)

// ReferenceKind distinguishes lvalue/rvalue references.
type ReferenceKind uint8

const (
	ReferenceLValue ReferenceKind = iota
	ReferenceRValue
)

// AggregateKind distinguishes struct/union aggregates.
type AggregateKind uint8

const (
	AggregateStruct AggregateKind = iota
	AggregateUnion
	AggregateInterface
)

// Member is one named, ordered field of an aggregate type.
type Member struct {
	Name arena.IdentifierRef
	Type arena.TypeRef
}

// LambdaFlags carries calling-convention-ish bits on a lambda type.
type LambdaFlags uint8

const (
	LambdaVariadic LambdaFlags = 1 << iota
	LambdaThrows
)

// TypeInfo is the value-typed tagged union of spec §3.5. Only the
// fields relevant to Kind are meaningful; the rest are zero.
type TypeInfo struct {
	Kind Kind

	// int/float
	Bits     uint8
	Signed   bool
	Unsized  bool // literal whose width/signedness is not yet fixed

	// enum/alias
	Sym arena.SymbolRef

	// pointer
	PointerKind PointerKind
	Elem        arena.TypeRef // pointer elem, reference elem, array elem, type-value wrapped type, or (KindAlias) the aliased type

	// reference
	ReferenceKind ReferenceKind

	// array
	Dim int64 // -1 for unsized/slice-shaped arrays

	// aggregate
	AggregateKind AggregateKind
	AggregateName arena.SymbolRef
	Members       []Member

	// lambda
	Params      []arena.TypeRef
	Return      arena.TypeRef
	LambdaFlags LambdaFlags
}

// Void, Bool and the fixed-width numeric kinds are constructed via
// helpers so canonical keys are built consistently by the pool.

func Void() TypeInfo   { return TypeInfo{Kind: KindVoid} }
func Bool() TypeInfo   { return TypeInfo{Kind: KindBool} }
func String() TypeInfo { return TypeInfo{Kind: KindString} }
func Char() TypeInfo   { return TypeInfo{Kind: KindChar} }

func Int(bits uint8, signed, unsized bool) TypeInfo {
	return TypeInfo{Kind: KindInt, Bits: bits, Signed: signed, Unsized: unsized}
}

func Float(bits uint8, unsized bool) TypeInfo {
	return TypeInfo{Kind: KindFloat, Bits: bits, Unsized: unsized}
}

func Pointer(kind PointerKind, elem arena.TypeRef) TypeInfo {
	return TypeInfo{Kind: KindPointer, PointerKind: kind, Elem: elem}
}

func Reference(kind ReferenceKind, elem arena.TypeRef) TypeInfo {
	return TypeInfo{Kind: KindReference, ReferenceKind: kind, Elem: elem}
}

func Array(dim int64, elem arena.TypeRef) TypeInfo {
	return TypeInfo{Kind: KindArray, Dim: dim, Elem: elem}
}

func TypeValue(wrapped arena.TypeRef) TypeInfo {
	return TypeInfo{Kind: KindTypeValue, Elem: wrapped}
}

func Variadic(elem arena.TypeRef) TypeInfo {
	return TypeInfo{Kind: KindVariadic, Elem: elem}
}

// IsNumericScalar reports whether t participates in the promotion
// table of spec §4.2 (int or float, sized or unsized).
func (t TypeInfo) IsNumericScalar() bool {
	return t.Kind == KindInt || t.Kind == KindFloat
}
