// Package constpool implements the deduplicating constant-value store
// of spec §3.6/§4.1, plus the constant-folding arithmetic that backs
// both binary-expression folding (§4.4) and cast-time folding (§4.2).
package constpool

import "github.com/swglang/swc/internal/arena"

// Kind is the closed tag of the ConstantValue union; cases parallel
// typepool.Kind the way spec §3.6 requires.
type Kind uint8

const (
	KindInvalid Kind = iota
	KindBool
	KindInt
	KindFloat
	KindString
	KindChar
	KindAggregate
	KindTypeValue
	KindEnumValue
)

// Value is the value-typed tagged union. Only fields relevant to Kind
// are meaningful.
type Value struct {
	Kind Kind

	Bool bool

	// Int: stored as a 64-bit pattern; Unsigned/Unsized record how to
	// interpret it before a width/signedness has been concretized.
	Int      int64
	Unsigned bool
	Unsized  bool

	Float float64

	Str string

	Char rune

	// Aggregate: ordered element constants.
	Elements []arena.ConstantRef

	// TypeValue: wraps a TypeRef (spec §3.5 type-value case).
	WrappedType arena.TypeRef

	// EnumValue: the enum's underlying ordinal plus owning enum type.
	EnumType arena.TypeRef
	Ordinal  int64
}

func Bool(b bool) Value    { return Value{Kind: KindBool, Bool: b} }
func Int(v int64, unsigned, unsized bool) Value {
	return Value{Kind: KindInt, Int: v, Unsigned: unsigned, Unsized: unsized}
}
func Float(v float64, unsized bool) Value { return Value{Kind: KindFloat, Float: v, Unsized: unsized} }
func Str(s string) Value                  { return Value{Kind: KindString, Str: s} }
func Char(r rune) Value                   { return Value{Kind: KindChar, Char: r} }
func TypeValue(t arena.TypeRef) Value     { return Value{Kind: KindTypeValue, WrappedType: t} }
func EnumValue(enumType arena.TypeRef, ordinal int64) Value {
	return Value{Kind: KindEnumValue, EnumType: enumType, Ordinal: ordinal}
}
