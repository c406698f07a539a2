// Package token defines the closed token-kind enum and the Token value
// the lexer (an external collaborator, specified only by this output
// shape) hands to the parser and to sema via a SourceView.
package token

// Flags records trivia-adjacency and escaping facts about a token,
// set by the lexer so downstream stages don't need to re-scan bytes.
type Flags uint8

const (
	BlankBefore Flags = 1 << iota
	BlankAfter
	EolBefore
	EolAfter
	EolInside
	Escaped
)

func (f Flags) Has(bit Flags) bool { return f&bit != 0 }

// ID is the closed enum of token kinds. Family predicates below group
// related IDs the way sema and the parser query them, rather than
// switching on raw integer ranges everywhere.
type ID uint16

const (
	Invalid ID = iota

	// Literals
	IntLiteral
	FloatLiteral
	StringLiteral
	CharLiteral
	TrueLiteral
	FalseLiteral
	NullLiteral
	UndefinedLiteral

	Identifier

	// Symbols
	Plus
	Minus
	Star
	Slash
	Percent
	Amp
	Pipe
	Caret
	Tilde
	Shl
	Shr
	Eq
	Ne
	Lt
	Le
	Gt
	Ge
	Assign
	PlusPlus
	AmpAmp
	PipePipe
	Bang
	Question
	Colon
	Semicolon
	Comma
	Dot
	DotDot
	LParen
	RParen
	LBrace
	RBrace
	LBracket
	RBracket
	Arrow

	// Keywords
	KwFunc
	KwVar
	KwConst
	KwStruct
	KwUnion
	KwEnum
	KwInterface
	KwAlias
	KwNamespace
	KwImpl
	KwIf
	KwElse
	KwWhile
	KwFor
	KwForeach
	KwSwitch
	KwCase
	KwDefault
	KwReturn
	KwBreak
	KwContinue
	KwIn
	KwAs
	KwCast

	// Type keywords
	TyVoid
	TyBool
	TyS8
	TyS16
	TyS32
	TyS64
	TyU8
	TyU16
	TyU32
	TyU64
	TyF32
	TyF64
	TyUsize
	TyString
	TyChar

	// Compiler-directive tokens (`#if`, `#assert`, ...)
	CompilerIf
	CompilerElse
	CompilerEndIf
	CompilerAssert
	CompilerError
	CompilerWarning
	CompilerWrap
	CompilerDefined

	// Modifiers
	ModPublic
	ModInternal
	ModPrivate

	// Intrinsics (`@sizeof`, `@typeof`, ...)
	IntrinsicSizeOf
	IntrinsicTypeOf
	IntrinsicOffsetOf

	EOF
)

// IsSymbol reports whether id is a punctuation/operator symbol.
func (id ID) IsSymbol() bool { return id >= Plus && id <= Arrow }

// IsKeyword reports whether id is a non-type, non-modifier keyword.
func (id ID) IsKeyword() bool { return id >= KwFunc && id <= KwCast }

// IsType reports whether id names a built-in scalar type.
func (id ID) IsType() bool { return id >= TyVoid && id <= TyChar }

// IsCompiler reports whether id is a compiler-directive token.
func (id ID) IsCompiler() bool { return id >= CompilerIf && id <= CompilerDefined }

// IsModifier reports whether id is an access-modifier keyword.
func (id ID) IsModifier() bool { return id >= ModPublic && id <= ModPrivate }

// IsIntrinsic reports whether id names a compiler intrinsic form.
func (id ID) IsIntrinsic() bool { return id >= IntrinsicSizeOf && id <= IntrinsicOffsetOf }

// IsLiteral reports whether id introduces a literal expression.
func (id ID) IsLiteral() bool {
	return id >= IntLiteral && id <= UndefinedLiteral
}

// RelatedClose maps an opening bracket token to its closer; ok is
// false if id is not an opening bracket.
func RelatedClose(id ID) (ID, bool) {
	switch id {
	case LParen:
		return RParen, true
	case LBrace:
		return RBrace, true
	case LBracket:
		return RBracket, true
	default:
		return Invalid, false
	}
}

// Token is the fixed-size value the lexer produces per spec §3.2:
// {byteStart, byteLength, id, flags}. For identifier tokens byteStart
// indirects through the owning SourceView's identifier table instead
// of naming a raw byte offset directly.
type Token struct {
	ByteStart  uint32
	ByteLength uint32
	ID         ID
	Flags      Flags
}
