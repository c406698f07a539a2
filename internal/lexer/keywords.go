package lexer

import "github.com/swglang/swc/internal/token"

// keywords maps every reserved word to its token.ID. Identifiers not
// found here lex as token.Identifier.
var keywords = map[string]token.ID{
	"func":      token.KwFunc,
	"var":       token.KwVar,
	"const":     token.KwConst,
	"struct":    token.KwStruct,
	"union":     token.KwUnion,
	"enum":      token.KwEnum,
	"interface": token.KwInterface,
	"alias":     token.KwAlias,
	"namespace": token.KwNamespace,
	"impl":      token.KwImpl,
	"if":        token.KwIf,
	"else":      token.KwElse,
	"while":     token.KwWhile,
	"for":       token.KwFor,
	"foreach":   token.KwForeach,
	"switch":    token.KwSwitch,
	"case":      token.KwCase,
	"default":   token.KwDefault,
	"return":    token.KwReturn,
	"break":     token.KwBreak,
	"continue":  token.KwContinue,
	"in":        token.KwIn,
	"as":        token.KwAs,
	"cast":      token.KwCast,

	"void":   token.TyVoid,
	"bool":   token.TyBool,
	"s8":     token.TyS8,
	"s16":    token.TyS16,
	"s32":    token.TyS32,
	"s64":    token.TyS64,
	"u8":     token.TyU8,
	"u16":    token.TyU16,
	"u32":    token.TyU32,
	"u64":    token.TyU64,
	"f32":    token.TyF32,
	"f64":    token.TyF64,
	"usize":  token.TyUsize,
	"string": token.TyString,
	"char":   token.TyChar,

	"public":   token.ModPublic,
	"internal": token.ModInternal,
	"private":  token.ModPrivate,

	"true":      token.TrueLiteral,
	"false":     token.FalseLiteral,
	"null":      token.NullLiteral,
	"undefined": token.UndefinedLiteral,
}

// compilerDirectives maps the word following a leading '#' to its
// compiler-directive token.ID (spec §4.3's compile-time `#if` forms).
var compilerDirectives = map[string]token.ID{
	"if":      token.CompilerIf,
	"else":    token.CompilerElse,
	"endif":   token.CompilerEndIf,
	"assert":  token.CompilerAssert,
	"error":   token.CompilerError,
	"warning": token.CompilerWarning,
	"wrap":    token.CompilerWrap,
	"defined": token.CompilerDefined,
}

// intrinsics maps the word following a leading '@' to its intrinsic
// token.ID.
var intrinsics = map[string]token.ID{
	"sizeof":   token.IntrinsicSizeOf,
	"typeof":   token.IntrinsicTypeOf,
	"offsetof": token.IntrinsicOffsetOf,
}

// lookupIdent classifies a scanned word as a keyword or a plain
// identifier.
func lookupIdent(word string) token.ID {
	if id, ok := keywords[word]; ok {
		return id
	}
	return token.Identifier
}
