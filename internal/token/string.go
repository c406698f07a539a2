package token

// String renders id for diagnostic arguments (e.g. "expected X, found
// Y"); it is not used on any hot lexing/parsing path, only when a
// diag.Diagnostic is actually constructed.
func (id ID) String() string {
	switch id {
	case Invalid:
		return "<invalid>"
	case IntLiteral:
		return "int literal"
	case FloatLiteral:
		return "float literal"
	case StringLiteral:
		return "string literal"
	case CharLiteral:
		return "char literal"
	case TrueLiteral:
		return "true"
	case FalseLiteral:
		return "false"
	case NullLiteral:
		return "null"
	case UndefinedLiteral:
		return "undefined"
	case Identifier:
		return "identifier"
	case Plus:
		return "+"
	case Minus:
		return "-"
	case Star:
		return "*"
	case Slash:
		return "/"
	case Percent:
		return "%"
	case Amp:
		return "&"
	case Pipe:
		return "|"
	case Caret:
		return "^"
	case Tilde:
		return "~"
	case Shl:
		return "<<"
	case Shr:
		return ">>"
	case Eq:
		return "=="
	case Ne:
		return "!="
	case Lt:
		return "<"
	case Le:
		return "<="
	case Gt:
		return ">"
	case Ge:
		return ">="
	case Assign:
		return "="
	case PlusPlus:
		return "++"
	case AmpAmp:
		return "&&"
	case PipePipe:
		return "||"
	case Bang:
		return "!"
	case Question:
		return "?"
	case Colon:
		return ":"
	case Semicolon:
		return ";"
	case Comma:
		return ","
	case Dot:
		return "."
	case DotDot:
		return ".."
	case LParen:
		return "("
	case RParen:
		return ")"
	case LBrace:
		return "{"
	case RBrace:
		return "}"
	case LBracket:
		return "["
	case RBracket:
		return "]"
	case Arrow:
		return "->"
	case KwFunc:
		return "func"
	case KwVar:
		return "var"
	case KwConst:
		return "const"
	case KwStruct:
		return "struct"
	case KwUnion:
		return "union"
	case KwEnum:
		return "enum"
	case KwInterface:
		return "interface"
	case KwAlias:
		return "alias"
	case KwNamespace:
		return "namespace"
	case KwImpl:
		return "impl"
	case KwIf:
		return "if"
	case KwElse:
		return "else"
	case KwWhile:
		return "while"
	case KwFor:
		return "for"
	case KwForeach:
		return "foreach"
	case KwSwitch:
		return "switch"
	case KwCase:
		return "case"
	case KwDefault:
		return "default"
	case KwReturn:
		return "return"
	case KwBreak:
		return "break"
	case KwContinue:
		return "continue"
	case KwIn:
		return "in"
	case KwAs:
		return "as"
	case KwCast:
		return "cast"
	case TyVoid:
		return "void"
	case TyBool:
		return "bool"
	case TyS8:
		return "s8"
	case TyS16:
		return "s16"
	case TyS32:
		return "s32"
	case TyS64:
		return "s64"
	case TyU8:
		return "u8"
	case TyU16:
		return "u16"
	case TyU32:
		return "u32"
	case TyU64:
		return "u64"
	case TyF32:
		return "f32"
	case TyF64:
		return "f64"
	case TyUsize:
		return "usize"
	case TyString:
		return "string"
	case TyChar:
		return "char"
	case CompilerIf:
		return "#if"
	case CompilerElse:
		return "#else"
	case CompilerEndIf:
		return "#endif"
	case CompilerAssert:
		return "#assert"
	case CompilerError:
		return "#error"
	case CompilerWarning:
		return "#warning"
	case CompilerWrap:
		return "#wrap"
	case CompilerDefined:
		return "#defined"
	case ModPublic:
		return "public"
	case ModInternal:
		return "internal"
	case ModPrivate:
		return "private"
	case IntrinsicSizeOf:
		return "@sizeof"
	case IntrinsicTypeOf:
		return "@typeof"
	case IntrinsicOffsetOf:
		return "@offsetof"
	case EOF:
		return "<eof>"
	default:
		return "<unknown token>"
	}
}
