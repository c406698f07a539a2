// Package ast implements the sharded AST store of spec §3.3: a closed
// tagged union of node variants, plus the re-entrant visitor of §3.3/
// §4.4 that sema and (conceptually) the parser drive. Node creation is
// thread-safe (shard-locked, via internal/arena.Store); once created a
// node is append-only visible, and children form a DAG rooted at the
// file node.
package ast

import "github.com/swglang/swc/internal/arena"

// NodeID is the closed tag of the AST node union (spec §3.3).
type NodeID uint8

const (
	Invalid NodeID = iota

	// File / structure
	File
	Block

	// Literals
	IntLiteral
	FloatLiteral
	StringLiteral
	CharLiteral
	BoolLiteral
	NullLiteral
	UndefinedLiteral
	AggregateLiteral

	// Expressions
	Identifier
	BinaryExpr
	UnaryExpr
	LogicalExpr
	RelationalExpr
	CastExpr
	CallExpr
	MemberExpr
	IndexExpr
	TypeExpr // a type used as an expression (spec-value case)

	// Statements
	ExprStmt
	VarDecl
	ConstDecl
	AssignStmt
	IfStmt
	WhileStmt
	ForStmt
	ForeachStmt
	SwitchStmt
	CaseBranch
	ReturnStmt
	BreakStmt
	ContinueStmt

	// Declarations
	FuncDecl
	Param
	StructDecl
	UnionDecl
	EnumDecl
	EnumMember
	InterfaceDecl
	AliasDecl
	NamespaceDecl
	ImplDecl

	// Compiler directives
	CompilerIfDecl
	CompilerAssertDecl
	CompilerErrorDecl
	CompilerWarningDecl

	// Intrinsics
	IntrinsicExpr
)

// String names a node's variant for diagnostics and AST dumps, one
// case per NodeID constant above.
func (id NodeID) String() string {
	switch id {
	case File:
		return "File"
	case Block:
		return "Block"
	case IntLiteral:
		return "IntLiteral"
	case FloatLiteral:
		return "FloatLiteral"
	case StringLiteral:
		return "StringLiteral"
	case CharLiteral:
		return "CharLiteral"
	case BoolLiteral:
		return "BoolLiteral"
	case NullLiteral:
		return "NullLiteral"
	case UndefinedLiteral:
		return "UndefinedLiteral"
	case AggregateLiteral:
		return "AggregateLiteral"
	case Identifier:
		return "Identifier"
	case BinaryExpr:
		return "BinaryExpr"
	case UnaryExpr:
		return "UnaryExpr"
	case LogicalExpr:
		return "LogicalExpr"
	case RelationalExpr:
		return "RelationalExpr"
	case CastExpr:
		return "CastExpr"
	case CallExpr:
		return "CallExpr"
	case MemberExpr:
		return "MemberExpr"
	case IndexExpr:
		return "IndexExpr"
	case TypeExpr:
		return "TypeExpr"
	case ExprStmt:
		return "ExprStmt"
	case VarDecl:
		return "VarDecl"
	case ConstDecl:
		return "ConstDecl"
	case AssignStmt:
		return "AssignStmt"
	case IfStmt:
		return "IfStmt"
	case WhileStmt:
		return "WhileStmt"
	case ForStmt:
		return "ForStmt"
	case ForeachStmt:
		return "ForeachStmt"
	case SwitchStmt:
		return "SwitchStmt"
	case CaseBranch:
		return "CaseBranch"
	case ReturnStmt:
		return "ReturnStmt"
	case BreakStmt:
		return "BreakStmt"
	case ContinueStmt:
		return "ContinueStmt"
	case FuncDecl:
		return "FuncDecl"
	case Param:
		return "Param"
	case StructDecl:
		return "StructDecl"
	case UnionDecl:
		return "UnionDecl"
	case EnumDecl:
		return "EnumDecl"
	case EnumMember:
		return "EnumMember"
	case InterfaceDecl:
		return "InterfaceDecl"
	case AliasDecl:
		return "AliasDecl"
	case NamespaceDecl:
		return "NamespaceDecl"
	case ImplDecl:
		return "ImplDecl"
	case CompilerIfDecl:
		return "CompilerIfDecl"
	case CompilerAssertDecl:
		return "CompilerAssertDecl"
	case CompilerErrorDecl:
		return "CompilerErrorDecl"
	case CompilerWarningDecl:
		return "CompilerWarningDecl"
	case IntrinsicExpr:
		return "IntrinsicExpr"
	default:
		return "Invalid"
	}
}

// SemaFlags records parser/sema-time observations on a node (spec §3.3,
// §4.4's LValue/Value marks, and §6.2's AstFlagsE family).
type SemaFlags uint16

const (
	FlagHasErrors SemaFlags = 1 << iota
	FlagGlobalSkip
	FlagLValue
	FlagValue
	FlagIgnored // node's owning symbol was withdrawn (compiler-if loser, cycle victim)
)

func (f SemaFlags) Has(bit SemaFlags) bool { return f&bit != 0 }

// BinaryOp / UnaryOp name the concrete operator of a Binary/Unary/
// Logical/Relational node.
type BinaryOp uint8

const (
	OpAdd BinaryOp = iota
	OpSub
	OpMul
	OpDiv
	OpMod
	OpAnd
	OpOr
	OpXor
	OpShl
	OpShr
	OpConcat // "++" string concatenation
	OpLogAnd
	OpLogOr
	OpEq
	OpNe
	OpLt
	OpLe
	OpGt
	OpGe
)

func (op BinaryOp) String() string {
	switch op {
	case OpAdd:
		return "+"
	case OpSub:
		return "-"
	case OpMul:
		return "*"
	case OpDiv:
		return "/"
	case OpMod:
		return "%"
	case OpAnd:
		return "&"
	case OpOr:
		return "|"
	case OpXor:
		return "^"
	case OpShl:
		return "<<"
	case OpShr:
		return ">>"
	case OpConcat:
		return "++"
	case OpLogAnd:
		return "&&"
	case OpLogOr:
		return "||"
	case OpEq:
		return "=="
	case OpNe:
		return "!="
	case OpLt:
		return "<"
	case OpLe:
		return "<="
	case OpGt:
		return ">"
	case OpGe:
		return ">="
	default:
		return "?"
	}
}

// IsArithmeticFamily reports whether op is one of `+ - * / %`.
func (op BinaryOp) IsArithmeticFamily() bool {
	return op == OpAdd || op == OpSub || op == OpMul || op == OpDiv || op == OpMod
}

// IsBitwiseFamily reports whether op is one of `& | ^ >> <<`.
func (op BinaryOp) IsBitwiseFamily() bool {
	return op == OpAnd || op == OpOr || op == OpXor || op == OpShl || op == OpShr
}

// CastModifier records the `Wrap`/`Promote` style modifier flags
// attached to a binary/cast expression (spec §4.4 step 2).
type CastModifier uint8

const (
	ModNone CastModifier = iota
	ModWrap
	ModPromote
)

// Node is the value-typed tagged union every AST node is stored as.
// Only the fields relevant to ID are meaningful; callers consult ID
// before reading variant-specific fields, exactly like typepool.TypeInfo
// and constpool.Value.
type Node struct {
	ID         NodeID
	TokRef     arena.TokenRef
	SrcViewRef arena.SourceViewRef
	Flags      SemaFlags

	// sema results: post_node must set exactly one of these (spec §4.4
	// Post-node computations / §8 invariant).
	Constant  arena.ConstantRef
	Type      arena.TypeRef
	Symbol    arena.SymbolRef
	Substitute arena.AstNodeRef

	// structural children — meaning depends on ID
	A, B, C arena.AstNodeRef // e.g. binary: A op B; if: A=cond,B=then,C=else
	Span    arena.SpanRef    // primary ordered child list (decl order)
	Span2   arena.SpanRef    // secondary ordered child list (e.g. File.children, vs. Span=File.globals)

	// literal/decl payload
	Name     arena.IdentifierRef
	Op       BinaryOp
	Modifier CastModifier
	Access   uint8 // AccessModifier, see internal/symbol
	BoolVal  bool
}

// HasConstant, HasType, HasSymbol, HasSubstitute implement the
// mutually-exclusive post_node outcome check of spec §8.
func (n Node) HasConstant() bool  { return !n.Constant.Invalid() }
func (n Node) HasType() bool      { return !n.Type.Invalid() }
func (n Node) HasSymbol() bool    { return !n.Symbol.Invalid() }
func (n Node) HasSubstitute() bool { return !n.Substitute.Invalid() }
