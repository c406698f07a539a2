package ast

import "github.com/swglang/swc/internal/arena"

// Children returns the ordered child refs of n in declaration order
// (spec §3.3 invariant), skipping invalid refs. The mapping from
// node shape to A/B/C/Span/Span2 is the single place that knows it;
// everything else (visitor, printer, sema) walks through this.
func (s *Store) Children(n Node) []arena.AstNodeRef {
	app := func(out []arena.AstNodeRef, refs ...arena.AstNodeRef) []arena.AstNodeRef {
		for _, r := range refs {
			if !r.Invalid() {
				out = append(out, r)
			}
		}
		return out
	}
	spanRefs := func(out []arena.AstNodeRef, span arena.SpanRef) []arena.AstNodeRef {
		return append(out, s.Span(span)...)
	}

	var out []arena.AstNodeRef
	switch n.ID {
	case File:
		out = spanRefs(out, n.Span)  // globals (uses/imports)
		out = spanRefs(out, n.Span2) // top-level declarations
	case Block:
		out = spanRefs(out, n.Span)
	case BinaryExpr, LogicalExpr, RelationalExpr:
		out = app(out, n.A, n.B)
	case UnaryExpr, CastExpr:
		out = app(out, n.A)
	case CallExpr:
		out = app(out, n.A)
		out = spanRefs(out, n.Span)
	case MemberExpr:
		out = app(out, n.A)
	case IndexExpr:
		out = app(out, n.A, n.B)
	case AggregateLiteral:
		out = spanRefs(out, n.Span)
	case ExprStmt:
		out = app(out, n.A)
	case VarDecl, ConstDecl:
		out = app(out, n.A, n.B) // A = type expr (optional), B = initializer (optional)
	case AssignStmt:
		out = app(out, n.A, n.B)
	case IfStmt:
		out = app(out, n.A, n.B, n.C) // cond, then, else
	case WhileStmt:
		out = app(out, n.A, n.B) // cond, body
	case ForStmt:
		out = app(out, n.A, n.B, n.C) // init/cond/post encoded by sub-kind; body via Span2
		out = spanRefs(out, n.Span2)
	case ForeachStmt:
		out = app(out, n.A, n.B) // iterable, body
	case SwitchStmt:
		out = app(out, n.A) // subject
		out = spanRefs(out, n.Span)
		out = app(out, n.B) // default block
	case CaseBranch:
		out = spanRefs(out, n.Span) // match values
		out = app(out, n.A)         // body
	case ReturnStmt:
		out = app(out, n.A)
	case FuncDecl:
		out = spanRefs(out, n.Span) // params
		out = app(out, n.A)         // return type expr
		out = app(out, n.B)         // body block
	case Param:
		out = app(out, n.A) // type expr
	case StructDecl, UnionDecl, InterfaceDecl:
		out = spanRefs(out, n.Span) // members (as Param-shaped or FuncDecl nodes)
	case EnumDecl:
		out = spanRefs(out, n.Span) // EnumMember nodes
	case EnumMember:
		out = app(out, n.A) // optional explicit value expr
	case AliasDecl:
		out = app(out, n.A) // aliased type expr
	case NamespaceDecl:
		out = spanRefs(out, n.Span)
	case ImplDecl:
		out = app(out, n.A) // target type expr
		out = spanRefs(out, n.Span)
	case CompilerIfDecl:
		out = app(out, n.A, n.B, n.C) // condition, then, else
	case CompilerAssertDecl, CompilerErrorDecl, CompilerWarningDecl:
		out = app(out, n.A)
	case IntrinsicExpr:
		out = app(out, n.A) // operand (type expr or value expr, by intrinsic kind)
	}
	return out
}
