package sema

import (
	"github.com/swglang/swc/internal/arena"
	"github.com/swglang/swc/internal/ast"
	"github.com/swglang/swc/internal/job"
	"github.com/swglang/swc/internal/symbol"
)

// resolveTypeExprNode sets a TypeExpr node's Type, either from the
// fixed builtin-name table or by resolving a user-defined type symbol
// through the normal scope chain (spec §4.4 Type expressions).
func (p *pass) resolveTypeExprNode(n arena.AstNodeRef, node ast.Node) ast.Intent {
	if node.HasType() {
		return ast.Continue
	}
	if ref, ok := p.builtinType(node.Name); ok {
		p.prog.Ast.Mutate(n, func(nd *ast.Node) { nd.Type = ref })
		return ast.Continue
	}

	syms := p.currentScope().Resolve(node.Name)
	if len(syms) == 0 {
		return p.pauseOnIdentifier(node, node.Name)
	}
	sym := syms[len(syms)-1]
	if sym.Kind != symbol.KindType {
		p.reportDiag(n, "sema_err_not_a_type")
		p.markNodeError(n)
		return ast.Continue
	}
	if !sym.Reached(symbol.Typed) {
		return p.pauseOnSymbolState(node, sym, symbol.Typed, job.WaitTyped)
	}
	p.prog.Ast.Mutate(n, func(nd *ast.Node) { nd.Type = sym.Type })
	return ast.Continue
}

// builtinType resolves the fixed set of scalar type names (spec §4.2's
// s8/s16/s32/s64 signed/unsigned numeric slots, plus f32/f64/usize/
// bool/void/string/char) directly, without a symbol lookup — these
// never need to be declared.
func (p *pass) builtinType(name arena.IdentifierRef) (arena.TypeRef, bool) {
	switch p.prog.Idents.String(name) {
	case "s8":
		return p.prog.Types.WellKnown(8, true, false), true
	case "u8":
		return p.prog.Types.WellKnown(8, false, false), true
	case "s16":
		return p.prog.Types.WellKnown(16, true, false), true
	case "u16":
		return p.prog.Types.WellKnown(16, false, false), true
	case "s32":
		return p.prog.Types.WellKnown(32, true, false), true
	case "u32":
		return p.prog.Types.WellKnown(32, false, false), true
	case "s64":
		return p.prog.Types.WellKnown(64, true, false), true
	case "u64", "usize":
		return p.prog.Types.WellKnown(64, false, false), true
	case "f32":
		return p.prog.Types.WellKnown(32, false, true), true
	case "f64":
		return p.prog.Types.WellKnown(64, false, true), true
	case "bool":
		return p.prog.Types.BoolRef(), true
	case "void":
		return p.prog.Types.VoidRef(), true
	case "string":
		return p.prog.Types.StringRef(), true
	case "char":
		return p.prog.Types.CharRef(), true
	}
	return 0, false
}
