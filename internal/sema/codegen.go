package sema

import (
	"github.com/swglang/swc/internal/arena"
	"github.com/swglang/swc/internal/ast"
	"github.com/swglang/swc/internal/codegen"
	"github.com/swglang/swc/internal/symbol"
)

// collectCallees walks a function body looking for calls this function
// makes to other named functions (spec §4.5's codegen.Job.Callees).
// Only the directly-resolvable shape is collected: a CallExpr whose
// callee is a plain Identifier that the use pass has already resolved
// to a symbol.KindFunction symbol. Calls through a member expression,
// an index expression, or an indirect (function-pointer-valued)
// variable aren't resolvable this way — postNodeUse never resolves an
// arbitrary callee expression to a symbol either, so this mirrors the
// rest of the pass rather than inventing a new resolution mechanism.
func (p *pass) collectCallees(body arena.AstNodeRef) []*symbol.Symbol {
	var callees []*symbol.Symbol
	seen := make(map[*symbol.Symbol]bool)
	var walk func(ref arena.AstNodeRef)
	walk = func(ref arena.AstNodeRef) {
		if ref.Invalid() {
			return
		}
		node := p.prog.Ast.MustNode(ref)
		if node.ID == ast.CallExpr {
			if callee, ok := p.prog.Ast.Node(node.A); ok && callee.ID == ast.Identifier && callee.HasSymbol() {
				if sym := p.prog.Symbols.Get(callee.Symbol); sym != nil && sym.Kind == symbol.KindFunction && !seen[sym] {
					seen[sym] = true
					callees = append(callees, sym)
				}
			}
		}
		for _, child := range p.prog.Ast.Children(node) {
			walk(child)
		}
	}
	walk(body)
	return callees
}

// scheduleCodegen spawns this function's codegen.Job once its own use
// pass completes (spec §4.5). Functions without a body (externs,
// forward declarations) have nothing to generate and are skipped.
// codegen.Schedule itself dedupes against ScheduledSet, so a function
// reached as someone else's callee before its own decl finishes use
// pass is still only ever scheduled once.
func (p *pass) scheduleCodegen(sym *symbol.Symbol, body arena.AstNodeRef) {
	if body.Invalid() {
		return
	}
	callees := p.collectCallees(body)
	job := codegen.NewJob(sym, callees)
	codegen.Schedule(p.prog.Jobs, p.j.ClientID, job, p.prog.CodegenScheduled)
}
