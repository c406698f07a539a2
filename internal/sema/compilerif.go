package sema

import (
	"github.com/swglang/swc/internal/arena"
	"github.com/swglang/swc/internal/ast"
	"github.com/swglang/swc/internal/constpool"
)

// preCompilerIfChild stages a `#if` arm's declarations during the decl
// pass only: declaration (and therefore compiler-if staging) only ever
// happens in the decl pass, so the use pass doesn't need a live arm
// frame at all — it just reads back what was staged (spec §4.4
// Compiler-if: "both arms are declared eagerly; the loser is withdrawn
// once the condition is known").
func (p *pass) preCompilerIfChild(parent arena.AstNodeRef, pnode ast.Node, child arena.AstNodeRef) {
	if !p.declPass {
		return
	}
	if child != pnode.B && child != pnode.C {
		return // condition child, not an arm
	}

	payload := &branchPayload{}
	p.frames = append(p.frames, &Frame{CompilerIf: payload})
	top := len(p.frames) - 1
	armKey := [2]arena.AstNodeRef{parent, child}
	p.deferred = append(p.deferred, deferredPop{
		kind:  popOnPostChild,
		node:  parent,
		child: child,
		run: func() {
			p.file.CompilerIfStaged[armKey] = payload.staged
			p.popFrameAt(top)
		},
	})
}

// resolveCompilerIf evaluates the condition's folded constant and
// withdraws whichever arm lost (spec §4.4, §4.5): every symbol staged
// under the losing arm is marked Ignored, releasing any waiter on it
// with no diagnostic of its own.
func (p *pass) resolveCompilerIf(n arena.AstNodeRef, node ast.Node) ast.Intent {
	condNode := p.prog.Ast.MustNode(node.A)
	if suppressed(condNode) {
		p.markNodeError(n)
		return ast.Continue
	}

	var condVal bool
	switch {
	case condNode.HasConstant():
		v := p.prog.Consts.MustGet(condNode.Constant)
		switch v.Kind {
		case constpool.KindBool:
			condVal = v.Bool
		case constpool.KindInt:
			condVal = v.Int != 0
		default:
			p.reportDiag(n, "sema_err_compiler_if_not_constant_bool")
			p.markNodeError(n)
			return ast.Continue
		}
	default:
		p.reportDiag(n, "sema_err_compiler_if_not_constant_bool")
		p.markNodeError(n)
		return ast.Continue
	}

	loser := node.C
	if !condVal {
		loser = node.B
	}
	if !loser.Invalid() {
		for _, sym := range p.file.CompilerIfStaged[[2]arena.AstNodeRef{n, loser}] {
			p.prog.markIgnored(sym)
		}
	}
	return ast.Continue
}
