package sema

import (
	"fmt"

	"github.com/swglang/swc/internal/arena"
	"github.com/swglang/swc/internal/ast"
	"github.com/swglang/swc/internal/errors"
	"github.com/swglang/swc/internal/job"
	"github.com/swglang/swc/internal/symbol"
	"github.com/swglang/swc/internal/typepool"
)

// pass drives one visitor run (decl or use) over one file. Both passes
// share this struct — which branch of each hook runs is gated on
// declPass — since they differ in WHAT they compute, not in the
// traversal/frame/deferred-pop machinery around them.
type pass struct {
	prog     *Program
	file     *FileCtx
	declPass bool
	j        *job.Job

	frames   []*Frame
	deferred []deferredPop
}

func newPass(prog *Program, file *FileCtx, declPass bool, j *job.Job) *pass {
	return &pass{prog: prog, file: file, declPass: declPass, j: j}
}

// visitorAdapter translates ast.Intent (the visitor's vocabulary) into
// job.Result (the scheduler's vocabulary) — the only seam between the
// two packages' suspension models.
type visitorAdapter struct {
	v *ast.Visitor
}

func newVisitorAdapter(store *ast.Store, root arena.AstNodeRef, hooks ast.Hooks) *visitorAdapter {
	return &visitorAdapter{v: ast.NewVisitor(store, root, hooks)}
}

func (va *visitorAdapter) run() job.Result {
	switch va.v.Run() {
	case ast.Pause:
		return job.Pause
	default: // ast.Stop / ast.ErrorIntent / natural completion
		return job.Done
	}
}

// currentScope returns the innermost active scope, falling back to the
// program's global (module) scope at the top level.
func (p *pass) currentScope() *symbol.Scope {
	for i := len(p.frames) - 1; i >= 0; i-- {
		if p.frames[i].Scope != nil {
			return p.frames[i].Scope
		}
	}
	return p.prog.Global
}

// currentBindingType returns the nearest enclosing binding-type hint
// (spec §4.4 Frames), or an invalid ref if none is active.
func (p *pass) currentBindingType() arena.TypeRef {
	if f := p.topFrame(); f != nil {
		return f.BindingType
	}
	return 0
}

// currentAccess returns the nearest enclosing access modifier.
func (p *pass) currentAccess() symbol.AccessModifier {
	if f := p.topFrame(); f != nil {
		return f.Access
	}
	return symbol.AccessPublic
}

// stageIfInCompilerIfArm records sym against the innermost active
// compiler-if arm, if any, so a losing arm can withdraw it later.
func (p *pass) stageIfInCompilerIfArm(sym *symbol.Symbol) {
	for i := len(p.frames) - 1; i >= 0; i-- {
		if p.frames[i].CompilerIf != nil {
			p.frames[i].CompilerIf.stage(sym)
			return
		}
	}
}

// declareSymbol puts sym in the current scope, and additionally in the
// program's Global waiter-visible scope when at top level so
// cross-file WaitIdentifier waits are woken (spec §8 scenario 2).
func (p *pass) declareSymbol(sym *symbol.Symbol) {
	scope := p.currentScope()
	scope.Declare(sym)
	if scope == p.prog.Global {
		p.prog.declareGlobal(sym)
	}
	p.stageIfInCompilerIfArm(sym)
}

// recoverInternal turns a recovered panic into a spec §7 "Internal"
// diagnostic carrying the pass's current declaration stack, and
// returns ErrorIntent so the visitor runs error_cleanup and aborts
// this file's pass instead of leaving the panic to crash the worker
// goroutine it ran on (grounded on internal/errors' stack-trace
// shape; the "Internal... always surfaces as internal error"
// propagation policy of spec §7).
func (p *pass) recoverInternal(n arena.AstNodeRef, r any) ast.Intent {
	srcView, tok := p.file.SrcViewRef, arena.TokenRef(0)
	if node, ok := p.prog.Ast.Node(n); ok {
		srcView, tok = node.SrcViewRef, node.TokRef
		p.markNodeError(n)
	}
	d := errors.NewInternal(srcView, tok, fmt.Sprint(r), p.captureStackTrace())
	p.prog.Diags.Report(d)
	return ast.ErrorIntent
}

// ast.Hooks implementation. PreNode/PreChild/PostChild dispatch by
// NodeID to the concrete handlers in node_*.go; PostNode additionally
// always runs the deferred-pop ledger for the node.
func (p *pass) PreNode(n arena.AstNodeRef) (intent ast.Intent) {
	defer func() {
		if r := recover(); r != nil {
			intent = p.recoverInternal(n, r)
		}
	}()
	node := p.prog.Ast.MustNode(n)
	switch node.ID {
	case ast.IntLiteral, ast.FloatLiteral, ast.StringLiteral, ast.CharLiteral,
		ast.BoolLiteral, ast.NullLiteral, ast.UndefinedLiteral:
		if !p.declPass {
			p.foldLiteral(n, node)
		}
	case ast.NamespaceDecl:
		return p.preNamespace(n, node)
	case ast.FuncDecl:
		return p.preFuncDecl(n, node)
	case ast.VarDecl, ast.ConstDecl:
		return p.preVarDecl(n, node)
	case ast.StructDecl:
		return p.preAggregateDecl(n, node, typepool.AggregateStruct)
	case ast.UnionDecl:
		return p.preAggregateDecl(n, node, typepool.AggregateUnion)
	case ast.InterfaceDecl:
		return p.preAggregateDecl(n, node, typepool.AggregateInterface)
	case ast.EnumDecl:
		return p.preEnumDecl(n, node)
	case ast.AliasDecl:
		return p.preAliasDecl(n, node)
	}
	return ast.Continue
}

func (p *pass) PreChild(parent, child arena.AstNodeRef) (intent ast.Intent) {
	defer func() {
		if r := recover(); r != nil {
			intent = p.recoverInternal(parent, r)
		}
	}()
	pnode := p.prog.Ast.MustNode(parent)
	if pnode.ID == ast.CompilerIfDecl {
		p.preCompilerIfChild(parent, pnode, child)
	}
	return ast.Continue
}

func (p *pass) PostChild(parent, child arena.AstNodeRef) (intent ast.Intent) {
	defer func() {
		if r := recover(); r != nil {
			intent = p.recoverInternal(parent, r)
		}
	}()
	p.runDeferredPostChild(parent, child)
	return ast.Continue
}

func (p *pass) PostNode(n arena.AstNodeRef) (intent ast.Intent) {
	defer func() {
		if r := recover(); r != nil {
			intent = p.recoverInternal(n, r)
		}
	}()
	node := p.prog.Ast.MustNode(n)
	intent = p.postNodeCompute(n, node)
	p.runDeferredPostNode(n)
	return intent
}

func (p *pass) postNodeCompute(n arena.AstNodeRef, node ast.Node) ast.Intent {
	if p.declPass {
		return p.postNodeDecl(n, node)
	}
	return p.postNodeUse(n, node)
}

// ErrorCleanup pops every still-active deferred ticket for n,
// unconditionally (spec §4.4/§7: unwinding across an error abort).
func (p *pass) ErrorCleanup(n arena.AstNodeRef) {
	p.runDeferredPostNode(n)
}
