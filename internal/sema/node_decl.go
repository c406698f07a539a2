package sema

import (
	"github.com/swglang/swc/internal/ast"
	"github.com/swglang/swc/internal/arena"
	"github.com/swglang/swc/internal/symbol"
	"github.com/swglang/swc/internal/typepool"
)

// preNamespace pushes (decl pass) or re-enters (use pass) the scope a
// `namespace` declaration owns (spec §4.4: "Namespace declarations push
// a namespace symbol and its scope... popping on post_decl via a
// deferred-pop ticket").
func (p *pass) preNamespace(n arena.AstNodeRef, node ast.Node) ast.Intent {
	var sym *symbol.Symbol
	var scope *symbol.Scope
	if p.declPass {
		sym = p.prog.Symbols.New(symbol.KindNamespace, node.Name, n, p.currentAccess())
		p.declareSymbol(sym)
		p.prog.advanceSymbol(sym, symbol.Typed) // a namespace has no type to resolve; it is "typed" trivially
		scope = symbol.NewScope(symbol.ScopeNamespace, p.currentScope(), sym)
		p.file.DeclSymbols[n] = sym
		p.file.NamespaceScopes[n] = scope
	} else {
		sym = p.file.DeclSymbols[n]
		scope = p.file.NamespaceScopes[n]
	}
	p.pushFramePopOnPostNode(n, &Frame{Owner: sym, Scope: scope, Access: p.currentAccess()})
	return ast.Continue
}

// preFuncDecl registers (decl pass) or re-enters (use pass) a
// function's symbol and its parameter scope (spec §4.4 Declarations:
// "register a SymbolFunction... declare parameters as variables in a
// child function scope").
func (p *pass) preFuncDecl(n arena.AstNodeRef, node ast.Node) ast.Intent {
	var sym *symbol.Symbol
	var scope *symbol.Scope
	if p.declPass {
		sym = p.prog.Symbols.New(symbol.KindFunction, node.Name, n, p.currentAccess())
		p.declareSymbol(sym)
		scope = symbol.NewScope(symbol.ScopeFunction, p.currentScope(), sym)
		p.file.DeclSymbols[n] = sym
		p.file.FuncScopes[n] = scope
		for _, paramRef := range p.prog.Ast.Span(node.Span) {
			param := p.prog.Ast.MustNode(paramRef)
			pvar := p.prog.Symbols.New(symbol.KindVariable, param.Name, paramRef, symbol.AccessPublic)
			scope.Declare(pvar)
			p.file.DeclSymbols[paramRef] = pvar
		}
	} else {
		sym = p.file.DeclSymbols[n]
		scope = p.file.FuncScopes[n]
	}
	p.pushFramePopOnPostNode(n, &Frame{Owner: sym, Scope: scope, Access: p.currentAccess()})
	return ast.Continue
}

// preVarDecl pushes the binding-type frame for an initializer — set
// once the type-expr child (A) has been resolved in the use pass, left
// invalid in the decl pass. In the decl pass it also registers the
// variable/constant symbol itself, ahead of resolving its type, so
// sibling top-level declarations (and other files) can already wait on
// its Declared state (spec §4.4: "eagerly schedules... so sibling
// files can make progress").
func (p *pass) preVarDecl(n arena.AstNodeRef, node ast.Node) ast.Intent {
	if p.declPass {
		sym := p.prog.Symbols.New(symbol.KindVariable, node.Name, n, p.currentAccess())
		p.declareSymbol(sym)
		p.file.DeclSymbols[n] = sym
		return ast.Continue
	}
	// use pass: push an owner frame so identifier resolution and cyclic-
	// wait diagnostics inside the type-expr/initializer children
	// attribute to this declaration's own symbol (spec §4.3 WaiterSymbol).
	sym := p.file.DeclSymbols[n]
	p.pushFramePopOnPostNode(n, &Frame{Owner: sym, Access: p.currentAccess()})
	return ast.Continue
}

// preAggregateDecl registers (decl pass) or re-enters (use pass) a
// struct/union/interface declaration's symbol, plus a placeholder
// variable symbol per Param-shaped member so each member's own
// post_node (finishParam) can bind its type exactly as a function
// parameter does (spec §4.4 Declarations: "Type (aggregates, enums,
// interfaces, aliases)"). FuncDecl-shaped members (interface methods)
// need no placeholder — FuncDecl's own pre/post hooks already dispatch
// for them regardless of parent.
func (p *pass) preAggregateDecl(n arena.AstNodeRef, node ast.Node, kind typepool.AggregateKind) ast.Intent {
	var sym *symbol.Symbol
	if p.declPass {
		sym = p.prog.Symbols.New(symbol.KindType, node.Name, n, p.currentAccess())
		p.declareSymbol(sym)
		p.file.DeclSymbols[n] = sym
		for _, memberRef := range p.prog.Ast.Span(node.Span) {
			member := p.prog.Ast.MustNode(memberRef)
			if member.ID != ast.Param {
				continue
			}
			mvar := p.prog.Symbols.New(symbol.KindVariable, member.Name, memberRef, symbol.AccessPublic)
			p.file.DeclSymbols[memberRef] = mvar
		}
	} else {
		sym = p.file.DeclSymbols[n]
	}
	p.pushFramePopOnPostNode(n, &Frame{Owner: sym, Access: p.currentAccess()})
	return ast.Continue
}

// preEnumDecl registers the enum's own type symbol immediately: its
// shape is just its tag, known without resolving anything, so (like a
// namespace) it advances straight to Typed in the decl pass rather than
// waiting for the use pass. Each member is declared directly into the
// enclosing scope under its own name (spec leaves member access
// unqualified, unlike struct fields reached through a MemberExpr).
func (p *pass) preEnumDecl(n arena.AstNodeRef, node ast.Node) ast.Intent {
	var sym *symbol.Symbol
	if p.declPass {
		sym = p.prog.Symbols.New(symbol.KindType, node.Name, n, p.currentAccess())
		ref := p.prog.Types.Add(typepool.TypeInfo{Kind: typepool.KindEnum, Sym: sym.Ref})
		sym.Type = ref
		p.declareSymbol(sym)
		p.prog.advanceSymbol(sym, symbol.Typed)
		p.file.DeclSymbols[n] = sym

		for _, memberRef := range p.prog.Ast.Span(node.Span) {
			member := p.prog.Ast.MustNode(memberRef)
			mvar := p.prog.Symbols.New(symbol.KindVariable, member.Name, memberRef, symbol.AccessPublic)
			mvar.Type = ref
			p.declareSymbol(mvar)
			p.prog.advanceSymbol(mvar, symbol.Typed)
			p.file.DeclSymbols[memberRef] = mvar
		}
	} else {
		sym = p.file.DeclSymbols[n]
	}
	p.pushFramePopOnPostNode(n, &Frame{Owner: sym, Access: p.currentAccess()})
	return ast.Continue
}

// preAliasDecl registers an `alias` declaration's own type symbol; its
// Type is resolved once the aliased type-expr child is (finishAliasDecl).
func (p *pass) preAliasDecl(n arena.AstNodeRef, node ast.Node) ast.Intent {
	var sym *symbol.Symbol
	if p.declPass {
		sym = p.prog.Symbols.New(symbol.KindType, node.Name, n, p.currentAccess())
		p.declareSymbol(sym)
		p.file.DeclSymbols[n] = sym
	} else {
		sym = p.file.DeclSymbols[n]
	}
	p.pushFramePopOnPostNode(n, &Frame{Owner: sym, Access: p.currentAccess()})
	return ast.Continue
}

// postNodeDecl is the decl-pass post_node dispatch: declarations have
// already been registered in pre_node, so there is no decl-pass work
// left here (compiler-if conditions are resolved by the use pass).
func (p *pass) postNodeDecl(n arena.AstNodeRef, node ast.Node) ast.Intent {
	return ast.Continue
}
