package parser

import (
	"github.com/swglang/swc/internal/arena"
	"github.com/swglang/swc/internal/ast"
	"github.com/swglang/swc/internal/symbol"
	"github.com/swglang/swc/internal/token"
)

// isDeclStart reports whether id begins a declaration, used both by
// the top-level/namespace-body dispatcher and by synchronize to find a
// recovery point.
func isDeclStart(id token.ID) bool {
	switch id {
	case token.KwVar, token.KwConst, token.KwFunc, token.KwStruct, token.KwUnion,
		token.KwEnum, token.KwInterface, token.KwAlias, token.KwNamespace, token.KwImpl,
		token.ModPublic, token.ModInternal, token.ModPrivate,
		token.CompilerIf, token.CompilerAssert, token.CompilerError, token.CompilerWarning:
		return true
	default:
		return false
	}
}

// parseTopLevelItem parses one top-level (or namespace-body) item.
// Returns an invalid ref (and leaves the cursor advanced at least one
// token, via the caller's stuck-loop guard) on unrecoverable input.
func (p *Parser) parseTopLevelItem() arena.AstNodeRef {
	access, hasAccess := p.parseOptionalAccess()

	switch p.c.cur().ID {
	case token.KwVar, token.KwConst:
		return p.parseVarOrConstDecl(access)
	case token.KwFunc:
		return p.parseFuncDecl(access)
	case token.KwStruct:
		return p.parseAggregateDecl(access, ast.StructDecl, token.KwStruct)
	case token.KwUnion:
		return p.parseAggregateDecl(access, ast.UnionDecl, token.KwUnion)
	case token.KwInterface:
		return p.parseAggregateDecl(access, ast.InterfaceDecl, token.KwInterface)
	case token.KwEnum:
		return p.parseEnumDecl(access)
	case token.KwAlias:
		return p.parseAliasDecl(access)
	case token.KwNamespace:
		return p.parseNamespaceDecl(access)
	case token.KwImpl:
		return p.parseImplDecl()
	case token.CompilerIf:
		return p.parseCompilerIfDecl()
	case token.CompilerAssert:
		return p.parseCompilerSimpleDecl(ast.CompilerAssertDecl, token.CompilerAssert)
	case token.CompilerError:
		return p.parseCompilerSimpleDecl(ast.CompilerErrorDecl, token.CompilerError)
	case token.CompilerWarning:
		return p.parseCompilerSimpleDecl(ast.CompilerWarningDecl, token.CompilerWarning)
	default:
		if hasAccess {
			p.errorAtCur(errInvalidDecl)
		} else {
			p.errorAtCur(errUnexpectedToken)
		}
		p.synchronize()
		return 0
	}
}

// parseOptionalAccess consumes a leading public/internal/private
// modifier keyword, if present.
func (p *Parser) parseOptionalAccess() (uint8, bool) {
	switch p.c.cur().ID {
	case token.ModPublic:
		p.c.advance()
		return uint8(symbol.AccessPublic), true
	case token.ModInternal:
		p.c.advance()
		return uint8(symbol.AccessProtected), true
	case token.ModPrivate:
		p.c.advance()
		return uint8(symbol.AccessPrivate), true
	default:
		return uint8(symbol.AccessPublic), false
	}
}

// parseTypeExprNode parses a single named type reference (builtin
// keyword or identifier). Qualified/compound type syntax (pointers,
// arrays, generics) is out of scope: sema's own typeexpr.go resolves
// only a plain name against builtins and the symbol table.
func (p *Parser) parseTypeExprNode() arena.AstNodeRef {
	t := p.c.cur()
	if !t.ID.IsType() && t.ID != token.Identifier {
		p.errorAtCur(errExpectedType)
		return 0
	}
	tokRef := p.c.tokRef()
	name := p.internText(t)
	p.c.advance()
	return p.makeNode(ast.Node{ID: ast.TypeExpr, TokRef: tokRef, Name: name})
}

// parseVarOrConstDecl parses `var name (: Type)? (= expr)? ;` or the
// `const` equivalent. At least one of the type annotation or
// initializer must be present (sema needs one to infer from); the
// parser still builds the node on total absence so later stages can
// report the missing-both-inference case uniformly with other typing
// errors rather than the parser inventing its own.
func (p *Parser) parseVarOrConstDecl(access uint8) arena.AstNodeRef {
	tokRef := p.c.tokRef()
	kind := ast.VarDecl
	if p.c.cur().ID == token.KwConst {
		kind = ast.ConstDecl
	}
	p.c.advance()

	nameTok, ok := p.expectIdent()
	if !ok {
		p.synchronize()
		return 0
	}
	name := p.internText(nameTok)

	var typeExpr, init arena.AstNodeRef
	if p.c.is(token.Colon) {
		p.c.advance()
		typeExpr = p.parseTypeExprNode()
	}
	if p.c.is(token.Assign) {
		p.c.advance()
		init = p.parseExpression(precLowest)
	}
	p.expect(token.Semicolon)
	return p.makeNode(ast.Node{ID: kind, TokRef: tokRef, Name: name, Access: access, A: typeExpr, B: init})
}

// parseParamList parses `( name: Type, name: Type, ... )`.
func (p *Parser) parseParamList() []arena.AstNodeRef {
	if _, ok := p.expect(token.LParen); !ok {
		return nil
	}
	var params []arena.AstNodeRef
	for !p.c.isAny(token.RParen, token.EOF) {
		tokRef := p.c.tokRef()
		nameTok, ok := p.expectIdent()
		if !ok {
			p.synchronize(token.RParen)
			break
		}
		name := p.internText(nameTok)
		var typeExpr arena.AstNodeRef
		if _, ok := p.expect(token.Colon); ok {
			typeExpr = p.parseTypeExprNode()
		}
		params = append(params, p.makeNode(ast.Node{ID: ast.Param, TokRef: tokRef, Name: name, A: typeExpr}))
		if !p.c.is(token.Comma) {
			break
		}
		p.c.advance()
	}
	p.expect(token.RParen)
	return params
}

// parseFuncDecl parses `func name(params) (-> Type)? { body }`, or
// `func name(params) (-> Type)? ;` for an interface method signature
// (no body: B is left invalid).
func (p *Parser) parseFuncDecl(access uint8) arena.AstNodeRef {
	tokRef := p.c.tokRef()
	p.c.advance() // 'func'
	nameTok, ok := p.expectIdent()
	if !ok {
		p.synchronize()
		return 0
	}
	name := p.internText(nameTok)
	params := p.parseParamList()

	var retType arena.AstNodeRef
	if p.c.is(token.Arrow) {
		p.c.advance()
		retType = p.parseTypeExprNode()
	}

	var body arena.AstNodeRef
	if p.c.is(token.Semicolon) {
		p.c.advance()
	} else {
		body = p.parseBlock()
	}

	n := ast.Node{ID: ast.FuncDecl, TokRef: tokRef, Name: name, Access: access, A: retType, B: body}
	if len(params) > 0 {
		n.Span = p.store.PushSpan(params)
	}
	return p.makeNode(n)
}

// parseAggregateDecl parses struct/union/interface bodies, which share
// one shape: `kw name { member (;|,)? ... }`, members either
// `name: Type` (a Param node) or a func signature (interface methods).
func (p *Parser) parseAggregateDecl(access uint8, kind ast.NodeID, kw token.ID) arena.AstNodeRef {
	tokRef := p.c.tokRef()
	p.c.advance() // struct/union/interface
	nameTok, ok := p.expectIdent()
	if !ok {
		p.synchronize()
		return 0
	}
	name := p.internText(nameTok)

	if _, ok := p.expect(token.LBrace); !ok {
		return 0
	}
	var members []arena.AstNodeRef
	for !p.c.isAny(token.RBrace, token.EOF) {
		start := p.c.pos
		if p.c.is(token.KwFunc) {
			members = append(members, p.parseFuncDecl(uint8(symbol.AccessPublic)))
		} else {
			m := p.parseAggregateMember()
			if !m.Invalid() {
				members = append(members, m)
			}
		}
		for p.c.is(token.Comma) || p.c.is(token.Semicolon) {
			p.c.advance()
		}
		if p.c.pos == start {
			p.synchronize(token.RBrace)
		}
	}
	p.expect(token.RBrace)

	n := ast.Node{ID: kind, TokRef: tokRef, Name: name, Access: access}
	if len(members) > 0 {
		n.Span = p.store.PushSpan(members)
	}
	return p.makeNode(n)
}

// parseAggregateMember parses a `name: Type` field (a Param node,
// reused verbatim since preAggregateDecl/finishParam already treat
// aggregate fields exactly like function parameters).
func (p *Parser) parseAggregateMember() arena.AstNodeRef {
	tokRef := p.c.tokRef()
	nameTok, ok := p.expectIdent()
	if !ok {
		p.synchronize(token.RBrace)
		return 0
	}
	name := p.internText(nameTok)
	var typeExpr arena.AstNodeRef
	if _, ok := p.expect(token.Colon); ok {
		typeExpr = p.parseTypeExprNode()
	}
	return p.makeNode(ast.Node{ID: ast.Param, TokRef: tokRef, Name: name, A: typeExpr})
}

// parseEnumDecl parses `enum name { Member (= expr)?, ... }`.
func (p *Parser) parseEnumDecl(access uint8) arena.AstNodeRef {
	tokRef := p.c.tokRef()
	p.c.advance() // 'enum'
	nameTok, ok := p.expectIdent()
	if !ok {
		p.synchronize()
		return 0
	}
	name := p.internText(nameTok)

	if _, ok := p.expect(token.LBrace); !ok {
		return 0
	}
	var members []arena.AstNodeRef
	for !p.c.isAny(token.RBrace, token.EOF) {
		start := p.c.pos
		memberTok, ok := p.expectIdent()
		if !ok {
			p.synchronize(token.RBrace)
			continue
		}
		memberName := p.internText(memberTok)
		var value arena.AstNodeRef
		if p.c.is(token.Assign) {
			p.c.advance()
			value = p.parseExpression(precLowest)
		}
		members = append(members, p.makeNode(ast.Node{ID: ast.EnumMember, TokRef: p.c.tokRef(), Name: memberName, A: value}))
		if p.c.is(token.Comma) {
			p.c.advance()
		}
		if p.c.pos == start {
			p.synchronize(token.RBrace)
		}
	}
	p.expect(token.RBrace)

	n := ast.Node{ID: ast.EnumDecl, TokRef: tokRef, Name: name, Access: access}
	if len(members) > 0 {
		n.Span = p.store.PushSpan(members)
	}
	return p.makeNode(n)
}

// parseAliasDecl parses `alias Name = Type;`.
func (p *Parser) parseAliasDecl(access uint8) arena.AstNodeRef {
	tokRef := p.c.tokRef()
	p.c.advance() // 'alias'
	nameTok, ok := p.expectIdent()
	if !ok {
		p.synchronize()
		return 0
	}
	name := p.internText(nameTok)
	p.expect(token.Assign)
	target := p.parseTypeExprNode()
	p.expect(token.Semicolon)
	return p.makeNode(ast.Node{ID: ast.AliasDecl, TokRef: tokRef, Name: name, Access: access, A: target})
}

// parseNamespaceDecl parses `namespace Name { item* }`.
func (p *Parser) parseNamespaceDecl(access uint8) arena.AstNodeRef {
	tokRef := p.c.tokRef()
	p.c.advance() // 'namespace'
	nameTok, ok := p.expectIdent()
	if !ok {
		p.synchronize()
		return 0
	}
	name := p.internText(nameTok)

	if _, ok := p.expect(token.LBrace); !ok {
		return 0
	}
	var items []arena.AstNodeRef
	for !p.c.isAny(token.RBrace, token.EOF) {
		start := p.c.pos
		item := p.parseTopLevelItem()
		if !item.Invalid() {
			items = append(items, item)
		}
		if p.c.pos == start {
			p.synchronize(token.RBrace)
		}
	}
	p.expect(token.RBrace)

	n := ast.Node{ID: ast.NamespaceDecl, TokRef: tokRef, Name: name, Access: access}
	if len(items) > 0 {
		n.Span = p.store.PushSpan(items)
	}
	return p.makeNode(n)
}

// parseImplDecl parses `impl TypeName { func ... }`.
func (p *Parser) parseImplDecl() arena.AstNodeRef {
	tokRef := p.c.tokRef()
	p.c.advance() // 'impl'
	target := p.parseTypeExprNode()

	if _, ok := p.expect(token.LBrace); !ok {
		return 0
	}
	var methods []arena.AstNodeRef
	for !p.c.isAny(token.RBrace, token.EOF) {
		start := p.c.pos
		if p.c.is(token.KwFunc) {
			methods = append(methods, p.parseFuncDecl(uint8(symbol.AccessPublic)))
		} else {
			p.errorAtCur(errInvalidDecl)
			p.synchronize(token.RBrace)
		}
		if p.c.pos == start {
			p.synchronize(token.RBrace)
		}
	}
	p.expect(token.RBrace)

	n := ast.Node{ID: ast.ImplDecl, TokRef: tokRef, A: target}
	if len(methods) > 0 {
		n.Span = p.store.PushSpan(methods)
	}
	return p.makeNode(n)
}

// parseCompilerIfDecl parses `#if cond item* (#else item*)? #endif`. Each
// arm runs until the next #else/#endif — no braces of its own, since
// the directives already delimit it — and is wrapped in a Block node
// (CompilerIfDecl.A/B/C each hold exactly one child ref, but an arm may
// hold several declarations).
func (p *Parser) parseCompilerIfDecl() arena.AstNodeRef {
	tokRef := p.c.tokRef()
	p.c.advance() // '#if'
	cond := p.parseExpressionNoBrace(precLowest)
	thenArm := p.parseDeclBlock()

	var elseArm arena.AstNodeRef
	if p.c.is(token.CompilerElse) {
		p.c.advance()
		elseArm = p.parseDeclBlock()
	}
	p.expect(token.CompilerEndIf)
	return p.makeNode(ast.Node{ID: ast.CompilerIfDecl, TokRef: tokRef, A: cond, B: thenArm, C: elseArm})
}

// parseDeclBlock parses a run of top-level items up to the next
// #else/#endif as a Block node, the #if/#else arm shape at declaration
// scope.
func (p *Parser) parseDeclBlock() arena.AstNodeRef {
	tokRef := p.c.tokRef()
	var items []arena.AstNodeRef
	for !p.c.isAny(token.CompilerElse, token.CompilerEndIf, token.EOF) {
		start := p.c.pos
		item := p.parseTopLevelItem()
		if !item.Invalid() {
			items = append(items, item)
		}
		if p.c.pos == start {
			p.synchronize(token.CompilerElse, token.CompilerEndIf)
		}
	}
	n := ast.Node{ID: ast.Block, TokRef: tokRef}
	if len(items) > 0 {
		n.Span = p.store.PushSpan(items)
	}
	return p.makeNode(n)
}

// parseCompilerSimpleDecl parses `#assert expr ;`, `#error expr ;`, and
// `#warning expr ;` — a single expression argument (the condition, or
// the message), per children.go's single-`A`-child shape for all three.
func (p *Parser) parseCompilerSimpleDecl(kind ast.NodeID, kw token.ID) arena.AstNodeRef {
	tokRef := p.c.tokRef()
	p.c.advance()
	arg := p.parseExpression(precLowest)
	p.expect(token.Semicolon)
	return p.makeNode(ast.Node{ID: kind, TokRef: tokRef, A: arg})
}
