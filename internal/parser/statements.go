package parser

import (
	"github.com/swglang/swc/internal/arena"
	"github.com/swglang/swc/internal/ast"
	"github.com/swglang/swc/internal/symbol"
	"github.com/swglang/swc/internal/token"
)

// parseStatement dispatches on the current token to one statement
// form. A nested `{ ... }` is itself a Block node used directly as a
// statement (no separate "block statement" wrapper NodeID exists).
func (p *Parser) parseStatement() arena.AstNodeRef {
	switch p.c.cur().ID {
	case token.LBrace:
		return p.parseBlock()
	case token.KwVar, token.KwConst:
		return p.parseVarOrConstDecl(uint8(symbol.AccessPublic))
	case token.KwIf:
		return p.parseIfStmt()
	case token.KwWhile:
		return p.parseWhileStmt()
	case token.KwFor:
		return p.parseForStmt()
	case token.KwForeach:
		return p.parseForeachStmt()
	case token.KwSwitch:
		return p.parseSwitchStmt()
	case token.KwReturn:
		return p.parseReturnStmt()
	case token.KwBreak:
		tokRef := p.c.tokRef()
		p.c.advance()
		p.expect(token.Semicolon)
		return p.makeNode(ast.Node{ID: ast.BreakStmt, TokRef: tokRef})
	case token.KwContinue:
		tokRef := p.c.tokRef()
		p.c.advance()
		p.expect(token.Semicolon)
		return p.makeNode(ast.Node{ID: ast.ContinueStmt, TokRef: tokRef})
	case token.CompilerIf:
		return p.parseCompilerIfStmt()
	case token.Semicolon:
		p.c.advance() // empty statement
		return 0
	default:
		return p.parseExprOrAssignStmt()
	}
}

// parseIfStmt parses `if cond { ... } (else (if ... | { ... }))?`.
func (p *Parser) parseIfStmt() arena.AstNodeRef {
	tokRef := p.c.tokRef()
	p.c.advance() // 'if'
	cond := p.parseExpressionNoBrace(precLowest)
	thenBlock := p.parseBlock()

	var elseBlock arena.AstNodeRef
	if p.c.is(token.KwElse) {
		p.c.advance()
		if p.c.is(token.KwIf) {
			elseBlock = p.parseIfStmt()
		} else {
			elseBlock = p.parseBlock()
		}
	}
	return p.makeNode(ast.Node{ID: ast.IfStmt, TokRef: tokRef, A: cond, B: thenBlock, C: elseBlock})
}

// parseWhileStmt parses `while cond { ... }`.
func (p *Parser) parseWhileStmt() arena.AstNodeRef {
	tokRef := p.c.tokRef()
	p.c.advance() // 'while'
	cond := p.parseExpressionNoBrace(precLowest)
	body := p.parseBlock()
	return p.makeNode(ast.Node{ID: ast.WhileStmt, TokRef: tokRef, A: cond, B: body})
}

// parseForStmt parses `for (init; cond; post) { ... }`. Each clause may
// be empty. The body is spliced directly into Span2 rather than
// wrapped in a Block (children.go's ForStmt shape), since init/cond/
// post already occupy A/B/C.
func (p *Parser) parseForStmt() arena.AstNodeRef {
	tokRef := p.c.tokRef()
	p.c.advance() // 'for'
	p.expect(token.LParen)

	var init arena.AstNodeRef
	if !p.c.is(token.Semicolon) {
		init = p.parseForClauseInit()
	} else {
		p.c.advance()
	}

	var cond arena.AstNodeRef
	if !p.c.is(token.Semicolon) {
		cond = p.parseExpression(precLowest)
	}
	p.expect(token.Semicolon)

	var post arena.AstNodeRef
	if !p.c.is(token.RParen) {
		post = p.parseForClausePost()
	}
	p.expect(token.RParen)

	body := p.parseBlockStmts()
	n := ast.Node{ID: ast.ForStmt, TokRef: tokRef, A: init, B: cond, C: post}
	if len(body) > 0 {
		n.Span2 = p.store.PushSpan(body)
	}
	return p.makeNode(n)
}

// parseForClauseInit parses a for-loop's init clause: either a local
// var/const declaration (consuming its own trailing ';') or a plain
// assignment/expression statement.
func (p *Parser) parseForClauseInit() arena.AstNodeRef {
	if p.c.is(token.KwVar) || p.c.is(token.KwConst) {
		return p.parseVarOrConstDecl(uint8(symbol.AccessPublic))
	}
	s := p.parseExprOrAssignStmtNoConsume()
	p.expect(token.Semicolon)
	return s
}

// parseForClausePost parses a for-loop's post clause: an assignment or
// bare expression, with no trailing semicolon (the closing ')' follows
// directly).
func (p *Parser) parseForClausePost() arena.AstNodeRef {
	return p.parseExprOrAssignStmtNoConsume()
}

// parseForeachStmt parses `foreach (name in iterable) { ... }`.
func (p *Parser) parseForeachStmt() arena.AstNodeRef {
	tokRef := p.c.tokRef()
	p.c.advance() // 'foreach'
	p.expect(token.LParen)
	nameTok, ok := p.expectIdent()
	var name arena.IdentifierRef
	if ok {
		name = p.internText(nameTok)
	}
	p.expect(token.KwIn)
	iterable := p.parseExpressionNoBrace(precLowest)
	p.expect(token.RParen)
	body := p.parseBlock()
	return p.makeNode(ast.Node{ID: ast.ForeachStmt, TokRef: tokRef, Name: name, A: iterable, B: body})
}

// parseSwitchStmt parses `switch subject { case v, v: stmt* ... default: stmt* }`.
func (p *Parser) parseSwitchStmt() arena.AstNodeRef {
	tokRef := p.c.tokRef()
	p.c.advance() // 'switch'
	subject := p.parseExpressionNoBrace(precLowest)
	if _, ok := p.expect(token.LBrace); !ok {
		return 0
	}

	var cases []arena.AstNodeRef
	var defaultArm arena.AstNodeRef
	for !p.c.isAny(token.RBrace, token.EOF) {
		start := p.c.pos
		switch p.c.cur().ID {
		case token.KwCase:
			cases = append(cases, p.parseCaseBranch())
		case token.KwDefault:
			defTokRef := p.c.tokRef()
			p.c.advance()
			p.expect(token.Colon)
			stmts := p.parseCaseBody()
			block := ast.Node{ID: ast.Block, TokRef: defTokRef}
			if len(stmts) > 0 {
				block.Span = p.store.PushSpan(stmts)
			}
			defaultArm = p.makeNode(block)
		default:
			p.errorAtCur(errInvalidCaseLabel)
			p.synchronize(token.RBrace, token.KwCase, token.KwDefault)
		}
		if p.c.pos == start {
			p.synchronize(token.RBrace, token.KwCase, token.KwDefault)
		}
	}
	p.expect(token.RBrace)

	n := ast.Node{ID: ast.SwitchStmt, TokRef: tokRef, A: subject, B: defaultArm}
	if len(cases) > 0 {
		n.Span = p.store.PushSpan(cases)
	}
	return p.makeNode(n)
}

// parseCaseBranch parses `case v1, v2: stmt*` up to the next case/
// default/closing brace.
func (p *Parser) parseCaseBranch() arena.AstNodeRef {
	tokRef := p.c.tokRef()
	p.c.advance() // 'case'
	var values []arena.AstNodeRef
	for {
		v := p.parseExpression(precLowest)
		if !v.Invalid() {
			values = append(values, v)
		}
		if !p.c.is(token.Comma) {
			break
		}
		p.c.advance()
	}
	p.expect(token.Colon)
	stmts := p.parseCaseBody()

	block := ast.Node{ID: ast.Block, TokRef: tokRef}
	if len(stmts) > 0 {
		block.Span = p.store.PushSpan(stmts)
	}
	body := p.makeNode(block)

	n := ast.Node{ID: ast.CaseBranch, TokRef: tokRef, A: body}
	if len(values) > 0 {
		n.Span = p.store.PushSpan(values)
	}
	return p.makeNode(n)
}

// parseCaseBody parses the statements of one case/default arm, which
// run until the next `case`, `default`, or the switch's closing brace
// (swg case arms fall through never; each arm is its own block).
func (p *Parser) parseCaseBody() []arena.AstNodeRef {
	var stmts []arena.AstNodeRef
	for !p.c.isAny(token.KwCase, token.KwDefault, token.RBrace, token.EOF) {
		start := p.c.pos
		s := p.parseStatement()
		if !s.Invalid() {
			stmts = append(stmts, s)
		}
		if p.c.pos == start {
			p.synchronize(token.KwCase, token.KwDefault, token.RBrace)
		}
	}
	return stmts
}

// parseReturnStmt parses `return expr? ;`.
func (p *Parser) parseReturnStmt() arena.AstNodeRef {
	tokRef := p.c.tokRef()
	p.c.advance() // 'return'
	var value arena.AstNodeRef
	if !p.c.is(token.Semicolon) {
		value = p.parseExpression(precLowest)
	}
	p.expect(token.Semicolon)
	return p.makeNode(ast.Node{ID: ast.ReturnStmt, TokRef: tokRef, A: value})
}

// parseCompilerIfStmt parses a statement-level `#if cond stmt*
// (#else stmt*)? #endif`, structurally identical to its
// declaration-level sibling except its arms hold statements and run
// unbraced up to the next #else/#endif.
func (p *Parser) parseCompilerIfStmt() arena.AstNodeRef {
	tokRef := p.c.tokRef()
	p.c.advance() // '#if'
	cond := p.parseExpressionNoBrace(precLowest)
	thenArm := p.parseStmtBlockUntil(token.CompilerElse, token.CompilerEndIf)

	var elseArm arena.AstNodeRef
	if p.c.is(token.CompilerElse) {
		p.c.advance()
		elseArm = p.parseStmtBlockUntil(token.CompilerEndIf)
	}
	p.expect(token.CompilerEndIf)
	return p.makeNode(ast.Node{ID: ast.CompilerIfDecl, TokRef: tokRef, A: cond, B: thenArm, C: elseArm})
}

// parseStmtBlockUntil parses a run of statements up to the next token
// in stop as a Block node (the unbraced #if/#else arm shape at
// statement scope).
func (p *Parser) parseStmtBlockUntil(stop ...token.ID) arena.AstNodeRef {
	tokRef := p.c.tokRef()
	var stmts []arena.AstNodeRef
	for !p.c.is(token.EOF) && !p.c.isAny(stop...) {
		start := p.c.pos
		s := p.parseStatement()
		if !s.Invalid() {
			stmts = append(stmts, s)
		}
		if p.c.pos == start {
			p.synchronize(stop...)
		}
	}
	n := ast.Node{ID: ast.Block, TokRef: tokRef}
	if len(stmts) > 0 {
		n.Span = p.store.PushSpan(stmts)
	}
	return p.makeNode(n)
}

// parseExprOrAssignStmt parses an expression statement or an
// assignment, consuming the trailing semicolon.
func (p *Parser) parseExprOrAssignStmt() arena.AstNodeRef {
	s := p.parseExprOrAssignStmtNoConsume()
	p.expect(token.Semicolon)
	return s
}

// parseExprOrAssignStmtNoConsume parses `lhs = rhs` (AssignStmt) or a
// bare expression (ExprStmt) without requiring a trailing semicolon,
// for use inside a for-loop's init/post clauses.
func (p *Parser) parseExprOrAssignStmtNoConsume() arena.AstNodeRef {
	tokRef := p.c.tokRef()
	lhs := p.parseExpression(precLowest)
	if lhs.Invalid() {
		return lhs
	}
	if p.c.is(token.Assign) {
		p.c.advance()
		rhs := p.parseExpression(precLowest)
		return p.makeNode(ast.Node{ID: ast.AssignStmt, TokRef: tokRef, A: lhs, B: rhs})
	}
	return p.makeNode(ast.Node{ID: ast.ExprStmt, TokRef: tokRef, A: lhs})
}
