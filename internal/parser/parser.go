// Package parser turns one file's fully-lexed token stream into the
// AST shape internal/ast/children.go specifies. The surface grammar
// (keyword choice, operator precedence, statement forms) is this
// package's own design — spec-level invariants constrain only the
// resulting node shapes, not the syntax that produces them.
//
// Grounded on the teacher's internal/parser: a Pratt-style expression
// parser over a precedence table, structured parser errors collected
// rather than returned eagerly, and panic-mode recovery at statement
// boundaries. Departs from the teacher in cursor design (see cursor.go)
// since this lexer hands over a complete token array rather than a
// live, pull-based stream.
package parser

import (
	"github.com/swglang/swc/internal/arena"
	"github.com/swglang/swc/internal/ast"
	"github.com/swglang/swc/internal/diag"
	"github.com/swglang/swc/internal/identpool"
	"github.com/swglang/swc/internal/sourceview"
	"github.com/swglang/swc/internal/token"
)

// Parser holds all state for parsing a single file. One Parser is used
// for exactly one SourceView; sema's one-worker-per-file job split
// (internal/sema/program.go) maps cleanly onto one Parser per worker.
type Parser struct {
	store *ast.Store
	idents *identpool.Pool
	sv     *sourceview.SourceView
	svRef  arena.SourceViewRef
	shard  uint32

	c         *cursor
	diags     []diag.Diagnostic
	hasErrors bool

	// allowAggregateLiteral is false while parsing a condition/subject
	// expression directly followed by a block (if/while/foreach/switch,
	// #if), so `if cond { ... }` never misparses cond's trailing
	// identifier as the head of an untagged aggregate literal.
	allowAggregateLiteral bool
}

// Parse builds the root File node for one SourceView. shard selects
// which ast.Store shard new nodes are allocated into (normally the
// calling worker's index, matching ast.Store.MakeNode's contract).
func Parse(store *ast.Store, idents *identpool.Pool, svRef arena.SourceViewRef, sv *sourceview.SourceView, shard uint32) (arena.AstNodeRef, []diag.Diagnostic) {
	p := &Parser{
		store: store, idents: idents, sv: sv, svRef: svRef, shard: shard,
		c: newCursor(sv.Tokens()), allowAggregateLiteral: true,
	}
	root := p.parseFile()
	return root, p.diags
}

// makeNode stamps SrcViewRef and allocates n in this parser's shard.
func (p *Parser) makeNode(n ast.Node) arena.AstNodeRef {
	n.SrcViewRef = p.svRef
	return p.store.MakeNode(p.shard, n)
}

// parseExpressionNoBrace parses an expression that is immediately
// followed by a block (an if/while/#if condition, a switch subject, a
// foreach iterable), suppressing the untagged `{...}` aggregate-literal
// form for the duration so the opening brace is never swallowed.
func (p *Parser) parseExpressionNoBrace(minPrec int) arena.AstNodeRef {
	prev := p.allowAggregateLiteral
	p.allowAggregateLiteral = false
	e := p.parseExpression(minPrec)
	p.allowAggregateLiteral = prev
	return e
}

// internText interns t's literal source text.
func (p *Parser) internText(t token.Token) arena.IdentifierRef {
	return p.idents.Intern(p.sv.TokenText(t))
}

// parseFile parses every top-level item until EOF and wraps them in
// the File node (Span = globals/imports, always empty: this grammar
// has no import syntax; Span2 = top-level declarations).
func (p *Parser) parseFile() arena.AstNodeRef {
	var decls []arena.AstNodeRef
	for !p.c.is(token.EOF) {
		start := p.c.pos
		d := p.parseTopLevelItem()
		if !d.Invalid() {
			decls = append(decls, d)
		}
		if p.c.pos == start {
			// parseTopLevelItem must always make progress; this is the
			// last-resort guard against an infinite loop on a token no
			// declaration parser claims.
			p.errorAtCur(errUnexpectedToken)
			p.c.advance()
		}
	}
	root := ast.Node{ID: ast.File}
	if len(decls) > 0 {
		root.Span2 = p.store.PushSpan(decls)
	}
	if p.hasErrors {
		root.Flags |= ast.FlagHasErrors
	}
	return p.makeNode(root)
}

// parseBlockStmts parses `{ stmt* }` and returns the statement refs in
// order (callers decide whether to wrap them in a Block node or splice
// them directly into a Span2, per ForStmt's shape).
func (p *Parser) parseBlockStmts() []arena.AstNodeRef {
	if _, ok := p.expect(token.LBrace); !ok {
		return nil
	}
	var stmts []arena.AstNodeRef
	for !p.c.isAny(token.RBrace, token.EOF) {
		start := p.c.pos
		s := p.parseStatement()
		if !s.Invalid() {
			stmts = append(stmts, s)
		}
		if p.c.pos == start {
			p.synchronize(token.RBrace)
		}
	}
	p.expect(token.RBrace)
	return stmts
}

// parseBlock parses `{ stmt* }` as a single Block node, used wherever
// the AST shape needs exactly one child ref for a statement sequence
// (if/while/foreach bodies, func bodies).
func (p *Parser) parseBlock() arena.AstNodeRef {
	tokRef := p.c.tokRef()
	stmts := p.parseBlockStmts()
	n := ast.Node{ID: ast.Block, TokRef: tokRef}
	if len(stmts) > 0 {
		n.Span = p.store.PushSpan(stmts)
	}
	return p.makeNode(n)
}
