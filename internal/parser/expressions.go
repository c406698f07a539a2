package parser

import (
	"github.com/swglang/swc/internal/arena"
	"github.com/swglang/swc/internal/ast"
	"github.com/swglang/swc/internal/token"
)

// Precedence ladder, grounded on the teacher's LOWEST..INDEX constant
// block but collapsed to this language's smaller operator set.
const (
	precLowest = iota
	precLogicalOr
	precLogicalAnd
	precBitOr
	precBitXor
	precBitAnd
	precEquality
	precRelational
	precShift
	precAdditive
	precMultiplicative
	precCast     // `as`
	precUnary    // prefix - ~ ! #wrap
	precPostfix  // call/index/member
)

// binaryInfo describes how an infix token maps onto a node: which
// precedence it binds at, the node kind to build, and (for
// Binary/Logical/Relational) the operator tag to stamp.
type binaryInfo struct {
	prec int
	kind ast.NodeID
	op   ast.BinaryOp
}

var infixOps = map[token.ID]binaryInfo{
	token.PipePipe: {precLogicalOr, ast.LogicalExpr, ast.OpLogOr},
	token.AmpAmp:   {precLogicalAnd, ast.LogicalExpr, ast.OpLogAnd},
	token.Pipe:     {precBitOr, ast.BinaryExpr, ast.OpOr},
	token.Caret:    {precBitXor, ast.BinaryExpr, ast.OpXor},
	token.Amp:      {precBitAnd, ast.BinaryExpr, ast.OpAnd},
	token.Eq:       {precEquality, ast.RelationalExpr, ast.OpEq},
	token.Ne:       {precEquality, ast.RelationalExpr, ast.OpNe},
	token.Lt:       {precRelational, ast.RelationalExpr, ast.OpLt},
	token.Le:       {precRelational, ast.RelationalExpr, ast.OpLe},
	token.Gt:       {precRelational, ast.RelationalExpr, ast.OpGt},
	token.Ge:       {precRelational, ast.RelationalExpr, ast.OpGe},
	token.Shl:      {precShift, ast.BinaryExpr, ast.OpShl},
	token.Shr:      {precShift, ast.BinaryExpr, ast.OpShr},
	token.Plus:     {precAdditive, ast.BinaryExpr, ast.OpAdd},
	token.Minus:    {precAdditive, ast.BinaryExpr, ast.OpSub},
	token.PlusPlus: {precAdditive, ast.BinaryExpr, ast.OpConcat},
	token.Star:     {precMultiplicative, ast.BinaryExpr, ast.OpMul},
	token.Slash:    {precMultiplicative, ast.BinaryExpr, ast.OpDiv},
	token.Percent:  {precMultiplicative, ast.BinaryExpr, ast.OpMod},
}

func postfixPrec(id token.ID) int {
	switch id {
	case token.LParen, token.LBracket, token.Dot:
		return precPostfix
	case token.KwAs:
		return precCast
	default:
		return precLowest
	}
}

// parseExpression implements precedence climbing: parse a unary/
// primary operand, then repeatedly fold in infix/postfix operators
// whose precedence is >= minPrec.
func (p *Parser) parseExpression(minPrec int) arena.AstNodeRef {
	left := p.parseUnary()
	if left.Invalid() {
		return left
	}

	for {
		cur := p.c.cur().ID

		if cur == token.KwAs {
			if precCast < minPrec {
				break
			}
			left = p.parseCast(left)
			continue
		}
		if cur == token.LParen || cur == token.LBracket || cur == token.Dot {
			if precPostfix < minPrec {
				break
			}
			left = p.parsePostfix(left)
			continue
		}

		info, ok := infixOps[cur]
		if !ok || info.prec < minPrec {
			break
		}
		tokRef := p.c.tokRef()
		p.c.advance()
		right := p.parseExpression(info.prec + 1)
		if right.Invalid() {
			break
		}
		left = p.makeNode(ast.Node{ID: info.kind, TokRef: tokRef, Op: info.op, A: left, B: right})
	}
	return left
}

// parseCast builds `operand as Type`.
func (p *Parser) parseCast(operand arena.AstNodeRef) arena.AstNodeRef {
	tokRef := p.c.tokRef()
	p.c.advance() // 'as'
	t := p.c.cur()
	if !t.ID.IsType() && t.ID != token.Identifier {
		p.errorAtCur(errExpectedType)
		return operand
	}
	name := p.internText(t)
	p.c.advance()
	return p.makeNode(ast.Node{ID: ast.CastExpr, TokRef: tokRef, A: operand, Name: name})
}

// parsePostfix folds one call/index/member suffix onto target.
func (p *Parser) parsePostfix(target arena.AstNodeRef) arena.AstNodeRef {
	switch p.c.cur().ID {
	case token.LParen:
		tokRef := p.c.tokRef()
		p.c.advance()
		args := p.parseExprList(token.RParen)
		p.expect(token.RParen)
		n := ast.Node{ID: ast.CallExpr, TokRef: tokRef, A: target}
		if len(args) > 0 {
			n.Span = p.store.PushSpan(args)
		}
		return p.makeNode(n)
	case token.LBracket:
		tokRef := p.c.tokRef()
		p.c.advance()
		idx := p.parseExpression(precLowest)
		p.expect(token.RBracket)
		return p.makeNode(ast.Node{ID: ast.IndexExpr, TokRef: tokRef, A: target, B: idx})
	case token.Dot:
		tokRef := p.c.tokRef()
		p.c.advance()
		field, ok := p.expectIdent()
		if !ok {
			return target
		}
		return p.makeNode(ast.Node{ID: ast.MemberExpr, TokRef: tokRef, A: target, Name: p.internText(field)})
	default:
		return target
	}
}

// parseExprList parses a comma-separated expression list up to (but
// not consuming) end.
func (p *Parser) parseExprList(end token.ID) []arena.AstNodeRef {
	var out []arena.AstNodeRef
	if p.c.is(end) {
		return out
	}
	for {
		e := p.parseExpression(precLowest)
		if !e.Invalid() {
			out = append(out, e)
		}
		if !p.c.is(token.Comma) {
			break
		}
		p.c.advance()
		if p.c.is(end) { // tolerate a trailing comma
			break
		}
	}
	return out
}

// parseUnary handles prefix operators, then falls through to a primary
// expression with postfix folding already applied via the caller's
// parseExpression loop (parseUnary itself only needs to fold postfixes
// immediately following a primary so `-a.b` parses as `-(a.b)`).
func (p *Parser) parseUnary() arena.AstNodeRef {
	switch p.c.cur().ID {
	case token.Minus:
		tokRef := p.c.tokRef()
		p.c.advance()
		operand := p.parseExpression(precUnary)
		return p.makeNode(ast.Node{ID: ast.UnaryExpr, TokRef: tokRef, Op: ast.OpSub, A: operand})
	case token.Tilde:
		tokRef := p.c.tokRef()
		p.c.advance()
		operand := p.parseExpression(precUnary)
		return p.makeNode(ast.Node{ID: ast.UnaryExpr, TokRef: tokRef, Op: ast.OpXor, A: operand})
	case token.Bang:
		tokRef := p.c.tokRef()
		p.c.advance()
		operand := p.parseExpression(precUnary)
		// Op is meaningless here: evalUnary only consults it for
		// integer/float operands, never for bool.
		return p.makeNode(ast.Node{ID: ast.UnaryExpr, TokRef: tokRef, A: operand})
	case token.CompilerWrap:
		tokRef := p.c.tokRef()
		p.c.advance()
		if _, ok := p.expect(token.LParen); !ok {
			return 0
		}
		operand := p.parseExpression(precLowest)
		p.expect(token.RParen)
		return p.makeNode(ast.Node{ID: ast.CastExpr, TokRef: tokRef, A: operand, Modifier: ast.ModWrap})
	default:
		return p.parsePrimary()
	}
}

func (p *Parser) parsePrimary() arena.AstNodeRef {
	t := p.c.cur()
	switch {
	case t.ID == token.IntLiteral:
		tokRef := p.c.tokRef()
		p.c.advance()
		return p.makeNode(ast.Node{ID: ast.IntLiteral, TokRef: tokRef})
	case t.ID == token.FloatLiteral:
		tokRef := p.c.tokRef()
		p.c.advance()
		return p.makeNode(ast.Node{ID: ast.FloatLiteral, TokRef: tokRef})
	case t.ID == token.StringLiteral:
		tokRef := p.c.tokRef()
		p.c.advance()
		return p.makeNode(ast.Node{ID: ast.StringLiteral, TokRef: tokRef})
	case t.ID == token.CharLiteral:
		tokRef := p.c.tokRef()
		p.c.advance()
		return p.makeNode(ast.Node{ID: ast.CharLiteral, TokRef: tokRef})
	case t.ID == token.TrueLiteral:
		tokRef := p.c.tokRef()
		p.c.advance()
		return p.makeNode(ast.Node{ID: ast.BoolLiteral, TokRef: tokRef, BoolVal: true})
	case t.ID == token.FalseLiteral:
		tokRef := p.c.tokRef()
		p.c.advance()
		return p.makeNode(ast.Node{ID: ast.BoolLiteral, TokRef: tokRef, BoolVal: false})
	case t.ID == token.NullLiteral:
		tokRef := p.c.tokRef()
		p.c.advance()
		return p.makeNode(ast.Node{ID: ast.NullLiteral, TokRef: tokRef})
	case t.ID == token.UndefinedLiteral:
		tokRef := p.c.tokRef()
		p.c.advance()
		return p.makeNode(ast.Node{ID: ast.UndefinedLiteral, TokRef: tokRef})
	case t.ID == token.Identifier:
		tokRef := p.c.tokRef()
		name := p.internText(t)
		p.c.advance()
		if p.c.is(token.LBrace) && p.looksLikeAggregateLiteral() {
			return p.parseAggregateLiteral(tokRef, name)
		}
		return p.makeNode(ast.Node{ID: ast.Identifier, TokRef: tokRef, Name: name})
	case t.ID.IsType():
		// A bare type keyword used as a value is a type-expression
		// (spec-value case), e.g. @sizeof's operand or `cast` targets
		// reached through the general expression grammar.
		tokRef := p.c.tokRef()
		name := p.internText(t)
		p.c.advance()
		return p.makeNode(ast.Node{ID: ast.TypeExpr, TokRef: tokRef, Name: name})
	case t.ID == token.LParen:
		p.c.advance()
		inner := p.parseExpression(precLowest)
		p.expect(token.RParen)
		return inner
	case t.ID == token.LBrace:
		tokRef := p.c.tokRef()
		return p.parseAggregateLiteral(tokRef, 0)
	case t.ID.IsIntrinsic():
		return p.parseIntrinsic()
	case t.ID == token.KwCast:
		return p.parseExplicitCast()
	default:
		p.errorAtCur(errExpectedExpr)
		return 0
	}
}

// looksLikeAggregateLiteral disambiguates `Name { ... }` as an
// aggregate literal from `Name` followed by a block belonging to an
// enclosing construct (e.g. `if cond { ... }` — cond is itself just an
// identifier there). The parser never calls a condition/subject
// through parsePrimary while an unconsumed `{` could be ambiguous in
// that way; callers that need a bare identifier without this look-ahead
// use parseExpressionNoBrace instead.
func (p *Parser) looksLikeAggregateLiteral() bool {
	return p.allowAggregateLiteral
}

// parseAggregateLiteral parses `{ expr, expr, ... }`, optionally
// preceded by a type name already consumed by the caller (typeName is
// 0 for the untyped `{...}` form).
func (p *Parser) parseAggregateLiteral(tokRef arena.TokenRef, typeName arena.IdentifierRef) arena.AstNodeRef {
	p.c.advance() // '{'
	elems := p.parseExprList(token.RBrace)
	p.expect(token.RBrace)
	n := ast.Node{ID: ast.AggregateLiteral, TokRef: tokRef, Name: typeName}
	if len(elems) > 0 {
		n.Span = p.store.PushSpan(elems)
	}
	return p.makeNode(n)
}

// parseIntrinsic parses `@sizeof(Type)`, `@typeof(expr)`, and
// `@offsetof(Type, field)`.
func (p *Parser) parseIntrinsic() arena.AstNodeRef {
	tokRef := p.c.tokRef()
	kind := p.c.cur().ID
	p.c.advance()
	if _, ok := p.expect(token.LParen); !ok {
		return 0
	}

	var arg arena.AstNodeRef
	switch kind {
	case token.IntrinsicTypeOf:
		arg = p.parseExpression(precLowest)
	default: // sizeof, offsetof: first argument is a type name
		t := p.c.cur()
		if !t.ID.IsType() && t.ID != token.Identifier {
			p.errorAtCur(errExpectedType)
		} else {
			name := p.internText(t)
			arg = p.makeNode(ast.Node{ID: ast.TypeExpr, TokRef: p.c.tokRef(), Name: name})
			p.c.advance()
		}
	}

	var field arena.IdentifierRef
	if kind == token.IntrinsicOffsetOf {
		if _, ok := p.expect(token.Comma); ok {
			if fieldTok, ok := p.expectIdent(); ok {
				field = p.internText(fieldTok)
			}
		}
	}
	p.expect(token.RParen)
	return p.makeNode(ast.Node{ID: ast.IntrinsicExpr, TokRef: tokRef, A: arg, Name: field})
}

// parseExplicitCast parses the `cast(Type, expr)` intrinsic form,
// equivalent to `expr as Type` but written prefix — kept because the
// teacher's own cast keyword reads naturally either way and `cast`
// already occupies a reserved keyword slot (token.KwCast).
func (p *Parser) parseExplicitCast() arena.AstNodeRef {
	tokRef := p.c.tokRef()
	p.c.advance() // 'cast'
	if _, ok := p.expect(token.LParen); !ok {
		return 0
	}
	t := p.c.cur()
	var name arena.IdentifierRef
	if !t.ID.IsType() && t.ID != token.Identifier {
		p.errorAtCur(errExpectedType)
	} else {
		name = p.internText(t)
		p.c.advance()
	}
	p.expect(token.Comma)
	operand := p.parseExpression(precLowest)
	p.expect(token.RParen)
	return p.makeNode(ast.Node{ID: ast.CastExpr, TokRef: tokRef, A: operand, Name: name, Modifier: ast.ModPromote})
}
