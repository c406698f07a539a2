package parser

import (
	"github.com/swglang/swc/internal/arena"
	"github.com/swglang/swc/internal/diag"
	"github.com/swglang/swc/internal/token"
)

// Diagnostic ID constants, grounded on the teacher's Err* block in
// internal/parser/error.go but following this codebase's own
// "<package>_err_<reason>" naming (sema_err_*, lexer_err_*) rather than
// the teacher's Go-constant-name scheme.
const (
	errUnexpectedToken  = "parser_err_unexpected_token"
	errExpectedToken    = "parser_err_expected_token"
	errExpectedIdent    = "parser_err_expected_identifier"
	errExpectedType     = "parser_err_expected_type"
	errExpectedExpr     = "parser_err_expected_expression"
	errUnterminatedList = "parser_err_unterminated_list"
	errInvalidDecl      = "parser_err_invalid_declaration"
	errInvalidCaseLabel = "parser_err_invalid_case_label"
)

func (p *Parser) errorf(id string, tok token.Token, pos arena.TokenRef) {
	d := diag.New(id, diag.SeverityError, p.svRef, pos)
	d.WithArg("found", tok.ID.String())
	p.diags = append(p.diags, *d)
	p.hasErrors = true
}

func (p *Parser) errorAtCur(id string) {
	p.errorf(id, p.c.cur(), p.c.tokRef())
}

// expect reports errExpectedToken and does not advance when the
// current token doesn't match want; otherwise it advances past it.
func (p *Parser) expect(want token.ID) (token.Token, bool) {
	if !p.c.is(want) {
		d := diag.New(errExpectedToken, diag.SeverityError, p.svRef, p.c.tokRef())
		d.WithArg("want", want.String())
		d.WithArg("found", p.c.cur().ID.String())
		p.diags = append(p.diags, *d)
		p.hasErrors = true
		return token.Token{}, false
	}
	return p.c.advance(), true
}

// expectIdent behaves like expect(token.Identifier).
func (p *Parser) expectIdent() (token.Token, bool) {
	if p.c.cur().ID != token.Identifier {
		p.errorAtCur(errExpectedIdent)
		return token.Token{}, false
	}
	return p.c.advance(), true
}

// synchronize advances past tokens until a plausible declaration or
// statement boundary, so one malformed construct doesn't cascade into
// spurious follow-on errors (grounded on the teacher's panic-mode
// synchronize(), simplified since this cursor has no block-context
// stack to pop).
func (p *Parser) synchronize(stop ...token.ID) {
	for {
		t := p.c.cur()
		if t.ID == token.EOF {
			return
		}
		if t.ID == token.Semicolon {
			p.c.advance()
			return
		}
		for _, s := range stop {
			if t.ID == s {
				return
			}
		}
		if isDeclStart(t.ID) {
			return
		}
		p.c.advance()
	}
}
