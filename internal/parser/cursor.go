package parser

import (
	"github.com/swglang/swc/internal/arena"
	"github.com/swglang/swc/internal/token"
)

// cursor is a plain index into one file's fully-lexed token array. The
// teacher's TokenCursor buffers tokens lazily from a live lexer.Lexer
// and needs immutable Mark/ResetTo backtracking because its stream has
// no fixed end until EOF is reached; here the whole file is tokenized
// up front (internal/lexer's one-shot contract), so every production
// this grammar needs is decidable by one token of lookahead and a
// plain mutable index is enough.
type cursor struct {
	tokens []token.Token
	pos    int
}

func newCursor(tokens []token.Token) *cursor {
	return &cursor{tokens: tokens}
}

// at returns the token at absolute index i, or a synthetic EOF token
// past the end of the array (mirrors sourceview.SourceView.Token's own
// out-of-range behavior).
func (c *cursor) at(i int) token.Token {
	if i < 0 || i >= len(c.tokens) {
		return token.Token{ID: token.EOF}
	}
	return c.tokens[i]
}

func (c *cursor) cur() token.Token { return c.at(c.pos) }

// peek returns the token n positions ahead of cur (peek(0) == cur()).
func (c *cursor) peek(n int) token.Token { return c.at(c.pos + n) }

// advance returns the current token and moves past it, unless already
// at EOF (EOF never advances further).
func (c *cursor) advance() token.Token {
	t := c.cur()
	if t.ID != token.EOF {
		c.pos++
	}
	return t
}

func (c *cursor) is(id token.ID) bool { return c.cur().ID == id }

func (c *cursor) isAny(ids ...token.ID) bool {
	cur := c.cur().ID
	for _, id := range ids {
		if cur == id {
			return true
		}
	}
	return false
}

// tokRef is the ref to stamp onto a node built from the current token.
func (c *cursor) tokRef() arena.TokenRef { return arena.TokenRef(c.pos) }
