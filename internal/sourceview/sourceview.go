// Package sourceview implements the lexer-output contract of spec
// §6.1. A SourceView owns one file's token array, identifier table,
// trivia, and line table, and is the only thing the parser and sema
// need from the (externally specified) lexer.
package sourceview

import "github.com/swglang/swc/internal/token"

// IdentifierRow is one entry in a file's identifier table: the real
// byte offset of the identifier text plus a precomputed CRC used by
// internal/identpool to pre-filter interning hash collisions.
type IdentifierRow struct {
	ByteStart uint32
	CRC       uint32
}

// TriviaKind distinguishes comment forms from plain whitespace runs.
type TriviaKind uint8

const (
	TriviaBlank TriviaKind = iota
	TriviaLineComment
	TriviaBlockComment
)

// Trivia is a byte-span of non-significant source text.
type Trivia struct {
	ByteStart  uint32
	ByteLength uint32
	Kind       TriviaKind
}

// SourceView is produced by the lexer and consumed by the parser and
// sema. It is immutable after construction: every slice below is
// fully populated before the SourceView is published to other jobs.
type SourceView struct {
	path        string
	src         []byte
	tokens      []token.Token
	identifiers []IdentifierRow
	trivia      []Trivia
	lineStarts  []uint32 // ascending byte offsets of line starts
}

// New builds a SourceView from already-lexed pieces. The lexer
// (external per spec §1) is responsible for producing these in the
// shapes this package defines.
func New(path string, src []byte, tokens []token.Token, identifiers []IdentifierRow, trivia []Trivia, lineStarts []uint32) *SourceView {
	return &SourceView{
		path:        path,
		src:         src,
		tokens:      tokens,
		identifiers: identifiers,
		trivia:      trivia,
		lineStarts:  lineStarts,
	}
}

// Path returns the originating file path.
func (v *SourceView) Path() string { return v.path }

// StringView returns the raw source bytes.
func (v *SourceView) StringView() []byte { return v.src }

// Tokens returns the ordered token array.
func (v *SourceView) Tokens() []token.Token { return v.tokens }

// Token returns the token at the given index (0-based position in the
// token array, distinct from arena.TokenRef which callers build from
// this index plus the owning SourceViewRef).
func (v *SourceView) Token(i int) token.Token {
	if i < 0 || i >= len(v.tokens) {
		return token.Token{ID: token.EOF}
	}
	return v.tokens[i]
}

// Identifiers returns the per-file identifier table.
func (v *SourceView) Identifiers() []IdentifierRow { return v.identifiers }

// Trivia returns the ordered comment/whitespace spans.
func (v *SourceView) TriviaList() []Trivia { return v.trivia }

// LineTable returns ascending byte offsets of line starts.
func (v *SourceView) LineTable() []uint32 { return v.lineStarts }

// TokenText returns the literal source text of a token.
func (v *SourceView) TokenText(t token.Token) string {
	start, end := t.ByteStart, t.ByteStart+t.ByteLength
	if t.ID == token.Identifier {
		if int(t.ByteStart) >= len(v.identifiers) {
			return ""
		}
		row := v.identifiers[t.ByteStart]
		// Identifier length isn't separately recorded; ByteLength still
		// carries the token's span in the identifier-table-indirected
		// encoding used for display purposes (spec §3.2).
		start, end = row.ByteStart, row.ByteStart+t.ByteLength
	}
	if int(end) > len(v.src) || start > end {
		return ""
	}
	return string(v.src[start:end])
}

// Location converts a byte offset to a 1-based line/column pair using
// the line table, for diagnostic rendering.
func (v *SourceView) Location(byteOffset uint32) (line, column int) {
	// Binary search for the last line start <= byteOffset.
	lo, hi := 0, len(v.lineStarts)
	for lo < hi {
		mid := (lo + hi + 1) / 2
		if v.lineStarts[mid-1] <= byteOffset {
			lo = mid
		} else {
			hi = mid - 1
		}
	}
	if lo == 0 {
		return 1, int(byteOffset) + 1
	}
	lineStart := v.lineStarts[lo-1]
	return lo, int(byteOffset-lineStart) + 1
}
