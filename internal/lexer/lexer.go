// Package lexer is the token-stream producer spec §3.2/§6 leaves as an
// external collaborator, specified only by the internal/sourceview
// output shape it must fill in: a per-file token array, identifier
// table (byte offset + CRC, indirected through via Token.ByteStart for
// Identifier-kind tokens), trivia spans, and line table.
//
// Grounded on the teacher's internal/lexer rune-scanning idiom
// (readChar/peekChar/matchAndConsume, a rune-keyed tokenHandlers
// dispatch table, BOM stripping, line/column bookkeeping) but
// restructured to emit the whole file's tokens up front rather than
// lazily through a NextToken()/Peek() API — sema and the parser only
// ever see a fully-populated SourceView, never a live cursor.
package lexer

import (
	"unicode"
	"unicode/utf8"

	"github.com/swglang/swc/internal/arena"
	"github.com/swglang/swc/internal/diag"
	"github.com/swglang/swc/internal/identpool"
	"github.com/swglang/swc/internal/sourceview"
	"github.com/swglang/swc/internal/token"
)

type lexer struct {
	path string
	src  []byte

	pos     int // byte offset of ch
	readPos int
	ch      rune

	sawBlank bool // whitespace/comment trivia since the last emitted token
	sawEol   bool // newline since the last emitted token

	tokens      []token.Token
	identifiers []sourceview.IdentifierRow
	trivia      []sourceview.Trivia
	lineStarts  []uint32
	diags       []diag.Diagnostic
}

// Lex scans src in full and returns the resulting SourceView plus any
// lexical diagnostics (illegal characters, unterminated literals).
// Diagnostics are returned with SrcView left invalid; the caller fills
// it in once the SourceView has been registered and assigned a ref.
func Lex(path string, src []byte) (*sourceview.SourceView, []diag.Diagnostic) {
	src = stripBOM(src)
	l := &lexer{path: path, src: src, lineStarts: []uint32{0}}
	l.readChar()

	for {
		l.skipTrivia()
		pos := uint32(l.pos)
		if l.ch == 0 {
			l.emit(token.Token{ByteStart: pos, ID: token.EOF}, pos)
			break
		}
		tok := l.scanToken(pos)
		l.emit(tok, pos)
	}

	return sourceview.New(path, src, l.tokens, l.identifiers, l.trivia, l.lineStarts), l.diags
}

func stripBOM(src []byte) []byte {
	if len(src) >= 3 && src[0] == 0xEF && src[1] == 0xBB && src[2] == 0xBF {
		return src[3:]
	}
	return src
}

func (l *lexer) emit(tok token.Token, startPos uint32) {
	if l.sawBlank && len(l.tokens) > 0 {
		l.tokens[len(l.tokens)-1].Flags |= token.BlankAfter
		tok.Flags |= token.BlankBefore
	}
	if l.sawEol {
		if len(l.tokens) > 0 {
			l.tokens[len(l.tokens)-1].Flags |= token.EolAfter
		}
		tok.Flags |= token.EolBefore
	}
	l.sawBlank, l.sawEol = false, false
	l.tokens = append(l.tokens, tok)
}

func (l *lexer) readChar() {
	if l.readPos >= len(l.src) {
		l.ch = 0
		l.pos = l.readPos
		return
	}
	r, size := utf8.DecodeRune(l.src[l.readPos:])
	l.ch = r
	l.pos = l.readPos
	l.readPos += size
}

func (l *lexer) peekChar() rune {
	if l.readPos >= len(l.src) {
		return 0
	}
	r, _ := utf8.DecodeRune(l.src[l.readPos:])
	return r
}

func (l *lexer) peekCharN(n int) rune {
	pos := l.readPos
	for i := 0; i < n-1 && pos < len(l.src); i++ {
		_, size := utf8.DecodeRune(l.src[pos:])
		pos += size
	}
	if pos >= len(l.src) {
		return 0
	}
	r, _ := utf8.DecodeRune(l.src[pos:])
	return r
}

func (l *lexer) matchAndConsume(expected rune) bool {
	if l.peekChar() != expected {
		return false
	}
	l.readChar()
	return true
}

func (l *lexer) noteNewline() {
	if l.ch == '\n' {
		l.lineStarts = append(l.lineStarts, uint32(l.pos)+1)
	}
}

// skipTrivia consumes whitespace and comments, recording each run as a
// Trivia span and setting sawBlank/sawEol for the next emitted token.
func (l *lexer) skipTrivia() {
	for {
		switch {
		case isSpace(l.ch):
			start := l.pos
			for isSpace(l.ch) {
				l.sawBlank = true
				if l.ch == '\n' {
					l.sawEol = true
				}
				l.noteNewline()
				l.readChar()
			}
			l.trivia = append(l.trivia, sourceview.Trivia{
				ByteStart: uint32(start), ByteLength: uint32(l.pos - start), Kind: sourceview.TriviaBlank,
			})
		case l.ch == '/' && l.peekChar() == '/':
			start := l.pos
			for l.ch != '\n' && l.ch != 0 {
				l.readChar()
			}
			l.sawBlank = true
			l.trivia = append(l.trivia, sourceview.Trivia{
				ByteStart: uint32(start), ByteLength: uint32(l.pos - start), Kind: sourceview.TriviaLineComment,
			})
		case l.ch == '/' && l.peekChar() == '*':
			start := l.pos
			l.readChar()
			l.readChar()
			terminated := false
			for l.ch != 0 {
				if l.ch == '*' && l.peekChar() == '/' {
					l.readChar()
					l.readChar()
					terminated = true
					break
				}
				if l.ch == '\n' {
					l.sawEol = true
				}
				l.noteNewline()
				l.readChar()
			}
			if !terminated {
				l.reportDiag("lexer_err_unterminated_comment", uint32(start))
			}
			l.sawBlank = true
			l.trivia = append(l.trivia, sourceview.Trivia{
				ByteStart: uint32(start), ByteLength: uint32(l.pos - start), Kind: sourceview.TriviaBlockComment,
			})
		default:
			return
		}
	}
}

func (l *lexer) scanToken(pos uint32) token.Token {
	switch {
	case isIdentStart(l.ch):
		return l.scanIdentifier(pos)
	case isDigit(l.ch):
		return l.scanNumber(pos)
	case l.ch == '"', l.ch == 'r' && l.peekChar() == '"':
		return l.scanString(pos)
	case l.ch == '\'':
		return l.scanChar(pos)
	case l.ch == '#':
		return l.scanCompilerDirective(pos)
	case l.ch == '@':
		return l.scanIntrinsic(pos)
	default:
		return l.scanOperator(pos)
	}
}

func (l *lexer) scanIdentifier(pos uint32) token.Token {
	start := l.pos
	for isIdentPart(l.ch) {
		l.readChar()
	}
	word := string(l.src[start:l.pos])
	id := lookupIdent(word)
	length := uint32(l.pos - start)
	if id != token.Identifier {
		return token.Token{ByteStart: pos, ByteLength: length, ID: id}
	}
	row := uint32(len(l.identifiers))
	l.identifiers = append(l.identifiers, sourceview.IdentifierRow{
		ByteStart: uint32(start), CRC: identpool.Hash(word),
	})
	return token.Token{ByteStart: row, ByteLength: length, ID: token.Identifier}
}

func (l *lexer) scanNumber(pos uint32) token.Token {
	start := l.pos
	isFloat := false

	if l.ch == '0' && (l.peekChar() == 'x' || l.peekChar() == 'X') {
		l.readChar()
		l.readChar()
		for isHexDigit(l.ch) || l.ch == '_' {
			l.readChar()
		}
	} else if l.ch == '0' && (l.peekChar() == 'o' || l.peekChar() == 'O') {
		l.readChar()
		l.readChar()
		for isOctalDigit(l.ch) || l.ch == '_' {
			l.readChar()
		}
	} else if l.ch == '0' && (l.peekChar() == 'b' || l.peekChar() == 'B') {
		l.readChar()
		l.readChar()
		for l.ch == '0' || l.ch == '1' || l.ch == '_' {
			l.readChar()
		}
	} else {
		for isDigit(l.ch) || l.ch == '_' {
			l.readChar()
		}
		if l.ch == '.' && isDigit(l.peekChar()) {
			isFloat = true
			l.readChar()
			for isDigit(l.ch) || l.ch == '_' {
				l.readChar()
			}
		}
		if l.ch == 'e' || l.ch == 'E' {
			isFloat = true
			l.readChar()
			if l.ch == '+' || l.ch == '-' {
				l.readChar()
			}
			for isDigit(l.ch) {
				l.readChar()
			}
		}
	}

	id := token.IntLiteral
	if isFloat {
		id = token.FloatLiteral
	}
	return token.Token{ByteStart: pos, ByteLength: uint32(l.pos - start), ID: id}
}

// scanString scans single `"..."`, triple `"""..."""`, and raw `r"..."`
// string forms (spec §4.4). Raw strings never carry the Escaped flag;
// the others do as soon as a backslash is seen, and decoding of the
// actual escape sequences happens later, at sema fold time.
func (l *lexer) scanString(pos uint32) token.Token {
	start := l.pos
	raw := false
	if l.ch == 'r' {
		raw = true
		l.readChar() // skip 'r'
	}

	triple := !raw && l.ch == '"' && l.peekChar() == '"' && l.peekCharN(2) == '"'
	if triple {
		l.readChar()
		l.readChar()
	}
	l.readChar() // skip opening quote

	var flags token.Flags
	terminated := false
	for l.ch != 0 {
		if !raw && l.ch == '\\' && l.peekChar() != 0 {
			flags |= token.Escaped
			l.readChar()
			l.readChar()
			continue
		}
		if l.ch == '"' {
			if triple {
				if l.peekChar() == '"' && l.peekCharN(2) == '"' {
					l.readChar()
					l.readChar()
					l.readChar()
					terminated = true
					break
				}
			} else {
				l.readChar()
				terminated = true
				break
			}
		}
		if l.ch == '\n' {
			flags |= token.EolInside
			l.sawEol = true
			l.noteNewline()
		}
		l.readChar()
	}
	if !terminated {
		l.reportDiag("lexer_err_unterminated_string", pos)
	}
	return token.Token{ByteStart: pos, ByteLength: uint32(l.pos - start), ID: token.StringLiteral, Flags: flags}
}

func (l *lexer) scanChar(pos uint32) token.Token {
	start := l.pos
	l.readChar() // skip opening '

	var flags token.Flags
	terminated := false
	for l.ch != 0 && l.ch != '\n' {
		if l.ch == '\\' && l.peekChar() != 0 {
			flags |= token.Escaped
			l.readChar()
			l.readChar()
			continue
		}
		if l.ch == '\'' {
			l.readChar()
			terminated = true
			break
		}
		l.readChar()
	}
	if !terminated {
		l.reportDiag("lexer_err_unterminated_char", pos)
	}
	return token.Token{ByteStart: pos, ByteLength: uint32(l.pos - start), ID: token.CharLiteral, Flags: flags}
}

func (l *lexer) scanCompilerDirective(pos uint32) token.Token {
	start := l.pos
	l.readChar() // skip '#'
	wordStart := l.pos
	for isIdentPart(l.ch) {
		l.readChar()
	}
	word := string(l.src[wordStart:l.pos])
	id, ok := compilerDirectives[word]
	if !ok {
		l.reportDiag("lexer_err_unknown_directive", pos)
		id = token.Invalid
	}
	return token.Token{ByteStart: pos, ByteLength: uint32(l.pos - start), ID: id}
}

func (l *lexer) scanIntrinsic(pos uint32) token.Token {
	start := l.pos
	l.readChar() // skip '@'
	wordStart := l.pos
	for isIdentPart(l.ch) {
		l.readChar()
	}
	word := string(l.src[wordStart:l.pos])
	id, ok := intrinsics[word]
	if !ok {
		l.reportDiag("lexer_err_unknown_intrinsic", pos)
		id = token.Invalid
	}
	return token.Token{ByteStart: pos, ByteLength: uint32(l.pos - start), ID: id}
}

func (l *lexer) scanOperator(pos uint32) token.Token {
	ch := l.ch
	simple := func(id token.ID, width uint32) token.Token {
		for i := uint32(0); i < width; i++ {
			l.readChar()
		}
		return token.Token{ByteStart: pos, ByteLength: width, ID: id}
	}

	switch ch {
	case '+':
		if l.matchAndConsume('+') {
			return simple(token.PlusPlus, 2)
		}
		return simple(token.Plus, 1)
	case '-':
		if l.matchAndConsume('>') {
			return simple(token.Arrow, 2)
		}
		return simple(token.Minus, 1)
	case '*':
		return simple(token.Star, 1)
	case '/':
		return simple(token.Slash, 1)
	case '%':
		return simple(token.Percent, 1)
	case '&':
		if l.matchAndConsume('&') {
			return simple(token.AmpAmp, 2)
		}
		return simple(token.Amp, 1)
	case '|':
		if l.matchAndConsume('|') {
			return simple(token.PipePipe, 2)
		}
		return simple(token.Pipe, 1)
	case '^':
		return simple(token.Caret, 1)
	case '~':
		return simple(token.Tilde, 1)
	case '<':
		switch {
		case l.peekChar() == '<':
			return simple(token.Shl, 2)
		case l.peekChar() == '=':
			return simple(token.Le, 2)
		default:
			return simple(token.Lt, 1)
		}
	case '>':
		switch {
		case l.peekChar() == '>':
			return simple(token.Shr, 2)
		case l.peekChar() == '=':
			return simple(token.Ge, 2)
		default:
			return simple(token.Gt, 1)
		}
	case '=':
		if l.matchAndConsume('=') {
			return simple(token.Eq, 2)
		}
		return simple(token.Assign, 1)
	case '!':
		if l.matchAndConsume('=') {
			return simple(token.Ne, 2)
		}
		return simple(token.Bang, 1)
	case '?':
		return simple(token.Question, 1)
	case ':':
		return simple(token.Colon, 1)
	case ';':
		return simple(token.Semicolon, 1)
	case ',':
		return simple(token.Comma, 1)
	case '.':
		if l.peekChar() == '.' {
			return simple(token.DotDot, 2)
		}
		return simple(token.Dot, 1)
	case '(':
		return simple(token.LParen, 1)
	case ')':
		return simple(token.RParen, 1)
	case '{':
		return simple(token.LBrace, 1)
	case '}':
		return simple(token.RBrace, 1)
	case '[':
		return simple(token.LBracket, 1)
	case ']':
		return simple(token.RBracket, 1)
	default:
		l.reportDiag("lexer_err_illegal_character", pos)
		l.readChar()
		return token.Token{ByteStart: pos, ByteLength: uint32(l.pos) - pos, ID: token.Invalid}
	}
}

func (l *lexer) reportDiag(id string, pos uint32) {
	d := diag.New(id, diag.SeverityError, arena.SourceViewRef(0), arena.TokenRef(pos))
	l.diags = append(l.diags, *d)
}

func isSpace(r rune) bool { return r == ' ' || r == '\t' || r == '\r' || r == '\n' }

func isDigit(r rune) bool { return r >= '0' && r <= '9' }

func isHexDigit(r rune) bool {
	return isDigit(r) || (r >= 'a' && r <= 'f') || (r >= 'A' && r <= 'F')
}

func isOctalDigit(r rune) bool { return r >= '0' && r <= '7' }

func isIdentStart(r rune) bool {
	return r == '_' || unicode.IsLetter(r)
}

func isIdentPart(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}
