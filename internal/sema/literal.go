package sema

import (
	"errors"
	"math"
	"strconv"
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/swglang/swc/internal/arena"
	"github.com/swglang/swc/internal/ast"
	"github.com/swglang/swc/internal/constpool"
	"github.com/swglang/swc/internal/token"
)

// foldLiteral is the use-pass pre_node hook for every literal kind: it
// decodes the token's raw text into a folded constant (spec §4.4
// Literals) and sets it directly — literals never need a Pause, so
// this is plain pre_node work rather than a dispatched post_node case.
func (p *pass) foldLiteral(n arena.AstNodeRef, node ast.Node) {
	var v constpool.Value
	ok := true

	tok := p.file.SrcView.Token(int(node.TokRef))
	switch node.ID {
	case ast.IntLiteral:
		var tooBig bool
		v, ok, tooBig = foldIntLiteral(p.tokenText(node))
		if tooBig {
			p.reportDiag(n, "sema_err_number_too_big")
			p.markNodeError(n)
			return
		}
	case ast.FloatLiteral:
		v, ok = foldFloatLiteral(p.tokenText(node))
	case ast.StringLiteral:
		var s string
		s, ok = decodeStringLiteral(p.tokenText(node), tok.Flags.Has(token.Escaped))
		v = constpool.Str(s)
	case ast.CharLiteral:
		var r rune
		r, ok = decodeCharLiteral(p.tokenText(node), tok.Flags.Has(token.Escaped))
		v = constpool.Char(r)
	case ast.BoolLiteral:
		v = constpool.Bool(node.BoolVal)
	case ast.NullLiteral, ast.UndefinedLiteral:
		// Neither carries a distinguishable runtime representation in
		// the constant pool; both fold to the same "no value" sentinel.
		v = constpool.Value{Kind: constpool.KindAggregate}
	default:
		return
	}

	if !ok {
		p.reportDiag(n, "sema_err_invalid_literal")
		p.markNodeError(n)
		return
	}
	ref := p.prog.Consts.Add(v)
	p.prog.Ast.Mutate(n, func(nd *ast.Node) { nd.Constant = ref; nd.Flags |= ast.FlagValue })
}

func (p *pass) tokenText(node ast.Node) string {
	return p.file.SrcView.TokenText(p.file.SrcView.Token(int(node.TokRef)))
}

// foldIntLiteral parses a raw integer literal, skipping `_` digit
// separators and recognizing 0x/0o/0b base prefixes (spec §4.4). The
// result is unsized until a binding type or cast concretizes it.
//
// tooBig distinguishes the spec §8 boundary diagnostic
// (sema_err_number_too_big: a literal whose digits exceed what fits in
// 64 bits, e.g. 2^64-1 in 0x… plus one more) from an ordinary malformed
// literal (bad digit for the base, empty literal) — both of those
// still just fail with ok=false, tooBig=false.
func foldIntLiteral(raw string) (v constpool.Value, ok bool, tooBig bool) {
	s := strings.ReplaceAll(raw, "_", "")
	base := 10
	switch {
	case strings.HasPrefix(s, "0x"), strings.HasPrefix(s, "0X"):
		base, s = 16, s[2:]
	case strings.HasPrefix(s, "0o"), strings.HasPrefix(s, "0O"):
		base, s = 8, s[2:]
	case strings.HasPrefix(s, "0b"), strings.HasPrefix(s, "0B"):
		base, s = 2, s[2:]
	}
	if s == "" {
		return constpool.Value{}, false, false
	}
	if uv, err := strconv.ParseUint(s, base, 64); err == nil {
		return constpool.Int(int64(uv), uv > math.MaxInt64, true), true, false
	} else if errors.Is(err, strconv.ErrRange) {
		return constpool.Value{}, false, true
	}
	iv, err := strconv.ParseInt(s, base, 64)
	if err != nil {
		return constpool.Value{}, false, false
	}
	return constpool.Int(iv, false, true), true, false
}

func foldFloatLiteral(raw string) (constpool.Value, bool) {
	s := strings.ReplaceAll(raw, "_", "")
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return constpool.Value{}, false
	}
	return constpool.Float(f, true), true
}

// decodeStringLiteral strips the surrounding quotes and, only when the
// lexer set the token's Escaped flag, expands backslash escapes; an
// unescaped literal is copied verbatim (spec §8 boundary behaviors: "String
// literal with no Escaped flag is copied verbatim"). The result is then
// normalized to NFC so two source files that spell the same text with
// different combining-character sequences fold to the same constant.
func decodeStringLiteral(raw string, escaped bool) (string, bool) {
	if len(raw) >= 2 {
		raw = raw[1 : len(raw)-1]
	}
	if !escaped {
		return norm.NFC.String(raw), true
	}
	decoded, ok := decodeEscapes(raw)
	if !ok {
		return "", false
	}
	return norm.NFC.String(decoded), true
}

func decodeCharLiteral(raw string, escaped bool) (rune, bool) {
	if len(raw) >= 2 {
		raw = raw[1 : len(raw)-1]
	}
	decoded := raw
	if escaped {
		var ok bool
		decoded, ok = decodeEscapes(raw)
		if !ok {
			return 0, false
		}
	}
	rs := []rune(decoded)
	if len(rs) != 1 {
		return 0, false
	}
	return rs[0], true
}

// decodeEscapes expands the fixed set of backslash escapes the lexer
// leaves for sema to resolve (spec §4.4: "escape decoding happens once,
// at fold time, not in the lexer"), including the `\xHH` / `\uHHHH` /
// `\UHHHHHHHH` hex-digit forms (spec §8: "decodes the exact number of
// hex digits <= max (2/4/8)").
func decodeEscapes(s string) (string, bool) {
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c != '\\' || i+1 >= len(s) {
			b.WriteByte(c)
			continue
		}
		i++
		switch s[i] {
		case 'n':
			b.WriteByte('\n')
		case 't':
			b.WriteByte('\t')
		case 'r':
			b.WriteByte('\r')
		case 'a':
			b.WriteByte('\a')
		case 'b':
			b.WriteByte('\b')
		case 'f':
			b.WriteByte('\f')
		case 'v':
			b.WriteByte('\v')
		case '0':
			b.WriteByte(0)
		case '\\':
			b.WriteByte('\\')
		case '\'':
			b.WriteByte('\'')
		case '"':
			b.WriteByte('"')
		case 'x':
			r, n, ok := readHexEscape(s[i+1:], 2)
			if !ok {
				return "", false
			}
			b.WriteByte(byte(r))
			i += n
		case 'u':
			r, n, ok := readHexEscape(s[i+1:], 4)
			if !ok {
				return "", false
			}
			b.WriteRune(rune(r))
			i += n
		case 'U':
			r, n, ok := readHexEscape(s[i+1:], 8)
			if !ok {
				return "", false
			}
			b.WriteRune(rune(r))
			i += n
		default:
			b.WriteByte(s[i])
		}
	}
	return b.String(), true
}

// readHexEscape reads exactly digits hex characters from the front of s
// (spec §8: "decodes the exact number of hex digits <= max"), returning
// the decoded value and how many bytes of s it consumed.
func readHexEscape(s string, digits int) (value uint64, consumed int, ok bool) {
	if len(s) < digits {
		return 0, 0, false
	}
	v, err := strconv.ParseUint(s[:digits], 16, 64)
	if err != nil {
		return 0, 0, false
	}
	return v, digits, true
}
