// Package directive implements the source-comment test harness used by
// this repo's own test fixtures: a "// expected-error@<line>
// {{substring}}" (or "expected-warning") comment declares a diagnostic
// the fixture expects the frontend to report, and "// swc-option
// <word>..." toggles a run option for that fixture. Grounded on the
// original compiler's Wmf/Verify.{h,cpp} directive-comment harness,
// adapted from its trivia-scanning C++ shape to Go (sourceview.Trivia
// instead of a SourceTrivia/TokenId pair, diag.Severity instead of
// DiagnosticSeverity).
package directive

import (
	"strings"

	"github.com/swglang/swc/internal/diag"
	"github.com/swglang/swc/internal/sourceview"
)

// markerOption introduces a run-option directive; its option words
// follow, blank-separated. markerSeverity maps each expected-diagnostic
// marker to the severity it asserts.
const markerOption = "swc-option"

var markerSeverity = map[string]diag.Severity{
	"expected-error":   diag.SeverityError,
	"expected-warning": diag.SeverityWarning,
}

// lineKind distinguishes the four line-constraint forms a directive's
// "@..." suffix can take.
type lineKind uint8

const (
	lineExact lineKind = iota
	lineAnywhere
	lineRange
	lineList
)

// LineConstraint restricts which source line a directive's match may
// land on, relative to the line the directive comment itself sits on.
type LineConstraint struct {
	kind    lineKind
	min, max uint32
	allowed []uint32
}

// Matches reports whether line satisfies the constraint.
func (c LineConstraint) Matches(line uint32) bool {
	switch c.kind {
	case lineAnywhere:
		return true
	case lineList:
		for _, l := range c.allowed {
			if l == line {
				return true
			}
		}
		return false
	default: // lineExact, lineRange: both are just a [min,max] band
		return line >= c.min && line <= c.max
	}
}

// Directive is one "expect a diagnostic" assertion extracted from a
// source comment.
type Directive struct {
	Severity diag.Severity
	Match    string
	Line     LineConstraint

	// DirectiveLine is the source line the comment itself sits on, for
	// reporting an unmatched directive's own location.
	DirectiveLine uint32
	ByteOffset    uint32

	// Touched is set by Verify once a reported diagnostic matches this
	// directive. A harness run is only clean once every directive with
	// Touched == false has been reported as a failure.
	Touched bool
}

// Options is the set of per-fixture run toggles a "swc-option"
// comment can set.
type Options struct {
	LexOnly bool
}

func clampLine(v int32) uint32 {
	if v > 0 {
		return uint32(v)
	}
	return 1
}

func isBlank(c byte) bool { return c == ' ' || c == '\t' }
func isDigit(c byte) bool { return c >= '0' && c <= '9' }
func isLetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}
func isOptionChar(c byte) bool { return isLetter(c) || isDigit(c) || c == '-' }

// parseUInt consumes decimal digits at i, reporting whether any were
// consumed.
func parseUInt(s string, i int) (value, next int, ok bool) {
	start := i
	for i < len(s) && isDigit(s[i]) {
		value = value*10 + int(s[i]-'0')
		i++
	}
	return value, i, i > start
}

// parseSignedOrAbs parses "[+|-][digits]": a bare sign with no digits
// means an implicit magnitude of 1; no sign at all requires digits and
// yields an absolute (unsigned) value.
func parseSignedOrAbs(s string, i int) (value, next int, hasSign bool, ok bool) {
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		sign := 1
		if s[i] == '-' {
			sign = -1
		}
		i++
		mag, next2, gotDigits := parseUInt(s, i)
		if !gotDigits {
			return sign, next2, true, true
		}
		return sign * mag, next2, true, true
	}
	v, next2, gotDigits := parseUInt(s, i)
	if !gotDigits {
		return 0, i, false, false
	}
	return v, next2, false, true
}

// parseLineConstraint consumes an optional "@..." suffix at i and
// returns the resulting constraint plus the index just past it.
// Supported forms (baseLine is the directive comment's own line):
//
//	@*                  anywhere in the file
//	@(n1, n2, ...)       one of an explicit list of lines — each entry
//	                    either a signed relative offset from baseLine
//	                    or an absolute line number
//	@+N / @-N           relative offset from baseLine
//	@+ / @-             same, implicit magnitude 1
//	@+A..+B             inclusive relative range
//
// A malformed or absent suffix defaults to "exactly baseLine".
func parseLineConstraint(comment string, i int, baseLine uint32) (LineConstraint, int) {
	exact := LineConstraint{kind: lineExact, min: baseLine, max: baseLine}

	if i >= len(comment) || comment[i] != '@' {
		return exact, i
	}
	i++

	if i < len(comment) && comment[i] == '*' {
		return LineConstraint{kind: lineAnywhere}, i + 1
	}

	if i < len(comment) && comment[i] == '(' {
		i++
		var lines []uint32
		for i < len(comment) {
			for i < len(comment) && isBlank(comment[i]) {
				i++
			}
			save := i
			v, next, hasSign, ok := parseSignedOrAbs(comment, i)
			if !ok {
				i = save
				break
			}
			i = next
			if hasSign {
				lines = append(lines, clampLine(int32(baseLine)+int32(v)))
			} else {
				lines = append(lines, clampLine(int32(v)))
			}
			for i < len(comment) && isBlank(comment[i]) {
				i++
			}
			if i < len(comment) && comment[i] == ',' {
				i++
				continue
			}
			break
		}
		for i < len(comment) && comment[i] != ')' {
			i++
		}
		if i < len(comment) && comment[i] == ')' {
			i++
		}
		if len(lines) == 0 {
			return exact, i
		}
		return LineConstraint{kind: lineList, allowed: lines}, i
	}

	save := i
	offA, next, hasSign, ok := parseSignedOrAbs(comment, i)
	if !ok || !hasSign {
		return exact, save
	}
	i = next
	lineA := clampLine(int32(baseLine) + int32(offA))

	if i+1 < len(comment) && comment[i] == '.' && comment[i+1] == '.' {
		i += 2
		offB, next2, hasSignB, okB := parseSignedOrAbs(comment, i)
		if !okB || !hasSignB {
			return LineConstraint{kind: lineExact, min: lineA, max: lineA}, next2
		}
		i = next2
		lineB := clampLine(int32(baseLine) + int32(offB))
		lo, hi := lineA, lineB
		if lo > hi {
			lo, hi = hi, lo
		}
		return LineConstraint{kind: lineRange, min: lo, max: hi}, i
	}

	return LineConstraint{kind: lineExact, min: lineA, max: lineA}, i
}

// Parse scans every comment trivia in sv for "expected-error",
// "expected-warning", and "swc-option" directives. Returns the
// expected-diagnostic directives in source order plus any run options
// collected along the way.
func Parse(sv *sourceview.SourceView) ([]*Directive, Options) {
	var directives []*Directive
	var opts Options

	src := sv.StringView()
	for _, tr := range sv.TriviaList() {
		if tr.Kind != sourceview.TriviaLineComment && tr.Kind != sourceview.TriviaBlockComment {
			continue
		}
		comment := string(src[tr.ByteStart : tr.ByteStart+tr.ByteLength])
		line, _ := sv.Location(tr.ByteStart)

		parseOptions(comment, &opts)
		directives = append(directives, parseExpected(comment, tr.ByteStart, uint32(line))...)
	}
	return directives, opts
}

func parseOptions(comment string, opts *Options) {
	pos := 0
	for {
		found := strings.Index(comment[pos:], markerOption)
		if found < 0 {
			return
		}
		i := pos + found + len(markerOption)
		for i < len(comment) {
			for i < len(comment) && isBlank(comment[i]) {
				i++
			}
			start := i
			for i < len(comment) && isOptionChar(comment[i]) {
				i++
			}
			if i == start {
				break
			}
			switch comment[start:i] {
			case "lex-only":
				opts.LexOnly = true
			}
		}
		if i <= pos+found+len(markerOption) {
			i = pos + found + len(markerOption)
		}
		pos = i
	}
}

// nextMarker finds the earliest occurrence, at or after pos, of any
// key in markerSeverity, returning its byte offset and matched marker
// (or ok == false if none occurs again in comment).
func nextMarker(comment string, pos int) (found int, marker string, ok bool) {
	found = -1
	for m := range markerSeverity {
		if idx := strings.Index(comment[pos:], m); idx >= 0 {
			idx += pos
			if found < 0 || idx < found || (idx == found && len(m) > len(marker)) {
				found, marker = idx, m
			}
		}
	}
	return found, marker, found >= 0
}

func parseExpected(comment string, commentByteStart uint32, baseLine uint32) []*Directive {
	var out []*Directive
	pos := 0
	for {
		found, marker, ok := nextMarker(comment, pos)
		if !ok {
			return out
		}
		sev := markerSeverity[marker]
		i := found + len(marker)

		d := &Directive{
			Severity:      sev,
			DirectiveLine: baseLine,
			ByteOffset:    commentByteStart + uint32(found),
		}
		d.Line, i = parseLineConstraint(comment, i, baseLine)

		// Every "{{...}}" block following this directive (up to the
		// next directive marker) is a separate expectation sharing the
		// same severity and line constraint.
		limit := len(comment)
		if next, _, ok := nextMarker(comment, i); ok {
			limit = next
		}
		for {
			open := strings.Index(comment[i:limit], "{{")
			if open < 0 {
				break
			}
			open += i
			close := strings.Index(comment[open+2:limit], "}}")
			if close < 0 {
				break
			}
			close += open + 2

			dup := *d
			dup.Match = strings.TrimSpace(comment[open+2 : close])
			out = append(out, &dup)

			i = close + 2
		}

		pos = i
	}
}

// Verify checks d against every not-yet-touched directive and, on the
// first match (by severity, line constraint, and a substring match
// against either d's ID or its rendered text), marks that directive
// touched and reports a match. Mirrors the original harness's
// first-match-wins semantics.
func Verify(directives []*Directive, d diag.Diagnostic, sv *sourceview.SourceView) bool {
	if len(directives) == 0 {
		return false
	}
	line, _ := sv.Location(tokenByteStart(d, sv))
	rendered := diag.RenderText(d)

	for _, dir := range directives {
		if dir.Touched || dir.Severity != d.Severity {
			continue
		}
		if !dir.Line.Matches(uint32(line)) {
			continue
		}
		if !strings.Contains(d.ID, dir.Match) && !strings.Contains(rendered, dir.Match) {
			continue
		}
		dir.Touched = true
		return true
	}
	return false
}

func tokenByteStart(d diag.Diagnostic, sv *sourceview.SourceView) uint32 {
	return sv.Token(int(d.Tok)).ByteStart
}

// Untouched returns every directive Verify never matched, in source
// order — the harness reports each as a "expected diagnostic never
// raised" failure.
func Untouched(directives []*Directive) []*Directive {
	var out []*Directive
	for _, d := range directives {
		if !d.Touched {
			out = append(out, d)
		}
	}
	return out
}
