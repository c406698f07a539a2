package directive

import (
	"testing"

	"github.com/swglang/swc/internal/arena"
	"github.com/swglang/swc/internal/diag"
	"github.com/swglang/swc/internal/lexer"
)

func TestParseExactLine(t *testing.T) {
	src := "var x: s32 = 1; // expected-error {{unresolved}}\n"
	sv, lexDiags := lexer.Lex("t.swg", []byte(src))
	if len(lexDiags) != 0 {
		t.Fatalf("unexpected lex diagnostics: %+v", lexDiags)
	}
	dirs, _ := Parse(sv)
	if len(dirs) != 1 {
		t.Fatalf("expected 1 directive, got %d", len(dirs))
	}
	d := dirs[0]
	if d.Severity != diag.SeverityError || d.Match != "unresolved" {
		t.Fatalf("unexpected directive: %+v", d)
	}
	if !d.Line.Matches(1) || d.Line.Matches(2) {
		t.Fatalf("expected exact-line-1 constraint, got %+v", d.Line)
	}
}

func TestParseAnywhere(t *testing.T) {
	src := "// expected-warning@* {{deprecated}}\nvar x: s32 = 1;\n"
	sv, _ := lexer.Lex("t.swg", []byte(src))
	dirs, _ := Parse(sv)
	if len(dirs) != 1 {
		t.Fatalf("expected 1 directive, got %d", len(dirs))
	}
	if !dirs[0].Line.Matches(1) || !dirs[0].Line.Matches(500) {
		t.Fatalf("@* should match any line, got %+v", dirs[0].Line)
	}
}

func TestParseRelativeOffset(t *testing.T) {
	src := "// expected-error@+1 {{bad}}\nvar x: s32 = 1;\n"
	sv, _ := lexer.Lex("t.swg", []byte(src))
	dirs, _ := Parse(sv)
	if len(dirs) != 1 {
		t.Fatalf("expected 1 directive, got %d", len(dirs))
	}
	if !dirs[0].Line.Matches(2) || dirs[0].Line.Matches(1) {
		t.Fatalf("@+1 from line 1 should match only line 2, got %+v", dirs[0].Line)
	}
}

func TestParseRelativeRange(t *testing.T) {
	src := "// expected-error@+1..+3 {{bad}}\n"
	sv, _ := lexer.Lex("t.swg", []byte(src))
	dirs, _ := Parse(sv)
	for _, line := range []uint32{2, 3, 4} {
		if !dirs[0].Line.Matches(line) {
			t.Fatalf("expected range to match line %d, got %+v", line, dirs[0].Line)
		}
	}
	if dirs[0].Line.Matches(1) || dirs[0].Line.Matches(5) {
		t.Fatalf("range should not extend past its bounds, got %+v", dirs[0].Line)
	}
}

func TestParseAllowedList(t *testing.T) {
	src := "// expected-error@(+1, +3) {{bad}}\n"
	sv, _ := lexer.Lex("t.swg", []byte(src))
	dirs, _ := Parse(sv)
	if dirs[0].Line.Matches(1) || dirs[0].Line.Matches(3) {
		t.Fatalf("line 1 (base) and 3 (not in list) should not match, got %+v", dirs[0].Line)
	}
	if !dirs[0].Line.Matches(2) || !dirs[0].Line.Matches(4) {
		t.Fatalf("expected list {2,4} (base 1 + 1, base 1 + 3), got %+v", dirs[0].Line)
	}
}

func TestParseMultipleMatchesOneDirective(t *testing.T) {
	src := "// expected-error {{first}} {{second}}\n"
	sv, _ := lexer.Lex("t.swg", []byte(src))
	dirs, _ := Parse(sv)
	if len(dirs) != 2 {
		t.Fatalf("expected 2 directives sharing one severity/line, got %d", len(dirs))
	}
	if dirs[0].Match != "first" || dirs[1].Match != "second" {
		t.Fatalf("unexpected matches: %q, %q", dirs[0].Match, dirs[1].Match)
	}
}

func TestParseOption(t *testing.T) {
	src := "// swc-option lex-only\n"
	sv, _ := lexer.Lex("t.swg", []byte(src))
	_, opts := Parse(sv)
	if !opts.LexOnly {
		t.Fatalf("expected lex-only option to be set")
	}
}

func TestVerifyTouchesOnMatch(t *testing.T) {
	src := "var x: s32 = 1; // expected-error {{unresolved}}\n"
	sv, _ := lexer.Lex("t.swg", []byte(src))
	dirs, _ := Parse(sv)

	d := diag.Diagnostic{ID: "sema.unresolved_identifier", Severity: diag.SeverityError, SrcView: arena.SourceViewRef(1), Tok: arena.TokenRef(0)}
	if !Verify(dirs, d, sv) {
		t.Fatalf("expected Verify to match the directive")
	}
	if !dirs[0].Touched {
		t.Fatalf("expected directive to be marked touched")
	}
	if len(Untouched(dirs)) != 0 {
		t.Fatalf("expected no untouched directives after a match")
	}
}

func TestVerifyLeavesUnmatchedWhenSeverityDiffers(t *testing.T) {
	src := "var x: s32 = 1; // expected-error {{unresolved}}\n"
	sv, _ := lexer.Lex("t.swg", []byte(src))
	dirs, _ := Parse(sv)

	d := diag.Diagnostic{ID: "sema.unresolved_identifier", Severity: diag.SeverityWarning, SrcView: arena.SourceViewRef(1), Tok: arena.TokenRef(0)}
	if Verify(dirs, d, sv) {
		t.Fatalf("expected Verify to reject a severity mismatch")
	}
	if len(Untouched(dirs)) != 1 {
		t.Fatalf("expected the directive to remain untouched")
	}
}
