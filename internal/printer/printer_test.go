package printer_test

import (
	"testing"

	"github.com/swglang/swc/internal/arena"
	"github.com/swglang/swc/internal/ast"
	"github.com/swglang/swc/internal/identpool"
	"github.com/swglang/swc/internal/lexer"
	"github.com/swglang/swc/internal/parser"
	"github.com/swglang/swc/internal/printer"
)

func printSource(t *testing.T, src string, opts printer.Options) string {
	t.Helper()
	sv, lexDiags := lexer.Lex("test.swg", []byte(src))
	if len(lexDiags) > 0 {
		t.Fatalf("unexpected lexer diagnostics: %+v", lexDiags)
	}
	store := ast.NewStore()
	idents := identpool.New()
	root, diags := parser.Parse(store, idents, arena.SourceViewRef(1), sv, 0)
	if len(diags) > 0 {
		t.Fatalf("unexpected parser diagnostics for %q: %+v", src, diags)
	}
	return printer.New(opts).Print(store, idents, sv, root)
}

func detailed() printer.Options {
	return printer.Options{Style: printer.StyleDetailed, IndentWidth: 2, UseSpaces: true}
}

func TestPrintVarDecl(t *testing.T) {
	out := printSource(t, `var x: s32 = 42;`, detailed())
	want := "var x: s32 = 42;\n"
	if out != want {
		t.Fatalf("got %q, want %q", out, want)
	}
}

func TestPrintConstDecl(t *testing.T) {
	out := printSource(t, `const pi: f32 = 3;`, detailed())
	want := "const pi: f32 = 3;\n"
	if out != want {
		t.Fatalf("got %q, want %q", out, want)
	}
}

func TestPrintBinaryExpr(t *testing.T) {
	out := printSource(t, `var x: s32 = 1 + 2 * 3;`, detailed())
	want := "var x: s32 = (1 + (2 * 3));\n"
	if out != want {
		t.Fatalf("got %q, want %q", out, want)
	}
}

func TestPrintUnaryMinus(t *testing.T) {
	out := printSource(t, `var x: s32 = -1;`, detailed())
	want := "var x: s32 = -1;\n"
	if out != want {
		t.Fatalf("got %q, want %q", out, want)
	}
}

func TestPrintIfElse(t *testing.T) {
	out := printSource(t, `func f() { if 1 { return 1; } else { return 2; } }`, detailed())
	want := "func f() {\n  if 1 {\n    return 1;\n  } else {\n    return 2;\n  }\n}\n"
	if out != want {
		t.Fatalf("got %q, want %q", out, want)
	}
}

func TestPrintFuncWithParamsAndReturn(t *testing.T) {
	out := printSource(t, `func add(a: s32, b: s32) -> s32 { return a + b; }`, detailed())
	want := "func add(a: s32, b: s32) -> s32 {\n  return (a + b);\n}\n"
	if out != want {
		t.Fatalf("got %q, want %q", out, want)
	}
}

func TestPrintStructDecl(t *testing.T) {
	out := printSource(t, `struct Point { x: s32; y: s32; }`, detailed())
	want := "struct Point {\n  x: s32;\n  y: s32;\n}\n"
	if out != want {
		t.Fatalf("got %q, want %q", out, want)
	}
}

func TestPrintCompactCollapsesSingleStatementBlock(t *testing.T) {
	opts := printer.Options{Style: printer.StyleCompact, IndentWidth: 2, UseSpaces: true}
	out := printSource(t, `func f() { return 1; }`, opts)
	want := "func f() { return 1; }\n"
	if out != want {
		t.Fatalf("got %q, want %q", out, want)
	}
}

func TestPrintCastForms(t *testing.T) {
	out := printSource(t, `var x: s32 = y as s32;`, detailed())
	want := "var x: s32 = y as s32;\n"
	if out != want {
		t.Fatalf("got %q, want %q", out, want)
	}
}
