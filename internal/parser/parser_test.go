package parser

import (
	"testing"

	"github.com/swglang/swc/internal/arena"
	"github.com/swglang/swc/internal/ast"
	"github.com/swglang/swc/internal/identpool"
	"github.com/swglang/swc/internal/lexer"
)

// parseSource lexes and parses src in one step, failing the test if
// the lexer itself reports a diagnostic (a lexer bug, not something
// this package's tests are meant to exercise).
func parseSource(t *testing.T, src string) (*ast.Store, ast.Node, arena.AstNodeRef) {
	t.Helper()
	sv, lexDiags := lexer.Lex("test.swg", []byte(src))
	if len(lexDiags) > 0 {
		t.Fatalf("unexpected lexer diagnostics: %+v", lexDiags)
	}
	store := ast.NewStore()
	idents := identpool.New()
	root, diags := Parse(store, idents, arena.SourceViewRef(1), sv, 0)
	if len(diags) > 0 {
		t.Fatalf("unexpected parser diagnostics for %q: %+v", src, diags)
	}
	return store, store.MustNode(root), root
}

func TestParseVarDeclWithTypeAndInit(t *testing.T) {
	store, file, _ := parseSource(t, `var x: s32 = 42;`)
	decls := store.Children(file)
	if len(decls) != 1 {
		t.Fatalf("expected 1 top-level decl, got %d", len(decls))
	}
	v := store.MustNode(decls[0])
	if v.ID != ast.VarDecl {
		t.Fatalf("expected VarDecl, got %v", v.ID)
	}
	if v.A.Invalid() || v.B.Invalid() {
		t.Fatalf("expected both type expr and initializer present")
	}
	typeExpr := store.MustNode(v.A)
	if typeExpr.ID != ast.TypeExpr {
		t.Fatalf("expected TypeExpr child, got %v", typeExpr.ID)
	}
	init := store.MustNode(v.B)
	if init.ID != ast.IntLiteral {
		t.Fatalf("expected IntLiteral initializer, got %v", init.ID)
	}
}

func TestParseConstDeclInferredType(t *testing.T) {
	store, file, _ := parseSource(t, `const pi = 3.5;`)
	decls := store.Children(file)
	c := store.MustNode(decls[0])
	if c.ID != ast.ConstDecl {
		t.Fatalf("expected ConstDecl, got %v", c.ID)
	}
	if !c.A.Invalid() {
		t.Fatalf("expected no explicit type expr")
	}
	if store.MustNode(c.B).ID != ast.FloatLiteral {
		t.Fatalf("expected float literal initializer")
	}
}

func TestParseFuncDeclWithParamsAndReturn(t *testing.T) {
	store, file, _ := parseSource(t, `
func add(a: s32, b: s32) -> s32 {
	return a + b;
}
`)
	decls := store.Children(file)
	fn := store.MustNode(decls[0])
	if fn.ID != ast.FuncDecl {
		t.Fatalf("expected FuncDecl, got %v", fn.ID)
	}
	params := store.Span(fn.Span)
	if len(params) != 2 {
		t.Fatalf("expected 2 params, got %d", len(params))
	}
	if fn.A.Invalid() {
		t.Fatalf("expected a return type expr")
	}
	body := store.MustNode(fn.B)
	if body.ID != ast.Block {
		t.Fatalf("expected Block body, got %v", body.ID)
	}
	stmts := store.Span(body.Span)
	if len(stmts) != 1 || store.MustNode(stmts[0]).ID != ast.ReturnStmt {
		t.Fatalf("expected a single ReturnStmt, got %+v", stmts)
	}
	ret := store.MustNode(stmts[0])
	if ret.A.Invalid() {
		t.Fatalf("expected a return value")
	}
	if store.MustNode(ret.A).ID != ast.BinaryExpr {
		t.Fatalf("expected a + b to parse as BinaryExpr")
	}
}

func TestParseIfElse(t *testing.T) {
	store, file, _ := parseSource(t, `
func f() {
	if x > 0 {
		return x;
	} else if x < 0 {
		return 0 - x;
	} else {
		return 0;
	}
}
`)
	fn := store.MustNode(store.Children(file)[0])
	body := store.MustNode(fn.B)
	stmts := store.Span(body.Span)
	ifStmt := store.MustNode(stmts[0])
	if ifStmt.ID != ast.IfStmt {
		t.Fatalf("expected IfStmt, got %v", ifStmt.ID)
	}
	if ifStmt.A.Invalid() || ifStmt.B.Invalid() || ifStmt.C.Invalid() {
		t.Fatalf("expected cond/then/else all present")
	}
	elseIf := store.MustNode(ifStmt.C)
	if elseIf.ID != ast.IfStmt {
		t.Fatalf("expected chained else-if, got %v", elseIf.ID)
	}
}

func TestParseForLoopSplicesBodyIntoSpan2(t *testing.T) {
	store, file, _ := parseSource(t, `
func f() {
	for (var i = 0; i < 10; i = i + 1) {
		continue;
	}
}
`)
	fn := store.MustNode(store.Children(file)[0])
	body := store.MustNode(fn.B)
	forStmt := store.MustNode(store.Span(body.Span)[0])
	if forStmt.ID != ast.ForStmt {
		t.Fatalf("expected ForStmt, got %v", forStmt.ID)
	}
	if forStmt.A.Invalid() || forStmt.B.Invalid() || forStmt.C.Invalid() {
		t.Fatalf("expected init/cond/post all present")
	}
	body2 := store.Span(forStmt.Span2)
	if len(body2) != 1 || store.MustNode(body2[0]).ID != ast.ContinueStmt {
		t.Fatalf("expected for-body spliced directly into Span2, got %+v", body2)
	}
}

func TestParseStructDecl(t *testing.T) {
	store, file, _ := parseSource(t, `
struct Point {
	x: s32;
	y: s32;
}
`)
	s := store.MustNode(store.Children(file)[0])
	if s.ID != ast.StructDecl {
		t.Fatalf("expected StructDecl, got %v", s.ID)
	}
	members := store.Span(s.Span)
	if len(members) != 2 {
		t.Fatalf("expected 2 fields, got %d", len(members))
	}
	for _, m := range members {
		if store.MustNode(m).ID != ast.Param {
			t.Fatalf("expected struct fields to be Param-shaped")
		}
	}
}

func TestParseEnumDeclWithExplicitOrdinal(t *testing.T) {
	store, file, _ := parseSource(t, `
enum Color {
	Red,
	Green = 5,
	Blue,
}
`)
	e := store.MustNode(store.Children(file)[0])
	if e.ID != ast.EnumDecl {
		t.Fatalf("expected EnumDecl, got %v", e.ID)
	}
	members := store.Span(e.Span)
	if len(members) != 3 {
		t.Fatalf("expected 3 members, got %d", len(members))
	}
	green := store.MustNode(members[1])
	if green.A.Invalid() {
		t.Fatalf("expected Green to have an explicit value expr")
	}
	red := store.MustNode(members[0])
	if !red.A.Invalid() {
		t.Fatalf("expected Red to have no explicit value expr")
	}
}

func TestParseCompilerIfDecl(t *testing.T) {
	store, file, _ := parseSource(t, `
#if debug
const level = 1;
#else
const level = 0;
#endif
`)
	ifDecl := store.MustNode(store.Children(file)[0])
	if ifDecl.ID != ast.CompilerIfDecl {
		t.Fatalf("expected CompilerIfDecl, got %v", ifDecl.ID)
	}
	if ifDecl.A.Invalid() || ifDecl.B.Invalid() || ifDecl.C.Invalid() {
		t.Fatalf("expected condition, then-arm, and else-arm all present")
	}
	thenArm := store.MustNode(ifDecl.B)
	if thenArm.ID != ast.Block {
		t.Fatalf("expected then-arm to be a Block, got %v", thenArm.ID)
	}
	if len(store.Span(thenArm.Span)) != 1 {
		t.Fatalf("expected exactly one declaration in the then-arm")
	}
}

func TestParseIntrinsicSizeof(t *testing.T) {
	store, file, _ := parseSource(t, `const n = @sizeof(s32);`)
	c := store.MustNode(store.Children(file)[0])
	init := store.MustNode(c.B)
	if init.ID != ast.IntrinsicExpr {
		t.Fatalf("expected IntrinsicExpr, got %v", init.ID)
	}
	if init.A.Invalid() {
		t.Fatalf("expected @sizeof's type argument to be present")
	}
	if store.MustNode(init.A).ID != ast.TypeExpr {
		t.Fatalf("expected @sizeof's argument to be a TypeExpr")
	}
	// Regression: IntrinsicExpr must be reachable from Children, or
	// the argument node is invisible to the visitor/sema.
	kids := store.Children(init)
	if len(kids) != 1 {
		t.Fatalf("expected IntrinsicExpr to expose its operand as a child, got %d", len(kids))
	}
}

func TestParseCastAndWrap(t *testing.T) {
	store, file, _ := parseSource(t, `
func f(a: s32) {
	var b = a as u8;
	var c = #wrap(a + a);
}
`)
	fn := store.MustNode(store.Children(file)[0])
	body := store.MustNode(fn.B)
	stmts := store.Span(body.Span)

	b := store.MustNode(stmts[0])
	bInit := store.MustNode(b.B)
	if bInit.ID != ast.CastExpr {
		t.Fatalf("expected `as` to produce CastExpr, got %v", bInit.ID)
	}
	if bInit.Modifier != ast.ModNone {
		t.Fatalf("expected plain `as` cast to carry ModNone, got %v", bInit.Modifier)
	}

	c := store.MustNode(stmts[1])
	cInit := store.MustNode(c.B)
	if cInit.ID != ast.CastExpr || cInit.Modifier != ast.ModWrap {
		t.Fatalf("expected #wrap(...) to produce a CastExpr tagged ModWrap, got %v/%v", cInit.ID, cInit.Modifier)
	}
}

func TestParseAggregateLiteral(t *testing.T) {
	store, file, _ := parseSource(t, `const p = Point{1, 2};`)
	c := store.MustNode(store.Children(file)[0])
	lit := store.MustNode(c.B)
	if lit.ID != ast.AggregateLiteral {
		t.Fatalf("expected AggregateLiteral, got %v", lit.ID)
	}
	if len(store.Span(lit.Span)) != 2 {
		t.Fatalf("expected 2 elements")
	}
}

func TestParseMemberCallIndexChain(t *testing.T) {
	store, file, _ := parseSource(t, `
func f(a: s32) {
	var x = a.b(1)[2];
}
`)
	fn := store.MustNode(store.Children(file)[0])
	body := store.MustNode(fn.B)
	v := store.MustNode(store.Span(body.Span)[0])
	idx := store.MustNode(v.B)
	if idx.ID != ast.IndexExpr {
		t.Fatalf("expected outermost IndexExpr, got %v", idx.ID)
	}
	call := store.MustNode(idx.A)
	if call.ID != ast.CallExpr {
		t.Fatalf("expected CallExpr under index, got %v", call.ID)
	}
	member := store.MustNode(call.A)
	if member.ID != ast.MemberExpr {
		t.Fatalf("expected MemberExpr under call, got %v", member.ID)
	}
}

func TestParseSwitchStmt(t *testing.T) {
	store, file, _ := parseSource(t, `
func f(a: s32) {
	switch a {
	case 1, 2:
		return;
	default:
		return;
	}
}
`)
	fn := store.MustNode(store.Children(file)[0])
	body := store.MustNode(fn.B)
	sw := store.MustNode(store.Span(body.Span)[0])
	if sw.ID != ast.SwitchStmt {
		t.Fatalf("expected SwitchStmt, got %v", sw.ID)
	}
	cases := store.Span(sw.Span)
	if len(cases) != 1 {
		t.Fatalf("expected 1 case branch, got %d", len(cases))
	}
	branch := store.MustNode(cases[0])
	if len(store.Span(branch.Span)) != 2 {
		t.Fatalf("expected 2 match values on the case branch")
	}
	if sw.B.Invalid() {
		t.Fatalf("expected a default arm")
	}
}

func TestParseAccessModifier(t *testing.T) {
	store, file, _ := parseSource(t, `private const secret = 1;`)
	c := store.MustNode(store.Children(file)[0])
	if c.Access != uint8(2) { // symbol.AccessPrivate
		t.Fatalf("expected Access to record AccessPrivate, got %d", c.Access)
	}
}

func TestParseRecoversFromUnexpectedToken(t *testing.T) {
	sv, _ := lexer.Lex("test.swg", []byte("} const x = 1;"))
	store := ast.NewStore()
	idents := identpool.New()
	root, diags := Parse(store, idents, arena.SourceViewRef(1), sv, 0)
	if len(diags) == 0 {
		t.Fatalf("expected at least one diagnostic for the stray '}'")
	}
	file := store.MustNode(root)
	decls := store.Children(file)
	if len(decls) != 1 || store.MustNode(decls[0]).ID != ast.ConstDecl {
		t.Fatalf("expected the parser to recover and still parse the const decl, got %+v", decls)
	}
}
