package sema

import (
	"testing"

	"github.com/swglang/swc/internal/arena"
	"github.com/swglang/swc/internal/ast"
	"github.com/swglang/swc/internal/constpool"
	"github.com/swglang/swc/internal/symbol"
	"github.com/swglang/swc/internal/token"
)

func TestConstantFolding(t *testing.T) {
	prog, jobs := newTestBed(t)
	src := newTestSource(t)

	lit1 := prog.Ast.MakeNode(0, ast.Node{ID: ast.IntLiteral, TokRef: src.tok(token.IntLiteral, "1")})
	lit2 := prog.Ast.MakeNode(0, ast.Node{ID: ast.IntLiteral, TokRef: src.tok(token.IntLiteral, "2")})
	lit3 := prog.Ast.MakeNode(0, ast.Node{ID: ast.IntLiteral, TokRef: src.tok(token.IntLiteral, "3")})
	mul := prog.Ast.MakeNode(0, ast.Node{ID: ast.BinaryExpr, Op: ast.OpMul, A: lit2, B: lit3})
	add := prog.Ast.MakeNode(0, ast.Node{ID: ast.BinaryExpr, Op: ast.OpAdd, A: lit1, B: mul})
	decl := prog.Ast.MakeNode(0, ast.Node{ID: ast.ConstDecl, Name: prog.Idents.Intern("x"), B: add})
	span2 := prog.Ast.PushSpan([]arena.AstNodeRef{decl})
	root := prog.Ast.MakeNode(0, ast.Node{ID: ast.File, Span2: span2})

	tp := runFile(t, prog, jobs, src, root)

	if prog.Diags.HasErrors() {
		t.Fatalf("unexpected diagnostics: %v", diagIDs(tp))
	}
	sym := tp.file.DeclSymbols[decl]
	if sym == nil || !sym.Reached(symbol.SemaCompleted) {
		t.Fatalf("const decl symbol did not reach SemaCompleted")
	}
	addNode := tp.node(add)
	if !addNode.HasConstant() {
		t.Fatalf("1+2*3 should fold to a constant, node has none")
	}
	v := prog.Consts.MustGet(addNode.Constant)
	if v.Kind != constpool.KindInt || v.Int != 7 {
		t.Fatalf("1+2*3 folded to %+v, want int 7", v)
	}
}

func TestVarDeclLiteralOverflow(t *testing.T) {
	prog, jobs := newTestBed(t)
	src := newTestSource(t)

	typeExpr := prog.Ast.MakeNode(0, ast.Node{ID: ast.TypeExpr, Name: prog.Idents.Intern("s8")})
	lit := prog.Ast.MakeNode(0, ast.Node{ID: ast.IntLiteral, TokRef: src.tok(token.IntLiteral, "200")})
	decl := prog.Ast.MakeNode(0, ast.Node{ID: ast.ConstDecl, Name: prog.Idents.Intern("x"), A: typeExpr, B: lit})
	span2 := prog.Ast.PushSpan([]arena.AstNodeRef{decl})
	root := prog.Ast.MakeNode(0, ast.Node{ID: ast.File, Span2: span2})

	tp := runFile(t, prog, jobs, src, root)

	if !containsID(diagIDs(tp), "sema_err_literal_overflow") {
		t.Fatalf("const x: s8 = 200 should report sema_err_literal_overflow, got %v", diagIDs(tp))
	}
	if !tp.file.HasErrors {
		t.Fatalf("FileCtx.HasErrors should be set once a declaration fails")
	}
}

func TestConstDeclNumberTooBig(t *testing.T) {
	prog, jobs := newTestBed(t)
	src := newTestSource(t)

	// math.MaxUint64 + 1, in hex (spec §8's boundary behavior).
	lit := prog.Ast.MakeNode(0, ast.Node{ID: ast.IntLiteral, TokRef: src.tok(token.IntLiteral, "0x10000000000000000")})
	decl := prog.Ast.MakeNode(0, ast.Node{ID: ast.ConstDecl, Name: prog.Idents.Intern("x"), B: lit})
	span2 := prog.Ast.PushSpan([]arena.AstNodeRef{decl})
	root := prog.Ast.MakeNode(0, ast.Node{ID: ast.File, Span2: span2})

	tp := runFile(t, prog, jobs, src, root)

	if !containsID(diagIDs(tp), "sema_err_number_too_big") {
		t.Fatalf("a literal one past MaxUint64 should report sema_err_number_too_big, got %v", diagIDs(tp))
	}
	if containsID(diagIDs(tp), "sema_err_invalid_literal") {
		t.Fatalf("the too-big boundary case must not also fall back to the generic invalid-literal diagnostic, got %v", diagIDs(tp))
	}
}

func TestVarDeclWideningLiteralOK(t *testing.T) {
	prog, jobs := newTestBed(t)
	src := newTestSource(t)

	typeExpr := prog.Ast.MakeNode(0, ast.Node{ID: ast.TypeExpr, Name: prog.Idents.Intern("s32")})
	lit := prog.Ast.MakeNode(0, ast.Node{ID: ast.IntLiteral, TokRef: src.tok(token.IntLiteral, "42")})
	decl := prog.Ast.MakeNode(0, ast.Node{ID: ast.ConstDecl, Name: prog.Idents.Intern("x"), A: typeExpr, B: lit})
	span2 := prog.Ast.PushSpan([]arena.AstNodeRef{decl})
	root := prog.Ast.MakeNode(0, ast.Node{ID: ast.File, Span2: span2})

	tp := runFile(t, prog, jobs, src, root)

	if prog.Diags.HasErrors() {
		t.Fatalf("an in-range unsized literal into s32 should not error, got %v", diagIDs(tp))
	}
}

// TestBinaryUnsizedLiteralWidensToVariable exercises the evalBinary
// rule-2 path directly: `x + 5` where x is a concrete s32 variable and
// 5 is still an unsized literal must promote to x's type rather than
// failing the promotion-table lookup.
func TestBinaryUnsizedLiteralWidensToVariable(t *testing.T) {
	prog, jobs := newTestBed(t)
	src := newTestSource(t)

	typeExpr := prog.Ast.MakeNode(0, ast.Node{ID: ast.TypeExpr, Name: prog.Idents.Intern("s32")})
	xDecl := prog.Ast.MakeNode(0, ast.Node{ID: ast.VarDecl, Name: prog.Idents.Intern("x"), A: typeExpr})

	xRef := prog.Ast.MakeNode(0, ast.Node{ID: ast.Identifier, Name: prog.Idents.Intern("x")})
	lit5 := prog.Ast.MakeNode(0, ast.Node{ID: ast.IntLiteral, TokRef: src.tok(token.IntLiteral, "5")})
	add := prog.Ast.MakeNode(0, ast.Node{ID: ast.BinaryExpr, Op: ast.OpAdd, A: xRef, B: lit5})
	yDecl := prog.Ast.MakeNode(0, ast.Node{ID: ast.VarDecl, Name: prog.Idents.Intern("y"), B: add})

	span2 := prog.Ast.PushSpan([]arena.AstNodeRef{xDecl, yDecl})
	root := prog.Ast.MakeNode(0, ast.Node{ID: ast.File, Span2: span2})

	tp := runFile(t, prog, jobs, src, root)

	if prog.Diags.HasErrors() {
		t.Fatalf("x + 5 should promote cleanly, got %v", diagIDs(tp))
	}
	addNode := tp.node(add)
	xSym := tp.file.DeclSymbols[xDecl]
	if addNode.Type != xSym.Type {
		t.Fatalf("x + 5 should take x's own (concrete) type, got %v want %v", addNode.Type, xSym.Type)
	}
}

// TestBinaryBitwiseRejectsFloatOperands exercises evalBinary's rule-3
// gate directly: two non-constant f64 operands through `x & y` must
// not silently type-check via Promote's a.ref==b.ref short-circuit —
// bitwise operators require integer operand types.
func TestBinaryBitwiseRejectsFloatOperands(t *testing.T) {
	prog, jobs := newTestBed(t)
	src := newTestSource(t)

	typeExpr := func() arena.AstNodeRef {
		return prog.Ast.MakeNode(0, ast.Node{ID: ast.TypeExpr, Name: prog.Idents.Intern("f64")})
	}
	xDecl := prog.Ast.MakeNode(0, ast.Node{ID: ast.VarDecl, Name: prog.Idents.Intern("x"), A: typeExpr()})
	yDecl := prog.Ast.MakeNode(0, ast.Node{ID: ast.VarDecl, Name: prog.Idents.Intern("y"), A: typeExpr()})

	xRef := prog.Ast.MakeNode(0, ast.Node{ID: ast.Identifier, Name: prog.Idents.Intern("x")})
	yRef := prog.Ast.MakeNode(0, ast.Node{ID: ast.Identifier, Name: prog.Idents.Intern("y")})
	band := prog.Ast.MakeNode(0, ast.Node{ID: ast.BinaryExpr, Op: ast.OpAnd, A: xRef, B: yRef})
	zDecl := prog.Ast.MakeNode(0, ast.Node{ID: ast.VarDecl, Name: prog.Idents.Intern("z"), B: band})

	span2 := prog.Ast.PushSpan([]arena.AstNodeRef{xDecl, yDecl, zDecl})
	root := prog.Ast.MakeNode(0, ast.Node{ID: ast.File, Span2: span2})

	tp := runFile(t, prog, jobs, src, root)

	if !containsID(diagIDs(tp), "sema_err_invalid_operand") {
		t.Fatalf("x & y with float operands should report sema_err_invalid_operand, got %v", diagIDs(tp))
	}
}

// TestBinaryBitwiseAcceptsIntOperands is the positive counterpart:
// two concrete integer operands through `x & y` must still type-check
// and take the promoted integer result type.
func TestBinaryBitwiseAcceptsIntOperands(t *testing.T) {
	prog, jobs := newTestBed(t)
	src := newTestSource(t)

	typeExpr := func() arena.AstNodeRef {
		return prog.Ast.MakeNode(0, ast.Node{ID: ast.TypeExpr, Name: prog.Idents.Intern("s32")})
	}
	xDecl := prog.Ast.MakeNode(0, ast.Node{ID: ast.VarDecl, Name: prog.Idents.Intern("x"), A: typeExpr()})
	yDecl := prog.Ast.MakeNode(0, ast.Node{ID: ast.VarDecl, Name: prog.Idents.Intern("y"), A: typeExpr()})

	xRef := prog.Ast.MakeNode(0, ast.Node{ID: ast.Identifier, Name: prog.Idents.Intern("x")})
	yRef := prog.Ast.MakeNode(0, ast.Node{ID: ast.Identifier, Name: prog.Idents.Intern("y")})
	band := prog.Ast.MakeNode(0, ast.Node{ID: ast.BinaryExpr, Op: ast.OpAnd, A: xRef, B: yRef})
	zDecl := prog.Ast.MakeNode(0, ast.Node{ID: ast.VarDecl, Name: prog.Idents.Intern("z"), B: band})

	span2 := prog.Ast.PushSpan([]arena.AstNodeRef{xDecl, yDecl, zDecl})
	root := prog.Ast.MakeNode(0, ast.Node{ID: ast.File, Span2: span2})

	tp := runFile(t, prog, jobs, src, root)

	if prog.Diags.HasErrors() {
		t.Fatalf("x & y with s32 operands should type-check, got %v", diagIDs(tp))
	}
}

// TestBinaryBitwiseRejectsEnumOperand exercises evalBinary's rule-5
// path: this type system has no "flags capability" modifier on
// EnumDecl and typepool/cast.go already treats enum->int as
// CastExplicit-only, so a raw enum operand through `a & b` must report
// the same diagnostic an implicit enum->int cast would.
func TestBinaryBitwiseRejectsEnumOperand(t *testing.T) {
	prog, jobs := newTestBed(t)
	src := newTestSource(t)

	red := prog.Ast.MakeNode(0, ast.Node{ID: ast.EnumMember, Name: prog.Idents.Intern("Red")})
	green := prog.Ast.MakeNode(0, ast.Node{ID: ast.EnumMember, Name: prog.Idents.Intern("Green")})
	members := prog.Ast.PushSpan([]arena.AstNodeRef{red, green})
	enumDecl := prog.Ast.MakeNode(0, ast.Node{ID: ast.EnumDecl, Name: prog.Idents.Intern("Color"), Span: members})

	colorType := prog.Ast.MakeNode(0, ast.Node{ID: ast.TypeExpr, Name: prog.Idents.Intern("Color")})
	aDecl := prog.Ast.MakeNode(0, ast.Node{ID: ast.VarDecl, Name: prog.Idents.Intern("a"), A: colorType})
	colorType2 := prog.Ast.MakeNode(0, ast.Node{ID: ast.TypeExpr, Name: prog.Idents.Intern("Color")})
	bDecl := prog.Ast.MakeNode(0, ast.Node{ID: ast.VarDecl, Name: prog.Idents.Intern("b"), A: colorType2})

	aRef := prog.Ast.MakeNode(0, ast.Node{ID: ast.Identifier, Name: prog.Idents.Intern("a")})
	bRef := prog.Ast.MakeNode(0, ast.Node{ID: ast.Identifier, Name: prog.Idents.Intern("b")})
	bor := prog.Ast.MakeNode(0, ast.Node{ID: ast.BinaryExpr, Op: ast.OpOr, A: aRef, B: bRef})
	cDecl := prog.Ast.MakeNode(0, ast.Node{ID: ast.VarDecl, Name: prog.Idents.Intern("c"), B: bor})

	span2 := prog.Ast.PushSpan([]arena.AstNodeRef{enumDecl, aDecl, bDecl, cDecl})
	root := prog.Ast.MakeNode(0, ast.Node{ID: ast.File, Span2: span2})

	tp := runFile(t, prog, jobs, src, root)

	if !containsID(diagIDs(tp), "sema_err_cast_enum_implicit") {
		t.Fatalf("a | b with enum operands should report sema_err_cast_enum_implicit, got %v", diagIDs(tp))
	}
}

func TestCrossFileWaitWake(t *testing.T) {
	prog, jobs := newTestBed(t)
	srcA := newTestSource(t)
	srcB := newTestSource(t)

	identB := prog.Ast.MakeNode(0, ast.Node{ID: ast.Identifier, Name: prog.Idents.Intern("b")})
	declA := prog.Ast.MakeNode(0, ast.Node{ID: ast.ConstDecl, Name: prog.Idents.Intern("a"), B: identB})
	spanA := prog.Ast.PushSpan([]arena.AstNodeRef{declA})
	rootA := prog.Ast.MakeNode(0, ast.Node{ID: ast.File, Span2: spanA})

	lit5 := prog.Ast.MakeNode(0, ast.Node{ID: ast.IntLiteral, TokRef: srcB.tok(token.IntLiteral, "5")})
	declB := prog.Ast.MakeNode(0, ast.Node{ID: ast.ConstDecl, Name: prog.Idents.Intern("b"), B: lit5})
	spanB := prog.Ast.PushSpan([]arena.AstNodeRef{declB})
	rootB := prog.Ast.MakeNode(0, ast.Node{ID: ast.File, Span2: spanB})

	tp, ctxs := runFiles(t, prog, jobs,
		testFile{src: srcA, root: rootA},
		testFile{src: srcB, root: rootB},
	)

	if prog.Diags.HasErrors() {
		t.Fatalf("cross-file reference should resolve without error, got %v", diagIDs(tp))
	}
	symA := ctxs[0].DeclSymbols[declA]
	symB := ctxs[1].DeclSymbols[declB]
	if symA == nil || symB == nil {
		t.Fatalf("both declarations should have registered symbols")
	}
	if !symA.Reached(symbol.SemaCompleted) || !symB.Reached(symbol.SemaCompleted) {
		t.Fatalf("both declarations should complete sema: a=%v b=%v", symA.State(), symB.State())
	}
	identNode := tp.node(identB)
	if !identNode.HasSymbol() || identNode.Symbol != symB.Ref {
		t.Fatalf("identifier 'b' in file A should resolve to file B's declared symbol")
	}
}

func TestCyclicConstantDependency(t *testing.T) {
	prog, jobs := newTestBed(t)
	srcA := newTestSource(t)
	srcB := newTestSource(t)

	identB := prog.Ast.MakeNode(0, ast.Node{ID: ast.Identifier, Name: prog.Idents.Intern("b")})
	declA := prog.Ast.MakeNode(0, ast.Node{ID: ast.ConstDecl, Name: prog.Idents.Intern("a"), B: identB})
	spanA := prog.Ast.PushSpan([]arena.AstNodeRef{declA})
	rootA := prog.Ast.MakeNode(0, ast.Node{ID: ast.File, Span2: spanA})

	identA := prog.Ast.MakeNode(0, ast.Node{ID: ast.Identifier, Name: prog.Idents.Intern("a")})
	declB := prog.Ast.MakeNode(0, ast.Node{ID: ast.ConstDecl, Name: prog.Idents.Intern("b"), B: identA})
	spanB := prog.Ast.PushSpan([]arena.AstNodeRef{declB})
	rootB := prog.Ast.MakeNode(0, ast.Node{ID: ast.File, Span2: spanB})

	tp, ctxs := runFiles(t, prog, jobs,
		testFile{src: srcA, root: rootA},
		testFile{src: srcB, root: rootB},
	)
	tp.checkCycles(t)

	ids := diagIDs(tp)
	count := 0
	for _, id := range ids {
		if id == "sema_err_cyclic_dependency" {
			count++
		}
	}
	if count != 1 {
		t.Fatalf("a<->b cycle should report exactly one sema_err_cyclic_dependency, got %d (%v)", count, ids)
	}

	symA := ctxs[0].DeclSymbols[declA]
	symB := ctxs[1].DeclSymbols[declB]
	if symA.State() != symbol.Ignored || symB.State() != symbol.Ignored {
		t.Fatalf("both cycle participants should be marked Ignored: a=%v b=%v", symA.State(), symB.State())
	}
}

func TestStructDeclFieldTypes(t *testing.T) {
	prog, jobs := newTestBed(t)
	src := newTestSource(t)

	fieldType := prog.Ast.MakeNode(0, ast.Node{ID: ast.TypeExpr, Name: prog.Idents.Intern("s32")})
	field := prog.Ast.MakeNode(0, ast.Node{ID: ast.Param, Name: prog.Idents.Intern("x"), A: fieldType})
	members := prog.Ast.PushSpan([]arena.AstNodeRef{field})
	structDecl := prog.Ast.MakeNode(0, ast.Node{ID: ast.StructDecl, Name: prog.Idents.Intern("Point"), Span: members})
	span2 := prog.Ast.PushSpan([]arena.AstNodeRef{structDecl})
	root := prog.Ast.MakeNode(0, ast.Node{ID: ast.File, Span2: span2})

	tp := runFile(t, prog, jobs, src, root)

	if prog.Diags.HasErrors() {
		t.Fatalf("unexpected diagnostics: %v", diagIDs(tp))
	}
	sym := tp.file.DeclSymbols[structDecl]
	if sym == nil || sym.Kind != symbol.KindType {
		t.Fatalf("StructDecl should register a KindType symbol")
	}
	if !sym.Reached(symbol.SemaCompleted) {
		t.Fatalf("struct symbol should reach SemaCompleted, got %v", sym.State())
	}
	info, ok := prog.Types.Get(sym.Type)
	if !ok || len(info.Members) != 1 || info.Members[0].Name != prog.Idents.Intern("x") {
		t.Fatalf("struct TypeInfo should carry one member named x, got %+v", info)
	}
}

func TestEnumMemberOrdinals(t *testing.T) {
	prog, jobs := newTestBed(t)
	src := newTestSource(t)

	red := prog.Ast.MakeNode(0, ast.Node{ID: ast.EnumMember, Name: prog.Idents.Intern("Red")})
	explicitFive := prog.Ast.MakeNode(0, ast.Node{ID: ast.IntLiteral, TokRef: src.tok(token.IntLiteral, "5")})
	green := prog.Ast.MakeNode(0, ast.Node{ID: ast.EnumMember, Name: prog.Idents.Intern("Green"), A: explicitFive})
	blue := prog.Ast.MakeNode(0, ast.Node{ID: ast.EnumMember, Name: prog.Idents.Intern("Blue")})
	members := prog.Ast.PushSpan([]arena.AstNodeRef{red, green, blue})
	enumDecl := prog.Ast.MakeNode(0, ast.Node{ID: ast.EnumDecl, Name: prog.Idents.Intern("Color"), Span: members})
	span2 := prog.Ast.PushSpan([]arena.AstNodeRef{enumDecl})
	root := prog.Ast.MakeNode(0, ast.Node{ID: ast.File, Span2: span2})

	tp := runFile(t, prog, jobs, src, root)

	if prog.Diags.HasErrors() {
		t.Fatalf("unexpected diagnostics: %v", diagIDs(tp))
	}
	ordinalOf := func(n arena.AstNodeRef) int64 {
		node := tp.node(n)
		v := prog.Consts.MustGet(node.Constant)
		if v.Kind != constpool.KindEnumValue {
			t.Fatalf("enum member constant should fold to KindEnumValue, got %v", v.Kind)
		}
		return v.Ordinal
	}
	if got := ordinalOf(red); got != 0 {
		t.Fatalf("Red should default to ordinal 0, got %d", got)
	}
	if got := ordinalOf(green); got != 5 {
		t.Fatalf("Green has an explicit initializer of 5, got %d", got)
	}
	if got := ordinalOf(blue); got != 6 {
		t.Fatalf("Blue should continue from Green's explicit value, got %d", got)
	}
}

func TestAliasDeclResolvesUnderlyingType(t *testing.T) {
	prog, jobs := newTestBed(t)
	src := newTestSource(t)

	underlying := prog.Ast.MakeNode(0, ast.Node{ID: ast.TypeExpr, Name: prog.Idents.Intern("s32")})
	aliasDecl := prog.Ast.MakeNode(0, ast.Node{ID: ast.AliasDecl, Name: prog.Idents.Intern("MyInt"), A: underlying})
	span2 := prog.Ast.PushSpan([]arena.AstNodeRef{aliasDecl})
	root := prog.Ast.MakeNode(0, ast.Node{ID: ast.File, Span2: span2})

	tp := runFile(t, prog, jobs, src, root)

	if prog.Diags.HasErrors() {
		t.Fatalf("unexpected diagnostics: %v", diagIDs(tp))
	}
	sym := tp.file.DeclSymbols[aliasDecl]
	if sym == nil || !sym.Reached(symbol.SemaCompleted) {
		t.Fatalf("alias symbol should reach SemaCompleted")
	}
	s32 := prog.Types.WellKnown(32, true, false)
	if prog.Types.Underlying(sym.Type) != s32 {
		t.Fatalf("alias MyInt should resolve (via Underlying) to s32")
	}
	if sym.Type == s32 {
		t.Fatalf("the alias's own TypeRef should be distinct from its underlying type")
	}
}
