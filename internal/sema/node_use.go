package sema

import (
	"github.com/swglang/swc/internal/arena"
	"github.com/swglang/swc/internal/ast"
	"github.com/swglang/swc/internal/constpool"
	"github.com/swglang/swc/internal/diag"
	"github.com/swglang/swc/internal/job"
	"github.com/swglang/swc/internal/symbol"
	"github.com/swglang/swc/internal/typepool"
)

// postNodeUse is the use-pass post_node dispatch: identifier/cast/type
// resolution, binary-family evaluation, and the nodes that finalize a
// declaration once its children are resolved (spec §4.4).
func (p *pass) postNodeUse(n arena.AstNodeRef, node ast.Node) ast.Intent {
	switch node.ID {
	case ast.Identifier:
		return p.resolveIdentifier(n, node)
	case ast.TypeExpr:
		return p.resolveTypeExprNode(n, node)
	case ast.UnaryExpr:
		return p.evalUnary(n, node)
	case ast.BinaryExpr:
		return p.evalBinary(n, node)
	case ast.LogicalExpr:
		return p.evalLogical(n, node)
	case ast.RelationalExpr:
		return p.evalRelational(n, node)
	case ast.CastExpr:
		return p.evalCast(n, node)
	case ast.Param:
		return p.finishParam(n, node)
	case ast.VarDecl, ast.ConstDecl:
		return p.finishVarDecl(n, node)
	case ast.FuncDecl:
		return p.finishFuncDecl(n, node)
	case ast.NamespaceDecl:
		return p.finishNamespace(n, node)
	case ast.StructDecl:
		return p.finishAggregateDecl(n, node, typepool.AggregateStruct)
	case ast.UnionDecl:
		return p.finishAggregateDecl(n, node, typepool.AggregateUnion)
	case ast.InterfaceDecl:
		return p.finishAggregateDecl(n, node, typepool.AggregateInterface)
	case ast.EnumDecl:
		return p.finishEnumDecl(n, node)
	case ast.EnumMember:
		return p.finishEnumMember(n, node)
	case ast.AliasDecl:
		return p.finishAliasDecl(n, node)
	case ast.CompilerIfDecl:
		return p.resolveCompilerIf(n, node)
	}
	return ast.Continue
}

// suppressed reports whether a node already failed or was withdrawn,
// so dependents can skip re-reporting a cascade of the same error
// (spec §6.2 "one diagnostic per root cause").
func suppressed(n ast.Node) bool {
	return n.Flags.Has(ast.FlagHasErrors) || n.Flags.Has(ast.FlagIgnored)
}

func (p *pass) markNodeError(n arena.AstNodeRef) {
	p.prog.Ast.Mutate(n, func(nd *ast.Node) { nd.Flags |= ast.FlagHasErrors })
	p.file.HasErrors = true
}

func (p *pass) reportDiag(n arena.AstNodeRef, id string) {
	node := p.prog.Ast.MustNode(n)
	p.prog.Diags.Report(diag.New(id, diag.SeverityError, p.file.SrcViewRef, node.TokRef))
}

// typeOf resolves a node's effective type through whichever of
// Type/Symbol/Constant it carries (spec §8's mutually-exclusive
// post_node outcome) — callers that need "the type of this operand"
// shouldn't care which form produced it.
func (p *pass) typeOf(node ast.Node) arena.TypeRef {
	if node.HasType() {
		return node.Type
	}
	if node.HasSymbol() {
		if sym := p.prog.Symbols.Get(node.Symbol); sym != nil {
			return sym.Type
		}
		return 0
	}
	if node.HasConstant() {
		v, ok := p.prog.Consts.Get(node.Constant)
		if !ok {
			return 0
		}
		return p.typeOfConstant(v)
	}
	return 0
}

// typeOfConstant reports an int/float constant's type as Unsized
// (width/signedness not yet fixed) when the constant itself still is
// one — an unconcretized literal — so a downstream cast or binary
// partner can widen it to whatever concrete type it meets (spec §4.2
// rule 2), rather than baking in an arbitrary s32/f64 default that
// would make every narrowing check fire on the literal's own type
// instead of deferring to the value-dependent FoldCast/promotion path.
func (p *pass) typeOfConstant(v constpool.Value) arena.TypeRef {
	switch v.Kind {
	case constpool.KindBool:
		return p.prog.Types.BoolRef()
	case constpool.KindInt:
		return p.prog.Types.Add(typepool.Int(32, !v.Unsigned, v.Unsized))
	case constpool.KindFloat:
		return p.prog.Types.Add(typepool.Float(64, v.Unsized))
	case constpool.KindString:
		return p.prog.Types.StringRef()
	case constpool.KindChar:
		return p.prog.Types.CharRef()
	case constpool.KindEnumValue:
		return v.EnumType
	}
	return 0
}

// currentOwnerSymbol returns the symbol the innermost active frame
// belongs to — the "who is waiting" half of a cycle-detector edge
// (spec §4.3).
func (p *pass) currentOwnerSymbol() *symbol.Symbol {
	for i := len(p.frames) - 1; i >= 0; i-- {
		if p.frames[i].Owner != nil {
			return p.frames[i].Owner
		}
	}
	return nil
}

// pauseOnIdentifier arms the job's wait fields and registers it
// against prog.identWaiters, then always reports ast.Pause — the
// registration and the actual job.Result (Sleep vs Pause) are decided
// by Program, but the job manager treats both identically, so the
// hook doesn't need to know which one it got (spec §4.3/§5).
func (p *pass) pauseOnIdentifier(node ast.Node, name arena.IdentifierRef) ast.Intent {
	p.j.WaitKind = job.WaitIdentifier
	p.j.IdentName = name
	p.j.SrcView = p.file.SrcViewRef
	p.j.Tok = node.TokRef
	p.j.WaiterSymbol = p.currentOwnerSymbol()
	p.prog.waitForIdentifier(p.j, name)
	return ast.Pause
}

func (p *pass) pauseOnSymbolState(node ast.Node, sym *symbol.Symbol, target symbol.State, kind job.WaitKind) ast.Intent {
	p.j.WaitKind = kind
	p.j.AwaitedSymbol = sym
	p.j.SrcView = p.file.SrcViewRef
	p.j.Tok = node.TokRef
	p.j.WaiterSymbol = p.currentOwnerSymbol()
	p.prog.waitForSymbolState(p.j, sym, target)
	return ast.Pause
}

// resolveIdentifier implements spec §4.4's identifier resolution:
// nearest-enclosing-scope lookup, parking on WaitIdentifier if nothing
// is declared by that name yet anywhere visible, or on WaitTyped if
// the symbol exists but hasn't reached Typed.
func (p *pass) resolveIdentifier(n arena.AstNodeRef, node ast.Node) ast.Intent {
	if node.HasSymbol() {
		return ast.Continue // already resolved on an earlier re-entry
	}
	syms := p.currentScope().Resolve(node.Name)
	if len(syms) == 0 {
		return p.pauseOnIdentifier(node, node.Name)
	}
	sym := syms[len(syms)-1] // nearest declaration of this name wins a shadow

	if sym.State() == symbol.Ignored {
		p.prog.Ast.Mutate(n, func(nd *ast.Node) {
			nd.Symbol = sym.Ref
			nd.Flags |= ast.FlagIgnored
		})
		return ast.Continue
	}
	if !sym.Reached(symbol.Typed) {
		return p.pauseOnSymbolState(node, sym, symbol.Typed, job.WaitTyped)
	}

	p.prog.Ast.Mutate(n, func(nd *ast.Node) {
		nd.Symbol = sym.Ref
		nd.Flags |= ast.FlagValue
		if sym.Kind == symbol.KindVariable {
			nd.Flags |= ast.FlagLValue
		}
	})
	return ast.Continue
}

// evalUnary folds a constant operand directly (negate/bitwise-complement
// on numerics, logical-not on bool), or else propagates the operand's
// type unchanged.
func (p *pass) evalUnary(n arena.AstNodeRef, node ast.Node) ast.Intent {
	aNode := p.prog.Ast.MustNode(node.A)
	if suppressed(aNode) {
		p.markNodeError(n)
		return ast.Continue
	}

	if aNode.HasConstant() {
		v := p.prog.Consts.MustGet(aNode.Constant)
		var r constpool.Value
		switch v.Kind {
		case constpool.KindBool:
			r = constpool.Bool(!v.Bool)
		case constpool.KindInt:
			if node.Op == ast.OpXor {
				r = constpool.Int(^v.Int, v.Unsigned, v.Unsized)
			} else {
				r = constpool.Int(-v.Int, false, v.Unsized)
			}
		case constpool.KindFloat:
			r = constpool.Float(-v.Float, v.Unsized)
		default:
			p.reportDiag(n, "sema_err_invalid_operand")
			p.markNodeError(n)
			return ast.Continue
		}
		ref := p.prog.Consts.Add(r)
		p.prog.Ast.Mutate(n, func(nd *ast.Node) { nd.Constant = ref; nd.Flags |= ast.FlagValue })
		return ast.Continue
	}

	t := p.typeOf(aNode)
	if t.Invalid() {
		p.reportDiag(n, "sema_err_invalid_operand")
		p.markNodeError(n)
		return ast.Continue
	}
	p.prog.Ast.Mutate(n, func(nd *ast.Node) { nd.Type = t; nd.Flags |= ast.FlagValue })
	return ast.Continue
}

// evalBinary folds arithmetic/bitwise/shift expressions when both
// operands are constants (spec §4.4 rule 6), or else computes the
// promoted result type over the operand types (rules 1-3).
func (p *pass) evalBinary(n arena.AstNodeRef, node ast.Node) ast.Intent {
	aNode := p.prog.Ast.MustNode(node.A)
	bNode := p.prog.Ast.MustNode(node.B)
	if suppressed(aNode) || suppressed(bNode) {
		p.markNodeError(n)
		return ast.Continue
	}

	wrap := node.Modifier == ast.ModWrap
	if aNode.HasConstant() && bNode.HasConstant() {
		av := p.prog.Consts.MustGet(aNode.Constant)
		bv := p.prog.Consts.MustGet(bNode.Constant)
		result, outcome := constpool.FoldBinaryArith(p.prog.Consts, node.Op.String(), av, bv, wrap)
		if !outcome.OK {
			p.reportDiag(n, outcome.DiagnosticID)
			p.markNodeError(n)
			return ast.Continue
		}
		ref := p.prog.Consts.Add(result)
		p.prog.Ast.Mutate(n, func(nd *ast.Node) { nd.Constant = ref; nd.Flags |= ast.FlagValue })
		return ast.Continue
	}

	aType, bType := p.typeOf(aNode), p.typeOf(bNode)
	if aType.Invalid() || bType.Invalid() {
		p.reportDiag(n, "sema_err_invalid_operand")
		p.markNodeError(n)
		return ast.Continue
	}

	if node.Op == ast.OpConcat {
		if p.isStringType(aType) && p.isStringType(bType) {
			p.prog.Ast.Mutate(n, func(nd *ast.Node) { nd.Type = p.prog.Types.StringRef(); nd.Flags |= ast.FlagValue })
			return ast.Continue
		}
		p.reportDiag(n, "sema_err_invalid_operand")
		p.markNodeError(n)
		return ast.Continue
	}

	// Rule 3: `& | ^ >> <<` require integer operand types. Rule 5: an
	// enum operand would need "flags capability" to participate
	// directly, or else convert to its underlying integer type — this
	// type system has neither: no EnumDecl modifier grants flags
	// capability, and typepool/cast.go already treats enum->int as
	// CastExplicit-only, never implicit (sema_err_cast_enum_implicit).
	// So a raw enum operand here always takes rule 5's error branch,
	// reusing that same cast diagnostic rather than inventing a second
	// one for what is the same underlying restriction.
	if node.Op.IsBitwiseFamily() {
		aKind, _ := p.bitwiseOperandKind(aType)
		bKind, _ := p.bitwiseOperandKind(bType)
		if aKind == typepool.KindEnum || bKind == typepool.KindEnum {
			p.reportDiag(n, "sema_err_cast_enum_implicit")
			p.markNodeError(n)
			return ast.Continue
		}
		if aKind != typepool.KindInt || bKind != typepool.KindInt {
			p.reportDiag(n, "sema_err_invalid_operand")
			p.markNodeError(n)
			return ast.Continue
		}
	}

	// Rule 2: an unsized literal operand widens to match a concrete
	// numeric partner directly, without consulting the promotion table
	// (which only knows pairs of already-concrete types; see
	// typepool.Pool.Promote's own doc comment).
	aInfo, aKnown := p.prog.Types.Get(aType)
	bInfo, bKnown := p.prog.Types.Get(bType)
	switch {
	case aKnown && bKnown && aInfo.Unsized && !bInfo.Unsized:
		p.prog.Ast.Mutate(n, func(nd *ast.Node) { nd.Type = bType; nd.Flags |= ast.FlagValue })
		return ast.Continue
	case aKnown && bKnown && bInfo.Unsized && !aInfo.Unsized:
		p.prog.Ast.Mutate(n, func(nd *ast.Node) { nd.Type = aType; nd.Flags |= ast.FlagValue })
		return ast.Continue
	}

	result, ok := p.prog.Types.Promote(aType, bType)
	if !ok {
		p.reportDiag(n, "sema_err_invalid_operand")
		p.markNodeError(n)
		return ast.Continue
	}
	p.prog.Ast.Mutate(n, func(nd *ast.Node) { nd.Type = result; nd.Flags |= ast.FlagValue })
	return ast.Continue
}

func (p *pass) isStringType(t arena.TypeRef) bool {
	info, ok := p.prog.Types.Get(t)
	return ok && info.Kind == typepool.KindString
}

// bitwiseOperandKind resolves t through any alias chain (typepool.Pool's
// Underlying) and reports the resulting Kind — used by evalBinary's
// bitwise-family gate, since an unsized int literal's TypeInfo (built
// by typeOfConstant) is still KindInt even though it isn't one of the
// promotion table's fixed concrete slots.
func (p *pass) bitwiseOperandKind(t arena.TypeRef) (typepool.Kind, bool) {
	info, ok := p.prog.Types.Get(p.prog.Types.Underlying(t))
	if !ok {
		return typepool.KindInvalid, false
	}
	return info.Kind, true
}

func (p *pass) evalLogical(n arena.AstNodeRef, node ast.Node) ast.Intent {
	aNode := p.prog.Ast.MustNode(node.A)
	bNode := p.prog.Ast.MustNode(node.B)
	if suppressed(aNode) || suppressed(bNode) {
		p.markNodeError(n)
		return ast.Continue
	}

	if aNode.HasConstant() && bNode.HasConstant() {
		av := p.prog.Consts.MustGet(aNode.Constant)
		bv := p.prog.Consts.MustGet(bNode.Constant)
		if av.Kind != constpool.KindBool || bv.Kind != constpool.KindBool {
			p.reportDiag(n, "sema_err_invalid_operand")
			p.markNodeError(n)
			return ast.Continue
		}
		var r bool
		if node.Op == ast.OpLogAnd {
			r = av.Bool && bv.Bool
		} else {
			r = av.Bool || bv.Bool
		}
		ref := p.prog.Consts.Add(constpool.Bool(r))
		p.prog.Ast.Mutate(n, func(nd *ast.Node) { nd.Constant = ref; nd.Flags |= ast.FlagValue })
		return ast.Continue
	}

	p.prog.Ast.Mutate(n, func(nd *ast.Node) { nd.Type = p.prog.Types.BoolRef(); nd.Flags |= ast.FlagValue })
	return ast.Continue
}

func (p *pass) evalRelational(n arena.AstNodeRef, node ast.Node) ast.Intent {
	aNode := p.prog.Ast.MustNode(node.A)
	bNode := p.prog.Ast.MustNode(node.B)
	if suppressed(aNode) || suppressed(bNode) {
		p.markNodeError(n)
		return ast.Continue
	}

	if aNode.HasConstant() && bNode.HasConstant() {
		av := p.prog.Consts.MustGet(aNode.Constant)
		bv := p.prog.Consts.MustGet(bNode.Constant)
		r, ok := compareConstants(node.Op, av, bv)
		if !ok {
			p.reportDiag(n, "sema_err_invalid_operand")
			p.markNodeError(n)
			return ast.Continue
		}
		ref := p.prog.Consts.Add(constpool.Bool(r))
		p.prog.Ast.Mutate(n, func(nd *ast.Node) { nd.Constant = ref; nd.Flags |= ast.FlagValue })
		return ast.Continue
	}

	p.prog.Ast.Mutate(n, func(nd *ast.Node) { nd.Type = p.prog.Types.BoolRef(); nd.Flags |= ast.FlagValue })
	return ast.Continue
}

func compareConstants(op ast.BinaryOp, a, b constpool.Value) (bool, bool) {
	switch {
	case a.Kind == constpool.KindFloat || b.Kind == constpool.KindFloat:
		return compareOrdered(op, asFloatValue(a), asFloatValue(b)), true
	case a.Kind == constpool.KindInt && b.Kind == constpool.KindInt:
		return compareOrdered(op, float64(a.Int), float64(b.Int)), true
	case a.Kind == constpool.KindString && b.Kind == constpool.KindString:
		return compareStrings(op, a.Str, b.Str), true
	case a.Kind == constpool.KindBool && b.Kind == constpool.KindBool:
		switch op {
		case ast.OpEq:
			return a.Bool == b.Bool, true
		case ast.OpNe:
			return a.Bool != b.Bool, true
		}
	}
	return false, false
}

func asFloatValue(v constpool.Value) float64 {
	if v.Kind == constpool.KindFloat {
		return v.Float
	}
	if v.Unsigned {
		return float64(uint64(v.Int))
	}
	return float64(v.Int)
}

func compareOrdered(op ast.BinaryOp, a, b float64) bool {
	switch op {
	case ast.OpEq:
		return a == b
	case ast.OpNe:
		return a != b
	case ast.OpLt:
		return a < b
	case ast.OpLe:
		return a <= b
	case ast.OpGt:
		return a > b
	case ast.OpGe:
		return a >= b
	}
	return false
}

func compareStrings(op ast.BinaryOp, a, b string) bool {
	switch op {
	case ast.OpEq:
		return a == b
	case ast.OpNe:
		return a != b
	case ast.OpLt:
		return a < b
	case ast.OpLe:
		return a <= b
	case ast.OpGt:
		return a > b
	case ast.OpGe:
		return a >= b
	}
	return false
}

// evalCast resolves the destination type named by node.Name (a builtin
// scalar or a user type symbol), checks legality via CastAllowed, and
// folds the constant through FoldCast when the legality genuinely
// depends on the operand's value (spec §4.2).
func (p *pass) evalCast(n arena.AstNodeRef, node ast.Node) ast.Intent {
	aNode := p.prog.Ast.MustNode(node.A)
	if suppressed(aNode) {
		p.markNodeError(n)
		return ast.Continue
	}

	dst, resolved := p.builtinType(node.Name)
	if !resolved {
		syms := p.currentScope().Resolve(node.Name)
		if len(syms) == 0 {
			return p.pauseOnIdentifier(node, node.Name)
		}
		sym := syms[len(syms)-1]
		if sym.Kind != symbol.KindType {
			p.reportDiag(n, "sema_err_cast_target_not_type")
			p.markNodeError(n)
			return ast.Continue
		}
		if !sym.Reached(symbol.Typed) {
			return p.pauseOnSymbolState(node, sym, symbol.Typed, job.WaitTyped)
		}
		dst = sym.Type
	}

	srcType := p.typeOf(aNode)
	if srcType.Invalid() {
		p.reportDiag(n, "sema_err_invalid_operand")
		p.markNodeError(n)
		return ast.Continue
	}

	var flags typepool.CastFlags
	if node.Modifier == ast.ModWrap {
		flags |= typepool.FlagWrap
	}
	result := p.prog.Types.CastAllowed(srcType, dst, typepool.CastExplicit, flags)
	switch result.Outcome {
	case typepool.CastFail:
		p.reportDiag(n, result.Failure.DiagnosticID)
		p.markNodeError(n)
		return ast.Continue
	case typepool.CastRequiresConstantCheck:
		if aNode.HasConstant() {
			folded, outcome := constpool.FoldCast(p.prog.Types, p.prog.Consts, aNode.Constant, dst, flags)
			if !outcome.OK {
				p.reportDiag(n, outcome.DiagnosticID)
				p.markNodeError(n)
				return ast.Continue
			}
			p.prog.Ast.Mutate(n, func(nd *ast.Node) { nd.Constant = folded; nd.Flags |= ast.FlagValue })
			return ast.Continue
		}
	}
	p.prog.Ast.Mutate(n, func(nd *ast.Node) { nd.Type = dst; nd.Flags |= ast.FlagValue })
	return ast.Continue
}

// finishParam binds a parameter's symbol to its resolved type-expr
// child once the use pass reaches the Param's own post_node.
func (p *pass) finishParam(n arena.AstNodeRef, node ast.Node) ast.Intent {
	pvar := p.file.DeclSymbols[n]
	if pvar == nil {
		return ast.Continue
	}
	t := p.prog.Types.VoidRef()
	if !node.A.Invalid() {
		aNode := p.prog.Ast.MustNode(node.A)
		if !suppressed(aNode) && !aNode.Type.Invalid() {
			t = aNode.Type
		}
	}
	pvar.Type = t
	p.prog.advanceSymbol(pvar, symbol.Typed)
	p.prog.advanceSymbol(pvar, symbol.SemaCompleted)
	return ast.Continue
}

// finishVarDecl resolves the declared type (explicit or inferred from
// the initializer), checks the initializer's cast legality against it,
// and advances the symbol to SemaCompleted (spec §4.4 Declarations).
func (p *pass) finishVarDecl(n arena.AstNodeRef, node ast.Node) ast.Intent {
	sym := p.file.DeclSymbols[n]
	if sym == nil {
		return ast.Continue
	}

	var declaredType arena.TypeRef
	if !node.A.Invalid() {
		aNode := p.prog.Ast.MustNode(node.A)
		if !suppressed(aNode) {
			declaredType = aNode.Type
		}
	}

	var initType arena.TypeRef
	var bNode ast.Node
	if !node.B.Invalid() {
		bNode = p.prog.Ast.MustNode(node.B)
		if suppressed(bNode) {
			p.markNodeError(n)
			p.prog.advanceSymbol(sym, symbol.Typed)
			p.prog.advanceSymbol(sym, symbol.SemaCompleted)
			return ast.Continue
		}
		initType = p.typeOf(bNode)
	}

	finalType := declaredType
	switch {
	case finalType.Invalid() && !initType.Invalid():
		finalType = initType
	case !finalType.Invalid() && !initType.Invalid():
		result := p.prog.Types.CastAllowed(initType, finalType, typepool.CastInitialization, 0)
		switch result.Outcome {
		case typepool.CastFail:
			p.reportDiag(n, result.Failure.DiagnosticID)
			p.markNodeError(n)
		case typepool.CastRequiresConstantCheck:
			if bNode.HasConstant() {
				if _, outcome := constpool.FoldCast(p.prog.Types, p.prog.Consts, bNode.Constant, finalType, 0); !outcome.OK {
					p.reportDiag(n, outcome.DiagnosticID)
					p.markNodeError(n)
				}
			}
		}
	case finalType.Invalid():
		p.reportDiag(n, "sema_err_cannot_infer_type")
		p.markNodeError(n)
	}

	sym.Type = finalType
	p.prog.Ast.Mutate(n, func(nd *ast.Node) { nd.Symbol = sym.Ref })
	p.prog.advanceSymbol(sym, symbol.Typed)
	p.prog.advanceSymbol(sym, symbol.SemaCompleted)
	return ast.Continue
}

// finishFuncDecl builds the function's lambda signature type from its
// already-resolved parameters and return-type expr, then advances the
// symbol (spec §4.4 Declarations / §4.5 codegen handoff precondition).
func (p *pass) finishFuncDecl(n arena.AstNodeRef, node ast.Node) ast.Intent {
	sym := p.file.DeclSymbols[n]
	if sym == nil {
		return ast.Continue
	}

	var paramTypes []arena.TypeRef
	for _, paramRef := range p.prog.Ast.Span(node.Span) {
		if pvar := p.file.DeclSymbols[paramRef]; pvar != nil {
			paramTypes = append(paramTypes, pvar.Type)
		}
	}
	returnType := p.prog.Types.VoidRef()
	if !node.A.Invalid() {
		aNode := p.prog.Ast.MustNode(node.A)
		if !suppressed(aNode) && !aNode.Type.Invalid() {
			returnType = aNode.Type
		}
	}

	sig := p.prog.Types.Add(typepool.TypeInfo{Kind: typepool.KindLambda, Params: paramTypes, Return: returnType})
	sym.Type = sig
	p.prog.Ast.Mutate(n, func(nd *ast.Node) { nd.Symbol = sym.Ref })
	p.prog.advanceSymbol(sym, symbol.Typed)
	p.prog.advanceSymbol(sym, symbol.SemaCompleted)
	p.scheduleCodegen(sym, node.B)
	return ast.Continue
}

func (p *pass) finishNamespace(n arena.AstNodeRef, node ast.Node) ast.Intent {
	if sym := p.file.DeclSymbols[n]; sym != nil {
		p.prog.advanceSymbol(sym, symbol.SemaCompleted)
	}
	return ast.Continue
}

// finishAggregateDecl builds a struct/union/interface's TypeInfo from
// its already-resolved members (Param-shaped fields finished by
// finishParam, FuncDecl-shaped interface methods finished by
// finishFuncDecl — both already ran, since children finish before
// their parent) and advances the aggregate's own symbol.
func (p *pass) finishAggregateDecl(n arena.AstNodeRef, node ast.Node, kind typepool.AggregateKind) ast.Intent {
	sym := p.file.DeclSymbols[n]
	if sym == nil {
		return ast.Continue
	}
	var members []typepool.Member
	for _, memberRef := range p.prog.Ast.Span(node.Span) {
		member := p.prog.Ast.MustNode(memberRef)
		mvar := p.file.DeclSymbols[memberRef]
		if mvar == nil {
			continue
		}
		members = append(members, typepool.Member{Name: member.Name, Type: mvar.Type})
	}
	ref := p.prog.Types.Add(typepool.TypeInfo{
		Kind:          typepool.KindAggregate,
		AggregateKind: kind,
		AggregateName: sym.Ref,
		Members:       members,
	})
	sym.Type = ref
	p.prog.Ast.Mutate(n, func(nd *ast.Node) { nd.Symbol = sym.Ref })
	p.prog.advanceSymbol(sym, symbol.Typed)
	p.prog.advanceSymbol(sym, symbol.SemaCompleted)
	return ast.Continue
}

// finishEnumDecl advances the enum's own symbol to SemaCompleted — it
// already reached Typed eagerly at decl time (preEnumDecl).
func (p *pass) finishEnumDecl(n arena.AstNodeRef, node ast.Node) ast.Intent {
	if sym := p.file.DeclSymbols[n]; sym != nil {
		p.prog.advanceSymbol(sym, symbol.SemaCompleted)
	}
	return ast.Continue
}

// finishEnumMember assigns the member's ordinal — its own explicit
// value expression if one folded to an int constant, else the next
// value after its predecessor within the same enum (spec §4.4
// Literals' "folds once" rule extended to enum member initializers) —
// and folds the member node itself to an EnumValue constant.
func (p *pass) finishEnumMember(n arena.AstNodeRef, node ast.Node) ast.Intent {
	f := p.topFrame()
	var enumRef arena.TypeRef
	if f != nil && f.Owner != nil {
		enumRef = f.Owner.Type
	}

	ordinal := int64(0)
	if f != nil {
		ordinal = f.EnumNext
	}
	if !node.A.Invalid() {
		aNode := p.prog.Ast.MustNode(node.A)
		if suppressed(aNode) {
			p.markNodeError(n)
			return ast.Continue
		}
		if aNode.HasConstant() {
			v := p.prog.Consts.MustGet(aNode.Constant)
			if v.Kind != constpool.KindInt {
				p.reportDiag(n, "sema_err_invalid_operand")
				p.markNodeError(n)
				return ast.Continue
			}
			ordinal = v.Int
		}
	}
	if f != nil {
		f.EnumNext = ordinal + 1
	}

	ref := p.prog.Consts.Add(constpool.EnumValue(enumRef, ordinal))
	p.prog.Ast.Mutate(n, func(nd *ast.Node) { nd.Constant = ref; nd.Flags |= ast.FlagValue })
	if mvar := p.file.DeclSymbols[n]; mvar != nil {
		p.prog.advanceSymbol(mvar, symbol.SemaCompleted)
	}
	return ast.Continue
}

// finishAliasDecl resolves an `alias` declaration's underlying type
// from its already-resolved type-expr child.
func (p *pass) finishAliasDecl(n arena.AstNodeRef, node ast.Node) ast.Intent {
	sym := p.file.DeclSymbols[n]
	if sym == nil {
		return ast.Continue
	}
	if node.A.Invalid() {
		p.prog.advanceSymbol(sym, symbol.Typed)
		p.prog.advanceSymbol(sym, symbol.SemaCompleted)
		return ast.Continue
	}
	aNode := p.prog.Ast.MustNode(node.A)
	if suppressed(aNode) || aNode.Type.Invalid() {
		p.markNodeError(n)
		p.prog.advanceSymbol(sym, symbol.Typed)
		p.prog.advanceSymbol(sym, symbol.SemaCompleted)
		return ast.Continue
	}
	ref := p.prog.Types.Add(typepool.TypeInfo{Kind: typepool.KindAlias, Sym: sym.Ref, Elem: aNode.Type})
	sym.Type = ref
	p.prog.Ast.Mutate(n, func(nd *ast.Node) { nd.Symbol = sym.Ref })
	p.prog.advanceSymbol(sym, symbol.Typed)
	p.prog.advanceSymbol(sym, symbol.SemaCompleted)
	return ast.Continue
}
