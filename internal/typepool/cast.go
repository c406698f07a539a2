package typepool

import "github.com/swglang/swc/internal/arena"

// CastKind distinguishes the contexts §4.2 evaluates cast legality in.
type CastKind uint8

const (
	CastLiteralSuffix CastKind = iota
	CastImplicit
	CastParameter
	CastCondition
	CastExplicit
	CastPromotion
	CastInitialization
)

// CastFlags modify cast legality checks.
type CastFlags uint8

const (
	FlagBitCast CastFlags = 1 << iota
	FlagNoOverflow
	FlagUnConst
	FlagUfcsArgument
	FlagWrap // "#wrap" modifier: suppress overflow errors on fold
)

// CastOutcome is the three-way result of cast_allowed: a clean
// success/failure, or a deferred decision that depends on the actual
// constant value of the source expression (spec §4.2).
type CastOutcome uint8

const (
	CastOK CastOutcome = iota
	CastFail
	CastRequiresConstantCheck
)

// CastFailure carries enough detail for a concrete diagnostic.
type CastFailure struct {
	DiagnosticID  string
	Src, Dst      arena.TypeRef
	ExpectedValue string // optional note, e.g. "must fit in s8 [-128,127]"
}

// CastResult is what cast_allowed returns.
type CastResult struct {
	Outcome CastOutcome
	Failure CastFailure
}

// CastAllowed evaluates cast legality for src -> dst under kind/flags.
// It does not look at constant values; when the legality genuinely
// depends on the literal's value (narrowing an unsized/sized integer
// or float constant), it reports CastRequiresConstantCheck and leaves
// the value-dependent decision to FoldCast.
func (p *Pool) CastAllowed(src, dst arena.TypeRef, kind CastKind, flags CastFlags) CastResult {
	src, dst = p.Underlying(src), p.Underlying(dst)
	if src == dst {
		return CastResult{Outcome: CastOK}
	}

	srcInfo, srcOK := p.Get(src)
	dstInfo, dstOK := p.Get(dst)
	if !srcOK || !dstOK {
		return CastResult{Outcome: CastFail, Failure: CastFailure{DiagnosticID: "sema_err_internal_unknown_type", Src: src, Dst: dst}}
	}

	switch {
	case srcInfo.Kind == KindBool && dstInfo.Kind == KindBool:
		return CastResult{Outcome: CastOK}

	case srcInfo.IsNumericScalar() && dstInfo.IsNumericScalar():
		if srcInfo.Unsized {
			return CastResult{Outcome: CastRequiresConstantCheck}
		}
		if kind == CastExplicit || flags&FlagBitCast != 0 {
			return CastResult{Outcome: CastOK}
		}
		// Implicit narrowing is only legal when it cannot lose
		// information: widening same-signedness, or int -> wider float.
		sBits, sSigned, sFloat, _ := p.NumericWidthSigned(src)
		dBits, dSigned, dFloat, _ := p.NumericWidthSigned(dst)
		switch {
		case sFloat && !dFloat:
			return CastResult{Outcome: CastFail, Failure: CastFailure{DiagnosticID: "sema_err_cast_float_to_int_implicit", Src: src, Dst: dst}}
		case !sFloat && dFloat:
			return CastResult{Outcome: CastOK}
		case sFloat && dFloat:
			if dBits >= sBits {
				return CastResult{Outcome: CastOK}
			}
			return CastResult{Outcome: CastFail, Failure: CastFailure{DiagnosticID: "sema_err_cast_narrowing_float", Src: src, Dst: dst}}
		default:
			if dBits > sBits && sSigned == dSigned {
				return CastResult{Outcome: CastOK}
			}
			if dBits >= sBits && sSigned == dSigned {
				return CastResult{Outcome: CastOK}
			}
			if kind == CastInitialization || kind == CastParameter {
				return CastResult{Outcome: CastFail, Failure: CastFailure{DiagnosticID: "sema_err_cast_implicit_narrowing", Src: src, Dst: dst}}
			}
			return CastResult{Outcome: CastFail, Failure: CastFailure{DiagnosticID: "sema_err_cast_sign_mismatch", Src: src, Dst: dst}}
		}

	case srcInfo.Kind == KindPointer && dstInfo.Kind == KindPointer:
		if kind == CastExplicit || flags&FlagBitCast != 0 {
			return CastResult{Outcome: CastOK}
		}
		if srcInfo.Elem == dstInfo.Elem {
			return CastResult{Outcome: CastOK}
		}
		return CastResult{Outcome: CastFail, Failure: CastFailure{DiagnosticID: "sema_err_cast_incompatible_pointer", Src: src, Dst: dst}}

	case srcInfo.Kind == KindChar && dstInfo.IsNumericScalar():
		if kind == CastExplicit || flags&FlagBitCast != 0 {
			return CastResult{Outcome: CastOK}
		}
		return CastResult{Outcome: CastFail, Failure: CastFailure{DiagnosticID: "sema_err_cast_char_implicit", Src: src, Dst: dst}}

	case srcInfo.IsNumericScalar() && dstInfo.Kind == KindChar:
		if srcInfo.Unsized {
			return CastResult{Outcome: CastRequiresConstantCheck}
		}
		if kind == CastExplicit || flags&FlagBitCast != 0 {
			return CastResult{Outcome: CastOK}
		}
		return CastResult{Outcome: CastFail, Failure: CastFailure{DiagnosticID: "sema_err_cast_char_implicit", Src: src, Dst: dst}}

	case srcInfo.Kind == KindEnum && dstInfo.IsNumericScalar():
		if kind == CastExplicit {
			return CastResult{Outcome: CastOK}
		}
		return CastResult{Outcome: CastFail, Failure: CastFailure{DiagnosticID: "sema_err_cast_enum_implicit", Src: src, Dst: dst}}

	default:
		return CastResult{Outcome: CastFail, Failure: CastFailure{DiagnosticID: "sema_err_cast_incompatible_types", Src: src, Dst: dst}}
	}
}
