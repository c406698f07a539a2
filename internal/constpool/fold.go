package constpool

import (
	"math"

	"github.com/swglang/swc/internal/arena"
	"github.com/swglang/swc/internal/typepool"
)

// FoldOutcome is the result of a constant-folding attempt.
type FoldOutcome struct {
	OK            bool
	DiagnosticID  string // set when !OK
	ExpectedValue string // optional note for overflow diagnostics
}

// FoldCast computes the destination constant for src -> dst under the
// given cast kind/flags, implementing spec §4.2's "constant folding
// during cast": identity, bit-cast, bool<->int-like, int-like<->int-like
// (overflow-checked unless Wrap), int-like<->float, float<->float.
// Unsized literals adopt the destination width/signedness.
func FoldCast(types *typepool.Pool, pool *Pool, srcConst arena.ConstantRef, dst arena.TypeRef, flags typepool.CastFlags) (arena.ConstantRef, FoldOutcome) {
	v, ok := pool.Get(srcConst)
	if !ok {
		return 0, FoldOutcome{OK: false, DiagnosticID: "sema_err_internal_unknown_constant"}
	}
	dstInfo, ok := types.Get(dst)
	if !ok {
		return 0, FoldOutcome{OK: false, DiagnosticID: "sema_err_internal_unknown_type"}
	}

	switch {
	case dstInfo.Kind == typepool.KindBool:
		switch v.Kind {
		case KindBool:
			return pool.Add(v), FoldOutcome{OK: true}
		case KindInt:
			return pool.Add(Bool(v.Int != 0)), FoldOutcome{OK: true}
		}

	case dstInfo.Kind == typepool.KindInt:
		bits, signed, _, _ := types.NumericWidthSigned(dst)
		switch v.Kind {
		case KindBool:
			iv := int64(0)
			if v.Bool {
				iv = 1
			}
			return pool.Add(Int(iv, !signed, false)), FoldOutcome{OK: true}
		case KindInt:
			return foldIntToInt(pool, v, bits, signed, flags)
		case KindFloat:
			return foldFloatToInt(pool, v, bits, signed, flags)
		}

	case dstInfo.Kind == typepool.KindChar:
		switch v.Kind {
		case KindChar:
			return pool.Add(v), FoldOutcome{OK: true}
		case KindInt:
			if v.Int < 0 || v.Int > 0x10FFFF {
				return 0, FoldOutcome{OK: false, DiagnosticID: "sema_err_literal_overflow"}
			}
			return pool.Add(Char(rune(v.Int))), FoldOutcome{OK: true}
		}

	case dstInfo.Kind == typepool.KindFloat:
		bits, _, _, _ := types.NumericWidthSigned(dst)
		switch v.Kind {
		case KindInt:
			f := float64(v.Int)
			if v.Unsigned {
				f = float64(uint64(v.Int))
			}
			return foldRoundFloat(pool, f, bits), FoldOutcome{OK: true}
		case KindFloat:
			return foldRoundFloat(pool, v.Float, bits), FoldOutcome{OK: true}
		}
	}

	return 0, FoldOutcome{OK: false, DiagnosticID: "sema_err_cast_no_constant_rule"}
}

func foldRoundFloat(pool *Pool, f float64, bits uint8) arena.ConstantRef {
	if bits == 32 {
		f = float64(float32(f))
	}
	return pool.Add(Float(f, false))
}

func intRange(bits uint8, signed bool) (min, max int64, maxU uint64) {
	if signed {
		switch bits {
		case 8:
			return math.MinInt8, math.MaxInt8, 0
		case 16:
			return math.MinInt16, math.MaxInt16, 0
		case 32:
			return math.MinInt32, math.MaxInt32, 0
		default:
			return math.MinInt64, math.MaxInt64, 0
		}
	}
	switch bits {
	case 8:
		return 0, 0, math.MaxUint8
	case 16:
		return 0, 0, math.MaxUint16
	case 32:
		return 0, 0, math.MaxUint32
	default:
		return 0, 0, math.MaxUint64
	}
}

func foldIntToInt(pool *Pool, v Value, bits uint8, signed bool, flags typepool.CastFlags) (arena.ConstantRef, FoldOutcome) {
	wrap := flags&typepool.FlagWrap != 0
	if wrap {
		masked := maskToWidth(v.Int, bits)
		if signed {
			masked = signExtend(masked, bits)
		}
		return pool.Add(Int(masked, !signed, false)), FoldOutcome{OK: true}
	}

	min, max, maxU := intRange(bits, signed)
	if signed {
		if v.Int < min || v.Int > max {
			return 0, FoldOutcome{OK: false, DiagnosticID: "sema_err_literal_overflow"}
		}
	} else {
		if v.Int < 0 || uint64(v.Int) > maxU {
			return 0, FoldOutcome{OK: false, DiagnosticID: "sema_err_literal_overflow"}
		}
	}
	return pool.Add(Int(v.Int, !signed, false)), FoldOutcome{OK: true}
}

func foldFloatToInt(pool *Pool, v Value, bits uint8, signed bool, flags typepool.CastFlags) (arena.ConstantRef, FoldOutcome) {
	truncated := int64(v.Float)
	wrap := flags&typepool.FlagWrap != 0
	if !wrap {
		min, max, maxU := intRange(bits, signed)
		if signed {
			if float64(truncated) < float64(min) || float64(truncated) > float64(max) {
				return 0, FoldOutcome{OK: false, DiagnosticID: "sema_err_literal_overflow"}
			}
		} else if truncated < 0 || uint64(truncated) > maxU {
			return 0, FoldOutcome{OK: false, DiagnosticID: "sema_err_literal_overflow"}
		}
	}
	return pool.Add(Int(truncated, !signed, false)), FoldOutcome{OK: true}
}

func maskToWidth(v int64, bits uint8) int64 {
	if bits >= 64 {
		return v
	}
	mask := int64(1)<<bits - 1
	return v & mask
}

func signExtend(v int64, bits uint8) int64 {
	if bits >= 64 {
		return v
	}
	signBit := int64(1) << (bits - 1)
	return (v ^ signBit) - signBit
}

// FoldBinaryArith folds a binary arithmetic/bitwise/shift operation on
// two int-like or float constants, used by internal/sema when both
// operands of `a ⊕ b` are folded constants (spec §4.4 rule 6).
func FoldBinaryArith(pool *Pool, op string, a, b Value, wrap bool) (Value, FoldOutcome) {
	if a.Kind == KindFloat || b.Kind == KindFloat {
		af, bf := asFloat(a), asFloat(b)
		switch op {
		case "+":
			return Float(af+bf, a.Unsized && b.Unsized), FoldOutcome{OK: true}
		case "-":
			return Float(af-bf, a.Unsized && b.Unsized), FoldOutcome{OK: true}
		case "*":
			return Float(af*bf, a.Unsized && b.Unsized), FoldOutcome{OK: true}
		case "/":
			if bf == 0 {
				return Value{}, FoldOutcome{OK: false, DiagnosticID: "sema_err_division_zero"}
			}
			return Float(af/bf, a.Unsized && b.Unsized), FoldOutcome{OK: true}
		}
		return Value{}, FoldOutcome{OK: false, DiagnosticID: "sema_err_invalid_operand"}
	}

	ai, bi := a.Int, b.Int
	switch op {
	case "+":
		r := ai + bi
		if !wrap && overflowsAdd(ai, bi, r) {
			return Value{}, FoldOutcome{OK: false, DiagnosticID: "sema_err_integer_overflow"}
		}
		return Int(r, a.Unsigned || b.Unsigned, a.Unsized && b.Unsized), FoldOutcome{OK: true}
	case "-":
		r := ai - bi
		if !wrap && overflowsSub(ai, bi, r) {
			return Value{}, FoldOutcome{OK: false, DiagnosticID: "sema_err_integer_overflow"}
		}
		return Int(r, a.Unsigned || b.Unsigned, a.Unsized && b.Unsized), FoldOutcome{OK: true}
	case "*":
		r := ai * bi
		if !wrap && ai != 0 && r/ai != bi {
			return Value{}, FoldOutcome{OK: false, DiagnosticID: "sema_err_integer_overflow"}
		}
		return Int(r, a.Unsigned || b.Unsigned, a.Unsized && b.Unsized), FoldOutcome{OK: true}
	case "/":
		if bi == 0 {
			return Value{}, FoldOutcome{OK: false, DiagnosticID: "sema_err_division_zero"}
		}
		return Int(ai/bi, a.Unsigned || b.Unsigned, a.Unsized && b.Unsized), FoldOutcome{OK: true}
	case "%":
		if bi == 0 {
			return Value{}, FoldOutcome{OK: false, DiagnosticID: "sema_err_division_zero"}
		}
		return Int(ai%bi, a.Unsigned || b.Unsigned, a.Unsized && b.Unsized), FoldOutcome{OK: true}
	case "&":
		return Int(ai&bi, a.Unsigned || b.Unsigned, a.Unsized && b.Unsized), FoldOutcome{OK: true}
	case "|":
		return Int(ai|bi, a.Unsigned || b.Unsigned, a.Unsized && b.Unsized), FoldOutcome{OK: true}
	case "^":
		return Int(ai^bi, a.Unsigned || b.Unsigned, a.Unsized && b.Unsized), FoldOutcome{OK: true}
	case "<<", ">>":
		if bi < 0 || bi >= 64 {
			return Value{}, FoldOutcome{OK: false, DiagnosticID: "sema_err_negative_shift"}
		}
		if op == "<<" {
			return Int(ai<<uint(bi), a.Unsigned, a.Unsized), FoldOutcome{OK: true}
		}
		return Int(ai>>uint(bi), a.Unsigned, a.Unsized), FoldOutcome{OK: true}
	case "++":
		if a.Kind != KindString || b.Kind != KindString {
			return Value{}, FoldOutcome{OK: false, DiagnosticID: "sema_err_invalid_operand"}
		}
		return Str(a.Str + b.Str), FoldOutcome{OK: true}
	}
	return Value{}, FoldOutcome{OK: false, DiagnosticID: "sema_err_invalid_operand"}
}

func asFloat(v Value) float64 {
	if v.Kind == KindFloat {
		return v.Float
	}
	if v.Unsigned {
		return float64(uint64(v.Int))
	}
	return float64(v.Int)
}

func overflowsAdd(a, b, r int64) bool {
	return ((a ^ r) & (b ^ r)) < 0
}

func overflowsSub(a, b, r int64) bool {
	return ((a ^ b) & (a ^ r)) < 0
}
