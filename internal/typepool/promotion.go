package typepool

import "github.com/swglang/swc/internal/arena"

// numericSlot names the fixed closed set of concrete numeric types the
// N×N promotion table is precomputed over (spec §4.2): b8/b16/b32/b64
// signed/unsigned, f32/f64, and the usize alias (an unsigned 64-bit
// integer under the hood).
type numericSlot struct {
	ref     arena.TypeRef
	bits    uint8
	signed  bool
	isFloat bool
}

// promotionTable precomputes promote(a, b) for every pair of concrete
// numeric slots, registering each concrete type into the owning pool
// exactly once.
type promotionTable struct {
	pool  *Pool
	slots []numericSlot
	index map[arena.TypeRef]int
	table map[[2]arena.TypeRef]arena.TypeRef
}

func buildPromotionTable(p *Pool) *promotionTable {
	pt := &promotionTable{pool: p, index: make(map[arena.TypeRef]int)}

	add := func(bits uint8, signed, isFloat bool) arena.TypeRef {
		var info TypeInfo
		if isFloat {
			info = Float(bits, false)
		} else {
			info = Int(bits, signed, false)
		}
		ref := p.Add(info)
		pt.index[ref] = len(pt.slots)
		pt.slots = append(pt.slots, numericSlot{ref: ref, bits: bits, signed: signed, isFloat: isFloat})
		return ref
	}

	for _, bits := range []uint8{8, 16, 32, 64} {
		add(bits, true, false)
		add(bits, false, false)
	}
	add(32, false, true)
	add(64, false, true)
	// usize is an alias for an unsigned 64-bit integer; it shares the
	// u64 slot rather than getting a distinct numericSlot entry, so
	// promote(usize, u64) == u64 trivially.

	pt.table = make(map[[2]arena.TypeRef]arena.TypeRef, len(pt.slots)*len(pt.slots))
	for _, a := range pt.slots {
		for _, b := range pt.slots {
			r := computePromotion(a, b)
			if r == 0 && a.bits < 64 {
				// Mixed signedness, same width: the next wider signed type.
				r = p.Add(Int(a.bits*2, true, false))
			}
			pt.table[[2]arena.TypeRef{a.ref, b.ref}] = r
		}
	}
	return pt
}

func computePromotion(a, b numericSlot) arena.TypeRef {
	if a.ref == b.ref {
		return a.ref
	}
	switch {
	case a.isFloat && b.isFloat:
		if a.bits >= b.bits {
			return a.ref
		}
		return b.ref
	case a.isFloat:
		return a.ref
	case b.isFloat:
		return b.ref
	case a.bits != b.bits:
		if a.bits > b.bits {
			return a.ref
		}
		return b.ref
	case a.signed == b.signed:
		// Same width, same signedness: either is the result; keep a
		// for a stable, reproducible choice.
		return a.ref
	default:
		// Mixed signedness, same width: no entry here. buildPromotionTable
		// fills in the next wider signed type below b64; at b64 none
		// exists, so the pair keeps no entry and Promote reports failure.
		return 0
	}
}

// Slot reports whether ref names one of the fixed numeric slots.
func (pt *promotionTable) Slot(ref arena.TypeRef) (numericSlot, bool) {
	i, ok := pt.index[ref]
	if !ok {
		return numericSlot{}, false
	}
	return pt.slots[i], true
}

// Promote implements spec §4.2's promote(a, b) for two concrete
// (sized) numeric types. The unsized-literal widening case (rule 2)
// is handled by the caller (internal/sema), which knows the literal's
// constant value and range; this function only implements rule 1 and
// rule 3 over already-concrete types.
func (p *Pool) Promote(a, b arena.TypeRef) (arena.TypeRef, bool) {
	a, b = p.Underlying(a), p.Underlying(b)
	if r, ok := p.promote.table[[2]arena.TypeRef{a, b}]; ok && r != 0 {
		return r, true
	}
	if r, ok := p.promote.table[[2]arena.TypeRef{b, a}]; ok && r != 0 {
		return r, true
	}
	return 0, false
}

// IsNumericSlot reports whether ref is one of the concrete scalar
// types the promotion table knows about.
func (p *Pool) IsNumericSlot(ref arena.TypeRef) bool {
	_, ok := p.promote.Slot(p.Underlying(ref))
	return ok
}

// NumericWidthSigned reports the bit-width, signedness, and float-ness
// of a concrete numeric slot. ok is false for non-numeric or unsized
// types.
func (p *Pool) NumericWidthSigned(ref arena.TypeRef) (bits uint8, signed, isFloat, ok bool) {
	s, found := p.promote.Slot(ref)
	if !found {
		return 0, false, false, false
	}
	return s.bits, s.signed, s.isFloat, true
}

// WellKnown resolves one of the fixed scalar type refs by shape,
// registering it in the pool if this is the first request (it always
// already exists, since buildPromotionTable pre-registers every
// numeric slot at pool construction time).
func (p *Pool) WellKnown(bits uint8, signed, isFloat bool) arena.TypeRef {
	if isFloat {
		return p.Add(Float(bits, false))
	}
	return p.Add(Int(bits, signed, false))
}

// VoidRef, BoolRef, StringRef, CharRef are convenience constants
// callers reach for often; string and char sit outside the numeric
// promotion table (spec §3.5/§3.6: string/char are their own scalar
// kinds, not sized integers) but still canonicalize through Add like
// every other type.
func (p *Pool) VoidRef() arena.TypeRef   { return p.Add(Void()) }
func (p *Pool) BoolRef() arena.TypeRef   { return p.Add(Bool()) }
func (p *Pool) StringRef() arena.TypeRef { return p.Add(String()) }
func (p *Pool) CharRef() arena.TypeRef   { return p.Add(Char()) }
