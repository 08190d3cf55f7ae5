package value

import "unsafe"

// SmallValue is a denser heap-field packing: a word that is either a
// tagged integer (low bit set) or an aligned pointer (low bit clear).
// It is orthogonal to Value's main packing and is a pure optimization —
// nothing requires using it over Value everywhere at a memory cost.
// No other package in this module uses it; the internal/bytecode
// constant pools hold Value and int32.
//
// Width: it reserves 1 tag bit and uses the remaining bits of a 32-bit
// word, giving a 31-bit integer range on both the one-word NaN-box and
// the two-word build (the packing does not depend on the build tag).
type SmallValue uint32

const smallValueSmiBit = 0x1

// BoxedDouble is the boxed-double object used when a SmallValue holds a
// non-integer number. SmallValue has no encoding for undefined, null or
// booleans.
type BoxedDouble struct {
	Header
	V float64
}

func SmallFromInt(i int32) SmallValue {
	return SmallValue((uint32(i) << 1) | smallValueSmiBit)
}

func SmallFromPointer(p unsafe.Pointer) SmallValue {
	// Handles are stored shifted one bit left so the low bit stays
	// clear regardless of the handle's own parity; handle 0 is reserved,
	// so a zero SmallValue never aliases a live pointer.
	return SmallValue(registerPointer(p) << 1)
}

func SmallFromDouble(d float64) SmallValue {
	return SmallFromPointer(unsafe.Pointer(&BoxedDouble{Header: NewHeader(0), V: d}))
}

func (s SmallValue) IsSmi() bool     { return uint32(s)&smallValueSmiBit != 0 }
func (s SmallValue) IsPointer() bool { return !s.IsSmi() }

func (s SmallValue) AsInt() int32 {
	return int32(s) >> 1 // arithmetic shift preserves the sign
}

func (s SmallValue) AsPointer() unsafe.Pointer {
	return resolvePointer(uint32(s) >> 1)
}

// AsNumber returns the numeric value of s whether it holds an inline
// integer or a boxed double.
func (s SmallValue) AsNumber() float64 {
	if s.IsSmi() {
		return float64(s.AsInt())
	}
	p := s.AsPointer()
	if p == nil {
		return 0
	}
	return (*BoxedDouble)(p).V
}
