//go:build jscore_32bit

package value

import (
	"math"
	"unsafe"
)

// wordTag discriminates the two-word packing used on 32-bit hosts: one
// word for the payload, one word for a discriminating tag drawn from a
// closed set.
type wordTag uint8

const (
	tagKindInt32 wordTag = iota
	tagKindDouble
	tagKindPointer
	tagKindUndefined
	tagKindNull
	tagKindTrue
	tagKindFalse
	tagKindEmpty
	tagKindDeleted
)

// Value is the explicit two-word packing: one word for the tag, one for
// the payload. Doubles that don't fit in the payload word are boxed
// through the same heap registry pointers use (DoubleBox).
type Value struct {
	tag     wordTag
	payload uint32
}

// DoubleBox is the boxed-double heap cell the two-word packing points at
// when a double doesn't fit inline. On 32-bit hosts every double is
// boxed this way.
type DoubleBox struct {
	Header
	V float64
}

func FromInt32(i int32) Value { return Value{tag: tagKindInt32, payload: uint32(i)} }

func FromDouble(d float64) Value {
	if math.IsNaN(d) {
		d = math.NaN() // canonicalized by math.NaN()'s single bit pattern
	}
	if d >= math.MinInt32 && d <= math.MaxInt32 && math.Trunc(d) == d && !(d == 0 && math.Signbit(d)) {
		return FromInt32(int32(d))
	}
	box := &DoubleBox{Header: NewHeader(0), V: d}
	return Value{tag: tagKindDouble, payload: registerPointer(unsafe.Pointer(box))}
}

func FromPointer(p unsafe.Pointer) Value {
	if p == nil {
		return Null()
	}
	return Value{tag: tagKindPointer, payload: registerPointer(p)}
}

func Undefined() Value   { return Value{tag: tagKindUndefined} }
func Null() Value        { return Value{tag: tagKindNull} }
func True() Value        { return Value{tag: tagKindTrue} }
func False() Value       { return Value{tag: tagKindFalse} }
func Empty() Value       { return Value{tag: tagKindEmpty} }
func Deleted() Value     { return Value{tag: tagKindDeleted} }
func FromBool(b bool) Value {
	if b {
		return True()
	}
	return False()
}

func (v Value) IsDouble() bool          { return v.tag == tagKindDouble }
func (v Value) IsInt32() bool           { return v.tag == tagKindInt32 }
func (v Value) IsPointer() bool         { return v.tag == tagKindPointer }
func (v Value) IsUndefined() bool       { return v.tag == tagKindUndefined }
func (v Value) IsNull() bool            { return v.tag == tagKindNull }
func (v Value) IsTrue() bool            { return v.tag == tagKindTrue }
func (v Value) IsFalse() bool           { return v.tag == tagKindFalse }
func (v Value) IsBoolean() bool         { return v.IsTrue() || v.IsFalse() }
func (v Value) IsEmpty() bool           { return v.tag == tagKindEmpty }
func (v Value) IsDeleted() bool         { return v.tag == tagKindDeleted }
func (v Value) IsNullOrUndefined() bool { return v.IsNull() || v.IsUndefined() }

func (v Value) AsInt32() int32 { return int32(v.payload) }

func (v Value) AsDouble() float64 {
	p := resolvePointer(v.payload)
	if p == nil {
		return 0
	}
	return (*DoubleBox)(p).V
}

func (v Value) AsPointer() unsafe.Pointer { return resolvePointer(v.payload) }
func (v Value) AsBool() bool              { return v.IsTrue() }

func (v Value) ObjectHeader() TypeTag {
	p := v.AsPointer()
	if p == nil {
		return 0
	}
	return TagOf(p)
}

func (v Value) IsObject() bool      { return v.IsPointer() && v.ObjectHeader()&TagObject != 0 }
func (v Value) IsString() bool      { return v.IsPointer() && v.ObjectHeader()&TagString != 0 }
func (v Value) IsSymbol() bool      { return v.IsPointer() && v.ObjectHeader()&TagSymbol != 0 }
func (v Value) IsBigIntValue() bool { return v.IsPointer() && v.ObjectHeader()&TagBigInt != 0 }
