package value

import "unsafe"

// TypeTag holds disjoint bit flags identifying a heap object's runtime
// category. Every heap object (Object, StringObject, Symbol, BigInt)
// embeds Header as its first field so the tag can be read through a raw
// pointer without a method/vtable dispatch.
type TypeTag uint8

const (
	TagObject TypeTag = 1 << iota
	TagString
	TagSymbol
	TagBigInt
)

// Header is embedded as the first field of every heap object type this
// core defines or references. Its offset within the struct is always
// zero, which is what makes TagOf valid for any such object without
// knowing its concrete type.
type Header struct {
	Tag TypeTag
}

// TagOf reads the TypeTag through a raw pointer to any value whose first
// field is Header, without going through an interface or virtual call.
// p must point at a live object beginning with Header; the heap object
// constructors in this package (and any host object model consuming
// them) are responsible for that invariant.
func TagOf(p unsafe.Pointer) TypeTag {
	return *(*TypeTag)(p)
}

// NewHeader constructs a Header with the given tag, for embedding as a
// heap object's first field.
func NewHeader(tag TypeTag) Header {
	return Header{Tag: tag}
}
