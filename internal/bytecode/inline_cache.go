package bytecode

// Shape is an opaque hidden-class handle supplied by the (out-of-scope)
// object model. This package never dereferences it — it only compares
// identity — the same externally-supplied-hook pattern
// internal/value.CoercionHost uses to keep the value package from
// importing the object model.
type Shape interface{}

// shapeCacheSize is the inline array size: up to this many recently
// seen hidden-class pointers are kept before a site is considered
// megamorphic.
const shapeCacheSize = 4

// shapeSlot is one entry of an InlineCache's simple tier.
type shapeSlot struct {
	shape     Shape
	slotIndex int
}

// complexEntry is one entry of an InlineCache's complex (heap) tier,
// keyed by the single shape it was installed for; chain holds only
// that shape, and prototype chains are not tracked.
type complexEntry struct {
	chain     []Shape
	slotIndex int
}

// InlineCache memoizes the lookup result for one property-access site,
// keyed on hidden-class identity, with a small inline tier for
// monomorphic/polymorphic sites and a heap-backed tier once a site
// overflows into megamorphic territory.
type InlineCache struct {
	PropertyName string

	simple  [shapeCacheSize]shapeSlot
	simpleN int

	complex map[Shape]complexEntry
}

func newInlineCache(name string) *InlineCache {
	return &InlineCache{PropertyName: name}
}

// Lookup reports the cached slot index for shape, if any. A miss (ok
// == false) means the caller must fall back to a full property lookup
// and then call Install.
func (c *InlineCache) Lookup(shape Shape) (slotIndex int, ok bool) {
	for i := 0; i < c.simpleN; i++ {
		if c.simple[i].shape == shape {
			return c.simple[i].slotIndex, true
		}
	}
	if c.complex != nil {
		if e, found := c.complex[shape]; found {
			return e.slotIndex, true
		}
	}
	return 0, false
}

// Install records a newly resolved (shape, slotIndex) pair. While the
// site has seen at most shapeCacheSize distinct shapes, the simple tier
// is used; once it overflows, every further shape is installed into
// the heap complex tier instead.
func (c *InlineCache) Install(shape Shape, slotIndex int) {
	for i := 0; i < c.simpleN; i++ {
		if c.simple[i].shape == shape {
			c.simple[i].slotIndex = slotIndex
			return
		}
	}
	if c.simpleN < shapeCacheSize {
		c.simple[c.simpleN] = shapeSlot{shape: shape, slotIndex: slotIndex}
		c.simpleN++
		return
	}
	if c.complex == nil {
		c.complex = make(map[Shape]complexEntry)
	}
	c.complex[shape] = complexEntry{chain: []Shape{shape}, slotIndex: slotIndex}
}

// IsMegamorphic reports whether the site has overflowed into the
// complex tier.
func (c *InlineCache) IsMegamorphic() bool {
	return len(c.complex) > 0
}

// GCDescriptor returns the cache's pointer-valued slots — the cached
// shapes and the property name — so a (out-of-scope) GC can scan only
// those words rather than the whole record, skipping the inline
// integer slot indices.
func (c *InlineCache) GCDescriptor() []interface{} {
	ptrs := make([]interface{}, 0, c.simpleN+1)
	for i := 0; i < c.simpleN; i++ {
		ptrs = append(ptrs, c.simple[i].shape)
	}
	for shape := range c.complex {
		ptrs = append(ptrs, shape)
	}
	ptrs = append(ptrs, c.PropertyName)
	return ptrs
}
