package value

// StrictEquals implements ECMAScript ===: same tag and same
// payload, with the two documented exceptions: NaN is never equal to
// itself, and +0 equals -0 despite differing bit patterns.
func StrictEquals(a, b Value) bool {
	switch {
	case a.IsDouble() && b.IsDouble():
		ad, bd := a.AsDouble(), b.AsDouble()
		if ad != ad || bd != bd { // either is NaN
			return false
		}
		return ad == bd // Go's == already treats +0 == -0
	case a.IsInt32() && b.IsInt32():
		return a.AsInt32() == b.AsInt32()
	case a.IsInt32() && b.IsDouble():
		return float64(a.AsInt32()) == b.AsDouble()
	case a.IsDouble() && b.IsInt32():
		return a.AsDouble() == float64(b.AsInt32())
	case a.IsString() && b.IsString():
		// Pointer identity is not enough for strings: two distinct
		// string objects with equal contents are still === equal.
		return stringEquals(a, b)
	case a.IsPointer() && b.IsPointer():
		return a.AsPointer() == b.AsPointer()
	default:
		return a == b
	}
}

// stringsEqualFn is set by a host that knows how to compare string
// object contents; defaults to pointer identity, which is correct for
// interned strings and a safe (merely conservative) fallback otherwise.
var stringsEqualFn func(a, b Value) bool

// SetStringComparer installs the content-equality function StrictEquals
// uses for two string Values. The (out-of-scope) object model calls
// this once at startup; until it does, StrictEquals falls back to
// pointer identity.
func SetStringComparer(fn func(a, b Value) bool) {
	stringsEqualFn = fn
}

func stringEquals(a, b Value) bool {
	if stringsEqualFn != nil {
		return stringsEqualFn(a, b)
	}
	return a.AsPointer() == b.AsPointer()
}

// AbstractEquals implements ECMAScript ==, coercing operands
// per the abstract equality algorithm. May call user code through host.
func AbstractEquals(host CoercionHost, a, b Value) (bool, error) {
	if sameType(a, b) {
		return StrictEquals(a, b), nil
	}
	switch {
	case a.IsNullOrUndefined() && b.IsNullOrUndefined():
		return true, nil
	case a.IsNullOrUndefined() || b.IsNullOrUndefined():
		return false, nil
	case isNumber(a) && b.IsString():
		bn, err := ToNumber(host, b)
		if err != nil {
			return false, err
		}
		return AbstractEquals(host, a, numberValue(bn))
	case a.IsString() && isNumber(b):
		an, err := ToNumber(host, a)
		if err != nil {
			return false, err
		}
		return AbstractEquals(host, numberValue(an), b)
	case a.IsBoolean():
		an, _ := ToNumber(host, a)
		return AbstractEquals(host, numberValue(an), b)
	case b.IsBoolean():
		bn, _ := ToNumber(host, b)
		return AbstractEquals(host, a, numberValue(bn))
	case (isNumber(a) || a.IsString()) && b.IsObject():
		prim, err := host.ToPrimitive(b, "default")
		if err != nil {
			return false, err
		}
		return AbstractEquals(host, a, prim)
	case a.IsObject() && (isNumber(b) || b.IsString()):
		prim, err := host.ToPrimitive(a, "default")
		if err != nil {
			return false, err
		}
		return AbstractEquals(host, prim, b)
	default:
		return false, nil
	}
}

func sameType(a, b Value) bool {
	return kindOf(a) == kindOf(b)
}

func isNumber(v Value) bool { return v.IsInt32() || v.IsDouble() }

func numberValue(n float64) Value { return FromDouble(n) }

type valueKind int

const (
	kUndefined valueKind = iota
	kNull
	kBoolean
	kNumber
	kString
	kSymbol
	kBigInt
	kObject
	kOther
)

func kindOf(v Value) valueKind {
	switch {
	case v.IsUndefined():
		return kUndefined
	case v.IsNull():
		return kNull
	case v.IsBoolean():
		return kBoolean
	case isNumber(v):
		return kNumber
	case v.IsString():
		return kString
	case v.IsSymbol():
		return kSymbol
	case v.IsBigIntValue():
		return kBigInt
	case v.IsObject():
		return kObject
	default:
		return kOther
	}
}
