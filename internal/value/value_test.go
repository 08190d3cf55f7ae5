package value

import (
	"math"
	"testing"
	"unsafe"
)

func TestInt32RoundTrip(t *testing.T) {
	cases := []int32{0, 1, -1, math.MaxInt32, math.MinInt32, 42, -42}
	for _, i := range cases {
		v := FromInt32(i)
		if !v.IsInt32() {
			t.Fatalf("FromInt32(%d).IsInt32() = false", i)
		}
		if got := v.AsInt32(); got != i {
			t.Errorf("FromInt32(%d).AsInt32() = %d", i, got)
		}
	}
}

func TestDoubleRoundTrip(t *testing.T) {
	cases := []float64{0.5, -0.5, 3.14159, math.MaxFloat64, math.SmallestNonzeroFloat64, math.Inf(1), math.Inf(-1)}
	for _, d := range cases {
		v := FromDouble(d)
		if !v.IsDouble() {
			t.Fatalf("FromDouble(%v).IsDouble() = false", d)
		}
		if got := v.AsDouble(); got != d {
			t.Errorf("FromDouble(%v).AsDouble() = %v", d, got)
		}
	}
}

func TestNaNCanonicalizes(t *testing.T) {
	a := FromDouble(math.NaN())
	b := FromDouble(math.Float64frombits(0x7FF8123456789ABC)) // a different NaN payload
	if a != b {
		t.Errorf("two different NaN inputs produced different canonical Values: %x vs %x", a, b)
	}
	if !a.IsDouble() {
		t.Fatalf("canonical NaN must still report IsDouble")
	}
	if d := a.AsDouble(); !math.IsNaN(d) {
		t.Errorf("canonical NaN AsDouble() = %v, want NaN", d)
	}
}

func TestSingletonsDistinct(t *testing.T) {
	singletons := []Value{Undefined(), Null(), True(), False(), Empty(), Deleted()}
	for i := range singletons {
		for j := range singletons {
			if i == j {
				continue
			}
			if singletons[i] == singletons[j] {
				t.Errorf("singleton %d aliases singleton %d", i, j)
			}
		}
	}
	if !Null().IsNull() || Null().IsUndefined() {
		t.Errorf("null/undefined must be distinct")
	}
	if StrictEquals(Null(), Undefined()) {
		t.Errorf("null === undefined must be false")
	}
}

func TestPointerRoundTrip(t *testing.T) {
	obj := &struct {
		Header
		X int
	}{Header: NewHeader(TagObject), X: 7}
	v := FromPointer(unsafe.Pointer(obj))
	if !v.IsPointer() || !v.IsObject() {
		t.Fatalf("FromPointer did not round-trip as an object")
	}
	got := (*struct {
		Header
		X int
	})(v.AsPointer())
	if got.X != 7 {
		t.Errorf("AsPointer() round-trip lost data: got X=%d", got.X)
	}
}

func TestIsObjectStringSymbolBigIntWithoutDereferencingNonPointers(t *testing.T) {
	nonPointers := []Value{Undefined(), Null(), True(), False(), FromInt32(5), FromDouble(1.5)}
	for _, v := range nonPointers {
		if v.IsObject() || v.IsString() || v.IsSymbol() || v.IsBigIntValue() {
			t.Errorf("%v incorrectly reports a heap tag", v)
		}
	}
}

func TestStrictEqualsZero(t *testing.T) {
	if !StrictEquals(FromDouble(0), FromDouble(math.Copysign(0, -1))) {
		t.Errorf("+0 === -0 must be true")
	}
}

func TestArithmeticOverflowPromotesToDouble(t *testing.T) {
	// Arithmetic on two Int32 values that overflows must promote to
	// double. This package doesn't implement arithmetic
	// itself (that's the bytecode VM's job), but the tagged
	// representation arithmetic is built on must pack an out-of-range
	// result as a double and round-trip every int32 through ToInt32.
	sum := float64(math.MaxInt32) + 1
	if v := FromDouble(sum); !v.IsDouble() || v.AsDouble() != sum {
		t.Errorf("FromDouble(%v) must pack as a double", sum)
	}
	for _, i := range []int32{0, 1, -1, math.MaxInt32, math.MinInt32} {
		v, err := ToInt32(nil, FromInt32(i))
		if err != nil {
			t.Fatalf("ToInt32: %v", err)
		}
		if v != i {
			t.Errorf("toInt32(%d) = %d", i, v)
		}
	}
}

func TestSmallValueSmiRoundTrip(t *testing.T) {
	for _, i := range []int32{0, 1, -1, 1000, -1000} {
		sv := SmallFromInt(i)
		if !sv.IsSmi() {
			t.Fatalf("SmallFromInt(%d) is not a smi", i)
		}
		if got := sv.AsInt(); got != i {
			t.Errorf("SmallFromInt(%d).AsInt() = %d", i, got)
		}
	}
}

func TestSmallValueBoxedDouble(t *testing.T) {
	sv := SmallFromDouble(2.5)
	if sv.IsSmi() {
		t.Fatalf("SmallFromDouble must not be a smi")
	}
	if got := sv.AsNumber(); got != 2.5 {
		t.Errorf("SmallFromDouble(2.5).AsNumber() = %v", got)
	}
}

type stubHost struct{ strs map[Value]string }

func (h stubHost) ToPrimitive(v Value, hint string) (Value, error) { return v, nil }
func (h stubHost) StringOf(v Value) string                         { return h.strs[v] }

func TestToNumberPrimitives(t *testing.T) {
	host := stubHost{}
	cases := []struct {
		v    Value
		want float64
	}{
		{Undefined(), math.NaN()},
		{Null(), 0},
		{True(), 1},
		{False(), 0},
		{FromInt32(5), 5},
		{FromDouble(1.5), 1.5},
	}
	for _, c := range cases {
		got, err := ToNumber(host, c.v)
		if err != nil {
			t.Fatalf("ToNumber: %v", err)
		}
		if math.IsNaN(c.want) {
			if !math.IsNaN(got) {
				t.Errorf("ToNumber(%v) = %v, want NaN", c.v, got)
			}
			continue
		}
		if got != c.want {
			t.Errorf("ToNumber(%v) = %v, want %v", c.v, got, c.want)
		}
	}
}

func TestToStringPrimitives(t *testing.T) {
	host := stubHost{}
	cases := []struct {
		v    Value
		want string
	}{
		{Undefined(), "undefined"},
		{Null(), "null"},
		{True(), "true"},
		{False(), "false"},
		{FromInt32(-7), "-7"},
		{FromDouble(math.NaN()), "NaN"},
		{FromDouble(math.Inf(1)), "Infinity"},
	}
	for _, c := range cases {
		got, err := ToString(host, c.v)
		if err != nil {
			t.Fatalf("ToString: %v", err)
		}
		if got != c.want {
			t.Errorf("ToString(%v) = %q, want %q", c.v, got, c.want)
		}
	}
}

func TestAbstractEqualsNullUndefined(t *testing.T) {
	host := stubHost{}
	eq, err := AbstractEquals(host, Null(), Undefined())
	if err != nil {
		t.Fatalf("AbstractEquals: %v", err)
	}
	if !eq {
		t.Errorf("null == undefined must be true")
	}
}

func TestAbstractEqualsNumberString(t *testing.T) {
	strs := map[Value]string{}
	s := FromPointer(unsafe.Pointer(&struct {
		Header
	}{Header: NewHeader(TagString)}))
	strs[s] = "5"
	host := stubHost{strs: strs}
	eq, err := AbstractEquals(host, FromInt32(5), s)
	if err != nil {
		t.Fatalf("AbstractEquals: %v", err)
	}
	if !eq {
		t.Errorf("5 == \"5\" must be true")
	}
}
