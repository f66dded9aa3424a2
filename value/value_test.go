package value

import (
	"math"
	"math/big"
	"testing"
)

func TestDisplayScalars(t *testing.T) {
	cases := []struct {
		v    Value
		want string
	}{
		{NewIntFromInt64(42), "42"},
		{Byte{V: 0x0a}, "0A"},
		{Float{V: 1.5}, "1.5"},
		{Float{V: math.NaN()}, "NaN"},
		{Float{V: math.Inf(1)}, "Infinity"},
		{Bool{V: true}, "true"},
		{String{V: "hi"}, "hi"},
		{Null{}, "null"},
	}
	for _, c := range cases {
		if got := Display(c.v); got != c.want {
			t.Errorf("Display(%#v) = %q, want %q", c.v, got, c.want)
		}
	}
}

func TestDisplayListUsesDebugForm(t *testing.T) {
	l := NewList([]Value{String{V: "a\nb"}, NewIntFromInt64(1)})
	got := Display(l)
	want := `["a\nb", 1]`
	if got != want {
		t.Fatalf("Display(list) = %q, want %q", got, want)
	}
}

func TestEqualityNaNAndReferenceIdentity(t *testing.T) {
	nan := Float{V: math.NaN()}
	if !Equal(nan, nan) {
		t.Fatal("NaN == NaN must be true for Equal")
	}

	a := NewList([]Value{NewIntFromInt64(1)})
	b := NewList([]Value{NewIntFromInt64(1)})
	if Equal(a, b) {
		t.Fatal("distinct lists with equal contents must not be Equal (reference identity)")
	}
	if !Equal(a, a) {
		t.Fatal("a list must equal itself")
	}
}

func TestCompareNaNIsUnordered(t *testing.T) {
	nan := Float{V: math.NaN()}
	ord, ok := Compare(nan, nan)
	if !ok || ord != Unordered {
		t.Fatal("NaN must be Unordered under Compare, unlike Equal")
	}
}

func TestDictHashKeyIdentity(t *testing.T) {
	d := NewDict()
	l := NewList(nil)
	d.Set(l, String{V: "x"})
	if _, ok := d.Get(NewList(nil)); ok {
		t.Fatal("a different (empty) list must not hash-collide as a dict key")
	}
	if v, ok := d.Get(l); !ok || !Equal(v, String{V: "x"}) {
		t.Fatal("the same list pointer must retrieve its entry")
	}
}

func TestCastIntToByteOverflowIsNull(t *testing.T) {
	big300 := NewInt(big.NewInt(300))
	v, ok := Cast(big300, "byte")
	if !ok {
		t.Fatal("Int->Byte must be a permitted cast")
	}
	if _, isNull := v.(Null); !isNull {
		t.Fatalf("300 as byte must be Null (out of range), got %#v", v)
	}
}

func TestCastSameTypeNotPermitted(t *testing.T) {
	if _, ok := Cast(NewIntFromInt64(1), "int"); ok {
		t.Fatal("int as int must not be a permitted cast")
	}
}

func TestCastStringToIntFailure(t *testing.T) {
	v, ok := Cast(String{V: "not a number"}, "int")
	if !ok {
		t.Fatal("String->Int must be a permitted cast")
	}
	if _, isNull := v.(Null); !isNull {
		t.Fatal("an unparsable string must cast to Null")
	}
}

func TestDeepCopyIndependence(t *testing.T) {
	inner := NewList([]Value{NewIntFromInt64(1)})
	outer := NewList([]Value{inner})
	copied := DeepCopy(outer).(*List)
	copiedInner := copied.Items[0].(*List)
	if copiedInner == inner {
		t.Fatal("DeepCopy must not alias nested containers")
	}
}
