package value

import "math/big"

// Equal implements the language's `==` operator: structural for scalars
// (with the deliberate deviation that NaN == NaN is true, so `==` stays
// total and usable as a dict/set key comparison), reference-identity
// for List and Dict. Mismatched types are always unequal; icelang has
// no implicit numeric widening in comparisons.
func Equal(a, b Value) bool {
	switch av := a.(type) {
	case Int:
		bv, ok := b.(Int)
		return ok && av.V.Cmp(bv.V) == 0
	case Byte:
		bv, ok := b.(Byte)
		return ok && av.V == bv.V
	case Float:
		bv, ok := b.(Float)
		if !ok {
			return false
		}
		if av.V != av.V && bv.V != bv.V {
			return true // NaN == NaN, by design
		}
		return av.V == bv.V
	case Bool:
		bv, ok := b.(Bool)
		return ok && av.V == bv.V
	case String:
		bv, ok := b.(String)
		return ok && av.V == bv.V
	case Null:
		_, ok := b.(Null)
		return ok
	case *List:
		bv, ok := b.(*List)
		return ok && av == bv
	case *Dict:
		bv, ok := b.(*Dict)
		return ok && av == bv
	default:
		return false
	}
}

// Ordering is the result of Compare: exactly one of these four.
type Ordering int

const (
	Less Ordering = iota
	Equal_
	Greater
	Unordered // only possible when a NaN float is involved
)

// Compare implements icelang's `<`/`<=`/`>`/`>=` ordering over numeric
// values: plain IEEE-754 ordering for Float (so NaN is Unordered here,
// unlike Equal's NaN == NaN carve-out) and numeric-tower ordering
// across Int/Byte/Float. Every other type is not ordered; callers that
// need to reject non-numeric operands before reaching here still get
// (Unordered, false) back if they don't.
func Compare(a, b Value) (Ordering, bool) {
	an, aok := asNumeric(a)
	bn, bok := asNumeric(b)
	if aok && bok {
		return compareNumeric(an, bn), true
	}
	return Unordered, false
}

// numericForm is a common representation used only to drive ordering
// comparisons across Int/Byte/Float without committing to a single Go
// numeric type (Int may exceed float64 precision).
type numericForm struct {
	isFloat bool
	f       float64
	i       *big.Int
}

func asNumeric(v Value) (numericForm, bool) {
	switch vv := v.(type) {
	case Int:
		return numericForm{i: vv.V}, true
	case Byte:
		return numericForm{i: big.NewInt(int64(vv.V))}, true
	case Float:
		return numericForm{isFloat: true, f: vv.V}, true
	default:
		return numericForm{}, false
	}
}

func compareNumeric(a, b numericForm) Ordering {
	if a.isFloat || b.isFloat {
		af := a.f
		if !a.isFloat {
			af, _ = new(big.Float).SetInt(a.i).Float64()
		}
		bf := b.f
		if !b.isFloat {
			bf, _ = new(big.Float).SetInt(b.i).Float64()
		}
		if af != af || bf != bf {
			return Unordered
		}
		switch {
		case af < bf:
			return Less
		case af > bf:
			return Greater
		default:
			return Equal_
		}
	}
	switch a.i.Cmp(b.i) {
	case -1:
		return Less
	case 1:
		return Greater
	default:
		return Equal_
	}
}
