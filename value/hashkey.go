package value

import (
	"fmt"
	"math"
)

// HashKey produces a canonical string encoding of v suitable as a Go map
// key, such that two values that must compare equal as dict keys always
// produce the same string. Scalars hash structurally; List and Dict hash
// by pointer identity (reference_copy semantics: two lists are the same
// key only if they are the same container), matching
// interpreter/comparisons.rs's switch from structural to Rc::ptr_eq
// equality for containers. NaN hashes to a single canonical bit pattern
// so that NaN == NaN holds for dict-key purposes, and +0.0/-0.0 are
// distinguished so they are not silently collapsed as keys.
func HashKey(v Value) string {
	switch vv := v.(type) {
	case Int:
		return "i:" + vv.V.String()
	case Byte:
		return fmt.Sprintf("b:%d", vv.V)
	case Float:
		return "f:" + floatKey(vv.V)
	case Bool:
		return fmt.Sprintf("o:%v", vv.V)
	case String:
		return "s:" + vv.V
	case Null:
		return "n:"
	case *List:
		return fmt.Sprintf("L:%p", vv)
	case *Dict:
		return fmt.Sprintf("D:%p", vv)
	default:
		panic(fmt.Sprintf("value: HashKey: unhandled variant %T", v))
	}
}

func floatKey(f float64) string {
	if math.IsNaN(f) {
		return "nan"
	}
	bits := math.Float64bits(f)
	// Signed zero: +0.0 and -0.0 differ in their sign bit but both
	// satisfy f == 0; keep them distinct dict keys rather than silently
	// merging them under IEEE-754 equality.
	return fmt.Sprintf("%016x", bits)
}
