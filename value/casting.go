package value

import (
	"math"
	"math/big"
	"strconv"
	"strings"
)

// Cast implements the `as` operator. ok is false when the (source type,
// destination type) pair is not a permitted cast at all (the caller
// should raise a Type error); when ok is true the returned Value is the
// cast result, which may itself be Null to signal an in-range-but-failed
// numeric conversion (e.g. Int too large for Byte, or a String that does
// not parse as a number), including the String -> Int/Byte/Float
// direction.
func Cast(v Value, dst string) (result Value, ok bool) {
	switch vv := v.(type) {
	case Int:
		switch dst {
		case "byte":
			if vv.V.Sign() < 0 || vv.V.Cmp(big.NewInt(255)) > 0 {
				return Null{}, true
			}
			return Byte{V: uint8(vv.V.Int64())}, true
		case "float":
			f := new(big.Float).SetInt(vv.V)
			f64, _ := f.Float64()
			return Float{V: f64}, true
		case "string":
			return String{V: Display(vv)}, true
		}
	case Byte:
		switch dst {
		case "int":
			return Int{V: big.NewInt(int64(vv.V))}, true
		case "float":
			return Float{V: float64(vv.V)}, true
		case "string":
			return String{V: Display(vv)}, true
		}
	case Float:
		switch dst {
		case "int":
			i, exact := floatToBigInt(vv.V)
			if !exact {
				return Null{}, true
			}
			return Int{V: i}, true
		case "string":
			return String{V: Display(vv)}, true
		}
	case Bool:
		if dst == "string" {
			return String{V: Display(vv)}, true
		}
	case String:
		switch dst {
		case "int":
			i, success := new(big.Int).SetString(strings.TrimSpace(vv.V), 10)
			if !success {
				return Null{}, true
			}
			return Int{V: i}, true
		case "byte":
			n, err := strconv.ParseUint(strings.TrimSpace(vv.V), 10, 8)
			if err != nil {
				return Null{}, true
			}
			return Byte{V: uint8(n)}, true
		case "float":
			f, err := strconv.ParseFloat(strings.TrimSpace(vv.V), 64)
			if err != nil {
				return Null{}, true
			}
			return Float{V: f}, true
		}
	}
	return nil, false
}

// floatToBigInt converts a finite float to an integer, truncating toward
// zero. The bool is false only for NaN and ±Infinity, which never
// convert.
func floatToBigInt(f float64) (*big.Int, bool) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return nil, false
	}
	bf := new(big.Float).SetFloat64(f)
	i, _ := bf.Int(nil)
	return i, true
}
