package stdlib

// typeof, from_codepoint/to_codepoint, and range.

import (
	"math/big"

	"icelang/eval"
	"icelang/sourcerange"
	"icelang/value"
)

func islTypeof(args []value.Value, pos sourcerange.SourceRange, state *eval.RuntimeState) (value.Value, error) {
	if len(args) != 1 {
		return nil, arityError(pos, "typeof", len(args))
	}
	return value.String{V: args[0].TypeName()}, nil
}

func islFromCodepoint(args []value.Value, pos sourcerange.SourceRange, state *eval.RuntimeState) (value.Value, error) {
	if len(args) != 1 {
		return nil, arityError(pos, "from_codepoint", len(args))
	}
	var codepoint int64
	switch v := args[0].(type) {
	case value.Int:
		if !v.V.IsInt64() {
			return value.Null{}, nil
		}
		codepoint = v.V.Int64()
	case value.Byte:
		codepoint = int64(v.V)
	default:
		return nil, wrongArgType(pos, "from_codepoint", "first", "an int or byte", args[0])
	}
	if codepoint < 0 || codepoint > 0x10FFFF || (codepoint >= 0xD800 && codepoint <= 0xDFFF) {
		return value.Null{}, nil
	}
	return value.String{V: string(rune(codepoint))}, nil
}

func islToCodepoint(args []value.Value, pos sourcerange.SourceRange, state *eval.RuntimeState) (value.Value, error) {
	if len(args) != 1 {
		return nil, arityError(pos, "to_codepoint", len(args))
	}
	s, ok := args[0].(value.String)
	if !ok {
		return nil, wrongArgType(pos, "to_codepoint", "first", "a string", args[0])
	}
	runes := []rune(s.V)
	if len(runes) != 1 {
		return value.Null{}, nil
	}
	return value.NewIntFromInt64(int64(runes[0])), nil
}

// islRange implements the 1/2/3-argument range(...) overloads:
// range(end), range(start, end), range(start, end, step). Empty when
// start == end (even for step == 0, the sole case step == 0 is
// allowed); otherwise step must be nonzero and its sign must match the
// sign of end-start.
func islRange(args []value.Value, pos sourcerange.SourceRange, state *eval.RuntimeState) (value.Value, error) {
	var start, end, step *big.Int

	asInt := func(argIdx int, v value.Value) (*big.Int, bool) {
		switch n := v.(type) {
		case value.Int:
			return n.V, true
		case value.Byte:
			return big.NewInt(int64(n.V)), true
		default:
			return nil, false
		}
	}

	switch len(args) {
	case 1:
		n, ok := asInt(0, args[0])
		if !ok {
			return nil, wrongArgType(pos, "range", "first", "an int", args[0])
		}
		start, end, step = big.NewInt(0), n, big.NewInt(1)
	case 2:
		s, ok := asInt(0, args[0])
		if !ok {
			return nil, wrongArgType(pos, "range", "first", "an int", args[0])
		}
		e, ok := asInt(1, args[1])
		if !ok {
			return nil, wrongArgType(pos, "range", "second", "an int", args[1])
		}
		start, end, step = s, e, big.NewInt(1)
	case 3:
		s, ok := asInt(0, args[0])
		if !ok {
			return nil, wrongArgType(pos, "range", "first", "an int", args[0])
		}
		e, ok := asInt(1, args[1])
		if !ok {
			return nil, wrongArgType(pos, "range", "second", "an int", args[1])
		}
		st, ok := asInt(2, args[2])
		if !ok {
			return nil, wrongArgType(pos, "range", "third", "an int", args[2])
		}
		start, end, step = s, e, st
	default:
		return nil, arityError(pos, "range", len(args))
	}

	if start.Cmp(end) == 0 {
		return value.NewList(nil), nil
	}

	stepSign := step.Sign()
	diffSign := new(big.Int).Sub(end, start).Sign()
	if stepSign == 0 {
		return nil, eval.AssertionError(pos, "0 is not a valid step value")
	}
	if diffSign > 0 && stepSign < 0 {
		return nil, eval.AssertionError(pos, "step value must be positive if start < end")
	}
	if diffSign < 0 && stepSign > 0 {
		return nil, eval.AssertionError(pos, "step value must be negative if start > end")
	}

	count := new(big.Int).Sub(end, start)
	count.Quo(count, step)
	if !count.IsInt64() || count.Int64() > 1<<24 {
		return nil, eval.ResourceUnavailableError(pos, "range results in list with too many elements")
	}
	n := int(count.Int64())

	items := make([]value.Value, 0, n+1)
	curr := new(big.Int).Set(start)
	for {
		remaining := new(big.Int).Sub(end, curr)
		if remaining.Sign() != stepSign {
			break
		}
		items = append(items, value.NewInt(new(big.Int).Set(curr)))
		curr.Add(curr, step)
	}
	return value.NewList(items), nil
}
