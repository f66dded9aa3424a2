package stdlib

// random/random_int expose a random-number service to the standard
// library, routed through RuntimeState.RT.Rng so tests can substitute a
// deterministic source.

import (
	"icelang/eval"
	"icelang/sourcerange"
	"icelang/value"
)

func islRandom(args []value.Value, pos sourcerange.SourceRange, state *eval.RuntimeState) (value.Value, error) {
	if len(args) != 0 {
		return nil, arityError(pos, "random", len(args))
	}
	return value.Float{V: state.RT.Rng.Float64()}, nil
}

func islRandomInt(args []value.Value, pos sourcerange.SourceRange, state *eval.RuntimeState) (value.Value, error) {
	if len(args) != 2 {
		return nil, arityError(pos, "random_int", len(args))
	}
	a, ok := args[0].(value.Int)
	if !ok {
		return nil, wrongArgType(pos, "random_int", "first", "an int", args[0])
	}
	b, ok := args[1].(value.Int)
	if !ok {
		return nil, wrongArgType(pos, "random_int", "second", "an int", args[1])
	}
	if !a.V.IsInt64() || !b.V.IsInt64() {
		return nil, eval.ResourceUnavailableError(pos, "random_int bounds are too large to represent")
	}
	lo, hi := a.V.Int64(), b.V.Int64()
	if lo > hi {
		return nil, eval.AssertionError(pos, "`random_int(...)` requires its first argument to be less than or equal to its second argument")
	}
	span := hi - lo + 1
	return value.NewIntFromInt64(lo + state.RT.Rng.Int64N(span)), nil
}
