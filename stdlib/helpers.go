package stdlib

import (
	"fmt"

	"icelang/eval"
	"icelang/sourcerange"
	"icelang/value"
)

// wrongArgType builds the assertion error every built-in raises when an
// argument has the wrong type, keeping the phrasing uniform across the
// whole standard library.
func wrongArgType(pos sourcerange.SourceRange, fn, ordinal, want string, got value.Value) error {
	return eval.AssertionError(pos, fmt.Sprintf(
		"`%s(...)` expects %s as its %s argument, but got a value of type %s",
		fn, want, ordinal, got.TypeName(),
	))
}

func arityError(pos sourcerange.SourceRange, name string, argc int) error {
	return eval.InvalidOverloadError(pos, name, argc)
}
