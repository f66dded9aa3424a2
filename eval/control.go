package eval

import (
	"icelang/ast"
	"icelang/sourcerange"
	"icelang/value"
)

// jumpSignal is the other non-linear control-flow result alongside
// RuntimeError: break/continue/return unwinding the Go call stack until
// an enclosing loop or function call catches it. Escaping to top level
// uncaught is itself converted to an InvalidJumpStatement RuntimeError.
type jumpSignal struct {
	kind  ast.JumpKind
	value value.Value
	pos   sourcerange.SourceRange
}

func (j *jumpSignal) Error() string { return "uncaught jump signal" }

// asJump reports whether err is a jumpSignal, for loop/call bodies to
// intercept break/continue/return without type-asserting everywhere.
func asJump(err error) (*jumpSignal, bool) {
	j, ok := err.(*jumpSignal)
	return j, ok
}
