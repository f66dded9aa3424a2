package stdlib

// Error-construction helpers. error/todo/unimplemented/unreachable
// always raise an Assertion error; assert raises one only when its
// argument is false, and otherwise returns null.

import (
	"icelang/eval"
	"icelang/sourcerange"
	"icelang/value"
)

func islError(args []value.Value, pos sourcerange.SourceRange, state *eval.RuntimeState) (value.Value, error) {
	switch len(args) {
	case 0:
		return nil, eval.AssertionError(pos, "explicit error")
	case 1:
		msg, ok := args[0].(value.String)
		if !ok {
			return nil, wrongArgType(pos, "error", "first", "a string", args[0])
		}
		return nil, eval.AssertionError(pos, msg.V)
	default:
		return nil, arityError(pos, "error", len(args))
	}
}

func islAssert(args []value.Value, pos sourcerange.SourceRange, state *eval.RuntimeState) (value.Value, error) {
	if len(args) != 1 {
		return nil, arityError(pos, "assert", len(args))
	}
	cond, ok := args[0].(value.Bool)
	if !ok {
		return nil, wrongArgType(pos, "assert", "first", "a bool", args[0])
	}
	if !cond.V {
		return nil, eval.AssertionError(pos, "assertion failed")
	}
	return value.Null{}, nil
}

func islTodo(args []value.Value, pos sourcerange.SourceRange, state *eval.RuntimeState) (value.Value, error) {
	if len(args) != 0 {
		return nil, arityError(pos, "todo", len(args))
	}
	return nil, eval.AssertionError(pos, "execution reached unfinished code")
}

func islUnimplemented(args []value.Value, pos sourcerange.SourceRange, state *eval.RuntimeState) (value.Value, error) {
	if len(args) != 0 {
		return nil, arityError(pos, "unimplemented", len(args))
	}
	return nil, eval.AssertionError(pos, "execution reached unimplemented code")
}

func islUnreachable(args []value.Value, pos sourcerange.SourceRange, state *eval.RuntimeState) (value.Value, error) {
	if len(args) != 0 {
		return nil, arityError(pos, "unreachable", len(args))
	}
	return nil, eval.AssertionError(pos, "execution reached unreachable code")
}
