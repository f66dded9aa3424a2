package stdlib

// String-manipulation builtins, following the same free-function +
// assertion-error pattern as the rest of the standard library.

import (
	"strings"

	"icelang/eval"
	"icelang/sourcerange"
	"icelang/value"
)

func islToUpper(args []value.Value, pos sourcerange.SourceRange, state *eval.RuntimeState) (value.Value, error) {
	if len(args) != 1 {
		return nil, arityError(pos, "to_upper", len(args))
	}
	s, ok := args[0].(value.String)
	if !ok {
		return nil, wrongArgType(pos, "to_upper", "first", "a string", args[0])
	}
	return value.String{V: strings.ToUpper(s.V)}, nil
}

func islToLower(args []value.Value, pos sourcerange.SourceRange, state *eval.RuntimeState) (value.Value, error) {
	if len(args) != 1 {
		return nil, arityError(pos, "to_lower", len(args))
	}
	s, ok := args[0].(value.String)
	if !ok {
		return nil, wrongArgType(pos, "to_lower", "first", "a string", args[0])
	}
	return value.String{V: strings.ToLower(s.V)}, nil
}

func islTrim(args []value.Value, pos sourcerange.SourceRange, state *eval.RuntimeState) (value.Value, error) {
	if len(args) != 1 {
		return nil, arityError(pos, "trim", len(args))
	}
	s, ok := args[0].(value.String)
	if !ok {
		return nil, wrongArgType(pos, "trim", "first", "a string", args[0])
	}
	return value.String{V: strings.TrimSpace(s.V)}, nil
}

func islSplit(args []value.Value, pos sourcerange.SourceRange, state *eval.RuntimeState) (value.Value, error) {
	if len(args) != 2 {
		return nil, arityError(pos, "split", len(args))
	}
	s, ok := args[0].(value.String)
	if !ok {
		return nil, wrongArgType(pos, "split", "first", "a string", args[0])
	}
	sep, ok := args[1].(value.String)
	if !ok {
		return nil, wrongArgType(pos, "split", "second", "a string", args[1])
	}
	parts := strings.Split(s.V, sep.V)
	items := make([]value.Value, len(parts))
	for i, p := range parts {
		items[i] = value.String{V: p}
	}
	return value.NewList(items), nil
}

func islJoin(args []value.Value, pos sourcerange.SourceRange, state *eval.RuntimeState) (value.Value, error) {
	if len(args) != 2 {
		return nil, arityError(pos, "join", len(args))
	}
	list, ok := args[0].(*value.List)
	if !ok {
		return nil, wrongArgType(pos, "join", "first", "a list", args[0])
	}
	sep, ok := args[1].(value.String)
	if !ok {
		return nil, wrongArgType(pos, "join", "second", "a string", args[1])
	}
	parts := make([]string, len(list.Items))
	for i, item := range list.Items {
		s, ok := item.(value.String)
		if !ok {
			return nil, eval.AssertionError(pos, "`join(...)` expects a list containing only strings as its first argument, but the list contained a value of type "+item.TypeName())
		}
		parts[i] = s.V
	}
	return value.String{V: strings.Join(parts, sep.V)}, nil
}

func islContains(args []value.Value, pos sourcerange.SourceRange, state *eval.RuntimeState) (value.Value, error) {
	if len(args) != 2 {
		return nil, arityError(pos, "contains", len(args))
	}
	s, ok := args[0].(value.String)
	if !ok {
		return nil, wrongArgType(pos, "contains", "first", "a string", args[0])
	}
	sub, ok := args[1].(value.String)
	if !ok {
		return nil, wrongArgType(pos, "contains", "second", "a string", args[1])
	}
	return value.Bool{V: strings.Contains(s.V, sub.V)}, nil
}

func islReplace(args []value.Value, pos sourcerange.SourceRange, state *eval.RuntimeState) (value.Value, error) {
	if len(args) != 3 {
		return nil, arityError(pos, "replace", len(args))
	}
	s, ok := args[0].(value.String)
	if !ok {
		return nil, wrongArgType(pos, "replace", "first", "a string", args[0])
	}
	old, ok := args[1].(value.String)
	if !ok {
		return nil, wrongArgType(pos, "replace", "second", "a string", args[1])
	}
	new_, ok := args[2].(value.String)
	if !ok {
		return nil, wrongArgType(pos, "replace", "third", "a string", args[2])
	}
	return value.String{V: strings.ReplaceAll(s.V, old.V, new_.V)}, nil
}
