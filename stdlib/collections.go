package stdlib

// Collection operations over List, Dict, and String.

import (
	"icelang/eval"
	"icelang/sourcerange"
	"icelang/value"
)

func islLen(args []value.Value, pos sourcerange.SourceRange, state *eval.RuntimeState) (value.Value, error) {
	if len(args) != 1 {
		return nil, arityError(pos, "len", len(args))
	}
	switch v := args[0].(type) {
	case *value.List:
		return value.NewIntFromInt64(int64(len(v.Items))), nil
	case value.String:
		return value.NewIntFromInt64(int64(len([]rune(v.V)))), nil
	case *value.Dict:
		return value.NewIntFromInt64(int64(v.Len())), nil
	default:
		return nil, wrongArgType(pos, "len", "first", "a list, string, or dict", args[0])
	}
}

func islPush(args []value.Value, pos sourcerange.SourceRange, state *eval.RuntimeState) (value.Value, error) {
	if len(args) != 2 {
		return nil, arityError(pos, "push", len(args))
	}
	list, ok := args[0].(*value.List)
	if !ok {
		return nil, wrongArgType(pos, "push", "first", "a list", args[0])
	}
	list.Items = append(list.Items, value.ReferenceCopy(args[1]))
	return value.Null{}, nil
}

func islPop(args []value.Value, pos sourcerange.SourceRange, state *eval.RuntimeState) (value.Value, error) {
	if len(args) != 1 {
		return nil, arityError(pos, "pop", len(args))
	}
	list, ok := args[0].(*value.List)
	if !ok {
		return nil, wrongArgType(pos, "pop", "first", "a list", args[0])
	}
	if len(list.Items) == 0 {
		return value.Null{}, nil
	}
	last := list.Items[len(list.Items)-1]
	list.Items = list.Items[:len(list.Items)-1]
	return last, nil
}

func islPushStart(args []value.Value, pos sourcerange.SourceRange, state *eval.RuntimeState) (value.Value, error) {
	if len(args) != 2 {
		return nil, arityError(pos, "push_start", len(args))
	}
	list, ok := args[0].(*value.List)
	if !ok {
		return nil, wrongArgType(pos, "push_start", "first", "a list", args[0])
	}
	list.Items = append([]value.Value{value.ReferenceCopy(args[1])}, list.Items...)
	return value.Null{}, nil
}

func islPopStart(args []value.Value, pos sourcerange.SourceRange, state *eval.RuntimeState) (value.Value, error) {
	if len(args) != 1 {
		return nil, arityError(pos, "pop_start", len(args))
	}
	list, ok := args[0].(*value.List)
	if !ok {
		return nil, wrongArgType(pos, "pop_start", "first", "a list", args[0])
	}
	if len(list.Items) == 0 {
		return value.Null{}, nil
	}
	first := list.Items[0]
	list.Items = list.Items[1:]
	return first, nil
}

func islContainsKey(args []value.Value, pos sourcerange.SourceRange, state *eval.RuntimeState) (value.Value, error) {
	if len(args) != 2 {
		return nil, arityError(pos, "contains_key", len(args))
	}
	dict, ok := args[0].(*value.Dict)
	if !ok {
		return nil, wrongArgType(pos, "contains_key", "first", "a dict", args[0])
	}
	_, found := dict.Get(args[1])
	return value.Bool{V: found}, nil
}

func islRemoveEntry(args []value.Value, pos sourcerange.SourceRange, state *eval.RuntimeState) (value.Value, error) {
	if len(args) != 2 {
		return nil, arityError(pos, "remove_entry", len(args))
	}
	dict, ok := args[0].(*value.Dict)
	if !ok {
		return nil, wrongArgType(pos, "remove_entry", "first", "a dict", args[0])
	}
	v, found := dict.Delete(args[1])
	if !found {
		return value.Null{}, nil
	}
	return v, nil
}

func islKeys(args []value.Value, pos sourcerange.SourceRange, state *eval.RuntimeState) (value.Value, error) {
	if len(args) != 1 {
		return nil, arityError(pos, "keys", len(args))
	}
	dict, ok := args[0].(*value.Dict)
	if !ok {
		return nil, wrongArgType(pos, "keys", "first", "a dict", args[0])
	}
	return value.NewList(dict.Keys()), nil
}

// islInsert is the Dict write-side counterpart to contains_key/
// remove_entry, equivalent to computed-member assignment on a dict.
func islInsert(args []value.Value, pos sourcerange.SourceRange, state *eval.RuntimeState) (value.Value, error) {
	if len(args) != 3 {
		return nil, arityError(pos, "insert", len(args))
	}
	dict, ok := args[0].(*value.Dict)
	if !ok {
		return nil, wrongArgType(pos, "insert", "first", "a dict", args[0])
	}
	dict.Set(args[1], value.ReferenceCopy(args[2]))
	return value.Null{}, nil
}
