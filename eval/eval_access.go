package eval

import (
	"icelang/ast"
	"icelang/value"
)

// VisitDotMemberAccess implements `root.name`: valid only on Dict,
// raising InvalidMemberAccess on a missing key (reads only — a missing
// key as an assignment target inserts instead, handled in
// VisitAssignment).
func (e *Evaluator) VisitDotMemberAccess(n ast.DotMemberAccess) any {
	root, err := e.Eval(n.Root)
	if err != nil {
		return everr(err)
	}
	d, ok := root.(*value.Dict)
	if !ok {
		return everr(typeError(n.P, "member access with '.' requires a dict, got %s", root.TypeName()))
	}
	v, ok := d.Get(value.String{V: n.Member})
	if !ok {
		return everr(invalidMemberAccessError(n.MemberPos, "dict has no entry named '%s'", n.Member))
	}
	return ev(v)
}

// VisitComputedMemberAccess implements `root[index]` across List,
// String, and Dict.
func (e *Evaluator) VisitComputedMemberAccess(n ast.ComputedMemberAccess) any {
	root, err := e.Eval(n.Root)
	if err != nil {
		return everr(err)
	}
	idx, err := e.Eval(n.Index)
	if err != nil {
		return everr(err)
	}

	switch r := root.(type) {
	case *value.List:
		i, ok := indexAsInt(idx)
		if !ok {
			return everr(typeError(n.P, "list index must be an int or byte, got %s", idx.TypeName()))
		}
		if i < 0 || i >= len(r.Items) {
			return everr(invalidMemberAccessError(n.P, "list index %d out of bounds (length %d)", i, len(r.Items)))
		}
		return ev(r.Items[i])
	case value.String:
		i, ok := indexAsInt(idx)
		if !ok {
			return everr(typeError(n.P, "string index must be an int or byte, got %s", idx.TypeName()))
		}
		runes := []rune(r.V)
		if i < 0 || i >= len(runes) {
			return everr(invalidMemberAccessError(n.P, "string index %d out of bounds (length %d)", i, len(runes)))
		}
		return ev(value.String{V: string(runes[i])})
	case *value.Dict:
		v, ok := r.Get(idx)
		if !ok {
			return everr(invalidMemberAccessError(n.P, "dict has no entry for the given key"))
		}
		return ev(v)
	default:
		return everr(typeError(n.P, "cannot index into a value of type %s", root.TypeName()))
	}
}

// indexAsInt accepts Int (non-negative, fits in an int) or Byte.
func indexAsInt(v value.Value) (int, bool) {
	switch vv := v.(type) {
	case value.Int:
		if !vv.V.IsInt64() {
			return 0, false
		}
		n := vv.V.Int64()
		if n < 0 {
			return 0, false
		}
		return int(n), true
	case value.Byte:
		return int(vv.V), true
	default:
		return 0, false
	}
}
