package eval

import (
	"icelang/ast"
	"icelang/token"
	"icelang/value"
)

// compoundBinOp maps an augmented-assignment punctuator to the binary
// operator it combines with the prior value (e.g. `+=` -> `+`).
var compoundBinOp = map[token.PunctuatorKind]token.PunctuatorKind{
	token.PPlusEq:     token.PPlus,
	token.PMinusEq:    token.PMinus,
	token.PStarEq:     token.PStar,
	token.PSlashEq:    token.PSlash,
	token.PPercentEq:  token.PPercent,
	token.PStarStarEq: token.PStarStar,
	token.PShlEq:      token.PShl,
	token.PShrEq:      token.PShr,
	token.PAmpEq:      token.PAmp,
	token.PCaretEq:    token.PCaret,
	token.PPipeEq:     token.PPipe,
	token.PAndAndEq:   token.PAndAnd,
	token.POrOrEq:     token.POrOr,
}

// VisitAssignment implements `lhs = rhs` and every compound-assignment
// form. Lhs must be a VariableAccess, DotMemberAccess, or
// ComputedMemberAccess; assignment is itself an expression, returning
// the value that was assigned.
func (e *Evaluator) VisitAssignment(n ast.Assignment) any {
	rhs, err := e.Eval(n.Rhs)
	if err != nil {
		return everr(err)
	}

	newVal := rhs
	if n.Op != token.PAssign {
		cur, err := e.Eval(n.Lhs)
		if err != nil {
			return everr(err)
		}
		binOp, ok := compoundBinOp[n.Op]
		if !ok {
			return everr(typeError(n.P, "unknown compound-assignment operator"))
		}
		combined, rerr := applyBinaryOp(binOp, cur, rhs, n.P)
		if rerr != nil {
			return everr(rerr)
		}
		newVal = combined
	}

	if err := e.assignTo(n.Lhs, newVal); err != nil {
		return everr(err)
	}
	return ev(newVal)
}

func (e *Evaluator) assignTo(lhs ast.Expression, v value.Value) error {
	switch l := lhs.(type) {
	case ast.VariableAccess:
		if !e.State.CallStack.AssignVariable(l.Name, v) {
			return undefinedReferenceError(l.P, l.Name)
		}
		return nil
	case ast.DotMemberAccess:
		root, err := e.Eval(l.Root)
		if err != nil {
			return err
		}
		d, ok := root.(*value.Dict)
		if !ok {
			return typeError(l.P, "member access with '.' requires a dict, got %s", root.TypeName())
		}
		d.Set(value.String{V: l.Member}, v)
		return nil
	case ast.ComputedMemberAccess:
		root, err := e.Eval(l.Root)
		if err != nil {
			return err
		}
		idx, err := e.Eval(l.Index)
		if err != nil {
			return err
		}
		switch r := root.(type) {
		case *value.List:
			i, ok := indexAsInt(idx)
			if !ok {
				return typeError(l.P, "list index must be an int or byte, got %s", idx.TypeName())
			}
			if i < 0 || i >= len(r.Items) {
				return invalidMemberAccessError(l.P, "list index %d out of bounds (length %d)", i, len(r.Items))
			}
			r.Items[i] = v
			return nil
		case *value.Dict:
			r.Set(idx, v)
			return nil
		default:
			return typeError(l.P, "cannot assign into an index of a value of type %s", root.TypeName())
		}
	default:
		return typeError(lhs.Pos(), "invalid assignment target")
	}
}
