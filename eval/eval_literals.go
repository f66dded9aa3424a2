package eval

import (
	"icelang/ast"
	"icelang/value"
)

// VisitLiteral deep-copies the literal's payload so repeated evaluation
// (e.g. inside a loop body) never aliases a shared list/dict literal.
func (e *Evaluator) VisitLiteral(n ast.Literal) any {
	return ev(value.DeepCopy(n.Value))
}

func (e *Evaluator) VisitVariableAccess(n ast.VariableAccess) any {
	v, err := e.State.CallStack.LookupVariableOrErr(n.Name)
	if err != nil {
		return everr(toRuntimeError(err, n.P, n.Name))
	}
	return ev(v)
}

func (e *Evaluator) VisitListLiteral(n ast.ListLiteral) any {
	items := make([]value.Value, len(n.Elements))
	for i, el := range n.Elements {
		v, err := e.Eval(el)
		if err != nil {
			return everr(err)
		}
		items[i] = v
	}
	return ev(value.NewList(items))
}

func (e *Evaluator) VisitDictLiteral(n ast.DictLiteral) any {
	d := value.NewDict()
	for _, entry := range n.Entries {
		k, err := e.Eval(entry.Key)
		if err != nil {
			return everr(err)
		}
		v, err := e.Eval(entry.Val)
		if err != nil {
			return everr(err)
		}
		d.Set(k, v)
	}
	return ev(d)
}

// VisitFormattedStringLiteral concatenates strictly left-to-right:
// StartLiteral, display(FirstExpr), then each continuation's literal
// text followed by display(Expr), then EndLiteral.
func (e *Evaluator) VisitFormattedStringLiteral(n ast.FormattedStringLiteral) any {
	var b []byte
	b = append(b, n.StartLiteral...)

	first, err := e.Eval(n.FirstExpr)
	if err != nil {
		return everr(err)
	}
	b = append(b, value.Display(first)...)

	for _, cont := range n.Continuations {
		b = append(b, cont.Literal...)
		v, err := e.Eval(cont.Expr)
		if err != nil {
			return everr(err)
		}
		b = append(b, value.Display(v)...)
	}
	b = append(b, n.EndLiteral...)
	return ev(value.String{V: string(b)})
}

func (e *Evaluator) VisitTypeCast(n ast.TypeCast) any {
	v, err := e.Eval(n.Expr)
	if err != nil {
		return everr(err)
	}
	result, ok := value.Cast(v, n.DstType)
	if !ok {
		return everr(typeError(n.P, "cannot cast a value of type %s to %s", v.TypeName(), n.DstType))
	}
	return ev(result)
}
