package eval

import (
	"icelang/ast"
	"icelang/scope"
	"icelang/sourcerange"
	"icelang/value"
)

func (e *Evaluator) VisitExpressionStatement(n ast.ExpressionStatement) any {
	v, err := e.Eval(n.Expr)
	if err != nil {
		return sterr(err)
	}
	e.State.MostRecentValue = v
	return st()
}

// VisitVariableDeclaration declares one or more comma-separated bindings
// in the current scope; a binding with no initializer defaults to Null.
func (e *Evaluator) VisitVariableDeclaration(n ast.VariableDeclaration) any {
	for _, d := range n.Decls {
		var v value.Value = value.Null{}
		if d.Init != nil {
			val, err := e.Eval(d.Init)
			if err != nil {
				return sterr(err)
			}
			v = val
		}
		if err := e.State.CallStack.DeclareVariableOrErr(d.Name, v); err != nil {
			return sterr(toRuntimeError(err, d.P, d.Name))
		}
	}
	return st()
}

func (e *Evaluator) VisitFunctionDeclaration(n ast.FunctionDeclaration) any {
	fn := &scope.Function{Params: n.Params, Body: n.Body, Pos: n.P}
	if err := e.State.CallStack.DeclareFunctionOrErr(n.Name, fn); err != nil {
		return sterr(toRuntimeError(err, n.P, n.Name))
	}
	return st()
}

// VisitJumpStatement evaluates the jump's optional value expression (for
// any of break/continue/return; only a return's value is used by its
// catcher) and raises the non-linear jumpSignal an enclosing loop or
// function call catches.
func (e *Evaluator) VisitJumpStatement(n ast.JumpStatement) any {
	var v value.Value
	if n.Value != nil {
		val, err := e.Eval(n.Value)
		if err != nil {
			return sterr(err)
		}
		v = val
	}
	return sterr(&jumpSignal{kind: n.Kind, value: v, pos: n.P})
}

// runLoopBody executes one iteration of a loop body in a fresh scope.
// stop reports whether the enclosing loop statement should return
// immediately (a break, an uncaught return, or any error); err is the
// result to propagate in that case (nil for a plain break).
func (e *Evaluator) runLoopBody(body []ast.Stmt) (stop bool, err error) {
	frame := e.State.CallStack.Current()
	frame.PushScope()
	bodyErr := e.execSequence(body)
	frame.PopScope()

	if bodyErr == nil {
		return false, nil
	}
	if j, ok := asJump(bodyErr); ok {
		switch j.kind {
		case ast.JumpBreak:
			return true, nil
		case ast.JumpContinue:
			return false, nil
		default: // return: not caught here, propagate to the enclosing call
			return true, bodyErr
		}
	}
	return true, bodyErr
}

// VisitSimpleLoop implements both `loop { ... }` (Count nil) and
// `loop EXPR { ... }` (EXPR evaluated once, Int/Byte, negative is an
// error), with a fresh scope per iteration.
func (e *Evaluator) VisitSimpleLoop(n ast.SimpleLoop) any {
	if n.Count == nil {
		for {
			if stop, err := e.runLoopBody(n.Body); stop {
				return sterr(err)
			}
		}
	}

	countVal, cerr := e.Eval(n.Count)
	if cerr != nil {
		return sterr(cerr)
	}
	count, ok := loopCount(countVal)
	if !ok {
		return sterr(typeError(n.P, "loop count must be a non-negative int or byte, got %s", countVal.TypeName()))
	}
	for i := 0; i < count; i++ {
		if stop, err := e.runLoopBody(n.Body); stop {
			return sterr(err)
		}
	}
	return st()
}

func loopCount(v value.Value) (int, bool) {
	switch vv := v.(type) {
	case value.Int:
		if !vv.V.IsInt64() || vv.V.Sign() < 0 {
			return 0, false
		}
		return int(vv.V.Int64()), true
	case value.Byte:
		return int(vv.V), true
	default:
		return 0, false
	}
}

func (e *Evaluator) VisitWhileLoop(n ast.WhileLoop) any {
	for {
		condVal, err := e.Eval(n.Cond)
		if err != nil {
			return sterr(err)
		}
		cb, ok := condVal.(value.Bool)
		if !ok {
			return sterr(typeError(n.P, "while condition must be a bool, got %s", condVal.TypeName()))
		}
		if !cb.V {
			return st()
		}
		if stop, err := e.runLoopBody(n.Body); stop {
			return sterr(err)
		}
	}
}

// VisitForLoop iterates List elements, String Unicode scalars, or Dict
// keys, declaring Ident fresh in a new scope each iteration.
func (e *Evaluator) VisitForLoop(n ast.ForLoop) any {
	iterVal, err := e.Eval(n.Iterable)
	if err != nil {
		return sterr(err)
	}

	items, ierr := forIterItems(iterVal, n.P)
	if ierr != nil {
		return sterr(ierr)
	}

	for _, item := range items {
		frame := e.State.CallStack.Current()
		frame.PushScope()
		frame.DeclareVariable(n.Ident, item)
		bodyErr := e.execSequence(n.Body)
		frame.PopScope()

		if bodyErr == nil {
			continue
		}
		if j, ok := asJump(bodyErr); ok {
			switch j.kind {
			case ast.JumpContinue:
				continue
			case ast.JumpBreak:
				return st()
			}
		}
		return sterr(bodyErr)
	}
	return st()
}

// forIterItems expands the `for` loop's iterable into the sequence of
// bound values: List elements as-is, String as one-rune strings, Dict
// as its keys.
func forIterItems(v value.Value, pos sourcerange.SourceRange) ([]value.Value, *RuntimeError) {
	switch vv := v.(type) {
	case *value.List:
		return append([]value.Value(nil), vv.Items...), nil
	case value.String:
		runes := []rune(vv.V)
		items := make([]value.Value, len(runes))
		for i, r := range runes {
			items[i] = value.String{V: string(r)}
		}
		return items, nil
	case *value.Dict:
		return vv.Keys(), nil
	default:
		return nil, typeError(pos, "cannot iterate over a value of type %s", v.TypeName())
	}
}

func (e *Evaluator) VisitIfElseStatement(n ast.IfElseStatement) any {
	for _, branch := range n.Branches {
		condVal, err := e.Eval(branch.Cond)
		if err != nil {
			return sterr(err)
		}
		cb, ok := condVal.(value.Bool)
		if !ok {
			return sterr(typeError(n.P, "if condition must be a bool, got %s", condVal.TypeName()))
		}
		if cb.V {
			return sterr(e.ExecBlock(branch.Body))
		}
	}
	if n.Else != nil {
		return sterr(e.ExecBlock(n.Else))
	}
	return st()
}

// VisitMatchStatement evaluates the scrutinee once, then tests it for
// equality against each arm's pattern in order; no fallthrough, and an
// unmatched scrutinee is not an error.
func (e *Evaluator) VisitMatchStatement(n ast.MatchStatement) any {
	scrutinee, err := e.Eval(n.Scrutinee)
	if err != nil {
		return sterr(err)
	}
	for _, arm := range n.Arms {
		patternVal, err := e.Eval(arm.Pattern)
		if err != nil {
			return sterr(err)
		}
		if value.Equal(scrutinee, patternVal) {
			return sterr(e.ExecBlock(arm.Body))
		}
	}
	return st()
}
