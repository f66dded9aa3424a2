package eval

import (
	"strings"

	"icelang/ast"
	"icelang/scope"
	"icelang/sourcerange"
	"icelang/value"
)

// VisitFunctionCall resolves a call's callee: a bare identifier
// matching a stdlib name dispatches there first; otherwise the callee
// must be a user function group resolvable by argument count. icelang
// has no first-class function values, so any other callee expression is
// CalledNonFunction.
func (e *Evaluator) VisitFunctionCall(n ast.FunctionCall) any {
	ident, isIdent := n.Root.(ast.VariableAccess)
	if !isIdent {
		if _, err := e.Eval(n.Root); err != nil {
			return everr(err)
		}
		return everr(calledNonFunctionError(n.P))
	}

	if builtin, ok := e.Stdlib[ident.Name]; ok {
		args, err := e.evalArgs(n.Args)
		if err != nil {
			return everr(err)
		}
		return e.callStdlib(ident.Name, builtin, args, n.P)
	}

	group, lerr := e.State.CallStack.LookupFunctionGroupOrErr(ident.Name)
	if lerr != nil {
		return everr(toRuntimeError(lerr, n.P, ident.Name))
	}
	args, err := e.evalArgs(n.Args)
	if err != nil {
		return everr(err)
	}
	fn, ok := group.Resolve(len(args))
	if !ok {
		return everr(invalidOverloadError(n.P, ident.Name, len(args)))
	}
	return e.callUserFunction(ident.Name, fn, args, n.P)
}

func (e *Evaluator) evalArgs(exprs []ast.Expression) ([]value.Value, error) {
	args := make([]value.Value, len(exprs))
	for i, a := range exprs {
		v, err := e.Eval(a)
		if err != nil {
			return nil, err
		}
		args[i] = v
	}
	return args, nil
}

func (e *Evaluator) callStdlib(name string, fn StdlibFunc, args []value.Value, pos sourcerange.SourceRange) any {
	frame := scope.NewStackFrame(name + "(...)")
	e.State.CallStack.Push(frame)
	v, err := fn(args, pos, e.State)
	e.State.CallStack.Pop()
	if err != nil {
		return everr(attachTrace(err, frame.DisplayName, pos))
	}
	return ev(v)
}

func (e *Evaluator) callUserFunction(name string, fn *scope.Function, args []value.Value, callPos sourcerange.SourceRange) any {
	frame := scope.NewStackFrame(functionSignature(name, fn.Params))

	if fn.Params.Variadic && len(fn.Params.Polyadic) == 0 {
		frame.DeclareVariable(fn.Params.VariadicName, value.NewList(args))
	} else {
		for i, p := range fn.Params.Polyadic {
			if !frame.DeclareVariable(p.Name, args[i]) {
				return everr(attachTrace(identifierAlreadyDeclaredError(p.P, p.Name), frame.DisplayName, callPos))
			}
		}
	}

	e.State.CallStack.Push(frame)
	err := e.execSequence(fn.Body)
	e.State.CallStack.Pop()

	if err == nil {
		return ev(value.Null{})
	}

	if j, ok := asJump(err); ok {
		if j.kind == ast.JumpReturn {
			result := value.Value(value.Null{})
			if j.value != nil {
				result = j.value
			}
			return ev(result)
		}
		re := invalidJumpStatementError(j.pos, jumpKindName(j.kind))
		re.Trace.AddBottom(scope.Frame{DisplayName: frame.DisplayName, CallSite: callPos})
		return everr(re)
	}

	return everr(attachTrace(err, frame.DisplayName, callPos))
}

func attachTrace(err error, displayName string, callPos sourcerange.SourceRange) error {
	if re, ok := err.(*RuntimeError); ok {
		re.Trace.AddBottom(scope.Frame{DisplayName: displayName, CallSite: callPos})
		return re
	}
	return err
}

func jumpKindName(k ast.JumpKind) string {
	switch k {
	case ast.JumpBreak:
		return "break"
	case ast.JumpContinue:
		return "continue"
	case ast.JumpReturn:
		return "return"
	default:
		return "jump"
	}
}

// functionSignature renders a user function's display name the way its
// call-stack frame is labeled, e.g. "name(a, b)" or "name([rest])".
func functionSignature(name string, params ast.FunctionParams) string {
	if params.Variadic && len(params.Polyadic) == 0 {
		return name + "([" + params.VariadicName + "])"
	}
	names := make([]string, len(params.Polyadic))
	for i, p := range params.Polyadic {
		names[i] = p.Name
	}
	return name + "(" + strings.Join(names, ", ") + ")"
}
