package scope

import (
	"testing"

	"icelang/ast"
	"icelang/value"
)

func TestVariableLookupWalksScopesInnerToOuter(t *testing.T) {
	cs := NewCallStack()
	if err := cs.DeclareVariableOrErr("x", value.NewIntFromInt64(1)); err != nil {
		t.Fatal(err)
	}
	cs.Current().PushScope()
	if err := cs.DeclareVariableOrErr("y", value.NewIntFromInt64(2)); err != nil {
		t.Fatal(err)
	}

	if _, err := cs.LookupVariableOrErr("x"); err != nil {
		t.Fatalf("expected outer 'x' to be visible from inner scope: %v", err)
	}
	if _, err := cs.LookupVariableOrErr("y"); err != nil {
		t.Fatalf("expected 'y' to be visible in its own scope: %v", err)
	}

	cs.Current().PopScope()
	if _, err := cs.LookupVariableOrErr("y"); err == nil {
		t.Fatal("expected 'y' to be out of scope after PopScope")
	}
}

func TestDuplicateVariableInSameScopeIsRejected(t *testing.T) {
	cs := NewCallStack()
	if err := cs.DeclareVariableOrErr("x", value.NewIntFromInt64(1)); err != nil {
		t.Fatal(err)
	}
	err := cs.DeclareVariableOrErr("x", value.NewIntFromInt64(2))
	if err == nil {
		t.Fatal("expected IdentifierAlreadyDeclared error")
	}
	if se, ok := err.(*Error); !ok || se.Kind != IdentifierAlreadyDeclared {
		t.Fatalf("err = %#v, want IdentifierAlreadyDeclared", err)
	}
}

func TestFunctionsDoNotCloseOverCallerScopes(t *testing.T) {
	cs := NewCallStack()
	// Declare 'secret' only in the base (global) frame's current scope.
	if err := cs.DeclareVariableOrErr("secret", value.NewIntFromInt64(42)); err != nil {
		t.Fatal(err)
	}
	// Simulate a caller's own call frame with an open block scope, where
	// the caller stashes a local the callee must NOT see.
	cs.Push(NewStackFrame("caller"))
	defer cs.Pop()
	cs.Current().PushScope()
	if err := cs.DeclareVariableOrErr("callerLocal", value.NewIntFromInt64(7)); err != nil {
		t.Fatal(err)
	}

	// Push a fresh call frame for the callee, as the evaluator would do at
	// a function call boundary.
	cs.Push(NewStackFrame("callee"))
	defer cs.Pop()

	if _, err := cs.LookupVariableOrErr("callerLocal"); err == nil {
		t.Fatal("callee frame must not see the caller's block-scope locals")
	}
	// The base/global frame is still reachable as the fallthrough.
	if _, err := cs.LookupVariableOrErr("secret"); err != nil {
		t.Fatalf("callee frame should still see base frame globals: %v", err)
	}
}

func TestFunctionGroupOverloadResolution(t *testing.T) {
	g := NewFunctionGroup()
	one := &Function{Params: ast.FunctionParams{Polyadic: []ast.Param{{Name: "a"}}}}
	two := &Function{Params: ast.FunctionParams{Polyadic: []ast.Param{{Name: "a"}, {Name: "b"}}}}
	variadic := &Function{Params: ast.FunctionParams{Variadic: true, VariadicName: "rest"}}

	if !g.AddOverload(one) || !g.AddOverload(two) || !g.AddOverload(variadic) {
		t.Fatal("expected all three distinct overloads to be accepted")
	}

	if fn, ok := g.Resolve(1); !ok || fn != one {
		t.Fatalf("Resolve(1) = %v, %v; want one, true", fn, ok)
	}
	if fn, ok := g.Resolve(2); !ok || fn != two {
		t.Fatalf("Resolve(2) = %v, %v; want two, true", fn, ok)
	}
	if fn, ok := g.Resolve(5); !ok || fn != variadic {
		t.Fatalf("Resolve(5) = %v, %v; want variadic, true", fn, ok)
	}
}

func TestDuplicatePolyadicArityRejected(t *testing.T) {
	g := NewFunctionGroup()
	a := &Function{Params: ast.FunctionParams{Polyadic: []ast.Param{{Name: "a"}}}}
	b := &Function{Params: ast.FunctionParams{Polyadic: []ast.Param{{Name: "x"}}}}
	if !g.AddOverload(a) {
		t.Fatal("expected first overload to be accepted")
	}
	if g.AddOverload(b) {
		t.Fatal("expected duplicate-arity overload to be rejected")
	}
}

func TestDuplicateVariadicOverloadRejected(t *testing.T) {
	g := NewFunctionGroup()
	v1 := &Function{Params: ast.FunctionParams{Variadic: true, VariadicName: "a"}}
	v2 := &Function{Params: ast.FunctionParams{Variadic: true, VariadicName: "b"}}
	if !g.AddOverload(v1) {
		t.Fatal("expected first variadic overload to be accepted")
	}
	if g.AddOverload(v2) {
		t.Fatal("expected a second variadic overload to be rejected")
	}
}

func TestNoOverloadForArityIsInvalid(t *testing.T) {
	cs := NewCallStack()
	fn := &Function{Params: ast.FunctionParams{Polyadic: []ast.Param{{Name: "a"}}}}
	if err := cs.DeclareFunctionOrErr("f", fn); err != nil {
		t.Fatal(err)
	}
	group, err := cs.LookupFunctionGroupOrErr("f")
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := group.Resolve(3); ok {
		t.Fatal("expected no overload to match 3 arguments")
	}
}

func TestAssignVariableRequiresPriorDeclaration(t *testing.T) {
	cs := NewCallStack()
	if err := cs.AssignVariableOrErr("undeclared", value.NewIntFromInt64(1)); err == nil {
		t.Fatal("expected UndefinedReference assigning to an undeclared variable")
	}
}
