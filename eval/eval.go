package eval

import (
	"icelang/ast"
	"icelang/runtime"
	"icelang/scope"
	"icelang/sourcerange"
	"icelang/value"
)

// StdlibFunc is the shape of a standard-library built-in: receive
// already-evaluated arguments and the call-site position, return a
// value or a runtime error. The stdlib package supplies a table of
// these; main wires it into the Evaluator so eval never imports stdlib
// (stdlib imports eval instead, for its error constructors).
type StdlibFunc func(args []value.Value, pos sourcerange.SourceRange, state *RuntimeState) (value.Value, error)

// RuntimeState is the evaluator's ambient, mutable state threaded
// through every call: the call stack, the most recently computed
// expression value (surfaced by the REPL), and the host seams (clock/
// rng/io/args) bundled as runtime.Runtime.
type RuntimeState struct {
	CallStack       *scope.CallStack
	MostRecentValue value.Value
	RT              *runtime.Runtime
}

// NewRuntimeState constructs a fresh RuntimeState with an empty global
// call stack.
func NewRuntimeState(rt *runtime.Runtime) *RuntimeState {
	return &RuntimeState{CallStack: scope.NewCallStack(), MostRecentValue: value.Null{}, RT: rt}
}

// Evaluator walks the AST, implementing ast.ExpressionVisitor and
// ast.StmtVisitor, backed by a scope.CallStack and a stdlib dispatch
// table.
type Evaluator struct {
	State  *RuntimeState
	Stdlib map[string]StdlibFunc
}

// New constructs an Evaluator over state, dispatching bare-identifier
// calls matching a stdlib name to stdlib first.
func New(state *RuntimeState, stdlib map[string]StdlibFunc) *Evaluator {
	return &Evaluator{State: state, Stdlib: stdlib}
}

// exprResult is the payload every ExpressionVisitor method returns,
// smuggled through the `any`-typed Accept/Visit interface.
type exprResult struct {
	v   value.Value
	err error
}

// stmtResult is the payload every StmtVisitor method returns. err is
// either a *RuntimeError or a *jumpSignal.
type stmtResult struct {
	err error
}

func ev(v value.Value) any        { return exprResult{v: v} }
func everr(err error) any         { return exprResult{err: err} }
func st() any                     { return stmtResult{} }
func sterr(err error) any         { return stmtResult{err: err} }

// Eval evaluates expr, unpacking the Accept-dispatch result.
func (e *Evaluator) Eval(expr ast.Expression) (value.Value, error) {
	r := expr.Accept(e).(exprResult)
	return r.v, r.err
}

// Exec executes stmt, unpacking the Accept-dispatch result.
func (e *Evaluator) Exec(stmt ast.Stmt) error {
	r := stmt.Accept(e).(stmtResult)
	return r.err
}

// ExecBlock runs stmts in a fresh child scope of the current frame,
// popping it on the way out regardless of how execution ends.
func (e *Evaluator) ExecBlock(stmts []ast.Stmt) error {
	frame := e.State.CallStack.Current()
	frame.PushScope()
	defer frame.PopScope()
	return e.execSequence(stmts)
}

func (e *Evaluator) execSequence(stmts []ast.Stmt) error {
	for _, s := range stmts {
		if err := e.Exec(s); err != nil {
			return err
		}
	}
	return nil
}

// Run executes a full program's top-level statements directly in the
// call stack's base frame (no extra scope pushed, so top-level `let`s
// persist across successive REPL entries sharing one RuntimeState). A
// break/continue/return reaching top level uncaught becomes an
// InvalidJumpStatement error, matching a function body's handling of
// the same case.
func (e *Evaluator) Run(stmts []ast.Stmt) error {
	err := e.execSequence(stmts)
	if err == nil {
		return nil
	}
	if j, ok := asJump(err); ok {
		return invalidJumpStatementError(j.pos, jumpKindName(j.kind))
	}
	return err
}
