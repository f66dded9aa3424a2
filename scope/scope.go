// Package scope implements the call stack and symbol table model that
// backs the evaluator's dynamic, frame-level scoping: CallStack holds a
// base (global) frame plus the stack of active call frames; each
// StackFrame holds a base scope plus a stack of nested block/loop
// scopes; each SymbolTable holds variables and function groups. A
// function call pushes a fresh frame that can see its own scopes and
// the whole base frame (including any block scopes open in it), but
// never the scopes of another call frame — scoping is dynamic at the
// frame level, not lexical.
package scope

import (
	"fmt"

	"icelang/ast"
	"icelang/sourcerange"
	"icelang/value"
)

// SymbolTable is one lexical scope's bindings.
type SymbolTable struct {
	variables map[string]value.Value
	functions map[string]*FunctionGroup
}

// NewSymbolTable constructs an empty scope.
func NewSymbolTable() *SymbolTable {
	return &SymbolTable{
		variables: make(map[string]value.Value),
		functions: make(map[string]*FunctionGroup),
	}
}

// DeclareVariable introduces name in this scope. ok is false if name is
// already declared here (IdentifierAlreadyDeclared, per spec invariant).
func (s *SymbolTable) DeclareVariable(name string, v value.Value) bool {
	if _, exists := s.variables[name]; exists {
		return false
	}
	s.variables[name] = v
	return true
}

// GetVariable looks up name in this scope only (no walking outward).
func (s *SymbolTable) GetVariable(name string) (value.Value, bool) {
	v, ok := s.variables[name]
	return v, ok
}

// SetVariable assigns to an already-declared name in this scope.
func (s *SymbolTable) SetVariable(name string, v value.Value) bool {
	if _, exists := s.variables[name]; !exists {
		return false
	}
	s.variables[name] = v
	return true
}

// Function is one overload body: a fixed parameter list (or a single
// variadic collector), a body, and the position of its declaration.
type Function struct {
	Params ast.FunctionParams
	Body   []ast.Stmt
	Pos    sourcerange.SourceRange
}

// Arity returns the number of polyadic parameters; meaningless for a
// variadic function.
func (f *Function) Arity() int { return len(f.Params.Polyadic) }

// FunctionGroup is every overload declared under one name: at most one
// variadic overload, plus at most one polyadic overload per arity.
type FunctionGroup struct {
	Variadic  *Function
	Polyadic  map[int]*Function
}

// NewFunctionGroup constructs an empty group.
func NewFunctionGroup() *FunctionGroup {
	return &FunctionGroup{Polyadic: make(map[int]*Function)}
}

// AddOverload adds fn to the group. ok is false if it collides with an
// existing overload (same arity polyadic, or a second variadic).
func (g *FunctionGroup) AddOverload(fn *Function) bool {
	if fn.Params.Variadic {
		if g.Variadic != nil {
			return false
		}
		g.Variadic = fn
		return true
	}
	arity := fn.Arity()
	if _, exists := g.Polyadic[arity]; exists {
		return false
	}
	g.Polyadic[arity] = fn
	return true
}

// Resolve picks the overload to invoke for argCount arguments: an exact
// polyadic arity match wins, falling back to the variadic overload, else
// ok is false (InvalidOverload).
func (g *FunctionGroup) Resolve(argCount int) (fn *Function, ok bool) {
	if f, exists := g.Polyadic[argCount]; exists {
		return f, true
	}
	if g.Variadic != nil {
		return g.Variadic, true
	}
	return nil, false
}

// StackFrame is one call's activation record: a display name (used in
// stack traces), a base scope, and a stack of nested block/loop scopes
// pushed on top of it.
type StackFrame struct {
	DisplayName string
	base        *SymbolTable
	scopes      []*SymbolTable
}

// NewStackFrame constructs a frame with an empty base scope.
func NewStackFrame(displayName string) *StackFrame {
	return &StackFrame{DisplayName: displayName, base: NewSymbolTable()}
}

// PushScope opens a new nested scope (entering a block or loop body).
func (f *StackFrame) PushScope() {
	f.scopes = append(f.scopes, NewSymbolTable())
}

// PopScope closes the innermost nested scope.
func (f *StackFrame) PopScope() {
	f.scopes = f.scopes[:len(f.scopes)-1]
}

// innermost returns the frame's current scope: the top of the nested
// stack, or the base scope if no nested scope is open.
func (f *StackFrame) innermost() *SymbolTable {
	if len(f.scopes) == 0 {
		return f.base
	}
	return f.scopes[len(f.scopes)-1]
}

// DeclareVariable declares name in the frame's current (innermost) scope.
func (f *StackFrame) DeclareVariable(name string, v value.Value) bool {
	return f.innermost().DeclareVariable(name, v)
}

// DeclareFunction adds fn as an overload of name's function group in the
// frame's current (innermost) scope.
func (f *StackFrame) DeclareFunction(name string, fn *Function) bool {
	scope := f.innermost()
	group, exists := scope.functions[name]
	if !exists {
		group = NewFunctionGroup()
		scope.functions[name] = group
	}
	return group.AddOverload(fn)
}

// allScopesInnerToOuter yields the frame's scopes from innermost nested
// scope down to (and including) its base scope.
func (f *StackFrame) allScopesInnerToOuter() []*SymbolTable {
	out := make([]*SymbolTable, 0, len(f.scopes)+1)
	for i := len(f.scopes) - 1; i >= 0; i-- {
		out = append(out, f.scopes[i])
	}
	out = append(out, f.base)
	return out
}

// LookupVariable walks the frame's scopes innermost-to-outermost.
func (f *StackFrame) LookupVariable(name string) (value.Value, bool) {
	for _, s := range f.allScopesInnerToOuter() {
		if v, ok := s.GetVariable(name); ok {
			return v, true
		}
	}
	return nil, false
}

// AssignVariable finds the innermost scope name is already declared in
// and updates it there.
func (f *StackFrame) AssignVariable(name string, v value.Value) bool {
	for _, s := range f.allScopesInnerToOuter() {
		if s.SetVariable(name, v) {
			return true
		}
	}
	return false
}

// LookupFunctionGroup walks the frame's scopes innermost-to-outermost.
func (f *StackFrame) LookupFunctionGroup(name string) (*FunctionGroup, bool) {
	for _, s := range f.allScopesInnerToOuter() {
		if g, ok := s.functions[name]; ok {
			return g, true
		}
	}
	return nil, false
}

// CallStack is the base (global) frame plus the stack of active call
// frames. Variable/function lookup during a call consults only the
// callee's own frame, then the base frame — never the caller's frame —
// which is what makes this dynamic, not lexical, scoping.
type CallStack struct {
	Base   *StackFrame
	frames []*StackFrame
}

// NewCallStack constructs a CallStack with an empty global frame.
func NewCallStack() *CallStack {
	return &CallStack{Base: NewStackFrame("<global>")}
}

// Push enters a new call frame.
func (c *CallStack) Push(f *StackFrame) { c.frames = append(c.frames, f) }

// Pop leaves the innermost call frame.
func (c *CallStack) Pop() { c.frames = c.frames[:len(c.frames)-1] }

// Current returns the active frame: the top of the call stack, or the
// base frame if no call is in progress.
func (c *CallStack) Current() *StackFrame {
	if len(c.frames) == 0 {
		return c.Base
	}
	return c.frames[len(c.frames)-1]
}

// LookupVariable looks up name in the current frame, falling through to
// the call-stack base frame if the current frame is itself a call frame
// (not the base frame) and doesn't have it.
func (c *CallStack) LookupVariable(name string) (value.Value, bool) {
	cur := c.Current()
	if v, ok := cur.LookupVariable(name); ok {
		return v, true
	}
	if cur != c.Base {
		return c.Base.LookupVariable(name)
	}
	return nil, false
}

// AssignVariable mirrors LookupVariable's frame fallthrough for `=`.
func (c *CallStack) AssignVariable(name string, v value.Value) bool {
	cur := c.Current()
	if cur.AssignVariable(name, v) {
		return true
	}
	if cur != c.Base {
		return c.Base.AssignVariable(name, v)
	}
	return false
}

// LookupFunctionGroup mirrors LookupVariable's frame fallthrough.
func (c *CallStack) LookupFunctionGroup(name string) (*FunctionGroup, bool) {
	cur := c.Current()
	if g, ok := cur.LookupFunctionGroup(name); ok {
		return g, true
	}
	if cur != c.Base {
		return c.Base.LookupFunctionGroup(name)
	}
	return nil, false
}

// DeclareVariableOrErr declares name in the current frame's innermost
// scope, returning an IdentifierAlreadyDeclared error on collision.
func (c *CallStack) DeclareVariableOrErr(name string, v value.Value) error {
	if !c.Current().DeclareVariable(name, v) {
		return &Error{Kind: IdentifierAlreadyDeclared, Identifier: name}
	}
	return nil
}

// LookupVariableOrErr mirrors LookupVariable, returning an
// UndefinedReference error instead of a bare bool.
func (c *CallStack) LookupVariableOrErr(name string) (value.Value, error) {
	if v, ok := c.LookupVariable(name); ok {
		return v, nil
	}
	return nil, &Error{Kind: UndefinedReference, Identifier: name}
}

// AssignVariableOrErr mirrors AssignVariable, returning an
// UndefinedReference error instead of a bare bool.
func (c *CallStack) AssignVariableOrErr(name string, v value.Value) error {
	if c.AssignVariable(name, v) {
		return nil
	}
	return &Error{Kind: UndefinedReference, Identifier: name}
}

// LookupFunctionGroupOrErr mirrors LookupFunctionGroup, returning an
// UndefinedReference error instead of a bare bool.
func (c *CallStack) LookupFunctionGroupOrErr(name string) (*FunctionGroup, error) {
	if g, ok := c.LookupFunctionGroup(name); ok {
		return g, nil
	}
	return nil, &Error{Kind: UndefinedReference, Identifier: name}
}

// DeclareFunctionOrErr adds fn as an overload of name in the current
// frame's innermost scope, returning an InvalidOverload error on
// collision with an existing overload.
func (c *CallStack) DeclareFunctionOrErr(name string, fn *Function) error {
	if !c.Current().DeclareFunction(name, fn) {
		return &Error{Kind: InvalidOverload, Identifier: name}
	}
	return nil
}

// Frame is a snapshot (display_name, call_site_pos) appended to a
// runtime error's stack trace at each call boundary.
type Frame struct {
	DisplayName string
	CallSite    sourcerange.SourceRange
}

func (fr Frame) String() string {
	return fmt.Sprintf("%s %s", fr.DisplayName, fr.CallSite.String())
}
