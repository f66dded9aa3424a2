package ast

import "icelang/sourcerange"

// ExpressionStatement evaluates an expression (e.g. a bare function
// call, or an assignment); its value is kept as the runtime's most
// recent value.
type ExpressionStatement struct {
	Expr Expression
	P    sourcerange.SourceRange
}

func (n ExpressionStatement) Accept(v StmtVisitor) any     { return v.VisitExpressionStatement(n) }
func (n ExpressionStatement) Pos() sourcerange.SourceRange { return n.P }

// VarDecl is one `name` or `name = init` binding within a `let`
// statement; Init is nil for an uninitialized (implicitly null) binding.
type VarDecl struct {
	Name string
	Init Expression
	P    sourcerange.SourceRange
}

// VariableDeclaration is a `let a = 1, b, c = 2;` statement: one or more
// comma-separated bindings introduced in the current scope.
type VariableDeclaration struct {
	Decls []VarDecl
	P     sourcerange.SourceRange
}

func (n VariableDeclaration) Accept(v StmtVisitor) any     { return v.VisitVariableDeclaration(n) }
func (n VariableDeclaration) Pos() sourcerange.SourceRange { return n.P }

// Param is one named parameter of a polyadic function declaration.
type Param struct {
	Name string
	P    sourcerange.SourceRange
}

// FunctionParams is a function's parameter list: either a fixed
// (polyadic) list of named parameters, or a single variadic parameter
// that collects all arguments as a List.
type FunctionParams struct {
	Polyadic     []Param
	Variadic     bool
	VariadicName string
	VariadicPos  sourcerange.SourceRange
}

// FunctionDeclaration declares (or adds an overload to) a named
// function group.
type FunctionDeclaration struct {
	Name   string
	Params FunctionParams
	Body   []Stmt
	P      sourcerange.SourceRange
}

func (n FunctionDeclaration) Accept(v StmtVisitor) any     { return v.VisitFunctionDeclaration(n) }
func (n FunctionDeclaration) Pos() sourcerange.SourceRange { return n.P }

// JumpKind distinguishes the three non-linear control-flow statements.
type JumpKind int

const (
	JumpBreak JumpKind = iota
	JumpContinue
	JumpReturn
)

// JumpStatement is a `break [expr]`, `continue [expr]`, or
// `return [expr]` statement; Value is nil when no expression follows.
type JumpStatement struct {
	Kind  JumpKind
	Value Expression
	P     sourcerange.SourceRange
}

func (n JumpStatement) Accept(v StmtVisitor) any     { return v.VisitJumpStatement(n) }
func (n JumpStatement) Pos() sourcerange.SourceRange { return n.P }

// SimpleLoop is a `loop { ... }` (Count nil, runs until broken) or
// `loop N { ... }` (runs exactly N times, or until broken) statement.
type SimpleLoop struct {
	Count Expression
	Body  []Stmt
	P     sourcerange.SourceRange
}

func (n SimpleLoop) Accept(v StmtVisitor) any     { return v.VisitSimpleLoop(n) }
func (n SimpleLoop) Pos() sourcerange.SourceRange { return n.P }

// WhileLoop is a `while cond { ... }` statement.
type WhileLoop struct {
	Cond Expression
	Body []Stmt
	P    sourcerange.SourceRange
}

func (n WhileLoop) Accept(v StmtVisitor) any     { return v.VisitWhileLoop(n) }
func (n WhileLoop) Pos() sourcerange.SourceRange { return n.P }

// ForLoop is a `for ident in iterable { ... }` statement.
type ForLoop struct {
	Ident    string
	Iterable Expression
	Body     []Stmt
	P        sourcerange.SourceRange
}

func (n ForLoop) Accept(v StmtVisitor) any     { return v.VisitForLoop(n) }
func (n ForLoop) Pos() sourcerange.SourceRange { return n.P }

// IfBranch is one `if`/`else if` condition-body pair.
type IfBranch struct {
	Cond Expression
	Body []Stmt
}

// IfElseStatement is an `if ... else if ... else ...` chain; Else is
// nil when no trailing else clause is present.
type IfElseStatement struct {
	Branches []IfBranch
	Else     []Stmt
	P        sourcerange.SourceRange
}

func (n IfElseStatement) Accept(v StmtVisitor) any     { return v.VisitIfElseStatement(n) }
func (n IfElseStatement) Pos() sourcerange.SourceRange { return n.P }

// MatchArm is one `pattern => { ... }` arm of a match statement; Pattern
// is any expression, tested for equality against the scrutinee.
type MatchArm struct {
	Pattern Expression
	Body    []Stmt
}

// MatchStatement evaluates Scrutinee once, then tests it for equality
// against each arm's pattern in order, running the first match's body.
// No fallthrough; if nothing matches, execution continues past the
// statement.
type MatchStatement struct {
	Scrutinee Expression
	Arms      []MatchArm
	P         sourcerange.SourceRange
}

func (n MatchStatement) Accept(v StmtVisitor) any     { return v.VisitMatchStatement(n) }
func (n MatchStatement) Pos() sourcerange.SourceRange { return n.P }
