package ast

import (
	"icelang/sourcerange"
	"icelang/token"
	"icelang/value"
)

// Literal is a literal value appearing directly in source (int, byte,
// float, bool, string, null, infinity, nan). The parser deep-copies the
// token's payload once into Value; the evaluator deep-copies it again on
// every evaluation so repeated evaluation of the same literal node never
// aliases a shared container.
type Literal struct {
	Value value.Value
	P     sourcerange.SourceRange
}

func (n Literal) Accept(v ExpressionVisitor) any { return v.VisitLiteral(n) }
func (n Literal) Pos() sourcerange.SourceRange    { return n.P }

// VariableAccess reads the current value bound to an identifier.
type VariableAccess struct {
	Name string
	P    sourcerange.SourceRange
}

func (n VariableAccess) Accept(v ExpressionVisitor) any { return v.VisitVariableAccess(n) }
func (n VariableAccess) Pos() sourcerange.SourceRange   { return n.P }

// ListLiteral is a `[e1, e2, ...]` expression.
type ListLiteral struct {
	Elements []Expression
	P        sourcerange.SourceRange
}

func (n ListLiteral) Accept(v ExpressionVisitor) any { return v.VisitListLiteral(n) }
func (n ListLiteral) Pos() sourcerange.SourceRange   { return n.P }

// DictEntry is one `key: value` pair of a dict literal.
type DictEntry struct {
	Key Expression
	Val Expression
}

// DictLiteral is a `{k1: v1, ...}` expression.
type DictLiteral struct {
	Entries []DictEntry
	P       sourcerange.SourceRange
}

func (n DictLiteral) Accept(v ExpressionVisitor) any { return v.VisitDictLiteral(n) }
func (n DictLiteral) Pos() sourcerange.SourceRange   { return n.P }

// FStringContinuation is one `}literal{` segment of a formatted string
// literal: the literal text following an interpolation expression,
// paired with the expression that follows it.
type FStringContinuation struct {
	Literal string
	Expr    Expression
}

// FormattedStringLiteral is an `f"..."` expression. Evaluation
// concatenates StartLiteral, display(FirstExpr), then for each
// continuation its Literal followed by display(Expr), then EndLiteral.
type FormattedStringLiteral struct {
	StartLiteral  string
	FirstExpr     Expression
	Continuations []FStringContinuation
	EndLiteral    string
	P             sourcerange.SourceRange
}

func (n FormattedStringLiteral) Accept(v ExpressionVisitor) any {
	return v.VisitFormattedStringLiteral(n)
}
func (n FormattedStringLiteral) Pos() sourcerange.SourceRange { return n.P }

// TypeCast is an `expr as typename` expression.
type TypeCast struct {
	Expr       Expression
	DstType    string
	DstTypePos sourcerange.SourceRange
	P          sourcerange.SourceRange
}

func (n TypeCast) Accept(v ExpressionVisitor) any { return v.VisitTypeCast(n) }
func (n TypeCast) Pos() sourcerange.SourceRange   { return n.P }

// DotMemberAccess is a `root.member` expression.
type DotMemberAccess struct {
	Root      Expression
	Member    string
	MemberPos sourcerange.SourceRange
	P         sourcerange.SourceRange
}

func (n DotMemberAccess) Accept(v ExpressionVisitor) any { return v.VisitDotMemberAccess(n) }
func (n DotMemberAccess) Pos() sourcerange.SourceRange   { return n.P }

// ComputedMemberAccess is a `root[index]` expression.
type ComputedMemberAccess struct {
	Root  Expression
	Index Expression
	P     sourcerange.SourceRange
}

func (n ComputedMemberAccess) Accept(v ExpressionVisitor) any {
	return v.VisitComputedMemberAccess(n)
}
func (n ComputedMemberAccess) Pos() sourcerange.SourceRange { return n.P }

// FunctionCall is a `root(arg1, arg2, ...)` expression; Root is usually
// a VariableAccess or DotMemberAccess but any expression evaluating to
// a callable is accepted syntactically.
type FunctionCall struct {
	Root Expression
	Args []Expression
	P    sourcerange.SourceRange
}

func (n FunctionCall) Accept(v ExpressionVisitor) any { return v.VisitFunctionCall(n) }
func (n FunctionCall) Pos() sourcerange.SourceRange   { return n.P }

// BinaryOperation is a two-operand arithmetic/logical/bitwise
// expression; Op is one of the corresponding token.PunctuatorKind
// values (+, -, *, /, %, **, &&, ||, &, |, ^, <<, >>).
type BinaryOperation struct {
	Lhs Expression
	Op  token.PunctuatorKind
	Rhs Expression
	P   sourcerange.SourceRange
}

func (n BinaryOperation) Accept(v ExpressionVisitor) any { return v.VisitBinaryOperation(n) }
func (n BinaryOperation) Pos() sourcerange.SourceRange   { return n.P }

// UnaryOperation is a one-operand prefix expression (-, !).
type UnaryOperation struct {
	Op      token.PunctuatorKind
	Operand Expression
	P       sourcerange.SourceRange
}

func (n UnaryOperation) Accept(v ExpressionVisitor) any { return v.VisitUnaryOperation(n) }
func (n UnaryOperation) Pos() sourcerange.SourceRange   { return n.P }

// ComparisonStep is one `op rhs` link of a chained comparison.
type ComparisonStep struct {
	Op  token.PunctuatorKind
	Rhs Expression
}

// Comparison is an n-ary chained comparison such as `1 < x < 5`: First
// compared against Steps[0].Rhs via Steps[0].Op, then that value against
// Steps[1].Rhs via Steps[1].Op, short-circuiting to false on the first
// failing link, each intermediate value evaluated exactly once.
type Comparison struct {
	First Expression
	Steps []ComparisonStep
	P     sourcerange.SourceRange
}

func (n Comparison) Accept(v ExpressionVisitor) any { return v.VisitComparison(n) }
func (n Comparison) Pos() sourcerange.SourceRange   { return n.P }

// InlineConditional is a `cond ? then : else` expression.
type InlineConditional struct {
	Cond, Then, Else Expression
	P                sourcerange.SourceRange
}

func (n InlineConditional) Accept(v ExpressionVisitor) any { return v.VisitInlineConditional(n) }
func (n InlineConditional) Pos() sourcerange.SourceRange   { return n.P }

// Assignment is a `lhs = rhs` or compound-assignment (`lhs += rhs`, ...)
// expression. Lhs must be an assignable place expression (VariableAccess,
// DotMemberAccess, or ComputedMemberAccess); the parser does not enforce
// this, the evaluator does.
type Assignment struct {
	Lhs Expression
	Op  token.PunctuatorKind
	Rhs Expression
	P   sourcerange.SourceRange
}

func (n Assignment) Accept(v ExpressionVisitor) any { return v.VisitAssignment(n) }
func (n Assignment) Pos() sourcerange.SourceRange   { return n.P }
