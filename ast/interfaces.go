// Package ast defines the syntax tree produced by the parser and walked
// by the evaluator: one node type per grammar production, dispatched
// through the visitor pattern.
package ast

import "icelang/sourcerange"

// ExpressionVisitor operates on every Expression node type. Any code
// that walks expressions (the evaluator, a printer, a static checker)
// implements this interface; each Visit method corresponds to exactly
// one Expression type.
type ExpressionVisitor interface {
	VisitLiteral(Literal) any
	VisitVariableAccess(VariableAccess) any
	VisitListLiteral(ListLiteral) any
	VisitDictLiteral(DictLiteral) any
	VisitFormattedStringLiteral(FormattedStringLiteral) any
	VisitTypeCast(TypeCast) any
	VisitDotMemberAccess(DotMemberAccess) any
	VisitComputedMemberAccess(ComputedMemberAccess) any
	VisitFunctionCall(FunctionCall) any
	VisitBinaryOperation(BinaryOperation) any
	VisitUnaryOperation(UnaryOperation) any
	VisitComparison(Comparison) any
	VisitInlineConditional(InlineConditional) any
	VisitAssignment(Assignment) any
}

// StmtVisitor operates on every Stmt node type.
type StmtVisitor interface {
	VisitExpressionStatement(ExpressionStatement) any
	VisitVariableDeclaration(VariableDeclaration) any
	VisitFunctionDeclaration(FunctionDeclaration) any
	VisitJumpStatement(JumpStatement) any
	VisitSimpleLoop(SimpleLoop) any
	VisitWhileLoop(WhileLoop) any
	VisitForLoop(ForLoop) any
	VisitIfElseStatement(IfElseStatement) any
	VisitMatchStatement(MatchStatement) any
}

// Expression is the base interface for every expression node. Pos
// covers at least the positions of every direct child.
type Expression interface {
	Accept(v ExpressionVisitor) any
	Pos() sourcerange.SourceRange
}

// Stmt is the base interface for every statement node.
type Stmt interface {
	Accept(v StmtVisitor) any
	Pos() sourcerange.SourceRange
}
