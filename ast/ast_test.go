package ast

import (
	"testing"

	"icelang/sourcerange"
	"icelang/token"
	"icelang/value"
)

// countingVisitor exercises every Visit method so a missing case fails
// to compile rather than silently doing nothing.
type countingVisitor struct{ n int }

func (c *countingVisitor) VisitLiteral(Literal) any                               { c.n++; return nil }
func (c *countingVisitor) VisitVariableAccess(VariableAccess) any                  { c.n++; return nil }
func (c *countingVisitor) VisitListLiteral(ListLiteral) any                       { c.n++; return nil }
func (c *countingVisitor) VisitDictLiteral(DictLiteral) any                       { c.n++; return nil }
func (c *countingVisitor) VisitFormattedStringLiteral(FormattedStringLiteral) any { c.n++; return nil }
func (c *countingVisitor) VisitTypeCast(TypeCast) any                             { c.n++; return nil }
func (c *countingVisitor) VisitDotMemberAccess(DotMemberAccess) any               { c.n++; return nil }
func (c *countingVisitor) VisitComputedMemberAccess(ComputedMemberAccess) any     { c.n++; return nil }
func (c *countingVisitor) VisitFunctionCall(FunctionCall) any                     { c.n++; return nil }
func (c *countingVisitor) VisitBinaryOperation(BinaryOperation) any               { c.n++; return nil }
func (c *countingVisitor) VisitUnaryOperation(UnaryOperation) any                 { c.n++; return nil }
func (c *countingVisitor) VisitComparison(Comparison) any                         { c.n++; return nil }
func (c *countingVisitor) VisitInlineConditional(InlineConditional) any           { c.n++; return nil }
func (c *countingVisitor) VisitAssignment(Assignment) any                         { c.n++; return nil }

func TestExpressionAcceptDispatchesToEveryNode(t *testing.T) {
	pos := sourcerange.New("x", "t", 0, 0)
	exprs := []Expression{
		Literal{Value: value.Null{}, P: pos},
		VariableAccess{Name: "x", P: pos},
		ListLiteral{P: pos},
		DictLiteral{P: pos},
		FormattedStringLiteral{P: pos},
		TypeCast{DstType: "int", P: pos},
		DotMemberAccess{P: pos},
		ComputedMemberAccess{P: pos},
		FunctionCall{P: pos},
		BinaryOperation{Op: token.PPlus, P: pos},
		UnaryOperation{Op: token.PMinus, P: pos},
		Comparison{P: pos},
		InlineConditional{P: pos},
		Assignment{Op: token.PAssign, P: pos},
	}
	cv := &countingVisitor{}
	for _, e := range exprs {
		e.Accept(cv)
		if e.Pos() != pos {
			t.Fatalf("%T.Pos() = %v, want %v", e, e.Pos(), pos)
		}
	}
	if cv.n != len(exprs) {
		t.Fatalf("visited %d nodes, want %d", cv.n, len(exprs))
	}
}

type countingStmtVisitor struct{ n int }

func (c *countingStmtVisitor) VisitExpressionStatement(ExpressionStatement) any { c.n++; return nil }
func (c *countingStmtVisitor) VisitVariableDeclaration(VariableDeclaration) any { c.n++; return nil }
func (c *countingStmtVisitor) VisitFunctionDeclaration(FunctionDeclaration) any { c.n++; return nil }
func (c *countingStmtVisitor) VisitJumpStatement(JumpStatement) any            { c.n++; return nil }
func (c *countingStmtVisitor) VisitSimpleLoop(SimpleLoop) any                  { c.n++; return nil }
func (c *countingStmtVisitor) VisitWhileLoop(WhileLoop) any                    { c.n++; return nil }
func (c *countingStmtVisitor) VisitForLoop(ForLoop) any                        { c.n++; return nil }
func (c *countingStmtVisitor) VisitIfElseStatement(IfElseStatement) any        { c.n++; return nil }
func (c *countingStmtVisitor) VisitMatchStatement(MatchStatement) any          { c.n++; return nil }

func TestStmtAcceptDispatchesToEveryNode(t *testing.T) {
	pos := sourcerange.New("x", "t", 0, 0)
	stmts := []Stmt{
		ExpressionStatement{P: pos},
		VariableDeclaration{P: pos},
		FunctionDeclaration{P: pos},
		JumpStatement{Kind: JumpBreak, P: pos},
		SimpleLoop{P: pos},
		WhileLoop{P: pos},
		ForLoop{P: pos},
		IfElseStatement{P: pos},
		MatchStatement{P: pos},
	}
	cv := &countingStmtVisitor{}
	for _, s := range stmts {
		s.Accept(cv)
	}
	if cv.n != len(stmts) {
		t.Fatalf("visited %d nodes, want %d", cv.n, len(stmts))
	}
}
