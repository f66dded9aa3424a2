package parser

import (
	"testing"

	"icelang/ast"
	"icelang/lexer"
	"icelang/sourcerange"
	"icelang/token"
)

func parseSource(t *testing.T, src string) ast.Program {
	t.Helper()
	toks, err := lexer.New(src, "test.ice").Scan()
	if err != nil {
		t.Fatalf("lex(%q): %v", src, err)
	}
	eof := sourcerange.New(src+" ", "test.ice", len(src), len(src))
	prog, err := New(toks, eof).Parse()
	if err != nil {
		t.Fatalf("parse(%q): %v", src, err)
	}
	return prog
}

func parseExprSrc(t *testing.T, src string) ast.Expression {
	t.Helper()
	prog := parseSource(t, src+";")
	if len(prog.Statements) != 1 {
		t.Fatalf("expected 1 statement, got %d", len(prog.Statements))
	}
	es, ok := prog.Statements[0].(ast.ExpressionStatement)
	if !ok {
		t.Fatalf("expected ExpressionStatement, got %T", prog.Statements[0])
	}
	return es.Expr
}

func TestExponentIsRightAssociative(t *testing.T) {
	expr := parseExprSrc(t, "2 ** 3 ** 2")
	bin, ok := expr.(ast.BinaryOperation)
	if !ok || bin.Op != token.PStarStar {
		t.Fatalf("expected top-level **, got %#v", expr)
	}
	rhs, ok := bin.Rhs.(ast.BinaryOperation)
	if !ok || rhs.Op != token.PStarStar {
		t.Fatalf("expected right-associative nesting, got %#v", bin.Rhs)
	}
}

func TestChainedComparisonIsOneNode(t *testing.T) {
	expr := parseExprSrc(t, "1 < x < 5")
	cmp, ok := expr.(ast.Comparison)
	if !ok {
		t.Fatalf("expected Comparison node, got %T", expr)
	}
	if len(cmp.Steps) != 2 {
		t.Fatalf("expected 2 chained steps, got %d", len(cmp.Steps))
	}
}

func TestPrecedenceAdditiveBeforeComparison(t *testing.T) {
	expr := parseExprSrc(t, "a + 1 < b")
	cmp, ok := expr.(ast.Comparison)
	if !ok {
		t.Fatalf("expected Comparison, got %T", expr)
	}
	if _, ok := cmp.First.(ast.BinaryOperation); !ok {
		t.Fatalf("expected additive expression on the left of <, got %T", cmp.First)
	}
}

func TestTernaryAndAssignmentPrecedence(t *testing.T) {
	expr := parseExprSrc(t, "x = a ? 1 : 2")
	assign, ok := expr.(ast.Assignment)
	if !ok || assign.Op != token.PAssign {
		t.Fatalf("expected Assignment, got %#v", expr)
	}
	if _, ok := assign.Rhs.(ast.InlineConditional); !ok {
		t.Fatalf("expected inline conditional on assignment rhs, got %T", assign.Rhs)
	}
}

func TestPostfixChain(t *testing.T) {
	expr := parseExprSrc(t, "a.b[0](1, 2) as int")
	cast, ok := expr.(ast.TypeCast)
	if !ok || cast.DstType != "int" {
		t.Fatalf("expected outermost TypeCast, got %#v", expr)
	}
	call, ok := cast.Expr.(ast.FunctionCall)
	if !ok || len(call.Args) != 2 {
		t.Fatalf("expected FunctionCall with 2 args, got %#v", cast.Expr)
	}
	idx, ok := call.Root.(ast.ComputedMemberAccess)
	if !ok {
		t.Fatalf("expected ComputedMemberAccess under call, got %T", call.Root)
	}
	if _, ok := idx.Root.(ast.DotMemberAccess); !ok {
		t.Fatalf("expected DotMemberAccess under index, got %T", idx.Root)
	}
}

func TestFormattedStringWithInterpolations(t *testing.T) {
	expr := parseExprSrc(t, `f"a{1}b{2}c"`)
	fs, ok := expr.(ast.FormattedStringLiteral)
	if !ok {
		t.Fatalf("expected FormattedStringLiteral, got %T", expr)
	}
	if fs.StartLiteral != "a" || fs.EndLiteral != "c" || len(fs.Continuations) != 1 {
		t.Fatalf("unexpected fstring shape: %#v", fs)
	}
}

func TestFormattedStringNoInterpolationIsPlainLiteral(t *testing.T) {
	expr := parseExprSrc(t, `f"plain text"`)
	lit, ok := expr.(ast.Literal)
	if !ok {
		t.Fatalf("expected Literal, got %T", expr)
	}
	_ = lit
}

func TestVariableDeclarationMultipleBindings(t *testing.T) {
	prog := parseSource(t, "let a = 1, b, c = 2;")
	decl, ok := prog.Statements[0].(ast.VariableDeclaration)
	if !ok || len(decl.Decls) != 3 {
		t.Fatalf("expected 3 bindings, got %#v", prog.Statements[0])
	}
	if decl.Decls[1].Init != nil {
		t.Fatalf("expected uninitialized 'b', got %#v", decl.Decls[1].Init)
	}
}

func TestFunctionDeclarationVariadic(t *testing.T) {
	prog := parseSource(t, "fn sum([numbers]) { return 0; }")
	fd, ok := prog.Statements[0].(ast.FunctionDeclaration)
	if !ok || !fd.Params.Variadic || fd.Params.VariadicName != "numbers" {
		t.Fatalf("expected variadic params, got %#v", prog.Statements[0])
	}
}

func TestIfElseIfElseChain(t *testing.T) {
	prog := parseSource(t, `
		if a { b; } else if c { d; } else { e; }
	`)
	ie, ok := prog.Statements[0].(ast.IfElseStatement)
	if !ok {
		t.Fatalf("expected IfElseStatement, got %T", prog.Statements[0])
	}
	if len(ie.Branches) != 2 || ie.Else == nil {
		t.Fatalf("expected 2 branches + else, got %#v", ie)
	}
}

func TestMatchStatementArms(t *testing.T) {
	prog := parseSource(t, `
		match x {
			1 => { a; }
			2 => { b; }
		}
	`)
	m, ok := prog.Statements[0].(ast.MatchStatement)
	if !ok || len(m.Arms) != 2 {
		t.Fatalf("expected 2 match arms, got %#v", prog.Statements[0])
	}
}

func TestForLoopAndSimpleLoop(t *testing.T) {
	prog := parseSource(t, `
		for x in xs { y; }
		loop 3 { z; }
		loop { w; }
	`)
	if _, ok := prog.Statements[0].(ast.ForLoop); !ok {
		t.Fatalf("expected ForLoop, got %T", prog.Statements[0])
	}
	sl, ok := prog.Statements[1].(ast.SimpleLoop)
	if !ok || sl.Count == nil {
		t.Fatalf("expected counted SimpleLoop, got %#v", prog.Statements[1])
	}
	sl2, ok := prog.Statements[2].(ast.SimpleLoop)
	if !ok || sl2.Count != nil {
		t.Fatalf("expected uncounted SimpleLoop, got %#v", prog.Statements[2])
	}
}

func TestUnexpectedEofIsReported(t *testing.T) {
	toks, err := lexer.New("let x = ", "t").Scan()
	if err != nil {
		t.Fatalf("lex error: %v", err)
	}
	eof := sourcerange.New("let x = ", "t", 7, 7)
	_, err = New(toks, eof).Parse()
	if err == nil {
		t.Fatal("expected a parse error for truncated input")
	}
	pe, ok := err.(*ParseError)
	if !ok || pe.Kind != UnexpectedEof {
		t.Fatalf("err = %#v, want UnexpectedEof", err)
	}
}
