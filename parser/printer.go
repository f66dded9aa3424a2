package parser

// astPrinter builds a JSON-friendly representation of a program for the
// REPL's debug flag, covering every expression and statement node, with
// operator punctuators rendered via PunctuatorKind.Text() and value.Value
// literals via value.Debug rather than marshaled directly.

import (
	"encoding/json"
	"fmt"

	"icelang/ast"
	"icelang/value"
)

type astPrinter struct{}

func nilOrAccept(expr ast.Expression, p ast.ExpressionVisitor) any {
	if expr == nil {
		return nil
	}
	return expr.Accept(p)
}

func acceptAll(stmts []ast.Stmt, p ast.StmtVisitor) []any {
	out := make([]any, 0, len(stmts))
	for _, s := range stmts {
		out = append(out, s.Accept(p))
	}
	return out
}

func (p astPrinter) VisitLiteral(n ast.Literal) any {
	return map[string]any{"type": "Literal", "value": value.Debug(n.Value)}
}

func (p astPrinter) VisitVariableAccess(n ast.VariableAccess) any {
	return map[string]any{"type": "VariableAccess", "name": n.Name}
}

func (p astPrinter) VisitListLiteral(n ast.ListLiteral) any {
	elems := make([]any, 0, len(n.Elements))
	for _, e := range n.Elements {
		elems = append(elems, e.Accept(p))
	}
	return map[string]any{"type": "ListLiteral", "elements": elems}
}

func (p astPrinter) VisitDictLiteral(n ast.DictLiteral) any {
	entries := make([]any, 0, len(n.Entries))
	for _, e := range n.Entries {
		entries = append(entries, map[string]any{"key": e.Key.Accept(p), "value": e.Val.Accept(p)})
	}
	return map[string]any{"type": "DictLiteral", "entries": entries}
}

func (p astPrinter) VisitFormattedStringLiteral(n ast.FormattedStringLiteral) any {
	conts := make([]any, 0, len(n.Continuations))
	for _, c := range n.Continuations {
		conts = append(conts, map[string]any{"literal": c.Literal, "expr": c.Expr.Accept(p)})
	}
	return map[string]any{
		"type":          "FormattedStringLiteral",
		"startLiteral":  n.StartLiteral,
		"firstExpr":     n.FirstExpr.Accept(p),
		"continuations": conts,
		"endLiteral":    n.EndLiteral,
	}
}

func (p astPrinter) VisitTypeCast(n ast.TypeCast) any {
	return map[string]any{"type": "TypeCast", "expr": n.Expr.Accept(p), "dstType": n.DstType}
}

func (p astPrinter) VisitDotMemberAccess(n ast.DotMemberAccess) any {
	return map[string]any{"type": "DotMemberAccess", "root": n.Root.Accept(p), "member": n.Member}
}

func (p astPrinter) VisitComputedMemberAccess(n ast.ComputedMemberAccess) any {
	return map[string]any{"type": "ComputedMemberAccess", "root": n.Root.Accept(p), "index": n.Index.Accept(p)}
}

func (p astPrinter) VisitFunctionCall(n ast.FunctionCall) any {
	args := make([]any, 0, len(n.Args))
	for _, a := range n.Args {
		args = append(args, a.Accept(p))
	}
	return map[string]any{"type": "FunctionCall", "root": n.Root.Accept(p), "args": args}
}

func (p astPrinter) VisitBinaryOperation(n ast.BinaryOperation) any {
	return map[string]any{
		"type": "BinaryOperation", "op": n.Op.Text(),
		"lhs": n.Lhs.Accept(p), "rhs": n.Rhs.Accept(p),
	}
}

func (p astPrinter) VisitUnaryOperation(n ast.UnaryOperation) any {
	return map[string]any{"type": "UnaryOperation", "op": n.Op.Text(), "operand": n.Operand.Accept(p)}
}

func (p astPrinter) VisitComparison(n ast.Comparison) any {
	steps := make([]any, 0, len(n.Steps))
	for _, s := range n.Steps {
		steps = append(steps, map[string]any{"op": s.Op.Text(), "rhs": s.Rhs.Accept(p)})
	}
	return map[string]any{"type": "Comparison", "first": n.First.Accept(p), "steps": steps}
}

func (p astPrinter) VisitInlineConditional(n ast.InlineConditional) any {
	return map[string]any{
		"type": "InlineConditional",
		"cond": n.Cond.Accept(p), "then": n.Then.Accept(p), "else": n.Else.Accept(p),
	}
}

func (p astPrinter) VisitAssignment(n ast.Assignment) any {
	return map[string]any{
		"type": "Assignment", "op": n.Op.Text(),
		"lhs": n.Lhs.Accept(p), "rhs": n.Rhs.Accept(p),
	}
}

func (p astPrinter) VisitExpressionStatement(n ast.ExpressionStatement) any {
	return map[string]any{"type": "ExpressionStatement", "expr": n.Expr.Accept(p)}
}

func (p astPrinter) VisitVariableDeclaration(n ast.VariableDeclaration) any {
	decls := make([]any, 0, len(n.Decls))
	for _, d := range n.Decls {
		decls = append(decls, map[string]any{"name": d.Name, "init": nilOrAccept(d.Init, p)})
	}
	return map[string]any{"type": "VariableDeclaration", "decls": decls}
}

func (p astPrinter) VisitFunctionDeclaration(n ast.FunctionDeclaration) any {
	return map[string]any{
		"type":   "FunctionDeclaration",
		"name":   n.Name,
		"params": functionParamsJSON(n.Params),
		"body":   acceptAll(n.Body, p),
	}
}

func functionParamsJSON(params ast.FunctionParams) any {
	names := make([]string, 0, len(params.Polyadic))
	for _, pr := range params.Polyadic {
		names = append(names, pr.Name)
	}
	return map[string]any{"polyadic": names, "variadic": params.Variadic, "variadicName": params.VariadicName}
}

func (p astPrinter) VisitJumpStatement(n ast.JumpStatement) any {
	kind := map[ast.JumpKind]string{ast.JumpBreak: "break", ast.JumpContinue: "continue", ast.JumpReturn: "return"}[n.Kind]
	return map[string]any{"type": "JumpStatement", "kind": kind, "value": nilOrAccept(n.Value, p)}
}

func (p astPrinter) VisitSimpleLoop(n ast.SimpleLoop) any {
	return map[string]any{"type": "SimpleLoop", "count": nilOrAccept(n.Count, p), "body": acceptAll(n.Body, p)}
}

func (p astPrinter) VisitWhileLoop(n ast.WhileLoop) any {
	return map[string]any{"type": "WhileLoop", "cond": n.Cond.Accept(p), "body": acceptAll(n.Body, p)}
}

func (p astPrinter) VisitForLoop(n ast.ForLoop) any {
	return map[string]any{
		"type": "ForLoop", "ident": n.Ident,
		"iterable": n.Iterable.Accept(p), "body": acceptAll(n.Body, p),
	}
}

func (p astPrinter) VisitIfElseStatement(n ast.IfElseStatement) any {
	branches := make([]any, 0, len(n.Branches))
	for _, b := range n.Branches {
		branches = append(branches, map[string]any{"cond": b.Cond.Accept(p), "body": acceptAll(b.Body, p)})
	}
	var elseBody any
	if n.Else != nil {
		elseBody = acceptAll(n.Else, p)
	}
	return map[string]any{"type": "IfElseStatement", "branches": branches, "else": elseBody}
}

func (p astPrinter) VisitMatchStatement(n ast.MatchStatement) any {
	arms := make([]any, 0, len(n.Arms))
	for _, a := range n.Arms {
		arms = append(arms, map[string]any{"pattern": a.Pattern.Accept(p), "body": acceptAll(a.Body, p)})
	}
	return map[string]any{"type": "MatchStatement", "scrutinee": n.Scrutinee.Accept(p), "arms": arms}
}

var _ ast.ExpressionVisitor = astPrinter{}
var _ ast.StmtVisitor = astPrinter{}

// PrintASTJSON renders a program's statements as an indented JSON tree,
// for the REPL's debug flag.
func PrintASTJSON(statements []ast.Stmt) (string, error) {
	printer := astPrinter{}
	out := acceptAll(statements, printer)
	bytes, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return "", fmt.Errorf("printing AST: %w", err)
	}
	return string(bytes), nil
}
