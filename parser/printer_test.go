package parser

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"

	"icelang/ast"
	"icelang/sourcerange"
	"icelang/token"
	"icelang/value"
)

func unmarshalTree(t *testing.T, j string) []map[string]any {
	t.Helper()
	var out []map[string]any
	if err := json.Unmarshal([]byte(j), &out); err != nil {
		t.Fatalf("unmarshal json: %v", err)
	}
	return out
}

func TestPrintASTJSONLiteralExpressionStatement(t *testing.T) {
	stmts := []ast.Stmt{
		ast.ExpressionStatement{Expr: ast.Literal{Value: value.NewIntFromInt64(42)}},
	}

	j, err := PrintASTJSON(stmts)
	if err != nil {
		t.Fatalf("PrintASTJSON error: %v", err)
	}
	got := unmarshalTree(t, j)

	want := []map[string]any{
		{
			"type": "ExpressionStatement",
			"expr": map[string]any{"type": "Literal", "value": "42"},
		},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("PrintASTJSON mismatch (-want +got):\n%s", diff)
	}
}

func TestPrintASTJSONVariableDeclarationNilInitializer(t *testing.T) {
	stmts := []ast.Stmt{
		ast.VariableDeclaration{Decls: []ast.VarDecl{{Name: "x", Init: nil}}},
	}

	j, err := PrintASTJSON(stmts)
	if err != nil {
		t.Fatalf("PrintASTJSON error: %v", err)
	}
	got := unmarshalTree(t, j)

	want := []map[string]any{
		{
			"type":  "VariableDeclaration",
			"decls": []any{map[string]any{"name": "x", "init": nil}},
		},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("PrintASTJSON mismatch (-want +got):\n%s", diff)
	}
}

func TestPrintASTJSONBinaryOperation(t *testing.T) {
	zero := sourcerange.New(" ", "<test>", 0, 0)
	stmts := []ast.Stmt{
		ast.ExpressionStatement{Expr: ast.BinaryOperation{
			Lhs: ast.Literal{Value: value.NewIntFromInt64(1), P: zero},
			Op:  token.PPlus,
			Rhs: ast.Literal{Value: value.NewIntFromInt64(2), P: zero},
			P:   zero,
		}},
	}

	j, err := PrintASTJSON(stmts)
	if err != nil {
		t.Fatalf("PrintASTJSON error: %v", err)
	}
	got := unmarshalTree(t, j)

	want := []map[string]any{
		{
			"type": "ExpressionStatement",
			"expr": map[string]any{
				"type": "BinaryOperation",
				"op":   "+",
				"lhs":  map[string]any{"type": "Literal", "value": "1"},
				"rhs":  map[string]any{"type": "Literal", "value": "2"},
			},
		},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("PrintASTJSON mismatch (-want +got):\n%s", diff)
	}
}
