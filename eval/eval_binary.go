package eval

import (
	"math"
	"math/big"

	"icelang/ast"
	"icelang/sourcerange"
	"icelang/token"
	"icelang/value"
)

// VisitBinaryOperation special-cases && / || to genuinely short-circuit
// (the right operand is never evaluated once the left operand decides
// the result), then delegates every other operator to applyBinaryOp,
// which assumes both operands are already in hand (also used by
// compound assignment, where both sides are unconditionally evaluated).
func (e *Evaluator) VisitBinaryOperation(n ast.BinaryOperation) any {
	if n.Op == token.PAndAnd || n.Op == token.POrOr {
		return e.evalShortCircuit(n.Op, n.Lhs, n.Rhs, n.P)
	}

	lhs, err := e.Eval(n.Lhs)
	if err != nil {
		return everr(err)
	}
	rhs, err := e.Eval(n.Rhs)
	if err != nil {
		return everr(err)
	}
	v, rerr := applyBinaryOp(n.Op, lhs, rhs, n.P)
	if rerr != nil {
		return everr(rerr)
	}
	return ev(v)
}

func (e *Evaluator) evalShortCircuit(op token.PunctuatorKind, lhsExpr, rhsExpr ast.Expression, pos sourcerange.SourceRange) any {
	lhs, err := e.Eval(lhsExpr)
	if err != nil {
		return everr(err)
	}
	lb, ok := lhs.(value.Bool)
	if !ok {
		return everr(typeError(pos, "'%s' requires bool operands, got %s", op.Text(), lhs.TypeName()))
	}
	if op == token.PAndAnd && !lb.V {
		return ev(value.Bool{V: false})
	}
	if op == token.POrOr && lb.V {
		return ev(value.Bool{V: true})
	}
	rhs, err := e.Eval(rhsExpr)
	if err != nil {
		return everr(err)
	}
	rb, ok := rhs.(value.Bool)
	if !ok {
		return everr(typeError(pos, "'%s' requires bool operands, got %s", op.Text(), rhs.TypeName()))
	}
	return ev(value.Bool{V: rb.V})
}

// applyBinaryOp implements the full binary-operator table for every
// operator except && / ||, which short-circuit and are handled
// directly in VisitBinaryOperation/evalShortCircuit. Compound
// assignment (`&&=`, `||=`) still reaches this path since by then both
// sides are already evaluated values, not expressions.
func applyBinaryOp(op token.PunctuatorKind, lhs, rhs value.Value, pos sourcerange.SourceRange) (value.Value, *RuntimeError) {
	switch op {
	case token.PAndAnd, token.POrOr:
		lb, ok := lhs.(value.Bool)
		if !ok {
			return nil, typeError(pos, "'%s' requires bool operands, got %s", op.Text(), lhs.TypeName())
		}
		rb, ok := rhs.(value.Bool)
		if !ok {
			return nil, typeError(pos, "'%s' requires bool operands, got %s", op.Text(), rhs.TypeName())
		}
		if op == token.PAndAnd {
			return value.Bool{V: lb.V && rb.V}, nil
		}
		return value.Bool{V: lb.V || rb.V}, nil
	}

	if ls, ok := lhs.(value.String); ok {
		switch op {
		case token.PPlus:
			rs, ok := rhs.(value.String)
			if !ok {
				return nil, typeError(pos, "cannot add string and %s", rhs.TypeName())
			}
			return value.String{V: ls.V + rs.V}, nil
		case token.PStar:
			n, ok := repeatCount(rhs)
			if !ok {
				return nil, typeError(pos, "cannot repeat a string by %s", rhs.TypeName())
			}
			return value.String{V: repeatString(ls.V, n)}, nil
		}
	}
	if rs, ok := rhs.(value.String); ok && op == token.PStar {
		n, ok := repeatCount(lhs)
		if !ok {
			return nil, typeError(pos, "cannot repeat a string by %s", lhs.TypeName())
		}
		return value.String{V: repeatString(rs.V, n)}, nil
	}

	switch op {
	case token.PAmp, token.PPipe, token.PCaret, token.PShl, token.PShr:
		return applyBitwise(op, lhs, rhs, pos)
	}

	return applyArithmetic(op, lhs, rhs, pos)
}

func repeatCount(v value.Value) (int, bool) {
	switch vv := v.(type) {
	case value.Int:
		if !vv.V.IsInt64() || vv.V.Sign() < 0 {
			return 0, false
		}
		return int(vv.V.Int64()), true
	case value.Byte:
		return int(vv.V), true
	default:
		return 0, false
	}
}

func repeatString(s string, n int) string {
	if n <= 0 {
		return ""
	}
	out := make([]byte, 0, len(s)*n)
	for i := 0; i < n; i++ {
		out = append(out, s...)
	}
	return string(out)
}

func applyBitwise(op token.PunctuatorKind, lhs, rhs value.Value, pos sourcerange.SourceRange) (value.Value, *RuntimeError) {
	if li, ok := lhs.(value.Int); ok {
		ri, ok := rhs.(value.Int)
		if !ok {
			return nil, typeError(pos, "'%s' requires matching int/byte operands, got int and %s", op.Text(), rhs.TypeName())
		}
		return intBitwise(op, li.V, ri.V), nil
	}
	if lb, ok := lhs.(value.Byte); ok {
		rb, ok := rhs.(value.Byte)
		if !ok {
			return nil, typeError(pos, "'%s' requires matching int/byte operands, got byte and %s", op.Text(), rhs.TypeName())
		}
		return byteBitwise(op, lb.V, rb.V), nil
	}
	return nil, typeError(pos, "'%s' requires int or byte operands, got %s", op.Text(), lhs.TypeName())
}

func intBitwise(op token.PunctuatorKind, a, b *big.Int) value.Value {
	r := new(big.Int)
	switch op {
	case token.PAmp:
		r.And(a, b)
	case token.PPipe:
		r.Or(a, b)
	case token.PCaret:
		r.Xor(a, b)
	case token.PShl:
		r.Lsh(a, uint(b.Uint64()))
	case token.PShr:
		r.Rsh(a, uint(b.Uint64()))
	}
	return value.NewInt(r)
}

func byteBitwise(op token.PunctuatorKind, a, b uint8) value.Value {
	switch op {
	case token.PAmp:
		return value.Byte{V: a & b}
	case token.PPipe:
		return value.Byte{V: a | b}
	case token.PCaret:
		return value.Byte{V: a ^ b}
	case token.PShl:
		if b >= 8 {
			return value.Byte{V: 0}
		}
		return value.Byte{V: a << b}
	case token.PShr:
		if b >= 8 {
			return value.Byte{V: 0}
		}
		return value.Byte{V: a >> b}
	}
	return value.Byte{}
}

func applyArithmetic(op token.PunctuatorKind, lhs, rhs value.Value, pos sourcerange.SourceRange) (value.Value, *RuntimeError) {
	// Float is involved: widen both sides to float64.
	if _, ok := lhs.(value.Float); ok {
		return floatArithmetic(op, toFloat64(lhs), toFloat64(rhs), rhs, pos)
	}
	if _, ok := rhs.(value.Float); ok {
		return floatArithmetic(op, toFloat64(lhs), toFloat64(rhs), lhs, pos)
	}

	if lb, ok := lhs.(value.Byte); ok {
		rb, ok := rhs.(value.Byte)
		if !ok {
			return nil, typeError(pos, "'%s' requires matching operand types, got byte and %s", op.Text(), rhs.TypeName())
		}
		return byteArithmetic(op, lb.V, rb.V, pos)
	}

	li, ok := lhs.(value.Int)
	if !ok {
		return nil, typeError(pos, "'%s' is not defined for %s", op.Text(), lhs.TypeName())
	}
	ri, ok := rhs.(value.Int)
	if !ok {
		return nil, typeError(pos, "'%s' requires matching operand types, got int and %s", op.Text(), rhs.TypeName())
	}
	return intArithmetic(op, li.V, ri.V, pos)
}

func toFloat64(v value.Value) float64 {
	switch vv := v.(type) {
	case value.Float:
		return vv.V
	case value.Int:
		f, _ := new(big.Float).SetInt(vv.V).Float64()
		return f
	case value.Byte:
		return float64(vv.V)
	default:
		return 0
	}
}

func floatArithmetic(op token.PunctuatorKind, a, b float64, otherOperand value.Value, pos sourcerange.SourceRange) (value.Value, *RuntimeError) {
	switch otherOperand.(type) {
	case value.Float, value.Int, value.Byte:
	default:
		return nil, typeError(pos, "'%s' is not defined between float and %s", op.Text(), otherOperand.TypeName())
	}
	switch op {
	case token.PPlus:
		return value.Float{V: a + b}, nil
	case token.PMinus:
		return value.Float{V: a - b}, nil
	case token.PStar:
		return value.Float{V: a * b}, nil
	case token.PSlash:
		return value.Float{V: a / b}, nil
	case token.PPercent:
		m := a - b*floorDiv(a, b)
		return value.Float{V: m}, nil
	case token.PStarStar:
		return value.Float{V: floatPow(a, b)}, nil
	}
	return nil, typeError(pos, "'%s' is not defined for float", op.Text())
}

func floorDiv(a, b float64) float64 {
	return math.Floor(a / b)
}

func floatPow(a, b float64) float64 {
	return math.Pow(a, b)
}

func byteArithmetic(op token.PunctuatorKind, a, b uint8, pos sourcerange.SourceRange) (value.Value, *RuntimeError) {
	switch op {
	case token.PPlus:
		return value.Byte{V: a + b}, nil // wraps mod 256
	case token.PMinus:
		return value.Byte{V: a - b}, nil
	case token.PStar:
		return value.Byte{V: a * b}, nil
	case token.PStarStar:
		r := uint8(1)
		base := a
		exp := b
		for exp > 0 {
			if exp&1 == 1 {
				r *= base
			}
			base *= base
			exp >>= 1
		}
		return value.Byte{V: r}, nil
	case token.PSlash:
		if b == 0 {
			return nil, mathError(pos, "division by zero")
		}
		return value.Byte{V: a / b}, nil
	case token.PPercent:
		if b == 0 {
			return nil, mathError(pos, "modulo by zero")
		}
		return value.Byte{V: a % b}, nil
	}
	return nil, typeError(pos, "'%s' is not defined for byte", op.Text())
}

func intArithmetic(op token.PunctuatorKind, a, b *big.Int, pos sourcerange.SourceRange) (value.Value, *RuntimeError) {
	r := new(big.Int)
	switch op {
	case token.PPlus:
		return value.NewInt(r.Add(a, b)), nil
	case token.PMinus:
		return value.NewInt(r.Sub(a, b)), nil
	case token.PStar:
		return value.NewInt(r.Mul(a, b)), nil
	case token.PSlash:
		if b.Sign() == 0 {
			return nil, mathError(pos, "division by zero")
		}
		q, m := new(big.Int), new(big.Int)
		q.DivMod(a, b, m)
		return value.NewInt(q), nil
	case token.PPercent:
		if b.Sign() == 0 {
			return nil, mathError(pos, "modulo by zero")
		}
		m := new(big.Int).Mod(a, b)
		return value.NewInt(m), nil
	case token.PStarStar:
		if b.Sign() < 0 {
			return nil, mathError(pos, "exponent must be non-negative")
		}
		return value.NewInt(r.Exp(a, b, nil)), nil
	}
	return nil, typeError(pos, "'%s' is not defined for int", op.Text())
}

func (e *Evaluator) VisitUnaryOperation(n ast.UnaryOperation) any {
	v, err := e.Eval(n.Operand)
	if err != nil {
		return everr(err)
	}
	switch n.Op {
	case token.PBang:
		switch vv := v.(type) {
		case value.Bool:
			return ev(value.Bool{V: !vv.V})
		case value.Int:
			return ev(value.NewInt(new(big.Int).Not(vv.V)))
		case value.Byte:
			return ev(value.Byte{V: ^vv.V})
		default:
			return everr(typeError(n.P, "'!' requires a bool, int, or byte operand, got %s", v.TypeName()))
		}
	case token.PMinus:
		switch vv := v.(type) {
		case value.Int:
			return ev(value.NewInt(new(big.Int).Neg(vv.V)))
		case value.Float:
			return ev(value.Float{V: -vv.V})
		case value.Byte:
			return ev(value.Byte{V: -vv.V})
		default:
			return everr(typeError(n.P, "unary '-' requires a numeric operand, got %s", v.TypeName()))
		}
	case token.PPlus:
		switch v.(type) {
		case value.Int, value.Float, value.Byte:
			return ev(v)
		default:
			return everr(typeError(n.P, "unary '+' requires a numeric operand, got %s", v.TypeName()))
		}
	}
	return everr(typeError(n.P, "unknown unary operator"))
}

// VisitComparison evaluates a chained comparison left-to-right, lazily:
// it short-circuits to false as soon as one link fails, evaluating each
// intermediate operand exactly once.
func (e *Evaluator) VisitComparison(n ast.Comparison) any {
	cur, err := e.Eval(n.First)
	if err != nil {
		return everr(err)
	}
	for _, step := range n.Steps {
		next, err := e.Eval(step.Rhs)
		if err != nil {
			return everr(err)
		}
		ok, rerr := applyComparisonLink(step.Op, cur, next, n.P)
		if rerr != nil {
			return everr(rerr)
		}
		if !ok {
			return ev(value.Bool{V: false})
		}
		cur = next
	}
	return ev(value.Bool{V: true})
}

func applyComparisonLink(op token.PunctuatorKind, a, b value.Value, pos sourcerange.SourceRange) (bool, *RuntimeError) {
	if op == token.PEqEq {
		return value.Equal(a, b), nil
	}
	if op == token.PNotEq {
		return !value.Equal(a, b), nil
	}

	isNumeric := func(v value.Value) bool {
		switch v.(type) {
		case value.Int, value.Byte, value.Float:
			return true
		default:
			return false
		}
	}
	if !isNumeric(a) || !isNumeric(b) {
		return false, typeError(pos, "'%s' is not defined for type %s", op.Text(), a.TypeName())
	}
	if sameConcreteType(a, b) == "" {
		return false, typeError(pos, "'%s' requires operands of the same numeric type, got %s and %s", op.Text(), a.TypeName(), b.TypeName())
	}

	ord, ok := value.Compare(a, b)
	if !ok {
		return false, typeError(pos, "cannot compare a value of type %s with a value of type %s", a.TypeName(), b.TypeName())
	}
	switch op {
	case token.PLt:
		return ord == value.Less, nil
	case token.PLe:
		return ord == value.Less || ord == value.Equal_, nil
	case token.PGt:
		return ord == value.Greater, nil
	case token.PGe:
		return ord == value.Greater || ord == value.Equal_, nil
	}
	return false, typeError(pos, "unknown comparison operator")
}

// sameConcreteType returns a's type name if a and b share the exact
// same concrete numeric type, else "". icelang's ordering operators
// never implicitly widen across Int/Byte/Float.
func sameConcreteType(a, b value.Value) string {
	switch a.(type) {
	case value.Int:
		if _, ok := b.(value.Int); ok {
			return "int"
		}
	case value.Byte:
		if _, ok := b.(value.Byte); ok {
			return "byte"
		}
	case value.Float:
		if _, ok := b.(value.Float); ok {
			return "float"
		}
	}
	return ""
}

func (e *Evaluator) VisitInlineConditional(n ast.InlineConditional) any {
	c, err := e.Eval(n.Cond)
	if err != nil {
		return everr(err)
	}
	cb, ok := c.(value.Bool)
	if !ok {
		return everr(typeError(n.P, "inline conditional requires a bool condition, got %s", c.TypeName()))
	}
	if cb.V {
		return exprResultOf(e.Eval(n.Then))
	}
	return exprResultOf(e.Eval(n.Else))
}

func exprResultOf(v value.Value, err error) any {
	return exprResult{v: v, err: err}
}
