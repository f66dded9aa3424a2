package parser

import (
	"math"
	"math/big"

	"icelang/ast"
	"icelang/token"
	"icelang/value"
)

var (
	posInf = math.Inf(1)
	nan    = math.NaN()
)

var assignOps = []token.PunctuatorKind{
	token.PAssign, token.PPlusEq, token.PMinusEq, token.PStarEq, token.PSlashEq,
	token.PPercentEq, token.PStarStarEq, token.PShlEq, token.PShrEq,
	token.PAmpEq, token.PCaretEq, token.PPipeEq, token.PAndAndEq, token.POrOrEq,
}

var comparisonOps = []token.PunctuatorKind{
	token.PEqEq, token.PNotEq, token.PLt, token.PGt, token.PLe, token.PGe,
}

// parseExpression is the entry point for expression parsing: `expr := assign`.
func (p *Parser) parseExpression() (ast.Expression, error) {
	return p.parseAssignment()
}

// parseAssignment handles `=` and the compound-assignment operators,
// right-associatively, over the inline-conditional level.
func (p *Parser) parseAssignment() (ast.Expression, error) {
	start, _ := p.peek()
	lhs, err := p.parseTernary()
	if err != nil {
		return nil, err
	}
	if p.matchPunct(assignOps...) {
		op := p.previous().PunctuatorKind
		rhs, err := p.parseAssignment()
		if err != nil {
			return nil, err
		}
		return ast.Assignment{Lhs: lhs, Op: op, Rhs: rhs, P: start.Pos.ExtendedTo(p.previous().Pos)}, nil
	}
	return lhs, nil
}

// parseTernary handles `cond ? then : else`.
func (p *Parser) parseTernary() (ast.Expression, error) {
	start, _ := p.peek()
	cond, err := p.parseLogicalOr()
	if err != nil {
		return nil, err
	}
	if p.matchPunct(token.PQuestion) {
		thenExpr, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		if _, err := p.consumePunct(token.PColon, "expected ':' in inline conditional"); err != nil {
			return nil, err
		}
		elseExpr, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		return ast.InlineConditional{Cond: cond, Then: thenExpr, Else: elseExpr, P: start.Pos.ExtendedTo(p.previous().Pos)}, nil
	}
	return cond, nil
}

func (p *Parser) binaryChain(next func() (ast.Expression, error), ops ...token.PunctuatorKind) (ast.Expression, error) {
	start, _ := p.peek()
	expr, err := next()
	if err != nil {
		return nil, err
	}
	for p.matchPunct(ops...) {
		op := p.previous().PunctuatorKind
		rhs, err := next()
		if err != nil {
			return nil, err
		}
		expr = ast.BinaryOperation{Lhs: expr, Op: op, Rhs: rhs, P: start.Pos.ExtendedTo(p.previous().Pos)}
	}
	return expr, nil
}

func (p *Parser) parseLogicalOr() (ast.Expression, error) {
	return p.binaryChain(p.parseLogicalAnd, token.POrOr)
}

func (p *Parser) parseLogicalAnd() (ast.Expression, error) {
	return p.binaryChain(p.parseBitwiseOr, token.PAndAnd)
}

func (p *Parser) parseBitwiseOr() (ast.Expression, error) {
	return p.binaryChain(p.parseBitwiseXor, token.PPipe)
}

func (p *Parser) parseBitwiseXor() (ast.Expression, error) {
	return p.binaryChain(p.parseBitwiseAnd, token.PCaret)
}

func (p *Parser) parseBitwiseAnd() (ast.Expression, error) {
	return p.binaryChain(p.parseComparison, token.PAmp)
}

// parseComparison builds an n-ary chained comparison node: `a < b < c`
// parses as a single Comparison, not two independent BinaryOperations.
func (p *Parser) parseComparison() (ast.Expression, error) {
	start, _ := p.peek()
	first, err := p.parseShift()
	if err != nil {
		return nil, err
	}
	var steps []ast.ComparisonStep
	for p.matchPunct(comparisonOps...) {
		op := p.previous().PunctuatorKind
		rhs, err := p.parseShift()
		if err != nil {
			return nil, err
		}
		steps = append(steps, ast.ComparisonStep{Op: op, Rhs: rhs})
	}
	if len(steps) == 0 {
		return first, nil
	}
	return ast.Comparison{First: first, Steps: steps, P: start.Pos.ExtendedTo(p.previous().Pos)}, nil
}

func (p *Parser) parseShift() (ast.Expression, error) {
	return p.binaryChain(p.parseAdditive, token.PShl, token.PShr)
}

func (p *Parser) parseAdditive() (ast.Expression, error) {
	return p.binaryChain(p.parseMultiplicative, token.PPlus, token.PMinus)
}

func (p *Parser) parseMultiplicative() (ast.Expression, error) {
	return p.binaryChain(p.parseExponent, token.PStar, token.PSlash, token.PPercent)
}

// parseExponent is right-associative: `2 ** 3 ** 2 == 2 ** (3 ** 2)`.
func (p *Parser) parseExponent() (ast.Expression, error) {
	start, _ := p.peek()
	base, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	if p.matchPunct(token.PStarStar) {
		rhs, err := p.parseExponent()
		if err != nil {
			return nil, err
		}
		return ast.BinaryOperation{Lhs: base, Op: token.PStarStar, Rhs: rhs, P: start.Pos.ExtendedTo(p.previous().Pos)}, nil
	}
	return base, nil
}

func (p *Parser) parseUnary() (ast.Expression, error) {
	start, _ := p.peek()
	if p.matchPunct(token.PMinus, token.PBang) {
		op := p.previous().PunctuatorKind
		operand, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return ast.UnaryOperation{Op: op, Operand: operand, P: start.Pos.ExtendedTo(p.previous().Pos)}, nil
	}
	return p.parsePostfix()
}

// parsePostfix handles member access, indexing, calls, and type casts,
// any of which may chain: `a.b[c](d) as int`.
func (p *Parser) parsePostfix() (ast.Expression, error) {
	start, _ := p.peek()
	expr, err := p.parsePrimary()
	if err != nil {
		return nil, err
	}
	for {
		switch {
		case p.matchPunct(token.PDot):
			member, err := p.consumeIdent("expected member name after '.'")
			if err != nil {
				return nil, err
			}
			expr = ast.DotMemberAccess{Root: expr, Member: member.IdentName, MemberPos: member.Pos, P: start.Pos.ExtendedTo(member.Pos)}

		case p.matchPunct(token.PLBracket):
			index, err := p.parseExpression()
			if err != nil {
				return nil, err
			}
			closing, err := p.consumePunct(token.PRBracket, "expected ']' after index expression")
			if err != nil {
				return nil, err
			}
			expr = ast.ComputedMemberAccess{Root: expr, Index: index, P: start.Pos.ExtendedTo(closing.Pos)}

		case p.matchPunct(token.PLParen):
			args, closing, err := p.parseArgList()
			if err != nil {
				return nil, err
			}
			expr = ast.FunctionCall{Root: expr, Args: args, P: start.Pos.ExtendedTo(closing.Pos)}

		case p.matchKeyword(token.KwAs):
			typeTok, err := p.consumeIdent("expected a type name after 'as'")
			if err != nil {
				return nil, err
			}
			expr = ast.TypeCast{Expr: expr, DstType: typeTok.IdentName, DstTypePos: typeTok.Pos, P: start.Pos.ExtendedTo(typeTok.Pos)}

		default:
			return expr, nil
		}
	}
}

func (p *Parser) parseArgList() ([]ast.Expression, token.Token, error) {
	var args []ast.Expression
	if !p.checkPunct(token.PRParen) {
		for {
			arg, err := p.parseExpression()
			if err != nil {
				return nil, token.Token{}, err
			}
			args = append(args, arg)
			if !p.matchPunct(token.PComma) {
				break
			}
			if p.checkPunct(token.PRParen) {
				break // trailing comma
			}
		}
	}
	closing, err := p.consumePunct(token.PRParen, "expected ')' after argument list")
	return args, closing, err
}

func (p *Parser) parsePrimary() (ast.Expression, error) {
	tok, ok := p.peek()
	if !ok {
		return nil, p.unexpected("expected an expression")
	}

	switch tok.Kind {
	case token.Literal:
		p.advance()
		return ast.Literal{Value: literalValue(tok), P: tok.Pos}, nil

	case token.Ident:
		p.advance()
		return ast.VariableAccess{Name: tok.IdentName, P: tok.Pos}, nil

	case token.FStringSection:
		return p.parseFormattedString()

	case token.Punctuator:
		switch tok.PunctuatorKind {
		case token.PLParen:
			p.advance()
			inner, err := p.parseExpression()
			if err != nil {
				return nil, err
			}
			if _, err := p.consumePunct(token.PRParen, "expected ')' to close grouped expression"); err != nil {
				return nil, err
			}
			return inner, nil
		case token.PLBracket:
			return p.parseListLiteral()
		case token.PLBrace:
			return p.parseDictLiteral()
		}
	}
	return nil, p.unexpected("expected an expression")
}

func literalValue(tok token.Token) value.Value {
	switch tok.LitKind {
	case token.LiteralInt:
		return value.NewInt(new(big.Int).Set(tok.IntVal))
	case token.LiteralByte:
		return value.Byte{V: tok.ByteVal}
	case token.LiteralFloat:
		return value.Float{V: tok.FloatVal}
	case token.LiteralString:
		return value.String{V: tok.StringVal}
	case token.LiteralBool:
		return value.Bool{V: tok.BoolVal}
	case token.LiteralNull:
		return value.Null{}
	case token.LiteralInfinity:
		return value.Float{V: posInf}
	case token.LiteralNaN:
		return value.Float{V: nan}
	}
	return value.Null{}
}

func (p *Parser) parseListLiteral() (ast.Expression, error) {
	start := p.advance() // '['
	var elems []ast.Expression
	if !p.checkPunct(token.PRBracket) {
		for {
			elem, err := p.parseExpression()
			if err != nil {
				return nil, err
			}
			elems = append(elems, elem)
			if !p.matchPunct(token.PComma) {
				break
			}
			if p.checkPunct(token.PRBracket) {
				break
			}
		}
	}
	closing, err := p.consumePunct(token.PRBracket, "expected ']' to close list literal")
	if err != nil {
		return nil, err
	}
	return ast.ListLiteral{Elements: elems, P: start.Pos.ExtendedTo(closing.Pos)}, nil
}

func (p *Parser) parseDictLiteral() (ast.Expression, error) {
	start := p.advance() // '{'
	var entries []ast.DictEntry
	if !p.checkPunct(token.PRBrace) {
		for {
			key, err := p.parseExpression()
			if err != nil {
				return nil, err
			}
			if _, err := p.consumePunct(token.PColon, "expected ':' in dict literal entry"); err != nil {
				return nil, err
			}
			val, err := p.parseExpression()
			if err != nil {
				return nil, err
			}
			entries = append(entries, ast.DictEntry{Key: key, Val: val})
			if !p.matchPunct(token.PComma) {
				break
			}
			if p.checkPunct(token.PRBrace) {
				break
			}
		}
	}
	closing, err := p.consumePunct(token.PRBrace, "expected '}' to close dict literal")
	if err != nil {
		return nil, err
	}
	return ast.DictLiteral{Entries: entries, P: start.Pos.ExtendedTo(closing.Pos)}, nil
}

// parseFormattedString assembles an f-string from its interleaved
// section/expression tokens. A lone FStringComplete section (no
// interpolation at all) collapses to a plain string Literal.
func (p *Parser) parseFormattedString() (ast.Expression, error) {
	start := p.advance() // the Start or Complete section token
	if start.FStringPart == token.FStringComplete {
		return ast.Literal{Value: value.String{V: start.FStringText}, P: start.Pos}, nil
	}

	firstExpr, err := p.parseExpression()
	if err != nil {
		return nil, err
	}

	var continuations []ast.FStringContinuation
	var endLiteral string
	for {
		sec, ok := p.peek()
		if !ok || sec.Kind != token.FStringSection {
			return nil, p.unexpected("expected the next section of a formatted string literal")
		}
		p.advance()
		if sec.FStringPart == token.FStringEnd {
			endLiteral = sec.FStringText
			break
		}
		expr, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		continuations = append(continuations, ast.FStringContinuation{Literal: sec.FStringText, Expr: expr})
	}

	return ast.FormattedStringLiteral{
		StartLiteral:  start.FStringText,
		FirstExpr:     firstExpr,
		Continuations: continuations,
		EndLiteral:    endLiteral,
		P:             start.Pos.ExtendedTo(p.previous().Pos),
	}, nil
}
