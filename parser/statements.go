package parser

import (
	"icelang/ast"
	"icelang/token"
)

// parseStatement dispatches on the leading keyword (or falls through to
// an expression statement).
func (p *Parser) parseStatement() (ast.Stmt, error) {
	tok, ok := p.peek()
	if !ok {
		return nil, p.unexpected("expected a statement")
	}
	if tok.Kind == token.Keyword {
		switch tok.KeywordKind {
		case token.KwLet:
			return p.parseVariableDeclaration()
		case token.KwFn:
			return p.parseFunctionDeclaration()
		case token.KwIf:
			return p.parseIfElseStatement()
		case token.KwLoop:
			return p.parseSimpleLoop()
		case token.KwWhile:
			return p.parseWhileLoop()
		case token.KwFor:
			return p.parseForLoop()
		case token.KwMatch:
			return p.parseMatchStatement()
		case token.KwBreak, token.KwContinue, token.KwReturn:
			return p.parseJumpStatement()
		}
	}
	return p.parseExpressionStatement()
}

// parseBlock parses a `{ statement* }` block.
func (p *Parser) parseBlock() ([]ast.Stmt, error) {
	if _, err := p.consumePunct(token.PLBrace, "expected '{' to start a block"); err != nil {
		return nil, err
	}
	var stmts []ast.Stmt
	for !p.checkPunct(token.PRBrace) {
		if p.isFinished() {
			return nil, p.unexpected("expected '}' to close a block")
		}
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, stmt)
	}
	p.advance() // consume '}'
	return stmts, nil
}

func (p *Parser) parseExpressionStatement() (ast.Stmt, error) {
	start, _ := p.peek()
	expr, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if _, err := p.consumePunct(token.PSemicolon, "expected ';' after expression statement"); err != nil {
		return nil, err
	}
	return ast.ExpressionStatement{Expr: expr, P: start.Pos.ExtendedTo(p.previous().Pos)}, nil
}

// parseVariableDeclaration parses `let name [= expr] (, name [= expr])* ;`.
func (p *Parser) parseVariableDeclaration() (ast.Stmt, error) {
	start := p.advance() // 'let'
	var decls []ast.VarDecl
	for {
		name, err := p.consumeIdent("expected a variable name after 'let'")
		if err != nil {
			return nil, err
		}
		decl := ast.VarDecl{Name: name.IdentName, P: name.Pos}
		if p.matchPunct(token.PAssign) {
			init, err := p.parseExpression()
			if err != nil {
				return nil, err
			}
			decl.Init = init
			decl.P = name.Pos.ExtendedTo(p.previous().Pos)
		}
		decls = append(decls, decl)
		if !p.matchPunct(token.PComma) {
			break
		}
	}
	if _, err := p.consumePunct(token.PSemicolon, "expected ';' after variable declaration"); err != nil {
		return nil, err
	}
	return ast.VariableDeclaration{Decls: decls, P: start.Pos.ExtendedTo(p.previous().Pos)}, nil
}

// parseFunctionDeclaration parses `fn name(params) { body }`, where
// params is either a comma-separated identifier list (polyadic) or a
// single `[ident]` (variadic).
func (p *Parser) parseFunctionDeclaration() (ast.Stmt, error) {
	start := p.advance() // 'fn'
	name, err := p.consumeIdent("expected a function name after 'fn'")
	if err != nil {
		return nil, err
	}
	if _, err := p.consumePunct(token.PLParen, "expected '(' after function name"); err != nil {
		return nil, err
	}

	params, err := p.parseFunctionParams()
	if err != nil {
		return nil, err
	}

	if _, err := p.consumePunct(token.PRParen, "expected ')' after parameter list"); err != nil {
		return nil, err
	}
	body, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	return ast.FunctionDeclaration{
		Name:   name.IdentName,
		Params: params,
		Body:   body,
		P:      start.Pos.ExtendedTo(p.previous().Pos),
	}, nil
}

func (p *Parser) parseFunctionParams() (ast.FunctionParams, error) {
	if p.checkPunct(token.PRParen) {
		return ast.FunctionParams{}, nil
	}
	if p.matchPunct(token.PLBracket) {
		name, err := p.consumeIdent("expected a parameter name inside '[...]'")
		if err != nil {
			return ast.FunctionParams{}, err
		}
		if _, err := p.consumePunct(token.PRBracket, "expected ']' after variadic parameter name"); err != nil {
			return ast.FunctionParams{}, err
		}
		return ast.FunctionParams{Variadic: true, VariadicName: name.IdentName, VariadicPos: name.Pos}, nil
	}
	var params []ast.Param
	for {
		name, err := p.consumeIdent("expected a parameter name")
		if err != nil {
			return ast.FunctionParams{}, err
		}
		params = append(params, ast.Param{Name: name.IdentName, P: name.Pos})
		if !p.matchPunct(token.PComma) {
			break
		}
		if p.checkPunct(token.PRParen) {
			break
		}
	}
	return ast.FunctionParams{Polyadic: params}, nil
}

func (p *Parser) parseJumpStatement() (ast.Stmt, error) {
	start := p.advance()
	var kind ast.JumpKind
	switch start.KeywordKind {
	case token.KwBreak:
		kind = ast.JumpBreak
	case token.KwContinue:
		kind = ast.JumpContinue
	case token.KwReturn:
		kind = ast.JumpReturn
	}
	var value ast.Expression
	if !p.checkPunct(token.PSemicolon) {
		v, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		value = v
	}
	if _, err := p.consumePunct(token.PSemicolon, "expected ';' after jump statement"); err != nil {
		return nil, err
	}
	return ast.JumpStatement{Kind: kind, Value: value, P: start.Pos.ExtendedTo(p.previous().Pos)}, nil
}

// parseSimpleLoop parses `loop { body }` or `loop count { body }`.
func (p *Parser) parseSimpleLoop() (ast.Stmt, error) {
	start := p.advance() // 'loop'
	var count ast.Expression
	if !p.checkPunct(token.PLBrace) {
		c, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		count = c
	}
	body, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	return ast.SimpleLoop{Count: count, Body: body, P: start.Pos.ExtendedTo(p.previous().Pos)}, nil
}

func (p *Parser) parseWhileLoop() (ast.Stmt, error) {
	start := p.advance() // 'while'
	cond, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	body, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	return ast.WhileLoop{Cond: cond, Body: body, P: start.Pos.ExtendedTo(p.previous().Pos)}, nil
}

func (p *Parser) parseForLoop() (ast.Stmt, error) {
	start := p.advance() // 'for'
	ident, err := p.consumeIdent("expected a loop variable name after 'for'")
	if err != nil {
		return nil, err
	}
	if _, err := p.consumeKeyword(token.KwIn, "expected 'in' after for-loop variable"); err != nil {
		return nil, err
	}
	iterable, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	body, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	return ast.ForLoop{Ident: ident.IdentName, Iterable: iterable, Body: body, P: start.Pos.ExtendedTo(p.previous().Pos)}, nil
}

func (p *Parser) parseIfElseStatement() (ast.Stmt, error) {
	start := p.advance() // 'if'
	var branches []ast.IfBranch
	cond, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	body, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	branches = append(branches, ast.IfBranch{Cond: cond, Body: body})

	var elseBody []ast.Stmt
	for p.matchKeyword(token.KwElse) {
		if p.matchKeyword(token.KwIf) {
			cond, err := p.parseExpression()
			if err != nil {
				return nil, err
			}
			body, err := p.parseBlock()
			if err != nil {
				return nil, err
			}
			branches = append(branches, ast.IfBranch{Cond: cond, Body: body})
			continue
		}
		body, err := p.parseBlock()
		if err != nil {
			return nil, err
		}
		elseBody = body
		break
	}
	return ast.IfElseStatement{Branches: branches, Else: elseBody, P: start.Pos.ExtendedTo(p.previous().Pos)}, nil
}

// parseMatchStatement parses `match scrutinee { pattern => { body } ... }`.
func (p *Parser) parseMatchStatement() (ast.Stmt, error) {
	start := p.advance() // 'match'
	scrutinee, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if _, err := p.consumePunct(token.PLBrace, "expected '{' to start match body"); err != nil {
		return nil, err
	}
	var arms []ast.MatchArm
	for !p.checkPunct(token.PRBrace) {
		if p.isFinished() {
			return nil, p.unexpected("expected '}' to close match statement")
		}
		pattern, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		if _, err := p.consumePunct(token.PFatArrow, "expected '=>' before match arm body"); err != nil {
			return nil, err
		}
		body, err := p.parseBlock()
		if err != nil {
			return nil, err
		}
		arms = append(arms, ast.MatchArm{Pattern: pattern, Body: body})
	}
	p.advance() // consume '}'
	return ast.MatchStatement{Scrutinee: scrutinee, Arms: arms, P: start.Pos.ExtendedTo(p.previous().Pos)}, nil
}
