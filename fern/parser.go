package fern

import "strconv"

// Parser turns a materialized token sequence into AST nodes, one
// top-level statement per ParseStatement call. The token slice is
// never mutated; the only parser state is a read index with one token
// of lookahead via peek.
type Parser struct {
	tokens []Token
	pos    int
}

func NewParser(tokens []Token) *Parser {
	return &Parser{tokens: tokens}
}

// Parse lexes input and parses every top-level statement. It is a
// convenience for callers that do not need the incremental
// statement-at-a-time driver loop.
func Parse(input string) ([]Node, error) {
	tokens, err := NewLexer(input).Scan()
	if err != nil {
		return nil, err
	}

	p := NewParser(tokens)
	var program []Node
	for !p.AtEnd() {
		stmt, err := p.ParseStatement()
		if err != nil {
			return nil, err
		}
		if _, done := stmt.(*EOF); done {
			break
		}
		program = append(program, stmt)
	}
	return program, nil
}

func (p *Parser) current() (Token, error) {
	if p.pos >= len(p.tokens) {
		return Token{}, p.errEndOfInput()
	}
	return p.tokens[p.pos], nil
}

func (p *Parser) consume() {
	if p.pos < len(p.tokens) {
		p.pos++
	}
}

// peek returns the token one past the cursor without consuming
// anything. The grammar never needs more lookahead than this.
func (p *Parser) peek() (Token, bool) {
	if p.pos+1 >= len(p.tokens) {
		return Token{}, false
	}
	return p.tokens[p.pos+1], true
}

// AtEnd reports whether the parser has reached the EOF token or run
// out of tokens entirely (truncated stream).
func (p *Parser) AtEnd() bool {
	tok, err := p.current()
	if err != nil {
		return true
	}
	return tok.Type == tokenEOF
}

// ParseStatement parses one top-level statement. An EOF token yields
// an *EOF node without consuming it, so AtEnd stays true for the
// driver.
func (p *Parser) ParseStatement() (Node, error) {
	tok, err := p.current()
	if err != nil {
		return nil, err
	}

	switch tok.Type {
	case tokenEOF:
		return &EOF{}, nil
	case tokenImport:
		return p.parseImport()
	case tokenLet:
		return p.parseVarDecl()
	case tokenFn:
		return p.parseFuncDef()
	case tokenIf:
		return p.parseIf()
	case tokenLoop:
		return p.parseLoop()
	case tokenBreak:
		p.consume()
		if err := p.expectSemicolon(); err != nil {
			return nil, err
		}
		return &BreakStmt{}, nil
	case tokenReturn:
		return p.parseReturn()
	case tokenIdent:
		next, ok := p.peek()
		if !ok {
			return nil, p.errEndOfInput()
		}
		switch next.Type {
		case tokenLParen:
			call, err := p.parseFuncCall()
			if err != nil {
				return nil, err
			}
			if err := p.expectSemicolon(); err != nil {
				return nil, err
			}
			return call, nil
		case tokenAssign:
			return p.parseAssign()
		default:
			return nil, p.errUnexpected(next)
		}
	default:
		return p.parseExpression(true)
	}
}

// parseExpression is the grammar's entry level. When terminate is set
// the expression must be followed by a ';', which is consumed; call
// arguments and loop/if conditions parse unterminated. Only
// identifier, number, string and boolean tokens may start an
// expression.
func (p *Parser) parseExpression(terminate bool) (Node, error) {
	tok, err := p.current()
	if err != nil {
		return nil, err
	}

	switch tok.Type {
	case tokenIdent, tokenNumber, tokenString, tokenTrue, tokenFalse:
		node, err := p.parseLogic()
		if err != nil {
			return nil, err
		}
		if terminate {
			if err := p.expectSemicolon(); err != nil {
				return nil, err
			}
		}
		return node, nil
	default:
		return nil, p.errUnexpected(tok)
	}
}

// parseLogic handles the loosest-binding tier: `and` / `or`,
// left-associative over comparisons.
func (p *Parser) parseLogic() (Node, error) {
	node, err := p.parseComparison()
	if err != nil {
		return nil, err
	}

	for {
		tok, err := p.current()
		if err != nil {
			return node, nil
		}
		switch tok.Type {
		case tokenAnd, tokenOr:
			p.consume()
			right, err := p.parseComparison()
			if err != nil {
				return nil, err
			}
			node = &BinaryOp{Op: tok.Literal, Left: node, Right: right}
		default:
			return node, nil
		}
	}
}

func (p *Parser) parseComparison() (Node, error) {
	node, err := p.parseArith()
	if err != nil {
		return nil, err
	}

	for {
		tok, err := p.current()
		if err != nil {
			return node, nil
		}
		switch tok.Type {
		case tokenEQ, tokenLT, tokenLTE, tokenGT, tokenGTE:
			p.consume()
			right, err := p.parseArith()
			if err != nil {
				return nil, err
			}
			node = &BinaryOp{Op: tok.Literal, Left: node, Right: right}
		default:
			return node, nil
		}
	}
}

func (p *Parser) parseArith() (Node, error) {
	node, err := p.parseTerm()
	if err != nil {
		return nil, err
	}

	for {
		tok, err := p.current()
		if err != nil {
			return node, nil
		}
		switch tok.Type {
		case tokenPlus, tokenMinus:
			p.consume()
			right, err := p.parseTerm()
			if err != nil {
				return nil, err
			}
			node = &BinaryOp{Op: tok.Literal, Left: node, Right: right}
		default:
			return node, nil
		}
	}
}

func (p *Parser) parseTerm() (Node, error) {
	node, err := p.parseFactor()
	if err != nil {
		return nil, err
	}

	for {
		tok, err := p.current()
		if err != nil {
			return node, nil
		}
		switch tok.Type {
		case tokenAsterisk, tokenSlash, tokenPercent:
			p.consume()
			right, err := p.parseFactor()
			if err != nil {
				return nil, err
			}
			node = &BinaryOp{Op: tok.Literal, Left: node, Right: right}
		default:
			return node, nil
		}
	}
}

// parseFactor is the tightest-binding tier: literals, identifier
// references, calls, and parenthesized sub-expressions. There is no
// unary production, so `-x` does not parse: `-` always lexes as
// binary subtraction.
func (p *Parser) parseFactor() (Node, error) {
	tok, err := p.current()
	if err != nil {
		return nil, err
	}

	switch tok.Type {
	case tokenNumber:
		// The lexer guarantees digits with at most one dot, so this
		// only falls back to zero on pathological input.
		value, err := strconv.ParseFloat(tok.Literal, 64)
		if err != nil {
			value = 0
		}
		p.consume()
		return &Number{Value: value}, nil
	case tokenIdent:
		if next, ok := p.peek(); ok && next.Type == tokenLParen {
			return p.parseFuncCall()
		}
		p.consume()
		return &Identifier{Name: tok.Literal}, nil
	case tokenString:
		p.consume()
		return &StringLiteral{Value: tok.Literal}, nil
	case tokenTrue:
		p.consume()
		return &BoolLiteral{Value: true}, nil
	case tokenFalse:
		p.consume()
		return &BoolLiteral{Value: false}, nil
	case tokenLParen:
		p.consume()
		node, err := p.parseExpression(false)
		if err != nil {
			return nil, err
		}
		closing, err := p.current()
		if err != nil {
			return nil, err
		}
		if closing.Type != tokenRParen {
			return nil, p.errExpected("closing parenthesis", closing.Line)
		}
		p.consume()
		return node, nil
	default:
		return nil, p.errUnexpected(tok)
	}
}

func (p *Parser) expectSemicolon() error {
	tok, err := p.current()
	if err != nil {
		return err
	}
	if tok.Type != tokenSemicolon {
		return &ParseError{Kind: ExpectedSemicolon, Line: tok.Line}
	}
	p.consume()
	return nil
}

func (p *Parser) parseImport() (Node, error) {
	p.consume() // import

	tok, err := p.current()
	if err != nil {
		return nil, err
	}
	if tok.Type != tokenString {
		return nil, p.errExpected("module string", tok.Line)
	}
	p.consume()

	return &ImportStmt{Module: tok.Literal}, nil
}

func (p *Parser) parseVarDecl() (Node, error) {
	p.consume() // let

	name, err := p.expectIdent()
	if err != nil {
		return nil, err
	}

	eq, err := p.current()
	if err != nil {
		return nil, err
	}
	if eq.Type != tokenAssign {
		return nil, p.errExpected("'='", eq.Line)
	}
	p.consume()

	value, err := p.parseExpression(true)
	if err != nil {
		return nil, err
	}

	return &VarDecl{Name: name, Value: value}, nil
}

func (p *Parser) parseAssign() (Node, error) {
	tok, err := p.current()
	if err != nil {
		return nil, err
	}
	name := tok.Literal
	p.consume() // identifier
	p.consume() // =

	value, err := p.parseExpression(true)
	if err != nil {
		return nil, err
	}

	return &AssignStmt{Name: name, Value: value}, nil
}

// parseReturn accepts `return expr;` or a bare `return;`. When the
// expression attempt fails the cursor must be sitting on a ';' for
// the bare form, otherwise the statement is rejected.
func (p *Parser) parseReturn() (Node, error) {
	p.consume() // return

	value, err := p.parseExpression(true)
	if err == nil {
		return &ReturnStmt{Value: value}, nil
	}

	if semiErr := p.expectSemicolon(); semiErr != nil {
		return nil, semiErr
	}
	return &ReturnStmt{}, nil
}

func (p *Parser) parseFuncDef() (Node, error) {
	p.consume() // fn

	name, err := p.expectIdent()
	if err != nil {
		return nil, err
	}

	open, err := p.current()
	if err != nil {
		return nil, err
	}
	if open.Type != tokenLParen {
		return nil, p.errExpected("'('", open.Line)
	}

	params, err := p.parseParams()
	if err != nil {
		return nil, err
	}

	body, err := p.parseBlock()
	if err != nil {
		return nil, err
	}

	return &FuncDef{Name: name, Params: params, Body: body}, nil
}

// parseParams consumes `( ident, ident, ... )`. Parameters are bare
// identifiers only; an empty pair declares a zero-argument function.
func (p *Parser) parseParams() ([]string, error) {
	p.consume() // (

	var params []string
	for {
		tok, err := p.current()
		if err != nil {
			return nil, err
		}
		if tok.Type == tokenRParen {
			p.consume()
			return params, nil
		}
		if tok.Type != tokenIdent {
			return nil, p.errUnexpected(tok)
		}
		params = append(params, tok.Literal)
		p.consume()

		sep, err := p.current()
		if err != nil {
			return nil, err
		}
		switch sep.Type {
		case tokenComma:
			p.consume()
		case tokenRParen:
			p.consume()
			return params, nil
		default:
			return nil, p.errUnexpected(sep)
		}
	}
}

// parseFuncCall parses `name(arg, arg, ...)` with the cursor on the
// identifier; callers have already peeked the '('.
func (p *Parser) parseFuncCall() (Node, error) {
	tok, err := p.current()
	if err != nil {
		return nil, err
	}
	name := tok.Literal
	p.consume() // identifier
	p.consume() // (

	var args []Node
	for {
		tok, err := p.current()
		if err != nil {
			return nil, err
		}
		if tok.Type == tokenRParen {
			p.consume()
			return &CallExpr{Name: name, Args: args}, nil
		}

		arg, err := p.parseExpression(false)
		if err != nil {
			return nil, err
		}
		args = append(args, arg)

		sep, err := p.current()
		if err != nil {
			return nil, err
		}
		switch sep.Type {
		case tokenComma:
			p.consume()
		case tokenRParen:
			p.consume()
			return &CallExpr{Name: name, Args: args}, nil
		default:
			return nil, p.errUnexpected(sep)
		}
	}
}

// parseBlock consumes `{ statement* }`. Reaching end of input or any
// statement failure before the closing brace reports an unterminated
// block carrying the line of the block's first statement attempt, not
// the line the failure surfaced on.
func (p *Parser) parseBlock() ([]Node, error) {
	open, err := p.current()
	if err != nil {
		return nil, err
	}
	if open.Type != tokenLBrace {
		return nil, p.errExpected("'{'", open.Line)
	}
	p.consume()

	blockLine := open.Line
	if first, err := p.current(); err == nil {
		blockLine = first.Line
	}

	stmts := []Node{}
	for {
		tok, err := p.current()
		if err != nil || tok.Type == tokenEOF {
			return nil, &ParseError{Kind: UnterminatedBlock, Line: blockLine}
		}
		if tok.Type == tokenRBrace {
			p.consume()
			return stmts, nil
		}

		stmt, err := p.ParseStatement()
		if err != nil {
			return nil, &ParseError{Kind: UnterminatedBlock, Line: blockLine}
		}
		stmts = append(stmts, stmt)
	}
}

func (p *Parser) parseLoop() (Node, error) {
	p.consume() // loop

	condition, err := p.parseCondition()
	if err != nil {
		return nil, err
	}

	body, err := p.parseBlock()
	if err != nil {
		return nil, err
	}

	return &LoopStmt{Condition: condition, Body: body}, nil
}

func (p *Parser) parseIf() (Node, error) {
	p.consume() // if

	condition, err := p.parseCondition()
	if err != nil {
		return nil, err
	}

	then, err := p.parseBlock()
	if err != nil {
		return nil, err
	}

	var elifs []ElifClause
	for {
		tok, err := p.current()
		if err != nil {
			return nil, err
		}
		if tok.Type != tokenElif {
			break
		}
		p.consume()

		cond, err := p.parseCondition()
		if err != nil {
			return nil, err
		}
		body, err := p.parseBlock()
		if err != nil {
			return nil, err
		}
		elifs = append(elifs, ElifClause{Condition: cond, Body: body})
	}

	var elseBody []Node
	tok, err := p.current()
	if err != nil {
		return nil, err
	}
	if tok.Type == tokenElse {
		p.consume()
		elseBody, err = p.parseBlock()
		if err != nil {
			return nil, err
		}
	}

	return &IfStmt{Condition: condition, Then: then, Elifs: elifs, Else: elseBody}, nil
}

// parseCondition consumes `( expr )` after an `if`, `elif` or `loop`
// keyword.
func (p *Parser) parseCondition() (Node, error) {
	open, err := p.current()
	if err != nil {
		return nil, err
	}
	if open.Type != tokenLParen {
		return nil, p.errExpected("'('", open.Line)
	}
	p.consume()

	condition, err := p.parseExpression(false)
	if err != nil {
		return nil, err
	}

	closing, err := p.current()
	if err != nil {
		return nil, err
	}
	if closing.Type != tokenRParen {
		return nil, p.errExpected("')'", closing.Line)
	}
	p.consume()

	return condition, nil
}

func (p *Parser) expectIdent() (string, error) {
	tok, err := p.current()
	if err != nil {
		return "", err
	}
	if tok.Type != tokenIdent {
		return "", p.errExpected("identifier", tok.Line)
	}
	p.consume()
	return tok.Literal, nil
}
