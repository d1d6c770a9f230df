// ==============================================================================================
// FILE: parser/parser.go
// ==============================================================================================
// PACKAGE: parser
// PURPOSE: Implements a Recursive Descent Parser with Pratt Parsing for expressions.
//          It converts a stream of Tokens (from the Lexer) into an Abstract Syntax Tree (AST).
//          This component defines the grammar and syntax rules of Glade.
// ==============================================================================================

package parser

import (
	"fmt"
	"math/big"
	"strconv"
	"strings"

	"github.com/glade-lang/glade/ast"
	"github.com/glade-lang/glade/lexer"
	"github.com/glade-lang/glade/token"
)

// Precedence constants determine the order of operations in expressions.
// Higher values mean the operator binds more tightly.
const (
	_ int = iota
	LOWEST
	LAMBDA
	TERNARY // X if COND else Y
	OR_PREC
	AND_PREC
	NOT_PREC
	COMPARE // <, >, ==, !=, in, not in, is, is not
	BOR_PREC
	BXOR_PREC
	BAND_PREC
	SHIFT
	SUM
	PRODUCT
	UNARY // -x, +x, ~x
	POWER // **, right-associative
	CALL  // f(x), a[i], a.b
)

var precedences = map[token.TokenType]int{
	token.IF:       TERNARY,
	token.OR:       OR_PREC,
	token.AND:      AND_PREC,
	token.NOT:      COMPARE, // only relevant as infix for `not in`
	token.IN:       COMPARE,
	token.IS:       COMPARE,
	token.LT:       COMPARE,
	token.GT:       COMPARE,
	token.LT_EQ:    COMPARE,
	token.GT_EQ:    COMPARE,
	token.EQ:       COMPARE,
	token.NOT_EQ:   COMPARE,
	token.PIPE:     BOR_PREC,
	token.CARET:    BXOR_PREC,
	token.AMP:      BAND_PREC,
	token.SHL:      SHIFT,
	token.SHR:      SHIFT,
	token.PLUS:     SUM,
	token.MINUS:    SUM,
	token.STAR:     PRODUCT,
	token.SLASH:    PRODUCT,
	token.DSLASH:   PRODUCT,
	token.PERCENT:  PRODUCT,
	token.DSTAR:    POWER,
	token.LPAREN:   CALL,
	token.LBRACKET: CALL,
	token.DOT:      CALL,
}

type (
	prefixParseFn func() ast.Expression
	infixParseFn  func(ast.Expression) ast.Expression
)

// Parser holds the state of the parsing process.
type Parser struct {
	l         *lexer.Lexer
	curToken  token.Token
	peekToken token.Token
	errors    []string

	prefixParseFns map[token.TokenType]prefixParseFn
	infixParseFns  map[token.TokenType]infixParseFn
}

// New initializes a new Parser instance and primes the two-token lookahead.
func New(l *lexer.Lexer) *Parser {
	p := &Parser{l: l, errors: []string{}}

	p.prefixParseFns = make(map[token.TokenType]prefixParseFn)
	p.registerPrefix(token.IDENT, p.parseIdentifier)
	p.registerPrefix(token.INT, p.parseIntegerLiteral)
	p.registerPrefix(token.FLOAT, p.parseFloatLiteral)
	p.registerPrefix(token.STRING, p.parseStringLiteral)
	p.registerPrefix(token.FSTRING, p.parseFStringLiteral)
	p.registerPrefix(token.TRUE, p.parseBooleanLiteral)
	p.registerPrefix(token.FALSE, p.parseBooleanLiteral)
	p.registerPrefix(token.NONE, p.parseNoneLiteral)
	p.registerPrefix(token.MINUS, p.parseUnaryExpression)
	p.registerPrefix(token.PLUS, p.parseUnaryExpression)
	p.registerPrefix(token.TILDE, p.parseUnaryExpression)
	p.registerPrefix(token.NOT, p.parseNotExpression)
	p.registerPrefix(token.STAR, p.parseStarredExpression)
	p.registerPrefix(token.DSTAR, p.parseDoubleStarredExpression)
	p.registerPrefix(token.LPAREN, p.parseParenOrTupleOrGenerator)
	p.registerPrefix(token.LBRACKET, p.parseListOrComprehension)
	p.registerPrefix(token.LBRACE, p.parseDictOrSetOrComprehension)
	p.registerPrefix(token.LAMBDA, p.parseLambda)

	p.infixParseFns = make(map[token.TokenType]infixParseFn)
	p.registerInfix(token.PLUS, p.parseBinaryExpression)
	p.registerInfix(token.MINUS, p.parseBinaryExpression)
	p.registerInfix(token.STAR, p.parseBinaryExpression)
	p.registerInfix(token.SLASH, p.parseBinaryExpression)
	p.registerInfix(token.DSLASH, p.parseBinaryExpression)
	p.registerInfix(token.PERCENT, p.parseBinaryExpression)
	p.registerInfix(token.PIPE, p.parseBinaryExpression)
	p.registerInfix(token.CARET, p.parseBinaryExpression)
	p.registerInfix(token.AMP, p.parseBinaryExpression)
	p.registerInfix(token.SHL, p.parseBinaryExpression)
	p.registerInfix(token.SHR, p.parseBinaryExpression)
	p.registerInfix(token.DSTAR, p.parsePowerExpression)
	p.registerInfix(token.AND, p.parseBoolOpExpression)
	p.registerInfix(token.OR, p.parseBoolOpExpression)
	p.registerInfix(token.LT, p.parseCompareExpression)
	p.registerInfix(token.GT, p.parseCompareExpression)
	p.registerInfix(token.LT_EQ, p.parseCompareExpression)
	p.registerInfix(token.GT_EQ, p.parseCompareExpression)
	p.registerInfix(token.EQ, p.parseCompareExpression)
	p.registerInfix(token.NOT_EQ, p.parseCompareExpression)
	p.registerInfix(token.IN, p.parseCompareExpression)
	p.registerInfix(token.IS, p.parseCompareExpression)
	p.registerInfix(token.NOT, p.parseCompareExpression) // only fires for `not in`
	p.registerInfix(token.IF, p.parseTernaryExpression)
	p.registerInfix(token.LPAREN, p.parseCallExpression)
	p.registerInfix(token.LBRACKET, p.parseSubscriptExpression)
	p.registerInfix(token.DOT, p.parseAttributeExpression)

	p.nextToken()
	p.nextToken()
	return p
}

func (p *Parser) registerPrefix(t token.TokenType, fn prefixParseFn) { p.prefixParseFns[t] = fn }
func (p *Parser) registerInfix(t token.TokenType, fn infixParseFn)   { p.infixParseFns[t] = fn }

func (p *Parser) nextToken() {
	p.curToken = p.peekToken
	p.peekToken = p.l.NextToken()
}

func (p *Parser) curTokenIs(t token.TokenType) bool  { return p.curToken.Type == t }
func (p *Parser) peekTokenIs(t token.TokenType) bool { return p.peekToken.Type == t }

func (p *Parser) expectPeek(t token.TokenType) bool {
	if p.peekTokenIs(t) {
		p.nextToken()
		return true
	}
	p.peekError(t)
	return false
}

func (p *Parser) peekError(t token.TokenType) {
	msg := fmt.Sprintf("line %d:%d - expected next token to be %s, got %s (%q) instead",
		p.peekToken.Line, p.peekToken.Column, t, p.peekToken.Type, p.peekToken.Literal)
	p.errors = append(p.errors, msg)
}

func (p *Parser) errorf(format string, args ...interface{}) {
	p.errors = append(p.errors, fmt.Sprintf("line %d:%d - %s", p.curToken.Line, p.curToken.Column, fmt.Sprintf(format, args...)))
}

// Errors returns every syntax error accumulated while parsing.
func (p *Parser) Errors() []string { return p.errors }

// peekPrecedence treats a peeked `not` as the start of `not in`, the only
// legal position a bare `not` can occupy right after a complete expression.
func (p *Parser) peekPrecedence() int {
	if pr, ok := precedences[p.peekToken.Type]; ok {
		return pr
	}
	return LOWEST
}

func (p *Parser) curPrecedence() int {
	if pr, ok := precedences[p.curToken.Type]; ok {
		return pr
	}
	return LOWEST
}

// ParseProgram is the entry point for parsing: a sequence of top-level
// statements separated by NEWLINE tokens, terminated by EOF.
func (p *Parser) ParseProgram() *ast.Program {
	program := &ast.Program{}
	p.skipNewlines()
	for !p.curTokenIs(token.EOF) {
		before := p.curToken
		stmt := p.parseStatement()
		if stmt != nil {
			program.Statements = append(program.Statements, stmt)
		}
		// A statement that failed before consuming any token would be
		// retried on the same token forever; step past it.
		if p.curToken.Type == before.Type && p.curToken.Line == before.Line && p.curToken.Column == before.Column {
			p.nextToken()
		}
		p.skipNewlines()
	}
	return program
}

func (p *Parser) skipNewlines() {
	for p.curTokenIs(token.NEWLINE) || p.curTokenIs(token.SEMI) {
		p.nextToken()
	}
}

// parseExpression is the Pratt-parsing core: parse a prefix (nud), then
// repeatedly fold in infix/postfix operators (led) while they bind tighter
// than the precedence floor passed in by the caller.
func (p *Parser) parseExpression(precedence int) ast.Expression {
	prefix := p.prefixParseFns[p.curToken.Type]
	if prefix == nil {
		p.errorf("no prefix parse function for %s", p.curToken.Type)
		return nil
	}
	leftExp := prefix()

	for !p.peekTokenIs(token.NEWLINE) && !p.peekTokenIs(token.EOF) && precedence < p.peekPrecedence() {
		infix := p.infixParseFns[p.peekToken.Type]
		if infix == nil {
			return leftExp
		}
		p.nextToken()
		leftExp = infix(leftExp)
	}
	return leftExp
}

// ---- Literal / atom prefix parsers ------------------------------------------------------------

func (p *Parser) parseIdentifier() ast.Expression {
	return &ast.Identifier{Token: p.curToken, Value: p.curToken.Literal}
}

func (p *Parser) parseIntegerLiteral() ast.Expression {
	lit := &ast.IntegerLiteral{Token: p.curToken}
	text := strings.ReplaceAll(p.curToken.Literal, "_", "")
	val := new(big.Int)
	base := 10
	switch {
	case strings.HasPrefix(text, "0x") || strings.HasPrefix(text, "0X"):
		base, text = 16, text[2:]
	case strings.HasPrefix(text, "0o") || strings.HasPrefix(text, "0O"):
		base, text = 8, text[2:]
	case strings.HasPrefix(text, "0b") || strings.HasPrefix(text, "0B"):
		base, text = 2, text[2:]
	}
	if _, ok := val.SetString(text, base); !ok {
		p.errorf("could not parse %q as an integer", p.curToken.Literal)
		return nil
	}
	lit.Value = val
	return lit
}

func (p *Parser) parseFloatLiteral() ast.Expression {
	lit := &ast.FloatLiteral{Token: p.curToken}
	val, err := strconv.ParseFloat(strings.ReplaceAll(p.curToken.Literal, "_", ""), 64)
	if err != nil {
		p.errorf("could not parse %q as a float", p.curToken.Literal)
		return nil
	}
	lit.Value = val
	return lit
}

func (p *Parser) parseStringLiteral() ast.Expression {
	return &ast.StringLiteral{Token: p.curToken, Value: p.curToken.Literal}
}

// parseFStringLiteral re-parses each expression Segment the lexer captured
// into a full sub-expression, sharing this parser's grammar.
func (p *Parser) parseFStringLiteral() ast.Expression {
	lit := &ast.FStringLiteral{Token: p.curToken}
	for _, seg := range p.curToken.Fragments {
		if !seg.IsExpr {
			lit.Parts = append(lit.Parts, ast.FStringPart{Text: seg.Text})
			continue
		}
		sub := New(lexer.New(seg.Text))
		expr := sub.parseExpression(LOWEST)
		if len(sub.Errors()) > 0 {
			p.errors = append(p.errors, sub.Errors()...)
		}
		lit.Parts = append(lit.Parts, ast.FStringPart{Expr: expr})
	}
	return lit
}

func (p *Parser) parseBooleanLiteral() ast.Expression {
	return &ast.BooleanLiteral{Token: p.curToken, Value: p.curTokenIs(token.TRUE)}
}

func (p *Parser) parseNoneLiteral() ast.Expression { return &ast.NoneLiteral{Token: p.curToken} }

func (p *Parser) parseUnaryExpression() ast.Expression {
	exp := &ast.UnaryExpr{Token: p.curToken, Operator: p.curToken.Literal}
	p.nextToken()
	exp.Right = p.parseExpression(UNARY)
	return exp
}

func (p *Parser) parseNotExpression() ast.Expression {
	exp := &ast.UnaryExpr{Token: p.curToken, Operator: "not"}
	p.nextToken()
	exp.Right = p.parseExpression(NOT_PREC)
	return exp
}

func (p *Parser) parseStarredExpression() ast.Expression {
	tok := p.curToken
	p.nextToken()
	return &ast.Starred{Token: tok, Value: p.parseExpression(UNARY)}
}

func (p *Parser) parseDoubleStarredExpression() ast.Expression {
	tok := p.curToken
	p.nextToken()
	return &ast.DoubleStarred{Token: tok, Value: p.parseExpression(UNARY)}
}

// parseParenOrTupleOrGenerator disambiguates `(expr)`, `(a, b, ...)`, and
// `(expr for target in iter ...)` which all start with the same token.
func (p *Parser) parseParenOrTupleOrGenerator() ast.Expression {
	tok := p.curToken
	if p.peekTokenIs(token.RPAREN) {
		p.nextToken()
		return &ast.TupleLiteral{Token: tok}
	}
	p.nextToken()
	first := p.parseExpression(LOWEST)

	if p.peekTokenIs(token.FOR) {
		gens := p.parseComprehensionClauses()
		if !p.expectPeek(token.RPAREN) {
			return nil
		}
		return &ast.GeneratorExpr{Token: tok, Element: first, Generators: gens}
	}

	if p.peekTokenIs(token.COMMA) {
		elems := []ast.Expression{first}
		for p.peekTokenIs(token.COMMA) {
			p.nextToken()
			if p.peekTokenIs(token.RPAREN) {
				break
			}
			p.nextToken()
			elems = append(elems, p.parseExpression(LOWEST))
		}
		if !p.expectPeek(token.RPAREN) {
			return nil
		}
		return &ast.TupleLiteral{Token: tok, Elements: elems}
	}

	if !p.expectPeek(token.RPAREN) {
		return nil
	}
	return first
}

// parseListOrComprehension handles `[...]` literals and list comprehensions.
func (p *Parser) parseListOrComprehension() ast.Expression {
	tok := p.curToken
	if p.peekTokenIs(token.RBRACKET) {
		p.nextToken()
		return &ast.ListLiteral{Token: tok}
	}
	p.nextToken()
	first := p.parseExpression(LOWEST)

	if p.peekTokenIs(token.FOR) {
		gens := p.parseComprehensionClauses()
		if !p.expectPeek(token.RBRACKET) {
			return nil
		}
		return &ast.ListCompExpr{Token: tok, Element: first, Generators: gens}
	}

	elems := []ast.Expression{first}
	for p.peekTokenIs(token.COMMA) {
		p.nextToken()
		if p.peekTokenIs(token.RBRACKET) {
			break
		}
		p.nextToken()
		elems = append(elems, p.parseExpression(LOWEST))
	}
	if !p.expectPeek(token.RBRACKET) {
		return nil
	}
	return &ast.ListLiteral{Token: tok, Elements: elems}
}

// parseDictOrSetOrComprehension handles `{...}` in all four of its forms:
// dict literal, set literal, dict comprehension, set comprehension.
func (p *Parser) parseDictOrSetOrComprehension() ast.Expression {
	tok := p.curToken
	if p.peekTokenIs(token.RBRACE) {
		p.nextToken()
		return &ast.DictLiteral{Token: tok}
	}
	p.nextToken()

	if p.curTokenIs(token.DSTAR) {
		return p.parseDictLiteralTail(tok, nil)
	}

	firstKey := p.parseExpression(LOWEST)
	if p.peekTokenIs(token.COLON) {
		p.nextToken() // on ':'
		p.nextToken()
		firstVal := p.parseExpression(LOWEST)

		if p.peekTokenIs(token.FOR) {
			gens := p.parseComprehensionClauses()
			if !p.expectPeek(token.RBRACE) {
				return nil
			}
			return &ast.DictCompExpr{Token: tok, Key: firstKey, Value: firstVal, Generators: gens}
		}
		return p.parseDictLiteralTail(tok, []ast.DictPair{{Key: firstKey, Value: firstVal}})
	}

	if p.peekTokenIs(token.FOR) {
		gens := p.parseComprehensionClauses()
		if !p.expectPeek(token.RBRACE) {
			return nil
		}
		return &ast.SetCompExpr{Token: tok, Element: firstKey, Generators: gens}
	}

	elems := []ast.Expression{firstKey}
	for p.peekTokenIs(token.COMMA) {
		p.nextToken()
		if p.peekTokenIs(token.RBRACE) {
			break
		}
		p.nextToken()
		elems = append(elems, p.parseExpression(LOWEST))
	}
	if !p.expectPeek(token.RBRACE) {
		return nil
	}
	return &ast.SetLiteral{Token: tok, Elements: elems}
}

func (p *Parser) parseDictLiteralTail(tok token.Token, pairs []ast.DictPair) ast.Expression {
	for p.peekTokenIs(token.COMMA) {
		p.nextToken()
		if p.peekTokenIs(token.RBRACE) {
			break
		}
		p.nextToken()
		if p.curTokenIs(token.DSTAR) {
			p.nextToken()
			pairs = append(pairs, ast.DictPair{Key: nil, Value: p.parseExpression(LOWEST)})
			continue
		}
		key := p.parseExpression(LOWEST)
		if !p.expectPeek(token.COLON) {
			return nil
		}
		p.nextToken()
		val := p.parseExpression(LOWEST)
		pairs = append(pairs, ast.DictPair{Key: key, Value: val})
	}
	if !p.expectPeek(token.RBRACE) {
		return nil
	}
	return &ast.DictLiteral{Token: tok, Pairs: pairs}
}

// parseComprehensionClauses parses one or more `for target in iter (if cond)*`
// clauses, with curToken landing on the final token of the last clause.
func (p *Parser) parseComprehensionClauses() []ast.Comprehension {
	var gens []ast.Comprehension
	for p.peekTokenIs(token.FOR) {
		p.nextToken() // on FOR
		p.nextToken()
		target := p.parseTargetExpression()
		if !p.expectPeek(token.IN) {
			return gens
		}
		p.nextToken()
		iter := p.parseExpression(OR_PREC)
		comp := ast.Comprehension{Target: target, Iter: iter}
		for p.peekTokenIs(token.IF) {
			p.nextToken()
			p.nextToken()
			comp.Ifs = append(comp.Ifs, p.parseExpression(OR_PREC))
		}
		gens = append(gens, comp)
	}
	return gens
}

// parseTargetExpression parses a for-loop/comprehension binding target,
// which may be a bare name, attribute, subscript, or a parenthesized or
// bare-comma tuple pattern.
func (p *Parser) parseTargetExpression() ast.Expression {
	// COMPARE is the precedence floor so a trailing `in` (the for-loop/
	// comprehension keyword, not the membership operator) is left for the
	// caller to consume rather than folded into the target as a CompareExpr.
	first := p.parseExpression(COMPARE)
	if !p.peekTokenIs(token.COMMA) {
		return first
	}
	elems := []ast.Expression{first}
	for p.peekTokenIs(token.COMMA) {
		p.nextToken()
		if p.peekTokenIs(token.IN) {
			break
		}
		p.nextToken()
		elems = append(elems, p.parseExpression(COMPARE))
	}
	return &ast.TupleLiteral{Elements: elems}
}

func (p *Parser) parseLambda() ast.Expression {
	tok := p.curToken
	params := &ast.Params{}
	p.parseParamList(params, token.COLON)
	if !p.curTokenIs(token.COLON) {
		p.errorf("expected ':' after lambda parameters")
		return nil
	}
	p.nextToken()
	body := p.parseExpression(LAMBDA)
	return &ast.LambdaExpr{Token: tok, Params: params, Body: body}
}

// parseParamList parses a comma-separated parameter list (shared by `def`
// and `lambda`), leaving curToken on terminator when done. Parameters
// after a `*args` collector, or after a bare `*` marker, become keyword-only.
func (p *Parser) parseParamList(params *ast.Params, terminator token.TokenType) {
	if p.peekTokenIs(terminator) {
		p.nextToken()
		return
	}
	p.nextToken()
	sawStarMarker := false
	for {
		switch {
		case p.curTokenIs(token.DSTAR):
			p.nextToken()
			params.KwArgs = &ast.Param{Name: p.curToken.Literal}
		case p.curTokenIs(token.STAR):
			if p.peekTokenIs(token.COMMA) || p.peekTokenIs(terminator) {
				sawStarMarker = true
			} else {
				p.nextToken()
				params.VarArgs = &ast.Param{Name: p.curToken.Literal}
			}
		default:
			param := ast.Param{Name: p.curToken.Literal}
			if p.peekTokenIs(token.ASSIGN) {
				p.nextToken()
				p.nextToken()
				param.Default = p.parseExpression(LOWEST)
			}
			if params.VarArgs != nil || sawStarMarker {
				params.KwOnly = append(params.KwOnly, param)
			} else {
				params.Positional = append(params.Positional, param)
			}
		}
		if !p.peekTokenIs(token.COMMA) {
			break
		}
		p.nextToken()
		p.nextToken()
	}
	p.expectPeek(terminator)
}

// parseExpressionList parses a comma-separated expression list terminated
// by `end`, leaving curToken on `end` when done.
func (p *Parser) parseExpressionList(end token.TokenType) []ast.Expression {
	var list []ast.Expression
	if p.peekTokenIs(end) {
		p.nextToken()
		return list
	}
	p.nextToken()
	list = append(list, p.parseExpression(LOWEST))
	for p.peekTokenIs(token.COMMA) {
		p.nextToken()
		p.nextToken()
		list = append(list, p.parseExpression(LOWEST))
	}
	if !p.expectPeek(end) {
		return nil
	}
	return list
}

// ---- Binary / postfix infix parsers -----------------------------------------------------------

func (p *Parser) parseBinaryExpression(left ast.Expression) ast.Expression {
	exp := &ast.BinaryExpr{Token: p.curToken, Operator: p.curToken.Literal, Left: left}
	precedence := p.curPrecedence()
	p.nextToken()
	exp.Right = p.parseExpression(precedence)
	return exp
}

// parsePowerExpression handles `**`, which is right-associative.
func (p *Parser) parsePowerExpression(left ast.Expression) ast.Expression {
	exp := &ast.BinaryExpr{Token: p.curToken, Operator: "**", Left: left}
	p.nextToken()
	exp.Right = p.parseExpression(POWER - 1)
	return exp
}

// parseBoolOpExpression flattens chained `and`/`or` into a single BoolOpExpr,
// matching how the evaluator wants to short-circuit over a flat value list.
func (p *Parser) parseBoolOpExpression(left ast.Expression) ast.Expression {
	op := p.curToken.Literal
	tok := p.curToken
	precedence := p.curPrecedence()
	p.nextToken()
	right := p.parseExpression(precedence)

	if existing, ok := left.(*ast.BoolOpExpr); ok && existing.Operator == op {
		existing.Values = append(existing.Values, right)
		return existing
	}
	return &ast.BoolOpExpr{Token: tok, Operator: op, Values: []ast.Expression{left, right}}
}

// parseCompareExpression builds a chained comparison a < b <= c, folding
// consecutive comparison operators into one CompareExpr node. It also
// recognizes the two-keyword operators `not in` and `is not`.
func (p *Parser) parseCompareExpression(left ast.Expression) ast.Expression {
	tok := p.curToken
	exp := &ast.CompareExpr{Token: tok, Left: left}

	for {
		op, ok := p.readCompareOperator()
		if !ok {
			break
		}
		p.nextToken()
		comparator := p.parseExpression(BOR_PREC)
		exp.Ops = append(exp.Ops, op)
		exp.Comparators = append(exp.Comparators, comparator)

		if !p.isComparePeek() {
			break
		}
		p.nextToken()
	}
	return exp
}

// readCompareOperator consumes curToken (already a compare-ish token) plus
// any trailing keyword needed to spell two-word operators, returning the
// canonical operator spelling.
func (p *Parser) readCompareOperator() (string, bool) {
	switch p.curToken.Type {
	case token.LT, token.GT, token.LT_EQ, token.GT_EQ, token.EQ, token.NOT_EQ:
		return p.curToken.Literal, true
	case token.IN:
		return "in", true
	case token.NOT:
		if p.peekTokenIs(token.IN) {
			p.nextToken()
			return "not in", true
		}
		return "", false
	case token.IS:
		if p.peekTokenIs(token.NOT) {
			p.nextToken()
			return "is not", true
		}
		return "is", true
	}
	return "", false
}

func (p *Parser) isComparePeek() bool {
	switch p.peekToken.Type {
	case token.LT, token.GT, token.LT_EQ, token.GT_EQ, token.EQ, token.NOT_EQ, token.IN, token.IS:
		return true
	case token.NOT:
		return true // tentative; readCompareOperator rejects bare `not`
	}
	return false
}

func (p *Parser) parseTernaryExpression(then ast.Expression) ast.Expression {
	exp := &ast.IfExpr{Token: p.curToken, Then: then}
	p.nextToken()
	exp.Condition = p.parseExpression(LOWEST)
	if !p.expectPeek(token.ELSE) {
		return nil
	}
	p.nextToken()
	exp.Else = p.parseExpression(LOWEST)
	return exp
}

func (p *Parser) parseAttributeExpression(left ast.Expression) ast.Expression {
	exp := &ast.AttributeExpr{Token: p.curToken, Value: left}
	if !p.expectPeek(token.IDENT) {
		return nil
	}
	exp.Attr = p.curToken.Literal
	return exp
}

// parseSubscriptExpression handles both `a[i]` and `a[lo:hi:step]`.
func (p *Parser) parseSubscriptExpression(left ast.Expression) ast.Expression {
	tok := p.curToken
	p.nextToken()

	if p.curTokenIs(token.COLON) {
		return p.finishSlice(tok, left, nil)
	}
	first := p.parseExpression(LOWEST)
	if p.peekTokenIs(token.COLON) {
		p.nextToken()
		return p.finishSlice(tok, left, first)
	}
	if !p.expectPeek(token.RBRACKET) {
		return nil
	}
	return &ast.SubscriptExpr{Token: tok, Value: left, Index: first}
}

func (p *Parser) finishSlice(tok token.Token, value ast.Expression, lower ast.Expression) ast.Expression {
	slice := &ast.SliceExpr{Token: tok, Lower: lower}
	if !p.peekTokenIs(token.COLON) && !p.peekTokenIs(token.RBRACKET) {
		p.nextToken()
		slice.Upper = p.parseExpression(LOWEST)
	}
	if p.peekTokenIs(token.COLON) {
		p.nextToken()
		if !p.peekTokenIs(token.RBRACKET) {
			p.nextToken()
			slice.Step = p.parseExpression(LOWEST)
		}
	}
	if !p.expectPeek(token.RBRACKET) {
		return nil
	}
	return &ast.SubscriptExpr{Token: tok, Value: value, Index: slice}
}

// parseCallExpression parses the argument list of `fn(...)`, separating
// positional arguments (which may include `*spread`), `name=value` keyword
// arguments, and a single `**mapping` spread.
func (p *Parser) parseCallExpression(fn ast.Expression) ast.Expression {
	exp := &ast.CallExpr{Token: p.curToken, Func: fn}
	if p.peekTokenIs(token.RPAREN) {
		p.nextToken()
		return exp
	}
	p.nextToken()
	for {
		switch {
		case p.curTokenIs(token.DSTAR):
			p.nextToken()
			exp.DoubleStar = p.parseExpression(LOWEST)
		case p.curTokenIs(token.STAR):
			p.nextToken()
			exp.Args = append(exp.Args, &ast.Starred{Value: p.parseExpression(UNARY)})
		case p.curTokenIs(token.IDENT) && p.peekTokenIs(token.ASSIGN):
			name := p.curToken.Literal
			p.nextToken() // on '='
			p.nextToken()
			exp.Keywords = append(exp.Keywords, ast.Keyword{Name: name, Value: p.parseExpression(LOWEST)})
		default:
			exp.Args = append(exp.Args, p.parseExpression(LOWEST))
		}
		if !p.peekTokenIs(token.COMMA) {
			break
		}
		p.nextToken()
		if p.peekTokenIs(token.RPAREN) {
			break
		}
		p.nextToken()
	}
	if !p.expectPeek(token.RPAREN) {
		return nil
	}
	return exp
}
