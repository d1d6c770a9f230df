// ==============================================================================================
// FILE: parser/statements.go
// PACKAGE: parser
// PURPOSE: Statement-level grammar — simple statements, compound (block)
//          statements, assignment/augmented-assignment, and indentation-
//          delimited block parsing.
// ==============================================================================================

package parser

import (
	"github.com/glade-lang/glade/ast"
	"github.com/glade-lang/glade/token"
)

// parseStatement dispatches on the current token to the right statement
// grammar. Compound statements return with curToken positioned on whatever
// token follows their construct; simple statements advance exactly one
// token past their own content before returning, so the caller never needs
// to manually skip past a finished statement.
func (p *Parser) parseStatement() ast.Statement {
	switch p.curToken.Type {
	case token.IF:
		return p.parseIfStatement()
	case token.WHILE:
		return p.parseWhileStatement()
	case token.FOR:
		return p.parseForStatement()
	case token.DEF:
		return p.parseFunctionDef()
	case token.CLASS:
		return p.parseClassDef()
	case token.TRY:
		return p.parseTryStatement()
	case token.WITH:
		return p.parseWithStatement()
	case token.AT:
		return p.parseDecorated()
	case token.RETURN:
		return p.parseReturnStatement()
	case token.BREAK:
		stmt := &ast.BreakStatement{Token: p.curToken}
		p.nextToken()
		return stmt
	case token.CONTINUE:
		stmt := &ast.ContinueStatement{Token: p.curToken}
		p.nextToken()
		return stmt
	case token.PASS:
		stmt := &ast.PassStatement{Token: p.curToken}
		p.nextToken()
		return stmt
	case token.DEL:
		return p.parseDelStatement()
	case token.GLOBAL:
		return p.parseGlobalStatement()
	case token.NONLOCAL:
		return p.parseNonlocalStatement()
	case token.RAISE:
		return p.parseRaiseStatement()
	case token.IMPORT:
		return p.parseImportStatement()
	case token.FROM:
		return p.parseFromImportStatement()
	default:
		return p.parseExpressionOrAssignStatement()
	}
}

// parseBlock parses an indented block: `: NEWLINE INDENT stmt* DEDENT`,
// with curToken starting on the `:` token. It consumes the closing DEDENT,
// so it returns with curToken on whatever token follows the block.
func (p *Parser) parseBlock() *ast.BlockStatement {
	block := &ast.BlockStatement{Token: p.curToken}
	if !p.expectPeek(token.NEWLINE) {
		return block
	}
	if !p.expectPeek(token.INDENT) {
		return block
	}
	p.nextToken()

	for !p.curTokenIs(token.DEDENT) && !p.curTokenIs(token.EOF) {
		p.skipNewlines()
		if p.curTokenIs(token.DEDENT) || p.curTokenIs(token.EOF) {
			break
		}
		stmt := p.parseStatement()
		if stmt != nil {
			block.Statements = append(block.Statements, stmt)
		}
	}
	if p.curTokenIs(token.DEDENT) {
		p.nextToken()
	}
	return block
}

// ---- Compound statements -----------------------------------------------------------------------

func (p *Parser) parseIfStatement() ast.Statement {
	stmt := &ast.IfStatement{Token: p.curToken}
	p.nextToken()
	stmt.Condition = p.parseExpression(LOWEST)
	if !p.expectPeek(token.COLON) {
		return stmt
	}
	stmt.Body = p.parseBlock()

	for p.curTokenIs(token.ELIF) {
		clause := ast.ElifClause{}
		p.nextToken()
		clause.Condition = p.parseExpression(LOWEST)
		if !p.expectPeek(token.COLON) {
			return stmt
		}
		clause.Body = p.parseBlock()
		stmt.Elifs = append(stmt.Elifs, clause)
	}
	if p.curTokenIs(token.ELSE) {
		if !p.expectPeek(token.COLON) {
			return stmt
		}
		stmt.Else = p.parseBlock()
	}
	return stmt
}

func (p *Parser) parseWhileStatement() ast.Statement {
	stmt := &ast.WhileStatement{Token: p.curToken}
	p.nextToken()
	stmt.Condition = p.parseExpression(LOWEST)
	if !p.expectPeek(token.COLON) {
		return stmt
	}
	stmt.Body = p.parseBlock()
	if p.curTokenIs(token.ELSE) {
		if !p.expectPeek(token.COLON) {
			return stmt
		}
		stmt.Else = p.parseBlock()
	}
	return stmt
}

func (p *Parser) parseForStatement() ast.Statement {
	stmt := &ast.ForStatement{Token: p.curToken}
	p.nextToken()
	stmt.Target = p.parseTargetExpression()
	if !p.expectPeek(token.IN) {
		return stmt
	}
	p.nextToken()
	stmt.Iterable = p.parseExpression(LOWEST)
	if !p.expectPeek(token.COLON) {
		return stmt
	}
	stmt.Body = p.parseBlock()
	if p.curTokenIs(token.ELSE) {
		if !p.expectPeek(token.COLON) {
			return stmt
		}
		stmt.Else = p.parseBlock()
	}
	return stmt
}

func (p *Parser) parseTryStatement() ast.Statement {
	stmt := &ast.TryStatement{Token: p.curToken}
	if !p.expectPeek(token.COLON) {
		return stmt
	}
	stmt.Body = p.parseBlock()

	for p.curTokenIs(token.EXCEPT) {
		clause := ast.ExceptClause{}
		if p.peekTokenIs(token.COLON) {
			p.nextToken()
		} else {
			p.nextToken()
			clause.ExcType = p.parseExpression(LOWEST)
			if p.peekTokenIs(token.AS) {
				p.nextToken()
				if !p.expectPeek(token.IDENT) {
					return stmt
				}
				clause.Name = p.curToken.Literal
			}
			if !p.expectPeek(token.COLON) {
				return stmt
			}
		}
		clause.Body = p.parseBlock()
		stmt.Handlers = append(stmt.Handlers, clause)
	}
	if p.curTokenIs(token.ELSE) {
		if !p.expectPeek(token.COLON) {
			return stmt
		}
		stmt.Else = p.parseBlock()
	}
	if p.curTokenIs(token.FINALLY) {
		if !p.expectPeek(token.COLON) {
			return stmt
		}
		stmt.Finally = p.parseBlock()
	}
	return stmt
}

func (p *Parser) parseWithStatement() ast.Statement {
	stmt := &ast.WithStatement{Token: p.curToken}
	p.nextToken()
	for {
		item := ast.WithItem{Context: p.parseExpression(LOWEST)}
		if p.peekTokenIs(token.AS) {
			p.nextToken()
			p.nextToken()
			item.Target = p.parseTargetExpression()
		}
		stmt.Items = append(stmt.Items, item)
		if !p.peekTokenIs(token.COMMA) {
			break
		}
		p.nextToken()
		p.nextToken()
	}
	if !p.expectPeek(token.COLON) {
		return stmt
	}
	stmt.Body = p.parseBlock()
	return stmt
}

func (p *Parser) parseFunctionDef() ast.Statement {
	stmt := &ast.FunctionDef{Token: p.curToken}
	if !p.expectPeek(token.IDENT) {
		return stmt
	}
	stmt.Name = p.curToken.Literal
	if !p.expectPeek(token.LPAREN) {
		return stmt
	}
	params := &ast.Params{}
	p.parseParamList(params, token.RPAREN)
	stmt.Params = params

	if p.peekTokenIs(token.ARROW) {
		p.nextToken()
		p.nextToken()
		p.parseExpression(LOWEST) // return-type annotation: parsed, not retained
	}
	if !p.expectPeek(token.COLON) {
		return stmt
	}
	stmt.Body = p.parseBlock()
	return stmt
}

func (p *Parser) parseClassDef() ast.Statement {
	stmt := &ast.ClassDef{Token: p.curToken}
	if !p.expectPeek(token.IDENT) {
		return stmt
	}
	stmt.Name = p.curToken.Literal
	if p.peekTokenIs(token.LPAREN) {
		p.nextToken()
		stmt.Bases = p.parseExpressionList(token.RPAREN)
	}
	if !p.expectPeek(token.COLON) {
		return stmt
	}
	stmt.Body = p.parseBlock()
	return stmt
}

// parseDecorated consumes one or more `@expr` lines and attaches them to the
// following `def` or `class`.
func (p *Parser) parseDecorated() ast.Statement {
	var decorators []ast.Expression
	for p.curTokenIs(token.AT) {
		p.nextToken()
		decorators = append(decorators, p.parseExpression(LOWEST))
		p.nextToken()
		p.skipNewlines()
	}
	switch p.curToken.Type {
	case token.DEF:
		fn := p.parseFunctionDef()
		if f, ok := fn.(*ast.FunctionDef); ok {
			f.Decorators = decorators
		}
		return fn
	case token.CLASS:
		cls := p.parseClassDef()
		if c, ok := cls.(*ast.ClassDef); ok {
			c.Decorators = decorators
		}
		return cls
	}
	p.errorf("expected function or class definition after decorator")
	return nil
}

// ---- Simple statements -------------------------------------------------------------------------

func (p *Parser) atLineEnd() bool {
	return p.peekTokenIs(token.NEWLINE) || p.peekTokenIs(token.SEMI) || p.peekTokenIs(token.EOF)
}

func (p *Parser) parseReturnStatement() ast.Statement {
	stmt := &ast.ReturnStatement{Token: p.curToken}
	if p.atLineEnd() {
		p.nextToken()
		return stmt
	}
	p.nextToken()
	stmt.ReturnValue = p.parseTestListStar(LOWEST)
	p.nextToken()
	return stmt
}

func (p *Parser) parseDelStatement() ast.Statement {
	stmt := &ast.DelStatement{Token: p.curToken}
	p.nextToken()
	stmt.Targets = append(stmt.Targets, p.parseExpression(LOWEST))
	for p.peekTokenIs(token.COMMA) {
		p.nextToken()
		p.nextToken()
		stmt.Targets = append(stmt.Targets, p.parseExpression(LOWEST))
	}
	p.nextToken()
	return stmt
}

func (p *Parser) parseGlobalStatement() ast.Statement {
	stmt := &ast.GlobalStatement{Token: p.curToken}
	if !p.expectPeek(token.IDENT) {
		p.nextToken()
		return stmt
	}
	stmt.Names = append(stmt.Names, p.curToken.Literal)
	for p.peekTokenIs(token.COMMA) {
		p.nextToken()
		if !p.expectPeek(token.IDENT) {
			break
		}
		stmt.Names = append(stmt.Names, p.curToken.Literal)
	}
	p.nextToken()
	return stmt
}

func (p *Parser) parseNonlocalStatement() ast.Statement {
	stmt := &ast.NonlocalStatement{Token: p.curToken}
	if !p.expectPeek(token.IDENT) {
		p.nextToken()
		return stmt
	}
	stmt.Names = append(stmt.Names, p.curToken.Literal)
	for p.peekTokenIs(token.COMMA) {
		p.nextToken()
		if !p.expectPeek(token.IDENT) {
			break
		}
		stmt.Names = append(stmt.Names, p.curToken.Literal)
	}
	p.nextToken()
	return stmt
}

func (p *Parser) parseRaiseStatement() ast.Statement {
	stmt := &ast.RaiseStatement{Token: p.curToken}
	if p.atLineEnd() {
		p.nextToken()
		return stmt
	}
	p.nextToken()
	stmt.Exception = p.parseExpression(LOWEST)
	p.nextToken()
	return stmt
}

func (p *Parser) parseImportStatement() ast.Statement {
	stmt := &ast.ImportStatement{Token: p.curToken}
	if !p.expectPeek(token.IDENT) {
		p.nextToken()
		return stmt
	}
	stmt.Names = append(stmt.Names, p.curToken.Literal)
	for p.peekTokenIs(token.COMMA) {
		p.nextToken()
		if !p.expectPeek(token.IDENT) {
			break
		}
		stmt.Names = append(stmt.Names, p.curToken.Literal)
	}
	p.nextToken()
	return stmt
}

func (p *Parser) parseFromImportStatement() ast.Statement {
	stmt := &ast.FromImportStatement{Token: p.curToken}
	if !p.expectPeek(token.IDENT) {
		p.nextToken()
		return stmt
	}
	stmt.Module = p.curToken.Literal
	if !p.expectPeek(token.IMPORT) {
		p.nextToken()
		return stmt
	}
	if p.peekTokenIs(token.STAR) {
		p.nextToken()
		stmt.Names = append(stmt.Names, "*")
	} else if p.expectPeek(token.IDENT) {
		stmt.Names = append(stmt.Names, p.curToken.Literal)
		for p.peekTokenIs(token.COMMA) {
			p.nextToken()
			if !p.expectPeek(token.IDENT) {
				break
			}
			stmt.Names = append(stmt.Names, p.curToken.Literal)
		}
	}
	p.nextToken()
	return stmt
}

// parseExpressionOrAssignStatement covers plain expression statements,
// `target = value` (including chained and tuple-unpacking targets), and
// augmented assignment `target += value`.
func (p *Parser) parseExpressionOrAssignStatement() ast.Statement {
	tok := p.curToken
	first := p.parseTestListStar(LOWEST)

	if p.peekTokenIs(token.ASSIGN) {
		chain := []ast.Expression{first}
		for p.peekTokenIs(token.ASSIGN) {
			p.nextToken()
			p.nextToken()
			chain = append(chain, p.parseTestListStar(LOWEST))
		}
		value := chain[len(chain)-1]
		targets := chain[:len(chain)-1]
		p.nextToken()
		return &ast.AssignStatement{Token: tok, Targets: targets, Value: value}
	}

	if op, ok := augAssignOperator(p.peekToken.Type); ok {
		p.nextToken()
		p.nextToken()
		value := p.parseTestListStar(LOWEST)
		p.nextToken()
		return &ast.AugAssignStatement{Token: tok, Target: first, Operator: op, Value: value}
	}

	p.nextToken()
	return &ast.ExpressionStatement{Token: tok, Expression: first}
}

func augAssignOperator(t token.TokenType) (string, bool) {
	switch t {
	case token.PLUS_EQ:
		return "+", true
	case token.MINUS_EQ:
		return "-", true
	case token.STAR_EQ:
		return "*", true
	case token.SLASH_EQ:
		return "/", true
	case token.DSLASH_EQ:
		return "//", true
	case token.PERCENT_EQ:
		return "%", true
	case token.DSTAR_EQ:
		return "**", true
	case token.AMP_EQ:
		return "&", true
	case token.PIPE_EQ:
		return "|", true
	case token.CARET_EQ:
		return "^", true
	case token.SHL_EQ:
		return "<<", true
	case token.SHR_EQ:
		return ">>", true
	}
	return "", false
}

// parseTestListStar parses one expression, folding a bare comma-separated
// sequence into a TupleLiteral — used for both assignment targets
// (`a, b = ...`, `a, *rest = ...`) and bare tuple expression statements.
func (p *Parser) parseTestListStar(precedence int) ast.Expression {
	first := p.parseExpression(precedence)
	if !p.peekTokenIs(token.COMMA) {
		return first
	}
	elems := []ast.Expression{first}
	for p.peekTokenIs(token.COMMA) {
		p.nextToken()
		if p.isStatementBoundary(p.peekToken.Type) {
			break
		}
		p.nextToken()
		elems = append(elems, p.parseExpression(precedence))
	}
	return &ast.TupleLiteral{Elements: elems}
}

func (p *Parser) isStatementBoundary(t token.TokenType) bool {
	switch t {
	case token.NEWLINE, token.EOF, token.SEMI, token.ASSIGN, token.COLON:
		return true
	}
	return false
}
