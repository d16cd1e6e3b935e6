/*
File    : notlox/parser/parser_statements.go
Author  : CesGalaxy
Contact : github.com/CesGalaxy
*/
package parser

import (
	"github.com/CesGalaxy/notlox/lexer"
	"github.com/CesGalaxy/notlox/objects"
)

// parseStatement parses a single non-declaration statement. Which kind is
// decided by the current token; anything unrecognized falls through to an
// expression statement.
func (par *Parser) parseStatement() StatementNode {
	switch par.CurrToken.Type {
	case lexer.FOR_KEY:
		return par.parseForStatement()
	case lexer.IF_KEY:
		return par.parseIfStatement()
	case lexer.PRINT_KEY:
		return par.parsePrintStatement()
	case lexer.RETURN_KEY:
		return par.parseReturnStatement()
	case lexer.WHILE_KEY:
		return par.parseWhileStatement()
	case lexer.LEFT_BRACE:
		return par.parseBlockStatement()
	default:
		return par.parseExpressionStatement()
	}
}

// parseVarDeclaration parses "var name;" or "var name = initializer;".
func (par *Parser) parseVarDeclaration() StatementNode {
	par.advance() // consume 'var'
	name := par.consume(lexer.IDENTIFIER_ID, "Expect variable name.")

	var initializer ExpressionNode
	if par.match(lexer.ASSIGN_OP) {
		initializer = par.parseExpression(MINIMUM_PRIORITY)
	}
	par.consume(lexer.SEMICOLON_DEL, "Expect ';' after variable declaration.")
	return &DeclarativeStatementNode{Name: name, Initializer: initializer}
}

// parsePrintStatement parses "print expr;".
func (par *Parser) parsePrintStatement() StatementNode {
	keyword := par.CurrToken
	par.advance() // consume 'print'
	expr := par.parseExpression(MINIMUM_PRIORITY)
	par.consume(lexer.SEMICOLON_DEL, "Expect ';' after value.")
	return &PrintStatementNode{Keyword: keyword, Expr: expr}
}

// parseExpressionStatement parses an expression evaluated for effect,
// terminated by a semicolon.
func (par *Parser) parseExpressionStatement() StatementNode {
	expr := par.parseExpression(MINIMUM_PRIORITY)
	par.consume(lexer.SEMICOLON_DEL, "Expect ';' after expression.")
	return &ExpressionStatementNode{Expr: expr}
}

// parseBlockStatement parses "{ declaration* }".
func (par *Parser) parseBlockStatement() StatementNode {
	par.advance() // consume '{'

	statements := make([]StatementNode, 0)
	for !par.check(lexer.RIGHT_BRACE) && !par.check(lexer.EOF_TYPE) {
		stmt := par.parseDeclaration()
		if stmt != nil {
			statements = append(statements, stmt)
		}
	}
	par.consume(lexer.RIGHT_BRACE, "Expect '}' after block.")
	return &BlockStatementNode{Statements: statements}
}

// parseIfStatement parses "if cond stmt" with an optional "else stmt".
// The condition is a single primary expression followed directly by the
// body; parenthesized conditions work because '(' starts a grouping
// primary.
func (par *Parser) parseIfStatement() StatementNode {
	par.advance() // consume 'if'
	cond := par.parsePrimaryExpression()
	then := par.parseStatement()

	var elseBranch StatementNode
	if par.match(lexer.ELSE_KEY) {
		elseBranch = par.parseStatement()
	}
	return &IfStatementNode{Cond: cond, Then: then, Else: elseBranch}
}

// parseWhileStatement parses "while cond stmt", with the same
// primary-expression condition rule as if.
func (par *Parser) parseWhileStatement() StatementNode {
	par.advance() // consume 'while'
	cond := par.parsePrimaryExpression()
	body := par.parseStatement()
	return &WhileLoopStatementNode{Cond: cond, Body: body}
}

// parseForStatement parses the C-style for loop and desugars it at parse
// time: the loop becomes a block holding the initializer followed by a
// while whose body runs the original body and then the increment. A
// missing condition becomes the literal true.
//
//	for (var i = 0; i < 3; i = i + 1) print i;
//
// desugars into
//
//	{ var i = 0; while (i < 3) { print i; i = i + 1; } }
func (par *Parser) parseForStatement() StatementNode {
	par.advance() // consume 'for'
	par.consume(lexer.LEFT_PAREN, "Expect '(' after 'for'.")

	// Initializer clause: empty, a var declaration, or an expression
	var initializer StatementNode
	switch {
	case par.match(lexer.SEMICOLON_DEL):
		initializer = nil
	case par.check(lexer.VAR_KEY):
		initializer = par.parseVarDeclaration()
	default:
		initializer = par.parseExpressionStatement()
	}

	// Condition clause
	var cond ExpressionNode
	if !par.check(lexer.SEMICOLON_DEL) {
		cond = par.parseExpression(MINIMUM_PRIORITY)
	}
	par.consume(lexer.SEMICOLON_DEL, "Expect ';' after loop condition.")

	// Increment clause
	var increment ExpressionNode
	if !par.check(lexer.RIGHT_PAREN) {
		increment = par.parseExpression(MINIMUM_PRIORITY)
	}
	par.consume(lexer.RIGHT_PAREN, "Expect ')' after for clauses.")

	body := par.parseStatement()

	// Desugar, inside out
	if increment != nil {
		body = &BlockStatementNode{Statements: []StatementNode{
			body,
			&ExpressionStatementNode{Expr: increment},
		}}
	}
	if cond == nil {
		cond = &LiteralExpressionNode{Value: &objects.Boolean{Value: true}}
	}
	var loop StatementNode = &WhileLoopStatementNode{Cond: cond, Body: body}
	if initializer != nil {
		loop = &BlockStatementNode{Statements: []StatementNode{initializer, loop}}
	}
	return loop
}

// parseReturnStatement parses "return;" or "return expr;". Whether a
// return is legal here (not at top level) is the resolver's check.
func (par *Parser) parseReturnStatement() StatementNode {
	keyword := par.CurrToken
	par.advance() // consume 'return'

	var value ExpressionNode
	if !par.check(lexer.SEMICOLON_DEL) {
		value = par.parseExpression(MINIMUM_PRIORITY)
	}
	par.consume(lexer.SEMICOLON_DEL, "Expect ';' after return value.")
	return &ReturnStatementNode{Keyword: keyword, Value: value}
}
