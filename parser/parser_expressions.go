/*
File    : notlox/parser/parser_expressions.go
Author  : CesGalaxy
Contact : github.com/CesGalaxy
*/
package parser

import (
	"github.com/CesGalaxy/notlox/lexer"
	"github.com/CesGalaxy/notlox/objects"
)

// parseExpression is the heart of the Pratt algorithm. It dispatches the
// current token to its prefix parser, then extends the result to the
// right for as long as the next operator binds tighter than the calling
// context.
//
// Parameters:
//   - precedence: The binding power of the context this expression is
//     parsed in; MINIMUM_PRIORITY parses a full expression
//
// Returns:
//   - ExpressionNode: The parsed expression
func (par *Parser) parseExpression(precedence int) ExpressionNode {
	unary, ok := par.UnaryFuncs[par.CurrToken.Type]
	if !ok {
		panic(par.errorAtToken(par.CurrToken, "Expect expression."))
	}
	left := unary()

	for precedence < getPrecedence(&par.CurrToken) {
		binary, ok := par.BinaryFuncs[par.CurrToken.Type]
		if !ok {
			break
		}
		left = binary(left)
	}
	return left
}

// parsePrimaryExpression parses exactly one primary expression: a
// literal, an identifier, 'this', or a parenthesized grouping. No prefix
// operators and no postfix extension. This restricted entry point is what
// parses if/while conditions: the condition is a single primary, and
// anything richer must be written inside parentheses (which are a
// grouping primary containing a full expression).
func (par *Parser) parsePrimaryExpression() ExpressionNode {
	switch par.CurrToken.Type {
	case lexer.NUMBER_LIT:
		return par.parseNumberLiteral()
	case lexer.STRING_LIT:
		return par.parseStringLiteral()
	case lexer.TRUE_KEY, lexer.FALSE_KEY:
		return par.parseBooleanLiteral()
	case lexer.NIL_KEY:
		return par.parseNilLiteral()
	case lexer.IDENTIFIER_ID:
		return par.parseIdentifierExpression()
	case lexer.THIS_KEY:
		return par.parseThisExpression()
	case lexer.LEFT_PAREN:
		return par.parseParenthesizedExpression()
	default:
		panic(par.errorAtToken(par.CurrToken, "Expect expression."))
	}
}

// parseNumberLiteral parses a number literal into a LiteralExpressionNode
// carrying its ready-made Number value.
func (par *Parser) parseNumberLiteral() ExpressionNode {
	token := par.CurrToken
	par.advance()
	value, _ := token.Literal.(float64)
	return &LiteralExpressionNode{Token: token, Value: &objects.Number{Value: value}}
}

// parseStringLiteral parses a string literal.
func (par *Parser) parseStringLiteral() ExpressionNode {
	token := par.CurrToken
	par.advance()
	value, _ := token.Literal.(string)
	return &LiteralExpressionNode{Token: token, Value: &objects.String{Value: value}}
}

// parseBooleanLiteral parses true or false.
func (par *Parser) parseBooleanLiteral() ExpressionNode {
	token := par.CurrToken
	par.advance()
	return &LiteralExpressionNode{Token: token, Value: &objects.Boolean{Value: token.Type == lexer.TRUE_KEY}}
}

// parseNilLiteral parses the nil literal.
func (par *Parser) parseNilLiteral() ExpressionNode {
	token := par.CurrToken
	par.advance()
	return &LiteralExpressionNode{Token: token, Value: &objects.Nil{}}
}

// parseIdentifierExpression parses a variable reference.
func (par *Parser) parseIdentifierExpression() ExpressionNode {
	token := par.CurrToken
	par.advance()
	return &IdentifierExpressionNode{Token: token, Name: token.Lexeme}
}

// parseThisExpression parses the 'this' keyword inside method bodies.
// Whether 'this' is legal here is the resolver's concern, not the
// parser's.
func (par *Parser) parseThisExpression() ExpressionNode {
	token := par.CurrToken
	par.advance()
	return &ThisExpressionNode{Keyword: token}
}

// parseParenthesizedExpression parses a grouping: a full expression
// wrapped in parentheses.
func (par *Parser) parseParenthesizedExpression() ExpressionNode {
	par.advance() // consume '('
	expr := par.parseExpression(MINIMUM_PRIORITY)
	par.consume(lexer.RIGHT_PAREN, "Expect ')' after expression.")
	return &ParenthesizedExpressionNode{Expr: expr}
}

// parseUnaryExpression parses a prefix operator (! or -) and its operand.
// The operand is parsed at prefix precedence, so unary operators nest
// (!!x) and bind tighter than any binary operator while still allowing
// postfix calls and property access on the operand.
func (par *Parser) parseUnaryExpression() ExpressionNode {
	operation := par.CurrToken
	par.advance()
	right := par.parseExpression(PREFIX_PRIORITY)
	return &UnaryExpressionNode{Operation: operation, Right: right}
}

// parseBinaryExpression parses the right operand of an arithmetic,
// comparison or equality operator. The right side is parsed at the
// operator's own precedence, which makes these operators
// left-associative: "a - b - c" is "(a - b) - c".
func (par *Parser) parseBinaryExpression(left ExpressionNode) ExpressionNode {
	operation := par.CurrToken
	par.advance()
	right := par.parseExpression(getPrecedence(&operation))
	return &BinaryExpressionNode{Operation: operation, Left: left, Right: right}
}

// parseLogicalExpression parses the right operand of 'and' / 'or'. Same
// associativity rules as parseBinaryExpression, but it builds the
// short-circuiting node variant.
func (par *Parser) parseLogicalExpression(left ExpressionNode) ExpressionNode {
	operation := par.CurrToken
	par.advance()
	right := par.parseExpression(getPrecedence(&operation))
	return &LogicalExpressionNode{Operation: operation, Left: left, Right: right}
}

// parseAssignmentExpression handles '='. The left side was parsed as an
// ordinary expression; it is reinterpreted here into an assignment
// target. A variable reference becomes an assignment, a property read
// becomes a property write, and anything else is reported as an invalid
// target while parsing continues with the expression unchanged.
//
// The value is parsed one level below assignment precedence, making
// assignment right-associative: "a = b = c" assigns c to b, then to a.
func (par *Parser) parseAssignmentExpression(left ExpressionNode) ExpressionNode {
	equals := par.CurrToken
	par.advance()
	value := par.parseExpression(ASSIGN_PRIORITY - 1)

	switch target := left.(type) {
	case *IdentifierExpressionNode:
		return &AssignExpressionNode{Name: target.Token, Value: value}
	case *GetExpressionNode:
		return &SetExpressionNode{Object: target.Object, Name: target.Name, Value: value}
	default:
		par.errorAtToken(equals, "Invalid assignment target.")
		return left
	}
}

// parseCallExpression parses an invocation: the '(' following a callee,
// a comma-separated argument list, and the closing ')'. The closing
// parenthesis token is kept on the node so runtime errors at the call
// site can name a line.
func (par *Parser) parseCallExpression(callee ExpressionNode) ExpressionNode {
	par.advance() // consume '('

	arguments := make([]ExpressionNode, 0)
	if !par.check(lexer.RIGHT_PAREN) {
		for {
			if len(arguments) >= 255 {
				par.errorAtToken(par.CurrToken, "Can't have more than 255 arguments.")
			}
			arguments = append(arguments, par.parseExpression(MINIMUM_PRIORITY))
			if !par.match(lexer.COMMA_DEL) {
				break
			}
		}
	}
	paren := par.consume(lexer.RIGHT_PAREN, "Expect ')' after arguments.")

	return &CallExpressionNode{Callee: callee, Paren: paren, Arguments: arguments}
}

// parseGetExpression parses a property access: '.' followed by the
// property name. Whether this read turns into a write is decided later by
// assignment reinterpretation.
func (par *Parser) parseGetExpression(object ExpressionNode) ExpressionNode {
	par.advance() // consume '.'
	name := par.consume(lexer.IDENTIFIER_ID, "Expect property name after '.'.")
	return &GetExpressionNode{Object: object, Name: name}
}
