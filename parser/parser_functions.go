/*
File    : notlox/parser/parser_functions.go
Author  : CesGalaxy
Contact : github.com/CesGalaxy
*/
package parser

import "github.com/CesGalaxy/notlox/lexer"

// parseFunctionDeclaration parses a function or method declaration: the
// name, the parameter list (at most 255 names), and a single statement as
// the body, which in practice is almost always a block. The kind string
// ("function" or "method") only flavors the error messages.
func (par *Parser) parseFunctionDeclaration(kind string) *FunctionStatementNode {
	if par.check(lexer.FUN_KEY) {
		par.advance() // consume 'fun'; absent for methods
	}
	name := par.consume(lexer.IDENTIFIER_ID, "Expect "+kind+" name.")
	par.consume(lexer.LEFT_PAREN, "Expect '(' after "+kind+" name.")

	params := make([]*IdentifierExpressionNode, 0)
	if !par.check(lexer.RIGHT_PAREN) {
		for {
			if len(params) >= 255 {
				par.errorAtToken(par.CurrToken, "Can't have more than 255 parameters.")
			}
			param := par.consume(lexer.IDENTIFIER_ID, "Expect parameter name.")
			params = append(params, &IdentifierExpressionNode{Token: param, Name: param.Lexeme})
			if !par.match(lexer.COMMA_DEL) {
				break
			}
		}
	}
	par.consume(lexer.RIGHT_PAREN, "Expect ')' after parameters.")

	body := par.parseStatement()
	return &FunctionStatementNode{Name: name, Params: params, Body: body}
}
