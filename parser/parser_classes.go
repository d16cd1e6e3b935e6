/*
File    : notlox/parser/parser_classes.go
Author  : CesGalaxy
Contact : github.com/CesGalaxy
*/
package parser

import "github.com/CesGalaxy/notlox/lexer"

// parseClassDeclaration parses "class Name { method* }". Each method uses
// the function-declaration grammar without the 'fun' keyword. There is no
// superclass clause.
func (par *Parser) parseClassDeclaration() StatementNode {
	par.advance() // consume 'class'
	name := par.consume(lexer.IDENTIFIER_ID, "Expect class name.")
	par.consume(lexer.LEFT_BRACE, "Expect '{' before class body.")

	methods := make([]*FunctionStatementNode, 0)
	for !par.check(lexer.RIGHT_BRACE) && !par.check(lexer.EOF_TYPE) {
		methods = append(methods, par.parseFunctionDeclaration("method"))
	}
	par.consume(lexer.RIGHT_BRACE, "Expect '}' after class body.")

	return &ClassStatementNode{Name: name, Methods: methods}
}
