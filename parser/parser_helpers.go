/*
File    : notlox/parser/parser_helpers.go
Author  : CesGalaxy
Contact : github.com/CesGalaxy
*/
package parser

import (
	"github.com/CesGalaxy/notlox/lexer"
)

// check reports whether the current token has the given type, without
// consuming it.
func (par *Parser) check(tokenType lexer.TokenType) bool {
	return par.CurrToken.Type == tokenType
}

// match consumes the current token and returns true when it has one of
// the given types; otherwise it leaves the stream untouched.
func (par *Parser) match(tokenTypes ...lexer.TokenType) bool {
	for _, tokenType := range tokenTypes {
		if par.CurrToken.Type == tokenType {
			par.advance()
			return true
		}
	}
	return false
}

// consume expects the current token to have the given type and consumes
// it, returning the consumed token. On a mismatch it reports the message
// at the offending token and panics into recovery mode.
func (par *Parser) consume(tokenType lexer.TokenType, message string) lexer.Token {
	if par.CurrToken.Type == tokenType {
		token := par.CurrToken
		par.advance()
		return token
	}
	panic(par.errorAtToken(par.CurrToken, message))
}

// errorAtToken reports a syntax diagnostic located at the given token and
// returns the panic value for recovery. Callers that want panic-mode
// recovery panic with the returned value; callers that can keep parsing
// (like the too-many-arguments check) just drop it.
func (par *Parser) errorAtToken(token lexer.Token, message string) parseError {
	where := " at '" + token.Lexeme + "'"
	if token.Type == lexer.EOF_TYPE {
		where = " at end"
	}
	par.Diag.ErrorAt(token.Line, where, message)
	return parseError{}
}
