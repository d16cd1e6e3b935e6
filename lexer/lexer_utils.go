/*
File    : notlox/lexer/lexer_utils.go
Author  : CesGalaxy
Contact : github.com/CesGalaxy
*/
package lexer

import (
	"strconv"
	"strings"
)

// isNumeric checks if the given byte is a numeric digit (0-9).
func isNumeric(curr byte) bool {
	return curr >= '0' && curr <= '9'
}

// isAlpha checks if the given byte is an ASCII letter (a-z, A-Z).
func isAlpha(curr byte) bool {
	return (curr >= 'a' && curr <= 'z') || (curr >= 'A' && curr <= 'Z')
}

// isAlphanumeric checks if the given byte may continue an identifier:
// an ASCII letter, a digit, or an underscore.
func isAlphanumeric(curr byte) bool {
	return isAlpha(curr) || isNumeric(curr) || curr == '_'
}

// readStringLiteral reads and tokenizes a string literal from the source.
// String literals are enclosed in double quotes and may span multiple
// lines; embedded newlines advance the line counter. The token's literal
// value is the inner text exactly as written (no escape processing).
//
// An unterminated string is reported through the diagnostics session and
// yields the EOF token, since the scan consumed the rest of the input.
//
// Returns:
//   - Token: A STRING_LIT token whose Literal is the inner text
func (lex *Lexer) readStringLiteral() Token {
	startLine := lex.Line
	lex.Advance() // Consume opening quote

	var builder strings.Builder
	for lex.Current != '"' {
		if lex.Current == 0 {
			lex.Diag.Error(lex.Line, "Unterminated string.")
			return NewToken(EOF_TYPE, "", lex.Line)
		}
		if lex.Current == '\n' {
			lex.Line++
		}
		builder.WriteByte(lex.Current)
		lex.Advance()
	}
	lex.Advance() // Consume closing quote

	value := builder.String()
	return NewLiteralToken(STRING_LIT, "\""+value+"\"", value, startLine)
}

// readNumberLiteral reads and tokenizes a number literal: one or more
// digits with an optional single '.' followed by at least one digit. The
// token's literal value is the parsed 64-bit float.
//
// A trailing dot is NOT part of the number; in "12.foo" the dot is left
// for the next token so property access on number-valued expressions
// still scans predictably.
//
// Returns:
//   - Token: A NUMBER_LIT token whose Literal is a float64
func (lex *Lexer) readNumberLiteral() Token {
	start := lex.Position
	for isNumeric(lex.Current) {
		lex.Advance()
	}

	// Fractional part: consume the dot only when a digit follows it
	if lex.Current == '.' && isNumeric(lex.Peek()) {
		lex.Advance()
		for isNumeric(lex.Current) {
			lex.Advance()
		}
	}

	lexeme := lex.Src[start:lex.Position]
	value, err := strconv.ParseFloat(lexeme, 64)
	if err != nil {
		// Unreachable with the grammar above; defer to the diagnostics
		// session rather than silently minting a bogus literal
		lex.Diag.Error(lex.Line, "Invalid number literal.")
		value = 0
	}
	return NewLiteralToken(NUMBER_LIT, lexeme, value, lex.Line)
}

// readIdentifier reads an identifier or keyword: a letter or underscore
// followed by letters, digits or underscores. When the lexeme matches a
// reserved keyword, the keyword's token type is emitted instead of
// IDENTIFIER_ID.
//
// Returns:
//   - Token: An IDENTIFIER_ID token, or the matching keyword token
func (lex *Lexer) readIdentifier() Token {
	start := lex.Position
	for isAlphanumeric(lex.Current) {
		lex.Advance()
	}

	lexeme := lex.Src[start:lex.Position]
	if keyword, ok := Keywords[lexeme]; ok {
		return NewToken(keyword, lexeme, lex.Line)
	}
	return NewToken(IDENTIFIER_ID, lexeme, lex.Line)
}
