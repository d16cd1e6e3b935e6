/*
File    : notlox/parser/parser_precedence.go
Author  : CesGalaxy
Contact : github.com/CesGalaxy
*/
package parser

import "github.com/CesGalaxy/notlox/lexer"

// Operator precedence constants.
// Higher number = higher precedence (binds tighter).
//
// Precedence Hierarchy (lowest to highest):
// 1. Assignment (right-to-left associativity)
// 2. Logical OR
// 3. Logical AND
// 4. Equality operators
// 5. Relational operators
// 6. Additive operators
// 7. Multiplicative operators
// 8. Unary/Prefix operators
// 9. Property access and call operators (postfix)
//
// Example: In "a + b * c", multiplication binds tighter than addition,
// so it is parsed as "a + (b * c)" rather than "(a + b) * c".
const (
	MINIMUM_PRIORITY = 0 // Base priority for starting expression parsing

	// Assignment operator (lowest precedence, right-to-left)
	// Example: a = b = 5 is parsed as a = (b = 5)
	ASSIGN_PRIORITY = 10

	// Logical OR: or
	OR_PRIORITY = 40

	// Logical AND: and
	AND_PRIORITY = 50

	// Equality operators: == !=
	EQUALITY_PRIORITY = 90

	// Relational operators: < > <= >=
	RELATIONAL_PRIORITY = 100

	// Additive operators: + -
	PLUS_PRIORITY = 120

	// Multiplicative operators: * /
	MUL_PRIORITY = 130

	// Unary/Prefix operators: ! -
	PREFIX_PRIORITY = 140

	// Member access operator: .
	MEMBER_ACCESS_PRIORITY = 145

	// Call operator (postfix '(')
	CALL_PRIORITY = 150
)

// getPrecedence returns the precedence level for a given token. This is
// central to the Pratt algorithm: parsing continues rightward while the
// next operator binds tighter than the current context.
//
// Returns -1 for tokens that are not infix operators, which is what ends
// an expression.
func getPrecedence(token *lexer.Token) int {
	switch token.Type {

	// Call operator - highest postfix precedence
	case lexer.LEFT_PAREN:
		return CALL_PRIORITY

	// Member access: .
	case lexer.DOT_OP:
		return MEMBER_ACCESS_PRIORITY

	// Multiplicative: * /
	case lexer.MUL_OP, lexer.DIV_OP:
		return MUL_PRIORITY

	// Additive: + -
	case lexer.PLUS_OP, lexer.MINUS_OP:
		return PLUS_PRIORITY

	// Relational: < > <= >=
	case lexer.GT_OP, lexer.LT_OP, lexer.GE_OP, lexer.LE_OP:
		return RELATIONAL_PRIORITY

	// Equality: == !=
	case lexer.EQ_OP, lexer.NE_OP:
		return EQUALITY_PRIORITY

	// Logical AND: and
	case lexer.AND_KEY:
		return AND_PRIORITY

	// Logical OR: or
	case lexer.OR_KEY:
		return OR_PRIORITY

	// Assignment (lowest precedence)
	case lexer.ASSIGN_OP:
		return ASSIGN_PRIORITY

	default:
		return -1 // Not an infix operator token
	}
}

// binaryParseFunction is the signature for infix parsers. The
// already-parsed left operand is passed in; the function consumes the
// operator and whatever follows, returning the combined expression.
type binaryParseFunction func(ExpressionNode) ExpressionNode

// unaryParseFunction is the signature for prefix parsers: literals,
// identifiers, grouping and prefix operators.
type unaryParseFunction func() ExpressionNode

// registerUnaryFuncs registers one prefix parsing function for multiple
// token types.
func (par *Parser) registerUnaryFuncs(f unaryParseFunction, tokenTypes ...lexer.TokenType) {
	for _, tokenType := range tokenTypes {
		par.UnaryFuncs[tokenType] = f
	}
}

// registerBinaryFuncs registers one infix parsing function for multiple
// token types.
func (par *Parser) registerBinaryFuncs(f binaryParseFunction, tokenTypes ...lexer.TokenType) {
	for _, tokenType := range tokenTypes {
		par.BinaryFuncs[tokenType] = f
	}
}
