/*
File    : notlox/parser/parser.go
Author  : CesGalaxy
Contact : github.com/CesGalaxy
*/

/*
Package parser implements a Pratt parser (top-down operator precedence
parser) for the NotLox language.

The parser converts the lexer's token stream into an Abstract Syntax Tree
(AST). It handles:
- Expressions (binary, logical, unary, literals, identifiers, calls,
  property access, assignment)
- Statements (declarations, print, blocks, control flow, functions,
  classes, return)
- Operator precedence and associativity

Key Features:
- Pratt parsing with per-token prefix and infix function registration
- For-loops desugared into while-loops at parse time
- Assignment targets recovered by reinterpreting the parsed left side
- Panic-mode error recovery: a syntax error is reported through the
  diagnostics session, then the parser resynchronizes at the next
  statement boundary and keeps going, so one bad statement does not hide
  errors in the rest of the file
*/
package parser

import (
	"github.com/CesGalaxy/notlox/diag"
	"github.com/CesGalaxy/notlox/lexer"
)

// Parser represents the parser state. It maintains the lexer it pulls
// tokens from, a two-token window over the stream, and the Pratt
// registration maps associating token types with parsing functions.
type Parser struct {
	Lex       lexer.Lexer // Lexer instance producing the token stream
	CurrToken lexer.Token // Current token being processed
	NextToken lexer.Token // Next token (for lookahead)

	// Function maps for Pratt parsing
	UnaryFuncs  map[lexer.TokenType]unaryParseFunction  // Prefix parsers (literals, unary ops, grouping)
	BinaryFuncs map[lexer.TokenType]binaryParseFunction // Infix parsers (binary ops, call, property access)

	// Diagnostics session syntax errors are reported through
	Diag *diag.Session
}

// parseError is the panic value used for panic-mode recovery. Parsing
// functions report the diagnostic first and then panic with this value;
// the top-level declaration loop recovers and resynchronizes.
type parseError struct{}

// NewParser creates and initializes a new Parser for the given source.
//
// Parameters:
//   - src: The NotLox source code to parse
//   - session: Diagnostics session for syntax errors
//
// Returns:
//   - *Parser: A parser ready to use; call Parse() to build the AST
func NewParser(src string, session *diag.Session) *Parser {
	par := &Parser{
		Lex:  lexer.NewLexer(src, session),
		Diag: session,
	}
	par.init()
	return par
}

// init initializes the parser's internal state: the Pratt registration
// maps and the two-token lookahead window.
func (par *Parser) init() {
	par.UnaryFuncs = make(map[lexer.TokenType]unaryParseFunction)
	par.BinaryFuncs = make(map[lexer.TokenType]binaryParseFunction)

	// Register prefix parsing functions.
	// These handle tokens that can begin an expression.

	// Parenthesized expressions: (expr)
	par.registerUnaryFuncs(par.parseParenthesizedExpression, lexer.LEFT_PAREN)

	// Literals: numbers, strings, booleans, nil
	par.registerUnaryFuncs(par.parseNumberLiteral, lexer.NUMBER_LIT)
	par.registerUnaryFuncs(par.parseStringLiteral, lexer.STRING_LIT)
	par.registerUnaryFuncs(par.parseBooleanLiteral, lexer.TRUE_KEY, lexer.FALSE_KEY)
	par.registerUnaryFuncs(par.parseNilLiteral, lexer.NIL_KEY)

	// Identifiers: variable, function and class names
	par.registerUnaryFuncs(par.parseIdentifierExpression, lexer.IDENTIFIER_ID)

	// The current instance inside methods
	par.registerUnaryFuncs(par.parseThisExpression, lexer.THIS_KEY)

	// Prefix operators: ! -
	par.registerUnaryFuncs(par.parseUnaryExpression, lexer.NOT_OP, lexer.MINUS_OP)

	// Register infix parsing functions.
	// These handle operators appearing after a parsed expression.

	// Arithmetic operators: + - * /
	par.registerBinaryFuncs(par.parseBinaryExpression,
		lexer.PLUS_OP, lexer.MINUS_OP, lexer.MUL_OP, lexer.DIV_OP)

	// Comparison and equality: > >= < <= == !=
	par.registerBinaryFuncs(par.parseBinaryExpression,
		lexer.GT_OP, lexer.GE_OP, lexer.LT_OP, lexer.LE_OP, lexer.EQ_OP, lexer.NE_OP)

	// Short-circuit logical operators: and or
	par.registerBinaryFuncs(par.parseLogicalExpression, lexer.AND_KEY, lexer.OR_KEY)

	// Assignment: reinterprets the already-parsed left side
	par.registerBinaryFuncs(par.parseAssignmentExpression, lexer.ASSIGN_OP)

	// Postfix: calls and property access
	par.registerBinaryFuncs(par.parseCallExpression, lexer.LEFT_PAREN)
	par.registerBinaryFuncs(par.parseGetExpression, lexer.DOT_OP)

	// Prime the two-token window
	par.advance()
	par.advance()
}

// advance shifts the token window by one: the lookahead token becomes
// current and a fresh token is pulled from the lexer.
func (par *Parser) advance() {
	par.CurrToken = par.NextToken
	par.NextToken = par.Lex.NextToken()
}

// Parse parses the whole token stream into the program's root node.
// Each top-level declaration is parsed independently: when one fails, the
// parser recovers at a statement boundary and continues, so all syntax
// errors in a file surface in a single run. Check the diagnostics session
// before handing the result to later stages.
func (par *Parser) Parse() *RootNode {
	root := &RootNode{Statements: make([]StatementNode, 0)}
	for par.CurrToken.Type != lexer.EOF_TYPE {
		stmt := par.parseDeclaration()
		if stmt != nil {
			root.Statements = append(root.Statements, stmt)
		}
	}
	return root
}

// parseDeclaration parses one declaration (var, fun, class) or statement,
// recovering from syntax errors at statement boundaries. On error, the
// diagnostic has already been reported; the function resynchronizes and
// returns nil.
func (par *Parser) parseDeclaration() (stmt StatementNode) {
	defer func() {
		if r := recover(); r != nil {
			if _, ok := r.(parseError); !ok {
				panic(r)
			}
			par.synchronize()
			stmt = nil
		}
	}()

	switch par.CurrToken.Type {
	case lexer.VAR_KEY:
		return par.parseVarDeclaration()
	case lexer.FUN_KEY:
		return par.parseFunctionDeclaration("function")
	case lexer.CLASS_KEY:
		return par.parseClassDeclaration()
	default:
		return par.parseStatement()
	}
}

// synchronize discards tokens until a likely statement boundary: just
// after a semicolon, or at a keyword that begins a statement. This keeps
// one syntax error from producing a cascade of spurious ones.
func (par *Parser) synchronize() {
	for par.CurrToken.Type != lexer.EOF_TYPE {
		if par.CurrToken.Type == lexer.SEMICOLON_DEL {
			par.advance()
			return
		}
		switch par.CurrToken.Type {
		case lexer.CLASS_KEY, lexer.FUN_KEY, lexer.VAR_KEY, lexer.FOR_KEY,
			lexer.IF_KEY, lexer.WHILE_KEY, lexer.PRINT_KEY, lexer.RETURN_KEY:
			return
		}
		par.advance()
	}
}
