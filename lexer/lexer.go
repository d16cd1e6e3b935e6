/*
File    : notlox/lexer/lexer.go
Author  : CesGalaxy
Contact : github.com/CesGalaxy
*/
package lexer

import "github.com/CesGalaxy/notlox/diag"

// Lexer performs lexical analysis (tokenization) of NotLox source code.
// It scans through the source text character by character, identifying and
// creating tokens that represent the syntactic elements of the language.
//
// The lexer maintains state about its current position in the source code,
// including the line number for error reporting. It handles:
//   - Operators (arithmetic, comparison, equality, assignment)
//   - Keywords (var, fun, class, if, while, print, return, etc.)
//   - Literals (numbers, strings)
//   - Identifiers (variable, function and class names)
//   - Structural symbols (parentheses, braces, delimiters)
//   - Line comments (// to end of line)
//   - Whitespace (which is skipped; newlines advance the line counter)
//
// Unknown characters are reported through the diagnostics session and
// skipped, so a single stray byte does not end the scan.
//
// Fields:
//   - Src: The complete source code as a string
//   - Current: The byte at the current position being examined
//   - Position: The current index in the source string (0-indexed)
//   - SrcLength: The total length of the source string
//   - Line: The current line number in the source (1-indexed)
//   - Diag: The diagnostics session scanner errors are reported to
type Lexer struct {
	Src       string        // Entire source code in plain text format
	Current   byte          // Current character being examined
	Position  int           // Current position of pointer in the source code
	SrcLength int           // Length of source string
	Line      int           // Line number in source (1-indexed)
	Diag      *diag.Session // Diagnostics sink for scanner errors
}

// NewLexer creates and initializes a new Lexer for the given source code.
// It sets up the initial state with the first character of the source and
// initializes position tracking to line 1.
//
// Parameters:
//   - src: The source code string to tokenize
//   - session: Diagnostics session scanner errors are reported to
//
// Returns:
//   - Lexer: A new lexer ready to tokenize the source code
func NewLexer(src string, session *diag.Session) Lexer {
	current := byte(0)
	if len(src) > 0 {
		current = src[0]
	}
	return Lexer{
		Src:       src,
		Current:   current,
		Position:  0,
		SrcLength: len(src),
		Line:      1,
		Diag:      session,
	}
}

// NextToken retrieves the next token from the source code stream.
// It skips whitespace and comments, then identifies and returns the next
// meaningful token. This is the main entry point for token-by-token
// parsing; the parser drives the lexer incrementally through it.
//
// Returns:
//   - Token: The next token in the source, or an EOF_TYPE token with an
//     empty lexeme once the end of input is reached
func (lex *Lexer) NextToken() Token {

	for {
		var token Token
		lex.IgnoreWhitespacesAndComments()

		// Match the current character to determine token type
		switch lex.Current {
		case '(':
			token = NewToken(LEFT_PAREN, "(", lex.Line)
		case ')':
			token = NewToken(RIGHT_PAREN, ")", lex.Line)
		case '{':
			token = NewToken(LEFT_BRACE, "{", lex.Line)
		case '}':
			token = NewToken(RIGHT_BRACE, "}", lex.Line)
		case ',':
			token = NewToken(COMMA_DEL, ",", lex.Line)
		case '.':
			token = NewToken(DOT_OP, ".", lex.Line)
		case ';':
			token = NewToken(SEMICOLON_DEL, ";", lex.Line)
		case '+':
			token = NewToken(PLUS_OP, "+", lex.Line)
		case '-':
			token = NewToken(MINUS_OP, "-", lex.Line)
		case '*':
			token = NewToken(MUL_OP, "*", lex.Line)
		case '/':
			// A second '/' would have started a comment, already skipped above
			token = NewToken(DIV_OP, "/", lex.Line)
		case '=':
			// Could be '=' (assignment) or '==' (equality)
			if lex.Peek() == '=' {
				lex.Advance()
				token = NewToken(EQ_OP, "==", lex.Line)
			} else {
				token = NewToken(ASSIGN_OP, "=", lex.Line)
			}
		case '!':
			// Could be '!' (logical NOT) or '!=' (not equal)
			if lex.Peek() == '=' {
				lex.Advance()
				token = NewToken(NE_OP, "!=", lex.Line)
			} else {
				token = NewToken(NOT_OP, "!", lex.Line)
			}
		case '<':
			// Could be '<' or '<='
			if lex.Peek() == '=' {
				lex.Advance()
				token = NewToken(LE_OP, "<=", lex.Line)
			} else {
				token = NewToken(LT_OP, "<", lex.Line)
			}
		case '>':
			// Could be '>' or '>='
			if lex.Peek() == '=' {
				lex.Advance()
				token = NewToken(GE_OP, ">=", lex.Line)
			} else {
				token = NewToken(GT_OP, ">", lex.Line)
			}
		case '"':
			// String literal - delegate to specialized handler
			return lex.readStringLiteral()
		case 0:
			// Null byte indicates end of input
			return NewToken(EOF_TYPE, "", lex.Line)
		default:
			if isNumeric(lex.Current) {
				return lex.readNumberLiteral()
			}
			if isAlpha(lex.Current) || lex.Current == '_' {
				return lex.readIdentifier()
			}

			// Unknown character: report, skip, and keep scanning
			lex.Diag.Error(lex.Line, "Unexpected character.")
			lex.Advance()
			continue
		}

		// Move past the token just recognized
		lex.Advance()

		return token
	}
}

// Tokenize scans the entire source and returns the complete ordered token
// sequence, terminated by a single EOF token. Convenience for tests and
// for the AST dumping mode; the parser itself pulls tokens one at a time.
func (lex *Lexer) Tokenize() []Token {
	tokens := []Token{}
	for {
		token := lex.NextToken()
		tokens = append(tokens, token)
		if token.Type == EOF_TYPE {
			return tokens
		}
	}
}

// Peek looks ahead to the next character in the source without consuming
// it. This is the single-character lookahead used for the two-character
// operators (==, !=, <=, >=) and comment detection.
//
// Returns:
//   - byte: The next character, or 0 if at end of source
func (lex *Lexer) Peek() byte {
	if lex.Position+1 >= lex.SrcLength {
		return 0 // End of source
	}
	return lex.Src[lex.Position+1]
}

// Advance moves the lexer to the next character in the source.
// It updates the Current byte and Position. Line counting happens where
// newlines are actually consumed (whitespace skipping and string bodies).
func (lex *Lexer) Advance() {
	lex.Position++
	if lex.Position >= lex.SrcLength {
		lex.Current = 0              // Null byte indicates end
		lex.Position = lex.SrcLength // Keep position at end
	} else {
		lex.Current = lex.Src[lex.Position]
	}
}

// IgnoreWhitespacesAndComments skips over whitespace and line comments so
// NextToken always starts at a meaningful character. Newlines increment
// the line counter; a "//" sequence discards everything to end of line.
func (lex *Lexer) IgnoreWhitespacesAndComments() {
	for {
		switch {
		case lex.Current == '\n':
			lex.Line++
			lex.Advance()
		case lex.Current == ' ' || lex.Current == '\t' || lex.Current == '\r':
			lex.Advance()
		case lex.Current == '/' && lex.Peek() == '/':
			// Line comment: discard to end of line (the newline itself is
			// handled by the next iteration so the line count stays right)
			for lex.Current != '\n' && lex.Current != 0 {
				lex.Advance()
			}
		default:
			return
		}
	}
}
