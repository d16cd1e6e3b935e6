/*
File    : notlox/resolver/resolver.go
Author  : CesGalaxy
Contact : github.com/CesGalaxy
*/

// Package resolver implements the static resolution pass that runs
// between parsing and evaluation. It walks the AST once and computes, for
// every variable reference, the number of scope hops between the
// reference and the scope that declares the name. The evaluator then
// reads resolved variables with a direct indexed lookup instead of a
// chain search; references that resolve to nothing fall back to the
// globals scope at runtime.
//
// The pass also rejects the scope mistakes that cannot be caught later:
// reading a local variable inside its own initializer, declaring the same
// name twice in one scope, and returning from top-level code.
package resolver

import (
	"github.com/CesGalaxy/notlox/diag"
	"github.com/CesGalaxy/notlox/lexer"
	"github.com/CesGalaxy/notlox/parser"
)

// functionContext tags what kind of function body the resolver is
// currently inside, so return statements outside any function can be
// rejected.
type functionContext int

const (
	contextNone functionContext = iota
	contextFunction
)

// Resolver holds the resolution state: a stack of lexical scopes, each a
// map from name to "fully defined yet", and the locals table being built.
//
// Scopes only ever track block, function and class-body scopes; the
// globals scope is deliberately absent, which is how global references
// end up unresolved (and therefore dynamic) by construction.
type Resolver struct {
	// Locals maps each resolved variable-reference node to its scope
	// distance. Keys are node pointers: two references to the same name
	// are distinct entries, since they may sit at different depths.
	Locals map[parser.ExpressionNode]int

	scopes          []map[string]bool
	currentFunction functionContext
	diag            *diag.Session
}

// NewResolver creates a resolver reporting through the given session.
func NewResolver(session *diag.Session) *Resolver {
	return &Resolver{
		Locals:          make(map[parser.ExpressionNode]int),
		scopes:          make([]map[string]bool, 0),
		currentFunction: contextNone,
		diag:            session,
	}
}

// Resolve walks the whole program. Errors are reported through the
// diagnostics session; the returned locals table is only meaningful when
// the session stayed clean.
func (r *Resolver) Resolve(root *parser.RootNode) map[parser.ExpressionNode]int {
	for _, stmt := range root.Statements {
		r.resolveStatement(stmt)
	}
	return r.Locals
}

// resolveStatement dispatches one statement node.
func (r *Resolver) resolveStatement(stmt parser.StatementNode) {
	switch node := stmt.(type) {
	case *parser.BlockStatementNode:
		r.beginScope()
		for _, inner := range node.Statements {
			r.resolveStatement(inner)
		}
		r.endScope()

	case *parser.DeclarativeStatementNode:
		r.declare(node.Name)
		if node.Initializer != nil {
			r.resolveExpression(node.Initializer)
		}
		r.define(node.Name)

	case *parser.FunctionStatementNode:
		// The name is usable before the body runs, so recursion works
		r.declare(node.Name)
		r.define(node.Name)
		r.resolveFunction(node)

	case *parser.ClassStatementNode:
		r.declare(node.Name)
		r.define(node.Name)
		// Class bodies open a scope holding 'this'; every method body
		// resolves inside it, so 'this' gets a real distance
		r.beginScope()
		r.scopes[len(r.scopes)-1]["this"] = true
		for _, method := range node.Methods {
			r.resolveFunction(method)
		}
		r.endScope()

	case *parser.ReturnStatementNode:
		if r.currentFunction == contextNone {
			r.errorAtToken(node.Keyword, "Can't return from top-level code.")
		}
		if node.Value != nil {
			r.resolveExpression(node.Value)
		}

	case *parser.IfStatementNode:
		r.resolveExpression(node.Cond)
		r.resolveStatement(node.Then)
		if node.Else != nil {
			r.resolveStatement(node.Else)
		}

	case *parser.WhileLoopStatementNode:
		r.resolveExpression(node.Cond)
		r.resolveStatement(node.Body)

	case *parser.PrintStatementNode:
		r.resolveExpression(node.Expr)

	case *parser.ExpressionStatementNode:
		r.resolveExpression(node.Expr)

	case parser.ExpressionNode:
		// An expression used directly in statement position
		r.resolveExpression(node)
	}
}

// resolveExpression dispatches one expression node.
func (r *Resolver) resolveExpression(expr parser.ExpressionNode) {
	switch node := expr.(type) {
	case *parser.IdentifierExpressionNode:
		// Reading a name whose declaration is open but not finished is
		// the var-in-its-own-initializer case
		if len(r.scopes) > 0 {
			if defined, declared := r.scopes[len(r.scopes)-1][node.Name]; declared && !defined {
				r.errorAtToken(node.Token, "Can't read local variable in its own initializer.")
			}
		}
		r.resolveLocal(node, node.Name)

	case *parser.AssignExpressionNode:
		r.resolveExpression(node.Value)
		r.resolveLocal(node, node.Name.Lexeme)

	case *parser.ThisExpressionNode:
		r.resolveLocal(node, node.Keyword.Lexeme)

	case *parser.UnaryExpressionNode:
		r.resolveExpression(node.Right)

	case *parser.BinaryExpressionNode:
		r.resolveExpression(node.Left)
		r.resolveExpression(node.Right)

	case *parser.LogicalExpressionNode:
		r.resolveExpression(node.Left)
		r.resolveExpression(node.Right)

	case *parser.ParenthesizedExpressionNode:
		r.resolveExpression(node.Expr)

	case *parser.CallExpressionNode:
		r.resolveExpression(node.Callee)
		for _, arg := range node.Arguments {
			r.resolveExpression(arg)
		}

	case *parser.GetExpressionNode:
		// Properties are looked up dynamically; only the target resolves
		r.resolveExpression(node.Object)

	case *parser.SetExpressionNode:
		r.resolveExpression(node.Value)
		r.resolveExpression(node.Object)

	case *parser.LiteralExpressionNode:
		// Nothing to resolve
	}
}

// resolveFunction resolves a function or method body under a fresh scope
// containing its parameters, tracking that returns are now legal.
func (r *Resolver) resolveFunction(node *parser.FunctionStatementNode) {
	enclosing := r.currentFunction
	r.currentFunction = contextFunction

	r.beginScope()
	for _, param := range node.Params {
		r.declare(param.Token)
		r.define(param.Token)
	}
	r.resolveStatement(node.Body)
	r.endScope()

	r.currentFunction = enclosing
}

// resolveLocal walks the scope stack from innermost outward and records
// the hop count of the first scope containing the name. Names found
// nowhere stay out of the table and resolve against globals at runtime.
func (r *Resolver) resolveLocal(expr parser.ExpressionNode, name string) {
	for i := len(r.scopes) - 1; i >= 0; i-- {
		if _, ok := r.scopes[i][name]; ok {
			r.Locals[expr] = len(r.scopes) - 1 - i
			return
		}
	}
}

// beginScope pushes a fresh lexical scope.
func (r *Resolver) beginScope() {
	r.scopes = append(r.scopes, make(map[string]bool))
}

// endScope pops the innermost scope.
func (r *Resolver) endScope() {
	r.scopes = r.scopes[:len(r.scopes)-1]
}

// declare marks a name as existing-but-not-initialized in the innermost
// scope. At global depth there is no scope to mark. Declaring a name
// twice in the same scope is an error.
func (r *Resolver) declare(name lexer.Token) {
	if len(r.scopes) == 0 {
		return
	}
	scope := r.scopes[len(r.scopes)-1]
	if _, ok := scope[name.Lexeme]; ok {
		r.errorAtToken(name, "Already a variable with this name in this scope.")
	}
	scope[name.Lexeme] = false
}

// define marks a declared name as fully initialized and readable.
func (r *Resolver) define(name lexer.Token) {
	if len(r.scopes) == 0 {
		return
	}
	r.scopes[len(r.scopes)-1][name.Lexeme] = true
}

// errorAtToken reports a resolution diagnostic located at a token.
func (r *Resolver) errorAtToken(token lexer.Token, message string) {
	where := " at '" + token.Lexeme + "'"
	if token.Type == lexer.EOF_TYPE {
		where = " at end"
	}
	r.diag.ErrorAt(token.Line, where, message)
}
