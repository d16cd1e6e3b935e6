/*
File    : notlox/eval/evaluator.go
Author  : CesGalaxy
Contact : github.com/CesGalaxy
*/

// Package eval implements the tree-walking evaluator for NotLox. It walks
// the AST produced by the parser, guided by the locals table produced by
// the resolver, and evaluates nodes directly against a chain of scopes.
//
// Control flow that must escape nested statements travels as values:
// a runtime failure is an *objects.Error and a return statement is an
// *objects.ReturnValue. Every evaluation step checks for them and passes
// them upward; the Error surfaces at the driver, the ReturnValue is
// unwrapped at the function-call boundary that owns it.
package eval

import (
	"io"
	"maps"
	"os"

	"github.com/CesGalaxy/notlox/objects"
	"github.com/CesGalaxy/notlox/parser"
	"github.com/CesGalaxy/notlox/scope"
	"github.com/CesGalaxy/notlox/std"
)

// Evaluator holds the state for evaluating NotLox AST nodes: the globals
// scope, the current scope, the resolver's locals table and the output
// writer.
//
// Fields:
//   - Globals: The fixed root scope. Builtins, the now snapshot and every
//     top-level declaration live here.
//   - Scp: The current scope. Swapped on block and call entry and always
//     restored on the way out.
//   - Locals: Scope distances for resolved variable references, keyed by
//     AST node pointer. References absent from the table are globals.
//   - Writer: Destination of print statements (default: os.Stdout).
type Evaluator struct {
	Globals *scope.Scope
	Scp     *scope.Scope
	Locals  map[parser.ExpressionNode]int
	Writer  io.Writer
}

// NewEvaluator creates and initializes a new Evaluator.
//
// The constructor creates the globals scope and populates it with every
// registered builtin plus the "now" constant, which snapshots the Unix
// time the evaluator was created at.
//
// Returns:
//   - *Evaluator: A fully initialized evaluator ready to execute code
//
// Example usage:
//
//	ev := NewEvaluator()
//	ev.AddLocals(resolvedLocals)
//	result := ev.Eval(rootNode)
func NewEvaluator() *Evaluator {
	globals := scope.NewScope(nil)
	for _, builtin := range std.Builtins {
		globals.Bind(builtin.Name, builtin)
	}
	globals.Bind("now", std.NowSnapshot())

	return &Evaluator{
		Globals: globals,
		Scp:     globals,
		Locals:  make(map[parser.ExpressionNode]int),
		Writer:  os.Stdout,
	}
}

// SetWriter redirects print output, which is how tests capture it.
func (e *Evaluator) SetWriter(w io.Writer) {
	e.Writer = w
}

// AddLocals merges a resolver's locals table into the evaluator. The REPL
// resolves every line separately against the same evaluator, so the
// table grows by merging rather than being replaced.
func (e *Evaluator) AddLocals(locals map[parser.ExpressionNode]int) {
	maps.Copy(e.Locals, locals)
}

// Eval evaluates any AST node and returns its value. Statements evaluate
// to nil values unless a signal (error or return) is travelling upward.
// This is the single dispatch point of the evaluator; the per-node logic
// lives in the eval_* files.
func (e *Evaluator) Eval(n parser.Node) objects.Object {
	switch node := n.(type) {

	case *parser.RootNode:
		return e.evalStatements(node.Statements)

	// Statements
	case *parser.ExpressionStatementNode:
		return e.evalExpressionStatement(node)
	case *parser.PrintStatementNode:
		return e.evalPrintStatement(node)
	case *parser.DeclarativeStatementNode:
		return e.evalDeclarativeStatement(node)
	case *parser.BlockStatementNode:
		return e.evalBlockStatement(node)
	case *parser.IfStatementNode:
		return e.evalIfStatement(node)
	case *parser.WhileLoopStatementNode:
		return e.evalWhileLoopStatement(node)
	case *parser.FunctionStatementNode:
		return e.evalFunctionStatement(node)
	case *parser.ReturnStatementNode:
		return e.evalReturnStatement(node)
	case *parser.ClassStatementNode:
		return e.evalClassStatement(node)

	// Expressions
	case *parser.LiteralExpressionNode:
		return node.Value
	case *parser.IdentifierExpressionNode:
		return e.evalIdentifierExpression(node)
	case *parser.AssignExpressionNode:
		return e.evalAssignExpression(node)
	case *parser.UnaryExpressionNode:
		return e.evalUnaryExpression(node)
	case *parser.BinaryExpressionNode:
		return e.evalBinaryExpression(node)
	case *parser.LogicalExpressionNode:
		return e.evalLogicalExpression(node)
	case *parser.ParenthesizedExpressionNode:
		return e.Eval(node.Expr)
	case *parser.CallExpressionNode:
		return e.evalCallExpression(node)
	case *parser.GetExpressionNode:
		return e.evalGetExpression(node)
	case *parser.SetExpressionNode:
		return e.evalSetExpression(node)
	case *parser.ThisExpressionNode:
		return e.evalThisExpression(node)

	default:
		return &objects.Nil{}
	}
}

// evalStatements evaluates a statement sequence in order, with early
// termination: an error or a travelling return value stops the sequence
// immediately and is passed upward.
func (e *Evaluator) evalStatements(stmts []parser.StatementNode) objects.Object {
	var result objects.Object = &objects.Nil{}
	for _, stmt := range stmts {
		result = e.Eval(stmt)
		if result != nil {
			resultType := result.GetType()
			if resultType == objects.ErrorType || resultType == objects.ReturnType {
				return result
			}
		}
	}
	return result
}
