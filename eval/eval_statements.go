/*
File    : notlox/eval/eval_statements.go
Author  : CesGalaxy
Contact : github.com/CesGalaxy
*/
package eval

import (
	"fmt"

	"github.com/CesGalaxy/notlox/objects"
	"github.com/CesGalaxy/notlox/parser"
	"github.com/CesGalaxy/notlox/scope"
)

// evalExpressionStatement evaluates an expression for its side effects.
// Errors pass through; any other value is discarded.
func (e *Evaluator) evalExpressionStatement(node *parser.ExpressionStatementNode) objects.Object {
	result := e.Eval(node.Expr)
	if IsError(result) {
		return result
	}
	return &objects.Nil{}
}

// evalPrintStatement evaluates the expression and writes its display
// string plus a newline to the evaluator's writer.
func (e *Evaluator) evalPrintStatement(node *parser.PrintStatementNode) objects.Object {
	value := e.Eval(node.Expr)
	if IsError(value) {
		return value
	}
	fmt.Fprintln(e.Writer, value.ToString())
	return &objects.Nil{}
}

// evalDeclarativeStatement binds a new variable in the current scope. A
// declaration without an initializer binds nil.
func (e *Evaluator) evalDeclarativeStatement(node *parser.DeclarativeStatementNode) objects.Object {
	var value objects.Object = &objects.Nil{}
	if node.Initializer != nil {
		value = e.Eval(node.Initializer)
		if IsError(value) {
			return value
		}
	}
	e.Scp.Bind(node.Name.Lexeme, value)
	return &objects.Nil{}
}

// evalBlockStatement executes the block's statements under a fresh child
// scope. The previous scope is restored on every exit path; signals
// travel as return values, so the single restore below covers normal
// completion, returns and runtime errors alike.
func (e *Evaluator) evalBlockStatement(node *parser.BlockStatementNode) objects.Object {
	previous := e.Scp
	e.Scp = scope.NewScope(previous)
	result := e.evalStatements(node.Statements)
	e.Scp = previous
	return result
}

// evalIfStatement runs one of the two branches depending on the
// condition's truthiness.
func (e *Evaluator) evalIfStatement(node *parser.IfStatementNode) objects.Object {
	cond := e.Eval(node.Cond)
	if IsError(cond) {
		return cond
	}
	if objects.IsTruthy(cond) {
		return e.Eval(node.Then)
	}
	if node.Else != nil {
		return e.Eval(node.Else)
	}
	return &objects.Nil{}
}

// evalWhileLoopStatement re-evaluates the condition before every
// iteration and runs the body while it stays truthy. Errors and
// travelling returns end the loop immediately.
func (e *Evaluator) evalWhileLoopStatement(node *parser.WhileLoopStatementNode) objects.Object {
	for {
		cond := e.Eval(node.Cond)
		if IsError(cond) {
			return cond
		}
		if !objects.IsTruthy(cond) {
			return &objects.Nil{}
		}

		result := e.Eval(node.Body)
		if result != nil {
			resultType := result.GetType()
			if resultType == objects.ErrorType || resultType == objects.ReturnType {
				return result
			}
		}
	}
}

// evalReturnStatement starts a return signal travelling upward. A bare
// return carries nil.
func (e *Evaluator) evalReturnStatement(node *parser.ReturnStatementNode) objects.Object {
	var value objects.Object = &objects.Nil{}
	if node.Value != nil {
		value = e.Eval(node.Value)
		if IsError(value) {
			return value
		}
	}
	return &objects.ReturnValue{Value: value}
}
