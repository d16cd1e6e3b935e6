/*
File    : notlox/eval/eval_expressions.go
Author  : CesGalaxy
Contact : github.com/CesGalaxy
*/
package eval

import (
	"github.com/CesGalaxy/notlox/lexer"
	"github.com/CesGalaxy/notlox/objects"
	"github.com/CesGalaxy/notlox/parser"
)

// evalIdentifierExpression reads a variable reference through the
// resolved locals table (or globals when unresolved).
func (e *Evaluator) evalIdentifierExpression(node *parser.IdentifierExpressionNode) objects.Object {
	return e.lookupVariable(node.Name, node.Token, node)
}

// evalAssignExpression evaluates the value and writes it to the binding
// the resolver located: a resolved distance writes straight into that
// scope, an unresolved name must already exist in globals. The assigned
// value is the expression's result, so assignments chain.
func (e *Evaluator) evalAssignExpression(node *parser.AssignExpressionNode) objects.Object {
	value := e.Eval(node.Value)
	if IsError(value) {
		return value
	}

	if distance, ok := e.Locals[node]; ok {
		e.Scp.AssignAt(distance, node.Name.Lexeme, value)
	} else if !e.Globals.Assign(node.Name.Lexeme, value) {
		return e.CreateError(node.Name, "Undefined variable '%s'.", node.Name.Lexeme)
	}
	return value
}

// evalUnaryExpression evaluates a prefix operation.
//
// '-' dispatches on the operand type: a number negates, a string
// reverses, a boolean flips. '!' negates truthiness for any operand.
func (e *Evaluator) evalUnaryExpression(node *parser.UnaryExpressionNode) objects.Object {
	right := e.Eval(node.Right)
	if IsError(right) {
		return right
	}

	switch node.Operation.Type {
	case lexer.MINUS_OP:
		switch operand := right.(type) {
		case *objects.Number:
			return &objects.Number{Value: -operand.Value}
		case *objects.String:
			return &objects.String{Value: reverseString(operand.Value)}
		case *objects.Boolean:
			return &objects.Boolean{Value: !operand.Value}
		default:
			return e.CreateError(node.Operation, "Operand must be a number.")
		}
	case lexer.NOT_OP:
		return &objects.Boolean{Value: !objects.IsTruthy(right)}
	default:
		return e.CreateError(node.Operation, "Unknown unary operator '%s'.", node.Operation.Lexeme)
	}
}

// reverseString reverses a string rune-wise, so multi-byte characters
// survive the flip.
func reverseString(s string) string {
	runes := []rune(s)
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}
	return string(runes)
}

// evalBinaryExpression evaluates both operands, then dispatches on the
// operator:
//   - '+' adds numbers or concatenates strings
//   - the other arithmetic and ordering operators require two numbers;
//     division by zero follows IEEE float semantics
//   - equality never fails and follows the language's equality rules
func (e *Evaluator) evalBinaryExpression(node *parser.BinaryExpressionNode) objects.Object {
	left := e.Eval(node.Left)
	if IsError(left) {
		return left
	}
	right := e.Eval(node.Right)
	if IsError(right) {
		return right
	}

	switch node.Operation.Type {
	case lexer.EQ_OP:
		return &objects.Boolean{Value: objects.IsEqual(left, right)}
	case lexer.NE_OP:
		return &objects.Boolean{Value: !objects.IsEqual(left, right)}

	case lexer.PLUS_OP:
		if leftNum, ok := left.(*objects.Number); ok {
			if rightNum, ok := right.(*objects.Number); ok {
				return &objects.Number{Value: leftNum.Value + rightNum.Value}
			}
		}
		if leftStr, ok := left.(*objects.String); ok {
			if rightStr, ok := right.(*objects.String); ok {
				return &objects.String{Value: leftStr.Value + rightStr.Value}
			}
		}
		return e.CreateError(node.Operation, "Operands must be two numbers or two strings.")
	}

	// Everything below operates on two numbers
	leftNum, leftOk := left.(*objects.Number)
	rightNum, rightOk := right.(*objects.Number)
	if !leftOk || !rightOk {
		return e.CreateError(node.Operation, "Operands must be numbers.")
	}

	switch node.Operation.Type {
	case lexer.MINUS_OP:
		return &objects.Number{Value: leftNum.Value - rightNum.Value}
	case lexer.MUL_OP:
		return &objects.Number{Value: leftNum.Value * rightNum.Value}
	case lexer.DIV_OP:
		return &objects.Number{Value: leftNum.Value / rightNum.Value}
	case lexer.GT_OP:
		return &objects.Boolean{Value: leftNum.Value > rightNum.Value}
	case lexer.GE_OP:
		return &objects.Boolean{Value: leftNum.Value >= rightNum.Value}
	case lexer.LT_OP:
		return &objects.Boolean{Value: leftNum.Value < rightNum.Value}
	case lexer.LE_OP:
		return &objects.Boolean{Value: leftNum.Value <= rightNum.Value}
	default:
		return e.CreateError(node.Operation, "Unknown binary operator '%s'.", node.Operation.Lexeme)
	}
}

// evalLogicalExpression implements short-circuit and/or. The result is
// whichever operand decided the outcome, not a coerced boolean: "a or b"
// yields a when a is truthy, otherwise b.
func (e *Evaluator) evalLogicalExpression(node *parser.LogicalExpressionNode) objects.Object {
	left := e.Eval(node.Left)
	if IsError(left) {
		return left
	}

	if node.Operation.Type == lexer.OR_KEY {
		if objects.IsTruthy(left) {
			return left
		}
	} else {
		if !objects.IsTruthy(left) {
			return left
		}
	}
	return e.Eval(node.Right)
}
