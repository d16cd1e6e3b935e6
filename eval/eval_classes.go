/*
File    : notlox/eval/eval_classes.go
Author  : CesGalaxy
Contact : github.com/CesGalaxy
*/
package eval

import (
	"github.com/CesGalaxy/notlox/function"
	"github.com/CesGalaxy/notlox/objects"
	"github.com/CesGalaxy/notlox/parser"
)

// evalClassStatement builds a class value and binds it under its name.
// The name is bound to nil first and assigned afterwards, so the name
// exists in the scope while the method table is being built. Each method
// becomes a function value closing over the scope the class is being
// declared in; 'this' enters the chain later, when a method is bound to
// an instance.
func (e *Evaluator) evalClassStatement(node *parser.ClassStatementNode) objects.Object {
	e.Scp.Bind(node.Name.Lexeme, &objects.Nil{})

	methods := make(map[string]objects.MethodInterface, len(node.Methods))
	for _, methodNode := range node.Methods {
		methods[methodNode.Name.Lexeme] = function.New(methodNode, e.Scp)
	}

	class := objects.NewClass(node.Name.Lexeme, methods)
	e.Scp.Assign(node.Name.Lexeme, class)
	return &objects.Nil{}
}

// evalGetExpression reads a property off an instance. Fields win over
// methods; a method hit produces a fresh bound function whose closure
// carries 'this' for this particular instance, so extracted methods keep
// their receiver.
func (e *Evaluator) evalGetExpression(node *parser.GetExpressionNode) objects.Object {
	object := e.Eval(node.Object)
	if IsError(object) {
		return object
	}

	instance, ok := object.(*objects.Instance)
	if !ok {
		return e.CreateError(node.Name, "Only instances have properties.")
	}

	if value, found := instance.GetField(node.Name.Lexeme); found {
		return value
	}
	if method, found := instance.Class.FindMethod(node.Name.Lexeme); found {
		if fn, ok := method.(*function.Function); ok {
			return fn.Bind(instance)
		}
	}
	return e.CreateError(node.Name, "Undefined property '%s'.", node.Name.Lexeme)
}

// evalSetExpression writes a field on an instance. Only instances have
// fields; the field is created on first write. The stored value is the
// expression's result.
func (e *Evaluator) evalSetExpression(node *parser.SetExpressionNode) objects.Object {
	object := e.Eval(node.Object)
	if IsError(object) {
		return object
	}

	instance, ok := object.(*objects.Instance)
	if !ok {
		return e.CreateError(node.Name, "Only instances have fields.")
	}

	value := e.Eval(node.Value)
	if IsError(value) {
		return value
	}
	instance.SetField(node.Name.Lexeme, value)
	return value
}

// evalThisExpression reads 'this' like any resolved variable; the bound
// method's closure put it at the resolved distance.
func (e *Evaluator) evalThisExpression(node *parser.ThisExpressionNode) objects.Object {
	return e.lookupVariable(node.Keyword.Lexeme, node.Keyword, node)
}
