/*
File    : notlox/eval/eval_functions.go
Author  : CesGalaxy
Contact : github.com/CesGalaxy
*/
package eval

import (
	"github.com/CesGalaxy/notlox/function"
	"github.com/CesGalaxy/notlox/objects"
	"github.com/CesGalaxy/notlox/parser"
	"github.com/CesGalaxy/notlox/scope"
	"github.com/CesGalaxy/notlox/std"
)

// evalFunctionStatement constructs a function value closing over the
// current scope and binds it under its declared name. Because the scope
// is captured by reference, the function observes later assignments to
// captured variables, and sibling closures share state. Globals declared
// after the function are visible to it, since unresolved names are looked
// up in globals at call time; a local declared later in the same block is
// not, because the resolver has already bound the reference elsewhere.
func (e *Evaluator) evalFunctionStatement(node *parser.FunctionStatementNode) objects.Object {
	fn := function.New(node, e.Scp)
	e.Scp.Bind(fn.Name, fn)
	return &objects.Nil{}
}

// evalCallExpression evaluates the callee, then the arguments left to
// right, checks the arity and dispatches on the callable variant: user
// functions run their body, classes construct instances, builtins invoke
// their native callback. Anything else is not callable.
func (e *Evaluator) evalCallExpression(node *parser.CallExpressionNode) objects.Object {
	callee := e.Eval(node.Callee)
	if IsError(callee) {
		return callee
	}

	args := make([]objects.Object, 0, len(node.Arguments))
	for _, argNode := range node.Arguments {
		arg := e.Eval(argNode)
		if IsError(arg) {
			return arg
		}
		args = append(args, arg)
	}

	callable, ok := callee.(objects.Callable)
	if !ok {
		return e.CreateError(node.Paren, "Can only call functions and classes.")
	}
	if len(args) != callable.Arity() {
		return e.CreateError(node.Paren, "Expected %d arguments but got %d.", callable.Arity(), len(args))
	}

	switch target := callable.(type) {
	case *function.Function:
		return e.callFunction(target, args)
	case *objects.Class:
		return objects.NewInstance(target)
	case *std.Builtin:
		return target.Callback(e.Writer, args...)
	default:
		return e.CreateError(node.Paren, "Can only call functions and classes.")
	}
}

// callFunction executes a user function: a fresh scope enclosing the
// function's captured closure, parameters bound to arguments, then the
// body. A return signal raised in the body is unwrapped here and becomes
// the call's value; falling off the end yields nil. The caller's scope is
// restored on every exit path.
func (e *Evaluator) callFunction(fn *function.Function, args []objects.Object) objects.Object {
	callScope := scope.NewScope(fn.Scp)
	for i, param := range fn.Params {
		callScope.Bind(param.Name, args[i])
	}

	previous := e.Scp
	e.Scp = callScope
	result := e.Eval(fn.Body)
	e.Scp = previous

	if IsError(result) {
		return result
	}
	if result != nil && result.GetType() == objects.ReturnType {
		return UnwrapReturnValue(result)
	}
	return &objects.Nil{}
}
