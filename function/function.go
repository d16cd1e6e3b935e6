/*
File    : notlox/function/function.go
Author  : CesGalaxy
Contact : github.com/CesGalaxy
*/
package function

import (
	"fmt"

	"github.com/CesGalaxy/notlox/objects"
	"github.com/CesGalaxy/notlox/parser"
	"github.com/CesGalaxy/notlox/scope"
)

// Function represents a user-defined function value in NotLox. It
// captures the function's name, parameters, body, and the scope in which
// it was defined (for closure support).
//
// Fields:
//   - Name: The name of the function as declared in the source code.
//   - Params: The parameter identifier nodes from the declaration. These
//     are bound to argument values when the function is called.
//   - Body: The body statement (usually a block) evaluated on invocation.
//   - Scp: The scope in which the function value was created. This is the
//     exact live scope instance, not a copy: the closure observes later
//     assignments to captured variables, and sibling closures created in
//     the same scope share it.
type Function struct {
	Name   string                             // Name of the function
	Params []*parser.IdentifierExpressionNode // Function parameter names
	Body   parser.StatementNode               // Function body statement
	Scp    *scope.Scope                       // Captured scope for closures
}

// New creates a function value from its declaration node, capturing the
// given scope as the closure environment.
func New(decl *parser.FunctionStatementNode, scp *scope.Scope) *Function {
	return &Function{
		Name:   decl.Name.Lexeme,
		Params: decl.Params,
		Body:   decl.Body,
		Scp:    scp,
	}
}

// Arity implements objects.Callable: the number of declared parameters.
func (f *Function) Arity() int {
	return len(f.Params)
}

// GetName returns the function's declared name. Implements the method
// surface classes store their methods behind.
func (f *Function) GetName() string {
	return f.Name
}

// Bind produces the bound-method form of this function for the given
// instance: a copy whose closure is a fresh scope enclosing the original
// closure, with "this" defined to the instance. Each property access that
// finds a method produces a new bound function, so extracted methods keep
// their receiver.
func (f *Function) Bind(instance objects.Object) *Function {
	thisScope := scope.NewScope(f.Scp)
	thisScope.Bind("this", instance)
	return &Function{
		Name:   f.Name,
		Params: f.Params,
		Body:   f.Body,
		Scp:    thisScope,
	}
}

// GetType returns the type identifier for this Function object.
// This implements the objects.Object interface.
func (f *Function) GetType() objects.ObjectType {
	return objects.FunctionType
}

// ToString returns the display form of the function value.
func (f *Function) ToString() string {
	return fmt.Sprintf("<fn %s>", f.Name)
}

// ToObject returns a detailed representation including the parameters.
func (f *Function) ToObject() string {
	params := ""
	for i, p := range f.Params {
		if i > 0 {
			params += ", "
		}
		params += p.Name
	}
	return fmt.Sprintf("<func %s(%s)>", f.Name, params)
}
