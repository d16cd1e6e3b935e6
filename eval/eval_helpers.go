/*
File    : notlox/eval/eval_helpers.go
Author  : CesGalaxy
Contact : github.com/CesGalaxy
*/
package eval

import (
	"fmt"

	"github.com/CesGalaxy/notlox/lexer"
	"github.com/CesGalaxy/notlox/objects"
	"github.com/CesGalaxy/notlox/parser"
)

// IsError checks if an object is a runtime error travelling upward.
// Detecting it early lets every evaluation step stop and propagate
// instead of operating on a failure.
//
// Parameters:
//   - obj: The object to check (can be nil)
//
// Returns:
//   - bool: true if the object is non-nil and has type ErrorType
func IsError(obj objects.Object) bool {
	if obj != nil {
		return obj.GetType() == objects.ErrorType
	}
	return false
}

// UnwrapReturnValue extracts the value from a travelling ReturnValue.
// Called exactly at the function-call boundary: a return inside the body
// ends the call with its value, while the signal itself must not leak
// further up.
func UnwrapReturnValue(obj objects.Object) objects.Object {
	if ret, ok := obj.(*objects.ReturnValue); ok {
		return ret.Value
	}
	return obj
}

// CreateError builds a runtime error located at the given token's line.
func (e *Evaluator) CreateError(token lexer.Token, format string, args ...any) *objects.Error {
	return &objects.Error{
		Message: fmt.Sprintf(format, args...),
		Line:    token.Line,
	}
}

// lookupVariable reads a variable through the resolver's table: resolved
// references go straight to the scope at the recorded distance, and
// everything else is a globals lookup. A miss in globals is the runtime's
// undefined-variable error; a miss at a resolved distance would be a
// resolver bug and surfaces as the same error.
func (e *Evaluator) lookupVariable(name string, token lexer.Token, expr parser.ExpressionNode) objects.Object {
	if distance, ok := e.Locals[expr]; ok {
		if value, found := e.Scp.GetAt(distance, name); found {
			return value
		}
	} else if value, found := e.Globals.LookUp(name); found {
		return value
	}
	return e.CreateError(token, "Undefined variable '%s'.", name)
}
