/*
File    : notlox/std/builtins.go
Author  : CesGalaxy
Contact : github.com/CesGalaxy
*/

// Package std defines the native builtin functions available to NotLox
// programs. The language's standard library is deliberately tiny: the
// whole surface is the clock builtin (plus the now snapshot constant the
// evaluator installs at construction). The registry pattern still matters:
// each file declares its builtins in a slice and registers them from
// init(), and the evaluator installs everything in Builtins into the
// globals scope.
package std

import (
	"io"

	"github.com/CesGalaxy/notlox/objects"
)

// CallbackFunc is the function signature for builtin implementations.
// It takes an io.Writer for output and the already-evaluated arguments,
// returning the builtin's result (or an *objects.Error on failure).
type CallbackFunc func(writer io.Writer, args ...objects.Object) objects.Object

// Builtin represents a native function with a name, a fixed arity and an
// implementation callback. Builtins are values: they live in the globals
// scope and flow through variables and calls like any function.
type Builtin struct {
	Name       string       // The name the builtin is bound to in globals
	ArityCount int          // Number of arguments the builtin requires
	Callback   CallbackFunc // The function implementing the behavior
}

// Builtins is the global registry of native functions. Each std file
// appends its builtins during package initialization; the evaluator binds
// every entry into the globals scope at construction.
var Builtins = make([]*Builtin, 0)

// Arity implements objects.Callable.
func (b *Builtin) Arity() int {
	return b.ArityCount
}

// GetType returns the type of the Builtin object
func (b *Builtin) GetType() objects.ObjectType {
	return objects.BuiltinType
}

// ToString returns the display form of the builtin value
func (b *Builtin) ToString() string {
	return "<native fn>"
}

// ToObject returns a detailed representation including the name
func (b *Builtin) ToObject() string {
	return "<native fn " + b.Name + ">"
}
