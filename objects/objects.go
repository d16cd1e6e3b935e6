/*
File    : notlox/objects/objects.go
Author  : CesGalaxy
Contact : github.com/CesGalaxy
*/

// Package objects defines the runtime value model of the NotLox language.
// It provides the primitive values (nil, booleans, numbers, strings), the
// class/instance pair, and the two signal objects the evaluator threads
// through statement evaluation: Error (a runtime failure carrying the
// offending line) and ReturnValue (a non-local exit from a function body).
// All values implement the Object interface, which allows for type
// checking, display stringification, and object inspection.
package objects

import (
	"fmt"
	"strconv"
)

// ObjectType represents the type of a NotLox object as a string constant.
// These constants identify the type of values at runtime, enabling type
// checks and dispatch across the evaluator.
type ObjectType string

const (
	// NilType represents the nil value
	NilType ObjectType = "nil"
	// BooleanType represents boolean (true/false) values
	BooleanType ObjectType = "bool"
	// NumberType represents 64-bit floating-point values
	NumberType ObjectType = "number"
	// StringType represents string values
	StringType ObjectType = "string"

	// FunctionType represents user-defined function values (defined in
	// the function package)
	FunctionType ObjectType = "func"
	// BuiltinType represents native builtin functions
	BuiltinType ObjectType = "builtin"
	// ClassType represents class values
	ClassType ObjectType = "class"
	// InstanceType represents instances of classes
	InstanceType ObjectType = "instance"

	// ErrorType represents a runtime error being propagated
	ErrorType ObjectType = "error"
	// ReturnType represents a return value travelling out of a function
	ReturnType ObjectType = "return"
)

// Object is the core interface that all NotLox values implement.
// It provides methods for type identification, display stringification,
// and inspection.
type Object interface {
	// GetType returns the ObjectType of the value, used for type checking
	GetType() ObjectType
	// ToString returns the value as the language displays it (print)
	ToString() string
	// ToObject returns a detailed representation including type
	// information, useful for debugging and inspection
	ToObject() string
}

// Callable is implemented by every value that supports invocation: user
// functions, classes, and native builtins. The call itself is dispatched
// by the evaluator, which knows each variant; Arity is what the call site
// checks before dispatching.
type Callable interface {
	Object
	Arity() int
}

// Nil represents the nil value.
type Nil struct{}

// GetType returns the type of the Nil object
func (n *Nil) GetType() ObjectType {
	return NilType
}

// ToString returns "nil"
func (n *Nil) ToString() string {
	return "nil"
}

// ToObject returns a detailed representation including type info
func (n *Nil) ToObject() string {
	return "<nil>"
}

// Boolean represents a true/false value in NotLox.
type Boolean struct {
	Value bool // The underlying boolean value
}

// GetType returns the type of the Boolean object
func (b *Boolean) GetType() ObjectType {
	return BooleanType
}

// ToString returns "true" or "false"
func (b *Boolean) ToString() string {
	if b.Value {
		return "true"
	}
	return "false"
}

// ToObject returns a detailed representation including type info
func (b *Boolean) ToObject() string {
	return fmt.Sprintf("<bool(%t)>", b.Value)
}

// Number represents a 64-bit floating-point value in NotLox. All numeric
// literals and arithmetic results carry this type; there is no separate
// integer type.
type Number struct {
	Value float64 // The underlying floating-point value
}

// GetType returns the type of the Number object
func (n *Number) GetType() ObjectType {
	return NumberType
}

// ToString returns the shortest decimal representation of the value. An
// integral value prints without a fractional part ("3", never "3.0").
func (n *Number) ToString() string {
	return strconv.FormatFloat(n.Value, 'f', -1, 64)
}

// ToObject returns a detailed representation including type info
func (n *Number) ToObject() string {
	return fmt.Sprintf("<number(%s)>", n.ToString())
}

// String represents a string value in NotLox.
type String struct {
	Value string // The underlying string value
}

// GetType returns the type of the String object
func (s *String) GetType() ObjectType {
	return StringType
}

// ToString returns the string content without quotes
func (s *String) ToString() string {
	return s.Value
}

// ToObject returns a detailed representation including type info
func (s *String) ToObject() string {
	return fmt.Sprintf("<string(%q)>", s.Value)
}

// Error represents a runtime error in flight. It is created where the
// failure is detected and threaded up through every evaluation step until
// the driver reports it. Line is the source line of the offending token.
type Error struct {
	Message string // Human-readable failure description
	Line    int    // 1-based line of the offending token
}

// GetType returns the type of the Error object
func (e *Error) GetType() ObjectType {
	return ErrorType
}

// ToString returns the error message
func (e *Error) ToString() string {
	return e.Message
}

// ToObject returns a detailed representation including the line
func (e *Error) ToObject() string {
	return fmt.Sprintf("<error(%q @%d)>", e.Message, e.Line)
}

// ReturnValue wraps a value travelling out of a function body. It is not
// an error: statement evaluation stops and passes it upward until the
// function-call boundary unwraps it.
type ReturnValue struct {
	Value Object // The value being returned
}

// GetType returns the type of the ReturnValue object
func (r *ReturnValue) GetType() ObjectType {
	return ReturnType
}

// ToString returns the wrapped value's string form
func (r *ReturnValue) ToString() string {
	return r.Value.ToString()
}

// ToObject returns a detailed representation including type info
func (r *ReturnValue) ToObject() string {
	return fmt.Sprintf("<return(%s)>", r.Value.ToObject())
}

// IsTruthy reports whether a value counts as true in conditions and
// logical operators: nil and false are falsy, everything else (including
// 0 and "") is truthy.
func IsTruthy(obj Object) bool {
	switch v := obj.(type) {
	case *Nil:
		return false
	case *Boolean:
		return v.Value
	default:
		return obj != nil
	}
}

// IsEqual implements the language's equality: nil equals only nil, values
// of different types are never equal, and values of the same type compare
// structurally. Number comparison inherits IEEE semantics, so NaN is not
// equal to itself.
func IsEqual(a, b Object) bool {
	switch left := a.(type) {
	case *Nil:
		_, ok := b.(*Nil)
		return ok
	case *Boolean:
		right, ok := b.(*Boolean)
		return ok && left.Value == right.Value
	case *Number:
		right, ok := b.(*Number)
		return ok && left.Value == right.Value
	case *String:
		right, ok := b.(*String)
		return ok && left.Value == right.Value
	default:
		// Functions, classes and instances compare by identity
		return a == b
	}
}
