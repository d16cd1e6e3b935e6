/*
File    : notlox/std/common.go
Author  : CesGalaxy
Contact : github.com/CesGalaxy
*/
package std

// This file aliases the runtime value types into the std package so the
// builtin implementations read without package qualification.
import "github.com/CesGalaxy/notlox/objects"

type (
	// Object aliases the runtime value interface
	Object = objects.Object
	// Number aliases the numeric value type
	Number = objects.Number
	// String aliases the string value type
	String = objects.String
	// Error aliases the runtime-error signal type
	Error = objects.Error
)
