/*
File    : notlox/std/time.go
Author  : CesGalaxy
Contact : github.com/CesGalaxy
*/

// Package std - time.go
// This file defines the time builtins for the NotLox language.
package std

import (
	"io"
	"time"
)

var timeMethods = []*Builtin{
	{Name: "clock", ArityCount: 0, Callback: clock}, // Wall-clock seconds as a number
}

// init registers the time methods as global builtins.
func init() {
	Builtins = append(Builtins, timeMethods...)
}

// clock returns the current wall-clock time in seconds as a number.
// Fractional seconds are preserved, so two clock() calls can time
// sub-second work.
//
// Syntax: clock()
//
// Example:
//
//	var start = clock();
//	// ... work ...
//	print clock() - start;
func clock(writer io.Writer, args ...Object) Object {
	return &Number{Value: float64(time.Now().UnixNano()) / 1e9}
}

// NowSnapshot returns the current Unix time in seconds as a number value.
// The evaluator installs this once at construction under the global name
// "now", so scripts see the moment their interpreter was created.
func NowSnapshot() *Number {
	return &Number{Value: float64(time.Now().Unix())}
}
