/*
File    : notlox/file/file.go
Author  : CesGalaxy
Contact : github.com/CesGalaxy
*/

// Package file implements file mode: read a script, run it through a
// fresh interpreter session, and map the outcome to the process exit
// code.
package file

import (
	"os"

	"github.com/fatih/color"

	"github.com/CesGalaxy/notlox/interp"
)

// Exit codes follow the sysexits convention the CLI promises.
const (
	ExitOK           = 0  // Clean run
	ExitUsage        = 64 // CLI misuse, including unreadable script files
	ExitSyntaxError  = 65 // Scanner, parser or resolver error
	ExitRuntimeError = 70 // Evaluation failed
)

var redColor = color.New(color.FgRed)

// RunFile interprets the script at the given path and returns the exit
// code for the process. All diagnostics have already been written to
// stderr by the time it returns.
//
// Parameters:
//   - path: Filesystem path of the script to run
//
// Returns:
//   - int: ExitOK, ExitUsage, ExitSyntaxError or ExitRuntimeError
func RunFile(path string) int {
	data, err := os.ReadFile(path)
	if err != nil {
		redColor.Fprintf(os.Stderr, "Could not read script %q: %v\n", path, err)
		return ExitUsage
	}

	session := interp.NewSession()
	hadSyntaxError, hadRuntimeError := session.Run(string(data))
	if hadSyntaxError {
		return ExitSyntaxError
	}
	if hadRuntimeError {
		return ExitRuntimeError
	}
	return ExitOK
}
