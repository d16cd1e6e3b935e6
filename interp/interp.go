/*
File    : notlox/interp/interp.go
Author  : CesGalaxy
Contact : github.com/CesGalaxy
*/

// Package interp ties the pipeline stages together into a Session: one
// evaluator plus one diagnostics session, fed source text one run at a
// time. The REPL calls Run once per line against a single Session so
// state accumulates; file mode calls it once for the whole script.
package interp

import (
	"github.com/CesGalaxy/notlox/diag"
	"github.com/CesGalaxy/notlox/eval"
	"github.com/CesGalaxy/notlox/objects"
	"github.com/CesGalaxy/notlox/parser"
	"github.com/CesGalaxy/notlox/resolver"
)

// Session is a live interpreter: globals, builtins and resolved locals
// persist across Run calls.
type Session struct {
	Diag *diag.Session   // Diagnostics shared by all stages
	Ev   *eval.Evaluator // The evaluator carrying all runtime state
}

// NewSession creates a fresh interpreter session with default wiring
// (diagnostics to stderr, print output to stdout).
func NewSession() *Session {
	return &Session{
		Diag: diag.NewSession(),
		Ev:   eval.NewEvaluator(),
	}
}

// Run executes one chunk of source through the full pipeline: parse,
// resolve, evaluate. The stages are strictly ordered and each one halts
// the pipeline when diagnostics accumulated: a file with syntax errors is
// never resolved, and a file with resolution errors is never evaluated.
//
// Returns:
//   - hadSyntaxError: the session's syntax-error flag is set, i.e. a
//     scanner, parser or resolver diagnostic was reported during this run
//     or an earlier one since the last Diag.Reset
//   - hadRuntimeError: evaluation failed; the diagnostic has already been
//     reported through the session
func (s *Session) Run(source string) (hadSyntaxError bool, hadRuntimeError bool) {
	par := parser.NewParser(source, s.Diag)
	root := par.Parse()
	if s.Diag.HadError {
		return true, false
	}

	res := resolver.NewResolver(s.Diag)
	locals := res.Resolve(root)
	if s.Diag.HadError {
		return true, false
	}
	s.Ev.AddLocals(locals)

	result := s.Ev.Eval(root)
	if err, ok := result.(*objects.Error); ok {
		s.Diag.RuntimeError(err.Line, err.Message)
		return false, true
	}
	return false, false
}
