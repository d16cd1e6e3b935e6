/*
File    : notlox/diag/diag.go
Author  : CesGalaxy
Contact : github.com/CesGalaxy
*/

// Package diag implements the diagnostics session shared by every stage of
// the NotLox pipeline (lexer, parser, resolver, evaluator).
//
// Instead of process-wide mutable flags, a Session value is threaded through
// the stages. It records whether a syntax/resolution error or a runtime
// error occurred, and formats every diagnostic through a single reporter so
// the textual contract stays in one place:
//
//	[line N] Error<where>: <message>    (scanner, parser, resolver)
//	<message>                           (runtime errors, followed by)
//	[line N]
package diag

import (
	"fmt"
	"io"
	"os"
)

// Reporter receives a formatted-ready diagnostic. The default reporter
// writes to the session's Out writer; tests and embedders may install
// their own to capture diagnostics instead.
type Reporter func(line int, where string, message string)

// Session accumulates error state for one interpreter session.
//
// Fields:
//   - Out: destination for diagnostic text (default: os.Stderr)
//   - Report: reporter callback invoked for every syntax/resolution
//     diagnostic; when nil, the session's default reporter is used
//   - HadError: set once any syntax or resolution error is reported
//   - HadRuntimeError: set once any runtime error is reported
type Session struct {
	Out             io.Writer
	Report          Reporter
	HadError        bool
	HadRuntimeError bool
}

// NewSession creates a diagnostics session writing to os.Stderr.
func NewSession() *Session {
	return &Session{Out: os.Stderr}
}

// Error reports a scanner-level diagnostic, which carries no token and
// therefore no location suffix.
//
// Example output:
//
//	[line 3] Error: Unexpected character.
func (s *Session) Error(line int, message string) {
	s.ErrorAt(line, "", message)
}

// ErrorAt reports a syntax or resolution diagnostic. The where string is
// the preformatted location suffix: "" for scanner errors, " at end" for
// the EOF token, or " at 'lexeme'" for any other token. Callers build the
// suffix so this package stays independent of the token types.
func (s *Session) ErrorAt(line int, where string, message string) {
	s.HadError = true
	if s.Report != nil {
		s.Report(line, where, message)
		return
	}
	fmt.Fprintf(s.writer(), "[line %d] Error%s: %s\n", line, where, message)
}

// RuntimeError reports an evaluation-time failure. Runtime errors use a
// different shape from static ones: message first, offending line second.
func (s *Session) RuntimeError(line int, message string) {
	s.HadRuntimeError = true
	fmt.Fprintf(s.writer(), "%s\n[line %d]\n", message, line)
}

// Reset clears the syntax-error flag. The REPL calls this between lines so
// one bad line does not poison the next prompt. The runtime-error flag is
// deliberately left alone: file mode inspects it after the whole run.
func (s *Session) Reset() {
	s.HadError = false
}

func (s *Session) writer() io.Writer {
	if s.Out != nil {
		return s.Out
	}
	return os.Stderr
}
