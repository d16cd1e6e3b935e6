/*
File    : notlox/interp/interp_test.go
Author  : CesGalaxy
Contact : github.com/CesGalaxy
*/
package interp

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestSession builds a session with both diagnostics and print output
// captured.
func newTestSession() (*Session, *bytes.Buffer, *bytes.Buffer) {
	session := NewSession()
	diagBuf := &bytes.Buffer{}
	outBuf := &bytes.Buffer{}
	session.Diag.Out = diagBuf
	session.Ev.SetWriter(outBuf)
	return session, diagBuf, outBuf
}

// TestSession_RunClean: a healthy program reports no flags and prints.
func TestSession_RunClean(t *testing.T) {
	session, diagBuf, outBuf := newTestSession()

	hadSyntaxError, hadRuntimeError := session.Run("print 1 + 2;")
	assert.False(t, hadSyntaxError)
	assert.False(t, hadRuntimeError)
	assert.Equal(t, "3\n", outBuf.String())
	assert.Zero(t, diagBuf.Len())
}

// TestSession_RunSyntaxError: parsing fails, nothing evaluates.
func TestSession_RunSyntaxError(t *testing.T) {
	session, diagBuf, outBuf := newTestSession()

	hadSyntaxError, hadRuntimeError := session.Run("print 1")
	assert.True(t, hadSyntaxError)
	assert.False(t, hadRuntimeError)
	assert.Contains(t, diagBuf.String(), "Error at end: Expect ';' after value.")
	assert.Zero(t, outBuf.Len(), "nothing may evaluate after a syntax error")
}

// TestSession_RunResolutionError: resolution failures halt before
// evaluation and count as the syntax flag.
func TestSession_RunResolutionError(t *testing.T) {
	session, diagBuf, outBuf := newTestSession()

	hadSyntaxError, hadRuntimeError := session.Run("print 1;\nreturn 2;")
	assert.True(t, hadSyntaxError)
	assert.False(t, hadRuntimeError)
	assert.Contains(t, diagBuf.String(), "Can't return from top-level code.")
	assert.Zero(t, outBuf.Len(), "nothing may evaluate after a resolution error")
}

// TestSession_RunRuntimeError: evaluation fails; the diagnostic uses the
// runtime format and the statements before the failure did run.
func TestSession_RunRuntimeError(t *testing.T) {
	session, diagBuf, outBuf := newTestSession()

	hadSyntaxError, hadRuntimeError := session.Run("print 1;\nprint 2 + nil;")
	assert.False(t, hadSyntaxError)
	assert.True(t, hadRuntimeError)
	assert.Equal(t, "1\n", outBuf.String())
	assert.Equal(t, "Operands must be two numbers or two strings.\n[line 2]\n", diagBuf.String())
}

// TestSession_StatePersistsAcrossRuns: globals and resolved locals
// accumulate, which is what the REPL relies on.
func TestSession_StatePersistsAcrossRuns(t *testing.T) {
	session, diagBuf, outBuf := newTestSession()

	_, _ = session.Run("var count = 1;")
	_, _ = session.Run("fun bump() { count = count + 1; }")
	_, _ = session.Run("bump(); bump();")
	hadSyntaxError, hadRuntimeError := session.Run("print count;")

	require.False(t, hadSyntaxError, "diagnostics: %s", diagBuf.String())
	require.False(t, hadRuntimeError, "diagnostics: %s", diagBuf.String())
	assert.Equal(t, "3\n", outBuf.String())
}

// TestSession_RecoversAfterBadLine: a syntax error in one run does not
// poison the next once the flag is reset, mirroring the REPL loop.
func TestSession_RecoversAfterBadLine(t *testing.T) {
	session, _, outBuf := newTestSession()

	hadSyntaxError, _ := session.Run("var broken = ;")
	assert.True(t, hadSyntaxError)
	session.Diag.Reset()

	hadSyntaxError, hadRuntimeError := session.Run("print 42;")
	assert.False(t, hadSyntaxError)
	assert.False(t, hadRuntimeError)
	assert.Equal(t, "42\n", outBuf.String())
}
