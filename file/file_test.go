/*
File    : notlox/file/file_test.go
Author  : CesGalaxy
Contact : github.com/CesGalaxy
*/
package file

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeScript drops a script into a temp dir and returns its path.
func writeScript(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "script.lox")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

// TestRunFile_ExitCodes maps each outcome to its exit code.
func TestRunFile_ExitCodes(t *testing.T) {
	tests := []struct {
		name     string
		contents string
		expected int
	}{
		{"clean", `print 1 + 2;`, ExitOK},
		{"syntax error", `print 1`, ExitSyntaxError},
		{"resolution error", `return 1;`, ExitSyntaxError},
		{"runtime error", `print 1 + "a";`, ExitRuntimeError},
		{"empty script", ``, ExitOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeScript(t, tt.contents)
			assert.Equal(t, tt.expected, RunFile(path))
		})
	}
}

// TestRunFile_MissingFile is CLI misuse, not a script error.
func TestRunFile_MissingFile(t *testing.T) {
	assert.Equal(t, ExitUsage, RunFile(filepath.Join(t.TempDir(), "nope.lox")))
}
