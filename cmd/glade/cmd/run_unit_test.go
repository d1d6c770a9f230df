// ==============================================================================================
// FILE: cmd/glade/cmd/run_unit_test.go
// PURPOSE: Unit tests for the `glade run` and `glade tokens` command handlers.
// ==============================================================================================

package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// captureStdout redirects os.Stdout for the duration of fn and returns what it wrote.
func captureStdout(t *testing.T, fn func()) string {
	t.Helper()
	old := os.Stdout
	r, w, err := os.Pipe()
	require.NoError(t, err)
	os.Stdout = w

	fn()

	require.NoError(t, w.Close())
	os.Stdout = old

	buf := make([]byte, 1<<16)
	n, _ := r.Read(buf)
	require.NoError(t, r.Close())
	return string(buf[:n])
}

func TestRunScriptEvaluatesInlineExpression(t *testing.T) {
	evalExpr = "1 + 2"
	defer func() { evalExpr = "" }()
	verbose = true
	defer func() { verbose = false }()

	out := captureStdout(t, func() {
		err := runScript(nil, nil)
		require.NoError(t, err)
	})
	assert.Contains(t, out, "3")
}

func TestRunScriptReadsFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "script.glade")
	require.NoError(t, os.WriteFile(path, []byte("x = 10\n"), 0o644))

	evalExpr = ""
	err := runScript(nil, []string{path})
	require.NoError(t, err)
}

func TestRunScriptErrorsWithoutFileOrExpr(t *testing.T) {
	evalExpr = ""
	err := runScript(nil, nil)
	assert.Error(t, err)
}

func TestRunScriptErrorsOnMissingFile(t *testing.T) {
	evalExpr = ""
	err := runScript(nil, []string{filepath.Join(t.TempDir(), "missing.glade")})
	assert.Error(t, err)
}

func TestRunTokensPrintsTokenStream(t *testing.T) {
	tokensEval = "1 + 2"
	defer func() { tokensEval = "" }()

	out := captureStdout(t, func() {
		err := runTokens(nil, nil)
		require.NoError(t, err)
	})
	assert.Contains(t, out, "INT")
	assert.Contains(t, out, "+")
	assert.Contains(t, out, "EOF")
}
