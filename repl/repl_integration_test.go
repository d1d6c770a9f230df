// ==============================================================================================
// FILE: repl/repl_integration_test.go
// PURPOSE: Integration tests driving Start() end to end through an in-memory
//          input/output pair, the way a real terminal session would.
// ==============================================================================================

package repl

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func runSession(input string) string {
	in := strings.NewReader(input)
	out := &bytes.Buffer{}
	Start(in, out)
	return out.String()
}

func TestSessionEvaluatesExpressionAndPrintsResult(t *testing.T) {
	output := runSession("1 + 2\n.exit\n")
	assert.Contains(t, output, "3")
}

func TestSessionPersistsVariablesAcrossLines(t *testing.T) {
	output := runSession("x = 10\nx + 5\n.exit\n")
	assert.Contains(t, output, "15")
}

func TestSessionClearCommandResetsEnvironment(t *testing.T) {
	output := runSession("x = 10\n.clear\nx\n.exit\n")
	assert.Contains(t, output, "NameError")
}

func TestSessionBuffersMultiLineBlock(t *testing.T) {
	output := runSession("if True:\n    42\n\n.exit\n")
	assert.Contains(t, output, "42")
}

func TestSessionReportsParserErrors(t *testing.T) {
	output := runSession("1 +\n.exit\n")
	assert.Contains(t, output, "Parser Errors")
}
