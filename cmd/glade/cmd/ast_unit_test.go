// ==============================================================================================
// FILE: cmd/glade/cmd/ast_unit_test.go
// PURPOSE: Unit tests for the `glade ast` command handler.
// ==============================================================================================

package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunASTPrintsParsedTree(t *testing.T) {
	astEval = "1 + 2"
	defer func() { astEval = "" }()

	out := captureStdout(t, func() {
		err := runAST(nil, nil)
		require.NoError(t, err)
	})
	assert.Contains(t, out, "(1 + 2)")
}

func TestRunASTReportsParseErrors(t *testing.T) {
	astEval = "def (:"
	defer func() { astEval = "" }()

	err := runAST(nil, nil)
	assert.Error(t, err)
}
