// ==============================================================================================
// FILE: cmd/glade/cmd/root_unit_test.go
// PURPOSE: Unit tests for command registration and the `glade version` subcommand.
// ==============================================================================================

package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCommandRegistersAllSubcommands(t *testing.T) {
	names := make(map[string]bool)
	for _, c := range rootCmd.Commands() {
		names[c.Name()] = true
	}
	for _, want := range []string{"run", "tokens", "ast", "version", "repl"} {
		assert.True(t, names[want], "expected %q to be registered", want)
	}
}

func TestExecuteRunsRootCommand(t *testing.T) {
	rootCmd.SetArgs([]string{"version"})
	out := captureStdout(t, func() {
		require.NoError(t, Execute())
	})
	assert.Contains(t, out, Version)
}
