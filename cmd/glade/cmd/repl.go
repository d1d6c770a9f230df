// ==============================================================================================
// FILE: cmd/glade/cmd/repl.go
// PACKAGE: cmd
// PURPOSE: `glade repl` — launch the interactive Read-Eval-Print Loop.
// ==============================================================================================

package cmd

import (
	"os"

	"github.com/glade-lang/glade/repl"
	"github.com/spf13/cobra"
)

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Start an interactive Glade session",
	Run: func(cmd *cobra.Command, args []string) {
		repl.Start(os.Stdin, os.Stdout)
	},
}

func init() {
	rootCmd.AddCommand(replCmd)
}
