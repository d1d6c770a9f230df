// ==============================================================================================
// FILE: cmd/glade/cmd/root.go
// PACKAGE: cmd
// PURPOSE: The cobra root command and shared global flags.
// ==============================================================================================

package cmd

import (
	"github.com/spf13/cobra"
)

var (
	// Version is set by build flags; left as a plain default for dev builds.
	Version = "0.1.0-dev"

	verbose bool
)

var rootCmd = &cobra.Command{
	Use:     "glade",
	Short:   "Glade interpreter",
	Long:    `glade is the reference interpreter for the Glade scripting language: a tree-walking lexer, parser, and evaluator exposed as a single CLI.`,
	Version: Version,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}
