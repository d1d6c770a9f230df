// ==============================================================================================
// FILE: cmd/glade/cmd/run.go
// PACKAGE: cmd
// PURPOSE: `glade run` — execute a script file or an inline expression.
// ==============================================================================================

package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/glade-lang/glade/interp"
	"github.com/spf13/cobra"
)

var evalExpr string

var runCmd = &cobra.Command{
	Use:   "run [file]",
	Short: "Run a Glade script",
	Long: `Execute a Glade program from a file or an inline expression.

Examples:
  glade run script.glade
  glade run -e "print(1 + 2)"`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScript,
}

func init() {
	rootCmd.AddCommand(runCmd)
	runCmd.Flags().StringVarP(&evalExpr, "eval", "e", "", "evaluate inline code instead of reading from a file")
}

func runScript(_ *cobra.Command, args []string) error {
	var source string
	switch {
	case evalExpr != "":
		source = evalExpr
	case len(args) == 1:
		data, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("failed to read file %s: %w", args[0], err)
		}
		source = string(data)
	default:
		return fmt.Errorf("either provide a file path or use -e for inline code")
	}

	log := verboseLogger()
	log.Debug("running script", "bytes", len(source))

	it := interp.New()
	start := time.Now()
	result, err := it.Run(source)
	log.Debug("run finished", "elapsed", time.Since(start), "error", err != nil)
	if err != nil {
		return err
	}
	if verbose && !result.IsNone() {
		fmt.Println(result.String())
	}
	return nil
}

// verboseLogger returns a text logger on stderr at Debug level when
// --verbose is set and at Info level otherwise, so Debug records are only
// emitted under --verbose.
func verboseLogger() *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}
