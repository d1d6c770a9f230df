// ==============================================================================================
// FILE: cmd/glade/cmd/ast.go
// PACKAGE: cmd
// PURPOSE: `glade ast` — parse a script and print its AST, for debugging
//          the parser.
// ==============================================================================================

package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/glade-lang/glade/lexer"
	"github.com/glade-lang/glade/parser"
	"github.com/spf13/cobra"
)

var astEval string

var astCmd = &cobra.Command{
	Use:   "ast [file]",
	Short: "Parse Glade source and print the AST",
	Long:  `Parse a Glade program and print its Abstract Syntax Tree. Reads from stdin if no file is given.`,
	Args:  cobra.MaximumNArgs(1),
	RunE:  runAST,
}

func init() {
	rootCmd.AddCommand(astCmd)
	astCmd.Flags().StringVarP(&astEval, "eval", "e", "", "parse inline code instead of reading from a file")
}

func runAST(_ *cobra.Command, args []string) error {
	var source string
	switch {
	case astEval != "":
		source = astEval
	case len(args) == 1:
		data, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("failed to read file %s: %w", args[0], err)
		}
		source = string(data)
	default:
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return fmt.Errorf("failed to read stdin: %w", err)
		}
		source = string(data)
	}

	l := lexer.New(source)
	p := parser.New(l)
	program := p.ParseProgram()
	if errs := p.Errors(); len(errs) > 0 {
		for _, e := range errs {
			fmt.Fprintln(os.Stderr, e)
		}
		return fmt.Errorf("parsing failed with %d error(s)", len(errs))
	}
	fmt.Println(program.String())
	return nil
}
