// ==============================================================================================
// FILE: cmd/glade/cmd/tokens.go
// PACKAGE: cmd
// PURPOSE: `glade tokens` — tokenize a script and print the resulting
//          token stream, for debugging the lexer.
// ==============================================================================================

package cmd

import (
	"fmt"
	"os"

	"github.com/glade-lang/glade/lexer"
	"github.com/glade-lang/glade/token"
	"github.com/spf13/cobra"
)

var tokensEval string

var tokensCmd = &cobra.Command{
	Use:   "tokens [file]",
	Short: "Tokenize a Glade file or expression",
	Long:  `Tokenize a Glade program and print the resulting tokens, one per line.`,
	Args:  cobra.MaximumNArgs(1),
	RunE:  runTokens,
}

func init() {
	rootCmd.AddCommand(tokensCmd)
	tokensCmd.Flags().StringVarP(&tokensEval, "eval", "e", "", "tokenize inline code instead of reading from a file")
}

func runTokens(_ *cobra.Command, args []string) error {
	var source string
	switch {
	case tokensEval != "":
		source = tokensEval
	case len(args) == 1:
		data, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("failed to read file %s: %w", args[0], err)
		}
		source = string(data)
	default:
		return fmt.Errorf("either provide a file path or use -e for inline code")
	}

	l := lexer.New(source)
	for tok := l.NextToken(); ; tok = l.NextToken() {
		fmt.Printf("%-15s %q\n", tok.Type, tok.Literal)
		if tok.Type == token.EOF {
			break
		}
	}
	return nil
}
