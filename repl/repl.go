// ==============================================================================================
// FILE: repl/repl.go
// ==============================================================================================
// PACKAGE: repl
// PURPOSE: The Read-Eval-Print Loop interface.
//          It connects the user input stream to the compiler pipeline (Lexer->Parser->Evaluator)
//          and manages the persistent session state.
// ==============================================================================================

package repl

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/glade-lang/glade/evaluator"
	"github.com/glade-lang/glade/lexer"
	"github.com/glade-lang/glade/object"
	"github.com/glade-lang/glade/parser"
	"github.com/glade-lang/glade/token"
)

// ----------------------------------------------------------------------------
// UI CONSTANTS & CONFIGURATION
// ----------------------------------------------------------------------------

const LOGO = `
┏━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━┓
┃   ____ _           _                               ┃
┃  / ___| | __ _  __| | ___                          ┃
┃ | |  _| |/ _` + "`" + ` |/ _` + "`" + ` |/ _ \                         ┃
┃ | |_| | | (_| | (_| |  __/                         ┃
┃  \____|_|\__,_|\__,_|\___|                         ┃
┃                                                    ┃
┃ The Glade Language                                 ┃
┗━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━┛
`

// ANSI Color Codes for terminal output
const (
	Reset  = "\033[0m"
	Red    = "\033[31m"
	Green  = "\033[32m"
	Yellow = "\033[33m"
	Blue   = "\033[34m"
	Purple = "\033[35m"
	Cyan   = "\033[36m"
	Gray   = "\033[37m"
	Bold   = "\033[1m"
)

// ----------------------------------------------------------------------------
// REPL LOGIC
// ----------------------------------------------------------------------------

// Start launches the Read-Eval-Print Loop.
// It listens to 'in', evaluates code, and writes results to 'out'.
// The env persists across the session so names defined on one line are
// visible to the next.
func Start(in io.Reader, out io.Writer) {
	cfg, cfgErr := loadConfig(".glade.yaml")
	color := *cfg.Color

	scanner := bufio.NewScanner(in)
	env := evaluator.NewGlobalEnv()
	debugMode := false

	fmt.Fprint(out, LOGO)
	if cfgErr != nil {
		fmt.Fprintf(out, paint(color, Red, "warning: .glade.yaml: %s\n"), cfgErr)
	}
	printHelp(out, color)

	var pending []string

	for {
		prompt := cfg.Prompt
		if len(pending) > 0 {
			prompt = "... "
		}
		fmt.Fprint(out, paint(color, Cyan, prompt))

		scanned := scanner.Scan()
		if !scanned {
			return
		}
		line := scanner.Text()

		if len(pending) == 0 {
			trimmed := strings.TrimSpace(line)
			if trimmed == "" {
				continue
			}
			if strings.HasPrefix(trimmed, ".") {
				if handled, shouldExit := handleCommand(trimmed, out, color, &env, &debugMode); handled {
					if shouldExit {
						return
					}
					continue
				}
			}
		}

		pending = append(pending, line)
		if stillOpen(pending) {
			continue
		}

		source := strings.Join(pending, "\n")
		pending = nil

		if debugMode {
			printTokens(out, source, color)
		}

		l := lexer.New(source)
		p := parser.New(l)
		program := p.ParseProgram()

		if len(p.Errors()) != 0 {
			printParserErrors(out, p.Errors(), color)
			continue
		}

		if debugMode {
			printAST(out, program, color)
		}

		result, err := evaluator.Run(program, env)
		if err != nil {
			fmt.Fprintf(out, paint(color, Red, Bold+"error: "+Reset+Red+"%s\n"), err)
			continue
		}
		printEvalResult(out, result, color)
	}
}

// stillOpen reports whether the accumulated lines form an incomplete
// logical unit: an open bracket spanning lines, or a block header (ending
// in `:`) whose indented body hasn't been closed with a blank line yet.
func stillOpen(lines []string) bool {
	if bracketDepth(lines) > 0 {
		return true
	}
	last := strings.TrimRight(lines[len(lines)-1], " \t")
	if strings.HasSuffix(last, ":") {
		return true
	}
	if len(lines) > 1 {
		prevIndented := false
		for _, l := range lines[1:] {
			if strings.TrimSpace(l) != "" && (strings.HasPrefix(l, " ") || strings.HasPrefix(l, "\t")) {
				prevIndented = true
			}
		}
		if prevIndented && strings.TrimSpace(lines[len(lines)-1]) != "" {
			return true
		}
	}
	return false
}

func bracketDepth(lines []string) int {
	depth := 0
	for _, l := range lines {
		for _, c := range l {
			switch c {
			case '(', '[', '{':
				depth++
			case ')', ']', '}':
				depth--
			}
		}
	}
	return depth
}

func handleCommand(line string, out io.Writer, color bool, env **object.Environment, debugMode *bool) (handled, exit bool) {
	switch line {
	case ".exit":
		fmt.Fprintln(out, paint(color, Yellow, "Goodbye!"))
		return true, true
	case ".clear":
		*env = evaluator.NewGlobalEnv()
		fmt.Fprintln(out, paint(color, Green, "Environment cleared (memory reset)."))
		return true, false
	case ".debug":
		*debugMode = !*debugMode
		status := "DISABLED"
		if *debugMode {
			status = "ENABLED"
		}
		fmt.Fprintf(out, paint(color, Gray, "Debug mode %s\n"), status)
		return true, false
	case ".help":
		printHelp(out, color)
		return true, false
	default:
		fmt.Fprintf(out, paint(color, Red, "Unknown command: %s. Type .help for info.\n"), line)
		return true, false
	}
}

// ----------------------------------------------------------------------------
// HELPER FUNCTIONS
// ----------------------------------------------------------------------------

func paint(color bool, code, msg string) string {
	if !color {
		return msg
	}
	return code + msg + Reset
}

func printHelp(out io.Writer, color bool) {
	fmt.Fprintln(out, paint(color, Gray, "Commands:"))
	fmt.Fprintln(out, "  .exit   Quit the REPL")
	fmt.Fprintln(out, "  .clear  Reset memory")
	fmt.Fprintln(out, "  .debug  Toggle verbose AST/Token output")
	fmt.Fprintln(out, "  .help   Show this message")
	fmt.Fprintln(out)
}

func printTokens(out io.Writer, source string, color bool) {
	fmt.Fprintln(out, paint(color, Gray, "┌── [ TOKENS ] ──────────────────────────────────────────┐"))
	l := lexer.New(source)
	for tok := l.NextToken(); tok.Type != token.EOF; tok = l.NextToken() {
		fmt.Fprintf(out, "│ %-15s : %s\n", tok.Type, tok.Literal)
	}
	fmt.Fprintln(out, paint(color, Gray, "└────────────────────────────────────────────────────────┘"))
}

func printAST(out io.Writer, program fmt.Stringer, color bool) {
	fmt.Fprintln(out, paint(color, Gray, "┌── [ AST TREE ] ────────────────────────────────────────┐"))
	if str := program.String(); str != "" {
		fmt.Fprintf(out, "%s\n", str)
	}
	fmt.Fprintln(out, paint(color, Gray, "└────────────────────────────────────────────────────────┘"))
}

func printParserErrors(out io.Writer, errors []string, color bool) {
	fmt.Fprintln(out, paint(color, Red+Bold, "Whoops! Parser Errors:"))
	for _, msg := range errors {
		fmt.Fprintf(out, paint(color, Red, "  ✖ %s\n"), msg)
	}
}

// printEvalResult formats the output based on object type, the way a REPL
// that wants numbers, strings, and containers to stand out visually would.
func printEvalResult(out io.Writer, obj object.Object, color bool) {
	if obj == nil {
		return
	}
	if _, ok := obj.(*object.NoneType); ok {
		return
	}

	str := evaluator.Instance.ToRepr(obj)

	switch v := obj.(type) {
	case *object.Int, *object.Float:
		fmt.Fprintf(out, paint(color, Yellow, "%s\n"), str)
	case *object.Bool:
		code := Green
		if !v.Value {
			code = Red
		}
		fmt.Fprintf(out, paint(color, code, "%s\n"), str)
	case *object.String:
		fmt.Fprintf(out, paint(color, Green, "%s\n"), str)
	case *object.Function, *object.BoundMethod, *object.BuiltinFunction:
		fmt.Fprintf(out, paint(color, Purple, "%s\n"), str)
	case *object.List, *object.Tuple, *object.Dict, *object.Set, *object.Range:
		fmt.Fprintf(out, paint(color, Blue, "%s\n"), str)
	case *object.Instance, *object.Class:
		fmt.Fprintf(out, paint(color, Cyan, "%s\n"), str)
	default:
		fmt.Fprintf(out, "%s\n", str)
	}
}
