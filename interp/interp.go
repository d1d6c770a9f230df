// ==============================================================================================
// FILE: interp/interp.go
// PACKAGE: interp
// PURPOSE: The embedder contract — the one host-facing surface Glade
//          exposes. cmd/glade and the REPL both sit strictly above this
//          package; nothing below it knows about cobra, flags, or terminals.
// ==============================================================================================

package interp

import (
	"fmt"
	"strings"

	"github.com/glade-lang/glade/evaluator"
	"github.com/glade-lang/glade/lexer"
	"github.com/glade-lang/glade/object"
	"github.com/glade-lang/glade/parser"
)

// Interpreter holds the persistent global scope a sequence of Run calls
// accumulates into — the same environment a REPL session keeps reusing
// across lines.
type Interpreter struct {
	env *object.Environment
}

// New builds an interpreter with a fresh global scope seeded with builtins.
func New() *Interpreter {
	return &Interpreter{env: evaluator.NewGlobalEnv()}
}

// Run parses and evaluates source against the interpreter's persistent
// global scope, returning the value of its last expression.
func (it *Interpreter) Run(source string) (Value, error) {
	l := lexer.New(source)
	p := parser.New(l)
	program := p.ParseProgram()
	if errs := p.Errors(); len(errs) > 0 {
		return Value{}, fmt.Errorf("syntax error: %s", strings.Join(errs, "; "))
	}

	result, err := evaluator.Run(program, it.env)
	if err != nil {
		return Value{}, err
	}
	return Value{obj: result}, nil
}

// Global looks up a name in the interpreter's global scope, for host code
// that wants to read back a variable or function a script defined.
func (it *Interpreter) Global(name string) (Value, bool) {
	obj, ok := it.env.GetLocal(name)
	if !ok {
		return Value{}, false
	}
	return Value{obj: obj}, true
}
