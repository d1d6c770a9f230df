// ==============================================================================================
// FILE: evaluator/run.go
// PACKAGE: evaluator
// PURPOSE: The top-level entrypoint — builds a global scope seeded with the
//          builtins and runs a parsed program, turning an uncaught raised
//          exception into a returned Go error instead of a crash.
// ==============================================================================================

package evaluator

import (
	"fmt"

	"github.com/glade-lang/glade/ast"
	"github.com/glade-lang/glade/object"
)

// NewGlobalEnv builds a fresh global scope with every builtin function
// bound, the starting point for both the REPL and one-shot script runs.
func NewGlobalEnv() *object.Environment {
	env := object.NewEnvironment()
	for name, fn := range object.Builtins {
		env.Set(name, fn)
	}
	for name, cls := range object.NewExceptionClasses() {
		env.Set(name, cls)
	}
	return env
}

// Run evaluates a parsed program against env, recovering a propagating
// *object.Exception into a Go error so callers never see a bare panic.
func Run(program *ast.Program, env *object.Environment) (result object.Object, err error) {
	defer func() {
		if r := recover(); r != nil {
			exc, ok := r.(*object.Exception)
			if !ok {
				panic(r)
			}
			result = object.None
			err = fmt.Errorf("%s: %s", exc.ClassName, exc.Message)
		}
	}()
	return Instance.Eval(program, env), nil
}
