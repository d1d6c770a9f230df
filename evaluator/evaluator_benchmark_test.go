// ==============================================================================================
// FILE: evaluator/evaluator_benchmark_test.go
// ==============================================================================================
// PURPOSE: Performance benchmarks for the evaluator: function call overhead, attribute
//          lookup through the MRO, and loop execution cost.
// ==============================================================================================

package evaluator

import (
	"testing"

	"github.com/glade-lang/glade/lexer"
	"github.com/glade-lang/glade/parser"
)

func BenchmarkRecursiveFibonacci(b *testing.B) {
	input := "def fib(n):\n    if n < 2:\n        return n\n    return fib(n - 1) + fib(n - 2)\nfib(15)"
	l := lexer.New(input)
	p := parser.New(l)
	program := p.ParseProgram()
	if len(p.Errors()) > 0 {
		b.Fatalf("unexpected parser errors: %v", p.Errors())
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		env := NewGlobalEnv()
		Run(program, env)
	}
}

func BenchmarkWhileLoop(b *testing.B) {
	input := "total = 0\ni = 0\nwhile i < 1000:\n    total = total + i\n    i = i + 1\ntotal"
	l := lexer.New(input)
	p := parser.New(l)
	program := p.ParseProgram()
	if len(p.Errors()) > 0 {
		b.Fatalf("unexpected parser errors: %v", p.Errors())
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		env := NewGlobalEnv()
		Run(program, env)
	}
}

func BenchmarkMethodCallThroughMRO(b *testing.B) {
	input := `
class O:
    def who(self):
        return 1
class A(O):
    pass
class B(A):
    pass
obj = B()
obj.who()`
	l := lexer.New(input)
	p := parser.New(l)
	program := p.ParseProgram()
	if len(p.Errors()) > 0 {
		b.Fatalf("unexpected parser errors: %v", p.Errors())
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		env := NewGlobalEnv()
		Run(program, env)
	}
}
