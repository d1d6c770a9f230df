// ==============================================================================================
// FILE: repl/repl_benchmark_test.go
// PURPOSE: Benchmarks for the multi-line buffering heuristic and a full session.
// ==============================================================================================

package repl

import "testing"

func BenchmarkStillOpen(b *testing.B) {
	lines := []string{"if x:", "    y = 1", "    z = 2"}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		stillOpen(lines)
	}
}

func BenchmarkBracketDepth(b *testing.B) {
	lines := []string{"foo([1, 2, {3: 4}],", "    bar(5, 6))"}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		bracketDepth(lines)
	}
}

func BenchmarkSessionArithmeticLoop(b *testing.B) {
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		runSession("x = 0\nx = x + 1\nx = x + 1\nx = x + 1\n.exit\n")
	}
}
