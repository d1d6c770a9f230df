// ==============================================================================================
// FILE: interp/interp_benchmark_test.go
// ==============================================================================================
// PURPOSE: Performance benchmarks for the embedder surface: fresh-interpreter startup cost,
//          repeated Run() calls against a warm interpreter, and Native() conversion overhead.
// ==============================================================================================

package interp

import "testing"

func BenchmarkNewInterpreter(b *testing.B) {
	for i := 0; i < b.N; i++ {
		New()
	}
}

func BenchmarkRunSimpleExpression(b *testing.B) {
	it := New()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		it.Run("1 + 2 * 3")
	}
}

func BenchmarkRunWarmEnvironmentFunctionCall(b *testing.B) {
	it := New()
	if _, err := it.Run("def square(x):\n    return x * x"); err != nil {
		b.Fatalf("setup failed: %v", err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		it.Run("square(7)")
	}
}

func BenchmarkNativeConversionOfLargeList(b *testing.B) {
	it := New()
	val, err := it.Run("[x for x in range(500)]")
	if err != nil {
		b.Fatalf("setup failed: %v", err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		val.Native()
	}
}
