// ==============================================================================================
// FILE: ast/ast_benchmark_test.go
// PURPOSE: Benchmarks for String() rendering of larger trees.
// ==============================================================================================

package ast

import (
	"math/big"
	"testing"
)

func buildLargeProgram(n int) *Program {
	stmts := make([]Statement, n)
	for i := 0; i < n; i++ {
		stmts[i] = &ExpressionStatement{
			Expression: &BinaryExpr{
				Left:     &IntegerLiteral{Value: big.NewInt(int64(i))},
				Operator: "+",
				Right:    &IntegerLiteral{Value: big.NewInt(1)},
			},
		}
	}
	return &Program{Statements: stmts}
}

func BenchmarkProgramString_1000Statements(b *testing.B) {
	program := buildLargeProgram(1000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = program.String()
	}
}

func BenchmarkBinaryExprString(b *testing.B) {
	expr := &BinaryExpr{
		Left:     &IntegerLiteral{Value: big.NewInt(1)},
		Operator: "+",
		Right:    &IntegerLiteral{Value: big.NewInt(2)},
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = expr.String()
	}
}
