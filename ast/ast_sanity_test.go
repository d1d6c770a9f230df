// ==============================================================================================
// FILE: ast/ast_sanity_test.go
// PURPOSE: Edge cases for rendering nodes with empty or deeply nested bodies.
// ==============================================================================================

package ast

import (
	"math/big"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanity_EmptyBlockStatementRendersNoLines(t *testing.T) {
	block := &BlockStatement{}
	assert.Equal(t, "", block.String())
}

func TestSanity_EmptyProgramRendersEmptyString(t *testing.T) {
	program := &Program{}
	assert.Equal(t, "", program.String())
}

func TestSanity_DeeplyNestedIfStatementRendersWithoutPanicking(t *testing.T) {
	var body *BlockStatement
	for i := 0; i < 50; i++ {
		stmt := &IfStatement{
			Condition: &Identifier{Value: "x"},
			Body:      &BlockStatement{Statements: []Statement{&ExpressionStatement{Expression: &IntegerLiteral{Value: big.NewInt(int64(i))}}}},
		}
		if body != nil {
			stmt.Body.Statements = append(stmt.Body.Statements, &ExpressionStatement{Expression: &Identifier{Value: "nested"}})
		}
		body = &BlockStatement{Statements: []Statement{stmt}}
	}
	assert.NotPanics(t, func() { _ = body.String() })
	assert.True(t, strings.Contains(body.String(), "if x:"))
}

func TestSanity_ClassDefWithNoBasesStillRenders(t *testing.T) {
	cls := &ClassDef{Name: "Empty", Body: &BlockStatement{}}
	assert.Equal(t, "class Empty:\n", cls.String())
}
