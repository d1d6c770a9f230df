// ==============================================================================================
// FILE: parser/parser_unit_test.go
// PURPOSE: Unit tests for statement and expression parsing.
// ==============================================================================================

package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/glade-lang/glade/ast"
	"github.com/glade-lang/glade/lexer"
)

func parseProgram(t *testing.T, input string) *ast.Program {
	t.Helper()
	l := lexer.New(input)
	p := New(l)
	program := p.ParseProgram()
	require.Empty(t, p.Errors(), "unexpected parser errors: %v", p.Errors())
	require.NotNil(t, program)
	return program
}

func TestParseAssignmentStatement(t *testing.T) {
	program := parseProgram(t, "x = 5")
	require.Len(t, program.Statements, 1)
}

func TestParseFunctionDefWithDefaultParam(t *testing.T) {
	program := parseProgram(t, "def greet(name, greeting=\"hi\"):\n    return greeting")
	require.Len(t, program.Statements, 1)
	fn, ok := program.Statements[0].(*ast.FunctionDef)
	require.True(t, ok, "expected *ast.FunctionDef, got %T", program.Statements[0])
	assert.Equal(t, "greet", fn.Name)
	require.Len(t, fn.Params.Positional, 2)
	assert.Equal(t, "greeting", fn.Params.Positional[1].Name)
	assert.NotNil(t, fn.Params.Positional[1].Default)
}

func TestParseClassDefWithBases(t *testing.T) {
	program := parseProgram(t, "class Dog(Animal):\n    pass")
	require.Len(t, program.Statements, 1)
	cls, ok := program.Statements[0].(*ast.ClassDef)
	require.True(t, ok, "expected *ast.ClassDef, got %T", program.Statements[0])
	assert.Equal(t, "Dog", cls.Name)
	require.Len(t, cls.Bases, 1)
}

func TestParseIfElifElse(t *testing.T) {
	input := "if x:\n    1\nelif y:\n    2\nelse:\n    3"
	program := parseProgram(t, input)
	require.Len(t, program.Statements, 1)
	_, ok := program.Statements[0].(*ast.IfStatement)
	assert.True(t, ok)
}

func TestParseListLiteral(t *testing.T) {
	program := parseProgram(t, "[1, 2, 3]")
	require.Len(t, program.Statements, 1)
}

func TestParseOperatorPrecedence(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"1 + 2 * 3", "(1 + (2 * 3))"},
		{"(1 + 2) * 3", "((1 + 2) * 3)"},
		{"-1 + 2", "((-1) + 2)"},
		{"1 < 2 and 2 < 3", "((1 < 2) and (2 < 3))"},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			program := parseProgram(t, tt.input)
			require.Len(t, program.Statements, 1)
			assert.Equal(t, tt.expected, program.Statements[0].String())
		})
	}
}

func TestParserRecordsErrorOnMalformedInput(t *testing.T) {
	l := lexer.New("def (:")
	p := New(l)
	p.ParseProgram()
	assert.NotEmpty(t, p.Errors())
}
