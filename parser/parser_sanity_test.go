// ==============================================================================================
// FILE: parser/parser_sanity_test.go
// PURPOSE: Edge cases for empty input, nested comprehensions, and recovery from bad syntax.
// ==============================================================================================

package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/glade-lang/glade/lexer"
)

func TestSanity_EmptySourceYieldsEmptyProgram(t *testing.T) {
	program := parseProgram(t, "")
	assert.Empty(t, program.Statements)
}

func TestSanity_OnlyBlankLinesYieldsEmptyProgram(t *testing.T) {
	program := parseProgram(t, "\n\n\n")
	assert.Empty(t, program.Statements)
}

func TestSanity_DeeplyNestedParenthesesDoNotOverflow(t *testing.T) {
	input := "((((((((((1))))))))))"
	assert.NotPanics(t, func() {
		parseProgram(t, input)
	})
}

func TestSanity_UnterminatedBlockRecordsErrorInsteadOfPanicking(t *testing.T) {
	l := lexer.New("if x:")
	p := New(l)
	assert.NotPanics(t, func() {
		p.ParseProgram()
	})
}

func TestSanity_TrailingCommaInListLiteralIsAccepted(t *testing.T) {
	program := parseProgram(t, "[1, 2, 3,]")
	require.Len(t, program.Statements, 1)
}
