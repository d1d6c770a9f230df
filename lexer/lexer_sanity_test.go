// ==============================================================================================
// FILE: lexer/lexer_sanity_test.go
// PURPOSE: Edge cases around empty input, blank lines, nested dedents, and unterminated literals.
// ==============================================================================================

package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/glade-lang/glade/token"
)

func TestSanity_EmptySourceProducesOnlyEOF(t *testing.T) {
	toks := collectTokens("")
	require := assert.New(t)
	require.NotEmpty(toks)
	require.Equal(token.EOF, toks[len(toks)-1].Type)
}

func TestSanity_BlankLinesBetweenStatementsDoNotEmitSpuriousIndentTokens(t *testing.T) {
	toks := collectTokens("x = 1\n\n\ny = 2")
	for _, tok := range toks {
		assert.NotEqual(t, token.INDENT, tok.Type)
		assert.NotEqual(t, token.DEDENT, tok.Type)
	}
}

func TestSanity_MultipleDedentsCollapseNestedBlocks(t *testing.T) {
	input := "if a:\n    if b:\n        1\nx = 2"
	toks := collectTokens(input)
	var dedents int
	for _, tok := range toks {
		if tok.Type == token.DEDENT {
			dedents++
		}
	}
	assert.Equal(t, 2, dedents, "closing two nested blocks should emit two DEDENTs")
}

func TestSanity_UnterminatedStringDoesNotPanic(t *testing.T) {
	assert.NotPanics(t, func() {
		collectTokens(`"unterminated`)
	})
}
