// ==============================================================================================
// FILE: lexer/lexer_unit_test.go
// PURPOSE: Unit tests for scanning individual tokens and indentation structure.
// ==============================================================================================

package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/glade-lang/glade/token"
)

func collectTokens(input string) []token.Token {
	l := New(input)
	var toks []token.Token
	for {
		tok := l.NextToken()
		toks = append(toks, tok)
		if tok.Type == token.EOF {
			break
		}
	}
	return toks
}

func TestNextTokenScansOperatorsAndDelimiters(t *testing.T) {
	input := "= + - * ** / // % ( ) [ ] { } , : . =="
	toks := collectTokens(input)

	expectedTypes := []token.TokenType{
		token.ASSIGN, token.PLUS, token.MINUS, token.STAR, token.DSTAR,
		token.SLASH, token.DSLASH, token.PERCENT, token.LPAREN, token.RPAREN,
		token.LBRACKET, token.RBRACKET, token.LBRACE, token.RBRACE,
		token.COMMA, token.COLON, token.DOT, token.EQ,
	}
	require.GreaterOrEqual(t, len(toks), len(expectedTypes))
	for i, want := range expectedTypes {
		assert.Equal(t, want, toks[i].Type, "token %d", i)
	}
}

func TestNextTokenScansKeywordsAndIdentifiers(t *testing.T) {
	toks := collectTokens("def foo return x")
	assert.Equal(t, token.DEF, toks[0].Type)
	assert.Equal(t, token.IDENT, toks[1].Type)
	assert.Equal(t, "foo", toks[1].Literal)
	assert.Equal(t, token.RETURN, toks[2].Type)
	assert.Equal(t, token.IDENT, toks[3].Type)
}

func TestNextTokenScansIntAndFloatLiterals(t *testing.T) {
	toks := collectTokens("42 3.14 0x1F")
	assert.Equal(t, token.INT, toks[0].Type)
	assert.Equal(t, "42", toks[0].Literal)
	assert.Equal(t, token.FLOAT, toks[1].Type)
	assert.Equal(t, "3.14", toks[1].Literal)
	assert.Equal(t, token.INT, toks[2].Type)
}

func TestNextTokenScansStringLiteral(t *testing.T) {
	toks := collectTokens(`"hello world"`)
	assert.Equal(t, token.STRING, toks[0].Type)
	assert.Equal(t, "hello world", toks[0].Literal)
}

func TestNextTokenScansFStringWithFragments(t *testing.T) {
	toks := collectTokens(`f"hi {name}"`)
	assert.Equal(t, token.FSTRING, toks[0].Type)
	require.NotEmpty(t, toks[0].Fragments)
}

func TestIndentationProducesIndentAndDedent(t *testing.T) {
	input := "if True:\n    x = 1\ny = 2"
	toks := collectTokens(input)

	var sawIndent, sawDedent bool
	for _, tok := range toks {
		if tok.Type == token.INDENT {
			sawIndent = true
		}
		if tok.Type == token.DEDENT {
			sawDedent = true
		}
	}
	assert.True(t, sawIndent, "expected an INDENT token for the nested block")
	assert.True(t, sawDedent, "expected a DEDENT token after the block ends")
}

func TestParenthesesSuppressIndentationTokens(t *testing.T) {
	input := "foo(1,\n    2,\n    3)"
	toks := collectTokens(input)
	for _, tok := range toks {
		assert.NotEqual(t, token.INDENT, tok.Type, "parenthesized continuation must not emit INDENT")
		assert.NotEqual(t, token.DEDENT, tok.Type, "parenthesized continuation must not emit DEDENT")
	}
}
