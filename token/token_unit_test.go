// ==============================================================================================
// FILE: token/token_unit_test.go
// PURPOSE: Unit tests for keyword lookup.
// ==============================================================================================

package token

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLookupIdentRecognizesKeywords(t *testing.T) {
	tests := []struct {
		ident    string
		expected TokenType
	}{
		{"def", DEF},
		{"class", CLASS},
		{"return", RETURN},
		{"if", IF},
		{"elif", ELIF},
		{"else", ELSE},
		{"while", WHILE},
		{"for", FOR},
		{"not", NOT},
		{"and", AND},
		{"or", OR},
		{"None", NONE},
		{"True", TRUE},
		{"False", FALSE},
		{"lambda", LAMBDA},
		{"with", WITH},
		{"try", TRY},
		{"except", EXCEPT},
		{"finally", FINALLY},
		{"raise", RAISE},
		{"global", GLOBAL},
		{"nonlocal", NONLOCAL},
		{"del", DEL},
	}
	for _, tt := range tests {
		t.Run(tt.ident, func(t *testing.T) {
			assert.Equal(t, tt.expected, LookupIdent(tt.ident))
		})
	}
}

func TestLookupIdentFallsBackToIdentifier(t *testing.T) {
	for _, name := range []string{"x", "total", "myClass", "_private", "def2"} {
		assert.Equal(t, TokenType(IDENT), LookupIdent(name))
	}
}
