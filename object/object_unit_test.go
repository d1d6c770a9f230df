// ==============================================================================================
// FILE: object/object_unit_test.go
// PURPOSE: Unit tests for the primitive value types and truthiness rules.
// ==============================================================================================

package object

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIntInspect(t *testing.T) {
	i := NewInt(42)
	assert.Equal(t, "42", i.Inspect())
	assert.Equal(t, INT_OBJ, i.Type())
}

func TestFloatInspectAlwaysShowsDecimal(t *testing.T) {
	assert.Equal(t, "1.0", (&Float{Value: 1}).Inspect())
	assert.Equal(t, "3.14", (&Float{Value: 3.14}).Inspect())
}

func TestStringInspectQuotes(t *testing.T) {
	s := &String{Value: "hi"}
	assert.Equal(t, "'hi'", s.Inspect())
	assert.Equal(t, "hi", s.String())
}

func TestNativeBoolSingletons(t *testing.T) {
	require.True(t, NativeBool(true) == True)
	require.True(t, NativeBool(false) == False)
}

func TestIsTruthy(t *testing.T) {
	tests := []struct {
		name     string
		obj      Object
		expected bool
	}{
		{"none", None, false},
		{"true", True, true},
		{"false", False, false},
		{"zero int", NewInt(0), false},
		{"nonzero int", NewInt(5), true},
		{"zero float", &Float{Value: 0}, false},
		{"empty string", &String{Value: ""}, false},
		{"nonempty string", &String{Value: "x"}, true},
		{"empty list", &List{}, false},
		{"nonempty list", &List{Elements: []Object{NewInt(1)}}, true},
		{"empty dict", NewDict(), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, IsTruthy(tt.obj))
		})
	}
}

func TestExceptionInspect(t *testing.T) {
	exc := NewException("ValueError", "bad value: %d", 7)
	assert.Equal(t, "ValueError", exc.ClassName)
	assert.Equal(t, "ValueError: bad value: 7", exc.Inspect())
}
