// ==============================================================================================
// FILE: evaluator/evaluator_sanity_test.go
// ==============================================================================================
// PURPOSE: Sanity checks for the runtime.
//          Ensures uncaught exceptions surface as Go errors rather than panics escaping to
//          the caller, and that deep recursion/nesting doesn't crash the process.
// ==============================================================================================

package evaluator

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSanity_UndefinedNameRaisesNameError(t *testing.T) {
	err := testEvalRaises(t, "missing_name")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "NameError")
}

func TestSanity_UncaughtExceptionDoesNotPanic(t *testing.T) {
	assert.NotPanics(t, func() {
		err := testEvalRaises(t, `raise ValueError("boom")`)
		require.Error(t, err)
		assert.True(t, strings.Contains(err.Error(), "ValueError"))
	})
}

func TestSanity_DivisionByZeroRaises(t *testing.T) {
	err := testEvalRaises(t, "1 / 0")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ZeroDivisionError")
}

func TestSanity_DeepRecursionDoesNotCorruptState(t *testing.T) {
	input := "def count(n):\n    if n <= 0:\n        return 0\n    return 1 + count(n - 1)\ncount(200)"
	testIntValue(t, testEval(t, input), 200)
}

func TestSanity_EmptyProgramEvaluatesToNone(t *testing.T) {
	obj := testEval(t, "")
	assert.True(t, obj == nil || obj.Inspect() == "None")
}
