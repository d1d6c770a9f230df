// ==============================================================================================
// FILE: repl/repl_unit_test.go
// PURPOSE: Unit tests for the multi-line input buffering heuristic and small
//          output-formatting helpers.
// ==============================================================================================

package repl

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStillOpenDetectsOpenBrackets(t *testing.T) {
	assert.True(t, stillOpen([]string{"foo(1,"}))
	assert.False(t, stillOpen([]string{"foo(1, 2)"}))
}

func TestStillOpenDetectsBlockHeader(t *testing.T) {
	assert.True(t, stillOpen([]string{"if x:"}))
	assert.False(t, stillOpen([]string{"x = 1"}))
}

func TestStillOpenWaitsForBlankLineAfterIndentedBody(t *testing.T) {
	lines := []string{"if x:", "    y = 1"}
	assert.True(t, stillOpen(lines))

	lines = append(lines, "")
	assert.False(t, stillOpen(lines))
}

func TestBracketDepthCountsNesting(t *testing.T) {
	assert.Equal(t, 0, bracketDepth([]string{"()"}))
	assert.Equal(t, 1, bracketDepth([]string{"(["}))
	assert.Equal(t, 0, bracketDepth([]string{"([{}])"}))
}

func TestPaintWrapsWithColorCodeWhenEnabled(t *testing.T) {
	assert.Equal(t, "hi", paint(false, Red, "hi"))
	assert.Equal(t, Red+"hi"+Reset, paint(true, Red, "hi"))
}

func TestDefaultConfigHasSaneDefaults(t *testing.T) {
	cfg := defaultConfig()
	assert.Equal(t, ">> ", cfg.Prompt)
	if assert.NotNil(t, cfg.Color) {
		assert.True(t, *cfg.Color)
	}
}
