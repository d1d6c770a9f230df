// ==============================================================================================
// FILE: interp/interp_integration_test.go
// ==============================================================================================
// PURPOSE: Integration tests exercising multi-statement Glade programs through the
//          embedder surface end to end, the way a host application would drive it.
// ==============================================================================================

package interp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIntegration_ClassDefinitionThenInstantiation(t *testing.T) {
	it := New()
	_, err := it.Run(`
class Counter:
    def __init__(self):
        self.n = 0
    def increment(self):
        self.n = self.n + 1
        return self.n
c = Counter()
c.increment()
c.increment()
c.increment()`)
	require.NoError(t, err)

	val, ok := it.Global("c")
	require.True(t, ok)
	assert.Equal(t, "Counter", val.Kind())
}

func TestIntegration_ListBuiltinsChainTogether(t *testing.T) {
	it := New()
	val, err := it.Run("sum([x for x in range(10) if x % 2 == 0])")
	require.NoError(t, err)
	i, ok := val.Int()
	require.True(t, ok)
	assert.Equal(t, int64(20), i.Int64())
}

func TestIntegration_FStringInterpolation(t *testing.T) {
	it := New()
	_, err := it.Run(`name = "World"`)
	require.NoError(t, err)

	val, err := it.Run(`f"Hello, {name}!"`)
	require.NoError(t, err)
	assert.Equal(t, "Hello, World!", val.String())
}

func TestIntegration_WithStatementClosesResourceOnException(t *testing.T) {
	it := New()
	_, err := it.Run(`
class Resource:
    def __init__(self):
        self.closed = False
    def __enter__(self):
        return self
    def __exit__(self, exc_type, exc_val, exc_tb):
        self.closed = True
        return True
r = Resource()
with r:
    raise RuntimeError("boom")`)
	require.NoError(t, err)

	val, ok := it.Global("r")
	require.True(t, ok)
	assert.Equal(t, "Resource", val.Kind())

	closed, err := it.Run("r.closed")
	require.NoError(t, err)
	b, ok := closed.Bool()
	require.True(t, ok)
	assert.True(t, b, "__exit__ must have run and set closed")
}
