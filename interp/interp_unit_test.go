// ==============================================================================================
// FILE: interp/interp_unit_test.go
// ==============================================================================================
// PURPOSE: Unit tests for the embedder-facing Interpreter/Value surface:
//          Run/Global round-tripping and native conversion of collections.
// ==============================================================================================

package interp

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunReturnsFinalExpressionValue(t *testing.T) {
	it := New()
	val, err := it.Run("2 + 3")
	require.NoError(t, err)
	assert.Equal(t, "int", val.Kind())
	i, ok := val.Int()
	require.True(t, ok)
	assert.Equal(t, int64(5), i.Int64())
}

func TestRunPropagatesSyntaxErrors(t *testing.T) {
	it := New()
	_, err := it.Run("def (:")
	assert.Error(t, err)
}

func TestRunPropagatesUncaughtExceptionsAsErrors(t *testing.T) {
	it := New()
	_, err := it.Run(`raise ValueError("nope")`)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ValueError")
}

func TestGlobalReadsBackAssignedName(t *testing.T) {
	it := New()
	_, err := it.Run("answer = 42")
	require.NoError(t, err)

	val, ok := it.Global("answer")
	require.True(t, ok)
	i, _ := val.Int()
	assert.Equal(t, int64(42), i.Int64())
}

func TestGlobalMissingNameReturnsFalse(t *testing.T) {
	it := New()
	_, ok := it.Global("nonexistent")
	assert.False(t, ok)
}

func TestEnvironmentPersistsAcrossRunCalls(t *testing.T) {
	it := New()
	_, err := it.Run("counter = 0")
	require.NoError(t, err)
	_, err = it.Run("counter = counter + 1")
	require.NoError(t, err)
	_, err = it.Run("counter = counter + 1")
	require.NoError(t, err)

	val, ok := it.Global("counter")
	require.True(t, ok)
	i, _ := val.Int()
	assert.Equal(t, int64(2), i.Int64())
}

func TestValueStringMatchesScriptStrConversion(t *testing.T) {
	it := New()
	val, err := it.Run(`"hello"`)
	require.NoError(t, err)
	assert.Equal(t, "hello", val.String())
}

func TestNativeConvertsNestedListsAndDicts(t *testing.T) {
	it := New()
	val, err := it.Run(`{"nums": [1, 2, 3], "ok": True}`)
	require.NoError(t, err)

	native := val.Native()
	pairs, ok := native.([]KeyValue)
	require.True(t, ok, "expected []KeyValue, got %T", native)

	got := map[string]any{}
	for _, kv := range pairs {
		got[kv.Key.(string)] = kv.Value
	}

	want := map[string]any{
		"nums": []any{int64(1), int64(2), int64(3)},
		"ok":   true,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Native() mismatch (-want +got):\n%s", diff)
	}
}

func TestNativeConvertsTupleToSlice(t *testing.T) {
	it := New()
	val, err := it.Run("(1, 2, 3)")
	require.NoError(t, err)

	want := []any{int64(1), int64(2), int64(3)}
	if diff := cmp.Diff(want, val.Native()); diff != "" {
		t.Errorf("Native() mismatch (-want +got):\n%s", diff)
	}
}

func TestNativeNoneIsNil(t *testing.T) {
	it := New()
	val, err := it.Run("None")
	require.NoError(t, err)
	assert.True(t, val.IsNone())
	assert.Nil(t, val.Native())
}
