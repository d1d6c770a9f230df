// ==============================================================================================
// FILE: object/environment_unit_test.go
// PURPOSE: Unit tests for the scope chain: plain lexical lookup, the
//          global/nonlocal target rules, and classCell propagation.
// ==============================================================================================

package object

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetWalksOuterChain(t *testing.T) {
	outer := NewEnvironment()
	outer.Set("x", NewInt(1))
	inner := NewEnclosedEnvironment(outer, ScopeFunction)

	val, ok := inner.Get("x")
	require.True(t, ok)
	assert.Equal(t, int64(1), val.(*Int).Value.Int64())
}

func TestGetLocalDoesNotWalkOuter(t *testing.T) {
	outer := NewEnvironment()
	outer.Set("x", NewInt(1))
	inner := NewEnclosedEnvironment(outer, ScopeFunction)

	_, ok := inner.GetLocal("x")
	assert.False(t, ok)
}

func TestSetExistingRebindsEnclosingFrame(t *testing.T) {
	outer := NewEnvironment()
	outer.Set("count", NewInt(0))
	inner := NewEnclosedEnvironment(outer, ScopeFunction)

	ok := inner.SetExisting("count", NewInt(1))
	require.True(t, ok)

	_, stillLocal := inner.GetLocal("count")
	assert.False(t, stillLocal, "SetExisting must rebind the defining frame, not shadow locally")

	val, _ := outer.GetLocal("count")
	assert.Equal(t, int64(1), val.(*Int).Value.Int64())
}

func TestSetExistingReturnsFalseForUnboundName(t *testing.T) {
	env := NewEnvironment()
	assert.False(t, env.SetExisting("nope", NewInt(1)))
}

func TestGlobalBindsAtOutermostFrame(t *testing.T) {
	top := NewEnvironment()
	mid := NewEnclosedEnvironment(top, ScopeFunction)
	leaf := NewEnclosedEnvironment(mid, ScopeFunction)

	leaf.Global("shared", NewInt(42))

	val, ok := top.GetLocal("shared")
	require.True(t, ok)
	assert.Equal(t, int64(42), val.(*Int).Value.Int64())

	_, onLeaf := leaf.GetLocal("shared")
	assert.False(t, onLeaf)
}

func TestEnclosingFunctionSkipsClassBodyFrames(t *testing.T) {
	top := NewEnvironment()
	fn := NewEnclosedEnvironment(top, ScopeFunction)
	classBody := NewEnclosedEnvironment(fn, ScopeClassBody)

	found := classBody.EnclosingFunction()
	require.NotNil(t, found)
	assert.Equal(t, fn, found)
}

func TestEnclosingFunctionReturnsNilAtGlobalScope(t *testing.T) {
	top := NewEnvironment()
	assert.Nil(t, top.EnclosingFunction())
}

func TestClassCellPropagatesToNestedScopes(t *testing.T) {
	top := NewEnvironment()
	classBody := NewEnclosedEnvironment(top, ScopeClassBody)
	cls := &Class{Name: "Widget"}
	classBody.SetClassCell(cls)

	method := NewEnclosedEnvironment(classBody, ScopeFunction)
	assert.Equal(t, cls, method.ClassCell())
}

func TestDeleteOnlyAffectsOwnFrame(t *testing.T) {
	outer := NewEnvironment()
	outer.Set("x", NewInt(1))
	inner := NewEnclosedEnvironment(outer, ScopeFunction)

	assert.False(t, inner.Delete("x"))
	assert.True(t, outer.Delete("x"))
	_, ok := outer.GetLocal("x")
	assert.False(t, ok)
}

func TestNamespaceReturnsOwnBindings(t *testing.T) {
	env := NewEnvironment()
	env.Set("a", NewInt(1))
	env.Set("b", NewInt(2))

	ns := env.Namespace()
	require.Len(t, ns, 2)
	assert.Contains(t, ns, "a")
	assert.Contains(t, ns, "b")
}
