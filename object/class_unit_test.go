// ==============================================================================================
// FILE: object/class_unit_test.go
// PURPOSE: Unit tests for C3 linearization and attribute resolution
//          through the MRO, including the classic "diamond" inheritance
//          case and descriptor precedence.
// ==============================================================================================

package object

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClass(t *testing.T, name string, bases ...*Class) *Class {
	t.Helper()
	cls, err := NewClass(name, bases, map[string]Object{}, NewEnvironment())
	require.NoError(t, err)
	return cls
}

func TestC3LinearizationDiamond(t *testing.T) {
	o := newTestClass(t, "O")
	a := newTestClass(t, "A", o)
	b := newTestClass(t, "B", o)
	c := newTestClass(t, "C", a, b)

	assert.Equal(t, "C -> A -> B -> O", c.MROName())
}

func TestC3LinearizationRejectsInconsistentOrder(t *testing.T) {
	x := newTestClass(t, "X")
	y := newTestClass(t, "Y")
	xy := newTestClass(t, "XY", x, y)
	yx := newTestClass(t, "YX", y, x)

	_, err := NewClass("Bad", []*Class{xy, yx}, map[string]Object{}, NewEnvironment())
	assert.Error(t, err)
}

func TestLookupMROFindsNearestDefinition(t *testing.T) {
	base := newTestClass(t, "Base")
	base.Dict["greet"] = &String{Value: "base"}
	derived := newTestClass(t, "Derived", base)
	derived.Dict["greet"] = &String{Value: "derived"}

	val, owner, ok := derived.LookupMRO("greet")
	require.True(t, ok)
	assert.Equal(t, "derived", val.(*String).Value)
	assert.Equal(t, derived, owner)
}

func TestLookupFromContinuesPastCurrentClass(t *testing.T) {
	base := newTestClass(t, "Base")
	base.Dict["greet"] = &String{Value: "base"}
	derived := newTestClass(t, "Derived", base)
	derived.Dict["greet"] = &String{Value: "derived"}

	val, owner, ok := derived.LookupFrom(derived, "greet")
	require.True(t, ok)
	assert.Equal(t, "base", val.(*String).Value)
	assert.Equal(t, base, owner)
}

func TestIsSubclass(t *testing.T) {
	base := newTestClass(t, "Base")
	derived := newTestClass(t, "Derived", base)
	unrelated := newTestClass(t, "Unrelated")

	assert.True(t, derived.IsSubclass(base))
	assert.True(t, derived.IsSubclass(derived))
	assert.False(t, derived.IsSubclass(unrelated))
}

func TestInstanceGetAttrPropertyTakesPrecedenceOverInstanceDict(t *testing.T) {
	cls := newTestClass(t, "Point")
	cls.Dict["x"] = &Property{Getter: &BuiltinFunction{Name: "get_x"}, Setter: &BuiltinFunction{Name: "set_x"}}

	inst := NewInstance(cls)
	inst.Attrs["x"] = NewInt(99) // a plain instance attribute of the same name

	val, ok := inst.GetAttr("x")
	require.True(t, ok)
	_, isProp := val.(*Property)
	assert.True(t, isProp, "class-level data descriptor (Property with a setter) must win over instance dict")
}

func TestInstanceGetAttrFallsBackToMRO(t *testing.T) {
	base := newTestClass(t, "Base")
	base.Dict["shared"] = NewInt(1)
	derived := newTestClass(t, "Derived", base)

	inst := NewInstance(derived)
	val, ok := inst.GetAttr("shared")
	require.True(t, ok)
	assert.Equal(t, int64(1), val.(*Int).Value.Int64())
}
