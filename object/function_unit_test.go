// ==============================================================================================
// FILE: object/function_unit_test.go
// PURPOSE: Unit tests for the callable object kinds and the property
//          descriptor's Inspect/Type wiring.
// ==============================================================================================

package object

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFunctionInspectNamesLambdasDistinctly(t *testing.T) {
	named := &Function{Name: "add"}
	lambda := &Function{Name: ""}

	assert.Equal(t, "<function add>", named.Inspect())
	assert.Equal(t, "<function <lambda>>", lambda.Inspect())
	assert.Equal(t, FUNCTION_OBJ, named.Type())
}

func TestBoundMethodInspectIncludesReceiver(t *testing.T) {
	cls := &Class{Name: "Counter"}
	inst := NewInstance(cls)
	fn := &Function{Name: "increment"}
	bound := &BoundMethod{Receiver: inst, Method: fn}

	assert.Equal(t, "<bound method of <Counter object>>", bound.Inspect())
	assert.Equal(t, BOUND_METHOD_OBJ, bound.Type())
}

func TestBuiltinFunctionInspect(t *testing.T) {
	b := &BuiltinFunction{Name: "len"}
	assert.Equal(t, "<built-in function len>", b.Inspect())
	assert.Equal(t, BUILTIN_OBJ, b.Type())
}

func TestPropertyStartsWithoutSetterOrDeleter(t *testing.T) {
	getter := &BuiltinFunction{Name: "get_area"}
	p := &Property{Getter: getter}

	assert.Equal(t, getter, p.Getter)
	assert.Nil(t, p.Setter)
	assert.Nil(t, p.Deller)
	assert.Equal(t, "<property object>", p.Inspect())
	assert.Equal(t, PROPERTY_OBJ, p.Type())
}
