// ==============================================================================================
// FILE: object/object_sanity_test.go
// ==============================================================================================
// PURPOSE: Sanity checks for the object system.
//          Verifies that empty collections behave correctly and deep recursion doesn't crash.
// ==============================================================================================

package object

import "testing"

func TestSanity_EmptyCollections(t *testing.T) {
	list := &List{Elements: []Object{}}
	if list.Inspect() != "[]" {
		t.Errorf("empty list inspect failed, got %q", list.Inspect())
	}

	d := NewDict()
	if d.Inspect() != "{}" {
		t.Errorf("empty dict inspect failed, got %q", d.Inspect())
	}

	s := NewSet()
	if s.Inspect() != "set()" {
		t.Errorf("empty set inspect failed, got %q", s.Inspect())
	}
}

func TestSanity_NestedEnvironments(t *testing.T) {
	root := NewEnvironment()
	root.Set("target", True)

	current := root
	for i := 0; i < 100; i++ {
		current = NewEnclosedEnvironment(current, ScopeFunction)
	}

	val, ok := current.Get("target")
	if !ok {
		t.Fatalf("deep nested lookup failed")
	}
	if val != True {
		t.Errorf("deep nested value corrupted")
	}
}

func TestSanity_DeepClassHierarchyLinearizes(t *testing.T) {
	var current *Class
	for i := 0; i < 50; i++ {
		var bases []*Class
		if current != nil {
			bases = []*Class{current}
		}
		cls, err := NewClass("Level", bases, map[string]Object{}, NewEnvironment())
		if err != nil {
			t.Fatalf("linearization failed at depth %d: %v", i, err)
		}
		current = cls
	}
	if len(current.MRO) != 51 {
		t.Errorf("expected MRO of length 51, got %d", len(current.MRO))
	}
}
