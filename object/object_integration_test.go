// ==============================================================================================
// FILE: object/object_integration_test.go
// ==============================================================================================
// PURPOSE: Integration tests for the object system.
//          Validates the interaction between distinct object types, such as storing
//          instances inside environments or using collections as dict keys.
// ==============================================================================================

package object

import "testing"

func TestIntegration_InstanceStorageInEnvironment(t *testing.T) {
	cls := &Class{Name: "Person", Dict: map[string]Object{}}
	cls.MRO = []*Class{cls}

	inst := NewInstance(cls)
	inst.SetAttr("name", &String{Value: "Alice"})
	inst.SetAttr("age", NewInt(30))

	env := NewEnvironment()
	env.Set("user", inst)

	obj, ok := env.Get("user")
	if !ok {
		t.Fatalf("failed to retrieve instance")
	}

	retrieved, ok := obj.(*Instance)
	if !ok {
		t.Fatalf("object is not an Instance")
	}

	name, _ := retrieved.GetAttr("name")
	if name.(*String).Value != "Alice" {
		t.Errorf("instance attribute 'name' corrupted")
	}
}

func TestIntegration_DictLookupWithFreshKeyObject(t *testing.T) {
	d := NewDict()
	d.Set(&String{Value: "key"}, NewInt(100))

	env := NewEnvironment()
	env.Set("myDict", d)

	obj, _ := env.Get("myDict")
	retrieved := obj.(*Dict)

	val, exists := retrieved.Get(&String{Value: "key"})
	if !exists {
		t.Fatalf("dict lookup failed using a distinct but equal string key")
	}
	if val.(*Int).Value.Int64() != 100 {
		t.Errorf("dict value incorrect")
	}
}

func TestIntegration_TupleAsDictKey(t *testing.T) {
	d := NewDict()
	point := &Tuple{Elements: []Object{NewInt(1), NewInt(2)}}
	d.Set(point, &String{Value: "origin-ish"})

	lookup := &Tuple{Elements: []Object{NewInt(1), NewInt(2)}}
	val, ok := d.Get(lookup)
	if !ok {
		t.Fatalf("tuple key lookup failed for an element-wise equal tuple")
	}
	if val.(*String).Value != "origin-ish" {
		t.Errorf("dict value for tuple key incorrect")
	}
}
