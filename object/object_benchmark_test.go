// ==============================================================================================
// FILE: object/object_benchmark_test.go
// ==============================================================================================
// PURPOSE: Performance benchmarks for the object system.
//          Measures hashing costs, environment access time, and class lookup overhead.
// ==============================================================================================

package object

import (
	"fmt"
	"testing"
)

func BenchmarkHashKey_String(b *testing.B) {
	s := &String{Value: "some_long_identifier_name"}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		HashKey(s)
	}
}

func BenchmarkHashKey_Int(b *testing.B) {
	n := NewInt(123456789)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		HashKey(n)
	}
}

func BenchmarkEnvironment_Get_Deep(b *testing.B) {
	root := NewEnvironment()
	root.Set("target", NewInt(1))

	curr := root
	for i := 0; i < 50; i++ {
		curr = NewEnclosedEnvironment(curr, ScopeFunction)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		curr.Get("target")
	}
}

func BenchmarkObjectInspect_LargeList(b *testing.B) {
	elements := make([]Object, 100)
	for i := 0; i < 100; i++ {
		elements[i] = NewInt(int64(i))
	}
	list := &List{Elements: elements}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		list.Inspect()
	}
}

func BenchmarkEnvironment_Set(b *testing.B) {
	env := NewEnvironment()
	val := NewInt(1)
	keys := make([]string, 1000)
	for i := 0; i < 1000; i++ {
		keys[i] = fmt.Sprintf("var%d", i)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		env.Set(keys[i%1000], val)
	}
}

func BenchmarkLookupMRO_DeepHierarchy(b *testing.B) {
	var current *Class
	for i := 0; i < 20; i++ {
		var bases []*Class
		if current != nil {
			bases = []*Class{current}
		}
		cls, _ := NewClass("Level", bases, map[string]Object{}, NewEnvironment())
		current = cls
	}
	current.Dict["answer"] = NewInt(42)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		current.LookupMRO("answer")
	}
}
