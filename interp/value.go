// ==============================================================================================
// FILE: interp/value.go
// PACKAGE: interp
// PURPOSE: Value is a thin host-facing wrapper around object.Object — it
//          keeps every other package's internals (Environment, Caller,
//          the AST) out of the embedder's view entirely.
// ==============================================================================================

package interp

import (
	"math/big"

	"github.com/glade-lang/glade/evaluator"
	"github.com/glade-lang/glade/object"
)

// Value wraps a single Glade runtime value for host code.
type Value struct {
	obj object.Object
}

// Kind reports the runtime type name, the same string Glade's own type()
// builtin would report (e.g. "int", "str", "list", or a class name for a
// user-defined instance).
func (v Value) Kind() string {
	if v.obj == nil {
		return "NoneType"
	}
	return object.TypeNameOf(v.obj)
}

// IsNone reports whether the value is Glade's None.
func (v Value) IsNone() bool {
	_, ok := v.obj.(*object.NoneType)
	return ok || v.obj == nil
}

// Int extracts an integer value, ok=false if the value is not an int.
func (v Value) Int() (*big.Int, bool) {
	i, ok := v.obj.(*object.Int)
	if !ok {
		return nil, false
	}
	return i.Value, true
}

// Float extracts a float value, ok=false if the value is not a float.
func (v Value) Float() (float64, bool) {
	f, ok := v.obj.(*object.Float)
	if !ok {
		return 0, false
	}
	return f.Value, true
}

// Str extracts a string value, ok=false if the value is not a str.
func (v Value) Str() (string, bool) {
	s, ok := v.obj.(*object.String)
	if !ok {
		return "", false
	}
	return s.Value, true
}

// Bool extracts a boolean value, ok=false if the value is not a bool.
func (v Value) Bool() (bool, bool) {
	b, ok := v.obj.(*object.Bool)
	if !ok {
		return false, false
	}
	return b.Value, true
}

// String implements fmt.Stringer using Glade's own str() conversion, so
// printing a Value from host code matches what the script itself would
// print.
func (v Value) String() string {
	if v.obj == nil {
		return "None"
	}
	return evaluator.Instance.ToStr(v.obj)
}

// Native recursively converts a Value into plain Go data: int64/*big.Int
// for ints that overflow it, float64, string, bool, nil for None,
// []any for list/tuple, map[any]any is avoided in favor of an ordered
// []KeyValue for dict (Go maps cannot use arbitrary keys and don't
// preserve order), and []any for set.
func (v Value) Native() any {
	return nativeOf(v.obj)
}

// KeyValue is one entry of a dict converted to native form, kept as a
// slice instead of a map so insertion order survives the round trip.
type KeyValue struct {
	Key   any
	Value any
}

func nativeOf(o object.Object) any {
	switch val := o.(type) {
	case nil, *object.NoneType:
		return nil
	case *object.Bool:
		return val.Value
	case *object.Int:
		if val.Value.IsInt64() {
			return val.Value.Int64()
		}
		return val.Value
	case *object.Float:
		return val.Value
	case *object.String:
		return val.Value
	case *object.List:
		out := make([]any, len(val.Elements))
		for i, e := range val.Elements {
			out[i] = nativeOf(e)
		}
		return out
	case *object.Tuple:
		out := make([]any, len(val.Elements))
		for i, e := range val.Elements {
			out[i] = nativeOf(e)
		}
		return out
	case *object.Dict:
		out := make([]KeyValue, 0, val.Len())
		for _, k := range val.Keys() {
			v, _ := val.Get(k)
			out = append(out, KeyValue{Key: nativeOf(k), Value: nativeOf(v)})
		}
		return out
	case *object.Set:
		items := val.Items()
		out := make([]any, len(items))
		for i, e := range items {
			out[i] = nativeOf(e)
		}
		return out
	}
	return Value{obj: o}
}
