// ==============================================================================================
// FILE: evaluator/caller.go
// PACKAGE: evaluator
// PURPOSE: Implements object.Caller — the equality/ordering/string-
//          conversion/truthiness protocol builtins reuse instead of
//          duplicating dunder dispatch themselves.
// ==============================================================================================

package evaluator

import (
	"github.com/glade-lang/glade/object"
)

func (ip *Interp) Raise(exc *object.Exception) { panic(exc) }

func (ip *Interp) Truthy(o object.Object) bool {
	if inst, ok := o.(*object.Instance); ok {
		if fn, _, ok := inst.Class.LookupMRO("__bool__"); ok {
			return object.IsTruthy(ip.Call(&object.BoundMethod{Receiver: inst, Method: fn}, nil, nil))
		}
		if fn, _, ok := inst.Class.LookupMRO("__len__"); ok {
			v := ip.Call(&object.BoundMethod{Receiver: inst, Method: fn}, nil, nil)
			if i, ok := v.(*object.Int); ok {
				return i.Value.Sign() != 0
			}
		}
	}
	return object.IsTruthy(o)
}

func (ip *Interp) Equals(a, b object.Object) bool {
	if inst, ok := a.(*object.Instance); ok {
		if fn, _, ok := inst.Class.LookupMRO("__eq__"); ok {
			return object.IsTruthy(ip.Call(&object.BoundMethod{Receiver: inst, Method: fn}, []object.Object{b}, nil))
		}
	}
	switch av := a.(type) {
	case *object.NoneType:
		_, ok := b.(*object.NoneType)
		return ok
	case *object.Bool:
		bv, ok := b.(*object.Bool)
		return ok && av.Value == bv.Value
	case *object.Int:
		if bv, ok := b.(*object.Int); ok {
			return av.Value.Cmp(bv.Value) == 0
		}
		if bv, ok := b.(*object.Float); ok {
			return toF64(av) == bv.Value
		}
		return false
	case *object.Float:
		bf := toF64(b)
		switch b.(type) {
		case *object.Int, *object.Float:
			return av.Value == bf
		}
		return false
	case *object.String:
		bv, ok := b.(*object.String)
		return ok && av.Value == bv.Value
	case *object.List:
		bv, ok := b.(*object.List)
		if !ok || len(av.Elements) != len(bv.Elements) {
			return false
		}
		for i := range av.Elements {
			if !ip.Equals(av.Elements[i], bv.Elements[i]) {
				return false
			}
		}
		return true
	case *object.Tuple:
		bv, ok := b.(*object.Tuple)
		if !ok || len(av.Elements) != len(bv.Elements) {
			return false
		}
		for i := range av.Elements {
			if !ip.Equals(av.Elements[i], bv.Elements[i]) {
				return false
			}
		}
		return true
	case *object.Dict:
		bv, ok := b.(*object.Dict)
		if !ok || av.Len() != bv.Len() {
			return false
		}
		for _, k := range av.Keys() {
			v1, _ := av.Get(k)
			v2, ok := bv.Get(k)
			if !ok || !ip.Equals(v1, v2) {
				return false
			}
		}
		return true
	case *object.Set:
		bv, ok := b.(*object.Set)
		if !ok || av.Len() != bv.Len() {
			return false
		}
		for _, v := range av.Items() {
			if !bv.Has(v) {
				return false
			}
		}
		return true
	}
	return a == b
}

func (ip *Interp) Less(a, b object.Object) bool {
	if inst, ok := a.(*object.Instance); ok {
		if fn, _, ok := inst.Class.LookupMRO("__lt__"); ok {
			return object.IsTruthy(ip.Call(&object.BoundMethod{Receiver: inst, Method: fn}, []object.Object{b}, nil))
		}
	}
	switch av := a.(type) {
	case *object.Int:
		if bv, ok := b.(*object.Int); ok {
			return av.Value.Cmp(bv.Value) < 0
		}
		return toF64(av) < toF64(b)
	case *object.Float:
		return av.Value < toF64(b)
	case *object.String:
		bv, ok := b.(*object.String)
		if !ok {
			ip.raise("TypeError", "'<' not supported between instances of 'str' and '%s'", object.TypeNameOf(b))
		}
		return av.Value < bv.Value
	case *object.List:
		bv, ok := b.(*object.List)
		if !ok {
			ip.raise("TypeError", "'<' not supported between instances of 'list' and '%s'", object.TypeNameOf(b))
		}
		return ip.lessSlice(av.Elements, bv.Elements)
	case *object.Tuple:
		bv, ok := b.(*object.Tuple)
		if !ok {
			ip.raise("TypeError", "'<' not supported between instances of 'tuple' and '%s'", object.TypeNameOf(b))
		}
		return ip.lessSlice(av.Elements, bv.Elements)
	}
	ip.raise("TypeError", "'<' not supported between instances of '%s' and '%s'", object.TypeNameOf(a), object.TypeNameOf(b))
	return false
}

func (ip *Interp) lessSlice(a, b []object.Object) bool {
	for i := 0; i < len(a) && i < len(b); i++ {
		if ip.Equals(a[i], b[i]) {
			continue
		}
		return ip.Less(a[i], b[i])
	}
	return len(a) < len(b)
}

func (ip *Interp) ToStr(o object.Object) string {
	if inst, ok := o.(*object.Instance); ok {
		if fn, _, ok := inst.Class.LookupMRO("__str__"); ok {
			return ip.stringResult(ip.Call(&object.BoundMethod{Receiver: inst, Method: fn}, nil, nil))
		}
		if fn, _, ok := inst.Class.LookupMRO("__repr__"); ok {
			return ip.stringResult(ip.Call(&object.BoundMethod{Receiver: inst, Method: fn}, nil, nil))
		}
	}
	if s, ok := o.(*object.String); ok {
		return s.Value
	}
	return o.Inspect()
}

func (ip *Interp) ToRepr(o object.Object) string {
	if inst, ok := o.(*object.Instance); ok {
		if fn, _, ok := inst.Class.LookupMRO("__repr__"); ok {
			return ip.stringResult(ip.Call(&object.BoundMethod{Receiver: inst, Method: fn}, nil, nil))
		}
	}
	return o.Inspect()
}

func (ip *Interp) stringResult(o object.Object) string {
	s, ok := o.(*object.String)
	if !ok {
		ip.raise("TypeError", "__str__ returned non-string (type %s)", object.TypeNameOf(o))
	}
	return s.Value
}
