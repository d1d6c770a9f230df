// ==============================================================================================
// FILE: evaluator/subscript.go
// PACKAGE: evaluator
// PURPOSE: Subscript read/write (a[i], a[lo:hi:step]) across every
//          built-in container plus the __getitem__/__setitem__ dunder
//          fallback for Instances.
// ==============================================================================================

package evaluator

import (
	"github.com/glade-lang/glade/ast"
	"github.com/glade-lang/glade/object"
)

func (ip *Interp) evalSubscript(obj object.Object, indexExpr ast.Expression, env *object.Environment) object.Object {
	if slice, ok := indexExpr.(*ast.SliceExpr); ok {
		return ip.evalSlice(obj, slice, env)
	}
	idx := ip.Eval(indexExpr, env)
	return ip.getSubscript(obj, idx)
}

func (ip *Interp) getSubscript(obj, idx object.Object) object.Object {
	switch c := obj.(type) {
	case *object.List:
		return c.Elements[ip.checkIndex(idx, len(c.Elements))]
	case *object.Tuple:
		return c.Elements[ip.checkIndex(idx, len(c.Elements))]
	case *object.String:
		runes := []rune(c.Value)
		return &object.String{Value: string(runes[ip.checkIndex(idx, len(runes))])}
	case *object.Dict:
		v, ok := c.Get(idx)
		if !ok {
			ip.raise("KeyError", "%s", ip.ToRepr(idx))
		}
		return v
	case *object.Range:
		i, ok := idx.(*object.Int)
		if !ok {
			ip.raise("TypeError", "range indices must be integers")
		}
		n := c.Len()
		pos := i.Value.Int64()
		if pos < 0 {
			pos += n
		}
		if pos < 0 || pos >= n {
			ip.raise("IndexError", "range object index out of range")
		}
		return c.At(pos)
	case *object.Instance:
		if fn, _, ok := c.Class.LookupMRO("__getitem__"); ok {
			return ip.Call(&object.BoundMethod{Receiver: c, Method: fn}, []object.Object{idx}, nil)
		}
	}
	ip.raise("TypeError", "'%s' object is not subscriptable", object.TypeNameOf(obj))
	return object.None
}

func (ip *Interp) setSubscript(obj, idx, val object.Object) {
	switch c := obj.(type) {
	case *object.List:
		i := ip.checkIndex(idx, len(c.Elements))
		c.Elements[i] = val
		return
	case *object.Dict:
		if !c.Set(idx, val) {
			ip.raise("TypeError", "unhashable type: '%s'", object.TypeNameOf(idx))
		}
		return
	case *object.Instance:
		if fn, _, ok := c.Class.LookupMRO("__setitem__"); ok {
			ip.Call(&object.BoundMethod{Receiver: c, Method: fn}, []object.Object{idx, val}, nil)
			return
		}
	}
	ip.raise("TypeError", "'%s' object does not support item assignment", object.TypeNameOf(obj))
}

func (ip *Interp) checkIndex(idx object.Object, n int) int {
	i, ok := idx.(*object.Int)
	if !ok {
		ip.raise("TypeError", "indices must be integers, not '%s'", object.TypeNameOf(idx))
	}
	pos := int(i.Value.Int64())
	if pos < 0 {
		pos += n
	}
	if pos < 0 || pos >= n {
		ip.raise("IndexError", "index out of range")
	}
	return pos
}

func (ip *Interp) evalSlice(obj object.Object, s *ast.SliceExpr, env *object.Environment) object.Object {
	length, elements, isList, isString, raw := ip.sliceSource(obj)
	lo, hi, step := ip.resolveSlice(s, env, length)

	idxs := sliceIndices(lo, hi, step, length)
	switch {
	case isList:
		out := make([]object.Object, len(idxs))
		for i, j := range idxs {
			out[i] = elements[j]
		}
		return &object.List{Elements: out}
	case isString:
		runes := []rune(raw)
		out := make([]rune, len(idxs))
		for i, j := range idxs {
			out[i] = runes[j]
		}
		return &object.String{Value: string(out)}
	default:
		out := make([]object.Object, len(idxs))
		for i, j := range idxs {
			out[i] = elements[j]
		}
		return &object.Tuple{Elements: out}
	}
}

func (ip *Interp) sliceSource(obj object.Object) (length int, elements []object.Object, isList, isString bool, raw string) {
	switch c := obj.(type) {
	case *object.List:
		return len(c.Elements), c.Elements, true, false, ""
	case *object.Tuple:
		return len(c.Elements), c.Elements, false, false, ""
	case *object.String:
		runes := []rune(c.Value)
		return len(runes), nil, false, true, c.Value
	}
	ip.raise("TypeError", "'%s' object is not sliceable", object.TypeNameOf(obj))
	return 0, nil, false, false, ""
}

func (ip *Interp) resolveSlice(s *ast.SliceExpr, env *object.Environment, length int) (lo, hi, step int) {
	step = 1
	if s.Step != nil {
		v := ip.Eval(s.Step, env)
		i, ok := v.(*object.Int)
		if !ok || i.Value.Sign() == 0 {
			ip.raise("ValueError", "slice step cannot be zero")
		}
		step = int(i.Value.Int64())
	}
	if step > 0 {
		lo, hi = 0, length
	} else {
		lo, hi = length-1, -1
	}
	if s.Lower != nil {
		v := ip.Eval(s.Lower, env)
		lo = sliceBound(v, length, step > 0)
	}
	if s.Upper != nil {
		v := ip.Eval(s.Upper, env)
		hi = sliceBound(v, length, step > 0)
	}
	return lo, hi, step
}

func sliceBound(v object.Object, length int, forward bool) int {
	i, ok := v.(*object.Int)
	if !ok {
		return 0
	}
	pos := int(i.Value.Int64())
	if pos < 0 {
		pos += length
		if forward && pos < 0 {
			pos = 0
		}
		if !forward && pos < -1 {
			pos = -1
		}
	} else if forward && pos > length {
		pos = length
	} else if !forward && pos >= length {
		pos = length - 1
	}
	return pos
}

func sliceIndices(lo, hi, step, length int) []int {
	var out []int
	if step > 0 {
		for i := lo; i < hi && i < length; i += step {
			if i >= 0 {
				out = append(out, i)
			}
		}
	} else {
		for i := lo; i > hi && i >= 0; i += step {
			if i < length {
				out = append(out, i)
			}
		}
	}
	return out
}
