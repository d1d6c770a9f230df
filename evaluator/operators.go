// ==============================================================================================
// FILE: evaluator/operators.go
// PACKAGE: evaluator
// PURPOSE: Binary/unary/comparison operator dispatch: built-in numeric and
//          string semantics first, falling back to the operand's dunder
//          method (__add__, __eq__, __lt__, ...) for Instances.
// ==============================================================================================

package evaluator

import (
	"math"
	"math/big"

	"github.com/glade-lang/glade/object"
)

var dunderForOp = map[string]string{
	"+": "__add__", "-": "__sub__", "*": "__mul__", "/": "__truediv__",
	"//": "__floordiv__", "%": "__mod__", "**": "__pow__",
	"&": "__and__", "|": "__or__", "^": "__xor__", "<<": "__lshift__", ">>": "__rshift__",
	"==": "__eq__", "!=": "__ne__", "<": "__lt__", "<=": "__le__", ">": "__gt__", ">=": "__ge__",
}

func (ip *Interp) applyUnaryOp(op string, right object.Object) object.Object {
	switch op {
	case "-":
		switch v := right.(type) {
		case *object.Int:
			return &object.Int{Value: new(big.Int).Neg(v.Value)}
		case *object.Float:
			return &object.Float{Value: -v.Value}
		}
	case "+":
		switch right.(type) {
		case *object.Int, *object.Float:
			return right
		}
	case "~":
		if v, ok := right.(*object.Int); ok {
			return &object.Int{Value: new(big.Int).Not(v.Value)}
		}
	case "not":
		return object.NativeBool(!object.IsTruthy(right))
	}
	if inst, ok := right.(*object.Instance); ok {
		name := map[string]string{"-": "__neg__", "+": "__pos__", "~": "__invert__"}[op]
		if fn, _, ok := inst.Class.LookupMRO(name); ok {
			return ip.Call(&object.BoundMethod{Receiver: inst, Method: fn}, nil, nil)
		}
	}
	ip.raise("TypeError", "bad operand type for unary %s: '%s'", op, object.TypeNameOf(right))
	return object.None
}

func (ip *Interp) applyBinaryOp(op string, left, right object.Object) object.Object {
	if v, ok := ip.tryNumericOp(op, left, right); ok {
		return v
	}
	if v, ok := ip.tryStringOp(op, left, right); ok {
		return v
	}
	if v, ok := ip.tryContainerOp(op, left, right); ok {
		return v
	}
	if v, ok := ip.tryDunderOp(op, left, right); ok {
		return v
	}
	ip.raise("TypeError", "unsupported operand type(s) for %s: '%s' and '%s'", op, object.TypeNameOf(left), object.TypeNameOf(right))
	return object.None
}

func (ip *Interp) applyCompareOp(op string, left, right object.Object) object.Object {
	switch op {
	case "==":
		return object.NativeBool(ip.Equals(left, right))
	case "!=":
		return object.NativeBool(!ip.Equals(left, right))
	case "<":
		return object.NativeBool(ip.Less(left, right))
	case "<=":
		return object.NativeBool(!ip.Less(right, left))
	case ">":
		return object.NativeBool(ip.Less(right, left))
	case ">=":
		return object.NativeBool(!ip.Less(left, right))
	case "in":
		return object.NativeBool(ip.contains(right, left))
	case "not in":
		return object.NativeBool(!ip.contains(right, left))
	case "is":
		return object.NativeBool(left == right)
	case "is not":
		return object.NativeBool(left != right)
	}
	ip.raise("TypeError", "unknown comparison operator %s", op)
	return object.None
}

func (ip *Interp) contains(container, item object.Object) bool {
	switch c := container.(type) {
	case *object.String:
		s, ok := item.(*object.String)
		return ok && contains(c.Value, s.Value)
	case *object.List:
		for _, v := range c.Elements {
			if ip.Equals(v, item) {
				return true
			}
		}
		return false
	case *object.Tuple:
		for _, v := range c.Elements {
			if ip.Equals(v, item) {
				return true
			}
		}
		return false
	case *object.Dict:
		_, ok := c.Get(item)
		return ok
	case *object.Set:
		return c.Has(item)
	}
	ip.raise("TypeError", "argument of type '%s' is not iterable", object.TypeNameOf(container))
	return false
}

func contains(haystack, needle string) bool {
	return len(needle) == 0 || (len(haystack) >= len(needle) && indexOf(haystack, needle) >= 0)
}

func indexOf(haystack, needle string) int {
	for i := 0; i+len(needle) <= len(haystack); i++ {
		if haystack[i:i+len(needle)] == needle {
			return i
		}
	}
	return -1
}

func (ip *Interp) tryNumericOp(op string, left, right object.Object) (object.Object, bool) {
	li, lIsInt := left.(*object.Int)
	ri, rIsInt := right.(*object.Int)
	lf, lIsFloat := left.(*object.Float)
	rf, rIsFloat := right.(*object.Float)

	if !(lIsInt || lIsFloat) || !(rIsInt || rIsFloat) {
		return nil, false
	}

	if lIsInt && rIsInt {
		switch op {
		case "+":
			return &object.Int{Value: new(big.Int).Add(li.Value, ri.Value)}, true
		case "-":
			return &object.Int{Value: new(big.Int).Sub(li.Value, ri.Value)}, true
		case "*":
			return &object.Int{Value: new(big.Int).Mul(li.Value, ri.Value)}, true
		case "//":
			if ri.Value.Sign() == 0 {
				ip.raise("ZeroDivisionError", "integer division or modulo by zero")
			}
			q := new(big.Int)
			m := new(big.Int)
			q.DivMod(li.Value, ri.Value, m)
			return &object.Int{Value: q}, true
		case "%":
			if ri.Value.Sign() == 0 {
				ip.raise("ZeroDivisionError", "integer division or modulo by zero")
			}
			m := new(big.Int).Mod(li.Value, ri.Value)
			return &object.Int{Value: m}, true
		case "/":
			if ri.Value.Sign() == 0 {
				ip.raise("ZeroDivisionError", "division by zero")
			}
			lf := new(big.Float).SetInt(li.Value)
			rfl := new(big.Float).SetInt(ri.Value)
			out, _ := new(big.Float).Quo(lf, rfl).Float64()
			return &object.Float{Value: out}, true
		case "**":
			if ri.Value.Sign() >= 0 {
				return &object.Int{Value: new(big.Int).Exp(li.Value, ri.Value, nil)}, true
			}
			out := math.Pow(toF64(li), toF64(ri))
			return &object.Float{Value: out}, true
		case "&":
			return &object.Int{Value: new(big.Int).And(li.Value, ri.Value)}, true
		case "|":
			return &object.Int{Value: new(big.Int).Or(li.Value, ri.Value)}, true
		case "^":
			return &object.Int{Value: new(big.Int).Xor(li.Value, ri.Value)}, true
		case "<<":
			return &object.Int{Value: new(big.Int).Lsh(li.Value, uint(ri.Value.Int64()))}, true
		case ">>":
			return &object.Int{Value: new(big.Int).Rsh(li.Value, uint(ri.Value.Int64()))}, true
		}
		return nil, false
	}

	_ = lf
	_ = rf
	a, b := toF64(left), toF64(right)
	switch op {
	case "+":
		return &object.Float{Value: a + b}, true
	case "-":
		return &object.Float{Value: a - b}, true
	case "*":
		return &object.Float{Value: a * b}, true
	case "/":
		if b == 0 {
			ip.raise("ZeroDivisionError", "float division by zero")
		}
		return &object.Float{Value: a / b}, true
	case "//":
		if b == 0 {
			ip.raise("ZeroDivisionError", "float floor division by zero")
		}
		return &object.Float{Value: math.Floor(a / b)}, true
	case "%":
		return &object.Float{Value: math.Mod(a, b)}, true
	case "**":
		return &object.Float{Value: math.Pow(a, b)}, true
	}
	return nil, false
}

func toF64(o object.Object) float64 {
	switch v := o.(type) {
	case *object.Int:
		f := new(big.Float).SetInt(v.Value)
		out, _ := f.Float64()
		return out
	case *object.Float:
		return v.Value
	}
	return 0
}

func (ip *Interp) tryStringOp(op string, left, right object.Object) (object.Object, bool) {
	ls, lok := left.(*object.String)
	if !lok {
		return nil, false
	}
	switch op {
	case "+":
		rs, ok := right.(*object.String)
		if !ok {
			ip.raise("TypeError", "can only concatenate str (not \"%s\") to str", object.TypeNameOf(right))
		}
		return &object.String{Value: ls.Value + rs.Value}, true
	case "*":
		ri, ok := right.(*object.Int)
		if !ok {
			return nil, false
		}
		n := int(ri.Value.Int64())
		out := ""
		for i := 0; i < n; i++ {
			out += ls.Value
		}
		return &object.String{Value: out}, true
	}
	return nil, false
}

func (ip *Interp) tryContainerOp(op string, left, right object.Object) (object.Object, bool) {
	switch l := left.(type) {
	case *object.List:
		switch op {
		case "+":
			r, ok := right.(*object.List)
			if !ok {
				return nil, false
			}
			out := append([]object.Object{}, l.Elements...)
			return &object.List{Elements: append(out, r.Elements...)}, true
		case "*":
			ri, ok := right.(*object.Int)
			if !ok {
				return nil, false
			}
			var out []object.Object
			for i := 0; i < int(ri.Value.Int64()); i++ {
				out = append(out, l.Elements...)
			}
			return &object.List{Elements: out}, true
		}
	case *object.Tuple:
		if op == "+" {
			r, ok := right.(*object.Tuple)
			if !ok {
				return nil, false
			}
			out := append([]object.Object{}, l.Elements...)
			return &object.Tuple{Elements: append(out, r.Elements...)}, true
		}
	case *object.Set:
		r, ok := right.(*object.Set)
		if !ok {
			return nil, false
		}
		switch op {
		case "|":
			out := object.NewSet()
			for _, v := range l.Items() {
				out.Add(v)
			}
			for _, v := range r.Items() {
				out.Add(v)
			}
			return out, true
		case "&":
			out := object.NewSet()
			for _, v := range l.Items() {
				if r.Has(v) {
					out.Add(v)
				}
			}
			return out, true
		case "-":
			out := object.NewSet()
			for _, v := range l.Items() {
				if !r.Has(v) {
					out.Add(v)
				}
			}
			return out, true
		case "^":
			out := object.NewSet()
			for _, v := range l.Items() {
				if !r.Has(v) {
					out.Add(v)
				}
			}
			for _, v := range r.Items() {
				if !l.Has(v) {
					out.Add(v)
				}
			}
			return out, true
		}
	}
	return nil, false
}

// tryDunderOp routes an operator to the left operand's dunder method when
// it's a user-defined Instance, implementing the operator-overload half of
// the object protocol.
func (ip *Interp) tryDunderOp(op string, left, right object.Object) (object.Object, bool) {
	name, ok := dunderForOp[op]
	if !ok {
		return nil, false
	}
	inst, ok := left.(*object.Instance)
	if !ok {
		return nil, false
	}
	fn, _, ok := inst.Class.LookupMRO(name)
	if !ok {
		return nil, false
	}
	return ip.Call(&object.BoundMethod{Receiver: inst, Method: fn}, []object.Object{right}, nil), true
}
