// ==============================================================================================
// FILE: object/builtins.go
// PACKAGE: object
// PURPOSE: Free built-in functions (len, range, map, ...); the native
//          methods on the built-in container/string types are in
//          methods.go. Builtins that
//          need to call back into Glade code (map's function argument,
//          sorted's key=) go through the Caller interface so this package
//          never imports evaluator.
// ==============================================================================================

package object

import (
	"fmt"
	"math/big"
	"sort"
	"strings"
)

// BuiltinType is the runtime value `type(x)` returns for a built-in (as
// opposed to user-defined) value — there is no Class backing `int` or
// `str`, so isinstance()/type() treat these as lightweight sentinels
// instead.
type BuiltinType struct{ Name string }

func (t *BuiltinType) Type() ObjectType { return ObjectType("type") }
func (t *BuiltinType) Inspect() string  { return fmt.Sprintf("<class '%s'>", t.Name) }

func TypeNameOf(o Object) string {
	switch v := o.(type) {
	case *NoneType:
		return "NoneType"
	case *Bool:
		return "bool"
	case *Int:
		return "int"
	case *Float:
		return "float"
	case *String:
		return "str"
	case *List:
		return "list"
	case *Tuple:
		return "tuple"
	case *Dict:
		return "dict"
	case *Set:
		return "set"
	case *Range:
		return "range"
	case *Function, *BoundMethod, *BuiltinFunction:
		return "function"
	case *Class:
		return "type"
	case *Instance:
		return v.Class.Name
	case *Iterator:
		return "iterator"
	}
	return string(o.Type())
}

// TypeOf implements the `type()` builtin's single-argument form.
func TypeOf(o Object) Object {
	if inst, ok := o.(*Instance); ok {
		return inst.Class
	}
	if cls, ok := o.(*Class); ok {
		return cls
	}
	return &BuiltinType{Name: TypeNameOf(o)}
}

// Iterate produces an Iterator over any iterable value: containers get a
// direct Iterator, Instances get one via their `__iter__` dunder if
// present (invoked through Caller so evaluator dunder dispatch rules
// apply), and anything else fails.
func Iterate(o Object, call Caller) (*Iterator, bool) {
	switch v := o.(type) {
	case *List:
		return NewSliceIterator(append([]Object{}, v.Elements...)), true
	case *Tuple:
		return NewSliceIterator(append([]Object{}, v.Elements...)), true
	case *Dict:
		return NewSliceIterator(v.Keys()), true
	case *Set:
		return NewSliceIterator(append([]Object{}, v.Items()...)), true
	case *Range:
		return NewRangeIterator(v), true
	case *String:
		return NewStringIterator(v.Value), true
	case *Iterator:
		return v, true
	case *Instance:
		if _, _, ok := v.Class.LookupMRO("__iter__"); ok {
			result := call.Call(mustBind(v, "__iter__"), nil, nil)
			if it, ok := result.(*Iterator); ok {
				return it, true
			}
			if nested, ok := result.(*Instance); ok {
				return instanceIterator(nested, call), true
			}
		}
	}
	return nil, false
}

func mustBind(inst *Instance, name string) Object {
	fn, _, _ := inst.Class.LookupMRO(name)
	return &BoundMethod{Receiver: inst, Method: fn}
}

// instanceIterator adapts an object exposing `__next__` (raising
// StopIteration when exhausted) to the native Iterator shape.
func instanceIterator(inst *Instance, call Caller) *Iterator {
	return &Iterator{Next: func() (Object, bool) {
		if _, _, ok := inst.Class.LookupMRO("__next__"); !ok {
			return nil, false
		}
		var result Object
		var stopped bool
		func() {
			defer func() {
				if r := recover(); r != nil {
					if exc, ok := r.(*Exception); ok && exc.ClassName == "StopIteration" {
						stopped = true
						return
					}
					panic(r)
				}
			}()
			result = call.Call(mustBind(inst, "__next__"), nil, nil)
		}()
		if stopped {
			return nil, false
		}
		return result, true
	}}
}

// Materialize drains an iterator fully into a slice — used by builtins
// (sorted, list(), tuple conversion) that need random access.
func Materialize(it *Iterator) []Object {
	var out []Object
	for {
		v, ok := it.Next()
		if !ok {
			break
		}
		out = append(out, v)
	}
	return out
}

// Builtins is the table of free functions installed into the global scope.
var Builtins map[string]*BuiltinFunction

func init() {
	Builtins = map[string]*BuiltinFunction{
		"len":          {Name: "len", Fn: builtinLen},
		"range":        {Name: "range", Fn: builtinRange},
		"enumerate":    {Name: "enumerate", Fn: builtinEnumerate},
		"zip":          {Name: "zip", Fn: builtinZip},
		"map":          {Name: "map", Fn: builtinMap},
		"filter":       {Name: "filter", Fn: builtinFilter},
		"sorted":       {Name: "sorted", Fn: builtinSorted},
		"reversed":     {Name: "reversed", Fn: builtinReversed},
		"sum":          {Name: "sum", Fn: builtinSum},
		"min":          {Name: "min", Fn: builtinMinMax(true)},
		"max":          {Name: "max", Fn: builtinMinMax(false)},
		"all":          {Name: "all", Fn: builtinAll},
		"any":          {Name: "any", Fn: builtinAny},
		"isinstance":   {Name: "isinstance", Fn: builtinIsInstance},
		"type":         {Name: "type", Fn: builtinTypeFn},
		"str":          {Name: "str", Fn: builtinStr},
		"repr":         {Name: "repr", Fn: builtinRepr},
		"int":          {Name: "int", Fn: builtinInt},
		"float":        {Name: "float", Fn: builtinFloat},
		"bool":         {Name: "bool", Fn: builtinBool},
		"dict":         {Name: "dict", Fn: builtinDict},
		"list":         {Name: "list", Fn: builtinListFn},
		"tuple":        {Name: "tuple", Fn: builtinTupleFn},
		"set":          {Name: "set", Fn: builtinSetFn},
		"iter":         {Name: "iter", Fn: builtinIter},
		"next":         {Name: "next", Fn: builtinNext},
		"print":        {Name: "print", Fn: builtinPrint},
		"abs":          {Name: "abs", Fn: builtinAbs},
		"callable":     {Name: "callable", Fn: builtinCallable},
		"property":     {Name: "property", Fn: builtinProperty},
		"classmethod":  {Name: "classmethod", Fn: builtinClassMethod},
		"staticmethod": {Name: "staticmethod", Fn: builtinStaticMethod},
	}
}

func builtinProperty(call Caller, args []Object, kwargs *Dict) Object {
	if len(args) == 0 {
		return &Property{}
	}
	return &Property{Getter: args[0]}
}

// builtinClassMethod wraps a plain function as a @classmethod descriptor:
// attribute access on either the class or an instance binds it to the
// class itself rather than an instance.
func builtinClassMethod(call Caller, args []Object, kwargs *Dict) Object {
	return &ClassMethod{Func: args[0]}
}

// builtinStaticMethod wraps a plain function as a @staticmethod
// descriptor: attribute access returns it unbound, on either the class or
// an instance.
func builtinStaticMethod(call Caller, args []Object, kwargs *Dict) Object {
	return &StaticMethod{Func: args[0]}
}

func builtinLen(call Caller, args []Object, kwargs *Dict) Object {
	if len(args) != 1 {
		call.Raise(NewException("TypeError", "len() takes exactly one argument (%d given)", len(args)))
	}
	switch v := args[0].(type) {
	case *List:
		return NewInt(int64(len(v.Elements)))
	case *Tuple:
		return NewInt(int64(len(v.Elements)))
	case *String:
		return NewInt(int64(len([]rune(v.Value))))
	case *Dict:
		return NewInt(int64(v.Len()))
	case *Set:
		return NewInt(int64(v.Len()))
	}
	call.Raise(NewException("TypeError", "object of type '%s' has no len()", TypeNameOf(args[0])))
	return None
}

func toInt64(o Object) (int64, bool) {
	i, ok := o.(*Int)
	if !ok {
		return 0, false
	}
	return i.Value.Int64(), true
}

func builtinRange(call Caller, args []Object, kwargs *Dict) Object {
	var start, stop, step int64 = 0, 0, 1
	switch len(args) {
	case 1:
		v, ok := toInt64(args[0])
		if !ok {
			call.Raise(NewException("TypeError", "range() argument must be an int"))
		}
		stop = v
	case 2:
		s, ok1 := toInt64(args[0])
		e, ok2 := toInt64(args[1])
		if !ok1 || !ok2 {
			call.Raise(NewException("TypeError", "range() arguments must be ints"))
		}
		start, stop = s, e
	case 3:
		s, ok1 := toInt64(args[0])
		e, ok2 := toInt64(args[1])
		st, ok3 := toInt64(args[2])
		if !ok1 || !ok2 || !ok3 {
			call.Raise(NewException("TypeError", "range() arguments must be ints"))
		}
		start, stop, step = s, e, st
	default:
		call.Raise(NewException("TypeError", "range expected 1 to 3 arguments, got %d", len(args)))
	}
	return &Range{Start: big.NewInt(start), Stop: big.NewInt(stop), Step: big.NewInt(step)}
}

func builtinEnumerate(call Caller, args []Object, kwargs *Dict) Object {
	if len(args) < 1 {
		call.Raise(NewException("TypeError", "enumerate() requires an iterable"))
	}
	start := int64(0)
	if len(args) > 1 {
		start, _ = toInt64(args[1])
	}
	it, ok := Iterate(args[0], call)
	if !ok {
		call.Raise(NewException("TypeError", "'%s' object is not iterable", TypeNameOf(args[0])))
	}
	idx := start
	return NewSliceIterator(wrapEnumerate(it, idx))
}

func wrapEnumerate(it *Iterator, start int64) []Object {
	items := Materialize(it)
	out := make([]Object, len(items))
	for i, v := range items {
		out[i] = &Tuple{Elements: []Object{NewInt(start + int64(i)), v}}
	}
	return out
}

func builtinZip(call Caller, args []Object, kwargs *Dict) Object {
	iters := make([][]Object, len(args))
	minLen := -1
	for i, a := range args {
		it, ok := Iterate(a, call)
		if !ok {
			call.Raise(NewException("TypeError", "'%s' object is not iterable", TypeNameOf(a)))
		}
		iters[i] = Materialize(it)
		if minLen == -1 || len(iters[i]) < minLen {
			minLen = len(iters[i])
		}
	}
	if minLen < 0 {
		minLen = 0
	}
	out := make([]Object, minLen)
	for i := 0; i < minLen; i++ {
		row := make([]Object, len(iters))
		for j := range iters {
			row[j] = iters[j][i]
		}
		out[i] = &Tuple{Elements: row}
	}
	return NewSliceIterator(out)
}

func builtinMap(call Caller, args []Object, kwargs *Dict) Object {
	if len(args) < 2 {
		call.Raise(NewException("TypeError", "map() requires a function and at least one iterable"))
	}
	fn := args[0]
	iters := make([][]Object, len(args)-1)
	minLen := -1
	for i, a := range args[1:] {
		it, ok := Iterate(a, call)
		if !ok {
			call.Raise(NewException("TypeError", "'%s' object is not iterable", TypeNameOf(a)))
		}
		iters[i] = Materialize(it)
		if minLen == -1 || len(iters[i]) < minLen {
			minLen = len(iters[i])
		}
	}
	if minLen < 0 {
		minLen = 0
	}
	out := make([]Object, minLen)
	for i := 0; i < minLen; i++ {
		callArgs := make([]Object, len(iters))
		for j := range iters {
			callArgs[j] = iters[j][i]
		}
		out[i] = call.Call(fn, callArgs, nil)
	}
	return NewSliceIterator(out)
}

func builtinFilter(call Caller, args []Object, kwargs *Dict) Object {
	if len(args) != 2 {
		call.Raise(NewException("TypeError", "filter() requires a predicate and an iterable"))
	}
	fn := args[0]
	it, ok := Iterate(args[1], call)
	if !ok {
		call.Raise(NewException("TypeError", "'%s' object is not iterable", TypeNameOf(args[1])))
	}
	var out []Object
	for _, v := range Materialize(it) {
		keep := call.Truthy(v)
		if _, isNone := fn.(*NoneType); !isNone {
			keep = call.Truthy(call.Call(fn, []Object{v}, nil))
		}
		if keep {
			out = append(out, v)
		}
	}
	return NewSliceIterator(out)
}

func builtinSorted(call Caller, args []Object, kwargs *Dict) Object {
	if len(args) != 1 {
		call.Raise(NewException("TypeError", "sorted() requires exactly one iterable"))
	}
	it, ok := Iterate(args[0], call)
	if !ok {
		call.Raise(NewException("TypeError", "'%s' object is not iterable", TypeNameOf(args[0])))
	}
	items := Materialize(it)
	var key Object
	reverse := false
	if kwargs != nil {
		if v, ok := kwargs.Get(&String{Value: "key"}); ok {
			key = v
		}
		if v, ok := kwargs.Get(&String{Value: "reverse"}); ok {
			reverse = call.Truthy(v)
		}
	}
	keyed := items
	if key != nil {
		keyed = make([]Object, len(items))
		for i, v := range items {
			keyed[i] = call.Call(key, []Object{v}, nil)
		}
	}
	idx := make([]int, len(items))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool {
		less := call.Less(keyed[idx[a]], keyed[idx[b]])
		if reverse {
			return call.Less(keyed[idx[b]], keyed[idx[a]])
		}
		return less
	})
	out := make([]Object, len(items))
	for i, j := range idx {
		out[i] = items[j]
	}
	return &List{Elements: out}
}

func builtinReversed(call Caller, args []Object, kwargs *Dict) Object {
	if len(args) != 1 {
		call.Raise(NewException("TypeError", "reversed() takes exactly one argument"))
	}
	it, ok := Iterate(args[0], call)
	if !ok {
		call.Raise(NewException("TypeError", "'%s' object is not reversible", TypeNameOf(args[0])))
	}
	items := Materialize(it)
	out := make([]Object, len(items))
	for i, v := range items {
		out[len(items)-1-i] = v
	}
	return NewSliceIterator(out)
}

func builtinSum(call Caller, args []Object, kwargs *Dict) Object {
	if len(args) < 1 {
		call.Raise(NewException("TypeError", "sum() requires an iterable"))
	}
	it, ok := Iterate(args[0], call)
	if !ok {
		call.Raise(NewException("TypeError", "'%s' object is not iterable", TypeNameOf(args[0])))
	}
	items := Materialize(it)
	var acc Object = NewInt(0)
	if len(args) > 1 {
		acc = args[1]
	}
	for _, v := range items {
		acc = numericAdd(call, acc, v)
	}
	return acc
}

// numericAdd performs `+` for sum() without routing through the full
// operator dunder protocol, since sum()'s accumulator is always a plain
// number in practice; int/int stays int, anything touching a float
// promotes to float.
func numericAdd(call Caller, a, b Object) Object {
	ai, aIsInt := a.(*Int)
	bi, bIsInt := b.(*Int)
	if aIsInt && bIsInt {
		return &Int{Value: new(big.Int).Add(ai.Value, bi.Value)}
	}
	af := toFloat64(a)
	bf := toFloat64(b)
	return &Float{Value: af + bf}
}

func toFloat64(o Object) float64 {
	switch v := o.(type) {
	case *Int:
		f := new(big.Float).SetInt(v.Value)
		out, _ := f.Float64()
		return out
	case *Float:
		return v.Value
	}
	return 0
}

func builtinMinMax(isMin bool) func(Caller, []Object, *Dict) Object {
	return func(call Caller, args []Object, kwargs *Dict) Object {
		var items []Object
		if len(args) == 1 {
			it, ok := Iterate(args[0], call)
			if !ok {
				call.Raise(NewException("TypeError", "'%s' object is not iterable", TypeNameOf(args[0])))
			}
			items = Materialize(it)
		} else {
			items = args
		}
		if len(items) == 0 {
			name := "max"
			if isMin {
				name = "min"
			}
			call.Raise(NewException("ValueError", "%s() arg is an empty sequence", name))
		}
		var key Object
		if kwargs != nil {
			if v, ok := kwargs.Get(&String{Value: "key"}); ok {
				key = v
			}
		}
		keyOf := func(v Object) Object {
			if key != nil {
				return call.Call(key, []Object{v}, nil)
			}
			return v
		}
		best := items[0]
		bestKey := keyOf(best)
		for _, v := range items[1:] {
			k := keyOf(v)
			if (isMin && call.Less(k, bestKey)) || (!isMin && call.Less(bestKey, k)) {
				best, bestKey = v, k
			}
		}
		return best
	}
}

func builtinAll(call Caller, args []Object, kwargs *Dict) Object {
	it, ok := Iterate(args[0], call)
	if !ok {
		call.Raise(NewException("TypeError", "'%s' object is not iterable", TypeNameOf(args[0])))
	}
	for _, v := range Materialize(it) {
		if !call.Truthy(v) {
			return False
		}
	}
	return True
}

func builtinAny(call Caller, args []Object, kwargs *Dict) Object {
	it, ok := Iterate(args[0], call)
	if !ok {
		call.Raise(NewException("TypeError", "'%s' object is not iterable", TypeNameOf(args[0])))
	}
	for _, v := range Materialize(it) {
		if call.Truthy(v) {
			return True
		}
	}
	return False
}

func builtinIsInstance(call Caller, args []Object, kwargs *Dict) Object {
	if len(args) != 2 {
		call.Raise(NewException("TypeError", "isinstance() takes exactly two arguments"))
	}
	check := func(obj Object, classinfo Object) bool {
		if cls, ok := classinfo.(*Class); ok {
			if inst, ok := obj.(*Instance); ok {
				return inst.Class.IsSubclass(cls)
			}
			return false
		}
		if bt, ok := classinfo.(*BuiltinType); ok {
			return TypeNameOf(obj) == bt.Name
		}
		return false
	}
	if tup, ok := args[1].(*Tuple); ok {
		for _, ci := range tup.Elements {
			if check(args[0], ci) {
				return True
			}
		}
		return False
	}
	return NativeBool(check(args[0], args[1]))
}

func builtinTypeFn(call Caller, args []Object, kwargs *Dict) Object {
	if len(args) != 1 {
		call.Raise(NewException("TypeError", "type() takes exactly one argument"))
	}
	return TypeOf(args[0])
}

func builtinStr(call Caller, args []Object, kwargs *Dict) Object {
	if len(args) == 0 {
		return &String{Value: ""}
	}
	return &String{Value: call.ToStr(args[0])}
}

func builtinRepr(call Caller, args []Object, kwargs *Dict) Object {
	return &String{Value: call.ToRepr(args[0])}
}

func builtinInt(call Caller, args []Object, kwargs *Dict) Object {
	if len(args) == 0 {
		return NewInt(0)
	}
	switch v := args[0].(type) {
	case *Int:
		return v
	case *Float:
		bi, _ := big.NewFloat(v.Value).Int(nil)
		return &Int{Value: bi}
	case *Bool:
		if v.Value {
			return NewInt(1)
		}
		return NewInt(0)
	case *String:
		base := 10
		if len(args) > 1 {
			b, _ := toInt64(args[1])
			base = int(b)
		}
		n := new(big.Int)
		_, ok := n.SetString(strings.TrimSpace(v.Value), base)
		if !ok {
			call.Raise(NewException("ValueError", "invalid literal for int() with base %d: '%s'", base, v.Value))
		}
		return &Int{Value: n}
	}
	call.Raise(NewException("TypeError", "int() argument must be a string or a number"))
	return None
}

func builtinFloat(call Caller, args []Object, kwargs *Dict) Object {
	if len(args) == 0 {
		return &Float{Value: 0}
	}
	switch v := args[0].(type) {
	case *Float:
		return v
	case *Int:
		return &Float{Value: toFloat64(v)}
	case *String:
		var f float64
		_, err := fmt.Sscanf(strings.TrimSpace(v.Value), "%g", &f)
		if err != nil {
			call.Raise(NewException("ValueError", "could not convert string to float: '%s'", v.Value))
		}
		return &Float{Value: f}
	}
	call.Raise(NewException("TypeError", "float() argument must be a string or a number"))
	return None
}

func builtinBool(call Caller, args []Object, kwargs *Dict) Object {
	if len(args) == 0 {
		return False
	}
	return NativeBool(call.Truthy(args[0]))
}

func builtinDict(call Caller, args []Object, kwargs *Dict) Object {
	d := NewDict()
	if len(args) == 1 {
		it, ok := Iterate(args[0], call)
		if !ok {
			call.Raise(NewException("TypeError", "'%s' object is not iterable", TypeNameOf(args[0])))
		}
		for _, pair := range Materialize(it) {
			tup, ok := pair.(*Tuple)
			if !ok || len(tup.Elements) != 2 {
				call.Raise(NewException("ValueError", "dict update sequence element must be a 2-tuple"))
			}
			d.Set(tup.Elements[0], tup.Elements[1])
		}
	}
	if kwargs != nil {
		for _, k := range kwargs.Keys() {
			v, _ := kwargs.Get(k)
			d.Set(k, v)
		}
	}
	return d
}

func builtinListFn(call Caller, args []Object, kwargs *Dict) Object {
	if len(args) == 0 {
		return &List{}
	}
	it, ok := Iterate(args[0], call)
	if !ok {
		call.Raise(NewException("TypeError", "'%s' object is not iterable", TypeNameOf(args[0])))
	}
	return &List{Elements: Materialize(it)}
}

func builtinTupleFn(call Caller, args []Object, kwargs *Dict) Object {
	if len(args) == 0 {
		return &Tuple{}
	}
	it, ok := Iterate(args[0], call)
	if !ok {
		call.Raise(NewException("TypeError", "'%s' object is not iterable", TypeNameOf(args[0])))
	}
	return &Tuple{Elements: Materialize(it)}
}

func builtinSetFn(call Caller, args []Object, kwargs *Dict) Object {
	s := NewSet()
	if len(args) == 1 {
		it, ok := Iterate(args[0], call)
		if !ok {
			call.Raise(NewException("TypeError", "'%s' object is not iterable", TypeNameOf(args[0])))
		}
		for _, v := range Materialize(it) {
			s.Add(v)
		}
	}
	return s
}

func builtinIter(call Caller, args []Object, kwargs *Dict) Object {
	it, ok := Iterate(args[0], call)
	if !ok {
		call.Raise(NewException("TypeError", "'%s' object is not iterable", TypeNameOf(args[0])))
	}
	return it
}

func builtinNext(call Caller, args []Object, kwargs *Dict) Object {
	it, ok := args[0].(*Iterator)
	if !ok {
		call.Raise(NewException("TypeError", "'%s' object is not an iterator", TypeNameOf(args[0])))
	}
	v, ok := it.Next()
	if !ok {
		if len(args) > 1 {
			return args[1]
		}
		call.Raise(NewException("StopIteration", ""))
	}
	return v
}

func builtinPrint(call Caller, args []Object, kwargs *Dict) Object {
	sep, end := " ", "\n"
	if kwargs != nil {
		if v, ok := kwargs.Get(&String{Value: "sep"}); ok {
			sep = call.ToStr(v)
		}
		if v, ok := kwargs.Get(&String{Value: "end"}); ok {
			end = call.ToStr(v)
		}
	}
	parts := make([]string, len(args))
	for i, a := range args {
		parts[i] = call.ToStr(a)
	}
	fmt.Print(strings.Join(parts, sep) + end)
	return None
}

func builtinAbs(call Caller, args []Object, kwargs *Dict) Object {
	switch v := args[0].(type) {
	case *Int:
		return &Int{Value: new(big.Int).Abs(v.Value)}
	case *Float:
		if v.Value < 0 {
			return &Float{Value: -v.Value}
		}
		return v
	}
	call.Raise(NewException("TypeError", "bad operand type for abs(): '%s'", TypeNameOf(args[0])))
	return None
}

func builtinCallable(call Caller, args []Object, kwargs *Dict) Object {
	switch args[0].(type) {
	case *Function, *BoundMethod, *BuiltinFunction, *Class:
		return True
	}
	return False
}
