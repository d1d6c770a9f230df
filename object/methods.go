// ==============================================================================================
// FILE: object/methods.go
// PACKAGE: object
// PURPOSE: Native methods on the built-in container and string types,
//          reached the same way a user-defined method would be: attribute
//          lookup on the receiver finds a bound BuiltinFunction here.
// ==============================================================================================

package object

import (
	"sort"
	"strings"
)

// GetMethod resolves name to a native method bound to recv, or ok=false if
// recv's type has no such method — the built-in-type half of attribute
// lookup, mirrored against Instance.GetAttr for user classes.
func GetMethod(recv Object, name string) (*BoundMethod, bool) {
	var table map[string]func(Caller, Object, []Object, *Dict) Object
	switch recv.(type) {
	case *List:
		table = listMethods
	case *Dict:
		table = dictMethods
	case *String:
		table = stringMethods
	case *Set:
		table = setMethods
	case *Tuple:
		table = tupleMethods
	default:
		return nil, false
	}
	fn, ok := table[name]
	if !ok {
		return nil, false
	}
	return &BoundMethod{Receiver: recv, Method: &BuiltinFunction{
		Name: name,
		Fn: func(call Caller, args []Object, kwargs *Dict) Object {
			return fn(call, recv, args, kwargs)
		},
	}}, true
}

var listMethods = map[string]func(Caller, Object, []Object, *Dict) Object{
	"append": func(call Caller, recv Object, args []Object, kwargs *Dict) Object {
		l := recv.(*List)
		l.Elements = append(l.Elements, args[0])
		return None
	},
	"extend": func(call Caller, recv Object, args []Object, kwargs *Dict) Object {
		l := recv.(*List)
		it, ok := Iterate(args[0], call)
		if !ok {
			call.Raise(NewException("TypeError", "'%s' object is not iterable", TypeNameOf(args[0])))
		}
		l.Elements = append(l.Elements, Materialize(it)...)
		return None
	},
	"insert": func(call Caller, recv Object, args []Object, kwargs *Dict) Object {
		l := recv.(*List)
		idx, _ := toInt64(args[0])
		i := clampIndex(int(idx), len(l.Elements))
		l.Elements = append(l.Elements[:i], append([]Object{args[1]}, l.Elements[i:]...)...)
		return None
	},
	"pop": func(call Caller, recv Object, args []Object, kwargs *Dict) Object {
		l := recv.(*List)
		if len(l.Elements) == 0 {
			call.Raise(NewException("IndexError", "pop from empty list"))
		}
		idx := len(l.Elements) - 1
		if len(args) > 0 {
			v, _ := toInt64(args[0])
			idx = normalizeIndex(int(v), len(l.Elements))
		}
		if idx < 0 || idx >= len(l.Elements) {
			call.Raise(NewException("IndexError", "pop index out of range"))
		}
		v := l.Elements[idx]
		l.Elements = append(l.Elements[:idx], l.Elements[idx+1:]...)
		return v
	},
	"remove": func(call Caller, recv Object, args []Object, kwargs *Dict) Object {
		l := recv.(*List)
		for i, v := range l.Elements {
			if call.Equals(v, args[0]) {
				l.Elements = append(l.Elements[:i], l.Elements[i+1:]...)
				return None
			}
		}
		call.Raise(NewException("ValueError", "list.remove(x): x not in list"))
		return None
	},
	"index": func(call Caller, recv Object, args []Object, kwargs *Dict) Object {
		l := recv.(*List)
		for i, v := range l.Elements {
			if call.Equals(v, args[0]) {
				return NewInt(int64(i))
			}
		}
		call.Raise(NewException("ValueError", "%s is not in list", call.ToRepr(args[0])))
		return None
	},
	"count": func(call Caller, recv Object, args []Object, kwargs *Dict) Object {
		l := recv.(*List)
		n := int64(0)
		for _, v := range l.Elements {
			if call.Equals(v, args[0]) {
				n++
			}
		}
		return NewInt(n)
	},
	"sort": func(call Caller, recv Object, args []Object, kwargs *Dict) Object {
		l := recv.(*List)
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
		keyOf := func(v Object) Object {
			if key != nil {
				return call.Call(key, []Object{v}, nil)
			}
			return v
		}
		sort.SliceStable(l.Elements, func(a, b int) bool {
			if reverse {
				return call.Less(keyOf(l.Elements[b]), keyOf(l.Elements[a]))
			}
			return call.Less(keyOf(l.Elements[a]), keyOf(l.Elements[b]))
		})
		return None
	},
	"reverse": func(call Caller, recv Object, args []Object, kwargs *Dict) Object {
		l := recv.(*List)
		for i, j := 0, len(l.Elements)-1; i < j; i, j = i+1, j-1 {
			l.Elements[i], l.Elements[j] = l.Elements[j], l.Elements[i]
		}
		return None
	},
	"copy": func(call Caller, recv Object, args []Object, kwargs *Dict) Object {
		l := recv.(*List)
		return &List{Elements: append([]Object{}, l.Elements...)}
	},
	"clear": func(call Caller, recv Object, args []Object, kwargs *Dict) Object {
		l := recv.(*List)
		l.Elements = nil
		return None
	},
}

var tupleMethods = map[string]func(Caller, Object, []Object, *Dict) Object{
	"index": func(call Caller, recv Object, args []Object, kwargs *Dict) Object {
		t := recv.(*Tuple)
		for i, v := range t.Elements {
			if call.Equals(v, args[0]) {
				return NewInt(int64(i))
			}
		}
		call.Raise(NewException("ValueError", "%s is not in tuple", call.ToRepr(args[0])))
		return None
	},
	"count": func(call Caller, recv Object, args []Object, kwargs *Dict) Object {
		t := recv.(*Tuple)
		n := int64(0)
		for _, v := range t.Elements {
			if call.Equals(v, args[0]) {
				n++
			}
		}
		return NewInt(n)
	},
}

var dictMethods = map[string]func(Caller, Object, []Object, *Dict) Object{
	"get": func(call Caller, recv Object, args []Object, kwargs *Dict) Object {
		d := recv.(*Dict)
		if v, ok := d.Get(args[0]); ok {
			return v
		}
		if len(args) > 1 {
			return args[1]
		}
		return None
	},
	"keys": func(call Caller, recv Object, args []Object, kwargs *Dict) Object {
		return &List{Elements: recv.(*Dict).Keys()}
	},
	"values": func(call Caller, recv Object, args []Object, kwargs *Dict) Object {
		return &List{Elements: recv.(*Dict).Values()}
	},
	"items": func(call Caller, recv Object, args []Object, kwargs *Dict) Object {
		tuples := recv.(*Dict).Items()
		out := make([]Object, len(tuples))
		for i, t := range tuples {
			out[i] = t
		}
		return &List{Elements: out}
	},
	"pop": func(call Caller, recv Object, args []Object, kwargs *Dict) Object {
		d := recv.(*Dict)
		if v, ok := d.Get(args[0]); ok {
			d.Delete(args[0])
			return v
		}
		if len(args) > 1 {
			return args[1]
		}
		call.Raise(NewException("KeyError", "%s", call.ToRepr(args[0])))
		return None
	},
	"setdefault": func(call Caller, recv Object, args []Object, kwargs *Dict) Object {
		d := recv.(*Dict)
		if v, ok := d.Get(args[0]); ok {
			return v
		}
		def := Object(None)
		if len(args) > 1 {
			def = args[1]
		}
		d.Set(args[0], def)
		return def
	},
	"update": func(call Caller, recv Object, args []Object, kwargs *Dict) Object {
		d := recv.(*Dict)
		if len(args) > 0 {
			if other, ok := args[0].(*Dict); ok {
				for _, k := range other.Keys() {
					v, _ := other.Get(k)
					d.Set(k, v)
				}
			}
		}
		if kwargs != nil {
			for _, k := range kwargs.Keys() {
				v, _ := kwargs.Get(k)
				d.Set(k, v)
			}
		}
		return None
	},
	"copy": func(call Caller, recv Object, args []Object, kwargs *Dict) Object {
		return recv.(*Dict).Copy()
	},
	"clear": func(call Caller, recv Object, args []Object, kwargs *Dict) Object {
		d := recv.(*Dict)
		*d = *NewDict()
		return None
	},
}

var setMethods = map[string]func(Caller, Object, []Object, *Dict) Object{
	"add": func(call Caller, recv Object, args []Object, kwargs *Dict) Object {
		recv.(*Set).Add(args[0])
		return None
	},
	"discard": func(call Caller, recv Object, args []Object, kwargs *Dict) Object {
		recv.(*Set).Discard(args[0])
		return None
	},
	"remove": func(call Caller, recv Object, args []Object, kwargs *Dict) Object {
		s := recv.(*Set)
		if !s.Has(args[0]) {
			call.Raise(NewException("KeyError", "%s", call.ToRepr(args[0])))
		}
		s.Discard(args[0])
		return None
	},
	"union": func(call Caller, recv Object, args []Object, kwargs *Dict) Object {
		out := NewSet()
		for _, v := range recv.(*Set).Items() {
			out.Add(v)
		}
		it, _ := Iterate(args[0], call)
		for _, v := range Materialize(it) {
			out.Add(v)
		}
		return out
	},
	"intersection": func(call Caller, recv Object, args []Object, kwargs *Dict) Object {
		other := NewSet()
		it, _ := Iterate(args[0], call)
		for _, v := range Materialize(it) {
			other.Add(v)
		}
		out := NewSet()
		for _, v := range recv.(*Set).Items() {
			if other.Has(v) {
				out.Add(v)
			}
		}
		return out
	},
	"difference": func(call Caller, recv Object, args []Object, kwargs *Dict) Object {
		other := NewSet()
		it, _ := Iterate(args[0], call)
		for _, v := range Materialize(it) {
			other.Add(v)
		}
		out := NewSet()
		for _, v := range recv.(*Set).Items() {
			if !other.Has(v) {
				out.Add(v)
			}
		}
		return out
	},
}

var stringMethods = map[string]func(Caller, Object, []Object, *Dict) Object{
	"upper": func(call Caller, recv Object, args []Object, kwargs *Dict) Object {
		return &String{Value: strings.ToUpper(recv.(*String).Value)}
	},
	"lower": func(call Caller, recv Object, args []Object, kwargs *Dict) Object {
		return &String{Value: strings.ToLower(recv.(*String).Value)}
	},
	"strip": func(call Caller, recv Object, args []Object, kwargs *Dict) Object {
		return &String{Value: strings.TrimSpace(recv.(*String).Value)}
	},
	"lstrip": func(call Caller, recv Object, args []Object, kwargs *Dict) Object {
		return &String{Value: strings.TrimLeft(recv.(*String).Value, " \t\n\r")}
	},
	"rstrip": func(call Caller, recv Object, args []Object, kwargs *Dict) Object {
		return &String{Value: strings.TrimRight(recv.(*String).Value, " \t\n\r")}
	},
	"split": func(call Caller, recv Object, args []Object, kwargs *Dict) Object {
		s := recv.(*String).Value
		var parts []string
		if len(args) == 0 {
			parts = strings.Fields(s)
		} else {
			sep, ok := args[0].(*String)
			if !ok {
				call.Raise(NewException("TypeError", "split() separator must be a string"))
			}
			parts = strings.Split(s, sep.Value)
		}
		out := make([]Object, len(parts))
		for i, p := range parts {
			out[i] = &String{Value: p}
		}
		return &List{Elements: out}
	},
	"join": func(call Caller, recv Object, args []Object, kwargs *Dict) Object {
		sep := recv.(*String).Value
		it, ok := Iterate(args[0], call)
		if !ok {
			call.Raise(NewException("TypeError", "join() requires an iterable"))
		}
		items := Materialize(it)
		parts := make([]string, len(items))
		for i, v := range items {
			s, ok := v.(*String)
			if !ok {
				call.Raise(NewException("TypeError", "sequence item %d: expected str instance, %s found", i, TypeNameOf(v)))
			}
			parts[i] = s.Value
		}
		return &String{Value: strings.Join(parts, sep)}
	},
	"replace": func(call Caller, recv Object, args []Object, kwargs *Dict) Object {
		old := args[0].(*String).Value
		newS := args[1].(*String).Value
		n := -1
		if len(args) > 2 {
			v, _ := toInt64(args[2])
			n = int(v)
		}
		return &String{Value: strings.Replace(recv.(*String).Value, old, newS, n)}
	},
	"startswith": func(call Caller, recv Object, args []Object, kwargs *Dict) Object {
		return NativeBool(strings.HasPrefix(recv.(*String).Value, args[0].(*String).Value))
	},
	"endswith": func(call Caller, recv Object, args []Object, kwargs *Dict) Object {
		return NativeBool(strings.HasSuffix(recv.(*String).Value, args[0].(*String).Value))
	},
	"find": func(call Caller, recv Object, args []Object, kwargs *Dict) Object {
		return NewInt(int64(strings.Index(recv.(*String).Value, args[0].(*String).Value)))
	},
	"count": func(call Caller, recv Object, args []Object, kwargs *Dict) Object {
		return NewInt(int64(strings.Count(recv.(*String).Value, args[0].(*String).Value)))
	},
	"format": func(call Caller, recv Object, args []Object, kwargs *Dict) Object {
		template := recv.(*String).Value
		var b strings.Builder
		argIdx := 0
		i := 0
		for i < len(template) {
			if template[i] == '{' && i+1 < len(template) && template[i+1] == '}' {
				if argIdx < len(args) {
					b.WriteString(call.ToStr(args[argIdx]))
					argIdx++
				}
				i += 2
				continue
			}
			b.WriteByte(template[i])
			i++
		}
		return &String{Value: b.String()}
	},
	"title": func(call Caller, recv Object, args []Object, kwargs *Dict) Object {
		return &String{Value: strings.Title(strings.ToLower(recv.(*String).Value))}
	},
	"capitalize": func(call Caller, recv Object, args []Object, kwargs *Dict) Object {
		s := recv.(*String).Value
		if s == "" {
			return &String{Value: s}
		}
		r := []rune(s)
		return &String{Value: strings.ToUpper(string(r[0])) + strings.ToLower(string(r[1:]))}
	},
	"isdigit": func(call Caller, recv Object, args []Object, kwargs *Dict) Object {
		s := recv.(*String).Value
		if s == "" {
			return False
		}
		for _, r := range s {
			if r < '0' || r > '9' {
				return False
			}
		}
		return True
	},
	"isalpha": func(call Caller, recv Object, args []Object, kwargs *Dict) Object {
		s := recv.(*String).Value
		if s == "" {
			return False
		}
		for _, r := range s {
			if !((r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')) {
				return False
			}
		}
		return True
	},
}

func clampIndex(i, n int) int {
	if i < 0 {
		i = 0
	}
	if i > n {
		i = n
	}
	return i
}

func normalizeIndex(i, n int) int {
	if i < 0 {
		return i + n
	}
	return i
}
