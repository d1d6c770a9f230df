// ==============================================================================================
// FILE: evaluator/attrs.go
// PACKAGE: evaluator
// PURPOSE: Attribute read/write across Instances (with the descriptor
//          protocol for @property and method binding) and native methods
//          on built-in container/string types.
// ==============================================================================================

package evaluator

import "github.com/glade-lang/glade/object"

func (ip *Interp) getAttr(obj object.Object, name string) object.Object {
	switch v := obj.(type) {
	case *object.Instance:
		return ip.getInstanceAttr(v, name)
	case *object.SuperProxy:
		fn, _, ok := v.Self.Class.LookupFrom(v.After, name)
		if !ok {
			ip.raise("AttributeError", "'super' object has no attribute '%s'", name)
		}
		return &object.BoundMethod{Receiver: v.Self, Method: fn}
	case *object.Property:
		switch name {
		case "setter":
			return &object.BuiltinFunction{Name: "setter", Fn: func(call object.Caller, args []object.Object, kwargs *object.Dict) object.Object {
				return &object.Property{Getter: v.Getter, Setter: args[0], Deller: v.Deller}
			}}
		case "deleter":
			return &object.BuiltinFunction{Name: "deleter", Fn: func(call object.Caller, args []object.Object, kwargs *object.Dict) object.Object {
				return &object.Property{Getter: v.Getter, Setter: v.Setter, Deller: args[0]}
			}}
		case "getter":
			return &object.BuiltinFunction{Name: "getter", Fn: func(call object.Caller, args []object.Object, kwargs *object.Dict) object.Object {
				return &object.Property{Getter: args[0], Setter: v.Setter, Deller: v.Deller}
			}}
		}
	case *object.Class:
		if val, _, ok := v.LookupMRO(name); ok {
			return bindClassDescriptor(val, v)
		}
		if m, ok := object.GetMethod(v, name); ok {
			return m
		}
	case *object.Dict:
		if v2, ok := v.Get(&object.String{Value: name}); ok {
			return v2
		}
	}
	if m, ok := object.GetMethod(obj, name); ok {
		return m
	}
	ip.raise("AttributeError", "'%s' object has no attribute '%s'", object.TypeNameOf(obj), name)
	return object.None
}

func (ip *Interp) getInstanceAttr(inst *object.Instance, name string) object.Object {
	if v, ok := inst.GetAttr(name); ok {
		if prop, ok := v.(*object.Property); ok {
			if prop.Getter == nil {
				ip.raise("AttributeError", "unreadable attribute '%s'", name)
			}
			return ip.Call(prop.Getter, []object.Object{inst}, nil)
		}
		switch cm := v.(type) {
		case *object.ClassMethod:
			return &object.BoundMethod{Receiver: inst.Class, Method: cm.Func}
		case *object.StaticMethod:
			return cm.Func
		case *object.Function, *object.BuiltinFunction:
			return &object.BoundMethod{Receiver: inst, Method: v}
		}
		return v
	}
	if name == "__class__" {
		return inst.Class
	}
	ip.raise("AttributeError", "'%s' object has no attribute '%s'", inst.Class.Name, name)
	return object.None
}

// bindClassDescriptor applies the class-access binding rule for a value
// found on a Class's own MRO: a classmethod binds to the class itself, a
// staticmethod comes back unbound, and everything else (plain functions,
// properties, class variables) is returned exactly as stored — spec's
// "Functions returned unbound; properties/descriptors returned as-is".
func bindClassDescriptor(val object.Object, cls *object.Class) object.Object {
	switch v := val.(type) {
	case *object.ClassMethod:
		return &object.BoundMethod{Receiver: cls, Method: v.Func}
	case *object.StaticMethod:
		return v.Func
	}
	return val
}

func (ip *Interp) setAttr(obj object.Object, name string, val object.Object) {
	inst, ok := obj.(*object.Instance)
	if !ok {
		ip.raise("AttributeError", "'%s' object attributes are not assignable", object.TypeNameOf(obj))
	}
	if v, cls, ok := inst.Class.LookupMRO(name); ok {
		_ = cls
		if prop, ok := v.(*object.Property); ok {
			if prop.Setter == nil {
				ip.raise("AttributeError", "can't set attribute '%s'", name)
			}
			ip.Call(prop.Setter, []object.Object{inst, val}, nil)
			return
		}
	}
	inst.SetAttr(name, val)
}
