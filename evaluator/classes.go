// ==============================================================================================
// FILE: evaluator/classes.go
// PACKAGE: evaluator
// PURPOSE: Class statement evaluation, instance construction, and the
//          zero-argument super() mechanism.
// ==============================================================================================

package evaluator

import (
	"github.com/glade-lang/glade/ast"
	"github.com/glade-lang/glade/object"
)

func (ip *Interp) evalClassDef(n *ast.ClassDef, env *object.Environment) object.Object {
	var bases []*object.Class
	for _, b := range n.Bases {
		val := ip.Eval(b, env)
		cls, ok := val.(*object.Class)
		if !ok {
			ip.raise("TypeError", "bases must be classes, got '%s'", object.TypeNameOf(val))
		}
		bases = append(bases, cls)
	}

	bodyScope := object.NewEnclosedEnvironment(env, object.ScopeClassBody)
	ip.Eval(n.Body, bodyScope)

	dict := make(map[string]object.Object)
	for name, val := range bodyScope.Namespace() {
		dict[name] = val
	}

	cls, err := object.NewClass(n.Name, bases, dict, bodyScope)
	if err != nil {
		ip.raise("TypeError", "%s", err.Error())
	}
	bodyScope.SetClassCell(cls)

	decorated := ip.applyDecorators(n.Decorators, cls, env)
	ip.bindName(n.Name, decorated, env)
	return object.None
}

// instantiate creates a new Instance of cls and runs its __init__ (found
// anywhere in the MRO) with the given call arguments, the same two-step
// "allocate then initialize" protocol the language specifies.
func (ip *Interp) instantiate(cls *object.Class, args []object.Object, kwargs *object.Dict) *object.Instance {
	inst := object.NewInstance(cls)
	if initFn, _, ok := cls.LookupMRO("__init__"); ok {
		ip.Call(&object.BoundMethod{Receiver: inst, Method: initFn}, args, kwargs)
	}
	return inst
}

// evalSuperCall implements the zero-argument super(): it needs both the
// class the currently executing method was defined on (env's classCell)
// and the receiver the method was called with, which bindParams also
// stashes under the reserved name "__self__".
func (ip *Interp) evalSuperCall(env *object.Environment) object.Object {
	cls := env.ClassCell()
	if cls == nil {
		ip.raise("RuntimeError", "super(): no current class")
	}
	selfObj, ok := env.Get("__self__")
	if !ok {
		ip.raise("RuntimeError", "super(): no current instance")
	}
	self, ok := selfObj.(*object.Instance)
	if !ok {
		ip.raise("RuntimeError", "super(): __self__ is not an instance")
	}
	return &object.SuperProxy{Self: self, After: cls}
}
