// ==============================================================================================
// FILE: object/function.go
// PACKAGE: object
// PURPOSE: Callable values — user-defined functions and their bound-method
//          form, native builtins, and the property descriptor.
// ==============================================================================================

package object

import (
	"fmt"

	"github.com/glade-lang/glade/ast"
)

// Function is a closure produced by a `def` (or `lambda`): its Env is the
// scope it was defined in, captured by reference so nested functions see
// later mutations of enclosing variables.
type Function struct {
	Name       string // "" for a lambda
	Params     *ast.Params
	Body       *ast.BlockStatement
	Env        *Environment
	Decorators []Object // already-evaluated decorator callables, outermost last
}

func (f *Function) Type() ObjectType { return FUNCTION_OBJ }
func (f *Function) Inspect() string {
	if f.Name == "" {
		return "<function <lambda>>"
	}
	return fmt.Sprintf("<function %s>", f.Name)
}

// BoundMethod pairs a Function (or any callable) with the instance it was
// looked up on, so calling it implicitly supplies `self` as the first
// argument — the same mechanism Python uses for attribute-lookup binding.
type BoundMethod struct {
	Receiver Object
	Method   Object // *Function or *BuiltinFunction
}

func (b *BoundMethod) Type() ObjectType { return BOUND_METHOD_OBJ }
func (b *BoundMethod) Inspect() string {
	return fmt.Sprintf("<bound method of %s>", b.Receiver.Inspect())
}

// BuiltinFunction wraps a native Go implementation of a free function
// (len, range, map, ...) or a native method on a built-in type
// (str.upper, list.append, ...). Builtins that need to invoke Glade
// callables themselves (map, filter, sorted(key=...)) receive a Call
// callback rather than reaching into the evaluator package directly,
// keeping object free of an import cycle on evaluator.
type BuiltinFunction struct {
	Name string
	Fn   func(call Caller, args []Object, kwargs *Dict) Object
}

func (b *BuiltinFunction) Type() ObjectType { return BUILTIN_OBJ }
func (b *BuiltinFunction) Inspect() string  { return fmt.Sprintf("<built-in function %s>", b.Name) }

// Caller is the minimal surface a builtin needs to invoke a Glade callable
// and to reuse the evaluator's operator/conversion protocol (equality,
// ordering, str()/repr() dunder dispatch) without object importing
// evaluator and creating a cycle.
type Caller interface {
	Call(fn Object, args []Object, kwargs *Dict) Object
	Equals(a, b Object) bool
	Less(a, b Object) bool
	ToStr(o Object) string
	ToRepr(o Object) string
	Truthy(o Object) bool
	Raise(exc *Exception) // panics with exc wrapped for the evaluator to catch
}

// ClassMethod is the runtime form of @classmethod: attribute lookup binds
// Func to the owning class (not an instance) as its receiver, on either a
// Class or an Instance access.
type ClassMethod struct {
	Func Object
}

func (c *ClassMethod) Type() ObjectType { return CLASSMETHOD_OBJ }
func (c *ClassMethod) Inspect() string  { return "<classmethod object>" }

// StaticMethod is the runtime form of @staticmethod: attribute lookup
// returns Func unbound, exactly as defined, regardless of whether it was
// looked up on the class or an instance.
type StaticMethod struct {
	Func Object
}

func (s *StaticMethod) Type() ObjectType { return STATICMETHOD_OBJ }
func (s *StaticMethod) Inspect() string  { return "<staticmethod object>" }

// Property is the runtime form of @property: a descriptor holding the
// getter, and optionally the setter/deleter registered via
// `@name.setter`/`@name.deleter`. Attribute lookup on an Instance checks
// for a Property with a setter on the class (or an ancestor) before the
// instance's own dict; a getter-only Property is found only after the
// instance dict, implementing the descriptor protocol.
type Property struct {
	Getter Object
	Setter Object
	Deller Object
}

func (p *Property) Type() ObjectType { return PROPERTY_OBJ }
func (p *Property) Inspect() string  { return "<property object>" }
