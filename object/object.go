// ==============================================================================================
// FILE: object/object.go
// ==============================================================================================
// PACKAGE: object
// PURPOSE: Defines the runtime type system for Glade. Every value produced by
//          the evaluator implements Object; this file holds the primitives
//          and the control-flow signal wrappers the tree walker uses to
//          unwind `return`/`break`/`continue`/`raise` through recursive Eval calls.
// ==============================================================================================

package object

import (
	"fmt"
	"math/big"
)

// ObjectType identifies the runtime type of a value.
type ObjectType string

const (
	NONE_OBJ         ObjectType = "NoneType"
	BOOL_OBJ         ObjectType = "bool"
	INT_OBJ          ObjectType = "int"
	FLOAT_OBJ        ObjectType = "float"
	STRING_OBJ       ObjectType = "str"
	LIST_OBJ         ObjectType = "list"
	TUPLE_OBJ        ObjectType = "tuple"
	DICT_OBJ         ObjectType = "dict"
	SET_OBJ          ObjectType = "set"
	RANGE_OBJ        ObjectType = "range"
	FUNCTION_OBJ     ObjectType = "function"
	BOUND_METHOD_OBJ ObjectType = "bound_method"
	BUILTIN_OBJ      ObjectType = "builtin_function"
	CLASS_OBJ        ObjectType = "class"
	INSTANCE_OBJ     ObjectType = "instance"
	PROPERTY_OBJ     ObjectType = "property"
	CLASSMETHOD_OBJ  ObjectType = "classmethod"
	STATICMETHOD_OBJ ObjectType = "staticmethod"
	ITERATOR_OBJ     ObjectType = "iterator"

	// Internal control-flow signals. These never escape into user-visible
	// values — the evaluator unwraps them at the statement/call boundary
	// that is allowed to observe them.
	RETURN_SIGNAL_OBJ   ObjectType = "RETURN_SIGNAL"
	BREAK_SIGNAL_OBJ    ObjectType = "BREAK_SIGNAL"
	CONTINUE_SIGNAL_OBJ ObjectType = "CONTINUE_SIGNAL"
	EXCEPTION_OBJ       ObjectType = "EXCEPTION"
)

// Object is the interface every Glade runtime value implements.
type Object interface {
	Type() ObjectType
	Inspect() string // repr()-style representation
}

// Stringer is implemented by objects whose str() differs from repr().
type Stringer interface {
	String() string
}

// ==== Primitives =================================================================================

type NoneType struct{}

func (n *NoneType) Type() ObjectType { return NONE_OBJ }
func (n *NoneType) Inspect() string  { return "None" }

// None is the single shared instance of NoneType, mirroring the teacher's
// singleton NULL sentinel.
var None = &NoneType{}

type Bool struct{ Value bool }

func (b *Bool) Type() ObjectType { return BOOL_OBJ }
func (b *Bool) Inspect() string {
	if b.Value {
		return "True"
	}
	return "False"
}

// True and False are the shared singleton booleans; the evaluator never
// allocates a fresh Bool so `is` comparisons on booleans behave correctly.
var (
	True  = &Bool{Value: true}
	False = &Bool{Value: false}
)

// NativeBool returns the shared True/False singleton for a Go bool.
func NativeBool(v bool) *Bool {
	if v {
		return True
	}
	return False
}

// Int wraps an arbitrary-precision integer. No third-party big-integer
// library ships in the reference corpus, so this is the one place the
// runtime reaches for the standard library's math/big instead of an
// ecosystem dependency — see DESIGN.md.
type Int struct{ Value *big.Int }

func NewInt(v int64) *Int { return &Int{Value: big.NewInt(v)} }

func (i *Int) Type() ObjectType { return INT_OBJ }
func (i *Int) Inspect() string  { return i.Value.String() }

type Float struct{ Value float64 }

func (f *Float) Type() ObjectType { return FLOAT_OBJ }
func (f *Float) Inspect() string  { return formatFloat(f.Value) }

func formatFloat(v float64) string {
	s := fmt.Sprintf("%g", v)
	// Keep float reprs visually distinct from ints, matching the language's
	// `1.0` vs `1` convention.
	for _, c := range s {
		if c == '.' || c == 'e' || c == 'n' || c == 'i' { // '.', exponent, nan/inf
			return s
		}
	}
	return s + ".0"
}

type String struct{ Value string }

func (s *String) Type() ObjectType { return STRING_OBJ }
func (s *String) Inspect() string  { return `'` + s.Value + `'` }
func (s *String) String() string   { return s.Value }

// ==== Control-flow signals =======================================================================

// ReturnSignal carries a `return` value up through nested Eval calls until
// the enclosing function-call frame catches it.
type ReturnSignal struct{ Value Object }

func (r *ReturnSignal) Type() ObjectType { return RETURN_SIGNAL_OBJ }
func (r *ReturnSignal) Inspect() string  { return "return " + r.Value.Inspect() }

type BreakSignal struct{}

func (b *BreakSignal) Type() ObjectType { return BREAK_SIGNAL_OBJ }
func (b *BreakSignal) Inspect() string  { return "break" }

type ContinueSignal struct{}

func (c *ContinueSignal) Type() ObjectType { return CONTINUE_SIGNAL_OBJ }
func (c *ContinueSignal) Inspect() string  { return "continue" }

// Exception wraps a raised value (any Object, matching Python's "anything
// raisable" model loosely — in practice an Instance of an exception class
// or a bare String) together with the name used for `except TypeName:`
// matching and a human-readable message for uncaught display.
type Exception struct {
	ClassName string
	Message   string
	Payload   Object // the actual raised value, when one was given
}

func (e *Exception) Type() ObjectType { return EXCEPTION_OBJ }
func (e *Exception) Inspect() string  { return e.ClassName + ": " + e.Message }

// NewException builds a runtime-raised exception of the given built-in
// class name, the same way the evaluator reports TypeError/ValueError/etc.
func NewException(class, format string, args ...interface{}) *Exception {
	return &Exception{ClassName: class, Message: fmt.Sprintf(format, args...)}
}

// IsTruthy implements the language's boolean-context coercion, used by
// `if`, `while`, `and`/`or`, and `not`.
func IsTruthy(obj Object) bool {
	switch v := obj.(type) {
	case *NoneType:
		return false
	case *Bool:
		return v.Value
	case *Int:
		return v.Value.Sign() != 0
	case *Float:
		return v.Value != 0
	case *String:
		return len(v.Value) > 0
	case *List:
		return len(v.Elements) > 0
	case *Tuple:
		return len(v.Elements) > 0
	case *Dict:
		return v.Len() > 0
	case *Set:
		return len(v.items) > 0
	}
	return true
}
