// ==============================================================================================
// FILE: object/exceptions.go
// PACKAGE: object
// PURPOSE: The built-in exception hierarchy (BaseException down through the
//          concrete error classes the evaluator itself raises), so scripts
//          can name, catch, and subclass them like any other class rather
//          than exceptions only existing as bare strings.
// ==============================================================================================

package object

// exceptionSpec describes one built-in exception class: its name and its
// direct parent's name ("" for BaseException, the root).
type exceptionSpec struct {
	name   string
	parent string
}

// builtinExceptionSpecs mirrors Python's exception hierarchy closely
// enough to support the evaluator's own raise sites and idiomatic
// `except ValueError:` / `except ArithmeticError:` style catching.
var builtinExceptionSpecs = []exceptionSpec{
	{"BaseException", ""},
	{"Exception", "BaseException"},
	{"TypeError", "Exception"},
	{"ValueError", "Exception"},
	{"NameError", "Exception"},
	{"AttributeError", "Exception"},
	{"RuntimeError", "Exception"},
	{"NotImplementedError", "RuntimeError"},
	{"StopIteration", "Exception"},
	{"SyntaxError", "Exception"},
	{"LookupError", "Exception"},
	{"IndexError", "LookupError"},
	{"KeyError", "LookupError"},
	{"ArithmeticError", "Exception"},
	{"ZeroDivisionError", "ArithmeticError"},
	{"OverflowError", "ArithmeticError"},
}

// exceptionInit builds the __init__ every built-in exception class shares:
// it stores the constructor arguments as self.args (a tuple, matching
// Python's BaseException.args) and, when at least one argument was given,
// mirrors the first one onto self.message for the common single-string
// case.
func exceptionInit() *BuiltinFunction {
	return &BuiltinFunction{
		Name: "__init__",
		Fn: func(call Caller, args []Object, kwargs *Dict) Object {
			self := args[0].(*Instance)
			rest := append([]Object{}, args[1:]...)
			self.Attrs["args"] = &Tuple{Elements: rest}
			if len(rest) > 0 {
				self.Attrs["message"] = rest[0]
			} else {
				self.Attrs["message"] = &String{Value: ""}
			}
			return None
		},
	}
}

// exceptionStr renders an exception the way str(exc) and an uncaught
// traceback both want: just the message, with no class-name prefix (the
// caller adds that separately when formatting a traceback).
func exceptionStr() *BuiltinFunction {
	return &BuiltinFunction{
		Name: "__str__",
		Fn: func(call Caller, args []Object, kwargs *Dict) Object {
			self := args[0].(*Instance)
			if msg, ok := self.Attrs["message"]; ok {
				return &String{Value: call.ToStr(msg)}
			}
			return &String{Value: ""}
		},
	}
}

// NewExceptionClasses builds the built-in exception hierarchy as ordinary
// Class values, suitable for binding into a global Environment so scripts
// can reference, catch, and subclass them by name.
func NewExceptionClasses() map[string]*Class {
	classes := make(map[string]*Class, len(builtinExceptionSpecs))
	for _, spec := range builtinExceptionSpecs {
		var bases []*Class
		if spec.parent != "" {
			bases = []*Class{classes[spec.parent]}
		}
		dict := map[string]Object{
			"__init__": exceptionInit(),
			"__str__":  exceptionStr(),
		}
		cls, err := NewClass(spec.name, bases, dict, NewEnvironment())
		if err != nil {
			// The hierarchy above is fixed and acyclic; C3 linearization
			// cannot fail for single inheritance.
			panic(err)
		}
		classes[spec.name] = cls
	}
	return classes
}
