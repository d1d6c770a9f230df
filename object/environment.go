// ==============================================================================================
// FILE: object/environment.go
// PACKAGE: object
// PURPOSE: Lexical scope chain. Generalizes the teacher's flat
//          store/outer Environment with the scope-kind distinctions the
//          language's name-resolution rules require: class bodies do not
//          participate in enclosing-function lookup the way nested
//          functions do, and `global`/`nonlocal` need an explicit target
//          scope to write through to rather than the nearest one.
// ==============================================================================================

package object

// ScopeKind tags what kind of block an Environment represents, since
// closures skip over class-body scopes when resolving free variables but
// must stop at the nearest enclosing function scope for `nonlocal`.
type ScopeKind int

const (
	ScopeGlobal ScopeKind = iota
	ScopeFunction
	ScopeClassBody
)

// Environment is one frame of the scope chain.
type Environment struct {
	store map[string]Object
	outer *Environment
	kind  ScopeKind

	// classCell holds the class currently being defined, for bodies of kind
	// ScopeClassBody, and is propagated to method Environments as the
	// implicit anchor zero-arg `super()` resolves against.
	classCell *Class

	// globals records names this frame declared `global`, steering plain
	// assignment to write through to the module scope instead of binding
	// locally.
	globals map[string]bool

	// nonlocals maps a name this frame declared `nonlocal` to the specific
	// enclosing function frame that already binds it, resolved once when
	// the `nonlocal` statement runs.
	nonlocals map[string]*Environment
}

// NewEnvironment creates a fresh top-level (global) scope.
func NewEnvironment() *Environment {
	return &Environment{store: make(map[string]Object), kind: ScopeGlobal}
}

// NewEnclosedEnvironment creates a nested scope of the given kind, chained
// to outer for name resolution.
func NewEnclosedEnvironment(outer *Environment, kind ScopeKind) *Environment {
	env := NewEnvironment()
	env.outer = outer
	env.kind = kind
	env.classCell = outer.classCell
	return env
}

// Get resolves name by walking outward through the scope chain. A
// statement evaluated directly against a class-body frame still sees that
// frame's own bindings (the check below against e.store), but a frame
// looking *past* an enclosing class body for a free variable skips it
// entirely — methods defined in a class body do not close over the class
// namespace, only over the enclosing function/global chain, per the
// language's scoping rule.
func (e *Environment) Get(name string) (Object, bool) {
	obj, ok := e.store[name]
	if ok {
		return obj, true
	}
	outer := e.outer
	for outer != nil && outer.kind == ScopeClassBody {
		outer = outer.outer
	}
	if outer != nil {
		return outer.Get(name)
	}
	return nil, false
}

// GetLocal looks up name only in this frame, without walking outward —
// interp.Interpreter.Global uses it to read a module-level binding.
func (e *Environment) GetLocal(name string) (Object, bool) {
	obj, ok := e.store[name]
	return obj, ok
}

// Set binds name in this frame (the usual case for assignment inside the
// innermost scope: parameter binding, `for` targets, plain `x = ...`).
func (e *Environment) Set(name string, val Object) Object {
	e.store[name] = val
	return val
}

// SetExisting walks outward and rebinds name in the frame that already
// defines it, or returns false if no such frame exists. The evaluator's
// assignment and `global`/`nonlocal` handling do not call it.
func (e *Environment) SetExisting(name string, val Object) bool {
	if _, ok := e.store[name]; ok {
		e.store[name] = val
		return true
	}
	if e.outer != nil {
		return e.outer.SetExisting(name, val)
	}
	return false
}

// Global walks to the outermost frame and binds name there, implementing
// the `global` statement.
func (e *Environment) Global(name string, val Object) {
	env := e
	for env.outer != nil {
		env = env.outer
	}
	env.store[name] = val
}

// GlobalScope returns the outermost frame.
func (e *Environment) GlobalScope() *Environment {
	env := e
	for env.outer != nil {
		env = env.outer
	}
	return env
}

// EnclosingFunction walks outward to the nearest ScopeFunction frame,
// passing over class-body frames, and returns nil when there is none. The
// `nonlocal` statement resolves its target through ResolveNonlocal instead.
func (e *Environment) EnclosingFunction() *Environment {
	env := e.outer
	for env != nil {
		if env.kind == ScopeFunction {
			return env
		}
		env = env.outer
	}
	return nil
}

// DeclareGlobal records that this frame's `global` statement named name,
// so bindName routes plain assignment of it to the module scope instead of
// binding it locally.
func (e *Environment) DeclareGlobal(name string) {
	if e.globals == nil {
		e.globals = make(map[string]bool)
	}
	e.globals[name] = true
}

// IsGlobalDeclared reports whether this frame (not the chain — `global` is
// not inherited by nested function scopes) declared name global.
func (e *Environment) IsGlobalDeclared(name string) bool {
	return e.globals != nil && e.globals[name]
}

// ResolveNonlocal searches outward from e, skipping class-body frames, for
// the nearest enclosing function frame that already binds name locally —
// the frame a `nonlocal name` declaration must target. Returns false if no
// such frame exists before the chain runs out.
func (e *Environment) ResolveNonlocal(name string) (*Environment, bool) {
	env := e.outer
	for env != nil {
		if env.kind == ScopeClassBody {
			env = env.outer
			continue
		}
		if env.kind == ScopeFunction {
			if _, ok := env.store[name]; ok {
				return env, true
			}
		}
		env = env.outer
	}
	return nil, false
}

// DeclareNonlocal records that this frame's `nonlocal` statement named name
// and resolved it to target, so bindName writes straight into target
// instead of binding name locally.
func (e *Environment) DeclareNonlocal(name string, target *Environment) {
	if e.nonlocals == nil {
		e.nonlocals = make(map[string]*Environment)
	}
	e.nonlocals[name] = target
}

// NonlocalTarget returns the frame a prior `nonlocal` declaration in this
// frame resolved name to, if any.
func (e *Environment) NonlocalTarget(name string) (*Environment, bool) {
	if e.nonlocals == nil {
		return nil, false
	}
	env, ok := e.nonlocals[name]
	return env, ok
}

// Delete removes name from this frame only, used by `del`.
func (e *Environment) Delete(name string) bool {
	if _, ok := e.store[name]; !ok {
		return false
	}
	delete(e.store, name)
	return true
}

// Kind reports which kind of frame this is.
func (e *Environment) Kind() ScopeKind { return e.kind }

// Namespace returns this frame's own bindings, used to collect a class
// body's statements into the class's Dict once the body has executed.
func (e *Environment) Namespace() map[string]Object { return e.store }

// SetClassCell records the class currently being defined, so zero-arg
// `super()` inside its methods can find it.
func (e *Environment) SetClassCell(c *Class) { e.classCell = c }

// ClassCell returns the nearest enclosing class, or nil outside of one.
func (e *Environment) ClassCell() *Class { return e.classCell }
