// ==============================================================================================
// FILE: evaluator/control.go
// PACKAGE: evaluator
// PURPOSE: try/except/else/finally and the with-statement's context-manager
//          protocol.
// ==============================================================================================

package evaluator

import (
	"github.com/glade-lang/glade/ast"
	"github.com/glade-lang/glade/object"
)

func (ip *Interp) evalTry(n *ast.TryStatement, env *object.Environment) (result object.Object) {
	if n.Finally != nil {
		defer func() {
			ip.Eval(n.Finally, env)
		}()
	}

	caught := func() (res object.Object, exc *object.Exception) {
		defer func() {
			if r := recover(); r != nil {
				e, ok := r.(*object.Exception)
				if !ok {
					panic(r)
				}
				exc = e
			}
		}()
		return ip.Eval(n.Body, env), nil
	}
	bodyResult, exc := caught()
	if exc == nil {
		if n.Else != nil {
			return ip.Eval(n.Else, env)
		}
		return bodyResult
	}

	for _, handler := range n.Handlers {
		if !ip.exceptionMatches(exc, handler.ExcType, env) {
			continue
		}
		handlerEnv := object.NewEnclosedEnvironment(env, env.Kind())
		if handler.Name != "" {
			handlerEnv.Set(handler.Name, excValue(exc))
		}
		return ip.Eval(handler.Body, handlerEnv)
	}
	panic(exc)
}

func excValue(exc *object.Exception) object.Object {
	if exc.Payload != nil {
		return exc.Payload
	}
	return &object.String{Value: exc.Message}
}

// exceptionMatches implements `except Type:` matching: a bare `except:`,
// `except Exception:` and `except BaseException:` match anything. A raised
// Instance matches when the declared class is its class or an ancestor of
// it, checked through the MRO. An exception the evaluator raises itself
// carries no Instance payload and matches only a declared class of exactly
// the same name, so an ancestor such as ArithmeticError does not catch it.
func (ip *Interp) exceptionMatches(exc *object.Exception, excType ast.Expression, env *object.Environment) bool {
	if excType == nil {
		return true
	}
	val := ip.Eval(excType, env)
	cls, ok := val.(*object.Class)
	if !ok {
		return false
	}
	if cls.Name == "Exception" || cls.Name == "BaseException" {
		return true
	}
	if inst, ok := exc.Payload.(*object.Instance); ok {
		return inst.Class.IsSubclass(cls)
	}
	return cls.Name == exc.ClassName
}

// evalWith implements the context-manager protocol: each item's
// __enter__ runs before the body, its __exit__ always runs after (even on
// exception), and __exit__ returning a truthy value suppresses that
// exception, matching the language's `with` semantics.
func (ip *Interp) evalWith(n *ast.WithStatement, env *object.Environment) object.Object {
	return ip.evalWithItems(n.Items, n.Body, env)
}

func (ip *Interp) evalWithItems(items []ast.WithItem, body *ast.BlockStatement, env *object.Environment) (result object.Object) {
	if len(items) == 0 {
		return ip.Eval(body, env)
	}
	item := items[0]
	ctx := ip.Eval(item.Context, env)
	entered := ip.callDunder(ctx, "__enter__", nil)
	if item.Target != nil {
		ip.bindTarget(item.Target, entered, env)
	}

	var exc *object.Exception
	func() {
		defer func() {
			if r := recover(); r != nil {
				e, ok := r.(*object.Exception)
				if !ok {
					panic(r)
				}
				exc = e
			}
		}()
		result = ip.evalWithItems(items[1:], body, env)
	}()

	var excArgs []object.Object
	if exc != nil {
		excVal := excValue(exc)
		excArgs = []object.Object{&object.String{Value: exc.ClassName}, excVal, object.None}
	} else {
		excArgs = []object.Object{object.None, object.None, object.None}
	}
	suppressed := ip.callDunder(ctx, "__exit__", excArgs)
	if exc != nil && !object.IsTruthy(suppressed) {
		panic(exc)
	}
	return result
}

// callDunder invokes a dunder method on ctx if present, returning
// object.None when it's absent (only acceptable for the optional
// protocol hooks that callers of this helper already guard appropriately).
func (ip *Interp) callDunder(ctx object.Object, name string, args []object.Object) object.Object {
	inst, ok := ctx.(*object.Instance)
	if !ok {
		ip.raise("AttributeError", "'%s' object has no attribute '%s'", object.TypeNameOf(ctx), name)
	}
	fn, _, ok := inst.Class.LookupMRO(name)
	if !ok {
		ip.raise("AttributeError", "'%s' object has no attribute '%s'", inst.Class.Name, name)
	}
	return ip.Call(&object.BoundMethod{Receiver: inst, Method: fn}, args, nil)
}
