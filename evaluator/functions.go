// ==============================================================================================
// FILE: evaluator/functions.go
// PACKAGE: evaluator
// PURPOSE: Function definitions, call evaluation, and the argument-binding
//          algorithm shared by every callable shape (positional, *args,
//          keyword-only, **kwargs, defaults).
// ==============================================================================================

package evaluator

import (
	"github.com/glade-lang/glade/ast"
	"github.com/glade-lang/glade/object"
)

func (ip *Interp) evalFunctionDef(n *ast.FunctionDef, env *object.Environment) object.Object {
	fn := &object.Function{Name: n.Name, Params: n.Params, Body: n.Body, Env: env}
	decorated := ip.applyDecorators(n.Decorators, fn, env)
	ip.bindName(n.Name, decorated, env)
	return object.None
}

// applyDecorators evaluates each decorator expression and wraps value in
// order, innermost (closest to the def) first — `@a @b def f` becomes
// `f = a(b(f))`.
func (ip *Interp) applyDecorators(decorators []ast.Expression, value object.Object, env *object.Environment) object.Object {
	for i := len(decorators) - 1; i >= 0; i-- {
		dec := ip.Eval(decorators[i], env)
		value = ip.Call(dec, []object.Object{value}, nil)
	}
	return value
}

func (ip *Interp) evalCall(n *ast.CallExpr, env *object.Environment) object.Object {
	if ident, ok := n.Func.(*ast.Identifier); ok && ident.Value == "super" {
		if _, shadowed := env.Get("super"); !shadowed && len(n.Args) == 0 {
			return ip.evalSuperCall(env)
		}
	}

	fn := ip.Eval(n.Func, env)

	var args []object.Object
	for _, a := range n.Args {
		if star, ok := a.(*ast.Starred); ok {
			v := ip.Eval(star.Value, env)
			it, ok := object.Iterate(v, ip)
			if !ok {
				ip.raise("TypeError", "argument after * must be an iterable")
			}
			args = append(args, object.Materialize(it)...)
			continue
		}
		args = append(args, ip.Eval(a, env))
	}

	var kwargs *object.Dict
	if len(n.Keywords) > 0 || n.DoubleStar != nil {
		kwargs = object.NewDict()
		for _, kw := range n.Keywords {
			kwargs.Set(&object.String{Value: kw.Name}, ip.Eval(kw.Value, env))
		}
		if n.DoubleStar != nil {
			spread := ip.Eval(n.DoubleStar, env)
			d, ok := spread.(*object.Dict)
			if !ok {
				ip.raise("TypeError", "argument after ** must be a dict")
			}
			for _, k := range d.Keys() {
				v, _ := d.Get(k)
				kwargs.Set(k, v)
			}
		}
	}

	return ip.Call(fn, args, kwargs)
}

// Call invokes any callable value, implementing object.Caller for the
// builtins package. This is the single dispatch point every call site
// (CallExpr, decorators, builtins invoking user functions, dunder lookups)
// funnels through.
func (ip *Interp) Call(fn object.Object, args []object.Object, kwargs *object.Dict) object.Object {
	switch f := fn.(type) {
	case *object.Function:
		return ip.callFunction(f, args, kwargs)
	case *object.BoundMethod:
		full := append([]object.Object{f.Receiver}, args...)
		return ip.Call(f.Method, full, kwargs)
	case *object.BuiltinFunction:
		return f.Fn(ip, args, kwargs)
	case *object.Class:
		return ip.instantiate(f, args, kwargs)
	}
	ip.raise("TypeError", "'%s' object is not callable", object.TypeNameOf(fn))
	return object.None
}

func (ip *Interp) callFunction(fn *object.Function, args []object.Object, kwargs *object.Dict) object.Object {
	scope := object.NewEnclosedEnvironment(fn.Env, object.ScopeFunction)
	ip.bindParams(fn.Params, fn.Name, args, kwargs, scope)
	result := ip.Eval(fn.Body, scope)
	if rs, ok := result.(*object.ReturnSignal); ok {
		return rs.Value
	}
	return object.None
}

// bindParams implements parameter binding for both `def` and `lambda`:
// positional arguments fill Positional params left to right, extras
// (beyond len(Positional)) collect into *args if declared, keyword
// arguments fill by name across Positional/KwOnly, and anything left over
// collects into **kwargs if declared. Defaults are evaluated lazily in
// the function's own closure scope only when the argument is missing.
func (ip *Interp) bindParams(params *ast.Params, fname string, args []object.Object, kwargs *object.Dict, scope *object.Environment) {
	used := make(map[string]bool)

	if len(args) > 0 && len(params.Positional) > 0 {
		// Reserved binding so zero-arg super() can find the receiver
		// regardless of what the first parameter is actually named.
		scope.Set("__self__", args[0])
	}

	positionalCount := len(params.Positional)
	for i, p := range params.Positional {
		if i < len(args) {
			scope.Set(p.Name, args[i])
			used[p.Name] = true
			continue
		}
		if kwargs != nil {
			if v, ok := kwargs.Get(&object.String{Value: p.Name}); ok {
				scope.Set(p.Name, v)
				used[p.Name] = true
				continue
			}
		}
		if p.Default != nil {
			scope.Set(p.Name, ip.Eval(p.Default, scope))
			continue
		}
		ip.raise("TypeError", "%s() missing required positional argument: '%s'", fname, p.Name)
	}

	if params.VarArgs != nil {
		var extra []object.Object
		if len(args) > positionalCount {
			extra = append(extra, args[positionalCount:]...)
		}
		scope.Set(params.VarArgs.Name, &object.Tuple{Elements: extra})
	} else if len(args) > positionalCount {
		ip.raise("TypeError", "%s() takes %d positional arguments but %d were given", fname, positionalCount, len(args))
	}

	for _, p := range params.KwOnly {
		if kwargs != nil {
			if v, ok := kwargs.Get(&object.String{Value: p.Name}); ok {
				scope.Set(p.Name, v)
				used[p.Name] = true
				continue
			}
		}
		if p.Default != nil {
			scope.Set(p.Name, ip.Eval(p.Default, scope))
			continue
		}
		ip.raise("TypeError", "%s() missing required keyword-only argument: '%s'", fname, p.Name)
	}

	if params.KwArgs != nil {
		rest := object.NewDict()
		if kwargs != nil {
			for _, k := range kwargs.Keys() {
				ks, ok := k.(*object.String)
				if ok && used[ks.Value] {
					continue
				}
				v, _ := kwargs.Get(k)
				rest.Set(k, v)
			}
		}
		scope.Set(params.KwArgs.Name, rest)
	}
}
