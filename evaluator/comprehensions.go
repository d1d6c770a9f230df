// ==============================================================================================
// FILE: evaluator/comprehensions.go
// PACKAGE: evaluator
// PURPOSE: List/set/dict comprehensions and generator expressions, all
//          built on one shared nested-for/if walker. Comprehensions get
//          their own scope, chained to the enclosing one, matching the
//          language's comprehension-scoping rule.
// ==============================================================================================

package evaluator

import (
	"github.com/glade-lang/glade/ast"
	"github.com/glade-lang/glade/object"
)

func (ip *Interp) evalListComp(n *ast.ListCompExpr, env *object.Environment) object.Object {
	scope := object.NewEnclosedEnvironment(env, object.ScopeFunction)
	var out []object.Object
	ip.walkComprehension(n.Generators, scope, func() {
		out = append(out, ip.Eval(n.Element, scope))
	})
	return &object.List{Elements: out}
}

func (ip *Interp) evalSetComp(n *ast.SetCompExpr, env *object.Environment) object.Object {
	scope := object.NewEnclosedEnvironment(env, object.ScopeFunction)
	out := object.NewSet()
	ip.walkComprehension(n.Generators, scope, func() {
		out.Add(ip.Eval(n.Element, scope))
	})
	return out
}

func (ip *Interp) evalDictComp(n *ast.DictCompExpr, env *object.Environment) object.Object {
	scope := object.NewEnclosedEnvironment(env, object.ScopeFunction)
	out := object.NewDict()
	ip.walkComprehension(n.Generators, scope, func() {
		k := ip.Eval(n.Key, scope)
		v := ip.Eval(n.Value, scope)
		out.Set(k, v)
	})
	return out
}

// evalGeneratorExpr materializes eagerly into an Iterator — the language
// has no true lazy-generator machinery, so `(x for x in xs)` behaves as an
// eagerly-built sequence wherever it's consumed, documented as an accepted
// simplification.
func (ip *Interp) evalGeneratorExpr(n *ast.GeneratorExpr, env *object.Environment) object.Object {
	scope := object.NewEnclosedEnvironment(env, object.ScopeFunction)
	var out []object.Object
	ip.walkComprehension(n.Generators, scope, func() {
		out = append(out, ip.Eval(n.Element, scope))
	})
	return object.NewSliceIterator(out)
}

// walkComprehension recursively binds each `for` clause's target over its
// iterable, applying every `if` filter at that nesting level, and invokes
// emit once per surviving combination — the same nested-loop shape every
// comprehension form reduces to.
func (ip *Interp) walkComprehension(gens []ast.Comprehension, scope *object.Environment, emit func()) {
	if len(gens) == 0 {
		emit()
		return
	}
	gen := gens[0]
	iterable := ip.Eval(gen.Iter, scope)
	it, ok := object.Iterate(iterable, ip)
	if !ok {
		ip.raise("TypeError", "'%s' object is not iterable", object.TypeNameOf(iterable))
	}
	for {
		v, ok := it.Next()
		if !ok {
			break
		}
		ip.bindTarget(gen.Target, v, scope)
		keep := true
		for _, cond := range gen.Ifs {
			if !object.IsTruthy(ip.Eval(cond, scope)) {
				keep = false
				break
			}
		}
		if !keep {
			continue
		}
		ip.walkComprehension(gens[1:], scope, emit)
	}
}
