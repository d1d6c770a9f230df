// ==============================================================================================
// FILE: evaluator/assign.go
// PACKAGE: evaluator
// PURPOSE: Plain/augmented assignment and the one shared bind_target
//          algorithm used for assignment targets, for-loop targets,
//          comprehension targets, and `with ... as` targets.
// ==============================================================================================

package evaluator

import (
	"github.com/glade-lang/glade/ast"
	"github.com/glade-lang/glade/object"
)

func (ip *Interp) evalAssign(n *ast.AssignStatement, env *object.Environment) object.Object {
	val := ip.Eval(n.Value, env)
	for _, target := range n.Targets {
		ip.bindTarget(target, val, env)
	}
	return val
}

func (ip *Interp) evalAugAssign(n *ast.AugAssignStatement, env *object.Environment) object.Object {
	current := ip.Eval(n.Target, env)
	rhs := ip.Eval(n.Value, env)
	result := ip.applyBinaryOp(n.Operator, current, rhs)
	ip.bindTarget(n.Target, result, env)
	return result
}

// bindTarget implements the single unpacking algorithm shared by every
// binding site in the language: a bare name, an attribute, a subscript, or
// a Tuple/List pattern (with at most one Starred element collecting the
// middle) recursing into itself for nested patterns.
func (ip *Interp) bindTarget(target ast.Expression, value object.Object, env *object.Environment) {
	switch t := target.(type) {
	case *ast.Identifier:
		ip.bindName(t.Value, value, env)

	case *ast.AttributeExpr:
		obj := ip.Eval(t.Value, env)
		ip.setAttr(obj, t.Attr, value)

	case *ast.SubscriptExpr:
		obj := ip.Eval(t.Value, env)
		ip.setSubscript(obj, ip.Eval(t.Index, env), value)

	case *ast.TupleLiteral:
		ip.bindSequence(t.Elements, value, env)
	case *ast.ListLiteral:
		ip.bindSequence(t.Elements, value, env)

	case *ast.Starred:
		// Only reachable when a caller binds a single starred target
		// directly (unusual, but Python allows `*x, = iterable`).
		ip.bindSequence([]ast.Expression{t}, value, env)

	default:
		ip.raise("SyntaxError", "cannot assign to this expression")
	}
}

// bindName writes into the innermost scope by default — assignment without
// a `global`/`nonlocal` declaration always creates or rebinds a local name,
// it never reaches out to shadow an enclosing/global binding of the same
// name. A preceding `global`/`nonlocal` statement in this exact frame
// (recorded on env by Eval's GlobalStatement/NonlocalStatement cases)
// redirects the write to the
// module scope or the specific enclosing function frame it resolved to.
func (ip *Interp) bindName(name string, value object.Object, env *object.Environment) {
	if target, ok := env.NonlocalTarget(name); ok {
		target.Set(name, value)
		return
	}
	if env.IsGlobalDeclared(name) {
		env.Global(name, value)
		return
	}
	env.Set(name, value)
}

// bindSequence implements structural unpacking across a Tuple/List
// pattern, allowing exactly one Starred element to absorb the remaining
// middle elements into a list, matching `a, *b, c = ...`.
func (ip *Interp) bindSequence(targets []ast.Expression, value object.Object, env *object.Environment) {
	items := ip.sequenceElements(value)

	starIdx := -1
	for i, t := range targets {
		if _, ok := t.(*ast.Starred); ok {
			if starIdx != -1 {
				ip.raise("SyntaxError", "multiple starred expressions in assignment")
			}
			starIdx = i
		}
	}

	if starIdx == -1 {
		if len(items) != len(targets) {
			ip.raise("ValueError", "not enough values to unpack (expected %d, got %d)", len(targets), len(items))
		}
		for i, t := range targets {
			ip.bindTarget(t, items[i], env)
		}
		return
	}

	before := starIdx
	after := len(targets) - starIdx - 1
	if len(items) < before+after {
		ip.raise("ValueError", "not enough values to unpack")
	}
	for i := 0; i < before; i++ {
		ip.bindTarget(targets[i], items[i], env)
	}
	middle := items[before : len(items)-after]
	starTarget := targets[starIdx].(*ast.Starred)
	ip.bindTarget(starTarget.Value, &object.List{Elements: append([]object.Object{}, middle...)}, env)
	for i := 0; i < after; i++ {
		ip.bindTarget(targets[starIdx+1+i], items[len(items)-after+i], env)
	}
}

// sequenceElements extracts a materialized slice of elements from any
// iterable value, for unpacking purposes.
func (ip *Interp) sequenceElements(value object.Object) []object.Object {
	switch v := value.(type) {
	case *object.List:
		return v.Elements
	case *object.Tuple:
		return v.Elements
	}
	it, ok := object.Iterate(value, ip)
	if !ok {
		ip.raise("TypeError", "cannot unpack non-iterable '%s' object", object.TypeNameOf(value))
	}
	return object.Materialize(it)
}

func normalizeListIndex(i, n int) int {
	if i < 0 {
		return i + n
	}
	return i
}
