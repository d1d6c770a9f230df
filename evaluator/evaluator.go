// ==============================================================================================
// FILE: evaluator/evaluator.go
// ==============================================================================================
// PACKAGE: evaluator
// PURPOSE: Implements the runtime execution engine. It traverses the AST
//          and produces side effects (IO) or results (Objects). It handles
//          variable scoping, control flow, and error propagation.
// ==============================================================================================

package evaluator

import (
	"github.com/glade-lang/glade/ast"
	"github.com/glade-lang/glade/object"
)

// Interp is the tree-walking evaluator. It carries no mutable state of its
// own — every value lives in the object.Environment chain — so a single
// package-level instance satisfies object.Caller for every builtin.
type Interp struct{}

// Instance is the shared evaluator passed to builtins as their Caller.
var Instance = &Interp{}

// Eval walks a node and produces its runtime value. Control-flow signals
// (object.ReturnSignal/BreakSignal/ContinueSignal) are ordinary return
// values that unwind through evalBlock/evalProgram until a loop or
// function call catches the one it understands; raised exceptions unwind
// via Go panic(*object.Exception), recovered at try statements and at the
// top-level Run call.
func (ip *Interp) Eval(node ast.Node, env *object.Environment) object.Object {
	switch n := node.(type) {

	case *ast.Program:
		return ip.evalProgram(n, env)
	case *ast.BlockStatement:
		return ip.evalBlock(n, env)
	case *ast.ExpressionStatement:
		return ip.Eval(n.Expression, env)

	case *ast.AssignStatement:
		return ip.evalAssign(n, env)
	case *ast.AugAssignStatement:
		return ip.evalAugAssign(n, env)

	case *ast.IfStatement:
		return ip.evalIf(n, env)
	case *ast.WhileStatement:
		return ip.evalWhile(n, env)
	case *ast.ForStatement:
		return ip.evalFor(n, env)
	case *ast.TryStatement:
		return ip.evalTry(n, env)
	case *ast.WithStatement:
		return ip.evalWith(n, env)

	case *ast.FunctionDef:
		return ip.evalFunctionDef(n, env)
	case *ast.ClassDef:
		return ip.evalClassDef(n, env)

	case *ast.ReturnStatement:
		var val object.Object = object.None
		if n.ReturnValue != nil {
			val = ip.Eval(n.ReturnValue, env)
		}
		return &object.ReturnSignal{Value: val}
	case *ast.BreakStatement:
		return &object.BreakSignal{}
	case *ast.ContinueStatement:
		return &object.ContinueSignal{}
	case *ast.PassStatement:
		return object.None

	case *ast.DelStatement:
		return ip.evalDel(n, env)
	case *ast.GlobalStatement:
		for _, name := range n.Names {
			env.DeclareGlobal(name)
		}
		return object.None
	case *ast.NonlocalStatement:
		for _, name := range n.Names {
			target, ok := env.ResolveNonlocal(name)
			if !ok {
				ip.raise("SyntaxError", "no binding for nonlocal '%s' found", name)
			}
			env.DeclareNonlocal(name, target)
		}
		return object.None
	case *ast.RaiseStatement:
		return ip.evalRaise(n, env)

	case *ast.ImportStatement, *ast.FromImportStatement:
		ip.raise("NotImplementedError", "imports are not supported")
		return object.None

	default:
		return ip.evalExpr(node.(ast.Expression), env)
	}
}

func (ip *Interp) evalProgram(p *ast.Program, env *object.Environment) object.Object {
	var result object.Object = object.None
	for _, stmt := range p.Statements {
		result = ip.Eval(stmt, env)
		switch result.(type) {
		case *object.ReturnSignal, *object.BreakSignal, *object.ContinueSignal:
			return result
		}
	}
	return result
}

func (ip *Interp) evalBlock(b *ast.BlockStatement, env *object.Environment) object.Object {
	var result object.Object = object.None
	for _, stmt := range b.Statements {
		result = ip.Eval(stmt, env)
		switch result.(type) {
		case *object.ReturnSignal, *object.BreakSignal, *object.ContinueSignal:
			return result
		}
	}
	return result
}

func (ip *Interp) evalIf(n *ast.IfStatement, env *object.Environment) object.Object {
	if object.IsTruthy(ip.Eval(n.Condition, env)) {
		return ip.Eval(n.Body, env)
	}
	for _, elif := range n.Elifs {
		if object.IsTruthy(ip.Eval(elif.Condition, env)) {
			return ip.Eval(elif.Body, env)
		}
	}
	if n.Else != nil {
		return ip.Eval(n.Else, env)
	}
	return object.None
}

func (ip *Interp) evalWhile(n *ast.WhileStatement, env *object.Environment) object.Object {
	ranToCompletion := true
	for object.IsTruthy(ip.Eval(n.Condition, env)) {
		result := ip.Eval(n.Body, env)
		if _, ok := result.(*object.BreakSignal); ok {
			ranToCompletion = false
			break
		}
		if rs, ok := result.(*object.ReturnSignal); ok {
			return rs
		}
	}
	if ranToCompletion && n.Else != nil {
		return ip.Eval(n.Else, env)
	}
	return object.None
}

func (ip *Interp) evalFor(n *ast.ForStatement, env *object.Environment) object.Object {
	iterable := ip.Eval(n.Iterable, env)
	it, ok := object.Iterate(iterable, ip)
	if !ok {
		ip.raise("TypeError", "'%s' object is not iterable", object.TypeNameOf(iterable))
	}
	ranToCompletion := true
	for {
		v, ok := it.Next()
		if !ok {
			break
		}
		ip.bindTarget(n.Target, v, env)
		result := ip.Eval(n.Body, env)
		if _, ok := result.(*object.BreakSignal); ok {
			ranToCompletion = false
			break
		}
		if rs, ok := result.(*object.ReturnSignal); ok {
			return rs
		}
	}
	if ranToCompletion && n.Else != nil {
		return ip.Eval(n.Else, env)
	}
	return object.None
}

func (ip *Interp) evalDel(n *ast.DelStatement, env *object.Environment) object.Object {
	for _, target := range n.Targets {
		switch t := target.(type) {
		case *ast.Identifier:
			if !env.Delete(t.Value) {
				ip.raise("NameError", "name '%s' is not defined", t.Value)
			}
		case *ast.SubscriptExpr:
			container := ip.Eval(t.Value, env)
			idx := ip.Eval(t.Index, env)
			ip.deleteSubscript(container, idx)
		case *ast.AttributeExpr:
			obj := ip.Eval(t.Value, env)
			inst, ok := obj.(*object.Instance)
			if !ok {
				ip.raise("AttributeError", "cannot delete attribute on '%s'", object.TypeNameOf(obj))
			}
			delete(inst.Attrs, t.Attr)
		default:
			ip.raise("SyntaxError", "cannot delete this expression")
		}
	}
	return object.None
}

func (ip *Interp) deleteSubscript(container, idx object.Object) {
	switch c := container.(type) {
	case *object.Dict:
		if !c.Delete(idx) {
			ip.raise("KeyError", "%s", ip.ToRepr(idx))
		}
	case *object.List:
		i, ok := idx.(*object.Int)
		if !ok {
			ip.raise("TypeError", "list indices must be integers")
		}
		pos := normalizeListIndex(int(i.Value.Int64()), len(c.Elements))
		if pos < 0 || pos >= len(c.Elements) {
			ip.raise("IndexError", "list assignment index out of range")
		}
		c.Elements = append(c.Elements[:pos], c.Elements[pos+1:]...)
	default:
		ip.raise("TypeError", "'%s' object doesn't support item deletion", object.TypeNameOf(container))
	}
}

func (ip *Interp) evalRaise(n *ast.RaiseStatement, env *object.Environment) object.Object {
	if n.Exception == nil {
		ip.raise("RuntimeError", "no active exception to re-raise")
	}
	val := ip.Eval(n.Exception, env)
	switch v := val.(type) {
	case *object.Instance:
		panic(&object.Exception{ClassName: v.Class.Name, Message: ip.ToStr(v), Payload: v})
	case *object.Class:
		inst := ip.instantiate(v, nil, nil)
		panic(&object.Exception{ClassName: v.Name, Message: ip.ToStr(inst), Payload: inst})
	case *object.String:
		panic(&object.Exception{ClassName: "Exception", Message: v.Value})
	default:
		ip.raise("TypeError", "exceptions must derive from Exception")
	}
	return object.None
}

// raise is the evaluator's own shorthand for constructing and panicking a
// built-in runtime exception, used for every error the interpreter itself
// detects (type errors, name errors, ...).
func (ip *Interp) raise(class, format string, args ...interface{}) {
	panic(object.NewException(class, format, args...))
}
