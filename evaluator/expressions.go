// ==============================================================================================
// FILE: evaluator/expressions.go
// PACKAGE: evaluator
// PURPOSE: Expression evaluation — literals, collections, comprehensions,
//          attribute/subscript access, calls, and f-strings.
// ==============================================================================================

package evaluator

import (
	"strings"

	"github.com/glade-lang/glade/ast"
	"github.com/glade-lang/glade/object"
)

func (ip *Interp) evalExpr(node ast.Expression, env *object.Environment) object.Object {
	switch n := node.(type) {

	case *ast.IntegerLiteral:
		return &object.Int{Value: n.Value}
	case *ast.FloatLiteral:
		return &object.Float{Value: n.Value}
	case *ast.StringLiteral:
		return &object.String{Value: n.Value}
	case *ast.BooleanLiteral:
		return object.NativeBool(n.Value)
	case *ast.NoneLiteral:
		return object.None
	case *ast.FStringLiteral:
		return ip.evalFString(n, env)

	case *ast.Identifier:
		if v, ok := env.Get(n.Value); ok {
			return v
		}
		if b, ok := object.Builtins[n.Value]; ok {
			return b
		}
		ip.raise("NameError", "name '%s' is not defined", n.Value)

	case *ast.ListLiteral:
		return &object.List{Elements: ip.evalSpreadableList(n.Elements, env)}
	case *ast.TupleLiteral:
		return &object.Tuple{Elements: ip.evalSpreadableList(n.Elements, env)}
	case *ast.SetLiteral:
		s := object.NewSet()
		for _, v := range ip.evalSpreadableList(n.Elements, env) {
			s.Add(v)
		}
		return s
	case *ast.DictLiteral:
		return ip.evalDictLiteral(n, env)

	case *ast.UnaryExpr:
		return ip.applyUnaryOp(n.Operator, ip.Eval(n.Right, env))
	case *ast.BinaryExpr:
		return ip.applyBinaryOp(n.Operator, ip.Eval(n.Left, env), ip.Eval(n.Right, env))
	case *ast.BoolOpExpr:
		return ip.evalBoolOp(n, env)
	case *ast.CompareExpr:
		return ip.evalCompare(n, env)
	case *ast.IfExpr:
		if object.IsTruthy(ip.Eval(n.Condition, env)) {
			return ip.Eval(n.Then, env)
		}
		return ip.Eval(n.Else, env)

	case *ast.AttributeExpr:
		obj := ip.Eval(n.Value, env)
		return ip.getAttr(obj, n.Attr)
	case *ast.SubscriptExpr:
		obj := ip.Eval(n.Value, env)
		return ip.evalSubscript(obj, n.Index, env)

	case *ast.CallExpr:
		return ip.evalCall(n, env)

	case *ast.ListCompExpr:
		return ip.evalListComp(n, env)
	case *ast.SetCompExpr:
		return ip.evalSetComp(n, env)
	case *ast.DictCompExpr:
		return ip.evalDictComp(n, env)
	case *ast.GeneratorExpr:
		return ip.evalGeneratorExpr(n, env)

	case *ast.LambdaExpr:
		return &object.Function{Name: "", Params: n.Params, Body: wrapLambdaBody(n.Body), Env: env}

	case *ast.Starred, *ast.DoubleStarred:
		ip.raise("SyntaxError", "unexpected starred expression")
	}
	return object.None
}

// wrapLambdaBody adapts a lambda's single expression body into the
// BlockStatement shape evalFunctionBody expects, as an implicit `return`.
func wrapLambdaBody(expr ast.Expression) *ast.BlockStatement {
	return &ast.BlockStatement{Statements: []ast.Statement{
		&ast.ReturnStatement{ReturnValue: expr},
	}}
}

func (ip *Interp) evalSpreadableList(elements []ast.Expression, env *object.Environment) []object.Object {
	var out []object.Object
	for _, e := range elements {
		if star, ok := e.(*ast.Starred); ok {
			v := ip.Eval(star.Value, env)
			it, ok := object.Iterate(v, ip)
			if !ok {
				ip.raise("TypeError", "argument after * must be an iterable")
			}
			out = append(out, object.Materialize(it)...)
			continue
		}
		out = append(out, ip.Eval(e, env))
	}
	return out
}

func (ip *Interp) evalDictLiteral(n *ast.DictLiteral, env *object.Environment) object.Object {
	d := object.NewDict()
	for _, pair := range n.Pairs {
		if pair.Key == nil {
			// **spread entry, represented with a nil Key by the parser.
			spread := ip.Eval(pair.Value, env)
			other, ok := spread.(*object.Dict)
			if !ok {
				ip.raise("TypeError", "argument after ** must be a dict")
			}
			for _, k := range other.Keys() {
				v, _ := other.Get(k)
				d.Set(k, v)
			}
			continue
		}
		key := ip.Eval(pair.Key, env)
		val := ip.Eval(pair.Value, env)
		if !d.Set(key, val) {
			ip.raise("TypeError", "unhashable type: '%s'", object.TypeNameOf(key))
		}
	}
	return d
}

func (ip *Interp) evalBoolOp(n *ast.BoolOpExpr, env *object.Environment) object.Object {
	var result object.Object = object.None
	for _, v := range n.Values {
		result = ip.Eval(v, env)
		if n.Operator == "and" && !object.IsTruthy(result) {
			return result
		}
		if n.Operator == "or" && object.IsTruthy(result) {
			return result
		}
	}
	return result
}

func (ip *Interp) evalCompare(n *ast.CompareExpr, env *object.Environment) object.Object {
	left := ip.Eval(n.Left, env)
	for i, op := range n.Ops {
		right := ip.Eval(n.Comparators[i], env)
		if !object.IsTruthy(ip.applyCompareOp(op, left, right)) {
			return object.False
		}
		left = right
	}
	return object.True
}

func (ip *Interp) evalFString(n *ast.FStringLiteral, env *object.Environment) object.Object {
	var b strings.Builder
	for _, p := range n.Parts {
		if p.Expr == nil {
			b.WriteString(p.Text)
			continue
		}
		b.WriteString(ip.ToStr(ip.Eval(p.Expr, env)))
	}
	return &object.String{Value: b.String()}
}
