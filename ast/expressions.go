// ==============================================================================================
// FILE: ast/expressions.go
// PACKAGE: ast
// PURPOSE: Expression nodes — literals, operators, calls, comprehensions, f-strings.
// ==============================================================================================

package ast

import (
	"bytes"
	"math/big"

	"github.com/glade-lang/glade/token"
)

// ---- Literals ----------------------------------------------------------

type IntegerLiteral struct {
	Token token.Token
	Value *big.Int
}

func (n *IntegerLiteral) expressionNode()      {}
func (n *IntegerLiteral) TokenLiteral() string { return n.Token.Literal }
func (n *IntegerLiteral) String() string       { return n.Value.String() }

type FloatLiteral struct {
	Token token.Token
	Value float64
}

func (n *FloatLiteral) expressionNode()      {}
func (n *FloatLiteral) TokenLiteral() string { return n.Token.Literal }
func (n *FloatLiteral) String() string       { return n.Token.Literal }

type StringLiteral struct {
	Token token.Token
	Value string
}

func (n *StringLiteral) expressionNode()      {}
func (n *StringLiteral) TokenLiteral() string { return n.Token.Literal }
func (n *StringLiteral) String() string       { return `"` + n.Value + `"` }

// FStringLiteral holds alternating literal text and parsed expression
// fragments, re-parsed from the lexer's raw Segments.
type FStringLiteral struct {
	Token token.Token
	Parts []FStringPart
}

type FStringPart struct {
	Text string
	Expr Expression // nil when this part is plain text
}

func (n *FStringLiteral) expressionNode()      {}
func (n *FStringLiteral) TokenLiteral() string { return n.Token.Literal }
func (n *FStringLiteral) String() string {
	var out bytes.Buffer
	out.WriteString("f\"")
	for _, p := range n.Parts {
		if p.Expr != nil {
			out.WriteString("{" + p.Expr.String() + "}")
		} else {
			out.WriteString(p.Text)
		}
	}
	out.WriteString("\"")
	return out.String()
}

type BooleanLiteral struct {
	Token token.Token
	Value bool
}

func (n *BooleanLiteral) expressionNode()      {}
func (n *BooleanLiteral) TokenLiteral() string { return n.Token.Literal }
func (n *BooleanLiteral) String() string       { return n.Token.Literal }

type NoneLiteral struct{ Token token.Token }

func (n *NoneLiteral) expressionNode()      {}
func (n *NoneLiteral) TokenLiteral() string { return n.Token.Literal }
func (n *NoneLiteral) String() string       { return "None" }

// ---- Collections --------------------------------------------------------

type ListLiteral struct {
	Token    token.Token
	Elements []Expression
}

func (n *ListLiteral) expressionNode()      {}
func (n *ListLiteral) TokenLiteral() string { return n.Token.Literal }
func (n *ListLiteral) String() string       { return "[" + joinStrings(n.Elements, ", ") + "]" }

type TupleLiteral struct {
	Token    token.Token
	Elements []Expression
}

func (n *TupleLiteral) expressionNode()      {}
func (n *TupleLiteral) TokenLiteral() string { return n.Token.Literal }
func (n *TupleLiteral) String() string       { return "(" + joinStrings(n.Elements, ", ") + ")" }

type SetLiteral struct {
	Token    token.Token
	Elements []Expression
}

func (n *SetLiteral) expressionNode()      {}
func (n *SetLiteral) TokenLiteral() string { return n.Token.Literal }
func (n *SetLiteral) String() string       { return "{" + joinStrings(n.Elements, ", ") + "}" }

type DictPair struct {
	Key   Expression
	Value Expression
}

type DictLiteral struct {
	Token token.Token
	Pairs []DictPair
}

func (n *DictLiteral) expressionNode()      {}
func (n *DictLiteral) TokenLiteral() string { return n.Token.Literal }
func (n *DictLiteral) String() string {
	var out bytes.Buffer
	out.WriteString("{")
	for i, p := range n.Pairs {
		if i > 0 {
			out.WriteString(", ")
		}
		out.WriteString(p.Key.String() + ": " + p.Value.String())
	}
	out.WriteString("}")
	return out.String()
}

// Starred represents `*expr` used inside a call, a literal, or an
// assignment/unpacking target.
type Starred struct {
	Token token.Token
	Value Expression
}

func (n *Starred) expressionNode()      {}
func (n *Starred) TokenLiteral() string { return n.Token.Literal }
func (n *Starred) String() string       { return "*" + n.Value.String() }

// DoubleStarred represents `**expr` used inside a call or a dict literal.
type DoubleStarred struct {
	Token token.Token
	Value Expression
}

func (n *DoubleStarred) expressionNode()      {}
func (n *DoubleStarred) TokenLiteral() string { return n.Token.Literal }
func (n *DoubleStarred) String() string       { return "**" + n.Value.String() }

// ---- Operators -----------------------------------------------------------

type UnaryExpr struct {
	Token    token.Token
	Operator string
	Right    Expression
}

func (n *UnaryExpr) expressionNode()      {}
func (n *UnaryExpr) TokenLiteral() string { return n.Token.Literal }
func (n *UnaryExpr) String() string       { return "(" + n.Operator + n.Right.String() + ")" }

type BinaryExpr struct {
	Token    token.Token
	Left     Expression
	Operator string
	Right    Expression
}

func (n *BinaryExpr) expressionNode()      {}
func (n *BinaryExpr) TokenLiteral() string { return n.Token.Literal }
func (n *BinaryExpr) String() string {
	return "(" + n.Left.String() + " " + n.Operator + " " + n.Right.String() + ")"
}

// BoolOpExpr models short-circuiting `and`/`or` chains.
type BoolOpExpr struct {
	Token    token.Token
	Operator string
	Values   []Expression
}

func (n *BoolOpExpr) expressionNode()      {}
func (n *BoolOpExpr) TokenLiteral() string { return n.Token.Literal }
func (n *BoolOpExpr) String() string       { return "(" + joinStrings(n.Values, " "+n.Operator+" ") + ")" }

// CompareExpr models a chained comparison: a OP1 b OP2 c ...
type CompareExpr struct {
	Token       token.Token
	Left        Expression
	Ops         []string
	Comparators []Expression
}

func (n *CompareExpr) expressionNode()      {}
func (n *CompareExpr) TokenLiteral() string { return n.Token.Literal }
func (n *CompareExpr) String() string {
	var out bytes.Buffer
	out.WriteString("(" + n.Left.String())
	for i, op := range n.Ops {
		out.WriteString(" " + op + " " + n.Comparators[i].String())
	}
	out.WriteString(")")
	return out.String()
}

// IfExpr is the ternary `a if cond else b`.
type IfExpr struct {
	Token     token.Token
	Condition Expression
	Then      Expression
	Else      Expression
}

func (n *IfExpr) expressionNode()      {}
func (n *IfExpr) TokenLiteral() string { return n.Token.Literal }
func (n *IfExpr) String() string {
	return "(" + n.Then.String() + " if " + n.Condition.String() + " else " + n.Else.String() + ")"
}

// ---- Access --------------------------------------------------------------

type AttributeExpr struct {
	Token token.Token
	Value Expression
	Attr  string
}

func (n *AttributeExpr) expressionNode()      {}
func (n *AttributeExpr) TokenLiteral() string { return n.Token.Literal }
func (n *AttributeExpr) String() string       { return n.Value.String() + "." + n.Attr }

type SubscriptExpr struct {
	Token token.Token
	Value Expression
	Index Expression
}

func (n *SubscriptExpr) expressionNode()      {}
func (n *SubscriptExpr) TokenLiteral() string { return n.Token.Literal }
func (n *SubscriptExpr) String() string       { return n.Value.String() + "[" + n.Index.String() + "]" }

// SliceExpr is used as the Index of a SubscriptExpr to represent a[lo:hi:step].
type SliceExpr struct {
	Token token.Token
	Lower Expression
	Upper Expression
	Step  Expression
}

func (n *SliceExpr) expressionNode()      {}
func (n *SliceExpr) TokenLiteral() string { return n.Token.Literal }
func (n *SliceExpr) String() string {
	s := ""
	if n.Lower != nil {
		s += n.Lower.String()
	}
	s += ":"
	if n.Upper != nil {
		s += n.Upper.String()
	}
	if n.Step != nil {
		s += ":" + n.Step.String()
	}
	return s
}

// ---- Calls -----------------------------------------------------------------

type Keyword struct {
	Name  string
	Value Expression
}

type CallExpr struct {
	Token      token.Token
	Func       Expression
	Args       []Expression // may contain *Starred
	Keywords   []Keyword
	DoubleStar Expression // **kwargs spread, nil if absent
}

func (n *CallExpr) expressionNode()      {}
func (n *CallExpr) TokenLiteral() string { return n.Token.Literal }
func (n *CallExpr) String() string {
	var out bytes.Buffer
	out.WriteString(n.Func.String() + "(")
	out.WriteString(joinStrings(n.Args, ", "))
	out.WriteString(")")
	return out.String()
}

// ---- Comprehensions ---------------------------------------------------------

type Comprehension struct {
	Target Expression
	Iter   Expression
	Ifs    []Expression
}

type ListCompExpr struct {
	Token      token.Token
	Element    Expression
	Generators []Comprehension
}

func (n *ListCompExpr) expressionNode()      {}
func (n *ListCompExpr) TokenLiteral() string { return n.Token.Literal }
func (n *ListCompExpr) String() string       { return "[" + n.Element.String() + " ...]" }

type SetCompExpr struct {
	Token      token.Token
	Element    Expression
	Generators []Comprehension
}

func (n *SetCompExpr) expressionNode()      {}
func (n *SetCompExpr) TokenLiteral() string { return n.Token.Literal }
func (n *SetCompExpr) String() string       { return "{" + n.Element.String() + " ...}" }

type DictCompExpr struct {
	Token      token.Token
	Key        Expression
	Value      Expression
	Generators []Comprehension
}

func (n *DictCompExpr) expressionNode()      {}
func (n *DictCompExpr) TokenLiteral() string { return n.Token.Literal }
func (n *DictCompExpr) String() string {
	return "{" + n.Key.String() + ": " + n.Value.String() + " ...}"
}

type GeneratorExpr struct {
	Token      token.Token
	Element    Expression
	Generators []Comprehension
}

func (n *GeneratorExpr) expressionNode()      {}
func (n *GeneratorExpr) TokenLiteral() string { return n.Token.Literal }
func (n *GeneratorExpr) String() string       { return "(" + n.Element.String() + " ...)" }

// LambdaExpr is an anonymous single-expression function.
type LambdaExpr struct {
	Token  token.Token
	Params *Params
	Body   Expression
}

func (n *LambdaExpr) expressionNode()      {}
func (n *LambdaExpr) TokenLiteral() string { return n.Token.Literal }
func (n *LambdaExpr) String() string       { return "lambda: " + n.Body.String() }
