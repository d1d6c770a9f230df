// ==============================================================================================
// FILE: ast/functions.go
// PACKAGE: ast
// PURPOSE: Function/parameter shapes shared by `def`, lambda, and call-argument binding.
// ==============================================================================================

package ast

import (
	"strings"

	"github.com/glade-lang/glade/token"
)

// Param is one named parameter with an optional default expression.
type Param struct {
	Name    string
	Default Expression // nil when required
}

// Params is the full parameter descriptor for a function or lambda:
// positional parameters (may carry defaults), an optional *args collector,
// keyword-only parameters, and an optional **kwargs collector.
type Params struct {
	Positional []Param
	VarArgs    *Param // name of *args, nil if absent
	KwOnly     []Param
	KwArgs     *Param // name of **kwargs, nil if absent
}

func (p *Params) String() string {
	var parts []string
	for _, prm := range p.Positional {
		parts = append(parts, prm.Name)
	}
	if p.VarArgs != nil {
		parts = append(parts, "*"+p.VarArgs.Name)
	}
	for _, prm := range p.KwOnly {
		parts = append(parts, prm.Name)
	}
	if p.KwArgs != nil {
		parts = append(parts, "**"+p.KwArgs.Name)
	}
	return strings.Join(parts, ", ")
}

// FunctionDef is a `def name(params): body` statement. Also used for nested
// (closure) function definitions.
type FunctionDef struct {
	Token      token.Token
	Name       string
	Params     *Params
	Body       *BlockStatement
	Decorators []Expression
}

func (n *FunctionDef) statementNode()      {}
func (n *FunctionDef) TokenLiteral() string { return n.Token.Literal }
func (n *FunctionDef) String() string {
	return "def " + n.Name + "(" + n.Params.String() + "):\n" + n.Body.String()
}
