// ==============================================================================================
// FILE: ast/classes.go
// PACKAGE: ast
// PURPOSE: Class definition statement.
// ==============================================================================================

package ast

import (
	"github.com/glade-lang/glade/token"
)

// ClassDef is a `class Name(Base1, Base2): body` statement. The body is
// evaluated in a fresh class-body scope whose bindings become the class
// namespace (see object.Class).
type ClassDef struct {
	Token      token.Token
	Name       string
	Bases      []Expression
	Body       *BlockStatement
	Decorators []Expression
}

func (n *ClassDef) statementNode()       {}
func (n *ClassDef) TokenLiteral() string { return n.Token.Literal }
func (n *ClassDef) String() string {
	return "class " + n.Name + ":\n" + n.Body.String()
}
