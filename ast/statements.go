// ==============================================================================================
// FILE: ast/statements.go
// PACKAGE: ast
// PURPOSE: Simple (non-control-flow) statement nodes.
// ==============================================================================================

package ast

import (
	"github.com/glade-lang/glade/token"
)

type ExpressionStatement struct {
	Token      token.Token
	Expression Expression
}

func (n *ExpressionStatement) statementNode()       {}
func (n *ExpressionStatement) TokenLiteral() string { return n.Token.Literal }
func (n *ExpressionStatement) String() string {
	if n.Expression != nil {
		return n.Expression.String()
	}
	return ""
}

// AssignStatement covers plain assignment `target = value`. Target may be a
// Name, Attribute, Subscript, or a Tuple/List pattern for unpacking; Targets
// holds every `=`-chained target (`a = b = value`).
type AssignStatement struct {
	Token   token.Token
	Targets []Expression
	Value   Expression
}

func (n *AssignStatement) statementNode()       {}
func (n *AssignStatement) TokenLiteral() string { return n.Token.Literal }
func (n *AssignStatement) String() string {
	s := ""
	for _, t := range n.Targets {
		s += t.String() + " = "
	}
	return s + n.Value.String()
}

// AugAssignStatement covers `target += value` and siblings.
type AugAssignStatement struct {
	Token    token.Token
	Target   Expression
	Operator string // "+", "-", "*", ...
	Value    Expression
}

func (n *AugAssignStatement) statementNode()       {}
func (n *AugAssignStatement) TokenLiteral() string { return n.Token.Literal }
func (n *AugAssignStatement) String() string {
	return n.Target.String() + " " + n.Operator + "= " + n.Value.String()
}

type ReturnStatement struct {
	Token       token.Token
	ReturnValue Expression // nil for bare `return`
}

func (n *ReturnStatement) statementNode()       {}
func (n *ReturnStatement) TokenLiteral() string { return n.Token.Literal }
func (n *ReturnStatement) String() string {
	if n.ReturnValue != nil {
		return "return " + n.ReturnValue.String()
	}
	return "return"
}

type BreakStatement struct{ Token token.Token }

func (n *BreakStatement) statementNode()       {}
func (n *BreakStatement) TokenLiteral() string { return n.Token.Literal }
func (n *BreakStatement) String() string       { return "break" }

type ContinueStatement struct{ Token token.Token }

func (n *ContinueStatement) statementNode()       {}
func (n *ContinueStatement) TokenLiteral() string { return n.Token.Literal }
func (n *ContinueStatement) String() string       { return "continue" }

type PassStatement struct{ Token token.Token }

func (n *PassStatement) statementNode()       {}
func (n *PassStatement) TokenLiteral() string { return n.Token.Literal }
func (n *PassStatement) String() string       { return "pass" }

// DelStatement removes names/attributes/items: `del a, b[0], c.attr`.
type DelStatement struct {
	Token   token.Token
	Targets []Expression
}

func (n *DelStatement) statementNode()       {}
func (n *DelStatement) TokenLiteral() string { return n.Token.Literal }
func (n *DelStatement) String() string       { return "del " + joinStrings(n.Targets, ", ") }

type GlobalStatement struct {
	Token token.Token
	Names []string
}

func (n *GlobalStatement) statementNode()       {}
func (n *GlobalStatement) TokenLiteral() string { return n.Token.Literal }
func (n *GlobalStatement) String() string       { return "global " + joinNames(n.Names) }

type NonlocalStatement struct {
	Token token.Token
	Names []string
}

func (n *NonlocalStatement) statementNode()       {}
func (n *NonlocalStatement) TokenLiteral() string { return n.Token.Literal }
func (n *NonlocalStatement) String() string       { return "nonlocal " + joinNames(n.Names) }

// RaiseStatement is `raise` (re-raise) or `raise expr`.
type RaiseStatement struct {
	Token     token.Token
	Exception Expression // nil for bare re-raise
}

func (n *RaiseStatement) statementNode()       {}
func (n *RaiseStatement) TokenLiteral() string { return n.Token.Literal }
func (n *RaiseStatement) String() string {
	if n.Exception != nil {
		return "raise " + n.Exception.String()
	}
	return "raise"
}

// ImportStatement/FromImportStatement are parsed for syntactic completeness;
// the evaluator reports them as unsupported (imports are explicitly out of
// scope for this interpreter).
type ImportStatement struct {
	Token token.Token
	Names []string
}

func (n *ImportStatement) statementNode()       {}
func (n *ImportStatement) TokenLiteral() string { return n.Token.Literal }
func (n *ImportStatement) String() string       { return "import " + joinNames(n.Names) }

type FromImportStatement struct {
	Token  token.Token
	Module string
	Names  []string
}

func (n *FromImportStatement) statementNode()       {}
func (n *FromImportStatement) TokenLiteral() string { return n.Token.Literal }
func (n *FromImportStatement) String() string {
	return "from " + n.Module + " import " + joinNames(n.Names)
}

func joinNames(names []string) string {
	s := ""
	for i, n := range names {
		if i > 0 {
			s += ", "
		}
		s += n
	}
	return s
}
