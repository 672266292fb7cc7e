/*
File   : glox/ast/printer.go
Package: ast
*/

package ast

import (
	"fmt"
	"strings"
)

// Printer renders an expression tree as a fully-parenthesized Lisp-style
// string, e.g. `1 + 2` prints as "(+ 1 2)". It exists mainly to pin down
// parser precedence and associativity in tests, and is promoted to a
// reusable type behind the `-print-ast` CLI flag (see cmd/lox), the way
// the teacher's main package keeps a commented-out AST dump for
// debugging.
type Printer struct{}

// NewPrinter constructs a Printer. It carries no state; the constructor
// exists so callers have one consistent way to obtain one, matching the
// New* constructors of the module's other packages.
func NewPrinter() *Printer { return &Printer{} }

// Print renders expr.
func (p *Printer) Print(expr Expr) string {
	switch e := expr.(type) {
	case *Literal:
		return literalString(e.Value)
	case *Grouping:
		return p.parenthesize("group", e.Expression)
	case *Unary:
		return p.parenthesize(e.Operator.Lexeme, e.Right)
	case *Binary:
		return p.parenthesize(e.Operator.Lexeme, e.Left, e.Right)
	case *Logical:
		return p.parenthesize(e.Operator.Lexeme, e.Left, e.Right)
	case *Variable:
		return e.Name.Lexeme
	case *Assign:
		return p.parenthesize("= "+e.Name.Lexeme, e.Value)
	case *Call:
		args := make([]Expr, 0, len(e.Arguments)+1)
		args = append(args, e.Callee)
		args = append(args, e.Arguments...)
		return p.parenthesize("call", args...)
	default:
		return "<unknown-expr>"
	}
}

func (p *Printer) parenthesize(name string, exprs ...Expr) string {
	var b strings.Builder
	b.WriteByte('(')
	b.WriteString(name)
	for _, e := range exprs {
		b.WriteByte(' ')
		b.WriteString(p.Print(e))
	}
	b.WriteByte(')')
	return b.String()
}

func literalString(v interface{}) string {
	if v == nil {
		return "nil"
	}
	return fmt.Sprintf("%v", v)
}
