/*
File   : glox/ast/printer_test.go
Package: ast
*/

package ast

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/loxlang/glox/token"
)

func TestPrinter_BinaryExpression(t *testing.T) {
	expr := &Binary{
		Left:     &Literal{Value: 1.0},
		Operator: token.New(token.PLUS, "+", 1),
		Right:    &Literal{Value: 2.0},
	}

	assert.Equal(t, "(+ 1 2)", NewPrinter().Print(expr))
}

func TestPrinter_NestedGrouping(t *testing.T) {
	expr := &Grouping{
		Expression: &Unary{
			Operator: token.New(token.MINUS, "-", 1),
			Right:    &Literal{Value: 5.0},
		},
	}

	assert.Equal(t, "(group (- 5))", NewPrinter().Print(expr))
}

func TestPrinter_NilLiteral(t *testing.T) {
	assert.Equal(t, "nil", NewPrinter().Print(&Literal{Value: nil}))
}

func TestPrinter_Call(t *testing.T) {
	expr := &Call{
		Callee:    &Variable{Name: token.New(token.IDENTIFIER, "add", 1)},
		Paren:     token.New(token.RIGHT_PAREN, ")", 1),
		Arguments: []Expr{&Literal{Value: 3.0}, &Literal{Value: 4.0}},
	}

	assert.Equal(t, "(call add 3 4)", NewPrinter().Print(expr))
}
