/*
File   : glox/parser/parser_test.go
Package: parser
*/

package parser

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/loxlang/glox/ast"
	"github.com/loxlang/glox/host"
	"github.com/loxlang/glox/lexer"
	"github.com/loxlang/glox/token"
)

func parse(t *testing.T, src string) ([]ast.Stmt, *host.Host) {
	t.Helper()
	var buf bytes.Buffer
	h := host.New(&buf)
	toks := lexer.New(src, h).ScanTokens()
	return New(toks, h).Parse(), h
}

func TestParse_ExpressionStatementRoundTripsThroughPrinter(t *testing.T) {
	stmts, h := parse(t, "1 + 2;")
	require.False(t, h.HadCompileError)
	require.Len(t, stmts, 1)

	exprStmt, ok := stmts[0].(*ast.Expression)
	require.True(t, ok)
	assert.Equal(t, "(+ 1 2)", ast.NewPrinter().Print(exprStmt.Expr))
}

func TestParse_VarDeclarationWithoutInitializer(t *testing.T) {
	stmts, h := parse(t, "var x;")
	require.False(t, h.HadCompileError)
	require.Len(t, stmts, 1)

	v, ok := stmts[0].(*ast.Var)
	require.True(t, ok)
	assert.Equal(t, "x", v.Name.Lexeme)
	assert.Nil(t, v.Initializer)
}

func TestParse_ForDesugarsToBlockWhile(t *testing.T) {
	stmts, h := parse(t, "for (var a = 1; a < 3; a = a + 1) print a;")
	require.False(t, h.HadCompileError)
	require.Len(t, stmts, 1)

	block, ok := stmts[0].(*ast.Block)
	require.True(t, ok)
	require.Len(t, block.Statements, 2)
	assert.IsType(t, &ast.Var{}, block.Statements[0])

	while, ok := block.Statements[1].(*ast.While)
	require.True(t, ok)
	body, ok := while.Body.(*ast.Block)
	require.True(t, ok)
	require.Len(t, body.Statements, 2)
	assert.IsType(t, &ast.Print{}, body.Statements[0])
	assert.IsType(t, &ast.Expression{}, body.Statements[1])
}

func TestParse_ForOmittedConditionDefaultsTrue(t *testing.T) {
	stmts, h := parse(t, "for (;;) print 1;")
	require.False(t, h.HadCompileError)

	while := stmts[0].(*ast.While)
	lit, ok := while.Condition.(*ast.Literal)
	require.True(t, ok)
	assert.Equal(t, true, lit.Value)
}

func TestParse_DanglingElseBindsToNearestIf(t *testing.T) {
	stmts, h := parse(t, "if (true) if (false) print 1; else print 2;")
	require.False(t, h.HadCompileError)

	outer := stmts[0].(*ast.If)
	inner, ok := outer.Then.(*ast.If)
	require.True(t, ok)
	assert.NotNil(t, inner.Else)
	assert.Nil(t, outer.Else)
}

func TestParse_InvalidAssignmentTargetReportsButDoesNotAbortParse(t *testing.T) {
	stmts, h := parse(t, "1 + 2 = 3; print 1;")
	assert.True(t, h.HadCompileError)
	// The malformed statement and the one after it are both still parsed.
	require.Len(t, stmts, 2)
	assert.IsType(t, &ast.Print{}, stmts[1])
}

func TestParse_TooManyArgumentsReportsButDoesNotAbortParse(t *testing.T) {
	var args bytes.Buffer
	for i := 0; i < 256; i++ {
		if i > 0 {
			args.WriteByte(',')
		}
		args.WriteString("1")
	}
	stmts, h := parse(t, "f("+args.String()+"); print 1;")
	assert.True(t, h.HadCompileError)
	require.Len(t, stmts, 2)
}

func TestParse_SyntaxErrorSynchronizesToNextStatement(t *testing.T) {
	stmts, h := parse(t, "var ; print 1;")
	assert.True(t, h.HadCompileError)
	require.Len(t, stmts, 1)
	assert.IsType(t, &ast.Print{}, stmts[0])
}

func TestParse_FunctionDeclaration(t *testing.T) {
	stmts, h := parse(t, "fun add(x, y) { return x + y; }")
	require.False(t, h.HadCompileError)
	require.Len(t, stmts, 1)

	fn, ok := stmts[0].(*ast.Function)
	require.True(t, ok)
	assert.Equal(t, "add", fn.Name.Lexeme)
	require.Len(t, fn.Params, 2)
	assert.Equal(t, token.IDENTIFIER, fn.Params[0].Kind)
	require.Len(t, fn.Body, 1)
	assert.IsType(t, &ast.Return{}, fn.Body[0])
}
