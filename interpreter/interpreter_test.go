/*
File   : glox/interpreter/interpreter_test.go
Package: interpreter
*/

package interpreter

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/loxlang/glox/host"
	"github.com/loxlang/glox/lexer"
	"github.com/loxlang/glox/parser"
	"github.com/loxlang/glox/resolver"
)

// run lexes, parses, resolves, and interprets src, returning everything
// Print wrote plus the host that recorded any errors.
func run(t *testing.T, src string) (string, *host.Host) {
	t.Helper()
	var errBuf, outBuf bytes.Buffer
	h := host.New(&errBuf)

	toks := lexer.New(src, h).ScanTokens()
	stmts := parser.New(toks, h).Parse()
	require.False(t, h.HadCompileError, "unexpected compile error: %s", errBuf.String())

	locals := resolver.New(h).Resolve(stmts)
	require.False(t, h.HadCompileError, "unexpected resolve error: %s", errBuf.String())

	New(h, &outBuf).Interpret(stmts, locals)
	return outBuf.String(), h
}

func lines(out string) []string {
	out = strings.TrimRight(out, "\n")
	if out == "" {
		return nil
	}
	return strings.Split(out, "\n")
}

func TestEndToEnd_Arithmetic(t *testing.T) {
	out, h := run(t, "print 1 + 2;")
	assert.False(t, h.HadRuntimeError)
	assert.Equal(t, []string{"3"}, lines(out))
}

func TestEndToEnd_BlockShadowing(t *testing.T) {
	out, h := run(t, "var a = 0; { var a = 2; print a; } print a;")
	assert.False(t, h.HadRuntimeError)
	assert.Equal(t, []string{"2", "0"}, lines(out))
}

func TestEndToEnd_WhileLoop(t *testing.T) {
	out, h := run(t, "var a = 0; while (a < 2) { print a; a = a + 1; }")
	assert.False(t, h.HadRuntimeError)
	assert.Equal(t, []string{"0", "1"}, lines(out))
}

func TestEndToEnd_ForLoop(t *testing.T) {
	out, h := run(t, "for (var a = 1; a < 3; a = a + 1) print a;")
	assert.False(t, h.HadRuntimeError)
	assert.Equal(t, []string{"1", "2"}, lines(out))
}

func TestEndToEnd_FunctionCall(t *testing.T) {
	out, h := run(t, "fun add(x,y){ return x+y; } print add(3,4);")
	assert.False(t, h.HadRuntimeError)
	assert.Equal(t, []string{"7"}, lines(out))
}

func TestEndToEnd_ClosureSharesMutableState(t *testing.T) {
	out, h := run(t, "fun mk(){ var c=0; fun inc(){ c = c+1; return c; } return inc; } var f = mk(); print f(); print f();")
	assert.False(t, h.HadRuntimeError)
	assert.Equal(t, []string{"1", "2"}, lines(out))
}

func TestBoundary_DivisionByZero(t *testing.T) {
	_, h := run(t, "print 1/0;")
	assert.True(t, h.HadRuntimeError)
}

func TestBoundary_StringPlusNumberIsRuntimeError(t *testing.T) {
	_, h := run(t, `print "a" + 1;`)
	assert.True(t, h.HadRuntimeError)
}

func TestBoundary_UninitializedVarIsNil(t *testing.T) {
	out, h := run(t, "var x; print x;")
	assert.False(t, h.HadRuntimeError)
	assert.Equal(t, []string{"nil"}, lines(out))
}

func TestBoundary_UndefinedVariableIsRuntimeError(t *testing.T) {
	var errBuf bytes.Buffer
	_, h := run(t, "print y;")
	_ = errBuf
	assert.True(t, h.HadRuntimeError)
}

func TestBoundary_WrongArityIsRuntimeError(t *testing.T) {
	_, h := run(t, "fun f(a) { return a; } f(1, 2);")
	assert.True(t, h.HadRuntimeError)
}

func TestLogical_ShortCircuitsAndReturnsOperand(t *testing.T) {
	out, h := run(t, `print "a" or "b"; print false or "b"; print false and "b"; print "a" and "b";`)
	assert.False(t, h.HadRuntimeError)
	assert.Equal(t, []string{"a", "b", "false", "b"}, lines(out))
}

func TestNativeClock_ReturnsNumber(t *testing.T) {
	out, h := run(t, "print clock() >= 0;")
	assert.False(t, h.HadRuntimeError)
	assert.Equal(t, []string{"true"}, lines(out))
}

func TestRuntimeErrorStopsSubsequentStatements(t *testing.T) {
	out, h := run(t, "print 1; print 1/0; print 2;")
	assert.True(t, h.HadRuntimeError)
	assert.Equal(t, []string{"1"}, lines(out))
}
