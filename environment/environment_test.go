/*
File   : glox/environment/environment_test.go
Package: environment
*/

package environment

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/loxlang/glox/value"
)

func TestDefineAndGet(t *testing.T) {
	env := New(nil)
	env.Define("a", value.NewNumber(1))

	v, ok := env.Get("a")
	assert.True(t, ok)
	assert.Equal(t, value.NewNumber(1), v)
}

func TestGet_FallsThroughToEnclosing(t *testing.T) {
	globals := New(nil)
	globals.Define("a", value.NewNumber(1))
	child := New(globals)

	v, ok := child.Get("a")
	assert.True(t, ok)
	assert.Equal(t, value.NewNumber(1), v)
}

func TestGet_MissingReturnsFalse(t *testing.T) {
	env := New(nil)
	_, ok := env.Get("missing")
	assert.False(t, ok)
}

func TestAssign_MustAlreadyExist(t *testing.T) {
	env := New(nil)
	assert.False(t, env.Assign("a", value.NewNumber(1)))

	env.Define("a", value.NewNumber(1))
	assert.True(t, env.Assign("a", value.NewNumber(2)))

	v, _ := env.Get("a")
	assert.Equal(t, value.NewNumber(2), v)
}

func TestAssign_WritesThroughToEnclosing(t *testing.T) {
	globals := New(nil)
	globals.Define("a", value.NewNumber(1))
	child := New(globals)

	assert.True(t, child.Assign("a", value.NewNumber(9)))

	v, _ := globals.Get("a")
	assert.Equal(t, value.NewNumber(9), v)
}

func TestGetAtAssignAt_UseFixedDepth(t *testing.T) {
	globals := New(nil)
	middle := New(globals)
	inner := New(middle)

	middle.Define("a", value.NewNumber(1))

	v, ok := inner.GetAt(1, "a")
	assert.True(t, ok)
	assert.Equal(t, value.NewNumber(1), v)

	inner.AssignAt(1, "a", value.NewNumber(2))
	v, _ = middle.Get("a")
	assert.Equal(t, value.NewNumber(2), v)
}

func TestSharedPointer_ClosuresObserveMutation(t *testing.T) {
	// Two environments pointing at the same enclosing environment must
	// observe each other's writes -- this is the property that makes a
	// Lox counter closure work (see the package doc comment).
	globals := New(nil)
	shared := New(globals)
	shared.Define("c", value.NewNumber(0))

	readerA := New(shared)
	readerB := New(shared)

	shared.Assign("c", value.NewNumber(5))

	va, _ := readerA.Get("c")
	vb, _ := readerB.Get("c")
	assert.Equal(t, va, vb)
	assert.Equal(t, value.NewNumber(5), va)
}
