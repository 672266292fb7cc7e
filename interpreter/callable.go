/*
File   : glox/interpreter/callable.go
Package: interpreter
*/

package interpreter

import (
	"fmt"

	"github.com/loxlang/glox/ast"
	"github.com/loxlang/glox/environment"
	"github.com/loxlang/glox/value"
)

// callable is the capability a call expression actually needs: arity for
// the argument-count check, and Call to run it. value.Callable (Arity +
// Object) is the narrower, interpreter-agnostic view other packages can
// see without importing this one; every callable here also satisfies it.
type callable interface {
	value.Callable
	Call(interp *Interpreter, args []value.Object) (value.Object, error)
}

// Function is a user-defined Lox function: its declaration plus the
// environment active when it was declared, captured by reference so that
// mutations visible to one call are visible to the next (closure
// semantics -- see environment.Environment's doc comment).
type Function struct {
	declaration *ast.Function
	closure     *environment.Environment
}

// NewFunction constructs a Function, closing over closure.
func NewFunction(declaration *ast.Function, closure *environment.Environment) *Function {
	return &Function{declaration: declaration, closure: closure}
}

func (*Function) Type() value.Type { return value.CallableType }
func (f *Function) Arity() int     { return len(f.declaration.Params) }
func (f *Function) String() string { return fmt.Sprintf("<fn %s>", f.declaration.Name.Lexeme) }

// Call binds args to the declaration's parameters in a fresh environment
// enclosed by the captured closure, then executes the body. A Return
// unwind caught here becomes the call's result; falling off the end of
// the body yields nil.
func (f *Function) Call(interp *Interpreter, args []value.Object) (value.Object, error) {
	callEnv := environment.New(f.closure)
	for i, param := range f.declaration.Params {
		callEnv.Define(param.Lexeme, args[i])
	}

	err := interp.executeBlock(f.declaration.Body, callEnv)
	if err != nil {
		if ret, ok := err.(*returnSignal); ok {
			return ret.Value, nil
		}
		return nil, err
	}
	return value.Nil{}, nil
}

// Native is a builtin function implemented in Go, populated into globals
// at interpreter construction (e.g. clock). It participates in callable
// exactly like a user-defined Function.
type Native struct {
	name  string
	arity int
	fn    func(interp *Interpreter, args []value.Object) (value.Object, error)
}

func (*Native) Type() value.Type { return value.CallableType }
func (n *Native) Arity() int     { return n.arity }
func (n *Native) String() string { return fmt.Sprintf("<native fn %s>", n.name) }

func (n *Native) Call(interp *Interpreter, args []value.Object) (value.Object, error) {
	return n.fn(interp, args)
}
