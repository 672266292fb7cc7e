/*
File   : glox/interpreter/interpreter.go
Package: interpreter
*/

// Package interpreter walks the resolved AST and evaluates it directly,
// with no intermediate bytecode. It is the last stage of the pipeline:
// lexer -> parser -> resolver -> interpreter.
package interpreter

import (
	"fmt"
	"io"
	"time"

	"github.com/loxlang/glox/ast"
	"github.com/loxlang/glox/environment"
	"github.com/loxlang/glox/host"
	"github.com/loxlang/glox/resolver"
	"github.com/loxlang/glox/token"
	"github.com/loxlang/glox/value"
)

// Interpreter holds the two pieces of state a run needs beyond the AST
// itself: the environment chain (globals plus whatever scope is current)
// and the resolver's depth annotations for the statement list currently
// being run.
type Interpreter struct {
	globals     *environment.Environment
	environment *environment.Environment
	locals      resolver.Locals
	host        *host.Host
	out         io.Writer
}

// New creates an Interpreter that writes Print output to out and reports
// runtime errors through h. The globals environment is seeded with the
// native functions every Lox program can call without declaring them.
func New(h *host.Host, out io.Writer) *Interpreter {
	globals := environment.New(nil)
	in := &Interpreter{globals: globals, environment: globals, host: h, out: out}
	in.defineNatives()
	return in
}

func (in *Interpreter) defineNatives() {
	in.globals.Define("clock", &Native{
		name:  "clock",
		arity: 0,
		fn: func(*Interpreter, []value.Object) (value.Object, error) {
			return value.NewNumber(float64(time.Now().UnixNano()) / 1e9), nil
		},
	})
}

// returnSignal is the Return-unwind mechanism. It satisfies error so it
// can travel up through execute/executeBlock alongside genuine runtime
// faults, but Function.Call is the only place that ever unwraps one; it
// never reaches Interpret, since the resolver rejects a return outside a
// function before the interpreter ever runs.
type returnSignal struct {
	Value value.Object
}

func (*returnSignal) Error() string { return "return" }

// Interpret runs stmts to completion or until a runtime error occurs. It
// is the caller's job (lexer/parser/resolver having already rejected
// compile-time errors) to supply locals computed by the resolver pass
// over the same statement list.
func (in *Interpreter) Interpret(stmts []ast.Stmt, locals resolver.Locals) {
	in.locals = locals
	for _, stmt := range stmts {
		if err := in.execute(stmt); err != nil {
			if rtErr, ok := err.(*host.RuntimeErr); ok {
				in.host.RuntimeError(rtErr.Line, rtErr.Message)
			}
			return
		}
	}
}

func (in *Interpreter) execute(stmt ast.Stmt) error {
	switch s := stmt.(type) {
	case *ast.Expression:
		_, err := in.evaluate(s.Expr)
		return err

	case *ast.Print:
		v, err := in.evaluate(s.Expr)
		if err != nil {
			return err
		}
		fmt.Fprintln(in.out, v.String())
		return nil

	case *ast.Var:
		var val value.Object = value.Nil{}
		if s.Initializer != nil {
			v, err := in.evaluate(s.Initializer)
			if err != nil {
				return err
			}
			val = v
		}
		in.environment.Define(s.Name.Lexeme, val)
		return nil

	case *ast.Block:
		return in.executeBlock(s.Statements, environment.New(in.environment))

	case *ast.If:
		cond, err := in.evaluate(s.Condition)
		if err != nil {
			return err
		}
		if value.Truthy(cond) {
			return in.execute(s.Then)
		} else if s.Else != nil {
			return in.execute(s.Else)
		}
		return nil

	case *ast.While:
		for {
			cond, err := in.evaluate(s.Condition)
			if err != nil {
				return err
			}
			if !value.Truthy(cond) {
				return nil
			}
			if err := in.execute(s.Body); err != nil {
				return err
			}
		}

	case *ast.Function:
		in.environment.Define(s.Name.Lexeme, NewFunction(s, in.environment))
		return nil

	case *ast.Return:
		var val value.Object = value.Nil{}
		if s.Value != nil {
			v, err := in.evaluate(s.Value)
			if err != nil {
				return err
			}
			val = v
		}
		return &returnSignal{Value: val}
	}
	return nil
}

// executeBlock runs stmts with env as the current environment, restoring
// the previous environment on the way out -- including when a statement
// returns an error, so a runtime fault or Return unwind three blocks deep
// still leaves the interpreter's environment chain exactly as it found
// it. This is the same function a Block statement and a function call
// both go through; the two differ only in what they do with the error
// that comes back out.
func (in *Interpreter) executeBlock(stmts []ast.Stmt, env *environment.Environment) error {
	previous := in.environment
	in.environment = env
	defer func() { in.environment = previous }()

	for _, stmt := range stmts {
		if err := in.execute(stmt); err != nil {
			return err
		}
	}
	return nil
}

func (in *Interpreter) evaluate(expr ast.Expr) (value.Object, error) {
	switch e := expr.(type) {
	case *ast.Literal:
		return literalValue(e.Value), nil

	case *ast.Grouping:
		return in.evaluate(e.Expression)

	case *ast.Unary:
		right, err := in.evaluate(e.Right)
		if err != nil {
			return nil, err
		}
		switch e.Operator.Kind {
		case token.MINUS:
			n, ok := right.(value.Number)
			if !ok {
				return nil, host.NewRuntimeErr(e.Operator, "Operand must be a number.")
			}
			return value.NewNumber(-n.Value), nil
		case token.BANG:
			return value.NewBool(!value.Truthy(right)), nil
		}
		return value.Nil{}, nil

	case *ast.Binary:
		left, err := in.evaluate(e.Left)
		if err != nil {
			return nil, err
		}
		right, err := in.evaluate(e.Right)
		if err != nil {
			return nil, err
		}
		return in.evalBinary(e.Operator, left, right)

	case *ast.Logical:
		left, err := in.evaluate(e.Left)
		if err != nil {
			return nil, err
		}
		// Short-circuit: an `or` with a truthy left, or an `and` with a
		// falsey left, never evaluates the right operand, and the value
		// produced is the actual left operand, not a coerced bool.
		if e.Operator.Kind == token.OR {
			if value.Truthy(left) {
				return left, nil
			}
		} else if !value.Truthy(left) {
			return left, nil
		}
		return in.evaluate(e.Right)

	case *ast.Variable:
		return in.lookUpVariable(e.Name, e)

	case *ast.Assign:
		val, err := in.evaluate(e.Value)
		if err != nil {
			return nil, err
		}
		if distance, ok := in.locals[expr]; ok {
			in.environment.AssignAt(distance, e.Name.Lexeme, val)
		} else if !in.globals.Assign(e.Name.Lexeme, val) {
			return nil, host.NewRuntimeErr(e.Name, "Undefined variable '%s'.", e.Name.Lexeme)
		}
		return val, nil

	case *ast.Call:
		return in.evalCall(e)
	}
	return value.Nil{}, nil
}

func (in *Interpreter) lookUpVariable(name token.Token, expr ast.Expr) (value.Object, error) {
	if distance, ok := in.locals[expr]; ok {
		if v, ok := in.environment.GetAt(distance, name.Lexeme); ok {
			return v, nil
		}
	} else if v, ok := in.globals.Get(name.Lexeme); ok {
		return v, nil
	}
	return nil, host.NewRuntimeErr(name, "Undefined variable '%s'.", name.Lexeme)
}

func (in *Interpreter) evalCall(e *ast.Call) (value.Object, error) {
	calleeVal, err := in.evaluate(e.Callee)
	if err != nil {
		return nil, err
	}

	args := make([]value.Object, 0, len(e.Arguments))
	for _, argExpr := range e.Arguments {
		v, err := in.evaluate(argExpr)
		if err != nil {
			return nil, err
		}
		args = append(args, v)
	}

	fn, ok := calleeVal.(callable)
	if !ok {
		return nil, host.NewRuntimeErr(e.Paren, "Can only call functions and classes.")
	}
	if len(args) != fn.Arity() {
		return nil, host.NewRuntimeErr(e.Paren, "Expected %d arguments but got %d.", fn.Arity(), len(args))
	}
	return fn.Call(in, args)
}

func (in *Interpreter) evalBinary(op token.Token, left, right value.Object) (value.Object, error) {
	switch op.Kind {
	case token.MINUS:
		l, r, err := checkNumberOperands(op, left, right)
		if err != nil {
			return nil, err
		}
		return value.NewNumber(l - r), nil

	case token.SLASH:
		l, r, err := checkNumberOperands(op, left, right)
		if err != nil {
			return nil, err
		}
		if r == 0 {
			return nil, host.NewRuntimeErr(op, "Division by zero.")
		}
		return value.NewNumber(l / r), nil

	case token.STAR:
		l, r, err := checkNumberOperands(op, left, right)
		if err != nil {
			return nil, err
		}
		return value.NewNumber(l * r), nil

	case token.PLUS:
		if ln, ok := left.(value.Number); ok {
			if rn, ok := right.(value.Number); ok {
				return value.NewNumber(ln.Value + rn.Value), nil
			}
		}
		if ls, ok := left.(value.String); ok {
			if rs, ok := right.(value.String); ok {
				return value.NewString(ls.Value + rs.Value), nil
			}
		}
		return nil, host.NewRuntimeErr(op, "Operands must be two numbers or two strings.")

	case token.GREATER:
		l, r, err := checkNumberOperands(op, left, right)
		if err != nil {
			return nil, err
		}
		return value.NewBool(l > r), nil

	case token.GREATER_EQUAL:
		l, r, err := checkNumberOperands(op, left, right)
		if err != nil {
			return nil, err
		}
		return value.NewBool(l >= r), nil

	case token.LESS:
		l, r, err := checkNumberOperands(op, left, right)
		if err != nil {
			return nil, err
		}
		return value.NewBool(l < r), nil

	case token.LESS_EQUAL:
		l, r, err := checkNumberOperands(op, left, right)
		if err != nil {
			return nil, err
		}
		return value.NewBool(l <= r), nil

	case token.BANG_EQUAL:
		return value.NewBool(!value.Equal(left, right)), nil

	case token.EQUAL_EQUAL:
		return value.NewBool(value.Equal(left, right)), nil
	}
	return value.Nil{}, nil
}

func checkNumberOperands(op token.Token, left, right value.Object) (float64, float64, error) {
	l, lok := left.(value.Number)
	r, rok := right.(value.Number)
	if !lok || !rok {
		return 0, 0, host.NewRuntimeErr(op, "Operands must be numbers.")
	}
	return l.Value, r.Value, nil
}

// literalValue converts the scanner/parser's untyped literal payload
// (nil, bool, float64, or string -- see ast.Literal's doc comment) into
// the tagged value.Object the rest of the interpreter operates on.
func literalValue(v interface{}) value.Object {
	switch x := v.(type) {
	case nil:
		return value.Nil{}
	case bool:
		return value.NewBool(x)
	case float64:
		return value.NewNumber(x)
	case string:
		return value.NewString(x)
	default:
		return value.Nil{}
	}
}
