/*
File   : glox/resolver/resolver.go
Package: resolver
*/

// Package resolver implements the static pre-execution pass that binds
// each variable reference to a hop depth: the number of enclosing
// environments to skip to find the environment that will hold its
// binding at runtime. It creates no runtime bindings of its own -- only
// an annotation the interpreter consults.
package resolver

import (
	"github.com/loxlang/glox/ast"
	"github.com/loxlang/glox/host"
	"github.com/loxlang/glox/token"
)

// Locals maps a Variable or Assign expression node (by pointer identity,
// since Go compares interface values holding pointers by pointer) to the
// hop depth the interpreter should use to resolve it. A node absent from
// this map is resolved against globals at runtime.
type Locals map[ast.Expr]int

type functionKind int

const (
	noFunction functionKind = iota
	inFunction
)

// Resolver walks a statement list exactly once, before execution,
// maintaining a stack of block scopes. Each scope maps a name to whether
// its declaration has finished initializing.
type Resolver struct {
	host            *host.Host
	locals          Locals
	scopes          []map[string]bool
	currentFunction functionKind
}

// New creates a Resolver. Diagnostics (e.g. reading a local in its own
// initializer) are reported through h as compile-time errors.
func New(h *host.Host) *Resolver {
	return &Resolver{host: h, locals: make(Locals)}
}

// Resolve runs the pass over stmts and returns the depth annotations it
// computed.
func (r *Resolver) Resolve(stmts []ast.Stmt) Locals {
	r.resolveStmts(stmts)
	return r.locals
}

func (r *Resolver) resolveStmts(stmts []ast.Stmt) {
	for _, s := range stmts {
		r.resolveStmt(s)
	}
}

func (r *Resolver) resolveStmt(stmt ast.Stmt) {
	switch s := stmt.(type) {
	case *ast.Expression:
		r.resolveExpr(s.Expr)
	case *ast.Print:
		r.resolveExpr(s.Expr)
	case *ast.Var:
		r.declare(s.Name)
		if s.Initializer != nil {
			r.resolveExpr(s.Initializer)
		}
		r.define(s.Name)
	case *ast.Block:
		r.beginScope()
		r.resolveStmts(s.Statements)
		r.endScope()
	case *ast.If:
		r.resolveExpr(s.Condition)
		r.resolveStmt(s.Then)
		if s.Else != nil {
			r.resolveStmt(s.Else)
		}
	case *ast.While:
		r.resolveExpr(s.Condition)
		r.resolveStmt(s.Body)
	case *ast.Function:
		r.declare(s.Name)
		r.define(s.Name)
		r.resolveFunction(s, inFunction)
	case *ast.Return:
		if r.currentFunction == noFunction {
			r.host.TokenError(s.Keyword, "Can't return from top-level code.")
		}
		if s.Value != nil {
			r.resolveExpr(s.Value)
		}
	}
}

func (r *Resolver) resolveExpr(expr ast.Expr) {
	switch e := expr.(type) {
	case *ast.Literal:
		// No names to resolve.
	case *ast.Grouping:
		r.resolveExpr(e.Expression)
	case *ast.Unary:
		r.resolveExpr(e.Right)
	case *ast.Binary:
		r.resolveExpr(e.Left)
		r.resolveExpr(e.Right)
	case *ast.Logical:
		r.resolveExpr(e.Left)
		r.resolveExpr(e.Right)
	case *ast.Call:
		r.resolveExpr(e.Callee)
		for _, arg := range e.Arguments {
			r.resolveExpr(arg)
		}
	case *ast.Variable:
		if len(r.scopes) > 0 {
			if defined, declared := r.scopes[len(r.scopes)-1][e.Name.Lexeme]; declared && !defined {
				r.host.TokenError(e.Name, "Can't read local variable in its own initializer.")
			}
		}
		r.resolveLocal(e, e.Name)
	case *ast.Assign:
		r.resolveExpr(e.Value)
		r.resolveLocal(e, e.Name)
	}
}

func (r *Resolver) resolveFunction(fn *ast.Function, kind functionKind) {
	enclosingFunction := r.currentFunction
	r.currentFunction = kind

	r.beginScope()
	for _, param := range fn.Params {
		r.declare(param)
		r.define(param)
	}
	r.resolveStmts(fn.Body)
	r.endScope()

	r.currentFunction = enclosingFunction
}

// resolveLocal walks the scope stack innermost-out; the first scope that
// contains name fixes expr's depth to that scope's distance from the
// innermost one. A name found in no scope is left unresolved, so the
// interpreter falls back to the globals environment.
func (r *Resolver) resolveLocal(expr ast.Expr, name token.Token) {
	for i := len(r.scopes) - 1; i >= 0; i-- {
		if _, ok := r.scopes[i][name.Lexeme]; ok {
			r.locals[expr] = len(r.scopes) - 1 - i
			return
		}
	}
	// Not found in any scope: treated as global.
}

func (r *Resolver) beginScope() {
	r.scopes = append(r.scopes, make(map[string]bool))
}

func (r *Resolver) endScope() {
	r.scopes = r.scopes[:len(r.scopes)-1]
}

// declare records name in the innermost scope as not-yet-initialized.
// Declaring the same name twice in the same scope is not diagnosed; the
// language permits shadowing within nested scopes and this pass has no
// opinion on same-scope redeclaration.
func (r *Resolver) declare(name token.Token) {
	if len(r.scopes) == 0 {
		return
	}
	r.scopes[len(r.scopes)-1][name.Lexeme] = false
}

// define marks name as fully initialized in the innermost scope, after
// its initializer (if any) has been resolved.
func (r *Resolver) define(name token.Token) {
	if len(r.scopes) == 0 {
		return
	}
	r.scopes[len(r.scopes)-1][name.Lexeme] = true
}
