/*
File   : glox/environment/environment.go
Package: environment
*/

// Package environment implements Lox's chained lexical scope: an ordered
// pair of a name-to-value binding map and a pointer to the enclosing
// environment, terminating at the globals environment. This is the
// teacher's scope.Scope, adapted: scope.Scope closed over its defining
// scope by deep-copying it (Scope.Copy), which would sever the shared
// mutable state Lox closures require (a counter closure must observe the
// same binding across calls, not a snapshot of it). Here a closure
// captures the *Environment pointer itself, so assignments made through
// one reference are visible through every other reference to the same
// environment — the chain is a graph of shared nodes, not copied trees.
package environment

import "github.com/loxlang/glox/value"

// Environment is one lexical scope: its own bindings plus a link to the
// enclosing scope. A nil Enclosing marks the globals environment.
type Environment struct {
	values    map[string]value.Object
	Enclosing *Environment
}

// New creates a fresh environment enclosed by parent. Pass nil to create
// the top-level globals environment.
func New(parent *Environment) *Environment {
	return &Environment{
		values:    make(map[string]value.Object),
		Enclosing: parent,
	}
}

// Define binds name to val in this environment. A name may be defined at
// most once per level at a time; redefining it in the same environment
// (e.g. global-scope redeclaration, which the resolver does not forbid)
// simply overwrites the prior binding.
func (e *Environment) Define(name string, val value.Object) {
	e.values[name] = val
}

// Get reads name, searching this environment and then each enclosing
// environment in turn. The bool result is false if name is bound nowhere
// in the chain.
func (e *Environment) Get(name string) (value.Object, bool) {
	if v, ok := e.values[name]; ok {
		return v, true
	}
	if e.Enclosing != nil {
		return e.Enclosing.Get(name)
	}
	return nil, false
}

// Assign stores val into the existing binding for name, searching this
// environment and then each enclosing environment. It does not create a
// new binding; the bool result is false if name is not already bound
// anywhere in the chain, in which case no assignment happened.
func (e *Environment) Assign(name string, val value.Object) bool {
	if _, ok := e.values[name]; ok {
		e.values[name] = val
		return true
	}
	if e.Enclosing != nil {
		return e.Enclosing.Assign(name, val)
	}
	return false
}

// Ancestor walks up distance enclosing links and returns the environment
// found there. distance is the hop depth the resolver computed for a
// variable reference: 0 means "this environment".
func (e *Environment) Ancestor(distance int) *Environment {
	env := e
	for i := 0; i < distance; i++ {
		env = env.Enclosing
	}
	return env
}

// GetAt reads name directly from the environment distance hops up the
// chain, bypassing the walk-until-found search Get does. Used by the
// interpreter once the resolver has fixed a variable's depth.
func (e *Environment) GetAt(distance int, name string) (value.Object, bool) {
	v, ok := e.Ancestor(distance).values[name]
	return v, ok
}

// AssignAt stores val into the binding for name in the environment
// distance hops up the chain.
func (e *Environment) AssignAt(distance int, name string, val value.Object) {
	e.Ancestor(distance).values[name] = val
}
