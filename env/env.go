/*
File    : mql-go/env/env.go
*/

// Package env holds the interpreter's environment: the live mapping from
// query-root name to the Root object a host bound it to. A Root is a bag
// of named members (host query methods, or the built-in math functions)
// rather than a value.Value itself — value.Value only has room for
// Number/Null/Callable (spec §3), and a query root is neither a number
// nor a single callable, it's a namespace of callables. Unlike the
// teacher's scope.Scope (a chain of nested block scopes for variable
// shadowing and closures), MQL has no nested scoping or variable
// assignment at all (spec Non-goals) — the environment is a single flat
// map the host builds and passes to Evaluate, once or for many calls.
package env

import "github.com/hollow-cube/mql-go/value"

// Root is a named bag of members a query root exposes. Every member is a
// value.Value — almost always a Callable, since MQL roots only expose
// methods (spec §6 "Query type descriptor protocol"), though a constant
// like math.pi is modeled as a zero-arity Callable so the interpreter's
// ordinary auto-invoke rule (spec §4.4) applies uniformly.
type Root struct {
	members map[string]value.Value
}

// NewRoot builds an empty Root.
func NewRoot() *Root {
	return &Root{members: make(map[string]value.Value)}
}

// Def binds member to v and returns the Root, for chained construction.
func (r *Root) Def(member string, v value.Value) *Root {
	r.members[member] = v
	return r
}

// Member looks up a member by name.
func (r *Root) Member(name string) (value.Value, bool) {
	v, ok := r.members[name]
	return v, ok
}

// Env maps query-root names to the Root objects a host bound for one
// evaluation (spec §4.4).
type Env struct {
	roots map[string]*Root
}

// New builds an empty Env.
func New() *Env {
	return &Env{roots: make(map[string]*Root)}
}

// Bind associates name with root. Binding the same Root under two names
// (e.g. "q" and "query") is the host's responsibility — call Bind once
// per name.
func (e *Env) Bind(name string, root *Root) *Env {
	e.roots[name] = root
	return e
}

// Lookup returns the Root bound to name, if any.
func (e *Env) Lookup(name string) (*Root, bool) {
	r, ok := e.roots[name]
	return r, ok
}
