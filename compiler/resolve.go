/*
File    : mql-go/compiler/resolve.go
*/
package compiler

import (
	"github.com/hollow-cube/mql-go/ast"
	"github.com/hollow-cube/mql-go/errs"
	"github.com/hollow-cube/mql-go/hostapi"
)

// rootRef is where one resolved `ident.member(...)` dispatches: either
// the static built-in math root, or a virtual call against the host
// query object bound to paramIndex in the Signature (spec §4.5 step 6).
type rootRef struct {
	static     bool
	classInfo  *hostapi.ClassInfo
	paramIndex int
}

// resolveRoot matches an identifier against the special math names
// first, then the declared Signature parameters (spec §4.5 step 3).
func (c *Compiler) resolveRoot(name string) (rootRef, error) {
	if name == "math" || name == "m" {
		return rootRef{static: true, classInfo: c.mathCI}, nil
	}
	idx, p, ok := c.sig.Resolve(name)
	if !ok {
		return rootRef{}, &errs.NameError{Ident: name}
	}
	return rootRef{static: false, classInfo: p.Class, paramIndex: idx}, nil
}

// chainIdent requires lhs to be a bare *ast.Ident — `ident.member` or
// `ident.member(args)` — rejecting anything deeper (`a.b.c`) as a
// nested query (spec §4.5 step 2, §4 invariant).
func chainIdent(lhs ast.Expr) (*ast.Ident, error) {
	ident, ok := lhs.(*ast.Ident)
	if !ok {
		return nil, &errs.UnsupportedFeature{Reason: "nested query access is not supported"}
	}
	return ident, nil
}

// dispatch builds the invocation closure for a resolved method: a
// static call against the math root, or a virtual call against the
// host root object bound at roots[paramIndex].
func (ref rootRef) dispatch(desc *hostapi.MethodDescriptor, argFns []evalFunc, params []hostapi.ParamKind) evalFunc {
	return func(roots []any) (float64, error) {
		args := make([]float64, len(argFns))
		for i, fn := range argFns {
			v, err := fn(roots)
			if err != nil {
				return 0, err
			}
			args[i] = coerce(params[i], v)
		}
		var receiver any
		if !ref.static {
			receiver = roots[ref.paramIndex]
		}
		return desc.Invoke(receiver, args)
	}
}

// coerce applies the declared parameter kind's coercion rule: a numeric
// parameter passes its value through unchanged; a boolean parameter
// collapses it to 1.0/0.0 by nonzero-is-true (spec §4.3, §4.5 step 5).
func coerce(kind hostapi.ParamKind, v float64) float64 {
	if kind == hostapi.Boolean {
		if v != 0 {
			return 1
		}
		return 0
	}
	return v
}

func (c *Compiler) compileAccess(n *ast.Access) (evalFunc, error) {
	ident, err := chainIdent(n.Lhs)
	if err != nil {
		return nil, err
	}
	ref, err := c.resolveRoot(ident.Name)
	if err != nil {
		return nil, err
	}
	desc, ok := ref.classInfo.Lookup(n.Member, 0)
	if !ok {
		return nil, &errs.MethodError{Root: ident.Name, Member: n.Member, Arity: 0}
	}
	return ref.dispatch(desc, nil, nil), nil
}

func (c *Compiler) compileCall(n *ast.Call) (evalFunc, error) {
	ident, err := chainIdent(n.Access.Lhs)
	if err != nil {
		return nil, err
	}
	ref, err := c.resolveRoot(ident.Name)
	if err != nil {
		return nil, err
	}
	desc, ok := ref.classInfo.Lookup(n.Access.Member, len(n.Args))
	if !ok {
		return nil, &errs.MethodError{Root: ident.Name, Member: n.Access.Member, Arity: len(n.Args)}
	}
	argFns := make([]evalFunc, len(n.Args))
	for i, a := range n.Args {
		fn, err := c.compileExpr(a)
		if err != nil {
			return nil, err
		}
		argFns[i] = fn
	}
	return ref.dispatch(desc, argFns, desc.Params), nil
}
