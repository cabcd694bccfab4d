/*
File    : mql-go/interp/interp.go
*/

// Package interp is the tree-walking interpreter (spec §4.4): the
// reference evaluation path, used for quick one-off evaluation and for
// any script that needs NULL_COALESCE, which the compiled path rejects.
//
// This mirrors the shape of the teacher's eval.Evaluator — one struct
// holding shared evaluation state, one method per AST node kind — but
// MQL has no statements, scopes, or assignment (spec Non-goals), so
// there is a single entry point and no block/scope machinery at all.
package interp

import (
	"math/rand"

	"github.com/hollow-cube/mql-go/ast"
	"github.com/hollow-cube/mql-go/env"
	"github.com/hollow-cube/mql-go/errs"
	"github.com/hollow-cube/mql-go/mathlib"
	"github.com/hollow-cube/mql-go/parser"
	"github.com/hollow-cube/mql-go/value"
)

// Interpreter evaluates MQL source against a host-supplied env.Env. It
// owns one mathlib.Library so repeated Evaluate calls share the same
// math.random stream; build a fresh Interpreter to get a fresh stream.
type Interpreter struct {
	mathRoot *env.Root
}

// Option configures an Interpreter at construction.
type Option func(*mathlib.Library)

// WithRandSource overrides math.random's source for this Interpreter.
func WithRandSource(src rand.Source) Option {
	return func(l *mathlib.Library) { mathlib.WithRandSource(src)(l) }
}

// New builds an Interpreter.
func New(opts ...Option) *Interpreter {
	mathOpts := make([]mathlib.Option, len(opts))
	for i, o := range opts {
		mathOpts[i] = mathlib.Option(o)
	}
	return &Interpreter{mathRoot: mathlib.New(mathOpts...).Root()}
}

// Evaluate parses source and evaluates it against e (spec §4.4 entry
// point). The built-in math root is available as "math" and "m"
// regardless of what e binds.
func (it *Interpreter) Evaluate(source string, e *env.Env) (value.Value, error) {
	expr, err := parser.Parse(source)
	if err != nil {
		return value.Value{}, err
	}
	return it.Eval(expr, e)
}

// Eval evaluates an already-parsed expression tree against e. Hosts that
// compile once (via package parser) and evaluate many times with the
// interpreter should cache the ast.Expr and call this directly.
func (it *Interpreter) Eval(expr ast.Expr, e *env.Env) (value.Value, error) {
	switch n := expr.(type) {
	case *ast.Number:
		return value.Number(n.Value), nil
	case *ast.Ident:
		return it.evalIdent(n, e)
	case *ast.Access:
		return it.evalAccess(n, e)
	case *ast.Call:
		return it.evalCall(n, e)
	case *ast.Unary:
		return it.evalUnary(n, e)
	case *ast.Binary:
		return it.evalBinary(n, e)
	case *ast.Ternary:
		return it.evalTernary(n, e)
	default:
		return value.Value{}, &errs.TypeError{Message: "unrecognized expression node"}
	}
}

// evalIdent handles a bare root reference such as `math` with no member
// access. A root has no numeric projection of its own — it must be
// followed by `.member` — so this is always an error (spec §3: Value
// has no "namespace" variant).
func (it *Interpreter) evalIdent(n *ast.Ident, e *env.Env) (value.Value, error) {
	if _, ok := it.resolveRoot(n.Name, e); ok {
		return value.Value{}, &errs.TypeError{Message: "query root \"" + n.Name + "\" used without a member access"}
	}
	return value.Value{}, &errs.NameError{Ident: n.Name}
}

// resolveRoot finds the env.Root bound to name, checking the built-in
// math aliases first (spec §4.6: "math"/"m" are always present).
func (it *Interpreter) resolveRoot(name string, e *env.Env) (*env.Root, bool) {
	if name == "math" || name == "m" {
		return it.mathRoot, true
	}
	return e.Lookup(name)
}

// rootIdent extracts the *ast.Ident a member-access chain must resolve
// through. Only `ident.member` and `ident.member(args)` are supported —
// a deeper chain (`a.b.c`) has no way to carry a "nested host object"
// through value.Value's three variants, so the interpreter rejects it
// the same way the compiler does (spec §4.5 step 2), keeping the two
// evaluation paths equivalent on every expression either can run.
func rootIdent(lhs ast.Expr) (*ast.Ident, error) {
	ident, ok := lhs.(*ast.Ident)
	if !ok {
		return nil, &errs.UnsupportedFeature{Reason: "nested query access is not supported"}
	}
	return ident, nil
}

func (it *Interpreter) evalAccess(n *ast.Access, e *env.Env) (value.Value, error) {
	ident, err := rootIdent(n.Lhs)
	if err != nil {
		return value.Value{}, err
	}
	root, ok := it.resolveRoot(ident.Name, e)
	if !ok {
		return value.Value{}, &errs.NameError{Ident: ident.Name}
	}
	member, ok := root.Member(n.Member)
	if !ok {
		return value.Value{}, &errs.MethodError{Root: ident.Name, Member: n.Member, Arity: 0}
	}
	if member.IsCallable() && member.Arity() == 0 {
		return member.Invoke(nil)
	}
	return member, nil
}

func (it *Interpreter) evalCall(n *ast.Call, e *env.Env) (value.Value, error) {
	ident, err := rootIdent(n.Access.Lhs)
	if err != nil {
		return value.Value{}, err
	}
	root, ok := it.resolveRoot(ident.Name, e)
	if !ok {
		return value.Value{}, &errs.NameError{Ident: ident.Name}
	}
	member, ok := root.Member(n.Access.Member)
	if !ok {
		return value.Value{}, &errs.MethodError{Root: ident.Name, Member: n.Access.Member, Arity: len(n.Args)}
	}
	if !member.IsCallable() {
		return value.Value{}, &errs.TypeError{Message: ident.Name + "." + n.Access.Member + " is not callable"}
	}
	if member.Arity() != len(n.Args) {
		return value.Value{}, &errs.ArityError{Expected: member.Arity(), Got: len(n.Args)}
	}

	args := make([]value.Value, len(n.Args))
	for i, a := range n.Args {
		v, err := it.Eval(a, e)
		if err != nil {
			return value.Value{}, err
		}
		args[i] = v
	}
	return member.Invoke(args)
}

func (it *Interpreter) evalUnary(n *ast.Unary, e *env.Env) (value.Value, error) {
	rhs, err := it.Eval(n.Rhs, e)
	if err != nil {
		return value.Value{}, err
	}
	num, ok := rhs.AsNumber()
	if !ok {
		return value.Value{}, &errs.TypeError{Message: "unary - applied to a non-numeric value"}
	}
	return value.Number(-num), nil
}

// evalBinary evaluates a binary operator. NULL_COALESCE is the one
// operator that doesn't evaluate both sides unconditionally: it
// evaluates Lhs, and only evaluates Rhs if Lhs came back Null (spec
// §4.3) — distinct from Ternary's always-evaluate-both rule below.
func (it *Interpreter) evalBinary(n *ast.Binary, e *env.Env) (value.Value, error) {
	if n.Op == ast.OpCoal {
		lhs, err := it.Eval(n.Lhs, e)
		if err != nil {
			return value.Value{}, err
		}
		if !lhs.IsNull() {
			return lhs, nil
		}
		return it.Eval(n.Rhs, e)
	}

	lhsV, err := it.Eval(n.Lhs, e)
	if err != nil {
		return value.Value{}, err
	}
	rhsV, err := it.Eval(n.Rhs, e)
	if err != nil {
		return value.Value{}, err
	}
	lhs, ok := lhsV.AsNumber()
	if !ok {
		return value.Value{}, &errs.TypeError{Message: "left operand of a numeric operator is not numeric"}
	}
	rhs, ok := rhsV.AsNumber()
	if !ok {
		return value.Value{}, &errs.TypeError{Message: "right operand of a numeric operator is not numeric"}
	}

	switch n.Op {
	case ast.OpAdd:
		return value.Number(lhs + rhs), nil
	case ast.OpSub:
		return value.Number(lhs - rhs), nil
	case ast.OpMul:
		return value.Number(lhs * rhs), nil
	case ast.OpDiv:
		return value.Number(lhs / rhs), nil
	case ast.OpEq:
		return boolValue(lhs == rhs), nil
	case ast.OpNeq:
		return boolValue(lhs != rhs), nil
	case ast.OpLt:
		return boolValue(lhs < rhs), nil
	case ast.OpLte:
		return boolValue(lhs <= rhs), nil
	case ast.OpGt:
		return boolValue(lhs > rhs), nil
	case ast.OpGte:
		return boolValue(lhs >= rhs), nil
	default:
		return value.Value{}, &errs.TypeError{Message: "unrecognized binary operator"}
	}
}

// evalTernary evaluates cond, then, and else unconditionally and picks
// one by cond's truthiness (spec §4.3) — a deliberate deviation from
// most languages' short-circuiting ?:, preserved here because scripts
// in the wild already rely on both branches' side-effect-free math
// running every time.
func (it *Interpreter) evalTernary(n *ast.Ternary, e *env.Env) (value.Value, error) {
	condV, err := it.Eval(n.Cond, e)
	if err != nil {
		return value.Value{}, err
	}
	thenV, err := it.Eval(n.Then, e)
	if err != nil {
		return value.Value{}, err
	}
	elseV, err := it.Eval(n.Else, e)
	if err != nil {
		return value.Value{}, err
	}
	cond, ok := condV.AsNumber()
	if !ok {
		return value.Value{}, &errs.TypeError{Message: "ternary condition is not numeric"}
	}
	if cond != 0 {
		return thenV, nil
	}
	return elseV, nil
}

func boolValue(b bool) value.Value {
	if b {
		return value.Number(1)
	}
	return value.Number(0)
}
