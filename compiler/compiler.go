/*
File    : mql-go/compiler/compiler.go
*/

// Package compiler implements the ahead-of-invocation compiled path
// (spec §4.5): given a host-declared Signature, it turns MQL source into
// a CompiledExpr that performs no name-based lookup per invocation —
// every identifier is resolved against the Signature once, at Compile
// time, into a tree of closures over plain float64s.
//
// There's no teacher analogue for this two-speed interpret/compile
// split — the teacher is a pure tree-walker — so this package is
// grounded on spec §4.5's algorithm directly, built in the teacher's
// idiom (one small file per concern, doc comments above every exported
// method, typed errors from package errs).
package compiler

import (
	"math/rand"
	"sync/atomic"

	"github.com/hollow-cube/mql-go/ast"
	"github.com/hollow-cube/mql-go/errs"
	"github.com/hollow-cube/mql-go/hostapi"
	"github.com/hollow-cube/mql-go/mathlib"
	"github.com/hollow-cube/mql-go/parser"
)

// Compiler holds one validated Signature and mints CompiledExprs from
// it. A Compiler is not safe for concurrent Compile calls (spec §5); the
// host must serialize compilation, though the CompiledExpr values it
// produces are safe to invoke concurrently.
type Compiler struct {
	sig     *hostapi.Signature
	mathCI  *hostapi.ClassInfo
	counter uint64
}

// Option configures a Compiler at construction.
type Option func(*mathlib.Library)

// WithRandSource overrides math.random's source for every CompiledExpr
// this Compiler produces.
func WithRandSource(src rand.Source) Option {
	return func(l *mathlib.Library) { mathlib.WithRandSource(src)(l) }
}

// NewCompiler validates sig (every parameter named and concretely typed,
// no name collisions, no use of the reserved "math"/"m" names) and
// returns a Compiler bound to it.
func NewCompiler(sig *hostapi.Signature, opts ...Option) (*Compiler, error) {
	if err := sig.Validate(); err != nil {
		return nil, err
	}
	mathOpts := make([]mathlib.Option, len(opts))
	for i, o := range opts {
		mathOpts[i] = mathlib.Option(o)
	}
	return &Compiler{sig: sig, mathCI: mathlib.New(mathOpts...).ClassInfo()}, nil
}

// nextName mints a monotonically increasing name, unique within this
// Compiler, for one compiled callable (spec §5 "Shared resources"). The
// counter belongs to the Compiler instance: a new Compiler starts again
// from 1, and it never resets mid-lifetime.
func (c *Compiler) nextName() string {
	n := atomic.AddUint64(&c.counter, 1)
	return "mql_compiled_" + itoa(n)
}

func itoa(n uint64) string {
	if n == 0 {
		return "0"
	}
	var buf [20]byte
	i := len(buf)
	for n > 0 {
		i--
		buf[i] = byte('0' + n%10)
		n /= 10
	}
	return string(buf[i:])
}

// Compile parses source and compiles it against the Compiler's
// Signature, rejecting NULL_COALESCE, nested query access, unknown
// roots, and method-not-found per spec §4.5.
func (c *Compiler) Compile(source string) (*CompiledExpr, error) {
	expr, err := parser.Parse(source)
	if err != nil {
		return nil, err
	}
	run, err := c.compileExpr(expr)
	if err != nil {
		return nil, err
	}
	return &CompiledExpr{name: c.nextName(), sig: c.sig, run: run}, nil
}

// evalFunc is the shape every compiled subexpression lowers to: a
// receiver-free function over the positional host roots, leaving
// exactly one float64 (spec §3 invariant: "every compiled expression's
// evaluator leaves exactly one numeric value").
type evalFunc func(roots []any) (float64, error)

func (c *Compiler) compileExpr(expr ast.Expr) (evalFunc, error) {
	switch n := expr.(type) {
	case *ast.Number:
		v := n.Value
		return func([]any) (float64, error) { return v, nil }, nil
	case *ast.Ident:
		return nil, &errs.TypeError{Message: "query root \"" + n.Name + "\" used without a member access"}
	case *ast.Access:
		return c.compileAccess(n)
	case *ast.Call:
		return c.compileCall(n)
	case *ast.Unary:
		return c.compileUnary(n)
	case *ast.Binary:
		return c.compileBinary(n)
	case *ast.Ternary:
		return c.compileTernary(n)
	default:
		return nil, &errs.TypeError{Message: "unrecognized expression node"}
	}
}

func (c *Compiler) compileUnary(n *ast.Unary) (evalFunc, error) {
	rhs, err := c.compileExpr(n.Rhs)
	if err != nil {
		return nil, err
	}
	return func(roots []any) (float64, error) {
		v, err := rhs(roots)
		if err != nil {
			return 0, err
		}
		return -v, nil
	}, nil
}

func (c *Compiler) compileBinary(n *ast.Binary) (evalFunc, error) {
	if n.Op == ast.OpCoal {
		return nil, &errs.UnsupportedFeature{Reason: "?? (NULL_COALESCE) cannot be compiled; it has no pure-double lowering"}
	}
	lhs, err := c.compileExpr(n.Lhs)
	if err != nil {
		return nil, err
	}
	rhs, err := c.compileExpr(n.Rhs)
	if err != nil {
		return nil, err
	}
	op, err := lowerBinaryOp(n.Op)
	if err != nil {
		return nil, err
	}
	return func(roots []any) (float64, error) {
		l, err := lhs(roots)
		if err != nil {
			return 0, err
		}
		r, err := rhs(roots)
		if err != nil {
			return 0, err
		}
		return op(l, r), nil
	}, nil
}

// compileTernary lowers `cond ? then : else` to the branch-free form
// spec §4.5 prescribes: evaluate all three operands unconditionally,
// then select with `cond == 0 ? else : then`. Both then and else always
// run — the non-short-circuit rule is load-bearing (spec §4.3), not an
// artifact of this particular lowering.
func (c *Compiler) compileTernary(n *ast.Ternary) (evalFunc, error) {
	cond, err := c.compileExpr(n.Cond)
	if err != nil {
		return nil, err
	}
	then, err := c.compileExpr(n.Then)
	if err != nil {
		return nil, err
	}
	els, err := c.compileExpr(n.Else)
	if err != nil {
		return nil, err
	}
	return func(roots []any) (float64, error) {
		condV, err := cond(roots)
		if err != nil {
			return 0, err
		}
		thenV, err := then(roots)
		if err != nil {
			return 0, err
		}
		elseV, err := els(roots)
		if err != nil {
			return 0, err
		}
		if condV == 0 {
			return elseV, nil
		}
		return thenV, nil
	}, nil
}
