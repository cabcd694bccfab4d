/*
File    : mql-go/compiler/compiled.go
*/
package compiler

import (
	"fmt"

	"github.com/hollow-cube/mql-go/errs"
	"github.com/hollow-cube/mql-go/hostapi"
)

// CompiledExpr is a specialized callable produced by Compiler.Compile:
// a script's AST, already resolved against a Signature, closed over
// into a tree of float64-returning funcs (spec §4.5 "Output"). It does
// no name-based lookup at invocation time and is safe to invoke
// concurrently provided the host roots passed to Invoke are themselves
// safe for concurrent method calls (spec §5).
type CompiledExpr struct {
	name string
	sig  *hostapi.Signature
	run  evalFunc
}

// Name returns the compiler-minted unique name of this callable.
func (ce *CompiledExpr) Name() string { return ce.name }

// Invoke runs the compiled expression against roots, one positional
// host query object per Signature parameter, in declared order.
func (ce *CompiledExpr) Invoke(roots ...any) (float64, error) {
	if len(roots) != len(ce.sig.Params) {
		return 0, &errs.ArityError{Expected: len(ce.sig.Params), Got: len(roots)}
	}
	v, err := ce.run(roots)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", ce.name, err)
	}
	return v, nil
}
