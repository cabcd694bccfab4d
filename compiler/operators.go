/*
File    : mql-go/compiler/operators.go
*/
package compiler

import (
	"github.com/hollow-cube/mql-go/ast"
	"github.com/hollow-cube/mql-go/errs"
)

// binaryOp is a lowered two-operand numeric operator: direct IEEE-754
// double arithmetic for +-*/, 1.0/0.0 for comparisons (spec §4.5
// "Operator lowering"). Division by zero is not special-cased — Go's
// float64 division already yields ±Inf/NaN per IEEE-754.
type binaryOp func(l, r float64) float64

// lowerBinaryOp maps an ast.BinaryOp to its lowering. OpCoal has none —
// callers must reject it before reaching here.
func lowerBinaryOp(op ast.BinaryOp) (binaryOp, error) {
	switch op {
	case ast.OpAdd:
		return func(l, r float64) float64 { return l + r }, nil
	case ast.OpSub:
		return func(l, r float64) float64 { return l - r }, nil
	case ast.OpMul:
		return func(l, r float64) float64 { return l * r }, nil
	case ast.OpDiv:
		return func(l, r float64) float64 { return l / r }, nil
	case ast.OpEq:
		return boolOp(func(l, r float64) bool { return l == r }), nil
	case ast.OpNeq:
		return boolOp(func(l, r float64) bool { return l != r }), nil
	case ast.OpLt:
		return boolOp(func(l, r float64) bool { return l < r }), nil
	case ast.OpLte:
		return boolOp(func(l, r float64) bool { return l <= r }), nil
	case ast.OpGt:
		return boolOp(func(l, r float64) bool { return l > r }), nil
	case ast.OpGte:
		return boolOp(func(l, r float64) bool { return l >= r }), nil
	default:
		return nil, &errs.TypeError{Message: "unrecognized binary operator"}
	}
}

func boolOp(cmp func(l, r float64) bool) binaryOp {
	return func(l, r float64) float64 {
		if cmp(l, r) {
			return 1
		}
		return 0
	}
}
