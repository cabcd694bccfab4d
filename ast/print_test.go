/*
File    : mql-go/ast/print_test.go
*/
package ast

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPrint(t *testing.T) {
	tests := []struct {
		name string
		expr Expr
		want string
	}{
		{"number", &Number{Value: 3.5}, "3.5"},
		{"ident", &Ident{Name: "q"}, "q"},
		{"access", &Access{Lhs: &Ident{Name: "q"}, Member: "health"}, "q.health"},
		{"call no args", &Call{Access: &Access{Lhs: &Ident{Name: "math"}, Member: "pi"}}, "math.pi()"},
		{
			"call with args",
			&Call{Access: &Access{Lhs: &Ident{Name: "math"}, Member: "max"}, Args: ArgList{&Number{Value: 1}, &Number{Value: 2}}},
			"math.max(1, 2)",
		},
		{"unary", &Unary{Op: OpNeg, Rhs: &Number{Value: 3}}, "(-3)"},
		{"binary", &Binary{Op: OpAdd, Lhs: &Number{Value: 1}, Rhs: &Number{Value: 2}}, "(1 + 2)"},
		{"coalesce", &Binary{Op: OpCoal, Lhs: &Ident{Name: "a"}, Rhs: &Ident{Name: "b"}}, "(a ?? b)"},
		{
			"ternary",
			&Ternary{Cond: &Number{Value: 1}, Then: &Number{Value: 2}, Else: &Number{Value: 3}},
			"(1 ? 2 : 3)",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Print(tt.expr))
		})
	}
}
