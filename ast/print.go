/*
File    : mql-go/ast/print.go
*/
package ast

import (
	"fmt"
	"strconv"
	"strings"
)

// Print renders e as canonical MQL source: every unary, binary and
// ternary operation is parenthesized and numbers are written in plain
// decimal form, so re-parsing the result always reproduces an
// equal tree regardless of the original spacing or redundant parens
// (spec §8, property 1).
func Print(e Expr) string {
	var b strings.Builder
	print1(&b, e)
	return b.String()
}

func print1(b *strings.Builder, e Expr) {
	switch n := e.(type) {
	case *Number:
		b.WriteString(strconv.FormatFloat(n.Value, 'f', -1, 64))
	case *Ident:
		b.WriteString(n.Name)
	case *Access:
		print1(b, n.Lhs)
		b.WriteByte('.')
		b.WriteString(n.Member)
	case *Call:
		print1(b, n.Access.Lhs)
		b.WriteByte('.')
		b.WriteString(n.Access.Member)
		b.WriteByte('(')
		for i, arg := range n.Args {
			if i > 0 {
				b.WriteString(", ")
			}
			print1(b, arg)
		}
		b.WriteByte(')')
	case *Unary:
		b.WriteByte('(')
		b.WriteByte('-')
		print1(b, n.Rhs)
		b.WriteByte(')')
	case *Binary:
		b.WriteByte('(')
		print1(b, n.Lhs)
		fmt.Fprintf(b, " %s ", string(n.Op))
		print1(b, n.Rhs)
		b.WriteByte(')')
	case *Ternary:
		b.WriteByte('(')
		print1(b, n.Cond)
		b.WriteString(" ? ")
		print1(b, n.Then)
		b.WriteString(" : ")
		print1(b, n.Else)
		b.WriteByte(')')
	default:
		b.WriteString("<?>")
	}
}
