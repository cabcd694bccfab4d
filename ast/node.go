/*
File    : mql-go/ast/node.go
*/

// Package ast defines the MQL expression tree. Every node is immutable
// once built by the parser (spec §3 "Lifecycles"): none of the fields
// below are mutated after construction, so a tree can be safely shared
// and re-walked by both the interpreter and the compiler.
//
// Expr is a closed sum type over the seven node variants the grammar
// produces; the set is closed to this package because exprNode is
// unexported. Consumers dispatch on the concrete type with a type switch
// rather than a visitor interface — with only seven variants and two
// consumers (interp, compiler), a switch is simpler to read. Go does not
// check a type switch for exhaustiveness: each consumer's switch ends in
// a default case that reports an unrecognized node at run time.
package ast

import "github.com/hollow-cube/mql-go/lexer"

// Expr is implemented by every expression tree node.
type Expr interface {
	exprNode()
}

// Number is a numeric literal.
type Number struct {
	Value float64
}

// Ident is a bare identifier — a query root reference such as `math`.
type Ident struct {
	Name string
}

// Access is a member reference `Lhs.Member`. The parser accepts any
// chain, so Lhs may itself be an Access, both for a bare Access and for
// the Access of a Call (`a.b.c()`); the compiler and the interpreter
// reject anything beyond `ident.member`.
type Access struct {
	Lhs    Expr
	Member string
}

// ArgList is the ordered argument sequence of a Call.
type ArgList []Expr

// Call is an invocation `Access.Lhs.Access.Member(Args...)`.
type Call struct {
	Access *Access
	Args   ArgList
}

// UnaryOp enumerates the unary operators (just one: NEGATE).
type UnaryOp lexer.Kind

// Unary is a prefix operation, currently only unary minus.
type Unary struct {
	Op  UnaryOp
	Rhs Expr
}

// BinaryOp enumerates the binary operators the grammar can produce.
type BinaryOp lexer.Kind

const (
	OpAdd   BinaryOp = BinaryOp(lexer.PLUS)
	OpSub   BinaryOp = BinaryOp(lexer.MINUS)
	OpMul   BinaryOp = BinaryOp(lexer.STAR)
	OpDiv   BinaryOp = BinaryOp(lexer.SLASH)
	OpEq    BinaryOp = BinaryOp(lexer.EQ)
	OpNeq   BinaryOp = BinaryOp(lexer.NEQ)
	OpLt    BinaryOp = BinaryOp(lexer.LT)
	OpLte   BinaryOp = BinaryOp(lexer.LTE)
	OpGt    BinaryOp = BinaryOp(lexer.GT)
	OpGte   BinaryOp = BinaryOp(lexer.GTE)
	OpCoal  BinaryOp = "??" // NULL_COALESCE
	OpNeg   UnaryOp  = UnaryOp(lexer.NEGATE)
)

// Binary is a left-associative (except Ternary, which isn't a Binary)
// two-operand operation.
type Binary struct {
	Op  BinaryOp
	Lhs Expr
	Rhs Expr
}

// Ternary is the non-short-circuiting conditional `Cond ? Then : Else`.
// Both Then and Else are always evaluated regardless of Cond — see spec
// §4.3; this is load-bearing, not an oversight.
type Ternary struct {
	Cond Expr
	Then Expr
	Else Expr
}

func (*Number) exprNode()  {}
func (*Ident) exprNode()   {}
func (*Access) exprNode()  {}
func (*Call) exprNode()    {}
func (*Unary) exprNode()   {}
func (*Binary) exprNode()  {}
func (*Ternary) exprNode() {}
