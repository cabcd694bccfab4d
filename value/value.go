/*
File    : mql-go/value/value.go
*/

// Package value defines the interpreter's runtime value representation
// (spec §3 "Value"). The compiled path (package compiler) does not use
// this type at all — it trades this sum for a pure float64 ABI (spec
// §4.5) — so Value only needs to serve the tree-walking interp package
// and the hosts that hand it callables.
package value

import "fmt"

// Kind identifies which variant a Value holds.
type Kind int

const (
	KindNumber Kind = iota
	KindNull
	KindCallable
)

// Invoker is the shape every host query method and every math builtin
// must have: a fixed-arity call taking already-evaluated argument Values
// and returning a result Value or an error.
type Invoker func(args []Value) (Value, error)

// Value is the interpreter's runtime value: a Number, a Null, or a
// Callable. There is no string, collection, or boolean variant — boolean
// results of comparisons are represented as Number(1.0) / Number(0.0)
// (spec §4.3).
type Value struct {
	kind    Kind
	num     float64
	arity   int
	invoke  Invoker
}

// Number constructs a numeric Value.
func Number(n float64) Value { return Value{kind: KindNumber, num: n} }

// Null is the value produced by, e.g., a host method that has nothing to
// return. Arithmetic coerces it to 0.0; NULL_COALESCE observes it
// explicitly (spec §4.3).
var Null = Value{kind: KindNull}

// Callable constructs a Value wrapping an Invoker of the given arity.
func Callable(arity int, invoke Invoker) Value {
	return Value{kind: KindCallable, arity: arity, invoke: invoke}
}

// Kind reports which variant v holds.
func (v Value) Kind() Kind { return v.kind }

// IsNull reports whether v is the Null value.
func (v Value) IsNull() bool { return v.kind == KindNull }

// IsCallable reports whether v wraps an Invoker.
func (v Value) IsCallable() bool { return v.kind == KindCallable }

// Arity returns the declared argument count of a Callable. Calling it on
// a non-callable Value returns 0.
func (v Value) Arity() int { return v.arity }

// Invoke calls a Callable Value with already-evaluated arguments.
func (v Value) Invoke(args []Value) (Value, error) {
	return v.invoke(args)
}

// AsNumber returns the numeric projection of v — the literal value for a
// Number, 0.0 for Null — and ok=false for a Callable, which has none.
// Callers that can reach a Callable here (arithmetic on an un-invoked
// member reference) should report it as a type error rather than panic.
func (v Value) AsNumber() (float64, bool) {
	switch v.kind {
	case KindNumber:
		return v.num, true
	case KindNull:
		return 0.0, true
	default:
		return 0, false
	}
}

// Num returns the numeric projection of v. It panics on a Callable; use
// AsNumber where the caller must turn that case into an error instead.
func (v Value) Num() float64 {
	n, ok := v.AsNumber()
	if !ok {
		panic("value: Num() called on a Callable")
	}
	return n
}

// Bool reports the truthiness of v's numeric projection: nonzero is
// true (spec §4.3, boolean host-parameter coercion).
func (v Value) Bool() bool { return v.Num() != 0 }

func (v Value) String() string {
	switch v.kind {
	case KindNumber:
		return fmt.Sprintf("%g", v.num)
	case KindNull:
		return "null"
	default:
		return fmt.Sprintf("<callable/%d>", v.arity)
	}
}
