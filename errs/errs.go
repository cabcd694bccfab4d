/*
File    : mql-go/errs/errs.go
*/

// Package errs defines the typed error kinds that every MQL entry point
// (lexer, parser, interpreter, compiler) returns. Each kind is a distinct
// Go type so callers can recover it with errors.As instead of parsing a
// message string.
package errs

import "fmt"

// LexError reports a malformed token at a source offset.
type LexError struct {
	Offset  int
	Message string
}

func (e *LexError) Error() string {
	return fmt.Sprintf("lex error at %d: %s", e.Offset, e.Message)
}

// ParseError reports an unexpected or missing token.
type ParseError struct {
	Offset   int
	Expected string
	Found    string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error at %d: expected %s, found %s", e.Offset, e.Expected, e.Found)
}

// UnsupportedFeature reports a construct the active mode cannot handle,
// e.g. "??" or a nested query in compiled mode.
type UnsupportedFeature struct {
	Reason string
}

func (e *UnsupportedFeature) Error() string {
	return fmt.Sprintf("unsupported feature: %s", e.Reason)
}

// NameError reports an identifier that does not name a known query root.
type NameError struct {
	Ident string
}

func (e *NameError) Error() string {
	return fmt.Sprintf("unknown query root %q", e.Ident)
}

// MethodError reports a member access with no matching method of that
// name and arity on the resolved root.
type MethodError struct {
	Root   string
	Member string
	Arity  int
}

func (e *MethodError) Error() string {
	return fmt.Sprintf("no method %s.%s with %d argument(s)", e.Root, e.Member, e.Arity)
}

// TypeError reports a value used where its type does not permit: a
// non-callable invoked, an invalid parameter kind at ClassInfo
// registration, or a non-numeric script return kind.
type TypeError struct {
	Message string
}

func (e *TypeError) Error() string {
	return fmt.Sprintf("type error: %s", e.Message)
}

// ArityError reports a runtime call with the wrong number of arguments:
// an interpreter call whose argument count differs from the callable's
// arity, or a CompiledExpr.Invoke given a different number of roots than
// its Signature declares. Method arity in compiled scripts is checked at
// compile time instead (a MethodError).
type ArityError struct {
	Expected int
	Got      int
}

func (e *ArityError) Error() string {
	return fmt.Sprintf("arity mismatch: expected %d argument(s), got %d", e.Expected, e.Got)
}

// Explain renders any MQL error as a single host-facing line. Hosts that
// don't care to switch on the concrete kind can just call this.
func Explain(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}
