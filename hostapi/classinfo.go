/*
File    : mql-go/hostapi/classinfo.go
*/

// Package hostapi is the host-facing registration surface: the
// reflection replacement called out in spec §9. A Go host has no
// runtime tagging of "query-marked methods" the way the original
// MoLang host does, so it hand-builds a ClassInfo per query type by
// registering one MethodDescriptor per method. The compiler resolves
// every identifier against these descriptors once, at compile time
// (spec §4.5), so a compiled expression never does a per-call name
// lookup.
package hostapi

import (
	"fmt"

	"github.com/hollow-cube/mql-go/errs"
)

// ParamKind is the declared kind of one method parameter. MQL methods
// may only take numeric or boolean parameters (spec §3 "ClassInfo"); any
// other kind fails registration.
type ParamKind int

const (
	Numeric ParamKind = iota
	Boolean
)

// MethodInvoker adapts a fixed-arity call to a host method. receiver is
// the concrete host query object for a virtual (non-static) method, or
// nil for a static method on the built-in math root. args holds the
// already-coerced numeric arguments (boolean parameters arrive as
// 0.0/1.0, per spec §4.3).
type MethodInvoker func(receiver any, args []float64) (float64, error)

// MethodDescriptor is one callable method of a ClassInfo: its name,
// parameter kinds (its arity is len(Params)), whether it's static (only
// true for math), and the invoker that actually performs the call.
type MethodDescriptor struct {
	Name   string
	Params []ParamKind
	Static bool
	Invoke MethodInvoker
}

// Arity is the method's declared parameter count.
func (m *MethodDescriptor) Arity() int { return len(m.Params) }

// ClassInfo is a pre-built mapping from method name to its registered
// overloads (spec §3 "ClassInfo"), keyed internally by (name, arity) so
// the compiler's arity-only overload resolution (spec §4.5 step 4) is a
// single map lookup. Built once at registration and immutable
// thereafter; safe to share across many CompiledExpr instances and
// concurrent invocations.
type ClassInfo struct {
	TypeName string
	methods  map[string]map[int]*MethodDescriptor
}

// NewClassInfo starts an empty ClassInfo for a host type named
// typeName (used only for diagnostics).
func NewClassInfo(typeName string) *ClassInfo {
	return &ClassInfo{
		TypeName: typeName,
		methods:  make(map[string]map[int]*MethodDescriptor),
	}
}

// Register adds a method descriptor. It rejects any parameter kind
// outside {Numeric, Boolean} and any (name, arity) already registered —
// a ClassInfo never includes a method whose parameters are not all
// numeric or boolean (spec §3 invariant).
func (c *ClassInfo) Register(desc *MethodDescriptor) error {
	for i, p := range desc.Params {
		if p != Numeric && p != Boolean {
			return &errs.TypeError{Message: fmt.Sprintf(
				"%s.%s: parameter %d has an unsupported kind (only numeric or boolean allowed)",
				c.TypeName, desc.Name, i)}
		}
	}
	byArity, ok := c.methods[desc.Name]
	if !ok {
		byArity = make(map[int]*MethodDescriptor)
		c.methods[desc.Name] = byArity
	}
	if _, exists := byArity[desc.Arity()]; exists {
		return &errs.TypeError{Message: fmt.Sprintf(
			"%s.%s: a method with arity %d is already registered", c.TypeName, desc.Name, desc.Arity())}
	}
	byArity[desc.Arity()] = desc
	return nil
}

// Lookup finds the method named member whose arity matches exactly
// arity — overloads are resolved by arity only (spec §4.5 step 4).
func (c *ClassInfo) Lookup(member string, arity int) (*MethodDescriptor, bool) {
	byArity, ok := c.methods[member]
	if !ok {
		return nil, false
	}
	desc, ok := byArity[arity]
	return desc, ok
}
