/*
File    : mql-go/hostapi/signature.go
*/
package hostapi

import (
	"fmt"

	"github.com/hollow-cube/mql-go/errs"
)

// ParamInfo is one positional parameter slot of a script signature: the
// set of names that bind to it (e.g. both "q" and "query" may name the
// same root), its host type descriptor, and whether it was declared
// generically — awaiting a concrete ClassInfo supplied later via
// Signature.Bind (spec §6 "Signature descriptor", §9 "Compiled bridge
// for generic parameters").
type ParamInfo struct {
	Names   []string
	Class   *ClassInfo
	Generic bool
}

// NewParam declares a concrete (non-generic) parameter slot bound to
// names and backed by class.
func NewParam(class *ClassInfo, names ...string) ParamInfo {
	return ParamInfo{Names: names, Class: class}
}

// NewGenericParam declares a parameter slot whose concrete ClassInfo is
// supplied later by Signature.Bind — useful for a script signature
// template shared across several host types.
func NewGenericParam(names ...string) ParamInfo {
	return ParamInfo{Names: names, Generic: true}
}

// HasName reports whether name is one of this parameter's bound names.
func (p ParamInfo) HasName(name string) bool {
	for _, n := range p.Names {
		if n == name {
			return true
		}
	}
	return false
}

// Signature is the host-declared shape of a compiled script: its
// ordered, named query roots (spec §6 "Signature descriptor"). The
// built-in math root (bound to "math" and "m") is implicit and never
// appears in Params.
type Signature struct {
	Params []ParamInfo
}

// NewSignature builds a Signature from an ordered list of parameter
// slots.
func NewSignature(params ...ParamInfo) *Signature {
	return &Signature{Params: params}
}

// Bind resolves every generic parameter slot in sig against concrete,
// built by name. The number of entries in concrete must equal the
// number of generic slots, and every generic slot must have an entry
// under one of its bound names (the first of its names found in concrete
// is used) — otherwise this is the "mismatched count of
// declared generic parameters vs provided concrete types" compile-time
// rejection from spec §4.5.
func (sig *Signature) Bind(concrete map[string]*ClassInfo) (*Signature, error) {
	resolved := &Signature{Params: make([]ParamInfo, len(sig.Params))}
	copy(resolved.Params, sig.Params)

	generics := 0
	for _, p := range sig.Params {
		if p.Generic {
			generics++
		}
	}
	if generics != len(concrete) {
		return nil, &errs.TypeError{Message: fmt.Sprintf(
			"signature declares %d generic parameter(s) but %d concrete type(s) were provided",
			generics, len(concrete))}
	}

	for i, p := range resolved.Params {
		if !p.Generic {
			continue
		}
		var bound *ClassInfo
		for _, name := range p.Names {
			if c, ok := concrete[name]; ok {
				bound = c
				break
			}
		}
		if bound == nil {
			return nil, &errs.TypeError{Message: fmt.Sprintf(
				"no concrete type provided for generic parameter %v", p.Names)}
		}
		resolved.Params[i].Class = bound
		resolved.Params[i].Generic = false
	}
	return resolved, nil
}

// Validate checks sig is well-formed enough to compile against: every
// slot has at least one name, no name collides with another slot or
// with the built-in "math"/"m" names, and no slot is left unresolved
// (generic with no bound ClassInfo).
func (sig *Signature) Validate() error {
	seen := map[string]bool{"math": true, "m": true}
	for _, p := range sig.Params {
		if len(p.Names) == 0 {
			return &errs.TypeError{Message: "signature parameter has no bound names"}
		}
		if p.Generic || p.Class == nil {
			return &errs.TypeError{Message: fmt.Sprintf(
				"signature parameter %v is unresolved (generic, no concrete type bound)", p.Names)}
		}
		for _, name := range p.Names {
			if seen[name] {
				return &errs.TypeError{Message: fmt.Sprintf("duplicate or reserved root name %q", name)}
			}
			seen[name] = true
		}
	}
	return nil
}

// Resolve finds the parameter slot whose bound names contain ident, if
// any (spec §4.5 step 3).
func (sig *Signature) Resolve(ident string) (int, *ParamInfo, bool) {
	for i := range sig.Params {
		if sig.Params[i].HasName(ident) {
			return i, &sig.Params[i], true
		}
	}
	return 0, nil, false
}
