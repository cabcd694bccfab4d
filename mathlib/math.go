/*
File    : mql-go/mathlib/math.go
*/

// Package mathlib is the built-in math library (spec §4.6): a fixed
// registry of numeric functions reachable as math.<name>(...) or
// m.<name>(...). It is exposed in two shapes from the same table — an
// env.Root for the tree-walking interpreter, and a hostapi.ClassInfo for
// the compiler's static dispatch — so both evaluation paths see exactly
// the same set of functions and arities (spec §8 property 2).
//
// This mirrors the teacher's std/math.go: one slice of named builtins
// registered once, documented individually, rather than a hand-written
// switch per call site.
package mathlib

import (
	"crypto/rand"
	"encoding/binary"
	"fmt"
	mrand "math/rand"

	"github.com/hollow-cube/mql-go/env"
	"github.com/hollow-cube/mql-go/errs"
	"github.com/hollow-cube/mql-go/hostapi"
	"github.com/hollow-cube/mql-go/value"
)

// fn is one math builtin: its declared arity and the implementation,
// which receives already-numeric arguments and the library's random
// source (only random/random_int read it).
type fn struct {
	name  string
	arity int
	call  func(rnd *mrand.Rand, args []float64) (float64, error)
}

// Library is a built math registry bound to one random source. A fresh
// Library is cheap to build; compiler.Compiler and interp.Interpreter
// each own one.
type Library struct {
	rnd   *mrand.Rand
	funcs map[string]*fn
}

// Option configures a Library at construction.
type Option func(*Library)

// WithRandSource overrides the library's random source. Resolves the
// open question in spec §9: math.random's determinism is
// host-injectable, defaulting to a fresh per-instance seed rather than a
// shared global generator (see DESIGN.md).
func WithRandSource(src mrand.Source) Option {
	return func(l *Library) { l.rnd = mrand.New(src) }
}

// New builds a Library. With no options, it seeds its random source
// freshly (from crypto/rand) rather than from a shared process-wide
// generator, so two Libraries never produce correlated sequences.
func New(opts ...Option) *Library {
	l := &Library{rnd: mrand.New(mrand.NewSource(freshSeed())), funcs: make(map[string]*fn)}
	for _, f := range builtins {
		l.funcs[f.name] = f
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

func freshSeed() int64 {
	var buf [8]byte
	if _, err := rand.Read(buf[:]); err != nil {
		return 1
	}
	return int64(binary.LittleEndian.Uint64(buf[:]))
}

// Root builds the env.Root an interp.Interpreter binds to "math"/"m".
func (l *Library) Root() *env.Root {
	root := env.NewRoot()
	for _, f := range l.funcs {
		f := f
		root.Def(f.name, value.Callable(f.arity, func(args []value.Value) (value.Value, error) {
			if len(args) != f.arity {
				return value.Value{}, &errs.ArityError{Expected: f.arity, Got: len(args)}
			}
			nums := make([]float64, len(args))
			for i, a := range args {
				n, ok := a.AsNumber()
				if !ok {
					return value.Value{}, &errs.TypeError{Message: fmt.Sprintf(
						"math.%s: argument %d is a callable, not numeric", f.name, i)}
				}
				nums[i] = n
			}
			res, err := f.call(l.rnd, nums)
			if err != nil {
				return value.Value{}, err
			}
			return value.Number(res), nil
		}))
	}
	return root
}

// ClassInfo builds the hostapi.ClassInfo the compiler resolves
// "math"/"m" member accesses against. Every math function is static —
// it has no host receiver.
func (l *Library) ClassInfo() *hostapi.ClassInfo {
	ci := hostapi.NewClassInfo("math")
	for _, f := range l.funcs {
		f := f
		params := make([]hostapi.ParamKind, f.arity)
		for i := range params {
			params[i] = hostapi.Numeric
		}
		desc := &hostapi.MethodDescriptor{
			Name:   f.name,
			Params: params,
			Static: true,
			Invoke: func(_ any, args []float64) (float64, error) {
				return f.call(l.rnd, args)
			},
		}
		if err := ci.Register(desc); err != nil {
			// The table below is fixed and known-valid; a registration
			// failure here would be a programming error in this package.
			panic(fmt.Sprintf("mathlib: invalid builtin %q: %v", f.name, err))
		}
	}
	return ci
}
