/*
File    : mql-go/cmd/mqldemo/demoquery.go
*/
package main

import (
	"github.com/hollow-cube/mql-go/env"
	"github.com/hollow-cube/mql-go/hostapi"
	"github.com/hollow-cube/mql-go/value"
)

// demoEntity is a stand-in host query object: the kind of thing an
// embedding game or app would expose to MQL scripts as "q" or "entity".
// It's deliberately small — enough to exercise both evaluation paths
// (zero-arity accessors and one-argument numeric methods) without
// pretending to be a real game object.
type demoEntity struct {
	health    float64
	maxHealth float64
}

// demoEntityRoot builds the env.Root the interpreter binds "q" to.
func demoEntityRoot(e *demoEntity) *env.Root {
	return env.NewRoot().
		Def("health", value.Callable(0, func([]value.Value) (value.Value, error) {
			return value.Number(e.health), nil
		})).
		Def("max_health", value.Callable(0, func([]value.Value) (value.Value, error) {
			return value.Number(e.maxHealth), nil
		})).
		Def("heal", value.Callable(1, func(args []value.Value) (value.Value, error) {
			e.health += args[0].Num()
			if e.health > e.maxHealth {
				e.health = e.maxHealth
			}
			return value.Number(e.health), nil
		})).
		Def("is_low", value.Callable(1, func(args []value.Value) (value.Value, error) {
			if e.health < args[0].Num() {
				return value.Number(1), nil
			}
			return value.Number(0), nil
		}))
}

// demoEntityClassInfo builds the hostapi.ClassInfo the compiler
// resolves "q"'s member accesses against — the same four methods as
// demoEntityRoot, so a script compiles and interprets identically
// (spec §8 property 2).
func demoEntityClassInfo() *hostapi.ClassInfo {
	ci := hostapi.NewClassInfo("demoEntity")
	reg := func(name string, params []hostapi.ParamKind, invoke hostapi.MethodInvoker) {
		if err := ci.Register(&hostapi.MethodDescriptor{Name: name, Params: params, Invoke: invoke}); err != nil {
			panic(err)
		}
	}
	reg("health", nil, func(recv any, _ []float64) (float64, error) {
		return recv.(*demoEntity).health, nil
	})
	reg("max_health", nil, func(recv any, _ []float64) (float64, error) {
		return recv.(*demoEntity).maxHealth, nil
	})
	reg("heal", []hostapi.ParamKind{hostapi.Numeric}, func(recv any, args []float64) (float64, error) {
		e := recv.(*demoEntity)
		e.health += args[0]
		if e.health > e.maxHealth {
			e.health = e.maxHealth
		}
		return e.health, nil
	})
	reg("is_low", []hostapi.ParamKind{hostapi.Numeric}, func(recv any, args []float64) (float64, error) {
		e := recv.(*demoEntity)
		if e.health < args[0] {
			return 1, nil
		}
		return 0, nil
	})
	return ci
}
