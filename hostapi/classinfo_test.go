/*
File    : mql-go/hostapi/classinfo_test.go
*/
package hostapi

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassInfo_RegisterAndLookup(t *testing.T) {
	ci := NewClassInfo("demo")
	err := ci.Register(&MethodDescriptor{
		Name:   "add",
		Params: []ParamKind{Numeric, Numeric},
		Invoke: func(_ any, args []float64) (float64, error) { return args[0] + args[1], nil },
	})
	require.NoError(t, err)

	desc, ok := ci.Lookup("add", 2)
	require.True(t, ok)
	assert.Equal(t, 2, desc.Arity())

	_, ok = ci.Lookup("add", 1)
	assert.False(t, ok, "overloads resolve by exact arity only")

	_, ok = ci.Lookup("missing", 0)
	assert.False(t, ok)
}

func TestClassInfo_RejectsInvalidParamKind(t *testing.T) {
	ci := NewClassInfo("demo")
	err := ci.Register(&MethodDescriptor{
		Name:   "weird",
		Params: []ParamKind{ParamKind(99)},
		Invoke: func(_ any, _ []float64) (float64, error) { return 0, nil },
	})
	assert.Error(t, err)
}

func TestClassInfo_RejectsDuplicateArity(t *testing.T) {
	ci := NewClassInfo("demo")
	desc := &MethodDescriptor{Name: "f", Invoke: func(_ any, _ []float64) (float64, error) { return 0, nil }}
	require.NoError(t, ci.Register(desc))
	err := ci.Register(desc)
	assert.Error(t, err)
}

func TestClassInfo_OverloadsByArity(t *testing.T) {
	ci := NewClassInfo("demo")
	require.NoError(t, ci.Register(&MethodDescriptor{
		Name: "f", Params: nil,
		Invoke: func(_ any, _ []float64) (float64, error) { return 0, nil },
	}))
	require.NoError(t, ci.Register(&MethodDescriptor{
		Name: "f", Params: []ParamKind{Numeric},
		Invoke: func(_ any, args []float64) (float64, error) { return args[0], nil },
	}))

	zero, ok := ci.Lookup("f", 0)
	require.True(t, ok)
	one, ok := ci.Lookup("f", 1)
	require.True(t, ok)
	assert.NotSame(t, zero, one)
}
