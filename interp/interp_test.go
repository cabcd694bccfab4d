/*
File    : mql-go/interp/interp_test.go
*/
package interp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hollow-cube/mql-go/env"
	"github.com/hollow-cube/mql-go/value"
)

func eval(t *testing.T, it *Interpreter, src string, e *env.Env) value.Value {
	t.Helper()
	v, err := it.Evaluate(src, e)
	require.NoError(t, err)
	return v
}

func TestInterpreter_Arithmetic(t *testing.T) {
	it := New()
	e := env.New()
	tests := []struct {
		src  string
		want float64
	}{
		{"1 + 2 * 3", 7},
		{"(1 + 2) * 3", 9},
		{"10 / 4", 2.5},
		{"-3 + 4", 1},
		{"2 == 2", 1},
		{"2 != 2", 0},
		{"1 < 2", 1},
		{"2 <= 2", 1},
		{"3 > 2", 1},
		{"2 >= 3", 0},
	}
	for _, tt := range tests {
		got := eval(t, it, tt.src, e)
		assert.Equal(t, tt.want, got.Num(), tt.src)
	}
}

func TestInterpreter_TernaryEvaluatesBothBranches(t *testing.T) {
	it := New()
	e := env.New()
	calls := 0
	root := env.NewRoot().Def("bump", value.Callable(0, func(_ []value.Value) (value.Value, error) {
		calls++
		return value.Number(float64(calls)), nil
	}))
	e.Bind("q", root)

	got := eval(t, it, "1 == 1 ? 10 : q.bump()", e)
	assert.Equal(t, 10.0, got.Num())
	assert.Equal(t, 1, calls, "else branch must still be evaluated for its side effect")
}

func TestInterpreter_NullCoalesceShortCircuits(t *testing.T) {
	it := New()
	e := env.New()
	calls := 0
	root := env.NewRoot().
		Def("present", value.Callable(0, func(_ []value.Value) (value.Value, error) { return value.Number(5), nil })).
		Def("missing", value.Callable(0, func(_ []value.Value) (value.Value, error) { return value.Null, nil })).
		Def("fallback", value.Callable(0, func(_ []value.Value) (value.Value, error) {
			calls++
			return value.Number(9), nil
		}))
	e.Bind("q", root)

	got := eval(t, it, "q.present() ?? q.fallback()", e)
	assert.Equal(t, 5.0, got.Num())
	assert.Equal(t, 0, calls, "?? must not evaluate its right side when the left side isn't null")

	got = eval(t, it, "q.missing() ?? q.fallback()", e)
	assert.Equal(t, 9.0, got.Num())
	assert.Equal(t, 1, calls)
}

func TestInterpreter_MathRootAlwaysAvailable(t *testing.T) {
	it := New()
	e := env.New()
	got := eval(t, it, "math.sqrt(16) + m.abs(-4)", e)
	assert.Equal(t, 8.0, got.Num())
}

func TestInterpreter_HostQueryMethod(t *testing.T) {
	it := New()
	e := env.New()
	root := env.NewRoot().Def("health", value.Callable(0, func(_ []value.Value) (value.Value, error) {
		return value.Number(42), nil
	}))
	e.Bind("q", root)

	got := eval(t, it, "q.health()", e)
	assert.Equal(t, 42.0, got.Num())

	got = eval(t, it, "q.health", e)
	assert.Equal(t, 42.0, got.Num(), "a zero-arity member is auto-invoked even without call syntax")
}

func TestInterpreter_UnknownRoot(t *testing.T) {
	it := New()
	e := env.New()
	_, err := it.Evaluate("nope.thing()", e)
	require.Error(t, err)
}

func TestInterpreter_UnknownMember(t *testing.T) {
	it := New()
	e := env.New()
	e.Bind("q", env.NewRoot())
	_, err := it.Evaluate("q.nope()", e)
	require.Error(t, err)
}

func TestInterpreter_ArityMismatch(t *testing.T) {
	it := New()
	e := env.New()
	_, err := it.Evaluate("math.sqrt(1, 2)", e)
	require.Error(t, err)
}

func TestInterpreter_NestedAccessRejected(t *testing.T) {
	it := New()
	e := env.New()
	_, err := it.Evaluate("q.a.b()", e)
	require.Error(t, err)
}
