/*
File    : mql-go/value/value_test.go
*/
package value

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNumber(t *testing.T) {
	v := Number(3.5)
	assert.Equal(t, KindNumber, v.Kind())
	assert.False(t, v.IsNull())
	assert.False(t, v.IsCallable())
	assert.Equal(t, 3.5, v.Num())
	n, ok := v.AsNumber()
	assert.True(t, ok)
	assert.Equal(t, 3.5, n)
	assert.Equal(t, "3.5", v.String())
}

func TestNull(t *testing.T) {
	assert.True(t, Null.IsNull())
	assert.Equal(t, 0.0, Null.Num(), "Null coerces to 0.0 for arithmetic")
	assert.Equal(t, "null", Null.String())
}

func TestCallable(t *testing.T) {
	c := Callable(2, func(args []Value) (Value, error) {
		return Number(args[0].Num() + args[1].Num()), nil
	})
	assert.True(t, c.IsCallable())
	assert.Equal(t, 2, c.Arity())

	n, ok := c.AsNumber()
	assert.False(t, ok, "a Callable has no numeric projection")
	assert.Equal(t, 0.0, n)

	result, err := c.Invoke([]Value{Number(2), Number(3)})
	assert.NoError(t, err)
	assert.Equal(t, 5.0, result.Num())
}

func TestCallable_NumPanics(t *testing.T) {
	c := Callable(0, func([]Value) (Value, error) { return Null, nil })
	assert.Panics(t, func() { c.Num() })
}

func TestBool(t *testing.T) {
	assert.True(t, Number(1).Bool())
	assert.True(t, Number(-1).Bool())
	assert.False(t, Number(0).Bool())
	assert.False(t, Null.Bool())
}
