/*
File    : mql-go/env/env_test.go
*/
package env

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hollow-cube/mql-go/value"
)

func TestRoot_DefAndMember(t *testing.T) {
	root := NewRoot().Def("health", value.Number(5))
	v, ok := root.Member("health")
	require.True(t, ok)
	assert.Equal(t, 5.0, v.Num())

	_, ok = root.Member("missing")
	assert.False(t, ok)
}

func TestEnv_BindAndLookup(t *testing.T) {
	root := NewRoot().Def("health", value.Number(5))
	e := New().Bind("q", root).Bind("query", root)

	got, ok := e.Lookup("q")
	require.True(t, ok)
	assert.Same(t, root, got)

	got, ok = e.Lookup("query")
	require.True(t, ok)
	assert.Same(t, root, got)

	_, ok = e.Lookup("nope")
	assert.False(t, ok)
}
