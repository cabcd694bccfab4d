/*
File    : mql-go/hostapi/signature_test.go
*/
package hostapi

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSignature_ResolveByAnyBoundName(t *testing.T) {
	class := NewClassInfo("demo")
	sig := NewSignature(NewParam(class, "q", "query"))

	idx, p, ok := sig.Resolve("query")
	require.True(t, ok)
	assert.Equal(t, 0, idx)
	assert.Same(t, class, p.Class)

	_, _, ok = sig.Resolve("nope")
	assert.False(t, ok)
}

func TestSignature_ValidateRejectsUnresolvedGeneric(t *testing.T) {
	sig := NewSignature(NewGenericParam("q"))
	assert.Error(t, sig.Validate())
}

func TestSignature_ValidateRejectsReservedNames(t *testing.T) {
	class := NewClassInfo("demo")
	sig := NewSignature(NewParam(class, "math"))
	assert.Error(t, sig.Validate())
}

func TestSignature_ValidateRejectsDuplicateNames(t *testing.T) {
	class := NewClassInfo("demo")
	sig := NewSignature(NewParam(class, "q"), NewParam(class, "q"))
	assert.Error(t, sig.Validate())
}

func TestSignature_BindResolvesGenerics(t *testing.T) {
	sig := NewSignature(NewGenericParam("q"))
	concrete := NewClassInfo("demo")

	resolved, err := sig.Bind(map[string]*ClassInfo{"q": concrete})
	require.NoError(t, err)
	require.NoError(t, resolved.Validate())
	assert.Same(t, concrete, resolved.Params[0].Class)
	assert.False(t, resolved.Params[0].Generic)
}

func TestSignature_BindRejectsCountMismatch(t *testing.T) {
	sig := NewSignature(NewGenericParam("q"))
	_, err := sig.Bind(map[string]*ClassInfo{"q": NewClassInfo("a"), "extra": NewClassInfo("b")})
	assert.Error(t, err)
}

func TestSignature_BindRejectsMissingName(t *testing.T) {
	sig := NewSignature(NewGenericParam("q"))
	_, err := sig.Bind(map[string]*ClassInfo{"wrong": NewClassInfo("a")})
	assert.Error(t, err)
}
