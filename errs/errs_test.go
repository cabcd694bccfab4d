/*
File    : mql-go/errs/errs_test.go
*/
package errs

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorMessages(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{&LexError{Offset: 3, Message: "unexpected character"}, `lex error at 3: unexpected character`},
		{&ParseError{Offset: 5, Expected: "')'", Found: `"+"`}, `parse error at 5: expected ')', found "+"`},
		{&UnsupportedFeature{Reason: "?? in compiled mode"}, "unsupported feature: ?? in compiled mode"},
		{&NameError{Ident: "foo"}, `unknown query root "foo"`},
		{&MethodError{Root: "q", Member: "bar", Arity: 2}, "no method q.bar with 2 argument(s)"},
		{&TypeError{Message: "not callable"}, "type error: not callable"},
		{&ArityError{Expected: 1, Got: 2}, "arity mismatch: expected 1 argument(s), got 2"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.err.Error())
		assert.Equal(t, tt.want, Explain(tt.err))
	}
}

func TestExplain_Nil(t *testing.T) {
	assert.Equal(t, "", Explain(nil))
}
