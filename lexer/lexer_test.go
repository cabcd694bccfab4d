/*
File    : mql-go/lexer/lexer_test.go
*/
package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func consume(t *testing.T, src string) []Token {
	t.Helper()
	lx := New(src)
	var toks []Token
	for {
		tok, err := lx.Next()
		assert.NoError(t, err)
		if tok.Kind == EOF {
			break
		}
		toks = append(toks, tok)
	}
	return toks
}

func TestLexer_Operators(t *testing.T) {
	tests := []struct {
		input    string
		expected []Kind
	}{
		{"1 + 2 * 3", []Kind{NUMBER, PLUS, NUMBER, STAR, NUMBER}},
		{"(1 + 2) * 3", []Kind{LPAREN, NUMBER, PLUS, NUMBER, RPAREN, STAR, NUMBER}},
		{"a.b(c, d)", []Kind{IDENT, DOT, IDENT, LPAREN, IDENT, COMMA, IDENT, RPAREN}},
		{"1 == 1 ? 10 : 20", []Kind{NUMBER, EQ, NUMBER, QUESTION, NUMBER, COLON, NUMBER}},
		{"a ?? b", []Kind{IDENT, QCOLON, IDENT}},
		{"a != b < c <= d > e >= f", []Kind{IDENT, NEQ, IDENT, LT, IDENT, LTE, IDENT, GT, IDENT, GTE, IDENT}},
		{"-3.5", []Kind{MINUS, NUMBER}},
	}
	for _, tt := range tests {
		toks := consume(t, tt.input)
		kinds := make([]Kind, len(toks))
		for i, tok := range toks {
			kinds[i] = tok.Kind
		}
		assert.Equal(t, tt.expected, kinds, "input: %s", tt.input)
	}
}

func TestLexer_NumberValue(t *testing.T) {
	toks := consume(t, "16 0.25 10")
	assert.Equal(t, 16.0, toks[0].Number)
	assert.Equal(t, 0.25, toks[1].Number)
	assert.Equal(t, 10.0, toks[2].Number)
}

func TestLexer_PeekDoesNotAdvance(t *testing.T) {
	lx := New("a.b")
	p1, err := lx.Peek()
	assert.NoError(t, err)
	p2, err := lx.Peek()
	assert.NoError(t, err)
	assert.Equal(t, p1, p2)

	n, err := lx.Next()
	assert.NoError(t, err)
	assert.Equal(t, p1, n)
}

func TestLexer_LoneBangIsError(t *testing.T) {
	lx := New("!a")
	_, err := lx.Next()
	assert.Error(t, err)
}

func TestLexer_UnknownCharacterIsError(t *testing.T) {
	lx := New("@")
	_, err := lx.Next()
	assert.Error(t, err)
}

func TestLexer_EOF(t *testing.T) {
	lx := New("")
	tok, err := lx.Next()
	assert.NoError(t, err)
	assert.Equal(t, EOF, tok.Kind)
}
