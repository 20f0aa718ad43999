package parse

import (
	"bytes"
	"errors"
	"io"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tanema/arith/src/lerrors"
)

type parseTokenTest struct {
	src   string
	token *token
}

func TestNextToken(t *testing.T) {
	t.Parallel()
	linfo := LineInfo{Line: 1, Column: 1}
	tests := []parseTokenTest{
		{"22", &token{Kind: tokenNumber, FloatVal: 22, LineInfo: linfo}},
		{"23.43", &token{Kind: tokenNumber, FloatVal: 23.43, LineInfo: linfo}},
		{"23.43e-12", &token{Kind: tokenNumber, FloatVal: 23.43e-12, LineInfo: linfo}},
		{"23.43e5", &token{Kind: tokenNumber, FloatVal: 23.43e5, LineInfo: linfo}},
		{"2.E-1", &token{Kind: tokenNumber, FloatVal: 0.2, LineInfo: linfo}},
		{"2.E+1", &token{Kind: tokenNumber, FloatVal: 20, LineInfo: linfo}},
		{"0xAF2", &token{Kind: tokenNumber, FloatVal: 2802, LineInfo: linfo}},
		{"08", &token{Kind: tokenNumber, FloatVal: 8, LineInfo: linfo}},
		{"0", &token{Kind: tokenNumber, FloatVal: 0, LineInfo: linfo}},
		{".5", &token{Kind: tokenNumber, FloatVal: 0.5, LineInfo: linfo}},
		{"999999", &token{Kind: tokenNumber, FloatVal: 999999, LineInfo: linfo}},
		{"99999999999999999999", &token{Kind: tokenNumber, FloatVal: 1e20, LineInfo: linfo}},
		{"0xffffffffffffffff", &token{Kind: tokenNumber, FloatVal: 18446744073709551616, LineInfo: linfo}},
		{"1e400", &token{Kind: tokenNumber, FloatVal: math.Inf(1), LineInfo: linfo}},
		{"1e-400", &token{Kind: tokenNumber, FloatVal: 0, LineInfo: linfo}},
		{"true", &token{Kind: tokenTrue, LineInfo: linfo}},
		{"false", &token{Kind: tokenFalse, LineInfo: linfo}},
		{"+", &token{Kind: tokenAdd, LineInfo: linfo}},
		{"?", &token{Kind: tokenQuestion, LineInfo: linfo}},
		{":", &token{Kind: tokenColon, LineInfo: linfo}},
		{"(", &token{Kind: tokenOpenParen, LineInfo: linfo}},
		{")", &token{Kind: tokenCloseParen, LineInfo: linfo}},
		{"// a comment\n  true", &token{Kind: tokenTrue, LineInfo: LineInfo{Line: 2, Column: 3}}},
	}

	for _, test := range tests {
		out, err := lex(test.src)
		require.NoError(t, err, test.src)
		assert.Equal(t, test.token, out, test.src)
	}
}

func TestNextToken_Errors(t *testing.T) {
	t.Parallel()
	tests := []struct {
		src, msg string
	}{
		{"@", "Lex Error: <test>:1:1 unexpected character @"},
		{"foo", `Lex Error: <test>:1:3 unknown identifier "foo"`},
		{"1e", "Lex Error: <test>:1:2 malformed number near 1e"},
		{"12abc", "Lex Error: <test>:1:2 malformed number near 12a"},
		{"0x", "Lex Error: <test>:1:2 malformed number near 0x"},
		{"/", "Lex Error: <test>:1:1 unexpected character /"},
	}

	for _, test := range tests {
		_, err := lex(test.src)
		require.Error(t, err, test.src)
		var lerr *lerrors.Error
		require.True(t, errors.As(err, &lerr), test.src)
		assert.Equal(t, lerrors.LexerErr, lerr.Kind)
		assert.Equal(t, test.msg, err.Error())
	}
}

func TestLexSource(t *testing.T) {
	t.Parallel()
	source := `
// pick a branch
(1 + 2.5) ? true
          : false
`
	lexer := newLexer("<test>", bytes.NewBufferString(source))
	kinds := []tokenType{}
	var tk *token
	var err error
	for {
		tk, err = lexer.Next()
		if err != nil {
			break
		}
		kinds = append(kinds, tk.Kind)
	}
	assert.Equal(t, io.EOF, err)
	assert.Equal(t, []tokenType{
		tokenOpenParen, tokenNumber, tokenAdd, tokenNumber, tokenCloseParen,
		tokenQuestion, tokenTrue, tokenColon, tokenFalse,
	}, kinds)
}

func TestLexPeek(t *testing.T) {
	t.Parallel()
	lexer := newLexer("<test>", bytes.NewBufferString(`1 + true`))
	tk, err := lexer.Peek()
	require.NoError(t, err)
	assert.Equal(t, tokenNumber, tk.Kind)
	tk, err = lexer.Peek()
	require.NoError(t, err)
	assert.Equal(t, tokenNumber, tk.Kind)
	tk, err = lexer.Next()
	require.NoError(t, err)
	assert.Equal(t, tokenNumber, tk.Kind)

	tk, err = lexer.Next()
	require.NoError(t, err)
	assert.Equal(t, tokenAdd, tk.Kind)
	assert.Equal(t, LineInfo{Line: 1, Column: 3}, tk.LineInfo)

	tk, err = lexer.Next()
	require.NoError(t, err)
	assert.Equal(t, tokenTrue, tk.Kind)
	assert.Equal(t, LineInfo{Line: 1, Column: 5}, tk.LineInfo)

	tk, err = lexer.Peek()
	require.NoError(t, err)
	assert.Equal(t, tokenEOS, tk.Kind)
}

func lex(str string) (*token, error) {
	return newLexer("<test>", bytes.NewBufferString(str)).Next()
}
