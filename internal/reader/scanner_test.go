package reader

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ravel/internal/errors"
	"ravel/token"
)

func TestScanTokensBasic(t *testing.T) {
	s := NewScanner(`[foo] "bar" {baz} QUUX`)
	tokens, err := s.ScanTokens()
	require.Nil(t, err)

	types := make([]token.TokenType, 0, len(tokens))
	for _, tok := range tokens {
		types = append(types, tok.Type)
	}
	assert.Equal(t, []token.TokenType{
		token.LBRACKET, token.VARIABLE, token.RBRACKET,
		token.STRING, token.PROMPT, token.CONSTANT, token.EOF,
	}, types)
}

func TestScanTokensStringIsRawVerbatim(t *testing.T) {
	s := NewScanner(`"hello, world."`)
	tokens, err := s.ScanTokens()
	require.Nil(t, err)
	require.Equal(t, token.STRING, tokens[0].Type)
	assert.Equal(t, "hello, world.", tokens[0].Literal)
}

func TestScanTokensPromptIsRawVerbatim(t *testing.T) {
	s := NewScanner(`{ Hello, world. }`)
	tokens, err := s.ScanTokens()
	require.Nil(t, err)
	require.Equal(t, token.PROMPT, tokens[0].Type)
	assert.Equal(t, " Hello, world. ", tokens[0].Literal)
}

func TestScanTokensUnbalancedQuotes(t *testing.T) {
	s := NewScanner(`"unterminated`)
	_, err := s.ScanTokens()
	require.NotNil(t, err)
	assert.Equal(t, errors.ErrorUnbalancedQuotes, err.Code)
}

func TestScanTokensUnbalancedBraces(t *testing.T) {
	s := NewScanner(`{unterminated`)
	_, err := s.ScanTokens()
	require.NotNil(t, err)
	assert.Equal(t, errors.ErrorUnbalancedBraces, err.Code)
}

func TestScanTokensUnknownSymbol(t *testing.T) {
	s := NewScanner(`3abc`)
	_, err := s.ScanTokens()
	require.NotNil(t, err)
	assert.Equal(t, errors.ErrorUnknownSymbol, err.Code)
}

func TestScanTokensConstantAndVariableShapes(t *testing.T) {
	s := NewScanner("Foo-Bar_2 foo-bar_2")
	tokens, err := s.ScanTokens()
	require.Nil(t, err)
	assert.Equal(t, token.CONSTANT, tokens[0].Type)
	assert.Equal(t, token.VARIABLE, tokens[1].Type)
}
