package lsp_test

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"

	"ravel/internal/lsp"
)

func writeTempSource(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "sample.rv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestTextDocumentSemanticTokensFull(t *testing.T) {
	path := writeTempSource(t, `[foo] [bar] "hi" {note} H`)
	uri := "file://" + filepath.ToSlash(path)

	handler := lsp.NewHandler()
	ctx := &glsp.Context{Notify: func(string, any) {}}
	params := &protocol.SemanticTokensParams{
		TextDocument: protocol.TextDocumentIdentifier{URI: uri},
	}

	tokens, err := handler.TextDocumentSemanticTokensFull(ctx, params)
	require.NoError(t, err)
	require.NotNil(t, tokens)
	require.NotEmpty(t, tokens.Data)

	decoded, err := decodeSemanticTokens(tokens.Data)
	require.NoError(t, err)
	require.NotEmpty(t, decoded)

	tokenTypes := make(map[string]int)
	for _, token := range decoded {
		tokenTypes[token.Type]++
	}

	require.Greater(t, tokenTypes["variable"], 0, "should have variable tokens for foo/bar")
	require.Greater(t, tokenTypes["string"], 0, "should have a string token for \"hi\"")
	require.Greater(t, tokenTypes["macro"], 0, "should have a macro token for {note}")
	require.Greater(t, tokenTypes["keyword"], 0, "should have a keyword token for H")
}

func TestTextDocumentHoverShowsOneStepRewrite(t *testing.T) {
	path := writeTempSource(t, `[foo] H`)
	uri := "file://" + filepath.ToSlash(path)

	handler := lsp.NewHandler()
	ctx := &glsp.Context{Notify: func(string, any) {}}

	err := handler.TextDocumentDidOpen(ctx, &protocol.DidOpenTextDocumentParams{
		TextDocument: protocol.TextDocumentItem{URI: uri},
	})
	require.NoError(t, err)

	hover, err := handler.TextDocumentHover(ctx, &protocol.HoverParams{
		TextDocumentPositionParams: protocol.TextDocumentPositionParams{
			TextDocument: protocol.TextDocumentIdentifier{URI: uri},
		},
	})
	require.NoError(t, err)
	require.NotNil(t, hover)

	markup, ok := hover.Contents.(protocol.MarkupContent)
	require.True(t, ok)
	require.Contains(t, markup.Value, "foo")
}

type DecodedToken struct {
	Index     int
	Line      uint32
	Char      uint32
	Length    uint32
	Type      string
	Modifiers []string
}

func decodeSemanticTokens(raw []uint32) ([]DecodedToken, error) {
	if len(raw)%5 != 0 {
		return nil, fmt.Errorf("raw token data length %d is not a multiple of 5", len(raw))
	}

	var (
		decoded []DecodedToken
		line    uint32
		char    uint32
	)

	for i := 0; i < len(raw); i += 5 {
		deltaLine := raw[i]
		deltaStart := raw[i+1]
		length := raw[i+2]
		tokenTypeIdx := raw[i+3]
		tokenModMask := raw[i+4]

		if deltaLine == 0 {
			char += deltaStart
		} else {
			line += deltaLine
			char = deltaStart
		}

		var modifiers []string
		for j, name := range lsp.SemanticTokenModifiers {
			if tokenModMask&(1<<j) != 0 {
				modifiers = append(modifiers, name)
			}
		}

		decoded = append(decoded, DecodedToken{
			Index:     i / 5,
			Line:      line,
			Char:      char,
			Length:    length,
			Type:      lsp.SemanticTokenTypes[tokenTypeIdx],
			Modifiers: modifiers,
		})
	}

	return decoded, nil
}
