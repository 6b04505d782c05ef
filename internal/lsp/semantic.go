package lsp

import (
	"github.com/alecthomas/participle/v2/lexer"

	"ravel/grammar"
)

// SemanticToken represents a single LSP semantic token entry. Line and
// StartChar are 0-based positions; TokenType is an index into
// SemanticTokenTypes and TokenModifiers a bitmask over SemanticTokenModifiers.
type SemanticToken struct {
	Line           uint32
	StartChar      uint32
	Length         uint32
	TokenType      int
	TokenModifiers int
}

func collectSemanticTokens(program *grammar.Program) []SemanticToken {
	var tokens []SemanticToken
	if program == nil {
		return tokens
	}
	for _, t := range program.Terms {
		tokens = append(tokens, walkTerm(t)...)
	}
	return tokens
}

func walkTerm(t *grammar.Term) []SemanticToken {
	if t == nil {
		return nil
	}
	switch {
	case t.Quote != nil:
		var tokens []SemanticToken
		for _, inner := range t.Quote.Terms {
			tokens = append(tokens, walkTerm(inner)...)
		}
		return tokens
	case t.String != nil:
		return []SemanticToken{makeToken(t.Pos, t.EndPos, *t.String, "string", 0)}
	case t.Prompt != nil:
		return []SemanticToken{makeToken(t.Pos, t.EndPos, *t.Prompt, "macro", 0)}
	case t.Constant != nil:
		return []SemanticToken{makeToken(t.Pos, t.EndPos, *t.Constant, "keyword", 0)}
	case t.Variable != nil:
		return []SemanticToken{makeToken(t.Pos, t.EndPos, *t.Variable, "variable", 0)}
	}
	return nil
}

func makeToken(pos, endPos lexer.Position, value, tokenType string, decl int) SemanticToken {
	length := endPos.Column - pos.Column
	if length <= 0 {
		length = len(value)
	}
	return SemanticToken{
		Line:           uint32(pos.Line - 1),
		StartChar:      uint32(pos.Column - 1),
		Length:         uint32(length),
		TokenType:      indexOf(tokenType, SemanticTokenTypes),
		TokenModifiers: decl << indexOf("declaration", SemanticTokenModifiers),
	}
}

func indexOf(target string, list []string) int {
	for i, v := range list {
		if v == target {
			return i
		}
	}
	return -1
}
