// Package grammar is a declarative, participle-based alternate front end
// for the same concrete syntax internal/reader parses by hand. It exists to
// give tooling (the LSP server's semantic tokens and diagnostics) a positioned
// parse tree, something a hand-rolled scanner discards by design.
package grammar

import (
	"github.com/alecthomas/participle/v2/lexer"
)

// Program is the top-level parse result: a flat sequence of terms, mirroring
// the reader's "top-level result is the catenation of all accumulated
// tokens".
type Program struct {
	Pos    lexer.Position
	EndPos lexer.Position
	Terms  []*Term `@@*`
}

// Term is one concrete-syntax token: a quote, a string, a prompt, a
// constant, or a variable.
type Term struct {
	Pos      lexer.Position
	EndPos   lexer.Position
	Quote    *Quote  `  @@`
	String   *string `| @String`
	Prompt   *string `| @Prompt`
	Constant *string `| @Constant`
	Variable *string `| @Variable`
}

// Quote is a bracketed, nested sequence of terms.
type Quote struct {
	Pos    lexer.Position
	EndPos lexer.Position
	Terms  []*Term `"[" @@* "]"`
}
