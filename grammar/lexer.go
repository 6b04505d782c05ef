package grammar

import (
	"github.com/alecthomas/participle/v2/lexer"
)

// RavelLexer tokenises the same concrete syntax as internal/reader, as a
// stateful participle lexer: quoted code brackets, raw-verbatim string and
// prompt literals, and the two word shapes (Constant, Variable).
var RavelLexer = lexer.MustStateful(lexer.Rules{
	"Root": {
		{"String", `"[^"]*"`, nil},
		{"Prompt", `\{[^}]*\}`, nil},
		{"LBracket", `\[`, nil},
		{"RBracket", `\]`, nil},
		{"Constant", `[A-Z][A-Za-z0-9_-]*`, nil},
		{"Variable", `[a-z][A-Za-z0-9_-]*`, nil},
		{"Whitespace", `[ \t\r\n]+`, nil},
	},
})
