package reader

import (
	"ravel/internal/errors"
	"ravel/internal/term"
	"ravel/token"
)

type frame struct {
	build []term.Block
	open  token.Token // the '[' that opened this level, for diagnostics
}

// Read parses source into a block, per the reader contract in the term
// grammar: a single pass over the token stream with a stack of "builds"
// opened by '[' and closed by ']', grounded on the reference interpreter's
// own read() method (same stack-of-lists shape, translated to Go's
// explicit-error idiom instead of raised exceptions).
func Read(source string) (term.Block, error) {
	scanner := NewScanner(source)
	tokens, scanErr := scanner.ScanTokens()
	if scanErr != nil {
		return nil, scanErr
	}

	var build []term.Block
	var stack []frame

	for _, tok := range tokens {
		switch tok.Type {
		case token.EOF:
			if len(stack) > 0 {
				return nil, unreadable(source, errors.ErrorUnbalancedBrackets, stack[0].open)
			}
			return term.Cat(build...), nil

		case token.LBRACKET:
			stack = append(stack, frame{build: build, open: tok})
			build = nil

		case token.RBRACKET:
			if len(stack) == 0 {
				return nil, unreadable(source, errors.ErrorUnbalancedBrackets, tok)
			}
			body := term.Cat(build...)
			var quoted term.Block
			if _, isID := body.(term.Id); isID {
				quoted = term.Unit()
			} else {
				quoted = term.NewQuote(body)
			}
			top := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			build = append(top.build, quoted)

		case token.STRING:
			build = append(build, term.NewString(tok.Literal))

		case token.PROMPT:
			build = append(build, term.NewPrompt(tok.Literal))

		case token.CONSTANT:
			build = append(build, term.NewConstant(tok.Literal))

		case token.VARIABLE:
			build = append(build, term.NewVariable(tok.Literal))
		}
	}
	// Unreachable: ScanTokens always appends a trailing EOF.
	return term.Cat(build...), nil
}

func unreadable(source, code string, tok token.Token) *errors.CompilerError {
	return &errors.CompilerError{
		Level:    errors.Error,
		Code:     code,
		Message:  errors.GetErrorDescription(code),
		Source:   source,
		Position: errors.Position{Line: tok.Line, Column: tok.Column},
		Length:   1,
	}
}
