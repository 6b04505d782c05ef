// Package reader implements the single-pass tokenising parser from source
// text to a term.Block, per the concrete syntax:
//
//	program   := tokens*
//	token     := whitespace | quote | string | prompt | constant | variable
//	quote     := '[' program ']'
//	string    := '"' (not '"')* '"'
//	prompt    := '{' (not '}')* '}'
//	constant  := [A-Z] [A-Za-z0-9_-]*
//	variable  := [a-z] [A-Za-z0-9_-]*
package reader

import (
	"regexp"

	"ravel/internal/errors"
	"ravel/token"
)

var (
	constantPattern = regexp.MustCompile(`^[A-Z][A-Za-z0-9_-]*$`)
	variablePattern = regexp.MustCompile(`^[a-z][A-Za-z0-9_-]*$`)
)

// Scanner turns source text into a flat token stream, grounded on the
// teacher compiler's hand-rolled scanner: one-character lookahead, explicit
// line/column/offset bookkeeping, no external lexer generator.
type Scanner struct {
	source string
	tokens []token.Token
	start  int
	current int
	line    int
	column  int
	startLine   int
	startColumn int
	offset int
}

// NewScanner creates a scanner over source.
func NewScanner(source string) *Scanner {
	return &Scanner{source: source, line: 1, column: 1}
}

// ScanTokens scans the whole source and returns its token stream (always
// ending in an EOF token), or the first unreadable-source error found.
func (s *Scanner) ScanTokens() ([]token.Token, *errors.CompilerError) {
	for !s.isAtEnd() {
		s.start = s.current
		s.startLine, s.startColumn = s.line, s.column
		if err := s.scanToken(); err != nil {
			return nil, err
		}
	}
	s.tokens = append(s.tokens, token.Token{Type: token.EOF, Line: s.line, Column: s.column, Offset: s.offset})
	return s.tokens, nil
}

func isSeparator(c byte) bool {
	switch c {
	case ' ', '\t', '\r', '\n', '[', ']':
		return true
	default:
		return false
	}
}

func (s *Scanner) scanToken() *errors.CompilerError {
	c := s.peek()
	switch {
	case c == ' ' || c == '\t' || c == '\r' || c == '\n':
		s.advance()
		return nil
	case c == '[':
		s.advance()
		s.addToken(token.LBRACKET)
		return nil
	case c == ']':
		s.advance()
		s.addToken(token.RBRACKET)
		return nil
	case c == '"':
		return s.scanDelimited('"', token.STRING, errors.ErrorUnbalancedQuotes)
	case c == '{':
		return s.scanDelimited('}', token.PROMPT, errors.ErrorUnbalancedBraces)
	default:
		return s.scanWord()
	}
}

// scanDelimited consumes the opening delimiter (already at s.current),
// reads raw text verbatim until close is found, and errors with code if the
// source runs out first.
func (s *Scanner) scanDelimited(close byte, typ token.TokenType, code string) *errors.CompilerError {
	openLine, openColumn := s.line, s.column
	s.advance() // consume opening delimiter
	contentStart := s.current
	for !s.isAtEnd() && s.peek() != close {
		s.advance()
	}
	if s.isAtEnd() {
		return s.unreadable(code, openLine, openColumn, 1)
	}
	content := s.source[contentStart:s.current]
	s.advance() // consume closing delimiter
	s.tokens = append(s.tokens, token.Token{
		Type: typ, Literal: content, Line: s.startLine, Column: s.startColumn, Offset: s.start,
	})
	return nil
}

// scanWord consumes a run of non-separator characters and classifies it as
// a constant or a variable token, validating its shape.
func (s *Scanner) scanWord() *errors.CompilerError {
	for !s.isAtEnd() && !isSeparator(s.peek()) {
		s.advance()
	}
	word := s.source[s.start:s.current]
	typ := token.Lookup(word)

	var ok bool
	switch typ {
	case token.CONSTANT:
		ok = constantPattern.MatchString(word)
	default:
		ok = variablePattern.MatchString(word)
	}
	if !ok {
		return s.unreadable(errors.ErrorUnknownSymbol, s.startLine, s.startColumn, len(word))
	}
	s.tokens = append(s.tokens, token.Token{
		Type: typ, Literal: word, Line: s.startLine, Column: s.startColumn, Offset: s.start,
	})
	return nil
}

func (s *Scanner) addToken(typ token.TokenType) {
	s.tokens = append(s.tokens, token.Token{
		Type: typ, Literal: s.source[s.start:s.current], Line: s.startLine, Column: s.startColumn, Offset: s.start,
	})
}

func (s *Scanner) isAtEnd() bool { return s.current >= len(s.source) }

func (s *Scanner) peek() byte {
	if s.isAtEnd() {
		return 0
	}
	return s.source[s.current]
}

func (s *Scanner) advance() byte {
	c := s.source[s.current]
	s.current++
	s.offset++
	if c == '\n' {
		s.line++
		s.column = 1
	} else {
		s.column++
	}
	return c
}

func (s *Scanner) unreadable(code string, line, column, length int) *errors.CompilerError {
	return &errors.CompilerError{
		Level:    errors.Error,
		Code:     code,
		Message:  errors.GetErrorDescription(code),
		Source:   s.source,
		Position: errors.Position{Line: line, Column: column},
		Length:   length,
	}
}
