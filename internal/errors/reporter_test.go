package errors

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReporterFormatsUnbalancedBrackets(t *testing.T) {
	source := "[foo B"
	reporter := NewReporter("test.rv", source)

	err := &CompilerError{
		Level:    Error,
		Code:     ErrorUnbalancedBrackets,
		Message:  GetErrorDescription(ErrorUnbalancedBrackets),
		Source:   source,
		Position: Position{Filename: "test.rv", Line: 1, Column: 1},
		Length:   1,
	}
	formatted := reporter.FormatError(err)

	assert.Contains(t, formatted, "error["+ErrorUnbalancedBrackets+"]")
	assert.Contains(t, formatted, "not balanced")
	assert.Contains(t, formatted, "test.rv:1:1")
	assert.Contains(t, formatted, "[foo B")
}

func TestCompilerErrorSatisfiesError(t *testing.T) {
	err := &CompilerError{Code: ErrorUnknownSymbol, Message: "bad token"}
	var asErr error = err
	assert.Equal(t, ErrorUnknownSymbol+": bad token", asErr.Error())
}

func TestGetErrorDescriptionKnownCodes(t *testing.T) {
	assert.NotEmpty(t, GetErrorDescription(ErrorUnbalancedBrackets))
	assert.NotEmpty(t, GetErrorDescription(ErrorUnbalancedQuotes))
	assert.NotEmpty(t, GetErrorDescription(ErrorUnbalancedBraces))
	assert.NotEmpty(t, GetErrorDescription(ErrorUnknownSymbol))
	assert.Equal(t, "unknown error code", GetErrorDescription("nope"))
}
