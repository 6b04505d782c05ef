package lsp

import (
	"github.com/alecthomas/participle/v2"
	protocol "github.com/tliron/glsp/protocol_3_16"

	"ravel/internal/errors"
)

// ConvertCompilerError transforms a reader-raised CompilerError into an LSP
// diagnostic for IDE display: unbalanced brackets, unbalanced quotes,
// unbalanced braces, unknown symbol.
func ConvertCompilerError(ce *errors.CompilerError) []protocol.Diagnostic {
	if ce == nil {
		return nil
	}
	length := ce.Length
	if length <= 0 {
		length = 1
	}
	return []protocol.Diagnostic{
		{
			Range: protocol.Range{
				Start: protocol.Position{
					Line:      uint32(max(ce.Position.Line-1, 0)),
					Character: uint32(max(ce.Position.Column-1, 0)),
				},
				End: protocol.Position{
					Line:      uint32(max(ce.Position.Line-1, 0)),
					Character: uint32(max(ce.Position.Column-1+length, 0)),
				},
			},
			Severity: ptrSeverity(protocol.DiagnosticSeverityError),
			Source:   ptrString("ravel-reader"),
			Message:  ce.Message,
		},
	}
}

// ConvertParseError transforms a participle parse error, surfaced by the
// declarative grammar front end, into an LSP diagnostic.
func ConvertParseError(err error) []protocol.Diagnostic {
	pe, ok := err.(participle.Error)
	if !ok {
		return []protocol.Diagnostic{
			{
				Range:    protocol.Range{},
				Severity: ptrSeverity(protocol.DiagnosticSeverityError),
				Source:   ptrString("ravel-parser"),
				Message:  err.Error(),
			},
		}
	}
	pos := pe.Position()
	return []protocol.Diagnostic{
		{
			Range: protocol.Range{
				Start: protocol.Position{
					Line:      uint32(max(pos.Line-1, 0)),
					Character: uint32(max(pos.Column-1, 0)),
				},
				End: protocol.Position{
					Line:      uint32(max(pos.Line-1, 0)),
					Character: uint32(max(pos.Column-1+1, 0)),
				},
			},
			Severity: ptrSeverity(protocol.DiagnosticSeverityError),
			Source:   ptrString("ravel-parser"),
			Message:  pe.Message(),
		},
	}
}

func ptrSeverity(s protocol.DiagnosticSeverity) *protocol.DiagnosticSeverity {
	return &s
}

func ptrString(s string) *string {
	return &s
}
