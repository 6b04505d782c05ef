package errors

// Error codes for the ravel reader.
//
// The rewriter never surfaces an error to callers (spec: all soft failures
// are caught and converted into a thunk); only the reader's "unreadable
// source" failure is a hard error with a stable code, following the same
// letter-plus-four-digit numbering style the teacher toolchain used for its
// own compiler diagnostics (E00xx there, R00xx here).
const (
	// R0001: brackets opened with [ were never closed, or ] was seen
	// with no matching [.
	ErrorUnbalancedBrackets = "R0001"

	// R0002: a string literal opened with " was never closed.
	ErrorUnbalancedQuotes = "R0002"

	// R0003: a prompt literal opened with { was never closed.
	ErrorUnbalancedBraces = "R0003"

	// R0004: a token did not match the constant or variable grammar.
	ErrorUnknownSymbol = "R0004"
)

// GetErrorDescription returns a human-readable description of the error
// code, used by the reporter when no more specific message is supplied.
func GetErrorDescription(code string) string {
	switch code {
	case ErrorUnbalancedBrackets:
		return "brackets are not balanced"
	case ErrorUnbalancedQuotes:
		return "string literal is not closed"
	case ErrorUnbalancedBraces:
		return "prompt literal is not closed"
	case ErrorUnknownSymbol:
		return "token does not match the constant or variable grammar"
	default:
		return "unknown error code"
	}
}
