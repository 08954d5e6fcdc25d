package regexfsm

import "fmt"

// CompileError wraps a parse-time failure with the pattern that caused it.
type CompileError struct {
	Pattern string
	Err     error
}

// Error implements the error interface.
func (e *CompileError) Error() string {
	return fmt.Sprintf("regexfsm: compiling %q: %v", e.Pattern, e.Err)
}

// Unwrap returns the underlying parse error, so errors.Is/errors.As can
// match against the specific parse.InvalidCharactersError,
// parse.UnexpectedTokenError, or parse.UnexpectedEndOfInputError kinds.
func (e *CompileError) Unwrap() error {
	return e.Err
}
