package parse

import "fmt"

// InvalidCharactersError means the pattern contained one or more characters
// outside the supported alphabet, caught by pre-validation before any
// parsing is attempted.
type InvalidCharactersError struct {
	Chars []rune
}

func (e *InvalidCharactersError) Error() string {
	return fmt.Sprintf("parse: invalid characters in pattern: %q", string(e.Chars))
}

// UnexpectedTokenError means the parser reached a point where the current
// character is not admissible for the production it's in. Expected is the
// zero rune when the parser cannot name a single expected character (e.g.
// "nothing more should follow here").
type UnexpectedTokenError struct {
	Expected, Actual rune
}

func (e *UnexpectedTokenError) Error() string {
	if e.Expected == 0 {
		return fmt.Sprintf("parse: unexpected token %q", e.Actual)
	}
	return fmt.Sprintf("parse: unexpected token %q, expected %q", e.Actual, e.Expected)
}

// UnexpectedEndOfInputError means the pattern ended while a production
// still required a character: a missing escape payload, or an unclosed
// `(` / `[` whose matching `)` / `]` was never found.
type UnexpectedEndOfInputError struct{}

func (e *UnexpectedEndOfInputError) Error() string {
	return "parse: unexpected end of input"
}
