package json

import "fmt"

// SyntaxError reports a grammar violation: an unexpected byte, a stream
// that ends inside a construct, trailing data after a complete document,
// a mismatched literal, an unterminated string, or a disallowed escape.
type SyntaxError struct {
	Msg    string
	Offset int // byte offset of the offending position
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("json: syntax error at offset %d: %s", e.Offset, e.Msg)
}

// NumberFormatError reports a numeric token that could not be parsed as
// a float64. Err is the underlying strconv error.
type NumberFormatError struct {
	Literal string
	Offset  int // byte offset of the start of the token
	Err     error
}

func (e *NumberFormatError) Error() string {
	return fmt.Sprintf("json: invalid number %q at offset %d: %v", e.Literal, e.Offset, e.Err)
}

func (e *NumberFormatError) Unwrap() error { return e.Err }
