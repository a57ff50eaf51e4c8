package types

import "fmt"

// ErrorCode identifies a class of syntax error.
type ErrorCode string

// Error codes. S01xx codes concern the shape of the input at the lexical
// level, S02xx codes concern grammar violations detected by the parser.
const (
	ErrEmptyExpression ErrorCode = "S0101"
	ErrUnexpectedToken ErrorCode = "S0201"
	ErrTrailingInput   ErrorCode = "S0202"
	ErrMissingParen    ErrorCode = "S0203"
	ErrTooDeep         ErrorCode = "S0205"
)

// Error is a structured syntax error carrying the offending token and its
// position in the source string.
type Error struct {
	Code     ErrorCode
	Message  string
	Position int
	Token    string
	Err      error
}

// NewError creates a new syntax error.
func NewError(code ErrorCode, message string, position int) *Error {
	return &Error{
		Code:     code,
		Message:  message,
		Position: position,
	}
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Position >= 0 {
		return fmt.Sprintf("%s at position %d: %s", e.Code, e.Position, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the wrapped error.
func (e *Error) Unwrap() error {
	return e.Err
}

// WithToken adds token information to the error.
func (e *Error) WithToken(token string) *Error {
	e.Token = token
	return e
}

// WithCause wraps another error.
func (e *Error) WithCause(err error) *Error {
	e.Err = err
	return e
}
