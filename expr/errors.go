package expr

import (
	"errors"
	"fmt"
)

// Sentinel errors. Match them with errors.Is; *SyntaxError unwraps to one
// of the parse-time sentinels.
var (
	// ErrSyntax indicates malformed input: an unexpected character or token,
	// unbalanced parentheses, a dangling operator, or an empty formula.
	ErrSyntax = errors.New("expr: syntax error")

	// ErrUnknownIdentifier indicates a name that is neither the variable,
	// a constant, nor a supported function.
	ErrUnknownIdentifier = errors.New("expr: unknown function or variable")

	// ErrArity indicates a function call with zero or more than one argument.
	ErrArity = errors.New("expr: functions take exactly one argument")

	// ErrBadVariable indicates an unusable variable name (empty, not an
	// identifier, or shadowing a function or constant).
	ErrBadVariable = errors.New("expr: invalid variable name")

	// ErrDivisionByZero is the only evaluation-time failure: '/' or '%' with
	// an exact zero divisor.
	ErrDivisionByZero = errors.New("expr: division by zero")
)

// SyntaxError reports where in the source text parsing failed.
type SyntaxError struct {
	// Pos is the byte offset into the source text.
	Pos int

	// Msg describes the problem in human terms.
	Msg string

	// Err is the sentinel classifying the failure.
	Err error
}

// Error implements error.
func (e *SyntaxError) Error() string {
	return fmt.Sprintf("%s: %s at offset %d", e.Err, e.Msg, e.Pos)
}

// Unwrap exposes the sentinel for errors.Is.
func (e *SyntaxError) Unwrap() error {
	return e.Err
}

// syntaxErrorf builds a *SyntaxError for the given sentinel and position.
func syntaxErrorf(sentinel error, pos int, format string, args ...interface{}) error {
	return &SyntaxError{Pos: pos, Msg: fmt.Sprintf(format, args...), Err: sentinel}
}
