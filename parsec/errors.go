package parsec

import (
	"errors"
	"fmt"

	"github.com/dhamidi/parsec/cursor"
)

// Failure kinds. A parse failure is always an *Error whose Err unwraps to
// one (or, for a literal cut short by the end of input, two) of these.
var (
	ErrEndOfInput     = cursor.ErrEndOfInput
	ErrExpectedDigit  = errors.New("expected digit")
	ErrUnexpectedSign = errors.New("unexpected sign while parsing unsigned value")
	ErrMatch          = errors.New("match error")
	ErrTrailingInput  = errors.New("trailing input")
)

// Error describes where and why a parse failed.
type Error struct {
	Offset   int // cursor offset at which the failure was detected
	Expected any // literal a Match expected, nil for other failures
	Err      error
}

func (e *Error) Error() string {
	if e.Expected != nil {
		return fmt.Sprintf("offset %d: %v: expected %s", e.Offset, e.Err, quoteLiteral(e.Expected))
	}
	return fmt.Sprintf("offset %d: %v", e.Offset, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

func failAt(offset int, err error) *Error {
	return &Error{Offset: offset, Err: err}
}

// next reads one unit, turning end of input into an *Error.
func next(c *cursor.Cursor) (byte, error) {
	ch, err := c.Next()
	if err != nil {
		return 0, failAt(c.Offset(), err)
	}
	return ch, nil
}

func quoteLiteral(v any) string {
	if s, ok := v.(string); ok {
		return fmt.Sprintf("%q", s)
	}
	return fmt.Sprintf("%v", v)
}
