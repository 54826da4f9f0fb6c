package parsec

import (
	"fmt"

	"github.com/dhamidi/parsec/cursor"
)

// Literal checks that the input continues with an expected value. It
// produces nothing; a mismatch fails the whole parse.
type Literal struct {
	expected any
	kind     Kind
}

// Match returns a matcher for a string or for a numeric literal of any
// integer or float type. Numeric literals are decoded with the primitive
// of the same Go type and compared, so Match(int32(7)) accepts "7" and
// "+7". Match panics for any other literal type.
func Match(literal any) Literal {
	kind, ok := kindOf(literal)
	if !ok {
		panic(fmt.Sprintf("parsec: Match(%T): unsupported literal type", literal))
	}
	return Literal{expected: literal, kind: kind}
}

// Expected returns the literal the matcher checks for.
func (m Literal) Expected() any {
	return m.expected
}

func (m Literal) Shape() Shape {
	return None()
}

// Parse compares unit by unit for strings and stops at the first
// mismatch. Consumed input is not given back on failure.
func (m Literal) Parse(c *cursor.Cursor) (any, error) {
	if s, ok := m.expected.(string); ok {
		for i := 0; i < len(s); i++ {
			ch, err := c.Next()
			if err != nil {
				return nil, &Error{Offset: c.Offset(), Expected: s, Err: fmt.Errorf("%w: %w", ErrMatch, err)}
			}
			if ch != s[i] {
				return nil, &Error{Offset: c.Offset() - 1, Expected: s, Err: ErrMatch}
			}
		}
		return nil, nil
	}

	start := c.Offset()
	got, err := m.kind.decode(c)
	if err != nil {
		return nil, err
	}
	if got != m.expected {
		return nil, &Error{Offset: start, Expected: m.expected, Err: ErrMatch}
	}
	return nil, nil
}
