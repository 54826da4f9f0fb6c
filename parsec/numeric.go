package parsec

import (
	"math"
	"strings"

	"golang.org/x/exp/constraints"

	"github.com/dhamidi/parsec/cursor"
)

func isDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}

// parseSigned reads an optionally signed run of digits. The accumulator
// has the width of T and wraps on overflow.
func parseSigned[T constraints.Signed](c *cursor.Cursor) (T, error) {
	ch, err := next(c)
	if err != nil {
		return 0, err
	}

	var value T
	sign := T(1)
	switch {
	case ch == '+' || ch == '-':
		if ch == '-' {
			sign = -1
		}
	case isDigit(ch):
		value = T(ch - '0')
	default:
		return 0, failAt(c.Offset()-1, ErrExpectedDigit)
	}

	return sign * foldDigits(c, value), nil
}

func parseUnsigned[T constraints.Unsigned](c *cursor.Cursor) (T, error) {
	ch, err := next(c)
	if err != nil {
		return 0, err
	}

	switch {
	case ch == '+' || ch == '-':
		return 0, failAt(c.Offset()-1, ErrUnexpectedSign)
	case !isDigit(ch):
		return 0, failAt(c.Offset()-1, ErrExpectedDigit)
	}

	return foldDigits(c, T(ch-'0')), nil
}

// foldDigits consumes digits into value until a non-digit, which is
// pushed back for the next parser.
func foldDigits[T constraints.Integer](c *cursor.Cursor, value T) T {
	for !c.AtEnd() {
		ch, _ := c.Next()
		if !isDigit(ch) {
			c.PushBack(1)
			break
		}
		value = value*10 + T(ch-'0')
	}
	return value
}

// parseFloat folds whole and fractional digits into a single accumulator
// of type T and scales by the number of fractional digits at the end, so
// precision is bounded by what T can hold as an integer.
func parseFloat[T constraints.Float](c *cursor.Cursor) (T, error) {
	ch, err := next(c)
	if err != nil {
		return 0, err
	}

	var value T
	sign := T(1)
	switch {
	case ch == '+' || ch == '-':
		if ch == '-' {
			sign = -1
		}
	case isDigit(ch):
		value = T(ch - '0')
	default:
		return 0, failAt(c.Offset()-1, ErrExpectedDigit)
	}

	fractional := false
	fracDigits := 0
	for !c.AtEnd() {
		ch, _ := c.Next()
		switch {
		case isDigit(ch):
			value = value*10 + T(ch-'0')
			if fractional {
				fracDigits++
			}
		case ch == '.' && !fractional:
			fractional = true
		default:
			c.PushBack(1)
			return sign * value / T(math.Pow10(fracDigits)), nil
		}
	}
	return sign * value / T(math.Pow10(fracDigits)), nil
}

func decodeSigned[T constraints.Signed](c *cursor.Cursor) (any, error) {
	v, err := parseSigned[T](c)
	if err != nil {
		return nil, err
	}
	return v, nil
}

func decodeUnsigned[T constraints.Unsigned](c *cursor.Cursor) (any, error) {
	v, err := parseUnsigned[T](c)
	if err != nil {
		return nil, err
	}
	return v, nil
}

func decodeFloat[T constraints.Float](c *cursor.Cursor) (any, error) {
	v, err := parseFloat[T](c)
	if err != nil {
		return nil, err
	}
	return v, nil
}

// decodeRest consumes everything up to the end of input.
func decodeRest(c *cursor.Cursor) (any, error) {
	var sb strings.Builder
	sb.Grow(c.Remaining())
	for !c.AtEnd() {
		ch, _ := c.Next()
		sb.WriteByte(ch)
	}
	return sb.String(), nil
}
