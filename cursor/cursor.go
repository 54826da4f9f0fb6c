// Package cursor provides a position-tracking reader over an immutable
// input buffer. It is the only way parsers consume input.
package cursor

import (
	"errors"
	"fmt"
)

// ErrEndOfInput is returned by Next when the cursor is exhausted.
var ErrEndOfInput = errors.New("end of input")

// Mark is a saved cursor position, used for lookahead.
type Mark struct {
	offset int
}

func (m Mark) String() string {
	return fmt.Sprintf("mark@%d", m.offset)
}

// Cursor reads an input buffer one unit (byte) at a time.
// The offset always stays within [0, len(input)].
type Cursor struct {
	input string
	pos   int
}

// New creates a cursor positioned at the start of input.
func New(input string) *Cursor {
	return &Cursor{input: input}
}

// Next returns the unit at the current offset and advances past it.
func (c *Cursor) Next() (byte, error) {
	if c.pos >= len(c.input) {
		return 0, ErrEndOfInput
	}
	ch := c.input[c.pos]
	c.pos++
	return ch, nil
}

// PushBack moves the offset back by n units, stopping at 0.
func (c *Cursor) PushBack(n int) {
	if n <= 0 {
		return
	}
	c.pos -= n
	if c.pos < 0 {
		c.pos = 0
	}
}

// AtEnd reports whether all input has been consumed.
func (c *Cursor) AtEnd() bool {
	return c.pos >= len(c.input)
}

// Save snapshots the current offset.
func (c *Cursor) Save() Mark {
	return Mark{offset: c.pos}
}

// Restore rewinds (or advances) the cursor to a saved offset.
func (c *Cursor) Restore(m Mark) {
	switch {
	case m.offset < 0:
		c.pos = 0
	case m.offset > len(c.input):
		c.pos = len(c.input)
	default:
		c.pos = m.offset
	}
}

// Offset returns the number of units consumed so far.
func (c *Cursor) Offset() int {
	return c.pos
}

// Len returns the length of the underlying input.
func (c *Cursor) Len() int {
	return len(c.input)
}

// Remaining returns the number of units not yet consumed.
func (c *Cursor) Remaining() int {
	return len(c.input) - c.pos
}

func (c *Cursor) String() string {
	return fmt.Sprintf("%d/%d", c.pos, len(c.input))
}
