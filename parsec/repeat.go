package parsec

import (
	"fmt"

	"github.com/dhamidi/parsec/cursor"
)

// Repetition applies a parser a fixed number of times.
type Repetition struct {
	count int
	node  Node
	shape Shape
}

// Repeat returns a parser that runs node exactly n times with nothing in
// between; separators have to be chained into node. The count is part
// of the shape, so Repeat(2, p) and Repeat(3, p) have different shapes.
// Repeat panics if n is negative.
func Repeat(n int, node Node) Repetition {
	if n < 0 {
		panic(fmt.Sprintf("parsec: Repeat: negative count %d", n))
	}
	return Repetition{
		count: n,
		node:  node,
		shape: SequenceOf(node.Shape(), n),
	}
}

func (r Repetition) Count() int {
	return r.count
}

func (r Repetition) Shape() Shape {
	return r.shape
}

// Parse stops at the first failing iteration and returns its error. When
// the repeated node produces nothing the result is nil.
func (r Repetition) Parse(c *cursor.Cursor) (any, error) {
	var out Sequence
	if r.shape.Produces() {
		out = make(Sequence, r.count)
	}
	for i := 0; i < r.count; i++ {
		v, err := r.node.Parse(c)
		if err != nil {
			return nil, err
		}
		if out != nil {
			out[i] = v
		}
	}
	if out == nil {
		return nil, nil
	}
	return out, nil
}
