package parsec

import (
	"fmt"

	"github.com/dhamidi/parsec/cursor"
)

// Chain runs two nodes one after the other and joins their results
// according to Join.
type Chain struct {
	first, second Node
	shape         Shape
}

// Then sequences first and second. Either operand may be a Node or a
// string; a string is turned into Match(string). Then panics on any other
// operand type.
func Then(first, second any) Chain {
	a, b := lift(first), lift(second)
	return Chain{
		first:  a,
		second: b,
		shape:  Join(a.Shape(), b.Shape()),
	}
}

// Seq chains parts left to right: Seq(a, b, c) is Then(Then(a, b), c).
// A single part is returned as a node on its own, and no parts yield a
// node that consumes and produces nothing.
func Seq(parts ...any) Node {
	switch len(parts) {
	case 0:
		return Match("")
	case 1:
		return lift(parts[0])
	}
	ch := Then(parts[0], parts[1])
	for _, p := range parts[2:] {
		ch = ch.Then(p)
	}
	return ch
}

// Then appends next to the chain.
func (ch Chain) Then(next any) Chain {
	return Then(ch, next)
}

func (ch Chain) Shape() Shape {
	return ch.shape
}

// Parts returns the two chained nodes.
func (ch Chain) Parts() (Node, Node) {
	return ch.first, ch.second
}

// Parse always runs both nodes, first to second, whether or not they
// produce values.
func (ch Chain) Parse(c *cursor.Cursor) (any, error) {
	v1, err := ch.first.Parse(c)
	if err != nil {
		return nil, err
	}
	v2, err := ch.second.Parse(c)
	if err != nil {
		return nil, err
	}

	s1, s2 := ch.first.Shape(), ch.second.Shape()
	switch {
	case !ch.shape.Produces():
		return nil, nil
	case !s2.Produces():
		return v1, nil
	case !s1.Produces():
		return v2, nil
	}

	out := make(Tuple, 0, ch.shape.Len())
	out = appendFlat(out, s1, v1)
	out = appendFlat(out, s2, v2)
	return out, nil
}

func appendFlat(out Tuple, s Shape, v any) Tuple {
	if s.Kind() == ShapeTuple {
		return append(out, v.(Tuple)...)
	}
	return append(out, v)
}

func lift(v any) Node {
	switch v := v.(type) {
	case Node:
		return v
	case string:
		return Match(v)
	}
	panic(fmt.Sprintf("parsec: cannot chain %T", v))
}
