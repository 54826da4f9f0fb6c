package parsec

import (
	"fmt"
	"strings"
)

// ShapeKind classifies the result a node produces.
type ShapeKind uint8

const (
	ShapeNone     ShapeKind = iota // no value
	ShapeSingle                    // one primitive value
	ShapeTuple                     // flat Tuple of two or more values
	ShapeSequence                  // Sequence of exactly N values of one shape
)

func (k ShapeKind) String() string {
	switch k {
	case ShapeNone:
		return "none"
	case ShapeSingle:
		return "single"
	case ShapeTuple:
		return "tuple"
	case ShapeSequence:
		return "sequence"
	}
	return fmt.Sprintf("ShapeKind(%d)", uint8(k))
}

// Shape is the statically known structure of a node's result. It is
// derived from a node's children when the node is built and never from
// the input. Shapes are immutable.
type Shape struct {
	kind   ShapeKind
	scalar Kind
	elems  []Shape // tuple elements, or the single sequence element
	count  int
}

// None is the shape of nodes that produce nothing.
func None() Shape {
	return Shape{}
}

// Single is the shape of a primitive of kind k.
func Single(k Kind) Shape {
	return Shape{kind: ShapeSingle, scalar: k}
}

// TupleOf builds a flat tuple shape. Tuple elements are spliced in place
// and None elements are dropped, so TupleOf(TupleOf(a, b), c) equals
// TupleOf(a, b, c). Fewer than two remaining elements collapse to None or
// to the lone element.
func TupleOf(elems ...Shape) Shape {
	flat := make([]Shape, 0, len(elems))
	for _, e := range elems {
		switch e.kind {
		case ShapeNone:
		case ShapeTuple:
			flat = append(flat, e.elems...)
		default:
			flat = append(flat, e)
		}
	}
	switch len(flat) {
	case 0:
		return None()
	case 1:
		return flat[0]
	}
	return Shape{kind: ShapeTuple, elems: flat}
}

// SequenceOf is the shape of n repetitions of elem. Repeating something
// that produces nothing produces nothing.
func SequenceOf(elem Shape, n int) Shape {
	if !elem.Produces() {
		return None()
	}
	return Shape{kind: ShapeSequence, elems: []Shape{elem}, count: n}
}

// Join computes the shape of first followed by second:
//
//	first  second  result
//	no     no      none
//	yes    no      first
//	no     yes     second
//	yes    yes     flat tuple of both
func Join(first, second Shape) Shape {
	switch {
	case !first.Produces() && !second.Produces():
		return None()
	case !second.Produces():
		return first
	case !first.Produces():
		return second
	}
	return TupleOf(first, second)
}

func (s Shape) Kind() ShapeKind {
	return s.kind
}

// Produces reports whether a node of this shape yields a value.
func (s Shape) Produces() bool {
	return s.kind != ShapeNone
}

// Scalar returns the primitive kind of a single shape.
func (s Shape) Scalar() Kind {
	if s.kind != ShapeSingle {
		return KindInvalid
	}
	return s.scalar
}

// Len returns the number of values in a result of this shape.
func (s Shape) Len() int {
	switch s.kind {
	case ShapeSingle:
		return 1
	case ShapeTuple:
		return len(s.elems)
	case ShapeSequence:
		return s.count
	}
	return 0
}

// Elements returns the element shapes of a tuple.
func (s Shape) Elements() []Shape {
	if s.kind != ShapeTuple {
		return nil
	}
	out := make([]Shape, len(s.elems))
	copy(out, s.elems)
	return out
}

// Elem returns the element shape of a sequence.
func (s Shape) Elem() Shape {
	if s.kind != ShapeSequence {
		return None()
	}
	return s.elems[0]
}

func (s Shape) Equal(o Shape) bool {
	if s.kind != o.kind || s.scalar != o.scalar || s.count != o.count || len(s.elems) != len(o.elems) {
		return false
	}
	for i := range s.elems {
		if !s.elems[i].Equal(o.elems[i]) {
			return false
		}
	}
	return true
}

func (s Shape) String() string {
	switch s.kind {
	case ShapeNone:
		return "none"
	case ShapeSingle:
		return s.scalar.String()
	case ShapeTuple:
		parts := make([]string, len(s.elems))
		for i, e := range s.elems {
			parts[i] = e.String()
		}
		return "(" + strings.Join(parts, ", ") + ")"
	case ShapeSequence:
		return fmt.Sprintf("[%d]%s", s.count, s.elems[0])
	}
	return "invalid"
}

// MarshalText renders the shape the way String does.
func (s Shape) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}
