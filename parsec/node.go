package parsec

import (
	"fmt"

	"github.com/dhamidi/parsec/cursor"
)

// Node is one combinator in a parser tree. Implementations are immutable
// values that hold no cursor state, so a tree can be reused for any
// number of parses, including concurrent ones with separate cursors.
type Node interface {
	// Shape describes what Parse returns. It is fixed when the node is built.
	Shape() Shape
	// Parse consumes input from c and returns a value of Shape's structure.
	Parse(c *cursor.Cursor) (any, error)
}

// Tuple is the flat result of chaining several value-producing nodes.
type Tuple []any

// Sequence is the result of a Repeat: exactly N values in parse order.
type Sequence []any

// Scalar decodes one number of a fixed kind.
type Scalar struct {
	kind Kind
}

func (s Scalar) Kind() Kind {
	return s.kind
}

func (s Scalar) Shape() Shape {
	return Single(s.kind)
}

func (s Scalar) Parse(c *cursor.Cursor) (any, error) {
	return s.kind.decode(c)
}

func Int() Scalar     { return Scalar{KindInt} }
func Int8() Scalar    { return Scalar{KindInt8} }
func Int16() Scalar   { return Scalar{KindInt16} }
func Int32() Scalar   { return Scalar{KindInt32} }
func Int64() Scalar   { return Scalar{KindInt64} }
func Uint() Scalar    { return Scalar{KindUint} }
func Uint8() Scalar   { return Scalar{KindUint8} }
func Uint16() Scalar  { return Scalar{KindUint16} }
func Uint32() Scalar  { return Scalar{KindUint32} }
func Uint64() Scalar  { return Scalar{KindUint64} }
func Float32() Scalar { return Scalar{KindFloat32} }
func Float64() Scalar { return Scalar{KindFloat64} }

// Value returns the primitive parser for kind. It panics for
// KindDelimited, which needs a delimiter (use Delimited), and for
// unknown kinds.
func Value(kind Kind) Node {
	switch {
	case kind.IsNumeric():
		return Scalar{kind}
	case kind == KindString:
		return Text{}
	}
	panic(fmt.Sprintf("parsec: Value(%s): not a standalone primitive", kind))
}

// Text consumes the rest of the input. Nothing chained after it can
// consume anything.
type Text struct{}

// Rest returns the rest-of-input string parser.
func Rest() Text {
	return Text{}
}

func (Text) Shape() Shape {
	return Single(KindString)
}

func (Text) Parse(c *cursor.Cursor) (any, error) {
	return decodeRest(c)
}

// WithSeparator returns a parser for the text before sep. The separator
// is left in the input.
func (Text) WithSeparator(sep string) DelimitedText {
	return Delimited(sep)
}

// Then returns a parser for the text before delim that also consumes
// delim, so Rest().Then("(") reads "name(" as "name".
func (Text) Then(delim string) Chain {
	return Then(Delimited(delim), Match(delim))
}

// Until is shorthand for Rest().Then(delim).
func Until(delim string) Chain {
	return Text{}.Then(delim)
}
