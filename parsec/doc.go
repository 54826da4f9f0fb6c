// Package parsec builds text parsers out of small combinators.
//
// A parser is a tree of nodes. Leaves decode one value from the input:
//
//	parsec.Int32()        // optionally signed integer
//	parsec.Uint16()       // unsigned integer, a sign is an error
//	parsec.Float64()      // decimal with an optional fraction
//	parsec.Rest()         // everything up to the end of input
//	parsec.Delimited(",") // text up to a delimiter, which is left in place
//	parsec.Match("(")     // a literal that must follow, produces nothing
//
// Repeat runs a node a fixed number of times and Then (or Seq) runs two
// nodes one after the other. Every node has a Shape, worked out when the
// node is built, that says what Parse returns:
//
//	none       nil
//	single     the decoded value (int32, float64, string, ...)
//	tuple      a flat Tuple of values
//	sequence   a Sequence of exactly N values
//
// Chaining joins shapes: values from both sides end up in one flat Tuple,
// and nodes that produce nothing disappear from the result. So
//
//	p := parsec.Seq(parsec.Float32(), ",", parsec.Repeat(3, parsec.Match(" ")), parsec.Rest())
//	v, err := parsec.Parse(p, "0.1415,   some string")
//
// yields Tuple{float32(0.1415), "some string"}.
//
// Parsing is a single left-to-right pass. Failures are not retried and do
// not rewind the input; the only lookahead is inside Delimited.
package parsec
