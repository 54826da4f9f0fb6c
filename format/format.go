// Package format writes parse results.
package format

import (
	"encoding"

	"github.com/dhamidi/parsec/parsec"
)

// Result is a parse result together with the shape it was parsed as.
type Result struct {
	Shape parsec.Shape
	Value any
}

type Encoder interface {
	encoding.TextMarshaler
	Encode(r Result) error
}
