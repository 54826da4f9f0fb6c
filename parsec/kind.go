package parsec

import (
	"fmt"

	"github.com/dhamidi/parsec/cursor"
)

// Kind identifies a primitive parser: the scalar type it decodes, or one
// of the two string scanners.
type Kind uint8

const (
	KindInvalid Kind = iota
	KindInt
	KindInt8
	KindInt16
	KindInt32
	KindInt64
	KindUint
	KindUint8
	KindUint16
	KindUint32
	KindUint64
	KindFloat32
	KindFloat64
	KindString    // rest of input
	KindDelimited // text up to a delimiter
)

type decodeFunc func(*cursor.Cursor) (any, error)

type kindInfo struct {
	name   string
	decode decodeFunc
}

// kinds is the dispatch table for primitive decoding. KindDelimited has
// no decoder of its own: it needs a delimiter, see DelimitedText.
var kinds = [...]kindInfo{
	KindInvalid:   {name: "invalid"},
	KindInt:       {"int", decodeSigned[int]},
	KindInt8:      {"int8", decodeSigned[int8]},
	KindInt16:     {"int16", decodeSigned[int16]},
	KindInt32:     {"int32", decodeSigned[int32]},
	KindInt64:     {"int64", decodeSigned[int64]},
	KindUint:      {"uint", decodeUnsigned[uint]},
	KindUint8:     {"uint8", decodeUnsigned[uint8]},
	KindUint16:    {"uint16", decodeUnsigned[uint16]},
	KindUint32:    {"uint32", decodeUnsigned[uint32]},
	KindUint64:    {"uint64", decodeUnsigned[uint64]},
	KindFloat32:   {"float32", decodeFloat[float32]},
	KindFloat64:   {"float64", decodeFloat[float64]},
	KindString:    {"string", decodeRest},
	KindDelimited: {name: "delimited"},
}

func (k Kind) String() string {
	if int(k) < len(kinds) {
		return kinds[k].name
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// IsValid reports whether k names a known primitive.
func (k Kind) IsValid() bool {
	return k > KindInvalid && int(k) < len(kinds)
}

// IsNumeric reports whether k decodes an integral or floating point value.
func (k Kind) IsNumeric() bool {
	return k >= KindInt && k <= KindFloat64
}

// IsUnsigned reports whether k rejects a leading sign.
func (k Kind) IsUnsigned() bool {
	return k >= KindUint && k <= KindUint64
}

// LookupKind returns the kind with the given name ("int32", "float64", ...).
// "float" is accepted as an alias of float32, matching the C-style names
// schemes are usually written with.
func LookupKind(name string) (Kind, bool) {
	if name == "float" {
		return KindFloat32, true
	}
	if name == "double" {
		return KindFloat64, true
	}
	for k := KindInt; int(k) < len(kinds); k++ {
		if kinds[k].name == name {
			return k, true
		}
	}
	return KindInvalid, false
}

// kindOf maps a Go literal to the primitive that decodes values like it.
func kindOf(v any) (Kind, bool) {
	switch v.(type) {
	case int:
		return KindInt, true
	case int8:
		return KindInt8, true
	case int16:
		return KindInt16, true
	case int32:
		return KindInt32, true
	case int64:
		return KindInt64, true
	case uint:
		return KindUint, true
	case uint8:
		return KindUint8, true
	case uint16:
		return KindUint16, true
	case uint32:
		return KindUint32, true
	case uint64:
		return KindUint64, true
	case float32:
		return KindFloat32, true
	case float64:
		return KindFloat64, true
	case string:
		return KindString, true
	}
	return KindInvalid, false
}

func (k Kind) decode(c *cursor.Cursor) (any, error) {
	if !k.IsValid() || kinds[k].decode == nil {
		return nil, fmt.Errorf("parsec: no decoder for kind %s", k)
	}
	return kinds[k].decode(c)
}
