package format

import (
	"fmt"
	"io"
	"strings"

	"github.com/dhamidi/parsec/parsec"
)

// TextEncoder writes a result on one line. A lone string is written as
// is; strings inside tuples and sequences are quoted.
type TextEncoder struct {
	w      io.Writer
	result Result
}

func NewTextEncoder(w io.Writer) *TextEncoder {
	return &TextEncoder{w: w}
}

func (e *TextEncoder) Encode(r Result) error {
	e.result = r
	text, err := e.MarshalText()
	if err != nil {
		return err
	}
	text = append(text, '\n')
	_, err = e.w.Write(text)
	return err
}

func (e *TextEncoder) MarshalText() ([]byte, error) {
	if s, ok := e.result.Value.(string); ok {
		return []byte(s), nil
	}
	var sb strings.Builder
	writeValue(&sb, e.result.Value)
	return []byte(sb.String()), nil
}

func writeValue(sb *strings.Builder, v any) {
	switch v := v.(type) {
	case nil:
		sb.WriteString("none")
	case string:
		fmt.Fprintf(sb, "%q", v)
	case parsec.Tuple:
		sb.WriteByte('(')
		writeList(sb, v)
		sb.WriteByte(')')
	case parsec.Sequence:
		sb.WriteByte('[')
		writeList(sb, v)
		sb.WriteByte(']')
	default:
		fmt.Fprint(sb, v)
	}
}

func writeList(sb *strings.Builder, values []any) {
	for i, v := range values {
		if i > 0 {
			sb.WriteString(", ")
		}
		writeValue(sb, v)
	}
}
