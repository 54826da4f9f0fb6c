package format

import (
	"encoding/json"
	"io"
)

type JSONEncoder struct {
	w      io.Writer
	result Result
}

func NewJSONEncoder(w io.Writer) *JSONEncoder {
	return &JSONEncoder{w: w}
}

func (e *JSONEncoder) Encode(r Result) error {
	e.result = r
	text, err := e.MarshalText()
	if err != nil {
		return err
	}
	text = append(text, '\n')
	_, err = e.w.Write(text)
	return err
}

func (e *JSONEncoder) MarshalText() ([]byte, error) {
	return json.MarshalIndent(jsonResult{
		Shape: e.result.Shape.String(),
		Value: e.result.Value,
	}, "", "  ")
}

// Tuples and sequences are []any underneath and encode as arrays.
type jsonResult struct {
	Shape string `json:"shape"`
	Value any    `json:"value"`
}
