package parsec

import (
	"strings"

	"github.com/dhamidi/parsec/cursor"
)

// DelimitedText reads text up to, but not including, a delimiter.
type DelimitedText struct {
	delim string
}

// Delimited returns a parser for the text before the first occurrence of
// delim. The delimiter itself is left in the input for the next parser.
// If the input ends before delim is seen, the text read so far is
// returned without error; units of an unfinished delimiter match at the
// end are consumed but not part of the result.
func Delimited(delim string) DelimitedText {
	return DelimitedText{delim: delim}
}

func (d DelimitedText) Delimiter() string {
	return d.delim
}

func (d DelimitedText) Shape() Shape {
	return Single(KindDelimited)
}

// Parse scans in a single pass. A unit that breaks a partial delimiter
// match is appended to the text together with the units matched so far,
// without being tried as the start of a new match.
func (d DelimitedText) Parse(c *cursor.Cursor) (any, error) {
	if d.delim == "" {
		return "", nil
	}

	var sb strings.Builder
	var start cursor.Mark
	matched := 0
	for !c.AtEnd() {
		if matched == 0 {
			start = c.Save()
		}
		ch, _ := c.Next()

		if ch == d.delim[matched] {
			matched++
			if matched == len(d.delim) {
				c.Restore(start)
				return sb.String(), nil
			}
			continue
		}

		sb.WriteString(d.delim[:matched])
		sb.WriteByte(ch)
		matched = 0
	}
	return sb.String(), nil
}
