package codec

import (
	"errors"
	"strings"
)

const (
	delimiter = ';'
	quote     = '"'

	// reservedInDate lists characters an unquoted due date cannot hold
	reservedInDate = ";\"\r\n"
)

var (
	errUnterminatedQuote = errors.New("unterminated quoted field")
	errTextAfterQuote    = errors.New("unexpected text after closing quote")
)

// quoteField wraps s in quotes, doubling any embedded quote
func quoteField(s string) string {
	var b strings.Builder
	b.Grow(len(s) + 2)
	b.WriteByte(quote)
	for i := 0; i < len(s); i++ {
		if s[i] == quote {
			b.WriteByte(quote)
		}
		b.WriteByte(s[i])
	}
	b.WriteByte(quote)
	return b.String()
}

// splitRecord splits one line into fields on the delimiter.
// A field that starts with a quote runs to the matching closing quote
// and may contain delimiters; "" inside it stands for one quote.
func splitRecord(line string) ([]string, error) {
	var fields []string
	i := 0
	for {
		var field string
		if i < len(line) && line[i] == quote {
			value, end, err := readQuoted(line, i)
			if err != nil {
				return nil, err
			}
			if end < len(line) && line[end] != delimiter {
				return nil, errTextAfterQuote
			}
			field, i = value, end
		} else {
			end := strings.IndexByte(line[i:], delimiter)
			if end < 0 {
				end = len(line)
			} else {
				end += i
			}
			field, i = line[i:end], end
		}

		fields = append(fields, field)
		if i >= len(line) {
			return fields, nil
		}
		i++ // skip delimiter
	}
}

// readQuoted reads a quoted field starting at line[start] and returns its
// unescaped value and the index just past the closing quote
func readQuoted(line string, start int) (string, int, error) {
	var b strings.Builder
	for j := start + 1; j < len(line); j++ {
		c := line[j]
		if c != quote {
			b.WriteByte(c)
			continue
		}
		if j+1 < len(line) && line[j+1] == quote {
			b.WriteByte(quote)
			j++
			continue
		}
		return b.String(), j + 1, nil
	}
	return "", 0, errUnterminatedQuote
}
