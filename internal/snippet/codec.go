package snippet

import (
	"errors"
	"strings"
)

// ErrSyntax is returned when any line of the store text is malformed.
// A single bad line fails the whole decode.
var ErrSyntax = errors.New("syntax error")

// Decode parses store text into entries, one per line.
//
// Each line has the form `<name> '<value>'`. The name is everything before
// the first delimiter; the value is the remainder with exactly one leading
// and one trailing delimiter stripped. Empty text decodes to nil with no
// error.
func Decode(text string) ([]Entry, error) {
	if text == "" {
		return nil, nil
	}

	text = strings.TrimSuffix(text, "\n")

	var entries []Entry
	for _, line := range strings.Split(text, "\n") {
		e, ok := decodeLine(line)
		if !ok {
			return nil, ErrSyntax
		}
		entries = append(entries, e)
	}

	return entries, nil
}

func decodeLine(line string) (Entry, bool) {
	pos := strings.IndexRune(line, Delimiter)
	if pos <= 0 {
		return Entry{}, false
	}

	name := strings.TrimSpace(line[:pos])
	if name == "" {
		return Entry{}, false
	}

	value := strings.TrimSpace(line[pos:])
	value, ok := strings.CutPrefix(value, string(Delimiter))
	if !ok {
		return Entry{}, false
	}
	value, ok = strings.CutSuffix(value, string(Delimiter))
	if !ok {
		return Entry{}, false
	}

	return Entry{Name: name, Value: value}, true
}

// Encode serializes entries to store text, one `<name> '<value>'` line each.
// Values are written as-is; a value containing the delimiter will not
// decode back to the same entry.
func Encode(entries []Entry) string {
	var sb strings.Builder
	for _, e := range entries {
		sb.WriteString(e.Name)
		sb.WriteString(" ")
		sb.WriteRune(Delimiter)
		sb.WriteString(e.Value)
		sb.WriteRune(Delimiter)
		sb.WriteString("\n")
	}
	return sb.String()
}
