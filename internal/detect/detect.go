// Package detect classifies piped input by structural shape.
package detect

import (
	"encoding/json"
	"strings"
)

// Kind represents the structural shape of a piece of input.
type Kind int

const (
	PlainText Kind = iota
	JSON            // whole input is a single JSON object or array
	Table           // whitespace-delimited rows with a uniform column count
)

func (k Kind) String() string {
	switch k {
	case JSON:
		return "json"
	case Table:
		return "table"
	default:
		return "text"
	}
}

// classifiers run in order; the first match wins.
var classifiers = []struct {
	kind  Kind
	match func(string) bool
}{
	{JSON, isJSON},
	{Table, isTable},
}

// Detect classifies input. Empty input and anything no classifier
// claims fall back to PlainText.
func Detect(input string) Kind {
	if input == "" {
		return PlainText
	}
	for _, c := range classifiers {
		if c.match(input) {
			return c.kind
		}
	}
	return PlainText
}

// isJSON reports whether the whole input parses as one JSON document
// with an object or array at the top level. Bare scalars don't count.
func isJSON(input string) bool {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" || (trimmed[0] != '{' && trimmed[0] != '[') {
		return false
	}
	return json.Valid([]byte(trimmed))
}

// isTable reports whether every line splits into the same number of
// whitespace-delimited fields as the first line, with at least two
// rows and two columns. A single line is never a table.
func isTable(input string) bool {
	lines := strings.Split(strings.TrimRight(input, "\n"), "\n")
	if len(lines) < 2 {
		return false
	}
	cols := len(strings.Fields(lines[0]))
	if cols < 2 {
		return false
	}
	for _, line := range lines[1:] {
		if len(strings.Fields(line)) != cols {
			return false
		}
	}
	return true
}
