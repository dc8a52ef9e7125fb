package render

import (
	"bytes"
	"encoding/json"
	"strings"
)

// JSON re-serializes a JSON document, indented two spaces on narrow
// displays and four on wide ones. Classification precedes this call,
// but a parse failure still degrades to a literal error string instead
// of escaping the boundary.
func JSON(input string, width int) string {
	if width <= 0 {
		width = DefaultWidth
	}
	indent := "    "
	if width < 100 {
		indent = "  "
	}

	var buf bytes.Buffer
	if err := json.Indent(&buf, []byte(strings.TrimSpace(input)), "", indent); err != nil {
		return "Error: Invalid JSON ─ " + err.Error()
	}
	return buf.String()
}
