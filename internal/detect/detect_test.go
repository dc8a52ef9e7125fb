package detect

import "testing"

func TestDetect_JSONObject(t *testing.T) {
	input := `{"name": "disk0", "size": 512, "healthy": true}`
	if got := Detect(input); got != JSON {
		t.Errorf("expected JSON, got %v", got)
	}
}

func TestDetect_JSONArray(t *testing.T) {
	input := `[{"pid": 1, "cmd": "init"}, {"pid": 2, "cmd": "kthreadd"}]`
	if got := Detect(input); got != JSON {
		t.Errorf("expected JSON, got %v", got)
	}
}

func TestDetect_JSONLeadingWhitespace(t *testing.T) {
	input := "\n  {\"ok\": true}\n"
	if got := Detect(input); got != JSON {
		t.Errorf("expected JSON with leading whitespace, got %v", got)
	}
}

func TestDetect_JSONScalarFallsThrough(t *testing.T) {
	// Bare scalars are valid JSON but are never classified as such.
	for _, input := range []string{"42", `"hello"`, "true", "null"} {
		if got := Detect(input); got == JSON {
			t.Errorf("Detect(%q) = JSON, want fallthrough", input)
		}
	}
}

func TestDetect_InvalidJSONFallsThrough(t *testing.T) {
	input := `{"unterminated": `
	if got := Detect(input); got != PlainText {
		t.Errorf("expected PlainText for invalid JSON, got %v", got)
	}
}

func TestDetect_Table(t *testing.T) {
	input := "name age\nalice 30\nbob 25"
	if got := Detect(input); got != Table {
		t.Errorf("expected Table, got %v", got)
	}
}

func TestDetect_TableTrailingNewline(t *testing.T) {
	input := "PID TTY TIME\n1 ? 00:00:01\n2 ? 00:00:00\n"
	if got := Detect(input); got != Table {
		t.Errorf("expected Table with trailing newline, got %v", got)
	}
}

func TestDetect_TableCollapsedWhitespace(t *testing.T) {
	input := "NAME    SIZE   USED\nsda     512G   100G\nsdb     1T     900G"
	if got := Detect(input); got != Table {
		t.Errorf("expected Table with aligned columns, got %v", got)
	}
}

func TestDetect_SingleLineNeverTable(t *testing.T) {
	input := "name age city"
	if got := Detect(input); got != PlainText {
		t.Errorf("expected PlainText for single line, got %v", got)
	}
}

func TestDetect_SingleColumnNeverTable(t *testing.T) {
	input := "alpha\nbeta\ngamma"
	if got := Detect(input); got != PlainText {
		t.Errorf("expected PlainText for single column, got %v", got)
	}
}

func TestDetect_RaggedRowsNeverTable(t *testing.T) {
	input := "name age\nalice 30 paris\nbob 25"
	if got := Detect(input); got != PlainText {
		t.Errorf("expected PlainText for ragged rows, got %v", got)
	}
}

func TestDetect_Empty(t *testing.T) {
	if got := Detect(""); got != PlainText {
		t.Errorf("expected PlainText for empty input, got %v", got)
	}
}

func TestDetect_ProseIsPlainText(t *testing.T) {
	input := "error: connection refused\nretrying in 5 seconds with exponential backoff"
	if got := Detect(input); got != PlainText {
		t.Errorf("expected PlainText for prose, got %v", got)
	}
}

func TestKind_String(t *testing.T) {
	cases := []struct {
		kind Kind
		want string
	}{
		{JSON, "json"},
		{Table, "table"},
		{PlainText, "text"},
	}
	for _, c := range cases {
		if got := c.kind.String(); got != c.want {
			t.Errorf("Kind(%d).String() = %q, want %q", c.kind, got, c.want)
		}
	}
}
