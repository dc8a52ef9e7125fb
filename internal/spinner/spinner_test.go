package spinner

import (
	"bytes"
	"strings"
	"testing"

	"github.com/mattn/go-runewidth"
)

func TestRender_WritesFrameAndMessage(t *testing.T) {
	var buf bytes.Buffer
	s := New(&buf, "Waiting for llama3:8b", 0, "")
	s.render()

	out := buf.String()
	if !strings.HasPrefix(out, "\r\033[K") {
		t.Errorf("render must clear the line first, got %q", out)
	}
	if !strings.Contains(out, "Waiting for llama3:8b") {
		t.Errorf("render missing message, got %q", out)
	}
	if !strings.Contains(out, frames[0]) {
		t.Errorf("render missing first frame, got %q", out)
	}
}

func TestRender_ColorWrapsGlyph(t *testing.T) {
	var buf bytes.Buffer
	s := New(&buf, "thinking", 0, "\033[33m")
	s.render()

	out := buf.String()
	if !strings.Contains(out, "\033[33m"+frames[0]+"\033[0m") {
		t.Errorf("glyph not wrapped in color escapes: %q", out)
	}
}

func TestRender_TruncatesToWidth(t *testing.T) {
	var buf bytes.Buffer
	s := New(&buf, strings.Repeat("long message ", 10), 20, "")
	s.render()

	line := strings.TrimPrefix(buf.String(), "\r\033[K")
	if w := runewidth.StringWidth(line); w > 20 {
		t.Errorf("rendered width = %d, want <= 20 (%q)", w, line)
	}
}

func TestStartStop_EndsWithClearedLine(t *testing.T) {
	var buf bytes.Buffer
	s := New(&buf, "working", 0, "")
	s.Start()
	s.Stop()

	if !strings.HasSuffix(buf.String(), "\r\033[K") {
		t.Errorf("output must end with a line clear, got %q", buf.String())
	}
}

func TestStart_SecondCallIsNoop(t *testing.T) {
	var buf bytes.Buffer
	s := New(&buf, "working", 0, "")
	s.Start()
	s.Start()
	s.Stop()
}

func TestStop_WithoutStartReturns(t *testing.T) {
	s := New(&bytes.Buffer{}, "idle", 0, "")
	s.Stop()
}
