package render

import (
	"strings"
	"testing"

	"github.com/mattn/go-runewidth"
)

func TestTable_AlignsColumns(t *testing.T) {
	got := Table("name age\nalice 30\nbob 25", 80)
	want := "name   age  \nalice  30   \nbob    25   \n"
	if got != want {
		t.Errorf("Table() = %q, want %q", got, want)
	}
}

func TestTable_UniformRowWidth(t *testing.T) {
	got := Table("ID NAME STATE\n1 postgres running\n23 redis stopped", 80)
	lines := strings.Split(strings.TrimRight(got, "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected 3 rows, got %d:\n%s", len(lines), got)
	}
	width := runewidth.StringWidth(lines[0])
	for i, line := range lines[1:] {
		if got := runewidth.StringWidth(line); got != width {
			t.Errorf("row %d width = %d, want %d", i+1, got, width)
		}
	}
}

func TestTable_CollapsesWhitespaceRuns(t *testing.T) {
	got := Table("a     b\nc\t\td", 80)
	want := "a  b  \nc  d  \n"
	if got != want {
		t.Errorf("Table() = %q, want %q", got, want)
	}
}

func TestTable_ShrinksToFit(t *testing.T) {
	wide := strings.Repeat("x", 40)
	input := strings.Join([]string{
		wide + " " + wide + " " + wide,
		wide + " " + wide + " " + wide,
	}, "\n")

	got := Table(input, 80)
	lines := strings.Split(strings.TrimRight(got, "\n"), "\n")

	// total 3*(40+2)=126 over the 80 target shrinks each column by
	// ceil((126-80+3)/3)=17 down to 23, so rows render 3*25=75 wide.
	for i, line := range lines {
		if w := runewidth.StringWidth(line); w != 75 {
			t.Errorf("row %d width = %d, want 75", i, w)
		}
	}
	if !strings.Contains(got, strings.Repeat("x", 23)+"  ") {
		t.Errorf("expected cells truncated to 23 chars:\n%s", got)
	}
	if strings.Contains(got, strings.Repeat("x", 24)) {
		t.Errorf("found cell wider than shrunk column:\n%s", got)
	}
}

func TestTable_ShrinkFloor(t *testing.T) {
	// Ten 6-wide columns total 80 padded; a 40 target would shrink
	// them to 1, but the floor holds every column at 5.
	cell := strings.Repeat("y", 6)
	row := strings.TrimSpace(strings.Repeat(cell+" ", 10))
	got := Table(row+"\n"+row, 40)

	lines := strings.Split(strings.TrimRight(got, "\n"), "\n")
	for i, line := range lines {
		if w := runewidth.StringWidth(line); w != 70 {
			t.Errorf("row %d width = %d, want 10*(5+2)=70", i, w)
		}
	}
	if strings.Contains(got, cell) {
		t.Errorf("expected cells truncated to the floor width:\n%s", got)
	}
}

func TestTable_ShrinkNeverWidensNarrowColumns(t *testing.T) {
	got := Table("aaaaaaaaaa bb\ncccccccccc dd", 10)
	want := "aaaaaa  bb  \ncccccc  dd  \n"
	if got != want {
		t.Errorf("Table() = %q, want %q", got, want)
	}
}

func TestTable_Empty(t *testing.T) {
	if got := Table("", 80); got != "" {
		t.Errorf("Table(\"\") = %q, want empty", got)
	}
	if got := Table("\n\n  \n", 80); got != "" {
		t.Errorf("Table(blank lines) = %q, want empty", got)
	}
}

func TestTable_SkipsBlankLines(t *testing.T) {
	got := Table("a b\n\nc d", 80)
	want := "a  b  \nc  d  \n"
	if got != want {
		t.Errorf("Table() = %q, want %q", got, want)
	}
}

func TestTable_IgnoresCellsBeyondFirstRow(t *testing.T) {
	got := Table("a b\nc d extra", 80)
	want := "a  b  \nc  d  \n"
	if got != want {
		t.Errorf("Table() = %q, want %q", got, want)
	}
}

func TestTable_NewlineTerminated(t *testing.T) {
	got := Table("k v\n1 2", 80)
	if !strings.HasSuffix(got, "\n") {
		t.Errorf("expected trailing newline, got %q", got)
	}
}
