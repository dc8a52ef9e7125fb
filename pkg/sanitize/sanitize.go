// Package sanitize rewrites raw generation-service replies into clean
// ANSI terminal text through an ordered sequence of rewrite rules.
package sanitize

import (
	"regexp"
	"strings"
)

const (
	ansiBold  = "\x1b[1m"
	ansiReset = "\x1b[0m"
)

// Rule is one pure text rewrite in the pipeline.
type Rule struct {
	Name  string
	Apply func(string) string
}

// Pipeline is a fixed, order-sensitive rule sequence. Later rules
// assume earlier ones already fired: unescaping can surface text the
// note rule must see, and the color-tag rule matches the shape the
// bold rule leaves behind.
type Pipeline []Rule

// New returns the standard pipeline. With colors disabled the same
// rules run and a final pass strips every ANSI sequence, so markers
// are still consumed on the way to plain text.
func New(colors bool) Pipeline {
	p := Pipeline{
		{Name: "strip-think", Apply: stripThink},
		{Name: "unescape", Apply: unescape},
		{Name: "strip-note", Apply: stripNote},
		{Name: "strip-fences", Apply: stripFences},
		{Name: "bold", Apply: boldSpans},
		{Name: "color-bold", Apply: colorBoldSpans},
		{Name: "table-punctuation", Apply: stripTablePunctuation},
	}
	if !colors {
		p = append(p, Rule{Name: "strip-ansi", Apply: stripANSI})
	}
	return append(p, Rule{Name: "trim", Apply: strings.TrimSpace})
}

// Run applies every rule in order. A rule with nothing to match is a
// no-op; the pipeline never fails.
func (p Pipeline) Run(reply string) string {
	for _, r := range p {
		reply = r.Apply(reply)
	}
	return reply
}

var thinkRE = regexp.MustCompile(`(?s)<think>.*?</think>`)

func stripThink(s string) string {
	return thinkRE.ReplaceAllString(s, "")
}

// unescape rewrites backslash escapes that arrive as literal text.
// Recognized: \\ \n \t \r and the 4-character \033 for ESC. Anything
// else keeps the backslash and the character after it. Not safe to
// re-apply.
func unescape(s string) string {
	var sb strings.Builder
	sb.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if s[i] != '\\' || i+1 == len(s) {
			sb.WriteByte(s[i])
			continue
		}
		switch {
		case s[i+1] == '\\':
			sb.WriteByte('\\')
			i++
		case s[i+1] == 'n':
			sb.WriteByte('\n')
			i++
		case s[i+1] == 't':
			sb.WriteByte('\t')
			i++
		case s[i+1] == 'r':
			sb.WriteByte('\r')
			i++
		case strings.HasPrefix(s[i+1:], "033"):
			sb.WriteByte(0x1b)
			i += 3
		default:
			sb.WriteByte('\\')
		}
	}
	return sb.String()
}

// stripNote drops a trailing remark: newline(s), a line starting with
// Note:, and everything after it.
var noteRE = regexp.MustCompile(`(?s)\n+Note:.*`)

func stripNote(s string) string {
	return noteRE.ReplaceAllString(s, "")
}

var (
	fenceBlockRE = regexp.MustCompile("(?s)```[a-zA-Z0-9]*\n?.*?```")
	fenceMarkRE  = regexp.MustCompile("```")
)

// stripFences removes fenced code blocks, content included, then any
// stray unbalanced fence markers.
func stripFences(s string) string {
	s = fenceBlockRE.ReplaceAllString(s, "")
	return fenceMarkRE.ReplaceAllString(s, "")
}

var boldMarkerRE = regexp.MustCompile(`\*\*([^*]+)\*\*`)

func boldSpans(s string) string {
	return boldMarkerRE.ReplaceAllString(s, ansiBold+"$1"+ansiReset)
}

// colorTags lists the recognized color names. Anything else stays
// literal text.
var colorTags = []struct {
	name string
	code string
}{
	{"red", "\x1b[31m"},
	{"green", "\x1b[32m"},
	{"yellow", "\x1b[33m"},
	{"blue", "\x1b[34m"},
}

type colorPattern struct {
	re   *regexp.Regexp
	code string
}

// colorBoldREs match the shape boldSpans leaves behind:
// name[ESC[1m text ESC[0m].
var colorBoldREs = func() []colorPattern {
	ps := make([]colorPattern, len(colorTags))
	for i, c := range colorTags {
		ps[i] = colorPattern{
			re: regexp.MustCompile(
				c.name + `\[` + regexp.QuoteMeta(ansiBold) + `(.*?)` + regexp.QuoteMeta(ansiReset) + `\]`),
			code: c.code,
		}
	}
	return ps
}()

func colorBoldSpans(s string) string {
	for _, p := range colorBoldREs {
		s = p.re.ReplaceAllString(s, p.code+ansiBold+"$1"+ansiReset)
	}
	return s
}

var (
	tableSepRE    = regexp.MustCompile(`^\|[- ]+(\|[- ]+)*\|$`)
	tableBorderRE = regexp.MustCompile(`^\|_+\|$`)
)

// stripTablePunctuation cleans residual markdown tables line by line:
// separator and border rows are dropped whole, remaining lines lose a
// leading "| " and trailing " |", and interior " | " dividers become
// two spaces.
func stripTablePunctuation(s string) string {
	lines := strings.Split(s, "\n")
	kept := make([]string, 0, len(lines))
	for _, line := range lines {
		if tableSepRE.MatchString(line) || tableBorderRE.MatchString(line) {
			continue
		}
		line = strings.TrimPrefix(line, "| ")
		line = strings.TrimSuffix(line, " |")
		line = strings.ReplaceAll(line, " | ", "  ")
		kept = append(kept, line)
	}
	return strings.Join(kept, "\n")
}

var ansiRE = regexp.MustCompile(`\x1b\[[0-9;]*m`)

func stripANSI(s string) string {
	return ansiRE.ReplaceAllString(s, "")
}
