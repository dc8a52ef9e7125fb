package render

import (
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/charmbracelet/lipgloss"
)

const highlightStyle = "monokai"

// HighlightJSON colors an already-rendered JSON document for terminal
// display. Tokens carrying the style's base text color keep the
// terminal default. Any tokenization problem returns the input as-is.
func HighlightJSON(s string) string {
	lexer := lexers.Get("json")
	if lexer == nil {
		return s
	}
	lexer = chroma.Coalesce(lexer)

	tokens, err := chroma.Tokenise(lexer, nil, s)
	if err != nil {
		return s
	}

	style := styles.Get(highlightStyle)
	base := style.Get(chroma.Text).Colour

	var sb strings.Builder
	for _, tok := range tokens {
		if tok.Type == chroma.EOFType {
			break
		}
		entry := style.Get(tok.Type)
		if !entry.Colour.IsSet() || entry.Colour == base {
			sb.WriteString(tok.Value)
			continue
		}
		st := lipgloss.NewStyle().Foreground(lipgloss.Color(entry.Colour.String()))
		if entry.Bold == chroma.Yes {
			st = st.Bold(true)
		}
		sb.WriteString(st.Render(tok.Value))
	}
	return sb.String()
}
