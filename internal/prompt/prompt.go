// Package prompt builds the generation-service prompt for each input shape.
//
// The plain-text prompt teaches the service the markup convention the
// sanitizer understands (** bold, color[**text**] tags, literal \033
// escapes), so the two change only in lockstep.
package prompt

import "github.com/Locotir/EnhanceOutput/internal/detect"

const (
	jsonPrompt = "Act as a data analyst do not talk to me. Analyze the provided JSON data and provide concise insights or conclusions. Highlight key points, patterns, trends, or notable observations. Do not repeat the data; focus on interpretation. Here's the data:"

	tablePrompt = "Act as a data analyst do not talk to me. Analyze the provided table data and provide concise, actionable insights or conclusions. identify potential issues, and suggest next steps if applicable. Do not repeat the data; focus on interpretation. Do not use markdown code blocks; output plain text only. Here's the data:"

	textPrompt = "Act as a command-line output enhancer do not talk to me. Transform the raw output from a command into a highly readable and visually appealing format suitable for a terminal and removing unnecessary data (resume the information), using ANSI escape codes (e.g., \\033[31m for red, \\033[32m for green, \\033[33m for yellow, \\033[34m for blue, \\033[1m for bold, \\033[0m to reset). For text wrapped in ** (e.g., **something**), apply bold formatting. For text prefixed with a color name followed by [**text**] (e.g., yellow[**All Clear!**]), apply the specified color and bold formatting. Supported colors are red (\\033[31m), green (\\033[32m), yellow (\\033[33m), blue (\\033[34m). Use icons (e.g., ★, ►, ✔) or emojis for clarity. Do not use markdown code blocks (e.g., ```) or any markdown formatting; output plain text with ANSI codes only. Here's the output to enhance:"
)

// Build returns the prompt for kind with the raw input appended after
// a blank line.
func Build(kind detect.Kind, input string) string {
	var p string
	switch kind {
	case detect.JSON:
		p = jsonPrompt
	case detect.Table:
		p = tablePrompt
	default:
		p = textPrompt
	}
	return p + "\n\n" + input
}
