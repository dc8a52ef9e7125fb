// Package render turns classified input into aligned, width-aware terminal text.
package render

// DefaultWidth is assumed when the terminal size is unavailable.
const DefaultWidth = 80
