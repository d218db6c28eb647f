package image

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/alecthomas/participle/v2/lexer"
)

type ParseError struct {
	Message string
	Pos     lexer.Position
	Source  string
	Help    string
	Snippet string // offending token, underlined in the report
}

func (e *ParseError) Error() string {
	return formatError(e)
}

func formatError(err *ParseError) string {
	var b strings.Builder

	fmt.Fprintf(&b, "\x1b[1;31mimage error\x1b[0m: %s\n", err.Message)
	fmt.Fprintf(&b, "\x1b[1;34m-->\x1b[0m %s:%d:%d\n", err.Pos.Filename, err.Pos.Line, err.Pos.Column)

	lines := strings.Split(err.Source, "\n")
	if err.Pos.Line > 0 && err.Pos.Line <= len(lines) {
		// Columns count runes, so the window is cut on runes too.
		line := []rune(lines[err.Pos.Line-1])
		prefix, suffix := "", ""
		start := 0
		// Images are usually one long line; show a window around the column.
		if err.Pos.Column > 40 {
			start = min(err.Pos.Column-40, len(line))
			line = line[start:]
			prefix = "…"
			start--
		}
		if len(line) > 80 {
			line = line[:80]
			suffix = "…"
		}
		fmt.Fprintf(&b, "%4d | %s%s%s\n", err.Pos.Line, prefix, string(line), suffix)

		col := err.Pos.Column - start
		if col < 1 {
			col = 1
		}
		pointer := strings.Repeat(" ", col-1) + "\x1b[1;31m^"
		if n := utf8.RuneCountInString(err.Snippet); n > 1 {
			pointer += strings.Repeat("~", n-1)
		}
		fmt.Fprintf(&b, "     | %s\x1b[0m\n", pointer)
	}

	if err.Help != "" {
		fmt.Fprintf(&b, "\n\x1b[1;32mhelp\x1b[0m: %s\n", err.Help)
	}
	return b.String()
}
