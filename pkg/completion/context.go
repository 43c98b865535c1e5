package completion

import (
	"strings"
	"unicode"
)

// Context describes the token under the cursor. It is derived from the live
// line on every request and never stored.
type Context struct {
	Line         string
	CursorPos    int
	CurrentWord  string
	CommandToken string
}

// InCommandPosition reports whether the cursor is still inside the first token.
func (c Context) InCommandPosition() bool {
	return c.CursorPos <= len(c.CommandToken)
}

// ContextAt extracts the cursor context. ok is false when the character at the
// cursor is a space, where no completion applies.
func ContextAt(line string, cursor int) (ctx Context, ok bool) {
	cursor = clamp(cursor, 0, len(line))
	if cursor < len(line) && line[cursor] == ' ' {
		return Context{}, false
	}

	ctx = Context{
		Line:        line,
		CursorPos:   cursor,
		CurrentWord: currentWord(line, cursor),
	}
	if fields := strings.Fields(line[:cursor]); len(fields) > 0 {
		ctx.CommandToken = fields[0]
	}
	return ctx, true
}

func currentWord(line string, cursor int) string {
	if cursor > 0 && isSpace(line[cursor-1]) && strings.TrimSpace(line[cursor:]) == "" {
		return ""
	}

	start := cursor
	for start > 0 && !isSpace(line[start-1]) {
		start--
	}
	end := cursor
	for end < len(line) && !isSpace(line[end]) {
		end++
	}
	return line[start:end]
}

func isSpace(b byte) bool {
	return unicode.IsSpace(rune(b))
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
