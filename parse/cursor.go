package parse

import "strings"

// Cursor is a position inside a source document. Every primitive returns
// a new cursor together with whether it matched; a Cursor is never
// modified in place and never copies the source text.
type Cursor struct {
	src string
	off int
}

// NewCursor returns a cursor at the start of src.
func NewCursor(src string) Cursor {
	return Cursor{src: src, off: 0}
}

// Offset returns the byte offset of the cursor within the source.
func (c Cursor) Offset() int {
	return c.off
}

// Rest returns the unconsumed text.
func (c Cursor) Rest() string {
	return c.src[c.off:]
}

// EOF reports whether all input has been consumed.
func (c Cursor) EOF() bool {
	return c.off >= len(c.src)
}

// Peek returns the next byte without consuming it.
func (c Cursor) Peek() (byte, bool) {
	if c.EOF() {
		return 0, false
	}

	return c.src[c.off], true
}

func (c Cursor) advance(n int) Cursor {
	c.off += n

	return c
}

// Take consumes the longest prefix whose bytes all satisfy pred.
func (c Cursor) Take(pred func(byte) bool) (Cursor, string) {
	n := 0
	for c.off+n < len(c.src) && pred(c.src[c.off+n]) {
		n++
	}

	return c.advance(n), c.src[c.off : c.off+n]
}

// SkipByte consumes ch if it is the next byte.
func (c Cursor) SkipByte(ch byte) (Cursor, bool) {
	if b, ok := c.Peek(); ok && b == ch {
		return c.advance(1), true
	}

	return c, false
}

// SkipString consumes s if the remaining text starts with it.
func (c Cursor) SkipString(s string) (Cursor, bool) {
	if strings.HasPrefix(c.Rest(), s) {
		return c.advance(len(s)), true
	}

	return c, false
}

// SkipWhitespace consumes spaces and tabs. Line breaks are not whitespace.
func (c Cursor) SkipWhitespace() (Cursor, bool) {
	next, s := c.Take(isWhitespace)

	return next, s != ""
}

// SkipLineBreaks consumes a run of line break characters.
func (c Cursor) SkipLineBreaks() (Cursor, bool) {
	next, s := c.Take(isLineBreak)

	return next, s != ""
}

// SkipComment consumes a '#' comment up to, not including, the line break.
func (c Cursor) SkipComment() (Cursor, bool) {
	next, ok := c.SkipByte('#')
	if !ok {
		return c, false
	}

	next, _ = next.Take(func(b byte) bool { return !isLineBreak(b) })

	return next, true
}

// Name consumes an identifier made of ASCII letters, digits and '_'.
func (c Cursor) Name() (Cursor, string) {
	return c.Take(isNameChar)
}

// Quoted consumes a double-quoted value and returns its raw contents.
// There is no escape processing. It does not match when the next byte is
// not a quote or when the closing quote is missing.
func (c Cursor) Quoted() (Cursor, string, bool) {
	start, ok := c.SkipByte('"')
	if !ok {
		return c, "", false
	}

	end := strings.IndexByte(start.Rest(), '"')
	if end < 0 {
		return c, "", false
	}

	return start.advance(end + 1), start.Rest()[:end], true
}

// Bare consumes an unquoted value.
func (c Cursor) Bare() (Cursor, string) {
	return c.Take(isBareChar)
}

// Pos resolves the cursor offset to a line, column and line text.
func (c Cursor) Pos() Position {
	line := 1
	lineStart := 0

	for i := 0; i < c.off && i < len(c.src); i++ {
		ch := c.src[i]
		if !isLineBreak(ch) {
			continue
		}

		if ch == '\r' && i+1 < len(c.src) && c.src[i+1] == '\n' {
			continue
		}

		line++
		lineStart = i + 1
	}

	lineEnd := lineStart
	for lineEnd < len(c.src) && !isLineBreak(c.src[lineEnd]) {
		lineEnd++
	}

	return Position{
		Offset:   c.off,
		Line:     line,
		Column:   c.off - lineStart + 1,
		LineText: c.src[lineStart:lineEnd],
	}
}

// Position locates a byte offset within a document. Line and Column are
// 1-based; Column counts bytes.
type Position struct {
	Offset   int
	Line     int
	Column   int
	LineText string
}

func isWhitespace(b byte) bool {
	return b == ' ' || b == '\t'
}

func isLineBreak(b byte) bool {
	return b == '\n' || b == '\r' || b == '\f' || b == '\v'
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

func isNameChar(b byte) bool {
	return isDigit(b) || b == '_' || (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}

func isBareChar(b byte) bool {
	switch b {
	case ',', ';', ']', '}', '#', '"':
		return false
	}

	return !isWhitespace(b) && !isLineBreak(b)
}
