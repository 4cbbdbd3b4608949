package lexer

import "strings"

const whitespace = " \t\r\n\v\f"

func isSpace(c byte) bool {
	return strings.IndexByte(whitespace, c) >= 0
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isCommentStart(c byte) bool {
	return c == '*' || c == ';' || c == '#'
}

func isFieldEnd(c byte) bool {
	return isSpace(c) || c == ':'
}

// cursor walks a line while keeping byte offsets into the original text.
type cursor struct {
	text string
	pos  int
}

func (c *cursor) done() bool {
	return c.pos >= len(c.text)
}

// peek returns the current byte, or 0 at the end of the line.
func (c *cursor) peek() byte {
	if c.done() {
		return 0
	}
	return c.text[c.pos]
}

func (c *cursor) rest() string {
	return c.text[c.pos:]
}

func (c *cursor) scanWhile(fn func(byte) bool) int {
	i := c.pos
	for ; i < len(c.text) && fn(c.text[i]); i++ {
	}
	return i - c.pos
}

// consumeWhile returns the run accepted by fn and its start offset.
func (c *cursor) consumeWhile(fn func(byte) bool) (string, int) {
	start := c.pos
	c.pos += c.scanWhile(fn)
	return c.text[start:c.pos], start
}

func (c *cursor) consumeUntil(fn func(byte) bool) (string, int) {
	return c.consumeWhile(func(b byte) bool { return !fn(b) })
}

func (c *cursor) skipSpace() {
	c.pos += c.scanWhile(isSpace)
}

// commentAhead reports whether only whitespace stands between the cursor
// and a comment introducer.
func (c *cursor) commentAhead() bool {
	i := c.pos + c.scanWhile(isSpace)
	return i < len(c.text) && isCommentStart(c.text[i])
}
