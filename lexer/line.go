// Package lexer classifies single lines of 6809 assembly source into
// positioned tokens for syntax highlighting.
//
// A line has up to five fields:
//
//	[linenumber] [symbol][:] opcode operand comment
//
// Every token records its byte offset and length in the original line.
// Malformed symbols are still emitted, with Valid cleared. Nothing here
// keeps state between calls, so lines may be scanned concurrently.
package lexer

import (
	"strings"
	"unicode/utf8"

	"github.com/Urethramancer/asm6809/mnemonic"
)

// Parse returns the tokens of one line of source. The line should not
// carry its newline.
func Parse(text string) []Token {
	return ParseLine(text).Tokens
}

// ParseLine scans one line of source and reports whether it was well formed.
// A leading line number must be followed by whitespace or the end of the
// line; if it is not, the line is invalid and nothing after it is scanned.
func ParseLine(text string) Line {
	line := Line{Valid: true}
	if strings.TrimLeft(text, whitespace) == "" {
		return line
	}

	c := &cursor{text: text}
	if isDigit(c.peek()) {
		line.LineNumber, _ = c.consumeWhile(isDigit)
		if !c.done() {
			if !isSpace(c.peek()) {
				line.Valid = false
				return line
			}
			c.pos++
		}
	}
	if c.done() {
		return line
	}

	// Whole-line comment.
	if c.commentAhead() {
		c.skipSpace()
		line.Tokens = append(line.Tokens, c.comment())
		return line
	}

	line.Tokens = scanStatement(c, line.Tokens)
	return line
}

// scanStatement handles the symbol, opcode, operand and comment fields.
func scanStatement(c *cursor, tokens []Token) []Token {
	haveSymbol := false
	if !isFieldEnd(c.peek()) {
		text, start := c.consumeUntil(isFieldEnd)
		tokens = append(tokens, newSymbol(text, start))
		haveSymbol = true
		if c.done() {
			return tokens
		}
	}

	if c.peek() == ':' {
		if !haveSymbol {
			tokens = append(tokens, Token{Start: c.pos, Kind: Symbol})
		}
		tokens = append(tokens, newToken(":", c.pos, Operator))
		c.pos++
	}

	c.skipSpace()
	if c.done() {
		return tokens
	}
	if isCommentStart(c.peek()) {
		return append(tokens, c.comment())
	}

	op, start := c.consumeUntil(isSpace)
	tokens = append(tokens, newToken(op, start, OpCode))
	c.skipSpace()
	if c.done() {
		return tokens
	}

	if g := mnemonic.Classify(op); g != mnemonic.GrammarNone && c.peek() != ';' {
		tokens = c.operand(g, tokens)
		c.skipSpace()
		if c.done() {
			return tokens
		}
	}

	return append(tokens, c.comment())
}

// operand scans the operand field according to the opcode's grammar.
func (c *cursor) operand(g mnemonic.Grammar, tokens []Token) []Token {
	switch g {
	case mnemonic.GrammarDelimitedString:
		start := c.pos
		_, n := utf8.DecodeRuneInString(c.rest())
		delim := c.text[start : start+n]
		end := len(c.text)
		if i := strings.Index(c.text[start+n:], delim); i >= 0 {
			end = start + n + i + n
		}
		c.pos = end
		return append(tokens, newToken(c.text[start:end], start, String))

	case mnemonic.GrammarFreeString:
		start := c.pos
		text := strings.TrimRight(c.rest(), whitespace)
		c.pos = len(c.text)
		return append(tokens, newToken(text, start, String))

	case mnemonic.GrammarFileName:
		text, start := c.consumeUntil(isSpace)
		return append(tokens, newToken(text, start, FileName))

	default:
		text, start := c.consumeUntil(isSpace)
		return append(tokens, LexOperand(text, start)...)
	}
}

// comment consumes the rest of the line. One leading introducer is
// dropped, then surrounding whitespace; the token covers only what is left.
func (c *cursor) comment() Token {
	start := c.pos
	if isCommentStart(c.peek()) {
		start++
	}
	c.pos = len(c.text)

	body := c.text[start:]
	trimmed := strings.TrimLeft(body, whitespace)
	if trimmed == "" {
		return newToken("", start, Comment)
	}
	start += len(body) - len(trimmed)
	return newToken(strings.TrimRight(trimmed, whitespace), start, Comment)
}
