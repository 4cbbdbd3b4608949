package lexer

import (
	"fmt"
	"strings"
)

// Kind defines the lexical class of a token.
type Kind int

const (
	// Symbol is a label in the first field of a line.
	Symbol Kind = iota
	// OpCode is an instruction or pseudo-op mnemonic.
	OpCode
	// Number is a numeric literal or character constant.
	Number
	// Reference is a symbolic name inside an operand.
	Reference
	// Operator is punctuation inside an operand, or a label colon.
	Operator
	// String is a string operand.
	String
	// FileName is the operand of an include-style directive.
	FileName
	// Comment is comment text with its introducer removed.
	Comment
)

var kindNames = [...]string{
	Symbol:    "symbol",
	OpCode:    "opcode",
	Number:    "number",
	Reference: "reference",
	Operator:  "operator",
	String:    "string",
	FileName:  "filename",
	Comment:   "comment",
}

func (k Kind) String() string {
	if k >= 0 && int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// Token is one classified span of a source line.
type Token struct {
	Text string
	// Start is a byte offset into the line.
	Start int
	// Length is in bytes.
	Length int
	Kind   Kind
	// Valid is false for a malformed symbol.
	Valid bool
	// Local is set for symbols containing $, @ or ?.
	Local bool
}

// End returns the offset just past the token.
func (t Token) End() int {
	return t.Start + t.Length
}

func (t Token) String() string {
	var flags []string
	if !t.Valid {
		flags = append(flags, "invalid")
	}
	if t.Local {
		flags = append(flags, "local")
	}
	s := fmt.Sprintf("%s %q @%d+%d", t.Kind, t.Text, t.Start, t.Length)
	if len(flags) > 0 {
		s += " [" + strings.Join(flags, ",") + "]"
	}
	return s
}

func newToken(text string, start int, kind Kind) Token {
	return Token{Text: text, Start: start, Length: len(text), Kind: kind, Valid: true}
}

// newSymbol builds a Symbol token and judges its validity and locality.
func newSymbol(text string, start int) Token {
	t := newToken(text, start, Symbol)
	t.Valid = reSymbol.MatchString(text)
	t.Local = strings.ContainsAny(text, "$@?")
	return t
}

// Line is the result of scanning one source line.
type Line struct {
	// Valid is false when the line could not be scanned past a malformed
	// prefix. Tokens then holds whatever was emitted before that point.
	Valid bool
	// LineNumber holds the digits of a leading line number, if any.
	LineNumber string
	Tokens     []Token
}
