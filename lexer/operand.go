package lexer

import (
	"regexp"
	"unicode/utf8"
)

// anchored compiles a matcher that only matches at the start of the input
// and prefers the longest alternative.
func anchored(expr string) *regexp.Regexp {
	re := regexp.MustCompile(`^(?:` + expr + `)`)
	re.Longest()
	return re
}

var (
	reCharConst = anchored(`(?s)'.|"..`)
	reHex       = anchored(`\$[0-9A-Fa-f]*|0[xX][0-9A-Fa-f]*|[0-9][0-9A-Fa-f]*[hH]`)
	reOctal     = anchored(`@[0-7]+|[0-7]+[qQoO]`)
	reBinary    = anchored(`%[01]+|[01]+[bB]`)
	reDecimal   = anchored(`&?[0-9]+`)
	reReference = anchored(`[A-Za-z_@$][A-Za-z0-9._@$?]*`)
	reOperator  = anchored(`&&|\|\||\+\+|--`)

	reSymbol = regexp.MustCompile(`^[A-Za-z_@$][A-Za-z0-9._@$?]*$`)
)

// matcher returns the byte length of the prefix of s it accepts, or 0.
type matcher struct {
	kind  Kind
	match func(s string) int
}

func regexMatcher(kind Kind, re *regexp.Regexp) matcher {
	return matcher{kind: kind, match: func(s string) int {
		if loc := re.FindStringIndex(s); loc != nil {
			return loc[1]
		}
		return 0
	}}
}

// anyRune always accepts one character.
func anyRune(s string) int {
	_, n := utf8.DecodeRuneInString(s)
	return n
}

// operandMatchers are tried in order. The first one to accept anything
// wins, so a leading $ is always hex and never the start of a reference.
var operandMatchers = []matcher{
	regexMatcher(Number, reCharConst),
	regexMatcher(Number, reHex),
	regexMatcher(Number, reOctal),
	regexMatcher(Number, reBinary),
	regexMatcher(Number, reDecimal),
	regexMatcher(Reference, reReference),
	regexMatcher(Operator, reOperator),
	{kind: Operator, match: anyRune},
}

// nextOperandToken classifies the prefix of s. It always consumes at least
// one byte of a non-empty s.
func nextOperandToken(s string) (Kind, int) {
	for _, m := range operandMatchers {
		if n := m.match(s); n > 0 {
			return m.kind, n
		}
	}
	// Unreachable for non-empty input, anyRune accepts everything.
	return Operator, len(s)
}

// LexOperand splits a single whitespace-free operand expression into
// numbers, references and operators. Offsets are shifted by offset so the
// tokens can be placed directly into the line they were taken from.
func LexOperand(operand string, offset int) []Token {
	var tokens []Token
	for pos := 0; pos < len(operand); {
		kind, n := nextOperandToken(operand[pos:])
		tokens = append(tokens, newToken(operand[pos:pos+n], offset+pos, kind))
		pos += n
	}
	return tokens
}
