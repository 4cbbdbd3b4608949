// Package mnemonic classifies 6809/6309 instruction and lwasm-style
// pseudo-op mnemonics. All lookups are case-insensitive.
package mnemonic

import (
	"sort"
	"strings"
)

// Grammar selects how the operand field following a mnemonic is scanned.
type Grammar int

const (
	// GrammarNone means the mnemonic takes no operand.
	GrammarNone Grammar = iota
	// GrammarDelimitedString is a string bracketed by a delimiter of the author's choice, e.g. /text/.
	GrammarDelimitedString
	// GrammarFreeString is the remainder of the line taken verbatim.
	GrammarFreeString
	// GrammarFileName is a single path.
	GrammarFileName
	// GrammarExpression is an operand expression for the operand sub-lexer.
	GrammarExpression
)

var grammarNames = map[Grammar]string{
	GrammarNone:            "none",
	GrammarDelimitedString: "delimited string",
	GrammarFreeString:      "free string",
	GrammarFileName:        "file name",
	GrammarExpression:      "expression",
}

func (g Grammar) String() string {
	if s, ok := grammarNames[g]; ok {
		return s
	}
	return "unknown"
}

// Classify returns the operand grammar for a mnemonic. The categories are
// checked in a fixed order, so a mnemonic listed as both inherent and
// operand-taking (import) is inherent. Unrecognised mnemonics get
// GrammarExpression.
func Classify(m string) Grammar {
	m = strings.ToLower(m)
	switch {
	case inherent.has(m):
		return GrammarNone
	case delimitedString.has(m):
		return GrammarDelimitedString
	case freeString.has(m):
		return GrammarFreeString
	case fileName.has(m):
		return GrammarFileName
	default:
		return GrammarExpression
	}
}

// IsInherent reports whether m takes no operand.
func IsInherent(m string) bool { return inherent.has(strings.ToLower(m)) }

// TakesOperand reports whether m is a known mnemonic with an operand.
func TakesOperand(m string) bool { return operand.has(strings.ToLower(m)) }

// IsDelimitedString reports whether m takes a delimited string operand.
func IsDelimitedString(m string) bool { return delimitedString.has(strings.ToLower(m)) }

// IsFreeString reports whether m takes the rest of the line as a string.
func IsFreeString(m string) bool { return freeString.has(strings.ToLower(m)) }

// IsFileName reports whether m takes a file name operand.
func IsFileName(m string) bool { return fileName.has(strings.ToLower(m)) }

// IsPseudoOp reports whether m is an assembler directive rather than a CPU instruction.
func IsPseudoOp(m string) bool {
	m = strings.ToLower(m)
	return pseudoOps.has(m) || inherentPseudoOps.has(m) || freeString.has(m)
}

// IsKnown reports whether m appears in any table.
func IsKnown(m string) bool {
	m = strings.ToLower(m)
	return inherent.has(m) || operand.has(m) || freeString.has(m)
}

// Inherent returns the mnemonics that take no operand.
func Inherent() []string { return sorted(inherent) }

// Operand returns the mnemonics that take an operand.
func Operand() []string { return sorted(operand) }

// DelimitedString returns the directives taking a delimited string.
func DelimitedString() []string { return sorted(delimitedString) }

// FreeString returns the directives taking the rest of the line.
func FreeString() []string { return sorted(freeString) }

// FileName returns the directives taking a file name.
func FileName() []string { return sorted(fileName) }

// PseudoOps returns every directive.
func PseudoOps() []string { return sorted(pseudoOps, inherentPseudoOps, freeString) }

// Complete returns every known mnemonic beginning with prefix, sorted.
func Complete(prefix string) []string {
	prefix = strings.ToLower(prefix)
	var list []string
	for _, m := range sorted(inherent, operand, freeString) {
		if strings.HasPrefix(m, prefix) {
			list = append(list, m)
		}
	}
	return list
}

// sorted merges sets into a fresh, sorted, de-duplicated slice.
func sorted(sets ...set) []string {
	seen := make(set)
	var list []string
	for _, s := range sets {
		for m := range s {
			if !seen.has(m) {
				seen[m] = struct{}{}
				list = append(list, m)
			}
		}
	}
	sort.Strings(list)
	return list
}
