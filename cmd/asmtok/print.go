package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/Urethramancer/asm6809/lexer"
)

const (
	ansiReset   = "\x1b[0m"
	ansiDim     = "\x1b[2m"
	ansiInvalid = "\x1b[4;31m"
)

var palette = map[lexer.Kind]string{
	lexer.Symbol:    "\x1b[93m",
	lexer.OpCode:    "\x1b[94m",
	lexer.Number:    "\x1b[95m",
	lexer.Reference: "\x1b[96m",
	lexer.Operator:  "\x1b[37m",
	lexer.String:    "\x1b[32m",
	lexer.FileName:  "\x1b[92m",
	lexer.Comment:   "\x1b[90m",
}

// printer renders scanned lines either as highlighted source or as a token table.
type printer struct {
	color bool
}

func (p printer) print(w io.Writer, n int, src string, line lexer.Line) error {
	var err error
	if p.color {
		_, err = fmt.Fprintln(w, highlight(src, line))
	} else {
		_, err = io.WriteString(w, table(n, line))
	}
	return err
}

// table lists each token of line n on its own row.
func table(n int, line lexer.Line) string {
	var b strings.Builder
	if line.LineNumber != "" {
		fmt.Fprintf(&b, "%d\t-\t-\tlinenum\t%q\n", n, line.LineNumber)
	}
	for _, t := range line.Tokens {
		fmt.Fprintf(&b, "%d\t%d\t%d\t%s\t%q", n, t.Start, t.Length, t.Kind, t.Text)
		if t.Kind == lexer.Symbol {
			if !t.Valid {
				b.WriteString("\tinvalid")
			}
			if t.Local {
				b.WriteString("\tlocal")
			}
		}
		b.WriteByte('\n')
	}
	if !line.Valid {
		fmt.Fprintf(&b, "%d\t-\t-\terror\t\"malformed line\"\n", n)
	}
	return b.String()
}

// highlight wraps every token span of src in its colour. Text between
// tokens is written unchanged, except that a comment introducer takes the
// comment colour and a leading line number is dimmed.
func highlight(src string, line lexer.Line) string {
	if !line.Valid {
		return ansiInvalid + src + ansiReset
	}

	var b strings.Builder
	pos := 0
	if n := len(line.LineNumber); n > 0 {
		b.WriteString(ansiDim + line.LineNumber + ansiReset)
		pos = n
	}
	for _, t := range line.Tokens {
		gap := src[pos:t.Start]
		if t.Kind == lexer.Comment && strings.TrimSpace(gap) != "" {
			b.WriteString(palette[lexer.Comment] + gap + ansiReset)
		} else {
			b.WriteString(gap)
		}

		color := palette[t.Kind]
		if t.Kind == lexer.Symbol && !t.Valid {
			color = ansiInvalid
		}
		if t.Length > 0 {
			b.WriteString(color + t.Text + ansiReset)
		}
		pos = t.End()
	}
	b.WriteString(src[pos:])
	return b.String()
}
