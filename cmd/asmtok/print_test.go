package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/Urethramancer/asm6809/lexer"
)

func TestTable(t *testing.T) {
	got := table(3, lexer.ParseLine("10 ?x: lda #1"))
	want := strings.Join([]string{
		"3\t-\t-\tlinenum\t\"10\"",
		"3\t3\t2\tsymbol\t\"?x\"\tinvalid\tlocal",
		"3\t5\t1\toperator\t\":\"",
		"3\t7\t3\topcode\t\"lda\"",
		"3\t11\t1\toperator\t\"#\"",
		"3\t12\t1\tnumber\t\"1\"",
		"",
	}, "\n")
	if got != want {
		t.Errorf("got:\n%s\nwant:\n%s", got, want)
	}

	got = table(1, lexer.ParseLine("9x"))
	if want := "1\t-\t-\terror\t\"malformed line\"\n"; !strings.HasSuffix(got, want) {
		t.Errorf("got %q, want suffix %q", got, want)
	}
}

func TestHighlight(t *testing.T) {
	src := "start lda #$10 ; go"
	got := highlight(src, lexer.ParseLine(src))
	want := palette[lexer.Symbol] + "start" + ansiReset + " " +
		palette[lexer.OpCode] + "lda" + ansiReset + " " +
		palette[lexer.Operator] + "#" + ansiReset +
		palette[lexer.Number] + "$10" + ansiReset +
		palette[lexer.Comment] + " ; " + ansiReset +
		palette[lexer.Comment] + "go" + ansiReset
	if got != want {
		t.Errorf("got %q\nwant %q", got, want)
	}

	// Stripping the escapes must give back the source.
	for _, src := range []string{"00010 :\tnop", " fcc /a b/  * tail  ", "bad-sym rts", "7x"} {
		plain := stripANSI(highlight(src, lexer.ParseLine(src)))
		if plain != src {
			t.Errorf("got %q, want %q", plain, src)
		}
	}
}

func stripANSI(s string) string {
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		if s[i] == 0x1b {
			for i < len(s) && s[i] != 'm' {
				i++
			}
			continue
		}
		b.WriteByte(s[i])
	}
	return b.String()
}

func TestTokenize(t *testing.T) {
	src := "* header\n\tlda\t#1\n\n\trts\n"
	var out bytes.Buffer
	if err := tokenize(strings.NewReader(src), &out, printer{}); err != nil {
		t.Fatalf("tokenize failed: %v", err)
	}
	want := "1\t2\t6\tcomment\t\"header\"\n" +
		"2\t1\t3\topcode\t\"lda\"\n" +
		"2\t5\t1\toperator\t\"#\"\n" +
		"2\t6\t1\tnumber\t\"1\"\n" +
		"4\t1\t3\topcode\t\"rts\"\n"
	if out.String() != want {
		t.Errorf("got:\n%s\nwant:\n%s", out.String(), want)
	}
}

func TestUseColor(t *testing.T) {
	if !useColor(false, true) {
		t.Error("got plain output with --color")
	}
	if useColor(true, false) {
		t.Error("got colour with --tokens")
	}
	t.Setenv("NO_COLOR", "1")
	if useColor(false, false) {
		t.Error("got colour with NO_COLOR set")
	}
}

func TestCompleteMnemonic(t *testing.T) {
	got := completeMnemonic("loop: LDB")
	want := []string{"loop: ldb", "loop: ldbt"}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("got %s, want %s", got[i], want[i])
		}
	}
	if got := completeMnemonic("lda "); got != nil {
		t.Errorf("got %v, want nil", got)
	}
}
