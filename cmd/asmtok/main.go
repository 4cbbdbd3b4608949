package main

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/grimdork/climate/arg"

	"github.com/Urethramancer/asm6809/lexer"
)

func main() {
	opt := arg.New("asmtok")
	opt.SetDefaultHelp(true)
	opt.SetOption(arg.GroupDefault, "t", "tokens", "Print one row per token.", false, false, arg.VarBool, nil)
	opt.SetOption(arg.GroupDefault, "c", "color", "Print the source with ANSI highlighting.", false, false, arg.VarBool, nil)
	opt.SetOption(arg.GroupDefault, "i", "interactive", "Tokenize lines typed at a prompt.", false, false, arg.VarBool, nil)
	opt.SetPositional("FILE", "Assembly source to tokenize. Reads stdin when omitted.", "", false, arg.VarString)

	err := opt.Parse(os.Args[1:])
	if err != nil && err != arg.ErrNoArgs {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

	p := printer{color: useColor(opt.GetBool("tokens"), opt.GetBool("color"))}
	if opt.GetBool("interactive") {
		os.Exit(interactive(p))
	}

	name := opt.GetPosString("FILE")
	var in io.Reader = os.Stdin
	if name != "" && name != "-" {
		f, err := os.Open(name)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening input file: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		in = f
	} else {
		name = "stdin"
	}

	w := bufio.NewWriter(os.Stdout)
	err = tokenize(in, w, p)
	if ferr := w.Flush(); err == nil {
		err = ferr
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error tokenizing %s: %v\n", name, err)
		os.Exit(1)
	}
}

// useColor picks highlighted output unless a mode was forced.
func useColor(tokens, color bool) bool {
	switch {
	case color:
		return true
	case tokens:
		return false
	case os.Getenv("NO_COLOR") != "":
		return false
	default:
		return isTerminal(int(os.Stdout.Fd()))
	}
}

// tokenize scans every line of r and writes the result to w.
func tokenize(r io.Reader, w io.Writer, p printer) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	n := 0
	for scanner.Scan() {
		n++
		src := scanner.Text()
		if err := p.print(w, n, src, lexer.ParseLine(src)); err != nil {
			return err
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("line %d: %w", n+1, err)
	}
	return nil
}
