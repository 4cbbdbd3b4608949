package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/peterh/liner"

	"github.com/Urethramancer/asm6809/lexer"
	"github.com/Urethramancer/asm6809/mnemonic"
)

const (
	historyFile = ".asmtok_history"
	prompt      = "asm> "
	banner      = "asmtok: type a line of 6809 source to see its tokens. Ctrl+C cancels input, Ctrl+D exits."
)

func historyPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, historyFile)
}

// completeMnemonic completes the last word of the input against the mnemonic tables.
func completeMnemonic(input string) []string {
	i := strings.LastIndexAny(input, " \t:") + 1
	head, word := input[:i], input[i:]
	if word == "" {
		return nil
	}
	var list []string
	for _, m := range mnemonic.Complete(word) {
		list = append(list, head+m)
	}
	return list
}

// interactive runs the prompt loop and returns the exit status.
func interactive(p printer) int {
	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)
	ln.SetCompleter(completeMnemonic)

	hist := historyPath()
	if hist != "" {
		if f, err := os.Open(hist); err == nil {
			ln.ReadHistory(f)
			f.Close()
		}
	}

	fmt.Println(banner)
	status := 0
	for n := 1; ; n++ {
		input, err := ln.Prompt(prompt)
		if errors.Is(err, liner.ErrPromptAborted) {
			continue
		}
		if errors.Is(err, io.EOF) {
			fmt.Println()
			break
		}
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error reading input: %v\n", err)
			status = 1
			break
		}
		if strings.TrimSpace(input) != "" {
			ln.AppendHistory(input)
		}
		if err := p.print(os.Stdout, n, input, lexer.ParseLine(input)); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing output: %v\n", err)
			status = 1
			break
		}
	}

	if hist != "" {
		if f, err := os.Create(hist); err == nil {
			ln.WriteHistory(f)
			f.Close()
		}
	}
	return status
}
