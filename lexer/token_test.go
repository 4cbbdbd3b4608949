package lexer_test

import (
	"testing"

	"github.com/Urethramancer/asm6809/lexer"
)

func TestKindString(t *testing.T) {
	tests := []struct {
		kind lexer.Kind
		want string
	}{
		{lexer.Symbol, "symbol"},
		{lexer.OpCode, "opcode"},
		{lexer.Number, "number"},
		{lexer.Reference, "reference"},
		{lexer.Operator, "operator"},
		{lexer.String, "string"},
		{lexer.FileName, "filename"},
		{lexer.Comment, "comment"},
		{lexer.Kind(42), "kind(42)"},
		{lexer.Kind(-1), "kind(-1)"},
	}
	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("got %s, want %s", got, tt.want)
		}
	}
}

func TestTokenString(t *testing.T) {
	tk := lexer.Token{Text: "a@", Start: 3, Length: 2, Kind: lexer.Symbol, Local: true}
	if got, want := tk.String(), `symbol "a@" @3+2 [invalid,local]`; got != want {
		t.Errorf("got %s, want %s", got, want)
	}
	if got := tk.End(); got != 5 {
		t.Errorf("got end %d, want 5", got)
	}
}
