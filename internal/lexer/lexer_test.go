package lexer_test

import (
	"errors"
	"strings"
	"testing"

	"gdspec/internal/lexer"
	"gdspec/internal/token"
)

// mustTokenize tokenizes input and fails the test on a lexer error.
func mustTokenize(t *testing.T, input string) []token.Token {
	t.Helper()
	toks, err := lexer.Tokenize(input)
	if err != nil {
		t.Fatalf("Tokenize(%q) failed: %v", input, err)
	}
	return toks
}

// expectTokens checks the exact token sequence for an input.
func expectTokens(t *testing.T, input string, expected []string) {
	t.Helper()
	toks := mustTokenize(t, input)
	if len(toks) != len(expected) {
		t.Fatalf("Tokenize(%q): expected %d tokens, got %d: %v", input, len(expected), len(toks), toks)
	}
	for i, tok := range toks {
		if string(tok) != expected[i] {
			t.Errorf("Tokenize(%q): token %d: got %q, want %q", input, i, tok, expected[i])
		}
	}
}

func TestTokenizeSplitsOnWhitespace(t *testing.T) {
	tests := []struct {
		input    string
		expected []string
	}{
		{"", nil},
		{"   \t\n  ", nil},
		{"abc", []string{"abc"}},
		{"true 42 cool_identifier", []string{"true", "42", "cool_identifier"}},
		{"a\tb\nc\r\nd", []string{"a", "b", "c", "d"}},
		{"  leading and trailing  ", []string{"leading", "and", "trailing"}},
		{"record{x:int}", []string{"record{x:int}"}},
		{"-42 123.0", []string{"-42", "123.0"}},
	}
	for _, tt := range tests {
		expectTokens(t, tt.input, tt.expected)
	}
}

func TestTokenizeRejoinReproducesNormalizedInput(t *testing.T) {
	// For quote-free input, joining the tokens with single spaces must
	// reproduce the whitespace-normalized source.
	inputs := []string{
		"enum Color { RED GREEN BLUE }",
		"field\thealth\tint\n\nfield mana float",
		"  x  =  1.5  ",
	}
	for _, input := range inputs {
		toks := mustTokenize(t, input)
		texts := make([]string, len(toks))
		for i, tok := range toks {
			texts[i] = string(tok)
		}
		got := strings.Join(texts, " ")
		want := strings.Join(strings.Fields(input), " ")
		if got != want {
			t.Errorf("rejoin of %q: got %q, want %q", input, got, want)
		}
	}
}

func TestTokenizeQuotedStrings(t *testing.T) {
	tests := []struct {
		input    string
		expected []string
	}{
		{`"string"`, []string{`"string"`}},
		{`""`, []string{`""`}},
		{`"with  internal   spaces"`, []string{`"with  internal   spaces"`}},
		{`"tabs	and
newlines"`, []string{"\"tabs\tand\nnewlines\""}},
		{`name "display name" 7`, []string{"name", `"display name"`, "7"}},
		// A quote terminates a bare run without intervening whitespace.
		{`abc"def"`, []string{"abc", `"def"`}},
		{`"a""b"`, []string{`"a"`, `"b"`}},
	}
	for _, tt := range tests {
		expectTokens(t, tt.input, tt.expected)
	}
}

func TestTokenizeUnterminatedString(t *testing.T) {
	tests := []struct {
		input  string
		offset uint32
	}{
		{`"never closed`, 0},
		{`ok "broken`, 3},
		{`"`, 0},
		{`"a" "b`, 4},
	}
	for _, tt := range tests {
		toks, err := lexer.Tokenize(tt.input)
		if err == nil {
			t.Fatalf("Tokenize(%q): expected error, got tokens %v", tt.input, toks)
		}
		if toks != nil {
			t.Errorf("Tokenize(%q): expected no partial tokens, got %v", tt.input, toks)
		}
		var lexErr *lexer.Error
		if !errors.As(err, &lexErr) {
			t.Fatalf("Tokenize(%q): error is %T, want *lexer.Error", tt.input, err)
		}
		if lexErr.Code != lexer.UnterminatedString {
			t.Errorf("Tokenize(%q): code %v, want UnterminatedString", tt.input, lexErr.Code)
		}
		if lexErr.Offset != tt.offset {
			t.Errorf("Tokenize(%q): offset %d, want %d", tt.input, lexErr.Offset, tt.offset)
		}
	}
}

func TestTokenizeDoesNotClassify(t *testing.T) {
	// Booleans, numbers, and identifiers all come out as bare runs; only
	// extent is decided here.
	expectTokens(t, `true false 42 1.5 _name 1abc 1.2.3`,
		[]string{"true", "false", "42", "1.5", "_name", "1abc", "1.2.3"})
}
