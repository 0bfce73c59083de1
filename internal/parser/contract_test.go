package parser_test

import (
	"testing"

	"gdspec/internal/lexer"
	"gdspec/internal/parser"
	"gdspec/internal/token"
)

// TestEndToEndFiveValues mirrors the canonical usage: tokenize, build a
// stream, then consume four literals and one identifier in sequence.
func TestEndToEndFiveValues(t *testing.T) {
	toks, err := lexer.Tokenize(`true 42 123.0 "string" cool_identifier`)
	if err != nil {
		t.Fatalf("Tokenize: %v", err)
	}
	ts := token.NewStream(toks)

	var b parser.Literal
	if err := b.Parse(ts); err != nil {
		t.Fatalf("bool literal: %v", err)
	}
	if b.Kind != parser.LitBool || !b.Bool {
		t.Errorf("bool literal: got %v/%t", b.Kind, b.Bool)
	}

	var n parser.Literal
	if err := n.Parse(ts); err != nil {
		t.Fatalf("int literal: %v", err)
	}
	if n.Kind != parser.LitInt || n.Int != 42 {
		t.Errorf("int literal: got %v/%d", n.Kind, n.Int)
	}

	var f parser.Literal
	if err := f.Parse(ts); err != nil {
		t.Fatalf("float literal: %v", err)
	}
	if f.Kind != parser.LitFloat || f.Float != 123.0 {
		t.Errorf("float literal: got %v/%g", f.Kind, f.Float)
	}

	var s parser.Literal
	if err := s.Parse(ts); err != nil {
		t.Fatalf("string literal: %v", err)
	}
	if s.Kind != parser.LitString || s.Str != "string" {
		t.Errorf("string literal: got %v/%q", s.Kind, s.Str)
	}

	var id parser.Identifier
	if err := id.Parse(ts); err != nil {
		t.Fatalf("identifier: %v", err)
	}
	if id.Name != "cool_identifier" {
		t.Errorf("identifier: got %q", id.Name)
	}

	if !ts.EOF() {
		t.Errorf("stream not empty after five parses, Len=%d", ts.Len())
	}
}

// TestFailedParseLeavesStreamIntact checks the backtracking contract: a
// failed Parse must not change what the next rule sees.
func TestFailedParseLeavesStreamIntact(t *testing.T) {
	toks := []token.Token{"not-a-literal!", "42"}
	ts := token.NewStream(toks)
	before := ts.Len()

	var lit parser.Literal
	if err := lit.Parse(ts); err == nil {
		t.Fatal("expected literal parse to fail")
	}
	if ts.Len() != before {
		t.Fatalf("stream length changed across failed parse: %d -> %d", before, ts.Len())
	}

	var id parser.Identifier
	if err := id.Parse(ts); err == nil {
		t.Fatal("expected identifier parse to fail")
	}
	if ts.Len() != before {
		t.Fatalf("stream length changed across failed parse: %d -> %d", before, ts.Len())
	}

	front, _ := ts.Peek()
	if front != toks[0] {
		t.Errorf("front token changed across failures: got %q, want %q", front, toks[0])
	}
}

// TestBacktrackLiteralThenIdentifier retries the identifier rule at the
// position where the literal rule failed.
func TestBacktrackLiteralThenIdentifier(t *testing.T) {
	ts := token.NewStream([]token.Token{"player_name"})

	var lit parser.Literal
	err := lit.Parse(ts)
	expectParseErr(t, err, parser.NotALiteral)

	var id parser.Identifier
	if err := id.Parse(ts); err != nil {
		t.Fatalf("identifier retry after literal failure: %v", err)
	}
	if id.Name != "player_name" {
		t.Errorf("identifier retry: got %q", id.Name)
	}
	if !ts.EOF() {
		t.Errorf("stream not empty after retry, Len=%d", ts.Len())
	}
}

// Literal and Identifier both satisfy the Node contract; composites rely
// on being able to hold children behind it.
var (
	_ parser.Node = (*parser.Literal)(nil)
	_ parser.Node = (*parser.Identifier)(nil)
)
