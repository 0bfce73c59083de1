package driver

import (
	"fmt"

	"gdspec/internal/parser"
	"gdspec/internal/token"
)

// Value is one classified construct from a source file: exactly one of
// Lit and Ident is set.
type Value struct {
	Lit   *parser.Literal
	Ident *parser.Identifier
}

func (v Value) String() string {
	switch {
	case v.Lit != nil:
		switch v.Lit.Kind {
		case parser.LitBool:
			return fmt.Sprintf("bool(%t)", v.Lit.Bool)
		case parser.LitInt:
			return fmt.Sprintf("int(%d)", v.Lit.Int)
		case parser.LitFloat:
			return fmt.Sprintf("float(%g)", v.Lit.Float)
		case parser.LitString:
			return fmt.Sprintf("string(%q)", v.Lit.Str)
		}
	case v.Ident != nil:
		return fmt.Sprintf("ident(%s)", v.Ident.Name)
	}
	return "invalid"
}

// Classify consumes the tokens front to back, trying Literal at each
// position and backtracking to Identifier when the literal rule fails.
// The retry is sound because a failed Parse never consumes. A token that
// is neither stops the whole classification.
func Classify(toks []token.Token) ([]Value, error) {
	ts := token.NewStream(toks)
	var values []Value
	for !ts.EOF() {
		var lit parser.Literal
		if err := lit.Parse(ts); err == nil {
			values = append(values, Value{Lit: &lit})
			continue
		}
		var id parser.Identifier
		if err := id.Parse(ts); err != nil {
			return nil, err
		}
		values = append(values, Value{Ident: &id})
	}
	return values, nil
}

// ClassifyFile tokenizes path and classifies every token.
func ClassifyFile(path string) ([]Value, error) {
	toks, err := TokenizeFile(path)
	if err != nil {
		return nil, err
	}
	return Classify(toks)
}
