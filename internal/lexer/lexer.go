// Package lexer turns raw schema source text into the flat token sequence
// consumed by the grammar rules. The whole source is scanned eagerly; there
// is no streaming mode.
package lexer

import (
	"gdspec/internal/token"
)

// Tokenize scans source left to right and returns its tokens in source
// order. At each position, the first matching rule wins:
//
//  1. a whitespace run (space, tab, CR, LF) is skipped;
//  2. '"' opens a string token that runs to the next '"', delimiters
//     included, with no escape processing;
//  3. otherwise a maximal run of non-whitespace, non-quote bytes is one
//     token.
//
// Rule 3 covers booleans, numbers, keywords, and identifiers uniformly;
// the tokenizer records extent only and leaves classification to the
// parser. Empty source yields an empty sequence, which is not an error.
func Tokenize(source string) ([]token.Token, error) {
	cur := NewCursor([]byte(source))
	var tokens []token.Token
	for !cur.EOF() {
		switch b := cur.Peek(); {
		case isSpace(b):
			cur.Bump()
		case b == '"':
			tok, err := scanString(&cur)
			if err != nil {
				return nil, err
			}
			tokens = append(tokens, tok)
		default:
			tokens = append(tokens, scanBare(&cur))
		}
	}
	return tokens, nil
}

// scanBare consumes a maximal run of bytes that are neither whitespace nor
// a string delimiter.
func scanBare(cur *Cursor) token.Token {
	start := cur.Mark()
	for !cur.EOF() {
		b := cur.Peek()
		if isSpace(b) || b == '"' {
			break
		}
		cur.Bump()
	}
	return token.Token(cur.TextFrom(start))
}
