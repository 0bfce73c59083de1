package lexer

import "gdspec/internal/token"

// scanString consumes a quoted string, delimiters included. The minimal
// grammar has no escape sequences: the token ends at the first closing
// quote, and internal whitespace never splits it.
func scanString(cur *Cursor) (token.Token, error) {
	start := cur.Mark()
	cur.Bump() // opening '"'
	for !cur.EOF() {
		if cur.Bump() == '"' {
			return token.Token(cur.TextFrom(start)), nil
		}
	}
	return "", &Error{
		Code:   UnterminatedString,
		Offset: uint32(start),
		Msg:    "string literal is missing its closing quote",
	}
}
