package parser

import "gdspec/internal/token"

// Identifier is a parsed name: the first character is an ASCII letter or
// underscore, the rest are ASCII letters, digits, or underscores, and it
// is never empty. Keywords are not reserved here: "true" is a lexically
// valid Identifier too, and the composite rule choosing between Literal
// and Identifier at a given position decides which to try first.
type Identifier struct {
	Name string
}

// Parse validates the next token against the identifier character rules,
// then consumes it. On InvalidIdentifier the token stays on the stream.
func (id *Identifier) Parse(ts *token.Stream) error {
	tok, ok := ts.Peek()
	if !ok {
		return &Error{Code: EndOfInput, Msg: "expected an identifier"}
	}
	if len(tok) == 0 {
		return &Error{Code: InvalidIdentifier, Tok: tok, Msg: "empty identifier"}
	}
	if !isIdentStart(tok[0]) {
		return &Error{Code: InvalidIdentifier, Tok: tok, Msg: "identifier must start with a letter or underscore"}
	}
	for i := 1; i < len(tok); i++ {
		if !isIdentContinue(tok[i]) {
			return &Error{Code: InvalidIdentifier, Tok: tok, Msg: "identifier may only contain letters, digits, and underscores"}
		}
	}
	ts.Pop()
	id.Name = string(tok)
	return nil
}

func isIdentStart(b byte) bool {
	return b == '_' || (b >= 'A' && b <= 'Z') || (b >= 'a' && b <= 'z')
}

func isIdentContinue(b byte) bool {
	return isIdentStart(b) || isDec(b)
}

func isDec(b byte) bool { return b >= '0' && b <= '9' }
