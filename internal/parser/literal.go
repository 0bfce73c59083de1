package parser

import (
	"strconv"
	"strings"

	"gdspec/internal/token"
)

// LiteralKind tags the variant held by a Literal.
type LiteralKind uint8

const (
	LitBool LiteralKind = iota + 1
	LitInt
	LitFloat
	LitString
)

func (k LiteralKind) String() string {
	switch k {
	case LitBool:
		return "bool"
	case LitInt:
		return "int"
	case LitFloat:
		return "float"
	case LitString:
		return "string"
	default:
		return "invalid"
	}
}

// Literal is a parsed constant value: a boolean, a 64-bit signed integer,
// a 64-bit float, or a string with its quote delimiters stripped. Kind
// selects which of the value fields is meaningful.
type Literal struct {
	Kind  LiteralKind
	Bool  bool
	Int   int64
	Float float64
	Str   string
}

// Parse classifies the next token, trying the boolean, integer, float, and
// string forms in that order. The integer form is checked strictly before
// the float form, so "42" is always an integer, and a token containing '.'
// never matches the integer form. A token of integer shape whose value does
// not fit in 64 bits fails rather than saturating. On failure the token
// stays on the stream.
func (l *Literal) Parse(ts *token.Stream) error {
	tok, ok := ts.Peek()
	if !ok {
		return &Error{Code: EndOfInput, Msg: "expected a literal"}
	}
	switch {
	case tok == "true" || tok == "false":
		l.Kind, l.Bool = LitBool, tok == "true"
	case isIntShape(string(tok)):
		n, err := strconv.ParseInt(string(tok), 10, 64)
		if err != nil {
			return &Error{Code: NotALiteral, Tok: tok, Msg: "integer literal out of 64-bit range"}
		}
		l.Kind, l.Int = LitInt, n
	case isFloatShape(string(tok)):
		f, err := strconv.ParseFloat(string(tok), 64)
		if err != nil {
			return &Error{Code: NotALiteral, Tok: tok, Msg: "malformed float literal"}
		}
		l.Kind, l.Float = LitFloat, f
	case tok.Quoted():
		l.Kind, l.Str = LitString, tok.Unquote()
	default:
		return &Error{Code: NotALiteral, Tok: tok, Msg: "not a literal"}
	}
	ts.Pop()
	return nil
}

// isIntShape reports whether s is an optional leading '-' followed by one
// or more decimal digits and nothing else.
func isIntShape(s string) bool {
	if len(s) > 0 && s[0] == '-' {
		s = s[1:]
	}
	if len(s) == 0 {
		return false
	}
	for i := 0; i < len(s); i++ {
		if !isDec(s[i]) {
			return false
		}
	}
	return true
}

// isFloatShape reports whether s is an optional leading '-', one or more
// digits, exactly one '.', and one or more digits. Forms like "1." or ".5"
// do not match.
func isFloatShape(s string) bool {
	if len(s) > 0 && s[0] == '-' {
		s = s[1:]
	}
	dot := strings.IndexByte(s, '.')
	if dot <= 0 || dot == len(s)-1 {
		return false
	}
	for i := 0; i < len(s); i++ {
		if i == dot {
			continue
		}
		if !isDec(s[i]) {
			return false
		}
	}
	return true
}
