package parser

import (
	"fmt"

	"gdspec/internal/token"
)

// Code identifies a parse failure class.
type Code uint8

const (
	// EndOfInput means a rule required a token but the stream was empty.
	EndOfInput Code = iota + 1
	// NotALiteral means the next token matches no literal form.
	NotALiteral
	// InvalidIdentifier means the next token violates identifier rules.
	InvalidIdentifier
)

func (c Code) String() string {
	switch c {
	case EndOfInput:
		return "EndOfInput"
	case NotALiteral:
		return "NotALiteral"
	case InvalidIdentifier:
		return "InvalidIdentifier"
	default:
		return fmt.Sprintf("Code(%d)", uint8(c))
	}
}

// Error is a structured parse failure. For NotALiteral and
// InvalidIdentifier, Tok is the offending token, which is still on the
// stream per the non-consumption contract.
type Error struct {
	Code Code
	Tok  token.Token
	Msg  string
}

func (e *Error) Error() string {
	if e.Tok == "" {
		return fmt.Sprintf("%s: %s", e.Code, e.Msg)
	}
	return fmt.Sprintf("%s: %s: %q", e.Code, e.Msg, string(e.Tok))
}
