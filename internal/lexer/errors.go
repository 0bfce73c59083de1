package lexer

import "fmt"

// Code identifies a tokenization failure class.
type Code uint8

const (
	// UnterminatedString means the input ended inside a quoted string.
	UnterminatedString Code = iota + 1
)

func (c Code) String() string {
	switch c {
	case UnterminatedString:
		return "UnterminatedString"
	default:
		return fmt.Sprintf("Code(%d)", uint8(c))
	}
}

// Error is a structured tokenization failure. It is fatal to the whole
// Tokenize call: no partial token sequence accompanies it. Offset is the
// byte offset of the construct that failed; for UnterminatedString that is
// the opening quote.
type Error struct {
	Code   Code
	Offset uint32
	Msg    string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s at offset %d: %s", e.Code, e.Offset, e.Msg)
}
