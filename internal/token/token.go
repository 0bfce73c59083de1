package token

// Token is one indivisible lexical fragment: either a quoted string
// including both delimiters, or a maximal run of non-whitespace,
// non-quote characters.
type Token string

// Quoted reports whether the token carries a string delimiter on both ends.
func (t Token) Quoted() bool {
	return len(t) >= 2 && t[0] == '"' && t[len(t)-1] == '"'
}

// Unquote returns the token text with the surrounding delimiters removed.
// Only meaningful when Quoted reports true.
func (t Token) Unquote() string {
	return string(t[1 : len(t)-1])
}
