// Package dumpfmt renders token sequences and classified values for the
// CLI, in human-readable and machine formats.
package dumpfmt

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"github.com/vmihailenco/msgpack/v5"

	"gdspec/internal/token"
)

var (
	indexStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	stringStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	bareStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
)

// TokensPretty writes one line per token: index, token text, and whether
// the tokenizer saw it as a quoted string or a bare run. The text column
// is aligned on display width, not byte length.
func TokensPretty(w io.Writer, tokens []token.Token) error {
	width := 0
	for _, t := range tokens {
		if tw := runewidth.StringWidth(string(t)); tw > width {
			width = tw
		}
	}
	for i, t := range tokens {
		kind, style := "bare", bareStyle
		if t.Quoted() {
			kind, style = "string", stringStyle
		}
		pad := strings.Repeat(" ", width-runewidth.StringWidth(string(t)))
		_, err := fmt.Fprintf(w, "%s %s%s  %s\n",
			indexStyle.Render(fmt.Sprintf("%3d:", i+1)),
			style.Render(string(t)), pad, kind)
		if err != nil {
			return err
		}
	}
	return nil
}

// TokensJSON writes the token texts as an indented JSON array.
func TokensJSON(w io.Writer, tokens []token.Token) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(tokenTexts(tokens))
}

// TokensMsgpack writes the token texts as a msgpack array for machine
// consumers.
func TokensMsgpack(w io.Writer, tokens []token.Token) error {
	return msgpack.NewEncoder(w).Encode(tokenTexts(tokens))
}

func tokenTexts(tokens []token.Token) []string {
	texts := make([]string, len(tokens))
	for i, t := range tokens {
		texts[i] = string(t)
	}
	return texts
}
