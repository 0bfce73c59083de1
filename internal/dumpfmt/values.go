package dumpfmt

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"

	"gdspec/internal/driver"
)

var (
	litStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	identStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("5"))
)

// ValuesPretty writes one classified value per line.
func ValuesPretty(w io.Writer, values []driver.Value) error {
	for i, v := range values {
		style := litStyle
		if v.Ident != nil {
			style = identStyle
		}
		_, err := fmt.Fprintf(w, "%s %s\n",
			indexStyle.Render(fmt.Sprintf("%3d:", i+1)),
			style.Render(v.String()))
		if err != nil {
			return err
		}
	}
	return nil
}
