package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"gdspec/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "gdspec",
	Short: "Game-data schema language toolkit",
	Long:  `gdspec tokenizes and parses game-data schema specification files`,
}

func main() {
	rootCmd.Version = version.Version

	rootCmd.AddCommand(tokenizeCmd)
	rootCmd.AddCommand(parseCmd)
	rootCmd.AddCommand(versionCmd)

	rootCmd.PersistentFlags().String("color", "", "colorize output (auto|on|off)")
	rootCmd.PersistentFlags().Int("jobs", 0, "max concurrent files (0 = GOMAXPROCS)")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// isTerminal reports whether the file is attached to a terminal.
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
