package main

import (
	"github.com/spf13/cobra"

	"gdspec/internal/driver"
	"gdspec/internal/dumpfmt"
	"gdspec/internal/project"
)

var parseCmd = &cobra.Command{
	Use:   "parse [flags] file",
	Short: "Parse a schema source file into literals and identifiers",
	Long: `Parse tokenizes a schema source file, then classifies every token by
trying the literal rule first and retrying the same position as an
identifier when that fails`,
	Args: cobra.ExactArgs(1),
	RunE: runParse,
}

func runParse(cmd *cobra.Command, args []string) error {
	cfg, err := project.Discover(".")
	if err != nil {
		return err
	}
	setupColor(cmd, cfg)

	values, err := driver.ClassifyFile(args[0])
	if err != nil {
		return err
	}
	return dumpfmt.ValuesPretty(cmd.OutOrStdout(), values)
}
