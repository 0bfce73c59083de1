package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"gdspec/internal/driver"
	"gdspec/internal/dumpfmt"
	"gdspec/internal/project"
)

var tokenizeCmd = &cobra.Command{
	Use:   "tokenize [flags] file...",
	Short: "Tokenize schema source files",
	Long:  `Tokenize breaks schema source files into their constituent tokens`,
	Args:  cobra.MinimumNArgs(1),
	RunE:  runTokenize,
}

func init() {
	tokenizeCmd.Flags().String("format", "", "output format (pretty|json|msgpack)")
}

func runTokenize(cmd *cobra.Command, args []string) error {
	cfg, err := project.Discover(".")
	if err != nil {
		return err
	}

	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("read format flag: %w", err)
	}
	if format == "" {
		format = cfg.Output.Format
	}
	switch format {
	case "pretty", "json", "msgpack":
	default:
		return fmt.Errorf("unknown format: %s", format)
	}

	jobs, err := cmd.Root().PersistentFlags().GetInt("jobs")
	if err != nil {
		return fmt.Errorf("read jobs flag: %w", err)
	}
	if jobs == 0 {
		jobs = cfg.Run.Jobs
	}

	setupColor(cmd, cfg)

	results, err := driver.TokenizeFiles(cmd.Context(), args, jobs)
	if err != nil {
		return err
	}

	failed := 0
	for _, res := range results {
		if res.Err != nil {
			failed++
			color.New(color.FgRed).Fprintf(os.Stderr, "error: %v\n", res.Err)
			continue
		}
		if len(results) > 1 {
			fmt.Fprintf(cmd.OutOrStdout(), "%s:\n", res.Path)
		}
		if err := dumpTokens(cmd, format, res); err != nil {
			return err
		}
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d files failed", failed, len(results))
	}
	return nil
}

func dumpTokens(cmd *cobra.Command, format string, res driver.TokenizeResult) error {
	out := cmd.OutOrStdout()
	switch format {
	case "json":
		return dumpfmt.TokensJSON(out, res.Tokens)
	case "msgpack":
		return dumpfmt.TokensMsgpack(out, res.Tokens)
	default:
		return dumpfmt.TokensPretty(out, res.Tokens)
	}
}

// setupColor resolves the color mode from flag and config and applies it
// process-wide.
func setupColor(cmd *cobra.Command, cfg project.Config) {
	mode, _ := cmd.Root().PersistentFlags().GetString("color")
	if mode == "" {
		mode = cfg.Output.Color
	}
	switch mode {
	case "on":
		color.NoColor = false
	case "off":
		color.NoColor = true
	default:
		color.NoColor = !isTerminal(os.Stdout)
	}
}
