// Package main provides the CLI entry point for sweetpaste, a preview tool
// for the clipboard table reconstruction engine. It reads pasted text from
// files or stdin and renders the recovered table.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

var (
	outputFormat string
	separator    string
	forceHeaders bool
	noHeaders    bool
	htmlInput    bool
	cleanCells   bool
	verbose      bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "sweetpaste [file...]",
		Short: "Reconstruct tables from pasted clipboard text",
		Long: `sweetpaste reads raw clipboard text (from files or stdin) and
reconstructs it into a rectangular table, recovering split rows,
multi-line headers, spanning headers, and Wikipedia-style footnotes.`,
		Args: cobra.ArbitraryArgs,
		RunE: run,
	}

	rootCmd.Flags().StringVarP(&outputFormat, "output", "o", "table", "Output format: table, csv, json, markdown")
	rootCmd.Flags().StringVarP(&separator, "separator", "s", "", "Force separator: tab, comma, none (default: auto-detect)")
	rootCmd.Flags().BoolVar(&forceHeaders, "headers", false, "Treat the first row as a header row")
	rootCmd.Flags().BoolVar(&noHeaders, "no-headers", false, "Treat every row as data")
	rootCmd.Flags().BoolVar(&htmlInput, "html", false, "Treat input as HTML and extract the first <table>")
	rootCmd.Flags().BoolVar(&cleanCells, "clean", false, "Clean cells (footnotes, Unicode minus) even for plain tables")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Verbose logging")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	if forceHeaders && noHeaders {
		return fmt.Errorf("--headers and --no-headers are mutually exclusive")
	}

	results, err := parseInputs(args, logger)
	if err != nil {
		return err
	}

	for _, res := range results {
		if len(results) > 1 {
			fmt.Fprintf(cmd.OutOrStdout(), "==> %s\n", res.name)
		}
		if err := render(cmd.OutOrStdout(), res.table, outputFormat); err != nil {
			return fmt.Errorf("rendering %s: %w", res.name, err)
		}
	}
	return nil
}
