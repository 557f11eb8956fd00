package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/veritext/veritext"
	"github.com/veritext/veritext/infrastructure/api/v1/dto"
)

func checkCmd() *cobra.Command {
	var (
		flags      clientFlags
		lineOffset int
		asJSON     bool
		useHistory bool
	)

	cmd := &cobra.Command{
		Use:   "check [file]",
		Short: "Check a text against the active rules",
		Long: `Check a text against the active rules and print the matches.

Reads from the given file, or from stdin when the file is "-" or omitted.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := ""
			if len(args) == 1 {
				path = args[0]
			}
			return runCheck(cmd, &flags, path, lineOffset, asJSON, useHistory)
		},
	}

	flags.register(cmd)
	cmd.Flags().IntVar(&lineOffset, "line-offset", 0, "Line number the text starts at within a larger document")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print matches as JSON")
	cmd.Flags().BoolVar(&useHistory, "history", false, "Record the run in the check history database")

	return cmd
}

func runCheck(cmd *cobra.Command, flags *clientFlags, path string, lineOffset int, asJSON, useHistory bool) error {
	cfg, err := flags.loadClientConfig()
	if err != nil {
		return err
	}

	text, err := readInput(path)
	if err != nil {
		return err
	}

	var extra []veritext.Option
	if useHistory {
		if err := cfg.EnsureDataDir(); err != nil {
			return fmt.Errorf("create data directory: %w", err)
		}
		extra = append(extra, veritext.WithHistory(cfg.DBPath()))
	}

	client, err := flags.buildClient(cfg, extra...)
	if err != nil {
		return err
	}
	defer client.Close()

	ctx := cmd.Context()
	result, err := client.Checks.CheckText(ctx, text, lineOffset)
	if err != nil {
		return err
	}

	if useHistory && client.History != nil {
		if _, err := client.History.Record(ctx, "check", result.MatchCount(), result.SentenceCount(), result.Elapsed()); err != nil {
			return fmt.Errorf("record history: %w", err)
		}
	}

	if asJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(dto.CheckResponseFromResult(result))
	}

	printMatches(os.Stdout, text, result.Matches(), cfg.ContextSize())
	fmt.Printf("%d matches in %d sentences (%d ms)\n",
		result.MatchCount(), result.SentenceCount(), result.Elapsed().Milliseconds())
	return nil
}
