package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/veritext/veritext"
	"github.com/veritext/veritext/application/service"
	"github.com/veritext/veritext/infrastructure/corpus"
)

func bitextCmd() *cobra.Command {
	var (
		flags       clientFlags
		bitextRules []string
		apply       bool
	)

	cmd := &cobra.Command{
		Use:   "bitext [file]",
		Short: "Check a tab-separated bilingual corpus",
		Long: `Check a tab-separated bilingual corpus: one aligned pair per line, the
source sentence before the tab and its translation after it. Pairs are read
and checked one at a time; match positions refer to the target document.

With --apply, the corrected target sentences are printed instead of the
matches.

Reads from the given file, or from stdin when the file is "-" or omitted.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := ""
			if len(args) == 1 {
				path = args[0]
			}
			return runBitext(cmd, &flags, path, bitextRules, apply)
		},
	}

	flags.register(cmd)
	cmd.Flags().StringSliceVar(&bitextRules, "bitext-rules", nil, "Bitext rule ids to activate (default: all built-in)")
	cmd.Flags().BoolVar(&apply, "apply", false, "Print corrected target sentences instead of matches")

	return cmd
}

func runBitext(cmd *cobra.Command, flags *clientFlags, path string, bitextRules []string, apply bool) error {
	cfg, err := flags.loadClientConfig()
	if err != nil {
		return err
	}

	var extra []veritext.Option
	if bitextRules != nil {
		extra = append(extra, veritext.WithBitextRuleIDs(bitextRules...))
	}
	client, err := flags.buildClient(cfg, extra...)
	if err != nil {
		return err
	}
	defer client.Close()

	input := os.Stdin
	if path != "" && path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return fmt.Errorf("open %s: %w", path, err)
		}
		defer f.Close()
		input = f
	}
	reader := corpus.NewTabReader(input)

	ctx := cmd.Context()
	if apply {
		return client.Corrections.CorrectStream(ctx, reader, func(corrected string) error {
			_, err := fmt.Fprintln(os.Stdout, corrected)
			return err
		})
	}

	result, err := client.Checks.CheckStream(ctx, reader, func(pr service.PairResult) error {
		printPairMatches(os.Stdout, pr)
		return nil
	})
	if err != nil {
		return err
	}

	fmt.Printf("%d matches in %d pairs (%d ms)\n",
		result.MatchCount(), result.PairCount(), result.Elapsed().Milliseconds())
	return nil
}
