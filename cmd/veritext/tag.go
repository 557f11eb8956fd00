package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/veritext/veritext/infrastructure/engine"
)

func tagCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tag [file]",
		Short: "Print the analyzed tokens of a text",
		Long: `Split a text into sentences and print each sentence's tokens with their
rune offsets and analysis tags.

Reads from the given file, or from stdin when the file is "-" or omitted.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := ""
			if len(args) == 1 {
				path = args[0]
			}

			text, err := readInput(path)
			if err != nil {
				return err
			}

			eng := engine.Engine{}
			ctx := cmd.Context()
			sentences, err := eng.TokenizeSentences(ctx, text)
			if err != nil {
				return err
			}

			for i, sentence := range sentences {
				analyzed, err := eng.Analyze(ctx, sentence)
				if err != nil {
					return err
				}
				fmt.Printf("Sentence %d: %q\n", i+1, analyzed.Text())
				for _, tok := range analyzed.Tokens() {
					line := fmt.Sprintf("  %q @ %d", tok.Surface(), tok.StartPos())
					if tags := tok.Tags(); len(tags) > 0 {
						line += " [" + strings.Join(tags, ", ") + "]"
					}
					fmt.Fprintln(os.Stdout, line)
				}
			}
			return nil
		},
	}

	return cmd
}
