package main

import (
	"fmt"
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

func profileCmd() *cobra.Command {
	var flags clientFlags

	cmd := &cobra.Command{
		Use:   "profile [file]",
		Short: "Time each active rule over a text",
		Long: `Run every active rule over the text's sentences ten times and report the
median run time per rule. Match counts accumulate across all runs.

Reads from the given file, or from stdin when the file is "-" or omitted.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := ""
			if len(args) == 1 {
				path = args[0]
			}

			cfg, err := flags.loadClientConfig()
			if err != nil {
				return err
			}

			text, err := readInput(path)
			if err != nil {
				return err
			}

			client, err := flags.buildClient(cfg)
			if err != nil {
				return err
			}
			defer client.Close()

			samples, err := client.Profiles.ProfileText(cmd.Context(), text)
			if err != nil {
				return err
			}

			t := table.NewWriter()
			t.SetOutputMirror(os.Stdout)
			t.AppendHeader(table.Row{"Rule ID", "Median ms", "Sentences", "Matches", "Sentences/sec"})
			for _, s := range samples {
				t.AppendRow(table.Row{
					s.RuleID(),
					fmt.Sprintf("%.2f", s.MedianMillis()),
					s.SentenceCount(),
					s.MatchCount(),
					fmt.Sprintf("%.0f", s.SentencesPerSecond()),
				})
			}
			t.Render()
			return nil
		},
	}

	flags.register(cmd)
	return cmd
}
