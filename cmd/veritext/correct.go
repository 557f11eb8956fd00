package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func correctCmd() *cobra.Command {
	var flags clientFlags

	cmd := &cobra.Command{
		Use:   "correct [file]",
		Short: "Apply the first suggestion of every match to a text",
		Long: `Check a text and print it with the first suggested replacement of every
match applied. Text without matches passes through unchanged.

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

			corrected, err := client.Corrections.CorrectText(cmd.Context(), text)
			if err != nil {
				return err
			}

			if _, err := fmt.Fprint(os.Stdout, corrected); err != nil {
				return err
			}
			return nil
		},
	}

	flags.register(cmd)
	return cmd
}
