package main

import (
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

func rulesCmd() *cobra.Command {
	var flags clientFlags

	cmd := &cobra.Command{
		Use:   "rules",
		Short: "List the registered rules and their activation state",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := flags.loadClientConfig()
			if err != nil {
				return err
			}

			client, err := flags.buildClient(cfg)
			if err != nil {
				return err
			}
			defer client.Close()

			registry := client.Registry()
			t := table.NewWriter()
			t.SetOutputMirror(os.Stdout)
			t.AppendHeader(table.Row{"Rule ID", "Active", "Default off", "Description"})
			for _, rl := range registry.All() {
				t.AppendRow(table.Row{
					rl.ID(),
					registry.IsActive(rl.ID()),
					rl.DefaultOff(),
					rl.Description(),
				})
			}
			for _, br := range client.Checks.BitextRules() {
				t.AppendRow(table.Row{br.ID(), true, false, br.Description()})
			}
			t.Render()
			return nil
		},
	}

	flags.register(cmd)
	return cmd
}
