package main

import (
	"fmt"
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/veritext/veritext/application/service"
	"github.com/veritext/veritext/infrastructure/persistence"
)

func historyCmd() *cobra.Command {
	var (
		envFile string
		limit   int
	)

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List recent check runs from the history database",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(envFile)
			if err != nil {
				return err
			}

			db, err := persistence.Open(cfg.DBPath())
			if err != nil {
				return err
			}
			defer persistence.Close(db)

			history := service.NewHistory(persistence.NewHistoryStore(db))
			records, err := history.Recent(cmd.Context(), limit)
			if err != nil {
				return err
			}
			if len(records) == 0 {
				fmt.Println("no check runs recorded")
				return nil
			}

			t := table.NewWriter()
			t.SetOutputMirror(os.Stdout)
			t.AppendHeader(table.Row{"ID", "Kind", "Matches", "Sentences", "Elapsed ms", "When"})
			for _, r := range records {
				t.AppendRow(table.Row{
					r.ID(),
					r.Kind(),
					r.MatchCount(),
					r.SentenceCount(),
					r.ElapsedMillis(),
					r.CreatedAt().Format("2006-01-02 15:04:05"),
				})
			}
			t.Render()
			return nil
		},
	}

	cmd.Flags().StringVar(&envFile, "env-file", "", "Path to .env file (default: .env in current directory)")
	cmd.Flags().IntVarP(&limit, "limit", "n", service.DefaultHistoryLimit, "Maximum number of runs to list")
	return cmd
}
