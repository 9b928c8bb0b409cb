package main

import (
	"time"

	"github.com/myrjola/gavel/internal/repositories"
	"github.com/myrjola/gavel/internal/sqlite"
	"github.com/spf13/cobra"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Print the completed-case history",
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx := cmd.Context()
		db, err := sqlite.NewDatabase(ctx, sqliteURL(), quietLogger())
		if err != nil {
			return err
		}
		defer func() { _ = db.Close() }()

		records, err := repositories.New(db, quietLogger()).History.All(ctx)
		if err != nil {
			return err
		}
		if len(records) == 0 {
			cmd.Println("no completed cases")
			return nil
		}
		for _, record := range records {
			outcome := "incorrect"
			if record.WasCorrect {
				outcome = "correct"
			}
			cmd.Printf("%s  %-24s  %-10s  %s (%+d coins, %s)\n",
				record.CompletedAt.Format(time.DateTime), record.CaseID, record.Verdict, outcome,
				record.CoinsEarned, record.TimeSpent.Round(time.Second))
		}
		return nil
	},
}
