package main

import (
	"github.com/myrjola/gavel/internal/repositories"
	"github.com/myrjola/gavel/internal/sqlite"
	"github.com/spf13/cobra"
)

var wipeCmd = &cobra.Command{
	Use:   "wipe",
	Short: "Wipe all saved progress, history and owned items",
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx := cmd.Context()
		db, err := sqlite.NewDatabase(ctx, sqliteURL(), quietLogger())
		if err != nil {
			return err
		}
		defer func() { _ = db.Close() }()

		if err := repositories.New(db, quietLogger()).ClearAll(ctx); err != nil {
			return err
		}
		cmd.Println("all stores wiped")
		return nil
	},
}
