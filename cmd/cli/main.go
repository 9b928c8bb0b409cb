package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

func init() {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(wipeCmd)
}

var rootCmd = &cobra.Command{
	Use:  "gavel-cli",
	Long: `Command line utilities for the Gavel courtroom game`,
	Run: func(_ *cobra.Command, _ []string) {
		// Subcommands do the work.
	},
}

// sqliteURL resolves the database path the same way cmd/web does.
func sqliteURL() string {
	if url, ok := os.LookupEnv("GAVEL_SQLITE_URL"); ok {
		return url
	}
	return "./gavel.sqlite"
}

// quietLogger discards logs so command output stays clean.
func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func main() {
	Execute()
}
