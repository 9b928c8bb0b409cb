package main

import (
	"github.com/myrjola/gavel/internal/catalog"
	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate the embedded case and customization catalogs",
	RunE: func(cmd *cobra.Command, _ []string) error {
		cat := catalog.New(quietLogger())
		if err := cat.Validate(); err != nil {
			return err
		}
		cmd.Printf("catalog ok: %d case templates, %d items\n", cat.Len(), len(cat.Items()))
		return nil
	},
}
