package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"cardstock/internal/export"
)

func newExportCommand(ctx *commandContext) *cobra.Command {
	var outputPath string

	cmd := &cobra.Command{
		Use:   "export <archive.apkg>...",
		Short: "Export the cards in one or more archives as CSV",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := ctx.ensure()
			if err != nil {
				return err
			}

			session, err := runBatch(cmd.Context(), cfg, logger, args)
			if err != nil {
				return err
			}

			target := outputPath
			if target == "" {
				target = cfg.ExportPath()
			}
			if err := export.WriteFile(session.Cards(), target); err != nil {
				return err
			}
			fmt.Printf("Exported %d cards to %s\n", len(session.Cards()), target)
			return nil
		},
	}

	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output file path (defaults to the configured export location)")
	return cmd
}
