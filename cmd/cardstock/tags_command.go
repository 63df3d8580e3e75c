package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"cardstock/internal/cards"
)

func newTagsCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "tags <archive.apkg>...",
		Short: "Summarize the tags across one or more archives",
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

			summary := cards.TagSummary(session.Cards())
			if len(summary) == 0 {
				fmt.Println("No tags found.")
				return nil
			}
			rows := make([][]string, 0, len(summary))
			for _, entry := range summary {
				rows = append(rows, []string{entry.Name, strconv.Itoa(entry.Cards)})
			}
			fmt.Println(renderTable([]string{"Tag", "Cards"}, rows))
			return nil
		},
	}
}
