package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"cardstock/internal/cards"
	"cardstock/internal/export"
)

func newListCommand(ctx *commandContext) *cobra.Command {
	var showManifest bool

	cmd := &cobra.Command{
		Use:   "list <archive.apkg>...",
		Short: "Extract and display the cards in one or more archives",
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

			for _, path := range args {
				fmt.Println("Deck:", cards.DisplayTitle(path))
			}

			list := session.Cards()
			rows := make([][]string, 0, len(list))
			for _, card := range list {
				rows = append(rows, []string{
					strconv.FormatInt(card.ID, 10),
					export.StripMarkup(card.Front),
					export.StripMarkup(card.Back),
					strings.Join(card.Tags, " "),
				})
			}
			fmt.Println(renderTable([]string{"ID", "Front", "Back", "Tags"}, rows))
			fmt.Printf("Found %d cards\n", len(list))

			if showManifest {
				fmt.Println()
				printManifest(session)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&showManifest, "manifest", false, "Also print every archive entry name seen")
	return cmd
}
