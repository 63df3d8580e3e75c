package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"cardstock/internal/cards"
	"cardstock/internal/export"
)

func newStudyCommand(ctx *commandContext) *cobra.Command {
	var (
		selectedTags []string
		shuffle      bool
		seed         int64
	)

	cmd := &cobra.Command{
		Use:   "study <archive.apkg>...",
		Short: "Print a study run of cards, optionally filtered by tag",
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

			list := cards.FilterByTags(session.Cards(), selectedTags)
			if shuffle {
				if seed == 0 {
					seed = time.Now().UnixNano()
				}
				list = cards.Shuffle(list, seed)
			}

			if len(list) == 0 {
				fmt.Println("No cards match the selection.")
				return nil
			}
			for i, card := range list {
				fmt.Printf("--- Card %d/%d", i+1, len(list))
				if len(card.Tags) > 0 {
					fmt.Printf("  [%s]", strings.Join(card.Tags, " "))
				}
				fmt.Println()
				fmt.Println("Q:", export.StripMarkup(card.Front))
				fmt.Println("A:", export.StripMarkup(card.Back))
				fmt.Println()
			}
			fmt.Printf("Studied all %d cards in this session.\n", len(list))
			return nil
		},
	}

	cmd.Flags().StringArrayVar(&selectedTags, "tag", nil, "Only include cards carrying at least one of these tags (repeatable)")
	cmd.Flags().BoolVar(&shuffle, "shuffle", false, "Shuffle the card order")
	cmd.Flags().Int64Var(&seed, "seed", 0, "Shuffle seed (0 uses the current time)")
	return cmd
}
