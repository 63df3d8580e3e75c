package cards

import (
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// TagCount pairs a tag with the number of cards carrying it.
type TagCount struct {
	Name  string
	Cards int
}

// TagSummary returns every distinct tag across the cards with its card
// count, sorted for stable display. A card listing a tag twice still
// counts once for that tag.
func TagSummary(list []Card) []TagCount {
	counts := make(map[string]int)
	for _, card := range list {
		seen := make(map[string]bool, len(card.Tags))
		for _, tag := range card.Tags {
			if seen[tag] {
				continue
			}
			seen[tag] = true
			counts[tag]++
		}
	}

	summary := make([]TagCount, 0, len(counts))
	for tag, count := range counts {
		summary = append(summary, TagCount{Name: tag, Cards: count})
	}

	collator := collate.New(language.Und)
	sort.Slice(summary, func(i, j int) bool {
		return collator.CompareString(summary[i].Name, summary[j].Name) < 0
	})
	return summary
}
