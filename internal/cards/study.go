package cards

import "math/rand"

// FilterByTags returns the cards carrying at least one of the selected
// tags. The subset references the same values; nothing is copied or
// mutated. An empty selection selects every card.
func FilterByTags(list []Card, selected []string) []Card {
	if len(selected) == 0 {
		return list
	}
	subset := make([]Card, 0, len(list))
	for _, card := range list {
		for _, tag := range selected {
			if card.HasTag(tag) {
				subset = append(subset, card)
				break
			}
		}
	}
	return subset
}

// Shuffle returns a copy of the cards in a seeded pseudo-random order so
// study sessions are reproducible under test.
func Shuffle(list []Card, seed int64) []Card {
	shuffled := make([]Card, len(list))
	copy(shuffled, list)
	rng := rand.New(rand.NewSource(seed))
	rng.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})
	return shuffled
}
