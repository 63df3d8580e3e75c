package cards

import (
	"strings"

	"cardstock/internal/notedb"
)

// fieldSeparator is the control byte notes use to delimit fields.
const fieldSeparator = "\x1f"

// backJoiner joins trailing fields into the back of a card.
const backJoiner = "<br/>"

// Card is the normalized unit every consumer works with. IDs are unique
// within one archive's extraction only; a batch may repeat them.
type Card struct {
	ID    int64
	Front string
	Back  string
	Tags  []string
}

// FromRow normalizes one extracted row into a Card.
func FromRow(row notedb.Row) Card {
	front, back := SplitFields(row.Fields)
	return Card{
		ID:    row.CardID,
		Front: front,
		Back:  back,
		Tags:  ParseTags(row.Tags),
	}
}

// SplitFields segments a fields blob on the unit separator. Segment 0 is
// the front; the remainder joins into the back. An empty blob yields two
// empty strings; a blob with no separator yields an empty back.
func SplitFields(blob string) (front, back string) {
	parts := strings.Split(blob, fieldSeparator)
	front = parts[0]
	if len(parts) > 1 {
		back = strings.Join(parts[1:], backJoiner)
	}
	return front, back
}

// ParseTags splits a tag blob on single spaces, dropping the empty
// segments the blob's conventional surrounding spaces produce. Order is
// preserved and duplicates are kept.
func ParseTags(blob string) []string {
	trimmed := strings.TrimSpace(blob)
	if trimmed == "" {
		return []string{}
	}
	parts := strings.Split(trimmed, " ")
	tags := make([]string, 0, len(parts))
	for _, part := range parts {
		if part != "" {
			tags = append(tags, part)
		}
	}
	return tags
}

// HasTag reports whether the card carries the exact tag.
func (c Card) HasTag(tag string) bool {
	for _, t := range c.Tags {
		if t == tag {
			return true
		}
	}
	return false
}
