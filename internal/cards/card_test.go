package cards_test

import (
	"reflect"
	"testing"

	"cardstock/internal/cards"
	"cardstock/internal/notedb"
)

func TestSplitFields(t *testing.T) {
	cases := []struct {
		name      string
		blob      string
		wantFront string
		wantBack  string
	}{
		{"three fields", "A\x1fB\x1fC", "A", "B<br/>C"},
		{"two fields", "Q1\x1fA1", "Q1", "A1"},
		{"no separator", "just a front", "just a front", ""},
		{"empty blob", "", "", ""},
		{"empty trailing field", "Q\x1f", "Q", ""},
		{"html passes through", "<b>Q</b>\x1f<i>A</i>", "<b>Q</b>", "<i>A</i>"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			front, back := cards.SplitFields(tc.blob)
			if front != tc.wantFront {
				t.Fatalf("front = %q, want %q", front, tc.wantFront)
			}
			if back != tc.wantBack {
				t.Fatalf("back = %q, want %q", back, tc.wantBack)
			}
		})
	}
}

func TestParseTags(t *testing.T) {
	cases := []struct {
		name string
		blob string
		want []string
	}{
		{"conventional padding", " foo bar  baz ", []string{"foo", "bar", "baz"}},
		{"empty", "", []string{}},
		{"whitespace only", "   ", []string{}},
		{"single", "vocab", []string{"vocab"}},
		{"duplicates kept", "a a b", []string{"a", "a", "b"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := cards.ParseTags(tc.blob)
			if !reflect.DeepEqual(got, tc.want) {
				t.Fatalf("ParseTags(%q) = %v, want %v", tc.blob, got, tc.want)
			}
		})
	}
}

func TestFromRow(t *testing.T) {
	card := cards.FromRow(notedb.Row{CardID: 42, Fields: "Q1\x1fA1", Tags: " t1 "})
	if card.ID != 42 || card.Front != "Q1" || card.Back != "A1" {
		t.Fatalf("unexpected card: %+v", card)
	}
	if !reflect.DeepEqual(card.Tags, []string{"t1"}) {
		t.Fatalf("unexpected tags: %v", card.Tags)
	}
}

func TestTagSummaryCountsAndSorts(t *testing.T) {
	list := []cards.Card{
		{ID: 1, Tags: []string{"zoo", "alpha"}},
		{ID: 2, Tags: []string{"alpha", "alpha"}},
		{ID: 3, Tags: []string{}},
	}
	summary := cards.TagSummary(list)
	want := []cards.TagCount{
		{Name: "alpha", Cards: 2},
		{Name: "zoo", Cards: 1},
	}
	if !reflect.DeepEqual(summary, want) {
		t.Fatalf("TagSummary = %v, want %v", summary, want)
	}
}

func TestFilterByTags(t *testing.T) {
	list := []cards.Card{
		{ID: 1, Tags: []string{"a"}},
		{ID: 2, Tags: []string{"b"}},
		{ID: 3, Tags: []string{"a", "c"}},
		{ID: 4, Tags: []string{}},
	}

	subset := cards.FilterByTags(list, []string{"a", "c"})
	ids := make([]int64, 0, len(subset))
	for _, card := range subset {
		ids = append(ids, card.ID)
	}
	if !reflect.DeepEqual(ids, []int64{1, 3}) {
		t.Fatalf("unexpected subset: %v", ids)
	}

	if got := cards.FilterByTags(list, nil); len(got) != len(list) {
		t.Fatalf("empty selection should keep all cards, got %d", len(got))
	}
}

func TestShuffleIsSeededPermutation(t *testing.T) {
	list := []cards.Card{{ID: 1}, {ID: 2}, {ID: 3}, {ID: 4}, {ID: 5}}

	first := cards.Shuffle(list, 7)
	second := cards.Shuffle(list, 7)
	if !reflect.DeepEqual(first, second) {
		t.Fatal("same seed must produce the same order")
	}

	if list[0].ID != 1 || list[4].ID != 5 {
		t.Fatal("input slice must not be mutated")
	}

	seen := make(map[int64]bool)
	for _, card := range first {
		seen[card.ID] = true
	}
	if len(seen) != len(list) {
		t.Fatalf("shuffle lost cards: %v", first)
	}
}

func TestDisplayTitle(t *testing.T) {
	cases := map[string]string{
		"spanish_vocab.apkg":    "Spanish Vocab",
		"/tmp/biology-101.apkg": "Biology 101",
		"deck.apkg":             "Deck",
		"JLPT N5.apkg":          "JLPT N5",
		"":                      "Untitled Deck",
		"___.apkg":              "Untitled Deck",
	}
	for input, want := range cases {
		if got := cards.DisplayTitle(input); got != want {
			t.Fatalf("DisplayTitle(%q) = %q, want %q", input, got, want)
		}
	}
}
