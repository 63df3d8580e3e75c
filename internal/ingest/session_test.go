package ingest_test

import (
	"context"
	"errors"
	"reflect"
	"strings"
	"testing"

	"cardstock/internal/cards"
	"cardstock/internal/ingest"
	"cardstock/internal/logging"
	"cardstock/internal/testsupport"
)

func newSession(t *testing.T, opts ...testsupport.ConfigOption) *ingest.Session {
	t.Helper()
	return ingest.NewSession(testsupport.NewConfig(t, opts...), logging.NewNop())
}

func TestSessionStartsIdle(t *testing.T) {
	session := newSession(t)
	if session.Status() != ingest.StatusIdle {
		t.Fatalf("new session status = %v, want idle", session.Status())
	}
}

func TestSubmitRejectsEmptySubmission(t *testing.T) {
	session := newSession(t)
	err := session.Submit(context.Background(), nil)
	if !errors.Is(err, ingest.ErrEmptySubmission) {
		t.Fatalf("expected ErrEmptySubmission, got %v", err)
	}
	if session.Status() != ingest.StatusIdle {
		t.Fatalf("empty submission must not transition state, got %v", session.Status())
	}
}

func TestSubmitEndToEndAnki21b(t *testing.T) {
	data := testsupport.BuildAnki21bArchive(t, []testsupport.NoteFixture{
		{CardID: 1, Fields: "Q1\x1fA1", Tags: " t1 "},
		{CardID: 2, Fields: "Q2", Tags: ""},
	})

	session := newSession(t)
	if err := session.Submit(context.Background(), []ingest.Source{{Name: "deck.apkg", Data: data}}); err != nil {
		t.Fatalf("Submit failed: %v", err)
	}

	if session.Status() != ingest.StatusReady {
		t.Fatalf("status = %v, want ready", session.Status())
	}
	got := session.Cards()
	if len(got) != 2 {
		t.Fatalf("expected 2 cards, got %d: %+v", len(got), got)
	}
	want0 := cards.Card{ID: 1, Front: "Q1", Back: "A1", Tags: []string{"t1"}}
	if !reflect.DeepEqual(got[0], want0) {
		t.Fatalf("card 0 = %+v, want %+v", got[0], want0)
	}
	want1 := cards.Card{ID: 2, Front: "Q2", Back: "", Tags: []string{}}
	if !reflect.DeepEqual(got[1], want1) {
		t.Fatalf("card 1 = %+v, want %+v", got[1], want1)
	}

	foundCollectionEntry := false
	for _, entry := range session.Manifest() {
		if entry == "deck.apkg: collection.anki21b" {
			foundCollectionEntry = true
		}
		if !strings.HasPrefix(entry, "deck.apkg: ") {
			t.Fatalf("manifest entry not qualified: %q", entry)
		}
	}
	if !foundCollectionEntry {
		t.Fatalf("manifest missing collection entry: %v", session.Manifest())
	}
}

func TestSubmitSelectsNewestVariantOverStub(t *testing.T) {
	// The legacy entry is a stub; reading it as SQLite would fail. The
	// batch only succeeds if detection prefers the compressed variant.
	image := testsupport.BuildCollectionImage(t, []testsupport.NoteFixture{
		{CardID: 5, Fields: "front\x1fback", Tags: ""},
	})
	data := testsupport.BuildArchive(t, map[string][]byte{
		"collection.anki2":   []byte("stub, not a database"),
		"collection.anki21b": testsupport.ZstdCompress(t, image),
	})

	session := newSession(t)
	if err := session.Submit(context.Background(), []ingest.Source{{Name: "d.apkg", Data: data}}); err != nil {
		t.Fatalf("Submit failed: %v", err)
	}
	if got := session.Cards(); len(got) != 1 || got[0].ID != 5 {
		t.Fatalf("expected the compressed variant's card, got %+v", got)
	}
}

func TestSubmitPartialFailureIsolation(t *testing.T) {
	good1 := testsupport.BuildAnki21bArchive(t, []testsupport.NoteFixture{
		{CardID: 1, Fields: "a\x1fb", Tags: ""},
	})
	corrupt := []byte("this is not a zip container")
	good2 := testsupport.BuildAnki21bArchive(t, []testsupport.NoteFixture{
		{CardID: 2, Fields: "c\x1fd", Tags: ""},
	})

	session := newSession(t)
	err := session.Submit(context.Background(), []ingest.Source{
		{Name: "one.apkg", Data: good1},
		{Name: "two.apkg", Data: corrupt},
		{Name: "three.apkg", Data: good2},
	})
	if err != nil {
		t.Fatalf("Submit failed: %v", err)
	}

	if session.Status() != ingest.StatusReady {
		t.Fatalf("status = %v, want ready", session.Status())
	}
	got := session.Cards()
	if len(got) != 2 || got[0].ID != 1 || got[1].ID != 2 {
		t.Fatalf("expected cards from archives 1 and 3 in order, got %+v", got)
	}
	for _, entry := range session.Manifest() {
		if strings.HasPrefix(entry, "two.apkg") {
			t.Fatalf("manifest must not contain entries from the corrupt archive: %q", entry)
		}
	}
}

func TestSubmitSkipsArchiveWithoutCollection(t *testing.T) {
	noCollection := testsupport.BuildArchive(t, map[string][]byte{
		"media": []byte("{}"),
		"0":     []byte("image bytes"),
	})

	session := newSession(t)
	if err := session.Submit(context.Background(), []ingest.Source{{Name: "media-only.apkg", Data: noCollection}}); err != nil {
		t.Fatalf("Submit failed: %v", err)
	}

	// No card data is not itself an error.
	if session.Status() != ingest.StatusReady {
		t.Fatalf("status = %v, want ready", session.Status())
	}
	if len(session.Cards()) != 0 {
		t.Fatalf("expected no cards, got %+v", session.Cards())
	}
	// Entry names were enumerated before detection failed, so they still
	// reach the manifest.
	if len(session.Manifest()) != 2 {
		t.Fatalf("expected 2 manifest entries, got %v", session.Manifest())
	}
}

func TestSubmitSkipsMalformedCompressedEntry(t *testing.T) {
	data := testsupport.BuildArchive(t, map[string][]byte{
		"collection.anki21b": []byte("not a zstd frame"),
	})

	session := newSession(t)
	if err := session.Submit(context.Background(), []ingest.Source{{Name: "bad.apkg", Data: data}}); err != nil {
		t.Fatalf("Submit failed: %v", err)
	}
	if session.Status() != ingest.StatusReady || len(session.Cards()) != 0 {
		t.Fatalf("expected ready with no cards, got %v / %+v", session.Status(), session.Cards())
	}
}

func TestSubmitRowCapBoundsCards(t *testing.T) {
	notes := make([]testsupport.NoteFixture, 12)
	for i := range notes {
		notes[i] = testsupport.NoteFixture{CardID: int64(i + 1), Fields: "f\x1fb"}
	}
	data := testsupport.BuildAnki21bArchive(t, notes)

	session := newSession(t, testsupport.WithRowCap(4))
	if err := session.Submit(context.Background(), []ingest.Source{{Name: "big.apkg", Data: data}}); err != nil {
		t.Fatalf("Submit failed: %v", err)
	}
	if got := session.Cards(); len(got) != 4 {
		t.Fatalf("expected capped count of 4 cards, got %d", len(got))
	}
}

func TestResubmissionDiscardsPreviousResult(t *testing.T) {
	first := testsupport.BuildAnki21bArchive(t, []testsupport.NoteFixture{
		{CardID: 1, Fields: "one\x1fcard", Tags: ""},
	})
	session := newSession(t)
	if err := session.Submit(context.Background(), []ingest.Source{{Name: "first.apkg", Data: first}}); err != nil {
		t.Fatalf("first Submit failed: %v", err)
	}
	if len(session.Cards()) != 1 {
		t.Fatalf("expected 1 card after first batch, got %d", len(session.Cards()))
	}

	empty := testsupport.BuildArchive(t, map[string][]byte{"media": []byte("{}")})
	if err := session.Submit(context.Background(), []ingest.Source{{Name: "second.apkg", Data: empty}}); err != nil {
		t.Fatalf("second Submit failed: %v", err)
	}
	if len(session.Cards()) != 0 {
		t.Fatalf("second batch must replace the first, got %+v", session.Cards())
	}
	for _, entry := range session.Manifest() {
		if strings.HasPrefix(entry, "first.apkg") {
			t.Fatalf("manifest still references previous batch: %q", entry)
		}
	}
}

func TestSubmitLegacyVariant(t *testing.T) {
	image := testsupport.BuildCollectionImage(t, []testsupport.NoteFixture{
		{CardID: 9, Fields: "legacy front\x1flegacy back", Tags: " old "},
	})
	data := testsupport.BuildArchive(t, map[string][]byte{
		"collection.anki2": image,
	})

	session := newSession(t)
	if err := session.Submit(context.Background(), []ingest.Source{{Name: "legacy.apkg", Data: data}}); err != nil {
		t.Fatalf("Submit failed: %v", err)
	}
	got := session.Cards()
	if len(got) != 1 || got[0].Front != "legacy front" || got[0].Tags[0] != "old" {
		t.Fatalf("unexpected legacy extraction: %+v", got)
	}
}
