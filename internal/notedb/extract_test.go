package notedb_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"cardstock/internal/logging"
	"cardstock/internal/notedb"
	"cardstock/internal/testsupport"
)

func newEngine(t *testing.T) *notedb.Engine {
	t.Helper()
	engine, err := notedb.NewEngine(context.Background(), logging.NewNop())
	if err != nil {
		t.Fatalf("NewEngine failed: %v", err)
	}
	return engine
}

func TestExtractReadsJoinedRows(t *testing.T) {
	image := testsupport.BuildCollectionImage(t, []testsupport.NoteFixture{
		{CardID: 11, Fields: "Q1\x1fA1", Tags: " t1 "},
		{CardID: 12, Fields: "Q2", Tags: ""},
	})

	rows, err := newEngine(t).Extract(context.Background(), image, 100)
	if err != nil {
		t.Fatalf("Extract failed: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}
	if rows[0].CardID != 11 || rows[0].Fields != "Q1\x1fA1" || rows[0].Tags != " t1 " {
		t.Fatalf("unexpected first row: %+v", rows[0])
	}
	if rows[1].CardID != 12 || rows[1].Fields != "Q2" || rows[1].Tags != "" {
		t.Fatalf("unexpected second row: %+v", rows[1])
	}
}

func TestExtractHonorsRowCap(t *testing.T) {
	notes := make([]testsupport.NoteFixture, 20)
	for i := range notes {
		notes[i] = testsupport.NoteFixture{
			CardID: int64(100 + i),
			Fields: fmt.Sprintf("front %d\x1fback %d", i, i),
		}
	}
	image := testsupport.BuildCollectionImage(t, notes)

	rows, err := newEngine(t).Extract(context.Background(), image, 5)
	if err != nil {
		t.Fatalf("Extract failed: %v", err)
	}
	if len(rows) != 5 {
		t.Fatalf("expected capped count of 5, got %d", len(rows))
	}
}

func TestExtractRejectsGarbageImage(t *testing.T) {
	_, err := newEngine(t).Extract(context.Background(), []byte("not a sqlite database at all"), 10)
	if !errors.Is(err, notedb.ErrStoreOpen) {
		t.Fatalf("expected ErrStoreOpen, got %v", err)
	}
}

func TestExtractEmptyCollection(t *testing.T) {
	image := testsupport.BuildCollectionImage(t, nil)

	rows, err := newEngine(t).Extract(context.Background(), image, 10)
	if err != nil {
		t.Fatalf("empty collection should extract cleanly: %v", err)
	}
	if len(rows) != 0 {
		t.Fatalf("expected no rows, got %d", len(rows))
	}
}

func TestExtractRejectsMissingSchema(t *testing.T) {
	// Valid SQLite, wrong schema: no cards/notes tables.
	image := testsupport.BuildSQLiteImage(t, []string{
		`CREATE TABLE inventory (id INTEGER PRIMARY KEY, sku TEXT)`,
	})

	_, err := newEngine(t).Extract(context.Background(), image, 10)
	if !errors.Is(err, notedb.ErrStoreOpen) {
		t.Fatalf("expected ErrStoreOpen for schema mismatch, got %v", err)
	}
}

func TestExtractEmptyFieldsRemainValid(t *testing.T) {
	image := testsupport.BuildCollectionImage(t, []testsupport.NoteFixture{
		{CardID: 1, Fields: "", Tags: ""},
	})

	rows, err := newEngine(t).Extract(context.Background(), image, 10)
	if err != nil {
		t.Fatalf("Extract failed: %v", err)
	}
	if len(rows) != 1 || rows[0].Fields != "" {
		t.Fatalf("empty fields blob should survive extraction: %+v", rows)
	}
}
