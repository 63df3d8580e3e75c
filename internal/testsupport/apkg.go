package testsupport

import (
	"archive/zip"
	"bytes"
	"context"
	"database/sql"
	"testing"

	"github.com/klauspost/compress/zstd"
	"github.com/mattn/go-sqlite3"
)

// NoteFixture describes one note row to seed into a collection image. Each
// note yields a single card.
type NoteFixture struct {
	CardID int64
	Fields string
	Tags   string
}

// BuildCollectionImage creates a SQLite database with the cards/notes schema
// an export carries, seeds the fixtures, and returns the serialized image.
func BuildCollectionImage(t testing.TB, notes []NoteFixture) []byte {
	t.Helper()

	return serializeDatabase(t, func(ctx context.Context, conn *sql.Conn) {
		schema := []string{
			`CREATE TABLE notes (id INTEGER PRIMARY KEY, flds TEXT NOT NULL, tags TEXT NOT NULL)`,
			`CREATE TABLE cards (id INTEGER PRIMARY KEY, nid INTEGER NOT NULL REFERENCES notes(id))`,
		}
		for _, stmt := range schema {
			if _, err := conn.ExecContext(ctx, stmt); err != nil {
				t.Fatalf("create fixture schema: %v", err)
			}
		}
		for i, note := range notes {
			noteID := int64(i + 1)
			if _, err := conn.ExecContext(ctx,
				`INSERT INTO notes (id, flds, tags) VALUES (?, ?, ?)`,
				noteID, note.Fields, note.Tags,
			); err != nil {
				t.Fatalf("insert fixture note: %v", err)
			}
			if _, err := conn.ExecContext(ctx,
				`INSERT INTO cards (id, nid) VALUES (?, ?)`,
				note.CardID, noteID,
			); err != nil {
				t.Fatalf("insert fixture card: %v", err)
			}
		}
	})
}

// BuildSQLiteImage executes the statements against a fresh in-memory
// database and returns its serialized image. Useful for images that are
// valid SQLite but not a collection.
func BuildSQLiteImage(t testing.TB, stmts []string) []byte {
	t.Helper()

	return serializeDatabase(t, func(ctx context.Context, conn *sql.Conn) {
		for _, stmt := range stmts {
			if _, err := conn.ExecContext(ctx, stmt); err != nil {
				t.Fatalf("execute fixture statement %q: %v", stmt, err)
			}
		}
	})
}

func serializeDatabase(t testing.TB, seed func(context.Context, *sql.Conn)) []byte {
	t.Helper()

	db, err := sql.Open("sqlite3", ":memory:")
	if err != nil {
		t.Fatalf("open fixture database: %v", err)
	}
	defer db.Close()

	ctx := context.Background()
	conn, err := db.Conn(ctx)
	if err != nil {
		t.Fatalf("acquire fixture connection: %v", err)
	}
	defer conn.Close()

	seed(ctx, conn)

	var image []byte
	err = conn.Raw(func(driverConn any) error {
		var serr error
		image, serr = driverConn.(*sqlite3.SQLiteConn).Serialize("")
		return serr
	})
	if err != nil {
		t.Fatalf("serialize fixture database: %v", err)
	}
	return image
}

// ZstdCompress returns data wrapped in a single zstd frame.
func ZstdCompress(t testing.TB, data []byte) []byte {
	t.Helper()

	var buf bytes.Buffer
	enc, err := zstd.NewWriter(&buf)
	if err != nil {
		t.Fatalf("new zstd writer: %v", err)
	}
	if _, err := enc.Write(data); err != nil {
		t.Fatalf("compress fixture: %v", err)
	}
	if err := enc.Close(); err != nil {
		t.Fatalf("close zstd writer: %v", err)
	}
	return buf.Bytes()
}

// BuildArchive zips the provided entries into an in-memory package.
func BuildArchive(t testing.TB, entries map[string][]byte) []byte {
	t.Helper()

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for name, data := range entries {
		w, err := zw.Create(name)
		if err != nil {
			t.Fatalf("create archive entry %s: %v", name, err)
		}
		if _, err := w.Write(data); err != nil {
			t.Fatalf("write archive entry %s: %v", name, err)
		}
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("close archive: %v", err)
	}
	return buf.Bytes()
}

// BuildAnki21bArchive builds a complete modern export: a zstd-compressed
// collection image plus a legacy stub, the shape real exports ship.
func BuildAnki21bArchive(t testing.TB, notes []NoteFixture) []byte {
	t.Helper()

	image := BuildCollectionImage(t, notes)
	return BuildArchive(t, map[string][]byte{
		"collection.anki21b": ZstdCompress(t, image),
		"collection.anki2":   []byte("legacy stub"),
		"media":              []byte("{}"),
	})
}
