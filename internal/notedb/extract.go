package notedb

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"cardstock/internal/logging"
)

// ErrStoreOpen marks images that are not a valid collection database with
// the expected cards/notes tables. It is fatal for the affected archive
// only.
var ErrStoreOpen = errors.New("not a valid collection database")

// Row is the transient shape of one extracted card row. It is consumed by
// the normalizer immediately and never retained.
type Row struct {
	CardID int64
	Fields string
	Tags   string
}

// cardQuery is the single fixed query this system runs: each card's
// identifier with its parent note's field and tag blobs. The LIMIT bounds
// memory against pathological inputs; rows beyond it are dropped silently.
const cardQuery = `
SELECT c.id, n.flds, n.tags
FROM cards c
JOIN notes n ON c.nid = n.id
LIMIT ?`

// Extract loads the database image in memory and returns up to limit rows.
// Every handle is released before Extract returns, on success and failure
// alike.
func (e *Engine) Extract(ctx context.Context, image []byte, limit int) ([]Row, error) {
	db, conn, err := openImage(ctx, image)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStoreOpen, err)
	}
	defer db.Close()
	defer conn.Close()

	rows, err := conn.QueryContext(ctx, cardQuery, limit)
	if err != nil {
		// A bogus image or missing schema surfaces here ("file is not a
		// database", "no such table").
		return nil, fmt.Errorf("%w: %v", ErrStoreOpen, err)
	}
	defer rows.Close()

	extracted := make([]Row, 0, 64)
	for rows.Next() {
		var (
			id     int64
			fields sql.NullString
			tags   sql.NullString
		)
		if err := rows.Scan(&id, &fields, &tags); err != nil {
			return nil, fmt.Errorf("scan card row: %w", err)
		}
		extracted = append(extracted, Row{CardID: id, Fields: fields.String, Tags: tags.String})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate card rows: %w", err)
	}

	e.logger.Debug("extracted card rows", logging.Int(logging.FieldCardCount, len(extracted)))
	return extracted, nil
}
