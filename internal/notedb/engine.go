package notedb

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/mattn/go-sqlite3"

	"cardstock/internal/logging"
)

// Engine represents the process-wide SQLite runtime. Construction probes
// the driver once so per-archive failures can be told apart from a broken
// engine; a failure here is fatal for the whole batch.
type Engine struct {
	logger *slog.Logger
}

// NewEngine verifies the SQLite driver is operational and returns a handle
// used to open per-archive databases.
func NewEngine(ctx context.Context, logger *slog.Logger) (*Engine, error) {
	probe, err := sql.Open(driverName, ":memory:")
	if err != nil {
		return nil, fmt.Errorf("initialize sqlite engine: %w", err)
	}
	defer probe.Close()
	if err := probe.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("initialize sqlite engine: %w", err)
	}
	return &Engine{logger: logging.NewComponentLogger(logger, "notedb")}, nil
}

const driverName = "sqlite3"

// openImage pins a single connection to a fresh in-memory database and
// replaces its content with the provided image. The caller owns both
// returned handles and must close the connection before the database.
func openImage(ctx context.Context, image []byte) (*sql.DB, *sql.Conn, error) {
	db, err := sql.Open(driverName, ":memory:")
	if err != nil {
		return nil, nil, fmt.Errorf("open in-memory database: %w", err)
	}

	conn, err := db.Conn(ctx)
	if err != nil {
		_ = db.Close()
		return nil, nil, fmt.Errorf("acquire connection: %w", err)
	}

	err = conn.Raw(func(driverConn any) error {
		sqliteConn, ok := driverConn.(*sqlite3.SQLiteConn)
		if !ok {
			return fmt.Errorf("unexpected driver connection type %T", driverConn)
		}
		return sqliteConn.Deserialize(image, "")
	})
	if err != nil {
		_ = conn.Close()
		_ = db.Close()
		return nil, nil, fmt.Errorf("load database image: %w", err)
	}

	return db, conn, nil
}
