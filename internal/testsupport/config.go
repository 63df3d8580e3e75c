// Package testsupport provides shared fixtures for cardstock tests:
// temp-dir configs and programmatically built flashcard archives.
package testsupport

import (
	"path/filepath"
	"testing"

	"cardstock/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*config.Config)

// NewConfig produces a config seeded with unique temp directories per test.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfg := config.Default()
	cfg.Paths.LogDir = filepath.Join(base, "logs")
	cfg.Paths.ExportDir = filepath.Join(base, "exports")

	for _, opt := range opts {
		opt(&cfg)
	}
	return &cfg
}

// WithRowCap overrides the extraction row cap on the test config.
func WithRowCap(limit int) ConfigOption {
	return func(cfg *config.Config) {
		cfg.Ingest.RowCap = limit
	}
}
