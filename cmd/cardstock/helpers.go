package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"cardstock/internal/config"
	"cardstock/internal/ingest"
)

// loadSources reads each path into an ingest source. Unreadable paths fail
// the command up front; archive-level corruption is the session's concern.
func loadSources(paths []string) ([]ingest.Source, error) {
	sources := make([]ingest.Source, 0, len(paths))
	for _, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read archive %s: %w", path, err)
		}
		sources = append(sources, ingest.Source{Name: path, Data: data})
	}
	return sources, nil
}

// runBatch ingests the archive paths and returns the terminal session.
func runBatch(ctx context.Context, cfg *config.Config, logger *slog.Logger, paths []string) (*ingest.Session, error) {
	sources, err := loadSources(paths)
	if err != nil {
		return nil, err
	}
	session := ingest.NewSession(cfg, logger)
	if err := session.Submit(ctx, sources); err != nil {
		return nil, err
	}
	return session, nil
}

func printManifest(session *ingest.Session) {
	for _, entry := range session.Manifest() {
		fmt.Println(entry)
	}
}
