package ingest

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"cardstock/internal/archive"
	"cardstock/internal/cards"
	"cardstock/internal/collection"
	"cardstock/internal/config"
	"cardstock/internal/logging"
	"cardstock/internal/notedb"
)

// Status describes where a session is in its lifecycle.
type Status string

const (
	StatusIdle    Status = "idle"
	StatusLoading Status = "loading"
	StatusReady   Status = "ready"
	StatusError   Status = "error"
)

// ErrBatchFatal marks failures outside any single archive's handling. It is
// the only error class that surfaces as the session's error state.
var ErrBatchFatal = errors.New("batch processing failed")

// ErrEmptySubmission is returned for a Submit call with no sources; it is a
// caller error and does not transition the session.
var ErrEmptySubmission = errors.New("no archives submitted")

// Source is one uploaded archive: an opaque byte buffer plus the name used
// in diagnostics and manifest entries. No extension or content-type check
// gates identification.
type Source struct {
	Name string
	Data []byte
}

// Session aggregates one batch of archives into a card list and manifest.
// A new Submit discards the previous run's result.
type Session struct {
	cfg    *config.Config
	logger *slog.Logger

	mu       sync.RWMutex
	status   Status
	cards    []cards.Card
	manifest []string
	errMsg   string
}

// NewSession constructs an idle session.
func NewSession(cfg *config.Config, logger *slog.Logger) *Session {
	return &Session{
		cfg:    cfg,
		logger: logging.NewComponentLogger(logger, "ingest"),
		status: StatusIdle,
	}
}

// Status returns the session's current lifecycle state.
func (s *Session) Status() Status {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.status
}

// Cards returns the normalized cards of the last ready batch, in
// submission order across archives.
func (s *Session) Cards() []cards.Card {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cards
}

// Manifest returns the qualified "<archive>: <entry>" names seen across the
// last batch, for diagnostic display.
func (s *Session) Manifest() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.manifest
}

// ErrorMessage returns the human-readable failure text when the session is
// in the error state, and "" otherwise.
func (s *Session) ErrorMessage() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.errMsg
}

// Submit processes the archives strictly in order and runs to completion;
// there is no mid-batch cancellation beyond the context plumbed into
// database calls. The returned error is non-nil only for an empty
// submission or a batch-fatal failure.
func (s *Session) Submit(ctx context.Context, sources []Source) error {
	if len(sources) == 0 {
		return ErrEmptySubmission
	}

	batchID := uuid.NewString()
	logger := s.logger.With(logging.String(logging.FieldBatchID, batchID))

	s.publish(StatusLoading, nil, nil, "")
	logger.Info("batch started", logging.Int("archives", len(sources)))

	engine, err := notedb.NewEngine(ctx, logger)
	if err != nil {
		fatal := fmt.Errorf("%w: %v", ErrBatchFatal, err)
		logger.Error("batch failed", logging.Error(fatal))
		s.publish(StatusError, nil, nil, fatal.Error())
		return fatal
	}

	var (
		allCards []cards.Card
		manifest []string
	)
	for _, src := range sources {
		outcome := s.processArchive(ctx, engine, src)
		manifest = append(manifest, outcome.entries...)
		if outcome.err != nil {
			logger.Warn("archive skipped",
				logging.String(logging.FieldArchive, src.Name),
				logging.Error(outcome.err),
			)
			continue
		}
		allCards = append(allCards, outcome.cards...)
		logger.Info("archive processed",
			logging.String(logging.FieldArchive, src.Name),
			logging.Int(logging.FieldCardCount, len(outcome.cards)),
		)
	}

	// A batch with zero extractable cards is still ready; empty data is
	// not an error.
	s.publish(StatusReady, allCards, manifest, "")
	logger.Info("batch ready", logging.Int(logging.FieldCardCount, len(allCards)))
	return nil
}

// archiveOutcome is the per-archive fold input: entries join the manifest
// whenever enumeration succeeded, even if a later stage failed.
type archiveOutcome struct {
	entries []string
	cards   []cards.Card
	err     error
}

func (s *Session) processArchive(ctx context.Context, engine *notedb.Engine, src Source) archiveOutcome {
	arc, err := archive.Open(src.Name, src.Data)
	if err != nil {
		return archiveOutcome{err: err}
	}

	entries := arc.Entries()
	qualified := make([]string, 0, len(entries))
	for _, entry := range entries {
		qualified = append(qualified, src.Name+": "+entry)
	}

	variant, err := collection.Detect(entries)
	if err != nil {
		return archiveOutcome{entries: qualified, err: fmt.Errorf("%s: %w", src.Name, err)}
	}
	s.logger.Debug("collection variant selected",
		logging.String(logging.FieldArchive, src.Name),
		logging.String(logging.FieldVariant, variant.String()),
	)

	raw, err := arc.ReadEntry(variant.EntryName())
	if err != nil {
		return archiveOutcome{entries: qualified, err: err}
	}

	image, err := collection.Decode(variant, raw, s.cfg.MaxDatabaseBytes())
	if err != nil {
		return archiveOutcome{entries: qualified, err: fmt.Errorf("%s: %w", src.Name, err)}
	}

	rows, err := engine.Extract(ctx, image, s.cfg.Ingest.RowCap)
	if err != nil {
		return archiveOutcome{entries: qualified, err: fmt.Errorf("%s: %w", src.Name, err)}
	}

	extracted := make([]cards.Card, 0, len(rows))
	for _, row := range rows {
		extracted = append(extracted, cards.FromRow(row))
	}
	return archiveOutcome{entries: qualified, cards: extracted}
}

func (s *Session) publish(status Status, list []cards.Card, manifest []string, errMsg string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.status = status
	s.cards = list
	s.manifest = manifest
	s.errMsg = errMsg
}
