// Package loader orchestrates content-store population at startup,
// retries failed loads with exponential backoff, and certifies the
// loaded data with a validation pass before the rest of the system
// relies on it.
package loader

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/cenkalti/backoff/v4"

	"github.com/vocabdeck/vocabdeck-backend/internal/config"
	"github.com/vocabdeck/vocabdeck-backend/internal/domain"
)

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type contentStore interface {
	LoadAll(ctx context.Context) error
	Reload(ctx context.Context) error
	Loaded() bool
	Stats() domain.ContentStats
	AllWords() []string
	Definition(word, contextName string) domain.DefinitionResult
	SentenceExamples(word, contextName string) []domain.SentenceExample
	Distractors(word, contextName string) domain.DistractorPick
}

// ---------------------------------------------------------------------------
// Loader
// ---------------------------------------------------------------------------

// Loader drives store loads and owns the latest validation report.
type Loader struct {
	log   *slog.Logger
	store contentStore
	cfg   config.LoaderConfig

	mu     sync.RWMutex
	report *domain.ValidationReport
}

// New creates the loader.
func New(log *slog.Logger, store contentStore, cfg config.LoaderConfig) *Loader {
	return &Loader{
		log:   log.With("service", "loader"),
		store: store,
		cfg:   cfg,
	}
}

// Initialize loads all content with retries and runs the validation
// pass. Exhausting the attempts is a fatal startup condition for the
// caller; the returned error wraps the last load error with the
// attempt count.
func (l *Loader) Initialize(ctx context.Context) (*domain.ValidationReport, error) {
	if err := l.retryLoad(ctx, l.store.LoadAll); err != nil {
		return nil, err
	}
	return l.revalidate(), nil
}

// Reload forces a fresh load through the same retry schedule and
// refreshes the validation report. Used by the admin reload endpoint
// and the directory watcher.
func (l *Loader) Reload(ctx context.Context) (*domain.ValidationReport, error) {
	if err := l.retryLoad(ctx, l.store.Reload); err != nil {
		return nil, err
	}
	return l.revalidate(), nil
}

func (l *Loader) retryLoad(ctx context.Context, load func(context.Context) error) error {
	maxAttempts := l.cfg.MaxAttempts
	if maxAttempts < 1 {
		maxAttempts = 1
	}

	attempts := 0
	op := func() error {
		attempts++
		if err := load(ctx); err != nil {
			l.log.Warn("content load failed",
				"attempt", attempts, "max_attempts", maxAttempts, "error", err)
			return err
		}
		return nil
	}

	bo := backoff.WithContext(backoff.WithMaxRetries(newBackOff(l.cfg), uint64(maxAttempts-1)), ctx)
	if err := backoff.Retry(op, bo); err != nil {
		return fmt.Errorf("content load failed after %d attempts: %w", attempts, err)
	}

	l.log.Info("content load succeeded", "attempts", attempts)
	return nil
}

// newBackOff builds the retry schedule: the n-th wait is
// min(initial·2^(n−1), max), with no jitter and no elapsed-time cap, so
// retries are bounded by attempt count only.
func newBackOff(cfg config.LoaderConfig) *backoff.ExponentialBackOff {
	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = cfg.InitialBackoff
	bo.MaxInterval = cfg.MaxBackoff
	bo.Multiplier = 2
	bo.RandomizationFactor = 0
	bo.MaxElapsedTime = 0
	bo.Reset()
	return bo
}
