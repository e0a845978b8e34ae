// Package store holds all curated content in memory and keeps the
// backing content directory in sync. Reads are lock-protected map
// lookups; loads build a complete new state and swap it in, so readers
// never observe a partially loaded data set.
package store

import (
	"log/slog"
	"sync"

	"golang.org/x/sync/singleflight"

	"github.com/vocabdeck/vocabdeck-backend/internal/config"
	"github.com/vocabdeck/vocabdeck-backend/internal/domain"
)

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type contentFiles interface {
	EnsureLayout() error
	ReadDefinitions() (map[string][]domain.Definition, error)
	ReadSentences() (map[string][]domain.SentenceExample, error)
	ReadSimilar() (map[string][]domain.SimilarWord, error)
	ReadTemplates() (map[string][]domain.ExerciseTemplate, error)
	ReadDistractors() (map[string][]string, error)
	WriteDefinitions(source string, defs []domain.Definition) error
	WriteSentences(word string, examples []domain.SentenceExample) error
}

// ---------------------------------------------------------------------------
// Store
// ---------------------------------------------------------------------------

// Store is the in-memory content store over a content directory.
//
// Concurrency: one RWMutex guards the whole state. Queries take the read
// lock; mutations and the load swap take the write lock. Mutations hold
// the write lock across the backing file write, so the file contents
// always reflect the memory order of mutations. Concurrent loads are
// coalesced through singleflight.
type Store struct {
	log   *slog.Logger
	files contentFiles
	cfg   config.ContentConfig

	sf singleflight.Group

	mu     sync.RWMutex
	loaded bool
	st     state
}

// state is one immutable-by-convention generation of loaded content.
// All keys are normalized words (or context names / pool keys).
type state struct {
	definitions map[string]domain.Definition
	defSource   map[string]string   // word -> definitions source file key
	sourceWords map[string][]string // source file key -> words, in file order
	sentences   map[string][]domain.SentenceExample
	similar     map[string][]domain.SimilarWord
	templates   map[string][]domain.ExerciseTemplate
	distractors map[string][]string
}

func newState() state {
	return state{
		definitions: map[string]domain.Definition{},
		defSource:   map[string]string{},
		sourceWords: map[string][]string{},
		sentences:   map[string][]domain.SentenceExample{},
		similar:     map[string][]domain.SimilarWord{},
		templates:   map[string][]domain.ExerciseTemplate{},
		distractors: map[string][]string{},
	}
}

// New creates a Store over the given content files. The store is empty
// and unloaded until LoadAll succeeds.
func New(logger *slog.Logger, files contentFiles, cfg config.ContentConfig) *Store {
	return &Store{
		log:   logger.With("service", "store"),
		files: files,
		cfg:   cfg,
		st:    newState(),
	}
}

// Loaded reports whether a load has completed successfully.
func (s *Store) Loaded() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loaded
}

// compositeKey builds the context-specific distractor pool key.
func compositeKey(contextName, word string) string {
	return contextName + "_" + word
}
