// Package impex implements content import and export. Export snapshots
// the loaded definitions and sentence examples; import replays a
// snapshot through the store's mutation API, so every imported record
// passes the same validation and write-through path as a manual edit.
package impex

import (
	"context"
	"log/slog"

	"github.com/vocabdeck/vocabdeck-backend/internal/domain"
	"github.com/vocabdeck/vocabdeck-backend/internal/store"
)

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type contentStore interface {
	AllDefinitions() []domain.Definition
	AllSentences() map[string][]domain.SentenceExample
	Stats() domain.ContentStats
	FullDefinition(word string) (domain.Definition, bool)
	SentenceExamples(word, contextName string) []domain.SentenceExample
	AddDefinition(ctx context.Context, def domain.Definition) error
	UpdateDefinition(ctx context.Context, word string, upd store.DefinitionUpdate) error
	AddSentenceExample(ctx context.Context, word string, ex domain.SentenceExample) error
}

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

// Service moves content between the store and portable snapshots.
type Service struct {
	log   *slog.Logger
	store contentStore
}

// NewService creates the import/export service.
func NewService(log *slog.Logger, st contentStore) *Service {
	return &Service{
		log:   log.With("service", "impex"),
		store: st,
	}
}
