package impex

import (
	"time"

	"github.com/vocabdeck/vocabdeck-backend/internal/domain"
)

// ExportData is a portable snapshot of the curated content. The same
// shape is accepted by Import.
type ExportData struct {
	Definitions []domain.Definition                 `json:"definitions"`
	Sentences   map[string][]domain.SentenceExample `json:"sentences,omitempty"`
	Stats       domain.ContentStats                 `json:"stats"`
	ExportedAt  time.Time                           `json:"exported_at"`
}

// ImportInput carries a parsed snapshot plus the collision policy.
// With Overwrite set, a definition for an already-known word replaces
// the stored one; without it the record is skipped.
type ImportInput struct {
	Data      ExportData
	Overwrite bool
}

// ImportReport contains the outcome of an import operation.
type ImportReport struct {
	ImportedDefinitions int           `json:"imported_definitions"`
	ImportedSentences   int           `json:"imported_sentences"`
	Skipped             int           `json:"skipped"`
	Errors              []ImportError `json:"errors,omitempty"`
}

// ImportError describes a single record that was not imported.
type ImportError struct {
	Record string `json:"record"`
	Word   string `json:"word"`
	Reason string `json:"reason"`
}
