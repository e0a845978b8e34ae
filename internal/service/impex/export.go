package impex

import (
	"context"
	"time"
)

// Export snapshots every definition and sentence example currently
// loaded, together with the content stats at the time of export.
func (s *Service) Export(ctx context.Context) (*ExportData, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data := &ExportData{
		Definitions: s.store.AllDefinitions(),
		Sentences:   s.store.AllSentences(),
		Stats:       s.store.Stats(),
		ExportedAt:  time.Now().UTC(),
	}

	s.log.Info("content exported",
		"definitions", len(data.Definitions),
		"sentence_words", len(data.Sentences),
	)
	return data, nil
}
