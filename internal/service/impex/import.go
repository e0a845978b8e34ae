package impex

import (
	"context"
	"sort"

	"github.com/vocabdeck/vocabdeck-backend/internal/domain"
	"github.com/vocabdeck/vocabdeck-backend/internal/store"
)

// Import applies a snapshot record by record. A failing record is
// reported and skipped, never aborting the batch; only context
// cancellation stops the run. Sentences identical to an already stored
// example of the same word are skipped regardless of Overwrite.
func (s *Service) Import(ctx context.Context, in ImportInput) (*ImportReport, error) {
	report := &ImportReport{}

	seen := make(map[string]bool)
	for _, def := range in.Data.Definitions {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		w := domain.NormalizeWord(def.Word)
		if w == "" {
			report.skip("definition", def.Word, "empty word after normalization")
			continue
		}
		if seen[w] {
			report.skip("definition", def.Word, "duplicate within import")
			continue
		}
		seen[w] = true

		if _, exists := s.store.FullDefinition(w); exists {
			if !in.Overwrite {
				report.skip("definition", def.Word, "definition already exists")
				continue
			}
			if err := s.store.UpdateDefinition(ctx, w, fullReplace(def)); err != nil {
				report.skip("definition", def.Word, err.Error())
				continue
			}
			report.ImportedDefinitions++
			continue
		}

		if err := s.store.AddDefinition(ctx, def); err != nil {
			report.skip("definition", def.Word, err.Error())
			continue
		}
		report.ImportedDefinitions++
	}

	words := make([]string, 0, len(in.Data.Sentences))
	for w := range in.Data.Sentences {
		words = append(words, w)
	}
	sort.Strings(words)

	for _, w := range words {
		existing := make(map[string]bool)
		for _, ex := range s.store.SentenceExamples(domain.NormalizeWord(w), "") {
			existing[ex.Sentence] = true
		}

		for _, ex := range in.Data.Sentences[w] {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			if existing[ex.Sentence] {
				report.skip("sentence", w, "sentence already exists")
				continue
			}
			if err := s.store.AddSentenceExample(ctx, w, ex); err != nil {
				report.skip("sentence", w, err.Error())
				continue
			}
			existing[ex.Sentence] = true
			report.ImportedSentences++
		}
	}

	s.log.Info("content imported",
		"definitions", report.ImportedDefinitions,
		"sentences", report.ImportedSentences,
		"skipped", report.Skipped,
		"errors", len(report.Errors),
	)
	return report, nil
}

func (r *ImportReport) skip(record, word, reason string) {
	r.Skipped++
	r.Errors = append(r.Errors, ImportError{Record: record, Word: word, Reason: reason})
}

// fullReplace maps an imported definition onto an update that replaces
// every field, clearing the contextual map when the import has none.
func fullReplace(def domain.Definition) store.DefinitionUpdate {
	contextual := def.Contextual
	if contextual == nil {
		contextual = map[string]string{}
	}
	return store.DefinitionUpdate{
		General:       &def.General,
		Contextual:    contextual,
		Difficulty:    &def.Difficulty,
		PartOfSpeech:  &def.PartOfSpeech,
		Pronunciation: &def.Pronunciation,
		AudioFile:     &def.AudioFile,
	}
}
