package store

import (
	"sort"

	"github.com/vocabdeck/vocabdeck-backend/internal/domain"
)

// Stats computes an aggregate snapshot of the loaded content. It is
// derived on each call rather than cached; the maps involved are small
// enough that keeping counters in sync with mutations is not worth it.
func (s *Store) Stats() domain.ContentStats {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stats := domain.ContentStats{
		Definitions:    len(s.st.definitions),
		DistractorKeys: len(s.st.distractors),
		ByDifficulty:   make(map[domain.Difficulty]int),
		ByPartOfSpeech: make(map[string]int),
	}

	words := make(map[string]struct{}, len(s.st.definitions))
	contexts := make(map[string]struct{})

	for w, def := range s.st.definitions {
		words[w] = struct{}{}
		if def.Difficulty != "" {
			stats.ByDifficulty[def.Difficulty]++
		}
		if def.PartOfSpeech != "" {
			stats.ByPartOfSpeech[def.PartOfSpeech]++
		}
		for contextName := range def.Contextual {
			contexts[contextName] = struct{}{}
		}
	}
	for w, examples := range s.st.sentences {
		words[w] = struct{}{}
		stats.Sentences += len(examples)
		for _, ex := range examples {
			if ex.Context != "" {
				contexts[ex.Context] = struct{}{}
			}
		}
	}
	for w, entries := range s.st.similar {
		words[w] = struct{}{}
		stats.SimilarEntries += len(entries)
	}
	for contextName, tpls := range s.st.templates {
		contexts[contextName] = struct{}{}
		stats.Templates += len(tpls)
	}

	stats.Words = len(words)
	stats.Contexts = make([]string, 0, len(contexts))
	for contextName := range contexts {
		stats.Contexts = append(stats.Contexts, contextName)
	}
	sort.Strings(stats.Contexts)
	return stats
}
