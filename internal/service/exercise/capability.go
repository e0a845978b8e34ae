package exercise

import "github.com/vocabdeck/vocabdeck-backend/internal/domain"

// Capability previews how much of a word list the store can cover
// before generation is attempted, so callers can distinguish "nothing
// to generate" from "partial coverage" up front.
func (s *Service) Capability(words []domain.WordRef, contextName string) domain.Capability {
	c := domain.NormalizeWord(contextName)

	preview := domain.Capability{}
	for _, ref := range words {
		w := domain.NormalizeWord(ref.Value)
		if w == "" {
			continue
		}
		preview.TotalWords++

		detail := domain.WordCapability{
			Word:               w,
			HasDefinition:      s.store.Definition(w, c).Found,
			ExampleCount:       len(s.store.SentenceExamples(w, c)),
			CuratedDistractors: s.store.CuratedDistractorCount(w, c),
		}
		if detail.HasDefinition {
			preview.CoveredWords++
		} else {
			preview.Missing = append(preview.Missing, w)
		}
		preview.Details = append(preview.Details, detail)
	}
	preview.CanGenerate = preview.CoveredWords > 0
	return preview
}
