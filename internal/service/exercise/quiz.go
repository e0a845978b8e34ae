package exercise

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/vocabdeck/vocabdeck-backend/internal/domain"
)

// QuizQuestions builds one multiple-choice question per covered word,
// stopping at the requested limit. A zero limit falls back to the
// configured default quiz size.
func (s *Service) QuizQuestions(in QuizInput) ([]domain.QuizQuestion, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	if len(in.Words) > s.cfg.MaxWordsPerRequest {
		return nil, domain.NewValidationError("words", fmt.Sprintf("too many (max %d)", s.cfg.MaxWordsPerRequest))
	}
	limit := clampLimit(in.Limit, 1, s.cfg.MaxWordsPerRequest, s.cfg.DefaultQuizSize)
	contextName := domain.NormalizeWord(in.Context)

	s.rngMu.Lock()
	defer s.rngMu.Unlock()

	questions := make([]domain.QuizQuestion, 0, limit)
	for _, ref := range in.Words {
		if len(questions) == limit {
			break
		}
		word := domain.NormalizeWord(ref.Value)
		if word == "" {
			continue
		}
		res := s.store.Definition(word, contextName)
		if !res.Found {
			continue
		}

		m := material{
			word:        word,
			meaning:     res.Text,
			distractors: s.store.Distractors(word, contextName),
		}
		ex := multipleChoice(s.rng, m)
		questions = append(questions, domain.QuizQuestion{
			ID:               fmt.Sprintf("quiz_%s_%s", word, uuid.NewString()),
			Word:             word,
			Question:         ex.Question,
			Options:          ex.Options,
			Correct:          ex.Correct,
			Context:          contextName,
			Difficulty:       s.difficultyFor(word),
			Explanation:      ex.Explanation,
			DistractorOrigin: m.distractors.Origin,
		})
	}
	return questions, nil
}
